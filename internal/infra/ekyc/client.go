// Package ekyc calls the ID card OCR and face match HTTP APIs.
package ekyc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

const (
	apiKeyHeader    = "api-key"
	maxResponseSize = 4 << 20
	retryWaitMin    = 100 * time.Millisecond
	retryWaitMax    = time.Second
)

// part is one file of a multipart upload.
type part struct {
	field string
	path  string
}

// apiClient posts multipart requests through a retrying client. Transport
// errors and 5xx responses are retried; any other non-2xx response fails
// unless its body carries a provider error code.
type apiClient struct {
	http   *retryablehttp.Client
	apiKey string
	logger *slog.Logger
}

func newAPIClient(transport http.RoundTripper, apiKey string, timeout time.Duration, retries int, logger *slog.Logger) *apiClient {
	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{Transport: transport, Timeout: timeout}
	client.RetryMax = retries
	client.RetryWaitMin = retryWaitMin
	client.RetryWaitMax = retryWaitMax
	client.Logger = logger
	client.CheckRetry = retryPolicy
	client.ErrorHandler = giveUp

	return &apiClient{http: client, apiKey: apiKey, logger: logger}
}

// retryPolicy retries transport failures and server errors, never client errors.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}

	return resp.StatusCode >= http.StatusInternalServerError, nil
}

func giveUp(resp *http.Response, err error, attempts int) (*http.Response, error) {
	if resp != nil {
		resp.Body.Close()

		return nil, errors.Errorf("provider returned status %d after %d attempt(s)", resp.StatusCode, attempts)
	}

	return nil, errors.Wrapf(err, "provider unreachable after %d attempt(s)", attempts)
}

func (c *apiClient) postFiles(ctx context.Context, endpoint string, parts ...part) (map[string]any, error) {
	body, contentType, err := multipartBody(parts)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", endpoint)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read provider response")
	}

	return decodeResponse(resp.StatusCode, raw)
}

// decodeResponse accepts 2xx JSON bodies, and non-2xx bodies only when they
// report a non-zero provider error code.
func decodeResponse(status int, raw []byte) (map[string]any, error) {
	decoded := map[string]any{}
	jsonErr := json.Unmarshal(raw, &decoded)

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		if jsonErr != nil {
			return nil, errors.Wrapf(jsonErr, "provider returned status %d with a non-JSON body", status)
		}

		return decoded, nil
	}

	if jsonErr == nil {
		if code, ok := number(decoded["errorCode"]); ok && code != 0 {
			return decoded, nil
		}
	}

	return nil, errors.Errorf("provider returned status %d", status)
}

func multipartBody(parts []part) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range parts {
		if err := copyFile(w, p); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func copyFile(w *multipart.Writer, p part) error {
	f, err := os.Open(p.path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", p.path)
	}
	defer f.Close()

	fw, err := w.CreateFormFile(p.field, filepath.Base(p.path))
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return errors.Wrapf(err, "failed to read %s", p.path)
	}

	return nil
}
