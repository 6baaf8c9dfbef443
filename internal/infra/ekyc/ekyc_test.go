package ekyc

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"rentflow/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stagedFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	front := filepath.Join(dir, "front.jpg")
	back := filepath.Join(dir, "back.jpg")
	require.NoError(t, os.WriteFile(front, []byte("front-bytes"), 0o600))
	require.NoError(t, os.WriteFile(back, []byte("back-bytes"), 0o600))

	return front, back
}

func newTestClients(t *testing.T, handler http.HandlerFunc, retries int) (*ocrClient, *faceClient) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return newClients(&config.IdentityConfig{
		OCREndpoint:       srv.URL + "/ocr",
		FaceMatchEndpoint: srv.URL + "/face",
		APIKey:            "secret",
		Timeout:           time.Second,
		Retries:           retries,
	}, http.DefaultTransport, testLogger())
}

func TestOCRClient_ExtractIDCard(t *testing.T) {
	ocr, _ := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ocr", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(apiKeyHeader))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		front, _, err := r.FormFile(fieldFront)
		require.NoError(t, err)
		content, _ := io.ReadAll(front)
		assert.Equal(t, "front-bytes", string(content))
		_, _, err = r.FormFile(fieldBack)
		require.NoError(t, err)

		_, _ = w.Write([]byte(`{"errorCode":0,"errorMessage":"","data":[{"name":"NGUYỄN VĂN A","id":"001098012345","dob":"15/03/1998"}]}`))
	}, 1)
	front, back := stagedFiles(t)

	result, err := ocr.ExtractIDCard(context.Background(), front, back)

	require.NoError(t, err)
	assert.Equal(t, 0, result.ErrorCode)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "001098012345", result.Data[0]["id"])
	assert.NotNil(t, result.Raw["data"])
	assert.Equal(t, defaultProviderName, ocr.Name())
}

func TestOCRClient_ProviderRejectionIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	ocr, _ := newTestClients(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorCode":3,"errorMessage":"Unable to find ID card in the image","data":[]}`))
	}, 1)
	front, back := stagedFiles(t)

	result, err := ocr.ExtractIDCard(context.Background(), front, back)

	require.NoError(t, err)
	assert.Equal(t, 3, result.ErrorCode)
	assert.Equal(t, "Unable to find ID card in the image", result.ErrorMessage)
	assert.Empty(t, result.Data)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOCRClient_ClientErrorWithoutErrorCodeFails(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"invalid api key"}`},
		{name: "throttled", status: http.StatusTooManyRequests, body: `{"message":"quota exceeded"}`},
		{name: "zero error code", status: http.StatusForbidden, body: `{"errorCode":0,"data":[]}`},
		{name: "non-JSON body", status: http.StatusBadRequest, body: `bad request`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			ocr, _ := newTestClients(t, func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, 1)
			front, back := stagedFiles(t)

			result, err := ocr.ExtractIDCard(context.Background(), front, back)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), strconv.Itoa(tt.status))
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestOCRClient_RetriesServerErrorsOnce(t *testing.T) {
	var calls atomic.Int32
	ocr, _ := newTestClients(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}
		_, _ = w.Write([]byte(`{"errorCode":0,"data":[{"name":"A"}]}`))
	}, 1)
	front, back := stagedFiles(t)

	result, err := ocr.ExtractIDCard(context.Background(), front, back)

	require.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestOCRClient_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	ocr, _ := newTestClients(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, 1)
	front, back := stagedFiles(t)

	_, err := ocr.ExtractIDCard(context.Background(), front, back)

	assert.ErrorContains(t, err, "503")
	assert.Equal(t, int32(2), calls.Load())
}

func TestOCRClient_TimeoutIsRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}

			return
		}
		_, _ = w.Write([]byte(`{"errorCode":0,"data":[]}`))
	}))
	t.Cleanup(srv.Close)

	ocr, _ := newClients(&config.IdentityConfig{
		OCREndpoint:       srv.URL,
		FaceMatchEndpoint: srv.URL,
		Timeout:           50 * time.Millisecond,
		Retries:           1,
	}, http.DefaultTransport, testLogger())
	front, back := stagedFiles(t)

	_, err := ocr.ExtractIDCard(context.Background(), front, back)

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestOCRClient_MissingFile(t *testing.T) {
	ocr, _ := newTestClients(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	}, 1)

	_, err := ocr.ExtractIDCard(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"), "also-missing.jpg")
	assert.Error(t, err)
}

func TestFaceClient_Compare(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *float64
	}{
		{name: "score", body: `{"code":"200","data":{"isMatch":true,"similarity":92.4}}`, want: ptr(92.4)},
		{name: "string score", body: `{"data":{"similarity":"87.5"}}`, want: ptr(87.5)},
		{name: "no score", body: `{"code":"407","message":"no face detected"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, face := newTestClients(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/face", r.URL.Path)
				require.NoError(t, r.ParseMultipartForm(1<<20))
				assert.Len(t, r.MultipartForm.File[fieldFaces], 2)

				_, _ = w.Write([]byte(tt.body))
			}, 0)
			front, selfie := stagedFiles(t)

			result, err := face.Compare(context.Background(), front, selfie)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Similarity)
			assert.NotEmpty(t, result.Raw)
		})
	}
}

func TestFaceClient_ClientErrorFails(t *testing.T) {
	var calls atomic.Int32
	_, face := newTestClients(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	}, 1)
	front, selfie := stagedFiles(t)

	result, err := face.Compare(context.Background(), front, selfie)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "401")
	assert.Equal(t, int32(1), calls.Load())
}

func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK, body: `{"data":[]}`},
		{name: "ok non-JSON", status: http.StatusOK, body: `<html>`, wantErr: true},
		{name: "provider rejection", status: http.StatusBadRequest, body: `{"errorCode":"3","errorMessage":"no card"}`},
		{name: "client error", status: http.StatusUnauthorized, body: `{"message":"denied"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := decodeResponse(tt.status, []byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, decoded)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, decoded)
		})
	}
}

func TestNew_RequiresEndpoints(t *testing.T) {
	_, err := New(Params{Config: &config.Config{Identity: &config.IdentityConfig{}}, Logger: testLogger()})
	assert.Error(t, err)

	_, err = New(Params{Config: &config.Config{}, Logger: testLogger()})
	assert.Error(t, err)
}

func ptr(v float64) *float64 {
	return &v
}
