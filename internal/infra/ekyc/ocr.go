package ekyc

import (
	"context"
	"math"
	"strconv"
	"strings"

	"rentflow/internal/domain/service"
)

// OCR request fields.
const (
	fieldFront = "image"
	fieldBack  = "image_back"
)

type ocrClient struct {
	api      *apiClient
	endpoint string
	name     string
}

// ExtractIDCard uploads both sides of the card. A provider-reported error is
// returned in the result, not as an error.
func (c *ocrClient) ExtractIDCard(ctx context.Context, frontPath, backPath string) (*service.OCRResult, error) {
	raw, err := c.api.postFiles(ctx, c.endpoint,
		part{field: fieldFront, path: frontPath},
		part{field: fieldBack, path: backPath},
	)
	if err != nil {
		return nil, err
	}

	return decodeOCR(raw), nil
}

func (c *ocrClient) Name() string {
	return c.name
}

func decodeOCR(raw map[string]any) *service.OCRResult {
	result := &service.OCRResult{Raw: raw}

	if code, ok := number(raw["errorCode"]); ok {
		result.ErrorCode = int(code)
	}
	if msg, ok := raw["errorMessage"].(string); ok {
		result.ErrorMessage = msg
	}

	if records, ok := raw["data"].([]any); ok {
		for _, r := range records {
			if record, ok := r.(map[string]any); ok {
				result.Data = append(result.Data, record)
			}
		}
	}

	return result
}

// number accepts JSON numbers and numeric strings.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}

		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}

		return number(f)
	default:
		return 0, false
	}
}
