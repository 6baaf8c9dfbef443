package service

import (
	"context"
)

// OCRResult is the decoded response of an ID card OCR call.
type OCRResult struct {
	ErrorCode    int
	ErrorMessage string
	Data         []map[string]any // One record per detected card, first is authoritative.
	Raw          map[string]any   // Full response body, retained for audit.
}

// FaceMatchResult is the decoded response of a face similarity call.
type FaceMatchResult struct {
	Similarity *float64       // 0-100, nil when the provider returned no score.
	Raw        map[string]any // Full response body, retained for audit.
}

// OCRProvider extracts structured fields from ID card images
type OCRProvider interface {
	// ExtractIDCard submits the front and back images of an ID card
	ExtractIDCard(ctx context.Context, frontPath, backPath string) (*OCRResult, error)

	// Name identifies the provider in persisted verdicts
	Name() string
}

// FaceMatcher compares two face images
type FaceMatcher interface {
	// Compare returns the similarity between the portrait on the ID card and the selfie
	Compare(ctx context.Context, idFrontPath, selfiePath string) (*FaceMatchResult, error)
}
