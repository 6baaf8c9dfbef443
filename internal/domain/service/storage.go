package service

import (
	"context"
)

// ObjectStore uploads staged local files to durable storage.
// Removing the local file is the caller's responsibility.
type ObjectStore interface {
	// Upload copies localPath under folder and returns the durable URL
	Upload(ctx context.Context, localPath, folder string) (string, error)
}

// ImagePreprocessor normalizes an uploaded image before it is sent to providers
type ImagePreprocessor interface {
	// Prepare writes a normalized copy of src and returns its path
	Prepare(ctx context.Context, src string) (string, error)
}
