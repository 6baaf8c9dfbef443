package ekyc

import (
	"context"

	"rentflow/internal/domain/service"
)

const fieldFaces = "file[]"

type faceClient struct {
	api      *apiClient
	endpoint string
}

// Compare uploads the card front and the selfie. A response without a
// similarity score yields a nil Similarity.
func (c *faceClient) Compare(ctx context.Context, idFrontPath, selfiePath string) (*service.FaceMatchResult, error) {
	raw, err := c.api.postFiles(ctx, c.endpoint,
		part{field: fieldFaces, path: idFrontPath},
		part{field: fieldFaces, path: selfiePath},
	)
	if err != nil {
		return nil, err
	}

	return decodeFaceMatch(raw), nil
}

func decodeFaceMatch(raw map[string]any) *service.FaceMatchResult {
	result := &service.FaceMatchResult{Raw: raw}

	data, ok := raw["data"].(map[string]any)
	if !ok {
		return result
	}
	if similarity, ok := number(data["similarity"]); ok {
		result.Similarity = &similarity
	}

	return result
}
