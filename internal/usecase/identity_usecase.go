package usecase

import (
	"context"

	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityEvidence points at locally staged image files. The use case owns
// them once submitted and removes them on every exit path.
type IdentityEvidence struct {
	IDFrontPath string
	IDBackPath  string
	SelfiePath  string
}

// Paths returns the non-empty staged paths.
func (e IdentityEvidence) Paths() []string {
	paths := make([]string, 0, 3)
	for _, p := range []string{e.IDFrontPath, e.IDBackPath, e.SelfiePath} {
		if p != "" {
			paths = append(paths, p)
		}
	}

	return paths
}

// IdentityUsecase runs the eKYC flow for the tenant of a contract.
type IdentityUsecase interface {
	// SubmitEvidence verifies the tenant against the declared party data and
	// persists the verdict. A mismatch is not an error; provider failures are.
	SubmitEvidence(ctx context.Context, actor entity.Actor, contractID uuid.UUID, evidence IdentityEvidence) (*entity.IdentityVerification, error)
}
