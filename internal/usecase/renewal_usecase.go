package usecase

import (
	"context"

	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
)

// RenewalUsecase defines the renewal request and response flow of completed contracts.
type RenewalUsecase interface {
	// RequestExtend attaches a pending renewal request for months more.
	RequestExtend(ctx context.Context, actor entity.Actor, contractID uuid.UUID, months int, note string, version *int64) (*entity.Contract, error)

	// RespondToRenewal approves or rejects the pending renewal request.
	RespondToRenewal(ctx context.Context, actor entity.Actor, contractID uuid.UUID, approve bool, version *int64) (*entity.Contract, error)
}
