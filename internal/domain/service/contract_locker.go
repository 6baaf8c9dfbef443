package service

import (
	"context"

	"github.com/google/uuid"
)

// ContractLocker serializes mutations on a single contract across instances
type ContractLocker interface {
	// Acquire blocks until the lock for contractID is held or ctx ends
	Acquire(ctx context.Context, contractID uuid.UUID) (release func(), err error)
}
