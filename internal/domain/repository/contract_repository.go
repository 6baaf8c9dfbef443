// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"rentflow/internal/domain/entity"
	"rentflow/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for contract persistence.
var (
	// ErrContractNotFound is returned when a contract is not found.
	ErrContractNotFound = errors.New("contract not found")
	// ErrVersionConflict is returned when a compare-and-set update finds a newer version.
	ErrVersionConflict = errors.New("contract version conflict")
)

// ContractRepository defines the interface for contract-related database operations.
type ContractRepository interface {
	// Create persists a new contract. A nil ID is assigned and Version starts at 1.
	Create(ctx context.Context, contract *entity.Contract) error

	// FindByID retrieves a contract by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)

	// FindByIDForUpdate retrieves a contract and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Contract, error)

	// Update writes every field of contract if the stored version still equals contract.Version,
	// then increments contract.Version. A stale version yields ErrVersionConflict.
	Update(ctx context.Context, contract *entity.Contract) error

	// FindLiveByRoom retrieves the contracts of a room in a live status with both dates set,
	// excluding excludeID.
	FindLiveByRoom(ctx context.Context, roomID, excludeID uuid.UUID) ([]*entity.Contract, error)

	// FindByTenant retrieves the contracts addressed to a tenant, newest first.
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Contract, error)

	// FindByLandlord retrieves the contracts owned by a landlord, newest first.
	FindByLandlord(ctx context.Context, landlordID uuid.UUID) ([]*entity.Contract, error)

	// FindByBuildings retrieves the contracts of the given buildings, newest first.
	FindByBuildings(ctx context.Context, buildingIDs []uuid.UUID) ([]*entity.Contract, error)
}
