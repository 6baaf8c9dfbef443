// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"rentflow/internal/domain/contract"
	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateContractInput carries the data a landlord supplies when drafting a contract.
type CreateContractInput struct {
	ContactID  uuid.UUID
	TenantID   uuid.UUID
	BuildingID uuid.UUID
	RoomID     uuid.UUID
	PartyA     *entity.Person
	PartyB     *entity.Person
	Terms      *entity.ContractTerms
}

// ContractUsecase defines the landlord and tenant operations on a contract.
// Mutating operations accept the version the caller read; a nil version skips the check.
type ContractUsecase interface {
	// Create drafts a contract from the building template.
	Create(ctx context.Context, actor entity.Actor, input CreateContractInput) (*entity.Contract, error)

	// Get returns a contract visible to the actor.
	Get(ctx context.Context, actor entity.Actor, contractID uuid.UUID) (*entity.Contract, error)

	// List returns every contract the actor is a party to or manages.
	List(ctx context.Context, actor entity.Actor) ([]*entity.Contract, error)

	// MissingFields reports the empty required template fields without transitioning.
	MissingFields(ctx context.Context, actor entity.Actor, contractID uuid.UUID) ([]contract.MissingField, error)

	// EditData applies a landlord edit.
	EditData(ctx context.Context, actor entity.Actor, contractID uuid.UUID, edit contract.LandlordEdit, version *int64) (*entity.Contract, error)

	// SignByLandlord records the landlord signature.
	SignByLandlord(ctx context.Context, actor entity.Actor, contractID uuid.UUID, signatureURL string, version *int64) (*entity.Contract, error)

	// SendToTenant hands the contract over to the tenant.
	SendToTenant(ctx context.Context, actor entity.Actor, contractID uuid.UUID, version *int64) (*entity.Contract, error)

	// UpdateMyData applies the tenant's own data.
	UpdateMyData(ctx context.Context, actor entity.Actor, contractID uuid.UUID, update contract.TenantUpdate, version *int64) (*entity.Contract, error)

	// SignByTenant records the tenant signature after identity verification.
	SignByTenant(ctx context.Context, actor entity.Actor, contractID uuid.UUID, signatureURL string, version *int64) (*entity.Contract, error)

	// GenerateShareQR renders a QR code PNG pointing at the tenant signing page.
	GenerateShareQR(ctx context.Context, actor entity.Actor, contractID uuid.UUID) ([]byte, error)
}
