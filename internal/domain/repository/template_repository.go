package repository

import (
	"context"

	"rentflow/internal/domain/entity"
	"rentflow/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for template and room persistence.
var (
	// ErrTemplateNotFound is returned when a building has no contract template.
	ErrTemplateNotFound = errors.New("contract template not found")
	// ErrRoomNotFound is returned when a room is not found.
	ErrRoomNotFound = errors.New("room not found")
)

// TemplateRepository defines the interface for contract template storage.
type TemplateRepository interface {
	// FindByBuilding retrieves the template of a building.
	FindByBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.ContractTemplate, error)

	// FindByID retrieves a template by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContractTemplate, error)

	// Save creates or replaces the template of template.BuildingID.
	Save(ctx context.Context, template *entity.ContractTemplate) error
}

// RoomRepository defines read access to rooms managed by the property module.
type RoomRepository interface {
	// FindByID retrieves a room by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
}
