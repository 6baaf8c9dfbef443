package usecase

import (
	"context"

	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertTemplateInput replaces the template of a building. LandlordID is only
// read when an admin creates the first template of a building.
type UpsertTemplateInput struct {
	LandlordID           uuid.UUID
	BuildingID           uuid.UUID
	Fields               []entity.TemplateField
	DefaultTermIDs       []uuid.UUID
	DefaultRegulationIDs []uuid.UUID
}

// TemplateUsecase manages per-building contract templates.
type TemplateUsecase interface {
	Get(ctx context.Context, actor entity.Actor, buildingID uuid.UUID) (*entity.ContractTemplate, error)
	Upsert(ctx context.Context, actor entity.Actor, input UpsertTemplateInput) (*entity.ContractTemplate, error)
}
