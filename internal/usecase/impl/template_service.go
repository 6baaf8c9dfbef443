package impl

import (
	"context"
	"log/slog"
	"strings"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/repository"
	"rentflow/internal/errors"
	"rentflow/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// templateService implements the TemplateUsecase interface.
type templateService struct {
	templateRepo repository.TemplateRepository
	logger       *slog.Logger
}

// TemplateServiceParams holds dependencies for TemplateService, injected by Fx.
type TemplateServiceParams struct {
	fx.In

	TemplateRepo repository.TemplateRepository
	Logger       *slog.Logger
}

// NewTemplateService is the constructor for templateService.
func NewTemplateService(params TemplateServiceParams) usecase.TemplateUsecase {
	return &templateService{
		templateRepo: params.TemplateRepo,
		logger:       params.Logger,
	}
}

// Get returns the template of a building managed by the actor.
func (s *templateService) Get(ctx context.Context, actor entity.Actor, buildingID uuid.UUID) (*entity.ContractTemplate, error) {
	tmpl, err := s.templateRepo.FindByBuilding(ctx, buildingID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	if !actor.CanManageBuilding(tmpl.LandlordID, tmpl.BuildingID) {
		return nil, domainerrors.ErrTemplateNotFound
	}

	return tmpl, nil
}

// Upsert replaces the template of a building. The owning landlord of an
// existing template never changes.
func (s *templateService) Upsert(ctx context.Context, actor entity.Actor, input usecase.UpsertTemplateInput) (*entity.ContractTemplate, error) {
	if input.BuildingID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithMessagef("buildingId is required")
	}
	if err := validateFields(input.Fields); err != nil {
		return nil, err
	}

	landlordID, err := s.owner(ctx, actor, input)
	if err != nil {
		return nil, err
	}

	tmpl := &entity.ContractTemplate{
		LandlordID:           landlordID,
		BuildingID:           input.BuildingID,
		Fields:               input.Fields,
		DefaultTermIDs:       nonNilIDs(input.DefaultTermIDs),
		DefaultRegulationIDs: nonNilIDs(input.DefaultRegulationIDs),
	}
	if err := s.templateRepo.Save(ctx, tmpl); err != nil {
		return nil, translateRepoError(err)
	}

	s.logger.Info("contract template saved",
		slog.String("building_id", tmpl.BuildingID.String()),
		slog.String("template_id", tmpl.ID.String()),
		slog.Int("fields", len(tmpl.Fields)),
	)

	return tmpl, nil
}

func (s *templateService) owner(ctx context.Context, actor entity.Actor, input usecase.UpsertTemplateInput) (uuid.UUID, error) {
	existing, err := s.templateRepo.FindByBuilding(ctx, input.BuildingID)
	switch {
	case err == nil:
		if !actor.CanManageBuilding(existing.LandlordID, existing.BuildingID) {
			return uuid.Nil, domainerrors.ErrForbidden.WithMessagef("not allowed to manage building %s", input.BuildingID)
		}

		return existing.LandlordID, nil
	case !errors.Is(err, repository.ErrTemplateNotFound):
		return uuid.Nil, translateRepoError(err)
	}

	switch {
	case actor.IsAdmin() && input.LandlordID != uuid.Nil:
		return input.LandlordID, nil
	case actor.Roles.Contains(entity.RoleLandlord):
		return actor.ID, nil
	default:
		return uuid.Nil, domainerrors.ErrForbidden.WithMessagef("only a landlord may create the first template of a building")
	}
}

// validateFields requires non-empty, unique keys.
func validateFields(fields []entity.TemplateField) error {
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		key := strings.TrimSpace(f.Key)
		if key == "" {
			return domainerrors.ErrInvalidTemplate.WithMessagef("field %d has an empty key", i)
		}
		if _, ok := seen[key]; ok {
			return domainerrors.ErrInvalidTemplate.WithMessagef("duplicate field key %q", key)
		}
		seen[key] = struct{}{}
	}

	return nil
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}

	return ids
}
