package postgres

import (
	"context"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/repository"
	"rentflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// templateRepository implements the repository.TemplateRepository interface.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository is the constructor for templateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// FindByBuilding retrieves the template of a building.
func (repo *templateRepository) FindByBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.ContractTemplate, error) {
	var templateM model.ContractTemplateModel

	if err := repo.db.WithContext(ctx).Where("building_id = ?", buildingID).First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find template by building")
	}

	return toTemplateDomain(&templateM), nil
}

// FindByID retrieves a template by its unique ID.
func (repo *templateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContractTemplate, error) {
	var templateM model.ContractTemplateModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find template by ID")
	}

	return toTemplateDomain(&templateM), nil
}

// Save creates or replaces the template of template.BuildingID. The stored ID
// is kept on conflict and copied back onto the entity.
func (repo *templateRepository) Save(ctx context.Context, template *entity.ContractTemplate) error {
	if template.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate template id")
		}
		template.ID = id
	}

	templateM := fromTemplateDomain(template)

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "building_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"landlord_id", "fields", "default_term_ids", "default_regulation_ids", "updated_at"}),
	}).Create(templateM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save contract template")
	}

	stored, err := repo.FindByBuilding(ctx, template.BuildingID)
	if err != nil {
		return err
	}
	*template = *stored

	return nil
}

// --- Mapper Functions ---

// toTemplateDomain converts a GORM ContractTemplateModel to a domain ContractTemplate entity.
func toTemplateDomain(data *model.ContractTemplateModel) *entity.ContractTemplate {
	if data == nil {
		return nil
	}

	return &entity.ContractTemplate{
		ID:                   data.ID,
		LandlordID:           data.LandlordID,
		BuildingID:           data.BuildingID,
		Fields:               data.Fields,
		DefaultTermIDs:       data.DefaultTermIDs,
		DefaultRegulationIDs: data.DefaultRegulationIDs,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromTemplateDomain converts a domain ContractTemplate entity to a GORM ContractTemplateModel.
func fromTemplateDomain(data *entity.ContractTemplate) *model.ContractTemplateModel {
	if data == nil {
		return nil
	}

	return &model.ContractTemplateModel{
		ID:                   data.ID,
		LandlordID:           data.LandlordID,
		BuildingID:           data.BuildingID,
		Fields:               datatypes.NewJSONSlice(data.Fields),
		DefaultTermIDs:       datatypes.NewJSONSlice(data.DefaultTermIDs),
		DefaultRegulationIDs: datatypes.NewJSONSlice(data.DefaultRegulationIDs),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
