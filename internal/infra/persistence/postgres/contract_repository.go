package postgres

import (
	"context"
	"encoding/json"
	"time"

	"rentflow/internal/domain/contract"
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

// contractRepository implements the repository.ContractRepository interface.
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository is the constructor for contractRepository.
func NewContractRepository(db *gorm.DB) repository.ContractRepository {
	return &contractRepository{
		db: db,
	}
}

// Create persists a new contract.
func (repo *contractRepository) Create(ctx context.Context, c *entity.Contract) error {
	if c.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate contract id")
		}
		c.ID = id
	}
	if c.Version == 0 {
		c.Version = 1
	}

	contractM, err := fromContractDomain(c)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(contractM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithMessagef("contract %s already exists", c.ID)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithMessagef("missing required contract information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contract")
	}

	c.CreatedAt = contractM.CreatedAt
	c.UpdatedAt = contractM.UpdatedAt

	return nil
}

// FindByID retrieves a contract by its unique ID.
func (repo *contractRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a contract with a row lock held until the transaction ends.
func (repo *contractRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *contractRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Contract, error) {
	var contractM model.ContractModel

	if err := db.Where("id = ?", id).First(&contractM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find contract by ID")
	}

	return toContractDomain(&contractM)
}

// Update writes the contract when the stored version matches and bumps the version.
func (repo *contractRepository) Update(ctx context.Context, c *entity.Contract) error {
	contractM, err := fromContractDomain(c)
	if err != nil {
		return err
	}
	contractM.Version = c.Version + 1
	contractM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(contractM).
		Where("version = ?", c.Version).
		Select("*").
		Omit("id", "created_at").
		Updates(contractM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contract")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.ContractModel{}).Where("id = ?", c.ID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check contract existence")
		}
		if count == 0 {
			return repository.ErrContractNotFound
		}

		return repository.ErrVersionConflict
	}

	c.Version = contractM.Version
	c.UpdatedAt = contractM.UpdatedAt

	return nil
}

// FindLiveByRoom retrieves the dated, live contracts of a room other than excludeID.
func (repo *contractRepository) FindLiveByRoom(ctx context.Context, roomID, excludeID uuid.UUID) ([]*entity.Contract, error) {
	statuses := make([]string, 0, len(contract.LiveStatuses()))
	for _, s := range contract.LiveStatuses() {
		statuses = append(statuses, s.String())
	}

	return repo.findMany(repo.db.WithContext(ctx).
		Where("room_id = ? AND id <> ?", roomID, excludeID).
		Where("status IN ?", statuses).
		Where("start_date IS NOT NULL AND end_date IS NOT NULL").
		Order("start_date ASC"), "failed to find live contracts by room")
}

// FindByTenant retrieves the contracts addressed to a tenant.
func (repo *contractRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Contract, error) {
	return repo.findMany(repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC"), "failed to find contracts by tenant")
}

// FindByLandlord retrieves the contracts owned by a landlord.
func (repo *contractRepository) FindByLandlord(ctx context.Context, landlordID uuid.UUID) ([]*entity.Contract, error) {
	return repo.findMany(repo.db.WithContext(ctx).
		Where("landlord_id = ?", landlordID).
		Order("created_at DESC"), "failed to find contracts by landlord")
}

// FindByBuildings retrieves the contracts of the given buildings.
func (repo *contractRepository) FindByBuildings(ctx context.Context, buildingIDs []uuid.UUID) ([]*entity.Contract, error) {
	if len(buildingIDs) == 0 {
		return []*entity.Contract{}, nil
	}

	return repo.findMany(repo.db.WithContext(ctx).
		Where("building_id IN ?", buildingIDs).
		Order("created_at DESC"), "failed to find contracts by buildings")
}

func (repo *contractRepository) findMany(query *gorm.DB, errMsg string) ([]*entity.Contract, error) {
	var contractModels []*model.ContractModel

	if err := query.Find(&contractModels).Error; err != nil {
		return nil, errors.Wrap(err, errMsg)
	}

	contracts := make([]*entity.Contract, 0, len(contractModels))
	for _, contractM := range contractModels {
		c, err := toContractDomain(contractM)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}

	return contracts, nil
}

// --- Mapper Functions ---

// toContractDomain converts a GORM ContractModel to a domain Contract entity.
func toContractDomain(data *model.ContractModel) (*entity.Contract, error) {
	if data == nil {
		return nil, nil
	}

	c := &entity.Contract{
		ID:            data.ID,
		ContactID:     data.ContactID,
		LandlordID:    data.LandlordID,
		TenantID:      data.TenantID,
		BuildingID:    data.BuildingID,
		RoomID:        data.RoomID,
		TemplateID:    data.TemplateID,
		PartyA:        data.PartyA.Data(),
		PartyB:        data.PartyB.Data(),
		RoomSnapshot:  data.RoomSnapshot.Data(),
		FieldValues:   data.FieldValues,
		TermIDs:       data.TermIDs,
		RegulationIDs: data.RegulationIDs,
		Roommates:     data.Roommates,
		Bikes:         data.Bikes,
		Occupants:     data.Occupants,
		Terms: entity.ContractTerms{
			No:        data.ContractNo,
			Price:     data.Price,
			Deposit:   data.Deposit,
			StartDate: data.StartDate,
			EndDate:   data.EndDate,
			SignDate:  data.SignDate,
		},
		Status:               entity.ContractStatus(data.Status),
		LandlordSignatureURL: data.LandlordSignatureURL,
		TenantSignatureURL:   data.TenantSignatureURL,
		CompletedAt:          data.CompletedAt,
		SentToTenantAt:       data.SentToTenantAt,
		Version:              data.Version,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	if err := decodeDocument(data.IdentityVerification, &c.IdentityVerification); err != nil {
		return nil, errors.Wrap(err, "failed to decode identity verification")
	}
	if err := decodeDocument(data.RenewalRequest, &c.RenewalRequest); err != nil {
		return nil, errors.Wrap(err, "failed to decode renewal request")
	}

	return c, nil
}

// fromContractDomain converts a domain Contract entity to a GORM ContractModel.
func fromContractDomain(data *entity.Contract) (*model.ContractModel, error) {
	if data == nil {
		return nil, nil
	}

	identity, err := encodeDocument(data.IdentityVerification)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode identity verification")
	}
	renewal, err := encodeDocument(data.RenewalRequest)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode renewal request")
	}

	return &model.ContractModel{
		ID:                   data.ID,
		ContactID:            data.ContactID,
		LandlordID:           data.LandlordID,
		TenantID:             data.TenantID,
		BuildingID:           data.BuildingID,
		RoomID:               data.RoomID,
		TemplateID:           data.TemplateID,
		PartyA:               datatypes.NewJSONType(data.PartyA),
		PartyB:               datatypes.NewJSONType(data.PartyB),
		RoomSnapshot:         datatypes.NewJSONType(data.RoomSnapshot),
		FieldValues:          datatypes.NewJSONSlice(data.FieldValues),
		TermIDs:              datatypes.NewJSONSlice(data.TermIDs),
		RegulationIDs:        datatypes.NewJSONSlice(data.RegulationIDs),
		Roommates:            datatypes.NewJSONSlice(data.Roommates),
		Bikes:                datatypes.NewJSONSlice(data.Bikes),
		Occupants:            datatypes.NewJSONSlice(data.Occupants),
		ContractNo:           data.Terms.No,
		Price:                data.Terms.Price,
		Deposit:              data.Terms.Deposit,
		StartDate:            data.Terms.StartDate,
		EndDate:              data.Terms.EndDate,
		SignDate:             data.Terms.SignDate,
		Status:               data.Status.String(),
		LandlordSignatureURL: data.LandlordSignatureURL,
		TenantSignatureURL:   data.TenantSignatureURL,
		CompletedAt:          data.CompletedAt,
		SentToTenantAt:       data.SentToTenantAt,
		IdentityVerification: identity,
		RenewalRequest:       renewal,
		Version:              data.Version,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}, nil
}

// encodeDocument marshals an optional sub-record; nil becomes SQL NULL.
func encodeDocument[T any](v *T) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return datatypes.JSON(raw), nil
}

// decodeDocument unmarshals an optional sub-record, leaving *dst nil for NULL.
func decodeDocument[T any](raw datatypes.JSON, dst **T) error {
	if len(raw) == 0 || string(raw) == "null" {
		*dst = nil

		return nil
	}

	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return err
	}
	*dst = v

	return nil
}
