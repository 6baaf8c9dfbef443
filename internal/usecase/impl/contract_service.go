package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"rentflow/internal/domain/contract"
	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/repository"
	"rentflow/internal/domain/service"
	"rentflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contractService implements the ContractUsecase interface.
type contractService struct {
	contractMutator

	templateRepo repository.TemplateRepository
	roomRepo     repository.RoomRepository
	qrService    service.QRCodeService
	emitter      usecase.NotificationEmitter
	now          func() time.Time
}

// ContractServiceParams holds dependencies for ContractService, injected by Fx.
type ContractServiceParams struct {
	fx.In

	ContractRepo repository.ContractRepository
	TemplateRepo repository.TemplateRepository
	RoomRepo     repository.RoomRepository
	Locker       service.ContractLocker `optional:"true"`
	QRService    service.QRCodeService
	Emitter      usecase.NotificationEmitter
	Logger       *slog.Logger
}

// NewContractService is the constructor for contractService.
func NewContractService(params ContractServiceParams) usecase.ContractUsecase {
	return &contractService{
		contractMutator: contractMutator{
			contractRepo: params.ContractRepo,
			locker:       params.Locker,
			logger:       params.Logger,
		},
		templateRepo: params.TemplateRepo,
		roomRepo:     params.RoomRepo,
		qrService:    params.QRService,
		emitter:      params.Emitter,
		now:          time.Now,
	}
}

// Create drafts a contract for a room from the template of its building.
func (s *contractService) Create(ctx context.Context, actor entity.Actor, input usecase.CreateContractInput) (*entity.Contract, error) {
	if input.TenantID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithMessagef("tenantId is required")
	}

	room, err := s.roomRepo.FindByID(ctx, input.RoomID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	buildingID := input.BuildingID
	if buildingID == uuid.Nil {
		buildingID = room.BuildingID
	}
	if room.BuildingID != buildingID {
		return nil, domainerrors.ErrValidationFailed.WithMessagef("room %s does not belong to building %s", room.ID, buildingID)
	}
	if !actor.CanManageBuilding(room.LandlordID, buildingID) {
		return nil, domainerrors.ErrForbidden.WithMessagef("not allowed to create contracts for building %s", buildingID)
	}

	tmpl, err := s.templateRepo.FindByBuilding(ctx, buildingID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	c := &entity.Contract{
		ContactID:     input.ContactID,
		LandlordID:    room.LandlordID,
		TenantID:      input.TenantID,
		BuildingID:    buildingID,
		RoomID:        room.ID,
		TemplateID:    tmpl.ID,
		RoomSnapshot:  room.Snapshot(),
		FieldValues:   []entity.FieldValue{},
		TermIDs:       slices.Clone(tmpl.DefaultTermIDs),
		RegulationIDs: slices.Clone(tmpl.DefaultRegulationIDs),
		Roommates:     []entity.Person{},
		Bikes:         []entity.Bike{},
		Status:        entity.ContractStatusDraft,
	}
	if input.PartyA != nil {
		c.PartyA = *input.PartyA
	}
	if input.PartyB != nil {
		c.PartyB = *input.PartyB
	}
	if input.Terms != nil {
		c.Terms = *input.Terms
	}
	if c.Terms.Price == nil {
		price := room.Price
		c.Terms.Price = &price
	}

	c.Occupants = contract.BuildOccupants(c.PartyB, c.Roommates)
	if err := contract.CheckOccupancy(c.Occupants, room); err != nil {
		return nil, err
	}

	if err := s.contractRepo.Create(ctx, c); err != nil {
		return nil, translateRepoError(err)
	}

	s.loggerFor(ctx).Info("contract drafted",
		slog.String("contract_id", c.ID.String()),
		slog.String("room_id", c.RoomID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return c, nil
}

// Get returns a contract visible to the actor.
func (s *contractService) Get(ctx context.Context, actor entity.Actor, contractID uuid.UUID) (*entity.Contract, error) {
	return s.load(ctx, actor, contractID, accessView)
}

// List merges the contracts the actor rents, owns, and manages as staff.
func (s *contractService) List(ctx context.Context, actor entity.Actor) ([]*entity.Contract, error) {
	var all []*entity.Contract

	asTenant, err := s.contractRepo.FindByTenant(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenant contracts")
	}
	all = append(all, asTenant...)

	if actor.Roles.Contains(entity.RoleLandlord) || actor.IsAdmin() {
		owned, err := s.contractRepo.FindByLandlord(ctx, actor.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list landlord contracts")
		}
		all = append(all, owned...)
	}

	if actor.Roles.Contains(entity.RoleStaff) && len(actor.BuildingIDs) > 0 {
		managed, err := s.contractRepo.FindByBuildings(ctx, actor.BuildingIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list building contracts")
		}
		all = append(all, managed...)
	}

	seen := make(map[uuid.UUID]struct{}, len(all))
	contracts := make([]*entity.Contract, 0, len(all))
	for _, c := range all {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		contracts = append(contracts, c)
	}
	slices.SortStableFunc(contracts, func(a, b *entity.Contract) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return contracts, nil
}

// MissingFields reports the required template fields that are still empty.
func (s *contractService) MissingFields(ctx context.Context, actor entity.Actor, contractID uuid.UUID) ([]contract.MissingField, error) {
	c, err := s.load(ctx, actor, contractID, accessView)
	if err != nil {
		return nil, err
	}

	tmpl, err := s.templateFor(ctx, c)
	if err != nil {
		return nil, err
	}

	return contract.MissingFields(tmpl.Fields, c), nil
}

// EditData applies a landlord edit.
func (s *contractService) EditData(ctx context.Context, actor entity.Actor, contractID uuid.UUID, edit contract.LandlordEdit, version *int64) (*entity.Contract, error) {
	return s.mutate(ctx, actor, contractID, version, accessLandlord, func(c *entity.Contract) error {
		var room *entity.Room
		if edit.Roommates != nil || edit.PartyB != nil {
			r, err := s.roomRepo.FindByID(ctx, c.RoomID)
			if err != nil {
				return translateRepoError(err)
			}
			room = r
		}

		return contract.ApplyLandlordEdit(c, edit, room)
	})
}

// SignByLandlord records the landlord signature.
func (s *contractService) SignByLandlord(ctx context.Context, actor entity.Actor, contractID uuid.UUID, signatureURL string, version *int64) (*entity.Contract, error) {
	now := s.now()
	c, err := s.mutate(ctx, actor, contractID, version, accessLandlord, func(c *entity.Contract) error {
		tmpl, err := s.templateFor(ctx, c)
		if err != nil {
			return err
		}

		return contract.SignByLandlord(c, tmpl, signatureURL, now)
	})
	if err != nil {
		return nil, err
	}

	eventType := entity.EventSignedByLandlord
	if c.Status == entity.ContractStatusCompleted {
		eventType = entity.EventCompleted
	}
	s.emitter.Emit(ctx, newEvent(ctx, eventType, c, nil, now))

	return c, nil
}

// SendToTenant hands the contract over to the tenant.
func (s *contractService) SendToTenant(ctx context.Context, actor entity.Actor, contractID uuid.UUID, version *int64) (*entity.Contract, error) {
	now := s.now()
	c, err := s.mutate(ctx, actor, contractID, version, accessLandlord, func(c *entity.Contract) error {
		tmpl, err := s.templateFor(ctx, c)
		if err != nil {
			return err
		}

		return contract.SendToTenant(c, tmpl, now)
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, newEvent(ctx, entity.EventSentToTenant, c, nil, now))

	return c, nil
}

// UpdateMyData applies the tenant's own data.
func (s *contractService) UpdateMyData(ctx context.Context, actor entity.Actor, contractID uuid.UUID, update contract.TenantUpdate, version *int64) (*entity.Contract, error) {
	return s.mutate(ctx, actor, contractID, version, accessTenant, func(c *entity.Contract) error {
		room, err := s.roomRepo.FindByID(ctx, c.RoomID)
		if err != nil {
			return translateRepoError(err)
		}

		return contract.ApplyTenantUpdate(c, update, room)
	})
}

// SignByTenant records the tenant signature after identity verification.
func (s *contractService) SignByTenant(ctx context.Context, actor entity.Actor, contractID uuid.UUID, signatureURL string, version *int64) (*entity.Contract, error) {
	now := s.now()
	c, err := s.mutate(ctx, actor, contractID, version, accessTenant, func(c *entity.Contract) error {
		return contract.SignByTenant(c, signatureURL, now)
	})
	if err != nil {
		return nil, err
	}

	eventType := entity.EventSignedByTenant
	if c.Status == entity.ContractStatusCompleted {
		eventType = entity.EventCompleted
	}
	s.emitter.Emit(ctx, newEvent(ctx, eventType, c, nil, now))

	return c, nil
}

// GenerateShareQR renders the share QR code of a contract.
func (s *contractService) GenerateShareQR(ctx context.Context, actor entity.Actor, contractID uuid.UUID) ([]byte, error) {
	c, err := s.load(ctx, actor, contractID, accessView)
	if err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateContractQR(c.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contract QR code")
	}

	return png, nil
}

// templateFor resolves the template a contract was created from, falling back
// to the current template of its building.
func (s *contractService) templateFor(ctx context.Context, c *entity.Contract) (*entity.ContractTemplate, error) {
	if c.TemplateID != uuid.Nil {
		tmpl, err := s.templateRepo.FindByID(ctx, c.TemplateID)
		if err == nil {
			return tmpl, nil
		}
		if !errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, translateRepoError(err)
		}
	}

	tmpl, err := s.templateRepo.FindByBuilding(ctx, c.BuildingID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return tmpl, nil
}
