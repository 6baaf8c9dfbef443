package impl

import (
	"context"
	"log/slog"
	"time"

	"rentflow/config"
	"rentflow/internal/domain/contract"
	"rentflow/internal/domain/entity"
	"rentflow/internal/domain/repository"
	"rentflow/internal/domain/service"
	"rentflow/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// renewalService implements the RenewalUsecase interface. Siblings are read in
// the same transaction that locks the contract row.
type renewalService struct {
	contractMutator

	txManager  repository.TransactionManager
	emitter    usecase.NotificationEmitter
	windowDays int
	now        func() time.Time
}

// RenewalServiceParams holds dependencies for RenewalService, injected by Fx.
type RenewalServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ContractRepo repository.ContractRepository
	Locker       service.ContractLocker `optional:"true"`
	Emitter      usecase.NotificationEmitter
	Config       *config.Config
	Logger       *slog.Logger
}

// NewRenewalService is the constructor for renewalService.
func NewRenewalService(params RenewalServiceParams) usecase.RenewalUsecase {
	windowDays := config.DefaultRenewalWindowDays
	if params.Config != nil && params.Config.Renewal != nil && params.Config.Renewal.WindowDays > 0 {
		windowDays = params.Config.Renewal.WindowDays
	}

	return &renewalService{
		contractMutator: contractMutator{
			contractRepo: params.ContractRepo,
			locker:       params.Locker,
			logger:       params.Logger,
		},
		txManager:  params.TxManager,
		emitter:    params.Emitter,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// RequestExtend attaches a pending renewal request to a completed contract.
func (s *renewalService) RequestExtend(
	ctx context.Context,
	actor entity.Actor,
	contractID uuid.UUID,
	months int,
	note string,
	version *int64,
) (*entity.Contract, error) {
	now := s.now()
	c, err := s.mutateLocked(ctx, actor, contractID, version, accessTenant, func(c *entity.Contract, siblings []*entity.Contract) error {
		return contract.RequestRenewal(c, contract.RenewalInput{
			Months:     months,
			Note:       note,
			ActorID:    actor.ID,
			ActorRole:  entity.RoleTenant,
			WindowDays: s.windowDays,
		}, siblings, now)
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, newEvent(ctx, entity.EventRenewalRequested, c, map[string]any{
		"months":           c.RenewalRequest.Months,
		"requestedEndDate": c.RenewalRequest.RequestedEndDate,
	}, now))

	return c, nil
}

// RespondToRenewal approves or rejects the pending renewal request.
func (s *renewalService) RespondToRenewal(
	ctx context.Context,
	actor entity.Actor,
	contractID uuid.UUID,
	approve bool,
	version *int64,
) (*entity.Contract, error) {
	now := s.now()
	c, err := s.mutateLocked(ctx, actor, contractID, version, accessLandlord, func(c *entity.Contract, siblings []*entity.Contract) error {
		return contract.RespondRenewal(c, approve, actor.ID, siblings, now)
	})
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, newEvent(ctx, entity.EventRenewalResponded, c, map[string]any{
		"approved": approve,
		"status":   string(c.RenewalRequest.Status),
	}, now))

	return c, nil
}

// mutateLocked runs fn inside a transaction holding the contract row lock,
// passing the live siblings of the same room.
func (s *renewalService) mutateLocked(
	ctx context.Context,
	actor entity.Actor,
	contractID uuid.UUID,
	version *int64,
	rule accessRule,
	fn func(c *entity.Contract, siblings []*entity.Contract) error,
) (*entity.Contract, error) {
	release, err := s.acquire(ctx, contractID)
	if err != nil {
		return nil, err
	}
	defer release()

	var updated *entity.Contract
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewContractRepository()

		c, err := repo.FindByIDForUpdate(ctx, contractID)
		if err != nil {
			return translateRepoError(err)
		}
		if err := authorize(actor, c, rule); err != nil {
			return err
		}
		if err := checkVersion(c, version); err != nil {
			return err
		}

		siblings, err := repo.FindLiveByRoom(ctx, c.RoomID, c.ID)
		if err != nil {
			return translateRepoError(err)
		}
		if err := fn(c, siblings); err != nil {
			return err
		}
		if err := repo.Update(ctx, c); err != nil {
			return translateRepoError(err)
		}
		updated = c

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.loggerFor(ctx).Info("renewal updated",
		slog.String("contract_id", updated.ID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("renewal_status", string(updated.RenewalRequest.Status)),
	)

	return updated, nil
}
