// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rentflow/internal/delivery/context"
	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/repository"
	"rentflow/internal/domain/service"
	"rentflow/internal/errors"

	"github.com/google/uuid"
)

// accessRule decides whether an actor may run an operation on a loaded contract.
type accessRule int

const (
	accessView accessRule = iota
	accessLandlord
	accessTenant
)

// authorize hides contracts the actor cannot see behind a not-found error and
// rejects visible contracts the actor may not modify with a forbidden error.
func authorize(actor entity.Actor, c *entity.Contract, rule accessRule) error {
	if !actor.CanView(c) {
		return domainerrors.ErrContractNotFound
	}

	switch rule {
	case accessLandlord:
		if !actor.CanActAsLandlord(c) {
			return domainerrors.ErrForbidden.WithMessagef("only the landlord side may perform this operation")
		}
	case accessTenant:
		if !actor.CanActAsTenant(c) {
			return domainerrors.ErrForbidden.WithMessagef("only the tenant of this contract may perform this operation")
		}
	case accessView:
	}

	return nil
}

// checkVersion rejects a request built from a stale read.
func checkVersion(c *entity.Contract, version *int64) error {
	if version != nil && *version != c.Version {
		return domainerrors.ErrContractVersionConflict.
			WithMessagef("contract was modified: expected version %d, current version %d", *version, c.Version).
			WithDetails(map[string]int64{"expectedVersion": *version, "currentVersion": c.Version})
	}

	return nil
}

// translateRepoError maps persistence sentinels onto application errors.
func translateRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrContractNotFound):
		return domainerrors.ErrContractNotFound
	case errors.Is(err, repository.ErrVersionConflict):
		return domainerrors.ErrContractVersionConflict
	case errors.Is(err, repository.ErrTemplateNotFound):
		return domainerrors.ErrTemplateNotFound
	case errors.Is(err, repository.ErrRoomNotFound):
		return domainerrors.ErrRoomNotFound
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return errors.WithStack(err)
}

// contractMutator runs the load, authorize, apply, compare-and-set sequence
// shared by every single-contract mutation.
type contractMutator struct {
	contractRepo repository.ContractRepository
	locker       service.ContractLocker
	logger       *slog.Logger
}

func (m *contractMutator) load(ctx context.Context, actor entity.Actor, contractID uuid.UUID, rule accessRule) (*entity.Contract, error) {
	c, err := m.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, translateRepoError(err)
	}
	if err := authorize(actor, c, rule); err != nil {
		return nil, err
	}

	return c, nil
}

// mutate applies fn to the authorized contract and persists it. fn must not
// modify the contract when it returns an error.
func (m *contractMutator) mutate(
	ctx context.Context,
	actor entity.Actor,
	contractID uuid.UUID,
	version *int64,
	rule accessRule,
	fn func(c *entity.Contract) error,
) (*entity.Contract, error) {
	release, err := m.acquire(ctx, contractID)
	if err != nil {
		return nil, err
	}
	defer release()

	c, err := m.load(ctx, actor, contractID, rule)
	if err != nil {
		return nil, err
	}
	if err := checkVersion(c, version); err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := m.contractRepo.Update(ctx, c); err != nil {
		return nil, translateRepoError(err)
	}

	m.loggerFor(ctx).Debug("contract updated",
		slog.String("contract_id", c.ID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("status", c.Status.String()),
		slog.Int64("version", c.Version),
	)

	return c, nil
}

func (m *contractMutator) acquire(ctx context.Context, contractID uuid.UUID) (func(), error) {
	if m.locker == nil {
		return func() {}, nil
	}

	release, err := m.locker.Acquire(ctx, contractID)
	if err != nil {
		return nil, err
	}

	return release, nil
}

func (m *contractMutator) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// newEvent builds the notification for a transition of c.
func newEvent(ctx context.Context, eventType entity.EventType, c *entity.Contract, payload map[string]any, at time.Time) *entity.ContractEvent {
	return &entity.ContractEvent{
		ID:         uuid.New(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		ContractID: c.ID,
		LandlordID: c.LandlordID,
		TenantID:   c.TenantID,
		Status:     c.Status,
		Payload:    payload,
		OccurredAt: at,
	}
}
