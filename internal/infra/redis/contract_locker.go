package redis

import (
	"context"
	"log/slog"
	"time"

	"rentflow/config"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/service"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	lockKeyPrefix = "lock:contract:"
	retryInterval = 50 * time.Millisecond
)

type contractLocker struct {
	locker *redislock.Client
	ttl    time.Duration
	logger *slog.Logger
}

// LockerParams holds dependencies for the contract locker, injected by Fx
type LockerParams struct {
	fx.In

	Client *goredis.Client `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewContractLocker returns a redis-backed lock, or nil when redis is disabled.
// Callers treat a nil locker as "no cross-instance locking".
func NewContractLocker(params LockerParams) service.ContractLocker {
	if params.Client == nil {
		return nil
	}

	ttl := config.DefaultLockTTL
	if params.Config.Redis != nil && params.Config.Redis.LockTTL > 0 {
		ttl = params.Config.Redis.LockTTL
	}

	return newContractLocker(params.Client, ttl, params.Logger)
}

func newContractLocker(client goredis.UniversalClient, ttl time.Duration, logger *slog.Logger) *contractLocker {
	return &contractLocker{
		locker: redislock.New(client),
		ttl:    ttl,
		logger: logger,
	}
}

// Acquire retries until the lock is obtained, ctx is done or the lock TTL elapses.
func (l *contractLocker) Acquire(ctx context.Context, contractID uuid.UUID) (func(), error) {
	key := lockKeyPrefix + contractID.String()

	waitCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	lock, err := l.locker.Obtain(waitCtx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(retryInterval),
	})
	switch {
	case errors.Is(err, redislock.ErrNotObtained), errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		return nil, domainerrors.ErrContractVersionConflict.
			WithMessagef("contract %s is being modified by another request", contractID)
	case err != nil:
		return nil, errors.Wrapf(err, "failed to obtain lock %s", key)
	}

	release := func() {
		// The request context may already be canceled when the deferred release runs.
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()

		if err := lock.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.logger.Warn("failed to release contract lock",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}
	}

	return release, nil
}
