package redis

import (
	"context"
	"time"

	"rentflow/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const ledgerKeyPrefix = "delivered:"

type deliveryLedger struct {
	client goredis.UniversalClient
}

// NewDeliveryLedger returns a redis-backed ledger, or nil when redis is disabled.
func NewDeliveryLedger(client *goredis.Client) service.DeliveryLedger {
	if client == nil {
		return nil
	}

	return &deliveryLedger{client: client}
}

func (l *deliveryLedger) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, ledgerKeyPrefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to claim delivery")
	}

	return ok, nil
}

func (l *deliveryLedger) Release(ctx context.Context, key string) error {
	return errors.Wrap(l.client.Del(ctx, ledgerKeyPrefix+key).Err(), "failed to release delivery")
}
