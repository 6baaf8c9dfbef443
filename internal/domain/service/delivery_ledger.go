package service

import (
	"context"
	"time"
)

// DeliveryLedger remembers which event deliveries already happened so
// redelivered messages are not pushed twice.
type DeliveryLedger interface {
	// Claim records key for ttl and reports whether the caller is the first to claim it.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release forgets key so a failed delivery can be retried.
	Release(ctx context.Context, key string) error
}
