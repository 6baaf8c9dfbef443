package service

import (
	"context"

	"rentflow/internal/domain/entity"
)

// Notifier publishes contract events to the broadcast channel
type Notifier interface {
	// Publish sends event to the given topic, e.g. "user:<id>"
	Publish(ctx context.Context, topic string, event *entity.ContractEvent) error

	// Close releases any resources held by the notifier
	Close() error
}
