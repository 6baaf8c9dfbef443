package usecase

import (
	"context"

	"rentflow/internal/domain/entity"
)

// NotificationEmitter publishes contract events without blocking the caller.
type NotificationEmitter interface {
	// Emit schedules event for delivery to every recipient topic. It never fails.
	Emit(ctx context.Context, event *entity.ContractEvent)

	// Wait blocks until pending deliveries finish or ctx is done.
	Wait(ctx context.Context) error
}
