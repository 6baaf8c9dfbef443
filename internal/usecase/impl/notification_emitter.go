package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rentflow/config"
	"rentflow/internal/domain/constants"
	"rentflow/internal/domain/entity"
	"rentflow/internal/domain/service"
	"rentflow/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationEmitter publishes events in the background. A failed publish is
// logged and dropped, it never reaches the transition that emitted it.
type notificationEmitter struct {
	notifier service.Notifier
	timeout  time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NotificationEmitterParams holds dependencies for the emitter, injected by Fx.
type NotificationEmitterParams struct {
	fx.In

	Lc       fx.Lifecycle
	Notifier service.Notifier
	Config   *config.Config
	Logger   *slog.Logger
}

// NewNotificationEmitter creates the emitter and drains it on shutdown.
func NewNotificationEmitter(params NotificationEmitterParams) usecase.NotificationEmitter {
	timeout := config.DefaultNotifyTimeout
	if params.Config != nil && params.Config.Notifier != nil && params.Config.Notifier.Timeout > 0 {
		timeout = params.Config.Notifier.Timeout
	}

	emitter := &notificationEmitter{
		notifier: params.Notifier,
		timeout:  timeout,
		logger:   params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: emitter.Wait,
	})

	return emitter
}

// Emit publishes event to the topic of every recipient on a detached context.
func (e *notificationEmitter) Emit(ctx context.Context, event *entity.ContractEvent) {
	if event == nil || e.notifier == nil {
		return
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		e.logger.Warn("emitter is draining, dropping contract event",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", string(event.Type)),
		)

		return
	}
	e.wg.Add(1)
	e.mu.Unlock()

	detached := context.WithoutCancel(ctx)
	go func() {
		defer e.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("notification publish panicked",
					slog.String("event_id", event.ID.String()),
					slog.Any("panic", r),
				)
			}
		}()

		pubCtx, cancel := context.WithTimeout(detached, e.timeout)
		defer cancel()

		for _, recipient := range event.Recipients() {
			topic := constants.UserTopicPrefix + recipient.String()
			if err := e.notifier.Publish(pubCtx, topic, event); err != nil {
				e.logger.Warn("failed to publish contract event",
					slog.String("event_id", event.ID.String()),
					slog.String("event_type", string(event.Type)),
					slog.String("contract_id", event.ContractID.String()),
					slog.String("topic", topic),
					slog.Any("error", err),
				)

				continue
			}

			e.logger.Debug("contract event published",
				slog.String("event_id", event.ID.String()),
				slog.String("topic", topic),
			)
		}
	}()
}

// Wait stops accepting events and blocks until every scheduled publish has
// finished or ctx is done.
func (e *notificationEmitter) Wait(ctx context.Context) error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "pending notifications were not delivered before shutdown")
	}
}
