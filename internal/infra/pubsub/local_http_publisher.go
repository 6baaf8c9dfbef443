package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"rentflow/internal/domain/entity"
	"rentflow/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/contract-events-push"

// localHTTPPublisher implements Notifier by posting push envelopes to a local
// worker, simulating a Pub/Sub push subscription for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, timeout time.Duration, logger *slog.Logger) service.Notifier {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Publish posts the event to the local push endpoint
func (p *localHTTPPublisher) Publish(ctx context.Context, topic string, event *entity.ContractEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = Attributes(topic, event)
	push.Message.MessageID = event.ID.String() + "/" + topic
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("event pushed to local worker",
		slog.String("event_id", event.ID.String()),
		slog.String("topic", topic),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
