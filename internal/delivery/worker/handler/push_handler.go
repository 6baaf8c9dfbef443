// Package handler holds the worker's push endpoints.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"rentflow/config"
	deliverycontext "rentflow/internal/delivery/context"
	"rentflow/internal/domain/constants"
	"rentflow/internal/domain/entity"
	"rentflow/internal/domain/service"
	"rentflow/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// deliveryTTL bounds how long a delivered event is remembered for deduplication.
const deliveryTTL = 24 * time.Hour

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed OIDC token for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler forwards contract events from Pub/Sub to device push topics.
type PushHandler struct {
	verifyToken bool
	audience    string
	validate    tokenValidator
	sender      service.PushSender
	ledger      service.DeliveryLedger
	logger      *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Sender service.PushSender     `optional:"true"`
	Ledger service.DeliveryLedger `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate: idtoken.Validate,
		sender:   params.Sender,
		ledger:   params.Ledger,
		logger:   params.Logger,
	}
	if params.Config.Worker != nil {
		h.verifyToken = params.Config.Worker.VerifyToken
		h.audience = params.Config.Worker.Audience
	}

	return h
}

// HandlePush acknowledges with 200 when the event was delivered or can never
// be, and with 503 when Pub/Sub should redeliver.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyToken {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.ContractEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse contract event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	topics := h.pushTopics(&pushMsg, &event)
	reqLogger.Info("[Worker] Processing contract event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
		slog.String("contract_id", event.ContractID.String()),
		slog.Any("topics", topics),
	)

	if err := h.deliver(ctx, &event, topics); err != nil {
		reqLogger.Error("[Worker] Failed to deliver contract event",
			slog.String("event_id", event.ID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the event, then the request header.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *entity.ContractEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.EventAttributeRequestID]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// pushTopics maps the broadcast topic of the message onto FCM topic names.
// Messages without a topic attribute fan out to every recipient of the event.
func (h *PushHandler) pushTopics(pushMsg *pubsub.PushMessage, event *entity.ContractEvent) []string {
	if topic := pushMsg.Message.Attributes[constants.EventAttributeTopic]; topic != "" {
		userID, ok := strings.CutPrefix(topic, constants.UserTopicPrefix)
		if !ok || userID == "" {
			return nil
		}

		return []string{constants.PushTopicPrefix + userID}
	}

	recipients := event.Recipients()
	topics := make([]string, 0, len(recipients))
	for _, id := range recipients {
		topics = append(topics, constants.PushTopicPrefix+id.String())
	}

	return topics
}

func (h *PushHandler) deliver(ctx context.Context, event *entity.ContractEvent, topics []string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	if h.sender == nil {
		logger.Warn("[Worker] Push sender not configured, dropping event", slog.String("event_id", event.ID.String()))

		return nil
	}

	title, body := pushContent(event)
	data := map[string]string{
		constants.EventAttributeEventID:    event.ID.String(),
		constants.EventAttributeType:       string(event.Type),
		constants.EventAttributeContractID: event.ContractID.String(),
		"status":                           string(event.Status),
	}

	var failed error
	for _, topic := range topics {
		key := event.ID.String() + ":" + topic
		if h.ledger != nil {
			first, err := h.ledger.Claim(ctx, key, deliveryTTL)
			if err != nil {
				logger.Warn("[Worker] Delivery ledger unavailable", slog.Any("error", err))
			} else if !first {
				logger.Info("[Worker] Skipping duplicate delivery", slog.String("topic", topic))

				continue
			}
		}

		err := h.sender.SendToTopic(ctx, topic, title, body, data)
		if err == nil {
			continue
		}
		if errors.Is(err, service.ErrPushRejected) {
			logger.Warn("[Worker] Push rejected", slog.String("topic", topic), slog.Any("error", err))

			continue
		}

		if h.ledger != nil {
			if relErr := h.ledger.Release(ctx, key); relErr != nil {
				logger.Warn("[Worker] Failed to release delivery", slog.Any("error", relErr))
			}
		}
		failed = newRetryableError(errors.Wrapf(err, "push to %s", topic))
	}

	return failed
}

// pushContent returns the notification title and body for event.
func pushContent(event *entity.ContractEvent) (title, body string) {
	switch event.Type {
	case entity.EventSignedByLandlord:
		return "Contract signed", "The landlord has signed your contract."
	case entity.EventSentToTenant:
		return "Contract ready", "A contract is waiting for your details and signature."
	case entity.EventIdentityVerified:
		return "Identity verified", "Identity verification passed. The contract can now be signed."
	case entity.EventIdentityFailed:
		return "Identity check failed", "Identity verification did not pass. Please review and resubmit."
	case entity.EventSignedByTenant:
		return "Contract signed", "The tenant has signed the contract."
	case entity.EventCompleted:
		return "Contract completed", "Both parties have signed. The contract is now in effect."
	case entity.EventRenewalRequested:
		return "Renewal requested", "A renewal has been requested for your contract."
	case entity.EventRenewalResponded:
		return "Renewal answered", "The renewal request has been answered."
	default:
		return "Contract update", "Your contract has been updated."
	}
}

// verifyPubSubToken validates the OIDC token Pub/Sub attaches to push requests.
// The configured audience wins; otherwise the endpoint URL is expected.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
