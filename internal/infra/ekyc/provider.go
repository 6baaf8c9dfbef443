package ekyc

import (
	"log/slog"
	"net/http"

	"rentflow/config"
	"rentflow/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultProviderName = "fpt"

// Params holds dependencies for the identity provider clients, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes both collaborators of the identity orchestrator
type Result struct {
	fx.Out

	OCR         service.OCRProvider
	FaceMatcher service.FaceMatcher
}

// New builds the OCR and face match clients sharing one HTTP client.
func New(params Params) (Result, error) {
	cfg := params.Config.Identity
	if cfg == nil {
		return Result{}, errors.New("identity configuration is required")
	}
	if cfg.OCREndpoint == "" || cfg.FaceMatchEndpoint == "" {
		return Result{}, errors.New("identity provider endpoints are required")
	}

	ocr, face := newClients(cfg, http.DefaultTransport, params.Logger)

	return Result{OCR: ocr, FaceMatcher: face}, nil
}

func newClients(cfg *config.IdentityConfig, transport http.RoundTripper, logger *slog.Logger) (*ocrClient, *faceClient) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultIdentityTimeout
	}
	retries := max(cfg.Retries, 0)

	name := cfg.Provider
	if name == "" {
		name = defaultProviderName
	}

	api := newAPIClient(transport, cfg.APIKey, timeout, retries, logger.With(slog.String("provider", name)))

	return &ocrClient{api: api, endpoint: cfg.OCREndpoint, name: name},
		&faceClient{api: api, endpoint: cfg.FaceMatchEndpoint}
}
