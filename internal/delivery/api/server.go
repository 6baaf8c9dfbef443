// Package api serves the public contract API over HTTP.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"rentflow/config"
	"rentflow/internal/delivery"
	apimiddleware "rentflow/internal/delivery/api/middleware"
	"rentflow/internal/delivery/api/router"
	"rentflow/internal/delivery/api/validator"
	"rentflow/internal/delivery/middleware"
	"rentflow/internal/domain/lifecycle"
	"rentflow/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the echo server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho returns an echo instance with the middleware chain, error handler
// and validator installed but no routes.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: recover first, request ID before the access log.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORS())
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop runs before the emitter's drain hook since fx stops in reverse construction order.
func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
