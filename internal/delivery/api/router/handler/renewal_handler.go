package handler

import (
	"log/slog"
	"net/http"

	"rentflow/internal/delivery/api/response"
	"rentflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RenewalHandlerParams holds dependencies for RenewalHandler, injected by Fx.
type RenewalHandlerParams struct {
	fx.In

	RenewalUC usecase.RenewalUsecase
	Logger    *slog.Logger
}

// RenewalHandler serves renewal requests and responses.
type RenewalHandler struct {
	renewalUC usecase.RenewalUsecase
	logger    *slog.Logger
}

// NewRenewalHandler is the constructor for RenewalHandler
func NewRenewalHandler(params RenewalHandlerParams) *RenewalHandler {
	return &RenewalHandler{
		renewalUC: params.RenewalUC,
		logger:    params.Logger,
	}
}

// RenewalRequest is the body of POST /contracts/:id/renewal.
type RenewalRequest struct {
	Months  int    `json:"months"`
	Note    string `json:"note" validate:"max=1000"`
	Version *int64 `json:"version" validate:"omitempty,min=1"`
}

// RenewalResponseRequest is the body of POST /contracts/:id/renewal/respond.
type RenewalResponseRequest struct {
	Approve *bool  `json:"approve" validate:"required"`
	Version *int64 `json:"version" validate:"omitempty,min=1"`
}

// Request asks for the contract to be extended.
func (h *RenewalHandler) Request(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RenewalRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.renewalUC.RequestExtend(c.Request().Context(), actor, id, req.Months, req.Note, req.Version)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRenewalResponse("renewal requested", updated))
}

// Respond approves or rejects the pending request.
func (h *RenewalHandler) Respond(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RenewalResponseRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.renewalUC.RespondToRenewal(c.Request().Context(), actor, id, *req.Approve, req.Version)
	if err != nil {
		return response.AppError(c, err)
	}

	message := "renewal rejected"
	if *req.Approve {
		message = "renewal approved"
	}

	return response.Success(c, http.StatusOK, newRenewalResponse(message, updated))
}
