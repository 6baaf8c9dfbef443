package handler

import (
	"log/slog"
	"net/http"

	"rentflow/internal/delivery/api/response"
	"rentflow/internal/domain/entity"
	"rentflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TemplateHandlerParams holds dependencies for TemplateHandler, injected by Fx.
type TemplateHandlerParams struct {
	fx.In

	TemplateUC usecase.TemplateUsecase
	Logger     *slog.Logger
}

// TemplateHandler serves building templates.
type TemplateHandler struct {
	templateUC usecase.TemplateUsecase
	logger     *slog.Logger
}

// NewTemplateHandler is the constructor for TemplateHandler
func NewTemplateHandler(params TemplateHandlerParams) *TemplateHandler {
	return &TemplateHandler{
		templateUC: params.TemplateUC,
		logger:     params.Logger,
	}
}

// UpsertTemplateRequest is the body of PUT /buildings/:buildingId/template.
type UpsertTemplateRequest struct {
	LandlordID           uuid.UUID              `json:"landlordId"`
	Fields               []entity.TemplateField `json:"fields"`
	DefaultTermIDs       []uuid.UUID            `json:"defaultTermIds"`
	DefaultRegulationIDs []uuid.UUID            `json:"defaultRegulationIds"`
}

// Get returns the template of a building.
func (h *TemplateHandler) Get(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	buildingID, err := pathID(c, "buildingId")
	if err != nil {
		return err
	}

	tmpl, err := h.templateUC.Get(c.Request().Context(), actor, buildingID)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTemplateResponse(tmpl))
}

// Upsert replaces the template of a building.
func (h *TemplateHandler) Upsert(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	buildingID, err := pathID(c, "buildingId")
	if err != nil {
		return err
	}

	var req UpsertTemplateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tmpl, err := h.templateUC.Upsert(c.Request().Context(), actor, usecase.UpsertTemplateInput{
		LandlordID:           req.LandlordID,
		BuildingID:           buildingID,
		Fields:               req.Fields,
		DefaultTermIDs:       req.DefaultTermIDs,
		DefaultRegulationIDs: req.DefaultRegulationIDs,
	})
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTemplateResponse(tmpl))
}
