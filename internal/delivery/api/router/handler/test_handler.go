package handler

import (
	"net/http"

	"rentflow/internal/delivery/api/response"
	"rentflow/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TestHandler mints access tokens for local development. It is only routed
// when testRoutes.enabled is set.
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(tokenSvc service.TokenService) *TestHandler {
	return &TestHandler{tokenSvc: tokenSvc}
}

// TokenRequest is the body of POST /test/token.
type TokenRequest struct {
	UserID      uuid.UUID   `json:"userId" validate:"required"`
	Roles       []string    `json:"roles" validate:"required,min=1,dive,oneof=landlord staff admin tenant"`
	BuildingIDs []uuid.UUID `json:"buildingIds"`
}

// IssueToken returns an access token for the requested subject.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, err := h.tokenSvc.GenerateAccessToken(req.UserID, req.Roles, req.BuildingIDs)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"accessToken": token,
		"tokenType":   "Bearer",
	})
}

// WhoAmI echoes the authenticated actor.
func (h *TestHandler) WhoAmI(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId":      actor.ID,
		"roles":       actor.Roles,
		"buildingIds": actor.BuildingIDs,
	})
}
