package handler

import (
	"log/slog"
	"net/http"

	"rentflow/internal/delivery/api/response"
	"rentflow/internal/domain/contract"
	"rentflow/internal/domain/entity"
	"rentflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContractHandlerParams holds dependencies for ContractHandler, injected by Fx.
type ContractHandlerParams struct {
	fx.In

	ContractUC usecase.ContractUsecase
	Logger     *slog.Logger
}

// ContractHandler serves the contract lifecycle endpoints.
type ContractHandler struct {
	contractUC usecase.ContractUsecase
	logger     *slog.Logger
}

// NewContractHandler is the constructor for ContractHandler
func NewContractHandler(params ContractHandlerParams) *ContractHandler {
	return &ContractHandler{
		contractUC: params.ContractUC,
		logger:     params.Logger,
	}
}

// CreateContractRequest is the body of POST /contracts.
type CreateContractRequest struct {
	ContactID  uuid.UUID             `json:"contactId"`
	TenantID   uuid.UUID             `json:"tenantId" validate:"required"`
	BuildingID uuid.UUID             `json:"buildingId" validate:"required"`
	RoomID     uuid.UUID             `json:"roomId" validate:"required"`
	PartyA     *entity.Person        `json:"partyA"`
	PartyB     *entity.Person        `json:"partyB"`
	Terms      *entity.ContractTerms `json:"contractTerms"`
}

// EditContractRequest is the body of PATCH /contracts/:id. Absent fields are left unchanged.
type EditContractRequest struct {
	PartyA        *entity.Person        `json:"partyA"`
	PartyB        *entity.Person        `json:"partyB"`
	Terms         *entity.ContractTerms `json:"contractTerms"`
	RoomSnapshot  map[string]any        `json:"roomSnapshot"`
	FieldValues   *[]entity.FieldValue  `json:"fieldValues"`
	TermIDs       *[]uuid.UUID          `json:"termIds"`
	RegulationIDs *[]uuid.UUID          `json:"regulationIds"`
	Roommates     *[]entity.Person      `json:"roommates"`
	Bikes         *[]entity.Bike        `json:"bikes"`
	MarkReady     bool                  `json:"markReady"`
	Version       *int64                `json:"version" validate:"omitempty,min=1"`
}

// SignRequest is the body of the signing endpoints.
type SignRequest struct {
	SignatureURL string `json:"signatureUrl"`
	Version      *int64 `json:"version" validate:"omitempty,min=1"`
}

// VersionRequest carries only the optimistic-lock version.
type VersionRequest struct {
	Version *int64 `json:"version" validate:"omitempty,min=1"`
}

// MyDataRequest is the body of PATCH /contracts/:id/my-data.
type MyDataRequest struct {
	PartyB    *entity.Person   `json:"partyB"`
	Roommates *[]entity.Person `json:"roommates"`
	Bikes     *[]entity.Bike   `json:"bikes"`
	Version   *int64           `json:"version" validate:"omitempty,min=1"`
}

// Create drafts a contract for the caller's building.
func (h *ContractHandler) Create(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req CreateContractRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	created, err := h.contractUC.Create(c.Request().Context(), actor, usecase.CreateContractInput{
		ContactID:  req.ContactID,
		TenantID:   req.TenantID,
		BuildingID: req.BuildingID,
		RoomID:     req.RoomID,
		PartyA:     req.PartyA,
		PartyB:     req.PartyB,
		Terms:      req.Terms,
	})
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newContractResponse(created))
}

// List returns the contracts visible to the caller.
func (h *ContractHandler) List(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	contracts, err := h.contractUC.List(c.Request().Context(), actor)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContractListResponse(contracts))
}

// Get returns one contract.
func (h *ContractHandler) Get(c echo.Context) error {
	actor, id, err := h.target(c)
	if err != nil {
		return err
	}

	found, err := h.contractUC.Get(c.Request().Context(), actor, id)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContractResponse(found))
}

// MissingFields reports the empty required template fields.
func (h *ContractHandler) MissingFields(c echo.Context) error {
	actor, id, err := h.target(c)
	if err != nil {
		return err
	}

	missing, err := h.contractUC.MissingFields(c.Request().Context(), actor, id)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, contract.MissingDetails{Missing: missing})
}

// Edit applies a landlord edit.
func (h *ContractHandler) Edit(c echo.Context) error {
	actor, id, err := h.target(c)
	if err != nil {
		return err
	}

	var req EditContractRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	edit := contract.LandlordEdit{
		PartyA:        req.PartyA,
		PartyB:        req.PartyB,
		Terms:         req.Terms,
		RoomSnapshot:  req.RoomSnapshot,
		FieldValues:   req.FieldValues,
		TermIDs:       req.TermIDs,
		RegulationIDs: req.RegulationIDs,
		Roommates:     req.Roommates,
		Bikes:         req.Bikes,
		MarkReady:     req.MarkReady,
	}

	updated, err := h.contractUC.EditData(c.Request().Context(), actor, id, edit, req.Version)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContractResponse(updated))
}

// SignByLandlord records the landlord signature.
func (h *ContractHandler) SignByLandlord(c echo.Context) error {
	actor, id, err := h.target(c)
	if err != nil {
		return err
	}

	var req SignRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.contractUC.SignByLandlord(c.Request().Context(), actor, id, req.SignatureURL, req.Version)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTransitionResponse("landlord signature recorded", updated))
}

// SendToTenant hands the contract over to the tenant.
func (h *ContractHandler) SendToTenant(c echo.Context) error {
	actor, id, err := h.target(c)
	if err != nil {
		return err
	}

	var req VersionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.contractUC.SendToTenant(c.Request().Context(), actor, id, req.Version)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTransitionResponse("contract sent to tenant", updated))
}

// UpdateMyData applies the tenant's own data.
func (h *ContractHandler) UpdateMyData(c echo.Context) error {
	actor, id, err := h.target(c)
	if err != nil {
		return err
	}

	var req MyDataRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	update := contract.TenantUpdate{
		PartyB:    req.PartyB,
		Roommates: req.Roommates,
		Bikes:     req.Bikes,
	}

	updated, err := h.contractUC.UpdateMyData(c.Request().Context(), actor, id, update, req.Version)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newContractResponse(updated))
}

// SignByTenant records the tenant signature.
func (h *ContractHandler) SignByTenant(c echo.Context) error {
	actor, id, err := h.target(c)
	if err != nil {
		return err
	}

	var req SignRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	updated, err := h.contractUC.SignByTenant(c.Request().Context(), actor, id, req.SignatureURL, req.Version)
	if err != nil {
		return response.AppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTransitionResponse("tenant signature recorded", updated))
}

// QRCode renders the share QR code as a PNG.
func (h *ContractHandler) QRCode(c echo.Context) error {
	actor, id, err := h.target(c)
	if err != nil {
		return err
	}

	png, err := h.contractUC.GenerateShareQR(c.Request().Context(), actor, id)
	if err != nil {
		return response.AppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ContractHandler) target(c echo.Context) (entity.Actor, uuid.UUID, error) {
	actor, err := actorOf(c)
	if err != nil {
		return entity.Actor{}, uuid.Nil, err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return entity.Actor{}, uuid.Nil, err
	}

	return actor, id, nil
}
