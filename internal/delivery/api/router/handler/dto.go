package handler

import (
	"time"

	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
)

// ContractResponse is the JSON shape of a contract.
type ContractResponse struct {
	ID                   uuid.UUID                    `json:"id"`
	ContactID            uuid.UUID                    `json:"contactId"`
	LandlordID           uuid.UUID                    `json:"landlordId"`
	TenantID             uuid.UUID                    `json:"tenantId"`
	BuildingID           uuid.UUID                    `json:"buildingId"`
	RoomID               uuid.UUID                    `json:"roomId"`
	TemplateID           uuid.UUID                    `json:"templateId"`
	PartyA               entity.Person                `json:"partyA"`
	PartyB               entity.Person                `json:"partyB"`
	Terms                entity.ContractTerms         `json:"contractTerms"`
	Room                 map[string]any               `json:"roomSnapshot,omitempty"`
	FieldValues          []entity.FieldValue          `json:"fieldValues"`
	TermIDs              []uuid.UUID                  `json:"termIds"`
	RegulationIDs        []uuid.UUID                  `json:"regulationIds"`
	Roommates            []entity.Person              `json:"roommates"`
	Bikes                []entity.Bike                `json:"bikes"`
	Occupants            []entity.Person              `json:"occupants"`
	Status               entity.ContractStatus        `json:"status"`
	LandlordSignatureURL string                       `json:"landlordSignatureUrl,omitempty"`
	TenantSignatureURL   string                       `json:"tenantSignatureUrl,omitempty"`
	CompletedAt          *time.Time                   `json:"completedAt,omitempty"`
	SentToTenantAt       *time.Time                   `json:"sentToTenantAt,omitempty"`
	IdentityVerification *entity.IdentityVerification `json:"identityVerification,omitempty"`
	RenewalRequest       *entity.RenewalRequest       `json:"renewalRequest,omitempty"`
	Version              int64                        `json:"version"`
	CreatedAt            time.Time                    `json:"createdAt"`
	UpdatedAt            time.Time                    `json:"updatedAt"`
}

func newContractResponse(c *entity.Contract) *ContractResponse {
	resp := &ContractResponse{
		ID:                   c.ID,
		ContactID:            c.ContactID,
		LandlordID:           c.LandlordID,
		TenantID:             c.TenantID,
		BuildingID:           c.BuildingID,
		RoomID:               c.RoomID,
		TemplateID:           c.TemplateID,
		PartyA:               c.PartyA,
		PartyB:               c.PartyB,
		Terms:                c.Terms,
		Room:                 c.RoomSnapshot,
		FieldValues:          nonNil(c.FieldValues),
		TermIDs:              nonNil(c.TermIDs),
		RegulationIDs:        nonNil(c.RegulationIDs),
		Roommates:            nonNil(c.Roommates),
		Bikes:                nonNil(c.Bikes),
		Occupants:            nonNil(c.Occupants),
		Status:               c.Status,
		LandlordSignatureURL: c.LandlordSignatureURL,
		TenantSignatureURL:   c.TenantSignatureURL,
		CompletedAt:          c.CompletedAt,
		SentToTenantAt:       c.SentToTenantAt,
		IdentityVerification: c.IdentityVerification,
		RenewalRequest:       c.RenewalRequest,
		Version:              c.Version,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}

	// Raw provider payloads stay server side.
	if iv := resp.IdentityVerification; iv != nil && iv.RawProviderResponse != nil {
		trimmed := *iv
		trimmed.RawProviderResponse = nil
		resp.IdentityVerification = &trimmed
	}

	return resp
}

func newContractListResponse(contracts []*entity.Contract) []*ContractResponse {
	out := make([]*ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, newContractResponse(c))
	}

	return out
}

// TransitionResponse answers a status transition.
type TransitionResponse struct {
	Message  string                `json:"message"`
	Status   entity.ContractStatus `json:"status"`
	Contract *ContractResponse     `json:"contract"`
}

func newTransitionResponse(message string, c *entity.Contract) *TransitionResponse {
	return &TransitionResponse{Message: message, Status: c.Status, Contract: newContractResponse(c)}
}

// IdentityResponse answers an evidence submission with the full verification record.
type IdentityResponse struct {
	Message              string                       `json:"message"`
	IdentityVerification *entity.IdentityVerification `json:"identityVerification"`
}

// RenewalResponse answers a renewal request or response.
type RenewalResponse struct {
	Message        string                 `json:"message"`
	RenewalRequest *entity.RenewalRequest `json:"renewalRequest"`
	Contract       *ContractResponse      `json:"contract"`
}

func newRenewalResponse(message string, c *entity.Contract) *RenewalResponse {
	return &RenewalResponse{Message: message, RenewalRequest: c.RenewalRequest, Contract: newContractResponse(c)}
}

// TemplateResponse is the JSON shape of a building template.
type TemplateResponse struct {
	ID                   uuid.UUID              `json:"id"`
	LandlordID           uuid.UUID              `json:"landlordId"`
	BuildingID           uuid.UUID              `json:"buildingId"`
	Fields               []entity.TemplateField `json:"fields"`
	DefaultTermIDs       []uuid.UUID            `json:"defaultTermIds"`
	DefaultRegulationIDs []uuid.UUID            `json:"defaultRegulationIds"`
	UpdatedAt            time.Time              `json:"updatedAt"`
}

func newTemplateResponse(t *entity.ContractTemplate) *TemplateResponse {
	return &TemplateResponse{
		ID:                   t.ID,
		LandlordID:           t.LandlordID,
		BuildingID:           t.BuildingID,
		Fields:               nonNil(t.Fields),
		DefaultTermIDs:       nonNil(t.DefaultTermIDs),
		DefaultRegulationIDs: nonNil(t.DefaultRegulationIDs),
		UpdatedAt:            t.UpdatedAt,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
