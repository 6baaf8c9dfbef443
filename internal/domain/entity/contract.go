package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractStatus is the workflow state of a contract.
type ContractStatus string

const (
	ContractStatusDraft            ContractStatus = "draft"
	ContractStatusReadyForSign     ContractStatus = "ready_for_sign"
	ContractStatusSignedByLandlord ContractStatus = "signed_by_landlord"
	ContractStatusSentToTenant     ContractStatus = "sent_to_tenant"
	ContractStatusSignedByTenant   ContractStatus = "signed_by_tenant"
	ContractStatusCompleted        ContractStatus = "completed"
)

// String returns the string representation of the status.
func (s ContractStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractStatusDraft, ContractStatusReadyForSign, ContractStatusSignedByLandlord,
		ContractStatusSentToTenant, ContractStatusSignedByTenant, ContractStatusCompleted:
		return true
	default:
		return false
	}
}

// ContractTerms holds the commercial terms of a contract.
type ContractTerms struct {
	No        string           `json:"no,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Deposit   *decimal.Decimal `json:"deposit,omitempty"`
	StartDate *time.Time       `json:"startDate,omitempty"`
	EndDate   *time.Time       `json:"endDate,omitempty"`
	SignDate  *time.Time       `json:"signDate,omitempty"`
}

// FieldValue is an explicit override for a template field, keyed by the field key.
type FieldValue struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Contract is the aggregate root of the rental workflow.
type Contract struct {
	ID         uuid.UUID // Primary identifier.
	ContactID  uuid.UUID // The accepted contact request this contract came from.
	LandlordID uuid.UUID // Owner of the building.
	TenantID   uuid.UUID // Tenant addressed by the contract.
	BuildingID uuid.UUID
	RoomID     uuid.UUID
	TemplateID uuid.UUID

	PartyA        Person         // Landlord-side declared data.
	PartyB        Person         // Tenant-side declared data.
	Terms         ContractTerms  // Commercial terms.
	RoomSnapshot  map[string]any // Room attributes copied at creation.
	FieldValues   []FieldValue   // Ordered template overrides.
	TermIDs       []uuid.UUID
	RegulationIDs []uuid.UUID

	Roommates []Person
	Bikes     []Bike
	Occupants []Person // Derived: partyB followed by named roommates.

	Status               ContractStatus
	LandlordSignatureURL string
	TenantSignatureURL   string
	CompletedAt          *time.Time
	SentToTenantAt       *time.Time

	IdentityVerification *IdentityVerification // Nil until a provider verdict is persisted.
	RenewalRequest       *RenewalRequest       // At most one, latest request.

	Version   int64 // Incremented by every persisted mutation.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsIdentityVerified reports whether the tenant has passed identity verification.
func (c *Contract) IsIdentityVerified() bool {
	return c.IdentityVerification != nil && c.IdentityVerification.Status == VerificationStatusVerified
}

// HasPendingRenewal reports whether a renewal request awaits a landlord response.
func (c *Contract) HasPendingRenewal() bool {
	return c.RenewalRequest != nil && c.RenewalRequest.Status == RenewalStatusPending
}
