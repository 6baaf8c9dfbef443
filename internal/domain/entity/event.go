package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a contract lifecycle event.
type EventType string

const (
	EventSignedByLandlord EventType = "contract.signed_by_landlord"
	EventSentToTenant     EventType = "contract.sent_to_tenant"
	EventIdentityVerified EventType = "contract.identity_verified"
	EventIdentityFailed   EventType = "contract.identity_failed"
	EventSignedByTenant   EventType = "contract.signed_by_tenant"
	EventCompleted        EventType = "contract.completed"
	EventRenewalRequested EventType = "contract.renewal_requested"
	EventRenewalResponded EventType = "contract.renewal_responded"
)

// ContractEvent is broadcast to the parties of a contract after a transition.
type ContractEvent struct {
	ID         uuid.UUID      `json:"id"`                   // Unique event id, used for deduplication downstream.
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing.
	Type       EventType      `json:"type"`
	ContractID uuid.UUID      `json:"contract_id"`
	LandlordID uuid.UUID      `json:"landlord_id"`
	TenantID   uuid.UUID      `json:"tenant_id"`
	Status     ContractStatus `json:"status"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Recipients returns the user ids the event is addressed to, skipping unset ids.
func (e *ContractEvent) Recipients() []uuid.UUID {
	recipients := make([]uuid.UUID, 0, 2)
	for _, id := range []uuid.UUID{e.LandlordID, e.TenantID} {
		if id != uuid.Nil {
			recipients = append(recipients, id)
		}
	}

	return recipients
}
