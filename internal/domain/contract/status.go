// Package contract implements the rental contract state machine and the pure
// rules that gate its transitions.
package contract

import (
	"slices"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
)

// Operation names a guarded contract operation.
type Operation string

const (
	OpEditStructure  Operation = "edit contract content"
	OpMarkReady      Operation = "mark ready for signing"
	OpSignByLandlord Operation = "sign as landlord"
	OpSendToTenant   Operation = "send to tenant"
	OpUpdateMyData   Operation = "update tenant data"
	OpSubmitIdentity Operation = "submit identity evidence"
	OpSignByTenant   Operation = "sign as tenant"
	OpRequestExtend  Operation = "request renewal"
	OpRespondRenewal Operation = "respond to renewal"
)

var (
	allStatuses = []entity.ContractStatus{
		entity.ContractStatusDraft,
		entity.ContractStatusReadyForSign,
		entity.ContractStatusSignedByLandlord,
		entity.ContractStatusSentToTenant,
		entity.ContractStatusSignedByTenant,
		entity.ContractStatusCompleted,
	}

	// allowedFrom is the transition table. Operations absent from it are
	// unrestricted by status.
	allowedFrom = map[Operation][]entity.ContractStatus{
		OpEditStructure: {entity.ContractStatusDraft},
		OpMarkReady:     {entity.ContractStatusDraft, entity.ContractStatusReadyForSign},
		OpSignByLandlord: {
			entity.ContractStatusDraft,
			entity.ContractStatusReadyForSign,
			entity.ContractStatusSignedByLandlord,
			entity.ContractStatusSentToTenant,
			entity.ContractStatusSignedByTenant,
		},
		OpSendToTenant:   {entity.ContractStatusReadyForSign, entity.ContractStatusSignedByLandlord},
		OpUpdateMyData:   {entity.ContractStatusSentToTenant},
		OpSubmitIdentity: {entity.ContractStatusSentToTenant},
		OpSignByTenant:   {entity.ContractStatusSentToTenant, entity.ContractStatusSignedByLandlord},
		OpRequestExtend:  {entity.ContractStatusCompleted},
		OpRespondRenewal: {entity.ContractStatusCompleted},
	}

	// liveStatuses are the statuses whose date range occupies a room.
	liveStatuses = []entity.ContractStatus{
		entity.ContractStatusDraft,
		entity.ContractStatusSentToTenant,
		entity.ContractStatusSignedByTenant,
		entity.ContractStatusSignedByLandlord,
		entity.ContractStatusCompleted,
	}
)

// AllowedStatuses returns the statuses op may run from.
func AllowedStatuses(op Operation) []entity.ContractStatus {
	if allowed, ok := allowedFrom[op]; ok {
		return slices.Clone(allowed)
	}

	return slices.Clone(allStatuses)
}

// CanPerform reports whether op may run while the contract is in status.
func CanPerform(op Operation, status entity.ContractStatus) bool {
	return slices.Contains(AllowedStatuses(op), status)
}

// StatusDetails is the structured detail of a state-guard rejection.
type StatusDetails struct {
	Status  entity.ContractStatus   `json:"status"`
	Allowed []entity.ContractStatus `json:"allowed"`
}

// CheckStatus returns a state-guard error naming the current status when op
// is not allowed from it.
func CheckStatus(op Operation, status entity.ContractStatus) error {
	if CanPerform(op, status) {
		return nil
	}

	return domainerrors.ErrInvalidContractStatus.
		WithMessagef("cannot %s: contract is %s", op, status).
		WithDetails(StatusDetails{Status: status, Allowed: AllowedStatuses(op)})
}

// IsLive reports whether a contract in status occupies its room for its date range.
func IsLive(status entity.ContractStatus) bool {
	return slices.Contains(liveStatuses, status)
}

// LiveStatuses returns the statuses considered by the renewal conflict detector.
func LiveStatuses() []entity.ContractStatus {
	return slices.Clone(liveStatuses)
}
