package contract

import (
	"strings"
	"time"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/normalize"

	"github.com/google/uuid"
)

// Every function in this file validates all guards before touching the
// contract, so a returned error leaves it unmodified.

// LandlordEdit is a landlord-side edit. Nil fields are left unchanged.
type LandlordEdit struct {
	PartyA        *entity.Person
	PartyB        *entity.Person
	Terms         *entity.ContractTerms
	RoomSnapshot  map[string]any
	FieldValues   *[]entity.FieldValue
	TermIDs       *[]uuid.UUID
	RegulationIDs *[]uuid.UUID

	Roommates *[]entity.Person
	Bikes     *[]entity.Bike

	// MarkReady moves a draft to ready_for_sign.
	MarkReady bool
}

// IsStructural reports whether the edit touches contract content that is
// frozen once the contract leaves draft.
func (e LandlordEdit) IsStructural() bool {
	return e.PartyA != nil || e.PartyB != nil || e.Terms != nil || e.RoomSnapshot != nil ||
		e.FieldValues != nil || e.TermIDs != nil || e.RegulationIDs != nil
}

// ApplyLandlordEdit applies edit to c. Structural changes require draft;
// roommates and bikes may change in any status within the room capacity.
func ApplyLandlordEdit(c *entity.Contract, edit LandlordEdit, room *entity.Room) error {
	if edit.IsStructural() && !CanPerform(OpEditStructure, c.Status) {
		return domainerrors.ErrStructuralEditNotAllowed.
			WithMessagef("contract content can only be edited in draft, contract is %s", c.Status).
			WithDetails(StatusDetails{Status: c.Status, Allowed: AllowedStatuses(OpEditStructure)})
	}
	if edit.MarkReady {
		if err := CheckStatus(OpMarkReady, c.Status); err != nil {
			return err
		}
	}

	partyB := c.PartyB
	if edit.PartyB != nil {
		partyB = *edit.PartyB
	}
	roommates := c.Roommates
	if edit.Roommates != nil {
		roommates = SanitizeRoommates(*edit.Roommates)
	}
	occupants := BuildOccupants(partyB, roommates)
	if edit.Roommates != nil || edit.PartyB != nil {
		if err := CheckOccupancy(occupants, room); err != nil {
			return err
		}
	}

	if edit.PartyA != nil {
		c.PartyA = *edit.PartyA
	}
	if edit.Terms != nil {
		c.Terms = *edit.Terms
	}
	if edit.RoomSnapshot != nil {
		c.RoomSnapshot = edit.RoomSnapshot
	}
	if edit.FieldValues != nil {
		c.FieldValues = *edit.FieldValues
	}
	if edit.TermIDs != nil {
		c.TermIDs = *edit.TermIDs
	}
	if edit.RegulationIDs != nil {
		c.RegulationIDs = *edit.RegulationIDs
	}
	if edit.Bikes != nil {
		c.Bikes = SanitizeBikes(*edit.Bikes)
	}
	c.PartyB = partyB
	c.Roommates = roommates
	c.Occupants = occupants

	if edit.MarkReady {
		c.Status = entity.ContractStatusReadyForSign
	}

	return nil
}

// SignByLandlord records the landlord signature once every required template
// field is filled. A contract the tenant already signed becomes completed.
func SignByLandlord(c *entity.Contract, tmpl *entity.ContractTemplate, signatureURL string, now time.Time) error {
	signatureURL = strings.TrimSpace(signatureURL)
	if signatureURL == "" {
		return domainerrors.ErrSignatureRequired
	}
	if err := CheckStatus(OpSignByLandlord, c.Status); err != nil {
		return err
	}
	if err := ValidateRequired(tmpl, c); err != nil {
		return err
	}

	c.LandlordSignatureURL = signatureURL
	if c.Status == entity.ContractStatusSignedByTenant {
		c.Status = entity.ContractStatusCompleted
		c.CompletedAt = &now

		return nil
	}
	c.Status = entity.ContractStatusSignedByLandlord

	return nil
}

// SendToTenant hands the contract to the tenant once every required template
// field is filled.
func SendToTenant(c *entity.Contract, tmpl *entity.ContractTemplate, now time.Time) error {
	if err := CheckStatus(OpSendToTenant, c.Status); err != nil {
		return err
	}
	if err := ValidateRequired(tmpl, c); err != nil {
		return err
	}

	c.Status = entity.ContractStatusSentToTenant
	c.SentToTenantAt = &now

	return nil
}

// TenantUpdate is a tenant-side edit. Nil fields are left unchanged.
type TenantUpdate struct {
	PartyB    *entity.Person
	Roommates *[]entity.Person
	Bikes     *[]entity.Bike
}

// ApplyTenantUpdate applies the tenant's own data, rebuilds occupants and
// enforces the room capacity. Identity fields of partyB are locked once verified.
func ApplyTenantUpdate(c *entity.Contract, update TenantUpdate, room *entity.Room) error {
	if err := CheckStatus(OpUpdateMyData, c.Status); err != nil {
		return err
	}

	partyB := c.PartyB
	if update.PartyB != nil {
		partyB = trimPerson(*update.PartyB)
		if c.IsIdentityVerified() && identityFieldsChanged(c.PartyB, partyB) {
			return domainerrors.ErrPartyBLocked
		}
	}
	roommates := c.Roommates
	if update.Roommates != nil {
		roommates = SanitizeRoommates(*update.Roommates)
	}
	bikes := c.Bikes
	if update.Bikes != nil {
		bikes = SanitizeBikes(*update.Bikes)
	}

	occupants := BuildOccupants(partyB, roommates)
	if err := CheckOccupancy(occupants, room); err != nil {
		return err
	}

	c.PartyB = partyB
	c.Roommates = roommates
	c.Bikes = bikes
	c.Occupants = occupants

	return nil
}

func identityFieldsChanged(before, after entity.Person) bool {
	if normalize.Name(before.Name) != normalize.Name(after.Name) {
		return true
	}
	if normalize.IDNumber(before.IDNumber) != normalize.IDNumber(after.IDNumber) {
		return true
	}

	b, a := normalize.DOB(before.DOB), normalize.DOB(after.DOB)
	if (b == nil) != (a == nil) || (b != nil && *b != *a) {
		return true
	}

	return normalize.Address(before.Address) != normalize.Address(after.Address)
}

// CheckIdentitySubmission guards a new identity evidence submission.
// maxAttempts <= 0 allows unlimited resubmission after a failed verdict.
func CheckIdentitySubmission(c *entity.Contract, maxAttempts int) error {
	if err := CheckStatus(OpSubmitIdentity, c.Status); err != nil {
		return err
	}
	if c.IsIdentityVerified() {
		return domainerrors.ErrIdentityAlreadyVerified
	}
	if maxAttempts > 0 && c.IdentityVerification != nil && c.IdentityVerification.Attempts >= maxAttempts {
		return domainerrors.ErrIdentityAttemptsExhausted.
			WithDetails(map[string]int{"attempts": c.IdentityVerification.Attempts, "maxAttempts": maxAttempts})
	}

	return nil
}

// RecordVerification stores a verdict, counting it towards the attempt limit.
func RecordVerification(c *entity.Contract, verification *entity.IdentityVerification) {
	attempts := 0
	if c.IdentityVerification != nil {
		attempts = c.IdentityVerification.Attempts
	}
	verification.Attempts = attempts + 1
	c.IdentityVerification = verification
}

// SignByTenant records the tenant signature after a verified identity check.
// The contract completes when the landlord signature is already present.
func SignByTenant(c *entity.Contract, signatureURL string, now time.Time) error {
	signatureURL = strings.TrimSpace(signatureURL)
	if signatureURL == "" {
		return domainerrors.ErrSignatureRequired
	}
	if err := CheckStatus(OpSignByTenant, c.Status); err != nil {
		return err
	}
	if !c.IsIdentityVerified() {
		return domainerrors.ErrIdentityNotVerified
	}

	c.TenantSignatureURL = signatureURL
	if c.LandlordSignatureURL != "" {
		c.Status = entity.ContractStatusCompleted
		c.CompletedAt = &now

		return nil
	}
	c.Status = entity.ContractStatusSignedByTenant

	return nil
}

// RenewalInput describes a renewal request.
type RenewalInput struct {
	Months     int
	Note       string
	ActorID    uuid.UUID
	ActorRole  entity.Role
	WindowDays int
}

// RequestRenewal attaches a pending renewal request to a completed contract.
// siblings are the other contracts of the same room.
func RequestRenewal(c *entity.Contract, in RenewalInput, siblings []*entity.Contract, now time.Time) error {
	if err := CheckStatus(OpRequestExtend, c.Status); err != nil {
		return err
	}
	if c.HasPendingRenewal() {
		return domainerrors.ErrRenewalAlreadyPending.WithDetails(c.RenewalRequest)
	}
	if in.Months <= 0 {
		return domainerrors.ErrValidationFailed.WithMessagef("months must be positive, got %d", in.Months)
	}
	if c.Terms.EndDate == nil {
		return domainerrors.ErrContractDatesMissing
	}

	if err := CheckRenewalWindow(DaysUntil(now, *c.Terms.EndDate), in.WindowDays); err != nil {
		return err
	}

	candidate := RequestedInterval(*c.Terms.EndDate, in.Months)
	if conflict := FindConflict(candidate, c.ID, siblings); conflict != nil {
		return ConflictError(conflict)
	}

	c.RenewalRequest = &entity.RenewalRequest{
		Months:           in.Months,
		RequestedEndDate: candidate.End,
		Note:             strings.TrimSpace(in.Note),
		Status:           entity.RenewalStatusPending,
		RequestedAt:      now,
		RequestedByID:    in.ActorID,
		RequestedByRole:  in.ActorRole,
	}

	return nil
}

// RespondRenewal approves or rejects the pending renewal request. Approval
// re-checks siblings and moves the contract end date.
func RespondRenewal(c *entity.Contract, approve bool, actorID uuid.UUID, siblings []*entity.Contract, now time.Time) error {
	if err := CheckStatus(OpRespondRenewal, c.Status); err != nil {
		return err
	}
	if !c.HasPendingRenewal() {
		return domainerrors.ErrRenewalNotPending
	}

	request := *c.RenewalRequest
	request.RespondedAt = &now
	request.RespondedByID = &actorID

	if !approve {
		request.Status = entity.RenewalStatusRejected
		c.RenewalRequest = &request

		return nil
	}

	if c.Terms.EndDate == nil {
		return domainerrors.ErrContractDatesMissing
	}
	candidate := Interval{Start: *c.Terms.EndDate, End: request.RequestedEndDate}
	if conflict := FindConflict(candidate, c.ID, siblings); conflict != nil {
		return ConflictError(conflict)
	}

	newEnd := request.RequestedEndDate
	request.Status = entity.RenewalStatusApproved
	c.RenewalRequest = &request
	c.Terms.EndDate = &newEnd

	return nil
}
