package contract

import (
	"testing"
	"time"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

func TestSignByLandlord(t *testing.T) {
	t.Parallel()

	t.Run("moves to signed_by_landlord", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusReadyForSign)
		require.NoError(t, SignByLandlord(c, testTemplate(), " https://cdn/sig-a.png ", now))
		assert.Equal(t, entity.ContractStatusSignedByLandlord, c.Status)
		assert.Equal(t, "https://cdn/sig-a.png", c.LandlordSignatureURL)
		assert.Nil(t, c.CompletedAt)
	})

	t.Run("completes after tenant signature", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusSignedByTenant)
		require.NoError(t, SignByLandlord(c, testTemplate(), "sig", now))
		assert.Equal(t, entity.ContractStatusCompleted, c.Status)
		require.NotNil(t, c.CompletedAt)
		assert.Equal(t, now, *c.CompletedAt)
	})

	t.Run("validator rejects without mutation", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusDraft)
		c.PartyB.Name = ""
		err := SignByLandlord(c, testTemplate(), "sig", now)
		assert.True(t, errors.Is(err, domainerrors.ErrRequiredFieldsMissing))
		assert.Equal(t, entity.ContractStatusDraft, c.Status)
		assert.Empty(t, c.LandlordSignatureURL)
	})

	t.Run("signature required", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusDraft)
		assert.True(t, errors.Is(SignByLandlord(c, testTemplate(), "  ", now), domainerrors.ErrSignatureRequired))
	})

	t.Run("completed is terminal", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusCompleted)
		assert.True(t, errors.Is(SignByLandlord(c, testTemplate(), "sig", now), domainerrors.ErrInvalidContractStatus))
		assert.Equal(t, entity.ContractStatusCompleted, c.Status)
	})
}

func TestSendToTenant(t *testing.T) {
	t.Parallel()

	c := completeContract(entity.ContractStatusSignedByLandlord)
	require.NoError(t, SendToTenant(c, testTemplate(), now))
	assert.Equal(t, entity.ContractStatusSentToTenant, c.Status)
	assert.Equal(t, now, *c.SentToTenantAt)

	draft := completeContract(entity.ContractStatusDraft)
	err := SendToTenant(draft, testTemplate(), now)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidContractStatus))
	assert.Nil(t, draft.SentToTenantAt)

	missing := completeContract(entity.ContractStatusReadyForSign)
	missing.RoomSnapshot = nil
	err = SendToTenant(missing, testTemplate(), now)
	assert.True(t, errors.Is(err, domainerrors.ErrRequiredFieldsMissing))
	assert.Equal(t, entity.ContractStatusReadyForSign, missing.Status)
}

func TestSignByTenant(t *testing.T) {
	t.Parallel()

	t.Run("completes when landlord signed", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusSentToTenant)
		c.LandlordSignatureURL = "landlord-sig"
		c.IdentityVerification = verified()
		require.NoError(t, SignByTenant(c, "tenant-sig", now))
		assert.Equal(t, entity.ContractStatusCompleted, c.Status)
		assert.Equal(t, now, *c.CompletedAt)
	})

	t.Run("waits for landlord otherwise", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusSentToTenant)
		c.IdentityVerification = verified()
		require.NoError(t, SignByTenant(c, "tenant-sig", now))
		assert.Equal(t, entity.ContractStatusSignedByTenant, c.Status)
		assert.Nil(t, c.CompletedAt)
	})

	t.Run("requires verified identity", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusSentToTenant)
		c.IdentityVerification = &entity.IdentityVerification{Status: entity.VerificationStatusFailed}
		err := SignByTenant(c, "tenant-sig", now)
		assert.True(t, errors.Is(err, domainerrors.ErrIdentityNotVerified))
		assert.Equal(t, entity.ContractStatusSentToTenant, c.Status)
		assert.Empty(t, c.TenantSignatureURL)
	})

	t.Run("wrong status", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusReadyForSign)
		c.IdentityVerification = verified()
		assert.True(t, errors.Is(SignByTenant(c, "tenant-sig", now), domainerrors.ErrInvalidContractStatus))
	})
}

func TestApplyLandlordEdit(t *testing.T) {
	t.Parallel()

	t.Run("structural edit in draft and mark ready", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusDraft)
		partyA := entity.Person{Name: "Chủ Nhà Mới"}
		require.NoError(t, ApplyLandlordEdit(c, LandlordEdit{PartyA: &partyA, MarkReady: true}, nil))
		assert.Equal(t, "Chủ Nhà Mới", c.PartyA.Name)
		assert.Equal(t, entity.ContractStatusReadyForSign, c.Status)
	})

	t.Run("structural edit outside draft rejected", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusSentToTenant)
		terms := entity.ContractTerms{No: "HD-2"}
		err := ApplyLandlordEdit(c, LandlordEdit{Terms: &terms}, nil)
		assert.True(t, errors.Is(err, domainerrors.ErrStructuralEditNotAllowed))
		assert.Empty(t, c.Terms.No)
	})

	t.Run("bikes editable in any status", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusCompleted)
		bikes := []entity.Bike{{Plate: "59X1-000.01"}, {Plate: " "}}
		require.NoError(t, ApplyLandlordEdit(c, LandlordEdit{Bikes: &bikes}, nil))
		assert.Len(t, c.Bikes, 1)
		assert.Equal(t, entity.ContractStatusCompleted, c.Status)
	})

	t.Run("roommates respect capacity", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusSentToTenant)
		roommates := []entity.Person{{Name: "B"}, {Name: "C"}}
		err := ApplyLandlordEdit(c, LandlordEdit{Roommates: &roommates}, &entity.Room{MaxTenants: 2})
		assert.True(t, errors.Is(err, domainerrors.ErrOccupancyExceeded))
		assert.Empty(t, c.Roommates)
	})

	t.Run("mark ready outside draft rejected", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusSentToTenant)
		err := ApplyLandlordEdit(c, LandlordEdit{MarkReady: true}, nil)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidContractStatus))
	})
}

func TestApplyTenantUpdate(t *testing.T) {
	t.Parallel()

	room := &entity.Room{MaxTenants: 2}

	t.Run("two occupants accepted", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusSentToTenant)
		roommates := []entity.Person{{Name: " Lê Thị B "}, {Name: ""}}
		bikes := []entity.Bike{{Plate: "29A-1"}}
		require.NoError(t, ApplyTenantUpdate(c, TenantUpdate{Roommates: &roommates, Bikes: &bikes}, room))
		assert.Len(t, c.Roommates, 1)
		assert.Len(t, c.Occupants, 2)
		assert.Len(t, c.Bikes, 1)
	})

	t.Run("three occupants rejected without partial write", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusSentToTenant)
		roommates := []entity.Person{{Name: "B"}, {Name: "C"}}
		bikes := []entity.Bike{{Plate: "29A-1"}}
		err := ApplyTenantUpdate(c, TenantUpdate{Roommates: &roommates, Bikes: &bikes}, room)
		assert.True(t, errors.Is(err, domainerrors.ErrOccupancyExceeded))
		assert.Empty(t, c.Roommates)
		assert.Empty(t, c.Bikes)
	})

	t.Run("only while sent to tenant", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusCompleted)
		err := ApplyTenantUpdate(c, TenantUpdate{}, room)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidContractStatus))
	})

	t.Run("identity fields locked after verification", func(t *testing.T) {
		t.Parallel()
		c := completeContract(entity.ContractStatusSentToTenant)
		c.IdentityVerification = verified()

		changed := c.PartyB
		changed.IDNumber = "999"
		err := ApplyTenantUpdate(c, TenantUpdate{PartyB: &changed}, room)
		assert.True(t, errors.Is(err, domainerrors.ErrPartyBLocked))

		contact := c.PartyB
		contact.Phone = "0909"
		require.NoError(t, ApplyTenantUpdate(c, TenantUpdate{PartyB: &contact}, room))
		assert.Equal(t, "0909", c.PartyB.Phone)
	})
}

func TestCheckIdentitySubmission(t *testing.T) {
	t.Parallel()

	c := completeContract(entity.ContractStatusSentToTenant)
	assert.NoError(t, CheckIdentitySubmission(c, 0))

	c.IdentityVerification = &entity.IdentityVerification{Status: entity.VerificationStatusFailed, Attempts: 3}
	assert.NoError(t, CheckIdentitySubmission(c, 0))
	assert.True(t, errors.Is(CheckIdentitySubmission(c, 3), domainerrors.ErrIdentityAttemptsExhausted))

	c.IdentityVerification = verified()
	assert.True(t, errors.Is(CheckIdentitySubmission(c, 0), domainerrors.ErrIdentityAlreadyVerified))

	draft := completeContract(entity.ContractStatusDraft)
	assert.True(t, errors.Is(CheckIdentitySubmission(draft, 0), domainerrors.ErrInvalidContractStatus))
}

func TestRecordVerification_CountsAttempts(t *testing.T) {
	t.Parallel()

	c := completeContract(entity.ContractStatusSentToTenant)
	RecordVerification(c, &entity.IdentityVerification{Status: entity.VerificationStatusFailed})
	RecordVerification(c, &entity.IdentityVerification{Status: entity.VerificationStatusVerified})

	assert.Equal(t, 2, c.IdentityVerification.Attempts)
	assert.True(t, c.IsIdentityVerified())
}
