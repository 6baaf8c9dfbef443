package contract

import (
	"slices"
	"testing"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStatus_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op      Operation
		allowed []entity.ContractStatus
	}{
		{op: OpEditStructure, allowed: []entity.ContractStatus{entity.ContractStatusDraft}},
		{op: OpSendToTenant, allowed: []entity.ContractStatus{entity.ContractStatusReadyForSign, entity.ContractStatusSignedByLandlord}},
		{op: OpUpdateMyData, allowed: []entity.ContractStatus{entity.ContractStatusSentToTenant}},
		{op: OpSubmitIdentity, allowed: []entity.ContractStatus{entity.ContractStatusSentToTenant}},
		{op: OpSignByTenant, allowed: []entity.ContractStatus{entity.ContractStatusSentToTenant, entity.ContractStatusSignedByLandlord}},
		{op: OpRequestExtend, allowed: []entity.ContractStatus{entity.ContractStatusCompleted}},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			t.Parallel()

			for _, status := range allStatuses {
				err := CheckStatus(tt.op, status)
				if slices.Contains(tt.allowed, status) {
					assert.NoError(t, err, status)

					continue
				}

				require.Error(t, err, status)
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidContractStatus))
				assert.Contains(t, err.Error(), string(status))
			}
		})
	}
}

func TestCheckStatus_SignByLandlordRejectsOnlyCompleted(t *testing.T) {
	t.Parallel()

	for _, status := range allStatuses {
		err := CheckStatus(OpSignByLandlord, status)
		if status == entity.ContractStatusCompleted {
			assert.Error(t, err)
		} else {
			assert.NoError(t, err, status)
		}
	}
}

func TestCheckStatus_Details(t *testing.T) {
	t.Parallel()

	err := CheckStatus(OpSendToTenant, entity.ContractStatusDraft)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	details, ok := appErr.Details().(StatusDetails)
	require.True(t, ok)
	assert.Equal(t, entity.ContractStatusDraft, details.Status)
	assert.ElementsMatch(t, []entity.ContractStatus{entity.ContractStatusReadyForSign, entity.ContractStatusSignedByLandlord}, details.Allowed)
}

func TestIsLive(t *testing.T) {
	t.Parallel()

	assert.True(t, IsLive(entity.ContractStatusDraft))
	assert.True(t, IsLive(entity.ContractStatusCompleted))
	assert.True(t, IsLive(entity.ContractStatusSignedByTenant))
	assert.False(t, IsLive(entity.ContractStatusReadyForSign))
	assert.False(t, IsLive(entity.ContractStatus("terminated")))
}
