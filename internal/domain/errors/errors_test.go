package errors

import (
	"net/http"
	"testing"

	"rentflow/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrOccupancyExceeded.WithDetails(map[string]int{"occupants": 3, "maxTenants": 2})

	assert.True(t, errors.Is(detailed, ErrOccupancyExceeded))
	assert.False(t, errors.Is(detailed, ErrRenewalConflict))
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
	assert.Equal(t, map[string]int{"occupants": 3, "maxTenants": 2}, detailed.Details())
	assert.Nil(t, ErrOccupancyExceeded.Details())
}

func TestBaseError_WithMessagef(t *testing.T) {
	err := ErrInvalidContractStatus.WithMessagef("cannot send contract in status %q", "draft")

	assert.Equal(t, `cannot send contract in status "draft"`, err.Error())
	assert.Equal(t, "INVALID_CONTRACT_STATUS", err.ErrorCode())
	assert.True(t, errors.Is(errors.Wrap(err, "send"), ErrInvalidContractStatus))
}

func TestAsTypeFindsAppError(t *testing.T) {
	wrapped := errors.Wrap(ErrRequiredFieldsMissing.WithDetails([]string{"A.name"}), "sign")

	appErr, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, CodeValidationRequiredMissing, appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "update contract")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
}
