package validator

import (
	"testing"

	domainerrors "rentflow/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renewalBody struct {
	Months int    `json:"months" validate:"required,min=1,max=120"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

func TestValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&renewalBody{Months: 6}))

	err := v.Validate(&renewalBody{Months: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	details, ok := appErr.Details().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"months": "required"}, details["fields"])
}
