// Package validator adapts go-playground/validator to echo.
package validator

import (
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: v}
}

// Validate checks i and reports failures as VALIDATION_FAILED with a field to tag map.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Tag()
	}

	return domainerrors.ErrValidationFailed.WithDetails(map[string]any{"fields": fields})
}
