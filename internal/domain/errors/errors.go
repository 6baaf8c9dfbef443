package errors

import (
	"fmt"
	"net/http"

	"rentflow/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() any      // Structured detail the caller can act on (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns structured error detail
func (e *BaseError) Details() any {
	return e.details
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails and WithMessagef still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying structured detail
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessagef returns a copy with a formatted message
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
		details:   e.details,
	}
}

// Business error codes surfaced to clients.
const (
	CodeValidationRequiredMissing = "VALIDATION_REQUIRED_MISSING"
	CodeRenewalConflict           = "RENEWAL_CONFLICT"
)

// Predefined error types
var (
	// Contract-related errors
	ErrContractNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTRACT_NOT_FOUND",
		"contract not found",
		nil,
	)

	ErrInvalidContractStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONTRACT_STATUS",
		"operation not allowed in the current contract status",
		nil,
	)

	ErrRequiredFieldsMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		CodeValidationRequiredMissing,
		"required template fields are missing",
		nil,
	)

	ErrContractVersionConflict = NewBaseError(
		http.StatusConflict,
		"CONTRACT_VERSION_CONFLICT",
		"contract was modified by another request",
		nil,
	)

	ErrStructuralEditNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"STRUCTURAL_EDIT_NOT_ALLOWED",
		"contract content can only be edited while in draft",
		nil,
	)

	ErrSignatureRequired = NewBaseError(
		http.StatusBadRequest,
		"SIGNATURE_REQUIRED",
		"signature URL is required",
		nil,
	)

	ErrOccupancyExceeded = NewBaseError(
		http.StatusBadRequest,
		"OCCUPANCY_EXCEEDED",
		"occupant count exceeds the room capacity",
		nil,
	)

	ErrPartyBLocked = NewBaseError(
		http.StatusBadRequest,
		"PARTY_B_LOCKED",
		"identity fields cannot change after verification",
		nil,
	)

	// Template and room errors
	ErrTemplateNotFound = NewBaseError(
		http.StatusNotFound,
		"TEMPLATE_NOT_FOUND",
		"contract template not found for building",
		nil,
	)

	ErrInvalidTemplate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TEMPLATE",
		"template field descriptors are invalid",
		nil,
	)

	ErrRoomNotFound = NewBaseError(
		http.StatusNotFound,
		"ROOM_NOT_FOUND",
		"room not found",
		nil,
	)

	// Identity verification errors
	ErrIdentityNotVerified = NewBaseError(
		http.StatusBadRequest,
		"IDENTITY_NOT_VERIFIED",
		"tenant identity has not been verified",
		nil,
	)

	ErrIdentityAlreadyVerified = NewBaseError(
		http.StatusBadRequest,
		"IDENTITY_ALREADY_VERIFIED",
		"tenant identity is already verified",
		nil,
	)

	ErrIdentityAttemptsExhausted = NewBaseError(
		http.StatusBadRequest,
		"IDENTITY_ATTEMPTS_EXHAUSTED",
		"identity verification attempts exhausted, manual review required",
		nil,
	)

	ErrMissingIDFront = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CCCD_FRONT",
		"front image of the ID card is required",
		nil,
	)

	ErrMissingIDBack = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CCCD_BACK",
		"back image of the ID card is required",
		nil,
	)

	ErrMissingSelfie = NewBaseError(
		http.StatusBadRequest,
		"MISSING_SELFIE",
		"selfie image is required",
		nil,
	)

	ErrOCRRejected = NewBaseError(
		http.StatusBadRequest,
		"OCR_REJECTED",
		"ID card could not be read",
		nil,
	)

	ErrIdentityProviderFailed = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_PROVIDER_FAILED",
		"identity provider is unavailable, please retry",
		nil,
	)

	// Renewal errors
	ErrRenewalAlreadyPending = NewBaseError(
		http.StatusBadRequest,
		"RENEWAL_ALREADY_PENDING",
		"a renewal request is already pending",
		nil,
	)

	ErrRenewalNotPending = NewBaseError(
		http.StatusBadRequest,
		"RENEWAL_NOT_PENDING",
		"there is no pending renewal request",
		nil,
	)

	ErrRenewalOutOfWindow = NewBaseError(
		http.StatusBadRequest,
		"RENEWAL_OUT_OF_WINDOW",
		"renewal can only be requested shortly before expiry",
		nil,
	)

	ErrRenewalConflict = NewBaseError(
		http.StatusBadRequest,
		CodeRenewalConflict,
		"requested period overlaps another contract for this room",
		nil,
	)

	ErrContractDatesMissing = NewBaseError(
		http.StatusBadRequest,
		"CONTRACT_DATES_MISSING",
		"contract has no start or end date",
		nil,
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid access token",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		nil,
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		nil,
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		nil,
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
