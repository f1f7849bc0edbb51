package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

const (
	// Input validation: recovered at the point of entry, the user is
	// re-prompted and dialogue state is left untouched.
	ErrCodeMalformedInput     ErrorCode = "MALFORMED_INPUT"
	ErrCodeDateParse          ErrorCode = "DATE_PARSE_ERROR"
	ErrCodeInvalidRange       ErrorCode = "INVALID_RANGE"
	ErrCodeUnresolvedLocation ErrorCode = "UNRESOLVED_LOCATION"

	// Correlation: surfaced as a generic message and the dialogue resets
	// to idle.
	ErrCodeStaleSelection ErrorCode = "STALE_SELECTION"
	ErrCodeMissingToken   ErrorCode = "MISSING_TOKEN"

	// External collaborators
	ErrCodeCollaborator ErrorCode = "COLLABORATOR_UNAVAILABLE"

	// Internal
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	ErrCodeDatabase ErrorCode = "DATABASE_ERROR"
)

// AppError is a structured error carrying a stable code alongside the
// human-readable message.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause adds a cause to the error
func (e *AppError) WithCause(err error) *AppError {
	e.cause = err
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Common error constructors

func MalformedInput(reason string) *AppError {
	return New(ErrCodeMalformedInput, reason)
}

func DateParse(field string, cause error) *AppError {
	return Wrap(ErrCodeDateParse, fmt.Sprintf("cannot parse %s", field), cause)
}

func InvalidRange(reason string) *AppError {
	return New(ErrCodeInvalidRange, reason)
}

func UnresolvedLocation(city string) *AppError {
	return New(ErrCodeUnresolvedLocation, fmt.Sprintf("no airport found for %q", city)).
		WithDetails(map[string]string{"city": city})
}

func StaleSelection(index int) *AppError {
	return New(ErrCodeStaleSelection, fmt.Sprintf("selection %d no longer matches a stored result", index))
}

func MissingToken(kind string) *AppError {
	return New(ErrCodeMissingToken, fmt.Sprintf("candidate carries no %s token", kind))
}

func Collaborator(service string, cause error) *AppError {
	return Wrap(ErrCodeCollaborator, fmt.Sprintf("collaborator unavailable: %s", service), cause)
}

func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

func Database(cause error) *AppError {
	return Wrap(ErrCodeDatabase, "database error", cause)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetCode returns the error code if the error is an AppError, otherwise returns ErrCodeInternal
func GetCode(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsValidation reports whether the error is an input-validation failure
// that should re-prompt rather than reset the dialogue.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeMalformedInput, ErrCodeDateParse, ErrCodeInvalidRange, ErrCodeUnresolvedLocation:
		return true
	}
	return false
}
