package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrMissingParameter = errors.New("missing parameter")
	ErrConflict         = errors.New("conflict")
	ErrInternal         = errors.New("internal server error")
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

// NewMissingParameter reports a required query parameter that was absent.
// The message format is part of the wire contract.
func NewMissingParameter(param string) *AppError {
	msg := fmt.Sprintf("Missing %s parameter", param)
	return NewAppError(ErrMissingParameter, msg, fmt.Sprintf("query parameter '%s' is required", param), nil)
}

func NewConflict(resource, field, value string) *AppError {
	msg := fmt.Sprintf("%s with %s '%s' already exists", resource, field, value)
	return NewAppError(ErrConflict, msg, msg, nil)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "An internal server error occurred", details, err)
}

// ToHTTPStatus flattens every request failure to 400. Clients of the
// previous API cannot tell not-found from conflict from a broken query,
// and that contract is kept; the base error kinds exist for logging only.
func ToHTTPStatus(err error) int {
	return http.StatusBadRequest
}

// WireMessage is the string placed in the {"error": ...} response body.
func WireMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
