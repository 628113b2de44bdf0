package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error with HTTP status and error code
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
		Details:    e.Details,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
		Details:    e.Details,
	}
}

// WithDetails returns a copy of the error with details attached
func (e *Error) WithDetails(details map[string]any) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   e.Internal,
		Details:    details,
	}
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

var (
	ErrBadRequest     = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrNotFound       = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrValidation     = New(http.StatusUnprocessableEntity, "validation_error", "Validation failed")
	ErrRateLimited    = New(http.StatusTooManyRequests, "rate_limited", "Too many requests, please try again later")
	ErrDeliveryFailed = New(http.StatusBadGateway, "delivery_failed", "Failed to send message. Please try again.")
	ErrInternal       = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// As extracts an *Error from err, mapping anything else to ErrInternal.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.WithInternal(err)
}

// ToHTTPError converts an error to a status code and response body
func ToHTTPError(err error) (int, map[string]any) {
	appErr := As(err)
	errBody := map[string]any{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		errBody["details"] = appErr.Details
	}
	return appErr.HTTPStatus, map[string]any{
		"error": errBody,
	}
}

// WriteJSON writes err as a JSON error response.
func WriteJSON(w http.ResponseWriter, err error) {
	status, body := ToHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// NewBadRequest creates a bad request error with a custom message
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewValidation creates a validation error carrying per-field messages
func NewValidation(fields map[string]string) *Error {
	details := make(map[string]any, len(fields))
	for k, v := range fields {
		details[k] = v
	}
	return ErrValidation.WithDetails(details)
}
