package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds returned by the service layer. Each maps to exactly one
// HTTP status at the handler boundary.
const (
	KindValidation   = "VALIDATION_ERROR"
	KindConflict     = "CONFLICT"
	KindNotFound     = "NOT_FOUND"
	KindInvalidState = "INVALID_STATE"
	KindUnauthorized = "UNAUTHORIZED"
	KindStore        = "STORE_ERROR"
)

// AppError is the single error type crossing the service boundary.
// Store failures keep their cause in Err for server-side logging; the
// cause is never serialized to clients.
type AppError struct {
	Kind    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to its transport status code.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindInvalidState:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func ConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NotFoundError(resource, id string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s %s not found", resource, id)}
}

func InvalidStateError(message string) *AppError {
	return &AppError{Kind: KindInvalidState, Message: message}
}

func UnauthorizedError(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func StoreError(message string, cause error) *AppError {
	return &AppError{Kind: KindStore, Message: message, Err: cause}
}

// AsAppError unwraps err into an *AppError, or wraps it as a store error
// so that unexpected failures never leak details to clients.
func AsAppError(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return StoreError("internal error", err)
}
