// Package errors defines application-level error types with HTTP and
// business codes attached.
package errors

import (
	"net/http"

	"draftdesk/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
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

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many sign-in attempts, try again later",
		"",
	)

	ErrSignInCancelled = NewBaseError(
		http.StatusBadRequest,
		"SIGN_IN_CANCELLED",
		"The sign-in flow was cancelled before completing",
		"",
	)

	ErrIDTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"ID_TOKEN_INVALID",
		"The provider ID token is invalid or expired",
		"",
	)

	ErrProviderMismatch = NewBaseError(
		http.StatusUnauthorized,
		"PROVIDER_MISMATCH",
		"The ID token was not issued by the expected sign-in provider",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrAuthNetwork = NewBaseError(
		http.StatusBadGateway,
		"AUTH_NETWORK",
		"The identity provider could not be reached",
		"",
	)

	// Authorization errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have access to this resource",
		"",
	)

	// Storage errors; CORS misconfiguration is kept distinct from generic
	// failure because it needs operator action, not a retry.
	ErrStorageUnauthorized = NewBaseError(
		http.StatusForbidden,
		"STORAGE_UNAUTHORIZED",
		"Storage security rules rejected the request",
		"",
	)

	ErrStorageCORS = NewBaseError(
		http.StatusBadGateway,
		"STORAGE_CORS_CONFIGURATION",
		"The storage bucket's cross-origin configuration blocks this request",
		"",
	)

	ErrStorageUnknown = NewBaseError(
		http.StatusBadGateway,
		"STORAGE_UNKNOWN",
		"The storage request failed for an ambiguous or network reason",
		"",
	)

	ErrStorageGeneral = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_GENERAL",
		"The storage request failed",
		"",
	)

	// Document errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested record does not exist",
		"",
	)

	ErrAttachmentIndex = NewBaseError(
		http.StatusBadRequest,
		"ATTACHMENT_INDEX_OUT_OF_RANGE",
		"The attachment index does not exist on this record",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)
)
