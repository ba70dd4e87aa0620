// Package errors defines application errors carried from the core to the delivery layer.
package errors

import (
	"net/http"

	"devicestore/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Messaging-related errors
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"notification permission was not granted",
		"",
	)

	ErrProviderUnavailable = NewBaseError(
		http.StatusConflict,
		"PROVIDER_UNAVAILABLE",
		"the configured provider does not support this operation",
		"",
	)

	// Identity-related errors
	ErrInvalidIDToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ID_TOKEN",
		"invalid or expired ID token",
		"",
	)

	ErrNotSignedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_SIGNED_IN",
		"no user is signed in",
		"",
	)

	// Registry-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"device registry transaction failed",
		"",
	)

	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ARGUMENT",
		"invalid argument",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// TransactionError reports a failed read-modify-write of a user's device document.
// It matches ErrTransactionFailed with errors.Is and unwraps to the store error.
type TransactionError struct {
	err     error
	details string
}

// NewTransactionError wraps a store failure.
func NewTransactionError(err error, details string) *TransactionError {
	return &TransactionError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *TransactionError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap returns the store error.
func (e *TransactionError) Unwrap() error {
	return e.err
}

// Is reports whether target is ErrTransactionFailed.
func (e *TransactionError) Is(target error) bool {
	return target == ErrTransactionFailed
}

// HTTPCode returns the HTTP status code
func (e *TransactionError) HTTPCode() int {
	return ErrTransactionFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *TransactionError) ErrorCode() string {
	return ErrTransactionFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *TransactionError) Message() string {
	return ErrTransactionFailed.Message()
}

// Details returns detailed error information
func (e *TransactionError) Details() string {
	return e.details
}
