package errors

import (
	"net/http"

	"elderguard/internal/errors"
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

// WithMessage returns a copy of the error carrying a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Medical log errors
	ErrMedicalLogNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDICAL_LOG_NOT_FOUND",
		"Medical log not found",
		"",
	)

	ErrMedicalLogForbidden = NewBaseError(
		http.StatusForbidden,
		"MEDICAL_LOG_FORBIDDEN",
		"Not authorized to modify this medical log",
		"",
	)

	ErrNoteRequired = NewBaseError(
		http.StatusBadRequest,
		"NOTE_REQUIRED",
		"Note is required and cannot be empty",
		"",
	)

	// Alert errors
	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"Alert not found",
		"",
	)

	ErrAlertForbidden = NewBaseError(
		http.StatusForbidden,
		"ALERT_FORBIDDEN",
		"Not authorized to acknowledge this alert",
		"",
	)

	ErrInvalidAlert = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ALERT",
		"Alert type, severity or message is invalid",
		"",
	)

	ErrActionRequired = NewBaseError(
		http.StatusBadRequest,
		"ACTION_REQUIRED",
		"Posture action is required",
		"",
	)

	// Profile errors
	ErrNoSettings = NewBaseError(
		http.StatusBadRequest,
		"NO_SETTINGS",
		"At least one of postureTracking or alertDispatch must be provided",
		"",
	)

	// Assistant errors
	ErrQueryRequired = NewBaseError(
		http.StatusBadRequest,
		"QUERY_REQUIRED",
		"Query is required and must be a non-empty string",
		"",
	)

	ErrNotesNotArray = NewBaseError(
		http.StatusBadRequest,
		"NOTES_NOT_ARRAY",
		"Notes must be an array",
		"",
	)

	ErrNotesRequired = NewBaseError(
		http.StatusBadRequest,
		"NOTES_REQUIRED",
		"Notes array cannot be empty",
		"",
	)

	ErrTextRequired = NewBaseError(
		http.StatusBadRequest,
		"TEXT_REQUIRED",
		"Text is required for TTS",
		"",
	)

	ErrTextTooLong = NewBaseError(
		http.StatusBadRequest,
		"TEXT_TOO_LONG",
		"Text too long for TTS. Maximum 2000 characters.",
		"",
	)

	ErrTTSFailed = NewBaseError(
		http.StatusInternalServerError,
		"TTS_FAILED",
		"Text-to-speech service failed",
		"",
	)

	// Authentication errors
	ErrTokenMissing = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MISSING",
		"Unauthorized: No token provided",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expired. Please log in again.",
		"",
	)

	ErrTokenRevoked = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REVOKED",
		"Token revoked. Please log in again.",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Unauthorized: Invalid authentication token",
		"",
	)

	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"Authentication required",
		"",
	)

	// General errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Request body is malformed",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a Firestore execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a datastore-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the underlying datastore error.
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

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Datastore operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// NewForbiddenRoleError builds the 403 returned by role gates, naming the rejected role.
func NewForbiddenRoleError(role string) *BaseError {
	return ErrForbidden.WithMessage("Forbidden: " + role + " role cannot perform this action")
}
