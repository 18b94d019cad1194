package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// NoErrorMessage is the message used when the server answers with a failure
// status but sends no body.
const NoErrorMessage = "<server did not send any error message>"

// AppError is the unified client error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the whole call can be retried by the caller.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the status code returned by the server (REMOTE only).
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	switch {
	case e.HTTPStatus > 0:
		return fmt.Sprintf("%s (HTTP %d): %s", e.Code, e.HTTPStatus, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// Transport creates an error for a failure below HTTP: URL assembly,
// connecting, writing the request or reading the response.
func Transport(op string, cause error) *AppError {
	return &AppError{
		Code:      ErrCodeTransport,
		Message:   fmt.Sprintf("%s failed", op),
		Retryable: true,
		Details:   map[string]any{"operation": op},
		Cause:     cause,
	}
}

// Remote creates an error for a non-success status. An empty message is
// replaced with NoErrorMessage.
func Remote(status int, message string) *AppError {
	if message == "" {
		message = NoErrorMessage
	}
	return &AppError{
		Code:       ErrCodeRemote,
		Message:    message,
		Retryable:  status >= http.StatusInternalServerError,
		HTTPStatus: status,
	}
}

// SchemaMismatch creates an error for a custom field that is missing from
// the supplied field definitions.
func SchemaMismatch(key string) *AppError {
	return &AppError{
		Code:    ErrCodeSchemaMismatch,
		Message: fmt.Sprintf("field configuration is possibly outdated since it does not contain custom field: %s", key),
		Details: map[string]any{"key": key},
	}
}

// Decode creates an error for a payload that could not be decoded.
func Decode(what string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeDecode,
		Message: fmt.Sprintf("cannot decode %s", what),
		Cause:   cause,
	}
}

// InvalidInput creates a new AppError for an invalid argument.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for struct validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// --- predicates ---

func hasCode(err error, codes ...ErrorCode) bool {
	var e *AppError
	if !stderrors.As(err, &e) {
		return false
	}
	for _, c := range codes {
		if e.Code == c {
			return true
		}
	}
	return false
}

// IsTransport reports whether err is a TRANSPORT error.
func IsTransport(err error) bool { return hasCode(err, ErrCodeTransport) }

// IsRemote reports whether err is a REMOTE error.
func IsRemote(err error) bool { return hasCode(err, ErrCodeRemote) }

// IsSchemaMismatch reports whether err is a SCHEMA_MISMATCH error.
func IsSchemaMismatch(err error) bool { return hasCode(err, ErrCodeSchemaMismatch) }

// IsDecode reports whether err is a DECODE error.
func IsDecode(err error) bool { return hasCode(err, ErrCodeDecode) }

// IsValidation reports whether err is a caller-side validation error.
func IsValidation(err error) bool { return hasCode(err, ErrCodeInvalidInput, ErrCodeMissingField) }

// AsRemote extracts the status code and server message of a REMOTE error.
func AsRemote(err error) (status int, message string, ok bool) {
	var e *AppError
	if stderrors.As(err, &e) && e.Code == ErrCodeRemote {
		return e.HTTPStatus, e.Message, true
	}
	return 0, "", false
}

// SchemaMismatchKey returns the unknown custom field key of a
// SCHEMA_MISMATCH error.
func SchemaMismatchKey(err error) (string, bool) {
	var e *AppError
	if stderrors.As(err, &e) && e.Code == ErrCodeSchemaMismatch {
		key, ok := e.Details["key"].(string)
		return key, ok
	}
	return "", false
}
