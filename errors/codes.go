package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Client-side failures
const (
	// ErrCodeTransport indicates a malformed URL, a connection failure or an
	// I/O failure while writing the request or reading the response.
	ErrCodeTransport ErrorCode = "TRANSPORT"
	// ErrCodeDecode indicates a response payload that could not be decoded
	// into the requested type.
	ErrCodeDecode ErrorCode = "DECODE"
	// ErrCodeSchemaMismatch indicates a custom field in a response that the
	// supplied field definitions do not know about.
	ErrCodeSchemaMismatch ErrorCode = "SCHEMA_MISMATCH"
)

// Server-side failures
const (
	// ErrCodeRemote indicates a non-success HTTP status from the server.
	ErrCodeRemote ErrorCode = "REMOTE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates a caller precondition was violated.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTransport: true,
}

// IsRetryableCode reports whether a caller may reasonably retry the whole
// call after an error with this code. The client itself never retries.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
