package errors

import (
	stderrors "errors"
)

// ErrorResponse is the error body the TestRail API sends with a failure status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToResponse converts an AppError into the wire error body.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
