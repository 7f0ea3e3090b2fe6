package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrNotFound      = errors.New("not_found")
	ErrUnknownUser   = errors.New("unknown_user")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrNoRowsUpdated = errors.New("no_rows_updated")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else if errors.Is(err, ErrNotFound) {
		RespondErrorWithCode(w, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil, err)
	} else {
		// Fallback for unexpected error types
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
