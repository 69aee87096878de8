package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrAlreadyExists    = errors.New("resource already exists")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidKey       = errors.New("invalid private key")
	ErrAddressMismatch  = errors.New("private key does not match from_address")
	ErrSubmissionFailed = errors.New("transaction submission rejected")
	ErrUnauthorized     = errors.New("unauthorized")
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrUnauthorized)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// SubmissionError wraps a chain-side rejection, keeping the node's cause
// message intact for the caller.
func SubmissionError(err error) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Message: err.Error(),
		Err:     ErrSubmissionFailed,
	}
}
