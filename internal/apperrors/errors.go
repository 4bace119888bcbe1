package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
// Cross-company lookups also surface as ErrNotFound so that existence
// of another tenant's data is never revealed.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is authenticated but not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the requested state transition is not valid for the resource.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected failure that the caller cannot correct.
var ErrInternal = errors.New("internal error")

// ErrInsufficientFunds indicates a source account balance is lower than the
// amount being moved out of it. Defined here (not in the service layer)
// because the transfer repository re-checks funds under a row lock.
var ErrInsufficientFunds = errors.New("insufficient funds")

// AppError carries an HTTP-ish status code alongside a message and a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
