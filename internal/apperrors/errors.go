package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that no credential was presented.
var ErrUnauthorized = errors.New("authentication required")

// ErrInvalidCredentials indicates a login attempt with an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrForbidden indicates an authenticated caller that is not entitled to the target resource.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidAttribution indicates an attribution that cannot be resolved to an owning account.
var ErrInvalidAttribution = errors.New("invalid attribution")

// ErrStorage indicates a failure of the underlying persistence layer.
var ErrStorage = errors.New("storage error")

// AppError carries an HTTP-flavoured status code alongside the underlying cause.
// errors.Is matches it against the sentinel that corresponds to its code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel matching the error's status code.
func (e *AppError) Is(target error) bool {
	switch e.Code {
	case http.StatusBadRequest:
		return target == ErrValidation
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusForbidden:
		return target == ErrForbidden
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusConflict:
		return target == ErrDuplicate
	case http.StatusInternalServerError:
		return target == ErrStorage
	}
	return false
}
