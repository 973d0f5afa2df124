package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = fmt.Errorf("unexpected token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")
	ErrTokenIsNotRefresh    = fmt.Errorf("token is not a refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("token is not an access token")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("malformed authorization header")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")

	// Request context
	ErrUserIDNotFoundInContext    = fmt.Errorf("user id not found in request context")
	ErrCompanyIDNotFoundInContext = fmt.Errorf("company id not found in request context")

	// Generic
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
)

// InvalidInputError is a validation failure that should surface as 400
// with its message intact.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError carries an explicit transport status. Services return it when
// the default sentinel mapping is not specific enough.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string { return e.Message }
func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

// DependencyConflictError is a domain-rule refusal, not a transport
// failure: a shared resource cannot be deleted while dependents exist.
// It renders as HTTP 200 with a success:false envelope so callers can
// show the blocking counts.
type DependencyConflictError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

func (e *DependencyConflictError) Error() string { return e.Message }

func NewDependencyConflictError(code, message string, details map[string]interface{}) *DependencyConflictError {
	return &DependencyConflictError{Code: code, Message: message, Details: details}
}

// StatusForError maps an error to the transport status used at the
// controller boundary.
func StatusForError(err error) int {
	switch err {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrUnauthorized, ErrInvalidCredentials, ErrEmptyAuthHeader,
		ErrInvalidAuthHeader, ErrInvalidToken, ErrTokenExpired,
		ErrTokenNotYetValid, ErrTokenIsNotRefresh, ErrTokenIsNotAccess:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
