package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "maintenance-system/pkg/errors"
)

// Envelope is the uniform response wrapper: success responses carry data
// and an optional message, domain-rule refusals carry a structured error
// with success=false.
type Envelope struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Message string         `json:"message,omitempty"`
	Error   *EnvelopeError `json:"error,omitempty"`
}

type EnvelopeError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func SuccessResponse(ctx echo.Context, data interface{}, message string, code int) error {
	return ctx.JSON(code, &Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// ErrorResponse translates a service error into the transport response.
// Dependency conflicts keep HTTP 200 and switch the envelope to
// success=false; everything else becomes an error status with a message.
func ErrorResponse(ctx echo.Context, err error) error {
	var conflict *apperrors.DependencyConflictError
	if errors.As(err, &conflict) {
		return ctx.JSON(http.StatusOK, &Envelope{
			Success: false,
			Error: &EnvelopeError{
				Code:    conflict.Code,
				Message: conflict.Message,
				Details: conflict.Details,
			},
		})
	}

	var invalid *apperrors.InvalidInputError
	if errors.As(err, &invalid) {
		return echo.NewHTTPError(http.StatusBadRequest, invalid.Message)
	}

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return echo.NewHTTPError(httpErr.Code, httpErr.Message)
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr
	}

	code := apperrors.StatusForError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		// constraint violations and other DB errors stay generic
		message = "internal server error"
	}
	return echo.NewHTTPError(code, message)
}
