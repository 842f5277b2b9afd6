// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	"deliwer/internal/delivery/api/validator"
	deliverycontext "deliwer/internal/delivery/context"
	domainerrors "deliwer/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details are withheld for server and authentication failures
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrInvalidInput.ErrorCode(), message, nil)
}

// ValidationFailed returns a 400 listing the rejected fields
func ValidationFailed(c echo.Context, err error) error {
	var details any
	if fields := validator.Describe(err); fields != nil {
		details = fields
	}

	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, domainerrors.ErrUnauthorized.ErrorCode(), message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, domainerrors.ErrForbidden.ErrorCode(), message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// TooManyRequests returns a 429 error
func TooManyRequests(c echo.Context) error {
	return Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError converts domain errors to HTTP responses. Anything else is
// returned to echo's error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}
