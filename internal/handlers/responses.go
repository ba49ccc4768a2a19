package handlers

import (
	"net/http"

	"frugalfolio/internal/errors"
	"frugalfolio/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError for client and business errors,
// SendValidationError for validator output and SendSystemError for anything
// internal. Never return echo.NewHTTPError or raw errors from a handler.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse is the envelope for every successful API response.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendSuccess writes data in the success envelope with status 200.
func SendSuccess(c echo.Context, data interface{}, meta interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: meta})
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError renders validator field errors as VALIDATION_001. Errors
// that carry no field information fall back to a generic detail.
func SendValidationError(c echo.Context, err error) error {
	fields := validation.FieldMessages(err)
	if fields == nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	errorResponse := errors.NewValidationError(fields, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
