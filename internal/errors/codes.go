package errors

// ErrorCode is the stable, machine-readable code carried by every API error.
type ErrorCode string

// Authentication and authorization (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Request validation (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidUserID ErrorCode = "VALIDATION_005"
)

// Analytics (ANALYTICS_*)
const (
	AnalyticsInvalidScope       ErrorCode = "ANALYTICS_001"
	AnalyticsStoreUnavailable   ErrorCode = "ANALYTICS_002"
	AnalyticsChartUnavailable   ErrorCode = "ANALYTICS_003"
	AnalyticsInsightUnavailable ErrorCode = "ANALYTICS_004"
)

// System (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemNotFound           ErrorCode = "SYSTEM_005"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Dates must be formatted as YYYY-MM-DD",
	ValidationInvalidUserID: "Invalid user ID format",

	AnalyticsInvalidScope:       "The request does not resolve to a user or to all users",
	AnalyticsStoreUnavailable:   "Purchase data is temporarily unavailable. Please try again later.",
	AnalyticsChartUnavailable:   "Chart data is temporarily unavailable",
	AnalyticsInsightUnavailable: "Item price insight is temporarily unavailable",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for code, or a generic one for
// unregistered codes.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
