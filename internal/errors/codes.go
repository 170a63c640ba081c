package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthEmailTaken             ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound     ErrorCode = "ACCOUNT_001"
	AccountNotOwned     ErrorCode = "ACCOUNT_002"
	AccountNameConflict ErrorCode = "ACCOUNT_003"
)

// Instrument error codes (INSTRUMENT_*)
const (
	InstrumentNotFound      ErrorCode = "INSTRUMENT_001"
	InstrumentInvalidAmount ErrorCode = "INSTRUMENT_002"
	InstrumentInvalidKind   ErrorCode = "INSTRUMENT_003"
	InstrumentInvalidStatus ErrorCode = "INSTRUMENT_004"
	InstrumentSettled       ErrorCode = "INSTRUMENT_005"
)

// Forecast error codes (FORECAST_*)
const (
	ForecastInvalidRange     ErrorCode = "FORECAST_001"
	ForecastNegativeBuffer   ErrorCode = "FORECAST_002"
	ForecastUnknownQuickKind ErrorCode = "FORECAST_003"
	ForecastDateOutsideRange ErrorCode = "FORECAST_004"
	ForecastWindowTooLarge   ErrorCode = "FORECAST_005"
)

// Settlement error codes (SETTLEMENT_*)
const (
	SettlementInvalidTimezone ErrorCode = "SETTLEMENT_001"
	SettlementFailed          ErrorCode = "SETTLEMENT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthEmailTaken:             "An account with this email already exists",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Account errors
	AccountNotFound:     "Account not found",
	AccountNotOwned:     "Account belongs to another user",
	AccountNameConflict: "An account with this name already exists",

	// Instrument errors
	InstrumentNotFound:      "Instrument not found",
	InstrumentInvalidAmount: "Instrument amount must be positive",
	InstrumentInvalidKind:   "Instrument kind must be deposit, cheque or withdrawal",
	InstrumentInvalidStatus: "Instrument status must be pending, deducted or cleared",
	InstrumentSettled:       "Instrument has already settled and cannot be modified",

	// Forecast errors
	ForecastInvalidRange:     "Start date must not be after end date",
	ForecastNegativeBuffer:   "Buffer days must not be negative",
	ForecastUnknownQuickKind: "Unknown quick range kind",
	ForecastDateOutsideRange: "Requested date is outside the projected window",
	ForecastWindowTooLarge:   "Requested projection window exceeds the allowed size",

	// Settlement errors
	SettlementInvalidTimezone: "Unknown or invalid IANA timezone",
	SettlementFailed:          "Settlement run failed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
