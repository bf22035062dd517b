package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Normalization error codes (RECORD_*)
const (
	RecordInvalidShape ErrorCode = "RECORD_001"
)

// Insights error codes (INSIGHT_*)
const (
	InsightsInvalidInput ErrorCode = "INSIGHT_001"
)

// Bank-link error codes (LINK_*)
const (
	LinkInvalidToken       ErrorCode = "LINK_001"
	LinkExpiredToken       ErrorCode = "LINK_002"
	LinkInvalidTokenType   ErrorCode = "LINK_003"
	LinkUnknownInstitution ErrorCode = "LINK_004"
	LinkInvalidAccessToken ErrorCode = "LINK_005"
)

// CSV import error codes (IMPORT_*)
const (
	ImportMissingFile    ErrorCode = "IMPORT_001"
	ImportUnreadableFile ErrorCode = "IMPORT_002"
	ImportFileTooLarge   ErrorCode = "IMPORT_003"
	ImportTooManyRows    ErrorCode = "IMPORT_004"
)

// Aggregator error codes (AGGREGATOR_*)
const (
	AggregatorRequestFailed ErrorCode = "AGGREGATOR_001"
	AggregatorUnavailable   ErrorCode = "AGGREGATOR_002"
)

// Assistant error codes (ASSISTANT_*)
const (
	AssistantRequestFailed ErrorCode = "ASSISTANT_001"
	AssistantUnavailable   ErrorCode = "ASSISTANT_002"
	AssistantDisabled      ErrorCode = "ASSISTANT_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemNotFound           ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Normalization errors
	RecordInvalidShape: "Transaction record must be an object",

	// Insights errors
	InsightsInvalidInput: "Insights input must be an array of transactions",

	// Bank-link errors
	LinkInvalidToken:       "Invalid or malformed token",
	LinkExpiredToken:       "Token has expired",
	LinkInvalidTokenType:   "Token is not valid for this operation",
	LinkUnknownInstitution: "Unknown institution",
	LinkInvalidAccessToken: "Invalid access token",

	// CSV import errors
	ImportMissingFile:    "A file upload is required",
	ImportUnreadableFile: "Uploaded file could not be read as CSV",
	ImportFileTooLarge:   "Uploaded file exceeds the maximum allowed size",
	ImportTooManyRows:    "Uploaded file exceeds the maximum allowed row count",

	// Aggregator errors
	AggregatorRequestFailed: "Banking aggregator request failed",
	AggregatorUnavailable:   "Banking aggregator is temporarily unavailable",

	// Assistant errors
	AssistantRequestFailed: "Assistant request failed",
	AssistantUnavailable:   "Assistant is temporarily unavailable",
	AssistantDisabled:      "Assistant is not configured on this server",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
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
