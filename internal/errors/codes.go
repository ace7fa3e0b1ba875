package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound             ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount        ErrorCode = "TRANSACTION_002"
	TransactionInvalidCategory      ErrorCode = "TRANSACTION_003"
	TransactionInvalidPaymentMethod ErrorCode = "TRANSACTION_004"
	TransactionInvalidStatus        ErrorCode = "TRANSACTION_005"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotConfigured   ErrorCode = "BUDGET_001"
	BudgetInvalidTotal    ErrorCode = "BUDGET_002"
	BudgetInvalidCategory ErrorCode = "BUDGET_003"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound            ErrorCode = "GOAL_001"
	GoalInvalidContribution ErrorCode = "GOAL_002"
	GoalExceedsTarget       ErrorCode = "GOAL_003"
	GoalAlreadyAchieved     ErrorCode = "GOAL_004"
	GoalInvalidTarget       ErrorCode = "GOAL_005"
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
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:             "Transaction not found",
	TransactionInvalidAmount:        "Invalid transaction amount",
	TransactionInvalidCategory:      "Unknown transaction category",
	TransactionInvalidPaymentMethod: "Invalid payment method",
	TransactionInvalidStatus:        "Invalid transaction status",

	// Budget errors
	BudgetNotConfigured:   "No budget data found",
	BudgetInvalidTotal:    "Total budget must not be negative",
	BudgetInvalidCategory: "Invalid budget category",

	// Goal errors
	GoalNotFound:            "Goal not found",
	GoalInvalidContribution: "Contribution amount must be positive",
	GoalExceedsTarget:       "Contribution exceeds the goal target",
	GoalAlreadyAchieved:     "Goal has already been achieved",
	GoalInvalidTarget:       "Goal target must be positive",

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
