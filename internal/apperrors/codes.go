package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeInvalidCode        ErrorCode = "INVALID_CODE"
	CodeProfileIncomplete  ErrorCode = "PROFILE_INCOMPLETE"
	CodeAccountPending     ErrorCode = "ACCOUNT_PENDING"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	// Accounts
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeAccountNotFound    ErrorCode = "ACCOUNT_NOT_FOUND"

	// Resources
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeInvalidStatus  ErrorCode = "INVALID_STATUS"
	CodeAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	CodeFileTooLarge   ErrorCode = "FILE_TOO_LARGE"
	CodeInvalidFile    ErrorCode = "INVALID_FILE_TYPE"
	CodeInternalError  ErrorCode = "INTERNAL_ERROR"
	CodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"
)
