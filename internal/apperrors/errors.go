package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class across the API.
type ErrorCode string

// AppError is the application error type carried from services up to
// the HTTP layer. Message is what the client sees; several messages
// are fixed literals the client pattern-matches on, so they must not
// be reworded.
type AppError struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Details  any       `json:"details,omitempty"`
	Err      error     `json:"-"`
	HTTPCode int       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details any) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Predeclared errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrInvalidCode        = New(CodeInvalidCode, "Invalid or expired code", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)

	// Accounts
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrAccountNotFound    = New(CodeAccountNotFound, "Account not found", http.StatusNotFound)

	// Profile completeness. The client routes into the signup wizard
	// based on these exact message literals.
	ErrProfilePhotoMissing = New(CodeProfileIncomplete, "PROFILE PHOTO NOT ADDED", http.StatusForbidden)
	ErrProfileNotUpdated   = New(CodeProfileIncomplete, "PROFILE NOT UPDATED", http.StatusForbidden)
	ErrSpecialtyMissing    = New(CodeProfileIncomplete, "SPECIALTY NOT ADDED", http.StatusForbidden)

	// Providers
	ErrProviderNotFound   = New(CodeNotFound, "Provider not found", http.StatusNotFound)
	ErrProviderNotPending = New(CodeInvalidStatus, "Provider application already resolved", http.StatusConflict)

	// Schools
	ErrSchoolNotFound        = New(CodeNotFound, "School not found", http.StatusNotFound)
	ErrSchoolAlreadyDisabled = New(CodeInvalidStatus, "School is already disabled", http.StatusConflict)

	// Partners
	ErrPartnerNotFound = New(CodeNotFound, "Partner not found", http.StatusNotFound)

	// Specialties
	ErrSpecialtyNotFound      = New(CodeNotFound, "Specialty not found", http.StatusNotFound)
	ErrSpecialtyAlreadyExists = New(CodeAlreadyExists, "Specialty already exists", http.StatusConflict)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Files
	ErrFileTooLarge    = New(CodeFileTooLarge, "File too large", http.StatusBadRequest)
	ErrInvalidFileType = New(CodeInvalidFile, "Invalid file type", http.StatusBadRequest)
)

func ValidationError(details any) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}
