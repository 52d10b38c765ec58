package dto

import (
	"healthreach_backend/internal/models"
)

// CheckEmailRequest asks whether an account exists for an email.
type CheckEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

// CreateAccountRequest is the first signup wizard step.
type CreateAccountRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=8"`
	FullName          string `json:"fullName" validate:"required"`
	ProfessionalTitle string `json:"professionalTitle"`
}

// SubmitSignupCodeRequest verifies the emailed one-time code.
type SubmitSignupCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the bio wizard step: office phone and bio
// are both required before the profile counts as updated.
type UpdateProfileRequest struct {
	OfficePhoneNumber string `json:"officePhoneNumber" validate:"required"`
	Bio               string `json:"bio" validate:"required"`
	ProfessionalTitle string `json:"professionalTitle"`
}

// AddSpecialtyRequest is the final wizard step: exactly one specialty.
type AddSpecialtyRequest struct {
	SpecialtyID string `json:"specialtyId" validate:"required"`
}

type RecoverAccountRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SubmitRecoveryCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type ResetTokenResponse struct {
	ResetToken string `json:"resetToken"`
}

type ResetPasswordRequest struct {
	ResetToken  string `json:"resetToken" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// AuthResponse carries an access token plus the signed-in account.
// Exactly one of Provider/Curator is set depending on the portal.
type AuthResponse struct {
	Token    string           `json:"token"`
	Provider *models.Provider `json:"provider,omitempty"`
	Curator  *models.Curator  `json:"curator,omitempty"`
}
