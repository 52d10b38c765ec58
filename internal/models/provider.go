package models

import "time"

// Provider is a healthcare professional account. Sign-up happens in
// steps (account, email code, photo, profile, specialty); the
// completeness helpers below decide which step a returning provider
// is sent back to.
type Provider struct {
	BaseModel
	Email             string            `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string            `gorm:"not null" json:"-"`
	FullName          string            `gorm:"not null" json:"fullName"`
	ProfessionalTitle string            `json:"professionalTitle"`
	OfficePhoneNumber string            `json:"officePhoneNumber"`
	Bio               string            `json:"bio"`
	ProfilePhotoURL   string            `json:"profilePhotoUrl"`
	ApplicationStatus ApplicationStatus `gorm:"type:varchar(20);default:'PENDING'" json:"applicationStatus"`
	IsVerified        bool              `gorm:"default:false" json:"isVerified"`

	SignupCode      string     `json:"-"`
	SignupCodeExp   *time.Time `json:"-"`
	RecoveryCode    string     `json:"-"`
	RecoveryCodeExp *time.Time `json:"-"`
	ResetToken      string     `json:"-"`

	SpecialtyID *string    `gorm:"type:uuid" json:"specialtyId,omitempty"`
	Specialty   *Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`

	SchoolID *string `gorm:"type:uuid;index" json:"schoolId,omitempty"`
}

// HasPhoto reports whether the photo step has been committed.
func (p *Provider) HasPhoto() bool {
	return p.ProfilePhotoURL != ""
}

// HasProfileDetails reports whether the bio step has been committed.
func (p *Provider) HasProfileDetails() bool {
	return p.OfficePhoneNumber != "" && p.Bio != ""
}

// HasSpecialty reports whether a specialty or professional title is
// on file.
func (p *Provider) HasSpecialty() bool {
	return p.SpecialtyID != nil || p.ProfessionalTitle != ""
}

// IsComplete reports full profile completeness: photo AND office
// phone AND (specialty OR title).
func (p *Provider) IsComplete() bool {
	return p.HasPhoto() && p.HasProfileDetails() && p.HasSpecialty()
}
