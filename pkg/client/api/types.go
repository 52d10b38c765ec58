// Package api exposes typed methods for every server endpoint.
package api

import "time"

// Provider mirrors the server's provider JSON.
type Provider struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	FullName          string     `json:"fullName"`
	ProfessionalTitle string     `json:"professionalTitle"`
	OfficePhoneNumber string     `json:"officePhoneNumber"`
	Bio               string     `json:"bio"`
	ProfilePhotoURL   string     `json:"profilePhotoUrl"`
	ApplicationStatus string     `json:"applicationStatus"`
	Status            string     `json:"status,omitempty"`
	IsVerified        bool       `json:"isVerified"`
	SpecialtyID       *string    `json:"specialtyId,omitempty"`
	Specialty         *Specialty `json:"specialty,omitempty"`
	SchoolID          *string    `json:"schoolId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Curator mirrors the server's curator JSON.
type Curator struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// School mirrors the server's school JSON, with the campus list
// already decoded and aggregate counts attached.
type School struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Nickname       string    `json:"nickname"`
	Type           string    `json:"type"`
	Campuses       []string  `json:"campuses"`
	LogoURL        string    `json:"logoUrl"`
	Status         string    `json:"status"`
	TotalProviders int64     `json:"totalProviders"`
	TotalPartners  int64     `json:"totalPartners"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Reach is the aggregate metrics view of one school.
type Reach struct {
	SchoolID       string `json:"schoolId"`
	TotalProviders int64  `json:"totalProviders"`
	TotalPartners  int64  `json:"totalPartners"`
	TotalCampuses  int    `json:"totalCampuses"`
}

// Partner mirrors the server's partner JSON.
type Partner struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Location string  `json:"location"`
	LogoURL  string  `json:"logoUrl"`
	Status   string  `json:"status"`
	SchoolID *string `json:"schoolId,omitempty"`
}

// Specialty mirrors the server's specialty JSON.
type Specialty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthResult is the payload of a successful sign-in or account
// creation. Exactly one of Provider or Curator is set.
type AuthResult struct {
	Token    string    `json:"token"`
	Provider *Provider `json:"provider,omitempty"`
	Curator  *Curator  `json:"curator,omitempty"`
}

// CreateAccountRequest starts a provider signup.
type CreateAccountRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	FullName          string `json:"fullName"`
	ProfessionalTitle string `json:"professionalTitle,omitempty"`
}

// UpdateProfileRequest commits the bio step of the signup wizard.
type UpdateProfileRequest struct {
	OfficePhoneNumber string `json:"officePhoneNumber"`
	Bio               string `json:"bio"`
	ProfessionalTitle string `json:"professionalTitle,omitempty"`
}

// CreateSchoolRequest is the curator's school creation payload.
type CreateSchoolRequest struct {
	Name     string   `json:"name"`
	Nickname string   `json:"nickname,omitempty"`
	Type     string   `json:"type"`
	Campuses []string `json:"campuses,omitempty"`
	LogoURL  string   `json:"logoUrl,omitempty"`
}

// CreatePartnerRequest is the curator's partner creation payload.
type CreatePartnerRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Location string  `json:"location,omitempty"`
	LogoURL  string  `json:"logoUrl,omitempty"`
	SchoolID *string `json:"schoolId,omitempty"`
}
