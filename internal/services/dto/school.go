package dto

import (
	"healthreach_backend/internal/models"
)

// CreateSchoolRequest: name and type are required; campuses and logo
// are optional.
type CreateSchoolRequest struct {
	Name     string   `json:"name" validate:"required"`
	Nickname string   `json:"nickname"`
	Type     string   `json:"type" validate:"required,is-school-type"`
	Campuses []string `json:"campuses"`
	LogoURL  string   `json:"logoUrl"`
}

// SchoolResponse is a school plus its decoded campus list and
// aggregate counts.
type SchoolResponse struct {
	models.School
	Campuses       []string `json:"campuses"`
	TotalProviders int64    `json:"totalProviders"`
	TotalPartners  int64    `json:"totalPartners"`
}

// ReachResponse is the reach tab's aggregate metrics for a school.
type ReachResponse struct {
	SchoolID       string `json:"schoolId"`
	TotalProviders int64  `json:"totalProviders"`
	TotalPartners  int64  `json:"totalPartners"`
	TotalCampuses  int    `json:"totalCampuses"`
}
