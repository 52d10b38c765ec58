package dto

// CreatePartnerRequest registers a partner organization, optionally
// attached to a school.
type CreatePartnerRequest struct {
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category"`
	Location string  `json:"location"`
	LogoURL  string  `json:"logoUrl"`
	SchoolID *string `json:"schoolId,omitempty"`
}

// CreateSpecialtyRequest registers a selectable specialty.
type CreateSpecialtyRequest struct {
	Name string `json:"name" validate:"required"`
}
