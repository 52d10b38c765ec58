package models

// Partner is an organization cooperating with the platform,
// optionally attached to a school.
type Partner struct {
	BaseModel
	Name     string        `gorm:"not null;index" json:"name"`
	Category string        `json:"category"`
	Location string        `json:"location"`
	LogoURL  string        `json:"logoUrl"`
	Status   PartnerStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	SchoolID *string `gorm:"type:uuid;index" json:"schoolId,omitempty"`
}
