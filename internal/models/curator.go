package models

// Curator is an administrative account managing schools, partners and
// provider approval.
type Curator struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `json:"fullName"`
}
