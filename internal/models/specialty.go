package models

// Specialty is a selectable provider specialty.
type Specialty struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
