package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// School is created and managed exclusively by curators. Disable is a
// one-way transition; there is no reactivate path.
type School struct {
	BaseModel
	Name     string         `gorm:"not null;index" json:"name"`
	Nickname string         `json:"nickname"`
	Type     SchoolType     `gorm:"type:varchar(20);not null" json:"type"`
	Campuses datatypes.JSON `json:"campuses"`
	LogoURL  string         `json:"logoUrl"`
	Status   SchoolStatus   `gorm:"type:varchar(20);default:'active'" json:"status"`
}

// CampusList decodes the campuses JSON column into an ordered slice.
func (s *School) CampusList() []string {
	if len(s.Campuses) == 0 {
		return nil
	}
	var campuses []string
	if err := json.Unmarshal(s.Campuses, &campuses); err != nil {
		return nil
	}
	return campuses
}

// SetCampuses encodes an ordered campus list into the JSON column.
func (s *School) SetCampuses(campuses []string) error {
	raw, err := json.Marshal(campuses)
	if err != nil {
		return err
	}
	s.Campuses = datatypes.JSON(raw)
	return nil
}
