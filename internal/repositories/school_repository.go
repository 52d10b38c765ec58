package repositories

import (
	"errors"

	"gorm.io/gorm"

	"healthreach_backend/internal/models"
)

var ErrSchoolNotFound = errors.New("school not found")

type SchoolRepository interface {
	FindByID(id string) (*models.School, error)
	FindAll() ([]models.School, error)
	Create(school *models.School) error
	Update(school *models.School) error
	UpdateStatus(id string, status models.SchoolStatus) error
}

type SchoolRepositoryImpl struct {
	db *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &SchoolRepositoryImpl{db: db}
}

func (r *SchoolRepositoryImpl) FindByID(id string) (*models.School, error) {
	var school models.School
	err := r.db.First(&school, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepositoryImpl) FindAll() ([]models.School, error) {
	var schools []models.School
	err := r.db.Order("created_at DESC").Find(&schools).Error
	return schools, err
}

func (r *SchoolRepositoryImpl) Create(school *models.School) error {
	return r.db.Create(school).Error
}

func (r *SchoolRepositoryImpl) Update(school *models.School) error {
	return r.db.Save(school).Error
}

func (r *SchoolRepositoryImpl) UpdateStatus(id string, status models.SchoolStatus) error {
	result := r.db.Model(&models.School{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSchoolNotFound
	}
	return nil
}
