package repositories

import (
	"errors"

	"gorm.io/gorm"

	"healthreach_backend/internal/models"
)

var (
	ErrSpecialtyNotFound      = errors.New("specialty not found")
	ErrSpecialtyAlreadyExists = errors.New("specialty already exists")
)

type SpecialtyRepository interface {
	FindByID(id string) (*models.Specialty, error)
	FindByName(name string) (*models.Specialty, error)
	FindAll() ([]models.Specialty, error)
	Create(specialty *models.Specialty) error
}

type SpecialtyRepositoryImpl struct {
	db *gorm.DB
}

func NewSpecialtyRepository(db *gorm.DB) SpecialtyRepository {
	return &SpecialtyRepositoryImpl{db: db}
}

func (r *SpecialtyRepositoryImpl) FindByID(id string) (*models.Specialty, error) {
	var specialty models.Specialty
	err := r.db.First(&specialty, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialtyNotFound
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *SpecialtyRepositoryImpl) FindByName(name string) (*models.Specialty, error) {
	var specialty models.Specialty
	err := r.db.First(&specialty, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpecialtyNotFound
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *SpecialtyRepositoryImpl) FindAll() ([]models.Specialty, error) {
	var specialties []models.Specialty
	err := r.db.Order("name ASC").Find(&specialties).Error
	return specialties, err
}

func (r *SpecialtyRepositoryImpl) Create(specialty *models.Specialty) error {
	var existing models.Specialty
	if err := r.db.Where("name = ?", specialty.Name).First(&existing).Error; err == nil {
		return ErrSpecialtyAlreadyExists
	}
	return r.db.Create(specialty).Error
}
