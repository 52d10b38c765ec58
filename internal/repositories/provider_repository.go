package repositories

import (
	"errors"

	"gorm.io/gorm"

	"healthreach_backend/internal/models"
)

var (
	ErrProviderNotFound      = errors.New("provider not found")
	ErrProviderAlreadyExists = errors.New("provider already exists")
)

type ProviderRepository interface {
	FindByID(id string) (*models.Provider, error)
	FindByEmail(email string) (*models.Provider, error)
	FindByResetToken(token string) (*models.Provider, error)
	FindAll() ([]models.Provider, error)
	Create(provider *models.Provider) error
	Update(provider *models.Provider) error
	UpdateStatusByEmail(email string, status models.ApplicationStatus) error
	CountBySchool(schoolID string) (int64, error)
}

type ProviderRepositoryImpl struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &ProviderRepositoryImpl{db: db}
}

func (r *ProviderRepositoryImpl) FindByID(id string) (*models.Provider, error) {
	var provider models.Provider
	err := r.db.Preload("Specialty").First(&provider, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &provider, nil
}

func (r *ProviderRepositoryImpl) FindByEmail(email string) (*models.Provider, error) {
	var provider models.Provider
	err := r.db.Preload("Specialty").First(&provider, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &provider, nil
}

func (r *ProviderRepositoryImpl) FindByResetToken(token string) (*models.Provider, error) {
	if token == "" {
		return nil, ErrProviderNotFound
	}
	var provider models.Provider
	err := r.db.First(&provider, "reset_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &provider, nil
}

func (r *ProviderRepositoryImpl) FindAll() ([]models.Provider, error) {
	var providers []models.Provider
	err := r.db.Preload("Specialty").Order("created_at DESC").Find(&providers).Error
	return providers, err
}

func (r *ProviderRepositoryImpl) Create(provider *models.Provider) error {
	var existing models.Provider
	if err := r.db.Where("email = ?", provider.Email).First(&existing).Error; err == nil {
		return ErrProviderAlreadyExists
	}
	return r.db.Create(provider).Error
}

func (r *ProviderRepositoryImpl) Update(provider *models.Provider) error {
	return r.db.Save(provider).Error
}

func (r *ProviderRepositoryImpl) UpdateStatusByEmail(email string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Provider{}).
		Where("email = ?", email).
		Update("application_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProviderNotFound
	}
	return nil
}

func (r *ProviderRepositoryImpl) CountBySchool(schoolID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Provider{}).Where("school_id = ?", schoolID).Count(&count).Error
	return count, err
}
