package repositories

import (
	"errors"

	"gorm.io/gorm"

	"healthreach_backend/internal/models"
)

var ErrPartnerNotFound = errors.New("partner not found")

type PartnerRepository interface {
	FindByID(id string) (*models.Partner, error)
	FindAll() ([]models.Partner, error)
	FindBySchool(schoolID string) ([]models.Partner, error)
	Create(partner *models.Partner) error
	CountBySchool(schoolID string) (int64, error)
}

type PartnerRepositoryImpl struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) PartnerRepository {
	return &PartnerRepositoryImpl{db: db}
}

func (r *PartnerRepositoryImpl) FindByID(id string) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.First(&partner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &partner, nil
}

func (r *PartnerRepositoryImpl) FindAll() ([]models.Partner, error) {
	var partners []models.Partner
	err := r.db.Order("created_at DESC").Find(&partners).Error
	return partners, err
}

func (r *PartnerRepositoryImpl) FindBySchool(schoolID string) ([]models.Partner, error) {
	var partners []models.Partner
	err := r.db.Where("school_id = ?", schoolID).Order("created_at DESC").Find(&partners).Error
	return partners, err
}

func (r *PartnerRepositoryImpl) Create(partner *models.Partner) error {
	return r.db.Create(partner).Error
}

func (r *PartnerRepositoryImpl) CountBySchool(schoolID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Partner{}).Where("school_id = ?", schoolID).Count(&count).Error
	return count, err
}
