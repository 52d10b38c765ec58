package repositories

import (
	"errors"

	"gorm.io/gorm"

	"healthreach_backend/internal/models"
)

var ErrCuratorNotFound = errors.New("curator not found")

type CuratorRepository interface {
	FindByEmail(email string) (*models.Curator, error)
	Create(curator *models.Curator) error
}

type CuratorRepositoryImpl struct {
	db *gorm.DB
}

func NewCuratorRepository(db *gorm.DB) CuratorRepository {
	return &CuratorRepositoryImpl{db: db}
}

func (r *CuratorRepositoryImpl) FindByEmail(email string) (*models.Curator, error) {
	var curator models.Curator
	err := r.db.First(&curator, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCuratorNotFound
		}
		return nil, err
	}
	return &curator, nil
}

func (r *CuratorRepositoryImpl) Create(curator *models.Curator) error {
	return r.db.Create(curator).Error
}
