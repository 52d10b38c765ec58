package services

import (
	"healthreach_backend/internal/apperrors"
	"healthreach_backend/internal/models"
	"healthreach_backend/internal/repositories"
	"healthreach_backend/internal/services/dto"
)

type SpecialtyService interface {
	List() ([]models.Specialty, error)
	Create(req *dto.CreateSpecialtyRequest) (*models.Specialty, error)
}

type SpecialtyServiceImpl struct {
	specialtyRepo repositories.SpecialtyRepository
}

func NewSpecialtyService(specialtyRepo repositories.SpecialtyRepository) SpecialtyService {
	return &SpecialtyServiceImpl{specialtyRepo: specialtyRepo}
}

func (s *SpecialtyServiceImpl) List() ([]models.Specialty, error) {
	specialties, err := s.specialtyRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return specialties, nil
}

func (s *SpecialtyServiceImpl) Create(req *dto.CreateSpecialtyRequest) (*models.Specialty, error) {
	specialty := &models.Specialty{Name: req.Name}

	if err := s.specialtyRepo.Create(specialty); err != nil {
		if apperrors.Is(err, repositories.ErrSpecialtyAlreadyExists) {
			return nil, apperrors.ErrSpecialtyAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return specialty, nil
}
