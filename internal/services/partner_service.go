package services

import (
	"healthreach_backend/internal/apperrors"
	"healthreach_backend/internal/models"
	"healthreach_backend/internal/repositories"
	"healthreach_backend/internal/services/dto"
)

type PartnerService interface {
	List() ([]models.Partner, error)
	Create(req *dto.CreatePartnerRequest) (*models.Partner, error)
}

type PartnerServiceImpl struct {
	partnerRepo repositories.PartnerRepository
	schoolRepo  repositories.SchoolRepository
}

func NewPartnerService(partnerRepo repositories.PartnerRepository, schoolRepo repositories.SchoolRepository) PartnerService {
	return &PartnerServiceImpl{
		partnerRepo: partnerRepo,
		schoolRepo:  schoolRepo,
	}
}

func (s *PartnerServiceImpl) List() ([]models.Partner, error) {
	partners, err := s.partnerRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return partners, nil
}

func (s *PartnerServiceImpl) Create(req *dto.CreatePartnerRequest) (*models.Partner, error) {
	if req.SchoolID != nil {
		if _, err := s.schoolRepo.FindByID(*req.SchoolID); err != nil {
			if apperrors.Is(err, repositories.ErrSchoolNotFound) {
				return nil, apperrors.ErrSchoolNotFound
			}
			return nil, apperrors.InternalError(err)
		}
	}

	partner := &models.Partner{
		Name:     req.Name,
		Category: req.Category,
		Location: req.Location,
		LogoURL:  req.LogoURL,
		Status:   models.PartnerStatusActive,
		SchoolID: req.SchoolID,
	}

	if err := s.partnerRepo.Create(partner); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return partner, nil
}
