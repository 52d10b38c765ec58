package services

import (
	"healthreach_backend/internal/apperrors"
	"healthreach_backend/internal/models"
	"healthreach_backend/internal/repositories"
	"healthreach_backend/internal/services/dto"
)

type SchoolService interface {
	List() ([]dto.SchoolResponse, error)
	Get(id string) (*dto.SchoolResponse, error)
	Create(req *dto.CreateSchoolRequest) (*dto.SchoolResponse, error)
	Disable(id string) (*dto.SchoolResponse, error)
	Reach(id string) (*dto.ReachResponse, error)
	Partners(id string) ([]models.Partner, error)
}

type SchoolServiceImpl struct {
	schoolRepo   repositories.SchoolRepository
	providerRepo repositories.ProviderRepository
	partnerRepo  repositories.PartnerRepository
}

func NewSchoolService(
	schoolRepo repositories.SchoolRepository,
	providerRepo repositories.ProviderRepository,
	partnerRepo repositories.PartnerRepository,
) SchoolService {
	return &SchoolServiceImpl{
		schoolRepo:   schoolRepo,
		providerRepo: providerRepo,
		partnerRepo:  partnerRepo,
	}
}

func (s *SchoolServiceImpl) List() ([]dto.SchoolResponse, error) {
	schools, err := s.schoolRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.SchoolResponse, 0, len(schools))
	for i := range schools {
		resp, err := s.buildResponse(&schools[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *SchoolServiceImpl) Get(id string) (*dto.SchoolResponse, error) {
	school, err := s.schoolRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildResponse(school)
}

func (s *SchoolServiceImpl) Create(req *dto.CreateSchoolRequest) (*dto.SchoolResponse, error) {
	school := &models.School{
		Name:     req.Name,
		Nickname: req.Nickname,
		Type:     models.SchoolType(req.Type),
		LogoURL:  req.LogoURL,
		Status:   models.SchoolStatusActive,
	}
	if err := school.SetCampuses(req.Campuses); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.schoolRepo.Create(school); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildResponse(school)
}

// Disable is a terminal transition; disabling an already disabled
// school conflicts.
func (s *SchoolServiceImpl) Disable(id string) (*dto.SchoolResponse, error) {
	school, err := s.schoolRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if school.Status == models.SchoolStatusDisabled {
		return nil, apperrors.ErrSchoolAlreadyDisabled
	}

	if err := s.schoolRepo.UpdateStatus(id, models.SchoolStatusDisabled); err != nil {
		return nil, apperrors.InternalError(err)
	}

	school.Status = models.SchoolStatusDisabled
	return s.buildResponse(school)
}

func (s *SchoolServiceImpl) Reach(id string) (*dto.ReachResponse, error) {
	school, err := s.schoolRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	providers, err := s.providerRepo.CountBySchool(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	partners, err := s.partnerRepo.CountBySchool(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ReachResponse{
		SchoolID:       school.ID,
		TotalProviders: providers,
		TotalPartners:  partners,
		TotalCampuses:  len(school.CampusList()),
	}, nil
}

func (s *SchoolServiceImpl) Partners(id string) ([]models.Partner, error) {
	if _, err := s.schoolRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	partners, err := s.partnerRepo.FindBySchool(id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return partners, nil
}

func (s *SchoolServiceImpl) buildResponse(school *models.School) (*dto.SchoolResponse, error) {
	providers, err := s.providerRepo.CountBySchool(school.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	partners, err := s.partnerRepo.CountBySchool(school.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SchoolResponse{
		School:         *school,
		Campuses:       school.CampusList(),
		TotalProviders: providers,
		TotalPartners:  partners,
	}, nil
}
