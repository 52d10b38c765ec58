package services

import (
	"healthreach_backend/internal/apperrors"
	"healthreach_backend/internal/models"
	"healthreach_backend/internal/repositories"
)

type ProviderService interface {
	List() ([]models.Provider, error)
	Get(email string) (*models.Provider, error)
	Approve(email string) (*models.Provider, error)
	Reject(email string) (*models.Provider, error)
}

type ProviderServiceImpl struct {
	providerRepo repositories.ProviderRepository
}

func NewProviderService(providerRepo repositories.ProviderRepository) ProviderService {
	return &ProviderServiceImpl{providerRepo: providerRepo}
}

func (s *ProviderServiceImpl) List() ([]models.Provider, error) {
	providers, err := s.providerRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return providers, nil
}

func (s *ProviderServiceImpl) Get(email string) (*models.Provider, error) {
	provider, err := s.providerRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return provider, nil
}

// Approve moves a pending application to APPROVED. The transition is
// one-way; resolved applications conflict.
func (s *ProviderServiceImpl) Approve(email string) (*models.Provider, error) {
	return s.resolve(email, models.ApplicationStatusApproved)
}

// Reject moves a pending application to REJECTED, terminally.
func (s *ProviderServiceImpl) Reject(email string) (*models.Provider, error) {
	return s.resolve(email, models.ApplicationStatusRejected)
}

func (s *ProviderServiceImpl) resolve(email string, status models.ApplicationStatus) (*models.Provider, error) {
	provider, err := s.providerRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if provider.ApplicationStatus != models.ApplicationStatusPending {
		return nil, apperrors.ErrProviderNotPending
	}

	if err := s.providerRepo.UpdateStatusByEmail(email, status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	provider.ApplicationStatus = status
	return provider, nil
}
