package services

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthreach_backend/internal/apperrors"
	"healthreach_backend/internal/auth"
	"healthreach_backend/internal/email"
	"healthreach_backend/internal/logger"
	"healthreach_backend/internal/models"
	"healthreach_backend/internal/repositories"
	"healthreach_backend/internal/services/dto"
	"healthreach_backend/internal/storage"
)

const codeTTL = 15 * time.Minute

// AccountPendingMessage is returned alongside successful sign-ins of
// providers still awaiting curator approval. The client matches on
// this literal.
const AccountPendingMessage = "ACCOUNT PENDING"

type AuthService interface {
	CheckEmail(emailAddr string) (*dto.CheckEmailResponse, error)
	CreateAccount(req *dto.CreateAccountRequest) (*dto.AuthResponse, error)
	SubmitSignupCode(req *dto.SubmitSignupCodeRequest) error
	SignIn(req *dto.SignInRequest) (*dto.AuthResponse, string, error)
	AddPhoto(providerID, filename, contentType string, r io.Reader) (*models.Provider, error)
	UpdateProfile(providerID string, req *dto.UpdateProfileRequest) (*models.Provider, error)
	AddSpecialty(providerID string, req *dto.AddSpecialtyRequest) (*models.Provider, error)
	Profile(providerID string) (*models.Provider, error)
	RecoverAccount(emailAddr string) error
	SubmitRecoveryCode(req *dto.SubmitRecoveryCodeRequest) (*dto.ResetTokenResponse, error)
	ResetPassword(req *dto.ResetPasswordRequest) error
	CuratorCheckEmail(emailAddr string) (*dto.CheckEmailResponse, error)
	CuratorSignIn(req *dto.SignInRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	providerRepo  repositories.ProviderRepository
	curatorRepo   repositories.CuratorRepository
	specialtyRepo repositories.SpecialtyRepository
	emailProvider email.Provider
	files         storage.Storage
}

func NewAuthService(
	providerRepo repositories.ProviderRepository,
	curatorRepo repositories.CuratorRepository,
	specialtyRepo repositories.SpecialtyRepository,
	emailProvider email.Provider,
	files storage.Storage,
) AuthService {
	return &AuthServiceImpl{
		providerRepo:  providerRepo,
		curatorRepo:   curatorRepo,
		specialtyRepo: specialtyRepo,
		emailProvider: emailProvider,
		files:         files,
	}
}

func (s *AuthServiceImpl) CheckEmail(emailAddr string) (*dto.CheckEmailResponse, error) {
	_, err := s.providerRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return &dto.CheckEmailResponse{Exists: false}, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.CheckEmailResponse{Exists: true}, nil
}

// CreateAccount creates the provider record and issues a token right
// away so the remaining wizard steps can commit against the API. A
// signup code is emailed for the verify step.
func (s *AuthServiceImpl) CreateAccount(req *dto.CreateAccountRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	code := generateNumericCode()
	codeExp := time.Now().Add(codeTTL)

	provider := &models.Provider{
		Email:             strings.ToLower(req.Email),
		PasswordHash:      hashedPassword,
		FullName:          req.FullName,
		ProfessionalTitle: req.ProfessionalTitle,
		ApplicationStatus: models.ApplicationStatusPending,
		IsVerified:        false,
		SignupCode:        code,
		SignupCodeExp:     &codeExp,
	}

	if err := s.providerRepo.Create(provider); err != nil {
		if apperrors.Is(err, repositories.ErrProviderAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(provider.ID, auth.RoleProvider)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendSignupCode(provider.Email, code)

	return &dto.AuthResponse{Token: token, Provider: provider}, nil
}

func (s *AuthServiceImpl) SubmitSignupCode(req *dto.SubmitSignupCodeRequest) error {
	provider, err := s.providerRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return apperrors.ErrInvalidCode
		}
		return apperrors.InternalError(err)
	}

	if provider.SignupCode == "" || provider.SignupCode != req.Code {
		return apperrors.ErrInvalidCode
	}
	if provider.SignupCodeExp == nil || time.Now().After(*provider.SignupCodeExp) {
		return apperrors.ErrInvalidCode
	}

	provider.IsVerified = true
	provider.SignupCode = ""
	provider.SignupCodeExp = nil

	if err := s.providerRepo.Update(provider); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// SignIn authenticates a provider. The second return value is a
// message to be surfaced in the response envelope; it is
// AccountPendingMessage for providers awaiting approval. Incomplete
// profiles fail with one of the fixed literals the client uses to
// reopen the wizard at the right step.
func (s *AuthServiceImpl) SignIn(req *dto.SignInRequest) (*dto.AuthResponse, string, error) {
	provider, err := s.providerRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, provider.PasswordHash) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(provider.ID, auth.RoleProvider)
	if err != nil {
		return nil, "", apperrors.InternalError(err)
	}

	// Completeness gating applies only once the email is verified;
	// unverified accounts sign in and land on the pending screen.
	// The refusal carries a fresh token so the client can resume the
	// wizard and commit the missing steps without re-authenticating.
	if provider.IsVerified {
		if err := checkProfileComplete(provider); err != nil {
			var appErr *apperrors.AppError
			if apperrors.As(err, &appErr) {
				return nil, "", appErr.WithDetails(map[string]string{"token": token})
			}
			return nil, "", err
		}
	}

	message := ""
	if provider.ApplicationStatus == models.ApplicationStatusPending {
		message = AccountPendingMessage
	}

	return &dto.AuthResponse{Token: token, Provider: provider}, message, nil
}

func (s *AuthServiceImpl) AddPhoto(providerID, filename, contentType string, r io.Reader) (*models.Provider, error) {
	provider, err := s.providerRepo.FindByID(providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.ErrInvalidFileType
	}

	ext := filepath.Ext(filename)
	path := fmt.Sprintf("photos/%s%s", uuid.NewString(), ext)

	if err := s.files.Save(context.Background(), path, r, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.files.GetURL(context.Background(), path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	provider.ProfilePhotoURL = url
	if err := s.providerRepo.Update(provider); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return provider, nil
}

func (s *AuthServiceImpl) UpdateProfile(providerID string, req *dto.UpdateProfileRequest) (*models.Provider, error) {
	provider, err := s.providerRepo.FindByID(providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	provider.OfficePhoneNumber = req.OfficePhoneNumber
	provider.Bio = req.Bio
	if req.ProfessionalTitle != "" {
		provider.ProfessionalTitle = req.ProfessionalTitle
	}

	if err := s.providerRepo.Update(provider); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return provider, nil
}

func (s *AuthServiceImpl) AddSpecialty(providerID string, req *dto.AddSpecialtyRequest) (*models.Provider, error) {
	provider, err := s.providerRepo.FindByID(providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	specialty, err := s.specialtyRepo.FindByID(req.SpecialtyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSpecialtyNotFound) {
			return nil, apperrors.ErrSpecialtyNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	provider.SpecialtyID = &specialty.ID
	provider.Specialty = specialty

	if err := s.providerRepo.Update(provider); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return provider, nil
}

func (s *AuthServiceImpl) Profile(providerID string) (*models.Provider, error) {
	provider, err := s.providerRepo.FindByID(providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return provider, nil
}

// RecoverAccount emails a recovery code. Nonexistent emails are not
// revealed; the call reports success either way.
func (s *AuthServiceImpl) RecoverAccount(emailAddr string) error {
	provider, err := s.providerRepo.FindByEmail(strings.ToLower(emailAddr))
	if err != nil {
		return nil
	}

	code := generateNumericCode()
	codeExp := time.Now().Add(codeTTL)
	provider.RecoveryCode = code
	provider.RecoveryCodeExp = &codeExp

	if err := s.providerRepo.Update(provider); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendRecoveryCode(provider.Email, code)
	return nil
}

// SubmitRecoveryCode swaps a valid recovery code for a one-shot reset
// token.
func (s *AuthServiceImpl) SubmitRecoveryCode(req *dto.SubmitRecoveryCodeRequest) (*dto.ResetTokenResponse, error) {
	provider, err := s.providerRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrInvalidCode
		}
		return nil, apperrors.InternalError(err)
	}

	if provider.RecoveryCode == "" || provider.RecoveryCode != req.Code {
		return nil, apperrors.ErrInvalidCode
	}
	if provider.RecoveryCodeExp == nil || time.Now().After(*provider.RecoveryCodeExp) {
		return nil, apperrors.ErrInvalidCode
	}

	resetToken := uuid.NewString()
	provider.RecoveryCode = ""
	provider.RecoveryCodeExp = nil
	provider.ResetToken = resetToken

	if err := s.providerRepo.Update(provider); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ResetTokenResponse{ResetToken: resetToken}, nil
}

func (s *AuthServiceImpl) ResetPassword(req *dto.ResetPasswordRequest) error {
	provider, err := s.providerRepo.FindByResetToken(req.ResetToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	provider.PasswordHash = hashedPassword
	provider.ResetToken = ""

	if err := s.providerRepo.Update(provider); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) CuratorCheckEmail(emailAddr string) (*dto.CheckEmailResponse, error) {
	_, err := s.curatorRepo.FindByEmail(strings.ToLower(emailAddr))
	if err != nil {
		if apperrors.Is(err, repositories.ErrCuratorNotFound) {
			return &dto.CheckEmailResponse{Exists: false}, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.CheckEmailResponse{Exists: true}, nil
}

func (s *AuthServiceImpl) CuratorSignIn(req *dto.SignInRequest) (*dto.AuthResponse, error) {
	curator, err := s.curatorRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrCuratorNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, curator.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(curator.ID, auth.RoleCurator)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, Curator: curator}, nil
}

// --- Helpers ---

// checkProfileComplete reports the first missing wizard step, in
// photo -> bio -> specialty order, as its fixed error literal.
func checkProfileComplete(provider *models.Provider) error {
	if !provider.HasPhoto() {
		return apperrors.ErrProfilePhotoMissing
	}
	if !provider.HasProfileDetails() {
		return apperrors.ErrProfileNotUpdated
	}
	if !provider.HasSpecialty() {
		return apperrors.ErrSpecialtyMissing
	}
	return nil
}

func generateNumericCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand failing means the platform's entropy source is
		// broken; derive six digits from uuid bytes instead.
		return codeFromUUID(uuid.New())
	}
	return fmt.Sprintf("%06d", n.Int64())
}

func codeFromUUID(u uuid.UUID) string {
	v := binary.BigEndian.Uint32(u[:4])
	return fmt.Sprintf("%06d", v%1000000)
}

func (s *AuthServiceImpl) sendSignupCode(to, code string) {
	if s.emailProvider == nil {
		return
	}
	go func() {
		if err := s.emailProvider.SendSignupCode(to, code); err != nil {
			logger.Error("failed to send signup code", "error", err, "email", to)
		}
	}()
}

func (s *AuthServiceImpl) sendRecoveryCode(to, code string) {
	if s.emailProvider == nil {
		return
	}
	go func() {
		if err := s.emailProvider.SendRecoveryCode(to, code); err != nil {
			logger.Error("failed to send recovery code", "error", err, "email", to)
		}
	}()
}
