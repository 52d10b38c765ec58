package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthreach_backend/internal/apperrors"
	"healthreach_backend/internal/auth"
	"healthreach_backend/internal/config"
	"healthreach_backend/internal/models"
	"healthreach_backend/internal/services"
	"healthreach_backend/internal/services/dto"
	"healthreach_backend/test/helpers"
)

func newAuthService(t *testing.T) (services.AuthService, *helpers.MemProviderRepo, *helpers.MemCuratorRepo, *helpers.MemSpecialtyRepo) {
	t.Helper()
	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60

	providers := helpers.NewMemProviderRepo()
	curators := helpers.NewMemCuratorRepo()
	specialties := helpers.NewMemSpecialtyRepo()
	svc := services.NewAuthService(providers, curators, specialties, nil, helpers.NewMemStorage())
	return svc, providers, curators, specialties
}

func seedProvider(t *testing.T, repo *helpers.MemProviderRepo, p *models.Provider, password string) *models.Provider {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	p.PasswordHash = hash
	require.NoError(t, repo.Create(p))
	return p
}

func TestSignInWrongPassword(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)
	seedProvider(t, providers, &models.Provider{Email: "doc@example.com", FullName: "Doc"}, "correct-pass")

	_, _, err := svc.SignIn(&dto.SignInRequest{Email: "doc@example.com", Password: "wrong-pass"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestSignInUnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthService(t)

	_, _, err := svc.SignIn(&dto.SignInRequest{Email: "nobody@example.com", Password: "whatever1"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestSignInIncompleteProfileOrder(t *testing.T) {
	tests := []struct {
		name     string
		provider models.Provider
		wantMsg  string
	}{
		{
			name: "photo missing reported first",
			provider: models.Provider{
				Email: "a@example.com", FullName: "A", IsVerified: true,
			},
			wantMsg: "PROFILE PHOTO NOT ADDED",
		},
		{
			name: "profile details missing after photo",
			provider: models.Provider{
				Email: "b@example.com", FullName: "B", IsVerified: true,
				ProfilePhotoURL: "http://files.test/photos/b.jpg",
			},
			wantMsg: "PROFILE NOT UPDATED",
		},
		{
			name: "specialty missing last",
			provider: models.Provider{
				Email: "c@example.com", FullName: "C", IsVerified: true,
				ProfilePhotoURL:   "http://files.test/photos/c.jpg",
				OfficePhoneNumber: "+233201234567",
				Bio:               "bio",
			},
			wantMsg: "SPECIALTY NOT ADDED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, providers, _, _ := newAuthService(t)
			seedProvider(t, providers, &tt.provider, "password1")

			_, _, err := svc.SignIn(&dto.SignInRequest{Email: tt.provider.Email, Password: "password1"})
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.True(t, apperrors.As(err, &appErr))
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Equal(t, 403, appErr.HTTPCode)

			// The refusal issues a token so the client can commit the
			// missing wizard steps without another sign-in.
			details, ok := appErr.Details.(map[string]string)
			require.True(t, ok)
			assert.NotEmpty(t, details["token"])
		})
	}
}

func TestSignInProfessionalTitleSatisfiesSpecialty(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)
	seedProvider(t, providers, &models.Provider{
		Email: "titled@example.com", FullName: "Titled", IsVerified: true,
		ProfilePhotoURL:   "http://files.test/photos/t.jpg",
		OfficePhoneNumber: "+233201234567",
		Bio:               "bio",
		ProfessionalTitle: "Midwife",
		ApplicationStatus: models.ApplicationStatusApproved,
	}, "password1")

	resp, message, err := svc.SignIn(&dto.SignInRequest{Email: "titled@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, message)
}

func TestSignInPendingMessage(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)
	seedProvider(t, providers, &models.Provider{
		Email: "pending@example.com", FullName: "Pending", IsVerified: true,
		ProfilePhotoURL:   "http://files.test/photos/p.jpg",
		OfficePhoneNumber: "+233201234567",
		Bio:               "bio",
		ProfessionalTitle: "Nurse",
		ApplicationStatus: models.ApplicationStatusPending,
	}, "password1")

	resp, message, err := svc.SignIn(&dto.SignInRequest{Email: "pending@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, services.AccountPendingMessage, message)
	assert.NotEmpty(t, resp.Token)
}

func TestSignInUnverifiedSkipsCompletenessCheck(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)
	seedProvider(t, providers, &models.Provider{
		Email: "fresh@example.com", FullName: "Fresh",
		IsVerified:        false,
		ApplicationStatus: models.ApplicationStatusPending,
	}, "password1")

	resp, message, err := svc.SignIn(&dto.SignInRequest{Email: "fresh@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, services.AccountPendingMessage, message)
}

func TestCreateAccount(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)

	resp, err := svc.CreateAccount(&dto.CreateAccountRequest{
		Email:    "New@Example.com",
		Password: "password1",
		FullName: "New Provider",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.Provider)
	assert.Equal(t, "new@example.com", resp.Provider.Email)
	assert.False(t, resp.Provider.IsVerified)
	assert.Equal(t, models.ApplicationStatusPending, resp.Provider.ApplicationStatus)

	stored, err := providers.FindByEmail("new@example.com")
	require.NoError(t, err)
	assert.Len(t, stored.SignupCode, 6)
	require.NotNil(t, stored.SignupCodeExp)
	assert.True(t, stored.SignupCodeExp.After(time.Now()))
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)
	seedProvider(t, providers, &models.Provider{Email: "dup@example.com", FullName: "Dup"}, "password1")

	_, err := svc.CreateAccount(&dto.CreateAccountRequest{
		Email: "dup@example.com", Password: "password1", FullName: "Dup Again",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrEmailAlreadyExists))
}

func TestCreateAccountWeakPassword(t *testing.T) {
	svc, _, _, _ := newAuthService(t)

	_, err := svc.CreateAccount(&dto.CreateAccountRequest{
		Email: "weak@example.com", Password: "short", FullName: "Weak",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrWeakPassword))
}

func TestSubmitSignupCode(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)

	_, err := svc.CreateAccount(&dto.CreateAccountRequest{
		Email: "verify@example.com", Password: "password1", FullName: "Verify",
	})
	require.NoError(t, err)

	stored, err := providers.FindByEmail("verify@example.com")
	require.NoError(t, err)

	err = svc.SubmitSignupCode(&dto.SubmitSignupCodeRequest{Email: "verify@example.com", Code: "000000"})
	if stored.SignupCode != "000000" {
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCode))
	}

	require.NoError(t, svc.SubmitSignupCode(&dto.SubmitSignupCodeRequest{
		Email: "verify@example.com", Code: stored.SignupCode,
	}))

	verified, err := providers.FindByEmail("verify@example.com")
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.Empty(t, verified.SignupCode)

	// The code is single use.
	err = svc.SubmitSignupCode(&dto.SubmitSignupCodeRequest{
		Email: "verify@example.com", Code: stored.SignupCode,
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCode))
}

func TestSubmitSignupCodeExpired(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)

	expired := time.Now().Add(-time.Minute)
	seedProvider(t, providers, &models.Provider{
		Email: "late@example.com", FullName: "Late",
		SignupCode:    "123456",
		SignupCodeExp: &expired,
	}, "password1")

	err := svc.SubmitSignupCode(&dto.SubmitSignupCodeRequest{Email: "late@example.com", Code: "123456"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCode))
}

func TestRecoveryFlow(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)
	seedProvider(t, providers, &models.Provider{Email: "lost@example.com", FullName: "Lost"}, "oldpassword1")

	require.NoError(t, svc.RecoverAccount("lost@example.com"))

	stored, err := providers.FindByEmail("lost@example.com")
	require.NoError(t, err)
	require.Len(t, stored.RecoveryCode, 6)

	tokenResp, err := svc.SubmitRecoveryCode(&dto.SubmitRecoveryCodeRequest{
		Email: "lost@example.com", Code: stored.RecoveryCode,
	})
	require.NoError(t, err)
	require.NotEmpty(t, tokenResp.ResetToken)

	// The recovery code is consumed by the exchange.
	_, err = svc.SubmitRecoveryCode(&dto.SubmitRecoveryCodeRequest{
		Email: "lost@example.com", Code: stored.RecoveryCode,
	})
	require.Error(t, err)

	require.NoError(t, svc.ResetPassword(&dto.ResetPasswordRequest{
		ResetToken:  tokenResp.ResetToken,
		NewPassword: "newpassword1",
	}))

	// Old password no longer works, new one does.
	_, _, err = svc.SignIn(&dto.SignInRequest{Email: "lost@example.com", Password: "oldpassword1"})
	require.Error(t, err)
	_, _, err = svc.SignIn(&dto.SignInRequest{Email: "lost@example.com", Password: "newpassword1"})
	require.NoError(t, err)

	// The reset token is single use.
	err = svc.ResetPassword(&dto.ResetPasswordRequest{
		ResetToken:  tokenResp.ResetToken,
		NewPassword: "anotherpassword1",
	})
	require.Error(t, err)
}

func TestRecoverAccountHidesUnknownEmails(t *testing.T) {
	svc, _, _, _ := newAuthService(t)
	assert.NoError(t, svc.RecoverAccount("ghost@example.com"))
}

func TestCheckEmail(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)
	seedProvider(t, providers, &models.Provider{Email: "known@example.com", FullName: "Known"}, "password1")

	resp, err := svc.CheckEmail("known@example.com")
	require.NoError(t, err)
	assert.True(t, resp.Exists)

	resp, err = svc.CheckEmail("unknown@example.com")
	require.NoError(t, err)
	assert.False(t, resp.Exists)
}

func TestCuratorSignIn(t *testing.T) {
	svc, _, curators, _ := newAuthService(t)

	hash, err := auth.HashPassword("curator-pass1")
	require.NoError(t, err)
	require.NoError(t, curators.Create(&models.Curator{
		Email: "curator@example.com", PasswordHash: hash, FullName: "Curator",
	}))

	resp, err := svc.CuratorSignIn(&dto.SignInRequest{Email: "Curator@Example.com", Password: "curator-pass1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.Curator)
	assert.Nil(t, resp.Provider)

	_, err = svc.CuratorSignIn(&dto.SignInRequest{Email: "curator@example.com", Password: "bad-pass12"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestAddSpecialty(t *testing.T) {
	svc, providers, _, specialties := newAuthService(t)
	p := seedProvider(t, providers, &models.Provider{Email: "spec@example.com", FullName: "Spec"}, "password1")

	s := &models.Specialty{Name: "Pediatrics"}
	require.NoError(t, specialties.Create(s))

	updated, err := svc.AddSpecialty(p.ID, &dto.AddSpecialtyRequest{SpecialtyID: s.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.SpecialtyID)
	assert.Equal(t, s.ID, *updated.SpecialtyID)

	_, err = svc.AddSpecialty(p.ID, &dto.AddSpecialtyRequest{SpecialtyID: "missing-id"})
	require.Error(t, err)
}

func TestAddPhotoRejectsNonImages(t *testing.T) {
	svc, providers, _, _ := newAuthService(t)
	p := seedProvider(t, providers, &models.Provider{Email: "photo@example.com", FullName: "Photo"}, "password1")

	_, err := svc.AddPhoto(p.ID, "notes.txt", "text/plain", strings.NewReader("hello"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidFileType))

	updated, err := svc.AddPhoto(p.ID, "me.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, updated.ProfilePhotoURL)
}
