package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthreach_backend/internal/apperrors"
	"healthreach_backend/internal/models"
	"healthreach_backend/internal/services"
	"healthreach_backend/internal/services/dto"
	"healthreach_backend/test/helpers"
)

func newSchoolService(t *testing.T) (services.SchoolService, *helpers.MemSchoolRepo, *helpers.MemProviderRepo, *helpers.MemPartnerRepo) {
	t.Helper()
	schools := helpers.NewMemSchoolRepo()
	providers := helpers.NewMemProviderRepo()
	partners := helpers.NewMemPartnerRepo()
	return services.NewSchoolService(schools, providers, partners), schools, providers, partners
}

func TestSchoolCreate(t *testing.T) {
	svc, _, _, _ := newSchoolService(t)

	resp, err := svc.Create(&dto.CreateSchoolRequest{
		Name:     "Accra Technical University",
		Nickname: "ATU",
		Type:     "University",
		Campuses: []string{"Accra", "Kumasi"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.SchoolStatusActive, resp.Status)
	assert.Equal(t, []string{"Accra", "Kumasi"}, resp.Campuses)
	assert.NotEmpty(t, resp.ID)
}

func TestSchoolDisableIsTerminal(t *testing.T) {
	svc, schools, _, _ := newSchoolService(t)

	school := &models.School{Name: "Old School", Type: models.SchoolTypeSHS, Status: models.SchoolStatusActive}
	require.NoError(t, schools.Create(school))

	resp, err := svc.Disable(school.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SchoolStatusDisabled, resp.Status)

	// Disabling again is a conflict; there is no reactivate path.
	_, err = svc.Disable(school.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrSchoolAlreadyDisabled))
}

func TestSchoolDisableUnknown(t *testing.T) {
	svc, _, _, _ := newSchoolService(t)

	_, err := svc.Disable("no-such-id")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestSchoolReachCounts(t *testing.T) {
	svc, schools, providers, partners := newSchoolService(t)

	school := &models.School{Name: "Reach School", Type: models.SchoolTypeNMTC}
	require.NoError(t, school.SetCampuses([]string{"Main", "North", "South"}))
	require.NoError(t, schools.Create(school))

	for _, email := range []string{"p1@example.com", "p2@example.com"} {
		require.NoError(t, providers.Create(&models.Provider{
			Email: email, FullName: "P", PasswordHash: "x", SchoolID: &school.ID,
		}))
	}
	require.NoError(t, partners.Create(&models.Partner{Name: "Clinic", SchoolID: &school.ID}))

	reach, err := svc.Reach(school.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reach.TotalProviders)
	assert.Equal(t, int64(1), reach.TotalPartners)
	assert.Equal(t, 3, reach.TotalCampuses)
}

func TestSchoolPartnersRequiresSchool(t *testing.T) {
	svc, schools, _, partners := newSchoolService(t)

	school := &models.School{Name: "Partnered", Type: models.SchoolTypeJHS}
	require.NoError(t, schools.Create(school))
	require.NoError(t, partners.Create(&models.Partner{Name: "Lab", SchoolID: &school.ID}))
	require.NoError(t, partners.Create(&models.Partner{Name: "Unattached"}))

	list, err := svc.Partners(school.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Lab", list[0].Name)

	_, err = svc.Partners("missing-school")
	require.Error(t, err)
}

func TestProviderApproveRejectTransitions(t *testing.T) {
	providers := helpers.NewMemProviderRepo()
	svc := services.NewProviderService(providers)

	require.NoError(t, providers.Create(&models.Provider{
		Email: "app@example.com", FullName: "App", PasswordHash: "x",
		ApplicationStatus: models.ApplicationStatusPending,
	}))

	updated, err := svc.Approve("app@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, updated.ApplicationStatus)

	// Approval is terminal; a second decision is a conflict.
	_, err = svc.Reject("app@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrProviderNotPending))

	_, err = svc.Approve("missing@example.com")
	require.Error(t, err)
}

func TestSpecialtyCreateDuplicate(t *testing.T) {
	specialties := helpers.NewMemSpecialtyRepo()
	svc := services.NewSpecialtyService(specialties)

	_, err := svc.Create(&dto.CreateSpecialtyRequest{Name: "Dermatology"})
	require.NoError(t, err)

	_, err = svc.Create(&dto.CreateSpecialtyRequest{Name: "Dermatology"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrSpecialtyAlreadyExists))
}

func TestPartnerCreateValidatesSchool(t *testing.T) {
	partners := helpers.NewMemPartnerRepo()
	schools := helpers.NewMemSchoolRepo()
	svc := services.NewPartnerService(partners, schools)

	missing := "no-such-school"
	_, err := svc.Create(&dto.CreatePartnerRequest{Name: "Orphan", SchoolID: &missing})
	require.Error(t, err)

	school := &models.School{Name: "Host", Type: models.SchoolTypeSHS}
	require.NoError(t, schools.Create(school))

	created, err := svc.Create(&dto.CreatePartnerRequest{Name: "Attached", SchoolID: &school.ID})
	require.NoError(t, err)
	assert.Equal(t, models.PartnerStatusActive, created.Status)
}
