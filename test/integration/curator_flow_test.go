package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthreach_backend/internal/models"
	"healthreach_backend/pkg/client"
	"healthreach_backend/pkg/client/api"
	"healthreach_backend/pkg/client/session"
	"healthreach_backend/pkg/client/transport"
	"healthreach_backend/test/helpers"
)

func curatorSDK(t *testing.T, ts *helpers.TestServer) *client.Client {
	t.Helper()
	sdk := newSDK(ts)
	pass := ts.SeedCurator(t, "curator@example.com")
	_, err := sdk.Lifecycle.CuratorSignIn(context.Background(), "curator@example.com", pass)
	require.NoError(t, err)
	return sdk
}

func TestSchoolManagement(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ctx := context.Background()
	sdk := curatorSDK(t, ts)

	view := sdk.SchoolsView()
	require.NoError(t, view.Load(ctx))
	assert.Empty(t, view.Schools())

	// Two-phase creation against the live server.
	require.NoError(t, view.BeginCreate(api.CreateSchoolRequest{
		Name:     "Kumasi Nursing Training College",
		Type:     "NMTC",
		Campuses: []string{"Asokore", "Central"},
	}))
	created, err := view.ConfirmCreate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, []string{"Asokore", "Central"}, created.Campuses)

	// Reach reflects campuses plus attached records.
	schoolID := created.ID
	partner, err := sdk.PartnersView().Create(ctx, api.CreatePartnerRequest{
		Name: "Teaching Hospital", SchoolID: &schoolID,
	})
	require.NoError(t, err)
	assert.Equal(t, "active", partner.Status)

	reach, err := view.Reach(ctx, schoolID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reach.TotalPartners)
	assert.Equal(t, 2, reach.TotalCampuses)

	partners, err := view.Partners(ctx, schoolID)
	require.NoError(t, err)
	require.Len(t, partners, 1)

	// Disable is one way.
	disabled, err := view.Disable(ctx, schoolID)
	require.NoError(t, err)
	assert.Equal(t, "disabled", disabled.Status)

	_, err = view.Disable(ctx, schoolID)
	require.Error(t, err)
	assert.True(t, transport.IsStatus(err, http.StatusConflict))
}

func TestSpecialtyManagement(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ctx := context.Background()
	sdk := curatorSDK(t, ts)

	created, err := sdk.API.CreateSpecialty(ctx, "Dermatology")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = sdk.API.CreateSpecialty(ctx, "Dermatology")
	require.Error(t, err)
	assert.True(t, transport.IsStatus(err, http.StatusConflict))

	list, err := sdk.API.ListSpecialties(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCuratorRoleRequiredForManagement(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ctx := context.Background()

	ts.SeedProvider(t, &models.Provider{
		Email: "doc@example.com", FullName: "Doc", IsVerified: true,
		ApplicationStatus: models.ApplicationStatusApproved,
		ProfilePhotoURL:   "http://files.test/p.png",
		OfficePhoneNumber: "+233201234567",
		Bio:               "bio",
		ProfessionalTitle: "Nurse",
	}, "password1")

	store := session.NewMemoryStore()
	expired := 0
	sdk := client.New(client.Config{
		BaseURL:          ts.BaseURL,
		Store:            store,
		OnSessionExpired: func() { expired++ },
	})
	_, err := sdk.Lifecycle.SignIn(ctx, "doc@example.com", "password1")
	require.NoError(t, err)

	// Providers can read.
	_, err = sdk.API.ListSchools(ctx)
	require.NoError(t, err)

	// A 403 on an authenticated path is treated as a dead session:
	// the error surfaces and the client is signed out.
	_, err = sdk.API.CreateSchool(ctx, &api.CreateSchoolRequest{Name: "X", Type: "JHS"})
	require.Error(t, err)
	assert.True(t, transport.IsStatus(err, http.StatusForbidden))
	assert.Equal(t, 1, expired)

	sess, _ := store.Load()
	assert.False(t, sess.IsAuthenticated())
}

func TestExpiredTokenSignsOutOnce(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ctx := context.Background()

	store := session.NewMemoryStore()
	expired := 0
	sdk := client.New(client.Config{
		BaseURL:          ts.BaseURL,
		Store:            store,
		OnSessionExpired: func() { expired++ },
	})

	require.NoError(t, store.Save(&session.Session{Token: "not-a-real-token", Email: "x@example.com"}))

	_, err := sdk.API.ListSchools(ctx)
	require.Error(t, err)
	assert.True(t, transport.IsStatus(err, http.StatusUnauthorized))

	assert.Equal(t, 1, expired)
	sess, _ := store.Load()
	assert.False(t, sess.IsAuthenticated())

	// Further rejected requests inside the cooldown stay quiet.
	_, err = sdk.API.ListProviders(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, expired)
}

func TestValidationErrors(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ctx := context.Background()
	sdk := curatorSDK(t, ts)

	// Server side validation rejects an unknown school type.
	_, err := sdk.API.CreateSchool(ctx, &api.CreateSchoolRequest{Name: "X", Type: "Academy"})
	require.Error(t, err)
	assert.True(t, transport.IsStatus(err, http.StatusBadRequest))

	// Missing required fields on public endpoints too.
	_, err = sdk.API.CreateAccount(ctx, &api.CreateAccountRequest{Email: "bad"})
	require.Error(t, err)
	assert.True(t, transport.IsStatus(err, http.StatusBadRequest))
}
