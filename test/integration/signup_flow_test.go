package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthreach_backend/internal/models"
	"healthreach_backend/pkg/client"
	"healthreach_backend/pkg/client/lifecycle"
	"healthreach_backend/pkg/client/session"
	"healthreach_backend/pkg/client/wizard"
	"healthreach_backend/test/helpers"
)

func newSDK(ts *helpers.TestServer) *client.Client {
	return client.New(client.Config{
		BaseURL: ts.BaseURL,
		Store:   session.NewMemoryStore(),
	})
}

// The whole provider journey: signup wizard, pending review, curator
// approval, full sign-in.
func TestProviderOnboardingEndToEnd(t *testing.T) {
	ts := helpers.NewTestServer(t)
	specialty := ts.SeedSpecialty(t, "Pediatrics")
	ctx := context.Background()

	sdk := newSDK(ts)
	w, err := sdk.Wizard()
	require.NoError(t, err)

	require.NoError(t, w.Create(ctx, "ama@example.com", "password1", "Ama Mensah", ""))

	// The verification code went out through the email provider; read
	// it back from the stored record.
	stored, err := ts.Providers.FindByEmail("ama@example.com")
	require.NoError(t, err)
	require.Len(t, stored.SignupCode, 6)

	require.NoError(t, w.Verify(ctx, stored.SignupCode))
	require.NoError(t, w.Photo(ctx, "ama.png", strings.NewReader("png-bytes")))
	require.NoError(t, w.Bio(ctx, "+233201234567", "Pediatric specialist in Accra", ""))
	require.NoError(t, w.Specialty(ctx, specialty.ID))

	// Every step was committed server side.
	stored, err = ts.Providers.FindByEmail("ama@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
	assert.True(t, stored.IsComplete())
	assert.Equal(t, models.ApplicationStatusPending, stored.ApplicationStatus)

	// Complete but unapproved: sign-in lands on the pending screen.
	outcome, err := sdk.Lifecycle.SignIn(ctx, "ama@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RoutePending, outcome.Route)
	assert.Equal(t, "ACCOUNT PENDING", outcome.Message)

	// A curator approves the application.
	curatorSDK := newSDK(ts)
	curatorPass := ts.SeedCurator(t, "curator@example.com")
	curatorOutcome, err := curatorSDK.Lifecycle.CuratorSignIn(ctx, "curator@example.com", curatorPass)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RouteHome, curatorOutcome.Route)

	providersView := curatorSDK.ProvidersView()
	require.NoError(t, providersView.Load(ctx))
	require.Len(t, providersView.Pending(), 1)

	approved, err := providersView.Approve(ctx, "ama@example.com")
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", approved.ApplicationStatus)

	// Now the provider signs in normally.
	outcome, err = sdk.Lifecycle.SignIn(ctx, "ama@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RouteHome, outcome.Route)
	assert.Empty(t, outcome.Message)
}

func TestIncompleteProfileSignInReopensWizard(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ctx := context.Background()

	// Verified account that stopped before the photo step.
	ts.SeedProvider(t, &models.Provider{
		Email: "halfway@example.com", FullName: "Halfway", IsVerified: true,
	}, "password1")

	sdk := newSDK(ts)
	outcome, err := sdk.Lifecycle.SignIn(ctx, "halfway@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RouteWizard, outcome.Route)
	assert.Equal(t, lifecycle.StepPhoto, outcome.WizardStep)

	// The refusal left a usable token behind, so the reopened wizard
	// can commit the missing step on this fresh device.
	w, err := sdk.Wizard()
	require.NoError(t, err)
	w.EnterAt(wizard.StepPhoto)
	require.NoError(t, w.Photo(ctx, "halfway.png", strings.NewReader("png-bytes")))

	stored, err := ts.Providers.FindByEmail("halfway@example.com")
	require.NoError(t, err)
	assert.True(t, stored.HasPhoto())

	// The next refusal moves on to the following missing step.
	outcome, err = sdk.Lifecycle.SignIn(ctx, "halfway@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.RouteWizard, outcome.Route)
	assert.Equal(t, lifecycle.StepBio, outcome.WizardStep)
}

func TestRejectedDecisionIsTerminal(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ctx := context.Background()

	ts.SeedProvider(t, &models.Provider{
		Email: "reject@example.com", FullName: "Reject", IsVerified: true,
		ApplicationStatus: models.ApplicationStatusPending,
		ProfilePhotoURL:   "http://files.test/p.png",
		OfficePhoneNumber: "+233201234567",
		Bio:               "bio",
		ProfessionalTitle: "Nurse",
	}, "password1")

	curatorSDK := newSDK(ts)
	curatorPass := ts.SeedCurator(t, "curator@example.com")
	_, err := curatorSDK.Lifecycle.CuratorSignIn(ctx, "curator@example.com", curatorPass)
	require.NoError(t, err)

	view := curatorSDK.ProvidersView()
	require.NoError(t, view.Load(ctx))

	rejected, err := view.Reject(ctx, "reject@example.com")
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", rejected.ApplicationStatus)

	// A second decision conflicts.
	_, err = view.Approve(ctx, "reject@example.com")
	require.Error(t, err)
}

func TestAccountRecoveryEndToEnd(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ctx := context.Background()

	ts.SeedProvider(t, &models.Provider{
		Email: "lost@example.com", FullName: "Lost",
	}, "oldpassword1")

	sdk := newSDK(ts)
	require.NoError(t, sdk.API.RecoverAccount(ctx, "lost@example.com"))

	stored, err := ts.Providers.FindByEmail("lost@example.com")
	require.NoError(t, err)
	require.Len(t, stored.RecoveryCode, 6)

	resetToken, err := sdk.API.SubmitRecoveryCode(ctx, "lost@example.com", stored.RecoveryCode)
	require.NoError(t, err)
	require.NotEmpty(t, resetToken)

	require.NoError(t, sdk.API.ResetPassword(ctx, resetToken, "newpassword1"))

	// Recovery never reveals whether an email exists.
	require.NoError(t, sdk.API.RecoverAccount(ctx, "ghost@example.com"))
}
