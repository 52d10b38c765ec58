package wizard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthreach_backend/pkg/client/api"
	"healthreach_backend/pkg/client/session"
	"healthreach_backend/pkg/client/transport"
)

// signupServer fakes the signup endpoints and records which were hit.
func signupServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		switch r.URL.Path {
		case "/auth/create-account":
			w.Write([]byte(`{"success":true,"data":{"token":"signup-tok","provider":{"email":"new@example.com","fullName":"New"}}}`))
		case "/auth/submit-signup-code":
			w.Write([]byte(`{"success":true,"message":"Email verified"}`))
		case "/auth/add-photo":
			w.Write([]byte(`{"success":true,"data":{"profilePhotoUrl":"/p/x.png"}}`))
		case "/auth/update-profile", "/auth/add-specialty":
			w.Write([]byte(`{"success":true,"data":{"email":"new@example.com"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"not found"}`))
		}
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func newWizard(t *testing.T, store session.Store) *Wizard {
	t.Helper()
	server, _ := signupServer(t)
	return newWizardAgainst(t, server, store)
}

func newWizardAgainst(t *testing.T, server *httptest.Server, store session.Store) *Wizard {
	t.Helper()
	tr := transport.New(server.URL, func() string {
		sess, _ := store.Load()
		return sess.Token
	})
	w, err := New(api.New(tr), store)
	require.NoError(t, err)
	return w
}

func TestWizardFullFlow(t *testing.T) {
	server, calls := signupServer(t)
	store := session.NewMemoryStore()
	w := newWizardAgainst(t, server, store)

	ctx := context.Background()
	assert.Equal(t, StepCreate, w.Current())

	require.NoError(t, w.Create(ctx, "New@Example.com", "password1", "New Provider", ""))
	assert.Equal(t, StepVerify, w.Current())
	assert.Equal(t, "new@example.com", w.Email())

	// The token from account creation is stored immediately.
	sess, _ := store.Load()
	assert.Equal(t, "signup-tok", sess.Token)
	require.NotNil(t, sess.SignupDraft)

	require.NoError(t, w.Verify(ctx, "123456"))
	assert.Equal(t, StepPhoto, w.Current())

	require.NoError(t, w.Photo(ctx, "me.png", strings.NewReader("png")))
	assert.Equal(t, StepBio, w.Current())

	require.NoError(t, w.Bio(ctx, "+233201234567", "A short bio", "Nurse"))
	assert.Equal(t, StepSpecialty, w.Current())

	require.NoError(t, w.Specialty(ctx, "spec-1"))
	assert.Equal(t, StepDone, w.Current())

	// Finishing drops the draft, keeps the credentials and moves the
	// session into the pending-review state.
	sess, _ = store.Load()
	assert.Nil(t, sess.SignupDraft)
	assert.Equal(t, "signup-tok", sess.Token)
	require.NotNil(t, sess.PendingUser)
	assert.Equal(t, "new@example.com", sess.PendingUser.Email)

	assert.Equal(t, []string{
		"/auth/create-account",
		"/auth/submit-signup-code",
		"/auth/add-photo",
		"/auth/update-profile",
		"/auth/add-specialty",
	}, *calls)
}

func TestWizardClientSideValidation(t *testing.T) {
	store := session.NewMemoryStore()
	w := newWizard(t, store)
	ctx := context.Background()

	assert.ErrorIs(t, w.Create(ctx, "not-an-email", "password1", "Name", ""), ErrInvalidEmail)
	assert.ErrorIs(t, w.Create(ctx, "a@b.com", "short", "Name", ""), ErrPasswordTooWeak)
	assert.ErrorIs(t, w.Create(ctx, "a@b.com", "password1", "  ", ""), ErrNameRequired)

	require.NoError(t, w.Create(ctx, "a@b.com", "password1", "Name", ""))
	assert.ErrorIs(t, w.Verify(ctx, "12345"), ErrInvalidCode)
	assert.ErrorIs(t, w.Verify(ctx, "abcdef"), ErrInvalidCode)

	require.NoError(t, w.Verify(ctx, "123456"))
	require.NoError(t, w.Photo(ctx, "x.png", strings.NewReader("png")))
	assert.ErrorIs(t, w.Bio(ctx, "", "bio", ""), ErrPhoneRequired)
	assert.ErrorIs(t, w.Bio(ctx, "+233", "", ""), ErrBioRequired)

	require.NoError(t, w.Bio(ctx, "+233", "bio", ""))
	assert.ErrorIs(t, w.Specialty(ctx, " "), ErrNoSpecialty)
}

func TestWizardRejectsOutOfOrderCalls(t *testing.T) {
	store := session.NewMemoryStore()
	w := newWizard(t, store)
	ctx := context.Background()

	assert.ErrorIs(t, w.Verify(ctx, "123456"), ErrWrongStep)
	assert.ErrorIs(t, w.Specialty(ctx, "spec-1"), ErrWrongStep)
}

func TestWizardResumesFromDraft(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(&session.Session{
		Token: "signup-tok",
		SignupDraft: &session.SignupDraft{
			Email:     "back@example.com",
			Step:      int(StepBio),
			ExpiresAt: time.Now().Add(30 * time.Minute),
		},
	}))

	w := newWizard(t, store)
	assert.Equal(t, StepBio, w.Current())
	assert.Equal(t, "back@example.com", w.Email())
}

func TestWizardExpiredDraftRestarts(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(&session.Session{
		SignupDraft: &session.SignupDraft{
			Email:     "stale@example.com",
			Step:      int(StepPhoto),
			ExpiresAt: time.Now().Add(-time.Minute),
		},
	}))

	w := newWizard(t, store)
	assert.Equal(t, StepCreate, w.Current())

	// The stale draft is also gone from the store.
	sess, _ := store.Load()
	assert.Nil(t, sess.SignupDraft)
}

func TestWizardResumeFromQueryAppliesOnce(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(&session.Session{
		SignupDraft: &session.SignupDraft{
			Email:     "deep@example.com",
			Step:      int(StepBio),
			ExpiresAt: time.Now().Add(30 * time.Minute),
		},
	}))
	w := newWizard(t, store)

	// A deep link may step back, never forward past committed state.
	w.ResumeFromQuery(url.Values{"step": []string{"2"}})
	assert.Equal(t, StepPhoto, w.Current())

	// A second application is ignored.
	w.ResumeFromQuery(url.Values{"step": []string{"4"}})
	assert.Equal(t, StepPhoto, w.Current())
}

func TestWizardResumeFromQueryIgnoresGarbage(t *testing.T) {
	w := newWizard(t, session.NewMemoryStore())

	w.ResumeFromQuery(url.Values{"step": []string{"banana"}})
	assert.Equal(t, StepCreate, w.Current())
}

func TestWizardBack(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(&session.Session{
		SignupDraft: &session.SignupDraft{
			Email:     "b@example.com",
			Step:      int(StepSpecialty),
			ExpiresAt: time.Now().Add(30 * time.Minute),
		},
	}))
	w := newWizard(t, store)

	assert.True(t, w.Back())
	assert.Equal(t, StepBio, w.Current())
	assert.True(t, w.Back())
	assert.Equal(t, StepPhoto, w.Current())

	// Photo is the floor for a verified account; the false return
	// tells the caller to exit the wizard.
	assert.False(t, w.Back())
	assert.Equal(t, StepPhoto, w.Current())
}

func TestWizardBackExitsFromFirstStep(t *testing.T) {
	w := newWizard(t, session.NewMemoryStore())
	require.Equal(t, StepCreate, w.Current())

	assert.False(t, w.Back())
	assert.Equal(t, StepCreate, w.Current())
}

func TestWizardEnterAt(t *testing.T) {
	w := newWizard(t, session.NewMemoryStore())

	w.EnterAt(StepSpecialty)
	assert.Equal(t, StepSpecialty, w.Current())

	// Steps outside the committed range are ignored.
	w.EnterAt(StepDone)
	assert.Equal(t, StepSpecialty, w.Current())
}
