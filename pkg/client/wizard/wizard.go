// Package wizard owns the provider signup flow: account creation,
// email verification, photo, profile details and specialty. Every
// completed step is committed to the server immediately, so an
// interrupted signup resumes where it stopped.
package wizard

import (
	"context"
	"errors"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"healthreach_backend/pkg/client/api"
	"healthreach_backend/pkg/client/session"
)

// Step is a stage of the signup flow.
type Step int

const (
	StepCreate Step = iota
	StepVerify
	StepPhoto
	StepBio
	StepSpecialty
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepCreate:
		return "create"
	case StepVerify:
		return "verify"
	case StepPhoto:
		return "photo"
	case StepBio:
		return "bio"
	case StepSpecialty:
		return "specialty"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// Validation errors reported before any request is sent.
var (
	ErrInvalidEmail    = errors.New("email address is not valid")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
	ErrNameRequired    = errors.New("full name is required")
	ErrInvalidCode     = errors.New("verification code must be 6 digits")
	ErrPhoneRequired   = errors.New("office phone number is required")
	ErrBioRequired     = errors.New("bio is required")
	ErrNoSpecialty     = errors.New("a specialty must be selected")
	ErrWrongStep       = errors.New("operation does not match the current step")
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	codePattern  = regexp.MustCompile(`^\d{6}$`)
)

// Wizard is the single owner of signup state. All screens read the
// current step from here and never track their own copy.
type Wizard struct {
	api   *api.Client
	store session.Store
	now   func() time.Time

	step     Step
	email    string
	fullName string
	resumed  bool
}

// New creates a wizard, resuming a persisted draft when one exists
// and has not expired.
func New(apiClient *api.Client, store session.Store) (*Wizard, error) {
	w := &Wizard{
		api:   apiClient,
		store: store,
		now:   time.Now,
		step:  StepCreate,
	}

	sess, err := store.Load()
	if err != nil {
		return nil, err
	}
	if draft := sess.SignupDraft; draft != nil {
		if draft.Expired(w.now()) {
			sess.SignupDraft = nil
			if err := store.Save(sess); err != nil {
				return nil, err
			}
		} else {
			w.step = Step(draft.Step)
			w.email = draft.Email
			w.fullName = draft.FullName
		}
	}
	return w, nil
}

// Current returns the step the user should see.
func (w *Wizard) Current() Step { return w.step }

// Email returns the address the signup was started with.
func (w *Wizard) Email() string { return w.email }

// ResumeFromQuery positions the wizard from deep-link query
// parameters. It applies at most once, on entry; later calls are
// ignored so in-flow navigation cannot be hijacked by a stale URL.
func (w *Wizard) ResumeFromQuery(values url.Values) {
	if w.resumed {
		return
	}
	w.resumed = true

	if email := strings.TrimSpace(values.Get("email")); email != "" {
		w.email = email
	}
	rawStep := values.Get("step")
	if rawStep == "" {
		return
	}
	n, err := strconv.Atoi(rawStep)
	if err != nil || n < int(StepCreate) || n > int(StepSpecialty) {
		return
	}
	// Never skip ahead of what the draft says is committed.
	if Step(n) < w.step {
		w.step = Step(n)
	}
}

// EnterAt jumps an authenticated returning user to the step a sign-in
// refusal pointed at.
func (w *Wizard) EnterAt(step Step) {
	if step < StepPhoto || step > StepSpecialty {
		return
	}
	w.step = step
}

// Create registers the account and advances to email verification.
// The token the server returns is saved so later steps can commit.
func (w *Wizard) Create(ctx context.Context, email, password, fullName, professionalTitle string) error {
	if w.step != StepCreate {
		return ErrWrongStep
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if len(password) < 8 {
		return ErrPasswordTooWeak
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrNameRequired
	}

	result, err := w.api.CreateAccount(ctx, &api.CreateAccountRequest{
		Email:             email,
		Password:          password,
		FullName:          fullName,
		ProfessionalTitle: professionalTitle,
	})
	if err != nil {
		return err
	}

	w.email = email
	w.fullName = fullName
	w.step = StepVerify
	return w.persist(result.Token)
}

// Verify confirms the emailed six-digit code.
func (w *Wizard) Verify(ctx context.Context, code string) error {
	if w.step != StepVerify {
		return ErrWrongStep
	}
	code = strings.TrimSpace(code)
	if !codePattern.MatchString(code) {
		return ErrInvalidCode
	}
	if err := w.api.SubmitSignupCode(ctx, w.email, code); err != nil {
		return err
	}
	w.step = StepPhoto
	return w.persist("")
}

// Photo uploads the profile photo and advances to profile details.
func (w *Wizard) Photo(ctx context.Context, filename string, file io.Reader) error {
	if w.step != StepPhoto {
		return ErrWrongStep
	}
	if _, err := w.api.AddPhoto(ctx, filename, file); err != nil {
		return err
	}
	w.step = StepBio
	return w.persist("")
}

// Bio commits office phone, bio and optional professional title.
func (w *Wizard) Bio(ctx context.Context, officePhone, bio, professionalTitle string) error {
	if w.step != StepBio {
		return ErrWrongStep
	}
	if strings.TrimSpace(officePhone) == "" {
		return ErrPhoneRequired
	}
	if strings.TrimSpace(bio) == "" {
		return ErrBioRequired
	}
	if _, err := w.api.UpdateProfile(ctx, &api.UpdateProfileRequest{
		OfficePhoneNumber: officePhone,
		Bio:               bio,
		ProfessionalTitle: professionalTitle,
	}); err != nil {
		return err
	}
	w.step = StepSpecialty
	return w.persist("")
}

// Specialty commits the final step and finishes the signup. The draft
// is dropped and the session moves straight to the pending-review
// state; the new account always awaits curator approval.
func (w *Wizard) Specialty(ctx context.Context, specialtyID string) error {
	if w.step != StepSpecialty {
		return ErrWrongStep
	}
	if strings.TrimSpace(specialtyID) == "" {
		return ErrNoSpecialty
	}
	if _, err := w.api.AddSpecialty(ctx, specialtyID); err != nil {
		return err
	}
	w.step = StepDone

	sess, err := w.store.Load()
	if err != nil {
		return err
	}
	sess.SignupDraft = nil
	sess.PendingUser = &session.PendingUser{Email: w.email, FullName: w.fullName}
	return w.store.Save(sess)
}

// Back moves one step towards the start and reports whether it did.
// The create and verify steps are committed server state, so Back
// never crosses back into them once verification happened; a false
// return means the caller owns the exit from the wizard.
func (w *Wizard) Back() bool {
	switch w.step {
	case StepVerify:
		w.step = StepCreate
	case StepBio:
		w.step = StepPhoto
	case StepSpecialty:
		w.step = StepBio
	default:
		return false
	}
	return true
}

// persist writes the draft (and the token when a new one was issued)
// into the session store.
func (w *Wizard) persist(token string) error {
	sess, err := w.store.Load()
	if err != nil {
		return err
	}
	if token != "" {
		sess.Token = token
		sess.Email = w.email
		sess.Role = session.RoleProvider
	}
	sess.SignupDraft = &session.SignupDraft{
		Email:     w.email,
		FullName:  w.fullName,
		Step:      int(w.step),
		ExpiresAt: w.now().Add(session.SignupDraftTTL),
	}
	return w.store.Save(sess)
}
