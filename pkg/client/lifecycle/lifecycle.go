// Package lifecycle decides where the application sends a user after
// authentication events: home, the pending-review screen, the signup
// wizard, or back to sign-in.
package lifecycle

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"healthreach_backend/pkg/client/api"
	"healthreach_backend/pkg/client/session"
	"healthreach_backend/pkg/client/transport"
)

// VerificationState classifies an account's review progress.
type VerificationState int

const (
	// StateUnverified means the email code was never confirmed.
	StateUnverified VerificationState = iota
	// StatePending means the application awaits curator review.
	StatePending
	// StateApproved means the account has full access.
	StateApproved
	// StateRejected means a curator declined the application.
	StateRejected
)

func (s VerificationState) String() string {
	switch s {
	case StateUnverified:
		return "unverified"
	case StatePending:
		return "pending"
	case StateApproved:
		return "approved"
	case StateRejected:
		return "rejected"
	default:
		return fmt.Sprintf("VerificationState(%d)", int(s))
	}
}

// Route names the screen the application should show next.
type Route int

const (
	RouteSignIn Route = iota
	RouteHome
	RoutePending
	RouteWizard
)

func (r Route) String() string {
	switch r {
	case RouteSignIn:
		return "sign-in"
	case RouteHome:
		return "home"
	case RoutePending:
		return "pending"
	case RouteWizard:
		return "wizard"
	default:
		return fmt.Sprintf("Route(%d)", int(r))
	}
}

// WizardStep identifies the signup step a returning user must finish.
type WizardStep int

const (
	StepPhoto WizardStep = iota
	StepBio
	StepSpecialty
)

// Server messages that the sign-in flow pattern-matches on.
const (
	accountPendingMessage = "ACCOUNT PENDING"
	photoMissingMessage   = "PROFILE PHOTO NOT ADDED"
	profileNotUpdated     = "PROFILE NOT UPDATED"
	specialtyMissing      = "SPECIALTY NOT ADDED"
)

// Outcome is the result of a sign-in attempt.
type Outcome struct {
	Route Route

	// WizardStep is set when Route is RouteWizard.
	WizardStep WizardStep

	// Message carries the server's informational note, if any.
	Message string
}

// Controller runs the session lifecycle over the API and the local
// session store.
type Controller struct {
	api   *api.Client
	store session.Store
}

// NewController builds a lifecycle controller.
func NewController(apiClient *api.Client, store session.Store) *Controller {
	return &Controller{api: apiClient, store: store}
}

// StateOf classifies a provider record into a verification state.
func StateOf(p *api.Provider) VerificationState {
	if p == nil || !p.IsVerified {
		return StateUnverified
	}
	switch p.ApplicationStatus {
	case "APPROVED":
		return StateApproved
	case "REJECTED":
		return StateRejected
	default:
		return StatePending
	}
}

// SignIn authenticates a provider and decides the next screen.
//
// A pending account still gets its token saved so the pending screen
// can poll for approval. An incomplete profile maps the server's
// refusal message onto the wizard step that is missing; the refusal
// carries a token which is saved so the wizard can commit the
// remaining steps.
func (c *Controller) SignIn(ctx context.Context, email, password string) (*Outcome, error) {
	result, message, err := c.api.SignIn(ctx, email, password)
	if err != nil {
		if step, ok := wizardStepFor(err); ok {
			if token := refusalToken(err); token != "" {
				sess := &session.Session{
					Token: token,
					Email: strings.ToLower(strings.TrimSpace(email)),
					Role:  session.RoleProvider,
				}
				if saveErr := c.store.Save(sess); saveErr != nil {
					return nil, saveErr
				}
			}
			return &Outcome{Route: RouteWizard, WizardStep: step}, nil
		}
		return nil, err
	}

	sess := &session.Session{
		Token: result.Token,
		Email: email,
		Role:  session.RoleProvider,
	}

	if isPending(result, message) {
		if result.Provider != nil {
			sess.PendingUser = &session.PendingUser{
				Email:    result.Provider.Email,
				FullName: result.Provider.FullName,
			}
		} else {
			sess.PendingUser = &session.PendingUser{Email: email}
		}
		if err := c.store.Save(sess); err != nil {
			return nil, err
		}
		return &Outcome{Route: RoutePending, Message: message}, nil
	}

	if err := c.store.Save(sess); err != nil {
		return nil, err
	}
	return &Outcome{Route: RouteHome, Message: message}, nil
}

// CuratorSignIn authenticates a curator. Curators have no pending or
// wizard states.
func (c *Controller) CuratorSignIn(ctx context.Context, email, password string) (*Outcome, error) {
	result, err := c.api.CuratorSignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	sess := &session.Session{
		Token: result.Token,
		Email: email,
		Role:  session.RoleCurator,
	}
	if err := c.store.Save(sess); err != nil {
		return nil, err
	}
	return &Outcome{Route: RouteHome}, nil
}

// SignOut clears the persisted session. Signing out twice is a no-op.
func (c *Controller) SignOut() error {
	return c.store.Clear()
}

// Resume decides the starting screen from the persisted session alone,
// without a network round trip.
func (c *Controller) Resume() (*Outcome, error) {
	sess, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	if !sess.IsAuthenticated() {
		return &Outcome{Route: RouteSignIn}, nil
	}
	if sess.PendingUser != nil {
		return &Outcome{Route: RoutePending}, nil
	}
	return &Outcome{Route: RouteHome}, nil
}

// RefreshPending re-checks a pending account against the server and
// promotes the session once a curator approves it.
func (c *Controller) RefreshPending(ctx context.Context) (*Outcome, error) {
	profile, err := c.api.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if StateOf(profile) != StateApproved {
		return &Outcome{Route: RoutePending}, nil
	}

	sess, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	sess.PendingUser = nil
	if err := c.store.Save(sess); err != nil {
		return nil, err
	}
	return &Outcome{Route: RouteHome}, nil
}

// HandleExpiry reacts to the transport's session-expiry signal: the
// stored session is always dropped. The returned redirect is false
// when the user is already on a screen that needs no session, so the
// caller skips the navigation but the stale token is still gone.
func (c *Controller) HandleExpiry(currentPath string) (redirect bool, err error) {
	redirect = !isPublicScreen(currentPath)
	if err := c.store.Clear(); err != nil {
		return redirect, err
	}
	return redirect, nil
}

// isPending folds the different ways the server marks an unapproved
// account into one answer.
func isPending(result *api.AuthResult, message string) bool {
	if strings.EqualFold(strings.TrimSpace(message), accountPendingMessage) {
		return true
	}
	p := result.Provider
	if p == nil {
		return false
	}
	if p.ApplicationStatus == "PENDING" || p.Status == "PENDING" {
		return true
	}
	return !p.IsVerified
}

// wizardStepFor maps a profile-incomplete refusal onto the wizard step
// that must be finished, earliest missing step first.
func wizardStepFor(err error) (WizardStep, bool) {
	apiErr, ok := err.(*transport.APIError)
	if !ok || apiErr.Status != http.StatusForbidden {
		return 0, false
	}
	switch strings.TrimSpace(apiErr.Message) {
	case photoMissingMessage:
		return StepPhoto, true
	case profileNotUpdated:
		return StepBio, true
	case specialtyMissing:
		return StepSpecialty, true
	}
	return 0, false
}

// refusalToken extracts the token a profile-incomplete refusal
// carries, empty when absent.
func refusalToken(err error) string {
	apiErr, ok := err.(*transport.APIError)
	if !ok {
		return ""
	}
	return apiErr.Details["token"]
}

// Screens reachable without a session; expiry while on one of these
// must not bounce the user around.
var publicScreens = []string{
	"/sign-in",
	"/sign-up",
	"/recover",
	"/reset-password",
}

func isPublicScreen(path string) bool {
	for _, p := range publicScreens {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
