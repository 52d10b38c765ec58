// Package session persists the signed-in user's credentials and
// in-progress signup state between application runs.
package session

import (
	"time"
)

// Role values mirror the server's JWT roles.
const (
	RoleProvider = "provider"
	RoleCurator  = "curator"
)

// SignupDraftTTL is how long an unfinished signup survives before the
// wizard restarts from the beginning.
const SignupDraftTTL = time.Hour

// PendingUser is the snapshot kept for an account that signed in while
// still awaiting curator review.
type PendingUser struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// SignupDraft remembers where an interrupted signup left off so the
// wizard can resume instead of starting over.
type SignupDraft struct {
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Step      int       `json:"step"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the draft is too old to resume.
func (d *SignupDraft) Expired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && now.After(d.ExpiresAt)
}

// Session is everything the client persists for one user.
type Session struct {
	Token       string       `json:"token,omitempty"`
	Email       string       `json:"email,omitempty"`
	Role        string       `json:"role,omitempty"`
	PendingUser *PendingUser `json:"pendingUser,omitempty"`
	SignupDraft *SignupDraft `json:"signupDraft,omitempty"`
}

// IsAuthenticated reports whether a bearer token is present.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// Store loads and saves sessions. Implementations must tolerate a
// missing session on Load and a missing session on Clear.
type Store interface {
	// Load returns the persisted session, or an empty session when
	// nothing has been saved yet.
	Load() (*Session, error)

	// Save persists the session, replacing any previous one.
	Save(s *Session) error

	// Clear removes the persisted session. Clearing an already empty
	// store is not an error.
	Clear() error
}
