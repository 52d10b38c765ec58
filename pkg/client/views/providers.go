package views

import (
	"context"
	"errors"
	"sync"

	"healthreach_backend/pkg/client/api"
)

// ErrActionInFlight means the card's approve or reject button was
// pressed while the previous press is still being processed.
var ErrActionInFlight = errors.New("a decision for this provider is already in flight")

// ProvidersView backs the curator's provider review screen.
type ProvidersView struct {
	api  *api.Client
	opts Options

	providers []api.Provider
	source    Source

	// busy tracks in-flight approve/reject per provider email so a
	// double press cannot submit twice.
	mu   sync.Mutex
	busy map[string]bool
}

func NewProvidersView(apiClient *api.Client, opts Options) *ProvidersView {
	return &ProvidersView{api: apiClient, opts: opts, busy: make(map[string]bool)}
}

// Load fetches all provider accounts.
func (v *ProvidersView) Load(ctx context.Context) error {
	providers, err := v.api.ListProviders(ctx)
	if err != nil {
		if v.opts.DemoFallback {
			v.providers = DemoProviders()
			v.source = SourceDemo
			return nil
		}
		return err
	}
	v.providers = providers
	v.source = SourceLive
	return nil
}

func (v *ProvidersView) Source() Source { return v.source }

// Providers returns the current list unfiltered.
func (v *ProvidersView) Providers() []api.Provider { return v.providers }

// Pending returns only the applications awaiting a decision.
func (v *ProvidersView) Pending() []api.Provider {
	var out []api.Provider
	for _, p := range v.providers {
		if p.ApplicationStatus == "PENDING" {
			out = append(out, p)
		}
	}
	return out
}

// Filter matches name, email or professional title, ignoring case.
func (v *ProvidersView) Filter(query string) []api.Provider {
	var out []api.Provider
	for _, p := range v.providers {
		if matchesQuery(query, p.FullName, p.Email, p.ProfessionalTitle) {
			out = append(out, p)
		}
	}
	return out
}

// Busy reports whether a decision for the provider is in flight.
func (v *ProvidersView) Busy(email string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy[email]
}

// Approve accepts a pending application.
func (v *ProvidersView) Approve(ctx context.Context, email string) (*api.Provider, error) {
	return v.decide(ctx, email, v.api.ApproveProvider)
}

// Reject declines a pending application.
func (v *ProvidersView) Reject(ctx context.Context, email string) (*api.Provider, error) {
	return v.decide(ctx, email, v.api.RejectProvider)
}

func (v *ProvidersView) decide(ctx context.Context, email string, action func(context.Context, string) (*api.Provider, error)) (*api.Provider, error) {
	v.mu.Lock()
	if v.busy[email] {
		v.mu.Unlock()
		return nil, ErrActionInFlight
	}
	v.busy[email] = true
	v.mu.Unlock()
	defer func() {
		v.mu.Lock()
		delete(v.busy, email)
		v.mu.Unlock()
	}()

	updated, err := action(ctx, email)
	if err != nil {
		return nil, err
	}
	for i := range v.providers {
		if v.providers[i].Email == email {
			v.providers[i] = *updated
			break
		}
	}
	return updated, nil
}
