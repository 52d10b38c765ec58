// Package client assembles the SDK pieces into one entry point: a
// session store, the bearer transport, the typed API and the
// lifecycle controller on top.
package client

import (
	"healthreach_backend/pkg/client/api"
	"healthreach_backend/pkg/client/lifecycle"
	"healthreach_backend/pkg/client/session"
	"healthreach_backend/pkg/client/transport"
	"healthreach_backend/pkg/client/views"
	"healthreach_backend/pkg/client/wizard"
)

// Client bundles everything an application front end needs.
type Client struct {
	Store     session.Store
	Transport *transport.Client
	API       *api.Client
	Lifecycle *lifecycle.Controller

	opts views.Options
}

// Config configures a Client.
type Config struct {
	// BaseURL is the API root, e.g. "https://host/api/v1".
	BaseURL string

	// Store persists the session; defaults to an in-memory store.
	Store session.Store

	// DemoFallback lets list screens fall back to sample data when
	// the server is unreachable.
	DemoFallback bool

	// OnSessionExpired is called once when the server rejects the
	// stored token; the session has already been cleared.
	OnSessionExpired func()

	// TransportOptions are applied to the underlying transport.
	TransportOptions []transport.Option
}

// New wires the SDK together. The transport reads the bearer token
// from the store on every request, and a rejected token clears the
// store before the expiry callback runs.
func New(cfg Config) *Client {
	store := cfg.Store
	if store == nil {
		store = session.NewMemoryStore()
	}

	tokenSource := func() string {
		sess, err := store.Load()
		if err != nil {
			return ""
		}
		return sess.Token
	}

	opts := []transport.Option{
		transport.WithExpiryHandler(func() {
			_ = store.Clear()
			if cfg.OnSessionExpired != nil {
				cfg.OnSessionExpired()
			}
		}),
	}
	opts = append(opts, cfg.TransportOptions...)

	tr := transport.New(cfg.BaseURL, tokenSource, opts...)
	apiClient := api.New(tr)

	return &Client{
		Store:     store,
		Transport: tr,
		API:       apiClient,
		Lifecycle: lifecycle.NewController(apiClient, store),
		opts:      views.Options{DemoFallback: cfg.DemoFallback},
	}
}

// Wizard starts or resumes the signup wizard.
func (c *Client) Wizard() (*wizard.Wizard, error) {
	return wizard.New(c.API, c.Store)
}

// SchoolsView builds the schools screen controller.
func (c *Client) SchoolsView() *views.SchoolsView {
	return views.NewSchoolsView(c.API, c.opts)
}

// ProvidersView builds the provider review screen controller.
func (c *Client) ProvidersView() *views.ProvidersView {
	return views.NewProvidersView(c.API, c.opts)
}

// PartnersView builds the partners screen controller.
func (c *Client) PartnersView() *views.PartnersView {
	return views.NewPartnersView(c.API, c.opts)
}
