package api

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"healthreach_backend/pkg/client/transport"
)

// Client wraps the transport with one method per endpoint.
type Client struct {
	tr *transport.Client
}

// New builds an API client over an existing transport.
func New(tr *transport.Client) *Client {
	return &Client{tr: tr}
}

// CheckEmail reports whether a provider account exists for the email.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	_, err := c.tr.Do(ctx, http.MethodPost, "/auth/check-email", map[string]string{"email": email}, &out)
	if err != nil {
		return false, err
	}
	return out.Exists, nil
}

// CreateAccount registers a provider and returns a token immediately
// so the remaining signup steps can commit.
func (c *Client) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*AuthResult, error) {
	var out AuthResult
	_, err := c.tr.Do(ctx, http.MethodPost, "/auth/create-account", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitSignupCode verifies the six-digit email code.
func (c *Client) SubmitSignupCode(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	_, err := c.tr.Do(ctx, http.MethodPost, "/auth/submit-signup-code", body, nil)
	return err
}

// SignIn authenticates a provider. The returned message carries the
// server's pending-review note when the account awaits approval.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResult, string, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResult
	message, err := c.tr.Do(ctx, http.MethodPost, "/auth/sign-in", body, &out)
	if err != nil {
		return nil, "", err
	}
	return &out, message, nil
}

// RecoverAccount requests a recovery code. The server answers the same
// way whether or not the email exists.
func (c *Client) RecoverAccount(ctx context.Context, email string) error {
	_, err := c.tr.Do(ctx, http.MethodPost, "/auth/recover-account", map[string]string{"email": email}, nil)
	return err
}

// SubmitRecoveryCode exchanges a recovery code for a one-shot reset
// token.
func (c *Client) SubmitRecoveryCode(ctx context.Context, email, code string) (string, error) {
	body := map[string]string{"email": email, "code": code}
	var out struct {
		ResetToken string `json:"resetToken"`
	}
	_, err := c.tr.Do(ctx, http.MethodPost, "/auth/submit-account-recovery-code", body, &out)
	if err != nil {
		return "", err
	}
	return out.ResetToken, nil
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"resetToken": resetToken, "newPassword": newPassword}
	_, err := c.tr.Do(ctx, http.MethodPost, "/auth/reset-password", body, nil)
	return err
}

// CuratorCheckEmail reports whether a curator account exists.
func (c *Client) CuratorCheckEmail(ctx context.Context, email string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	_, err := c.tr.Do(ctx, http.MethodPost, "/auth/curator/check-email", map[string]string{"email": email}, &out)
	if err != nil {
		return false, err
	}
	return out.Exists, nil
}

// CuratorSignIn authenticates a curator.
func (c *Client) CuratorSignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResult
	_, err := c.tr.Do(ctx, http.MethodPost, "/auth/curator/sign-in", body, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddPhoto uploads the signup profile photo.
func (c *Client) AddPhoto(ctx context.Context, filename string, file io.Reader) (*Provider, error) {
	var out Provider
	_, err := c.tr.Upload(ctx, "/auth/add-photo", "photo", filename, file, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile commits office phone, bio and optional title.
func (c *Client) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*Provider, error) {
	var out Provider
	_, err := c.tr.Do(ctx, http.MethodPost, "/auth/update-profile", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddSpecialty attaches a specialty to the signed-in provider.
func (c *Client) AddSpecialty(ctx context.Context, specialtyID string) (*Provider, error) {
	var out Provider
	_, err := c.tr.Do(ctx, http.MethodPost, "/auth/add-specialty", map[string]string{"specialtyId": specialtyID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile returns the signed-in provider's own record.
func (c *Client) Profile(ctx context.Context) (*Provider, error) {
	var out Provider
	_, err := c.tr.Do(ctx, http.MethodGet, "/auth/profile", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProviders returns every provider account.
func (c *Client) ListProviders(ctx context.Context) ([]Provider, error) {
	var out []Provider
	_, err := c.tr.Do(ctx, http.MethodGet, "/providers", nil, &out)
	return out, err
}

// GetProvider looks a provider up by email.
func (c *Client) GetProvider(ctx context.Context, email string) (*Provider, error) {
	var out Provider
	_, err := c.tr.Do(ctx, http.MethodGet, "/providers/"+url.PathEscape(email), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveProvider marks a pending application approved.
func (c *Client) ApproveProvider(ctx context.Context, email string) (*Provider, error) {
	var out Provider
	_, err := c.tr.Do(ctx, http.MethodPut, "/providers/"+url.PathEscape(email)+"/approve", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectProvider marks a pending application rejected.
func (c *Client) RejectProvider(ctx context.Context, email string) (*Provider, error) {
	var out Provider
	_, err := c.tr.Do(ctx, http.MethodPut, "/providers/"+url.PathEscape(email)+"/reject", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSchools returns every school with aggregate counts.
func (c *Client) ListSchools(ctx context.Context) ([]School, error) {
	var out []School
	_, err := c.tr.Do(ctx, http.MethodGet, "/schools", nil, &out)
	return out, err
}

// GetSchool returns one school with aggregate counts.
func (c *Client) GetSchool(ctx context.Context, id string) (*School, error) {
	var out School
	_, err := c.tr.Do(ctx, http.MethodGet, "/schools/"+url.PathEscape(id), nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateSchool registers a new active school.
func (c *Client) CreateSchool(ctx context.Context, req *CreateSchoolRequest) (*School, error) {
	var out School
	_, err := c.tr.Do(ctx, http.MethodPost, "/schools", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DisableSchool permanently deactivates a school.
func (c *Client) DisableSchool(ctx context.Context, id string) (*School, error) {
	var out School
	_, err := c.tr.Do(ctx, http.MethodPut, "/schools/"+url.PathEscape(id)+"/disable", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SchoolReach returns the reach metrics for a school.
func (c *Client) SchoolReach(ctx context.Context, id string) (*Reach, error) {
	var out Reach
	_, err := c.tr.Do(ctx, http.MethodGet, "/schools/"+url.PathEscape(id)+"/reach", nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SchoolPartners lists the partners attached to a school.
func (c *Client) SchoolPartners(ctx context.Context, id string) ([]Partner, error) {
	var out []Partner
	_, err := c.tr.Do(ctx, http.MethodGet, "/schools/"+url.PathEscape(id)+"/partners", nil, &out)
	return out, err
}

// ListPartners returns every partner.
func (c *Client) ListPartners(ctx context.Context) ([]Partner, error) {
	var out []Partner
	_, err := c.tr.Do(ctx, http.MethodGet, "/partners", nil, &out)
	return out, err
}

// CreatePartner registers a new partner.
func (c *Client) CreatePartner(ctx context.Context, req *CreatePartnerRequest) (*Partner, error) {
	var out Partner
	_, err := c.tr.Do(ctx, http.MethodPost, "/partners", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSpecialties returns the selectable specialties.
func (c *Client) ListSpecialties(ctx context.Context) ([]Specialty, error) {
	var out []Specialty
	_, err := c.tr.Do(ctx, http.MethodGet, "/specialties", nil, &out)
	return out, err
}

// CreateSpecialty adds a new specialty option.
func (c *Client) CreateSpecialty(ctx context.Context, name string) (*Specialty, error) {
	var out Specialty
	_, err := c.tr.Do(ctx, http.MethodPost, "/specialties", map[string]string{"name": name}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
