// Package transport is the HTTP layer of the client: it attaches the
// bearer token, decodes the server's response envelope and detects
// expired sessions.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// expiryCooldown suppresses repeated expiry callbacks when several
// in-flight requests fail at once.
const expiryCooldown = 5 * time.Second

// envelope mirrors the server's response shape.
type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// APIError is a non-2xx response from the server. Details carries
// any extra payload from the error envelope, such as the token a
// profile-incomplete sign-in refusal issues.
type APIError struct {
	Status  int
	Message string
	Code    string
	Details map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == status
}

// TokenSource supplies the current bearer token, empty when signed out.
type TokenSource func() string

// ExpiryHandler is invoked once when the server rejects the session.
type ExpiryHandler func()

// Client sends API requests with the session's bearer token attached.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource

	onExpiry ExpiryHandler

	mu         sync.Mutex
	lastExpiry time.Time

	// publicPaths never trigger the expiry handler; a 401 from
	// sign-in means bad credentials, not a dead session.
	publicPaths []string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithExpiryHandler installs the session-expiry callback.
func WithExpiryHandler(h ExpiryHandler) Option {
	return func(c *Client) { c.onExpiry = h }
}

// New creates a transport client for the given API base URL.
func New(baseURL string, token TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      token,
		publicPaths: []string{
			"/auth/check-email",
			"/auth/sign-in",
			"/auth/create-account",
			"/auth/submit-signup-code",
			"/auth/recover-account",
			"/auth/submit-account-recovery-code",
			"/auth/reset-password",
			"/auth/curator/check-email",
			"/auth/curator/sign-in",
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends a JSON request and decodes the envelope's data field into
// out (which may be nil). The message field of a successful envelope
// is returned alongside.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any) (string, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, path, out)
}

// Upload sends a multipart file upload under the given form field.
func (c *Client) Upload(ctx context.Context, path, field, filename string, file io.Reader, out any) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, path, out)
}

func (c *Client) send(req *http.Request, path string, out any) (string, error) {
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if len(data) > 0 {
		if err := json.Unmarshal(data, &env); err != nil {
			if resp.StatusCode >= 400 {
				return "", &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
			}
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
	}

	if resp.StatusCode >= 400 || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message, Code: env.Code}
		if isAuthFailure(resp.StatusCode) && !c.isPublic(path) {
			c.fireExpiry()
		}
		return "", apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return env.Message, nil
}

// A 401 or 403 from an authenticated path means the session no longer
// grants access; both force a sign-out. Auth endpoints are exempt:
// their 401s are bad credentials and their 403s are the sign-in
// profile-incomplete refusals.
func isAuthFailure(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

func (c *Client) isPublic(path string) bool {
	for _, p := range c.publicPaths {
		if path == p {
			return true
		}
	}
	return false
}

// fireExpiry invokes the expiry handler at most once per cooldown
// window, so a burst of rejected requests produces one sign-out.
func (c *Client) fireExpiry() {
	if c.onExpiry == nil {
		return
	}
	c.mu.Lock()
	now := time.Now()
	if now.Sub(c.lastExpiry) < expiryCooldown {
		c.mu.Unlock()
		return
	}
	c.lastExpiry = now
	c.mu.Unlock()

	c.onExpiry()
}
