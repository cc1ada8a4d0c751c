package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/threadcraft/platform/pkg/authstate"
)

const (
	mePath     = "/api/auth/me"
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"

	defaultTimeout = 10 * time.Second
)

// apiResponse is the envelope every auth endpoint answers with.
type apiResponse struct {
	Success bool            `json:"success"`
	User    *authstate.User `json:"user,omitempty"`
	Message string          `json:"message,omitempty"`
}

// loginRequest is the body of POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Client talks to the ThreadCraft auth endpoints. It is safe for concurrent
// use; the embedded cookie jar carries the session cookie across calls.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ authstate.Client = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API root, e.g. "https://app.threadcraft.io".
// A trailing slash is stripped.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout bounds every request end to end. Non-positive values are
// ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The caller is then
// responsible for attaching a cookie jar; without one the session cookie is
// lost between calls. Nil clients are ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a Client with an in-memory cookie jar.
func New(opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: "http://localhost:8080",
		http: &http.Client{
			Timeout: defaultTimeout,
			Jar:     jar,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}

	return c, nil
}

// Me validates the current session via GET /api/auth/me.
// Returns authstate.ErrNoSession for HTTP 401 or a success payload without a
// user; both mean the same thing on this contract.
func (c *Client) Me(ctx context.Context) (*authstate.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+mePath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, authstate.ErrNoSession
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Join(ErrMalformedResponse, err)
	}
	if !body.Success || body.User == nil {
		return nil, authstate.ErrNoSession
	}

	return body.User, nil
}

// Login exchanges credentials for a session via POST /api/auth/login.
// The session cookie set by the server lands in the client's jar. A refusal
// is returned as *authstate.LoginError with the server message when present.
func (c *Client) Login(ctx context.Context, email, password string) (*authstate.User, error) {
	payload, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body apiResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || decodeErr != nil || !body.Success || body.User == nil {
		msg := "Login failed"
		if decodeErr == nil && body.Message != "" {
			msg = body.Message
		}
		return nil, &authstate.LoginError{Message: msg}
	}

	return body.User, nil
}

// Logout terminates the session via POST /api/auth/logout. Any HTTP response
// counts as success; only transport failures are reported.
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+logoutPath, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}
