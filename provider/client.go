package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// Client defines a public type used by fixit-go APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
}

// Options configures a provider [Client].
type Options struct {
	// Timeout bounds every call, including the refresh call made during
	// renewal. A renewal that exceeds it is a renewal failure, not a hang.
	Timeout   time.Duration
	UserAgent string

	// HTTPClient overrides the internal client. It must NOT be a client
	// wired with the transport gateway: refresh calls through the gateway
	// would recurse into renewal.
	HTTPClient *http.Client
}

// NewClient describes the newclient operation and its observable behavior.
//
// NewClient may return an error when input validation, dependency calls, or security checks fail.
// NewClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewClient(baseURL string, opts Options) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("provider base URL required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid provider base URL: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:   baseURL,
		http:      httpClient,
		userAgent: opts.UserAgent,
	}, nil
}

// SignIn describes the signin operation and its observable behavior.
//
// SignIn may return an error when input validation, dependency calls, or security checks fail.
// SignIn does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var out AuthResponse
	if err := c.post(ctx, PathSignIn, "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignUp describes the signup operation and its observable behavior.
//
// SignUp may return an error when input validation, dependency calls, or security checks fail.
// SignUp does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	var out SignUpResponse
	if err := c.post(ctx, PathSignUp, "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh exchanges a refresh token for a new token pair. A 4xx status means
// the provider invalidated the token; that is reported as
// [ErrRefreshRejected] so the caller can distinguish it from connectivity
// failures.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	body := map[string]string{"refreshToken": refreshToken}

	var out AuthResponse
	if err := c.post(ctx, PathRefresh, "", body, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
			return nil, fmt.Errorf("%w: %v", ErrRefreshRejected, err)
		}
		return nil, err
	}
	return &out, nil
}

// SignOut describes the signout operation and its observable behavior.
//
// SignOut may return an error when input validation, dependency calls, or security checks fail.
// SignOut does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	var out SignOutResponse
	return c.post(ctx, PathSignOut, accessToken, struct{}{}, &out)
}

// ForgotPassword describes the forgotpassword operation and its observable behavior.
//
// ForgotPassword may return an error when input validation, dependency calls, or security checks fail.
// ForgotPassword does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}

	var out MessageResponse
	return c.post(ctx, PathForgotPassword, "", body, &out)
}

// ResetPassword describes the resetpassword operation and its observable behavior.
//
// ResetPassword may return an error when input validation, dependency calls, or security checks fail.
// ResetPassword does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) ResetPassword(ctx context.Context, accessToken, newPassword string) error {
	body := map[string]string{"newPassword": newPassword}

	var out MessageResponse
	return c.post(ctx, PathResetPassword, accessToken, body, &out)
}

// CurrentUser fetches the authenticated user's profile.
func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*Profile, error) {
	var out struct {
		User struct {
			ID           string `json:"id"`
			Email        string `json:"email"`
			UserMetadata struct {
				FullName string `json:"full_name"`
				Phone    string `json:"phone"`
				Address  string `json:"address"`
			} `json:"user_metadata"`
		} `json:"user"`
	}

	if err := c.do(ctx, http.MethodGet, PathCurrentUser, accessToken, nil, &out); err != nil {
		return nil, err
	}

	return &Profile{
		ID:       out.User.ID,
		Email:    out.User.Email,
		FullName: out.User.UserMetadata.FullName,
		Phone:    out.User.UserMetadata.Phone,
		Address:  out.User.UserMetadata.Address,
	}, nil
}

func (c *Client) post(ctx context.Context, path, accessToken string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, accessToken, body, out)
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	requestID := requestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:    resp.StatusCode,
			RequestID: requestID,
			Message:   parseErrorMessage(data),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func parseErrorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}
