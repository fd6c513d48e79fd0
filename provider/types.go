package provider

import (
	"errors"
	"fmt"

	"github.com/Fix-It-project/fixit-go/session"
)

// Endpoint paths on the identity service. The transport gateway uses these
// to decide which requests bypass token attachment.
const (
	PathSignIn         = "/api/auth/signin"
	PathSignUp         = "/api/auth/signup"
	PathRefresh        = "/api/auth/refresh"
	PathSignOut        = "/api/auth/signout"
	PathForgotPassword = "/api/auth/forgot-password"
	PathResetPassword  = "/api/auth/reset-password"
	PathCurrentUser    = "/api/auth/me"
)

// ErrRefreshRejected is an exported constant or variable used by the auth client.
// The identity provider explicitly refused the refresh token; the session it
// belonged to is gone and the user must authenticate again.
var ErrRefreshRejected = errors.New("refresh token rejected")

// APIError is a non-2xx response from the identity service with its parsed
// error message.
type APIError struct {
	Status    int
	RequestID string
	Message   string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("identity provider returned status %d", e.Status)
	}
	return fmt.Sprintf("identity provider returned status %d: %s", e.Status, e.Message)
}

// SignUpRequest defines a public type used by fixit-go APIs.
//
// SignUpRequest instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// TokenGrant is the session payload the provider returns from signin and
// refresh. ExpiresAt is advisory; the client trusts the expiry claim inside
// the access token itself.
type TokenGrant struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    int64  `json:"expiresAt"`
}

// AuthResponse is returned by signin and refresh: the user record plus a
// fresh token pair.
type AuthResponse struct {
	User    session.User `json:"user"`
	Session TokenGrant   `json:"session"`
}

// SignUpResponse defines a public type used by fixit-go APIs.
//
// SignUpResponse instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SignUpResponse struct {
	User    session.User `json:"user"`
	Message string       `json:"message"`
}

// SignOutResponse defines a public type used by fixit-go APIs.
//
// SignOutResponse instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SignOutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse defines a public type used by fixit-go APIs.
//
// MessageResponse instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MessageResponse struct {
	Message string `json:"message"`
}

// Profile is the extended user record returned by the current-user endpoint.
type Profile struct {
	ID       string
	Email    string
	FullName string
	Phone    string
	Address  string
}
