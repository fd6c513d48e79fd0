package fixit

import (
	"context"

	"github.com/Fix-It-project/fixit-go/internal/flows"
	"github.com/Fix-It-project/fixit-go/internal/state"
	"github.com/Fix-It-project/fixit-go/provider"
	"github.com/Fix-It-project/fixit-go/session"
)

// User identifies the account behind the active session. It aliases the
// session-package model so store implementations and the client share one
// representation.
type User = session.User

// Session is the credential triple held in memory and mirrored into the
// configured [session.Store].
type Session = session.Session

// SignUpRequest defines a public type used by fixit-go APIs.
//
// SignUpRequest instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SignUpRequest = provider.SignUpRequest

// SignUpOutcome defines a public type used by fixit-go APIs.
//
// SignUpOutcome instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SignUpOutcome = provider.SignUpResponse

// Profile defines a public type used by fixit-go APIs.
//
// Profile instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Profile = provider.Profile

// State represents the lifecycle state of the client session.
//
//	Docs: docs/lifecycle.md
type State = state.State

const (
	// StateUninitialized is an exported constant or variable used by the auth client.
	StateUninitialized = state.Uninitialized
	// StateLoading is an exported constant or variable used by the auth client.
	StateLoading = state.Loading
	// StateAuthenticated is an exported constant or variable used by the auth client.
	StateAuthenticated = state.Authenticated
	// StateUnauthenticated is an exported constant or variable used by the auth client.
	StateUnauthenticated = state.Unauthenticated
)

// Snapshot is a point-in-time view of the lifecycle state and, when
// authenticated, the active session.
//
//	Docs: docs/lifecycle.md
type Snapshot = state.Snapshot

// LoadOutcome reports what [Client.LoadStoredSession] found in the store.
//
//	Docs: docs/lifecycle.md
type LoadOutcome = flows.LoadOutcome

const (
	// LoadRestored is an exported constant or variable used by the auth client.
	LoadRestored = flows.LoadRestored
	// LoadEmpty is an exported constant or variable used by the auth client.
	LoadEmpty = flows.LoadEmpty
	// LoadHealedPartial is an exported constant or variable used by the auth client.
	LoadHealedPartial = flows.LoadHealedPartial
	// LoadHealedCorrupt is an exported constant or variable used by the auth client.
	LoadHealedCorrupt = flows.LoadHealedCorrupt
)

// Provider is the backend surface the client depends on. It is implemented by
// [provider.Client] and can be replaced in tests or when the transport to the
// Fix-It backend is nonstandard.
//
//	Docs: docs/provider.md
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*provider.AuthResponse, error)
	SignUp(ctx context.Context, req provider.SignUpRequest) (*provider.SignUpResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*provider.AuthResponse, error)
	SignOut(ctx context.Context, accessToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, accessToken, newPassword string) error
	CurrentUser(ctx context.Context, accessToken string) (*provider.Profile, error)
}
