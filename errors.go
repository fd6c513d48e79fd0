package fixit

import (
	"errors"

	"github.com/Fix-It-project/fixit-go/internal/flows"
)

var (
	// ErrClientNotReady is an exported constant or variable used by the auth client.
	ErrClientNotReady = errors.New("client not ready")
	// ErrNoSession is an exported constant or variable used by the auth client.
	ErrNoSession = errors.New("no active session")
	// ErrNoRefreshToken is an exported constant or variable used by the auth client.
	ErrNoRefreshToken = errors.New("no refresh token available")
	// ErrRenewalRejected is an exported constant or variable used by the auth client.
	ErrRenewalRejected = errors.New("renewal rejected by provider")
	// ErrRenewalFailed is an exported constant or variable used by the auth client.
	ErrRenewalFailed = errors.New("renewal failed")
	// ErrSessionPersist is an exported constant or variable used by the auth client.
	ErrSessionPersist = errors.New("session could not be persisted")
	// ErrIncompleteSession is an exported constant or variable used by the auth client.
	// It is the sentinel returned by the flow layer so errors.Is works across
	// the package boundary.
	ErrIncompleteSession = flows.ErrIncompleteSession
)
