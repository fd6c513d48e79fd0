package session

import (
	"context"
	"errors"
)

// ErrNotFound is an exported constant or variable used by the auth client.
var ErrNotFound = errors.New("session entry not found")

// ErrStoreUnavailable is an exported constant or variable used by the auth client.
var ErrStoreUnavailable = errors.New("session store unavailable")

// Store is the durable key/value contract behind the client's session
// persistence. Implementations must return [ErrNotFound] from Get for a
// missing key, keep Delete idempotent, and wrap backend outages in
// [ErrStoreUnavailable].
//
//	Docs: docs/session.md
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
