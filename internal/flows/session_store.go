package flows

import (
	"context"
	"errors"

	"github.com/Fix-It-project/fixit-go/session"
)

// ErrIncompleteSession is an exported constant or variable used by the auth client.
// A session must carry both tokens and a user record before it may be
// persisted; anything less would be indistinguishable from corruption at
// load time.
var ErrIncompleteSession = errors.New("incomplete session")

// StoreDeps captures the durable-store flow dependencies.
type StoreDeps struct {
	Store               session.Store
	MarkLoading         func()
	MarkAuthenticated   func(session.Session)
	MarkUnauthenticated func()
	Warn                func(string, ...any)
}

// RunSetSession persists sess to the durable store and only then installs it
// in memory, so a crash between the two leaves the store as the source of
// truth. Any write error is returned and memory stays untouched.
func RunSetSession(ctx context.Context, sess session.Session, deps StoreDeps) error {
	if !sess.Complete() {
		return ErrIncompleteSession
	}

	userRaw, err := session.EncodeUser(sess.User)
	if err != nil {
		return err
	}

	if err := deps.Store.Set(ctx, session.KeyAccessToken, sess.AccessToken); err != nil {
		return err
	}
	if err := deps.Store.Set(ctx, session.KeyRefreshToken, sess.RefreshToken); err != nil {
		return err
	}
	if err := deps.Store.Set(ctx, session.KeyUser, userRaw); err != nil {
		return err
	}

	deps.MarkAuthenticated(sess)
	return nil
}

// RunClearSession deletes every stored entry and resets the in-memory state.
// Store deletion errors are logged and swallowed: sign-out must always
// succeed from the caller's perspective, and the loader self-heals leftover
// partial entries on the next start.
func RunClearSession(ctx context.Context, deps StoreDeps) {
	deleteAll(ctx, deps)
	deps.MarkUnauthenticated()
}

func deleteAll(ctx context.Context, deps StoreDeps) {
	for _, key := range session.Keys() {
		if err := deps.Store.Delete(ctx, key); err != nil && deps.Warn != nil {
			deps.Warn("fixit: session store delete failed", "key", key, "error", err)
		}
	}
}
