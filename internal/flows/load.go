package flows

import (
	"context"
	"errors"

	"github.com/Fix-It-project/fixit-go/session"
)

// LoadOutcome classifies the result of startup session reconciliation.
type LoadOutcome int

const (
	// LoadRestored is an exported constant or variable used by the auth client.
	LoadRestored LoadOutcome = iota
	// LoadEmpty is an exported constant or variable used by the auth client.
	LoadEmpty
	// LoadHealedPartial is an exported constant or variable used by the auth client.
	LoadHealedPartial
	// LoadHealedCorrupt is an exported constant or variable used by the auth client.
	LoadHealedCorrupt
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadRestored:
		return "restored"
	case LoadEmpty:
		return "empty"
	case LoadHealedPartial:
		return "healed_partial"
	case LoadHealedCorrupt:
		return "healed_corrupt"
	default:
		return "unknown"
	}
}

// RunLoadStored reconciles the durable store into memory once at process
// start. A short read (any of the three entries missing) or a corrupt user
// record is treated as "no session", never as an error: leftover partial
// entries are proactively deleted so a half-written store cannot cause a
// false positive on the next start. Store read failures are treated as
// absence without healing; the entries may still be intact.
func RunLoadStored(ctx context.Context, deps StoreDeps) (LoadOutcome, session.Session) {
	deps.MarkLoading()

	var (
		readErr bool
		present int
	)

	read := func(key string) string {
		value, err := deps.Store.Get(ctx, key)
		switch {
		case err == nil && value != "":
			present++
			return value
		case err != nil && !errors.Is(err, session.ErrNotFound):
			readErr = true
			if deps.Warn != nil {
				deps.Warn("fixit: session store read failed", "key", key, "error", err)
			}
		}
		return ""
	}

	access := read(session.KeyAccessToken)
	refresh := read(session.KeyRefreshToken)
	userRaw := read(session.KeyUser)

	if access == "" || refresh == "" || userRaw == "" {
		outcome := LoadEmpty
		if present > 0 && !readErr {
			deleteAll(ctx, deps)
			outcome = LoadHealedPartial
		}
		deps.MarkUnauthenticated()
		return outcome, session.Session{}
	}

	user, err := session.DecodeUser(userRaw)
	if err != nil || user.ID == "" {
		if deps.Warn != nil {
			deps.Warn("fixit: stored user record corrupt, clearing session", "error", err)
		}
		deleteAll(ctx, deps)
		deps.MarkUnauthenticated()
		return LoadHealedCorrupt, session.Session{}
	}

	sess := session.Session{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}
	deps.MarkAuthenticated(sess)
	return LoadRestored, sess
}
