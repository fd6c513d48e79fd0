package flows

import (
	"context"
	"errors"

	"github.com/Fix-It-project/fixit-go/session"
)

// RenewFailureKind classifies renewal failures for root-level error mapping.
type RenewFailureKind int

const (
	RenewFailureNone RenewFailureKind = iota
	RenewFailureNoRefreshToken
	RenewFailureRejected
	RenewFailureNetwork
	RenewFailurePersist
)

// RenewResult carries either the renewed session or failure metadata.
type RenewResult struct {
	Failure     RenewFailureKind
	Err         error
	Session     session.Session
	AccessToken string
}

// RenewDeps captures renewal flow dependencies.
type RenewDeps struct {
	RefreshToken func() string
	CallRefresh  func(context.Context, string) (session.Session, error)
	RejectedErr  error
	SetSession   func(context.Context, session.Session) error
	ClearSession func(context.Context)
	Warn         func(string, ...any)
}

// RunRenew executes one token renewal. Every failure path clears the session
// (fail closed): a renewal that cannot produce a durably persisted token pair
// leaves the client signed out rather than holding credentials of unknown
// validity. On success the store write happens before the result is
// returned, so no caller observes a renewed token that is not yet persisted.
func RunRenew(ctx context.Context, deps RenewDeps) RenewResult {
	refresh := deps.RefreshToken()
	if refresh == "" {
		deps.ClearSession(ctx)
		return RenewResult{
			Failure: RenewFailureNoRefreshToken,
			Err:     errors.New("no refresh token available"),
		}
	}

	sess, err := deps.CallRefresh(ctx, refresh)
	if err != nil {
		deps.ClearSession(ctx)
		kind := RenewFailureNetwork
		if deps.RejectedErr != nil && errors.Is(err, deps.RejectedErr) {
			kind = RenewFailureRejected
		}
		return RenewResult{Failure: kind, Err: err}
	}

	if err := deps.SetSession(ctx, sess); err != nil {
		if deps.Warn != nil {
			deps.Warn("fixit: renewed session could not be persisted", "error", err)
		}
		deps.ClearSession(ctx)
		return RenewResult{Failure: RenewFailurePersist, Err: err}
	}

	return RenewResult{
		Failure:     RenewFailureNone,
		Session:     sess,
		AccessToken: sess.AccessToken,
	}
}
