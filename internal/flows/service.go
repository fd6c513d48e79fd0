package flows

import (
	"context"

	"github.com/Fix-It-project/fixit-go/session"
)

// Service is the centralized flow runner built once by the root client.
type Service struct {
	deps Deps
}

// New returns a flow service with immutable dependency wiring.
func New(deps Deps) Service {
	return Service{deps: deps}
}

// Initialized reports whether the service has been wired with flow deps.
func (s Service) Initialized() bool {
	return s.deps.Store.Store != nil
}

func (s Service) Renew(ctx context.Context) RenewResult {
	return RunRenew(ctx, s.deps.Renew)
}

func (s Service) SetSession(ctx context.Context, sess session.Session) error {
	return RunSetSession(ctx, sess, s.deps.Store)
}

func (s Service) ClearSession(ctx context.Context) {
	RunClearSession(ctx, s.deps.Store)
}

func (s Service) LoadStored(ctx context.Context) (LoadOutcome, session.Session) {
	return RunLoadStored(ctx, s.deps.Store)
}
