package fixit

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/Fix-It-project/fixit-go/internal/flows"
	"github.com/Fix-It-project/fixit-go/internal/state"
	"github.com/Fix-It-project/fixit-go/provider"
	"github.com/Fix-It-project/fixit-go/session"
	"github.com/Fix-It-project/fixit-go/transport"
)

// Client defines a public type used by fixit-go APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	config  Config
	backend Provider
	store   session.Store
	logger  *slog.Logger

	lifecycle *state.Machine
	flows     flows.Service
	renewals  singleflight.Group

	audit   *auditDispatcher
	metrics *Metrics
}

func newClient(cfg Config, store session.Store, backend Provider, logger *slog.Logger) *Client {
	c := &Client{
		config:    cfg,
		backend:   backend,
		store:     store,
		logger:    logger,
		lifecycle: state.NewMachine(),
	}

	warn := func(msg string, args ...any) {
		logger.Warn(msg, args...)
	}

	storeDeps := flows.StoreDeps{
		Store:               store,
		MarkLoading:         c.lifecycle.MarkLoading,
		MarkAuthenticated:   c.lifecycle.SetAuthenticated,
		MarkUnauthenticated: c.lifecycle.SetUnauthenticated,
		Warn:                warn,
	}

	c.flows = flows.New(flows.Deps{
		Store: storeDeps,
		Renew: flows.RenewDeps{
			RefreshToken: c.lifecycle.RefreshToken,
			CallRefresh:  c.callRefresh,
			RejectedErr:  provider.ErrRefreshRejected,
			SetSession: func(ctx context.Context, sess session.Session) error {
				return flows.RunSetSession(ctx, sess, storeDeps)
			},
			ClearSession: func(ctx context.Context) {
				flows.RunClearSession(ctx, storeDeps)
			},
			Warn: warn,
		},
	})

	return c
}

func (c *Client) callRefresh(ctx context.Context, refreshToken string) (session.Session, error) {
	resp, err := c.backend.Refresh(ctx, refreshToken)
	if err != nil {
		return session.Session{}, err
	}
	return sessionFromAuth(resp), nil
}

func sessionFromAuth(resp *provider.AuthResponse) session.Session {
	return session.Session{
		User:         resp.User,
		AccessToken:  resp.Session.AccessToken,
		RefreshToken: resp.Session.RefreshToken,
	}
}

func (c *Client) ready() bool {
	return c != nil && c.flows.Initialized()
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot may return an error when input validation, dependency calls, or security checks fail.
// Snapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return c.lifecycle.Snapshot()
}

// Subscribe registers fn for lifecycle transitions and returns a cancel
// function. fn runs synchronously on the transitioning goroutine and must
// not call back into the Client.
//
//	Docs: docs/lifecycle.md
func (c *Client) Subscribe(fn func(Snapshot)) (cancel func()) {
	if c == nil || fn == nil {
		return func() {}
	}
	return c.lifecycle.Subscribe(fn)
}

// HTTPClient returns an *http.Client whose transport attaches a valid access
// token to every request and retries exactly once on 401 after a renewal.
//
//	Docs: docs/transport.md
func (c *Client) HTTPClient() *http.Client {
	return &http.Client{
		Transport: transport.New(c, transport.Options{
			Logger: c.logger,
			OnReactiveRetry: func() {
				c.metricInc(MetricReactiveRetry)
			},
			OnRetryExhausted: func() {
				c.metricInc(MetricRetryExhausted)
			},
		}),
	}
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.audit != nil {
		c.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) AuditDropped() uint64 {
	if c == nil || c.audit == nil {
		return 0
	}
	return c.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}

func (c *Client) metricInc(id MetricID) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.Inc(id)
}
