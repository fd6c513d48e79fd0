package transport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Fix-It-project/fixit-go/provider"
)

// TokenSource supplies access tokens for outgoing requests. It is implemented
// by fixit.Client and can be faked in tests.
type TokenSource interface {
	ValidAccessToken(ctx context.Context) (string, error)
	Renew(ctx context.Context) (string, error)
}

// Options configures a [RoundTripper].
type Options struct {
	// Base handles the actual HTTP exchange. Defaults to
	// http.DefaultTransport.
	Base http.RoundTripper

	Logger *slog.Logger

	// OnReactiveRetry fires when a 401 triggers a renewal-and-replay.
	OnReactiveRetry func()
	// OnRetryExhausted fires when the replay is skipped or also rejected.
	OnRetryExhausted func()
}

// RoundTripper attaches access tokens and performs the single 401 retry.
//
//	Docs: docs/transport.md
type RoundTripper struct {
	source      TokenSource
	base        http.RoundTripper
	logger      *slog.Logger
	onRetry     func()
	onExhausted func()
}

// New creates a RoundTripper backed by the given TokenSource.
//
//	Docs: docs/transport.md
func New(source TokenSource, opts Options) *RoundTripper {
	base := opts.Base
	if base == nil {
		base = http.DefaultTransport
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RoundTripper{
		source:      source,
		base:        base,
		logger:      logger,
		onRetry:     opts.OnReactiveRetry,
		onExhausted: opts.OnRetryExhausted,
	}
}

// RoundTrip describes the roundtrip operation and its observable behavior.
//
// RoundTrip may return an error when input validation, dependency calls, or security checks fail.
// RoundTrip does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (t *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.source == nil || bypassPath(req.URL.Path) {
		return t.base.RoundTrip(req)
	}

	out := req.Clone(req.Context())
	access, err := t.source.ValidAccessToken(req.Context())
	if err != nil {
		// Forward unauthenticated; the backend answers 401 and the
		// caller sees the usual rejection.
		t.logger.Debug("fixit: request sent without access token", "error", err)
	} else {
		out.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	retry, ok := replayableRequest(req)
	if !ok {
		t.exhausted()
		return resp, nil
	}

	if t.onRetry != nil {
		t.onRetry()
	}
	access, renewErr := t.source.Renew(req.Context())
	if renewErr != nil {
		// Renewal already cleared the session; surface the original 401.
		t.logger.Debug("fixit: reactive renewal failed", "error", renewErr)
		t.exhausted()
		return resp, nil
	}

	discard(resp)
	retry.Header.Set("Authorization", "Bearer "+access)

	resp, err = t.base.RoundTrip(retry)
	if err == nil && resp.StatusCode == http.StatusUnauthorized {
		t.exhausted()
	}
	return resp, err
}

func (t *RoundTripper) exhausted() {
	if t.onExhausted != nil {
		t.onExhausted()
	}
}

// bypassPath reports whether the request targets an auth endpoint that must
// never trigger token attachment or retry. Refresh in particular would
// recurse into renewal.
func bypassPath(path string) bool {
	return strings.HasSuffix(path, provider.PathSignIn) ||
		strings.HasSuffix(path, provider.PathSignUp) ||
		strings.HasSuffix(path, provider.PathRefresh)
}

// replayableRequest builds a fresh request for the retry. Requests whose body
// cannot be re-read (no GetBody) are not replayed.
func replayableRequest(req *http.Request) (*http.Request, bool) {
	out := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return out, true
	}
	if req.GetBody == nil {
		return nil, false
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	out.Body = body
	return out, true
}

func discard(resp *http.Response) {
	if resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}
