// Package fixit provides the client-side session lifecycle for the Fix-It
// backend: sign-in/sign-up flows, a durable encrypted session store, local
// access-token expiry tracking, and coordinated token renewal.
//
// The package is designed for long-lived client processes: Client methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// fixit is the public surface. It exposes [Client], [Builder], [Config], and
// value types (Snapshot, MetricsSnapshot, AuditEvent, etc.). All internal
// coordination — flow orchestration, lifecycle state, renewal bookkeeping —
// lives under internal/ and is never exported. Pluggable pieces live in their
// own packages: [github.com/Fix-It-project/fixit-go/session] (stores),
// [github.com/Fix-It-project/fixit-go/provider] (backend HTTP client),
// [github.com/Fix-It-project/fixit-go/transport] (renewing round tripper).
//
// # What this package must NOT do
//
//   - Expose store handles, raw HTTP clients, or encoding details in its
//     public API.
//   - Verify access-token signatures. Tokens are opaque credentials here;
//     only the expiry claim is decoded, and only to schedule renewal.
//   - Import any sub-package that re-imports fixit (no import cycles).
//
// # Renewal contract
//
// ValidAccessToken is the hot path. It must not perform I/O while the cached
// token is outside the renewal window. When renewal is needed, concurrent
// callers share a single provider round-trip and all observe the same
// outcome.
package fixit
