// Package transport exposes an http.RoundTripper that keeps outgoing requests
// authenticated against the Fix-It backend.
//
// # Behavior
//
//   - Before each request, a valid access token is obtained from the
//     [TokenSource] (renewing proactively when stale) and attached as a
//     Bearer header.
//   - On a 401 response, the token pair is renewed once and the request is
//     replayed with the fresh token. A second 401 is returned to the caller.
//   - Requests to the auth endpoints themselves (signin, signup, refresh)
//     pass through untouched so renewal can never recurse.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into TokenSource calls. It does NOT
// implement renewal logic itself — all decisions are delegated to the
// TokenSource, normally a fixit.Client.
//
// # What this package must NOT do
//
//   - Decode or inspect tokens (the TokenSource owns expiry tracking).
//   - Touch the session store.
//   - Retry more than once per request.
package transport
