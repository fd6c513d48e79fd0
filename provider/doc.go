// Package provider is the thin HTTP binding to the FixIt identity service.
//
// It maps one method to one endpoint, speaks JSON both ways, and attaches a
// generated X-Request-ID to every call. It holds no credentials and no
// session state: tokens are passed in per call and returned tokens are
// handed back to the caller untouched.
//
// # What this package must NOT do
//
//   - Import fixit, session stores, or transport (no upward imports).
//   - Retry, renew, or cache anything. Renewal policy lives in the Client.
//   - Interpret token contents.
package provider
