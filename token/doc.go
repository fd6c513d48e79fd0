// Package token inspects access tokens locally so the client can decide
// whether a renewal is needed without a network round-trip or a signing key.
//
// Tokens are opaque bearer credentials issued and verified by the identity
// provider; the client only reads the expiry claim, and it never trusts any
// other claim content. Every function here is pure: no I/O, no shared state.
package token
