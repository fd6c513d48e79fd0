// Package session provides the persisted session model and the durable
// key/value stores that keep FixIt device credentials across restarts.
//
// # Key layout
//
// A session is persisted as three independent string entries keyed by fixed
// identifiers ([KeyAccessToken], [KeyRefreshToken], [KeyUser]). There is no
// schema version field: the absence of any one key is the sentinel for
// "no session", and a partially written set of keys is healed by the loader
// on the next start.
//
// # Architecture boundaries
//
// This package owns the [Store] contract and its backends ([FileStore],
// [RedisStore], [MemStore]) plus the [Session] record. It does NOT decide
// when a session is valid, decode tokens, or talk to the identity provider —
// those responsibilities belong to the Client.
//
// # What this package must NOT do
//
//   - Import fixit, token, or provider (no upward imports).
//   - Interpret token contents or expiry.
//   - Write any entry unencrypted to disk ([FileStore] seals every value).
package session
