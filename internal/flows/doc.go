// Package flows implements the client's session lifecycle logic as pure
// functions over injected dependencies. The root Client wires a [Deps] once
// at build time and delegates; nothing here imports the root package, the
// provider binding, or any concrete store beyond the session contracts.
//
// Each RunX function owns one lifecycle operation: renewal, durable session
// write, session clear, and startup reconciliation. Failure classification
// happens here; mapping failure kinds to public sentinel errors happens in
// the root package.
package flows
