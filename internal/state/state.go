// Package state holds the single in-memory lifecycle state of a running
// client: the current session and whether the application considers itself
// authenticated. There is exactly one writer (the flow layer); everything
// else observes through snapshots and subscriptions.
package state

import (
	"slices"
	"sync"

	"github.com/Fix-It-project/fixit-go/session"
)

// State defines a public type used by fixit-go APIs.
//
// State instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type State uint8

const (
	// Uninitialized is an exported constant or variable used by the auth client.
	Uninitialized State = iota
	// Loading is an exported constant or variable used by the auth client.
	Loading
	// Authenticated is an exported constant or variable used by the auth client.
	Authenticated
	// Unauthenticated is an exported constant or variable used by the auth client.
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of the lifecycle state. Session is the
// zero value unless State is [Authenticated].
type Snapshot struct {
	State   State
	Session session.Session
}

// IsAuthenticated reports whether the snapshot carries a live session.
func (s Snapshot) IsAuthenticated() bool { return s.State == Authenticated }

// IsLoading reports whether the stored session has not been reconciled yet.
func (s Snapshot) IsLoading() bool { return s.State == Uninitialized || s.State == Loading }

// Machine is the process-wide lifecycle holder. Mutations notify subscribers
// outside the lock, in registration order, with the snapshot that caused the
// notification.
type Machine struct {
	mu      sync.RWMutex
	state   State
	session session.Session
	subs    map[uint64]func(Snapshot)
	nextSub uint64
}

// NewMachine creates a [Machine] in the uninitialized state.
func NewMachine() *Machine {
	return &Machine{
		state: Uninitialized,
		subs:  make(map[uint64]func(Snapshot)),
	}
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Machine) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{State: m.state, Session: m.session}
}

// AccessToken returns the current access token, or "" without a session.
func (m *Machine) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.AccessToken
}

// RefreshToken returns the current refresh token, or "" without a session.
func (m *Machine) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.RefreshToken
}

// MarkLoading moves the machine into the loading state while the stored
// session is being read. The current session, if any, is retained until the
// load resolves.
func (m *Machine) MarkLoading() {
	m.mu.Lock()
	m.state = Loading
	snap := Snapshot{State: m.state, Session: m.session}
	subs := m.subscribers()
	m.mu.Unlock()

	notify(subs, snap)
}

// SetAuthenticated installs sess and moves the machine to authenticated.
func (m *Machine) SetAuthenticated(sess session.Session) {
	m.mu.Lock()
	m.state = Authenticated
	m.session = sess
	snap := Snapshot{State: m.state, Session: m.session}
	subs := m.subscribers()
	m.mu.Unlock()

	notify(subs, snap)
}

// SetUnauthenticated drops the session and moves the machine to
// unauthenticated.
func (m *Machine) SetUnauthenticated() {
	m.mu.Lock()
	m.state = Unauthenticated
	m.session = session.Session{}
	snap := Snapshot{State: m.state}
	subs := m.subscribers()
	m.mu.Unlock()

	notify(subs, snap)
}

// Subscribe registers fn for lifecycle notifications and returns a cancel
// function. fn runs synchronously on the mutating goroutine; long-running
// observers should hand off to their own goroutine.
func (m *Machine) Subscribe(fn func(Snapshot)) (cancel func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// subscribers copies the callback set in registration order; callers must
// hold mu.
func (m *Machine) subscribers() []func(Snapshot) {
	ids := make([]uint64, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		out = append(out, m.subs[id])
	}
	return out
}

func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
