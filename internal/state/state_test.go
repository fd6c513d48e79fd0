package state

import (
	"testing"

	"github.com/Fix-It-project/fixit-go/session"
)

func testSession() session.Session {
	return session.Session{
		User:         session.User{ID: "u1", Email: "alice@example.com"},
		AccessToken:  "acc-1",
		RefreshToken: "ref-1",
	}
}

func TestMachineStartsUninitialized(t *testing.T) {
	m := NewMachine()

	snap := m.Snapshot()
	if snap.State != Uninitialized {
		t.Fatalf("expected uninitialized, got %v", snap.State)
	}
	if !snap.IsLoading() {
		t.Fatal("uninitialized must report loading to observers")
	}
	if snap.IsAuthenticated() {
		t.Fatal("uninitialized must not report authenticated")
	}
}

func TestMachineTransitions(t *testing.T) {
	m := NewMachine()

	m.MarkLoading()
	if got := m.Snapshot().State; got != Loading {
		t.Fatalf("expected loading, got %v", got)
	}

	m.SetAuthenticated(testSession())
	snap := m.Snapshot()
	if !snap.IsAuthenticated() {
		t.Fatal("expected authenticated")
	}
	if snap.Session.AccessToken != "acc-1" || snap.Session.User.ID != "u1" {
		t.Fatalf("unexpected session %+v", snap.Session)
	}

	m.SetUnauthenticated()
	snap = m.Snapshot()
	if snap.State != Unauthenticated {
		t.Fatalf("expected unauthenticated, got %v", snap.State)
	}
	if snap.Session != (session.Session{}) {
		t.Fatalf("session must be dropped, got %+v", snap.Session)
	}
}

func TestTokenAccessors(t *testing.T) {
	m := NewMachine()

	if m.AccessToken() != "" || m.RefreshToken() != "" {
		t.Fatal("expected empty tokens before authentication")
	}

	m.SetAuthenticated(testSession())
	if m.AccessToken() != "acc-1" || m.RefreshToken() != "ref-1" {
		t.Fatal("expected installed tokens after authentication")
	}
}

func TestSubscribeAndCancel(t *testing.T) {
	m := NewMachine()

	var seen []State
	cancel := m.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap.State)
	})

	m.MarkLoading()
	m.SetAuthenticated(testSession())
	cancel()
	m.SetUnauthenticated()

	want := []State{Loading, Authenticated}
	if len(seen) != len(want) {
		t.Fatalf("expected %d notifications, got %d (%v)", len(want), len(seen), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("notification %d: expected %v, got %v", i, want[i], seen[i])
		}
	}
}

func TestSubscriberSeesSessionInSnapshot(t *testing.T) {
	m := NewMachine()

	var got Snapshot
	m.Subscribe(func(snap Snapshot) { got = snap })

	m.SetAuthenticated(testSession())
	if !got.IsAuthenticated() || got.Session.User.Email != "alice@example.com" {
		t.Fatalf("unexpected snapshot %+v", got)
	}
}
