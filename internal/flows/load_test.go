package flows

import (
	"context"
	"errors"
	"testing"

	"github.com/Fix-It-project/fixit-go/session"
)

type stateRecorder struct {
	loading         int
	authenticated   int
	unauthenticated int
	session         session.Session
}

func (r *stateRecorder) deps(store session.Store) StoreDeps {
	return StoreDeps{
		Store:       store,
		MarkLoading: func() { r.loading++ },
		MarkAuthenticated: func(sess session.Session) {
			r.authenticated++
			r.session = sess
		},
		MarkUnauthenticated: func() { r.unauthenticated++ },
	}
}

func seedStore(t *testing.T, store session.Store, access, refresh, user string) {
	t.Helper()
	ctx := context.Background()

	set := func(key, value string) {
		if value == "" {
			return
		}
		if err := store.Set(ctx, key, value); err != nil {
			t.Fatalf("seed %s failed: %v", key, err)
		}
	}
	set(session.KeyAccessToken, access)
	set(session.KeyRefreshToken, refresh)
	set(session.KeyUser, user)
}

func TestLoadStoredRestoresCompleteSession(t *testing.T) {
	store := session.NewMemStore()
	seedStore(t, store, "acc-1", "ref-1", `{"id":"u1","email":"alice@example.com"}`)

	rec := &stateRecorder{}
	outcome, sess := RunLoadStored(context.Background(), rec.deps(store))

	if outcome != LoadRestored {
		t.Fatalf("expected restored, got %v", outcome)
	}
	if sess.AccessToken != "acc-1" || sess.RefreshToken != "ref-1" || sess.User.ID != "u1" {
		t.Fatalf("unexpected session %+v", sess)
	}
	if rec.loading != 1 || rec.authenticated != 1 || rec.unauthenticated != 0 {
		t.Fatalf("unexpected transitions %+v", rec)
	}
}

func TestLoadStoredEmptyStore(t *testing.T) {
	rec := &stateRecorder{}
	outcome, _ := RunLoadStored(context.Background(), rec.deps(session.NewMemStore()))

	if outcome != LoadEmpty {
		t.Fatalf("expected empty, got %v", outcome)
	}
	if rec.unauthenticated != 1 || rec.authenticated != 0 {
		t.Fatalf("unexpected transitions %+v", rec)
	}
}

func TestLoadStoredHealsPartialWrite(t *testing.T) {
	store := session.NewMemStore()
	// Access token and user present, refresh token missing: the invariant
	// "both tokens or neither" is broken, so the leftovers must go.
	seedStore(t, store, "acc-1", "", `{"id":"u1","email":"alice@example.com"}`)

	rec := &stateRecorder{}
	outcome, _ := RunLoadStored(context.Background(), rec.deps(store))

	if outcome != LoadHealedPartial {
		t.Fatalf("expected healed_partial, got %v", outcome)
	}
	if rec.unauthenticated != 1 {
		t.Fatalf("unexpected transitions %+v", rec)
	}

	ctx := context.Background()
	for _, key := range session.Keys() {
		if _, err := store.Get(ctx, key); !errors.Is(err, session.ErrNotFound) {
			t.Fatalf("expected %s cleared, got %v", key, err)
		}
	}

	// Second load on the healed store is a clean empty, not another heal.
	outcome, _ = RunLoadStored(ctx, rec.deps(store))
	if outcome != LoadEmpty {
		t.Fatalf("expected empty after heal, got %v", outcome)
	}
}

func TestLoadStoredHealsCorruptUser(t *testing.T) {
	store := session.NewMemStore()
	seedStore(t, store, "acc-1", "ref-1", "{not json")

	rec := &stateRecorder{}
	outcome, _ := RunLoadStored(context.Background(), rec.deps(store))

	if outcome != LoadHealedCorrupt {
		t.Fatalf("expected healed_corrupt, got %v", outcome)
	}
	if rec.authenticated != 0 || rec.unauthenticated != 1 {
		t.Fatalf("unexpected transitions %+v", rec)
	}

	for _, key := range session.Keys() {
		if _, err := store.Get(context.Background(), key); !errors.Is(err, session.ErrNotFound) {
			t.Fatalf("expected %s cleared, got %v", key, err)
		}
	}
}

type failingStore struct {
	session.Store
	getErr error
}

func (f *failingStore) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.Store.Get(ctx, key)
}

func TestLoadStoredReadErrorTreatedAsAbsence(t *testing.T) {
	inner := session.NewMemStore()
	seedStore(t, inner, "acc-1", "ref-1", `{"id":"u1","email":"a@b.c"}`)
	store := &failingStore{Store: inner, getErr: session.ErrStoreUnavailable}

	rec := &stateRecorder{}
	outcome, _ := RunLoadStored(context.Background(), rec.deps(store))

	if outcome != LoadEmpty {
		t.Fatalf("expected empty on read failure, got %v", outcome)
	}
	if rec.unauthenticated != 1 {
		t.Fatalf("unexpected transitions %+v", rec)
	}

	// The entries themselves must survive: they may be intact and readable
	// on the next start.
	if _, err := inner.Get(context.Background(), session.KeyAccessToken); err != nil {
		t.Fatalf("entries must not be healed on read failure: %v", err)
	}
}
