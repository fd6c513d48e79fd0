package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func authResponseJSON(access, refresh string) string {
	return `{"user":{"id":"u1","email":"alice@example.com"},` +
		`"session":{"accessToken":"` + access + `","refreshToken":"` + refresh + `","expiresAt":1700000000}}`
}

func TestSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathSignIn {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatal("missing X-Request-ID header")
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body failed: %v", err)
		}
		if body["email"] != "alice@example.com" || body["password"] != "pw" {
			t.Fatalf("unexpected body %v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(authResponseJSON("acc-1", "ref-1")))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, Options{})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	res, err := client.SignIn(context.Background(), "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if res.User.ID != "u1" || res.Session.AccessToken != "acc-1" || res.Session.RefreshToken != "ref-1" {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestSignInError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, Options{})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	_, err = client.SignIn(context.Background(), "alice@example.com", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "invalid credentials" {
		t.Fatalf("unexpected api error %+v", apiErr)
	}
}

func TestRefreshRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathRefresh {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"refresh token invalid"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, Options{})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	_, err = client.Refresh(context.Background(), "stale")
	if !errors.Is(err, ErrRefreshRejected) {
		t.Fatalf("expected ErrRefreshRejected, got %v", err)
	}
}

func TestRefreshServerErrorIsNotRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, Options{})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	_, err = client.Refresh(context.Background(), "ref-1")
	if err == nil {
		t.Fatal("expected error for 502")
	}
	if errors.Is(err, ErrRefreshRejected) {
		t.Fatalf("5xx must not classify as rejection: %v", err)
	}
}

func TestSignOutSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer acc-1" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		_, _ = w.Write([]byte(`{"success":true,"message":"signed out"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, Options{})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	if err := client.SignOut(context.Background(), "acc-1"); err != nil {
		t.Fatalf("signout failed: %v", err)
	}
}

func TestCurrentUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != PathCurrentUser {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"user":{"id":"u1","email":"alice@example.com",` +
			`"user_metadata":{"full_name":"Alice","phone":"555","address":"1 Main St"}}}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, Options{})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	profile, err := client.CurrentUser(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("current user failed: %v", err)
	}
	if profile.ID != "u1" || profile.FullName != "Alice" || profile.Address != "1 Main St" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Request-ID"); got != "req-42" {
			t.Fatalf("unexpected request id %q", got)
		}
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, Options{})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	ctx := WithRequestID(context.Background(), "req-42")
	if err := client.ForgotPassword(ctx, "alice@example.com"); err != nil {
		t.Fatalf("forgot password failed: %v", err)
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("   ", Options{}); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}
