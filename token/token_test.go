package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return raw
}

func tokenWithoutExpiry(t *testing.T) string {
	t.Helper()

	claims := jwt.RegisteredClaims{Subject: "u1"}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return raw
}

func TestExpiresAt(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	raw := signedToken(t, exp)

	got, err := ExpiresAt(raw)
	if err != nil {
		t.Fatalf("expires at failed: %v", err)
	}
	if !got.Equal(exp) {
		t.Fatalf("expected expiry %v, got %v", exp, got)
	}
}

func TestExpiresAtMissingClaim(t *testing.T) {
	if _, err := ExpiresAt(tokenWithoutExpiry(t)); !errors.Is(err, ErrNoExpiry) {
		t.Fatalf("expected ErrNoExpiry, got %v", err)
	}
}

func TestExpiresAtGarbage(t *testing.T) {
	if _, err := ExpiresAt("not-a-token"); err == nil {
		t.Fatal("expected decode error for garbage token")
	}
}

func TestNearExpiryBoundary(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	tests := []struct {
		name   string
		exp    time.Time
		buffer time.Duration
		want   bool
	}{
		{name: "well before window", exp: now.Add(10 * time.Minute), buffer: 60 * time.Second, want: false},
		{name: "inside window", exp: now.Add(30 * time.Second), buffer: 60 * time.Second, want: true},
		{name: "already expired", exp: now.Add(-10 * time.Second), buffer: 60 * time.Second, want: true},
		{name: "just outside window", exp: now.Add(61 * time.Second), buffer: 60 * time.Second, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := signedToken(t, tt.exp)
			if got := nearExpiryAt(raw, tt.buffer, now); got != tt.want {
				t.Fatalf("nearExpiryAt(%v, %v) = %v, want %v", tt.exp.Sub(now), tt.buffer, got, tt.want)
			}
		})
	}
}

func TestNearExpiryUndecodable(t *testing.T) {
	if !NearExpiry("garbage", 60*time.Second) {
		t.Fatal("undecodable token must report near expiry")
	}
}

func TestNearExpiryDefaultBuffer(t *testing.T) {
	now := time.Now()

	// 30s out: inside the 60s default window applied when buffer <= 0.
	if !nearExpiryAt(signedToken(t, now.Add(30*time.Second)), 0, now) {
		t.Fatal("expected near expiry with default buffer")
	}
	if nearExpiryAt(signedToken(t, now.Add(5*time.Minute)), 0, now) {
		t.Fatal("expected not near expiry with default buffer")
	}
}

func TestNearExpiryMissingClaim(t *testing.T) {
	if !NearExpiry(tokenWithoutExpiry(t), 60*time.Second) {
		t.Fatal("token without expiry claim must report near expiry")
	}
}
