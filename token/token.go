package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultRenewAhead is the buffer applied ahead of token expiry when the
// caller does not configure one. A token inside this window is treated as
// already expired so renewal happens before the server rejects it.
const DefaultRenewAhead = 60 * time.Second

// ErrNoExpiry is returned when a token decodes but carries no exp claim.
var ErrNoExpiry = errors.New("token has no expiry claim")

var parser = jwt.NewParser(jwt.WithoutClaimsValidation())

// ExpiresAt decodes the expiry claim of a JWT access token without verifying
// its signature. The client holds no verification key; signature checking is
// the identity provider's job, and a forged expiry only changes when the
// client asks the provider for a renewal it would refuse anyway.
func ExpiresAt(raw string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// NearExpiry reports whether the token expires before now+buffer. An
// undecodable token or one without an expiry claim reports true: failing
// toward renewal is always safe, failing toward a stale token is not.
func NearExpiry(raw string, buffer time.Duration) bool {
	return nearExpiryAt(raw, buffer, time.Now())
}

func nearExpiryAt(raw string, buffer time.Duration, now time.Time) bool {
	if buffer <= 0 {
		buffer = DefaultRenewAhead
	}

	exp, err := ExpiresAt(raw)
	if err != nil {
		return true
	}
	return exp.Before(now.Add(buffer))
}
