// Package token inspects the upstream-issued bearer token without
// verifying it. The signing secret lives in the remote API; the only
// check worth doing locally is whether the token is already past its
// expiry, so an obviously dead token fails fast instead of bouncing
// off upstream.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed token")

// ExpiresAt returns the exp claim, or nil when the token carries none.
// Opaque (non-JWT) tokens return ErrMalformedToken and callers should
// pass them through to upstream, which stays authoritative.
func ExpiresAt(tokenString string) (*time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, ErrMalformedToken
	}

	if claims.ExpiresAt == nil {
		return nil, nil
	}
	t := claims.ExpiresAt.Time
	return &t, nil
}

// Expired reports whether the token is provably past its expiry at the
// given instant. Tokens that cannot be parsed locally are not treated
// as expired.
func Expired(tokenString string, now time.Time) bool {
	exp, err := ExpiresAt(tokenString)
	if err != nil || exp == nil {
		return false
	}
	return now.After(*exp)
}
