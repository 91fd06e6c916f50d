// Package auth inspects the bearer token issued by the storefront API.
//
// The token is opaque to the client: its signature is never checked here.
// When it happens to be a JWT carrying an exp claim, that claim is used to
// stop sending a credential the server will reject anyway.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt returns the token's exp claim, if it has one.
func ExpiresAt(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether token carries an exp claim at or before now.
// Tokens that are not JWTs, or carry no exp, never expire from the
// client's point of view.
func Expired(token string, now time.Time) bool {
	exp, ok := ExpiresAt(token)
	if !ok {
		return false
	}
	return !now.Before(exp)
}
