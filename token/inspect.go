package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is an exported constant or variable used by the API client.
var ErrMalformed = errors.New("malformed token")

// Claims is the advisory view of an access token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect decodes raw without verifying its signature.
//
// Inspect may return an error when the token is not a structurally valid
// JWT. An empty token is malformed.
func Inspect(raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, ErrMalformed
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	var reg jwt.RegisteredClaims
	if _, _, err := parser.ParseUnverified(raw, &reg); err != nil {
		return Claims{}, errors.Join(ErrMalformed, err)
	}

	claims := Claims{Subject: reg.Subject}
	if reg.IssuedAt != nil {
		claims.IssuedAt = reg.IssuedAt.Time
	}
	if reg.ExpiresAt != nil {
		claims.ExpiresAt = reg.ExpiresAt.Time
	}
	return claims, nil
}

// Expired reports whether the token's exp claim is in the past at now,
// allowing leeway of clock skew. Tokens without an exp claim never expire
// locally; the server remains the authority either way.
func (c Claims) Expired(now time.Time, leeway time.Duration) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return now.After(c.ExpiresAt.Add(leeway))
}
