// Package auth contains token handling infrastructure.
package auth

import (
	"time"

	"portaljobs/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtInspector reads claims from provider-issued bearer tokens. The signing
// key is the provider's, so tokens are parsed unverified: the only local
// question is whether a cached token is already expired.
type jwtInspector struct{}

// NewTokenInspector is the constructor for the JWT claim inspector.
func NewTokenInspector() service.TokenInspector {
	return &jwtInspector{}
}

// Expiry returns the exp claim of the token, or the zero time when the
// token carries no expiry.
func (i *jwtInspector) Expiry(token string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "failed to parse token structure")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to read exp claim")
	}
	if exp == nil {
		return time.Time{}, nil
	}

	return exp.Time, nil
}
