package service

import "time"

// TokenInspector reads claims out of a bearer token without verifying its
// signature. The signing key belongs to the identity provider, so the only
// local use is deciding whether a cached token is worth restoring.
type TokenInspector interface {
	// Expiry returns the token's exp claim. A token without an exp claim
	// reports the zero time and no error.
	Expiry(token string) (time.Time, error)
}
