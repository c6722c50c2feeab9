// Package service defines interfaces for external collaborators consumed by
// the use cases, abstracting their transport details away.
package service

import (
	"context"

	"portaljobs/internal/domain/entity"
)

// Credentials carries the email/password pair for a role-qualified login.
type Credentials struct {
	Email    string
	Password string
}

// Registration carries the data for creating a new account. Role-specific
// fields are only read for the matching role.
type Registration struct {
	Name        string
	Email       string
	Password    string
	CompanyName string
	Website     string
	Headline    string
	Location    string
}

// AuthGrant is the provider's answer to a successful login or registration.
// AccessToken may be empty on registration when the provider does not
// auto-login the new account.
type AuthGrant struct {
	AccessToken string
	User        *entity.User
}

// IdentityProvider is the remote backend issuing bearer tokens and user
// records. All methods translate provider failures into the domain error
// taxonomy; transport failures surface as ErrProviderUnavailable.
type IdentityProvider interface {
	// Login authenticates against the role-qualified login endpoint.
	Login(ctx context.Context, role entity.Role, creds Credentials) (*AuthGrant, error)

	// Register creates an account under the role-qualified registration
	// endpoint and may auto-login (token present in the grant).
	Register(ctx context.Context, role entity.Role, data Registration) (*AuthGrant, error)

	// Logout invalidates the bearer token server-side. Callers treat this
	// as best-effort; a failure must not keep the local session alive.
	Logout(ctx context.Context, token string) error
}
