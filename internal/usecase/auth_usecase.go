// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"portaljobs/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a role-qualified login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterCandidateInput defines the data required to register a candidate.
type RegisterCandidateInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Headline string `json:"headline"`
	Location string `json:"location"`
}

// RegisterCompanyInput defines the data required to register a company.
type RegisterCompanyInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"company_name" validate:"required"`
	Website     string `json:"website"`
}

// --- Output DTOs ---

// AuthResult returns the authenticated (or newly created) account.
// AutoLogin reports whether a session was established; registration
// without a provider-issued token leaves the caller logged out.
type AuthResult struct {
	User      *entity.User `json:"user"`
	Role      entity.Role  `json:"role"`
	AutoLogin bool         `json:"auto_login"`
}

// Snapshot is the read model the rest of the application consults for
// "who is logged in". Loading distinguishes "still restoring the cached
// session" from "confirmed logged out".
type Snapshot struct {
	User            *entity.User `json:"user"`
	Role            entity.Role  `json:"role,omitempty"`
	IsAuthenticated bool         `json:"is_authenticated"`
	Loading         bool         `json:"loading"`
}

// AuthUsecase is the single authority over session state. It is the only
// component permitted to write the session store.
//
// Login, Register and Logout are not mutually exclusive across concurrent
// invocations: the last completed provider response wins and overwrites the
// store atomically. Callers are expected to disable re-submission while a
// call is pending.
type AuthUsecase interface {
	// Initialize restores the cached session once at startup. It never
	// fails on corrupt cache state; it ends with Loading=false either way.
	Initialize(ctx context.Context) error

	// Login authenticates under the given role and establishes the session.
	// On failure any prior session is left untouched.
	Login(ctx context.Context, role entity.Role, input *LoginInput) (*AuthResult, error)

	// RegisterCandidate creates a candidate account, auto-logging-in when
	// the provider returns a token alongside the created user.
	RegisterCandidate(ctx context.Context, input *RegisterCandidateInput) (*AuthResult, error)

	// RegisterCompany creates a company account, same contract as
	// RegisterCandidate.
	RegisterCompany(ctx context.Context, input *RegisterCompanyInput) (*AuthResult, error)

	// Logout notifies the provider best-effort and unconditionally clears
	// local session state. Logging out without a session is a no-op.
	Logout(ctx context.Context) error

	// Snapshot returns the current read model.
	Snapshot() Snapshot

	// BearerToken returns the current session's token for downstream
	// provider calls.
	BearerToken() (string, bool)
}
