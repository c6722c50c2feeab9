// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"portaljobs/internal/domain/entity"
	domainerrors "portaljobs/internal/domain/errors"
	"portaljobs/internal/domain/repository"
	"portaljobs/internal/domain/service"
	"portaljobs/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface. It holds the in-memory
// session state and is the sole writer of the session store.
type authService struct {
	store     repository.SessionStore
	provider  service.IdentityProvider
	inspector service.TokenInspector
	logger    *slog.Logger

	mu      sync.RWMutex
	current *entity.Session
	loading bool
}

// NewAuthService is the constructor for authService. The service starts in
// the loading state until Initialize resolves the cached session.
func NewAuthService(
	store repository.SessionStore,
	provider service.IdentityProvider,
	inspector service.TokenInspector,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		store:     store,
		provider:  provider,
		inspector: inspector,
		logger:    logger,
		loading:   true,
	}
}

// Initialize restores the cached session tuple. Corrupt or expired cache
// state downgrades to "not authenticated" and is cleaned up; it is never
// surfaced as a failure to the caller.
func (srv *authService) Initialize(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	defer func() { srv.loading = false }()

	session, err := srv.store.Read(ctx)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			srv.logger.Debug("No cached session to restore")
		case errors.Is(err, repository.ErrSessionCorrupt):
			srv.logger.Warn("Discarded corrupt cached session")
		default:
			// The store itself failed; start logged out but report it.
			srv.current = nil

			return errors.Wrap(err, "failed to read session store")
		}
		srv.current = nil

		return nil
	}

	if srv.tokenExpired(session.Token) {
		srv.logger.Info("Cached session token expired, clearing", "userID", session.UserID)
		if err := srv.store.Clear(ctx); err != nil {
			srv.logger.Warn("Failed to clear expired session", "error", err)
		}
		srv.current = nil

		return nil
	}

	srv.current = session
	srv.logger.Info("Restored session", "userID", session.UserID, "role", session.Role)

	return nil
}

// Login authenticates under the given role. The provider round trip runs
// outside the state lock; the session swap and store write happen together
// under it, so a failed login leaves any prior session untouched.
func (srv *authService) Login(ctx context.Context, role entity.Role, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	if !role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown role %q", role)
	}

	srv.logger.Debug("Starting login", "role", role, "email", input.Email)

	grant, err := srv.provider.Login(ctx, role, service.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		srv.logger.Warn("Login failed", "role", role, "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "login failed")
	}

	if err := srv.establish(ctx, role, grant); err != nil {
		return nil, err
	}
	srv.logger.Info("Logged in", "role", role, "userID", grant.User.ID)

	return &usecase.AuthResult{User: grant.User, Role: role, AutoLogin: true}, nil
}

// RegisterCandidate creates a candidate account and auto-logs-in when the
// provider returns a token alongside the created user.
func (srv *authService) RegisterCandidate(ctx context.Context, input *usecase.RegisterCandidateInput) (*usecase.AuthResult, error) {
	return srv.register(ctx, entity.RoleCandidate, service.Registration{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Headline: input.Headline,
		Location: input.Location,
	})
}

// RegisterCompany creates a company account, same contract as
// RegisterCandidate.
func (srv *authService) RegisterCompany(ctx context.Context, input *usecase.RegisterCompanyInput) (*usecase.AuthResult, error) {
	return srv.register(ctx, entity.RoleCompany, service.Registration{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		CompanyName: input.CompanyName,
		Website:     input.Website,
	})
}

func (srv *authService) register(ctx context.Context, role entity.Role, data service.Registration) (*usecase.AuthResult, error) {
	srv.logger.Debug("Starting registration", "role", role, "email", data.Email)

	grant, err := srv.provider.Register(ctx, role, data)
	if err != nil {
		srv.logger.Warn("Registration failed", "role", role, "email", data.Email, "error", err.Error())

		return nil, errors.Wrap(err, "registration failed")
	}

	result := &usecase.AuthResult{User: grant.User, Role: role}
	if grant.AccessToken == "" {
		// No auto-login; the account exists but the caller stays logged out.
		srv.logger.Info("Registered without auto-login", "role", role, "userID", grant.User.ID)

		return result, nil
	}

	if err := srv.establish(ctx, role, grant); err != nil {
		return nil, err
	}
	result.AutoLogin = true
	srv.logger.Info("Registered and logged in", "role", role, "userID", grant.User.ID)

	return result, nil
}

// establish swaps the in-memory session and persists the tuple atomically.
func (srv *authService) establish(ctx context.Context, role entity.Role, grant *service.AuthGrant) error {
	session := &entity.Session{
		Token:  grant.AccessToken,
		Role:   role,
		UserID: grant.User.ID,
		User:   grant.User,
	}
	if !session.Complete() {
		return errors.Wrap(domainerrors.ErrProviderUnavailable, "provider returned an incomplete grant")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.store.Write(ctx, session); err != nil {
		// Keep whatever session was active; the write is all-or-nothing.
		return errors.Wrap(err, "failed to persist session")
	}
	srv.current = session

	return nil
}

// Logout notifies the provider best-effort and unconditionally clears
// local state. Calling it without a session is a no-op success.
func (srv *authService) Logout(ctx context.Context) error {
	srv.mu.RLock()
	token := ""
	if srv.current != nil {
		token = srv.current.Token
	}
	srv.mu.RUnlock()

	if token != "" {
		if err := srv.provider.Logout(ctx, token); err != nil {
			srv.logger.Warn("Provider logout failed, clearing local session anyway", "error", err)
		}
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.current = nil
	if err := srv.store.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session store")
	}
	srv.logger.Info("Logged out")

	return nil
}

// Snapshot returns the current read model.
func (srv *authService) Snapshot() usecase.Snapshot {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	snapshot := usecase.Snapshot{Loading: srv.loading}
	if srv.current != nil {
		snapshot.User = srv.current.User
		snapshot.Role = srv.current.Role
		snapshot.IsAuthenticated = true
	}

	return snapshot
}

// BearerToken returns the current session's token.
func (srv *authService) BearerToken() (string, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.current == nil {
		return "", false
	}

	return srv.current.Token, true
}

func (srv *authService) tokenExpired(token string) bool {
	expiry, err := srv.inspector.Expiry(token)
	if err != nil {
		// An unreadable token is as unusable as an expired one.
		srv.logger.Warn("Cached token unreadable, treating as expired", "error", err)

		return true
	}
	if expiry.IsZero() {
		return false
	}

	return expiry.Before(time.Now())
}
