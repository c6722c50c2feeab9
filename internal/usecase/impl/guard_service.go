package impl

import (
	"log/slog"

	"portaljobs/internal/domain/entity"
	"portaljobs/internal/usecase"
)

// guardService implements the GuardUsecase interface on top of the auth
// snapshot. The role it checks is the same one the session store fed into
// the snapshot, so there is a single source of role truth.
type guardService struct {
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

// NewGuardService is the constructor for guardService.
func NewGuardService(auth usecase.AuthUsecase, logger *slog.Logger) usecase.GuardUsecase {
	return &guardService{auth: auth, logger: logger}
}

// Decide resolves the gating state machine for a protected route:
// checking while the session restore is pending, a redirect to the
// required role's login when unauthenticated, a redirect to the visitor's
// own dashboard on a role mismatch, and allow otherwise.
func (srv *guardService) Decide(required entity.Role) usecase.Verdict {
	snapshot := srv.auth.Snapshot()

	if snapshot.Loading {
		// Redirecting now would bounce an already-authenticated visitor
		// whose session restore simply hasn't finished.
		return usecase.Verdict{State: usecase.GuardChecking}
	}

	if !snapshot.IsAuthenticated {
		return usecase.Verdict{
			State:  usecase.GuardRedirect,
			Target: usecase.LoginPath(required),
		}
	}

	if required.IsValid() && snapshot.Role != required {
		srv.logger.Debug("Cross-role access rerouted",
			"required", required, "actual", snapshot.Role)

		return usecase.Verdict{
			State:  usecase.GuardRedirect,
			Target: usecase.DashboardPath(snapshot.Role),
		}
	}

	return usecase.Verdict{State: usecase.GuardAllow}
}
