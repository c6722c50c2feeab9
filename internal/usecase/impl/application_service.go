package impl

import (
	"context"
	"log/slog"
	"sync"

	"portaljobs/internal/domain/entity"
	domainerrors "portaljobs/internal/domain/errors"
	"portaljobs/internal/domain/service"
	"portaljobs/internal/usecase"

	"github.com/pkg/errors"
)

// applicationService implements the ApplicationUsecase interface. The
// cached list doubles as the candidate's dashboard data and the local
// duplicate-check fast path for Apply.
type applicationService struct {
	auth   usecase.AuthUsecase
	client service.ApplicationClient
	logger *slog.Logger

	mu    sync.RWMutex
	cache []*entity.Application
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(
	auth usecase.AuthUsecase,
	client service.ApplicationClient,
	logger *slog.Logger,
) usecase.ApplicationUsecase {
	return &applicationService{
		auth:   auth,
		client: client,
		logger: logger,
	}
}

// Apply submits an application for the current candidate. The local
// duplicate check avoids the round trip in the common case; the backend's
// unique constraint remains the authority, so a race between tabs surfaces
// as ErrAlreadyApplied from the create call instead.
func (srv *applicationService) Apply(ctx context.Context, jobID string) (*entity.Application, error) {
	snapshot := srv.auth.Snapshot()
	if !snapshot.IsAuthenticated {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "apply requires a logged-in candidate")
	}
	if snapshot.Role != entity.RoleCandidate {
		return nil, errors.Wrapf(domainerrors.ErrWrongRole, "apply is unavailable to role %q", snapshot.Role)
	}

	if srv.cached(jobID) != nil {
		srv.logger.Debug("Duplicate application blocked locally", "jobID", jobID)

		return nil, errors.Wrap(domainerrors.ErrAlreadyApplied, "application already cached")
	}

	token, ok := srv.auth.BearerToken()
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "session vanished before apply")
	}

	created, err := srv.client.Create(ctx, token, jobID)
	if err != nil {
		srv.logger.Warn("Apply failed", "jobID", jobID, "error", err.Error())

		return nil, errors.Wrap(err, "failed to create application")
	}

	if created.CandidateID == "" && snapshot.User != nil {
		created.CandidateID = snapshot.User.ID
	}

	srv.mu.Lock()
	// A concurrent Apply for the same job may have landed first; never
	// cache the same posting twice.
	if existing := srv.cachedLocked(jobID); existing == nil {
		srv.cache = append(srv.cache, created)
	}
	srv.mu.Unlock()

	srv.logger.Info("Application created", "jobID", jobID, "applicationID", created.ID, "status", created.Status)

	return created, nil
}

// ListMine fetches the candidate's applications and reseeds the cache.
func (srv *applicationService) ListMine(ctx context.Context) ([]*entity.Application, error) {
	snapshot := srv.auth.Snapshot()
	if !snapshot.IsAuthenticated {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "listing applications requires a logged-in candidate")
	}
	if snapshot.Role != entity.RoleCandidate {
		return nil, errors.Wrapf(domainerrors.ErrWrongRole, "applications are unavailable to role %q", snapshot.Role)
	}

	token, ok := srv.auth.BearerToken()
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "session vanished before listing")
	}

	applications, err := srv.client.ListMine(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	srv.mu.Lock()
	srv.cache = applications
	srv.mu.Unlock()

	srv.logger.Debug("Applications refreshed", "count", len(applications))

	return srv.copyCache(), nil
}

// FilterByStatus filters the cached list. Pure and synchronous; repeated
// calls with the same status yield identical results with no side effects.
func (srv *applicationService) FilterByStatus(status entity.ApplicationStatus) []*entity.Application {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	filtered := make([]*entity.Application, 0, len(srv.cache))
	for _, app := range srv.cache {
		if app.Status == status {
			filtered = append(filtered, app)
		}
	}

	return filtered
}

func (srv *applicationService) cached(jobID string) *entity.Application {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.cachedLocked(jobID)
}

func (srv *applicationService) cachedLocked(jobID string) *entity.Application {
	for _, app := range srv.cache {
		if app.JobID == jobID {
			return app
		}
	}

	return nil
}

func (srv *applicationService) copyCache() []*entity.Application {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	out := make([]*entity.Application, len(srv.cache))
	copy(out, srv.cache)

	return out
}
