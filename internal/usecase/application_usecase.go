package usecase

import (
	"context"

	"portaljobs/internal/domain/entity"
)

// ApplicationUsecase mediates candidate submissions to job postings and
// their status display.
//
// The duplicate check in Apply is a local optimistic guard over the cached
// list; the backend's unique (job, candidate) constraint stays
// authoritative. Two tabs can both pass the local check, in which case the
// backend rejects one and the caller sees ErrAlreadyApplied.
type ApplicationUsecase interface {
	// Apply submits an application for the current candidate. It fails
	// before any network call with ErrNotAuthenticated, ErrWrongRole, or
	// ErrAlreadyApplied when the cached list already holds the job. The
	// created application is appended to the cache so an immediate second
	// Apply is caught without a refresh.
	Apply(ctx context.Context, jobID string) (*entity.Application, error)

	// ListMine fetches the current candidate's applications and reseeds
	// the duplicate-check cache.
	ListMine(ctx context.Context) ([]*entity.Application, error)

	// FilterByStatus is a pure, synchronous filter over the cached list.
	// It never triggers a network call.
	FilterByStatus(status entity.ApplicationStatus) []*entity.Application
}
