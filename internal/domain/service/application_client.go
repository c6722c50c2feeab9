package service

import (
	"context"

	"portaljobs/internal/domain/entity"
)

// ApplicationClient is the remote backend surface for candidate
// applications. The backend owns status transitions and enforces the
// at-most-once (job, candidate) constraint authoritatively; a duplicate
// create surfaces as ErrAlreadyApplied.
type ApplicationClient interface {
	// Create submits an application to a job posting on behalf of the
	// bearer token's candidate and returns the created record.
	Create(ctx context.Context, token string, jobID string) (*entity.Application, error)

	// ListMine returns all applications owned by the bearer token's
	// candidate.
	ListMine(ctx context.Context, token string) ([]*entity.Application, error)
}
