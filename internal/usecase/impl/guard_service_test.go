package impl

import (
	"testing"

	"portaljobs/internal/domain/entity"
	"portaljobs/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestGuardService_CheckingWhileLoading(t *testing.T) {
	// Even an apparently authenticated snapshot must not be acted on while
	// the restore is pending; the flag wins.
	auth := &stubAuth{snapshot: usecase.Snapshot{
		Loading:         true,
		IsAuthenticated: true,
		Role:            entity.RoleCandidate,
	}}
	svc := NewGuardService(auth, discardLogger())

	verdict := svc.Decide(entity.RoleCandidate)
	assert.Equal(t, usecase.GuardChecking, verdict.State)
	assert.Empty(t, verdict.Target)
}

func TestGuardService_UnauthenticatedRedirectsToRoleLogin(t *testing.T) {
	svc := NewGuardService(&stubAuth{}, discardLogger())

	tests := []struct {
		name     string
		required entity.Role
		target   string
	}{
		{"Candidate area", entity.RoleCandidate, "/candidato/login"},
		{"Company area", entity.RoleCompany, "/empresa/login"},
		{"Admin area", entity.RoleAdmin, "/admin/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := svc.Decide(tt.required)
			assert.Equal(t, usecase.GuardRedirect, verdict.State)
			assert.Equal(t, tt.target, verdict.Target)
		})
	}
}

func TestGuardService_WrongRoleRedirectsToOwnDashboard(t *testing.T) {
	auth := &stubAuth{snapshot: usecase.Snapshot{
		User:            &entity.User{ID: "42", Role: entity.RoleCandidate},
		Role:            entity.RoleCandidate,
		IsAuthenticated: true,
	}}
	svc := NewGuardService(auth, discardLogger())

	verdict := svc.Decide(entity.RoleCompany)
	assert.Equal(t, usecase.GuardRedirect, verdict.State)
	assert.Equal(t, "/candidato/dashboard", verdict.Target)
}

func TestGuardService_MatchingRoleAllows(t *testing.T) {
	auth := &stubAuth{snapshot: usecase.Snapshot{
		User:            &entity.User{ID: "7", Role: entity.RoleCompany},
		Role:            entity.RoleCompany,
		IsAuthenticated: true,
	}}
	svc := NewGuardService(auth, discardLogger())

	verdict := svc.Decide(entity.RoleCompany)
	assert.Equal(t, usecase.GuardAllow, verdict.State)
	assert.Empty(t, verdict.Target)
}
