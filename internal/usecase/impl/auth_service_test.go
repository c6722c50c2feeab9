package impl

import (
	"context"
	"testing"
	"time"

	"portaljobs/internal/domain/entity"
	domainerrors "portaljobs/internal/domain/errors"
	"portaljobs/internal/domain/repository"
	"portaljobs/internal/domain/service"
	"portaljobs/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateGrant() *service.AuthGrant {
	return &service.AuthGrant{
		AccessToken: "token-1",
		User: &entity.User{
			ID:    "42",
			Email: "ana@example.com",
			Name:  "Ana",
			Role:  entity.RoleCandidate,
		},
	}
}

func TestAuthService_InitializeEmptyStore(t *testing.T) {
	store := &memStore{}
	svc := NewAuthService(store, &stubProvider{}, &stubInspector{}, discardLogger())

	assert.True(t, svc.Snapshot().Loading)

	require.NoError(t, svc.Initialize(context.Background()))

	snapshot := svc.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.False(t, snapshot.IsAuthenticated)
	assert.Nil(t, snapshot.User)
}

func TestAuthService_InitializeRestoresSession(t *testing.T) {
	grant := candidateGrant()
	store := &memStore{session: &entity.Session{
		Token:  grant.AccessToken,
		Role:   entity.RoleCandidate,
		UserID: grant.User.ID,
		User:   grant.User,
	}}
	svc := NewAuthService(store, &stubProvider{}, &stubInspector{}, discardLogger())

	require.NoError(t, svc.Initialize(context.Background()))

	snapshot := svc.Snapshot()
	assert.True(t, snapshot.IsAuthenticated)
	assert.Equal(t, entity.RoleCandidate, snapshot.Role)
	assert.Equal(t, "42", snapshot.User.ID)

	token, ok := svc.BearerToken()
	assert.True(t, ok)
	assert.Equal(t, "token-1", token)
}

func TestAuthService_InitializeCorruptSession(t *testing.T) {
	store := &memStore{readErr: errors.Wrap(repository.ErrSessionCorrupt, "missing profile blob")}
	svc := NewAuthService(store, &stubProvider{}, &stubInspector{}, discardLogger())

	require.NoError(t, svc.Initialize(context.Background()))

	snapshot := svc.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.False(t, snapshot.IsAuthenticated)
}

func TestAuthService_InitializeExpiredToken(t *testing.T) {
	grant := candidateGrant()
	store := &memStore{session: &entity.Session{
		Token:  grant.AccessToken,
		Role:   entity.RoleCandidate,
		UserID: grant.User.ID,
		User:   grant.User,
	}}
	inspector := &stubInspector{expiry: time.Now().Add(-time.Hour)}
	svc := NewAuthService(store, &stubProvider{}, inspector, discardLogger())

	require.NoError(t, svc.Initialize(context.Background()))

	assert.False(t, svc.Snapshot().IsAuthenticated)
	assert.Equal(t, 1, store.clears)
	assert.Nil(t, store.session)
}

func TestAuthService_InitializeStoreFailureReported(t *testing.T) {
	store := &memStore{readErr: errors.New("disk unavailable")}
	svc := NewAuthService(store, &stubProvider{}, &stubInspector{}, discardLogger())

	err := svc.Initialize(context.Background())
	require.Error(t, err)

	// Loading still resolves so the guard never hangs in checking.
	snapshot := svc.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.False(t, snapshot.IsAuthenticated)
}

func TestAuthService_LoginEstablishesSession(t *testing.T) {
	store := &memStore{}
	provider := &stubProvider{loginGrant: candidateGrant()}
	svc := NewAuthService(store, provider, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	result, err := svc.Login(context.Background(), entity.RoleCandidate, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, result.AutoLogin)
	assert.Equal(t, entity.RoleCandidate, result.Role)

	// Persisted and live state agree.
	assert.Equal(t, 1, store.writes)
	require.NotNil(t, store.session)
	assert.Equal(t, "token-1", store.session.Token)
	assert.True(t, svc.Snapshot().IsAuthenticated)
	assert.Equal(t, entity.RoleCandidate, provider.lastRole)
}

func TestAuthService_LoginSurvivesRestart(t *testing.T) {
	store := &memStore{}
	provider := &stubProvider{loginGrant: candidateGrant()}
	svc := NewAuthService(store, provider, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	_, err := svc.Login(context.Background(), entity.RoleCandidate, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// A fresh service over the same store sees the session again.
	revived := NewAuthService(store, provider, &stubInspector{}, discardLogger())
	require.NoError(t, revived.Initialize(context.Background()))
	snapshot := revived.Snapshot()
	assert.True(t, snapshot.IsAuthenticated)
	assert.Equal(t, "42", snapshot.User.ID)
}

func TestAuthService_FailedLoginKeepsPriorSession(t *testing.T) {
	grant := candidateGrant()
	store := &memStore{session: &entity.Session{
		Token:  grant.AccessToken,
		Role:   entity.RoleCandidate,
		UserID: grant.User.ID,
		User:   grant.User,
	}}
	provider := &stubProvider{loginErr: domainerrors.ErrInvalidCredentials}
	svc := NewAuthService(store, provider, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	_, err := svc.Login(context.Background(), entity.RoleCandidate, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	// The earlier session is untouched.
	snapshot := svc.Snapshot()
	assert.True(t, snapshot.IsAuthenticated)
	assert.Equal(t, "42", snapshot.User.ID)
	assert.NotNil(t, store.session)
}

func TestAuthService_LoginRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(&memStore{}, &stubProvider{}, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	_, err := svc.Login(context.Background(), entity.Role("guest"), &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_RegisterCandidateAutoLogin(t *testing.T) {
	store := &memStore{}
	provider := &stubProvider{grant: candidateGrant()}
	svc := NewAuthService(store, provider, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	result, err := svc.RegisterCandidate(context.Background(), &usecase.RegisterCandidateInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, result.AutoLogin)
	assert.True(t, svc.Snapshot().IsAuthenticated)
	assert.Equal(t, 1, store.writes)
}

func TestAuthService_RegisterWithoutTokenStaysLoggedOut(t *testing.T) {
	grant := candidateGrant()
	grant.AccessToken = ""
	store := &memStore{}
	provider := &stubProvider{grant: grant}
	svc := NewAuthService(store, provider, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	result, err := svc.RegisterCandidate(context.Background(), &usecase.RegisterCandidateInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.False(t, result.AutoLogin)
	assert.NotNil(t, result.User)
	assert.False(t, svc.Snapshot().IsAuthenticated)
	assert.Equal(t, 0, store.writes)
}

func TestAuthService_RegisterCompanySetsRole(t *testing.T) {
	grant := &service.AuthGrant{
		AccessToken: "token-2",
		User:        &entity.User{ID: "7", Email: "rh@acme.com", Name: "Acme", Role: entity.RoleCompany},
	}
	provider := &stubProvider{grant: grant}
	svc := NewAuthService(&memStore{}, provider, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	result, err := svc.RegisterCompany(context.Background(), &usecase.RegisterCompanyInput{
		Name:        "Acme",
		Email:       "rh@acme.com",
		Password:    "secret123",
		CompanyName: "Acme Ltda",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCompany, result.Role)
	assert.Equal(t, entity.RoleCompany, provider.lastRole)
}

func TestAuthService_LogoutClearsEverything(t *testing.T) {
	store := &memStore{}
	provider := &stubProvider{loginGrant: candidateGrant()}
	svc := NewAuthService(store, provider, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	_, err := svc.Login(context.Background(), entity.RoleCandidate, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))

	assert.Equal(t, 1, provider.logouts)
	assert.Equal(t, 1, store.clears)
	assert.False(t, svc.Snapshot().IsAuthenticated)
	_, ok := svc.BearerToken()
	assert.False(t, ok)
}

func TestAuthService_LogoutWithoutSessionIsNoop(t *testing.T) {
	store := &memStore{}
	provider := &stubProvider{}
	svc := NewAuthService(store, provider, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	require.NoError(t, svc.Logout(context.Background()))
	require.NoError(t, svc.Logout(context.Background()))

	assert.Equal(t, 0, provider.logouts)
	assert.False(t, svc.Snapshot().IsAuthenticated)
}

func TestAuthService_LogoutIgnoresProviderFailure(t *testing.T) {
	store := &memStore{}
	provider := &stubProvider{loginGrant: candidateGrant(), logoutErr: domainerrors.ErrProviderUnavailable}
	svc := NewAuthService(store, provider, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	_, err := svc.Login(context.Background(), entity.RoleCandidate, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, svc.Snapshot().IsAuthenticated)
	assert.Nil(t, store.session)
}

func TestAuthService_IncompleteGrantRejected(t *testing.T) {
	grant := candidateGrant()
	grant.User.ID = ""
	provider := &stubProvider{loginGrant: grant}
	store := &memStore{}
	svc := NewAuthService(store, provider, &stubInspector{}, discardLogger())
	require.NoError(t, svc.Initialize(context.Background()))

	_, err := svc.Login(context.Background(), entity.RoleCandidate, &usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrProviderUnavailable)
	assert.Equal(t, 0, store.writes)
	assert.False(t, svc.Snapshot().IsAuthenticated)
}
