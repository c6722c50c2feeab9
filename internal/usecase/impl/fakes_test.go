package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"portaljobs/internal/domain/entity"
	"portaljobs/internal/domain/repository"
	"portaljobs/internal/domain/service"
	"portaljobs/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory SessionStore with injectable failures.
type memStore struct {
	session *entity.Session

	readErr  error
	writeErr error
	clearErr error

	writes int
	clears int
}

func (m *memStore) Write(_ context.Context, session *entity.Session) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.session = session

	return nil
}

func (m *memStore) Read(context.Context) (*entity.Session, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.session == nil {
		return nil, repository.ErrSessionNotFound
	}

	return m.session, nil
}

func (m *memStore) Clear(context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.clears++
	m.session = nil

	return nil
}

// stubProvider returns canned grants and records call counts.
type stubProvider struct {
	loginGrant  *service.AuthGrant
	loginErr    error
	logins      int
	lastRole    entity.Role
	grant       *service.AuthGrant
	registerErr error
	registers   int
	logoutErr   error
	logouts     int
}

func (p *stubProvider) Login(_ context.Context, role entity.Role, _ service.Credentials) (*service.AuthGrant, error) {
	p.logins++
	p.lastRole = role
	if p.loginErr != nil {
		return nil, p.loginErr
	}

	return p.loginGrant, nil
}

func (p *stubProvider) Register(_ context.Context, role entity.Role, _ service.Registration) (*service.AuthGrant, error) {
	p.registers++
	p.lastRole = role
	if p.registerErr != nil {
		return nil, p.registerErr
	}

	return p.grant, nil
}

func (p *stubProvider) Logout(context.Context, string) error {
	p.logouts++

	return p.logoutErr
}

// stubInspector reports a fixed expiry for every token.
type stubInspector struct {
	expiry time.Time
	err    error
}

func (i *stubInspector) Expiry(string) (time.Time, error) {
	return i.expiry, i.err
}

// stubAuth is a fixed AuthUsecase snapshot source for the services that
// consult it instead of holding session state themselves.
type stubAuth struct {
	snapshot usecase.Snapshot
	token    string
}

func (a *stubAuth) Initialize(context.Context) error { return nil }

func (a *stubAuth) Login(context.Context, entity.Role, *usecase.LoginInput) (*usecase.AuthResult, error) {
	return nil, nil
}

func (a *stubAuth) RegisterCandidate(context.Context, *usecase.RegisterCandidateInput) (*usecase.AuthResult, error) {
	return nil, nil
}

func (a *stubAuth) RegisterCompany(context.Context, *usecase.RegisterCompanyInput) (*usecase.AuthResult, error) {
	return nil, nil
}

func (a *stubAuth) Logout(context.Context) error { return nil }

func (a *stubAuth) Snapshot() usecase.Snapshot { return a.snapshot }

func (a *stubAuth) BearerToken() (string, bool) {
	return a.token, a.token != ""
}

// stubApplicationClient returns canned applications and records creates.
type stubApplicationClient struct {
	created   *entity.Application
	createErr error
	creates   int
	listed    []*entity.Application
	listErr   error
	lists     int
}

func (c *stubApplicationClient) Create(_ context.Context, _ string, jobID string) (*entity.Application, error) {
	c.creates++
	if c.createErr != nil {
		return nil, c.createErr
	}
	if c.created != nil {
		return c.created, nil
	}

	return &entity.Application{ID: "1", JobID: jobID, Status: entity.StatusPending}, nil
}

func (c *stubApplicationClient) ListMine(context.Context, string) ([]*entity.Application, error) {
	c.lists++
	if c.listErr != nil {
		return nil, c.listErr
	}

	return c.listed, nil
}
