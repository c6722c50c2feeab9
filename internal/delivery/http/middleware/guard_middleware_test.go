package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portaljobs/internal/domain/entity"
	"portaljobs/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGuard struct {
	verdict usecase.Verdict
}

func (g *stubGuard) Decide(entity.Role) usecase.Verdict {
	return g.verdict
}

func invokeGuard(t *testing.T, verdict usecase.Verdict) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/candidato/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	}

	m := NewGuardMiddleware(&stubGuard{verdict: verdict})
	err := m.RequireRole(entity.RoleCandidate)(next)(c)
	require.NoError(t, err)

	return rec, nextCalled
}

func TestGuardMiddleware_CheckingAnswersRetryLater(t *testing.T) {
	rec, nextCalled := invokeGuard(t, usecase.Verdict{State: usecase.GuardChecking})

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestGuardMiddleware_RedirectsToTarget(t *testing.T) {
	rec, nextCalled := invokeGuard(t, usecase.Verdict{
		State:  usecase.GuardRedirect,
		Target: "/candidato/login",
	})

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/candidato/login", rec.Header().Get(echo.HeaderLocation))
}

func TestGuardMiddleware_AllowServesRoute(t *testing.T) {
	rec, nextCalled := invokeGuard(t, usecase.Verdict{State: usecase.GuardAllow})

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}
