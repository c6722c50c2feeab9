package handler

import (
	"log/slog"
	"net/http"

	"portaljobs/internal/delivery/http/response"
	"portaljobs/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PortalHandler serves the role-gated navigation routes the guard
// middleware protects, plus the ungated login targets it redirects to.
type PortalHandler struct {
	auth         usecase.AuthUsecase
	applications usecase.ApplicationUsecase
	logger       *slog.Logger
}

// NewPortalHandler is the constructor for PortalHandler, injected by Fx.
func NewPortalHandler(
	auth usecase.AuthUsecase,
	applications usecase.ApplicationUsecase,
	logger *slog.Logger,
) *PortalHandler {
	return &PortalHandler{auth: auth, applications: applications, logger: logger}
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CandidateDashboard serves the candidate's home: the cached profile plus
// a fresh view of their applications.
func (h *PortalHandler) CandidateDashboard(c echo.Context) error {
	applications, err := h.applications.ListMine(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	snapshot := h.auth.Snapshot()

	return response.Success(c, http.StatusOK, map[string]any{
		"user":         snapshot.User,
		"applications": applications,
	}, "")
}

// CompanyDashboard serves the company's home from the cached profile.
func (h *PortalHandler) CompanyDashboard(c echo.Context) error {
	snapshot := h.auth.Snapshot()

	return response.Success(c, http.StatusOK, map[string]any{
		"user": snapshot.User,
	}, "")
}

// AdminDashboard serves the administrator's home from the cached profile.
func (h *PortalHandler) AdminDashboard(c echo.Context) error {
	snapshot := h.auth.Snapshot()

	return response.Success(c, http.StatusOK, map[string]any{
		"user": snapshot.User,
	}, "")
}

// LoginPage is the ungated target the guard redirects unauthenticated
// visitors to. The actual form lives in the frontend; the gateway only
// confirms the route and names the API endpoint behind it.
func (h *PortalHandler) LoginPage(loginEndpoint string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return response.Success(c, http.StatusOK, map[string]string{
			"login_endpoint": loginEndpoint,
		}, "Login required")
	}
}
