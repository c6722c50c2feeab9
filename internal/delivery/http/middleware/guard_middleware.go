package middleware

import (
	"net/http"
	"strconv"

	"portaljobs/internal/domain/entity"
	"portaljobs/internal/usecase"

	"github.com/labstack/echo/v4"
)

// retryAfterSeconds is sent while the initial session restore is pending.
const retryAfterSeconds = 1

// GuardMiddleware gates role-protected navigation routes. It never serves
// protected content while the session restore is pending, and it redirects
// instead of erroring: unauthenticated visitors go to the required role's
// login, wrong-role visitors to their own dashboard.
type GuardMiddleware struct {
	guard usecase.GuardUsecase
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(guard usecase.GuardUsecase) *GuardMiddleware {
	return &GuardMiddleware{guard: guard}
}

// RequireRole is a middleware factory gating a route group to one role.
func (m *GuardMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			verdict := m.guard.Decide(required)

			switch verdict.State {
			case usecase.GuardChecking:
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))

				return c.NoContent(http.StatusServiceUnavailable)
			case usecase.GuardRedirect:
				return c.Redirect(http.StatusFound, verdict.Target)
			default:
				return next(c)
			}
		}
	}
}
