package usecase

import "portaljobs/internal/domain/entity"

// GuardState is the outcome of a navigation gating decision.
type GuardState int

const (
	// GuardChecking means the initial session restore has not resolved;
	// nothing may be rendered or redirected yet.
	GuardChecking GuardState = iota
	// GuardRedirect means the caller must be sent to Verdict.Target.
	GuardRedirect
	// GuardAllow means the protected content may be served.
	GuardAllow
)

// Verdict carries the guard decision and, for redirects, the target route.
type Verdict struct {
	State  GuardState
	Target string
}

// GuardUsecase gates role-protected navigation. Unauthenticated visitors
// are sent to the required role's login route; authenticated visitors of
// another role are silently rerouted to their own dashboard, never shown
// an error.
type GuardUsecase interface {
	Decide(required entity.Role) Verdict
}

// Navigation routes per role. The guard redirects here and the router
// mounts the matching page handlers.
var (
	loginPaths = map[entity.Role]string{
		entity.RoleCandidate: "/candidato/login",
		entity.RoleCompany:   "/empresa/login",
		entity.RoleAdmin:     "/admin/login",
	}

	dashboardPaths = map[entity.Role]string{
		entity.RoleCandidate: "/candidato/dashboard",
		entity.RoleCompany:   "/empresa/dashboard",
		entity.RoleAdmin:     "/admin/dashboard",
	}
)

// LoginPath returns the login route for a role. Unknown roles land on the
// company login, mirroring the portal's default entry point.
func LoginPath(role entity.Role) string {
	if path, ok := loginPaths[role]; ok {
		return path
	}

	return loginPaths[entity.RoleCompany]
}

// DashboardPath returns the home dashboard route for a role.
func DashboardPath(role entity.Role) string {
	if path, ok := dashboardPaths[role]; ok {
		return path
	}

	return dashboardPaths[entity.RoleCompany]
}
