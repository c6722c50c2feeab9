// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portaljobs/internal/delivery/http/middleware"
	"portaljobs/internal/delivery/http/router/handler"
	"portaljobs/internal/domain/entity"
	"portaljobs/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ApplicationHandler *handler.ApplicationHandler
	PortalHandler      *handler.PortalHandler
	GuardMiddleware    *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	applicationHandler *handler.ApplicationHandler
	portalHandler      *handler.PortalHandler
	guardMiddleware    *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		applicationHandler: params.ApplicationHandler,
		portalHandler:      params.PortalHandler,
		guardMiddleware:    params.GuardMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login/:role", r.authHandler.Login)
		authGroup.POST("/register/candidate", r.authHandler.RegisterCandidate)
		authGroup.POST("/register/company", r.authHandler.RegisterCompany)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
	}

	// Application routes, candidate-only
	applicationGroup := e.Group("/applications")
	applicationGroup.Use(r.guardMiddleware.RequireRole(entity.RoleCandidate))
	{
		applicationGroup.POST("", r.applicationHandler.Apply)
		applicationGroup.GET("/my-applications", r.applicationHandler.ListMine)
	}

	// Login pages stay ungated so redirected visitors can reach them
	e.GET(usecase.LoginPath(entity.RoleCandidate), r.portalHandler.LoginPage("/auth/login/candidate"))
	e.GET(usecase.LoginPath(entity.RoleCompany), r.portalHandler.LoginPage("/auth/login/company"))
	e.GET(usecase.LoginPath(entity.RoleAdmin), r.portalHandler.LoginPage("/auth/login/admin"))

	// Role-gated dashboards
	candidateGroup := e.Group("/candidato")
	candidateGroup.Use(r.guardMiddleware.RequireRole(entity.RoleCandidate))
	{
		candidateGroup.GET("/dashboard", r.portalHandler.CandidateDashboard)
	}

	companyGroup := e.Group("/empresa")
	companyGroup.Use(r.guardMiddleware.RequireRole(entity.RoleCompany))
	{
		companyGroup.GET("/dashboard", r.portalHandler.CompanyDashboard)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.guardMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.portalHandler.AdminDashboard)
	}
}
