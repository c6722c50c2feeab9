// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"portaljobs/internal/delivery/http/response"
	"portaljobs/internal/domain/entity"
	"portaljobs/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// Login handles the role-qualified login request.
func (h *AuthHandler) Login(c echo.Context) error {
	role, ok := entity.ParseRole(c.Param("role"))
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown login role")
	}

	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), role, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// RegisterCandidate handles the candidate registration request.
func (h *AuthHandler) RegisterCandidate(c echo.Context) error {
	input := new(usecase.RegisterCandidateInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterCandidate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Candidate registered successfully")
}

// RegisterCompany handles the company registration request.
func (h *AuthHandler) RegisterCompany(c echo.Context) error {
	input := new(usecase.RegisterCompanyInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterCompany(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Company registered successfully")
}

// Logout handles the logout request. Logging out without a session
// succeeds with an empty store.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Session exposes the read model consulted by the surrounding UI.
func (h *AuthHandler) Session(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Snapshot(), "")
}
