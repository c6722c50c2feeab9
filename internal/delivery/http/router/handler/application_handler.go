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

// ApplicationHandler holds dependencies for application-related handlers.
type ApplicationHandler struct {
	uc     usecase.ApplicationUsecase
	logger *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler, injected by Fx.
func NewApplicationHandler(uc usecase.ApplicationUsecase, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, logger: logger}
}

// ApplyInput is the request body for submitting an application.
type ApplyInput struct {
	JobID string `json:"job_id" validate:"required"`
}

// Apply handles a candidate's submission to a job posting.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	input := new(ApplyInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	created, err := h.uc.Apply(c.Request().Context(), input.JobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Application submitted successfully")
}

// ListMine returns the current candidate's applications, refreshed from
// the backend. An optional status query parameter narrows the result via
// the local filter; the filter itself never refetches.
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	applications, err := h.uc.ListMine(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if raw := c.QueryParam("status"); raw != "" {
		status, ok := entity.ParseApplicationStatus(raw)
		if !ok {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown application status")
		}
		applications = h.uc.FilterByStatus(status)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"applications": applications,
		"total":        len(applications),
	}, "")
}
