package handlers

import (
	"errors"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/travel-planner-api/internal/catalog"
	"github.com/gdg-garage/travel-planner-api/internal/service"
)

// apiError maps service and catalog errors onto huma status errors.
func apiError(logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, service.ErrValidation), errors.Is(err, catalog.ErrInvalidAmount):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return huma.Error400BadRequest("Invalid credentials")
	case errors.Is(err, service.ErrEmailTaken):
		return huma.Error400BadRequest("Registration failed: " + err.Error())
	default:
		logger.Error("request failed", "error", err)
		return huma.Error500InternalServerError("Internal server error")
	}
}
