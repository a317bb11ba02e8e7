package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/buildsquads/squads/pkg/runtime"
	"github.com/buildsquads/squads/pkg/services"
)

// errorBody is the JSON error shape. Kind carries the taxonomy class so
// clients can render conflicts and preconditions distinctly.
type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest,
			errorBody{Kind: "validation", Message: validErr.Error()})
	}
	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		return echo.NewHTTPError(http.StatusConflict,
			errorBody{Kind: conflictErr.Kind, Message: conflictErr.Message})
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound,
			errorBody{Kind: "not_found", Message: "resource not found"})
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict,
			errorBody{Kind: "already_exists", Message: "resource already exists"})
	}
	if errors.Is(err, services.ErrPreconditionFailed) {
		return echo.NewHTTPError(http.StatusPreconditionFailed,
			errorBody{Kind: "precondition_failed", Message: err.Error()})
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		return echo.NewHTTPError(http.StatusConflict,
			errorBody{Kind: "stale_version", Message: err.Error()})
	}
	if errors.Is(err, services.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return echo.NewHTTPError(http.StatusRequestTimeout,
			errorBody{Kind: "timeout", Message: "backend did not respond in time"})
	}
	if errors.Is(err, services.ErrBackendUnavailable) ||
		errors.Is(err, runtime.ErrNotRunning) ||
		errors.Is(err, runtime.ErrProvisioningTimeout) {
		return echo.NewHTTPError(http.StatusServiceUnavailable,
			errorBody{Kind: "backend_unavailable", Message: err.Error()})
	}
	if errors.Is(err, runtime.ErrCatalogUnavailable) {
		return echo.NewHTTPError(http.StatusServiceUnavailable,
			errorBody{Kind: "cli_unavailable", Message: err.Error()})
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError,
		errorBody{Kind: "internal", Message: "internal server error"})
}
