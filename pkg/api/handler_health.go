package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/buildsquads/squads/pkg/database"
	"github.com/buildsquads/squads/pkg/events"
	"github.com/buildsquads/squads/pkg/version"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	resp := HealthResponse{
		Status:   "healthy",
		Version:  version.Full(),
		Database: dbHealth,
		Configuration: ConfigurationStats{
			Roles:  s.cfg.Stats().Roles,
			Levels: s.cfg.Stats().Levels,
		},
	}
	if s.connManager != nil {
		resp.WSConnections = s.connManager.ActiveConnections()
	}
	if err != nil {
		resp.Status = "unhealthy"
		resp.Error = err.Error()
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// mailHandler handles POST /api/v1/mail: agent-to-agent mail published
// to the project channel. Delivery is event fan-out only; nothing is
// written into any session transcript.
func (s *Server) mailHandler(c *echo.Context) error {
	var req MailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ProjectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project_id is required")
	}
	if req.Body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "body is required")
	}

	// Both endpoints must exist.
	if _, err := s.agentService.GetAgent(c.Request().Context(), req.FromAgentID); err != nil {
		return mapServiceError(err)
	}
	if _, err := s.agentService.GetAgent(c.Request().Context(), req.ToAgentID); err != nil {
		return mapServiceError(err)
	}

	if err := s.publisher.PublishMail(c.Request().Context(), events.MailPayload{
		ProjectID:   req.ProjectID,
		FromAgentID: req.FromAgentID,
		ToAgentID:   req.ToAgentID,
		Subject:     req.Subject,
		Body:        req.Body,
	}); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, AckResponse{Message: "mail published"})
}
