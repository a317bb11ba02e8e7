package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/buildsquads/squads/pkg/events"
	"github.com/buildsquads/squads/pkg/models"
)

// createSquadHandler handles POST /api/v1/squads.
func (s *Server) createSquadHandler(c *echo.Context) error {
	var req models.CreateSquadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	squad, err := s.squadService.CreateSquad(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, squad)
}

// listSquadsHandler handles GET /api/v1/squads.
func (s *Server) listSquadsHandler(c *echo.Context) error {
	filters := models.SquadFilters{
		ProjectID: c.QueryParam("project_id"),
	}

	result, err := s.squadService.ListSquads(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getSquadHandler handles GET /api/v1/squads/:id.
func (s *Server) getSquadHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	squad, err := s.squadService.GetSquad(c.Request().Context(), squadID, true)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, squad)
}

// updateSquadHandler handles PUT /api/v1/squads/:id.
func (s *Server) updateSquadHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	var req models.UpdateSquadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	squad, err := s.squadService.UpdateSquad(c.Request().Context(), squadID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, squad)
}

// deleteSquadHandler handles DELETE /api/v1/squads/:id.
func (s *Server) deleteSquadHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	// A running backend is stopped before the rows go away.
	if err := s.supervisor.Stop(c.Request().Context(), squadID); err != nil {
		return mapServiceError(err)
	}
	if err := s.squadService.DeleteSquad(c.Request().Context(), squadID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// startSquadHandler handles POST /api/v1/squads/:id/start: brings the
// squad's backend up (idempotent when already running).
func (s *Server) startSquadHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	if _, err := s.supervisor.EnsureRunning(c.Request().Context(), squadID); err != nil {
		return mapServiceError(err)
	}

	status, url, pid := s.supervisor.State(squadID)
	return c.JSON(http.StatusOK, BackendStatusResponse{
		SquadID: squadID,
		Status:  status,
		URL:     url,
		PID:     pid,
	})
}

// stopSquadHandler handles POST /api/v1/squads/:id/stop.
func (s *Server) stopSquadHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	if err := s.supervisor.Stop(c.Request().Context(), squadID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, BackendStatusResponse{SquadID: squadID, Status: "idle"})
}

// squadMessageHandler handles POST /api/v1/squads/:id/message:
// squad-to-squad mail published to the project channel. Both squads
// must exist and belong to the same project.
func (s *Server) squadMessageHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	var req models.SquadMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ToSquadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "to_squad_id is required")
	}
	if req.Body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "body is required")
	}

	from, err := s.squadService.GetSquad(c.Request().Context(), squadID, false)
	if err != nil {
		return mapServiceError(err)
	}
	to, err := s.squadService.GetSquad(c.Request().Context(), req.ToSquadID, false)
	if err != nil {
		return mapServiceError(err)
	}
	if from.ProjectID != to.ProjectID {
		return echo.NewHTTPError(http.StatusBadRequest, "squads belong to different projects")
	}

	if err := s.publisher.PublishMail(c.Request().Context(), events.MailPayload{
		ProjectID:   from.ProjectID,
		FromSquadID: from.ID,
		ToSquadID:   to.ID,
		SenderName:  req.SenderName,
		Subject:     req.Subject,
		Body:        req.Body,
	}); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, AckResponse{Message: "message published"})
}

// squadStatusHandler handles GET /api/v1/squads/:id/status.
func (s *Server) squadStatusHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	// Verify the squad exists before reporting runtime state.
	if _, err := s.squadService.GetSquad(c.Request().Context(), squadID, false); err != nil {
		return mapServiceError(err)
	}

	status, url, pid := s.supervisor.State(squadID)
	return c.JSON(http.StatusOK, BackendStatusResponse{
		SquadID: squadID,
		Status:  status,
		URL:     url,
		PID:     pid,
	})
}
