package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/pkg/models"
)

// createSessionHandler handles POST /api/v1/sessions: creates a pending
// session row. Starting it is a separate call.
func (s *Server) createSessionHandler(c *echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	session, err := s.sessionService.CreateSession(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, session)
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	filters := models.SessionFilters{
		ProjectID: c.QueryParam("project_id"),
		AgentID:   c.QueryParam("agent_id"),
		TicketKey: c.QueryParam("ticket_key"),
	}
	if v := c.QueryParam("status"); v != "" {
		if err := agentsession.StatusValidator(agentsession.Status(v)); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status: "+v)
		}
		filters.Status = v
	}
	if v := c.QueryParam("active"); v == "true" {
		filters.ActiveOnly = true
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Offset = n
		}
	}

	result, err := s.sessionService.ListSessions(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	session, err := s.sessionService.GetSession(c.Request().Context(), sessionID, false)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, session)
}

// transcriptHandler handles GET /api/v1/sessions/:id/transcript.
func (s *Server) transcriptHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	limit, offset := 100, 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	page, err := s.transcripts.GetTranscript(c.Request().Context(), sessionID, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// startSessionHandler handles POST /api/v1/sessions/:id/start: brings
// the backend up, creates the backend session, and binds it.
func (s *Server) startSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	session, err := s.orch.StartSession(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, session)
}

// promptHandler handles POST /api/v1/sessions/:id/prompt. A prompt
// while a turn is unanswered is refused with a turn_in_progress
// conflict.
func (s *Server) promptHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.PromptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.orch.Prompt(c.Request().Context(), sessionID, req); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, AckResponse{SessionID: sessionID, Message: "prompt accepted"})
}

// commandHandler handles POST /api/v1/sessions/:id/command. "/new"
// rotates to a fresh session, returned in the response.
func (s *Server) commandHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.CommandRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	replacement, err := s.orch.Command(c.Request().Context(), sessionID, req)
	if err != nil {
		return mapServiceError(err)
	}
	if replacement != nil {
		return c.JSON(http.StatusOK, replacement)
	}
	return c.JSON(http.StatusAccepted, AckResponse{SessionID: sessionID, Message: "command accepted"})
}

// shellHandler handles POST /api/v1/sessions/:id/shell.
func (s *Server) shellHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.ShellRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.orch.Shell(c.Request().Context(), sessionID, req); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusAccepted, AckResponse{SessionID: sessionID, Message: "shell command accepted"})
}

// abortHandler handles POST /api/v1/sessions/:id/abort. With nothing in
// flight the call returns an already_idle conflict.
func (s *Server) abortHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if err := s.orch.Abort(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, AckResponse{SessionID: sessionID, Message: "turn aborted"})
}

// pauseHandler handles POST /api/v1/sessions/:id/pause.
func (s *Server) pauseHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if err := s.orch.Pause(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, AckResponse{SessionID: sessionID, Message: "session paused"})
}

// unpauseHandler handles POST /api/v1/sessions/:id/unpause.
func (s *Server) unpauseHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if err := s.orch.Unpause(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, AckResponse{SessionID: sessionID, Message: "session resumed"})
}

// cancelSessionHandler handles POST /api/v1/sessions/:id/cancel:
// best-effort backend abort, then the session goes terminal.
func (s *Server) cancelSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if err := s.orch.Cancel(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, AckResponse{SessionID: sessionID, Message: "session cancelled"})
}

// archiveSessionHandler handles POST /api/v1/sessions/:id/archive.
// Only terminal sessions can be archived.
func (s *Server) archiveSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if err := s.sessionService.ArchiveSession(c.Request().Context(), sessionID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, AckResponse{SessionID: sessionID, Message: "session archived"})
}
