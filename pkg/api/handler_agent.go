package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/buildsquads/squads/pkg/models"
)

// createAgentHandler handles POST /api/v1/agents.
func (s *Server) createAgentHandler(c *echo.Context) error {
	var req models.CreateAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	agent, err := s.agentService.CreateAgent(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, agent)
}

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *echo.Context) error {
	filters := models.AgentFilters{
		SquadID: c.QueryParam("squad_id"),
		Role:    c.QueryParam("role"),
		Status:  c.QueryParam("status"),
	}

	result, err := s.agentService.ListAgents(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	agent, err := s.agentService.GetAgent(c.Request().Context(), agentID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agent)
}

// updateAgentHandler handles PUT /api/v1/agents/:id.
func (s *Server) updateAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	var req models.UpdateAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	agent, err := s.agentService.UpdateAgent(c.Request().Context(), agentID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, agent)
}

// deleteAgentHandler handles DELETE /api/v1/agents/:id. Refused with an
// agent_busy conflict while the agent has an active session.
func (s *Server) deleteAgentHandler(c *echo.Context) error {
	agentID := c.Param("id")
	if agentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent id is required")
	}

	if err := s.agentService.DeleteAgent(c.Request().Context(), agentID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// listRolesHandler handles GET /api/v1/roles.
func (s *Server) listRolesHandler(c *echo.Context) error {
	roles := s.cfg.Roles.Roles()
	out := make([]RoleResponse, 0, len(roles))
	for _, name := range roles {
		rc, err := s.cfg.Roles.Get(name)
		if err != nil {
			continue
		}
		out = append(out, RoleResponse{
			Name:        name,
			Description: rc.Description,
			Model:       rc.Model,
		})
	}
	return c.JSON(http.StatusOK, out)
}
