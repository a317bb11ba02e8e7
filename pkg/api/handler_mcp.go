package api

import (
	"fmt"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/pkg/models"
	"github.com/buildsquads/squads/pkg/runtime"
	"github.com/buildsquads/squads/pkg/services"
)

// addMCPServerHandler handles POST /api/v1/squads/:id/mcp-servers.
// Registry-sourced servers resolve their image from the docker mcp
// catalog; if the CLI is missing the request fails with cli_unavailable
// rather than silently persisting a broken entry.
func (s *Server) addMCPServerHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	var req models.AddMCPServerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.SquadID = squadID

	if req.Source == "registry" && req.Image == "" {
		entry, err := s.catalog.Lookup(c.Request().Context(), req.Name)
		if err != nil {
			return mapServiceError(err)
		}
		req.Image = entry.Image
		if req.ServerType == "" {
			req.ServerType = "container"
		}
	}

	server, err := s.mcpService.AddServer(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	if err := s.supervisor.ReconcileMCP(c.Request().Context(), squadID); err != nil {
		// Server row exists; reconciliation outcome is published per server.
		return c.JSON(http.StatusCreated, server)
	}
	return c.JSON(http.StatusCreated, server)
}

// listMCPServersHandler handles GET /api/v1/squads/:id/mcp-servers.
func (s *Server) listMCPServersHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	result, err := s.mcpService.ListServers(c.Request().Context(), squadID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// updateMCPServerHandler handles PUT /api/v1/mcp-servers/:id. Enabling
// is gated: container servers need a live docker mcp toolchain, and the
// server must pass a connectivity check, before the row flips. A failed
// gate leaves the row unchanged.
func (s *Server) updateMCPServerHandler(c *echo.Context) error {
	serverID := c.Param("id")
	if serverID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "server id is required")
	}

	var req models.UpdateMCPServerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Enabled != nil && *req.Enabled {
		current, err := s.mcpService.GetServer(c.Request().Context(), serverID)
		if err != nil {
			return mapServiceError(err)
		}
		if current.ServerType == mcpserver.ServerTypeContainer {
			if err := s.catalog.CLIStatus(c.Request().Context()); err != nil {
				return mapServiceError(err)
			}
		}
		if err := runtime.ValidateMCPServer(c.Request().Context(), s.cfg.System.DockerMCPBin, current); err != nil {
			return mapServiceError(fmt.Errorf("%w: %v", services.ErrBackendUnavailable, err))
		}
	}

	server, err := s.mcpService.UpdateServer(c.Request().Context(), serverID, req)
	if err != nil {
		return mapServiceError(err)
	}

	if err := s.supervisor.ReconcileMCP(c.Request().Context(), server.SquadID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, server)
}

// removeMCPServerHandler handles DELETE /api/v1/mcp-servers/:id.
func (s *Server) removeMCPServerHandler(c *echo.Context) error {
	serverID := c.Param("id")
	if serverID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "server id is required")
	}

	server, err := s.mcpService.GetServer(c.Request().Context(), serverID)
	if err != nil {
		return mapServiceError(err)
	}
	if err := s.mcpService.RemoveServer(c.Request().Context(), serverID); err != nil {
		return mapServiceError(err)
	}

	if err := s.supervisor.ReconcileMCP(c.Request().Context(), server.SquadID); err != nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.NoContent(http.StatusNoContent)
}

// validateMCPServerHandler handles POST /api/v1/mcp-servers/:id/validate:
// opens a real MCP session against the server spec and reports the result.
func (s *Server) validateMCPServerHandler(c *echo.Context) error {
	serverID := c.Param("id")
	if serverID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "server id is required")
	}

	server, err := s.mcpService.GetServer(c.Request().Context(), serverID)
	if err != nil {
		return mapServiceError(err)
	}

	if err := runtime.ValidateMCPServer(c.Request().Context(), s.cfg.System.DockerMCPBin, server); err != nil {
		return c.JSON(http.StatusOK, ValidationResponse{
			ServerID: serverID,
			Valid:    false,
			Error:    err.Error(),
		})
	}
	return c.JSON(http.StatusOK, ValidationResponse{ServerID: serverID, Valid: true})
}

// catalogHandler handles GET /api/v1/mcp/catalog. Supports query,
// category and tag filters.
func (s *Server) catalogHandler(c *echo.Context) error {
	entries, err := s.catalog.Entries(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	entries = filterCatalog(entries,
		c.QueryParam("query"), c.QueryParam("category"), c.QueryParam("tag"))
	return c.JSON(http.StatusOK, entries)
}

func filterCatalog(entries []models.CatalogEntry, query, category, tag string) []models.CatalogEntry {
	if query == "" && category == "" && tag == "" {
		return entries
	}
	query = strings.ToLower(query)
	out := make([]models.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Name), query) &&
			!strings.Contains(strings.ToLower(e.Description), query) {
			continue
		}
		if category != "" && !metaMatches(e.Meta, "category", category) {
			continue
		}
		if tag != "" && !metaMatches(e.Meta, "tags", tag) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// metaMatches checks a catalog meta field that may be a string or a
// list of strings.
func metaMatches(meta map[string]any, key, want string) bool {
	switch v := meta[key].(type) {
	case string:
		return strings.EqualFold(v, want)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && strings.EqualFold(s, want) {
				return true
			}
		}
	}
	return false
}

// cliStatusHandler handles GET /api/v1/mcp/cli-status: reports whether
// the docker mcp toolchain answers on this host.
func (s *Server) cliStatusHandler(c *echo.Context) error {
	if err := s.catalog.CLIStatus(c.Request().Context()); err != nil {
		return c.JSON(http.StatusOK, CLIStatusResponse{Available: false, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, CLIStatusResponse{Available: true})
}
