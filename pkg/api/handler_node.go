package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listNodesHandler handles GET /api/v1/nodes.
func (s *Server) listNodesHandler(c *echo.Context) error {
	nodes, err := s.nodeService.ListNodes(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, nodes)
}

// registerNodeHandler handles POST /api/v1/nodes: probes the submitted
// URL and persists the node only when it answers.
func (s *Server) registerNodeHandler(c *echo.Context) error {
	var req RegisterNodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.BaseURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "base_url is required")
	}

	node, err := s.registry.Register(c.Request().Context(), req.BaseURL)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, node)
}

// removeNodeHandler handles DELETE /api/v1/nodes?base_url=...
func (s *Server) removeNodeHandler(c *echo.Context) error {
	baseURL := c.QueryParam("base_url")
	if baseURL == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "base_url is required")
	}

	if err := s.nodeService.RemoveNode(c.Request().Context(), baseURL); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
