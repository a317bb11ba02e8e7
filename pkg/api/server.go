// Package api exposes the orchestrator over HTTP: REST resources for
// projects, squads, agents, sessions, cards, MCP servers, and external
// nodes, plus the WebSocket event stream.
package api

import (
	"context"

	echo "github.com/labstack/echo/v5"

	"github.com/buildsquads/squads/pkg/board"
	"github.com/buildsquads/squads/pkg/config"
	"github.com/buildsquads/squads/pkg/database"
	"github.com/buildsquads/squads/pkg/events"
	"github.com/buildsquads/squads/pkg/nodes"
	"github.com/buildsquads/squads/pkg/orchestrator"
	"github.com/buildsquads/squads/pkg/runtime"
	"github.com/buildsquads/squads/pkg/services"
)

// Server wires the service layer to the HTTP surface.
type Server struct {
	echo *echo.Echo

	cfg *config.Config
	db  *database.Client

	projectService *services.ProjectService
	squadService   *services.SquadService
	agentService   *services.AgentService
	sessionService *services.SessionService
	transcripts    *services.TranscriptService
	cardService    *services.CardService
	mcpService     *services.MCPService
	nodeService    *services.NodeService

	supervisor *runtime.Supervisor
	catalog    *runtime.Catalog
	orch       *orchestrator.Orchestrator
	engine     *board.Engine
	registry   *nodes.Registry

	publisher   *events.Publisher
	connManager *events.ConnectionManager
}

// Deps collects the server's collaborators; every field is required
// except ConnManager and Registry.
type Deps struct {
	Config      *config.Config
	DB          *database.Client
	Projects    *services.ProjectService
	Squads      *services.SquadService
	Agents      *services.AgentService
	Sessions    *services.SessionService
	Transcripts *services.TranscriptService
	Cards       *services.CardService
	MCP         *services.MCPService
	Nodes       *services.NodeService
	Supervisor  *runtime.Supervisor
	Catalog     *runtime.Catalog
	Orch        *orchestrator.Orchestrator
	Engine      *board.Engine
	Registry    *nodes.Registry
	Publisher   *events.Publisher
	ConnManager *events.ConnectionManager
}

// NewServer creates the API server and registers all routes.
func NewServer(deps Deps) *Server {
	s := &Server{
		echo:           echo.New(),
		cfg:            deps.Config,
		db:             deps.DB,
		projectService: deps.Projects,
		squadService:   deps.Squads,
		agentService:   deps.Agents,
		sessionService: deps.Sessions,
		transcripts:    deps.Transcripts,
		cardService:    deps.Cards,
		mcpService:     deps.MCP,
		nodeService:    deps.Nodes,
		supervisor:     deps.Supervisor,
		catalog:        deps.Catalog,
		orch:           deps.Orch,
		engine:         deps.Engine,
		registry:       deps.Registry,
		publisher:      deps.Publisher,
		connManager:    deps.ConnManager,
	}
	s.routes()
	return s
}

// hardeningHeaders are stamped on every response.
var hardeningHeaders = map[string]string{
	"X-Frame-Options":        "DENY",
	"X-Content-Type-Options": "nosniff",
	"Referrer-Policy":        "strict-origin-when-cross-origin",
	"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
}

func (s *Server) secureHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		h := c.Response().Header()
		for name, value := range hardeningHeaders {
			h.Set(name, value)
		}
		return next(c)
	}
}

func (s *Server) routes() {
	e := s.echo
	e.Use(s.secureHeaders)

	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")

	v1.POST("/projects", s.createProjectHandler)
	v1.POST("/projects/browse", s.browseDirectoriesHandler)
	v1.GET("/projects", s.listProjectsHandler)
	v1.GET("/projects/:id", s.getProjectHandler)
	v1.PUT("/projects/:id", s.updateProjectHandler)
	v1.DELETE("/projects/:id", s.deleteProjectHandler)

	v1.POST("/squads", s.createSquadHandler)
	v1.GET("/squads", s.listSquadsHandler)
	v1.GET("/squads/:id", s.getSquadHandler)
	v1.PUT("/squads/:id", s.updateSquadHandler)
	v1.DELETE("/squads/:id", s.deleteSquadHandler)
	v1.POST("/squads/:id/start", s.startSquadHandler)
	v1.POST("/squads/:id/stop", s.stopSquadHandler)
	v1.GET("/squads/:id/status", s.squadStatusHandler)
	v1.POST("/squads/:id/message", s.squadMessageHandler)

	v1.POST("/agents", s.createAgentHandler)
	v1.GET("/agents", s.listAgentsHandler)
	v1.GET("/agents/:id", s.getAgentHandler)
	v1.PUT("/agents/:id", s.updateAgentHandler)
	v1.DELETE("/agents/:id", s.deleteAgentHandler)
	v1.GET("/roles", s.listRolesHandler)

	v1.POST("/sessions", s.createSessionHandler)
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.GET("/sessions/:id/transcript", s.transcriptHandler)
	v1.POST("/sessions/:id/start", s.startSessionHandler)
	v1.POST("/sessions/:id/prompt", s.promptHandler)
	v1.POST("/sessions/:id/command", s.commandHandler)
	v1.POST("/sessions/:id/shell", s.shellHandler)
	v1.POST("/sessions/:id/abort", s.abortHandler)
	v1.POST("/sessions/:id/pause", s.pauseHandler)
	v1.POST("/sessions/:id/unpause", s.unpauseHandler)
	v1.POST("/sessions/:id/cancel", s.cancelSessionHandler)
	v1.POST("/sessions/:id/archive", s.archiveSessionHandler)

	v1.POST("/cards", s.createCardHandler)
	v1.GET("/cards", s.listCardsHandler)
	v1.GET("/cards/:id", s.getCardHandler)
	v1.PUT("/cards/:id", s.updateCardHandler)
	v1.DELETE("/cards/:id", s.deleteCardHandler)
	v1.POST("/cards/:id/move", s.moveCardHandler)
	v1.POST("/cards/:id/review", s.humanReviewHandler)
	v1.GET("/squads/:id/board", s.boardHandler)
	v1.GET("/squads/:id/lanes", s.laneAssignmentsHandler)
	v1.PUT("/squads/:id/lanes", s.assignLaneHandler)

	v1.POST("/squads/:id/mcp-servers", s.addMCPServerHandler)
	v1.GET("/squads/:id/mcp-servers", s.listMCPServersHandler)
	v1.PUT("/mcp-servers/:id", s.updateMCPServerHandler)
	v1.DELETE("/mcp-servers/:id", s.removeMCPServerHandler)
	v1.POST("/mcp-servers/:id/validate", s.validateMCPServerHandler)
	v1.GET("/mcp/catalog", s.catalogHandler)
	v1.GET("/mcp/cli-status", s.cliStatusHandler)

	v1.GET("/nodes", s.listNodesHandler)
	v1.POST("/nodes", s.registerNodeHandler)
	v1.DELETE("/nodes", s.removeNodeHandler)

	v1.POST("/mail", s.mailHandler)

	v1.GET("/ws", s.wsHandler)
}

// Start begins serving on addr. Blocks until the listener fails or the
// server shuts down.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
