package api

import (
	"github.com/buildsquads/squads/pkg/database"
)

// AckResponse acknowledges an accepted operation.
type AckResponse struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message"`
}

// BackendStatusResponse reports a squad backend's runtime state.
type BackendStatusResponse struct {
	SquadID string `json:"squad_id"`
	Status  string `json:"status"`
	URL     string `json:"url,omitempty"`
	PID     int    `json:"pid,omitempty"`
}

// RoleResponse describes one configured agent role.
type RoleResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Model       string `json:"model,omitempty"`
}

// ValidationResponse reports an MCP server connectivity check.
type ValidationResponse struct {
	ServerID string `json:"server_id"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

// CLIStatusResponse reports docker mcp CLI availability.
type CLIStatusResponse struct {
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status        string                 `json:"status"`
	Version       string                 `json:"version"`
	Database      *database.HealthStatus `json:"database"`
	Configuration ConfigurationStats     `json:"configuration"`
	WSConnections int                    `json:"ws_connections"`
	Error         string                 `json:"error,omitempty"`
}

// ConfigurationStats contains counts of loaded configuration items.
type ConfigurationStats struct {
	Roles  int `json:"roles"`
	Levels int `json:"levels"`
}
