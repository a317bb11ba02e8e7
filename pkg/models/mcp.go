package models

import (
	"github.com/buildsquads/squads/ent"
)

// AddMCPServerRequest contains fields for attaching an MCP server to a squad
type AddMCPServerRequest struct {
	SquadID    string            `json:"squad_id"`
	Name       string            `json:"name"`
	Source     string            `json:"source"`      // builtin | registry | custom
	ServerType string            `json:"server_type"` // remote | container
	Image      string            `json:"image,omitempty"`
	URL        string            `json:"url,omitempty"`
	Command    string            `json:"command,omitempty"`
	Args       []string          `json:"args,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Enabled    bool              `json:"enabled"`
}

// UpdateMCPServerRequest contains the mutable MCP server fields
type UpdateMCPServerRequest struct {
	URL     *string           `json:"url,omitempty"`
	Image   *string           `json:"image,omitempty"`
	Command *string           `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Enabled *bool             `json:"enabled,omitempty"`
}

// MCPServerListResponse lists a squad's MCP servers
type MCPServerListResponse struct {
	Servers []*ent.MCPServer `json:"servers"`
}

// CatalogEntry is one server from the docker mcp catalog
type CatalogEntry struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Image       string         `json:"image,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
}
