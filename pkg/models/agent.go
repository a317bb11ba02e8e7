package models

import (
	"github.com/buildsquads/squads/ent"
)

// CreateAgentRequest contains fields for hiring an agent into a squad.
// Name and Slug are optional; the service generates them when empty.
type CreateAgentRequest struct {
	SquadID           string `json:"squad_id"`
	Name              string `json:"name,omitempty"`
	Slug              string `json:"slug,omitempty"`
	Role              string `json:"role"`
	Level             string `json:"level"`
	Model             string `json:"model,omitempty"`
	SystemInstruction string `json:"system_instruction,omitempty"`
	MentorID          string `json:"mentor_id,omitempty"`
}

// UpdateAgentRequest contains the mutable agent fields
type UpdateAgentRequest struct {
	Name              *string `json:"name,omitempty"`
	Role              *string `json:"role,omitempty"`
	Level             *string `json:"level,omitempty"`
	Model             *string `json:"model,omitempty"`
	SystemInstruction *string `json:"system_instruction,omitempty"`
	MentorID          *string `json:"mentor_id,omitempty"`
	Status            *string `json:"status,omitempty"`
}

// AgentFilters contains filtering options for listing agents
type AgentFilters struct {
	SquadID string `json:"squad_id,omitempty"`
	Role    string `json:"role,omitempty"`
	Level   string `json:"level,omitempty"`
	Status  string `json:"status,omitempty"`
	Limit   int    `json:"limit,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

// AgentListResponse contains a paginated agent list
type AgentListResponse struct {
	Agents     []*ent.Agent `json:"agents"`
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}
