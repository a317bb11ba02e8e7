package models

import (
	"github.com/buildsquads/squads/ent"
)

// CreateSquadRequest contains fields for creating a squad within a project
type CreateSquadRequest struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
}

// UpdateSquadRequest contains the mutable squad fields
type UpdateSquadRequest struct {
	Name *string `json:"name,omitempty"`
}

// SquadMessageRequest contains fields for a squad-to-squad message
type SquadMessageRequest struct {
	ToSquadID  string `json:"to_squad_id"`
	Subject    string `json:"subject,omitempty"`
	Body       string `json:"body"`
	SenderName string `json:"sender_name,omitempty"`
}

// SquadFilters contains filtering options for listing squads
type SquadFilters struct {
	ProjectID string `json:"project_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// SquadListResponse contains a paginated squad list
type SquadListResponse struct {
	Squads     []*ent.Squad `json:"squads"`
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

// SquadBackendState is the runtime view of a squad's opencode backend,
// reported by the runtime supervisor alongside the persisted row.
type SquadBackendState struct {
	SquadID   string `json:"squad_id"`
	Status    string `json:"status"`
	URL       string `json:"url,omitempty"`
	PID       int    `json:"pid,omitempty"`
	LastError string `json:"last_error,omitempty"`
}
