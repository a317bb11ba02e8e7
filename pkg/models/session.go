package models

import (
	"time"

	"github.com/buildsquads/squads/ent"
)

// CreateSessionRequest contains fields for starting a new agent session
type CreateSessionRequest struct {
	ProjectID    string         `json:"project_id"`
	AgentID      string         `json:"agent_id"`
	Title        string         `json:"title,omitempty"`
	Mode         string         `json:"mode,omitempty"`
	TicketKey    string         `json:"ticket_key,omitempty"`
	WorktreePath string         `json:"worktree_path,omitempty"`
	Branch       string         `json:"branch,omitempty"`
	BaseBranch   string         `json:"base_branch,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// SessionFilters contains filtering options for listing sessions
type SessionFilters struct {
	ProjectID     string     `json:"project_id,omitempty"`
	AgentID       string     `json:"agent_id,omitempty"`
	Status        string     `json:"status,omitempty"`
	Mode          string     `json:"mode,omitempty"`
	TicketKey     string     `json:"ticket_key,omitempty"`
	StartedAfter  *time.Time `json:"started_after,omitempty"`
	StartedBefore *time.Time `json:"started_before,omitempty"`
	ActiveOnly    bool       `json:"active_only,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// SessionListResponse contains a paginated session list
type SessionListResponse struct {
	Sessions   []*ent.AgentSession `json:"sessions"`
	TotalCount int                 `json:"total_count"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// PromptRequest is a user or board turn submitted to a session
type PromptRequest struct {
	Text  string `json:"text"`
	Mode  string `json:"mode,omitempty"`
	Model string `json:"model,omitempty"`
}

// CommandRequest is a slash command forwarded to the backend
type CommandRequest struct {
	Command   string `json:"command"`
	Arguments string `json:"arguments,omitempty"`
}

// ShellRequest is a shell invocation forwarded to the backend
type ShellRequest struct {
	Command string `json:"command"`
}

// TranscriptPage is one page of transcript entries ordered by seq
type TranscriptPage struct {
	Entries    []*ent.TranscriptEntry `json:"entries"`
	TotalCount int                    `json:"total_count"`
	Limit      int                    `json:"limit"`
	Offset     int                    `json:"offset"`
}
