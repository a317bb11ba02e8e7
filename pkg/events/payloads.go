package events

import "time"

// Every published payload carries a "type" field holding the event kind
// and a millisecond timestamp, so WebSocket clients can route without
// out-of-band framing. The publisher fills both.

// BaseEvent holds the fields common to all published payloads.
type BaseEvent struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp_ms"`
}

func newBaseEvent(kind string) BaseEvent {
	return BaseEvent{Type: kind, Timestamp: time.Now().UnixMilli()}
}

// SessionStatusPayload reports a session status transition.
type SessionStatusPayload struct {
	BaseEvent
	SessionID string `json:"session_id"`
	ProjectID string `json:"project_id"`
	AgentID   string `json:"agent_id,omitempty"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// SessionIdlePayload reports the backend going idle for a session,
// completing any in-flight turn.
type SessionIdlePayload struct {
	BaseEvent
	SessionID string `json:"session_id"`
	ProjectID string `json:"project_id"`
}

// MessageUpdatedPayload carries a full normalized message snapshot.
type MessageUpdatedPayload struct {
	BaseEvent
	SessionID string         `json:"session_id"`
	ProjectID string         `json:"project_id"`
	EntryID   string         `json:"entry_id"`
	Seq       int            `json:"seq"`
	Role      string         `json:"role"`
	MessageID string         `json:"message_id,omitempty"`
	Message   map[string]any `json:"message"`
}

// MessagePartPayload carries one upserted part of a message.
type MessagePartPayload struct {
	BaseEvent
	SessionID string         `json:"session_id"`
	ProjectID string         `json:"project_id"`
	MessageID string         `json:"message_id"`
	PartID    string         `json:"part_id,omitempty"`
	PartType  string         `json:"part_type"`
	Part      map[string]any `json:"part"`
}

// TextAppendPayload carries a streamed text delta. Transient.
type TextAppendPayload struct {
	BaseEvent
	SessionID string `json:"session_id"`
	ProjectID string `json:"project_id"`
	MessageID string `json:"message_id,omitempty"`
	PartID    string `json:"part_id,omitempty"`
	Text      string `json:"text"`
}

// CardPayload reports card creation, movement, or mutation.
type CardPayload struct {
	BaseEvent
	ProjectID string `json:"project_id"`
	SquadID   string `json:"squad_id"`
	CardID    string `json:"card_id"`
	Lane      string `json:"lane"`
	FromLane  string `json:"from_lane,omitempty"`
	Position  int    `json:"position"`
	Version   int    `json:"version"`
	Actor     string `json:"actor,omitempty"` // "user" or "board"
}

// SquadBackendPayload reports a squad backend status transition.
type SquadBackendPayload struct {
	BaseEvent
	ProjectID string `json:"project_id"`
	SquadID   string `json:"squad_id"`
	Status    string `json:"status"`
	URL       string `json:"url,omitempty"`
	Error     string `json:"error,omitempty"`
}

// AgentUpdatedPayload reports an agent status or profile change.
type AgentUpdatedPayload struct {
	BaseEvent
	ProjectID string `json:"project_id"`
	SquadID   string `json:"squad_id"`
	AgentID   string `json:"agent_id"`
	Status    string `json:"status"`
}

// MCPServerPayload reports an MCP server reconciliation outcome.
type MCPServerPayload struct {
	BaseEvent
	ProjectID string `json:"project_id"`
	SquadID   string `json:"squad_id"`
	ServerID  string `json:"server_id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// NodePayload reports an external node registry change.
type NodePayload struct {
	BaseEvent
	BaseURL string `json:"base_url"`
	Healthy bool   `json:"healthy"`
	Version string `json:"version,omitempty"`
}

// MailPayload carries a mail message between agents or squads. Mail
// handlers publish only; no session writes happen on the delivery
// path. Agent mail fills the agent IDs, squad messages fill the squad
// IDs; the two addressing modes never mix in one message.
type MailPayload struct {
	BaseEvent
	ProjectID   string `json:"project_id"`
	FromAgentID string `json:"from_agent_id,omitempty"`
	ToAgentID   string `json:"to_agent_id,omitempty"`
	FromSquadID string `json:"from_squad_id,omitempty"`
	ToSquadID   string `json:"to_squad_id,omitempty"`
	SenderName  string `json:"sender_name,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Body        string `json:"body"`
}
