// Package events provides real-time event delivery: an in-process bus
// fans events out to WebSocket clients and internal consumers, and the
// events table backs catch-up replay after reconnects.
//
// Kinds use colon separation (message:part, session:idle). Raw backend
// kinds arrive dotted (message.part.updated) and are normalized by the
// ingest pipeline before they reach this package.
//
// Delivery is at-least-once from the client's perspective: events are
// persisted before they are published, so a client that reconnects and
// sends catchup with its last seen db_event_id sees every persisted
// event exactly once. Transient kinds (text deltas) are publish-only
// and are lost on disconnect; the final message:updated carries the
// full content.
package events

// Persistent event kinds (stored in the events table, then published).
const (
	KindSessionCreated       = "session:created"
	KindSessionStatusChanged = "session:status_changed"
	KindSessionIdle          = "session:idle"
	KindMessageUpdated       = "message:updated"
	KindMessagePart          = "message:part"

	KindCardCreated = "card:created"
	KindCardMoved   = "card:moved"
	KindCardUpdated = "card:updated"

	KindSquadOpencodeStatus = "squad:opencode_status"
	KindAgentStatusChanged  = "agent:status_changed"
	KindMCPUpdated          = "mcp:updated"
	KindMailSent            = "mail:sent"
)

// Transient event kinds (published only, never persisted).
const (
	// KindMessageTextAppend carries streamed text deltas. High-frequency
	// and ephemeral; the terminal message:updated has the full text.
	KindMessageTextAppend = "message:text_append"

	// Node registry changes. The registry table is the source of truth,
	// so these broadcast without persisting.
	KindNodeDiscovered = "node:discovered"
	KindNodeLost       = "node:lost"

	// KindSystemConnected is the first frame a WebSocket client receives.
	KindSystemConnected = "system:connected"
)

// GlobalSessionsChannel carries session-level status events for the
// session list view.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel for one session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ProjectChannel returns the channel for a project's board, squad, and
// registry events. Format: "project:{project_id}"
func ProjectChannel(projectID string) string {
	return "project:" + projectID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
