package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/buildsquads/squads/pkg/services"
)

// NodesChannel carries external node registry events. Node events are
// transient: the registry table is the source of truth, so nothing is
// persisted per change.
const NodesChannel = "nodes"

// Publisher persists events and fans them out on the bus. Persistence
// happens first so a crash between the two steps loses the live
// delivery but never the record; clients recover it via catchup.
type Publisher struct {
	events *services.EventService
	bus    *Bus
}

// NewPublisher creates a new Publisher.
func NewPublisher(events *services.EventService, bus *Bus) *Publisher {
	return &Publisher{events: events, bus: bus}
}

// --- Typed public methods ---

// PublishSessionStatus persists a session status event to the session
// channel and broadcasts a transient copy to the global sessions channel.
func (p *Publisher) PublishSessionStatus(ctx context.Context, payload SessionStatusPayload) error {
	payload.BaseEvent = newBaseEvent(KindSessionStatusChanged)

	var firstErr error
	if err := p.persistAndPublish(ctx, KindSessionStatusChanged, SessionChannel(payload.SessionID),
		payload.ProjectID, payload.SessionID, payload.AgentID, payload); err != nil {
		slog.Warn("Failed to publish session status to session channel",
			"session_id", payload.SessionID, "status", payload.Status, "error", err)
		firstErr = err
	}
	if err := p.publishOnly(GlobalSessionsChannel, payload); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// PublishSessionIdle persists and broadcasts a session idle event.
func (p *Publisher) PublishSessionIdle(ctx context.Context, payload SessionIdlePayload) error {
	payload.BaseEvent = newBaseEvent(KindSessionIdle)
	return p.persistAndPublish(ctx, KindSessionIdle, SessionChannel(payload.SessionID),
		payload.ProjectID, payload.SessionID, "", payload)
}

// PublishMessageUpdated persists and broadcasts a full message snapshot.
func (p *Publisher) PublishMessageUpdated(ctx context.Context, payload MessageUpdatedPayload) error {
	payload.BaseEvent = newBaseEvent(KindMessageUpdated)
	return p.persistAndPublish(ctx, KindMessageUpdated, SessionChannel(payload.SessionID),
		payload.ProjectID, payload.SessionID, "", payload)
}

// PublishMessagePart persists and broadcasts an upserted message part.
func (p *Publisher) PublishMessagePart(ctx context.Context, payload MessagePartPayload) error {
	payload.BaseEvent = newBaseEvent(KindMessagePart)
	return p.persistAndPublish(ctx, KindMessagePart, SessionChannel(payload.SessionID),
		payload.ProjectID, payload.SessionID, "", payload)
}

// PublishTextAppend broadcasts a streamed text delta. Transient; the
// terminal message:updated carries the full text.
func (p *Publisher) PublishTextAppend(ctx context.Context, payload TextAppendPayload) error {
	payload.BaseEvent = newBaseEvent(KindMessageTextAppend)
	return p.publishOnly(SessionChannel(payload.SessionID), payload)
}

// PublishCard persists and broadcasts a card event of the given kind
// (card:created, card:moved, card:updated) on the project channel.
func (p *Publisher) PublishCard(ctx context.Context, kind string, payload CardPayload) error {
	payload.BaseEvent = newBaseEvent(kind)
	return p.persistAndPublish(ctx, kind, ProjectChannel(payload.ProjectID),
		payload.ProjectID, "", "", payload)
}

// PublishSquadBackend persists and broadcasts a backend status change.
func (p *Publisher) PublishSquadBackend(ctx context.Context, payload SquadBackendPayload) error {
	payload.BaseEvent = newBaseEvent(KindSquadOpencodeStatus)
	return p.persistAndPublish(ctx, KindSquadOpencodeStatus, ProjectChannel(payload.ProjectID),
		payload.ProjectID, "", "", payload)
}

// PublishAgentUpdated persists and broadcasts an agent change.
func (p *Publisher) PublishAgentUpdated(ctx context.Context, payload AgentUpdatedPayload) error {
	payload.BaseEvent = newBaseEvent(KindAgentStatusChanged)
	return p.persistAndPublish(ctx, KindAgentStatusChanged, ProjectChannel(payload.ProjectID),
		payload.ProjectID, "", payload.AgentID, payload)
}

// PublishMCPServer persists and broadcasts an MCP reconciliation outcome.
func (p *Publisher) PublishMCPServer(ctx context.Context, payload MCPServerPayload) error {
	payload.BaseEvent = newBaseEvent(KindMCPUpdated)
	return p.persistAndPublish(ctx, KindMCPUpdated, ProjectChannel(payload.ProjectID),
		payload.ProjectID, "", "", payload)
}

// PublishNode broadcasts a node registry change. Transient. A healthy
// node is announced as discovered, an unhealthy one as lost.
func (p *Publisher) PublishNode(ctx context.Context, payload NodePayload) error {
	kind := KindNodeDiscovered
	if !payload.Healthy {
		kind = KindNodeLost
	}
	payload.BaseEvent = newBaseEvent(kind)
	return p.publishOnly(NodesChannel, payload)
}

// PublishMail persists and broadcasts a mail message on the sender's
// project channel.
func (p *Publisher) PublishMail(ctx context.Context, payload MailPayload) error {
	payload.BaseEvent = newBaseEvent(KindMailSent)
	return p.persistAndPublish(ctx, KindMailSent, ProjectChannel(payload.ProjectID),
		payload.ProjectID, "", payload.ToAgentID, payload)
}

// PublishGeneric persists and broadcasts an already-normalized event
// with an arbitrary kind, used by the ingest pipeline for backend kinds
// without dedicated handling.
func (p *Publisher) PublishGeneric(ctx context.Context, kind, channel, projectID, sessionID string, payload map[string]any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	base := newBaseEvent(kind)
	payload["type"] = base.Type
	payload["timestamp_ms"] = base.Timestamp
	return p.persistAndPublish(ctx, kind, channel, projectID, sessionID, "", payload)
}

// --- Internal core methods ---

// persistAndPublish stores the event, injects the assigned db_event_id
// into the live payload, and publishes it on the bus.
func (p *Publisher) persistAndPublish(ctx context.Context, kind, channel, projectID, sessionID, agentID string, payload any) error {
	m, err := toMap(payload)
	if err != nil {
		return err
	}

	evt, err := p.events.RecordEvent(ctx, kind, channel, projectID, sessionID, agentID, m)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	m["db_event_id"] = evt.ID
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	p.bus.Publish(channel, data)
	return nil
}

// publishOnly broadcasts without persisting.
func (p *Publisher) publishOnly(channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	p.bus.Publish(channel, data)
	return nil
}

func toMap(payload any) (map[string]any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to build event payload map: %w", err)
	}
	return m, nil
}
