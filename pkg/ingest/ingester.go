package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/pkg/events"
	"github.com/buildsquads/squads/pkg/masking"
	"github.com/buildsquads/squads/pkg/models"
	"github.com/buildsquads/squads/pkg/opencode"
	"github.com/buildsquads/squads/pkg/services"
)

// Source identifies the squad backend a raw event arrived from.
type Source struct {
	ProjectID string
	SquadID   string
}

// IdleNotifier is told when a backend reports a session idle, so the
// orchestrator can complete the in-flight turn.
type IdleNotifier interface {
	OnSessionIdle(ctx context.Context, session *ent.AgentSession)
}

// Ingester turns raw backend events into transcript writes and
// normalized bus events. One Ingester serves all squads; the runtime
// supervisor calls HandleEvent from each squad's stream goroutine.
type Ingester struct {
	sessions    *services.SessionService
	transcripts *services.TranscriptService
	publisher   *events.Publisher
	idle        IdleNotifier
	redactor    *masking.Redactor
	logger      *slog.Logger
}

// NewIngester creates a new Ingester.
func NewIngester(sessions *services.SessionService, transcripts *services.TranscriptService, publisher *events.Publisher, idle IdleNotifier) *Ingester {
	return &Ingester{
		sessions:    sessions,
		transcripts: transcripts,
		publisher:   publisher,
		idle:        idle,
		redactor:    masking.NewRedactor(),
		logger:      slog.With("component", "ingester"),
	}
}

// SetIdleNotifier installs the idle notifier after construction. The
// orchestrator is built after the supervisor, which already holds this
// ingester, so the hookup happens late.
func (i *Ingester) SetIdleNotifier(idle IdleNotifier) {
	i.idle = idle
}

// HandleEvent processes one raw backend event. Malformed payloads are
// logged and skipped; the stream must keep flowing.
func (i *Ingester) HandleEvent(ctx context.Context, src Source, evt opencode.Event) {
	var payload map[string]any
	if len(evt.Data) > 0 {
		if err := json.Unmarshal(evt.Data, &payload); err != nil {
			i.logger.Warn("Skipping malformed backend event",
				"squad_id", src.SquadID, "kind", evt.Kind, "error", err)
			return
		}
	}

	switch evt.Kind {
	case rawMessageUpdated:
		i.handleMessageUpdated(ctx, src, payload)
	case rawMessagePartUpdated:
		i.handlePartUpdated(ctx, src, payload)
	case rawPromptAppend:
		i.handlePromptAppend(ctx, src, payload)
	case rawSessionIdle:
		i.handleSessionIdle(ctx, src, payload)
	case rawSessionStatus, rawSessionStatusMoved:
		if idleStatusEvent(payload) {
			i.handleSessionIdle(ctx, src, payload)
			return
		}
		i.handleGeneric(ctx, src, evt.Kind, payload)
	default:
		i.handleGeneric(ctx, src, evt.Kind, payload)
	}
}

// handleMessageUpdated upserts the full message snapshot into the
// transcript. A user message that matches a locally echoed entry adopts
// that entry instead of duplicating it.
func (i *Ingester) handleMessageUpdated(ctx context.Context, src Source, payload map[string]any) {
	info := mapField(payload, "info")
	if info == nil {
		info = payload
	}
	messageID, _ := stringField(info, "id")
	backendSessionID, _ := stringField(info, "sessionID")
	role, _ := stringField(info, "role")
	if messageID == "" || backendSessionID == "" {
		i.logger.Warn("Message event missing ids", "squad_id", src.SquadID)
		return
	}
	if role == "" {
		role = "assistant"
	}

	session, err := i.sessions.GetSessionByBackendID(ctx, backendSessionID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			i.logger.Error("Failed to resolve session", "backend_session_id", backendSessionID, "error", err)
		}
		return
	}

	entry, err := i.resolveEntry(ctx, session.ID, role, messageID)
	if err != nil {
		i.logger.Error("Failed to resolve transcript entry",
			"session_id", session.ID, "message_id", messageID, "error", err)
		return
	}

	msg := i.entryMessage(entry)
	msg.ID = messageID
	msg.Role = role
	msg.Info = info
	if parts, ok := info["parts"].([]any); ok {
		for _, raw := range parts {
			if pm, ok := raw.(map[string]any); ok {
				msg.UpsertPart(models.ParsePart(pm), "")
			}
		}
	}

	i.redactor.MaskMessage(msg)
	updated, err := i.transcripts.UpsertEntry(ctx, session.ID, role, messageID, msg.ToPayload())
	if err != nil {
		i.logger.Error("Failed to upsert transcript entry",
			"session_id", session.ID, "message_id", messageID, "error", err)
		return
	}

	if err := i.publisher.PublishMessageUpdated(ctx, events.MessageUpdatedPayload{
		SessionID: session.ID,
		ProjectID: session.ProjectID,
		EntryID:   updated.ID,
		Seq:       updated.Seq,
		Role:      role,
		MessageID: messageID,
		Message:   updated.Payload,
	}); err != nil {
		i.logger.Warn("Failed to publish message update", "session_id", session.ID, "error", err)
	}
}

// handlePartUpdated folds one part into its message. Text parts append
// their delta and also emit a transient text_append for live rendering.
func (i *Ingester) handlePartUpdated(ctx context.Context, src Source, payload map[string]any) {
	partMap := mapField(payload, "part")
	if partMap == nil {
		partMap = payload
	}
	messageID, _ := stringField(partMap, "messageID")
	backendSessionID, _ := stringField(partMap, "sessionID")
	if messageID == "" || backendSessionID == "" {
		i.logger.Warn("Part event missing ids", "squad_id", src.SquadID)
		return
	}
	delta, _ := stringField(payload, "delta")

	session, err := i.sessions.GetSessionByBackendID(ctx, backendSessionID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			i.logger.Error("Failed to resolve session", "backend_session_id", backendSessionID, "error", err)
		}
		return
	}

	entry, err := i.resolveEntry(ctx, session.ID, "assistant", messageID)
	if err != nil {
		i.logger.Error("Failed to resolve transcript entry",
			"session_id", session.ID, "message_id", messageID, "error", err)
		return
	}

	part := models.ParsePart(partMap)
	msg := i.entryMessage(entry)
	msg.ID = messageID
	msg.UpsertPart(part, delta)
	i.redactor.MaskMessage(msg)

	if _, err := i.transcripts.UpsertEntry(ctx, session.ID, msg.Role, messageID, msg.ToPayload()); err != nil {
		i.logger.Error("Failed to upsert transcript entry",
			"session_id", session.ID, "message_id", messageID, "error", err)
		return
	}

	if err := i.publisher.PublishMessagePart(ctx, events.MessagePartPayload{
		SessionID: session.ID,
		ProjectID: session.ProjectID,
		MessageID: messageID,
		PartID:    part.ID,
		PartType:  string(part.Type),
		Part:      partMap,
	}); err != nil {
		i.logger.Warn("Failed to publish message part", "session_id", session.ID, "error", err)
	}

	if part.Type == models.PartText && delta != "" {
		_ = i.publisher.PublishTextAppend(ctx, events.TextAppendPayload{
			SessionID: session.ID,
			ProjectID: session.ProjectID,
			MessageID: messageID,
			PartID:    part.ID,
			Text:      i.redactor.Mask(delta),
		})
	}
}

// handlePromptAppend forwards TUI prompt text as a transient delta.
func (i *Ingester) handlePromptAppend(ctx context.Context, src Source, payload map[string]any) {
	backendSessionID, _ := stringField(payload, "sessionID")
	text, _ := stringField(payload, "text")
	if backendSessionID == "" || text == "" {
		return
	}

	session, err := i.sessions.GetSessionByBackendID(ctx, backendSessionID)
	if err != nil {
		return
	}

	_ = i.publisher.PublishTextAppend(ctx, events.TextAppendPayload{
		SessionID: session.ID,
		ProjectID: session.ProjectID,
		Text:      i.redactor.Mask(text),
	})
}

// handleSessionIdle publishes session:idle and hands the session to the
// orchestrator, which completes any pending turn.
func (i *Ingester) handleSessionIdle(ctx context.Context, src Source, payload map[string]any) {
	backendSessionID, _ := stringField(payload, "sessionID")
	if backendSessionID == "" {
		return
	}

	session, err := i.sessions.GetSessionByBackendID(ctx, backendSessionID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			i.logger.Error("Failed to resolve session", "backend_session_id", backendSessionID, "error", err)
		}
		return
	}

	if err := i.publisher.PublishSessionIdle(ctx, events.SessionIdlePayload{
		SessionID: session.ID,
		ProjectID: session.ProjectID,
	}); err != nil {
		i.logger.Warn("Failed to publish session idle", "session_id", session.ID, "error", err)
	}

	if i.idle != nil {
		i.idle.OnSessionIdle(ctx, session)
	}
}

// handleGeneric republishes an unrecognized backend kind under its
// normalized name. Session-scoped events go to the session channel,
// everything else to the project channel.
func (i *Ingester) handleGeneric(ctx context.Context, src Source, rawKind string, payload map[string]any) {
	kind := NormalizeKind(rawKind)

	channel := events.ProjectChannel(src.ProjectID)
	sessionID := ""
	if backendSessionID, ok := stringField(payload, "sessionID"); ok {
		if session, err := i.sessions.GetSessionByBackendID(ctx, backendSessionID); err == nil {
			channel = events.SessionChannel(session.ID)
			sessionID = session.ID
		}
	}

	if err := i.publisher.PublishGeneric(ctx, kind, channel, src.ProjectID, sessionID, payload); err != nil {
		i.logger.Warn("Failed to publish generic event", "kind", kind, "error", err)
	}
}

// resolveEntry finds the transcript entry for a backend message id. A
// user message with no entry first tries to adopt the latest locally
// echoed user entry, reconciling the local echo with the backend's copy.
func (i *Ingester) resolveEntry(ctx context.Context, sessionID, role, messageID string) (*ent.TranscriptEntry, error) {
	entry, err := i.transcripts.FindByBackendID(ctx, sessionID, messageID)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, services.ErrNotFound) {
		return nil, err
	}

	if role == "user" {
		local, err := i.transcripts.LastLocalUserEntry(ctx, sessionID)
		if err == nil {
			if err := i.transcripts.AdoptBackendID(ctx, local.ID, messageID); err == nil {
				return i.transcripts.FindByBackendID(ctx, sessionID, messageID)
			}
		} else if !errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
	}

	// No entry yet; the caller creates one via UpsertEntry.
	return nil, nil
}

// entryMessage rebuilds the working Message from a transcript entry, or
// starts an empty one for a new message.
func (i *Ingester) entryMessage(entry *ent.TranscriptEntry) *models.Message {
	if entry == nil {
		return &models.Message{Role: "assistant"}
	}
	msg, err := models.MessageFromPayload(entry.Payload)
	if err != nil {
		i.logger.Warn("Corrupt transcript payload, starting fresh", "entry_id", entry.ID, "error", err)
		return &models.Message{Role: string(entry.Role)}
	}
	if msg.Role == "" {
		msg.Role = string(entry.Role)
	}
	return msg
}

// idleStatusEvent reports whether a session.status payload signals
// idle. Backends deliver it as {status: idle} or {type: idle} depending
// on version.
func idleStatusEvent(payload map[string]any) bool {
	status, _ := stringField(payload, "status")
	typ, _ := stringField(payload, "type")
	return status == "idle" || typ == "idle"
}

func stringField(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m[key].(string)
	return v, ok && v != ""
}

func mapField(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	v, _ := m[key].(map[string]any)
	return v
}
