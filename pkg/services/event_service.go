package services

import (
	"context"
	"fmt"
	"time"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/event"
)

// EventService persists normalized events and serves WebSocket catch-up
// queries ordered by the serial event id.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// RecordEvent appends an event to the log and returns it with its id
func (s *EventService) RecordEvent(httpCtx context.Context, kind, channel, projectID, sessionID, agentID string, payload map[string]any) (*ent.Event, error) {
	if kind == "" {
		return nil, NewValidationError("kind", "required")
	}
	if channel == "" {
		return nil, NewValidationError("channel", "required")
	}
	if projectID == "" {
		return nil, NewValidationError("project_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Event.Create().
		SetKind(kind).
		SetChannel(channel).
		SetProjectID(projectID).
		SetPayload(payload).
		SetOccurredAt(time.Now())
	if sessionID != "" {
		builder.SetSessionID(sessionID)
	}
	if agentID != "" {
		builder.SetAgentID(agentID)
	}

	e, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record event: %w", err)
	}
	return e, nil
}

// GetEventsAfter returns a channel's events with id greater than afterID,
// oldest first, capped at limit. Used for WebSocket catch-up.
func (s *EventService) GetEventsAfter(ctx context.Context, channel string, afterID, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 200
	}

	events, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(afterID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return events, nil
}

// LatestEventID returns the highest event id for a channel, or 0
func (s *EventService) LatestEventID(ctx context.Context, channel string) (int, error) {
	e, err := s.client.Event.Query().
		Where(event.ChannelEQ(channel)).
		Order(ent.Desc(event.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query latest event: %w", err)
	}
	return e.ID, nil
}

// DeleteSessionEvents removes a terminated session's events, called by
// the retention sweep after the grace period.
func (s *EventService) DeleteSessionEvents(ctx context.Context, sessionID string, before time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(
			event.SessionIDEQ(sessionID),
			event.OccurredAtLT(before),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete session events: %w", err)
	}
	return count, nil
}
