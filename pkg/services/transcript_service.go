package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/transcriptentry"
	"github.com/buildsquads/squads/pkg/models"
)

// TranscriptService appends and upserts sequenced transcript entries.
// Seq values are dense per session; the backend message id is the upsert
// key, so re-delivered messages after an SSE reconnect land on the same
// entry instead of duplicating it.
type TranscriptService struct {
	client *ent.Client
}

// NewTranscriptService creates a new TranscriptService
func NewTranscriptService(client *ent.Client) *TranscriptService {
	return &TranscriptService{client: client}
}

// UpsertEntry inserts or updates the entry for a backend message id.
// New messages get the next dense seq; existing messages keep their seq
// and only the payload is replaced.
func (s *TranscriptService) UpsertEntry(httpCtx context.Context, sessionID, role, backendMessageID string, payload map[string]any) (*ent.TranscriptEntry, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if backendMessageID == "" {
		return nil, NewValidationError("backend_message_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.TranscriptEntry.Query().
		Where(
			transcriptentry.SessionIDEQ(sessionID),
			transcriptentry.BackendMessageIDEQ(backendMessageID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query transcript entry: %w", err)
	}

	var entry *ent.TranscriptEntry
	if existing != nil {
		entry, err = existing.Update().
			SetPayload(payload).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update transcript entry: %w", err)
		}
	} else {
		seq, err := s.nextSeq(ctx, tx, sessionID)
		if err != nil {
			return nil, err
		}
		entry, err = tx.TranscriptEntry.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetSeq(seq).
			SetRole(transcriptentry.Role(role)).
			SetBackendMessageID(backendMessageID).
			SetPayload(payload).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Lost a race on the same backend message id; fold into it.
				tx.Rollback()
				return s.UpsertEntry(httpCtx, sessionID, role, backendMessageID, payload)
			}
			return nil, fmt.Errorf("failed to create transcript entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transcript entry: %w", err)
	}
	return entry, nil
}

// AppendLocalEntry appends an entry with no backend message id, used for
// locally echoed user turns and system notes. The orchestrator folds a
// later backend echo into this entry via AdoptBackendID.
func (s *TranscriptService) AppendLocalEntry(httpCtx context.Context, sessionID, role string, payload map[string]any) (*ent.TranscriptEntry, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	seq, err := s.nextSeq(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}

	entry, err := tx.TranscriptEntry.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetSeq(seq).
		SetRole(transcriptentry.Role(role)).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append transcript entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transcript entry: %w", err)
	}
	return entry, nil
}

// AdoptBackendID binds a backend message id to a locally appended entry,
// reconciling the local user echo with the backend's record of it.
func (s *TranscriptService) AdoptBackendID(ctx context.Context, entryID, backendMessageID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TranscriptEntry.UpdateOneID(entryID).
		SetBackendMessageID(backendMessageID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to adopt backend message id: %w", err)
	}
	return nil
}

// FindByBackendID looks up the entry for a session's backend message id
func (s *TranscriptService) FindByBackendID(ctx context.Context, sessionID, backendMessageID string) (*ent.TranscriptEntry, error) {
	entry, err := s.client.TranscriptEntry.Query().
		Where(
			transcriptentry.SessionIDEQ(sessionID),
			transcriptentry.BackendMessageIDEQ(backendMessageID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transcript entry: %w", err)
	}
	return entry, nil
}

// LastLocalUserEntry returns the most recent user entry that has no
// backend message id yet, or ErrNotFound.
func (s *TranscriptService) LastLocalUserEntry(ctx context.Context, sessionID string) (*ent.TranscriptEntry, error) {
	entry, err := s.client.TranscriptEntry.Query().
		Where(
			transcriptentry.SessionIDEQ(sessionID),
			transcriptentry.RoleEQ(transcriptentry.RoleUser),
			transcriptentry.BackendMessageIDIsNil(),
		).
		Order(ent.Desc(transcriptentry.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find local user entry: %w", err)
	}
	return entry, nil
}

// GetTranscript returns one page of a session's transcript in seq order
func (s *TranscriptService) GetTranscript(ctx context.Context, sessionID string, limit, offset int) (*models.TranscriptPage, error) {
	query := s.client.TranscriptEntry.Query().
		Where(transcriptentry.SessionIDEQ(sessionID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transcript entries: %w", err)
	}

	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := query.
		Order(ent.Asc(transcriptentry.FieldSeq)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}

	return &models.TranscriptPage{
		Entries:    entries,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// nextSeq computes the next dense sequence number within the transaction
func (s *TranscriptService) nextSeq(ctx context.Context, tx *ent.Tx, sessionID string) (int, error) {
	last, err := tx.TranscriptEntry.Query().
		Where(transcriptentry.SessionIDEQ(sessionID)).
		Order(ent.Desc(transcriptentry.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to query last seq: %w", err)
	}
	return last.Seq + 1, nil
}
