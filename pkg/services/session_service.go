package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/pkg/models"
)

// activeSessionStatuses are the statuses that hold the agent and any
// worktree claim. The partial unique indexes enforce these sets at the
// database level; keep them in sync with CreatePartialIndexes.
var activeSessionStatuses = []agentsession.Status{
	agentsession.StatusPending,
	agentsession.StatusStarting,
	agentsession.StatusRunning,
	agentsession.StatusPaused,
}

// terminalSessionStatuses end a session; archived is reached only from
// a terminal status.
var terminalSessionStatuses = []agentsession.Status{
	agentsession.StatusCompleted,
	agentsession.StatusFailed,
	agentsession.StatusCancelled,
}

// SessionService manages agent session rows and their status transitions
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a pending session for an agent. At most one
// active session per agent and one active claim per worktree path are
// allowed; both are backed by partial unique indexes, so a concurrent
// create loses with a constraint error.
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.AgentSession, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	mode := req.Mode
	if mode == "" {
		mode = string(agentsession.ModeBuild)
	}
	if mode != string(agentsession.ModePlan) && mode != string(agentsession.ModeBuild) {
		return nil, NewValidationError("mode", fmt.Sprintf("unknown mode %q", mode))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Pre-check for a friendly conflict kind; the index still guards races.
	busy, err := s.client.AgentSession.Query().
		Where(
			agentsession.AgentIDEQ(req.AgentID),
			agentsession.StatusIn(activeSessionStatuses...),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check agent sessions: %w", err)
	}
	if busy {
		return nil, NewConflictError(ConflictAgentBusy, "agent already has an active session")
	}

	if req.WorktreePath != "" {
		claimed, err := s.client.AgentSession.Query().
			Where(
				agentsession.WorktreePathEQ(req.WorktreePath),
				agentsession.StatusIn(activeSessionStatuses...),
			).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check worktree claim: %w", err)
		}
		if claimed {
			return nil, NewConflictError(ConflictWorktreeClaim,
				fmt.Sprintf("worktree %s is claimed by an active session", req.WorktreePath))
		}
	}

	builder := s.client.AgentSession.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetAgentID(req.AgentID).
		SetStatus(agentsession.StatusPending).
		SetMode(agentsession.Mode(mode))
	if req.Title != "" {
		builder.SetTitle(req.Title)
	}
	if req.TicketKey != "" {
		builder.SetTicketKey(req.TicketKey)
	}
	if req.WorktreePath != "" {
		builder.SetWorktreePath(req.WorktreePath)
	}
	if req.Branch != "" {
		builder.SetBranch(req.Branch)
	}
	if req.BaseBranch != "" {
		builder.SetBaseBranch(req.BaseBranch)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, NewConflictError(ConflictAgentBusy, "agent already has an active session")
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves a session by ID with optional edge loading
func (s *SessionService) GetSession(ctx context.Context, sessionID string, withEdges bool) (*ent.AgentSession, error) {
	query := s.client.AgentSession.Query().Where(agentsession.IDEQ(sessionID))
	if withEdges {
		query = query.WithAgent()
	}

	session, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// GetSessionByBackendID resolves a session from the backend's session id
func (s *SessionService) GetSessionByBackendID(ctx context.Context, backendSessionID string) (*ent.AgentSession, error) {
	session, err := s.client.AgentSession.Query().
		Where(agentsession.BackendSessionIDEQ(backendSessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session by backend id: %w", err)
	}
	return session, nil
}

// ListSessions lists sessions with filtering and pagination
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.AgentSession.Query()

	if filters.ProjectID != "" {
		query = query.Where(agentsession.ProjectIDEQ(filters.ProjectID))
	}
	if filters.AgentID != "" {
		query = query.Where(agentsession.AgentIDEQ(filters.AgentID))
	}
	if filters.Status != "" {
		query = query.Where(agentsession.StatusEQ(agentsession.Status(filters.Status)))
	}
	if filters.Mode != "" {
		query = query.Where(agentsession.ModeEQ(agentsession.Mode(filters.Mode)))
	}
	if filters.TicketKey != "" {
		query = query.Where(agentsession.TicketKeyEQ(filters.TicketKey))
	}
	if filters.ActiveOnly {
		query = query.Where(agentsession.StatusIn(activeSessionStatuses...))
	}
	if filters.StartedAfter != nil {
		query = query.Where(agentsession.CreatedAtGTE(*filters.StartedAfter))
	}
	if filters.StartedBefore != nil {
		query = query.Where(agentsession.CreatedAtLT(*filters.StartedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(agentsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ListResumableSessions returns sessions that were in flight when the
// process last stopped, used by the orchestrator on startup.
func (s *SessionService) ListResumableSessions(ctx context.Context) ([]*ent.AgentSession, error) {
	sessions, err := s.client.AgentSession.Query().
		Where(agentsession.StatusIn(
			agentsession.StatusStarting,
			agentsession.StatusRunning,
			agentsession.StatusPaused,
		)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumable sessions: %w", err)
	}
	return sessions, nil
}

// ListFinishedSessions returns sessions that reached a terminal status
// before the cutoff. The retention sweeper uses it to find sessions
// whose event grace window elapsed while the process was down.
func (s *SessionService) ListFinishedSessions(ctx context.Context, finishedBefore time.Time) ([]*ent.AgentSession, error) {
	sessions, err := s.client.AgentSession.Query().
		Where(
			agentsession.StatusIn(
				agentsession.StatusCompleted,
				agentsession.StatusFailed,
				agentsession.StatusCancelled,
			),
			agentsession.FinishedAtNotNil(),
			agentsession.FinishedAtLT(finishedBefore),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list finished sessions: %w", err)
	}
	return sessions, nil
}

// BindBackendSession records the backend's session id. The binding is
// assign-once: a second call with a different id fails.
func (s *SessionService) BindBackendSession(ctx context.Context, sessionID, backendSessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := s.client.AgentSession.Get(writeCtx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session.BackendSessionID != nil {
		if *session.BackendSessionID == backendSessionID {
			return nil
		}
		return fmt.Errorf("%w: backend session already bound", ErrConcurrentModification)
	}

	count, err := s.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.BackendSessionIDIsNil(),
		).
		SetBackendSessionID(backendSessionID).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to bind backend session: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: backend session already bound", ErrConcurrentModification)
	}
	return nil
}

// UpdateSessionStatus transitions a session. Terminal statuses set
// finished_at and clear any pending prompt; starting sets started_at.
func (s *SessionService) UpdateSessionStatus(ctx context.Context, sessionID string, status agentsession.Status, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.AgentSession.UpdateOneID(sessionID).
		SetStatus(status).
		AddVersion(1)

	switch status {
	case agentsession.StatusStarting:
		update.SetStartedAt(time.Now())
	case agentsession.StatusCompleted, agentsession.StatusFailed, agentsession.StatusCancelled:
		update.SetFinishedAt(time.Now()).ClearPendingPromptID()
		if errorMessage != "" {
			update.SetErrorMessage(errorMessage)
		}
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return nil
}

// ArchiveSession moves a terminal session to archived
func (s *SessionService) ArchiveSession(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.StatusIn(terminalSessionStatuses...),
		).
		SetStatus(agentsession.StatusArchived).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to archive session: %w", err)
	}
	if count == 0 {
		exists, err := s.client.AgentSession.Query().
			Where(agentsession.IDEQ(sessionID)).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return fmt.Errorf("%w: session is not in a terminal status", ErrPreconditionFailed)
	}
	return nil
}

// SetPendingPrompt marks a turn as in flight. Fails with a
// turn_in_progress conflict when another prompt is already pending.
func (s *SessionService) SetPendingPrompt(ctx context.Context, sessionID, promptID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.AgentSession.Update().
		Where(
			agentsession.IDEQ(sessionID),
			agentsession.PendingPromptIDIsNil(),
		).
		SetPendingPromptID(promptID).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to set pending prompt: %w", err)
	}
	if count == 0 {
		return NewConflictError(ConflictTurnInProgress, "a turn is already in flight")
	}
	return nil
}

// ClearPendingPrompt completes the in-flight turn. When promptID is not
// empty, only that prompt is cleared; a stale clear is a no-op.
func (s *SessionService) ClearPendingPrompt(ctx context.Context, sessionID, promptID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.AgentSession.Update().
		Where(agentsession.IDEQ(sessionID))
	if promptID != "" {
		update = update.Where(agentsession.PendingPromptIDEQ(promptID))
	}

	_, err := update.ClearPendingPromptID().Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to clear pending prompt: %w", err)
	}
	return nil
}

// SetSessionTitle records a backend-provided or user-provided title
func (s *SessionService) SetSessionTitle(ctx context.Context, sessionID, title string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.AgentSession.UpdateOneID(sessionID).
		SetTitle(title).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set session title: %w", err)
	}
	return nil
}
