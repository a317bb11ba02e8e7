// Package orchestrator drives agent sessions against squad backends:
// lifecycle transitions, one-turn-at-a-time dispatch, idle completion,
// and crash-safe resumption.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/agent"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/pkg/config"
	"github.com/buildsquads/squads/pkg/events"
	"github.com/buildsquads/squads/pkg/models"
	"github.com/buildsquads/squads/pkg/opencode"
	"github.com/buildsquads/squads/pkg/services"
)

// Notifier is told about terminal session transitions, for outbound
// notification channels.
type Notifier interface {
	SessionFinished(ctx context.Context, session *ent.AgentSession)
}

// Backends provisions squad backend clients on demand. The runtime
// supervisor is the production implementation.
type Backends interface {
	EnsureRunning(ctx context.Context, squadID string) (*opencode.Client, error)
}

// Orchestrator owns the in-memory turn state for every active session.
// Everything durable lives in the session row; the in-memory side is
// rebuilt from it on startup.
type Orchestrator struct {
	sessions    *services.SessionService
	transcripts *services.TranscriptService
	agents      *services.AgentService
	eventsSvc   *services.EventService
	supervisor  Backends
	publisher   *events.Publisher
	cfg         *config.RuntimeConfig
	notifier    Notifier

	mu    sync.Mutex
	turns map[string]*turnState // session_id → state

	logger *slog.Logger
}

// turnState is the volatile per-session turn bookkeeping. It holds at
// most the one in-flight turn; nothing ever waits behind it.
type turnState struct {
	pendingPromptID string
	timer           *time.Timer
}

// New creates a new Orchestrator.
func New(sessions *services.SessionService, transcripts *services.TranscriptService, agents *services.AgentService, eventsSvc *services.EventService, supervisor Backends, publisher *events.Publisher, cfg *config.RuntimeConfig) *Orchestrator {
	return &Orchestrator{
		sessions:    sessions,
		transcripts: transcripts,
		agents:      agents,
		eventsSvc:   eventsSvc,
		supervisor:  supervisor,
		publisher:   publisher,
		cfg:         cfg,
		turns:       make(map[string]*turnState),
		logger:      slog.With("component", "orchestrator"),
	}
}

// SetNotifier wires an optional outbound notifier.
func (o *Orchestrator) SetNotifier(n Notifier) {
	o.notifier = n
}

// Resume rebuilds turn state for sessions that were in flight when the
// process last stopped. Sessions whose pending prompt can no longer
// complete get a fresh turn timer; their backends are brought back up
// lazily on the next operation.
func (o *Orchestrator) Resume(ctx context.Context) error {
	resumable, err := o.sessions.ListResumableSessions(ctx)
	if err != nil {
		return err
	}
	for _, session := range resumable {
		o.logger.Info("Resuming session", "session_id", session.ID, "status", session.Status)
		if session.PendingPromptID != nil {
			o.mu.Lock()
			st := o.turnStateLocked(session.ID)
			st.pendingPromptID = *session.PendingPromptID
			o.armTurnTimerLocked(session.ID, st)
			o.mu.Unlock()
		}
	}
	return nil
}

// StartSession takes a pending session to running: backend up, backend
// session created and bound, agent marked working.
func (o *Orchestrator) StartSession(ctx context.Context, sessionID string) (*ent.AgentSession, error) {
	session, err := o.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if session.Status != agentsession.StatusPending {
		return nil, fmt.Errorf("%w: session is %s, not pending", services.ErrPreconditionFailed, session.Status)
	}

	ag, err := o.agents.GetAgent(ctx, session.AgentID)
	if err != nil {
		return nil, err
	}

	if err := o.setStatus(ctx, session, agentsession.StatusStarting, ""); err != nil {
		return nil, err
	}

	oc, err := o.supervisor.EnsureRunning(ctx, ag.SquadID)
	if err != nil {
		o.failSession(ctx, session, fmt.Sprintf("backend provisioning failed: %v", err))
		return nil, fmt.Errorf("%w: %v", services.ErrBackendUnavailable, err)
	}

	createCtx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
	backendSession, err := oc.CreateSession(createCtx, session.Title)
	cancel()
	if err != nil {
		o.failSession(ctx, session, fmt.Sprintf("backend session create failed: %v", err))
		return nil, translateBackendError(err)
	}

	if err := o.sessions.BindBackendSession(ctx, session.ID, backendSession.ID); err != nil {
		o.failSession(ctx, session, fmt.Sprintf("backend session bind failed: %v", err))
		return nil, err
	}

	if err := o.setStatus(ctx, session, agentsession.StatusRunning, ""); err != nil {
		return nil, err
	}
	if err := o.agents.SetAgentStatus(ctx, ag.ID, agent.StatusWorking); err != nil {
		o.logger.Warn("Failed to mark agent working", "agent_id", ag.ID, "error", err)
	}

	return o.sessions.GetSession(ctx, sessionID, false)
}

// Prompt submits a turn. A prompt landing while one is still unanswered
// is refused with turn_in_progress before anything mutates. Prompting a
// terminal session revives it first (see reviveSession).
func (o *Orchestrator) Prompt(ctx context.Context, sessionID string, req models.PromptRequest) error {
	if req.Text == "" {
		return services.NewValidationError("text", "required")
	}

	session, err := o.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}

	switch session.Status {
	case agentsession.StatusRunning:
	case agentsession.StatusCompleted, agentsession.StatusFailed, agentsession.StatusCancelled:
		session, err = o.reviveSession(ctx, session)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: session is %s, not running", services.ErrPreconditionFailed, session.Status)
	}

	o.mu.Lock()
	st := o.turnStateLocked(session.ID)
	if st.pendingPromptID != "" {
		o.mu.Unlock()
		return services.NewConflictError(services.ConflictTurnInProgress, "a turn is in flight")
	}
	o.mu.Unlock()

	return o.dispatch(ctx, session, req)
}

// reviveSession continues a terminal session for a follow-up prompt: a
// successor row keyed by the same ticket reuses the retained backend
// session when the squad still has it, else a fresh backend session is
// created transparently.
func (o *Orchestrator) reviveSession(ctx context.Context, prior *ent.AgentSession) (*ent.AgentSession, error) {
	ag, err := o.agents.GetAgent(ctx, prior.AgentID)
	if err != nil {
		return nil, err
	}
	oc, err := o.supervisor.EnsureRunning(ctx, ag.SquadID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrBackendUnavailable, err)
	}

	replacement, err := o.sessions.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID:  prior.ProjectID,
		AgentID:    prior.AgentID,
		Title:      prior.Title,
		Mode:       string(prior.Mode),
		TicketKey:  prior.TicketKey,
		BaseBranch: prior.BaseBranch,
	})
	if err != nil {
		return nil, err
	}
	if err := o.setStatus(ctx, replacement, agentsession.StatusStarting, ""); err != nil {
		return nil, err
	}

	backendID := ""
	if prior.BackendSessionID != nil {
		checkCtx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
		if _, err := oc.GetSession(checkCtx, *prior.BackendSessionID); err == nil {
			backendID = *prior.BackendSessionID
		}
		cancel()
	}
	if backendID == "" {
		createCtx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
		backendSession, err := oc.CreateSession(createCtx, replacement.Title)
		cancel()
		if err != nil {
			o.failSession(ctx, replacement, fmt.Sprintf("backend session create failed: %v", err))
			return nil, translateBackendError(err)
		}
		backendID = backendSession.ID
	}

	if err := o.sessions.BindBackendSession(ctx, replacement.ID, backendID); err != nil {
		o.failSession(ctx, replacement, fmt.Sprintf("backend session bind failed: %v", err))
		return nil, err
	}
	if err := o.setStatus(ctx, replacement, agentsession.StatusRunning, ""); err != nil {
		return nil, err
	}
	if err := o.agents.SetAgentStatus(ctx, ag.ID, agent.StatusWorking); err != nil {
		o.logger.Warn("Failed to mark agent working", "agent_id", ag.ID, "error", err)
	}
	return o.sessions.GetSession(ctx, replacement.ID, false)
}

// dispatch echoes the user turn locally, sends it to the backend, and
// arms the silence timer.
func (o *Orchestrator) dispatch(ctx context.Context, session *ent.AgentSession, req models.PromptRequest) error {
	echo := models.Message{
		Role:  "user",
		Parts: []models.Part{{Type: models.PartText, Text: req.Text}},
	}
	if _, err := o.transcripts.AppendLocalEntry(ctx, session.ID, "user", echo.ToPayload()); err != nil {
		return err
	}

	oc, err := o.backendFor(ctx, session)
	if err != nil {
		return err
	}

	promptCtx, cancel := context.WithTimeout(ctx, o.cfg.PromptTimeout)
	resp, err := oc.Prompt(promptCtx, *session.BackendSessionID, opencode.PromptRequest{
		Text:  req.Text,
		Mode:  req.Mode,
		Model: req.Model,
	})
	cancel()
	if err != nil {
		return translateBackendError(err)
	}

	promptID := resp.MessageID
	if promptID == "" {
		promptID = uuid.New().String()
	}
	if err := o.sessions.SetPendingPrompt(ctx, session.ID, promptID); err != nil {
		return err
	}

	o.mu.Lock()
	st := o.turnStateLocked(session.ID)
	st.pendingPromptID = promptID
	o.armTurnTimerLocked(session.ID, st)
	o.mu.Unlock()
	return nil
}

// OnSessionIdle completes the in-flight turn when the backend reports
// idle.
func (o *Orchestrator) OnSessionIdle(ctx context.Context, session *ent.AgentSession) {
	o.mu.Lock()
	st := o.turnStateLocked(session.ID)
	promptID := st.pendingPromptID
	st.pendingPromptID = ""
	if st.timer != nil {
		st.timer.Stop()
		st.timer = nil
	}
	o.mu.Unlock()

	if err := o.sessions.ClearPendingPrompt(ctx, session.ID, promptID); err != nil {
		o.logger.Warn("Failed to clear pending prompt", "session_id", session.ID, "error", err)
	}
}

// Abort interrupts the in-flight turn. With nothing in flight the call
// is an already_idle conflict; the same applies when the backend lost
// the race and reports the session idle.
func (o *Orchestrator) Abort(ctx context.Context, sessionID string) error {
	session, err := o.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}

	o.mu.Lock()
	st := o.turnStateLocked(sessionID)
	pending := st.pendingPromptID
	o.mu.Unlock()
	if pending == "" && session.PendingPromptID == nil {
		return services.NewConflictError(services.ConflictAlreadyIdle, "no turn is in flight")
	}

	oc, err := o.backendFor(ctx, session)
	if err != nil {
		return err
	}

	abortCtx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
	err = oc.Abort(abortCtx, *session.BackendSessionID)
	cancel()
	if err != nil {
		var statusErr *opencode.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
			// Backend went idle first; treat as the race it is.
			o.OnSessionIdle(ctx, session)
			return services.NewConflictError(services.ConflictAlreadyIdle, "turn already finished")
		}
		return translateBackendError(err)
	}
	return nil
}

// Pause holds a running session without releasing the agent.
func (o *Orchestrator) Pause(ctx context.Context, sessionID string) error {
	session, err := o.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}
	if session.Status != agentsession.StatusRunning {
		return fmt.Errorf("%w: session is %s, not running", services.ErrPreconditionFailed, session.Status)
	}
	return o.setStatus(ctx, session, agentsession.StatusPaused, "")
}

// Unpause returns a paused session to running.
func (o *Orchestrator) Unpause(ctx context.Context, sessionID string) error {
	session, err := o.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}
	if session.Status != agentsession.StatusPaused {
		return fmt.Errorf("%w: session is %s, not paused", services.ErrPreconditionFailed, session.Status)
	}
	return o.setStatus(ctx, session, agentsession.StatusRunning, "")
}

// Cancel stops a session: backend cancellation is attempted best-effort
// so the abandoned turn stops consuming the backend, then the session
// finishes as cancelled regardless of the backend's answer.
func (o *Orchestrator) Cancel(ctx context.Context, sessionID string) error {
	session, err := o.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}

	if session.BackendSessionID != nil {
		if oc, err := o.backendFor(ctx, session); err == nil {
			abortCtx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
			if err := oc.Abort(abortCtx, *session.BackendSessionID); err != nil {
				o.logger.Debug("Backend abort before cancel failed",
					"session_id", sessionID, "error", err)
			}
			cancel()
		}
	}

	return o.Finish(ctx, sessionID, agentsession.StatusCancelled, "")
}

// Finish ends a session in a terminal status and frees the agent.
func (o *Orchestrator) Finish(ctx context.Context, sessionID string, status agentsession.Status, errorMessage string) error {
	switch status {
	case agentsession.StatusCompleted, agentsession.StatusFailed, agentsession.StatusCancelled:
	default:
		return services.NewValidationError("status", fmt.Sprintf("%s is not terminal", status))
	}

	session, err := o.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}

	o.mu.Lock()
	if st, ok := o.turns[sessionID]; ok {
		if st.timer != nil {
			st.timer.Stop()
		}
		delete(o.turns, sessionID)
	}
	o.mu.Unlock()

	if err := o.setStatus(ctx, session, status, errorMessage); err != nil {
		return err
	}
	if err := o.agents.SetAgentStatus(ctx, session.AgentID, agent.StatusIdle); err != nil {
		o.logger.Warn("Failed to mark agent idle", "agent_id", session.AgentID, "error", err)
	}

	if o.notifier != nil {
		if finished, err := o.sessions.GetSession(ctx, sessionID, false); err == nil {
			o.notifier.SessionFinished(ctx, finished)
		}
	}

	// Transient session events age out after the grace period.
	grace := o.cfg.EventRetentionGrace
	time.AfterFunc(grace, func() {
		cutoff := time.Now()
		if _, err := o.eventsSvc.DeleteSessionEvents(context.Background(), sessionID, cutoff); err != nil {
			o.logger.Warn("Failed to sweep session events", "session_id", sessionID, "error", err)
		}
	})
	return nil
}

// Command forwards a slash command to the backend. "/new" is handled
// locally: the current session completes and a fresh one starts for the
// same agent, because the backend binding is assign-once.
func (o *Orchestrator) Command(ctx context.Context, sessionID string, req models.CommandRequest) (*ent.AgentSession, error) {
	if req.Command == "" {
		return nil, services.NewValidationError("command", "required")
	}

	session, err := o.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return nil, err
	}
	if session.Status != agentsession.StatusRunning {
		return nil, fmt.Errorf("%w: session is %s, not running", services.ErrPreconditionFailed, session.Status)
	}

	if req.Command == "new" || req.Command == "/new" {
		return o.rotateSession(ctx, session)
	}

	oc, err := o.backendFor(ctx, session)
	if err != nil {
		return nil, err
	}
	cmdCtx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
	defer cancel()
	if err := oc.Command(cmdCtx, *session.BackendSessionID, opencode.CommandRequest{
		Command:   req.Command,
		Arguments: req.Arguments,
	}); err != nil {
		return nil, translateBackendError(err)
	}
	return nil, nil
}

// Shell forwards a shell invocation to the backend.
func (o *Orchestrator) Shell(ctx context.Context, sessionID string, req models.ShellRequest) error {
	if req.Command == "" {
		return services.NewValidationError("command", "required")
	}

	session, err := o.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}
	if session.Status != agentsession.StatusRunning {
		return fmt.Errorf("%w: session is %s, not running", services.ErrPreconditionFailed, session.Status)
	}

	oc, err := o.backendFor(ctx, session)
	if err != nil {
		return err
	}
	shellCtx, cancel := context.WithTimeout(ctx, o.cfg.RequestTimeout)
	defer cancel()
	if err := oc.Shell(shellCtx, *session.BackendSessionID, opencode.ShellRequest{Command: req.Command}); err != nil {
		return translateBackendError(err)
	}
	return nil
}

// rotateSession completes the current session and starts a replacement
// with the same agent, mode, and worktree claims released in between.
func (o *Orchestrator) rotateSession(ctx context.Context, session *ent.AgentSession) (*ent.AgentSession, error) {
	if err := o.Finish(ctx, session.ID, agentsession.StatusCompleted, ""); err != nil {
		return nil, err
	}

	replacement, err := o.sessions.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID:  session.ProjectID,
		AgentID:    session.AgentID,
		Title:      session.Title,
		Mode:       string(session.Mode),
		TicketKey:  session.TicketKey,
		BaseBranch: session.BaseBranch,
	})
	if err != nil {
		return nil, err
	}
	return o.StartSession(ctx, replacement.ID)
}

// Shutdown stops all turn timers.
func (o *Orchestrator) Shutdown() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, st := range o.turns {
		if st.timer != nil {
			st.timer.Stop()
		}
	}
	o.turns = make(map[string]*turnState)
}

// --- internals ---

// turnStateLocked returns (creating if needed) the state for a session.
// Caller holds o.mu.
func (o *Orchestrator) turnStateLocked(sessionID string) *turnState {
	st, ok := o.turns[sessionID]
	if !ok {
		st = &turnState{}
		o.turns[sessionID] = st
	}
	return st
}

// armTurnTimerLocked (re)starts the backend-silence timer. Caller holds o.mu.
func (o *Orchestrator) armTurnTimerLocked(sessionID string, st *turnState) {
	if st.timer != nil {
		st.timer.Stop()
	}
	promptID := st.pendingPromptID
	st.timer = time.AfterFunc(o.cfg.TurnTimeout, func() {
		o.onTurnTimeout(sessionID, promptID)
	})
}

// onTurnTimeout fails a session whose backend never answered a turn.
func (o *Orchestrator) onTurnTimeout(sessionID, promptID string) {
	ctx := context.Background()

	o.mu.Lock()
	st, ok := o.turns[sessionID]
	if !ok || st.pendingPromptID != promptID {
		// The turn completed while the timer fired.
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()

	o.logger.Warn("Turn timed out waiting for backend", "session_id", sessionID)
	if err := o.Finish(ctx, sessionID, agentsession.StatusFailed, "backend_silent"); err != nil {
		o.logger.Error("Failed to fail silent session", "session_id", sessionID, "error", err)
	}
}

// backendFor returns the client for the session's squad backend,
// requiring the session to be bound.
func (o *Orchestrator) backendFor(ctx context.Context, session *ent.AgentSession) (*opencode.Client, error) {
	if session.BackendSessionID == nil {
		return nil, fmt.Errorf("%w: session has no backend binding", services.ErrPreconditionFailed)
	}
	ag, err := o.agents.GetAgent(ctx, session.AgentID)
	if err != nil {
		return nil, err
	}
	oc, err := o.supervisor.EnsureRunning(ctx, ag.SquadID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrBackendUnavailable, err)
	}
	return oc, nil
}

// setStatus persists a status change and publishes it.
func (o *Orchestrator) setStatus(ctx context.Context, session *ent.AgentSession, status agentsession.Status, errorMessage string) error {
	if err := o.sessions.UpdateSessionStatus(ctx, session.ID, status, errorMessage); err != nil {
		return err
	}
	if err := o.publisher.PublishSessionStatus(ctx, events.SessionStatusPayload{
		SessionID: session.ID,
		ProjectID: session.ProjectID,
		AgentID:   session.AgentID,
		Status:    string(status),
		Error:     errorMessage,
	}); err != nil {
		o.logger.Warn("Failed to publish session status",
			"session_id", session.ID, "status", status, "error", err)
	}
	return nil
}

// failSession marks a session failed, best-effort.
func (o *Orchestrator) failSession(ctx context.Context, session *ent.AgentSession, msg string) {
	if err := o.setStatus(ctx, session, agentsession.StatusFailed, msg); err != nil {
		o.logger.Error("Failed to record session failure", "session_id", session.ID, "error", err)
	}
	if err := o.agents.SetAgentStatus(ctx, session.AgentID, agent.StatusIdle); err != nil {
		o.logger.Warn("Failed to mark agent idle", "agent_id", session.AgentID, "error", err)
	}
}

// translateBackendError maps client failures onto the service error
// taxonomy so handlers produce the right HTTP status.
func translateBackendError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", services.ErrTimeout, err)
	case errors.Is(err, opencode.ErrBackendUnavailable):
		return fmt.Errorf("%w: %v", services.ErrBackendUnavailable, err)
	default:
		return err
	}
}
