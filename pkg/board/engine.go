// Package board advances cards through the todo → plan → build →
// review → done pipeline by running stage sessions on squad backends
// and extracting fenced-JSON artifacts from their transcripts.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/pkg/config"
	"github.com/buildsquads/squads/pkg/events"
	"github.com/buildsquads/squads/pkg/models"
	"github.com/buildsquads/squads/pkg/orchestrator"
	"github.com/buildsquads/squads/pkg/services"
)

// laneRoles maps each stage lane to the preferred agent role.
var laneRoles = map[card.Lane]string{
	card.LanePlan:   "architect",
	card.LaneBuild:  "builder",
	card.LaneReview: "reviewer",
}

// Notifier is told about board milestones that a human should see.
type Notifier interface {
	CardPendingReview(ctx context.Context, c *ent.Card)
}

// Engine drives lane transitions and stage sessions. Operators move
// cards through the API; the engine enforces preconditions, starts the
// stage session on a forward move, and harvests artifacts on poll.
type Engine struct {
	cards       *services.CardService
	agents      *services.AgentService
	sessions    *services.SessionService
	transcripts *services.TranscriptService
	projects    *services.ProjectService
	squads      *services.SquadService
	orch        *orchestrator.Orchestrator
	publisher   *events.Publisher
	notifier    Notifier
	cfg         *config.RuntimeConfig

	mu          sync.Mutex
	prRequested map[string]bool // card_id → create_pr prompt sent

	logger *slog.Logger
}

// NewEngine creates a board engine. notifier may be nil.
func NewEngine(cards *services.CardService, agents *services.AgentService, sessions *services.SessionService, transcripts *services.TranscriptService, projects *services.ProjectService, squads *services.SquadService, orch *orchestrator.Orchestrator, publisher *events.Publisher, notifier Notifier, cfg *config.RuntimeConfig) *Engine {
	return &Engine{
		cards:       cards,
		agents:      agents,
		sessions:    sessions,
		transcripts: transcripts,
		projects:    projects,
		squads:      squads,
		orch:        orch,
		publisher:   publisher,
		notifier:    notifier,
		cfg:         cfg,
		prRequested: make(map[string]bool),
		logger:      slog.With("component", "board"),
	}
}

// MoveCard applies an operator lane move. Forward moves advance exactly
// one lane and must satisfy the target lane's precondition; reverse
// moves are always allowed and reset the stage pointers of every lane
// above the destination, keeping transcripts for audit.
func (e *Engine) MoveCard(ctx context.Context, cardID string, req models.MoveCardRequest, actor string) (*ent.Card, error) {
	toOrder, ok := models.LaneOrder[req.ToLane]
	if !ok {
		return nil, services.NewValidationError("to_lane", fmt.Sprintf("unknown lane %q", req.ToLane))
	}

	c, err := e.cards.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	fromLane := string(c.Lane)
	fromOrder := models.LaneOrder[fromLane]
	toLane := card.Lane(req.ToLane)

	switch {
	case toOrder == fromOrder:
		// Reposition within the lane.
	case toOrder == fromOrder+1:
		if err := e.checkPrecondition(c, toLane); err != nil {
			return nil, err
		}
		if toLane == card.LaneBuild {
			if err := e.claimBuildWorktree(ctx, c); err != nil {
				return nil, err
			}
		}
	case toOrder < fromOrder:
		for lane, order := range models.LaneOrder {
			if order > toOrder && order <= fromOrder {
				if err := e.clearStage(ctx, c.ID, card.Lane(lane)); err != nil {
					return nil, err
				}
			}
		}
	default:
		return nil, services.NewConflictError(services.ConflictLaneBlocked,
			fmt.Sprintf("cannot skip from %s to %s", fromLane, req.ToLane))
	}

	moved, err := e.cards.MoveCard(ctx, cardID, toLane, req.Position, req.Version)
	if err != nil {
		return nil, err
	}

	e.publishCard(ctx, events.KindCardMoved, moved, fromLane, actor)

	if toOrder == fromOrder+1 {
		if _, ok := laneRoles[toLane]; ok {
			go e.startStage(context.Background(), moved.ID, toLane)
		}
	}
	return moved, nil
}

// checkPrecondition verifies the artifact gate for entering a lane.
func (e *Engine) checkPrecondition(c *ent.Card, toLane card.Lane) error {
	switch toLane {
	case card.LanePlan:
		return nil
	case card.LaneBuild:
		issues, _ := c.IssuePlan["issues"].([]any)
		if len(issues) == 0 {
			return services.NewConflictError(services.ConflictLaneBlocked,
				"card has no issue plan; complete the plan stage first")
		}
	case card.LaneReview:
		if c.PrURL == "" {
			return services.NewConflictError(services.ConflictLaneBlocked,
				"card has no pull request; complete the build stage first")
		}
	case card.LaneDone:
		if c.HumanReviewStatus == nil || *c.HumanReviewStatus != card.HumanReviewStatusApproved {
			return services.NewConflictError(services.ConflictLaneBlocked,
				"card is not approved by human review")
		}
	}
	return nil
}

// claimBuildWorktree provisions the card's worktree before the lane
// move so a claim conflict surfaces to the operator synchronously.
func (e *Engine) claimBuildWorktree(ctx context.Context, c *ent.Card) error {
	project, err := e.projects.GetProject(ctx, c.ProjectID, false)
	if err != nil {
		return err
	}
	squad, err := e.squads.GetSquad(ctx, c.SquadID, false)
	if err != nil {
		return err
	}
	spec, err := e.provisionWorktree(ctx, project, squad, c)
	if err != nil {
		return err
	}
	return e.cards.SetBuildResult(ctx, c.ID, spec.Name, spec.Path, spec.Branch, "")
}

// clearStage resets a lane's session pointer and in-memory state.
func (e *Engine) clearStage(ctx context.Context, cardID string, lane card.Lane) error {
	if _, ok := laneRoles[lane]; !ok {
		return nil
	}
	if lane == card.LaneBuild {
		e.mu.Lock()
		delete(e.prRequested, cardID)
		e.mu.Unlock()
	}
	return e.cards.ClearStageSession(ctx, cardID, lane)
}

// startStage allocates an agent, starts a session, and sends the stage
// prompt. Failures leave the card in the lane with no session bound;
// the operator re-triggers by moving the card back and forward again.
func (e *Engine) startStage(ctx context.Context, cardID string, lane card.Lane) {
	c, err := e.cards.GetCard(ctx, cardID)
	if err != nil {
		e.logger.Error("Stage start lost its card", "card_id", cardID, "error", err)
		return
	}

	ag, err := e.allocateAgent(ctx, c, lane)
	if err != nil {
		e.logger.Warn("No agent available for stage",
			"card_id", cardID, "lane", lane, "error", err)
		return
	}

	prompt, err := e.stagePrompt(ctx, c, lane)
	if err != nil {
		e.logger.Error("Failed to render stage prompt", "card_id", cardID, "lane", lane, "error", err)
		return
	}

	mode := "build"
	if lane == card.LanePlan {
		mode = "plan"
	}
	session, err := e.sessions.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID:    c.ProjectID,
		AgentID:      ag.ID,
		Title:        fmt.Sprintf("%s: %s", lane, c.Title),
		Mode:         mode,
		WorktreePath: c.BuildWorktreePath,
		Branch:       c.BuildBranch,
		BaseBranch:   c.BaseBranch,
	})
	if err != nil {
		e.logger.Warn("Failed to create stage session", "card_id", cardID, "lane", lane, "error", err)
		return
	}
	if _, err := e.orch.StartSession(ctx, session.ID); err != nil {
		e.logger.Error("Failed to start stage session",
			"card_id", cardID, "session_id", session.ID, "error", err)
		return
	}
	if err := e.cards.BindStageSession(ctx, cardID, lane, ag.ID, session.ID); err != nil {
		e.logger.Error("Failed to bind stage session", "card_id", cardID, "error", err)
		return
	}

	if err := e.orch.Prompt(ctx, session.ID, models.PromptRequest{Text: prompt}); err != nil {
		e.logger.Error("Failed to send stage prompt",
			"card_id", cardID, "session_id", session.ID, "error", err)
	}
}

// allocateAgent resolves the lane assignment, falling back to any idle
// agent with the lane's preferred role, then any idle agent at all.
func (e *Engine) allocateAgent(ctx context.Context, c *ent.Card, lane card.Lane) (*ent.Agent, error) {
	assignments, err := e.cards.GetLaneAssignments(ctx, c.ProjectID, c.SquadID)
	if err != nil {
		return nil, err
	}
	for _, la := range assignments {
		if string(la.Lane) == string(lane) && la.AgentID != nil && *la.AgentID != "" {
			ag, err := e.agents.GetAgent(ctx, *la.AgentID)
			if err == nil && ag.Status == "idle" {
				return ag, nil
			}
		}
	}
	return e.agents.FindIdleAgent(ctx, c.SquadID, laneRoles[lane])
}

func (e *Engine) stagePrompt(ctx context.Context, c *ent.Card, lane card.Lane) (string, error) {
	switch lane {
	case card.LanePlan:
		project, err := e.projects.GetProject(ctx, c.ProjectID, false)
		if err != nil {
			return "", err
		}
		return RenderPlanPrompt(c, prdPathFor(project, c.ID))
	case card.LaneBuild:
		return RenderBuildPrompt(c, c.BuildWorktreePath, c.BuildBranch, c.BaseBranch)
	case card.LaneReview:
		return RenderReviewPrompt(c)
	}
	return "", fmt.Errorf("lane %s has no prompt", lane)
}

// Run polls stage sessions until the context ends, harvesting artifacts
// as they appear in the transcripts.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.BoardPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.sweep(ctx)
		}
	}
}

// sweep checks every card with an in-flight stage for a finished artifact.
func (e *Engine) sweep(ctx context.Context) {
	for _, lane := range []card.Lane{card.LanePlan, card.LaneBuild, card.LaneReview} {
		resp, err := e.cards.ListCards(ctx, models.CardFilters{Lane: string(lane)})
		if err != nil {
			e.logger.Warn("Board sweep failed to list cards", "lane", lane, "error", err)
			continue
		}
		for _, c := range resp.Cards {
			if err := e.harvest(ctx, c, lane); err != nil {
				e.logger.Warn("Failed to harvest stage artifact",
					"card_id", c.ID, "lane", lane, "error", err)
			}
		}
	}
}

// harvest extracts the stage artifact from the card's stage session
// transcript once it appears, stores it, and completes the session.
func (e *Engine) harvest(ctx context.Context, c *ent.Card, lane card.Lane) error {
	sessionID := stageSessionID(c, lane)
	if sessionID == "" {
		return nil
	}
	if stageArtifactDone(c, lane) {
		return nil
	}

	session, err := e.sessions.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}
	if session.Status != agentsession.StatusRunning &&
		session.Status != agentsession.StatusCompleted {
		return nil
	}
	// Mid-turn transcripts are partial; wait for the backend to go idle.
	if session.Status == agentsession.StatusRunning && session.PendingPromptID != nil {
		return nil
	}

	text, err := e.assistantText(ctx, sessionID)
	if err != nil {
		return err
	}

	switch lane {
	case card.LanePlan:
		plan, ok := ExtractIssuePlan(text)
		if !ok {
			return nil
		}
		return e.finishPlanStage(ctx, c, session, plan)
	case card.LaneBuild:
		result, ok := ExtractBuildResult(text)
		if !ok {
			return e.maybeRequestPR(ctx, c, session)
		}
		return e.finishBuildStage(ctx, c, session, result)
	case card.LaneReview:
		review, ok := ExtractReview(text)
		if !ok {
			return nil
		}
		return e.finishReviewStage(ctx, c, session, review)
	}
	return nil
}

func (e *Engine) finishPlanStage(ctx context.Context, c *ent.Card, session *ent.AgentSession, plan map[string]any) error {
	project, err := e.projects.GetProject(ctx, c.ProjectID, false)
	if err != nil {
		return err
	}
	prdPath, err := ensurePRD(project, c)
	if err != nil {
		return err
	}
	if err := e.cards.SetIssuePlan(ctx, c.ID, plan, prdPath); err != nil {
		return err
	}
	e.completeStageSession(ctx, session)
	e.publishCard(ctx, events.KindCardUpdated, c, "", "board")
	issues, _ := plan["issues"].([]any)
	e.logger.Info("Plan stage complete", "card_id", c.ID, "issues", len(issues))
	return nil
}

func (e *Engine) finishBuildStage(ctx context.Context, c *ent.Card, session *ent.AgentSession, result map[string]any) error {
	prURL, _ := result["pr_url"].(string)
	if err := e.cards.SetBuildResult(ctx, c.ID, "", "", "", prURL); err != nil {
		return err
	}
	e.mu.Lock()
	delete(e.prRequested, c.ID)
	e.mu.Unlock()
	e.completeStageSession(ctx, session)
	e.publishCard(ctx, events.KindCardUpdated, c, "", "board")
	e.logger.Info("Build stage complete", "card_id", c.ID, "pr_url", prURL)
	return nil
}

func (e *Engine) finishReviewStage(ctx context.Context, c *ent.Card, session *ent.AgentSession, review map[string]any) error {
	if err := e.cards.SetAIReview(ctx, c.ID, review, session.ID); err != nil {
		return err
	}
	e.completeStageSession(ctx, session)
	e.publishCard(ctx, events.KindCardUpdated, c, "", "board")
	e.logger.Info("Review stage complete", "card_id", c.ID,
		"recommendation", review["recommendation"])

	if e.notifier != nil {
		fresh, err := e.cards.GetCard(ctx, c.ID)
		if err == nil {
			e.notifier.CardPendingReview(ctx, fresh)
		}
	}
	return nil
}

// maybeRequestPR sends the create_pr follow-up once, after the build
// agent finishes implementing but before any pr_url artifact exists.
func (e *Engine) maybeRequestPR(ctx context.Context, c *ent.Card, session *ent.AgentSession) error {
	if session.Status != agentsession.StatusRunning || session.PendingPromptID != nil {
		return nil
	}

	e.mu.Lock()
	if e.prRequested[c.ID] {
		e.mu.Unlock()
		return nil
	}
	e.prRequested[c.ID] = true
	e.mu.Unlock()

	prompt, err := RenderCreatePRPrompt(c)
	if err != nil {
		return err
	}
	if err := e.orch.Prompt(ctx, session.ID, models.PromptRequest{Text: prompt}); err != nil {
		e.mu.Lock()
		delete(e.prRequested, c.ID)
		e.mu.Unlock()
		return err
	}
	e.logger.Debug("Requested pull request creation", "card_id", c.ID, "session_id", session.ID)
	return nil
}

// completeStageSession finishes a stage session whose artifact landed.
func (e *Engine) completeStageSession(ctx context.Context, session *ent.AgentSession) {
	if session.Status == agentsession.StatusCompleted {
		return
	}
	if err := e.orch.Finish(ctx, session.ID, agentsession.StatusCompleted, ""); err != nil {
		e.logger.Warn("Failed to complete stage session",
			"session_id", session.ID, "error", err)
	}
}

func (e *Engine) publishCard(ctx context.Context, kind string, c *ent.Card, fromLane, actor string) {
	if err := e.publisher.PublishCard(ctx, kind, events.CardPayload{
		ProjectID: c.ProjectID,
		SquadID:   c.SquadID,
		CardID:    c.ID,
		Lane:      string(c.Lane),
		FromLane:  fromLane,
		Position:  c.Position,
		Version:   c.Version,
		Actor:     actor,
	}); err != nil {
		e.logger.Warn("Failed to publish card event", "card_id", c.ID, "error", err)
	}
}

func stageSessionID(c *ent.Card, lane card.Lane) string {
	var id *string
	switch lane {
	case card.LanePlan:
		id = c.PlanSessionID
	case card.LaneBuild:
		id = c.BuildSessionID
	case card.LaneReview:
		id = c.ReviewSessionID
	}
	if id == nil {
		return ""
	}
	return *id
}

// stageArtifactDone reports whether the lane's artifact already landed.
func stageArtifactDone(c *ent.Card, lane card.Lane) bool {
	switch lane {
	case card.LanePlan:
		issues, _ := c.IssuePlan["issues"].([]any)
		return len(issues) > 0
	case card.LaneBuild:
		return c.PrURL != ""
	case card.LaneReview:
		return len(c.AiReview) != 0
	}
	return true
}

// assistantText concatenates the assistant messages of a transcript.
func (e *Engine) assistantText(ctx context.Context, sessionID string) (string, error) {
	var out []byte
	offset := 0
	for {
		page, err := e.transcripts.GetTranscript(ctx, sessionID, 200, offset)
		if err != nil {
			return "", err
		}
		for _, entry := range page.Entries {
			if entry.Role != "assistant" {
				continue
			}
			msg, err := models.MessageFromPayload(entry.Payload)
			if err != nil {
				continue
			}
			if text := msg.TextContent(); text != "" {
				out = append(out, text...)
				out = append(out, '\n')
			}
		}
		offset += len(page.Entries)
		if offset >= page.TotalCount || len(page.Entries) == 0 {
			break
		}
	}
	return string(out), nil
}
