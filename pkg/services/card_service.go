package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/ent/laneassignment"
	"github.com/buildsquads/squads/pkg/models"
)

// CardService manages card rows, lane assignments, and stage artifacts.
// Lane transition rules live in the board engine; this service applies
// mechanical writes with optimistic concurrency on the card version.
type CardService struct {
	client *ent.Client
}

// NewCardService creates a new CardService
func NewCardService(client *ent.Client) *CardService {
	return &CardService{client: client}
}

// CreateCard creates a card in the todo lane, appended after the lane's
// current cards.
func (s *CardService) CreateCard(httpCtx context.Context, req models.CreateCardRequest) (*ent.Card, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.SquadID == "" {
		return nil, NewValidationError("squad_id", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	maxPos, err := s.maxPosition(ctx, req.ProjectID, req.SquadID, card.LaneTodo)
	if err != nil {
		return nil, err
	}

	builder := s.client.Card.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetSquadID(req.SquadID).
		SetLane(card.LaneTodo).
		SetPosition(maxPos + 1).
		SetTitle(req.Title).
		SetBody(req.Body)
	if req.BaseBranch != "" {
		builder.SetBaseBranch(req.BaseBranch)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project or squad", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return c, nil
}

// GetCard retrieves a card by ID
func (s *CardService) GetCard(ctx context.Context, cardID string) (*ent.Card, error) {
	c, err := s.client.Card.Get(ctx, cardID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return c, nil
}

// ListCards lists cards with filtering and pagination
func (s *CardService) ListCards(ctx context.Context, filters models.CardFilters) (*models.CardListResponse, error) {
	query := s.client.Card.Query()
	if filters.ProjectID != "" {
		query = query.Where(card.ProjectIDEQ(filters.ProjectID))
	}
	if filters.SquadID != "" {
		query = query.Where(card.SquadIDEQ(filters.SquadID))
	}
	if filters.Lane != "" {
		query = query.Where(card.LaneEQ(card.Lane(filters.Lane)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	cards, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(card.FieldLane), ent.Asc(card.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return &models.CardListResponse{
		Cards:      cards,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// GetBoard returns a squad's cards grouped by lane in position order
func (s *CardService) GetBoard(ctx context.Context, squadID string) (*models.BoardResponse, error) {
	cards, err := s.client.Card.Query().
		Where(card.SquadIDEQ(squadID)).
		Order(ent.Asc(card.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	lanes := map[string][]*ent.Card{
		models.LaneTodo:   {},
		models.LanePlan:   {},
		models.LaneBuild:  {},
		models.LaneReview: {},
		models.LaneDone:   {},
	}
	for _, c := range cards {
		lanes[string(c.Lane)] = append(lanes[string(c.Lane)], c)
	}

	return &models.BoardResponse{SquadID: squadID, Lanes: lanes}, nil
}

// UpdateCard updates the mutable card fields
func (s *CardService) UpdateCard(ctx context.Context, cardID string, req models.UpdateCardRequest) (*ent.Card, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Card.UpdateOneID(cardID)
	if req.Title != nil {
		if *req.Title == "" {
			return nil, NewValidationError("title", "must not be empty")
		}
		update.SetTitle(*req.Title)
	}
	if req.Body != nil {
		update.SetBody(*req.Body)
	}
	if req.BaseBranch != nil {
		update.SetBaseBranch(*req.BaseBranch)
	}
	if req.PrdPath != nil {
		update.SetPrdPath(*req.PrdPath)
	}
	if req.Position != nil {
		update.SetPosition(*req.Position)
	}

	c, err := update.AddVersion(1).Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	return c, nil
}

// DeleteCard removes a card
func (s *CardService) DeleteCard(ctx context.Context, cardID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Card.DeleteOneID(cardID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

// MoveCard applies a lane transition with optimistic concurrency. A
// stale version loses with a stale_version conflict. Transition legality
// and stage preconditions are checked by the caller.
func (s *CardService) MoveCard(ctx context.Context, cardID string, toLane card.Lane, position, version int) (*ent.Card, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Card.Update().
		Where(
			card.IDEQ(cardID),
			card.VersionEQ(version),
		).
		SetLane(toLane).
		SetPosition(position).
		AddVersion(1).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to move card: %w", err)
	}
	if count == 0 {
		exists, err := s.client.Card.Query().Where(card.IDEQ(cardID)).Exist(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to check card: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, NewConflictError(ConflictStaleVersion, "card was modified concurrently")
	}

	c, err := s.client.Card.Get(writeCtx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch card: %w", err)
	}
	return c, nil
}

// BindStageSession records the agent and session driving a card's stage
func (s *CardService) BindStageSession(ctx context.Context, cardID string, lane card.Lane, agentID, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Card.UpdateOneID(cardID)
	switch lane {
	case card.LanePlan:
		update.SetPlanAgentID(agentID).SetPlanSessionID(sessionID)
	case card.LaneBuild:
		update.SetBuildAgentID(agentID).SetBuildSessionID(sessionID)
	case card.LaneReview:
		update.SetReviewAgentID(agentID).SetReviewSessionID(sessionID)
	default:
		return NewValidationError("lane", fmt.Sprintf("lane %s has no stage session", lane))
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to bind stage session: %w", err)
	}
	return nil
}

// ClearStageSession drops a lane's agent and session pointers. Used on
// reverse transitions; the transcript itself is preserved for audit.
func (s *CardService) ClearStageSession(ctx context.Context, cardID string, lane card.Lane) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Card.UpdateOneID(cardID)
	switch lane {
	case card.LanePlan:
		update.ClearPlanAgentID().ClearPlanSessionID()
	case card.LaneBuild:
		update.ClearBuildAgentID().ClearBuildSessionID()
	case card.LaneReview:
		update.ClearReviewAgentID().ClearReviewSessionID()
	default:
		return NewValidationError("lane", fmt.Sprintf("lane %s has no stage session", lane))
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to clear stage session: %w", err)
	}
	return nil
}

// FindCardByWorktreePath returns the card holding a worktree claim, or
// ErrNotFound when the path is unclaimed.
func (s *CardService) FindCardByWorktreePath(ctx context.Context, path string) (*ent.Card, error) {
	c, err := s.client.Card.Query().
		Where(card.BuildWorktreePathEQ(path)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query worktree claim: %w", err)
	}
	return c, nil
}

// SetIssuePlan stores the extracted plan artifact and the PRD location
func (s *CardService) SetIssuePlan(ctx context.Context, cardID string, plan map[string]any, prdPath string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Card.UpdateOneID(cardID).
		SetIssuePlan(plan)
	if prdPath != "" {
		update.SetPrdPath(prdPath)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set issue plan: %w", err)
	}
	return nil
}

// SetBuildResult stores the build worktree identifiers and PR URL
func (s *CardService) SetBuildResult(ctx context.Context, cardID, worktreeName, worktreePath, branch, prURL string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Card.UpdateOneID(cardID)
	if worktreeName != "" {
		update.SetBuildWorktreeName(worktreeName)
	}
	if worktreePath != "" {
		update.SetBuildWorktreePath(worktreePath)
	}
	if branch != "" {
		update.SetBuildBranch(branch)
	}
	if prURL != "" {
		update.SetPrURL(prURL)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set build result: %w", err)
	}
	return nil
}

// SetAIReview stores the extracted review artifact and marks the card
// pending human review.
func (s *CardService) SetAIReview(ctx context.Context, cardID string, review map[string]any, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Card.UpdateOneID(cardID).
		SetAiReview(review).
		SetAiReviewSessionID(sessionID).
		SetHumanReviewStatus(card.HumanReviewStatusPending).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set ai review: %w", err)
	}
	return nil
}

// SetHumanReview records the human verdict with optimistic concurrency.
// Approving against an AI review that did not recommend approve or
// comment_only is an operator override and requires feedback.
func (s *CardService) SetHumanReview(ctx context.Context, cardID string, req models.HumanReviewRequest) (*ent.Card, error) {
	if req.Status != string(card.HumanReviewStatusApproved) &&
		req.Status != string(card.HumanReviewStatusChangesRequested) {
		return nil, NewValidationError("status", "must be approved or changes_requested")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if req.Status == string(card.HumanReviewStatusApproved) {
		existing, err := s.client.Card.Get(writeCtx, cardID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load card: %w", err)
		}
		rec, _ := existing.AiReview["recommendation"].(string)
		if rec != "approve" && rec != "comment_only" && strings.TrimSpace(req.Feedback) == "" {
			return nil, NewValidationError("feedback",
				"feedback is required to approve over the ai review")
		}
	}

	count, err := s.client.Card.Update().
		Where(
			card.IDEQ(cardID),
			card.VersionEQ(req.Version),
		).
		SetHumanReviewStatus(card.HumanReviewStatus(req.Status)).
		SetHumanReviewFeedback(req.Feedback).
		SetHumanReviewedAt(time.Now()).
		AddVersion(1).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record human review: %w", err)
	}
	if count == 0 {
		exists, err := s.client.Card.Query().Where(card.IDEQ(cardID)).Exist(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to check card: %w", err)
		}
		if !exists {
			return nil, ErrNotFound
		}
		return nil, NewConflictError(ConflictStaleVersion, "card was modified concurrently")
	}

	c, err := s.client.Card.Get(writeCtx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch card: %w", err)
	}
	return c, nil
}

// AssignLane pins a lane of a squad's board to an agent, or clears the
// assignment when agentID is nil.
func (s *CardService) AssignLane(ctx context.Context, projectID, squadID string, req models.AssignLaneRequest) (*ent.LaneAssignment, error) {
	if _, ok := models.LaneOrder[req.Lane]; !ok || req.Lane == models.LaneDone {
		return nil, NewValidationError("lane", fmt.Sprintf("lane %q is not assignable", req.Lane))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.LaneAssignment.Query().
		Where(
			laneassignment.ProjectIDEQ(projectID),
			laneassignment.SquadIDEQ(squadID),
			laneassignment.LaneEQ(laneassignment.Lane(req.Lane)),
		).
		Only(writeCtx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query lane assignment: %w", err)
	}

	if existing != nil {
		update := existing.Update()
		if req.AgentID == nil || *req.AgentID == "" {
			update.ClearAgentID()
		} else {
			update.SetAgentID(*req.AgentID)
		}
		la, err := update.Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to update lane assignment: %w", err)
		}
		return la, nil
	}

	builder := s.client.LaneAssignment.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetSquadID(squadID).
		SetLane(laneassignment.Lane(req.Lane))
	if req.AgentID != nil && *req.AgentID != "" {
		builder.SetAgentID(*req.AgentID)
	}

	la, err := builder.Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create lane assignment: %w", err)
	}
	return la, nil
}

// GetLaneAssignments returns a squad's lane assignments
func (s *CardService) GetLaneAssignments(ctx context.Context, projectID, squadID string) ([]*ent.LaneAssignment, error) {
	assignments, err := s.client.LaneAssignment.Query().
		Where(
			laneassignment.ProjectIDEQ(projectID),
			laneassignment.SquadIDEQ(squadID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lane assignments: %w", err)
	}
	return assignments, nil
}

func (s *CardService) maxPosition(ctx context.Context, projectID, squadID string, lane card.Lane) (int, error) {
	last, err := s.client.Card.Query().
		Where(
			card.ProjectIDEQ(projectID),
			card.SquadIDEQ(squadID),
			card.LaneEQ(lane),
		).
		Order(ent.Desc(card.FieldPosition)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return -1, nil
		}
		return 0, fmt.Errorf("failed to query lane positions: %w", err)
	}
	return last.Position, nil
}
