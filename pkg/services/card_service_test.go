package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/pkg/models"
	testdb "github.com/buildsquads/squads/test/database"
)

func TestCardService_CreateCard(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)
	squad := seedSquad(t, client.Client, project.ID)
	projectID := project.ID
	squadID := squad.ID

	t.Run("creates card at the bottom of todo", func(t *testing.T) {
		first, err := service.CreateCard(ctx, models.CreateCardRequest{
			ProjectID: projectID,
			SquadID:   squadID,
			Title:     "Add rate limiting",
			Body:      "Protect the API.",
		})
		require.NoError(t, err)
		assert.Equal(t, card.LaneTodo, first.Lane)

		second, err := service.CreateCard(ctx, models.CreateCardRequest{
			ProjectID: projectID,
			SquadID:   squadID,
			Title:     "Fix flaky test",
		})
		require.NoError(t, err)
		assert.Greater(t, second.Position, first.Position)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateCard(ctx, models.CreateCardRequest{SquadID: "s", Title: "t"})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateCard(ctx, models.CreateCardRequest{ProjectID: "p", SquadID: "s"})
		assert.True(t, IsValidationError(err))
	})
}

func TestCardService_MoveCard(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	project := seedProject(t, client.Client)
	squad := seedSquad(t, client.Client, project.ID)
	c, err := service.CreateCard(ctx, models.CreateCardRequest{
		ProjectID: project.ID,
		SquadID:   squad.ID,
		Title:     "Add rate limiting",
	})
	require.NoError(t, err)

	t.Run("moves with matching version", func(t *testing.T) {
		moved, err := service.MoveCard(ctx, c.ID, card.LanePlan, 1, c.Version)
		require.NoError(t, err)
		assert.Equal(t, card.LanePlan, moved.Lane)
		assert.Equal(t, c.Version+1, moved.Version)
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		_, err := service.MoveCard(ctx, c.ID, card.LaneBuild, 1, c.Version)
		require.Error(t, err)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ConflictStaleVersion, conflict.Kind)
	})

	t.Run("unknown card is not found", func(t *testing.T) {
		_, err := service.MoveCard(ctx, uuid.New().String(), card.LanePlan, 1, 0)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCardService_StageSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	project := seedProject(t, client.Client)
	squad := seedSquad(t, client.Client, project.ID)
	c, err := service.CreateCard(ctx, models.CreateCardRequest{
		ProjectID: project.ID,
		SquadID:   squad.ID,
		Title:     "Add rate limiting",
	})
	require.NoError(t, err)

	agentID := uuid.New().String()
	sessionID := uuid.New().String()
	require.NoError(t, service.BindStageSession(ctx, c.ID, card.LanePlan, agentID, sessionID))

	got, err := service.GetCard(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PlanAgentID)
	assert.Equal(t, agentID, *got.PlanAgentID)
	require.NotNil(t, got.PlanSessionID)
	assert.Equal(t, sessionID, *got.PlanSessionID)

	// Reverse transitions clear the stage pointers.
	require.NoError(t, service.ClearStageSession(ctx, c.ID, card.LanePlan))
	got, err = service.GetCard(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PlanAgentID)
	assert.Nil(t, got.PlanSessionID)

	// Todo and done lanes carry no stage session.
	err = service.BindStageSession(ctx, c.ID, card.LaneTodo, agentID, sessionID)
	assert.True(t, IsValidationError(err))
}

func TestCardService_Artifacts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	project := seedProject(t, client.Client)
	squad := seedSquad(t, client.Client, project.ID)
	c, err := service.CreateCard(ctx, models.CreateCardRequest{
		ProjectID: project.ID,
		SquadID:   squad.ID,
		Title:     "Add rate limiting",
	})
	require.NoError(t, err)

	plan := map[string]any{"issues": []any{map[string]any{"title": "limiter"}}}
	require.NoError(t, service.SetIssuePlan(ctx, c.ID, plan, "/p/.squads/prds/"+c.ID+".md"))

	require.NoError(t, service.SetBuildResult(ctx, c.ID,
		"core/add-rate-limiting",
		"/p/.squads/worktrees/core/add-rate-limiting",
		"squads/add-rate-limiting",
		"https://github.com/acme/widgets/pull/42"))

	review := map[string]any{"recommendation": "approve", "summary": "LGTM"}
	reviewSession := uuid.New().String()
	require.NoError(t, service.SetAIReview(ctx, c.ID, review, reviewSession))

	got, err := service.GetCard(ctx, c.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.IssuePlan["issues"])
	assert.Equal(t, "https://github.com/acme/widgets/pull/42", got.PrURL)
	assert.Equal(t, "squads/add-rate-limiting", got.BuildBranch)
	assert.Equal(t, "approve", got.AiReview["recommendation"])
	// AI review landing parks the card for a human verdict.
	require.NotNil(t, got.HumanReviewStatus)
	assert.Equal(t, card.HumanReviewStatusPending, *got.HumanReviewStatus)

	found, err := service.FindCardByWorktreePath(ctx, "/p/.squads/worktrees/core/add-rate-limiting")
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)

	_, err = service.FindCardByWorktreePath(ctx, "/p/.squads/worktrees/elsewhere")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardService_HumanReview(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	project := seedProject(t, client.Client)
	squad := seedSquad(t, client.Client, project.ID)
	c, err := service.CreateCard(ctx, models.CreateCardRequest{
		ProjectID: project.ID,
		SquadID:   squad.ID,
		Title:     "Add rate limiting",
	})
	require.NoError(t, err)

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := service.SetHumanReview(ctx, c.ID, models.HumanReviewRequest{
			Status: "maybe", Version: c.Version,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("records approval with version check", func(t *testing.T) {
		updated, err := service.SetHumanReview(ctx, c.ID, models.HumanReviewRequest{
			Status:   string(card.HumanReviewStatusApproved),
			Feedback: "ship it",
			Version:  c.Version,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.HumanReviewStatus)
		assert.Equal(t, card.HumanReviewStatusApproved, *updated.HumanReviewStatus)
		assert.NotNil(t, updated.HumanReviewedAt)

		// The version advanced; replaying the old one conflicts.
		_, err = service.SetHumanReview(ctx, c.ID, models.HumanReviewRequest{
			Status:  string(card.HumanReviewStatusChangesRequested),
			Version: c.Version,
		})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ConflictStaleVersion, conflict.Kind)
	})
}

func TestCardService_ApproveOverrideNeedsFeedback(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()

	project := seedProject(t, client.Client)
	squad := seedSquad(t, client.Client, project.ID)
	c, err := service.CreateCard(ctx, models.CreateCardRequest{
		ProjectID: project.ID,
		SquadID:   squad.ID,
		Title:     "Harden session tokens",
	})
	require.NoError(t, err)

	review := map[string]any{"recommendation": "request_changes", "summary": "token TTL too long"}
	require.NoError(t, service.SetAIReview(ctx, c.ID, review, uuid.New().String()))
	c, err = service.GetCard(ctx, c.ID)
	require.NoError(t, err)

	t.Run("approve without feedback is refused", func(t *testing.T) {
		_, err := service.SetHumanReview(ctx, c.ID, models.HumanReviewRequest{
			Status:  string(card.HumanReviewStatusApproved),
			Version: c.Version,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("approve with feedback overrides", func(t *testing.T) {
		updated, err := service.SetHumanReview(ctx, c.ID, models.HumanReviewRequest{
			Status:   string(card.HumanReviewStatusApproved),
			Feedback: "TTL is fine, ops rotates tokens daily",
			Version:  c.Version,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.HumanReviewStatus)
		assert.Equal(t, card.HumanReviewStatusApproved, *updated.HumanReviewStatus)
	})

	t.Run("comment_only review approves without feedback", func(t *testing.T) {
		c2, err := service.CreateCard(ctx, models.CreateCardRequest{
			ProjectID: project.ID,
			SquadID:   squad.ID,
			Title:     "Docs touch-up",
		})
		require.NoError(t, err)
		require.NoError(t, service.SetAIReview(ctx, c2.ID,
			map[string]any{"recommendation": "comment_only"}, uuid.New().String()))
		c2, err = service.GetCard(ctx, c2.ID)
		require.NoError(t, err)

		updated, err := service.SetHumanReview(ctx, c2.ID, models.HumanReviewRequest{
			Status:  string(card.HumanReviewStatusApproved),
			Version: c2.Version,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.HumanReviewStatus)
		assert.Equal(t, card.HumanReviewStatusApproved, *updated.HumanReviewStatus)
	})
}

func TestCardService_LaneAssignments(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCardService(client.Client)
	ctx := context.Background()
	project := seedProject(t, client.Client)
	squad := seedSquad(t, client.Client, project.ID)
	projectID := project.ID
	squadID := squad.ID

	agentID := uuid.New().String()
	la, err := service.AssignLane(ctx, projectID, squadID, models.AssignLaneRequest{
		Lane:    models.LanePlan,
		AgentID: &agentID,
	})
	require.NoError(t, err)
	require.NotNil(t, la.AgentID)
	assert.Equal(t, agentID, *la.AgentID)

	// Re-assigning the same lane updates in place.
	other := uuid.New().String()
	la, err = service.AssignLane(ctx, projectID, squadID, models.AssignLaneRequest{
		Lane:    models.LanePlan,
		AgentID: &other,
	})
	require.NoError(t, err)
	assert.Equal(t, other, *la.AgentID)

	// Clearing leaves the lane unpinned.
	empty := ""
	la, err = service.AssignLane(ctx, projectID, squadID, models.AssignLaneRequest{
		Lane:    models.LanePlan,
		AgentID: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, la.AgentID)

	// Done is not a stage lane.
	_, err = service.AssignLane(ctx, projectID, squadID, models.AssignLaneRequest{Lane: models.LaneDone})
	assert.True(t, IsValidationError(err))

	assignments, err := service.GetLaneAssignments(ctx, projectID, squadID)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}
