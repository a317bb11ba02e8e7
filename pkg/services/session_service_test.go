package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/pkg/models"
	testdb "github.com/buildsquads/squads/test/database"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()
	project, squad, agent := seedPipeline(t, client.Client)

	t.Run("creates pending session with build mode default", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			ProjectID: project.ID,
			AgentID:   agent.ID,
			Title:     "Fix login",
		})
		require.NoError(t, err)
		assert.Equal(t, agentsession.StatusPending, session.Status)
		assert.Equal(t, agentsession.ModeBuild, session.Mode)
		assert.Nil(t, session.BackendSessionID)
		assert.Nil(t, session.PendingPromptID)

		require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, agentsession.StatusCompleted, ""))
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{AgentID: "a"})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateSession(ctx, models.CreateSessionRequest{ProjectID: "p"})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateSession(ctx, models.CreateSessionRequest{
			ProjectID: "p", AgentID: "a", Mode: "interpretive-dance",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects second active session for the same agent", func(t *testing.T) {
		busy := seedAgent(t, client.Client, squad.ID)
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{
			ProjectID: project.ID,
			AgentID:   busy.ID,
		})
		require.NoError(t, err)

		_, err = service.CreateSession(ctx, models.CreateSessionRequest{
			ProjectID: project.ID,
			AgentID:   busy.ID,
		})
		require.Error(t, err)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ConflictAgentBusy, conflict.Kind)
	})

	t.Run("allows a new session once the old one is terminal", func(t *testing.T) {
		a := seedAgent(t, client.Client, squad.ID)
		first, err := service.CreateSession(ctx, models.CreateSessionRequest{
			ProjectID: project.ID,
			AgentID:   a.ID,
		})
		require.NoError(t, err)
		require.NoError(t, service.UpdateSessionStatus(ctx, first.ID, agentsession.StatusCompleted, ""))

		_, err = service.CreateSession(ctx, models.CreateSessionRequest{
			ProjectID: project.ID,
			AgentID:   a.ID,
		})
		assert.NoError(t, err)
	})

	t.Run("rejects a second claim on the same worktree", func(t *testing.T) {
		path := "/repo/.squads/worktrees/core/fix-login"
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{
			ProjectID:    project.ID,
			AgentID:      seedAgent(t, client.Client, squad.ID).ID,
			WorktreePath: path,
		})
		require.NoError(t, err)

		_, err = service.CreateSession(ctx, models.CreateSessionRequest{
			ProjectID:    project.ID,
			AgentID:      seedAgent(t, client.Client, squad.ID).ID,
			WorktreePath: path,
		})
		require.Error(t, err)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, ConflictWorktreeClaim, conflict.Kind)
	})
}

func TestSessionService_BindBackendSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()
	project, _, agent := seedPipeline(t, client.Client)

	session, err := service.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID: project.ID,
		AgentID:   agent.ID,
	})
	require.NoError(t, err)

	require.NoError(t, service.BindBackendSession(ctx, session.ID, "backend-1"))

	// Same id again is idempotent.
	assert.NoError(t, service.BindBackendSession(ctx, session.ID, "backend-1"))

	// A different id is a concurrent-modification error: the binding is
	// assign-once.
	err = service.BindBackendSession(ctx, session.ID, "backend-2")
	assert.ErrorIs(t, err, ErrConcurrentModification)

	got, err := service.GetSessionByBackendID(ctx, "backend-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
}

func TestSessionService_PendingPrompt(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()
	project, _, agent := seedPipeline(t, client.Client)

	session, err := service.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID: project.ID,
		AgentID:   agent.ID,
	})
	require.NoError(t, err)

	require.NoError(t, service.SetPendingPrompt(ctx, session.ID, "prompt-1"))

	// A second pending prompt conflicts.
	err = service.SetPendingPrompt(ctx, session.ID, "prompt-2")
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ConflictTurnInProgress, conflict.Kind)

	// A stale clear is a no-op.
	require.NoError(t, service.ClearPendingPrompt(ctx, session.ID, "prompt-9"))
	got, err := service.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	require.NotNil(t, got.PendingPromptID)
	assert.Equal(t, "prompt-1", *got.PendingPromptID)

	// A matching clear completes the turn.
	require.NoError(t, service.ClearPendingPrompt(ctx, session.ID, "prompt-1"))
	got, err = service.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Nil(t, got.PendingPromptID)
}

func TestSessionService_UpdateSessionStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()
	project, _, agent := seedPipeline(t, client.Client)

	session, err := service.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID: project.ID,
		AgentID:   agent.ID,
	})
	require.NoError(t, err)
	require.NoError(t, service.SetPendingPrompt(ctx, session.ID, "prompt-1"))

	require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, agentsession.StatusFailed, "backend_silent"))

	got, err := service.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusFailed, got.Status)
	assert.NotNil(t, got.FinishedAt)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "backend_silent", *got.ErrorMessage)
	// Terminal transition clears the in-flight turn.
	assert.Nil(t, got.PendingPromptID)
	assert.Greater(t, got.Version, session.Version)

	assert.ErrorIs(t,
		service.UpdateSessionStatus(ctx, uuid.New().String(), agentsession.StatusFailed, ""),
		ErrNotFound)
}

func TestSessionService_ArchiveSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()
	project, _, agent := seedPipeline(t, client.Client)

	session, err := service.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID: project.ID,
		AgentID:   agent.ID,
	})
	require.NoError(t, err)

	// Pending is not terminal yet.
	err = service.ArchiveSession(ctx, session.ID)
	assert.ErrorIs(t, err, ErrPreconditionFailed)

	require.NoError(t, service.UpdateSessionStatus(ctx, session.ID, agentsession.StatusCompleted, ""))
	require.NoError(t, service.ArchiveSession(ctx, session.ID))

	got, err := service.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusArchived, got.Status)
}

func TestSessionService_ListFinishedSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()
	project, squad, agent := seedPipeline(t, client.Client)

	finished, err := service.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID: project.ID,
		AgentID:   agent.ID,
	})
	require.NoError(t, err)
	require.NoError(t, service.UpdateSessionStatus(ctx, finished.ID, agentsession.StatusCompleted, ""))

	running, err := service.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID: project.ID,
		AgentID:   seedAgent(t, client.Client, squad.ID).ID,
	})
	require.NoError(t, err)
	require.NoError(t, service.UpdateSessionStatus(ctx, running.ID, agentsession.StatusRunning, ""))

	// Cutoff in the future: the finished session qualifies.
	got, err := service.ListFinishedSessions(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	ids := make(map[string]bool)
	for _, s := range got {
		ids[s.ID] = true
	}
	assert.True(t, ids[finished.ID])
	assert.False(t, ids[running.ID])

	// Cutoff in the past: nothing has aged out yet.
	got, err = service.ListFinishedSessions(ctx, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	for _, s := range got {
		assert.NotEqual(t, finished.ID, s.ID)
	}
}
