package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/event"
	"github.com/buildsquads/squads/pkg/config"
	"github.com/buildsquads/squads/pkg/models"
	"github.com/buildsquads/squads/pkg/services"
	testdb "github.com/buildsquads/squads/test/database"
)

// seedAgent creates a project/squad/agent chain and returns the ids the
// session rows need.
func seedAgent(t *testing.T, client *ent.Client) (projectID, agentID string) {
	t.Helper()
	ctx := context.Background()
	project, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetName("widgets").
		SetPath("/tmp/widgets-" + uuid.New().String()).
		Save(ctx)
	require.NoError(t, err)
	squad, err := client.Squad.Create().
		SetID(uuid.New().String()).
		SetProjectID(project.ID).
		SetName("core-platform").
		Save(ctx)
	require.NoError(t, err)
	suffix := uuid.New().String()[:8]
	agent, err := client.Agent.Create().
		SetID(uuid.New().String()).
		SetSquadID(squad.ID).
		SetName("Agent " + suffix).
		SetSlug("agent-" + suffix).
		SetRole("builder").
		Save(ctx)
	require.NoError(t, err)
	return project.ID, agent.ID
}

func TestSweepDeletesEventsOfFinishedSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	events := services.NewEventService(client.Client)
	ctx := context.Background()

	projectID, agentID := seedAgent(t, client.Client)
	finished, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID: projectID,
		AgentID:   agentID,
	})
	require.NoError(t, err)
	require.NoError(t, sessions.UpdateSessionStatus(ctx, finished.ID, agentsession.StatusCompleted, ""))

	activeProject, activeAgent := seedAgent(t, client.Client)
	active, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID: activeProject,
		AgentID:   activeAgent,
	})
	require.NoError(t, err)
	require.NoError(t, sessions.UpdateSessionStatus(ctx, active.ID, agentsession.StatusRunning, ""))

	_, err = events.RecordEvent(ctx, "session:status", "session:"+finished.ID,
		projectID, finished.ID, "", map[string]any{"status": "x"})
	require.NoError(t, err)
	_, err = events.RecordEvent(ctx, "session:status", "session:"+active.ID,
		activeProject, active.ID, "", map[string]any{"status": "x"})
	require.NoError(t, err)

	// Zero grace: the finished session aged out the moment it finished.
	svc := NewService(&config.RuntimeConfig{EventRetentionGrace: 0}, sessions, events)
	svc.Sweep(ctx)

	remaining, err := client.Event.Query().
		Where(event.SessionIDEQ(finished.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	kept, err := client.Event.Query().
		Where(event.SessionIDEQ(active.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)
}

func TestSweepHonorsGraceWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	events := services.NewEventService(client.Client)
	ctx := context.Background()

	projectID, agentID := seedAgent(t, client.Client)
	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		ProjectID: projectID,
		AgentID:   agentID,
	})
	require.NoError(t, err)
	require.NoError(t, sessions.UpdateSessionStatus(ctx, session.ID, agentsession.StatusCompleted, ""))

	_, err = events.RecordEvent(ctx, "session:status", "session:"+session.ID,
		projectID, session.ID, "", map[string]any{"status": "completed"})
	require.NoError(t, err)

	// The session finished moments ago; a long grace keeps its events.
	svc := NewService(&config.RuntimeConfig{EventRetentionGrace: time.Hour}, sessions, events)
	svc.Sweep(ctx)

	kept, err := client.Event.Query().
		Where(event.SessionIDEQ(session.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)
}
