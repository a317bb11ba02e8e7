package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/ent"
)

// Seed helpers insert the parent rows the foreign keys demand. They go
// through the ent client directly so service tests exercise exactly one
// service at a time.

func seedProject(t *testing.T, client *ent.Client) *ent.Project {
	t.Helper()
	p, err := client.Project.Create().
		SetID(uuid.New().String()).
		SetName("widgets").
		SetPath("/tmp/widgets-" + uuid.New().String()).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func seedSquad(t *testing.T, client *ent.Client, projectID string) *ent.Squad {
	t.Helper()
	s, err := client.Squad.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetName("core-platform").
		Save(context.Background())
	require.NoError(t, err)
	return s
}

func seedAgent(t *testing.T, client *ent.Client, squadID string) *ent.Agent {
	t.Helper()
	suffix := uuid.New().String()[:8]
	a, err := client.Agent.Create().
		SetID(uuid.New().String()).
		SetSquadID(squadID).
		SetName("Agent " + suffix).
		SetSlug("agent-" + suffix).
		SetRole("builder").
		Save(context.Background())
	require.NoError(t, err)
	return a
}

// seedSession creates a pending session for a fresh agent, so the
// one-active-session-per-agent index never gets in the way.
func seedSession(t *testing.T, client *ent.Client, projectID, squadID string) *ent.AgentSession {
	t.Helper()
	agent := seedAgent(t, client, squadID)
	s, err := client.AgentSession.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetAgentID(agent.ID).
		Save(context.Background())
	require.NoError(t, err)
	return s
}

// seedPipeline creates a project with one squad and one agent.
func seedPipeline(t *testing.T, client *ent.Client) (*ent.Project, *ent.Squad, *ent.Agent) {
	t.Helper()
	p := seedProject(t, client)
	s := seedSquad(t, client, p.ID)
	a := seedAgent(t, client, s.ID)
	return p, s, a
}
