package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/agent"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/pkg/config"
	"github.com/buildsquads/squads/pkg/events"
	"github.com/buildsquads/squads/pkg/models"
	"github.com/buildsquads/squads/pkg/opencode"
	"github.com/buildsquads/squads/pkg/services"
	testdb "github.com/buildsquads/squads/test/database"
)

// fakeBackends hands out a fixed client, standing in for the runtime
// supervisor.
type fakeBackends struct {
	client *opencode.Client
}

func (f *fakeBackends) EnsureRunning(context.Context, string) (*opencode.Client, error) {
	return f.client, nil
}

func newTestOrchestrator(t *testing.T, backends Backends) (*Orchestrator, *ent.Client) {
	client := testdb.NewTestClient(t)

	bus := events.NewBus()
	t.Cleanup(bus.Close)
	eventsSvc := services.NewEventService(client.Client)

	o := New(
		services.NewSessionService(client.Client),
		services.NewTranscriptService(client.Client),
		services.NewAgentService(client.Client, nil, ""),
		eventsSvc,
		backends,
		events.NewPublisher(eventsSvc, bus),
		config.DefaultRuntimeConfig(),
	)
	t.Cleanup(o.Shutdown)
	return o, client.Client
}

// seedRunningSession inserts the project → squad → agent chain and one
// running session for the agent.
func seedRunningSession(t *testing.T, client *ent.Client) *ent.AgentSession {
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
	ag, err := client.Agent.Create().
		SetID(uuid.New().String()).
		SetSquadID(squad.ID).
		SetName("Agent " + suffix).
		SetSlug("agent-" + suffix).
		SetRole("builder").
		Save(ctx)
	require.NoError(t, err)

	session, err := client.AgentSession.Create().
		SetID(uuid.New().String()).
		SetProjectID(project.ID).
		SetAgentID(ag.ID).
		SetStatus(agentsession.StatusRunning).
		Save(ctx)
	require.NoError(t, err)
	return session
}

func TestPromptRejectsWhileTurnInFlight(t *testing.T) {
	o, client := newTestOrchestrator(t, nil)
	ctx := context.Background()
	session := seedRunningSession(t, client)

	o.mu.Lock()
	o.turnStateLocked(session.ID).pendingPromptID = "msg-1"
	o.mu.Unlock()

	err := o.Prompt(ctx, session.ID, models.PromptRequest{Text: "second question"})

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, services.ConflictTurnInProgress, conflict.Kind)

	// The refused prompt mutated nothing: no local echo landed.
	page, err := services.NewTranscriptService(client).GetTranscript(ctx, session.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
}

func TestAbortWithNoTurnInFlightIsAlreadyIdle(t *testing.T) {
	o, client := newTestOrchestrator(t, nil)
	session := seedRunningSession(t, client)

	err := o.Abort(context.Background(), session.ID)

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, services.ConflictAlreadyIdle, conflict.Kind)
}

func TestCancelFinishesSessionAndFreesAgent(t *testing.T) {
	o, client := newTestOrchestrator(t, nil)
	ctx := context.Background()
	session := seedRunningSession(t, client)
	require.NoError(t, client.Agent.UpdateOneID(session.AgentID).
		SetStatus(agent.StatusWorking).Exec(ctx))

	require.NoError(t, o.Cancel(ctx, session.ID))

	got, err := client.AgentSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusCancelled, got.Status)

	ag, err := client.Agent.Get(ctx, session.AgentID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusIdle, ag.Status)
}

// A follow-up prompt on a completed session starts a successor session
// bound to the retained backend session and dispatches the turn there.
func TestPromptRevivesCompletedSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /session/back-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(opencode.Session{ID: "back-1"})
	})
	mux.HandleFunc("POST /session/back-1/prompt", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(opencode.PromptResponse{MessageID: "msg-9"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	o, client := newTestOrchestrator(t, &fakeBackends{client: opencode.NewClient(srv.URL)})
	ctx := context.Background()

	prior := seedRunningSession(t, client)
	require.NoError(t, client.AgentSession.UpdateOneID(prior.ID).
		SetStatus(agentsession.StatusCompleted).
		SetBackendSessionID("back-1").
		Exec(ctx))

	require.NoError(t, o.Prompt(ctx, prior.ID, models.PromptRequest{Text: "one more thing"}))

	successor, err := client.AgentSession.Query().
		Where(agentsession.StatusEQ(agentsession.StatusRunning)).
		Only(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, prior.ID, successor.ID)
	require.NotNil(t, successor.BackendSessionID)
	assert.Equal(t, "back-1", *successor.BackendSessionID)
	require.NotNil(t, successor.PendingPromptID)
	assert.Equal(t, "msg-9", *successor.PendingPromptID)

	ag, err := client.Agent.Get(ctx, prior.AgentID)
	require.NoError(t, err)
	assert.Equal(t, agent.StatusWorking, ag.Status)

	// The prior session stays terminal.
	got, err := client.AgentSession.Get(ctx, prior.ID)
	require.NoError(t, err)
	assert.Equal(t, agentsession.StatusCompleted, got.Status)
}

func TestTranslateBackendError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"deadline becomes timeout", context.DeadlineExceeded, services.ErrTimeout},
		{
			"wrapped deadline becomes timeout",
			fmt.Errorf("prompt: %w", context.DeadlineExceeded),
			services.ErrTimeout,
		},
		{
			"connection failure becomes backend unavailable",
			fmt.Errorf("dial: %w", opencode.ErrBackendUnavailable),
			services.ErrBackendUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateBackendError(tt.in), tt.want)
		})
	}

	// Anything else passes through unchanged.
	status := &opencode.StatusError{StatusCode: 422, Body: "bad prompt"}
	var got *opencode.StatusError
	assert.ErrorAs(t, translateBackendError(status), &got)
	assert.False(t, errors.Is(translateBackendError(status), services.ErrTimeout))
}
