// Package runtime supervises the per-squad opencode backend processes:
// spawning, health probing, restart backoff, and MCP configuration
// reconciliation.
package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/squad"
	"github.com/buildsquads/squads/pkg/config"
	"github.com/buildsquads/squads/pkg/events"
	"github.com/buildsquads/squads/pkg/ingest"
	"github.com/buildsquads/squads/pkg/opencode"
	"github.com/buildsquads/squads/pkg/services"
)

// ErrProvisioningTimeout is returned when a backend fails to come up
// within the provisioning window.
var ErrProvisioningTimeout = errors.New("backend provisioning timed out")

// ErrNotRunning is returned when an operation needs a running backend.
var ErrNotRunning = errors.New("squad backend is not running")

// Supervisor owns one runtime per squad with a running (or starting)
// backend. All transitions are serialized per squad inside the runtime.
type Supervisor struct {
	squads    *services.SquadService
	projects  *services.ProjectService
	mcp       *services.MCPService
	publisher *events.Publisher
	ingester  *ingest.Ingester
	cfg       *config.Config

	mu       sync.Mutex
	runtimes map[string]*squadRuntime

	logger *slog.Logger
}

// NewSupervisor creates a new Supervisor.
func NewSupervisor(squads *services.SquadService, projects *services.ProjectService, mcp *services.MCPService, publisher *events.Publisher, ingester *ingest.Ingester, cfg *config.Config) *Supervisor {
	return &Supervisor{
		squads:    squads,
		projects:  projects,
		mcp:       mcp,
		publisher: publisher,
		ingester:  ingester,
		cfg:       cfg,
		runtimes:  make(map[string]*squadRuntime),
		logger:    slog.With("component", "runtime"),
	}
}

// Reconcile clears stale process state left by a previous run. PIDs
// recorded in the database do not survive an orchestrator restart; the
// old child processes died with it, so the rows go back to idle.
func (s *Supervisor) Reconcile(ctx context.Context) error {
	stale, err := s.squads.ListRunningSquads(ctx)
	if err != nil {
		return fmt.Errorf("failed to list running squads: %w", err)
	}
	for _, sq := range stale {
		s.logger.Info("Resetting stale backend state", "squad_id", sq.ID)
		if err := s.squads.SetBackendStatus(ctx, sq.ID, squad.OpencodeStatusIdle, ""); err != nil {
			s.logger.Error("Failed to reset squad backend", "squad_id", sq.ID, "error", err)
		}
	}
	return nil
}

// EnsureRunning brings the squad's backend up if it is not already, and
// returns a client for it. Concurrent calls for the same squad share
// one provisioning attempt.
func (s *Supervisor) EnsureRunning(ctx context.Context, squadID string) (*opencode.Client, error) {
	rt, err := s.runtimeFor(ctx, squadID)
	if err != nil {
		return nil, err
	}
	return rt.ensureRunning(ctx)
}

// ClientFor returns a client for an already-running backend, or
// ErrNotRunning.
func (s *Supervisor) ClientFor(squadID string) (*opencode.Client, error) {
	s.mu.Lock()
	rt := s.runtimes[squadID]
	s.mu.Unlock()
	if rt == nil {
		return nil, ErrNotRunning
	}
	return rt.client()
}

// State reports the runtime view of a squad's backend.
func (s *Supervisor) State(squadID string) (status, url string, pid int) {
	s.mu.Lock()
	rt := s.runtimes[squadID]
	s.mu.Unlock()
	if rt == nil {
		return string(squad.OpencodeStatusIdle), "", 0
	}
	return rt.state()
}

// Stop shuts down a squad's backend: SIGTERM, then SIGKILL after the
// grace period.
func (s *Supervisor) Stop(ctx context.Context, squadID string) error {
	s.mu.Lock()
	rt := s.runtimes[squadID]
	delete(s.runtimes, squadID)
	s.mu.Unlock()

	if rt == nil {
		return nil
	}
	return rt.stop(ctx)
}

// StopAll shuts down every backend, bounded by ctx.
func (s *Supervisor) StopAll(ctx context.Context) {
	s.mu.Lock()
	rts := make([]*squadRuntime, 0, len(s.runtimes))
	for _, rt := range s.runtimes {
		rts = append(rts, rt)
	}
	s.runtimes = make(map[string]*squadRuntime)
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, rt := range rts {
		wg.Add(1)
		go func(rt *squadRuntime) {
			defer wg.Done()
			if err := rt.stop(ctx); err != nil {
				s.logger.Warn("Failed to stop squad backend",
					"squad_id", rt.squadID, "error", err)
			}
		}(rt)
	}
	wg.Wait()
}

// ReconcileMCP re-renders the squad's mcp.toml from its enabled servers
// and asks a running backend to reload. Safe when the backend is down;
// the config is picked up at next start.
func (s *Supervisor) ReconcileMCP(ctx context.Context, squadID string) error {
	rt, err := s.runtimeFor(ctx, squadID)
	if err != nil {
		return err
	}
	return rt.reconcileMCP(ctx)
}

// runtimeFor returns (creating if needed) the runtime for a squad.
func (s *Supervisor) runtimeFor(ctx context.Context, squadID string) (*squadRuntime, error) {
	s.mu.Lock()
	if rt, ok := s.runtimes[squadID]; ok {
		s.mu.Unlock()
		return rt, nil
	}
	s.mu.Unlock()

	sq, err := s.squads.GetSquad(ctx, squadID, false)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.GetProject(ctx, sq.ProjectID, false)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rt, ok := s.runtimes[squadID]; ok {
		return rt, nil
	}
	rt := newSquadRuntime(s, sq, project)
	s.runtimes[squadID] = rt
	return rt, nil
}

func (s *Supervisor) publishBackendStatus(ctx context.Context, sq *ent.Squad, status, url, errMsg string) {
	if err := s.publisher.PublishSquadBackend(ctx, events.SquadBackendPayload{
		ProjectID: sq.ProjectID,
		SquadID:   sq.ID,
		Status:    status,
		URL:       url,
		Error:     errMsg,
	}); err != nil {
		s.logger.Warn("Failed to publish backend status",
			"squad_id", sq.ID, "status", status, "error", err)
	}
}
