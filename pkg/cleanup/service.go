// Package cleanup enforces event retention for finished sessions.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/buildsquads/squads/pkg/config"
	"github.com/buildsquads/squads/pkg/services"
)

// sweepInterval is how often the retention sweep runs.
const sweepInterval = 5 * time.Minute

// Service periodically deletes the raw events of sessions that finished
// longer than the retention grace ago. The orchestrator schedules a
// per-session sweep when a session finishes; this loop is the backstop
// for timers lost to a process restart.
//
// Deletion is idempotent, so overlap with the orchestrator's sweep is
// harmless.
type Service struct {
	cfg      *config.RuntimeConfig
	sessions *services.SessionService
	events   *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RuntimeConfig, sessions *services.SessionService, events *services.EventService) *Service {
	return &Service{
		cfg:      cfg,
		sessions: sessions,
		events:   events,
		logger:   slog.With("component", "cleanup"),
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Retention sweep started",
		"grace", s.cfg.EventRetentionGrace, "interval", sweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Retention sweep stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.Sweep(ctx)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep deletes events for every session whose grace window has passed.
func (s *Service) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.EventRetentionGrace)
	sessions, err := s.sessions.ListFinishedSessions(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention: listing finished sessions failed", "error", err)
		return
	}

	for _, session := range sessions {
		count, err := s.events.DeleteSessionEvents(ctx, session.ID, time.Now())
		if err != nil {
			s.logger.Error("Retention: event deletion failed",
				"session_id", session.ID, "error", err)
			continue
		}
		if count > 0 {
			s.logger.Info("Retention: deleted session events",
				"session_id", session.ID, "count", count)
		}
	}
}
