package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/buildsquads/squads/ent"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// CardReviewInput contains data for a pending-human-review notification.
type CardReviewInput struct {
	CardID         string
	Title          string
	Recommendation string
	Summary        string
}

// SessionFinishedInput contains data for a terminal session notification.
type SessionFinishedInput struct {
	SessionID    string
	Title        string
	Status       string // completed, failed, cancelled
	ErrorMessage string
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// CardPendingReview notifies the channel that a card finished its AI
// review and waits on a human. Repeat notifications for the same card
// thread onto the first one. Fail-open: errors are logged, never returned.
func (s *Service) CardPendingReview(ctx context.Context, c *ent.Card) {
	if s == nil {
		return
	}

	threadTS, err := s.client.FindThreadByMarker(ctx, cardMarker(c.ID))
	if err != nil {
		s.logger.Warn("Failed to find Slack thread for card",
			"card_id", c.ID,
			"error", err)
	}

	recommendation, _ := c.AiReview["recommendation"].(string)
	summary, _ := c.AiReview["summary"].(string)
	blocks := BuildCardReviewMessage(CardReviewInput{
		CardID:         c.ID,
		Title:          c.Title,
		Recommendation: recommendation,
		Summary:        summary,
	}, s.dashboardURL)

	if err := s.client.PostMessage(ctx, blocks, threadTS, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack review notification",
			"card_id", c.ID,
			"error", err)
	}
}

// SessionFinished notifies the channel about a terminal session status.
// Fail-open: errors are logged, never returned.
func (s *Service) SessionFinished(ctx context.Context, session *ent.AgentSession) {
	if s == nil {
		return
	}

	errorMessage := ""
	if session.ErrorMessage != nil {
		errorMessage = *session.ErrorMessage
	}
	blocks := BuildSessionFinishedMessage(SessionFinishedInput{
		SessionID:    session.ID,
		Title:        session.Title,
		Status:       string(session.Status),
		ErrorMessage: errorMessage,
	}, s.dashboardURL)

	if err := s.client.PostMessage(ctx, blocks, "", 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack session notification",
			"session_id", session.ID,
			"status", session.Status,
			"error", err)
	}
}
