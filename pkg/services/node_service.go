package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/externalnode"
)

// NodeService persists the external node registry. Probing and lsof
// discovery live in pkg/nodes; this service only records outcomes.
type NodeService struct {
	client *ent.Client
}

// NewNodeService creates a new NodeService
func NewNodeService(client *ent.Client) *NodeService {
	return &NodeService{client: client}
}

// UpsertNode registers or refreshes a node keyed by its base URL
func (s *NodeService) UpsertNode(httpCtx context.Context, baseURL string, source externalnode.Source) (*ent.ExternalNode, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, NewValidationError("base_url", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.client.ExternalNode.Get(ctx, normalized)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get node: %w", err)
	}
	if existing != nil {
		n, err := existing.Update().
			SetLastSeen(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh node: %w", err)
		}
		return n, nil
	}

	n, err := s.client.ExternalNode.Create().
		SetID(normalized).
		SetSource(source).
		SetHealthy(true).
		SetLastSeen(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.client.ExternalNode.Get(ctx, normalized)
		}
		return nil, fmt.Errorf("failed to register node: %w", err)
	}
	return n, nil
}

// GetNode retrieves a node by base URL
func (s *NodeService) GetNode(ctx context.Context, baseURL string) (*ent.ExternalNode, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, NewValidationError("base_url", err.Error())
	}

	n, err := s.client.ExternalNode.Get(ctx, normalized)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get node: %w", err)
	}
	return n, nil
}

// ListNodes returns all known nodes, healthy first
func (s *NodeService) ListNodes(ctx context.Context) ([]*ent.ExternalNode, error) {
	nodes, err := s.client.ExternalNode.Query().
		Order(ent.Desc(externalnode.FieldHealthy), ent.Asc(externalnode.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	return nodes, nil
}

// RecordProbeSuccess resets the failure counter and marks the node healthy
func (s *NodeService) RecordProbeSuccess(ctx context.Context, baseURL, version string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.ExternalNode.UpdateOneID(baseURL).
		SetHealthy(true).
		SetProbeFailures(0).
		SetLastSeen(time.Now())
	if version != "" {
		update.SetVersion(version)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record probe success: %w", err)
	}
	return nil
}

// RecordProbeFailure increments the failure counter; at failureLimit the
// node is marked unhealthy but retained for later recovery.
func (s *NodeService) RecordProbeFailure(ctx context.Context, baseURL string, failureLimit int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.ExternalNode.Get(writeCtx, baseURL)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get node: %w", err)
	}

	failures := n.ProbeFailures + 1
	update := n.Update().SetProbeFailures(failures)
	if failures >= failureLimit {
		update.SetHealthy(false)
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to record probe failure: %w", err)
	}
	return nil
}

// RemoveNode forgets a node
func (s *NodeService) RemoveNode(ctx context.Context, baseURL string) error {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return NewValidationError("base_url", err.Error())
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.ExternalNode.DeleteOneID(normalized).Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to remove node: %w", err)
	}
	return nil
}

// NormalizeBaseURL canonicalizes a node URL: scheme and host required,
// no trailing slash, http assumed for bare host:port.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("base url is empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base url has no host")
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
