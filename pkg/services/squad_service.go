package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/squad"
	"github.com/buildsquads/squads/pkg/models"
)

// SquadService manages squad lifecycle and backend status bookkeeping
type SquadService struct {
	client *ent.Client
}

// NewSquadService creates a new SquadService
func NewSquadService(client *ent.Client) *SquadService {
	return &SquadService{client: client}
}

// CreateSquad creates a squad within a project
func (s *SquadService) CreateSquad(httpCtx context.Context, req models.CreateSquadRequest) (*ent.Squad, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sq, err := s.client.Squad.Create().
		SetID(uuid.New().String()).
		SetProjectID(req.ProjectID).
		SetName(req.Name).
		SetOpencodeStatus(squad.OpencodeStatusIdle).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: project %s", ErrNotFound, req.ProjectID)
		}
		return nil, fmt.Errorf("failed to create squad: %w", err)
	}
	return sq, nil
}

// GetSquad retrieves a squad by ID with optional edge loading
func (s *SquadService) GetSquad(ctx context.Context, squadID string, withEdges bool) (*ent.Squad, error) {
	query := s.client.Squad.Query().Where(squad.IDEQ(squadID))
	if withEdges {
		query = query.WithAgents().WithMcpServers()
	}

	sq, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get squad: %w", err)
	}
	return sq, nil
}

// ListSquads lists squads with filtering and pagination
func (s *SquadService) ListSquads(ctx context.Context, filters models.SquadFilters) (*models.SquadListResponse, error) {
	query := s.client.Squad.Query()
	if filters.ProjectID != "" {
		query = query.Where(squad.ProjectIDEQ(filters.ProjectID))
	}
	if filters.Status != "" {
		query = query.Where(squad.OpencodeStatusEQ(squad.OpencodeStatus(filters.Status)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count squads: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	squads, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(squad.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list squads: %w", err)
	}

	return &models.SquadListResponse{
		Squads:     squads,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateSquad updates the mutable squad fields
func (s *SquadService) UpdateSquad(ctx context.Context, squadID string, req models.UpdateSquadRequest) (*ent.Squad, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Squad.UpdateOneID(squadID)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		update.SetName(*req.Name)
	}

	sq, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update squad: %w", err)
	}
	return sq, nil
}

// DeleteSquad removes a squad and its agents, cards, and MCP servers
func (s *SquadService) DeleteSquad(ctx context.Context, squadID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Squad.DeleteOneID(squadID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete squad: %w", err)
	}
	return nil
}

// SetBackendRunning records a successfully provisioned backend
func (s *SquadService) SetBackendRunning(ctx context.Context, squadID, url string, pid int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Squad.UpdateOneID(squadID).
		SetOpencodeStatus(squad.OpencodeStatusRunning).
		SetOpencodeURL(url).
		SetOpencodePid(pid).
		ClearLastError().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark squad running: %w", err)
	}
	return nil
}

// SetBackendStatus transitions the backend status, recording the error
// message for the error state and clearing process fields on idle.
func (s *SquadService) SetBackendStatus(ctx context.Context, squadID string, status squad.OpencodeStatus, lastError string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Squad.UpdateOneID(squadID).
		SetOpencodeStatus(status)
	switch status {
	case squad.OpencodeStatusError:
		update.SetLastError(lastError)
	case squad.OpencodeStatusIdle:
		update.ClearOpencodeURL().ClearOpencodePid().ClearLastError()
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update squad backend status: %w", err)
	}
	return nil
}

// ListRunningSquads returns squads whose backend was running or
// provisioning, used on startup to reconcile stale process state.
func (s *SquadService) ListRunningSquads(ctx context.Context) ([]*ent.Squad, error) {
	squads, err := s.client.Squad.Query().
		Where(squad.OpencodeStatusIn(
			squad.OpencodeStatusRunning,
			squad.OpencodeStatusProvisioning,
		)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list running squads: %w", err)
	}
	return squads, nil
}
