package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/agent"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/pkg/config"
	"github.com/buildsquads/squads/pkg/models"
	"github.com/buildsquads/squads/pkg/names"
)

// AgentService manages agent personas within squads
type AgentService struct {
	client *ent.Client
	roles  *config.RolesRegistry
	model  string // default model for new agents
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client, roles *config.RolesRegistry, defaultModel string) *AgentService {
	return &AgentService{client: client, roles: roles, model: defaultModel}
}

// CreateAgent hires an agent into a squad. Name and slug are generated
// when absent; the system instruction defaults to the role's template
// for the agent's level.
func (s *AgentService) CreateAgent(httpCtx context.Context, req models.CreateAgentRequest) (*ent.Agent, error) {
	if req.SquadID == "" {
		return nil, NewValidationError("squad_id", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}
	if !s.roles.Has(req.Role) {
		return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}
	level := req.Level
	if level == "" {
		level = string(agent.LevelSenior)
	}
	if !config.ValidLevel(level) {
		return nil, NewValidationError("level", fmt.Sprintf("unknown level %q", level))
	}

	name := req.Name
	if name == "" {
		name = names.Generate()
	}
	slug := req.Slug
	if slug == "" {
		slug = names.Slugify(name)
	}
	if slug == "" {
		return nil, NewValidationError("slug", "must not be empty after slugify")
	}

	model := req.Model
	if model == "" {
		if rc, err := s.roles.Get(req.Role); err == nil && rc.Model != "" {
			model = rc.Model
		} else {
			model = s.model
		}
	}
	instruction := req.SystemInstruction
	if instruction == "" {
		instruction = s.roles.SystemInstruction(req.Role, level)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetSquadID(req.SquadID).
		SetName(name).
		SetSlug(slug).
		SetRole(req.Role).
		SetLevel(agent.Level(level)).
		SetModel(model).
		SetSystemInstruction(instruction).
		SetStatus(agent.StatusIdle)
	if req.MentorID != "" {
		builder.SetMentorID(req.MentorID)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return a, nil
}

// GetAgent retrieves an agent by ID
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// GetAgentBySlug retrieves an agent by its squad-scoped slug
func (s *AgentService) GetAgentBySlug(ctx context.Context, squadID, slug string) (*ent.Agent, error) {
	a, err := s.client.Agent.Query().
		Where(agent.SquadIDEQ(squadID), agent.SlugEQ(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent by slug: %w", err)
	}
	return a, nil
}

// ListAgents lists agents with filtering and pagination
func (s *AgentService) ListAgents(ctx context.Context, filters models.AgentFilters) (*models.AgentListResponse, error) {
	query := s.client.Agent.Query()
	if filters.SquadID != "" {
		query = query.Where(agent.SquadIDEQ(filters.SquadID))
	}
	if filters.Role != "" {
		query = query.Where(agent.RoleEQ(filters.Role))
	}
	if filters.Level != "" {
		query = query.Where(agent.LevelEQ(agent.Level(filters.Level)))
	}
	if filters.Status != "" {
		query = query.Where(agent.StatusEQ(agent.Status(filters.Status)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count agents: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	agents, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(agent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return &models.AgentListResponse{
		Agents:     agents,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateAgent updates the mutable agent fields
func (s *AgentService) UpdateAgent(ctx context.Context, agentID string, req models.UpdateAgentRequest) (*ent.Agent, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Agent.UpdateOneID(agentID)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		update.SetName(*req.Name).SetSlug(names.Slugify(*req.Name))
	}
	if req.Role != nil {
		if !s.roles.Has(*req.Role) {
			return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", *req.Role))
		}
		update.SetRole(*req.Role)
	}
	if req.Level != nil {
		if !config.ValidLevel(*req.Level) {
			return nil, NewValidationError("level", fmt.Sprintf("unknown level %q", *req.Level))
		}
		update.SetLevel(agent.Level(*req.Level))
	}
	if req.Model != nil {
		update.SetModel(*req.Model)
	}
	if req.SystemInstruction != nil {
		update.SetSystemInstruction(*req.SystemInstruction)
	}
	if req.MentorID != nil {
		if *req.MentorID == "" {
			update.ClearMentorID()
		} else {
			update.SetMentorID(*req.MentorID)
		}
	}
	if req.Status != nil {
		update.SetStatus(agent.Status(*req.Status))
	}

	a, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return a, nil
}

// DeleteAgent fires an agent. Refused while the agent has an active
// session; finished sessions cascade with the row.
func (s *AgentService) DeleteAgent(ctx context.Context, agentID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	active, err := s.client.AgentSession.Query().
		Where(
			agentsession.AgentIDEQ(agentID),
			agentsession.StatusIn(activeSessionStatuses...),
		).
		Exist(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to check active sessions: %w", err)
	}
	if active {
		return NewConflictError(ConflictAgentBusy, "agent has an active session")
	}

	err = s.client.Agent.DeleteOneID(agentID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// SetAgentStatus updates the presence status of an agent
func (s *AgentService) SetAgentStatus(ctx context.Context, agentID string, status agent.Status) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Agent.UpdateOneID(agentID).
		SetStatus(status).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set agent status: %w", err)
	}
	return nil
}

// FindIdleAgent returns an idle agent of the squad, preferring the given
// role when one matches. Returns ErrNotFound when the squad has no idle
// agent.
func (s *AgentService) FindIdleAgent(ctx context.Context, squadID, preferredRole string) (*ent.Agent, error) {
	if preferredRole != "" {
		a, err := s.client.Agent.Query().
			Where(
				agent.SquadIDEQ(squadID),
				agent.StatusEQ(agent.StatusIdle),
				agent.RoleEQ(preferredRole),
			).
			Order(ent.Asc(agent.FieldCreatedAt)).
			First(ctx)
		if err == nil {
			return a, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to find idle agent: %w", err)
		}
	}

	a, err := s.client.Agent.Query().
		Where(
			agent.SquadIDEQ(squadID),
			agent.StatusEQ(agent.StatusIdle),
		).
		Order(ent.Asc(agent.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find idle agent: %w", err)
	}
	return a, nil
}
