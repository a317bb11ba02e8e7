package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/pkg/models"
)

// MCPService manages the MCP server rows attached to squads. Config
// rendering and backend reload are performed by the runtime supervisor.
type MCPService struct {
	client *ent.Client
}

// NewMCPService creates a new MCPService
func NewMCPService(client *ent.Client) *MCPService {
	return &MCPService{client: client}
}

// AddServer attaches an MCP server to a squad
func (s *MCPService) AddServer(httpCtx context.Context, req models.AddMCPServerRequest) (*ent.MCPServer, error) {
	if req.SquadID == "" {
		return nil, NewValidationError("squad_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	switch mcpserver.ServerType(req.ServerType) {
	case mcpserver.ServerTypeRemote:
		if req.URL == "" {
			return nil, NewValidationError("url", "required for remote servers")
		}
	case mcpserver.ServerTypeContainer:
		if req.Image == "" && req.Command == "" {
			return nil, NewValidationError("image", "image or command required for container servers")
		}
	default:
		return nil, NewValidationError("server_type", fmt.Sprintf("unknown server type %q", req.ServerType))
	}
	source := req.Source
	if source == "" {
		source = string(mcpserver.SourceCustom)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.MCPServer.Create().
		SetID(uuid.New().String()).
		SetSquadID(req.SquadID).
		SetName(req.Name).
		SetSource(mcpserver.Source(source)).
		SetServerType(mcpserver.ServerType(req.ServerType)).
		SetEnabled(req.Enabled)
	if req.Image != "" {
		builder.SetImage(req.Image)
	}
	if req.URL != "" {
		builder.SetURL(req.URL)
	}
	if req.Command != "" {
		builder.SetCommand(req.Command)
	}
	if len(req.Args) > 0 {
		builder.SetArgs(req.Args)
	}
	if len(req.Headers) > 0 {
		builder.SetHeaders(req.Headers)
	}

	server, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to add mcp server: %w", err)
	}
	return server, nil
}

// GetServer retrieves an MCP server by ID
func (s *MCPService) GetServer(ctx context.Context, serverID string) (*ent.MCPServer, error) {
	server, err := s.client.MCPServer.Get(ctx, serverID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mcp server: %w", err)
	}
	return server, nil
}

// ListServers returns a squad's MCP servers
func (s *MCPService) ListServers(ctx context.Context, squadID string) (*models.MCPServerListResponse, error) {
	servers, err := s.client.MCPServer.Query().
		Where(mcpserver.SquadIDEQ(squadID)).
		Order(ent.Asc(mcpserver.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mcp servers: %w", err)
	}
	return &models.MCPServerListResponse{Servers: servers}, nil
}

// ListEnabledServers returns the squad's enabled servers, the set that
// gets rendered into the backend's mcp.toml.
func (s *MCPService) ListEnabledServers(ctx context.Context, squadID string) ([]*ent.MCPServer, error) {
	servers, err := s.client.MCPServer.Query().
		Where(
			mcpserver.SquadIDEQ(squadID),
			mcpserver.EnabledEQ(true),
		).
		Order(ent.Asc(mcpserver.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled mcp servers: %w", err)
	}
	return servers, nil
}

// UpdateServer updates the mutable MCP server fields
func (s *MCPService) UpdateServer(ctx context.Context, serverID string, req models.UpdateMCPServerRequest) (*ent.MCPServer, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.MCPServer.UpdateOneID(serverID)
	if req.URL != nil {
		update.SetURL(*req.URL)
	}
	if req.Image != nil {
		update.SetImage(*req.Image)
	}
	if req.Command != nil {
		update.SetCommand(*req.Command)
	}
	if req.Args != nil {
		update.SetArgs(req.Args)
	}
	if req.Headers != nil {
		update.SetHeaders(req.Headers)
	}
	if req.Enabled != nil {
		update.SetEnabled(*req.Enabled)
	}

	server, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update mcp server: %w", err)
	}
	return server, nil
}

// SetServerStatus records the reconciliation outcome for a server
func (s *MCPService) SetServerStatus(ctx context.Context, serverID, status, lastError string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.MCPServer.UpdateOneID(serverID).
		SetStatus(status)
	if lastError == "" {
		update.ClearLastError()
	} else {
		update.SetLastError(lastError)
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set mcp server status: %w", err)
	}
	return nil
}

// RemoveServer detaches an MCP server from its squad
func (s *MCPService) RemoveServer(ctx context.Context, serverID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.MCPServer.DeleteOneID(serverID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to remove mcp server: %w", err)
	}
	return nil
}
