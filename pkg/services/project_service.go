package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/pkg/models"
)

// ProjectService manages project registration and lookup
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject registers a project at a local filesystem path.
// The path must exist and be a directory; each path is registered once.
func (s *ProjectService) CreateProject(httpCtx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Path == "" {
		return nil, NewValidationError("path", "required")
	}
	if !filepath.IsAbs(req.Path) {
		return nil, NewValidationError("path", "must be absolute")
	}
	info, err := os.Stat(req.Path)
	if err != nil {
		return nil, NewValidationError("path", fmt.Sprintf("not accessible: %v", err))
	}
	if !info.IsDir() {
		return nil, NewValidationError("path", "not a directory")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetPath(filepath.Clean(req.Path))
	if req.Config != nil {
		builder.SetConfig(req.Config)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject retrieves a project by ID with optional edge loading
func (s *ProjectService) GetProject(ctx context.Context, projectID string, withEdges bool) (*ent.Project, error) {
	query := s.client.Project.Query().Where(project.IDEQ(projectID))
	if withEdges {
		query = query.WithSquads().WithLaneAssignments()
	}

	p, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetProjectByPath retrieves a project by its registered path
func (s *ProjectService) GetProjectByPath(ctx context.Context, path string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.PathEQ(filepath.Clean(path))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by path: %w", err)
	}
	return p, nil
}

// ListProjects lists projects with filtering and pagination
func (s *ProjectService) ListProjects(ctx context.Context, filters models.ProjectFilters) (*models.ProjectListResponse, error) {
	query := s.client.Project.Query()
	if filters.Name != "" {
		query = query.Where(project.NameContainsFold(filters.Name))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	projects, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &models.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateProject updates the mutable project fields
func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, req models.UpdateProjectRequest) (*ent.Project, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Project.UpdateOneID(projectID)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		update.SetName(*req.Name)
	}
	if req.Config != nil {
		update.SetConfig(req.Config)
	}

	p, err := update.Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return p, nil
}

// DeleteProject removes a project. Squads, cards, sessions, and events
// cascade at the database level.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Project.DeleteOneID(projectID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// BrowseDirectories lists the subdirectories of one path, for the
// project registration picker. Empty path starts at the user's home.
// Hidden directories are skipped.
func (s *ProjectService) BrowseDirectories(ctx context.Context, path string) (*models.BrowseResponse, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "/"
		}
		path = home
	}
	if !filepath.IsAbs(path) {
		return nil, NewValidationError("path", "must be absolute")
	}
	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, NewValidationError("path", "not a directory")
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	resp := &models.BrowseResponse{
		Path:    path,
		Entries: []models.DirectoryEntry{},
	}
	if parent := filepath.Dir(path); parent != path {
		resp.Parent = parent
	}
	for _, d := range dirents {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		full := filepath.Join(path, d.Name())
		resp.Entries = append(resp.Entries, models.DirectoryEntry{
			Name:        d.Name(),
			Path:        full,
			HasChildren: hasVisibleSubdirs(full),
			IsGitRepo:   isGitRepo(full),
		})
	}
	return resp, nil
}

func hasVisibleSubdirs(path string) bool {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return false
	}
	for _, d := range dirents {
		if d.IsDir() && !strings.HasPrefix(d.Name(), ".") {
			return true
		}
	}
	return false
}

func isGitRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && info.IsDir()
}
