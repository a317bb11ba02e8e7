package models

import (
	"github.com/buildsquads/squads/ent"
)

// CreateProjectRequest contains fields for registering a new project
type CreateProjectRequest struct {
	Name   string         `json:"name"`
	Path   string         `json:"path"`
	Config map[string]any `json:"config,omitempty"`
}

// UpdateProjectRequest contains the mutable project fields
type UpdateProjectRequest struct {
	Name   *string        `json:"name,omitempty"`
	Config map[string]any `json:"config,omitempty"`
}

// ProjectFilters contains filtering options for listing projects
type ProjectFilters struct {
	Name   string `json:"name,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// ProjectListResponse contains a paginated project list
type ProjectListResponse struct {
	Projects   []*ent.Project `json:"projects"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// BrowseRequest asks for one directory level of the server filesystem.
type BrowseRequest struct {
	Path string `json:"path,omitempty"`
}

// DirectoryEntry is one subdirectory in a browse response.
type DirectoryEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	HasChildren bool   `json:"has_children"`
	IsGitRepo   bool   `json:"is_git_repo"`
}

// BrowseResponse lists the subdirectories of one path.
type BrowseResponse struct {
	Path    string           `json:"path"`
	Parent  string           `json:"parent,omitempty"`
	Entries []DirectoryEntry `json:"entries"`
}
