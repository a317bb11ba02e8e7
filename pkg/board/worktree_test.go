package board

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildsquads/squads/ent"
)

func TestWorktreeSpecFor(t *testing.T) {
	project := &ent.Project{Path: "/home/dev/widgets"}
	squad := &ent.Squad{Name: "Core Platform"}
	card := &ent.Card{ID: "card-1", Title: "Add Rate Limiting!"}

	spec := worktreeSpecFor(project, squad, card)

	assert.Equal(t, "core-platform/add-rate-limiting", spec.Name)
	assert.Equal(t,
		filepath.Join("/home/dev/widgets", ".squads", "worktrees", "core-platform", "add-rate-limiting"),
		spec.Path)
	assert.Equal(t, "squads/add-rate-limiting", spec.Branch)
}

func TestWorktreeSpecForUnslugableTitle(t *testing.T) {
	project := &ent.Project{Path: "/p"}
	squad := &ent.Squad{Name: "Core"}
	card := &ent.Card{ID: "card-9", Title: "!!!"}

	spec := worktreeSpecFor(project, squad, card)

	// A title with no usable characters falls back to the card id.
	assert.Equal(t, "core/card-9", spec.Name)
	assert.Equal(t, "squads/card-9", spec.Branch)
}

func TestPrdPathFor(t *testing.T) {
	project := &ent.Project{Path: "/home/dev/widgets"}

	got := prdPathFor(project, "card-1")
	assert.Equal(t, filepath.Join("/home/dev/widgets", ".squads", "prds", "card-1.md"), got)
}
