package board

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/pkg/names"
	"github.com/buildsquads/squads/pkg/services"
)

const defaultBaseBranch = "main"

// worktreeSpec identifies a build worktree before it exists on disk.
type worktreeSpec struct {
	Name   string
	Path   string
	Branch string
}

// worktreeSpecFor derives the worktree location for a card:
// {project}/.squads/worktrees/{squad-slug}/{card-slug}.
func worktreeSpecFor(project *ent.Project, squad *ent.Squad, c *ent.Card) worktreeSpec {
	squadSlug := names.Slugify(squad.Name)
	cardSlug := names.Slugify(c.Title)
	if cardSlug == "" {
		cardSlug = c.ID
	}
	name := squadSlug + "/" + cardSlug
	return worktreeSpec{
		Name:   name,
		Path:   filepath.Join(project.Path, ".squads", "worktrees", squadSlug, cardSlug),
		Branch: "squads/" + cardSlug,
	}
}

// provisionWorktree creates the build worktree for a card, refusing a
// path another card has already claimed. Re-provisioning a card's own
// existing worktree is a no-op.
func (e *Engine) provisionWorktree(ctx context.Context, project *ent.Project, squad *ent.Squad, c *ent.Card) (worktreeSpec, error) {
	spec := worktreeSpecFor(project, squad, c)

	owner, err := e.cards.FindCardByWorktreePath(ctx, spec.Path)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return spec, err
	}
	if owner != nil && owner.ID != c.ID {
		return spec, services.NewConflictError(services.ConflictWorktreeClaim,
			fmt.Sprintf("worktree %s is claimed by another card", spec.Path))
	}

	if _, err := os.Stat(spec.Path); err == nil {
		if owner != nil && owner.ID == c.ID {
			return spec, nil
		}
		return spec, services.NewConflictError(services.ConflictWorktreeClaim,
			fmt.Sprintf("worktree path %s already exists", spec.Path))
	}

	if err := os.MkdirAll(filepath.Dir(spec.Path), 0o755); err != nil {
		return spec, fmt.Errorf("failed to create worktree parent: %w", err)
	}

	base := c.BaseBranch
	if base == "" {
		base = defaultBaseBranch
	}
	cmd := exec.CommandContext(ctx, "git", "-C", project.Path,
		"worktree", "add", "-b", spec.Branch, spec.Path, base)
	if out, err := cmd.CombinedOutput(); err != nil {
		return spec, fmt.Errorf("git worktree add failed: %v: %s", err, string(out))
	}
	return spec, nil
}

// prdPathFor is the card's reserved PRD location.
func prdPathFor(project *ent.Project, cardID string) string {
	return filepath.Join(project.Path, ".squads", "prds", cardID+".md")
}

// ensurePRD guarantees the card's PRD file exists after planning, so a
// card in build always has one even when the agent skipped the write.
func ensurePRD(project *ent.Project, c *ent.Card) (string, error) {
	path := prdPathFor(project, c.ID)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create prd dir: %w", err)
	}
	content := fmt.Sprintf("# %s\n\n%s\n", c.Title, c.Body)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write prd: %w", err)
	}
	return path, nil
}
