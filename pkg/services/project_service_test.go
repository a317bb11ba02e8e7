package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseDirectories(t *testing.T) {
	service := NewProjectService(nil)
	ctx := context.Background()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "app", ".git"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "app", "src"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, ".hidden"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	resp, err := service.BrowseDirectories(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, root, resp.Path)
	assert.Equal(t, filepath.Dir(root), resp.Parent)

	// Files and hidden directories are skipped.
	require.Len(t, resp.Entries, 2)
	byName := map[string]int{}
	for i, e := range resp.Entries {
		byName[e.Name] = i
	}
	app := resp.Entries[byName["app"]]
	assert.True(t, app.IsGitRepo)
	assert.True(t, app.HasChildren)

	empty := resp.Entries[byName["empty"]]
	assert.False(t, empty.IsGitRepo)
	assert.False(t, empty.HasChildren)

	t.Run("rejects relative paths", func(t *testing.T) {
		_, err := service.BrowseDirectories(ctx, "relative/path")
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing path is not found", func(t *testing.T) {
		_, err := service.BrowseDirectories(ctx, filepath.Join(root, "nope"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
