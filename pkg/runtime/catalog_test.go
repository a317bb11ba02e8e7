package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogOutputList(t *testing.T) {
	out := []byte(`[
		{"name": "github", "description": "GitHub tools", "image": "mcp/github:latest"},
		{"name": "postgres", "image": "mcp/postgres:latest"}
	]`)

	entries, err := parseCatalogOutput(out)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "github", entries[0].Name)
	assert.Equal(t, "mcp/github:latest", entries[0].Image)
}

func TestParseCatalogOutputMap(t *testing.T) {
	out := []byte(`{
		"github": {"description": "GitHub tools", "image": "mcp/github:latest"},
		"postgres": {"name": "postgres", "image": "mcp/postgres:latest"}
	}`)

	entries, err := parseCatalogOutput(out)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]string{}
	for _, e := range entries {
		byName[e.Name] = e.Image
	}
	// Map keys fill in a missing name field.
	assert.Equal(t, "mcp/github:latest", byName["github"])
	assert.Equal(t, "mcp/postgres:latest", byName["postgres"])
}

func TestParseCatalogOutputGarbage(t *testing.T) {
	_, err := parseCatalogOutput([]byte("not json"))
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}
