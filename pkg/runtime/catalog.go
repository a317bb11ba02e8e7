package runtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/buildsquads/squads/pkg/models"
)

// ErrCatalogUnavailable indicates the docker mcp CLI is missing or the
// catalog command failed. Handlers surface it as cli_unavailable.
var ErrCatalogUnavailable = errors.New("docker mcp catalog unavailable")

// Catalog reads the Docker MCP catalog through the docker CLI and
// caches the snapshot for a TTL, since the catalog changes rarely and
// shelling out per request would be wasteful.
type Catalog struct {
	bin string
	ttl time.Duration

	mu        sync.Mutex
	entries   []models.CatalogEntry
	fetchedAt time.Time
}

// NewCatalog creates a catalog client using the given docker binary.
func NewCatalog(dockerBin string, ttl time.Duration) *Catalog {
	return &Catalog{bin: dockerBin, ttl: ttl}
}

// Entries returns the catalog, refreshing the cache when stale. A
// fetch failure with a warm cache serves the stale snapshot.
func (c *Catalog) Entries(ctx context.Context) ([]models.CatalogEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Since(c.fetchedAt) < c.ttl && c.entries != nil {
		return c.entries, nil
	}

	entries, err := c.fetch(ctx)
	if err != nil {
		if c.entries != nil {
			return c.entries, nil
		}
		return nil, err
	}
	c.entries = entries
	c.fetchedAt = time.Now()
	return entries, nil
}

// Lookup finds one catalog entry by name.
func (c *Catalog) Lookup(ctx context.Context, name string) (*models.CatalogEntry, error) {
	entries, err := c.Entries(ctx)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].Name == name {
			return &entries[i], nil
		}
	}
	return nil, fmt.Errorf("catalog entry %q not found", name)
}

// CLIStatus probes the docker mcp CLI directly, bypassing the cache.
func (c *Catalog) CLIStatus(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, c.bin, "mcp", "version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return nil
}

func (c *Catalog) fetch(ctx context.Context) ([]models.CatalogEntry, error) {
	cmd := exec.CommandContext(ctx, c.bin, "mcp", "catalog", "show", "--format", "json")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogUnavailable, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	return parseCatalogOutput(out)
}

// parseCatalogOutput decodes the CLI's JSON, which is either a list or
// a map keyed by server name depending on the docker mcp version.
func parseCatalogOutput(out []byte) ([]models.CatalogEntry, error) {
	var list []models.CatalogEntry
	if err := json.Unmarshal(out, &list); err == nil {
		return list, nil
	}

	var byName map[string]models.CatalogEntry
	if err := json.Unmarshal(out, &byName); err != nil {
		return nil, fmt.Errorf("%w: unexpected catalog output: %v", ErrCatalogUnavailable, err)
	}
	entries := make([]models.CatalogEntry, 0, len(byName))
	for name, entry := range byName {
		if entry.Name == "" {
			entry.Name = name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
