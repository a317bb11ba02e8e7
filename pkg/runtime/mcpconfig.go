package runtime

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/pkg/events"
)

// mcpTOML is the on-disk structure of a squad's mcp.toml.
type mcpTOML struct {
	Servers map[string]mcpServerTOML `toml:"servers"`
}

type mcpServerTOML struct {
	Type    string            `toml:"type"` // remote | container
	URL     string            `toml:"url,omitempty"`
	Image   string            `toml:"image,omitempty"`
	Command string            `toml:"command,omitempty"`
	Args    []string          `toml:"args,omitempty"`
	Headers map[string]string `toml:"headers,omitempty"`
}

// mcpConfigPath returns where a squad's mcp.toml lives, under the
// project's .squads directory.
func (rt *squadRuntime) mcpConfigPath() string {
	return filepath.Join(rt.project.Path, ".squads", "mcp", rt.squadID+".toml")
}

// renderMCPConfig writes the squad's enabled servers to mcp.toml. The
// write is atomic: a temp file in the same directory is renamed over
// the target, so the backend never reads a half-written config.
func (rt *squadRuntime) renderMCPConfig(ctx context.Context) error {
	servers, err := rt.sup.mcp.ListEnabledServers(ctx, rt.squadID)
	if err != nil {
		return err
	}

	doc := mcpTOML{Servers: make(map[string]mcpServerTOML, len(servers))}
	for _, srv := range servers {
		doc.Servers[srv.Name] = serverToTOML(srv)
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal mcp config: %w", err)
	}

	path := rt.mcpConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create mcp config dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".mcp-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp mcp config: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write mcp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close mcp config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to install mcp config: %w", err)
	}
	return nil
}

func serverToTOML(srv *ent.MCPServer) mcpServerTOML {
	out := mcpServerTOML{
		Type:    string(srv.ServerType),
		Headers: srv.Headers,
	}
	switch srv.ServerType {
	case mcpserver.ServerTypeRemote:
		out.URL = srv.URL
	case mcpserver.ServerTypeContainer:
		out.Image = srv.Image
		out.Command = srv.Command
		out.Args = srv.Args
	}
	return out
}

// reconcileMCP re-renders mcp.toml and, when the backend is running,
// asks it to reload. Per-server statuses are recorded and published so
// clients see the outcome.
func (rt *squadRuntime) reconcileMCP(ctx context.Context) error {
	if err := rt.renderMCPConfig(ctx); err != nil {
		return err
	}

	oc, clientErr := rt.client()
	reloadErr := clientErr
	if clientErr == nil {
		reloadCtx, cancel := context.WithTimeout(ctx, rt.sup.cfg.Runtime.RequestTimeout)
		reloadErr = rt.reloadBackend(reloadCtx, oc.BaseURL())
		cancel()
	}

	servers, err := rt.sup.mcp.ListEnabledServers(ctx, rt.squadID)
	if err != nil {
		return err
	}
	for _, srv := range servers {
		status, errMsg := "active", ""
		if reloadErr != nil {
			// Config is on disk; the backend applies it at next start.
			status, errMsg = "pending", reloadErr.Error()
		}
		if err := rt.sup.mcp.SetServerStatus(ctx, srv.ID, status, errMsg); err != nil {
			rt.logger.Warn("Failed to record mcp server status", "server", srv.Name, "error", err)
		}
		rt.publishMCPStatus(ctx, srv, status, errMsg)
	}

	if reloadErr != nil && clientErr == nil {
		return fmt.Errorf("mcp reload failed: %w", reloadErr)
	}
	return nil
}

// reloadBackend tells a running backend to re-read its MCP config.
func (rt *squadRuntime) reloadBackend(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/config/reload", nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("reload returned %d", resp.StatusCode)
	}
	return nil
}

func (rt *squadRuntime) publishMCPStatus(ctx context.Context, srv *ent.MCPServer, status, errMsg string) {
	if err := rt.sup.publisher.PublishMCPServer(ctx, events.MCPServerPayload{
		ProjectID: rt.sq.ProjectID,
		SquadID:   rt.squadID,
		ServerID:  srv.ID,
		Name:      srv.Name,
		Status:    status,
		Error:     errMsg,
	}); err != nil {
		rt.logger.Warn("Failed to publish mcp status", "server", srv.Name, "error", err)
	}
}
