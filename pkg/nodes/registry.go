// Package nodes maintains the external node registry: opencode
// backends that this orchestrator did not provision but can display.
// Nodes come from a periodic local process scan and from manual
// registration; both are re-probed on a fixed interval.
package nodes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/externalnode"
	"github.com/buildsquads/squads/pkg/config"
	"github.com/buildsquads/squads/pkg/events"
	"github.com/buildsquads/squads/pkg/opencode"
	"github.com/buildsquads/squads/pkg/services"
)

// Registry discovers and health-checks external opencode nodes.
type Registry struct {
	nodes     *services.NodeService
	publisher *events.Publisher
	cfg       *config.RuntimeConfig
	logger    *slog.Logger
}

// NewRegistry creates a node registry.
func NewRegistry(nodes *services.NodeService, publisher *events.Publisher, cfg *config.RuntimeConfig) *Registry {
	return &Registry{
		nodes:     nodes,
		publisher: publisher,
		cfg:       cfg,
		logger:    slog.With("component", "nodes"),
	}
}

// Register probes a manually submitted URL and persists the node on
// success. A dead URL is rejected rather than stored.
func (r *Registry) Register(ctx context.Context, baseURL string) (*ent.ExternalNode, error) {
	normalized, err := services.NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, services.NewValidationError("base_url", err.Error())
	}

	info, err := r.probe(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrBackendUnavailable, err)
	}

	node, err := r.nodes.UpsertNode(ctx, normalized, externalnode.SourceManual)
	if err != nil {
		return nil, err
	}
	if err := r.nodes.RecordProbeSuccess(ctx, node.ID, info.Version); err != nil {
		r.logger.Warn("Failed to record probe result", "node", node.ID, "error", err)
	}
	r.publishNode(ctx, node.ID, true, info.Version)
	return r.nodes.GetNode(ctx, node.ID)
}

// Run alternates local discovery scans and health probes until the
// context ends.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.NodeScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.scanLocal(ctx)
			r.probeAll(ctx)
		}
	}
}

// scanLocal finds opencode processes listening on local TCP ports and
// registers the ones that answer an /info probe.
func (r *Registry) scanLocal(ctx context.Context) {
	ports, err := listeningPorts(ctx, "opencode")
	if err != nil {
		r.logger.Debug("Local node scan unavailable", "error", err)
		return
	}
	for _, port := range ports {
		baseURL := "http://127.0.0.1:" + strconv.Itoa(port)
		info, err := r.probe(ctx, baseURL)
		if err != nil {
			continue
		}
		node, err := r.nodes.UpsertNode(ctx, baseURL, externalnode.SourceLocalLsof)
		if err != nil {
			r.logger.Warn("Failed to register scanned node", "url", baseURL, "error", err)
			continue
		}
		if err := r.nodes.RecordProbeSuccess(ctx, node.ID, info.Version); err != nil {
			r.logger.Warn("Failed to record probe result", "node", node.ID, "error", err)
		}
		r.publishNode(ctx, node.ID, true, info.Version)
	}
}

// probeAll re-checks every known node and updates its health.
func (r *Registry) probeAll(ctx context.Context) {
	nodes, err := r.nodes.ListNodes(ctx)
	if err != nil {
		r.logger.Warn("Failed to list nodes for probing", "error", err)
		return
	}
	for _, node := range nodes {
		info, err := r.probe(ctx, node.ID)
		if err != nil {
			if err := r.nodes.RecordProbeFailure(ctx, node.ID, r.cfg.NodeFailureLimit); err != nil {
				r.logger.Warn("Failed to record probe failure", "node", node.ID, "error", err)
			}
			if node.Healthy && node.ProbeFailures+1 >= r.cfg.NodeFailureLimit {
				r.publishNode(ctx, node.ID, false, node.Version)
			}
			continue
		}
		if err := r.nodes.RecordProbeSuccess(ctx, node.ID, info.Version); err != nil {
			r.logger.Warn("Failed to record probe success", "node", node.ID, "error", err)
		}
		if !node.Healthy {
			r.publishNode(ctx, node.ID, true, info.Version)
		}
	}
}

// probe fetches /info from a node with a short deadline.
func (r *Registry) probe(ctx context.Context, baseURL string) (*opencode.Info, error) {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return opencode.NewClient(baseURL).Info(probeCtx)
}

func (r *Registry) publishNode(ctx context.Context, baseURL string, healthy bool, version string) {
	if err := r.publisher.PublishNode(ctx, events.NodePayload{
		BaseURL: baseURL,
		Healthy: healthy,
		Version: version,
	}); err != nil {
		r.logger.Warn("Failed to publish node event", "node", baseURL, "error", err)
	}
}

// listeningPorts enumerates local TCP listen ports held by processes
// with the given command name, via lsof.
func listeningPorts(ctx context.Context, processName string) ([]int, error) {
	cmd := exec.CommandContext(ctx, "lsof",
		"-iTCP", "-sTCP:LISTEN", "-P", "-n",
		"-a", "-c", processName)
	out, err := cmd.Output()
	if err != nil {
		// lsof exits 1 when nothing matches.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && len(out) == 0 {
			return nil, nil
		}
		return nil, err
	}
	return parseLsofPorts(string(out)), nil
}

// parseLsofPorts pulls the listen ports out of lsof output lines like
// "opencode 1234 user 7u IPv4 ... TCP 127.0.0.1:4096 (LISTEN)".
func parseLsofPorts(out string) []int {
	seen := make(map[int]bool)
	var ports []int
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "(LISTEN)") {
			continue
		}
		fields := strings.Fields(line)
		for _, f := range fields {
			idx := strings.LastIndex(f, ":")
			if idx < 0 {
				continue
			}
			port, err := strconv.Atoi(f[idx+1:])
			if err != nil || port <= 0 || port > 65535 {
				continue
			}
			if !seen[port] {
				seen[port] = true
				ports = append(ports, port)
			}
		}
	}
	return ports
}
