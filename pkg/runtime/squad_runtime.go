package runtime

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/buildsquads/squads/ent"
	"github.com/buildsquads/squads/ent/squad"
	"github.com/buildsquads/squads/pkg/ingest"
	"github.com/buildsquads/squads/pkg/opencode"
)

// bannerPattern extracts the listen address from the backend's startup
// banner, e.g. "opencode server listening on http://127.0.0.1:49152".
var bannerPattern = regexp.MustCompile(`https?://[\w.\-]+:\d+`)

// squadRuntime drives one squad's backend process through
// idle → provisioning → running → error. All mutations happen under mu.
type squadRuntime struct {
	sup     *Supervisor
	squadID string
	sq      *ent.Squad
	project *ent.Project

	mu         sync.Mutex
	status     squad.OpencodeStatus
	url        string
	cmd        *exec.Cmd
	oc         *opencode.Client
	cancelLoop context.CancelFunc
	waitDone   chan struct{}

	// Restart backoff: doubles per crash, resets after stable running.
	backoff    time.Duration
	runningAt  time.Time
	healthMiss int

	logger *slog.Logger
}

func newSquadRuntime(sup *Supervisor, sq *ent.Squad, project *ent.Project) *squadRuntime {
	return &squadRuntime{
		sup:     sup,
		squadID: sq.ID,
		sq:      sq,
		project: project,
		status:  squad.OpencodeStatusIdle,
		backoff: sup.cfg.Runtime.RestartBackoffInitial,
		logger:  slog.With("component", "runtime", "squad_id", sq.ID),
	}
}

// ensureRunning starts the backend if needed and waits for it to accept
// requests, bounded by the provisioning timeout.
func (rt *squadRuntime) ensureRunning(ctx context.Context) (*opencode.Client, error) {
	rt.mu.Lock()
	if rt.status == squad.OpencodeStatusRunning && rt.oc != nil {
		oc := rt.oc
		rt.mu.Unlock()
		return oc, nil
	}
	if rt.status == squad.OpencodeStatusProvisioning {
		rt.mu.Unlock()
		return rt.waitRunning(ctx)
	}
	rt.status = squad.OpencodeStatusProvisioning
	rt.mu.Unlock()

	if err := rt.sup.squads.SetBackendStatus(ctx, rt.squadID, squad.OpencodeStatusProvisioning, ""); err != nil {
		rt.logger.Warn("Failed to persist provisioning status", "error", err)
	}
	rt.sup.publishBackendStatus(ctx, rt.sq, string(squad.OpencodeStatusProvisioning), "", "")

	if err := rt.start(ctx); err != nil {
		rt.fail(ctx, err)
		return nil, err
	}
	return rt.waitRunning(ctx)
}

// start renders MCP config, spawns the process, and parses the listen
// URL from its stdout banner.
func (rt *squadRuntime) start(ctx context.Context) error {
	if err := rt.renderMCPConfig(ctx); err != nil {
		rt.logger.Warn("Failed to render MCP config, starting without it", "error", err)
	}

	bin := rt.sup.cfg.System.OpencodeBin
	cmd := exec.Command(bin, "serve", "--port", "0")
	cmd.Dir = rt.project.Path
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", bin, err)
	}

	urlCh := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(stdout)
		sent := false
		for scanner.Scan() {
			line := scanner.Text()
			if !sent {
				if m := bannerPattern.FindString(line); m != "" {
					urlCh <- m
					sent = true
					continue
				}
			}
			rt.logger.Debug("backend output", "line", line)
		}
		if !sent {
			close(urlCh)
		}
	}()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		return ctx.Err()
	case <-time.After(rt.sup.cfg.Runtime.ProvisioningTimeout):
		_ = cmd.Process.Kill()
		return ErrProvisioningTimeout
	case url, ok := <-urlCh:
		if !ok || url == "" {
			_ = cmd.Wait()
			return fmt.Errorf("backend exited before announcing a listen address")
		}
		rt.becomeRunning(ctx, cmd, strings.TrimRight(url, "/"))
		return nil
	}
}

// becomeRunning records the live process and starts the watch, health,
// and event-stream goroutines.
func (rt *squadRuntime) becomeRunning(ctx context.Context, cmd *exec.Cmd, url string) {
	loopCtx, cancel := context.WithCancel(context.Background())

	rt.mu.Lock()
	rt.status = squad.OpencodeStatusRunning
	rt.url = url
	rt.cmd = cmd
	rt.oc = opencode.NewClient(url)
	rt.cancelLoop = cancel
	rt.waitDone = make(chan struct{})
	rt.runningAt = time.Now()
	rt.healthMiss = 0
	oc := rt.oc
	rt.mu.Unlock()

	pid := cmd.Process.Pid
	rt.logger.Info("Backend running", "url", url, "pid", pid)

	if err := rt.sup.squads.SetBackendRunning(ctx, rt.squadID, url, pid); err != nil {
		rt.logger.Warn("Failed to persist running status", "error", err)
	}
	rt.sup.publishBackendStatus(ctx, rt.sq, string(squad.OpencodeStatusRunning), url, "")

	go rt.watch(loopCtx, cmd)
	go rt.healthLoop(loopCtx, oc)
	go rt.streamEvents(loopCtx, oc)
}

// watch waits for process exit and schedules a restart with backoff.
func (rt *squadRuntime) watch(ctx context.Context, cmd *exec.Cmd) {
	err := cmd.Wait()
	rt.mu.Lock()
	if rt.waitDone != nil {
		close(rt.waitDone)
		rt.waitDone = nil
	}
	rt.mu.Unlock()
	if ctx.Err() != nil {
		// Deliberate stop.
		return
	}

	rt.mu.Lock()
	// Stable running long enough resets the backoff ladder.
	if time.Since(rt.runningAt) >= rt.sup.cfg.Runtime.RestartBackoffReset {
		rt.backoff = rt.sup.cfg.Runtime.RestartBackoffInitial
	}
	delay := rt.backoff
	rt.backoff *= 2
	if rt.backoff > rt.sup.cfg.Runtime.RestartBackoffMax {
		rt.backoff = rt.sup.cfg.Runtime.RestartBackoffMax
	}
	if rt.cancelLoop != nil {
		rt.cancelLoop()
		rt.cancelLoop = nil
	}
	rt.status = squad.OpencodeStatusError
	rt.cmd = nil
	rt.oc = nil
	rt.mu.Unlock()

	msg := "backend exited"
	if err != nil {
		msg = fmt.Sprintf("backend exited: %v", err)
	}
	rt.logger.Warn("Backend crashed, restarting", "error", err, "backoff", delay)

	bg := context.Background()
	if err := rt.sup.squads.SetBackendStatus(bg, rt.squadID, squad.OpencodeStatusError, msg); err != nil {
		rt.logger.Warn("Failed to persist error status", "error", err)
	}
	rt.sup.publishBackendStatus(bg, rt.sq, string(squad.OpencodeStatusError), "", msg)

	time.Sleep(delay)

	rt.mu.Lock()
	stillError := rt.status == squad.OpencodeStatusError
	if stillError {
		rt.status = squad.OpencodeStatusProvisioning
	}
	rt.mu.Unlock()
	if !stillError {
		return
	}

	if err := rt.start(bg); err != nil {
		rt.fail(bg, err)
	}
}

// healthLoop probes HEAD /info on an interval; the failure limit in a
// row moves the squad to error and the watch goroutine's restart path
// takes over via a process kill.
func (rt *squadRuntime) healthLoop(ctx context.Context, oc *opencode.Client) {
	interval := rt.sup.cfg.Runtime.HealthInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		probeCtx, cancel := context.WithTimeout(ctx, interval)
		err := oc.Ping(probeCtx)
		cancel()

		rt.mu.Lock()
		if err != nil {
			rt.healthMiss++
			misses := rt.healthMiss
			cmd := rt.cmd
			rt.mu.Unlock()
			rt.logger.Warn("Backend health probe failed", "misses", misses, "error", err)
			if misses >= rt.sup.cfg.Runtime.HealthFailureLimit && cmd != nil {
				// Kill the wedged process; watch() restarts with backoff.
				_ = cmd.Process.Kill()
				return
			}
			continue
		}
		rt.healthMiss = 0
		rt.mu.Unlock()
	}
}

// streamEvents pumps the backend's SSE feed into the ingester until the
// runtime loop context is cancelled.
func (rt *squadRuntime) streamEvents(ctx context.Context, oc *opencode.Client) {
	src := ingest.Source{ProjectID: rt.sq.ProjectID, SquadID: rt.squadID}
	err := oc.Stream(ctx, func(evt opencode.Event) {
		rt.sup.ingester.HandleEvent(ctx, src, evt)
	})
	if err != nil && ctx.Err() == nil {
		rt.logger.Warn("Event stream ended", "error", err)
	}
}

// waitRunning polls until the runtime reaches running or the
// provisioning timeout expires.
func (rt *squadRuntime) waitRunning(ctx context.Context) (*opencode.Client, error) {
	deadline := time.Now().Add(rt.sup.cfg.Runtime.ProvisioningTimeout)
	for {
		rt.mu.Lock()
		status, oc := rt.status, rt.oc
		rt.mu.Unlock()

		switch status {
		case squad.OpencodeStatusRunning:
			if oc != nil {
				return oc, nil
			}
		case squad.OpencodeStatusError, squad.OpencodeStatusIdle:
			return nil, ErrNotRunning
		}

		if time.Now().After(deadline) {
			return nil, ErrProvisioningTimeout
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}

// stop terminates the process: SIGTERM to the process group, SIGKILL
// after the grace period.
func (rt *squadRuntime) stop(ctx context.Context) error {
	rt.mu.Lock()
	cmd := rt.cmd
	done := rt.waitDone
	if rt.cancelLoop != nil {
		rt.cancelLoop()
		rt.cancelLoop = nil
	}
	rt.status = squad.OpencodeStatusIdle
	rt.cmd = nil
	rt.oc = nil
	rt.url = ""
	rt.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		pid := cmd.Process.Pid
		// Negative pid signals the whole process group.
		_ = syscall.Kill(-pid, syscall.SIGTERM)

		if done == nil {
			done = make(chan struct{})
			close(done)
		}
		select {
		case <-done:
		case <-time.After(rt.sup.cfg.Runtime.StopGracePeriod):
			rt.logger.Warn("Backend ignored SIGTERM, killing", "pid", pid)
			_ = syscall.Kill(-pid, syscall.SIGKILL)
		case <-ctx.Done():
			_ = syscall.Kill(-pid, syscall.SIGKILL)
		}
	}

	bg := context.Background()
	if err := rt.sup.squads.SetBackendStatus(bg, rt.squadID, squad.OpencodeStatusIdle, ""); err != nil {
		return err
	}
	rt.sup.publishBackendStatus(bg, rt.sq, string(squad.OpencodeStatusIdle), "", "")
	return nil
}

// fail records a terminal provisioning failure.
func (rt *squadRuntime) fail(ctx context.Context, cause error) {
	rt.mu.Lock()
	rt.status = squad.OpencodeStatusError
	rt.cmd = nil
	rt.oc = nil
	rt.mu.Unlock()

	msg := cause.Error()
	rt.logger.Error("Backend provisioning failed", "error", cause)
	if err := rt.sup.squads.SetBackendStatus(ctx, rt.squadID, squad.OpencodeStatusError, msg); err != nil {
		rt.logger.Warn("Failed to persist error status", "error", err)
	}
	rt.sup.publishBackendStatus(ctx, rt.sq, string(squad.OpencodeStatusError), "", msg)
}

// client returns the live client or ErrNotRunning.
func (rt *squadRuntime) client() (*opencode.Client, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.status != squad.OpencodeStatusRunning || rt.oc == nil {
		return nil, ErrNotRunning
	}
	return rt.oc, nil
}

// state reports status, URL, and pid.
func (rt *squadRuntime) state() (string, string, int) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	pid := 0
	if rt.cmd != nil && rt.cmd.Process != nil {
		pid = rt.cmd.Process.Pid
	}
	return string(rt.status), rt.url, pid
}
