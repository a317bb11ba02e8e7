package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/buildsquads/squads/pkg/api"
	"github.com/buildsquads/squads/pkg/board"
	"github.com/buildsquads/squads/pkg/cleanup"
	"github.com/buildsquads/squads/pkg/config"
	"github.com/buildsquads/squads/pkg/database"
	"github.com/buildsquads/squads/pkg/events"
	"github.com/buildsquads/squads/pkg/ingest"
	"github.com/buildsquads/squads/pkg/nodes"
	"github.com/buildsquads/squads/pkg/orchestrator"
	"github.com/buildsquads/squads/pkg/runtime"
	"github.com/buildsquads/squads/pkg/services"
	"github.com/buildsquads/squads/pkg/slack"
	"github.com/buildsquads/squads/pkg/version"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	configDir := flag.String("config-dir", "./deploy/config", "Directory containing configuration files")
	flag.Parse()

	// Optional .env next to the config files; absence is fine.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("No .env file loaded from %s: %v", envPath, err)
	}

	port := getEnv("HTTP_PORT", "8080")
	addr := ":" + port

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	slog.Info("Configuration loaded",
		"version", version.Full(),
		"roles", cfg.Stats().Roles,
		"levels", cfg.Stats().Levels)

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database configuration: %v", err)
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	// Service layer.
	projectService := services.NewProjectService(db.Client)
	squadService := services.NewSquadService(db.Client)
	agentService := services.NewAgentService(db.Client, cfg.Roles, cfg.Defaults.Model)
	sessionService := services.NewSessionService(db.Client)
	transcriptService := services.NewTranscriptService(db.Client)
	cardService := services.NewCardService(db.Client)
	mcpService := services.NewMCPService(db.Client)
	nodeService := services.NewNodeService(db.Client)
	eventService := services.NewEventService(db.Client)

	// Event fan-out: bus for live subscribers, publisher persists then
	// broadcasts, connection manager serves the WebSocket clients.
	bus := events.NewBus()
	publisher := events.NewPublisher(eventService, bus)
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(bus, catchupQuerier, 10*time.Second)

	// Backend plumbing. The ingester gets its idle notifier once the
	// orchestrator exists; the supervisor holds the ingester from birth.
	ingester := ingest.NewIngester(sessionService, transcriptService, publisher, nil)
	supervisor := runtime.NewSupervisor(squadService, projectService, mcpService, publisher, ingester, cfg)
	orch := orchestrator.New(sessionService, transcriptService, agentService, eventService, supervisor, publisher, cfg.Runtime)
	ingester.SetIdleNotifier(orch)

	// Slack is optional; a nil service is a no-op everywhere.
	var slackService *slack.Service
	if cfg.System.Slack.IsEnabled() {
		slackService = slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.System.Slack.TokenEnv),
			Channel:      cfg.System.Slack.Channel,
			DashboardURL: getEnv("DASHBOARD_URL", ""),
		})
		if slackService == nil {
			slog.Warn("Slack enabled but token or channel missing; notifications disabled")
		}
	}
	orch.SetNotifier(slackService)

	engine := board.NewEngine(cardService, agentService, sessionService, transcriptService,
		projectService, squadService, orch, publisher, slackService, cfg.Runtime)
	registry := nodes.NewRegistry(nodeService, publisher, cfg.Runtime)
	catalog := runtime.NewCatalog(cfg.System.DockerMCPBin, cfg.Runtime.CatalogTTL)

	// Reconcile persisted state before accepting traffic: squads that
	// were running come back up, interrupted turns get their timers.
	if err := supervisor.Reconcile(ctx); err != nil {
		slog.Error("Backend reconciliation failed", "error", err)
	}
	if err := orch.Resume(ctx); err != nil {
		slog.Error("Session resume failed", "error", err)
	}

	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	go engine.Run(workerCtx)
	go registry.Run(workerCtx)

	retention := cleanup.NewService(cfg.Runtime, sessionService, eventService)
	retention.Start(workerCtx)

	httpServer := api.NewServer(api.Deps{
		Config:      cfg,
		DB:          db,
		Projects:    projectService,
		Squads:      squadService,
		Agents:      agentService,
		Sessions:    sessionService,
		Transcripts: transcriptService,
		Cards:       cardService,
		MCP:         mcpService,
		Nodes:       nodeService,
		Supervisor:  supervisor,
		Catalog:     catalog,
		Orch:        orch,
		Engine:      engine,
		Registry:    registry,
		Publisher:   publisher,
		ConnManager: connManager,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "addr", addr)
		if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Received shutdown signal", "signal", sig)
	case err := <-errCh:
		slog.Error("HTTP server failed", "error", err)
	}

	// Stop background workers first so nothing schedules new turns,
	// then flush the orchestrator and take the backends down.
	stopWorkers()
	retention.Stop()
	orch.Shutdown()

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	supervisor.StopAll(stopCtx)
	cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}

	slog.Info("Shutdown complete")
}
