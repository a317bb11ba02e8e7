package config

import "time"

// RuntimeConfig contains squad runtime, orchestrator, and registry knobs.
type RuntimeConfig struct {
	// ProvisioningTimeout bounds how long ensure_running may take to bring
	// a squad backend up before failing with provisioning_timeout.
	ProvisioningTimeout time.Duration `yaml:"provisioning_timeout"`

	// HealthInterval is the period between backend /info health probes.
	HealthInterval time.Duration `yaml:"health_interval"`

	// HealthFailureLimit is the number of consecutive failed probes that
	// moves a running squad to error.
	HealthFailureLimit int `yaml:"health_failure_limit"`

	// RestartBackoffInitial and RestartBackoffMax bound the exponential
	// restart backoff for crashed backends. Backoff resets after
	// RestartBackoffReset of stable running.
	RestartBackoffInitial time.Duration `yaml:"restart_backoff_initial"`
	RestartBackoffMax     time.Duration `yaml:"restart_backoff_max"`
	RestartBackoffReset   time.Duration `yaml:"restart_backoff_reset"`

	// StopGracePeriod is how long a backend gets after SIGTERM before SIGKILL.
	StopGracePeriod time.Duration `yaml:"stop_grace_period"`

	// TurnTimeout turns an unanswered prompt into failed/backend_silent.
	TurnTimeout time.Duration `yaml:"turn_timeout"`

	// RequestTimeout is the default deadline for backend calls;
	// PromptTimeout applies to long prompt dispatches.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	PromptTimeout  time.Duration `yaml:"prompt_timeout"`

	// NodeScanInterval is the period between local lsof discovery scans
	// and node liveness re-probes.
	NodeScanInterval time.Duration `yaml:"node_scan_interval"`

	// NodeFailureLimit marks a node unhealthy after this many missed probes.
	NodeFailureLimit int `yaml:"node_failure_limit"`

	// CatalogTTL is how long the docker mcp catalog snapshot is cached.
	CatalogTTL time.Duration `yaml:"catalog_ttl"`

	// BoardPollInterval is how often the board engine checks stage
	// sessions for completion.
	BoardPollInterval time.Duration `yaml:"board_poll_interval"`

	// EventRetentionGrace is how long transient session events are kept
	// after a session terminates before cleanup.
	EventRetentionGrace time.Duration `yaml:"event_retention_grace"`

	// GracefulShutdownTimeout bounds shutdown of runtimes and orchestrators.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultRuntimeConfig returns the built-in runtime defaults.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		ProvisioningTimeout:     60 * time.Second,
		HealthInterval:          10 * time.Second,
		HealthFailureLimit:      3,
		RestartBackoffInitial:   1 * time.Second,
		RestartBackoffMax:       60 * time.Second,
		RestartBackoffReset:     5 * time.Minute,
		StopGracePeriod:         10 * time.Second,
		TurnTimeout:             10 * time.Minute,
		RequestTimeout:          30 * time.Second,
		PromptTimeout:           10 * time.Minute,
		NodeScanInterval:        30 * time.Second,
		NodeFailureLimit:        3,
		CatalogTTL:              5 * time.Minute,
		BoardPollInterval:       2 * time.Second,
		EventRetentionGrace:     60 * time.Second,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
