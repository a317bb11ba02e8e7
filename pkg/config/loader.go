package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// squadsYAML represents the complete squads.yaml file structure.
type squadsYAML struct {
	System   *SystemConfig         `yaml:"system"`
	Roles    map[string]RoleConfig `yaml:"roles"`
	Defaults *Defaults             `yaml:"defaults"`
	Runtime  *RuntimeConfig        `yaml:"runtime"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read squads.yaml from configDir (optional; built-ins apply without it)
//  2. Expand environment variables
//  3. Merge built-in roles with user-defined ones
//  4. Apply defaults
//  5. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"roles", stats.Roles,
		"levels", stats.Levels)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	raw := &squadsYAML{}

	path := filepath.Join(configDir, "squads.yaml")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("No squads.yaml found, using built-in configuration", "path", path)
	case err != nil:
		return nil, NewLoadError("squads.yaml", err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, raw); err != nil {
			return nil, NewLoadError("squads.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
		}
	}

	cfg := &Config{
		System:   raw.System,
		Roles:    NewRolesRegistry(mergeRoles(builtinRoles(), raw.Roles)),
		Runtime:  raw.Runtime,
		Defaults: raw.Defaults,
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills zero-valued fields with built-in defaults.
func applyDefaults(cfg *Config) {
	if cfg.System == nil {
		cfg.System = &SystemConfig{}
	}
	if cfg.System.OpencodeBin == "" {
		cfg.System.OpencodeBin = "opencode"
	}
	if cfg.System.DockerMCPBin == "" {
		cfg.System.DockerMCPBin = "docker"
	}

	if cfg.Defaults == nil {
		cfg.Defaults = &Defaults{}
	}
	if cfg.Defaults.Model == "" {
		cfg.Defaults.Model = "claude-sonnet-4"
	}
	if cfg.Defaults.BaseBranch == "" {
		cfg.Defaults.BaseBranch = "main"
	}

	defaults := DefaultRuntimeConfig()
	if cfg.Runtime == nil {
		cfg.Runtime = defaults
		return
	}
	rt := cfg.Runtime
	if rt.ProvisioningTimeout <= 0 {
		rt.ProvisioningTimeout = defaults.ProvisioningTimeout
	}
	if rt.HealthInterval <= 0 {
		rt.HealthInterval = defaults.HealthInterval
	}
	if rt.HealthFailureLimit <= 0 {
		rt.HealthFailureLimit = defaults.HealthFailureLimit
	}
	if rt.RestartBackoffInitial <= 0 {
		rt.RestartBackoffInitial = defaults.RestartBackoffInitial
	}
	if rt.RestartBackoffMax <= 0 {
		rt.RestartBackoffMax = defaults.RestartBackoffMax
	}
	if rt.RestartBackoffReset <= 0 {
		rt.RestartBackoffReset = defaults.RestartBackoffReset
	}
	if rt.StopGracePeriod <= 0 {
		rt.StopGracePeriod = defaults.StopGracePeriod
	}
	if rt.TurnTimeout <= 0 {
		rt.TurnTimeout = defaults.TurnTimeout
	}
	if rt.RequestTimeout <= 0 {
		rt.RequestTimeout = defaults.RequestTimeout
	}
	if rt.PromptTimeout <= 0 {
		rt.PromptTimeout = defaults.PromptTimeout
	}
	if rt.NodeScanInterval <= 0 {
		rt.NodeScanInterval = defaults.NodeScanInterval
	}
	if rt.NodeFailureLimit <= 0 {
		rt.NodeFailureLimit = defaults.NodeFailureLimit
	}
	if rt.CatalogTTL <= 0 {
		rt.CatalogTTL = defaults.CatalogTTL
	}
	if rt.BoardPollInterval <= 0 {
		rt.BoardPollInterval = defaults.BoardPollInterval
	}
	if rt.EventRetentionGrace <= 0 {
		rt.EventRetentionGrace = defaults.EventRetentionGrace
	}
	if rt.GracefulShutdownTimeout <= 0 {
		rt.GracefulShutdownTimeout = defaults.GracefulShutdownTimeout
	}
}

// validate checks the loaded configuration for inconsistencies.
func validate(cfg *Config) error {
	for _, role := range cfg.Roles.Roles() {
		rc, _ := cfg.Roles.Get(role)
		for level := range rc.SystemInstructions {
			if !ValidLevel(level) {
				return NewValidationError("role", role, "system_instructions",
					fmt.Errorf("%w: unknown level %q", ErrInvalidValue, level))
			}
		}
	}

	if rt := cfg.Runtime; rt.RestartBackoffInitial > rt.RestartBackoffMax {
		return NewValidationError("runtime", "restart_backoff", "",
			fmt.Errorf("%w: initial backoff exceeds max", ErrInvalidValue))
	}

	if cfg.System.Slack.IsEnabled() {
		tokenEnv := cfg.System.Slack.TokenEnv
		if tokenEnv == "" {
			tokenEnv = "SLACK_BOT_TOKEN"
		}
		if os.Getenv(tokenEnv) == "" {
			return NewValidationError("system", "slack", "token_env",
				fmt.Errorf("%w: environment variable %s is empty", ErrMissingRequiredField, tokenEnv))
		}
	}

	return nil
}
