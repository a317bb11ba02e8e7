// Package config loads and validates the squads.yaml configuration:
// system settings, the agent role registry, runtime knobs, and defaults.
package config

// Config is the fully loaded and validated application configuration.
type Config struct {
	System   *SystemConfig
	Roles    *RolesRegistry
	Runtime  *RuntimeConfig
	Defaults *Defaults
}

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	// AllowedWSOrigins lists origins permitted to open WebSocket streams.
	// Empty means same-origin only.
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`

	// OpencodeBin is the opencode executable spawned per squad.
	OpencodeBin string `yaml:"opencode_bin"`

	// DockerMCPBin is the docker executable used for `docker mcp` catalog
	// and gateway operations.
	DockerMCPBin string `yaml:"docker_mcp_bin"`

	// Slack holds optional notification settings.
	Slack *SlackConfig `yaml:"slack"`
}

// SlackConfig holds Slack notification settings from YAML.
type SlackConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// IsEnabled reports whether Slack notifications are turned on.
func (s *SlackConfig) IsEnabled() bool {
	return s != nil && s.Enabled != nil && *s.Enabled
}

// Defaults holds fallback values applied when a request omits a field.
type Defaults struct {
	// Model used when neither the agent nor the request names one.
	Model string `yaml:"model"`

	// BaseBranch used for build worktrees when the card does not set one.
	BaseBranch string `yaml:"base_branch"`
}

// Stats summarizes loaded configuration for startup logging.
type Stats struct {
	Roles  int
	Levels int
}

// Stats returns configuration statistics.
func (c *Config) Stats() Stats {
	return Stats{
		Roles:  len(c.Roles.Roles()),
		Levels: len(Levels),
	}
}
