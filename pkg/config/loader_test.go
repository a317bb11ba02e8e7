package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "squads.yaml"), []byte(yaml), 0o644))
	return dir
}

func TestInitializeWithoutConfigFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	// Built-ins carry the full pipeline roles.
	for _, role := range []string{"architect", "builder", "reviewer", "generalist"} {
		assert.True(t, cfg.Roles.Has(role), role)
	}
	assert.Equal(t, "opencode", cfg.System.OpencodeBin)
	assert.Equal(t, "docker", cfg.System.DockerMCPBin)
	assert.Equal(t, "main", cfg.Defaults.BaseBranch)
	assert.Equal(t, 10*time.Minute, cfg.Runtime.TurnTimeout)
	assert.Equal(t, 2*time.Second, cfg.Runtime.BoardPollInterval)
	assert.False(t, cfg.System.Slack.IsEnabled())
}

func TestInitializeMergesUserRoles(t *testing.T) {
	dir := writeConfig(t, `
roles:
  builder:
    description: Custom builder
    system_instructions:
      senior: Build it our way.
  dba:
    description: Database specialist
    system_instructions:
      senior: You tune queries.
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// User entries win over built-ins of the same name.
	rc, err := cfg.Roles.Get("builder")
	require.NoError(t, err)
	assert.Equal(t, "Custom builder", rc.Description)
	assert.Equal(t, "Build it our way.", cfg.Roles.SystemInstruction("builder", "senior"))

	// New roles are added alongside the built-ins.
	assert.True(t, cfg.Roles.Has("dba"))
	assert.True(t, cfg.Roles.Has("architect"))
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	dir := writeConfig(t, `
roles:
  builder:
    system_instructions:
      wizard: Too magical.
`)

	_, err := Initialize(context.Background(), dir)
	assert.Error(t, err)
}

func TestInitializeRuntimeOverrides(t *testing.T) {
	dir := writeConfig(t, `
runtime:
  turn_timeout: 5m
  board_poll_interval: 500ms
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Runtime.TurnTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Runtime.BoardPollInterval)
	// Unset knobs keep their defaults.
	assert.Equal(t, DefaultRuntimeConfig().NodeScanInterval, cfg.Runtime.NodeScanInterval)
	assert.Equal(t, DefaultRuntimeConfig().NodeFailureLimit, cfg.Runtime.NodeFailureLimit)
}

func TestInitializeSlackRequiresToken(t *testing.T) {
	dir := writeConfig(t, `
system:
  slack:
    enabled: true
    token_env: SQUADS_TEST_SLACK_TOKEN
    channel: "#squads"
`)

	t.Setenv("SQUADS_TEST_SLACK_TOKEN", "")
	_, err := Initialize(context.Background(), dir)
	assert.Error(t, err)

	t.Setenv("SQUADS_TEST_SLACK_TOKEN", "xoxb-test")
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, cfg.System.Slack.IsEnabled())
	assert.Equal(t, "#squads", cfg.System.Slack.Channel)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("SQUADS_TEST_BIN", "/usr/local/bin/opencode")

	out := ExpandEnv([]byte("system:\n  opencode_bin: {{.SQUADS_TEST_BIN}}\n"))
	assert.Contains(t, string(out), "/usr/local/bin/opencode")

	// Literal dollar signs pass through untouched.
	out = ExpandEnv([]byte("roles:\n  x:\n    description: costs $5\n"))
	assert.Contains(t, string(out), "costs $5")
}

func TestValidLevel(t *testing.T) {
	assert.True(t, ValidLevel("junior"))
	assert.True(t, ValidLevel("senior"))
	assert.True(t, ValidLevel("principal"))
	assert.False(t, ValidLevel("intern"))
}
