package config

import (
	"fmt"
	"sort"
)

// Levels are the agent seniority levels, in ascending order.
var Levels = []string{"junior", "senior", "principal"}

// RoleConfig describes one agent role as declared in squads.yaml.
type RoleConfig struct {
	// Description is shown to operators in the roles endpoint.
	Description string `yaml:"description"`

	// Model overrides the default model for this role.
	Model string `yaml:"model,omitempty"`

	// SystemInstructions maps level → system instruction text.
	SystemInstructions map[string]string `yaml:"system_instructions,omitempty"`
}

// RolesRegistry is the in-memory registry of agent roles built at load time.
// Built-in roles are merged with user-defined ones (user wins).
type RolesRegistry struct {
	roles map[string]RoleConfig
}

// NewRolesRegistry builds a registry from merged role configs.
func NewRolesRegistry(roles map[string]RoleConfig) *RolesRegistry {
	return &RolesRegistry{roles: roles}
}

// Get returns the config for a role.
func (r *RolesRegistry) Get(role string) (RoleConfig, error) {
	cfg, ok := r.roles[role]
	if !ok {
		return RoleConfig{}, fmt.Errorf("%w: %s", ErrRoleNotFound, role)
	}
	return cfg, nil
}

// Has reports whether the role exists.
func (r *RolesRegistry) Has(role string) bool {
	_, ok := r.roles[role]
	return ok
}

// Roles returns all role names, sorted.
func (r *RolesRegistry) Roles() []string {
	names := make([]string, 0, len(r.roles))
	for name := range r.roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SystemInstruction resolves the instruction for a role at a level.
// Falls back to the "senior" instruction, then to empty.
func (r *RolesRegistry) SystemInstruction(role, level string) string {
	cfg, ok := r.roles[role]
	if !ok {
		return ""
	}
	if instr, ok := cfg.SystemInstructions[level]; ok {
		return instr
	}
	return cfg.SystemInstructions["senior"]
}

// ValidLevel reports whether level is a known seniority level.
func ValidLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

// builtinRoles are the roles every deployment has without any YAML.
func builtinRoles() map[string]RoleConfig {
	return map[string]RoleConfig{
		"architect": {
			Description: "Plans work: writes PRDs and issue breakdowns",
			SystemInstructions: map[string]string{
				"junior":    "You are a software planner. Break work into small, verifiable issues.",
				"senior":    "You are a software architect. Produce a PRD and a dependency-ordered issue plan.",
				"principal": "You are a principal architect. Produce a PRD, an issue plan, and call out risks and open questions.",
			},
		},
		"builder": {
			Description: "Implements issue plans in a dedicated worktree",
			SystemInstructions: map[string]string{
				"junior":    "You are a software engineer. Implement the given issues exactly as specified.",
				"senior":    "You are a senior software engineer. Implement the issue plan, keeping commits small and tested.",
				"principal": "You are a principal engineer. Implement the issue plan and improve adjacent code where it is cheap.",
			},
		},
		"reviewer": {
			Description: "Reviews pull requests produced by build sessions",
			SystemInstructions: map[string]string{
				"junior":    "You are a code reviewer. Check correctness and tests.",
				"senior":    "You are a senior code reviewer. Check correctness, tests, and design; be specific.",
				"principal": "You are a principal reviewer. Judge the change against the PRD and flag anything that should block merge.",
			},
		},
		"generalist": {
			Description: "Handles ad-hoc sessions in any lane",
			SystemInstructions: map[string]string{
				"senior": "You are a capable software engineer working inside this repository.",
			},
		},
	}
}

// mergeRoles merges built-in and user-defined roles; user entries win.
func mergeRoles(builtin, user map[string]RoleConfig) map[string]RoleConfig {
	merged := make(map[string]RoleConfig, len(builtin)+len(user))
	for name, cfg := range builtin {
		merged[name] = cfg
	}
	for name, cfg := range user {
		merged[name] = cfg
	}
	return merged
}
