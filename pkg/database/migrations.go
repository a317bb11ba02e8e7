package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent/Atlas
// cannot express. These must match the constraints in
// migrations/000001_init.up.sql.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one active session per agent. Active statuses mirror the
	// orchestrator's active set.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agent_sessions_one_active_per_agent
		ON agent_sessions (agent_id)
		WHERE status IN ('pending', 'starting', 'running', 'paused')`)
	if err != nil {
		return fmt.Errorf("failed to create active-session index: %w", err)
	}

	// A build worktree path may be claimed by at most one active session.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agent_sessions_worktree_claim
		ON agent_sessions (worktree_path)
		WHERE worktree_path <> '' AND status IN ('pending', 'starting', 'running', 'paused')`)
	if err != nil {
		return fmt.Errorf("failed to create worktree claim index: %w", err)
	}

	return nil
}
