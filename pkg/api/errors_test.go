package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsquads/squads/pkg/runtime"
	"github.com/buildsquads/squads/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{
			name:     "validation",
			err:      services.NewValidationError("name", "is required"),
			wantCode: http.StatusBadRequest,
			wantKind: "validation",
		},
		{
			name:     "conflict agent busy",
			err:      services.NewConflictError(services.ConflictAgentBusy, "agent has an active session"),
			wantCode: http.StatusConflict,
			wantKind: "agent_busy",
		},
		{
			name:     "conflict worktree claimed",
			err:      services.NewConflictError(services.ConflictWorktreeClaim, "worktree path already claimed"),
			wantCode: http.StatusConflict,
			wantKind: "worktree_claimed",
		},
		{
			name:     "conflict lane blocked",
			err:      services.NewConflictError(services.ConflictLaneBlocked, "issue plan missing"),
			wantCode: http.StatusConflict,
			wantKind: "lane_precondition_unmet",
		},
		{
			name:     "not found",
			err:      services.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantKind: "not_found",
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("loading card: %w", services.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantKind: "not_found",
		},
		{
			name:     "already exists",
			err:      services.ErrAlreadyExists,
			wantCode: http.StatusConflict,
			wantKind: "already_exists",
		},
		{
			name:     "precondition failed",
			err:      services.ErrPreconditionFailed,
			wantCode: http.StatusPreconditionFailed,
			wantKind: "precondition_failed",
		},
		{
			name:     "stale version",
			err:      services.ErrConcurrentModification,
			wantCode: http.StatusConflict,
			wantKind: "stale_version",
		},
		{
			name:     "timeout",
			err:      services.ErrTimeout,
			wantCode: http.StatusRequestTimeout,
			wantKind: "timeout",
		},
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			wantCode: http.StatusRequestTimeout,
			wantKind: "timeout",
		},
		{
			name:     "backend unavailable",
			err:      services.ErrBackendUnavailable,
			wantCode: http.StatusServiceUnavailable,
			wantKind: "backend_unavailable",
		},
		{
			name:     "backend not running",
			err:      runtime.ErrNotRunning,
			wantCode: http.StatusServiceUnavailable,
			wantKind: "backend_unavailable",
		},
		{
			name:     "provisioning timeout",
			err:      runtime.ErrProvisioningTimeout,
			wantCode: http.StatusServiceUnavailable,
			wantKind: "backend_unavailable",
		},
		{
			name:     "catalog unavailable",
			err:      runtime.ErrCatalogUnavailable,
			wantCode: http.StatusServiceUnavailable,
			wantKind: "cli_unavailable",
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantKind: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, httpErr.Code)

			body, ok := httpErr.Message.(errorBody)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, body.Kind)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestMapServiceErrorDoesNotLeakInternals(t *testing.T) {
	httpErr := mapServiceError(errors.New("pq: connection refused on 10.0.0.5"))

	body := httpErr.Message.(errorBody)
	assert.Equal(t, "internal server error", body.Message)
}
