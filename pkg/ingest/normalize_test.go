package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKind(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"message.updated", "message:updated"},
		{"message.part.updated", "message:part"},
		{"tui.prompt.append", "message:text_append"},
		{"session.idle", "session:idle"},
		{"session.status", "session:status_changed"},
		{"session.status_changed", "session:status_changed"},
		{"permission.replied", "permission:replied"},
		{"file.watcher.updated", "file:watcher_updated"},
		{"installation.updated", "installation:updated"},
		{"nodots", "nodots"},
		{"trailing.", "trailing."},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKind(tt.raw))
		})
	}
}

func TestIdleStatusEvent(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		idle    bool
	}{
		{"status field", map[string]any{"status": "idle"}, true},
		{"type field", map[string]any{"type": "idle"}, true},
		{"both fields", map[string]any{"type": "idle", "status": "idle"}, true},
		{"busy status", map[string]any{"status": "busy"}, false},
		{"other type", map[string]any{"type": "started"}, false},
		{"empty payload", map[string]any{}, false},
		{"nil payload", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.idle, idleStatusEvent(tt.payload))
		})
	}
}
