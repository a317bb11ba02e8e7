// Package ingest consumes raw backend event streams, normalizes their
// dotted kinds, persists transcript effects, and republishes normalized
// events on the bus.
package ingest

import "strings"

// Normalized kind forms for the raw backend kinds with dedicated
// handling. Anything else goes through the generic dotted→colon rule.
const (
	rawMessageUpdated     = "message.updated"
	rawMessagePartUpdated = "message.part.updated"
	rawPromptAppend       = "tui.prompt.append"
	rawSessionIdle        = "session.idle"
	rawSessionStatus      = "session.status"
	rawSessionStatusMoved = "session.status_changed"
)

// NormalizeKind converts a raw dotted backend kind to the internal
// colon form. Known kinds map through a fixed table; unknown kinds keep
// their first segment as the prefix and join the rest with underscores,
// so "permission.replied" becomes "permission:replied" and
// "file.watcher.updated" becomes "file:watcher_updated".
func NormalizeKind(raw string) string {
	switch raw {
	case rawMessageUpdated:
		return "message:updated"
	case rawMessagePartUpdated:
		return "message:part"
	case rawPromptAppend:
		return "message:text_append"
	case rawSessionIdle:
		return "session:idle"
	case rawSessionStatus, rawSessionStatusMoved:
		return "session:status_changed"
	}

	prefix, rest, found := strings.Cut(raw, ".")
	if !found || rest == "" {
		return raw
	}
	return prefix + ":" + strings.ReplaceAll(rest, ".", "_")
}
