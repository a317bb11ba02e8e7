package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranscriptEntry holds the schema definition for the TranscriptEntry entity.
// An immutable, sequenced record of a message and its parts. The
// concatenation of a session's entries ordered by seq is the canonical
// transcript.
type TranscriptEntry struct {
	ent.Schema
}

// Fields of the TranscriptEntry.
func (TranscriptEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.Int("seq").
			NonNegative(),
		field.Enum("role").
			Values("user", "assistant", "system", "tool"),
		field.String("backend_message_id").
			Optional().
			Nillable().
			Comment("Backend-issued message id; upsert key across reconnects"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Normalized message: info fields plus ordered parts"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TranscriptEntry.
func (TranscriptEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AgentSession.Type).
			Ref("transcript_entries").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the TranscriptEntry.
func (TranscriptEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "seq").Unique(),
		index.Fields("session_id", "backend_message_id").Unique(),
	}
}
