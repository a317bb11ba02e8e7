package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSession holds the schema definition for the AgentSession entity.
// One conversation with the backend; owns a transcript.
type AgentSession struct {
	ent.Schema
}

// Fields of the AgentSession.
func (AgentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("agent_id"),
		field.String("backend_session_id").
			Optional().
			Nillable().
			Comment("Assigned once at first backend acknowledgment, then immutable"),
		field.Enum("status").
			Values("pending", "starting", "running", "paused",
				"completed", "failed", "cancelled", "archived").
			Default("pending"),
		field.String("title").
			Optional(),
		field.String("model").
			Optional(),
		field.Enum("mode").
			Values("plan", "build").
			Default("build"),
		field.String("ticket_key").
			Optional(),
		field.String("worktree_path").
			Optional(),
		field.String("branch").
			Optional(),
		field.String("base_branch").
			Optional(),
		field.String("pending_prompt_id").
			Optional().
			Nillable().
			Comment("Backend message id of the in-flight turn; nil when idle"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Int("version").
			Default(1).
			Comment("Optimistic concurrency counter"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentSession.
func (AgentSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("sessions").
			Field("project_id").
			Unique().
			Required(),
		edge.From("agent", Agent.Type).
			Ref("sessions").
			Field("agent_id").
			Unique().
			Required(),
		edge.To("transcript_entries", TranscriptEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentSession.
func (AgentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("agent_id", "status"),
		index.Fields("status"),
		index.Fields("ticket_key"),
	}
}
