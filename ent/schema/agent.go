package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// An agent is a role-configured persona that drives sessions.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("squad_id"),
		field.String("name").
			NotEmpty(),
		field.String("slug").
			NotEmpty().
			Comment("Lowercase hyphenated form of the name"),
		field.String("role"),
		field.Enum("level").
			Values("junior", "senior", "principal").
			Default("senior"),
		field.Text("system_instruction").
			Optional(),
		field.String("model").
			Optional(),
		field.Enum("status").
			Values("idle", "working", "blocked", "offline").
			Default("idle"),
		field.String("mentor_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("squad", Squad.Type).
			Ref("agents").
			Field("squad_id").
			Unique().
			Required(),
		edge.To("sessions", AgentSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("squad_id", "slug").Unique(),
		index.Fields("status"),
	}
}
