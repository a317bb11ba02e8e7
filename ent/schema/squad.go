package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Squad holds the schema definition for the Squad entity.
// A squad is a named group of agents sharing one opencode backend process.
type Squad struct {
	ent.Schema
}

// Fields of the Squad.
func (Squad) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("squad_id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Enum("opencode_status").
			Values("idle", "provisioning", "running", "error").
			Default("idle"),
		field.String("opencode_url").
			Optional().
			Nillable(),
		field.Int("opencode_pid").
			Optional().
			Nillable(),
		field.String("last_error").
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

// Edges of the Squad.
func (Squad) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("squads").
			Field("project_id").
			Unique().
			Required(),
		edge.To("agents", Agent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("cards", Card.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("mcp_servers", MCPServer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Squad.
func (Squad) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("opencode_status"),
	}
}
