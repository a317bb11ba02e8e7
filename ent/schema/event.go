package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Append-only log of normalized domain events, used for WebSocket
// catch-up delivery and audit. The integer id gives catch-up ordering.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable(),
		field.String("kind").
			Comment("Colon-separated internal kind, e.g. message:part"),
		field.String("channel").
			Comment("Delivery channel, e.g. session:{id} or project:{id}"),
		field.String("project_id"),
		field.String("session_id").
			Optional(),
		field.String("agent_id").
			Optional(),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("events").
			Field("project_id").
			Unique().
			Required(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("session_id"),
		index.Fields("occurred_at"),
	}
}
