package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LaneAssignment holds the schema definition for the LaneAssignment entity.
// Pins a lane of a squad's board to a specific agent; the board engine
// falls back to any idle agent when no assignment exists.
type LaneAssignment struct {
	ent.Schema
}

// Fields of the LaneAssignment.
func (LaneAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("assignment_id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("squad_id"),
		field.Enum("lane").
			Values("todo", "plan", "build", "review"),
		field.String("agent_id").
			Optional().
			Nillable(),
	}
}

// Edges of the LaneAssignment.
func (LaneAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("lane_assignments").
			Field("project_id").
			Unique().
			Required(),
	}
}

// Indexes of the LaneAssignment.
func (LaneAssignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "squad_id", "lane").Unique(),
	}
}
