package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card holds the schema definition for the Card entity.
// A work item moving through the five-lane pipeline
// todo → plan → build → review → done.
type Card struct {
	ent.Schema
}

// Fields of the Card.
func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("card_id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("squad_id"),
		field.Enum("lane").
			Values("todo", "plan", "build", "review", "done").
			Default("todo"),
		field.Int("position").
			Default(0),
		field.String("title").
			Optional(),
		field.Text("body"),
		field.String("prd_path").
			Optional().
			Comment("Reserved PRD location under .squads/prds/"),
		field.JSON("issue_plan", map[string]interface{}{}).
			Optional().
			Comment("Extracted plan artifact; requires an issues array"),
		field.JSON("issue_refs", []string{}).
			Optional(),
		field.String("pr_url").
			Optional(),
		field.String("plan_agent_id").
			Optional().
			Nillable(),
		field.String("build_agent_id").
			Optional().
			Nillable(),
		field.String("review_agent_id").
			Optional().
			Nillable(),
		field.String("plan_session_id").
			Optional().
			Nillable(),
		field.String("build_session_id").
			Optional().
			Nillable(),
		field.String("review_session_id").
			Optional().
			Nillable(),
		field.String("build_worktree_name").
			Optional(),
		field.String("build_worktree_path").
			Optional(),
		field.String("build_branch").
			Optional(),
		field.String("base_branch").
			Optional(),
		field.JSON("ai_review", map[string]interface{}{}).
			Optional().
			Comment("Extracted review artifact; requires a recommendation field"),
		field.String("ai_review_session_id").
			Optional().
			Nillable(),
		field.Enum("human_review_status").
			Values("pending", "approved", "changes_requested").
			Optional().
			Nillable(),
		field.Text("human_review_feedback").
			Optional(),
		field.Time("human_reviewed_at").
			Optional().
			Nillable(),
		field.Int("version").
			Default(1).
			Comment("Optimistic concurrency counter"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Card.
func (Card) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("cards").
			Field("project_id").
			Unique().
			Required(),
		edge.From("squad", Squad.Type).
			Ref("cards").
			Field("squad_id").
			Unique().
			Required(),
	}
}

// Indexes of the Card.
func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "lane", "position"),
		index.Fields("squad_id"),
		index.Fields("build_worktree_path"),
	}
}
