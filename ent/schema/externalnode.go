package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExternalNode holds the schema definition for the ExternalNode entity.
// Another opencode instance discovered on the local host or registered
// manually, browsed in read-only proxy mode.
type ExternalNode struct {
	ent.Schema
}

// Fields of the ExternalNode.
func (ExternalNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("base_url").
			Unique().
			Immutable().
			Comment("Base URL is the primary key"),
		field.Bool("healthy").
			Default(true),
		field.String("version").
			Optional(),
		field.Enum("source").
			Values("local_lsof", "config", "manual"),
		field.Int("probe_failures").
			Default(0).
			Comment("Consecutive failed probes; three marks the node unhealthy"),
		field.Time("last_seen").
			Default(time.Now),
	}
}

// Indexes of the ExternalNode.
func (ExternalNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("healthy"),
	}
}
