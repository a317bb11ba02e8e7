package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MCPServer holds the schema definition for the MCPServer entity.
// An external tool provider the backend can call; resolved from the
// Docker MCP catalog or a custom spec.
type MCPServer struct {
	ent.Schema
}

// Fields of the MCPServer.
func (MCPServer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mcp_server_id").
			Unique().
			Immutable(),
		field.String("squad_id"),
		field.String("name").
			NotEmpty(),
		field.Enum("source").
			Values("builtin", "registry", "custom").
			Default("custom"),
		field.Enum("server_type").
			Values("remote", "container"),
		field.String("image").
			Optional(),
		field.String("url").
			Optional(),
		field.String("command").
			Optional(),
		field.JSON("args", []string{}).
			Optional(),
		field.JSON("headers", map[string]string{}).
			Optional(),
		field.Bool("enabled").
			Default(false),
		field.String("status").
			Default("inactive"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.JSON("catalog_meta", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the MCPServer.
func (MCPServer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("squad", Squad.Type).
			Ref("mcp_servers").
			Field("squad_id").
			Unique().
			Required(),
	}
}

// Indexes of the MCPServer.
func (MCPServer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("squad_id", "name").Unique(),
	}
}
