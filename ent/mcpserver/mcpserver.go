// Code generated by ent, DO NOT EDIT.

package mcpserver

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the mcpserver type in the database.
	Label = "mcp_server"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "mcp_server_id"
	// FieldSquadID holds the string denoting the squad_id field in the database.
	FieldSquadID = "squad_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldServerType holds the string denoting the server_type field in the database.
	FieldServerType = "server_type"
	// FieldImage holds the string denoting the image field in the database.
	FieldImage = "image"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldCommand holds the string denoting the command field in the database.
	FieldCommand = "command"
	// FieldArgs holds the string denoting the args field in the database.
	FieldArgs = "args"
	// FieldHeaders holds the string denoting the headers field in the database.
	FieldHeaders = "headers"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCatalogMeta holds the string denoting the catalog_meta field in the database.
	FieldCatalogMeta = "catalog_meta"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSquad holds the string denoting the squad edge name in mutations.
	EdgeSquad = "squad"
	// SquadFieldID holds the string denoting the ID field of the Squad.
	SquadFieldID = "squad_id"
	// Table holds the table name of the mcpserver in the database.
	Table = "mcp_servers"
	// SquadTable is the table that holds the squad relation/edge.
	SquadTable = "mcp_servers"
	// SquadInverseTable is the table name for the Squad entity.
	// It exists in this package in order to avoid circular dependency with the "squad" package.
	SquadInverseTable = "squads"
	// SquadColumn is the table column denoting the squad relation/edge.
	SquadColumn = "squad_id"
)

// Columns holds all SQL columns for mcpserver fields.
var Columns = []string{
	FieldID,
	FieldSquadID,
	FieldName,
	FieldSource,
	FieldServerType,
	FieldImage,
	FieldURL,
	FieldCommand,
	FieldArgs,
	FieldHeaders,
	FieldEnabled,
	FieldStatus,
	FieldLastError,
	FieldCatalogMeta,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// SourceCustom is the default value of the Source enum.
const DefaultSource = SourceCustom

// Source values.
const (
	SourceBuiltin  Source = "builtin"
	SourceRegistry Source = "registry"
	SourceCustom   Source = "custom"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceBuiltin, SourceRegistry, SourceCustom:
		return nil
	default:
		return fmt.Errorf("mcpserver: invalid enum value for source field: %q", s)
	}
}

// ServerType defines the type for the "server_type" enum field.
type ServerType string

// ServerType values.
const (
	ServerTypeRemote    ServerType = "remote"
	ServerTypeContainer ServerType = "container"
)

func (st ServerType) String() string {
	return string(st)
}

// ServerTypeValidator is a validator for the "server_type" field enum values. It is called by the builders before save.
func ServerTypeValidator(st ServerType) error {
	switch st {
	case ServerTypeRemote, ServerTypeContainer:
		return nil
	default:
		return fmt.Errorf("mcpserver: invalid enum value for server_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the MCPServer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySquadID orders the results by the squad_id field.
func BySquadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSquadID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByServerType orders the results by the server_type field.
func ByServerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServerType, opts...).ToFunc()
}

// ByImage orders the results by the image field.
func ByImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImage, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByCommand orders the results by the command field.
func ByCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommand, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySquadField orders the results by squad field.
func BySquadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSquadStep(), sql.OrderByField(field, opts...))
	}
}
func newSquadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SquadInverseTable, SquadFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SquadTable, SquadColumn),
	)
}
