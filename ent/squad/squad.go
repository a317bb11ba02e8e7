// Code generated by ent, DO NOT EDIT.

package squad

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the squad type in the database.
	Label = "squad"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "squad_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldOpencodeStatus holds the string denoting the opencode_status field in the database.
	FieldOpencodeStatus = "opencode_status"
	// FieldOpencodeURL holds the string denoting the opencode_url field in the database.
	FieldOpencodeURL = "opencode_url"
	// FieldOpencodePid holds the string denoting the opencode_pid field in the database.
	FieldOpencodePid = "opencode_pid"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeAgents holds the string denoting the agents edge name in mutations.
	EdgeAgents = "agents"
	// EdgeCards holds the string denoting the cards edge name in mutations.
	EdgeCards = "cards"
	// EdgeMcpServers holds the string denoting the mcp_servers edge name in mutations.
	EdgeMcpServers = "mcp_servers"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_id"
	// CardFieldID holds the string denoting the ID field of the Card.
	CardFieldID = "card_id"
	// MCPServerFieldID holds the string denoting the ID field of the MCPServer.
	MCPServerFieldID = "mcp_server_id"
	// Table holds the table name of the squad in the database.
	Table = "squads"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "squads"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// AgentsTable is the table that holds the agents relation/edge.
	AgentsTable = "agents"
	// AgentsInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentsInverseTable = "agents"
	// AgentsColumn is the table column denoting the agents relation/edge.
	AgentsColumn = "squad_id"
	// CardsTable is the table that holds the cards relation/edge.
	CardsTable = "cards"
	// CardsInverseTable is the table name for the Card entity.
	// It exists in this package in order to avoid circular dependency with the "card" package.
	CardsInverseTable = "cards"
	// CardsColumn is the table column denoting the cards relation/edge.
	CardsColumn = "squad_id"
	// McpServersTable is the table that holds the mcp_servers relation/edge.
	McpServersTable = "mcp_servers"
	// McpServersInverseTable is the table name for the MCPServer entity.
	// It exists in this package in order to avoid circular dependency with the "mcpserver" package.
	McpServersInverseTable = "mcp_servers"
	// McpServersColumn is the table column denoting the mcp_servers relation/edge.
	McpServersColumn = "squad_id"
)

// Columns holds all SQL columns for squad fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldName,
	FieldDescription,
	FieldOpencodeStatus,
	FieldOpencodeURL,
	FieldOpencodePid,
	FieldLastError,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OpencodeStatus defines the type for the "opencode_status" enum field.
type OpencodeStatus string

// OpencodeStatusIdle is the default value of the OpencodeStatus enum.
const DefaultOpencodeStatus = OpencodeStatusIdle

// OpencodeStatus values.
const (
	OpencodeStatusIdle         OpencodeStatus = "idle"
	OpencodeStatusProvisioning OpencodeStatus = "provisioning"
	OpencodeStatusRunning      OpencodeStatus = "running"
	OpencodeStatusError        OpencodeStatus = "error"
)

func (os OpencodeStatus) String() string {
	return string(os)
}

// OpencodeStatusValidator is a validator for the "opencode_status" field enum values. It is called by the builders before save.
func OpencodeStatusValidator(os OpencodeStatus) error {
	switch os {
	case OpencodeStatusIdle, OpencodeStatusProvisioning, OpencodeStatusRunning, OpencodeStatusError:
		return nil
	default:
		return fmt.Errorf("squad: invalid enum value for opencode_status field: %q", os)
	}
}

// OrderOption defines the ordering options for the Squad queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByOpencodeStatus orders the results by the opencode_status field.
func ByOpencodeStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpencodeStatus, opts...).ToFunc()
}

// ByOpencodeURL orders the results by the opencode_url field.
func ByOpencodeURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpencodeURL, opts...).ToFunc()
}

// ByOpencodePid orders the results by the opencode_pid field.
func ByOpencodePid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpencodePid, opts...).ToFunc()
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

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByAgentsCount orders the results by agents count.
func ByAgentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentsStep(), opts...)
	}
}

// ByAgents orders the results by agents terms.
func ByAgents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCardsCount orders the results by cards count.
func ByCardsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCardsStep(), opts...)
	}
}

// ByCards orders the results by cards terms.
func ByCards(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCardsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMcpServersCount orders the results by mcp_servers count.
func ByMcpServersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMcpServersStep(), opts...)
	}
}

// ByMcpServers orders the results by mcp_servers terms.
func ByMcpServers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMcpServersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newAgentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentsInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
	)
}
func newCardsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CardsInverseTable, CardFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CardsTable, CardsColumn),
	)
}
func newMcpServersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(McpServersInverseTable, MCPServerFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, McpServersTable, McpServersColumn),
	)
}
