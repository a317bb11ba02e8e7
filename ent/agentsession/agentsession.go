// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentsession type in the database.
	Label = "agent_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldBackendSessionID holds the string denoting the backend_session_id field in the database.
	FieldBackendSessionID = "backend_session_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldTicketKey holds the string denoting the ticket_key field in the database.
	FieldTicketKey = "ticket_key"
	// FieldWorktreePath holds the string denoting the worktree_path field in the database.
	FieldWorktreePath = "worktree_path"
	// FieldBranch holds the string denoting the branch field in the database.
	FieldBranch = "branch"
	// FieldBaseBranch holds the string denoting the base_branch field in the database.
	FieldBaseBranch = "base_branch"
	// FieldPendingPromptID holds the string denoting the pending_prompt_id field in the database.
	FieldPendingPromptID = "pending_prompt_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeTranscriptEntries holds the string denoting the transcript_entries edge name in mutations.
	EdgeTranscriptEntries = "transcript_entries"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_id"
	// TranscriptEntryFieldID holds the string denoting the ID field of the TranscriptEntry.
	TranscriptEntryFieldID = "entry_id"
	// Table holds the table name of the agentsession in the database.
	Table = "agent_sessions"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "agent_sessions"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "agent_sessions"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// TranscriptEntriesTable is the table that holds the transcript_entries relation/edge.
	TranscriptEntriesTable = "transcript_entries"
	// TranscriptEntriesInverseTable is the table name for the TranscriptEntry entity.
	// It exists in this package in order to avoid circular dependency with the "transcriptentry" package.
	TranscriptEntriesInverseTable = "transcript_entries"
	// TranscriptEntriesColumn is the table column denoting the transcript_entries relation/edge.
	TranscriptEntriesColumn = "session_id"
)

// Columns holds all SQL columns for agentsession fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldAgentID,
	FieldBackendSessionID,
	FieldStatus,
	FieldTitle,
	FieldModel,
	FieldMode,
	FieldTicketKey,
	FieldWorktreePath,
	FieldBranch,
	FieldBaseBranch,
	FieldPendingPromptID,
	FieldErrorMessage,
	FieldMetadata,
	FieldVersion,
	FieldStartedAt,
	FieldFinishedAt,
	FieldCreatedAt,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusStarting  Status = "starting"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusStarting, StatusRunning, StatusPaused, StatusCompleted, StatusFailed, StatusCancelled, StatusArchived:
		return nil
	default:
		return fmt.Errorf("agentsession: invalid enum value for status field: %q", s)
	}
}

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeBuild is the default value of the Mode enum.
const DefaultMode = ModeBuild

// Mode values.
const (
	ModePlan  Mode = "plan"
	ModeBuild Mode = "build"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModePlan, ModeBuild:
		return nil
	default:
		return fmt.Errorf("agentsession: invalid enum value for mode field: %q", m)
	}
}

// OrderOption defines the ordering options for the AgentSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByBackendSessionID orders the results by the backend_session_id field.
func ByBackendSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackendSessionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByTicketKey orders the results by the ticket_key field.
func ByTicketKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketKey, opts...).ToFunc()
}

// ByWorktreePath orders the results by the worktree_path field.
func ByWorktreePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorktreePath, opts...).ToFunc()
}

// ByBranch orders the results by the branch field.
func ByBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranch, opts...).ToFunc()
}

// ByBaseBranch orders the results by the base_branch field.
func ByBaseBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseBranch, opts...).ToFunc()
}

// ByPendingPromptID orders the results by the pending_prompt_id field.
func ByPendingPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingPromptID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}

// ByTranscriptEntriesCount orders the results by transcript_entries count.
func ByTranscriptEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTranscriptEntriesStep(), opts...)
	}
}

// ByTranscriptEntries orders the results by transcript_entries terms.
func ByTranscriptEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranscriptEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
func newTranscriptEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptEntriesInverseTable, TranscriptEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TranscriptEntriesTable, TranscriptEntriesColumn),
	)
}
