// Code generated by ent, DO NOT EDIT.

package card

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the card type in the database.
	Label = "card"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "card_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldSquadID holds the string denoting the squad_id field in the database.
	FieldSquadID = "squad_id"
	// FieldLane holds the string denoting the lane field in the database.
	FieldLane = "lane"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldPrdPath holds the string denoting the prd_path field in the database.
	FieldPrdPath = "prd_path"
	// FieldIssuePlan holds the string denoting the issue_plan field in the database.
	FieldIssuePlan = "issue_plan"
	// FieldIssueRefs holds the string denoting the issue_refs field in the database.
	FieldIssueRefs = "issue_refs"
	// FieldPrURL holds the string denoting the pr_url field in the database.
	FieldPrURL = "pr_url"
	// FieldPlanAgentID holds the string denoting the plan_agent_id field in the database.
	FieldPlanAgentID = "plan_agent_id"
	// FieldBuildAgentID holds the string denoting the build_agent_id field in the database.
	FieldBuildAgentID = "build_agent_id"
	// FieldReviewAgentID holds the string denoting the review_agent_id field in the database.
	FieldReviewAgentID = "review_agent_id"
	// FieldPlanSessionID holds the string denoting the plan_session_id field in the database.
	FieldPlanSessionID = "plan_session_id"
	// FieldBuildSessionID holds the string denoting the build_session_id field in the database.
	FieldBuildSessionID = "build_session_id"
	// FieldReviewSessionID holds the string denoting the review_session_id field in the database.
	FieldReviewSessionID = "review_session_id"
	// FieldBuildWorktreeName holds the string denoting the build_worktree_name field in the database.
	FieldBuildWorktreeName = "build_worktree_name"
	// FieldBuildWorktreePath holds the string denoting the build_worktree_path field in the database.
	FieldBuildWorktreePath = "build_worktree_path"
	// FieldBuildBranch holds the string denoting the build_branch field in the database.
	FieldBuildBranch = "build_branch"
	// FieldBaseBranch holds the string denoting the base_branch field in the database.
	FieldBaseBranch = "base_branch"
	// FieldAiReview holds the string denoting the ai_review field in the database.
	FieldAiReview = "ai_review"
	// FieldAiReviewSessionID holds the string denoting the ai_review_session_id field in the database.
	FieldAiReviewSessionID = "ai_review_session_id"
	// FieldHumanReviewStatus holds the string denoting the human_review_status field in the database.
	FieldHumanReviewStatus = "human_review_status"
	// FieldHumanReviewFeedback holds the string denoting the human_review_feedback field in the database.
	FieldHumanReviewFeedback = "human_review_feedback"
	// FieldHumanReviewedAt holds the string denoting the human_reviewed_at field in the database.
	FieldHumanReviewedAt = "human_reviewed_at"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeSquad holds the string denoting the squad edge name in mutations.
	EdgeSquad = "squad"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// SquadFieldID holds the string denoting the ID field of the Squad.
	SquadFieldID = "squad_id"
	// Table holds the table name of the card in the database.
	Table = "cards"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "cards"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// SquadTable is the table that holds the squad relation/edge.
	SquadTable = "cards"
	// SquadInverseTable is the table name for the Squad entity.
	// It exists in this package in order to avoid circular dependency with the "squad" package.
	SquadInverseTable = "squads"
	// SquadColumn is the table column denoting the squad relation/edge.
	SquadColumn = "squad_id"
)

// Columns holds all SQL columns for card fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldSquadID,
	FieldLane,
	FieldPosition,
	FieldTitle,
	FieldBody,
	FieldPrdPath,
	FieldIssuePlan,
	FieldIssueRefs,
	FieldPrURL,
	FieldPlanAgentID,
	FieldBuildAgentID,
	FieldReviewAgentID,
	FieldPlanSessionID,
	FieldBuildSessionID,
	FieldReviewSessionID,
	FieldBuildWorktreeName,
	FieldBuildWorktreePath,
	FieldBuildBranch,
	FieldBaseBranch,
	FieldAiReview,
	FieldAiReviewSessionID,
	FieldHumanReviewStatus,
	FieldHumanReviewFeedback,
	FieldHumanReviewedAt,
	FieldVersion,
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
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Lane defines the type for the "lane" enum field.
type Lane string

// LaneTodo is the default value of the Lane enum.
const DefaultLane = LaneTodo

// Lane values.
const (
	LaneTodo   Lane = "todo"
	LanePlan   Lane = "plan"
	LaneBuild  Lane = "build"
	LaneReview Lane = "review"
	LaneDone   Lane = "done"
)

func (l Lane) String() string {
	return string(l)
}

// LaneValidator is a validator for the "lane" field enum values. It is called by the builders before save.
func LaneValidator(l Lane) error {
	switch l {
	case LaneTodo, LanePlan, LaneBuild, LaneReview, LaneDone:
		return nil
	default:
		return fmt.Errorf("card: invalid enum value for lane field: %q", l)
	}
}

// HumanReviewStatus defines the type for the "human_review_status" enum field.
type HumanReviewStatus string

// HumanReviewStatus values.
const (
	HumanReviewStatusPending          HumanReviewStatus = "pending"
	HumanReviewStatusApproved         HumanReviewStatus = "approved"
	HumanReviewStatusChangesRequested HumanReviewStatus = "changes_requested"
)

func (hrs HumanReviewStatus) String() string {
	return string(hrs)
}

// HumanReviewStatusValidator is a validator for the "human_review_status" field enum values. It is called by the builders before save.
func HumanReviewStatusValidator(hrs HumanReviewStatus) error {
	switch hrs {
	case HumanReviewStatusPending, HumanReviewStatusApproved, HumanReviewStatusChangesRequested:
		return nil
	default:
		return fmt.Errorf("card: invalid enum value for human_review_status field: %q", hrs)
	}
}

// OrderOption defines the ordering options for the Card queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// BySquadID orders the results by the squad_id field.
func BySquadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSquadID, opts...).ToFunc()
}

// ByLane orders the results by the lane field.
func ByLane(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLane, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByPrdPath orders the results by the prd_path field.
func ByPrdPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrdPath, opts...).ToFunc()
}

// ByPrURL orders the results by the pr_url field.
func ByPrURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrURL, opts...).ToFunc()
}

// ByPlanAgentID orders the results by the plan_agent_id field.
func ByPlanAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanAgentID, opts...).ToFunc()
}

// ByBuildAgentID orders the results by the build_agent_id field.
func ByBuildAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildAgentID, opts...).ToFunc()
}

// ByReviewAgentID orders the results by the review_agent_id field.
func ByReviewAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewAgentID, opts...).ToFunc()
}

// ByPlanSessionID orders the results by the plan_session_id field.
func ByPlanSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanSessionID, opts...).ToFunc()
}

// ByBuildSessionID orders the results by the build_session_id field.
func ByBuildSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildSessionID, opts...).ToFunc()
}

// ByReviewSessionID orders the results by the review_session_id field.
func ByReviewSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewSessionID, opts...).ToFunc()
}

// ByBuildWorktreeName orders the results by the build_worktree_name field.
func ByBuildWorktreeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildWorktreeName, opts...).ToFunc()
}

// ByBuildWorktreePath orders the results by the build_worktree_path field.
func ByBuildWorktreePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildWorktreePath, opts...).ToFunc()
}

// ByBuildBranch orders the results by the build_branch field.
func ByBuildBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildBranch, opts...).ToFunc()
}

// ByBaseBranch orders the results by the base_branch field.
func ByBaseBranch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseBranch, opts...).ToFunc()
}

// ByAiReviewSessionID orders the results by the ai_review_session_id field.
func ByAiReviewSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiReviewSessionID, opts...).ToFunc()
}

// ByHumanReviewStatus orders the results by the human_review_status field.
func ByHumanReviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanReviewStatus, opts...).ToFunc()
}

// ByHumanReviewFeedback orders the results by the human_review_feedback field.
func ByHumanReviewFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanReviewFeedback, opts...).ToFunc()
}

// ByHumanReviewedAt orders the results by the human_reviewed_at field.
func ByHumanReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanReviewedAt, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
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

// BySquadField orders the results by squad field.
func BySquadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSquadStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newSquadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SquadInverseTable, SquadFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SquadTable, SquadColumn),
	)
}
