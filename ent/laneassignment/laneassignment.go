// Code generated by ent, DO NOT EDIT.

package laneassignment

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the laneassignment type in the database.
	Label = "lane_assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "assignment_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldSquadID holds the string denoting the squad_id field in the database.
	FieldSquadID = "squad_id"
	// FieldLane holds the string denoting the lane field in the database.
	FieldLane = "lane"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the laneassignment in the database.
	Table = "lane_assignments"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "lane_assignments"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for laneassignment fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldSquadID,
	FieldLane,
	FieldAgentID,
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

// Lane defines the type for the "lane" enum field.
type Lane string

// Lane values.
const (
	LaneTodo   Lane = "todo"
	LanePlan   Lane = "plan"
	LaneBuild  Lane = "build"
	LaneReview Lane = "review"
)

func (l Lane) String() string {
	return string(l)
}

// LaneValidator is a validator for the "lane" field enum values. It is called by the builders before save.
func LaneValidator(l Lane) error {
	switch l {
	case LaneTodo, LanePlan, LaneBuild, LaneReview:
		return nil
	default:
		return fmt.Errorf("laneassignment: invalid enum value for lane field: %q", l)
	}
}

// OrderOption defines the ordering options for the LaneAssignment queries.
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

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
