// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/buildsquads/squads/ent/laneassignment"
	"github.com/buildsquads/squads/ent/project"
)

// LaneAssignment is the model entity for the LaneAssignment schema.
type LaneAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// SquadID holds the value of the "squad_id" field.
	SquadID string `json:"squad_id,omitempty"`
	// Lane holds the value of the "lane" field.
	Lane laneassignment.Lane `json:"lane,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID *string `json:"agent_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LaneAssignmentQuery when eager-loading is set.
	Edges        LaneAssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LaneAssignmentEdges holds the relations/edges for other nodes in the graph.
type LaneAssignmentEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LaneAssignmentEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LaneAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case laneassignment.FieldID, laneassignment.FieldProjectID, laneassignment.FieldSquadID, laneassignment.FieldLane, laneassignment.FieldAgentID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LaneAssignment fields.
func (_m *LaneAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case laneassignment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case laneassignment.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case laneassignment.FieldSquadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field squad_id", values[i])
			} else if value.Valid {
				_m.SquadID = value.String
			}
		case laneassignment.FieldLane:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lane", values[i])
			} else if value.Valid {
				_m.Lane = laneassignment.Lane(value.String)
			}
		case laneassignment.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(string)
				*_m.AgentID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LaneAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *LaneAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the LaneAssignment entity.
func (_m *LaneAssignment) QueryProject() *ProjectQuery {
	return NewLaneAssignmentClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this LaneAssignment.
// Note that you need to call LaneAssignment.Unwrap() before calling this method if this LaneAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LaneAssignment) Update() *LaneAssignmentUpdateOne {
	return NewLaneAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LaneAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LaneAssignment) Unwrap() *LaneAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LaneAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LaneAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("LaneAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("squad_id=")
	builder.WriteString(_m.SquadID)
	builder.WriteString(", ")
	builder.WriteString("lane=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lane))
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// LaneAssignments is a parsable slice of LaneAssignment.
type LaneAssignments []*LaneAssignment
