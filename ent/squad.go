// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/squad"
)

// Squad is the model entity for the Squad schema.
type Squad struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// OpencodeStatus holds the value of the "opencode_status" field.
	OpencodeStatus squad.OpencodeStatus `json:"opencode_status,omitempty"`
	// OpencodeURL holds the value of the "opencode_url" field.
	OpencodeURL *string `json:"opencode_url,omitempty"`
	// OpencodePid holds the value of the "opencode_pid" field.
	OpencodePid *int `json:"opencode_pid,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SquadQuery when eager-loading is set.
	Edges        SquadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SquadEdges holds the relations/edges for other nodes in the graph.
type SquadEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Agents holds the value of the agents edge.
	Agents []*Agent `json:"agents,omitempty"`
	// Cards holds the value of the cards edge.
	Cards []*Card `json:"cards,omitempty"`
	// McpServers holds the value of the mcp_servers edge.
	McpServers []*MCPServer `json:"mcp_servers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SquadEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e SquadEdges) AgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[1] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// CardsOrErr returns the Cards value or an error if the edge
// was not loaded in eager-loading.
func (e SquadEdges) CardsOrErr() ([]*Card, error) {
	if e.loadedTypes[2] {
		return e.Cards, nil
	}
	return nil, &NotLoadedError{edge: "cards"}
}

// McpServersOrErr returns the McpServers value or an error if the edge
// was not loaded in eager-loading.
func (e SquadEdges) McpServersOrErr() ([]*MCPServer, error) {
	if e.loadedTypes[3] {
		return e.McpServers, nil
	}
	return nil, &NotLoadedError{edge: "mcp_servers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Squad) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case squad.FieldOpencodePid:
			values[i] = new(sql.NullInt64)
		case squad.FieldID, squad.FieldProjectID, squad.FieldName, squad.FieldDescription, squad.FieldOpencodeStatus, squad.FieldOpencodeURL, squad.FieldLastError:
			values[i] = new(sql.NullString)
		case squad.FieldCreatedAt, squad.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Squad fields.
func (_m *Squad) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case squad.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case squad.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case squad.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case squad.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case squad.FieldOpencodeStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opencode_status", values[i])
			} else if value.Valid {
				_m.OpencodeStatus = squad.OpencodeStatus(value.String)
			}
		case squad.FieldOpencodeURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field opencode_url", values[i])
			} else if value.Valid {
				_m.OpencodeURL = new(string)
				*_m.OpencodeURL = value.String
			}
		case squad.FieldOpencodePid:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field opencode_pid", values[i])
			} else if value.Valid {
				_m.OpencodePid = new(int)
				*_m.OpencodePid = int(value.Int64)
			}
		case squad.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case squad.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case squad.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Squad.
// This includes values selected through modifiers, order, etc.
func (_m *Squad) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Squad entity.
func (_m *Squad) QueryProject() *ProjectQuery {
	return NewSquadClient(_m.config).QueryProject(_m)
}

// QueryAgents queries the "agents" edge of the Squad entity.
func (_m *Squad) QueryAgents() *AgentQuery {
	return NewSquadClient(_m.config).QueryAgents(_m)
}

// QueryCards queries the "cards" edge of the Squad entity.
func (_m *Squad) QueryCards() *CardQuery {
	return NewSquadClient(_m.config).QueryCards(_m)
}

// QueryMcpServers queries the "mcp_servers" edge of the Squad entity.
func (_m *Squad) QueryMcpServers() *MCPServerQuery {
	return NewSquadClient(_m.config).QueryMcpServers(_m)
}

// Update returns a builder for updating this Squad.
// Note that you need to call Squad.Unwrap() before calling this method if this Squad
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Squad) Update() *SquadUpdateOne {
	return NewSquadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Squad entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Squad) Unwrap() *Squad {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Squad is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Squad) String() string {
	var builder strings.Builder
	builder.WriteString("Squad(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("opencode_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpencodeStatus))
	builder.WriteString(", ")
	if v := _m.OpencodeURL; v != nil {
		builder.WriteString("opencode_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OpencodePid; v != nil {
		builder.WriteString("opencode_pid=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Squads is a parsable slice of Squad.
type Squads []*Squad
