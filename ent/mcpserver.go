// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/ent/squad"
)

// MCPServer is the model entity for the MCPServer schema.
type MCPServer struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SquadID holds the value of the "squad_id" field.
	SquadID string `json:"squad_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Source holds the value of the "source" field.
	Source mcpserver.Source `json:"source,omitempty"`
	// ServerType holds the value of the "server_type" field.
	ServerType mcpserver.ServerType `json:"server_type,omitempty"`
	// Image holds the value of the "image" field.
	Image string `json:"image,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Command holds the value of the "command" field.
	Command string `json:"command,omitempty"`
	// Args holds the value of the "args" field.
	Args []string `json:"args,omitempty"`
	// Headers holds the value of the "headers" field.
	Headers map[string]string `json:"headers,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CatalogMeta holds the value of the "catalog_meta" field.
	CatalogMeta map[string]interface{} `json:"catalog_meta,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MCPServerQuery when eager-loading is set.
	Edges        MCPServerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MCPServerEdges holds the relations/edges for other nodes in the graph.
type MCPServerEdges struct {
	// Squad holds the value of the squad edge.
	Squad *Squad `json:"squad,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SquadOrErr returns the Squad value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MCPServerEdges) SquadOrErr() (*Squad, error) {
	if e.Squad != nil {
		return e.Squad, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: squad.Label}
	}
	return nil, &NotLoadedError{edge: "squad"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MCPServer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mcpserver.FieldArgs, mcpserver.FieldHeaders, mcpserver.FieldCatalogMeta:
			values[i] = new([]byte)
		case mcpserver.FieldEnabled:
			values[i] = new(sql.NullBool)
		case mcpserver.FieldID, mcpserver.FieldSquadID, mcpserver.FieldName, mcpserver.FieldSource, mcpserver.FieldServerType, mcpserver.FieldImage, mcpserver.FieldURL, mcpserver.FieldCommand, mcpserver.FieldStatus, mcpserver.FieldLastError:
			values[i] = new(sql.NullString)
		case mcpserver.FieldCreatedAt, mcpserver.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MCPServer fields.
func (_m *MCPServer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mcpserver.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mcpserver.FieldSquadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field squad_id", values[i])
			} else if value.Valid {
				_m.SquadID = value.String
			}
		case mcpserver.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case mcpserver.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = mcpserver.Source(value.String)
			}
		case mcpserver.FieldServerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field server_type", values[i])
			} else if value.Valid {
				_m.ServerType = mcpserver.ServerType(value.String)
			}
		case mcpserver.FieldImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image", values[i])
			} else if value.Valid {
				_m.Image = value.String
			}
		case mcpserver.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case mcpserver.FieldCommand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field command", values[i])
			} else if value.Valid {
				_m.Command = value.String
			}
		case mcpserver.FieldArgs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field args", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Args); err != nil {
					return fmt.Errorf("unmarshal field args: %w", err)
				}
			}
		case mcpserver.FieldHeaders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field headers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Headers); err != nil {
					return fmt.Errorf("unmarshal field headers: %w", err)
				}
			}
		case mcpserver.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case mcpserver.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case mcpserver.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case mcpserver.FieldCatalogMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CatalogMeta); err != nil {
					return fmt.Errorf("unmarshal field catalog_meta: %w", err)
				}
			}
		case mcpserver.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mcpserver.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MCPServer.
// This includes values selected through modifiers, order, etc.
func (_m *MCPServer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySquad queries the "squad" edge of the MCPServer entity.
func (_m *MCPServer) QuerySquad() *SquadQuery {
	return NewMCPServerClient(_m.config).QuerySquad(_m)
}

// Update returns a builder for updating this MCPServer.
// Note that you need to call MCPServer.Unwrap() before calling this method if this MCPServer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MCPServer) Update() *MCPServerUpdateOne {
	return NewMCPServerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MCPServer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MCPServer) Unwrap() *MCPServer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MCPServer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MCPServer) String() string {
	var builder strings.Builder
	builder.WriteString("MCPServer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("squad_id=")
	builder.WriteString(_m.SquadID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("server_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServerType))
	builder.WriteString(", ")
	builder.WriteString("image=")
	builder.WriteString(_m.Image)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("command=")
	builder.WriteString(_m.Command)
	builder.WriteString(", ")
	builder.WriteString("args=")
	builder.WriteString(fmt.Sprintf("%v", _m.Args))
	builder.WriteString(", ")
	builder.WriteString("headers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Headers))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("catalog_meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.CatalogMeta))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MCPServers is a parsable slice of MCPServer.
type MCPServers []*MCPServer
