// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/transcriptentry"
)

// TranscriptEntry is the model entity for the TranscriptEntry schema.
type TranscriptEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Seq holds the value of the "seq" field.
	Seq int `json:"seq,omitempty"`
	// Role holds the value of the "role" field.
	Role transcriptentry.Role `json:"role,omitempty"`
	// Backend-issued message id; upsert key across reconnects
	BackendMessageID *string `json:"backend_message_id,omitempty"`
	// Normalized message: info fields plus ordered parts
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptEntryQuery when eager-loading is set.
	Edges        TranscriptEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptEntryEdges holds the relations/edges for other nodes in the graph.
type TranscriptEntryEdges struct {
	// Session holds the value of the session edge.
	Session *AgentSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranscriptEntryEdges) SessionOrErr() (*AgentSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TranscriptEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcriptentry.FieldPayload:
			values[i] = new([]byte)
		case transcriptentry.FieldSeq:
			values[i] = new(sql.NullInt64)
		case transcriptentry.FieldID, transcriptentry.FieldSessionID, transcriptentry.FieldRole, transcriptentry.FieldBackendMessageID:
			values[i] = new(sql.NullString)
		case transcriptentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TranscriptEntry fields.
func (_m *TranscriptEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcriptentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case transcriptentry.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case transcriptentry.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case transcriptentry.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = transcriptentry.Role(value.String)
			}
		case transcriptentry.FieldBackendMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field backend_message_id", values[i])
			} else if value.Valid {
				_m.BackendMessageID = new(string)
				*_m.BackendMessageID = value.String
			}
		case transcriptentry.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case transcriptentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TranscriptEntry.
// This includes values selected through modifiers, order, etc.
func (_m *TranscriptEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the TranscriptEntry entity.
func (_m *TranscriptEntry) QuerySession() *AgentSessionQuery {
	return NewTranscriptEntryClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this TranscriptEntry.
// Note that you need to call TranscriptEntry.Unwrap() before calling this method if this TranscriptEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TranscriptEntry) Update() *TranscriptEntryUpdateOne {
	return NewTranscriptEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TranscriptEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TranscriptEntry) Unwrap() *TranscriptEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TranscriptEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TranscriptEntry) String() string {
	var builder strings.Builder
	builder.WriteString("TranscriptEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	if v := _m.BackendMessageID; v != nil {
		builder.WriteString("backend_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TranscriptEntries is a parsable slice of TranscriptEntry.
type TranscriptEntries []*TranscriptEntry
