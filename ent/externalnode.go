// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/buildsquads/squads/ent/externalnode"
)

// ExternalNode is the model entity for the ExternalNode schema.
type ExternalNode struct {
	config `json:"-"`
	// ID of the ent.
	// Base URL is the primary key
	ID string `json:"id,omitempty"`
	// Healthy holds the value of the "healthy" field.
	Healthy bool `json:"healthy,omitempty"`
	// Version holds the value of the "version" field.
	Version string `json:"version,omitempty"`
	// Source holds the value of the "source" field.
	Source externalnode.Source `json:"source,omitempty"`
	// Consecutive failed probes; three marks the node unhealthy
	ProbeFailures int `json:"probe_failures,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExternalNode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case externalnode.FieldHealthy:
			values[i] = new(sql.NullBool)
		case externalnode.FieldProbeFailures:
			values[i] = new(sql.NullInt64)
		case externalnode.FieldID, externalnode.FieldVersion, externalnode.FieldSource:
			values[i] = new(sql.NullString)
		case externalnode.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExternalNode fields.
func (_m *ExternalNode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case externalnode.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case externalnode.FieldHealthy:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field healthy", values[i])
			} else if value.Valid {
				_m.Healthy = value.Bool
			}
		case externalnode.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case externalnode.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = externalnode.Source(value.String)
			}
		case externalnode.FieldProbeFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field probe_failures", values[i])
			} else if value.Valid {
				_m.ProbeFailures = int(value.Int64)
			}
		case externalnode.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExternalNode.
// This includes values selected through modifiers, order, etc.
func (_m *ExternalNode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExternalNode.
// Note that you need to call ExternalNode.Unwrap() before calling this method if this ExternalNode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExternalNode) Update() *ExternalNodeUpdateOne {
	return NewExternalNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExternalNode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExternalNode) Unwrap() *ExternalNode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExternalNode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExternalNode) String() string {
	var builder strings.Builder
	builder.WriteString("ExternalNode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("healthy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Healthy))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("probe_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProbeFailures))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExternalNodes is a parsable slice of ExternalNode.
type ExternalNodes []*ExternalNode
