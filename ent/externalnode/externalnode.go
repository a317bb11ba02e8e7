// Code generated by ent, DO NOT EDIT.

package externalnode

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the externalnode type in the database.
	Label = "external_node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "base_url"
	// FieldHealthy holds the string denoting the healthy field in the database.
	FieldHealthy = "healthy"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldProbeFailures holds the string denoting the probe_failures field in the database.
	FieldProbeFailures = "probe_failures"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the externalnode in the database.
	Table = "external_nodes"
)

// Columns holds all SQL columns for externalnode fields.
var Columns = []string{
	FieldID,
	FieldHealthy,
	FieldVersion,
	FieldSource,
	FieldProbeFailures,
	FieldLastSeen,
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
	// DefaultHealthy holds the default value on creation for the "healthy" field.
	DefaultHealthy bool
	// DefaultProbeFailures holds the default value on creation for the "probe_failures" field.
	DefaultProbeFailures int
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceLocalLsof Source = "local_lsof"
	SourceConfig    Source = "config"
	SourceManual    Source = "manual"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceLocalLsof, SourceConfig, SourceManual:
		return nil
	default:
		return fmt.Errorf("externalnode: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExternalNode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHealthy orders the results by the healthy field.
func ByHealthy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthy, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByProbeFailures orders the results by the probe_failures field.
func ByProbeFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProbeFailures, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
