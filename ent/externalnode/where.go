// Code generated by ent, DO NOT EDIT.

package externalnode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/buildsquads/squads/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldContainsFold(FieldID, id))
}

// Healthy applies equality check predicate on the "healthy" field. It's identical to HealthyEQ.
func Healthy(v bool) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldHealthy, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldVersion, v))
}

// ProbeFailures applies equality check predicate on the "probe_failures" field. It's identical to ProbeFailuresEQ.
func ProbeFailures(v int) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldProbeFailures, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldLastSeen, v))
}

// HealthyEQ applies the EQ predicate on the "healthy" field.
func HealthyEQ(v bool) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldHealthy, v))
}

// HealthyNEQ applies the NEQ predicate on the "healthy" field.
func HealthyNEQ(v bool) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNEQ(FieldHealthy, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionIsNil applies the IsNil predicate on the "version" field.
func VersionIsNil() predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldIsNull(FieldVersion))
}

// VersionNotNil applies the NotNil predicate on the "version" field.
func VersionNotNil() predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNotNull(FieldVersion))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldContainsFold(FieldVersion, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNotIn(FieldSource, vs...))
}

// ProbeFailuresEQ applies the EQ predicate on the "probe_failures" field.
func ProbeFailuresEQ(v int) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldProbeFailures, v))
}

// ProbeFailuresNEQ applies the NEQ predicate on the "probe_failures" field.
func ProbeFailuresNEQ(v int) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNEQ(FieldProbeFailures, v))
}

// ProbeFailuresIn applies the In predicate on the "probe_failures" field.
func ProbeFailuresIn(vs ...int) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldIn(FieldProbeFailures, vs...))
}

// ProbeFailuresNotIn applies the NotIn predicate on the "probe_failures" field.
func ProbeFailuresNotIn(vs ...int) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNotIn(FieldProbeFailures, vs...))
}

// ProbeFailuresGT applies the GT predicate on the "probe_failures" field.
func ProbeFailuresGT(v int) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldGT(FieldProbeFailures, v))
}

// ProbeFailuresGTE applies the GTE predicate on the "probe_failures" field.
func ProbeFailuresGTE(v int) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldGTE(FieldProbeFailures, v))
}

// ProbeFailuresLT applies the LT predicate on the "probe_failures" field.
func ProbeFailuresLT(v int) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldLT(FieldProbeFailures, v))
}

// ProbeFailuresLTE applies the LTE predicate on the "probe_failures" field.
func ProbeFailuresLTE(v int) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldLTE(FieldProbeFailures, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.ExternalNode {
	return predicate.ExternalNode(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExternalNode) predicate.ExternalNode {
	return predicate.ExternalNode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExternalNode) predicate.ExternalNode {
	return predicate.ExternalNode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExternalNode) predicate.ExternalNode {
	return predicate.ExternalNode(sql.NotPredicates(p))
}
