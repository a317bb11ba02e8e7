// Code generated by ent, DO NOT EDIT.

package squad

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/buildsquads/squads/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Squad {
	return predicate.Squad(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Squad {
	return predicate.Squad(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Squad {
	return predicate.Squad(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Squad {
	return predicate.Squad(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Squad {
	return predicate.Squad(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Squad {
	return predicate.Squad(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Squad {
	return predicate.Squad(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Squad {
	return predicate.Squad(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Squad {
	return predicate.Squad(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldDescription, v))
}

// OpencodeURL applies equality check predicate on the "opencode_url" field. It's identical to OpencodeURLEQ.
func OpencodeURL(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldOpencodeURL, v))
}

// OpencodePid applies equality check predicate on the "opencode_pid" field. It's identical to OpencodePidEQ.
func OpencodePid(v int) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldOpencodePid, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Squad {
	return predicate.Squad(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Squad {
	return predicate.Squad(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Squad {
	return predicate.Squad(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Squad {
	return predicate.Squad(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Squad {
	return predicate.Squad(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Squad {
	return predicate.Squad(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Squad {
	return predicate.Squad(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Squad {
	return predicate.Squad(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Squad {
	return predicate.Squad(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Squad {
	return predicate.Squad(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Squad {
	return predicate.Squad(sql.FieldContainsFold(FieldProjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Squad {
	return predicate.Squad(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Squad {
	return predicate.Squad(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Squad {
	return predicate.Squad(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Squad {
	return predicate.Squad(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Squad {
	return predicate.Squad(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Squad {
	return predicate.Squad(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Squad {
	return predicate.Squad(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Squad {
	return predicate.Squad(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Squad {
	return predicate.Squad(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Squad {
	return predicate.Squad(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Squad {
	return predicate.Squad(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Squad {
	return predicate.Squad(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Squad {
	return predicate.Squad(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Squad {
	return predicate.Squad(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Squad {
	return predicate.Squad(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Squad {
	return predicate.Squad(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Squad {
	return predicate.Squad(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Squad {
	return predicate.Squad(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Squad {
	return predicate.Squad(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Squad {
	return predicate.Squad(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Squad {
	return predicate.Squad(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Squad {
	return predicate.Squad(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Squad {
	return predicate.Squad(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Squad {
	return predicate.Squad(sql.FieldContainsFold(FieldDescription, v))
}

// OpencodeStatusEQ applies the EQ predicate on the "opencode_status" field.
func OpencodeStatusEQ(v OpencodeStatus) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldOpencodeStatus, v))
}

// OpencodeStatusNEQ applies the NEQ predicate on the "opencode_status" field.
func OpencodeStatusNEQ(v OpencodeStatus) predicate.Squad {
	return predicate.Squad(sql.FieldNEQ(FieldOpencodeStatus, v))
}

// OpencodeStatusIn applies the In predicate on the "opencode_status" field.
func OpencodeStatusIn(vs ...OpencodeStatus) predicate.Squad {
	return predicate.Squad(sql.FieldIn(FieldOpencodeStatus, vs...))
}

// OpencodeStatusNotIn applies the NotIn predicate on the "opencode_status" field.
func OpencodeStatusNotIn(vs ...OpencodeStatus) predicate.Squad {
	return predicate.Squad(sql.FieldNotIn(FieldOpencodeStatus, vs...))
}

// OpencodeURLEQ applies the EQ predicate on the "opencode_url" field.
func OpencodeURLEQ(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldOpencodeURL, v))
}

// OpencodeURLNEQ applies the NEQ predicate on the "opencode_url" field.
func OpencodeURLNEQ(v string) predicate.Squad {
	return predicate.Squad(sql.FieldNEQ(FieldOpencodeURL, v))
}

// OpencodeURLIn applies the In predicate on the "opencode_url" field.
func OpencodeURLIn(vs ...string) predicate.Squad {
	return predicate.Squad(sql.FieldIn(FieldOpencodeURL, vs...))
}

// OpencodeURLNotIn applies the NotIn predicate on the "opencode_url" field.
func OpencodeURLNotIn(vs ...string) predicate.Squad {
	return predicate.Squad(sql.FieldNotIn(FieldOpencodeURL, vs...))
}

// OpencodeURLGT applies the GT predicate on the "opencode_url" field.
func OpencodeURLGT(v string) predicate.Squad {
	return predicate.Squad(sql.FieldGT(FieldOpencodeURL, v))
}

// OpencodeURLGTE applies the GTE predicate on the "opencode_url" field.
func OpencodeURLGTE(v string) predicate.Squad {
	return predicate.Squad(sql.FieldGTE(FieldOpencodeURL, v))
}

// OpencodeURLLT applies the LT predicate on the "opencode_url" field.
func OpencodeURLLT(v string) predicate.Squad {
	return predicate.Squad(sql.FieldLT(FieldOpencodeURL, v))
}

// OpencodeURLLTE applies the LTE predicate on the "opencode_url" field.
func OpencodeURLLTE(v string) predicate.Squad {
	return predicate.Squad(sql.FieldLTE(FieldOpencodeURL, v))
}

// OpencodeURLContains applies the Contains predicate on the "opencode_url" field.
func OpencodeURLContains(v string) predicate.Squad {
	return predicate.Squad(sql.FieldContains(FieldOpencodeURL, v))
}

// OpencodeURLHasPrefix applies the HasPrefix predicate on the "opencode_url" field.
func OpencodeURLHasPrefix(v string) predicate.Squad {
	return predicate.Squad(sql.FieldHasPrefix(FieldOpencodeURL, v))
}

// OpencodeURLHasSuffix applies the HasSuffix predicate on the "opencode_url" field.
func OpencodeURLHasSuffix(v string) predicate.Squad {
	return predicate.Squad(sql.FieldHasSuffix(FieldOpencodeURL, v))
}

// OpencodeURLIsNil applies the IsNil predicate on the "opencode_url" field.
func OpencodeURLIsNil() predicate.Squad {
	return predicate.Squad(sql.FieldIsNull(FieldOpencodeURL))
}

// OpencodeURLNotNil applies the NotNil predicate on the "opencode_url" field.
func OpencodeURLNotNil() predicate.Squad {
	return predicate.Squad(sql.FieldNotNull(FieldOpencodeURL))
}

// OpencodeURLEqualFold applies the EqualFold predicate on the "opencode_url" field.
func OpencodeURLEqualFold(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEqualFold(FieldOpencodeURL, v))
}

// OpencodeURLContainsFold applies the ContainsFold predicate on the "opencode_url" field.
func OpencodeURLContainsFold(v string) predicate.Squad {
	return predicate.Squad(sql.FieldContainsFold(FieldOpencodeURL, v))
}

// OpencodePidEQ applies the EQ predicate on the "opencode_pid" field.
func OpencodePidEQ(v int) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldOpencodePid, v))
}

// OpencodePidNEQ applies the NEQ predicate on the "opencode_pid" field.
func OpencodePidNEQ(v int) predicate.Squad {
	return predicate.Squad(sql.FieldNEQ(FieldOpencodePid, v))
}

// OpencodePidIn applies the In predicate on the "opencode_pid" field.
func OpencodePidIn(vs ...int) predicate.Squad {
	return predicate.Squad(sql.FieldIn(FieldOpencodePid, vs...))
}

// OpencodePidNotIn applies the NotIn predicate on the "opencode_pid" field.
func OpencodePidNotIn(vs ...int) predicate.Squad {
	return predicate.Squad(sql.FieldNotIn(FieldOpencodePid, vs...))
}

// OpencodePidGT applies the GT predicate on the "opencode_pid" field.
func OpencodePidGT(v int) predicate.Squad {
	return predicate.Squad(sql.FieldGT(FieldOpencodePid, v))
}

// OpencodePidGTE applies the GTE predicate on the "opencode_pid" field.
func OpencodePidGTE(v int) predicate.Squad {
	return predicate.Squad(sql.FieldGTE(FieldOpencodePid, v))
}

// OpencodePidLT applies the LT predicate on the "opencode_pid" field.
func OpencodePidLT(v int) predicate.Squad {
	return predicate.Squad(sql.FieldLT(FieldOpencodePid, v))
}

// OpencodePidLTE applies the LTE predicate on the "opencode_pid" field.
func OpencodePidLTE(v int) predicate.Squad {
	return predicate.Squad(sql.FieldLTE(FieldOpencodePid, v))
}

// OpencodePidIsNil applies the IsNil predicate on the "opencode_pid" field.
func OpencodePidIsNil() predicate.Squad {
	return predicate.Squad(sql.FieldIsNull(FieldOpencodePid))
}

// OpencodePidNotNil applies the NotNil predicate on the "opencode_pid" field.
func OpencodePidNotNil() predicate.Squad {
	return predicate.Squad(sql.FieldNotNull(FieldOpencodePid))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.Squad {
	return predicate.Squad(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.Squad {
	return predicate.Squad(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.Squad {
	return predicate.Squad(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.Squad {
	return predicate.Squad(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.Squad {
	return predicate.Squad(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.Squad {
	return predicate.Squad(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.Squad {
	return predicate.Squad(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.Squad {
	return predicate.Squad(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.Squad {
	return predicate.Squad(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.Squad {
	return predicate.Squad(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.Squad {
	return predicate.Squad(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.Squad {
	return predicate.Squad(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.Squad {
	return predicate.Squad(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.Squad {
	return predicate.Squad(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Squad {
	return predicate.Squad(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Squad {
	return predicate.Squad(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Squad {
	return predicate.Squad(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgents applies the HasEdge predicate on the "agents" edge.
func HasAgents() predicate.Squad {
	return predicate.Squad(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentsWith applies the HasEdge predicate on the "agents" edge with a given conditions (other predicates).
func HasAgentsWith(preds ...predicate.Agent) predicate.Squad {
	return predicate.Squad(func(s *sql.Selector) {
		step := newAgentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCards applies the HasEdge predicate on the "cards" edge.
func HasCards() predicate.Squad {
	return predicate.Squad(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CardsTable, CardsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCardsWith applies the HasEdge predicate on the "cards" edge with a given conditions (other predicates).
func HasCardsWith(preds ...predicate.Card) predicate.Squad {
	return predicate.Squad(func(s *sql.Selector) {
		step := newCardsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMcpServers applies the HasEdge predicate on the "mcp_servers" edge.
func HasMcpServers() predicate.Squad {
	return predicate.Squad(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, McpServersTable, McpServersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMcpServersWith applies the HasEdge predicate on the "mcp_servers" edge with a given conditions (other predicates).
func HasMcpServersWith(preds ...predicate.MCPServer) predicate.Squad {
	return predicate.Squad(func(s *sql.Selector) {
		step := newMcpServersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Squad) predicate.Squad {
	return predicate.Squad(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Squad) predicate.Squad {
	return predicate.Squad(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Squad) predicate.Squad {
	return predicate.Squad(sql.NotPredicates(p))
}
