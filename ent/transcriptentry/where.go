// Code generated by ent, DO NOT EDIT.

package transcriptentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/buildsquads/squads/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldSessionID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldSeq, v))
}

// BackendMessageID applies equality check predicate on the "backend_message_id" field. It's identical to BackendMessageIDEQ.
func BackendMessageID(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldBackendMessageID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldContainsFold(FieldSessionID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldLTE(FieldSeq, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNotIn(FieldRole, vs...))
}

// BackendMessageIDEQ applies the EQ predicate on the "backend_message_id" field.
func BackendMessageIDEQ(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldBackendMessageID, v))
}

// BackendMessageIDNEQ applies the NEQ predicate on the "backend_message_id" field.
func BackendMessageIDNEQ(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNEQ(FieldBackendMessageID, v))
}

// BackendMessageIDIn applies the In predicate on the "backend_message_id" field.
func BackendMessageIDIn(vs ...string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldIn(FieldBackendMessageID, vs...))
}

// BackendMessageIDNotIn applies the NotIn predicate on the "backend_message_id" field.
func BackendMessageIDNotIn(vs ...string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNotIn(FieldBackendMessageID, vs...))
}

// BackendMessageIDGT applies the GT predicate on the "backend_message_id" field.
func BackendMessageIDGT(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldGT(FieldBackendMessageID, v))
}

// BackendMessageIDGTE applies the GTE predicate on the "backend_message_id" field.
func BackendMessageIDGTE(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldGTE(FieldBackendMessageID, v))
}

// BackendMessageIDLT applies the LT predicate on the "backend_message_id" field.
func BackendMessageIDLT(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldLT(FieldBackendMessageID, v))
}

// BackendMessageIDLTE applies the LTE predicate on the "backend_message_id" field.
func BackendMessageIDLTE(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldLTE(FieldBackendMessageID, v))
}

// BackendMessageIDContains applies the Contains predicate on the "backend_message_id" field.
func BackendMessageIDContains(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldContains(FieldBackendMessageID, v))
}

// BackendMessageIDHasPrefix applies the HasPrefix predicate on the "backend_message_id" field.
func BackendMessageIDHasPrefix(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldHasPrefix(FieldBackendMessageID, v))
}

// BackendMessageIDHasSuffix applies the HasSuffix predicate on the "backend_message_id" field.
func BackendMessageIDHasSuffix(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldHasSuffix(FieldBackendMessageID, v))
}

// BackendMessageIDIsNil applies the IsNil predicate on the "backend_message_id" field.
func BackendMessageIDIsNil() predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldIsNull(FieldBackendMessageID))
}

// BackendMessageIDNotNil applies the NotNil predicate on the "backend_message_id" field.
func BackendMessageIDNotNil() predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNotNull(FieldBackendMessageID))
}

// BackendMessageIDEqualFold applies the EqualFold predicate on the "backend_message_id" field.
func BackendMessageIDEqualFold(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEqualFold(FieldBackendMessageID, v))
}

// BackendMessageIDContainsFold applies the ContainsFold predicate on the "backend_message_id" field.
func BackendMessageIDContainsFold(v string) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldContainsFold(FieldBackendMessageID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.TranscriptEntry {
	return predicate.TranscriptEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AgentSession) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TranscriptEntry) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TranscriptEntry) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TranscriptEntry) predicate.TranscriptEntry {
	return predicate.TranscriptEntry(sql.NotPredicates(p))
}
