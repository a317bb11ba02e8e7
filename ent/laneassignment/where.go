// Code generated by ent, DO NOT EDIT.

package laneassignment

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/buildsquads/squads/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEQ(FieldProjectID, v))
}

// SquadID applies equality check predicate on the "squad_id" field. It's identical to SquadIDEQ.
func SquadID(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEQ(FieldSquadID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEQ(FieldAgentID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldContainsFold(FieldProjectID, v))
}

// SquadIDEQ applies the EQ predicate on the "squad_id" field.
func SquadIDEQ(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEQ(FieldSquadID, v))
}

// SquadIDNEQ applies the NEQ predicate on the "squad_id" field.
func SquadIDNEQ(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNEQ(FieldSquadID, v))
}

// SquadIDIn applies the In predicate on the "squad_id" field.
func SquadIDIn(vs ...string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldIn(FieldSquadID, vs...))
}

// SquadIDNotIn applies the NotIn predicate on the "squad_id" field.
func SquadIDNotIn(vs ...string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNotIn(FieldSquadID, vs...))
}

// SquadIDGT applies the GT predicate on the "squad_id" field.
func SquadIDGT(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldGT(FieldSquadID, v))
}

// SquadIDGTE applies the GTE predicate on the "squad_id" field.
func SquadIDGTE(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldGTE(FieldSquadID, v))
}

// SquadIDLT applies the LT predicate on the "squad_id" field.
func SquadIDLT(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldLT(FieldSquadID, v))
}

// SquadIDLTE applies the LTE predicate on the "squad_id" field.
func SquadIDLTE(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldLTE(FieldSquadID, v))
}

// SquadIDContains applies the Contains predicate on the "squad_id" field.
func SquadIDContains(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldContains(FieldSquadID, v))
}

// SquadIDHasPrefix applies the HasPrefix predicate on the "squad_id" field.
func SquadIDHasPrefix(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldHasPrefix(FieldSquadID, v))
}

// SquadIDHasSuffix applies the HasSuffix predicate on the "squad_id" field.
func SquadIDHasSuffix(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldHasSuffix(FieldSquadID, v))
}

// SquadIDEqualFold applies the EqualFold predicate on the "squad_id" field.
func SquadIDEqualFold(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEqualFold(FieldSquadID, v))
}

// SquadIDContainsFold applies the ContainsFold predicate on the "squad_id" field.
func SquadIDContainsFold(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldContainsFold(FieldSquadID, v))
}

// LaneEQ applies the EQ predicate on the "lane" field.
func LaneEQ(v Lane) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEQ(FieldLane, v))
}

// LaneNEQ applies the NEQ predicate on the "lane" field.
func LaneNEQ(v Lane) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNEQ(FieldLane, v))
}

// LaneIn applies the In predicate on the "lane" field.
func LaneIn(vs ...Lane) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldIn(FieldLane, vs...))
}

// LaneNotIn applies the NotIn predicate on the "lane" field.
func LaneNotIn(vs ...Lane) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNotIn(FieldLane, vs...))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldNotNull(FieldAgentID))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.FieldContainsFold(FieldAgentID, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.LaneAssignment {
	return predicate.LaneAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.LaneAssignment {
	return predicate.LaneAssignment(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LaneAssignment) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LaneAssignment) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LaneAssignment) predicate.LaneAssignment {
	return predicate.LaneAssignment(sql.NotPredicates(p))
}
