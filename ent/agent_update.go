// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildsquads/squads/ent/agent"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/predicate"
	"github.com/buildsquads/squads/ent/squad"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSquadID sets the "squad_id" field.
func (_u *AgentUpdate) SetSquadID(v string) *AgentUpdate {
	_u.mutation.SetSquadID(v)
	return _u
}

// SetNillableSquadID sets the "squad_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSquadID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSquadID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *AgentUpdate) SetSlug(v string) *AgentUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSlug(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentUpdate) SetRole(v string) *AgentUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRole(v *string) *AgentUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AgentUpdate) SetLevel(v agent.Level) *AgentUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLevel(v *agent.Level) *AgentUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSystemInstruction sets the "system_instruction" field.
func (_u *AgentUpdate) SetSystemInstruction(v string) *AgentUpdate {
	_u.mutation.SetSystemInstruction(v)
	return _u
}

// SetNillableSystemInstruction sets the "system_instruction" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSystemInstruction(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSystemInstruction(*v)
	}
	return _u
}

// ClearSystemInstruction clears the value of the "system_instruction" field.
func (_u *AgentUpdate) ClearSystemInstruction() *AgentUpdate {
	_u.mutation.ClearSystemInstruction()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentUpdate) SetModel(v string) *AgentUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableModel(v *string) *AgentUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentUpdate) ClearModel() *AgentUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdate) SetStatus(v agent.Status) *AgentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableStatus(v *agent.Status) *AgentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *AgentUpdate) SetMentorID(v string) *AgentUpdate {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableMentorID(v *string) *AgentUpdate {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// ClearMentorID clears the value of the "mentor_id" field.
func (_u *AgentUpdate) ClearMentorID() *AgentUpdate {
	_u.mutation.ClearMentorID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSquad sets the "squad" edge to the Squad entity.
func (_u *AgentUpdate) SetSquad(v *Squad) *AgentUpdate {
	return _u.SetSquadID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the AgentSession entity by IDs.
func (_u *AgentUpdate) AddSessionIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AgentSession entity.
func (_u *AgentUpdate) AddSessions(v ...*AgentSession) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearSquad clears the "squad" edge to the Squad entity.
func (_u *AgentUpdate) ClearSquad() *AgentUpdate {
	_u.mutation.ClearSquad()
	return _u
}

// ClearSessions clears all "sessions" edges to the AgentSession entity.
func (_u *AgentUpdate) ClearSessions() *AgentUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AgentSession entities by IDs.
func (_u *AgentUpdate) RemoveSessionIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AgentSession entities.
func (_u *AgentUpdate) RemoveSessions(v ...*AgentSession) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := agent.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Agent.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := agent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Agent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _u.mutation.SquadCleared() && len(_u.mutation.SquadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.squad"`)
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(agent.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(agent.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SystemInstruction(); ok {
		_spec.SetField(agent.FieldSystemInstruction, field.TypeString, value)
	}
	if _u.mutation.SystemInstructionCleared() {
		_spec.ClearField(agent.FieldSystemInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agent.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agent.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(agent.FieldMentorID, field.TypeString, value)
	}
	if _u.mutation.MentorIDCleared() {
		_spec.ClearField(agent.FieldMentorID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SquadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.SquadTable,
			Columns: []string{agent.SquadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(squad.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SquadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.SquadTable,
			Columns: []string{agent.SquadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(squad.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.SessionsTable,
			Columns: []string{agent.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.SessionsTable,
			Columns: []string{agent.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.SessionsTable,
			Columns: []string{agent.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetSquadID sets the "squad_id" field.
func (_u *AgentUpdateOne) SetSquadID(v string) *AgentUpdateOne {
	_u.mutation.SetSquadID(v)
	return _u
}

// SetNillableSquadID sets the "squad_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSquadID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSquadID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *AgentUpdateOne) SetSlug(v string) *AgentUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSlug(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *AgentUpdateOne) SetRole(v string) *AgentUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRole(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AgentUpdateOne) SetLevel(v agent.Level) *AgentUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLevel(v *agent.Level) *AgentUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSystemInstruction sets the "system_instruction" field.
func (_u *AgentUpdateOne) SetSystemInstruction(v string) *AgentUpdateOne {
	_u.mutation.SetSystemInstruction(v)
	return _u
}

// SetNillableSystemInstruction sets the "system_instruction" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSystemInstruction(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSystemInstruction(*v)
	}
	return _u
}

// ClearSystemInstruction clears the value of the "system_instruction" field.
func (_u *AgentUpdateOne) ClearSystemInstruction() *AgentUpdateOne {
	_u.mutation.ClearSystemInstruction()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentUpdateOne) SetModel(v string) *AgentUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableModel(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentUpdateOne) ClearModel() *AgentUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentUpdateOne) SetStatus(v agent.Status) *AgentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableStatus(v *agent.Status) *AgentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *AgentUpdateOne) SetMentorID(v string) *AgentUpdateOne {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableMentorID(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// ClearMentorID clears the value of the "mentor_id" field.
func (_u *AgentUpdateOne) ClearMentorID() *AgentUpdateOne {
	_u.mutation.ClearMentorID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSquad sets the "squad" edge to the Squad entity.
func (_u *AgentUpdateOne) SetSquad(v *Squad) *AgentUpdateOne {
	return _u.SetSquadID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the AgentSession entity by IDs.
func (_u *AgentUpdateOne) AddSessionIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AgentSession entity.
func (_u *AgentUpdateOne) AddSessions(v ...*AgentSession) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearSquad clears the "squad" edge to the Squad entity.
func (_u *AgentUpdateOne) ClearSquad() *AgentUpdateOne {
	_u.mutation.ClearSquad()
	return _u
}

// ClearSessions clears all "sessions" edges to the AgentSession entity.
func (_u *AgentUpdateOne) ClearSessions() *AgentUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AgentSession entities by IDs.
func (_u *AgentUpdateOne) RemoveSessionIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AgentSession entities.
func (_u *AgentUpdateOne) RemoveSessions(v ...*AgentSession) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := agent.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Agent.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := agent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Agent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _u.mutation.SquadCleared() && len(_u.mutation.SquadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.squad"`)
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(agent.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(agent.FieldLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SystemInstruction(); ok {
		_spec.SetField(agent.FieldSystemInstruction, field.TypeString, value)
	}
	if _u.mutation.SystemInstructionCleared() {
		_spec.ClearField(agent.FieldSystemInstruction, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agent.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agent.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(agent.FieldMentorID, field.TypeString, value)
	}
	if _u.mutation.MentorIDCleared() {
		_spec.ClearField(agent.FieldMentorID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SquadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.SquadTable,
			Columns: []string{agent.SquadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(squad.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SquadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agent.SquadTable,
			Columns: []string{agent.SquadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(squad.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.SessionsTable,
			Columns: []string{agent.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.SessionsTable,
			Columns: []string{agent.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.SessionsTable,
			Columns: []string{agent.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
