// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/predicate"
	"github.com/buildsquads/squads/ent/transcriptentry"
)

// TranscriptEntryUpdate is the builder for updating TranscriptEntry entities.
type TranscriptEntryUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptEntryMutation
}

// Where appends a list predicates to the TranscriptEntryUpdate builder.
func (_u *TranscriptEntryUpdate) Where(ps ...predicate.TranscriptEntry) *TranscriptEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TranscriptEntryUpdate) SetSessionID(v string) *TranscriptEntryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TranscriptEntryUpdate) SetNillableSessionID(v *string) *TranscriptEntryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *TranscriptEntryUpdate) SetSeq(v int) *TranscriptEntryUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *TranscriptEntryUpdate) SetNillableSeq(v *int) *TranscriptEntryUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *TranscriptEntryUpdate) AddSeq(v int) *TranscriptEntryUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *TranscriptEntryUpdate) SetRole(v transcriptentry.Role) *TranscriptEntryUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *TranscriptEntryUpdate) SetNillableRole(v *transcriptentry.Role) *TranscriptEntryUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetBackendMessageID sets the "backend_message_id" field.
func (_u *TranscriptEntryUpdate) SetBackendMessageID(v string) *TranscriptEntryUpdate {
	_u.mutation.SetBackendMessageID(v)
	return _u
}

// SetNillableBackendMessageID sets the "backend_message_id" field if the given value is not nil.
func (_u *TranscriptEntryUpdate) SetNillableBackendMessageID(v *string) *TranscriptEntryUpdate {
	if v != nil {
		_u.SetBackendMessageID(*v)
	}
	return _u
}

// ClearBackendMessageID clears the value of the "backend_message_id" field.
func (_u *TranscriptEntryUpdate) ClearBackendMessageID() *TranscriptEntryUpdate {
	_u.mutation.ClearBackendMessageID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TranscriptEntryUpdate) SetPayload(v map[string]interface{}) *TranscriptEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetSession sets the "session" edge to the AgentSession entity.
func (_u *TranscriptEntryUpdate) SetSession(v *AgentSession) *TranscriptEntryUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the TranscriptEntryMutation object of the builder.
func (_u *TranscriptEntryUpdate) Mutation() *TranscriptEntryMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (_u *TranscriptEntryUpdate) ClearSession() *TranscriptEntryUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptEntryUpdate) check() error {
	if v, ok := _u.mutation.Seq(); ok {
		if err := transcriptentry.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "TranscriptEntry.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := transcriptentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TranscriptEntry.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TranscriptEntry.session"`)
	}
	return nil
}

func (_u *TranscriptEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptentry.Table, transcriptentry.Columns, sqlgraph.NewFieldSpec(transcriptentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(transcriptentry.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(transcriptentry.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(transcriptentry.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BackendMessageID(); ok {
		_spec.SetField(transcriptentry.FieldBackendMessageID, field.TypeString, value)
	}
	if _u.mutation.BackendMessageIDCleared() {
		_spec.ClearField(transcriptentry.FieldBackendMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(transcriptentry.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcriptentry.SessionTable,
			Columns: []string{transcriptentry.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcriptentry.SessionTable,
			Columns: []string{transcriptentry.SessionColumn},
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
			err = &NotFoundError{transcriptentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptEntryUpdateOne is the builder for updating a single TranscriptEntry entity.
type TranscriptEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptEntryMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TranscriptEntryUpdateOne) SetSessionID(v string) *TranscriptEntryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TranscriptEntryUpdateOne) SetNillableSessionID(v *string) *TranscriptEntryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *TranscriptEntryUpdateOne) SetSeq(v int) *TranscriptEntryUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *TranscriptEntryUpdateOne) SetNillableSeq(v *int) *TranscriptEntryUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *TranscriptEntryUpdateOne) AddSeq(v int) *TranscriptEntryUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *TranscriptEntryUpdateOne) SetRole(v transcriptentry.Role) *TranscriptEntryUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *TranscriptEntryUpdateOne) SetNillableRole(v *transcriptentry.Role) *TranscriptEntryUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetBackendMessageID sets the "backend_message_id" field.
func (_u *TranscriptEntryUpdateOne) SetBackendMessageID(v string) *TranscriptEntryUpdateOne {
	_u.mutation.SetBackendMessageID(v)
	return _u
}

// SetNillableBackendMessageID sets the "backend_message_id" field if the given value is not nil.
func (_u *TranscriptEntryUpdateOne) SetNillableBackendMessageID(v *string) *TranscriptEntryUpdateOne {
	if v != nil {
		_u.SetBackendMessageID(*v)
	}
	return _u
}

// ClearBackendMessageID clears the value of the "backend_message_id" field.
func (_u *TranscriptEntryUpdateOne) ClearBackendMessageID() *TranscriptEntryUpdateOne {
	_u.mutation.ClearBackendMessageID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *TranscriptEntryUpdateOne) SetPayload(v map[string]interface{}) *TranscriptEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetSession sets the "session" edge to the AgentSession entity.
func (_u *TranscriptEntryUpdateOne) SetSession(v *AgentSession) *TranscriptEntryUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the TranscriptEntryMutation object of the builder.
func (_u *TranscriptEntryUpdateOne) Mutation() *TranscriptEntryMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (_u *TranscriptEntryUpdateOne) ClearSession() *TranscriptEntryUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the TranscriptEntryUpdate builder.
func (_u *TranscriptEntryUpdateOne) Where(ps ...predicate.TranscriptEntry) *TranscriptEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptEntryUpdateOne) Select(field string, fields ...string) *TranscriptEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranscriptEntry entity.
func (_u *TranscriptEntryUpdateOne) Save(ctx context.Context) (*TranscriptEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptEntryUpdateOne) SaveX(ctx context.Context) *TranscriptEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Seq(); ok {
		if err := transcriptentry.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "TranscriptEntry.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := transcriptentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TranscriptEntry.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TranscriptEntry.session"`)
	}
	return nil
}

func (_u *TranscriptEntryUpdateOne) sqlSave(ctx context.Context) (_node *TranscriptEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptentry.Table, transcriptentry.Columns, sqlgraph.NewFieldSpec(transcriptentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranscriptEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptentry.FieldID)
		for _, f := range fields {
			if !transcriptentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcriptentry.FieldID {
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
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(transcriptentry.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(transcriptentry.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(transcriptentry.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BackendMessageID(); ok {
		_spec.SetField(transcriptentry.FieldBackendMessageID, field.TypeString, value)
	}
	if _u.mutation.BackendMessageIDCleared() {
		_spec.ClearField(transcriptentry.FieldBackendMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(transcriptentry.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcriptentry.SessionTable,
			Columns: []string{transcriptentry.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcriptentry.SessionTable,
			Columns: []string{transcriptentry.SessionColumn},
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
	_node = &TranscriptEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
