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
	"github.com/buildsquads/squads/ent/externalnode"
	"github.com/buildsquads/squads/ent/predicate"
)

// ExternalNodeUpdate is the builder for updating ExternalNode entities.
type ExternalNodeUpdate struct {
	config
	hooks    []Hook
	mutation *ExternalNodeMutation
}

// Where appends a list predicates to the ExternalNodeUpdate builder.
func (_u *ExternalNodeUpdate) Where(ps ...predicate.ExternalNode) *ExternalNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHealthy sets the "healthy" field.
func (_u *ExternalNodeUpdate) SetHealthy(v bool) *ExternalNodeUpdate {
	_u.mutation.SetHealthy(v)
	return _u
}

// SetNillableHealthy sets the "healthy" field if the given value is not nil.
func (_u *ExternalNodeUpdate) SetNillableHealthy(v *bool) *ExternalNodeUpdate {
	if v != nil {
		_u.SetHealthy(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ExternalNodeUpdate) SetVersion(v string) *ExternalNodeUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ExternalNodeUpdate) SetNillableVersion(v *string) *ExternalNodeUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *ExternalNodeUpdate) ClearVersion() *ExternalNodeUpdate {
	_u.mutation.ClearVersion()
	return _u
}

// SetSource sets the "source" field.
func (_u *ExternalNodeUpdate) SetSource(v externalnode.Source) *ExternalNodeUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExternalNodeUpdate) SetNillableSource(v *externalnode.Source) *ExternalNodeUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetProbeFailures sets the "probe_failures" field.
func (_u *ExternalNodeUpdate) SetProbeFailures(v int) *ExternalNodeUpdate {
	_u.mutation.ResetProbeFailures()
	_u.mutation.SetProbeFailures(v)
	return _u
}

// SetNillableProbeFailures sets the "probe_failures" field if the given value is not nil.
func (_u *ExternalNodeUpdate) SetNillableProbeFailures(v *int) *ExternalNodeUpdate {
	if v != nil {
		_u.SetProbeFailures(*v)
	}
	return _u
}

// AddProbeFailures adds value to the "probe_failures" field.
func (_u *ExternalNodeUpdate) AddProbeFailures(v int) *ExternalNodeUpdate {
	_u.mutation.AddProbeFailures(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ExternalNodeUpdate) SetLastSeen(v time.Time) *ExternalNodeUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ExternalNodeUpdate) SetNillableLastSeen(v *time.Time) *ExternalNodeUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the ExternalNodeMutation object of the builder.
func (_u *ExternalNodeUpdate) Mutation() *ExternalNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExternalNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExternalNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExternalNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExternalNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExternalNodeUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := externalnode.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExternalNode.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ExternalNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(externalnode.Table, externalnode.Columns, sqlgraph.NewFieldSpec(externalnode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Healthy(); ok {
		_spec.SetField(externalnode.FieldHealthy, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(externalnode.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(externalnode.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(externalnode.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProbeFailures(); ok {
		_spec.SetField(externalnode.FieldProbeFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProbeFailures(); ok {
		_spec.AddField(externalnode.FieldProbeFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(externalnode.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{externalnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExternalNodeUpdateOne is the builder for updating a single ExternalNode entity.
type ExternalNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExternalNodeMutation
}

// SetHealthy sets the "healthy" field.
func (_u *ExternalNodeUpdateOne) SetHealthy(v bool) *ExternalNodeUpdateOne {
	_u.mutation.SetHealthy(v)
	return _u
}

// SetNillableHealthy sets the "healthy" field if the given value is not nil.
func (_u *ExternalNodeUpdateOne) SetNillableHealthy(v *bool) *ExternalNodeUpdateOne {
	if v != nil {
		_u.SetHealthy(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ExternalNodeUpdateOne) SetVersion(v string) *ExternalNodeUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ExternalNodeUpdateOne) SetNillableVersion(v *string) *ExternalNodeUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *ExternalNodeUpdateOne) ClearVersion() *ExternalNodeUpdateOne {
	_u.mutation.ClearVersion()
	return _u
}

// SetSource sets the "source" field.
func (_u *ExternalNodeUpdateOne) SetSource(v externalnode.Source) *ExternalNodeUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExternalNodeUpdateOne) SetNillableSource(v *externalnode.Source) *ExternalNodeUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetProbeFailures sets the "probe_failures" field.
func (_u *ExternalNodeUpdateOne) SetProbeFailures(v int) *ExternalNodeUpdateOne {
	_u.mutation.ResetProbeFailures()
	_u.mutation.SetProbeFailures(v)
	return _u
}

// SetNillableProbeFailures sets the "probe_failures" field if the given value is not nil.
func (_u *ExternalNodeUpdateOne) SetNillableProbeFailures(v *int) *ExternalNodeUpdateOne {
	if v != nil {
		_u.SetProbeFailures(*v)
	}
	return _u
}

// AddProbeFailures adds value to the "probe_failures" field.
func (_u *ExternalNodeUpdateOne) AddProbeFailures(v int) *ExternalNodeUpdateOne {
	_u.mutation.AddProbeFailures(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ExternalNodeUpdateOne) SetLastSeen(v time.Time) *ExternalNodeUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ExternalNodeUpdateOne) SetNillableLastSeen(v *time.Time) *ExternalNodeUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the ExternalNodeMutation object of the builder.
func (_u *ExternalNodeUpdateOne) Mutation() *ExternalNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExternalNodeUpdate builder.
func (_u *ExternalNodeUpdateOne) Where(ps ...predicate.ExternalNode) *ExternalNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExternalNodeUpdateOne) Select(field string, fields ...string) *ExternalNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExternalNode entity.
func (_u *ExternalNodeUpdateOne) Save(ctx context.Context) (*ExternalNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExternalNodeUpdateOne) SaveX(ctx context.Context) *ExternalNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExternalNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExternalNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExternalNodeUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := externalnode.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExternalNode.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ExternalNodeUpdateOne) sqlSave(ctx context.Context) (_node *ExternalNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(externalnode.Table, externalnode.Columns, sqlgraph.NewFieldSpec(externalnode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExternalNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, externalnode.FieldID)
		for _, f := range fields {
			if !externalnode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != externalnode.FieldID {
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
	if value, ok := _u.mutation.Healthy(); ok {
		_spec.SetField(externalnode.FieldHealthy, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(externalnode.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(externalnode.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(externalnode.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProbeFailures(); ok {
		_spec.SetField(externalnode.FieldProbeFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProbeFailures(); ok {
		_spec.AddField(externalnode.FieldProbeFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(externalnode.FieldLastSeen, field.TypeTime, value)
	}
	_node = &ExternalNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{externalnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
