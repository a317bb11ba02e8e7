// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildsquads/squads/ent/externalnode"
)

// ExternalNodeCreate is the builder for creating a ExternalNode entity.
type ExternalNodeCreate struct {
	config
	mutation *ExternalNodeMutation
	hooks    []Hook
}

// SetHealthy sets the "healthy" field.
func (_c *ExternalNodeCreate) SetHealthy(v bool) *ExternalNodeCreate {
	_c.mutation.SetHealthy(v)
	return _c
}

// SetNillableHealthy sets the "healthy" field if the given value is not nil.
func (_c *ExternalNodeCreate) SetNillableHealthy(v *bool) *ExternalNodeCreate {
	if v != nil {
		_c.SetHealthy(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ExternalNodeCreate) SetVersion(v string) *ExternalNodeCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ExternalNodeCreate) SetNillableVersion(v *string) *ExternalNodeCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ExternalNodeCreate) SetSource(v externalnode.Source) *ExternalNodeCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetProbeFailures sets the "probe_failures" field.
func (_c *ExternalNodeCreate) SetProbeFailures(v int) *ExternalNodeCreate {
	_c.mutation.SetProbeFailures(v)
	return _c
}

// SetNillableProbeFailures sets the "probe_failures" field if the given value is not nil.
func (_c *ExternalNodeCreate) SetNillableProbeFailures(v *int) *ExternalNodeCreate {
	if v != nil {
		_c.SetProbeFailures(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *ExternalNodeCreate) SetLastSeen(v time.Time) *ExternalNodeCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *ExternalNodeCreate) SetNillableLastSeen(v *time.Time) *ExternalNodeCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExternalNodeCreate) SetID(v string) *ExternalNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExternalNodeMutation object of the builder.
func (_c *ExternalNodeCreate) Mutation() *ExternalNodeMutation {
	return _c.mutation
}

// Save creates the ExternalNode in the database.
func (_c *ExternalNodeCreate) Save(ctx context.Context) (*ExternalNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExternalNodeCreate) SaveX(ctx context.Context) *ExternalNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExternalNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExternalNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExternalNodeCreate) defaults() {
	if _, ok := _c.mutation.Healthy(); !ok {
		v := externalnode.DefaultHealthy
		_c.mutation.SetHealthy(v)
	}
	if _, ok := _c.mutation.ProbeFailures(); !ok {
		v := externalnode.DefaultProbeFailures
		_c.mutation.SetProbeFailures(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := externalnode.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExternalNodeCreate) check() error {
	if _, ok := _c.mutation.Healthy(); !ok {
		return &ValidationError{Name: "healthy", err: errors.New(`ent: missing required field "ExternalNode.healthy"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ExternalNode.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := externalnode.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExternalNode.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProbeFailures(); !ok {
		return &ValidationError{Name: "probe_failures", err: errors.New(`ent: missing required field "ExternalNode.probe_failures"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "ExternalNode.last_seen"`)}
	}
	return nil
}

func (_c *ExternalNodeCreate) sqlSave(ctx context.Context) (*ExternalNode, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ExternalNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExternalNodeCreate) createSpec() (*ExternalNode, *sqlgraph.CreateSpec) {
	var (
		_node = &ExternalNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(externalnode.Table, sqlgraph.NewFieldSpec(externalnode.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Healthy(); ok {
		_spec.SetField(externalnode.FieldHealthy, field.TypeBool, value)
		_node.Healthy = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(externalnode.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(externalnode.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ProbeFailures(); ok {
		_spec.SetField(externalnode.FieldProbeFailures, field.TypeInt, value)
		_node.ProbeFailures = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(externalnode.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// ExternalNodeCreateBulk is the builder for creating many ExternalNode entities in bulk.
type ExternalNodeCreateBulk struct {
	config
	err      error
	builders []*ExternalNodeCreate
}

// Save creates the ExternalNode entities in the database.
func (_c *ExternalNodeCreateBulk) Save(ctx context.Context) ([]*ExternalNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExternalNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExternalNodeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExternalNodeCreateBulk) SaveX(ctx context.Context) []*ExternalNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExternalNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExternalNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
