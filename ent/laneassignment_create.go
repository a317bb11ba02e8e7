// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildsquads/squads/ent/laneassignment"
	"github.com/buildsquads/squads/ent/project"
)

// LaneAssignmentCreate is the builder for creating a LaneAssignment entity.
type LaneAssignmentCreate struct {
	config
	mutation *LaneAssignmentMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *LaneAssignmentCreate) SetProjectID(v string) *LaneAssignmentCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetSquadID sets the "squad_id" field.
func (_c *LaneAssignmentCreate) SetSquadID(v string) *LaneAssignmentCreate {
	_c.mutation.SetSquadID(v)
	return _c
}

// SetLane sets the "lane" field.
func (_c *LaneAssignmentCreate) SetLane(v laneassignment.Lane) *LaneAssignmentCreate {
	_c.mutation.SetLane(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *LaneAssignmentCreate) SetAgentID(v string) *LaneAssignmentCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *LaneAssignmentCreate) SetNillableAgentID(v *string) *LaneAssignmentCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LaneAssignmentCreate) SetID(v string) *LaneAssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *LaneAssignmentCreate) SetProject(v *Project) *LaneAssignmentCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the LaneAssignmentMutation object of the builder.
func (_c *LaneAssignmentCreate) Mutation() *LaneAssignmentMutation {
	return _c.mutation
}

// Save creates the LaneAssignment in the database.
func (_c *LaneAssignmentCreate) Save(ctx context.Context) (*LaneAssignment, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LaneAssignmentCreate) SaveX(ctx context.Context) *LaneAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LaneAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LaneAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LaneAssignmentCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "LaneAssignment.project_id"`)}
	}
	if _, ok := _c.mutation.SquadID(); !ok {
		return &ValidationError{Name: "squad_id", err: errors.New(`ent: missing required field "LaneAssignment.squad_id"`)}
	}
	if _, ok := _c.mutation.Lane(); !ok {
		return &ValidationError{Name: "lane", err: errors.New(`ent: missing required field "LaneAssignment.lane"`)}
	}
	if v, ok := _c.mutation.Lane(); ok {
		if err := laneassignment.LaneValidator(v); err != nil {
			return &ValidationError{Name: "lane", err: fmt.Errorf(`ent: validator failed for field "LaneAssignment.lane": %w`, err)}
		}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "LaneAssignment.project"`)}
	}
	return nil
}

func (_c *LaneAssignmentCreate) sqlSave(ctx context.Context) (*LaneAssignment, error) {
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
			return nil, fmt.Errorf("unexpected LaneAssignment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LaneAssignmentCreate) createSpec() (*LaneAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &LaneAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(laneassignment.Table, sqlgraph.NewFieldSpec(laneassignment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SquadID(); ok {
		_spec.SetField(laneassignment.FieldSquadID, field.TypeString, value)
		_node.SquadID = value
	}
	if value, ok := _c.mutation.Lane(); ok {
		_spec.SetField(laneassignment.FieldLane, field.TypeEnum, value)
		_node.Lane = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(laneassignment.FieldAgentID, field.TypeString, value)
		_node.AgentID = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   laneassignment.ProjectTable,
			Columns: []string{laneassignment.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LaneAssignmentCreateBulk is the builder for creating many LaneAssignment entities in bulk.
type LaneAssignmentCreateBulk struct {
	config
	err      error
	builders []*LaneAssignmentCreate
}

// Save creates the LaneAssignment entities in the database.
func (_c *LaneAssignmentCreateBulk) Save(ctx context.Context) ([]*LaneAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LaneAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LaneAssignmentMutation)
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
func (_c *LaneAssignmentCreateBulk) SaveX(ctx context.Context) []*LaneAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LaneAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LaneAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
