// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildsquads/squads/ent/laneassignment"
	"github.com/buildsquads/squads/ent/predicate"
	"github.com/buildsquads/squads/ent/project"
)

// LaneAssignmentUpdate is the builder for updating LaneAssignment entities.
type LaneAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *LaneAssignmentMutation
}

// Where appends a list predicates to the LaneAssignmentUpdate builder.
func (_u *LaneAssignmentUpdate) Where(ps ...predicate.LaneAssignment) *LaneAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *LaneAssignmentUpdate) SetProjectID(v string) *LaneAssignmentUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *LaneAssignmentUpdate) SetNillableProjectID(v *string) *LaneAssignmentUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetSquadID sets the "squad_id" field.
func (_u *LaneAssignmentUpdate) SetSquadID(v string) *LaneAssignmentUpdate {
	_u.mutation.SetSquadID(v)
	return _u
}

// SetNillableSquadID sets the "squad_id" field if the given value is not nil.
func (_u *LaneAssignmentUpdate) SetNillableSquadID(v *string) *LaneAssignmentUpdate {
	if v != nil {
		_u.SetSquadID(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *LaneAssignmentUpdate) SetLane(v laneassignment.Lane) *LaneAssignmentUpdate {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *LaneAssignmentUpdate) SetNillableLane(v *laneassignment.Lane) *LaneAssignmentUpdate {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *LaneAssignmentUpdate) SetAgentID(v string) *LaneAssignmentUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *LaneAssignmentUpdate) SetNillableAgentID(v *string) *LaneAssignmentUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *LaneAssignmentUpdate) ClearAgentID() *LaneAssignmentUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *LaneAssignmentUpdate) SetProject(v *Project) *LaneAssignmentUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the LaneAssignmentMutation object of the builder.
func (_u *LaneAssignmentUpdate) Mutation() *LaneAssignmentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *LaneAssignmentUpdate) ClearProject() *LaneAssignmentUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LaneAssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LaneAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LaneAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LaneAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LaneAssignmentUpdate) check() error {
	if v, ok := _u.mutation.Lane(); ok {
		if err := laneassignment.LaneValidator(v); err != nil {
			return &ValidationError{Name: "lane", err: fmt.Errorf(`ent: validator failed for field "LaneAssignment.lane": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LaneAssignment.project"`)
	}
	return nil
}

func (_u *LaneAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(laneassignment.Table, laneassignment.Columns, sqlgraph.NewFieldSpec(laneassignment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SquadID(); ok {
		_spec.SetField(laneassignment.FieldSquadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(laneassignment.FieldLane, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(laneassignment.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(laneassignment.FieldAgentID, field.TypeString)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{laneassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LaneAssignmentUpdateOne is the builder for updating a single LaneAssignment entity.
type LaneAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LaneAssignmentMutation
}

// SetProjectID sets the "project_id" field.
func (_u *LaneAssignmentUpdateOne) SetProjectID(v string) *LaneAssignmentUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *LaneAssignmentUpdateOne) SetNillableProjectID(v *string) *LaneAssignmentUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetSquadID sets the "squad_id" field.
func (_u *LaneAssignmentUpdateOne) SetSquadID(v string) *LaneAssignmentUpdateOne {
	_u.mutation.SetSquadID(v)
	return _u
}

// SetNillableSquadID sets the "squad_id" field if the given value is not nil.
func (_u *LaneAssignmentUpdateOne) SetNillableSquadID(v *string) *LaneAssignmentUpdateOne {
	if v != nil {
		_u.SetSquadID(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *LaneAssignmentUpdateOne) SetLane(v laneassignment.Lane) *LaneAssignmentUpdateOne {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *LaneAssignmentUpdateOne) SetNillableLane(v *laneassignment.Lane) *LaneAssignmentUpdateOne {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *LaneAssignmentUpdateOne) SetAgentID(v string) *LaneAssignmentUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *LaneAssignmentUpdateOne) SetNillableAgentID(v *string) *LaneAssignmentUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *LaneAssignmentUpdateOne) ClearAgentID() *LaneAssignmentUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *LaneAssignmentUpdateOne) SetProject(v *Project) *LaneAssignmentUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the LaneAssignmentMutation object of the builder.
func (_u *LaneAssignmentUpdateOne) Mutation() *LaneAssignmentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *LaneAssignmentUpdateOne) ClearProject() *LaneAssignmentUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the LaneAssignmentUpdate builder.
func (_u *LaneAssignmentUpdateOne) Where(ps ...predicate.LaneAssignment) *LaneAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LaneAssignmentUpdateOne) Select(field string, fields ...string) *LaneAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LaneAssignment entity.
func (_u *LaneAssignmentUpdateOne) Save(ctx context.Context) (*LaneAssignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LaneAssignmentUpdateOne) SaveX(ctx context.Context) *LaneAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LaneAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LaneAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LaneAssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.Lane(); ok {
		if err := laneassignment.LaneValidator(v); err != nil {
			return &ValidationError{Name: "lane", err: fmt.Errorf(`ent: validator failed for field "LaneAssignment.lane": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LaneAssignment.project"`)
	}
	return nil
}

func (_u *LaneAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *LaneAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(laneassignment.Table, laneassignment.Columns, sqlgraph.NewFieldSpec(laneassignment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LaneAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, laneassignment.FieldID)
		for _, f := range fields {
			if !laneassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != laneassignment.FieldID {
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
	if value, ok := _u.mutation.SquadID(); ok {
		_spec.SetField(laneassignment.FieldSquadID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(laneassignment.FieldLane, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentID(); ok {
		_spec.SetField(laneassignment.FieldAgentID, field.TypeString, value)
	}
	if _u.mutation.AgentIDCleared() {
		_spec.ClearField(laneassignment.FieldAgentID, field.TypeString)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LaneAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{laneassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
