// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildsquads/squads/ent/agent"
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/squad"
)

// SquadCreate is the builder for creating a Squad entity.
type SquadCreate struct {
	config
	mutation *SquadMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *SquadCreate) SetProjectID(v string) *SquadCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SquadCreate) SetName(v string) *SquadCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SquadCreate) SetDescription(v string) *SquadCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SquadCreate) SetNillableDescription(v *string) *SquadCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetOpencodeStatus sets the "opencode_status" field.
func (_c *SquadCreate) SetOpencodeStatus(v squad.OpencodeStatus) *SquadCreate {
	_c.mutation.SetOpencodeStatus(v)
	return _c
}

// SetNillableOpencodeStatus sets the "opencode_status" field if the given value is not nil.
func (_c *SquadCreate) SetNillableOpencodeStatus(v *squad.OpencodeStatus) *SquadCreate {
	if v != nil {
		_c.SetOpencodeStatus(*v)
	}
	return _c
}

// SetOpencodeURL sets the "opencode_url" field.
func (_c *SquadCreate) SetOpencodeURL(v string) *SquadCreate {
	_c.mutation.SetOpencodeURL(v)
	return _c
}

// SetNillableOpencodeURL sets the "opencode_url" field if the given value is not nil.
func (_c *SquadCreate) SetNillableOpencodeURL(v *string) *SquadCreate {
	if v != nil {
		_c.SetOpencodeURL(*v)
	}
	return _c
}

// SetOpencodePid sets the "opencode_pid" field.
func (_c *SquadCreate) SetOpencodePid(v int) *SquadCreate {
	_c.mutation.SetOpencodePid(v)
	return _c
}

// SetNillableOpencodePid sets the "opencode_pid" field if the given value is not nil.
func (_c *SquadCreate) SetNillableOpencodePid(v *int) *SquadCreate {
	if v != nil {
		_c.SetOpencodePid(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *SquadCreate) SetLastError(v string) *SquadCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *SquadCreate) SetNillableLastError(v *string) *SquadCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SquadCreate) SetCreatedAt(v time.Time) *SquadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SquadCreate) SetNillableCreatedAt(v *time.Time) *SquadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SquadCreate) SetUpdatedAt(v time.Time) *SquadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SquadCreate) SetNillableUpdatedAt(v *time.Time) *SquadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SquadCreate) SetID(v string) *SquadCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SquadCreate) SetProject(v *Project) *SquadCreate {
	return _c.SetProjectID(v.ID)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_c *SquadCreate) AddAgentIDs(ids ...string) *SquadCreate {
	_c.mutation.AddAgentIDs(ids...)
	return _c
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_c *SquadCreate) AddAgents(v ...*Agent) *SquadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentIDs(ids...)
}

// AddCardIDs adds the "cards" edge to the Card entity by IDs.
func (_c *SquadCreate) AddCardIDs(ids ...string) *SquadCreate {
	_c.mutation.AddCardIDs(ids...)
	return _c
}

// AddCards adds the "cards" edges to the Card entity.
func (_c *SquadCreate) AddCards(v ...*Card) *SquadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCardIDs(ids...)
}

// AddMcpServerIDs adds the "mcp_servers" edge to the MCPServer entity by IDs.
func (_c *SquadCreate) AddMcpServerIDs(ids ...string) *SquadCreate {
	_c.mutation.AddMcpServerIDs(ids...)
	return _c
}

// AddMcpServers adds the "mcp_servers" edges to the MCPServer entity.
func (_c *SquadCreate) AddMcpServers(v ...*MCPServer) *SquadCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMcpServerIDs(ids...)
}

// Mutation returns the SquadMutation object of the builder.
func (_c *SquadCreate) Mutation() *SquadMutation {
	return _c.mutation
}

// Save creates the Squad in the database.
func (_c *SquadCreate) Save(ctx context.Context) (*Squad, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SquadCreate) SaveX(ctx context.Context) *Squad {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SquadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SquadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SquadCreate) defaults() {
	if _, ok := _c.mutation.OpencodeStatus(); !ok {
		v := squad.DefaultOpencodeStatus
		_c.mutation.SetOpencodeStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := squad.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := squad.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SquadCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Squad.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Squad.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := squad.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Squad.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OpencodeStatus(); !ok {
		return &ValidationError{Name: "opencode_status", err: errors.New(`ent: missing required field "Squad.opencode_status"`)}
	}
	if v, ok := _c.mutation.OpencodeStatus(); ok {
		if err := squad.OpencodeStatusValidator(v); err != nil {
			return &ValidationError{Name: "opencode_status", err: fmt.Errorf(`ent: validator failed for field "Squad.opencode_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Squad.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Squad.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Squad.project"`)}
	}
	return nil
}

func (_c *SquadCreate) sqlSave(ctx context.Context) (*Squad, error) {
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
			return nil, fmt.Errorf("unexpected Squad.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SquadCreate) createSpec() (*Squad, *sqlgraph.CreateSpec) {
	var (
		_node = &Squad{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(squad.Table, sqlgraph.NewFieldSpec(squad.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(squad.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(squad.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.OpencodeStatus(); ok {
		_spec.SetField(squad.FieldOpencodeStatus, field.TypeEnum, value)
		_node.OpencodeStatus = value
	}
	if value, ok := _c.mutation.OpencodeURL(); ok {
		_spec.SetField(squad.FieldOpencodeURL, field.TypeString, value)
		_node.OpencodeURL = &value
	}
	if value, ok := _c.mutation.OpencodePid(); ok {
		_spec.SetField(squad.FieldOpencodePid, field.TypeInt, value)
		_node.OpencodePid = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(squad.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(squad.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(squad.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   squad.ProjectTable,
			Columns: []string{squad.ProjectColumn},
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
	if nodes := _c.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   squad.AgentsTable,
			Columns: []string{squad.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CardsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   squad.CardsTable,
			Columns: []string{squad.CardsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(card.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.McpServersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   squad.McpServersTable,
			Columns: []string{squad.McpServersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mcpserver.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SquadCreateBulk is the builder for creating many Squad entities in bulk.
type SquadCreateBulk struct {
	config
	err      error
	builders []*SquadCreate
}

// Save creates the Squad entities in the database.
func (_c *SquadCreateBulk) Save(ctx context.Context) ([]*Squad, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Squad, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SquadMutation)
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
func (_c *SquadCreateBulk) SaveX(ctx context.Context) []*Squad {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SquadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SquadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
