// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/ent/squad"
)

// MCPServerCreate is the builder for creating a MCPServer entity.
type MCPServerCreate struct {
	config
	mutation *MCPServerMutation
	hooks    []Hook
}

// SetSquadID sets the "squad_id" field.
func (_c *MCPServerCreate) SetSquadID(v string) *MCPServerCreate {
	_c.mutation.SetSquadID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *MCPServerCreate) SetName(v string) *MCPServerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *MCPServerCreate) SetSource(v mcpserver.Source) *MCPServerCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *MCPServerCreate) SetNillableSource(v *mcpserver.Source) *MCPServerCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetServerType sets the "server_type" field.
func (_c *MCPServerCreate) SetServerType(v mcpserver.ServerType) *MCPServerCreate {
	_c.mutation.SetServerType(v)
	return _c
}

// SetImage sets the "image" field.
func (_c *MCPServerCreate) SetImage(v string) *MCPServerCreate {
	_c.mutation.SetImage(v)
	return _c
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_c *MCPServerCreate) SetNillableImage(v *string) *MCPServerCreate {
	if v != nil {
		_c.SetImage(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *MCPServerCreate) SetURL(v string) *MCPServerCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *MCPServerCreate) SetNillableURL(v *string) *MCPServerCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetCommand sets the "command" field.
func (_c *MCPServerCreate) SetCommand(v string) *MCPServerCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_c *MCPServerCreate) SetNillableCommand(v *string) *MCPServerCreate {
	if v != nil {
		_c.SetCommand(*v)
	}
	return _c
}

// SetArgs sets the "args" field.
func (_c *MCPServerCreate) SetArgs(v []string) *MCPServerCreate {
	_c.mutation.SetArgs(v)
	return _c
}

// SetHeaders sets the "headers" field.
func (_c *MCPServerCreate) SetHeaders(v map[string]string) *MCPServerCreate {
	_c.mutation.SetHeaders(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *MCPServerCreate) SetEnabled(v bool) *MCPServerCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *MCPServerCreate) SetNillableEnabled(v *bool) *MCPServerCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *MCPServerCreate) SetStatus(v string) *MCPServerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MCPServerCreate) SetNillableStatus(v *string) *MCPServerCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *MCPServerCreate) SetLastError(v string) *MCPServerCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *MCPServerCreate) SetNillableLastError(v *string) *MCPServerCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCatalogMeta sets the "catalog_meta" field.
func (_c *MCPServerCreate) SetCatalogMeta(v map[string]interface{}) *MCPServerCreate {
	_c.mutation.SetCatalogMeta(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MCPServerCreate) SetCreatedAt(v time.Time) *MCPServerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MCPServerCreate) SetNillableCreatedAt(v *time.Time) *MCPServerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MCPServerCreate) SetUpdatedAt(v time.Time) *MCPServerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MCPServerCreate) SetNillableUpdatedAt(v *time.Time) *MCPServerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MCPServerCreate) SetID(v string) *MCPServerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSquad sets the "squad" edge to the Squad entity.
func (_c *MCPServerCreate) SetSquad(v *Squad) *MCPServerCreate {
	return _c.SetSquadID(v.ID)
}

// Mutation returns the MCPServerMutation object of the builder.
func (_c *MCPServerCreate) Mutation() *MCPServerMutation {
	return _c.mutation
}

// Save creates the MCPServer in the database.
func (_c *MCPServerCreate) Save(ctx context.Context) (*MCPServer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MCPServerCreate) SaveX(ctx context.Context) *MCPServer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MCPServerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MCPServerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MCPServerCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := mcpserver.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := mcpserver.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := mcpserver.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mcpserver.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mcpserver.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MCPServerCreate) check() error {
	if _, ok := _c.mutation.SquadID(); !ok {
		return &ValidationError{Name: "squad_id", err: errors.New(`ent: missing required field "MCPServer.squad_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MCPServer.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := mcpserver.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MCPServer.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "MCPServer.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := mcpserver.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MCPServer.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ServerType(); !ok {
		return &ValidationError{Name: "server_type", err: errors.New(`ent: missing required field "MCPServer.server_type"`)}
	}
	if v, ok := _c.mutation.ServerType(); ok {
		if err := mcpserver.ServerTypeValidator(v); err != nil {
			return &ValidationError{Name: "server_type", err: fmt.Errorf(`ent: validator failed for field "MCPServer.server_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "MCPServer.enabled"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MCPServer.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MCPServer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MCPServer.updated_at"`)}
	}
	if len(_c.mutation.SquadIDs()) == 0 {
		return &ValidationError{Name: "squad", err: errors.New(`ent: missing required edge "MCPServer.squad"`)}
	}
	return nil
}

func (_c *MCPServerCreate) sqlSave(ctx context.Context) (*MCPServer, error) {
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
			return nil, fmt.Errorf("unexpected MCPServer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MCPServerCreate) createSpec() (*MCPServer, *sqlgraph.CreateSpec) {
	var (
		_node = &MCPServer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mcpserver.Table, sqlgraph.NewFieldSpec(mcpserver.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(mcpserver.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(mcpserver.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ServerType(); ok {
		_spec.SetField(mcpserver.FieldServerType, field.TypeEnum, value)
		_node.ServerType = value
	}
	if value, ok := _c.mutation.Image(); ok {
		_spec.SetField(mcpserver.FieldImage, field.TypeString, value)
		_node.Image = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(mcpserver.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(mcpserver.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Args(); ok {
		_spec.SetField(mcpserver.FieldArgs, field.TypeJSON, value)
		_node.Args = value
	}
	if value, ok := _c.mutation.Headers(); ok {
		_spec.SetField(mcpserver.FieldHeaders, field.TypeJSON, value)
		_node.Headers = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(mcpserver.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(mcpserver.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(mcpserver.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CatalogMeta(); ok {
		_spec.SetField(mcpserver.FieldCatalogMeta, field.TypeJSON, value)
		_node.CatalogMeta = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mcpserver.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mcpserver.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SquadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mcpserver.SquadTable,
			Columns: []string{mcpserver.SquadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(squad.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SquadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MCPServerCreateBulk is the builder for creating many MCPServer entities in bulk.
type MCPServerCreateBulk struct {
	config
	err      error
	builders []*MCPServerCreate
}

// Save creates the MCPServer entities in the database.
func (_c *MCPServerCreateBulk) Save(ctx context.Context) ([]*MCPServer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MCPServer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MCPServerMutation)
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
func (_c *MCPServerCreateBulk) SaveX(ctx context.Context) []*MCPServer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MCPServerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MCPServerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
