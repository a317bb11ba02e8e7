// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/ent/predicate"
	"github.com/buildsquads/squads/ent/squad"
)

// MCPServerUpdate is the builder for updating MCPServer entities.
type MCPServerUpdate struct {
	config
	hooks    []Hook
	mutation *MCPServerMutation
}

// Where appends a list predicates to the MCPServerUpdate builder.
func (_u *MCPServerUpdate) Where(ps ...predicate.MCPServer) *MCPServerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSquadID sets the "squad_id" field.
func (_u *MCPServerUpdate) SetSquadID(v string) *MCPServerUpdate {
	_u.mutation.SetSquadID(v)
	return _u
}

// SetNillableSquadID sets the "squad_id" field if the given value is not nil.
func (_u *MCPServerUpdate) SetNillableSquadID(v *string) *MCPServerUpdate {
	if v != nil {
		_u.SetSquadID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MCPServerUpdate) SetName(v string) *MCPServerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MCPServerUpdate) SetNillableName(v *string) *MCPServerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *MCPServerUpdate) SetSource(v mcpserver.Source) *MCPServerUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MCPServerUpdate) SetNillableSource(v *mcpserver.Source) *MCPServerUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetServerType sets the "server_type" field.
func (_u *MCPServerUpdate) SetServerType(v mcpserver.ServerType) *MCPServerUpdate {
	_u.mutation.SetServerType(v)
	return _u
}

// SetNillableServerType sets the "server_type" field if the given value is not nil.
func (_u *MCPServerUpdate) SetNillableServerType(v *mcpserver.ServerType) *MCPServerUpdate {
	if v != nil {
		_u.SetServerType(*v)
	}
	return _u
}

// SetImage sets the "image" field.
func (_u *MCPServerUpdate) SetImage(v string) *MCPServerUpdate {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *MCPServerUpdate) SetNillableImage(v *string) *MCPServerUpdate {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// ClearImage clears the value of the "image" field.
func (_u *MCPServerUpdate) ClearImage() *MCPServerUpdate {
	_u.mutation.ClearImage()
	return _u
}

// SetURL sets the "url" field.
func (_u *MCPServerUpdate) SetURL(v string) *MCPServerUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *MCPServerUpdate) SetNillableURL(v *string) *MCPServerUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *MCPServerUpdate) ClearURL() *MCPServerUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetCommand sets the "command" field.
func (_u *MCPServerUpdate) SetCommand(v string) *MCPServerUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *MCPServerUpdate) SetNillableCommand(v *string) *MCPServerUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *MCPServerUpdate) ClearCommand() *MCPServerUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetArgs sets the "args" field.
func (_u *MCPServerUpdate) SetArgs(v []string) *MCPServerUpdate {
	_u.mutation.SetArgs(v)
	return _u
}

// AppendArgs appends value to the "args" field.
func (_u *MCPServerUpdate) AppendArgs(v []string) *MCPServerUpdate {
	_u.mutation.AppendArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *MCPServerUpdate) ClearArgs() *MCPServerUpdate {
	_u.mutation.ClearArgs()
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *MCPServerUpdate) SetHeaders(v map[string]string) *MCPServerUpdate {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *MCPServerUpdate) ClearHeaders() *MCPServerUpdate {
	_u.mutation.ClearHeaders()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *MCPServerUpdate) SetEnabled(v bool) *MCPServerUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *MCPServerUpdate) SetNillableEnabled(v *bool) *MCPServerUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MCPServerUpdate) SetStatus(v string) *MCPServerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MCPServerUpdate) SetNillableStatus(v *string) *MCPServerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *MCPServerUpdate) SetLastError(v string) *MCPServerUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *MCPServerUpdate) SetNillableLastError(v *string) *MCPServerUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *MCPServerUpdate) ClearLastError() *MCPServerUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetCatalogMeta sets the "catalog_meta" field.
func (_u *MCPServerUpdate) SetCatalogMeta(v map[string]interface{}) *MCPServerUpdate {
	_u.mutation.SetCatalogMeta(v)
	return _u
}

// ClearCatalogMeta clears the value of the "catalog_meta" field.
func (_u *MCPServerUpdate) ClearCatalogMeta() *MCPServerUpdate {
	_u.mutation.ClearCatalogMeta()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MCPServerUpdate) SetUpdatedAt(v time.Time) *MCPServerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSquad sets the "squad" edge to the Squad entity.
func (_u *MCPServerUpdate) SetSquad(v *Squad) *MCPServerUpdate {
	return _u.SetSquadID(v.ID)
}

// Mutation returns the MCPServerMutation object of the builder.
func (_u *MCPServerUpdate) Mutation() *MCPServerMutation {
	return _u.mutation
}

// ClearSquad clears the "squad" edge to the Squad entity.
func (_u *MCPServerUpdate) ClearSquad() *MCPServerUpdate {
	_u.mutation.ClearSquad()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MCPServerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MCPServerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MCPServerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MCPServerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MCPServerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mcpserver.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MCPServerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := mcpserver.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MCPServer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := mcpserver.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MCPServer.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ServerType(); ok {
		if err := mcpserver.ServerTypeValidator(v); err != nil {
			return &ValidationError{Name: "server_type", err: fmt.Errorf(`ent: validator failed for field "MCPServer.server_type": %w`, err)}
		}
	}
	if _u.mutation.SquadCleared() && len(_u.mutation.SquadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MCPServer.squad"`)
	}
	return nil
}

func (_u *MCPServerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mcpserver.Table, mcpserver.Columns, sqlgraph.NewFieldSpec(mcpserver.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mcpserver.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(mcpserver.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ServerType(); ok {
		_spec.SetField(mcpserver.FieldServerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(mcpserver.FieldImage, field.TypeString, value)
	}
	if _u.mutation.ImageCleared() {
		_spec.ClearField(mcpserver.FieldImage, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(mcpserver.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(mcpserver.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(mcpserver.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(mcpserver.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(mcpserver.FieldArgs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArgs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mcpserver.FieldArgs, value)
		})
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(mcpserver.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(mcpserver.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(mcpserver.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(mcpserver.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mcpserver.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(mcpserver.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(mcpserver.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CatalogMeta(); ok {
		_spec.SetField(mcpserver.FieldCatalogMeta, field.TypeJSON, value)
	}
	if _u.mutation.CatalogMetaCleared() {
		_spec.ClearField(mcpserver.FieldCatalogMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mcpserver.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SquadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SquadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mcpserver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MCPServerUpdateOne is the builder for updating a single MCPServer entity.
type MCPServerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MCPServerMutation
}

// SetSquadID sets the "squad_id" field.
func (_u *MCPServerUpdateOne) SetSquadID(v string) *MCPServerUpdateOne {
	_u.mutation.SetSquadID(v)
	return _u
}

// SetNillableSquadID sets the "squad_id" field if the given value is not nil.
func (_u *MCPServerUpdateOne) SetNillableSquadID(v *string) *MCPServerUpdateOne {
	if v != nil {
		_u.SetSquadID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *MCPServerUpdateOne) SetName(v string) *MCPServerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MCPServerUpdateOne) SetNillableName(v *string) *MCPServerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *MCPServerUpdateOne) SetSource(v mcpserver.Source) *MCPServerUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MCPServerUpdateOne) SetNillableSource(v *mcpserver.Source) *MCPServerUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetServerType sets the "server_type" field.
func (_u *MCPServerUpdateOne) SetServerType(v mcpserver.ServerType) *MCPServerUpdateOne {
	_u.mutation.SetServerType(v)
	return _u
}

// SetNillableServerType sets the "server_type" field if the given value is not nil.
func (_u *MCPServerUpdateOne) SetNillableServerType(v *mcpserver.ServerType) *MCPServerUpdateOne {
	if v != nil {
		_u.SetServerType(*v)
	}
	return _u
}

// SetImage sets the "image" field.
func (_u *MCPServerUpdateOne) SetImage(v string) *MCPServerUpdateOne {
	_u.mutation.SetImage(v)
	return _u
}

// SetNillableImage sets the "image" field if the given value is not nil.
func (_u *MCPServerUpdateOne) SetNillableImage(v *string) *MCPServerUpdateOne {
	if v != nil {
		_u.SetImage(*v)
	}
	return _u
}

// ClearImage clears the value of the "image" field.
func (_u *MCPServerUpdateOne) ClearImage() *MCPServerUpdateOne {
	_u.mutation.ClearImage()
	return _u
}

// SetURL sets the "url" field.
func (_u *MCPServerUpdateOne) SetURL(v string) *MCPServerUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *MCPServerUpdateOne) SetNillableURL(v *string) *MCPServerUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *MCPServerUpdateOne) ClearURL() *MCPServerUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetCommand sets the "command" field.
func (_u *MCPServerUpdateOne) SetCommand(v string) *MCPServerUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *MCPServerUpdateOne) SetNillableCommand(v *string) *MCPServerUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *MCPServerUpdateOne) ClearCommand() *MCPServerUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetArgs sets the "args" field.
func (_u *MCPServerUpdateOne) SetArgs(v []string) *MCPServerUpdateOne {
	_u.mutation.SetArgs(v)
	return _u
}

// AppendArgs appends value to the "args" field.
func (_u *MCPServerUpdateOne) AppendArgs(v []string) *MCPServerUpdateOne {
	_u.mutation.AppendArgs(v)
	return _u
}

// ClearArgs clears the value of the "args" field.
func (_u *MCPServerUpdateOne) ClearArgs() *MCPServerUpdateOne {
	_u.mutation.ClearArgs()
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *MCPServerUpdateOne) SetHeaders(v map[string]string) *MCPServerUpdateOne {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *MCPServerUpdateOne) ClearHeaders() *MCPServerUpdateOne {
	_u.mutation.ClearHeaders()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *MCPServerUpdateOne) SetEnabled(v bool) *MCPServerUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *MCPServerUpdateOne) SetNillableEnabled(v *bool) *MCPServerUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MCPServerUpdateOne) SetStatus(v string) *MCPServerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MCPServerUpdateOne) SetNillableStatus(v *string) *MCPServerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *MCPServerUpdateOne) SetLastError(v string) *MCPServerUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *MCPServerUpdateOne) SetNillableLastError(v *string) *MCPServerUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *MCPServerUpdateOne) ClearLastError() *MCPServerUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetCatalogMeta sets the "catalog_meta" field.
func (_u *MCPServerUpdateOne) SetCatalogMeta(v map[string]interface{}) *MCPServerUpdateOne {
	_u.mutation.SetCatalogMeta(v)
	return _u
}

// ClearCatalogMeta clears the value of the "catalog_meta" field.
func (_u *MCPServerUpdateOne) ClearCatalogMeta() *MCPServerUpdateOne {
	_u.mutation.ClearCatalogMeta()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MCPServerUpdateOne) SetUpdatedAt(v time.Time) *MCPServerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSquad sets the "squad" edge to the Squad entity.
func (_u *MCPServerUpdateOne) SetSquad(v *Squad) *MCPServerUpdateOne {
	return _u.SetSquadID(v.ID)
}

// Mutation returns the MCPServerMutation object of the builder.
func (_u *MCPServerUpdateOne) Mutation() *MCPServerMutation {
	return _u.mutation
}

// ClearSquad clears the "squad" edge to the Squad entity.
func (_u *MCPServerUpdateOne) ClearSquad() *MCPServerUpdateOne {
	_u.mutation.ClearSquad()
	return _u
}

// Where appends a list predicates to the MCPServerUpdate builder.
func (_u *MCPServerUpdateOne) Where(ps ...predicate.MCPServer) *MCPServerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MCPServerUpdateOne) Select(field string, fields ...string) *MCPServerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MCPServer entity.
func (_u *MCPServerUpdateOne) Save(ctx context.Context) (*MCPServer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MCPServerUpdateOne) SaveX(ctx context.Context) *MCPServer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MCPServerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MCPServerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MCPServerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mcpserver.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MCPServerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := mcpserver.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MCPServer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := mcpserver.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MCPServer.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ServerType(); ok {
		if err := mcpserver.ServerTypeValidator(v); err != nil {
			return &ValidationError{Name: "server_type", err: fmt.Errorf(`ent: validator failed for field "MCPServer.server_type": %w`, err)}
		}
	}
	if _u.mutation.SquadCleared() && len(_u.mutation.SquadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MCPServer.squad"`)
	}
	return nil
}

func (_u *MCPServerUpdateOne) sqlSave(ctx context.Context) (_node *MCPServer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mcpserver.Table, mcpserver.Columns, sqlgraph.NewFieldSpec(mcpserver.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MCPServer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mcpserver.FieldID)
		for _, f := range fields {
			if !mcpserver.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mcpserver.FieldID {
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
		_spec.SetField(mcpserver.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(mcpserver.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ServerType(); ok {
		_spec.SetField(mcpserver.FieldServerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Image(); ok {
		_spec.SetField(mcpserver.FieldImage, field.TypeString, value)
	}
	if _u.mutation.ImageCleared() {
		_spec.ClearField(mcpserver.FieldImage, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(mcpserver.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(mcpserver.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(mcpserver.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(mcpserver.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Args(); ok {
		_spec.SetField(mcpserver.FieldArgs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArgs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mcpserver.FieldArgs, value)
		})
	}
	if _u.mutation.ArgsCleared() {
		_spec.ClearField(mcpserver.FieldArgs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(mcpserver.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(mcpserver.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(mcpserver.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mcpserver.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(mcpserver.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(mcpserver.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CatalogMeta(); ok {
		_spec.SetField(mcpserver.FieldCatalogMeta, field.TypeJSON, value)
	}
	if _u.mutation.CatalogMetaCleared() {
		_spec.ClearField(mcpserver.FieldCatalogMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mcpserver.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SquadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SquadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MCPServer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mcpserver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
