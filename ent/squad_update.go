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
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/ent/predicate"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/squad"
)

// SquadUpdate is the builder for updating Squad entities.
type SquadUpdate struct {
	config
	hooks    []Hook
	mutation *SquadMutation
}

// Where appends a list predicates to the SquadUpdate builder.
func (_u *SquadUpdate) Where(ps ...predicate.Squad) *SquadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SquadUpdate) SetProjectID(v string) *SquadUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SquadUpdate) SetNillableProjectID(v *string) *SquadUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SquadUpdate) SetName(v string) *SquadUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SquadUpdate) SetNillableName(v *string) *SquadUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SquadUpdate) SetDescription(v string) *SquadUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SquadUpdate) SetNillableDescription(v *string) *SquadUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SquadUpdate) ClearDescription() *SquadUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetOpencodeStatus sets the "opencode_status" field.
func (_u *SquadUpdate) SetOpencodeStatus(v squad.OpencodeStatus) *SquadUpdate {
	_u.mutation.SetOpencodeStatus(v)
	return _u
}

// SetNillableOpencodeStatus sets the "opencode_status" field if the given value is not nil.
func (_u *SquadUpdate) SetNillableOpencodeStatus(v *squad.OpencodeStatus) *SquadUpdate {
	if v != nil {
		_u.SetOpencodeStatus(*v)
	}
	return _u
}

// SetOpencodeURL sets the "opencode_url" field.
func (_u *SquadUpdate) SetOpencodeURL(v string) *SquadUpdate {
	_u.mutation.SetOpencodeURL(v)
	return _u
}

// SetNillableOpencodeURL sets the "opencode_url" field if the given value is not nil.
func (_u *SquadUpdate) SetNillableOpencodeURL(v *string) *SquadUpdate {
	if v != nil {
		_u.SetOpencodeURL(*v)
	}
	return _u
}

// ClearOpencodeURL clears the value of the "opencode_url" field.
func (_u *SquadUpdate) ClearOpencodeURL() *SquadUpdate {
	_u.mutation.ClearOpencodeURL()
	return _u
}

// SetOpencodePid sets the "opencode_pid" field.
func (_u *SquadUpdate) SetOpencodePid(v int) *SquadUpdate {
	_u.mutation.ResetOpencodePid()
	_u.mutation.SetOpencodePid(v)
	return _u
}

// SetNillableOpencodePid sets the "opencode_pid" field if the given value is not nil.
func (_u *SquadUpdate) SetNillableOpencodePid(v *int) *SquadUpdate {
	if v != nil {
		_u.SetOpencodePid(*v)
	}
	return _u
}

// AddOpencodePid adds value to the "opencode_pid" field.
func (_u *SquadUpdate) AddOpencodePid(v int) *SquadUpdate {
	_u.mutation.AddOpencodePid(v)
	return _u
}

// ClearOpencodePid clears the value of the "opencode_pid" field.
func (_u *SquadUpdate) ClearOpencodePid() *SquadUpdate {
	_u.mutation.ClearOpencodePid()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SquadUpdate) SetLastError(v string) *SquadUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SquadUpdate) SetNillableLastError(v *string) *SquadUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SquadUpdate) ClearLastError() *SquadUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SquadUpdate) SetUpdatedAt(v time.Time) *SquadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *SquadUpdate) SetProject(v *Project) *SquadUpdate {
	return _u.SetProjectID(v.ID)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *SquadUpdate) AddAgentIDs(ids ...string) *SquadUpdate {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *SquadUpdate) AddAgents(v ...*Agent) *SquadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// AddCardIDs adds the "cards" edge to the Card entity by IDs.
func (_u *SquadUpdate) AddCardIDs(ids ...string) *SquadUpdate {
	_u.mutation.AddCardIDs(ids...)
	return _u
}

// AddCards adds the "cards" edges to the Card entity.
func (_u *SquadUpdate) AddCards(v ...*Card) *SquadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCardIDs(ids...)
}

// AddMcpServerIDs adds the "mcp_servers" edge to the MCPServer entity by IDs.
func (_u *SquadUpdate) AddMcpServerIDs(ids ...string) *SquadUpdate {
	_u.mutation.AddMcpServerIDs(ids...)
	return _u
}

// AddMcpServers adds the "mcp_servers" edges to the MCPServer entity.
func (_u *SquadUpdate) AddMcpServers(v ...*MCPServer) *SquadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpServerIDs(ids...)
}

// Mutation returns the SquadMutation object of the builder.
func (_u *SquadUpdate) Mutation() *SquadMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *SquadUpdate) ClearProject() *SquadUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *SquadUpdate) ClearAgents() *SquadUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *SquadUpdate) RemoveAgentIDs(ids ...string) *SquadUpdate {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *SquadUpdate) RemoveAgents(v ...*Agent) *SquadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// ClearCards clears all "cards" edges to the Card entity.
func (_u *SquadUpdate) ClearCards() *SquadUpdate {
	_u.mutation.ClearCards()
	return _u
}

// RemoveCardIDs removes the "cards" edge to Card entities by IDs.
func (_u *SquadUpdate) RemoveCardIDs(ids ...string) *SquadUpdate {
	_u.mutation.RemoveCardIDs(ids...)
	return _u
}

// RemoveCards removes "cards" edges to Card entities.
func (_u *SquadUpdate) RemoveCards(v ...*Card) *SquadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCardIDs(ids...)
}

// ClearMcpServers clears all "mcp_servers" edges to the MCPServer entity.
func (_u *SquadUpdate) ClearMcpServers() *SquadUpdate {
	_u.mutation.ClearMcpServers()
	return _u
}

// RemoveMcpServerIDs removes the "mcp_servers" edge to MCPServer entities by IDs.
func (_u *SquadUpdate) RemoveMcpServerIDs(ids ...string) *SquadUpdate {
	_u.mutation.RemoveMcpServerIDs(ids...)
	return _u
}

// RemoveMcpServers removes "mcp_servers" edges to MCPServer entities.
func (_u *SquadUpdate) RemoveMcpServers(v ...*MCPServer) *SquadUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpServerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SquadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SquadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SquadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SquadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SquadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := squad.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SquadUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := squad.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Squad.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OpencodeStatus(); ok {
		if err := squad.OpencodeStatusValidator(v); err != nil {
			return &ValidationError{Name: "opencode_status", err: fmt.Errorf(`ent: validator failed for field "Squad.opencode_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Squad.project"`)
	}
	return nil
}

func (_u *SquadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(squad.Table, squad.Columns, sqlgraph.NewFieldSpec(squad.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(squad.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(squad.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(squad.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.OpencodeStatus(); ok {
		_spec.SetField(squad.FieldOpencodeStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OpencodeURL(); ok {
		_spec.SetField(squad.FieldOpencodeURL, field.TypeString, value)
	}
	if _u.mutation.OpencodeURLCleared() {
		_spec.ClearField(squad.FieldOpencodeURL, field.TypeString)
	}
	if value, ok := _u.mutation.OpencodePid(); ok {
		_spec.SetField(squad.FieldOpencodePid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpencodePid(); ok {
		_spec.AddField(squad.FieldOpencodePid, field.TypeInt, value)
	}
	if _u.mutation.OpencodePidCleared() {
		_spec.ClearField(squad.FieldOpencodePid, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(squad.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(squad.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(squad.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCardsIDs(); len(nodes) > 0 && !_u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.McpServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMcpServersIDs(); len(nodes) > 0 && !_u.mutation.McpServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.McpServersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{squad.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SquadUpdateOne is the builder for updating a single Squad entity.
type SquadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SquadMutation
}

// SetProjectID sets the "project_id" field.
func (_u *SquadUpdateOne) SetProjectID(v string) *SquadUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SquadUpdateOne) SetNillableProjectID(v *string) *SquadUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *SquadUpdateOne) SetName(v string) *SquadUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SquadUpdateOne) SetNillableName(v *string) *SquadUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SquadUpdateOne) SetDescription(v string) *SquadUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SquadUpdateOne) SetNillableDescription(v *string) *SquadUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SquadUpdateOne) ClearDescription() *SquadUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetOpencodeStatus sets the "opencode_status" field.
func (_u *SquadUpdateOne) SetOpencodeStatus(v squad.OpencodeStatus) *SquadUpdateOne {
	_u.mutation.SetOpencodeStatus(v)
	return _u
}

// SetNillableOpencodeStatus sets the "opencode_status" field if the given value is not nil.
func (_u *SquadUpdateOne) SetNillableOpencodeStatus(v *squad.OpencodeStatus) *SquadUpdateOne {
	if v != nil {
		_u.SetOpencodeStatus(*v)
	}
	return _u
}

// SetOpencodeURL sets the "opencode_url" field.
func (_u *SquadUpdateOne) SetOpencodeURL(v string) *SquadUpdateOne {
	_u.mutation.SetOpencodeURL(v)
	return _u
}

// SetNillableOpencodeURL sets the "opencode_url" field if the given value is not nil.
func (_u *SquadUpdateOne) SetNillableOpencodeURL(v *string) *SquadUpdateOne {
	if v != nil {
		_u.SetOpencodeURL(*v)
	}
	return _u
}

// ClearOpencodeURL clears the value of the "opencode_url" field.
func (_u *SquadUpdateOne) ClearOpencodeURL() *SquadUpdateOne {
	_u.mutation.ClearOpencodeURL()
	return _u
}

// SetOpencodePid sets the "opencode_pid" field.
func (_u *SquadUpdateOne) SetOpencodePid(v int) *SquadUpdateOne {
	_u.mutation.ResetOpencodePid()
	_u.mutation.SetOpencodePid(v)
	return _u
}

// SetNillableOpencodePid sets the "opencode_pid" field if the given value is not nil.
func (_u *SquadUpdateOne) SetNillableOpencodePid(v *int) *SquadUpdateOne {
	if v != nil {
		_u.SetOpencodePid(*v)
	}
	return _u
}

// AddOpencodePid adds value to the "opencode_pid" field.
func (_u *SquadUpdateOne) AddOpencodePid(v int) *SquadUpdateOne {
	_u.mutation.AddOpencodePid(v)
	return _u
}

// ClearOpencodePid clears the value of the "opencode_pid" field.
func (_u *SquadUpdateOne) ClearOpencodePid() *SquadUpdateOne {
	_u.mutation.ClearOpencodePid()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SquadUpdateOne) SetLastError(v string) *SquadUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SquadUpdateOne) SetNillableLastError(v *string) *SquadUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SquadUpdateOne) ClearLastError() *SquadUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SquadUpdateOne) SetUpdatedAt(v time.Time) *SquadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *SquadUpdateOne) SetProject(v *Project) *SquadUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *SquadUpdateOne) AddAgentIDs(ids ...string) *SquadUpdateOne {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *SquadUpdateOne) AddAgents(v ...*Agent) *SquadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// AddCardIDs adds the "cards" edge to the Card entity by IDs.
func (_u *SquadUpdateOne) AddCardIDs(ids ...string) *SquadUpdateOne {
	_u.mutation.AddCardIDs(ids...)
	return _u
}

// AddCards adds the "cards" edges to the Card entity.
func (_u *SquadUpdateOne) AddCards(v ...*Card) *SquadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCardIDs(ids...)
}

// AddMcpServerIDs adds the "mcp_servers" edge to the MCPServer entity by IDs.
func (_u *SquadUpdateOne) AddMcpServerIDs(ids ...string) *SquadUpdateOne {
	_u.mutation.AddMcpServerIDs(ids...)
	return _u
}

// AddMcpServers adds the "mcp_servers" edges to the MCPServer entity.
func (_u *SquadUpdateOne) AddMcpServers(v ...*MCPServer) *SquadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMcpServerIDs(ids...)
}

// Mutation returns the SquadMutation object of the builder.
func (_u *SquadUpdateOne) Mutation() *SquadMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *SquadUpdateOne) ClearProject() *SquadUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *SquadUpdateOne) ClearAgents() *SquadUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *SquadUpdateOne) RemoveAgentIDs(ids ...string) *SquadUpdateOne {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *SquadUpdateOne) RemoveAgents(v ...*Agent) *SquadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// ClearCards clears all "cards" edges to the Card entity.
func (_u *SquadUpdateOne) ClearCards() *SquadUpdateOne {
	_u.mutation.ClearCards()
	return _u
}

// RemoveCardIDs removes the "cards" edge to Card entities by IDs.
func (_u *SquadUpdateOne) RemoveCardIDs(ids ...string) *SquadUpdateOne {
	_u.mutation.RemoveCardIDs(ids...)
	return _u
}

// RemoveCards removes "cards" edges to Card entities.
func (_u *SquadUpdateOne) RemoveCards(v ...*Card) *SquadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCardIDs(ids...)
}

// ClearMcpServers clears all "mcp_servers" edges to the MCPServer entity.
func (_u *SquadUpdateOne) ClearMcpServers() *SquadUpdateOne {
	_u.mutation.ClearMcpServers()
	return _u
}

// RemoveMcpServerIDs removes the "mcp_servers" edge to MCPServer entities by IDs.
func (_u *SquadUpdateOne) RemoveMcpServerIDs(ids ...string) *SquadUpdateOne {
	_u.mutation.RemoveMcpServerIDs(ids...)
	return _u
}

// RemoveMcpServers removes "mcp_servers" edges to MCPServer entities.
func (_u *SquadUpdateOne) RemoveMcpServers(v ...*MCPServer) *SquadUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMcpServerIDs(ids...)
}

// Where appends a list predicates to the SquadUpdate builder.
func (_u *SquadUpdateOne) Where(ps ...predicate.Squad) *SquadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SquadUpdateOne) Select(field string, fields ...string) *SquadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Squad entity.
func (_u *SquadUpdateOne) Save(ctx context.Context) (*Squad, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SquadUpdateOne) SaveX(ctx context.Context) *Squad {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SquadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SquadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SquadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := squad.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SquadUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := squad.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Squad.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OpencodeStatus(); ok {
		if err := squad.OpencodeStatusValidator(v); err != nil {
			return &ValidationError{Name: "opencode_status", err: fmt.Errorf(`ent: validator failed for field "Squad.opencode_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Squad.project"`)
	}
	return nil
}

func (_u *SquadUpdateOne) sqlSave(ctx context.Context) (_node *Squad, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(squad.Table, squad.Columns, sqlgraph.NewFieldSpec(squad.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Squad.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, squad.FieldID)
		for _, f := range fields {
			if !squad.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != squad.FieldID {
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
		_spec.SetField(squad.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(squad.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(squad.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.OpencodeStatus(); ok {
		_spec.SetField(squad.FieldOpencodeStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OpencodeURL(); ok {
		_spec.SetField(squad.FieldOpencodeURL, field.TypeString, value)
	}
	if _u.mutation.OpencodeURLCleared() {
		_spec.ClearField(squad.FieldOpencodeURL, field.TypeString)
	}
	if value, ok := _u.mutation.OpencodePid(); ok {
		_spec.SetField(squad.FieldOpencodePid, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpencodePid(); ok {
		_spec.AddField(squad.FieldOpencodePid, field.TypeInt, value)
	}
	if _u.mutation.OpencodePidCleared() {
		_spec.ClearField(squad.FieldOpencodePid, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(squad.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(squad.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(squad.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCardsIDs(); len(nodes) > 0 && !_u.mutation.CardsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CardsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.McpServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMcpServersIDs(); len(nodes) > 0 && !_u.mutation.McpServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.McpServersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Squad{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{squad.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
