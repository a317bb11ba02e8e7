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
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/transcriptentry"
)

// AgentSessionCreate is the builder for creating a AgentSession entity.
type AgentSessionCreate struct {
	config
	mutation *AgentSessionMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *AgentSessionCreate) SetProjectID(v string) *AgentSessionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentSessionCreate) SetAgentID(v string) *AgentSessionCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetBackendSessionID sets the "backend_session_id" field.
func (_c *AgentSessionCreate) SetBackendSessionID(v string) *AgentSessionCreate {
	_c.mutation.SetBackendSessionID(v)
	return _c
}

// SetNillableBackendSessionID sets the "backend_session_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableBackendSessionID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetBackendSessionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentSessionCreate) SetStatus(v agentsession.Status) *AgentSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableStatus(v *agentsession.Status) *AgentSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *AgentSessionCreate) SetTitle(v string) *AgentSessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableTitle(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *AgentSessionCreate) SetModel(v string) *AgentSessionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableModel(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *AgentSessionCreate) SetMode(v agentsession.Mode) *AgentSessionCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableMode(v *agentsession.Mode) *AgentSessionCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetTicketKey sets the "ticket_key" field.
func (_c *AgentSessionCreate) SetTicketKey(v string) *AgentSessionCreate {
	_c.mutation.SetTicketKey(v)
	return _c
}

// SetNillableTicketKey sets the "ticket_key" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableTicketKey(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetTicketKey(*v)
	}
	return _c
}

// SetWorktreePath sets the "worktree_path" field.
func (_c *AgentSessionCreate) SetWorktreePath(v string) *AgentSessionCreate {
	_c.mutation.SetWorktreePath(v)
	return _c
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableWorktreePath(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetWorktreePath(*v)
	}
	return _c
}

// SetBranch sets the "branch" field.
func (_c *AgentSessionCreate) SetBranch(v string) *AgentSessionCreate {
	_c.mutation.SetBranch(v)
	return _c
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableBranch(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetBranch(*v)
	}
	return _c
}

// SetBaseBranch sets the "base_branch" field.
func (_c *AgentSessionCreate) SetBaseBranch(v string) *AgentSessionCreate {
	_c.mutation.SetBaseBranch(v)
	return _c
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableBaseBranch(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetBaseBranch(*v)
	}
	return _c
}

// SetPendingPromptID sets the "pending_prompt_id" field.
func (_c *AgentSessionCreate) SetPendingPromptID(v string) *AgentSessionCreate {
	_c.mutation.SetPendingPromptID(v)
	return _c
}

// SetNillablePendingPromptID sets the "pending_prompt_id" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillablePendingPromptID(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetPendingPromptID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentSessionCreate) SetErrorMessage(v string) *AgentSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableErrorMessage(v *string) *AgentSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AgentSessionCreate) SetMetadata(v map[string]interface{}) *AgentSessionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentSessionCreate) SetVersion(v int) *AgentSessionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableVersion(v *int) *AgentSessionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentSessionCreate) SetStartedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableStartedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *AgentSessionCreate) SetFinishedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableFinishedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentSessionCreate) SetCreatedAt(v time.Time) *AgentSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentSessionCreate) SetNillableCreatedAt(v *time.Time) *AgentSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSessionCreate) SetID(v string) *AgentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *AgentSessionCreate) SetProject(v *Project) *AgentSessionCreate {
	return _c.SetProjectID(v.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *AgentSessionCreate) SetAgent(v *Agent) *AgentSessionCreate {
	return _c.SetAgentID(v.ID)
}

// AddTranscriptEntryIDs adds the "transcript_entries" edge to the TranscriptEntry entity by IDs.
func (_c *AgentSessionCreate) AddTranscriptEntryIDs(ids ...string) *AgentSessionCreate {
	_c.mutation.AddTranscriptEntryIDs(ids...)
	return _c
}

// AddTranscriptEntries adds the "transcript_entries" edges to the TranscriptEntry entity.
func (_c *AgentSessionCreate) AddTranscriptEntries(v ...*TranscriptEntry) *AgentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTranscriptEntryIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_c *AgentSessionCreate) Mutation() *AgentSessionMutation {
	return _c.mutation
}

// Save creates the AgentSession in the database.
func (_c *AgentSessionCreate) Save(ctx context.Context) (*AgentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSessionCreate) SaveX(ctx context.Context) *AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := agentsession.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := agentsession.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSessionCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "AgentSession.project_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentSession.agent_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "AgentSession.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := agentsession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AgentSession.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AgentSession.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentSession.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "AgentSession.project"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "AgentSession.agent"`)}
	}
	return nil
}

func (_c *AgentSessionCreate) sqlSave(ctx context.Context) (*AgentSession, error) {
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
			return nil, fmt.Errorf("unexpected AgentSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSessionCreate) createSpec() (*AgentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsession.Table, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BackendSessionID(); ok {
		_spec.SetField(agentsession.FieldBackendSessionID, field.TypeString, value)
		_node.BackendSessionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(agentsession.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(agentsession.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(agentsession.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.TicketKey(); ok {
		_spec.SetField(agentsession.FieldTicketKey, field.TypeString, value)
		_node.TicketKey = value
	}
	if value, ok := _c.mutation.WorktreePath(); ok {
		_spec.SetField(agentsession.FieldWorktreePath, field.TypeString, value)
		_node.WorktreePath = value
	}
	if value, ok := _c.mutation.Branch(); ok {
		_spec.SetField(agentsession.FieldBranch, field.TypeString, value)
		_node.Branch = value
	}
	if value, ok := _c.mutation.BaseBranch(); ok {
		_spec.SetField(agentsession.FieldBaseBranch, field.TypeString, value)
		_node.BaseBranch = value
	}
	if value, ok := _c.mutation.PendingPromptID(); ok {
		_spec.SetField(agentsession.FieldPendingPromptID, field.TypeString, value)
		_node.PendingPromptID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(agentsession.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agentsession.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(agentsession.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.ProjectTable,
			Columns: []string{agentsession.ProjectColumn},
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
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsession.AgentTable,
			Columns: []string{agentsession.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TranscriptEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentsession.TranscriptEntriesTable,
			Columns: []string{agentsession.TranscriptEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentSessionCreateBulk is the builder for creating many AgentSession entities in bulk.
type AgentSessionCreateBulk struct {
	config
	err      error
	builders []*AgentSessionCreate
}

// Save creates the AgentSession entities in the database.
func (_c *AgentSessionCreateBulk) Save(ctx context.Context) ([]*AgentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSessionMutation)
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
func (_c *AgentSessionCreateBulk) SaveX(ctx context.Context) []*AgentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
