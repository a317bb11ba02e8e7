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
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/predicate"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/transcriptentry"
)

// AgentSessionUpdate is the builder for updating AgentSession entities.
type AgentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSessionMutation
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdate) Where(ps ...predicate.AgentSession) *AgentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *AgentSessionUpdate) SetProjectID(v string) *AgentSessionUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableProjectID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentSessionUpdate) SetAgentID(v string) *AgentSessionUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableAgentID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetBackendSessionID sets the "backend_session_id" field.
func (_u *AgentSessionUpdate) SetBackendSessionID(v string) *AgentSessionUpdate {
	_u.mutation.SetBackendSessionID(v)
	return _u
}

// SetNillableBackendSessionID sets the "backend_session_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableBackendSessionID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetBackendSessionID(*v)
	}
	return _u
}

// ClearBackendSessionID clears the value of the "backend_session_id" field.
func (_u *AgentSessionUpdate) ClearBackendSessionID() *AgentSessionUpdate {
	_u.mutation.ClearBackendSessionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdate) SetStatus(v agentsession.Status) *AgentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AgentSessionUpdate) SetTitle(v string) *AgentSessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableTitle(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AgentSessionUpdate) ClearTitle() *AgentSessionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentSessionUpdate) SetModel(v string) *AgentSessionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableModel(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentSessionUpdate) ClearModel() *AgentSessionUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetMode sets the "mode" field.
func (_u *AgentSessionUpdate) SetMode(v agentsession.Mode) *AgentSessionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableMode(v *agentsession.Mode) *AgentSessionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTicketKey sets the "ticket_key" field.
func (_u *AgentSessionUpdate) SetTicketKey(v string) *AgentSessionUpdate {
	_u.mutation.SetTicketKey(v)
	return _u
}

// SetNillableTicketKey sets the "ticket_key" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableTicketKey(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetTicketKey(*v)
	}
	return _u
}

// ClearTicketKey clears the value of the "ticket_key" field.
func (_u *AgentSessionUpdate) ClearTicketKey() *AgentSessionUpdate {
	_u.mutation.ClearTicketKey()
	return _u
}

// SetWorktreePath sets the "worktree_path" field.
func (_u *AgentSessionUpdate) SetWorktreePath(v string) *AgentSessionUpdate {
	_u.mutation.SetWorktreePath(v)
	return _u
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableWorktreePath(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetWorktreePath(*v)
	}
	return _u
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (_u *AgentSessionUpdate) ClearWorktreePath() *AgentSessionUpdate {
	_u.mutation.ClearWorktreePath()
	return _u
}

// SetBranch sets the "branch" field.
func (_u *AgentSessionUpdate) SetBranch(v string) *AgentSessionUpdate {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableBranch(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *AgentSessionUpdate) ClearBranch() *AgentSessionUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *AgentSessionUpdate) SetBaseBranch(v string) *AgentSessionUpdate {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableBaseBranch(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (_u *AgentSessionUpdate) ClearBaseBranch() *AgentSessionUpdate {
	_u.mutation.ClearBaseBranch()
	return _u
}

// SetPendingPromptID sets the "pending_prompt_id" field.
func (_u *AgentSessionUpdate) SetPendingPromptID(v string) *AgentSessionUpdate {
	_u.mutation.SetPendingPromptID(v)
	return _u
}

// SetNillablePendingPromptID sets the "pending_prompt_id" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillablePendingPromptID(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetPendingPromptID(*v)
	}
	return _u
}

// ClearPendingPromptID clears the value of the "pending_prompt_id" field.
func (_u *AgentSessionUpdate) ClearPendingPromptID() *AgentSessionUpdate {
	_u.mutation.ClearPendingPromptID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentSessionUpdate) SetErrorMessage(v string) *AgentSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableErrorMessage(v *string) *AgentSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentSessionUpdate) ClearErrorMessage() *AgentSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentSessionUpdate) SetMetadata(v map[string]interface{}) *AgentSessionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentSessionUpdate) ClearMetadata() *AgentSessionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentSessionUpdate) SetVersion(v int) *AgentSessionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableVersion(v *int) *AgentSessionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentSessionUpdate) AddVersion(v int) *AgentSessionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentSessionUpdate) SetStartedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableStartedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentSessionUpdate) ClearStartedAt() *AgentSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AgentSessionUpdate) SetFinishedAt(v time.Time) *AgentSessionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AgentSessionUpdate) SetNillableFinishedAt(v *time.Time) *AgentSessionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AgentSessionUpdate) ClearFinishedAt() *AgentSessionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *AgentSessionUpdate) SetProject(v *Project) *AgentSessionUpdate {
	return _u.SetProjectID(v.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AgentSessionUpdate) SetAgent(v *Agent) *AgentSessionUpdate {
	return _u.SetAgentID(v.ID)
}

// AddTranscriptEntryIDs adds the "transcript_entries" edge to the TranscriptEntry entity by IDs.
func (_u *AgentSessionUpdate) AddTranscriptEntryIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.AddTranscriptEntryIDs(ids...)
	return _u
}

// AddTranscriptEntries adds the "transcript_entries" edges to the TranscriptEntry entity.
func (_u *AgentSessionUpdate) AddTranscriptEntries(v ...*TranscriptEntry) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTranscriptEntryIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdate) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *AgentSessionUpdate) ClearProject() *AgentSessionUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AgentSessionUpdate) ClearAgent() *AgentSessionUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearTranscriptEntries clears all "transcript_entries" edges to the TranscriptEntry entity.
func (_u *AgentSessionUpdate) ClearTranscriptEntries() *AgentSessionUpdate {
	_u.mutation.ClearTranscriptEntries()
	return _u
}

// RemoveTranscriptEntryIDs removes the "transcript_entries" edge to TranscriptEntry entities by IDs.
func (_u *AgentSessionUpdate) RemoveTranscriptEntryIDs(ids ...string) *AgentSessionUpdate {
	_u.mutation.RemoveTranscriptEntryIDs(ids...)
	return _u
}

// RemoveTranscriptEntries removes "transcript_entries" edges to TranscriptEntry entities.
func (_u *AgentSessionUpdate) RemoveTranscriptEntries(v ...*TranscriptEntry) *AgentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTranscriptEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := agentsession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AgentSession.mode": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSession.project"`)
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSession.agent"`)
	}
	return nil
}

func (_u *AgentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BackendSessionID(); ok {
		_spec.SetField(agentsession.FieldBackendSessionID, field.TypeString, value)
	}
	if _u.mutation.BackendSessionIDCleared() {
		_spec.ClearField(agentsession.FieldBackendSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(agentsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(agentsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentsession.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentsession.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(agentsession.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TicketKey(); ok {
		_spec.SetField(agentsession.FieldTicketKey, field.TypeString, value)
	}
	if _u.mutation.TicketKeyCleared() {
		_spec.ClearField(agentsession.FieldTicketKey, field.TypeString)
	}
	if value, ok := _u.mutation.WorktreePath(); ok {
		_spec.SetField(agentsession.FieldWorktreePath, field.TypeString, value)
	}
	if _u.mutation.WorktreePathCleared() {
		_spec.ClearField(agentsession.FieldWorktreePath, field.TypeString)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(agentsession.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(agentsession.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(agentsession.FieldBaseBranch, field.TypeString, value)
	}
	if _u.mutation.BaseBranchCleared() {
		_spec.ClearField(agentsession.FieldBaseBranch, field.TypeString)
	}
	if value, ok := _u.mutation.PendingPromptID(); ok {
		_spec.SetField(agentsession.FieldPendingPromptID, field.TypeString, value)
	}
	if _u.mutation.PendingPromptIDCleared() {
		_spec.ClearField(agentsession.FieldPendingPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentsession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentsession.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentsession.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentsession.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(agentsession.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(agentsession.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TranscriptEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTranscriptEntriesIDs(); len(nodes) > 0 && !_u.mutation.TranscriptEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSessionUpdateOne is the builder for updating a single AgentSession entity.
type AgentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSessionMutation
}

// SetProjectID sets the "project_id" field.
func (_u *AgentSessionUpdateOne) SetProjectID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableProjectID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *AgentSessionUpdateOne) SetAgentID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableAgentID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// SetBackendSessionID sets the "backend_session_id" field.
func (_u *AgentSessionUpdateOne) SetBackendSessionID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetBackendSessionID(v)
	return _u
}

// SetNillableBackendSessionID sets the "backend_session_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableBackendSessionID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetBackendSessionID(*v)
	}
	return _u
}

// ClearBackendSessionID clears the value of the "backend_session_id" field.
func (_u *AgentSessionUpdateOne) ClearBackendSessionID() *AgentSessionUpdateOne {
	_u.mutation.ClearBackendSessionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentSessionUpdateOne) SetStatus(v agentsession.Status) *AgentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStatus(v *agentsession.Status) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AgentSessionUpdateOne) SetTitle(v string) *AgentSessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableTitle(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AgentSessionUpdateOne) ClearTitle() *AgentSessionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetModel sets the "model" field.
func (_u *AgentSessionUpdateOne) SetModel(v string) *AgentSessionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableModel(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *AgentSessionUpdateOne) ClearModel() *AgentSessionUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetMode sets the "mode" field.
func (_u *AgentSessionUpdateOne) SetMode(v agentsession.Mode) *AgentSessionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableMode(v *agentsession.Mode) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetTicketKey sets the "ticket_key" field.
func (_u *AgentSessionUpdateOne) SetTicketKey(v string) *AgentSessionUpdateOne {
	_u.mutation.SetTicketKey(v)
	return _u
}

// SetNillableTicketKey sets the "ticket_key" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableTicketKey(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetTicketKey(*v)
	}
	return _u
}

// ClearTicketKey clears the value of the "ticket_key" field.
func (_u *AgentSessionUpdateOne) ClearTicketKey() *AgentSessionUpdateOne {
	_u.mutation.ClearTicketKey()
	return _u
}

// SetWorktreePath sets the "worktree_path" field.
func (_u *AgentSessionUpdateOne) SetWorktreePath(v string) *AgentSessionUpdateOne {
	_u.mutation.SetWorktreePath(v)
	return _u
}

// SetNillableWorktreePath sets the "worktree_path" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableWorktreePath(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetWorktreePath(*v)
	}
	return _u
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (_u *AgentSessionUpdateOne) ClearWorktreePath() *AgentSessionUpdateOne {
	_u.mutation.ClearWorktreePath()
	return _u
}

// SetBranch sets the "branch" field.
func (_u *AgentSessionUpdateOne) SetBranch(v string) *AgentSessionUpdateOne {
	_u.mutation.SetBranch(v)
	return _u
}

// SetNillableBranch sets the "branch" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableBranch(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetBranch(*v)
	}
	return _u
}

// ClearBranch clears the value of the "branch" field.
func (_u *AgentSessionUpdateOne) ClearBranch() *AgentSessionUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *AgentSessionUpdateOne) SetBaseBranch(v string) *AgentSessionUpdateOne {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableBaseBranch(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (_u *AgentSessionUpdateOne) ClearBaseBranch() *AgentSessionUpdateOne {
	_u.mutation.ClearBaseBranch()
	return _u
}

// SetPendingPromptID sets the "pending_prompt_id" field.
func (_u *AgentSessionUpdateOne) SetPendingPromptID(v string) *AgentSessionUpdateOne {
	_u.mutation.SetPendingPromptID(v)
	return _u
}

// SetNillablePendingPromptID sets the "pending_prompt_id" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillablePendingPromptID(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetPendingPromptID(*v)
	}
	return _u
}

// ClearPendingPromptID clears the value of the "pending_prompt_id" field.
func (_u *AgentSessionUpdateOne) ClearPendingPromptID() *AgentSessionUpdateOne {
	_u.mutation.ClearPendingPromptID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentSessionUpdateOne) SetErrorMessage(v string) *AgentSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableErrorMessage(v *string) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentSessionUpdateOne) ClearErrorMessage() *AgentSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentSessionUpdateOne) SetMetadata(v map[string]interface{}) *AgentSessionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentSessionUpdateOne) ClearMetadata() *AgentSessionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetVersion sets the "version" field.
func (_u *AgentSessionUpdateOne) SetVersion(v int) *AgentSessionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableVersion(v *int) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AgentSessionUpdateOne) AddVersion(v int) *AgentSessionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentSessionUpdateOne) SetStartedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableStartedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentSessionUpdateOne) ClearStartedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AgentSessionUpdateOne) SetFinishedAt(v time.Time) *AgentSessionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AgentSessionUpdateOne) SetNillableFinishedAt(v *time.Time) *AgentSessionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AgentSessionUpdateOne) ClearFinishedAt() *AgentSessionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *AgentSessionUpdateOne) SetProject(v *Project) *AgentSessionUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *AgentSessionUpdateOne) SetAgent(v *Agent) *AgentSessionUpdateOne {
	return _u.SetAgentID(v.ID)
}

// AddTranscriptEntryIDs adds the "transcript_entries" edge to the TranscriptEntry entity by IDs.
func (_u *AgentSessionUpdateOne) AddTranscriptEntryIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.AddTranscriptEntryIDs(ids...)
	return _u
}

// AddTranscriptEntries adds the "transcript_entries" edges to the TranscriptEntry entity.
func (_u *AgentSessionUpdateOne) AddTranscriptEntries(v ...*TranscriptEntry) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTranscriptEntryIDs(ids...)
}

// Mutation returns the AgentSessionMutation object of the builder.
func (_u *AgentSessionUpdateOne) Mutation() *AgentSessionMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *AgentSessionUpdateOne) ClearProject() *AgentSessionUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *AgentSessionUpdateOne) ClearAgent() *AgentSessionUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearTranscriptEntries clears all "transcript_entries" edges to the TranscriptEntry entity.
func (_u *AgentSessionUpdateOne) ClearTranscriptEntries() *AgentSessionUpdateOne {
	_u.mutation.ClearTranscriptEntries()
	return _u
}

// RemoveTranscriptEntryIDs removes the "transcript_entries" edge to TranscriptEntry entities by IDs.
func (_u *AgentSessionUpdateOne) RemoveTranscriptEntryIDs(ids ...string) *AgentSessionUpdateOne {
	_u.mutation.RemoveTranscriptEntryIDs(ids...)
	return _u
}

// RemoveTranscriptEntries removes "transcript_entries" edges to TranscriptEntry entities.
func (_u *AgentSessionUpdateOne) RemoveTranscriptEntries(v ...*TranscriptEntry) *AgentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTranscriptEntryIDs(ids...)
}

// Where appends a list predicates to the AgentSessionUpdate builder.
func (_u *AgentSessionUpdateOne) Where(ps ...predicate.AgentSession) *AgentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSessionUpdateOne) Select(field string, fields ...string) *AgentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSession entity.
func (_u *AgentSessionUpdateOne) Save(ctx context.Context) (*AgentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) SaveX(ctx context.Context) *AgentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := agentsession.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AgentSession.mode": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSession.project"`)
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSession.agent"`)
	}
	return nil
}

func (_u *AgentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsession.Table, agentsession.Columns, sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsession.FieldID)
		for _, f := range fields {
			if !agentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsession.FieldID {
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
	if value, ok := _u.mutation.BackendSessionID(); ok {
		_spec.SetField(agentsession.FieldBackendSessionID, field.TypeString, value)
	}
	if _u.mutation.BackendSessionIDCleared() {
		_spec.ClearField(agentsession.FieldBackendSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(agentsession.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(agentsession.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(agentsession.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(agentsession.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(agentsession.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TicketKey(); ok {
		_spec.SetField(agentsession.FieldTicketKey, field.TypeString, value)
	}
	if _u.mutation.TicketKeyCleared() {
		_spec.ClearField(agentsession.FieldTicketKey, field.TypeString)
	}
	if value, ok := _u.mutation.WorktreePath(); ok {
		_spec.SetField(agentsession.FieldWorktreePath, field.TypeString, value)
	}
	if _u.mutation.WorktreePathCleared() {
		_spec.ClearField(agentsession.FieldWorktreePath, field.TypeString)
	}
	if value, ok := _u.mutation.Branch(); ok {
		_spec.SetField(agentsession.FieldBranch, field.TypeString, value)
	}
	if _u.mutation.BranchCleared() {
		_spec.ClearField(agentsession.FieldBranch, field.TypeString)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(agentsession.FieldBaseBranch, field.TypeString, value)
	}
	if _u.mutation.BaseBranchCleared() {
		_spec.ClearField(agentsession.FieldBaseBranch, field.TypeString)
	}
	if value, ok := _u.mutation.PendingPromptID(); ok {
		_spec.SetField(agentsession.FieldPendingPromptID, field.TypeString, value)
	}
	if _u.mutation.PendingPromptIDCleared() {
		_spec.ClearField(agentsession.FieldPendingPromptID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentsession.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentsession.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(agentsession.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(agentsession.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(agentsession.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(agentsession.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TranscriptEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTranscriptEntriesIDs(); len(nodes) > 0 && !_u.mutation.TranscriptEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
