// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/squad"
)

// CardCreate is the builder for creating a Card entity.
type CardCreate struct {
	config
	mutation *CardMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *CardCreate) SetProjectID(v string) *CardCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetSquadID sets the "squad_id" field.
func (_c *CardCreate) SetSquadID(v string) *CardCreate {
	_c.mutation.SetSquadID(v)
	return _c
}

// SetLane sets the "lane" field.
func (_c *CardCreate) SetLane(v card.Lane) *CardCreate {
	_c.mutation.SetLane(v)
	return _c
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_c *CardCreate) SetNillableLane(v *card.Lane) *CardCreate {
	if v != nil {
		_c.SetLane(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *CardCreate) SetPosition(v int) *CardCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *CardCreate) SetNillablePosition(v *int) *CardCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *CardCreate) SetTitle(v string) *CardCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *CardCreate) SetNillableTitle(v *string) *CardCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *CardCreate) SetBody(v string) *CardCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetPrdPath sets the "prd_path" field.
func (_c *CardCreate) SetPrdPath(v string) *CardCreate {
	_c.mutation.SetPrdPath(v)
	return _c
}

// SetNillablePrdPath sets the "prd_path" field if the given value is not nil.
func (_c *CardCreate) SetNillablePrdPath(v *string) *CardCreate {
	if v != nil {
		_c.SetPrdPath(*v)
	}
	return _c
}

// SetIssuePlan sets the "issue_plan" field.
func (_c *CardCreate) SetIssuePlan(v map[string]interface{}) *CardCreate {
	_c.mutation.SetIssuePlan(v)
	return _c
}

// SetIssueRefs sets the "issue_refs" field.
func (_c *CardCreate) SetIssueRefs(v []string) *CardCreate {
	_c.mutation.SetIssueRefs(v)
	return _c
}

// SetPrURL sets the "pr_url" field.
func (_c *CardCreate) SetPrURL(v string) *CardCreate {
	_c.mutation.SetPrURL(v)
	return _c
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_c *CardCreate) SetNillablePrURL(v *string) *CardCreate {
	if v != nil {
		_c.SetPrURL(*v)
	}
	return _c
}

// SetPlanAgentID sets the "plan_agent_id" field.
func (_c *CardCreate) SetPlanAgentID(v string) *CardCreate {
	_c.mutation.SetPlanAgentID(v)
	return _c
}

// SetNillablePlanAgentID sets the "plan_agent_id" field if the given value is not nil.
func (_c *CardCreate) SetNillablePlanAgentID(v *string) *CardCreate {
	if v != nil {
		_c.SetPlanAgentID(*v)
	}
	return _c
}

// SetBuildAgentID sets the "build_agent_id" field.
func (_c *CardCreate) SetBuildAgentID(v string) *CardCreate {
	_c.mutation.SetBuildAgentID(v)
	return _c
}

// SetNillableBuildAgentID sets the "build_agent_id" field if the given value is not nil.
func (_c *CardCreate) SetNillableBuildAgentID(v *string) *CardCreate {
	if v != nil {
		_c.SetBuildAgentID(*v)
	}
	return _c
}

// SetReviewAgentID sets the "review_agent_id" field.
func (_c *CardCreate) SetReviewAgentID(v string) *CardCreate {
	_c.mutation.SetReviewAgentID(v)
	return _c
}

// SetNillableReviewAgentID sets the "review_agent_id" field if the given value is not nil.
func (_c *CardCreate) SetNillableReviewAgentID(v *string) *CardCreate {
	if v != nil {
		_c.SetReviewAgentID(*v)
	}
	return _c
}

// SetPlanSessionID sets the "plan_session_id" field.
func (_c *CardCreate) SetPlanSessionID(v string) *CardCreate {
	_c.mutation.SetPlanSessionID(v)
	return _c
}

// SetNillablePlanSessionID sets the "plan_session_id" field if the given value is not nil.
func (_c *CardCreate) SetNillablePlanSessionID(v *string) *CardCreate {
	if v != nil {
		_c.SetPlanSessionID(*v)
	}
	return _c
}

// SetBuildSessionID sets the "build_session_id" field.
func (_c *CardCreate) SetBuildSessionID(v string) *CardCreate {
	_c.mutation.SetBuildSessionID(v)
	return _c
}

// SetNillableBuildSessionID sets the "build_session_id" field if the given value is not nil.
func (_c *CardCreate) SetNillableBuildSessionID(v *string) *CardCreate {
	if v != nil {
		_c.SetBuildSessionID(*v)
	}
	return _c
}

// SetReviewSessionID sets the "review_session_id" field.
func (_c *CardCreate) SetReviewSessionID(v string) *CardCreate {
	_c.mutation.SetReviewSessionID(v)
	return _c
}

// SetNillableReviewSessionID sets the "review_session_id" field if the given value is not nil.
func (_c *CardCreate) SetNillableReviewSessionID(v *string) *CardCreate {
	if v != nil {
		_c.SetReviewSessionID(*v)
	}
	return _c
}

// SetBuildWorktreeName sets the "build_worktree_name" field.
func (_c *CardCreate) SetBuildWorktreeName(v string) *CardCreate {
	_c.mutation.SetBuildWorktreeName(v)
	return _c
}

// SetNillableBuildWorktreeName sets the "build_worktree_name" field if the given value is not nil.
func (_c *CardCreate) SetNillableBuildWorktreeName(v *string) *CardCreate {
	if v != nil {
		_c.SetBuildWorktreeName(*v)
	}
	return _c
}

// SetBuildWorktreePath sets the "build_worktree_path" field.
func (_c *CardCreate) SetBuildWorktreePath(v string) *CardCreate {
	_c.mutation.SetBuildWorktreePath(v)
	return _c
}

// SetNillableBuildWorktreePath sets the "build_worktree_path" field if the given value is not nil.
func (_c *CardCreate) SetNillableBuildWorktreePath(v *string) *CardCreate {
	if v != nil {
		_c.SetBuildWorktreePath(*v)
	}
	return _c
}

// SetBuildBranch sets the "build_branch" field.
func (_c *CardCreate) SetBuildBranch(v string) *CardCreate {
	_c.mutation.SetBuildBranch(v)
	return _c
}

// SetNillableBuildBranch sets the "build_branch" field if the given value is not nil.
func (_c *CardCreate) SetNillableBuildBranch(v *string) *CardCreate {
	if v != nil {
		_c.SetBuildBranch(*v)
	}
	return _c
}

// SetBaseBranch sets the "base_branch" field.
func (_c *CardCreate) SetBaseBranch(v string) *CardCreate {
	_c.mutation.SetBaseBranch(v)
	return _c
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_c *CardCreate) SetNillableBaseBranch(v *string) *CardCreate {
	if v != nil {
		_c.SetBaseBranch(*v)
	}
	return _c
}

// SetAiReview sets the "ai_review" field.
func (_c *CardCreate) SetAiReview(v map[string]interface{}) *CardCreate {
	_c.mutation.SetAiReview(v)
	return _c
}

// SetAiReviewSessionID sets the "ai_review_session_id" field.
func (_c *CardCreate) SetAiReviewSessionID(v string) *CardCreate {
	_c.mutation.SetAiReviewSessionID(v)
	return _c
}

// SetNillableAiReviewSessionID sets the "ai_review_session_id" field if the given value is not nil.
func (_c *CardCreate) SetNillableAiReviewSessionID(v *string) *CardCreate {
	if v != nil {
		_c.SetAiReviewSessionID(*v)
	}
	return _c
}

// SetHumanReviewStatus sets the "human_review_status" field.
func (_c *CardCreate) SetHumanReviewStatus(v card.HumanReviewStatus) *CardCreate {
	_c.mutation.SetHumanReviewStatus(v)
	return _c
}

// SetNillableHumanReviewStatus sets the "human_review_status" field if the given value is not nil.
func (_c *CardCreate) SetNillableHumanReviewStatus(v *card.HumanReviewStatus) *CardCreate {
	if v != nil {
		_c.SetHumanReviewStatus(*v)
	}
	return _c
}

// SetHumanReviewFeedback sets the "human_review_feedback" field.
func (_c *CardCreate) SetHumanReviewFeedback(v string) *CardCreate {
	_c.mutation.SetHumanReviewFeedback(v)
	return _c
}

// SetNillableHumanReviewFeedback sets the "human_review_feedback" field if the given value is not nil.
func (_c *CardCreate) SetNillableHumanReviewFeedback(v *string) *CardCreate {
	if v != nil {
		_c.SetHumanReviewFeedback(*v)
	}
	return _c
}

// SetHumanReviewedAt sets the "human_reviewed_at" field.
func (_c *CardCreate) SetHumanReviewedAt(v time.Time) *CardCreate {
	_c.mutation.SetHumanReviewedAt(v)
	return _c
}

// SetNillableHumanReviewedAt sets the "human_reviewed_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableHumanReviewedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetHumanReviewedAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *CardCreate) SetVersion(v int) *CardCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *CardCreate) SetNillableVersion(v *int) *CardCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardCreate) SetCreatedAt(v time.Time) *CardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableCreatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CardCreate) SetUpdatedAt(v time.Time) *CardCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableUpdatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CardCreate) SetID(v string) *CardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *CardCreate) SetProject(v *Project) *CardCreate {
	return _c.SetProjectID(v.ID)
}

// SetSquad sets the "squad" edge to the Squad entity.
func (_c *CardCreate) SetSquad(v *Squad) *CardCreate {
	return _c.SetSquadID(v.ID)
}

// Mutation returns the CardMutation object of the builder.
func (_c *CardCreate) Mutation() *CardMutation {
	return _c.mutation
}

// Save creates the Card in the database.
func (_c *CardCreate) Save(ctx context.Context) (*Card, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardCreate) SaveX(ctx context.Context) *Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardCreate) defaults() {
	if _, ok := _c.mutation.Lane(); !ok {
		v := card.DefaultLane
		_c.mutation.SetLane(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := card.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := card.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := card.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := card.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Card.project_id"`)}
	}
	if _, ok := _c.mutation.SquadID(); !ok {
		return &ValidationError{Name: "squad_id", err: errors.New(`ent: missing required field "Card.squad_id"`)}
	}
	if _, ok := _c.mutation.Lane(); !ok {
		return &ValidationError{Name: "lane", err: errors.New(`ent: missing required field "Card.lane"`)}
	}
	if v, ok := _c.mutation.Lane(); ok {
		if err := card.LaneValidator(v); err != nil {
			return &ValidationError{Name: "lane", err: fmt.Errorf(`ent: validator failed for field "Card.lane": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Card.position"`)}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Card.body"`)}
	}
	if v, ok := _c.mutation.HumanReviewStatus(); ok {
		if err := card.HumanReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "human_review_status", err: fmt.Errorf(`ent: validator failed for field "Card.human_review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Card.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Card.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Card.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Card.project"`)}
	}
	if len(_c.mutation.SquadIDs()) == 0 {
		return &ValidationError{Name: "squad", err: errors.New(`ent: missing required edge "Card.squad"`)}
	}
	return nil
}

func (_c *CardCreate) sqlSave(ctx context.Context) (*Card, error) {
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
			return nil, fmt.Errorf("unexpected Card.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardCreate) createSpec() (*Card, *sqlgraph.CreateSpec) {
	var (
		_node = &Card{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(card.Table, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Lane(); ok {
		_spec.SetField(card.FieldLane, field.TypeEnum, value)
		_node.Lane = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(card.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(card.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(card.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.PrdPath(); ok {
		_spec.SetField(card.FieldPrdPath, field.TypeString, value)
		_node.PrdPath = value
	}
	if value, ok := _c.mutation.IssuePlan(); ok {
		_spec.SetField(card.FieldIssuePlan, field.TypeJSON, value)
		_node.IssuePlan = value
	}
	if value, ok := _c.mutation.IssueRefs(); ok {
		_spec.SetField(card.FieldIssueRefs, field.TypeJSON, value)
		_node.IssueRefs = value
	}
	if value, ok := _c.mutation.PrURL(); ok {
		_spec.SetField(card.FieldPrURL, field.TypeString, value)
		_node.PrURL = value
	}
	if value, ok := _c.mutation.PlanAgentID(); ok {
		_spec.SetField(card.FieldPlanAgentID, field.TypeString, value)
		_node.PlanAgentID = &value
	}
	if value, ok := _c.mutation.BuildAgentID(); ok {
		_spec.SetField(card.FieldBuildAgentID, field.TypeString, value)
		_node.BuildAgentID = &value
	}
	if value, ok := _c.mutation.ReviewAgentID(); ok {
		_spec.SetField(card.FieldReviewAgentID, field.TypeString, value)
		_node.ReviewAgentID = &value
	}
	if value, ok := _c.mutation.PlanSessionID(); ok {
		_spec.SetField(card.FieldPlanSessionID, field.TypeString, value)
		_node.PlanSessionID = &value
	}
	if value, ok := _c.mutation.BuildSessionID(); ok {
		_spec.SetField(card.FieldBuildSessionID, field.TypeString, value)
		_node.BuildSessionID = &value
	}
	if value, ok := _c.mutation.ReviewSessionID(); ok {
		_spec.SetField(card.FieldReviewSessionID, field.TypeString, value)
		_node.ReviewSessionID = &value
	}
	if value, ok := _c.mutation.BuildWorktreeName(); ok {
		_spec.SetField(card.FieldBuildWorktreeName, field.TypeString, value)
		_node.BuildWorktreeName = value
	}
	if value, ok := _c.mutation.BuildWorktreePath(); ok {
		_spec.SetField(card.FieldBuildWorktreePath, field.TypeString, value)
		_node.BuildWorktreePath = value
	}
	if value, ok := _c.mutation.BuildBranch(); ok {
		_spec.SetField(card.FieldBuildBranch, field.TypeString, value)
		_node.BuildBranch = value
	}
	if value, ok := _c.mutation.BaseBranch(); ok {
		_spec.SetField(card.FieldBaseBranch, field.TypeString, value)
		_node.BaseBranch = value
	}
	if value, ok := _c.mutation.AiReview(); ok {
		_spec.SetField(card.FieldAiReview, field.TypeJSON, value)
		_node.AiReview = value
	}
	if value, ok := _c.mutation.AiReviewSessionID(); ok {
		_spec.SetField(card.FieldAiReviewSessionID, field.TypeString, value)
		_node.AiReviewSessionID = &value
	}
	if value, ok := _c.mutation.HumanReviewStatus(); ok {
		_spec.SetField(card.FieldHumanReviewStatus, field.TypeEnum, value)
		_node.HumanReviewStatus = &value
	}
	if value, ok := _c.mutation.HumanReviewFeedback(); ok {
		_spec.SetField(card.FieldHumanReviewFeedback, field.TypeString, value)
		_node.HumanReviewFeedback = value
	}
	if value, ok := _c.mutation.HumanReviewedAt(); ok {
		_spec.SetField(card.FieldHumanReviewedAt, field.TypeTime, value)
		_node.HumanReviewedAt = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(card.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   card.ProjectTable,
			Columns: []string{card.ProjectColumn},
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
	if nodes := _c.mutation.SquadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   card.SquadTable,
			Columns: []string{card.SquadColumn},
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

// CardCreateBulk is the builder for creating many Card entities in bulk.
type CardCreateBulk struct {
	config
	err      error
	builders []*CardCreate
}

// Save creates the Card entities in the database.
func (_c *CardCreateBulk) Save(ctx context.Context) ([]*Card, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Card, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardMutation)
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
func (_c *CardCreateBulk) SaveX(ctx context.Context) []*Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
