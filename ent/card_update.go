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
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/ent/predicate"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/squad"
)

// CardUpdate is the builder for updating Card entities.
type CardUpdate struct {
	config
	hooks    []Hook
	mutation *CardMutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdate) Where(ps ...predicate.Card) *CardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *CardUpdate) SetProjectID(v string) *CardUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableProjectID(v *string) *CardUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetSquadID sets the "squad_id" field.
func (_u *CardUpdate) SetSquadID(v string) *CardUpdate {
	_u.mutation.SetSquadID(v)
	return _u
}

// SetNillableSquadID sets the "squad_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableSquadID(v *string) *CardUpdate {
	if v != nil {
		_u.SetSquadID(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *CardUpdate) SetLane(v card.Lane) *CardUpdate {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *CardUpdate) SetNillableLane(v *card.Lane) *CardUpdate {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CardUpdate) SetPosition(v int) *CardUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CardUpdate) SetNillablePosition(v *int) *CardUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CardUpdate) AddPosition(v int) *CardUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CardUpdate) SetTitle(v string) *CardUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CardUpdate) SetNillableTitle(v *string) *CardUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CardUpdate) ClearTitle() *CardUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetBody sets the "body" field.
func (_u *CardUpdate) SetBody(v string) *CardUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBody(v *string) *CardUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetPrdPath sets the "prd_path" field.
func (_u *CardUpdate) SetPrdPath(v string) *CardUpdate {
	_u.mutation.SetPrdPath(v)
	return _u
}

// SetNillablePrdPath sets the "prd_path" field if the given value is not nil.
func (_u *CardUpdate) SetNillablePrdPath(v *string) *CardUpdate {
	if v != nil {
		_u.SetPrdPath(*v)
	}
	return _u
}

// ClearPrdPath clears the value of the "prd_path" field.
func (_u *CardUpdate) ClearPrdPath() *CardUpdate {
	_u.mutation.ClearPrdPath()
	return _u
}

// SetIssuePlan sets the "issue_plan" field.
func (_u *CardUpdate) SetIssuePlan(v map[string]interface{}) *CardUpdate {
	_u.mutation.SetIssuePlan(v)
	return _u
}

// ClearIssuePlan clears the value of the "issue_plan" field.
func (_u *CardUpdate) ClearIssuePlan() *CardUpdate {
	_u.mutation.ClearIssuePlan()
	return _u
}

// SetIssueRefs sets the "issue_refs" field.
func (_u *CardUpdate) SetIssueRefs(v []string) *CardUpdate {
	_u.mutation.SetIssueRefs(v)
	return _u
}

// AppendIssueRefs appends value to the "issue_refs" field.
func (_u *CardUpdate) AppendIssueRefs(v []string) *CardUpdate {
	_u.mutation.AppendIssueRefs(v)
	return _u
}

// ClearIssueRefs clears the value of the "issue_refs" field.
func (_u *CardUpdate) ClearIssueRefs() *CardUpdate {
	_u.mutation.ClearIssueRefs()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *CardUpdate) SetPrURL(v string) *CardUpdate {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *CardUpdate) SetNillablePrURL(v *string) *CardUpdate {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *CardUpdate) ClearPrURL() *CardUpdate {
	_u.mutation.ClearPrURL()
	return _u
}

// SetPlanAgentID sets the "plan_agent_id" field.
func (_u *CardUpdate) SetPlanAgentID(v string) *CardUpdate {
	_u.mutation.SetPlanAgentID(v)
	return _u
}

// SetNillablePlanAgentID sets the "plan_agent_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillablePlanAgentID(v *string) *CardUpdate {
	if v != nil {
		_u.SetPlanAgentID(*v)
	}
	return _u
}

// ClearPlanAgentID clears the value of the "plan_agent_id" field.
func (_u *CardUpdate) ClearPlanAgentID() *CardUpdate {
	_u.mutation.ClearPlanAgentID()
	return _u
}

// SetBuildAgentID sets the "build_agent_id" field.
func (_u *CardUpdate) SetBuildAgentID(v string) *CardUpdate {
	_u.mutation.SetBuildAgentID(v)
	return _u
}

// SetNillableBuildAgentID sets the "build_agent_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBuildAgentID(v *string) *CardUpdate {
	if v != nil {
		_u.SetBuildAgentID(*v)
	}
	return _u
}

// ClearBuildAgentID clears the value of the "build_agent_id" field.
func (_u *CardUpdate) ClearBuildAgentID() *CardUpdate {
	_u.mutation.ClearBuildAgentID()
	return _u
}

// SetReviewAgentID sets the "review_agent_id" field.
func (_u *CardUpdate) SetReviewAgentID(v string) *CardUpdate {
	_u.mutation.SetReviewAgentID(v)
	return _u
}

// SetNillableReviewAgentID sets the "review_agent_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableReviewAgentID(v *string) *CardUpdate {
	if v != nil {
		_u.SetReviewAgentID(*v)
	}
	return _u
}

// ClearReviewAgentID clears the value of the "review_agent_id" field.
func (_u *CardUpdate) ClearReviewAgentID() *CardUpdate {
	_u.mutation.ClearReviewAgentID()
	return _u
}

// SetPlanSessionID sets the "plan_session_id" field.
func (_u *CardUpdate) SetPlanSessionID(v string) *CardUpdate {
	_u.mutation.SetPlanSessionID(v)
	return _u
}

// SetNillablePlanSessionID sets the "plan_session_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillablePlanSessionID(v *string) *CardUpdate {
	if v != nil {
		_u.SetPlanSessionID(*v)
	}
	return _u
}

// ClearPlanSessionID clears the value of the "plan_session_id" field.
func (_u *CardUpdate) ClearPlanSessionID() *CardUpdate {
	_u.mutation.ClearPlanSessionID()
	return _u
}

// SetBuildSessionID sets the "build_session_id" field.
func (_u *CardUpdate) SetBuildSessionID(v string) *CardUpdate {
	_u.mutation.SetBuildSessionID(v)
	return _u
}

// SetNillableBuildSessionID sets the "build_session_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBuildSessionID(v *string) *CardUpdate {
	if v != nil {
		_u.SetBuildSessionID(*v)
	}
	return _u
}

// ClearBuildSessionID clears the value of the "build_session_id" field.
func (_u *CardUpdate) ClearBuildSessionID() *CardUpdate {
	_u.mutation.ClearBuildSessionID()
	return _u
}

// SetReviewSessionID sets the "review_session_id" field.
func (_u *CardUpdate) SetReviewSessionID(v string) *CardUpdate {
	_u.mutation.SetReviewSessionID(v)
	return _u
}

// SetNillableReviewSessionID sets the "review_session_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableReviewSessionID(v *string) *CardUpdate {
	if v != nil {
		_u.SetReviewSessionID(*v)
	}
	return _u
}

// ClearReviewSessionID clears the value of the "review_session_id" field.
func (_u *CardUpdate) ClearReviewSessionID() *CardUpdate {
	_u.mutation.ClearReviewSessionID()
	return _u
}

// SetBuildWorktreeName sets the "build_worktree_name" field.
func (_u *CardUpdate) SetBuildWorktreeName(v string) *CardUpdate {
	_u.mutation.SetBuildWorktreeName(v)
	return _u
}

// SetNillableBuildWorktreeName sets the "build_worktree_name" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBuildWorktreeName(v *string) *CardUpdate {
	if v != nil {
		_u.SetBuildWorktreeName(*v)
	}
	return _u
}

// ClearBuildWorktreeName clears the value of the "build_worktree_name" field.
func (_u *CardUpdate) ClearBuildWorktreeName() *CardUpdate {
	_u.mutation.ClearBuildWorktreeName()
	return _u
}

// SetBuildWorktreePath sets the "build_worktree_path" field.
func (_u *CardUpdate) SetBuildWorktreePath(v string) *CardUpdate {
	_u.mutation.SetBuildWorktreePath(v)
	return _u
}

// SetNillableBuildWorktreePath sets the "build_worktree_path" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBuildWorktreePath(v *string) *CardUpdate {
	if v != nil {
		_u.SetBuildWorktreePath(*v)
	}
	return _u
}

// ClearBuildWorktreePath clears the value of the "build_worktree_path" field.
func (_u *CardUpdate) ClearBuildWorktreePath() *CardUpdate {
	_u.mutation.ClearBuildWorktreePath()
	return _u
}

// SetBuildBranch sets the "build_branch" field.
func (_u *CardUpdate) SetBuildBranch(v string) *CardUpdate {
	_u.mutation.SetBuildBranch(v)
	return _u
}

// SetNillableBuildBranch sets the "build_branch" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBuildBranch(v *string) *CardUpdate {
	if v != nil {
		_u.SetBuildBranch(*v)
	}
	return _u
}

// ClearBuildBranch clears the value of the "build_branch" field.
func (_u *CardUpdate) ClearBuildBranch() *CardUpdate {
	_u.mutation.ClearBuildBranch()
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *CardUpdate) SetBaseBranch(v string) *CardUpdate {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBaseBranch(v *string) *CardUpdate {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (_u *CardUpdate) ClearBaseBranch() *CardUpdate {
	_u.mutation.ClearBaseBranch()
	return _u
}

// SetAiReview sets the "ai_review" field.
func (_u *CardUpdate) SetAiReview(v map[string]interface{}) *CardUpdate {
	_u.mutation.SetAiReview(v)
	return _u
}

// ClearAiReview clears the value of the "ai_review" field.
func (_u *CardUpdate) ClearAiReview() *CardUpdate {
	_u.mutation.ClearAiReview()
	return _u
}

// SetAiReviewSessionID sets the "ai_review_session_id" field.
func (_u *CardUpdate) SetAiReviewSessionID(v string) *CardUpdate {
	_u.mutation.SetAiReviewSessionID(v)
	return _u
}

// SetNillableAiReviewSessionID sets the "ai_review_session_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableAiReviewSessionID(v *string) *CardUpdate {
	if v != nil {
		_u.SetAiReviewSessionID(*v)
	}
	return _u
}

// ClearAiReviewSessionID clears the value of the "ai_review_session_id" field.
func (_u *CardUpdate) ClearAiReviewSessionID() *CardUpdate {
	_u.mutation.ClearAiReviewSessionID()
	return _u
}

// SetHumanReviewStatus sets the "human_review_status" field.
func (_u *CardUpdate) SetHumanReviewStatus(v card.HumanReviewStatus) *CardUpdate {
	_u.mutation.SetHumanReviewStatus(v)
	return _u
}

// SetNillableHumanReviewStatus sets the "human_review_status" field if the given value is not nil.
func (_u *CardUpdate) SetNillableHumanReviewStatus(v *card.HumanReviewStatus) *CardUpdate {
	if v != nil {
		_u.SetHumanReviewStatus(*v)
	}
	return _u
}

// ClearHumanReviewStatus clears the value of the "human_review_status" field.
func (_u *CardUpdate) ClearHumanReviewStatus() *CardUpdate {
	_u.mutation.ClearHumanReviewStatus()
	return _u
}

// SetHumanReviewFeedback sets the "human_review_feedback" field.
func (_u *CardUpdate) SetHumanReviewFeedback(v string) *CardUpdate {
	_u.mutation.SetHumanReviewFeedback(v)
	return _u
}

// SetNillableHumanReviewFeedback sets the "human_review_feedback" field if the given value is not nil.
func (_u *CardUpdate) SetNillableHumanReviewFeedback(v *string) *CardUpdate {
	if v != nil {
		_u.SetHumanReviewFeedback(*v)
	}
	return _u
}

// ClearHumanReviewFeedback clears the value of the "human_review_feedback" field.
func (_u *CardUpdate) ClearHumanReviewFeedback() *CardUpdate {
	_u.mutation.ClearHumanReviewFeedback()
	return _u
}

// SetHumanReviewedAt sets the "human_reviewed_at" field.
func (_u *CardUpdate) SetHumanReviewedAt(v time.Time) *CardUpdate {
	_u.mutation.SetHumanReviewedAt(v)
	return _u
}

// SetNillableHumanReviewedAt sets the "human_reviewed_at" field if the given value is not nil.
func (_u *CardUpdate) SetNillableHumanReviewedAt(v *time.Time) *CardUpdate {
	if v != nil {
		_u.SetHumanReviewedAt(*v)
	}
	return _u
}

// ClearHumanReviewedAt clears the value of the "human_reviewed_at" field.
func (_u *CardUpdate) ClearHumanReviewedAt() *CardUpdate {
	_u.mutation.ClearHumanReviewedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *CardUpdate) SetVersion(v int) *CardUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CardUpdate) SetNillableVersion(v *int) *CardUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CardUpdate) AddVersion(v int) *CardUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdate) SetUpdatedAt(v time.Time) *CardUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *CardUpdate) SetProject(v *Project) *CardUpdate {
	return _u.SetProjectID(v.ID)
}

// SetSquad sets the "squad" edge to the Squad entity.
func (_u *CardUpdate) SetSquad(v *Squad) *CardUpdate {
	return _u.SetSquadID(v.ID)
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdate) Mutation() *CardMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *CardUpdate) ClearProject() *CardUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearSquad clears the "squad" edge to the Squad entity.
func (_u *CardUpdate) ClearSquad() *CardUpdate {
	_u.mutation.ClearSquad()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CardUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := card.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdate) check() error {
	if v, ok := _u.mutation.Lane(); ok {
		if err := card.LaneValidator(v); err != nil {
			return &ValidationError{Name: "lane", err: fmt.Errorf(`ent: validator failed for field "Card.lane": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HumanReviewStatus(); ok {
		if err := card.HumanReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "human_review_status", err: fmt.Errorf(`ent: validator failed for field "Card.human_review_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Card.project"`)
	}
	if _u.mutation.SquadCleared() && len(_u.mutation.SquadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Card.squad"`)
	}
	return nil
}

func (_u *CardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(card.FieldLane, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(card.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(card.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(card.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(card.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(card.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrdPath(); ok {
		_spec.SetField(card.FieldPrdPath, field.TypeString, value)
	}
	if _u.mutation.PrdPathCleared() {
		_spec.ClearField(card.FieldPrdPath, field.TypeString)
	}
	if value, ok := _u.mutation.IssuePlan(); ok {
		_spec.SetField(card.FieldIssuePlan, field.TypeJSON, value)
	}
	if _u.mutation.IssuePlanCleared() {
		_spec.ClearField(card.FieldIssuePlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.IssueRefs(); ok {
		_spec.SetField(card.FieldIssueRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssueRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldIssueRefs, value)
		})
	}
	if _u.mutation.IssueRefsCleared() {
		_spec.ClearField(card.FieldIssueRefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(card.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(card.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.PlanAgentID(); ok {
		_spec.SetField(card.FieldPlanAgentID, field.TypeString, value)
	}
	if _u.mutation.PlanAgentIDCleared() {
		_spec.ClearField(card.FieldPlanAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.BuildAgentID(); ok {
		_spec.SetField(card.FieldBuildAgentID, field.TypeString, value)
	}
	if _u.mutation.BuildAgentIDCleared() {
		_spec.ClearField(card.FieldBuildAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewAgentID(); ok {
		_spec.SetField(card.FieldReviewAgentID, field.TypeString, value)
	}
	if _u.mutation.ReviewAgentIDCleared() {
		_spec.ClearField(card.FieldReviewAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.PlanSessionID(); ok {
		_spec.SetField(card.FieldPlanSessionID, field.TypeString, value)
	}
	if _u.mutation.PlanSessionIDCleared() {
		_spec.ClearField(card.FieldPlanSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.BuildSessionID(); ok {
		_spec.SetField(card.FieldBuildSessionID, field.TypeString, value)
	}
	if _u.mutation.BuildSessionIDCleared() {
		_spec.ClearField(card.FieldBuildSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewSessionID(); ok {
		_spec.SetField(card.FieldReviewSessionID, field.TypeString, value)
	}
	if _u.mutation.ReviewSessionIDCleared() {
		_spec.ClearField(card.FieldReviewSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.BuildWorktreeName(); ok {
		_spec.SetField(card.FieldBuildWorktreeName, field.TypeString, value)
	}
	if _u.mutation.BuildWorktreeNameCleared() {
		_spec.ClearField(card.FieldBuildWorktreeName, field.TypeString)
	}
	if value, ok := _u.mutation.BuildWorktreePath(); ok {
		_spec.SetField(card.FieldBuildWorktreePath, field.TypeString, value)
	}
	if _u.mutation.BuildWorktreePathCleared() {
		_spec.ClearField(card.FieldBuildWorktreePath, field.TypeString)
	}
	if value, ok := _u.mutation.BuildBranch(); ok {
		_spec.SetField(card.FieldBuildBranch, field.TypeString, value)
	}
	if _u.mutation.BuildBranchCleared() {
		_spec.ClearField(card.FieldBuildBranch, field.TypeString)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(card.FieldBaseBranch, field.TypeString, value)
	}
	if _u.mutation.BaseBranchCleared() {
		_spec.ClearField(card.FieldBaseBranch, field.TypeString)
	}
	if value, ok := _u.mutation.AiReview(); ok {
		_spec.SetField(card.FieldAiReview, field.TypeJSON, value)
	}
	if _u.mutation.AiReviewCleared() {
		_spec.ClearField(card.FieldAiReview, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiReviewSessionID(); ok {
		_spec.SetField(card.FieldAiReviewSessionID, field.TypeString, value)
	}
	if _u.mutation.AiReviewSessionIDCleared() {
		_spec.ClearField(card.FieldAiReviewSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.HumanReviewStatus(); ok {
		_spec.SetField(card.FieldHumanReviewStatus, field.TypeEnum, value)
	}
	if _u.mutation.HumanReviewStatusCleared() {
		_spec.ClearField(card.FieldHumanReviewStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.HumanReviewFeedback(); ok {
		_spec.SetField(card.FieldHumanReviewFeedback, field.TypeString, value)
	}
	if _u.mutation.HumanReviewFeedbackCleared() {
		_spec.ClearField(card.FieldHumanReviewFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.HumanReviewedAt(); ok {
		_spec.SetField(card.FieldHumanReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.HumanReviewedAtCleared() {
		_spec.ClearField(card.FieldHumanReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(card.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(card.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SquadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SquadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardUpdateOne is the builder for updating a single Card entity.
type CardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardMutation
}

// SetProjectID sets the "project_id" field.
func (_u *CardUpdateOne) SetProjectID(v string) *CardUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableProjectID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetSquadID sets the "squad_id" field.
func (_u *CardUpdateOne) SetSquadID(v string) *CardUpdateOne {
	_u.mutation.SetSquadID(v)
	return _u
}

// SetNillableSquadID sets the "squad_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableSquadID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetSquadID(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *CardUpdateOne) SetLane(v card.Lane) *CardUpdateOne {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableLane(v *card.Lane) *CardUpdateOne {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CardUpdateOne) SetPosition(v int) *CardUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillablePosition(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CardUpdateOne) AddPosition(v int) *CardUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CardUpdateOne) SetTitle(v string) *CardUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableTitle(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CardUpdateOne) ClearTitle() *CardUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetBody sets the "body" field.
func (_u *CardUpdateOne) SetBody(v string) *CardUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBody(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetPrdPath sets the "prd_path" field.
func (_u *CardUpdateOne) SetPrdPath(v string) *CardUpdateOne {
	_u.mutation.SetPrdPath(v)
	return _u
}

// SetNillablePrdPath sets the "prd_path" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillablePrdPath(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetPrdPath(*v)
	}
	return _u
}

// ClearPrdPath clears the value of the "prd_path" field.
func (_u *CardUpdateOne) ClearPrdPath() *CardUpdateOne {
	_u.mutation.ClearPrdPath()
	return _u
}

// SetIssuePlan sets the "issue_plan" field.
func (_u *CardUpdateOne) SetIssuePlan(v map[string]interface{}) *CardUpdateOne {
	_u.mutation.SetIssuePlan(v)
	return _u
}

// ClearIssuePlan clears the value of the "issue_plan" field.
func (_u *CardUpdateOne) ClearIssuePlan() *CardUpdateOne {
	_u.mutation.ClearIssuePlan()
	return _u
}

// SetIssueRefs sets the "issue_refs" field.
func (_u *CardUpdateOne) SetIssueRefs(v []string) *CardUpdateOne {
	_u.mutation.SetIssueRefs(v)
	return _u
}

// AppendIssueRefs appends value to the "issue_refs" field.
func (_u *CardUpdateOne) AppendIssueRefs(v []string) *CardUpdateOne {
	_u.mutation.AppendIssueRefs(v)
	return _u
}

// ClearIssueRefs clears the value of the "issue_refs" field.
func (_u *CardUpdateOne) ClearIssueRefs() *CardUpdateOne {
	_u.mutation.ClearIssueRefs()
	return _u
}

// SetPrURL sets the "pr_url" field.
func (_u *CardUpdateOne) SetPrURL(v string) *CardUpdateOne {
	_u.mutation.SetPrURL(v)
	return _u
}

// SetNillablePrURL sets the "pr_url" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillablePrURL(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetPrURL(*v)
	}
	return _u
}

// ClearPrURL clears the value of the "pr_url" field.
func (_u *CardUpdateOne) ClearPrURL() *CardUpdateOne {
	_u.mutation.ClearPrURL()
	return _u
}

// SetPlanAgentID sets the "plan_agent_id" field.
func (_u *CardUpdateOne) SetPlanAgentID(v string) *CardUpdateOne {
	_u.mutation.SetPlanAgentID(v)
	return _u
}

// SetNillablePlanAgentID sets the "plan_agent_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillablePlanAgentID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetPlanAgentID(*v)
	}
	return _u
}

// ClearPlanAgentID clears the value of the "plan_agent_id" field.
func (_u *CardUpdateOne) ClearPlanAgentID() *CardUpdateOne {
	_u.mutation.ClearPlanAgentID()
	return _u
}

// SetBuildAgentID sets the "build_agent_id" field.
func (_u *CardUpdateOne) SetBuildAgentID(v string) *CardUpdateOne {
	_u.mutation.SetBuildAgentID(v)
	return _u
}

// SetNillableBuildAgentID sets the "build_agent_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBuildAgentID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBuildAgentID(*v)
	}
	return _u
}

// ClearBuildAgentID clears the value of the "build_agent_id" field.
func (_u *CardUpdateOne) ClearBuildAgentID() *CardUpdateOne {
	_u.mutation.ClearBuildAgentID()
	return _u
}

// SetReviewAgentID sets the "review_agent_id" field.
func (_u *CardUpdateOne) SetReviewAgentID(v string) *CardUpdateOne {
	_u.mutation.SetReviewAgentID(v)
	return _u
}

// SetNillableReviewAgentID sets the "review_agent_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableReviewAgentID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetReviewAgentID(*v)
	}
	return _u
}

// ClearReviewAgentID clears the value of the "review_agent_id" field.
func (_u *CardUpdateOne) ClearReviewAgentID() *CardUpdateOne {
	_u.mutation.ClearReviewAgentID()
	return _u
}

// SetPlanSessionID sets the "plan_session_id" field.
func (_u *CardUpdateOne) SetPlanSessionID(v string) *CardUpdateOne {
	_u.mutation.SetPlanSessionID(v)
	return _u
}

// SetNillablePlanSessionID sets the "plan_session_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillablePlanSessionID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetPlanSessionID(*v)
	}
	return _u
}

// ClearPlanSessionID clears the value of the "plan_session_id" field.
func (_u *CardUpdateOne) ClearPlanSessionID() *CardUpdateOne {
	_u.mutation.ClearPlanSessionID()
	return _u
}

// SetBuildSessionID sets the "build_session_id" field.
func (_u *CardUpdateOne) SetBuildSessionID(v string) *CardUpdateOne {
	_u.mutation.SetBuildSessionID(v)
	return _u
}

// SetNillableBuildSessionID sets the "build_session_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBuildSessionID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBuildSessionID(*v)
	}
	return _u
}

// ClearBuildSessionID clears the value of the "build_session_id" field.
func (_u *CardUpdateOne) ClearBuildSessionID() *CardUpdateOne {
	_u.mutation.ClearBuildSessionID()
	return _u
}

// SetReviewSessionID sets the "review_session_id" field.
func (_u *CardUpdateOne) SetReviewSessionID(v string) *CardUpdateOne {
	_u.mutation.SetReviewSessionID(v)
	return _u
}

// SetNillableReviewSessionID sets the "review_session_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableReviewSessionID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetReviewSessionID(*v)
	}
	return _u
}

// ClearReviewSessionID clears the value of the "review_session_id" field.
func (_u *CardUpdateOne) ClearReviewSessionID() *CardUpdateOne {
	_u.mutation.ClearReviewSessionID()
	return _u
}

// SetBuildWorktreeName sets the "build_worktree_name" field.
func (_u *CardUpdateOne) SetBuildWorktreeName(v string) *CardUpdateOne {
	_u.mutation.SetBuildWorktreeName(v)
	return _u
}

// SetNillableBuildWorktreeName sets the "build_worktree_name" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBuildWorktreeName(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBuildWorktreeName(*v)
	}
	return _u
}

// ClearBuildWorktreeName clears the value of the "build_worktree_name" field.
func (_u *CardUpdateOne) ClearBuildWorktreeName() *CardUpdateOne {
	_u.mutation.ClearBuildWorktreeName()
	return _u
}

// SetBuildWorktreePath sets the "build_worktree_path" field.
func (_u *CardUpdateOne) SetBuildWorktreePath(v string) *CardUpdateOne {
	_u.mutation.SetBuildWorktreePath(v)
	return _u
}

// SetNillableBuildWorktreePath sets the "build_worktree_path" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBuildWorktreePath(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBuildWorktreePath(*v)
	}
	return _u
}

// ClearBuildWorktreePath clears the value of the "build_worktree_path" field.
func (_u *CardUpdateOne) ClearBuildWorktreePath() *CardUpdateOne {
	_u.mutation.ClearBuildWorktreePath()
	return _u
}

// SetBuildBranch sets the "build_branch" field.
func (_u *CardUpdateOne) SetBuildBranch(v string) *CardUpdateOne {
	_u.mutation.SetBuildBranch(v)
	return _u
}

// SetNillableBuildBranch sets the "build_branch" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBuildBranch(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBuildBranch(*v)
	}
	return _u
}

// ClearBuildBranch clears the value of the "build_branch" field.
func (_u *CardUpdateOne) ClearBuildBranch() *CardUpdateOne {
	_u.mutation.ClearBuildBranch()
	return _u
}

// SetBaseBranch sets the "base_branch" field.
func (_u *CardUpdateOne) SetBaseBranch(v string) *CardUpdateOne {
	_u.mutation.SetBaseBranch(v)
	return _u
}

// SetNillableBaseBranch sets the "base_branch" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBaseBranch(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBaseBranch(*v)
	}
	return _u
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (_u *CardUpdateOne) ClearBaseBranch() *CardUpdateOne {
	_u.mutation.ClearBaseBranch()
	return _u
}

// SetAiReview sets the "ai_review" field.
func (_u *CardUpdateOne) SetAiReview(v map[string]interface{}) *CardUpdateOne {
	_u.mutation.SetAiReview(v)
	return _u
}

// ClearAiReview clears the value of the "ai_review" field.
func (_u *CardUpdateOne) ClearAiReview() *CardUpdateOne {
	_u.mutation.ClearAiReview()
	return _u
}

// SetAiReviewSessionID sets the "ai_review_session_id" field.
func (_u *CardUpdateOne) SetAiReviewSessionID(v string) *CardUpdateOne {
	_u.mutation.SetAiReviewSessionID(v)
	return _u
}

// SetNillableAiReviewSessionID sets the "ai_review_session_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableAiReviewSessionID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetAiReviewSessionID(*v)
	}
	return _u
}

// ClearAiReviewSessionID clears the value of the "ai_review_session_id" field.
func (_u *CardUpdateOne) ClearAiReviewSessionID() *CardUpdateOne {
	_u.mutation.ClearAiReviewSessionID()
	return _u
}

// SetHumanReviewStatus sets the "human_review_status" field.
func (_u *CardUpdateOne) SetHumanReviewStatus(v card.HumanReviewStatus) *CardUpdateOne {
	_u.mutation.SetHumanReviewStatus(v)
	return _u
}

// SetNillableHumanReviewStatus sets the "human_review_status" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableHumanReviewStatus(v *card.HumanReviewStatus) *CardUpdateOne {
	if v != nil {
		_u.SetHumanReviewStatus(*v)
	}
	return _u
}

// ClearHumanReviewStatus clears the value of the "human_review_status" field.
func (_u *CardUpdateOne) ClearHumanReviewStatus() *CardUpdateOne {
	_u.mutation.ClearHumanReviewStatus()
	return _u
}

// SetHumanReviewFeedback sets the "human_review_feedback" field.
func (_u *CardUpdateOne) SetHumanReviewFeedback(v string) *CardUpdateOne {
	_u.mutation.SetHumanReviewFeedback(v)
	return _u
}

// SetNillableHumanReviewFeedback sets the "human_review_feedback" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableHumanReviewFeedback(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetHumanReviewFeedback(*v)
	}
	return _u
}

// ClearHumanReviewFeedback clears the value of the "human_review_feedback" field.
func (_u *CardUpdateOne) ClearHumanReviewFeedback() *CardUpdateOne {
	_u.mutation.ClearHumanReviewFeedback()
	return _u
}

// SetHumanReviewedAt sets the "human_reviewed_at" field.
func (_u *CardUpdateOne) SetHumanReviewedAt(v time.Time) *CardUpdateOne {
	_u.mutation.SetHumanReviewedAt(v)
	return _u
}

// SetNillableHumanReviewedAt sets the "human_reviewed_at" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableHumanReviewedAt(v *time.Time) *CardUpdateOne {
	if v != nil {
		_u.SetHumanReviewedAt(*v)
	}
	return _u
}

// ClearHumanReviewedAt clears the value of the "human_reviewed_at" field.
func (_u *CardUpdateOne) ClearHumanReviewedAt() *CardUpdateOne {
	_u.mutation.ClearHumanReviewedAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *CardUpdateOne) SetVersion(v int) *CardUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableVersion(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CardUpdateOne) AddVersion(v int) *CardUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdateOne) SetUpdatedAt(v time.Time) *CardUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *CardUpdateOne) SetProject(v *Project) *CardUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetSquad sets the "squad" edge to the Squad entity.
func (_u *CardUpdateOne) SetSquad(v *Squad) *CardUpdateOne {
	return _u.SetSquadID(v.ID)
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdateOne) Mutation() *CardMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *CardUpdateOne) ClearProject() *CardUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearSquad clears the "squad" edge to the Squad entity.
func (_u *CardUpdateOne) ClearSquad() *CardUpdateOne {
	_u.mutation.ClearSquad()
	return _u
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdateOne) Where(ps ...predicate.Card) *CardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardUpdateOne) Select(field string, fields ...string) *CardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Card entity.
func (_u *CardUpdateOne) Save(ctx context.Context) (*Card, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdateOne) SaveX(ctx context.Context) *Card {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CardUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := card.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdateOne) check() error {
	if v, ok := _u.mutation.Lane(); ok {
		if err := card.LaneValidator(v); err != nil {
			return &ValidationError{Name: "lane", err: fmt.Errorf(`ent: validator failed for field "Card.lane": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HumanReviewStatus(); ok {
		if err := card.HumanReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "human_review_status", err: fmt.Errorf(`ent: validator failed for field "Card.human_review_status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Card.project"`)
	}
	if _u.mutation.SquadCleared() && len(_u.mutation.SquadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Card.squad"`)
	}
	return nil
}

func (_u *CardUpdateOne) sqlSave(ctx context.Context) (_node *Card, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Card.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, card.FieldID)
		for _, f := range fields {
			if !card.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != card.FieldID {
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
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(card.FieldLane, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(card.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(card.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(card.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(card.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(card.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.PrdPath(); ok {
		_spec.SetField(card.FieldPrdPath, field.TypeString, value)
	}
	if _u.mutation.PrdPathCleared() {
		_spec.ClearField(card.FieldPrdPath, field.TypeString)
	}
	if value, ok := _u.mutation.IssuePlan(); ok {
		_spec.SetField(card.FieldIssuePlan, field.TypeJSON, value)
	}
	if _u.mutation.IssuePlanCleared() {
		_spec.ClearField(card.FieldIssuePlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.IssueRefs(); ok {
		_spec.SetField(card.FieldIssueRefs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIssueRefs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldIssueRefs, value)
		})
	}
	if _u.mutation.IssueRefsCleared() {
		_spec.ClearField(card.FieldIssueRefs, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrURL(); ok {
		_spec.SetField(card.FieldPrURL, field.TypeString, value)
	}
	if _u.mutation.PrURLCleared() {
		_spec.ClearField(card.FieldPrURL, field.TypeString)
	}
	if value, ok := _u.mutation.PlanAgentID(); ok {
		_spec.SetField(card.FieldPlanAgentID, field.TypeString, value)
	}
	if _u.mutation.PlanAgentIDCleared() {
		_spec.ClearField(card.FieldPlanAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.BuildAgentID(); ok {
		_spec.SetField(card.FieldBuildAgentID, field.TypeString, value)
	}
	if _u.mutation.BuildAgentIDCleared() {
		_spec.ClearField(card.FieldBuildAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewAgentID(); ok {
		_spec.SetField(card.FieldReviewAgentID, field.TypeString, value)
	}
	if _u.mutation.ReviewAgentIDCleared() {
		_spec.ClearField(card.FieldReviewAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.PlanSessionID(); ok {
		_spec.SetField(card.FieldPlanSessionID, field.TypeString, value)
	}
	if _u.mutation.PlanSessionIDCleared() {
		_spec.ClearField(card.FieldPlanSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.BuildSessionID(); ok {
		_spec.SetField(card.FieldBuildSessionID, field.TypeString, value)
	}
	if _u.mutation.BuildSessionIDCleared() {
		_spec.ClearField(card.FieldBuildSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewSessionID(); ok {
		_spec.SetField(card.FieldReviewSessionID, field.TypeString, value)
	}
	if _u.mutation.ReviewSessionIDCleared() {
		_spec.ClearField(card.FieldReviewSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.BuildWorktreeName(); ok {
		_spec.SetField(card.FieldBuildWorktreeName, field.TypeString, value)
	}
	if _u.mutation.BuildWorktreeNameCleared() {
		_spec.ClearField(card.FieldBuildWorktreeName, field.TypeString)
	}
	if value, ok := _u.mutation.BuildWorktreePath(); ok {
		_spec.SetField(card.FieldBuildWorktreePath, field.TypeString, value)
	}
	if _u.mutation.BuildWorktreePathCleared() {
		_spec.ClearField(card.FieldBuildWorktreePath, field.TypeString)
	}
	if value, ok := _u.mutation.BuildBranch(); ok {
		_spec.SetField(card.FieldBuildBranch, field.TypeString, value)
	}
	if _u.mutation.BuildBranchCleared() {
		_spec.ClearField(card.FieldBuildBranch, field.TypeString)
	}
	if value, ok := _u.mutation.BaseBranch(); ok {
		_spec.SetField(card.FieldBaseBranch, field.TypeString, value)
	}
	if _u.mutation.BaseBranchCleared() {
		_spec.ClearField(card.FieldBaseBranch, field.TypeString)
	}
	if value, ok := _u.mutation.AiReview(); ok {
		_spec.SetField(card.FieldAiReview, field.TypeJSON, value)
	}
	if _u.mutation.AiReviewCleared() {
		_spec.ClearField(card.FieldAiReview, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiReviewSessionID(); ok {
		_spec.SetField(card.FieldAiReviewSessionID, field.TypeString, value)
	}
	if _u.mutation.AiReviewSessionIDCleared() {
		_spec.ClearField(card.FieldAiReviewSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.HumanReviewStatus(); ok {
		_spec.SetField(card.FieldHumanReviewStatus, field.TypeEnum, value)
	}
	if _u.mutation.HumanReviewStatusCleared() {
		_spec.ClearField(card.FieldHumanReviewStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.HumanReviewFeedback(); ok {
		_spec.SetField(card.FieldHumanReviewFeedback, field.TypeString, value)
	}
	if _u.mutation.HumanReviewFeedbackCleared() {
		_spec.ClearField(card.FieldHumanReviewFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.HumanReviewedAt(); ok {
		_spec.SetField(card.FieldHumanReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.HumanReviewedAtCleared() {
		_spec.ClearField(card.FieldHumanReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(card.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(card.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SquadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SquadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Card{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
