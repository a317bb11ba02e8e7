// Code generated by ent, DO NOT EDIT.

package card

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/buildsquads/squads/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldProjectID, v))
}

// SquadID applies equality check predicate on the "squad_id" field. It's identical to SquadIDEQ.
func SquadID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldSquadID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPosition, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBody, v))
}

// PrdPath applies equality check predicate on the "prd_path" field. It's identical to PrdPathEQ.
func PrdPath(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPrdPath, v))
}

// PrURL applies equality check predicate on the "pr_url" field. It's identical to PrURLEQ.
func PrURL(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPrURL, v))
}

// PlanAgentID applies equality check predicate on the "plan_agent_id" field. It's identical to PlanAgentIDEQ.
func PlanAgentID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPlanAgentID, v))
}

// BuildAgentID applies equality check predicate on the "build_agent_id" field. It's identical to BuildAgentIDEQ.
func BuildAgentID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBuildAgentID, v))
}

// ReviewAgentID applies equality check predicate on the "review_agent_id" field. It's identical to ReviewAgentIDEQ.
func ReviewAgentID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldReviewAgentID, v))
}

// PlanSessionID applies equality check predicate on the "plan_session_id" field. It's identical to PlanSessionIDEQ.
func PlanSessionID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPlanSessionID, v))
}

// BuildSessionID applies equality check predicate on the "build_session_id" field. It's identical to BuildSessionIDEQ.
func BuildSessionID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBuildSessionID, v))
}

// ReviewSessionID applies equality check predicate on the "review_session_id" field. It's identical to ReviewSessionIDEQ.
func ReviewSessionID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldReviewSessionID, v))
}

// BuildWorktreeName applies equality check predicate on the "build_worktree_name" field. It's identical to BuildWorktreeNameEQ.
func BuildWorktreeName(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBuildWorktreeName, v))
}

// BuildWorktreePath applies equality check predicate on the "build_worktree_path" field. It's identical to BuildWorktreePathEQ.
func BuildWorktreePath(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBuildWorktreePath, v))
}

// BuildBranch applies equality check predicate on the "build_branch" field. It's identical to BuildBranchEQ.
func BuildBranch(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBuildBranch, v))
}

// BaseBranch applies equality check predicate on the "base_branch" field. It's identical to BaseBranchEQ.
func BaseBranch(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBaseBranch, v))
}

// AiReviewSessionID applies equality check predicate on the "ai_review_session_id" field. It's identical to AiReviewSessionIDEQ.
func AiReviewSessionID(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldAiReviewSessionID, v))
}

// HumanReviewFeedback applies equality check predicate on the "human_review_feedback" field. It's identical to HumanReviewFeedbackEQ.
func HumanReviewFeedback(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldHumanReviewFeedback, v))
}

// HumanReviewedAt applies equality check predicate on the "human_reviewed_at" field. It's identical to HumanReviewedAtEQ.
func HumanReviewedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldHumanReviewedAt, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldProjectID, v))
}

// SquadIDEQ applies the EQ predicate on the "squad_id" field.
func SquadIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldSquadID, v))
}

// SquadIDNEQ applies the NEQ predicate on the "squad_id" field.
func SquadIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldSquadID, v))
}

// SquadIDIn applies the In predicate on the "squad_id" field.
func SquadIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldSquadID, vs...))
}

// SquadIDNotIn applies the NotIn predicate on the "squad_id" field.
func SquadIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldSquadID, vs...))
}

// SquadIDGT applies the GT predicate on the "squad_id" field.
func SquadIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldSquadID, v))
}

// SquadIDGTE applies the GTE predicate on the "squad_id" field.
func SquadIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldSquadID, v))
}

// SquadIDLT applies the LT predicate on the "squad_id" field.
func SquadIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldSquadID, v))
}

// SquadIDLTE applies the LTE predicate on the "squad_id" field.
func SquadIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldSquadID, v))
}

// SquadIDContains applies the Contains predicate on the "squad_id" field.
func SquadIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldSquadID, v))
}

// SquadIDHasPrefix applies the HasPrefix predicate on the "squad_id" field.
func SquadIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldSquadID, v))
}

// SquadIDHasSuffix applies the HasSuffix predicate on the "squad_id" field.
func SquadIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldSquadID, v))
}

// SquadIDEqualFold applies the EqualFold predicate on the "squad_id" field.
func SquadIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldSquadID, v))
}

// SquadIDContainsFold applies the ContainsFold predicate on the "squad_id" field.
func SquadIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldSquadID, v))
}

// LaneEQ applies the EQ predicate on the "lane" field.
func LaneEQ(v Lane) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldLane, v))
}

// LaneNEQ applies the NEQ predicate on the "lane" field.
func LaneNEQ(v Lane) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldLane, v))
}

// LaneIn applies the In predicate on the "lane" field.
func LaneIn(vs ...Lane) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldLane, vs...))
}

// LaneNotIn applies the NotIn predicate on the "lane" field.
func LaneNotIn(vs ...Lane) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldLane, vs...))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldPosition, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBody, v))
}

// PrdPathEQ applies the EQ predicate on the "prd_path" field.
func PrdPathEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPrdPath, v))
}

// PrdPathNEQ applies the NEQ predicate on the "prd_path" field.
func PrdPathNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldPrdPath, v))
}

// PrdPathIn applies the In predicate on the "prd_path" field.
func PrdPathIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldPrdPath, vs...))
}

// PrdPathNotIn applies the NotIn predicate on the "prd_path" field.
func PrdPathNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldPrdPath, vs...))
}

// PrdPathGT applies the GT predicate on the "prd_path" field.
func PrdPathGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldPrdPath, v))
}

// PrdPathGTE applies the GTE predicate on the "prd_path" field.
func PrdPathGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldPrdPath, v))
}

// PrdPathLT applies the LT predicate on the "prd_path" field.
func PrdPathLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldPrdPath, v))
}

// PrdPathLTE applies the LTE predicate on the "prd_path" field.
func PrdPathLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldPrdPath, v))
}

// PrdPathContains applies the Contains predicate on the "prd_path" field.
func PrdPathContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldPrdPath, v))
}

// PrdPathHasPrefix applies the HasPrefix predicate on the "prd_path" field.
func PrdPathHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldPrdPath, v))
}

// PrdPathHasSuffix applies the HasSuffix predicate on the "prd_path" field.
func PrdPathHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldPrdPath, v))
}

// PrdPathIsNil applies the IsNil predicate on the "prd_path" field.
func PrdPathIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldPrdPath))
}

// PrdPathNotNil applies the NotNil predicate on the "prd_path" field.
func PrdPathNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldPrdPath))
}

// PrdPathEqualFold applies the EqualFold predicate on the "prd_path" field.
func PrdPathEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldPrdPath, v))
}

// PrdPathContainsFold applies the ContainsFold predicate on the "prd_path" field.
func PrdPathContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldPrdPath, v))
}

// IssuePlanIsNil applies the IsNil predicate on the "issue_plan" field.
func IssuePlanIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldIssuePlan))
}

// IssuePlanNotNil applies the NotNil predicate on the "issue_plan" field.
func IssuePlanNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldIssuePlan))
}

// IssueRefsIsNil applies the IsNil predicate on the "issue_refs" field.
func IssueRefsIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldIssueRefs))
}

// IssueRefsNotNil applies the NotNil predicate on the "issue_refs" field.
func IssueRefsNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldIssueRefs))
}

// PrURLEQ applies the EQ predicate on the "pr_url" field.
func PrURLEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPrURL, v))
}

// PrURLNEQ applies the NEQ predicate on the "pr_url" field.
func PrURLNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldPrURL, v))
}

// PrURLIn applies the In predicate on the "pr_url" field.
func PrURLIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldPrURL, vs...))
}

// PrURLNotIn applies the NotIn predicate on the "pr_url" field.
func PrURLNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldPrURL, vs...))
}

// PrURLGT applies the GT predicate on the "pr_url" field.
func PrURLGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldPrURL, v))
}

// PrURLGTE applies the GTE predicate on the "pr_url" field.
func PrURLGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldPrURL, v))
}

// PrURLLT applies the LT predicate on the "pr_url" field.
func PrURLLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldPrURL, v))
}

// PrURLLTE applies the LTE predicate on the "pr_url" field.
func PrURLLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldPrURL, v))
}

// PrURLContains applies the Contains predicate on the "pr_url" field.
func PrURLContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldPrURL, v))
}

// PrURLHasPrefix applies the HasPrefix predicate on the "pr_url" field.
func PrURLHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldPrURL, v))
}

// PrURLHasSuffix applies the HasSuffix predicate on the "pr_url" field.
func PrURLHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldPrURL, v))
}

// PrURLIsNil applies the IsNil predicate on the "pr_url" field.
func PrURLIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldPrURL))
}

// PrURLNotNil applies the NotNil predicate on the "pr_url" field.
func PrURLNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldPrURL))
}

// PrURLEqualFold applies the EqualFold predicate on the "pr_url" field.
func PrURLEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldPrURL, v))
}

// PrURLContainsFold applies the ContainsFold predicate on the "pr_url" field.
func PrURLContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldPrURL, v))
}

// PlanAgentIDEQ applies the EQ predicate on the "plan_agent_id" field.
func PlanAgentIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPlanAgentID, v))
}

// PlanAgentIDNEQ applies the NEQ predicate on the "plan_agent_id" field.
func PlanAgentIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldPlanAgentID, v))
}

// PlanAgentIDIn applies the In predicate on the "plan_agent_id" field.
func PlanAgentIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldPlanAgentID, vs...))
}

// PlanAgentIDNotIn applies the NotIn predicate on the "plan_agent_id" field.
func PlanAgentIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldPlanAgentID, vs...))
}

// PlanAgentIDGT applies the GT predicate on the "plan_agent_id" field.
func PlanAgentIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldPlanAgentID, v))
}

// PlanAgentIDGTE applies the GTE predicate on the "plan_agent_id" field.
func PlanAgentIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldPlanAgentID, v))
}

// PlanAgentIDLT applies the LT predicate on the "plan_agent_id" field.
func PlanAgentIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldPlanAgentID, v))
}

// PlanAgentIDLTE applies the LTE predicate on the "plan_agent_id" field.
func PlanAgentIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldPlanAgentID, v))
}

// PlanAgentIDContains applies the Contains predicate on the "plan_agent_id" field.
func PlanAgentIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldPlanAgentID, v))
}

// PlanAgentIDHasPrefix applies the HasPrefix predicate on the "plan_agent_id" field.
func PlanAgentIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldPlanAgentID, v))
}

// PlanAgentIDHasSuffix applies the HasSuffix predicate on the "plan_agent_id" field.
func PlanAgentIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldPlanAgentID, v))
}

// PlanAgentIDIsNil applies the IsNil predicate on the "plan_agent_id" field.
func PlanAgentIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldPlanAgentID))
}

// PlanAgentIDNotNil applies the NotNil predicate on the "plan_agent_id" field.
func PlanAgentIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldPlanAgentID))
}

// PlanAgentIDEqualFold applies the EqualFold predicate on the "plan_agent_id" field.
func PlanAgentIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldPlanAgentID, v))
}

// PlanAgentIDContainsFold applies the ContainsFold predicate on the "plan_agent_id" field.
func PlanAgentIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldPlanAgentID, v))
}

// BuildAgentIDEQ applies the EQ predicate on the "build_agent_id" field.
func BuildAgentIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBuildAgentID, v))
}

// BuildAgentIDNEQ applies the NEQ predicate on the "build_agent_id" field.
func BuildAgentIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBuildAgentID, v))
}

// BuildAgentIDIn applies the In predicate on the "build_agent_id" field.
func BuildAgentIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBuildAgentID, vs...))
}

// BuildAgentIDNotIn applies the NotIn predicate on the "build_agent_id" field.
func BuildAgentIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBuildAgentID, vs...))
}

// BuildAgentIDGT applies the GT predicate on the "build_agent_id" field.
func BuildAgentIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBuildAgentID, v))
}

// BuildAgentIDGTE applies the GTE predicate on the "build_agent_id" field.
func BuildAgentIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBuildAgentID, v))
}

// BuildAgentIDLT applies the LT predicate on the "build_agent_id" field.
func BuildAgentIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBuildAgentID, v))
}

// BuildAgentIDLTE applies the LTE predicate on the "build_agent_id" field.
func BuildAgentIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBuildAgentID, v))
}

// BuildAgentIDContains applies the Contains predicate on the "build_agent_id" field.
func BuildAgentIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBuildAgentID, v))
}

// BuildAgentIDHasPrefix applies the HasPrefix predicate on the "build_agent_id" field.
func BuildAgentIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBuildAgentID, v))
}

// BuildAgentIDHasSuffix applies the HasSuffix predicate on the "build_agent_id" field.
func BuildAgentIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBuildAgentID, v))
}

// BuildAgentIDIsNil applies the IsNil predicate on the "build_agent_id" field.
func BuildAgentIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldBuildAgentID))
}

// BuildAgentIDNotNil applies the NotNil predicate on the "build_agent_id" field.
func BuildAgentIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldBuildAgentID))
}

// BuildAgentIDEqualFold applies the EqualFold predicate on the "build_agent_id" field.
func BuildAgentIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBuildAgentID, v))
}

// BuildAgentIDContainsFold applies the ContainsFold predicate on the "build_agent_id" field.
func BuildAgentIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBuildAgentID, v))
}

// ReviewAgentIDEQ applies the EQ predicate on the "review_agent_id" field.
func ReviewAgentIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldReviewAgentID, v))
}

// ReviewAgentIDNEQ applies the NEQ predicate on the "review_agent_id" field.
func ReviewAgentIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldReviewAgentID, v))
}

// ReviewAgentIDIn applies the In predicate on the "review_agent_id" field.
func ReviewAgentIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldReviewAgentID, vs...))
}

// ReviewAgentIDNotIn applies the NotIn predicate on the "review_agent_id" field.
func ReviewAgentIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldReviewAgentID, vs...))
}

// ReviewAgentIDGT applies the GT predicate on the "review_agent_id" field.
func ReviewAgentIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldReviewAgentID, v))
}

// ReviewAgentIDGTE applies the GTE predicate on the "review_agent_id" field.
func ReviewAgentIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldReviewAgentID, v))
}

// ReviewAgentIDLT applies the LT predicate on the "review_agent_id" field.
func ReviewAgentIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldReviewAgentID, v))
}

// ReviewAgentIDLTE applies the LTE predicate on the "review_agent_id" field.
func ReviewAgentIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldReviewAgentID, v))
}

// ReviewAgentIDContains applies the Contains predicate on the "review_agent_id" field.
func ReviewAgentIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldReviewAgentID, v))
}

// ReviewAgentIDHasPrefix applies the HasPrefix predicate on the "review_agent_id" field.
func ReviewAgentIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldReviewAgentID, v))
}

// ReviewAgentIDHasSuffix applies the HasSuffix predicate on the "review_agent_id" field.
func ReviewAgentIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldReviewAgentID, v))
}

// ReviewAgentIDIsNil applies the IsNil predicate on the "review_agent_id" field.
func ReviewAgentIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldReviewAgentID))
}

// ReviewAgentIDNotNil applies the NotNil predicate on the "review_agent_id" field.
func ReviewAgentIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldReviewAgentID))
}

// ReviewAgentIDEqualFold applies the EqualFold predicate on the "review_agent_id" field.
func ReviewAgentIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldReviewAgentID, v))
}

// ReviewAgentIDContainsFold applies the ContainsFold predicate on the "review_agent_id" field.
func ReviewAgentIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldReviewAgentID, v))
}

// PlanSessionIDEQ applies the EQ predicate on the "plan_session_id" field.
func PlanSessionIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldPlanSessionID, v))
}

// PlanSessionIDNEQ applies the NEQ predicate on the "plan_session_id" field.
func PlanSessionIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldPlanSessionID, v))
}

// PlanSessionIDIn applies the In predicate on the "plan_session_id" field.
func PlanSessionIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldPlanSessionID, vs...))
}

// PlanSessionIDNotIn applies the NotIn predicate on the "plan_session_id" field.
func PlanSessionIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldPlanSessionID, vs...))
}

// PlanSessionIDGT applies the GT predicate on the "plan_session_id" field.
func PlanSessionIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldPlanSessionID, v))
}

// PlanSessionIDGTE applies the GTE predicate on the "plan_session_id" field.
func PlanSessionIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldPlanSessionID, v))
}

// PlanSessionIDLT applies the LT predicate on the "plan_session_id" field.
func PlanSessionIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldPlanSessionID, v))
}

// PlanSessionIDLTE applies the LTE predicate on the "plan_session_id" field.
func PlanSessionIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldPlanSessionID, v))
}

// PlanSessionIDContains applies the Contains predicate on the "plan_session_id" field.
func PlanSessionIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldPlanSessionID, v))
}

// PlanSessionIDHasPrefix applies the HasPrefix predicate on the "plan_session_id" field.
func PlanSessionIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldPlanSessionID, v))
}

// PlanSessionIDHasSuffix applies the HasSuffix predicate on the "plan_session_id" field.
func PlanSessionIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldPlanSessionID, v))
}

// PlanSessionIDIsNil applies the IsNil predicate on the "plan_session_id" field.
func PlanSessionIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldPlanSessionID))
}

// PlanSessionIDNotNil applies the NotNil predicate on the "plan_session_id" field.
func PlanSessionIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldPlanSessionID))
}

// PlanSessionIDEqualFold applies the EqualFold predicate on the "plan_session_id" field.
func PlanSessionIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldPlanSessionID, v))
}

// PlanSessionIDContainsFold applies the ContainsFold predicate on the "plan_session_id" field.
func PlanSessionIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldPlanSessionID, v))
}

// BuildSessionIDEQ applies the EQ predicate on the "build_session_id" field.
func BuildSessionIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBuildSessionID, v))
}

// BuildSessionIDNEQ applies the NEQ predicate on the "build_session_id" field.
func BuildSessionIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBuildSessionID, v))
}

// BuildSessionIDIn applies the In predicate on the "build_session_id" field.
func BuildSessionIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBuildSessionID, vs...))
}

// BuildSessionIDNotIn applies the NotIn predicate on the "build_session_id" field.
func BuildSessionIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBuildSessionID, vs...))
}

// BuildSessionIDGT applies the GT predicate on the "build_session_id" field.
func BuildSessionIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBuildSessionID, v))
}

// BuildSessionIDGTE applies the GTE predicate on the "build_session_id" field.
func BuildSessionIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBuildSessionID, v))
}

// BuildSessionIDLT applies the LT predicate on the "build_session_id" field.
func BuildSessionIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBuildSessionID, v))
}

// BuildSessionIDLTE applies the LTE predicate on the "build_session_id" field.
func BuildSessionIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBuildSessionID, v))
}

// BuildSessionIDContains applies the Contains predicate on the "build_session_id" field.
func BuildSessionIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBuildSessionID, v))
}

// BuildSessionIDHasPrefix applies the HasPrefix predicate on the "build_session_id" field.
func BuildSessionIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBuildSessionID, v))
}

// BuildSessionIDHasSuffix applies the HasSuffix predicate on the "build_session_id" field.
func BuildSessionIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBuildSessionID, v))
}

// BuildSessionIDIsNil applies the IsNil predicate on the "build_session_id" field.
func BuildSessionIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldBuildSessionID))
}

// BuildSessionIDNotNil applies the NotNil predicate on the "build_session_id" field.
func BuildSessionIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldBuildSessionID))
}

// BuildSessionIDEqualFold applies the EqualFold predicate on the "build_session_id" field.
func BuildSessionIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBuildSessionID, v))
}

// BuildSessionIDContainsFold applies the ContainsFold predicate on the "build_session_id" field.
func BuildSessionIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBuildSessionID, v))
}

// ReviewSessionIDEQ applies the EQ predicate on the "review_session_id" field.
func ReviewSessionIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldReviewSessionID, v))
}

// ReviewSessionIDNEQ applies the NEQ predicate on the "review_session_id" field.
func ReviewSessionIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldReviewSessionID, v))
}

// ReviewSessionIDIn applies the In predicate on the "review_session_id" field.
func ReviewSessionIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldReviewSessionID, vs...))
}

// ReviewSessionIDNotIn applies the NotIn predicate on the "review_session_id" field.
func ReviewSessionIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldReviewSessionID, vs...))
}

// ReviewSessionIDGT applies the GT predicate on the "review_session_id" field.
func ReviewSessionIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldReviewSessionID, v))
}

// ReviewSessionIDGTE applies the GTE predicate on the "review_session_id" field.
func ReviewSessionIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldReviewSessionID, v))
}

// ReviewSessionIDLT applies the LT predicate on the "review_session_id" field.
func ReviewSessionIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldReviewSessionID, v))
}

// ReviewSessionIDLTE applies the LTE predicate on the "review_session_id" field.
func ReviewSessionIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldReviewSessionID, v))
}

// ReviewSessionIDContains applies the Contains predicate on the "review_session_id" field.
func ReviewSessionIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldReviewSessionID, v))
}

// ReviewSessionIDHasPrefix applies the HasPrefix predicate on the "review_session_id" field.
func ReviewSessionIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldReviewSessionID, v))
}

// ReviewSessionIDHasSuffix applies the HasSuffix predicate on the "review_session_id" field.
func ReviewSessionIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldReviewSessionID, v))
}

// ReviewSessionIDIsNil applies the IsNil predicate on the "review_session_id" field.
func ReviewSessionIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldReviewSessionID))
}

// ReviewSessionIDNotNil applies the NotNil predicate on the "review_session_id" field.
func ReviewSessionIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldReviewSessionID))
}

// ReviewSessionIDEqualFold applies the EqualFold predicate on the "review_session_id" field.
func ReviewSessionIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldReviewSessionID, v))
}

// ReviewSessionIDContainsFold applies the ContainsFold predicate on the "review_session_id" field.
func ReviewSessionIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldReviewSessionID, v))
}

// BuildWorktreeNameEQ applies the EQ predicate on the "build_worktree_name" field.
func BuildWorktreeNameEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBuildWorktreeName, v))
}

// BuildWorktreeNameNEQ applies the NEQ predicate on the "build_worktree_name" field.
func BuildWorktreeNameNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBuildWorktreeName, v))
}

// BuildWorktreeNameIn applies the In predicate on the "build_worktree_name" field.
func BuildWorktreeNameIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBuildWorktreeName, vs...))
}

// BuildWorktreeNameNotIn applies the NotIn predicate on the "build_worktree_name" field.
func BuildWorktreeNameNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBuildWorktreeName, vs...))
}

// BuildWorktreeNameGT applies the GT predicate on the "build_worktree_name" field.
func BuildWorktreeNameGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBuildWorktreeName, v))
}

// BuildWorktreeNameGTE applies the GTE predicate on the "build_worktree_name" field.
func BuildWorktreeNameGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBuildWorktreeName, v))
}

// BuildWorktreeNameLT applies the LT predicate on the "build_worktree_name" field.
func BuildWorktreeNameLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBuildWorktreeName, v))
}

// BuildWorktreeNameLTE applies the LTE predicate on the "build_worktree_name" field.
func BuildWorktreeNameLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBuildWorktreeName, v))
}

// BuildWorktreeNameContains applies the Contains predicate on the "build_worktree_name" field.
func BuildWorktreeNameContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBuildWorktreeName, v))
}

// BuildWorktreeNameHasPrefix applies the HasPrefix predicate on the "build_worktree_name" field.
func BuildWorktreeNameHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBuildWorktreeName, v))
}

// BuildWorktreeNameHasSuffix applies the HasSuffix predicate on the "build_worktree_name" field.
func BuildWorktreeNameHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBuildWorktreeName, v))
}

// BuildWorktreeNameIsNil applies the IsNil predicate on the "build_worktree_name" field.
func BuildWorktreeNameIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldBuildWorktreeName))
}

// BuildWorktreeNameNotNil applies the NotNil predicate on the "build_worktree_name" field.
func BuildWorktreeNameNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldBuildWorktreeName))
}

// BuildWorktreeNameEqualFold applies the EqualFold predicate on the "build_worktree_name" field.
func BuildWorktreeNameEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBuildWorktreeName, v))
}

// BuildWorktreeNameContainsFold applies the ContainsFold predicate on the "build_worktree_name" field.
func BuildWorktreeNameContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBuildWorktreeName, v))
}

// BuildWorktreePathEQ applies the EQ predicate on the "build_worktree_path" field.
func BuildWorktreePathEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBuildWorktreePath, v))
}

// BuildWorktreePathNEQ applies the NEQ predicate on the "build_worktree_path" field.
func BuildWorktreePathNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBuildWorktreePath, v))
}

// BuildWorktreePathIn applies the In predicate on the "build_worktree_path" field.
func BuildWorktreePathIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBuildWorktreePath, vs...))
}

// BuildWorktreePathNotIn applies the NotIn predicate on the "build_worktree_path" field.
func BuildWorktreePathNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBuildWorktreePath, vs...))
}

// BuildWorktreePathGT applies the GT predicate on the "build_worktree_path" field.
func BuildWorktreePathGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBuildWorktreePath, v))
}

// BuildWorktreePathGTE applies the GTE predicate on the "build_worktree_path" field.
func BuildWorktreePathGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBuildWorktreePath, v))
}

// BuildWorktreePathLT applies the LT predicate on the "build_worktree_path" field.
func BuildWorktreePathLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBuildWorktreePath, v))
}

// BuildWorktreePathLTE applies the LTE predicate on the "build_worktree_path" field.
func BuildWorktreePathLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBuildWorktreePath, v))
}

// BuildWorktreePathContains applies the Contains predicate on the "build_worktree_path" field.
func BuildWorktreePathContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBuildWorktreePath, v))
}

// BuildWorktreePathHasPrefix applies the HasPrefix predicate on the "build_worktree_path" field.
func BuildWorktreePathHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBuildWorktreePath, v))
}

// BuildWorktreePathHasSuffix applies the HasSuffix predicate on the "build_worktree_path" field.
func BuildWorktreePathHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBuildWorktreePath, v))
}

// BuildWorktreePathIsNil applies the IsNil predicate on the "build_worktree_path" field.
func BuildWorktreePathIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldBuildWorktreePath))
}

// BuildWorktreePathNotNil applies the NotNil predicate on the "build_worktree_path" field.
func BuildWorktreePathNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldBuildWorktreePath))
}

// BuildWorktreePathEqualFold applies the EqualFold predicate on the "build_worktree_path" field.
func BuildWorktreePathEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBuildWorktreePath, v))
}

// BuildWorktreePathContainsFold applies the ContainsFold predicate on the "build_worktree_path" field.
func BuildWorktreePathContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBuildWorktreePath, v))
}

// BuildBranchEQ applies the EQ predicate on the "build_branch" field.
func BuildBranchEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBuildBranch, v))
}

// BuildBranchNEQ applies the NEQ predicate on the "build_branch" field.
func BuildBranchNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBuildBranch, v))
}

// BuildBranchIn applies the In predicate on the "build_branch" field.
func BuildBranchIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBuildBranch, vs...))
}

// BuildBranchNotIn applies the NotIn predicate on the "build_branch" field.
func BuildBranchNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBuildBranch, vs...))
}

// BuildBranchGT applies the GT predicate on the "build_branch" field.
func BuildBranchGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBuildBranch, v))
}

// BuildBranchGTE applies the GTE predicate on the "build_branch" field.
func BuildBranchGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBuildBranch, v))
}

// BuildBranchLT applies the LT predicate on the "build_branch" field.
func BuildBranchLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBuildBranch, v))
}

// BuildBranchLTE applies the LTE predicate on the "build_branch" field.
func BuildBranchLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBuildBranch, v))
}

// BuildBranchContains applies the Contains predicate on the "build_branch" field.
func BuildBranchContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBuildBranch, v))
}

// BuildBranchHasPrefix applies the HasPrefix predicate on the "build_branch" field.
func BuildBranchHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBuildBranch, v))
}

// BuildBranchHasSuffix applies the HasSuffix predicate on the "build_branch" field.
func BuildBranchHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBuildBranch, v))
}

// BuildBranchIsNil applies the IsNil predicate on the "build_branch" field.
func BuildBranchIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldBuildBranch))
}

// BuildBranchNotNil applies the NotNil predicate on the "build_branch" field.
func BuildBranchNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldBuildBranch))
}

// BuildBranchEqualFold applies the EqualFold predicate on the "build_branch" field.
func BuildBranchEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBuildBranch, v))
}

// BuildBranchContainsFold applies the ContainsFold predicate on the "build_branch" field.
func BuildBranchContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBuildBranch, v))
}

// BaseBranchEQ applies the EQ predicate on the "base_branch" field.
func BaseBranchEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldBaseBranch, v))
}

// BaseBranchNEQ applies the NEQ predicate on the "base_branch" field.
func BaseBranchNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldBaseBranch, v))
}

// BaseBranchIn applies the In predicate on the "base_branch" field.
func BaseBranchIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldBaseBranch, vs...))
}

// BaseBranchNotIn applies the NotIn predicate on the "base_branch" field.
func BaseBranchNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldBaseBranch, vs...))
}

// BaseBranchGT applies the GT predicate on the "base_branch" field.
func BaseBranchGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldBaseBranch, v))
}

// BaseBranchGTE applies the GTE predicate on the "base_branch" field.
func BaseBranchGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldBaseBranch, v))
}

// BaseBranchLT applies the LT predicate on the "base_branch" field.
func BaseBranchLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldBaseBranch, v))
}

// BaseBranchLTE applies the LTE predicate on the "base_branch" field.
func BaseBranchLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldBaseBranch, v))
}

// BaseBranchContains applies the Contains predicate on the "base_branch" field.
func BaseBranchContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldBaseBranch, v))
}

// BaseBranchHasPrefix applies the HasPrefix predicate on the "base_branch" field.
func BaseBranchHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldBaseBranch, v))
}

// BaseBranchHasSuffix applies the HasSuffix predicate on the "base_branch" field.
func BaseBranchHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldBaseBranch, v))
}

// BaseBranchIsNil applies the IsNil predicate on the "base_branch" field.
func BaseBranchIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldBaseBranch))
}

// BaseBranchNotNil applies the NotNil predicate on the "base_branch" field.
func BaseBranchNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldBaseBranch))
}

// BaseBranchEqualFold applies the EqualFold predicate on the "base_branch" field.
func BaseBranchEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldBaseBranch, v))
}

// BaseBranchContainsFold applies the ContainsFold predicate on the "base_branch" field.
func BaseBranchContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldBaseBranch, v))
}

// AiReviewIsNil applies the IsNil predicate on the "ai_review" field.
func AiReviewIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldAiReview))
}

// AiReviewNotNil applies the NotNil predicate on the "ai_review" field.
func AiReviewNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldAiReview))
}

// AiReviewSessionIDEQ applies the EQ predicate on the "ai_review_session_id" field.
func AiReviewSessionIDEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldAiReviewSessionID, v))
}

// AiReviewSessionIDNEQ applies the NEQ predicate on the "ai_review_session_id" field.
func AiReviewSessionIDNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldAiReviewSessionID, v))
}

// AiReviewSessionIDIn applies the In predicate on the "ai_review_session_id" field.
func AiReviewSessionIDIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldAiReviewSessionID, vs...))
}

// AiReviewSessionIDNotIn applies the NotIn predicate on the "ai_review_session_id" field.
func AiReviewSessionIDNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldAiReviewSessionID, vs...))
}

// AiReviewSessionIDGT applies the GT predicate on the "ai_review_session_id" field.
func AiReviewSessionIDGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldAiReviewSessionID, v))
}

// AiReviewSessionIDGTE applies the GTE predicate on the "ai_review_session_id" field.
func AiReviewSessionIDGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldAiReviewSessionID, v))
}

// AiReviewSessionIDLT applies the LT predicate on the "ai_review_session_id" field.
func AiReviewSessionIDLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldAiReviewSessionID, v))
}

// AiReviewSessionIDLTE applies the LTE predicate on the "ai_review_session_id" field.
func AiReviewSessionIDLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldAiReviewSessionID, v))
}

// AiReviewSessionIDContains applies the Contains predicate on the "ai_review_session_id" field.
func AiReviewSessionIDContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldAiReviewSessionID, v))
}

// AiReviewSessionIDHasPrefix applies the HasPrefix predicate on the "ai_review_session_id" field.
func AiReviewSessionIDHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldAiReviewSessionID, v))
}

// AiReviewSessionIDHasSuffix applies the HasSuffix predicate on the "ai_review_session_id" field.
func AiReviewSessionIDHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldAiReviewSessionID, v))
}

// AiReviewSessionIDIsNil applies the IsNil predicate on the "ai_review_session_id" field.
func AiReviewSessionIDIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldAiReviewSessionID))
}

// AiReviewSessionIDNotNil applies the NotNil predicate on the "ai_review_session_id" field.
func AiReviewSessionIDNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldAiReviewSessionID))
}

// AiReviewSessionIDEqualFold applies the EqualFold predicate on the "ai_review_session_id" field.
func AiReviewSessionIDEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldAiReviewSessionID, v))
}

// AiReviewSessionIDContainsFold applies the ContainsFold predicate on the "ai_review_session_id" field.
func AiReviewSessionIDContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldAiReviewSessionID, v))
}

// HumanReviewStatusEQ applies the EQ predicate on the "human_review_status" field.
func HumanReviewStatusEQ(v HumanReviewStatus) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldHumanReviewStatus, v))
}

// HumanReviewStatusNEQ applies the NEQ predicate on the "human_review_status" field.
func HumanReviewStatusNEQ(v HumanReviewStatus) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldHumanReviewStatus, v))
}

// HumanReviewStatusIn applies the In predicate on the "human_review_status" field.
func HumanReviewStatusIn(vs ...HumanReviewStatus) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldHumanReviewStatus, vs...))
}

// HumanReviewStatusNotIn applies the NotIn predicate on the "human_review_status" field.
func HumanReviewStatusNotIn(vs ...HumanReviewStatus) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldHumanReviewStatus, vs...))
}

// HumanReviewStatusIsNil applies the IsNil predicate on the "human_review_status" field.
func HumanReviewStatusIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldHumanReviewStatus))
}

// HumanReviewStatusNotNil applies the NotNil predicate on the "human_review_status" field.
func HumanReviewStatusNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldHumanReviewStatus))
}

// HumanReviewFeedbackEQ applies the EQ predicate on the "human_review_feedback" field.
func HumanReviewFeedbackEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldHumanReviewFeedback, v))
}

// HumanReviewFeedbackNEQ applies the NEQ predicate on the "human_review_feedback" field.
func HumanReviewFeedbackNEQ(v string) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldHumanReviewFeedback, v))
}

// HumanReviewFeedbackIn applies the In predicate on the "human_review_feedback" field.
func HumanReviewFeedbackIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldHumanReviewFeedback, vs...))
}

// HumanReviewFeedbackNotIn applies the NotIn predicate on the "human_review_feedback" field.
func HumanReviewFeedbackNotIn(vs ...string) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldHumanReviewFeedback, vs...))
}

// HumanReviewFeedbackGT applies the GT predicate on the "human_review_feedback" field.
func HumanReviewFeedbackGT(v string) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldHumanReviewFeedback, v))
}

// HumanReviewFeedbackGTE applies the GTE predicate on the "human_review_feedback" field.
func HumanReviewFeedbackGTE(v string) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldHumanReviewFeedback, v))
}

// HumanReviewFeedbackLT applies the LT predicate on the "human_review_feedback" field.
func HumanReviewFeedbackLT(v string) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldHumanReviewFeedback, v))
}

// HumanReviewFeedbackLTE applies the LTE predicate on the "human_review_feedback" field.
func HumanReviewFeedbackLTE(v string) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldHumanReviewFeedback, v))
}

// HumanReviewFeedbackContains applies the Contains predicate on the "human_review_feedback" field.
func HumanReviewFeedbackContains(v string) predicate.Card {
	return predicate.Card(sql.FieldContains(FieldHumanReviewFeedback, v))
}

// HumanReviewFeedbackHasPrefix applies the HasPrefix predicate on the "human_review_feedback" field.
func HumanReviewFeedbackHasPrefix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasPrefix(FieldHumanReviewFeedback, v))
}

// HumanReviewFeedbackHasSuffix applies the HasSuffix predicate on the "human_review_feedback" field.
func HumanReviewFeedbackHasSuffix(v string) predicate.Card {
	return predicate.Card(sql.FieldHasSuffix(FieldHumanReviewFeedback, v))
}

// HumanReviewFeedbackIsNil applies the IsNil predicate on the "human_review_feedback" field.
func HumanReviewFeedbackIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldHumanReviewFeedback))
}

// HumanReviewFeedbackNotNil applies the NotNil predicate on the "human_review_feedback" field.
func HumanReviewFeedbackNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldHumanReviewFeedback))
}

// HumanReviewFeedbackEqualFold applies the EqualFold predicate on the "human_review_feedback" field.
func HumanReviewFeedbackEqualFold(v string) predicate.Card {
	return predicate.Card(sql.FieldEqualFold(FieldHumanReviewFeedback, v))
}

// HumanReviewFeedbackContainsFold applies the ContainsFold predicate on the "human_review_feedback" field.
func HumanReviewFeedbackContainsFold(v string) predicate.Card {
	return predicate.Card(sql.FieldContainsFold(FieldHumanReviewFeedback, v))
}

// HumanReviewedAtEQ applies the EQ predicate on the "human_reviewed_at" field.
func HumanReviewedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldHumanReviewedAt, v))
}

// HumanReviewedAtNEQ applies the NEQ predicate on the "human_reviewed_at" field.
func HumanReviewedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldHumanReviewedAt, v))
}

// HumanReviewedAtIn applies the In predicate on the "human_reviewed_at" field.
func HumanReviewedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldHumanReviewedAt, vs...))
}

// HumanReviewedAtNotIn applies the NotIn predicate on the "human_reviewed_at" field.
func HumanReviewedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldHumanReviewedAt, vs...))
}

// HumanReviewedAtGT applies the GT predicate on the "human_reviewed_at" field.
func HumanReviewedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldHumanReviewedAt, v))
}

// HumanReviewedAtGTE applies the GTE predicate on the "human_reviewed_at" field.
func HumanReviewedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldHumanReviewedAt, v))
}

// HumanReviewedAtLT applies the LT predicate on the "human_reviewed_at" field.
func HumanReviewedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldHumanReviewedAt, v))
}

// HumanReviewedAtLTE applies the LTE predicate on the "human_reviewed_at" field.
func HumanReviewedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldHumanReviewedAt, v))
}

// HumanReviewedAtIsNil applies the IsNil predicate on the "human_reviewed_at" field.
func HumanReviewedAtIsNil() predicate.Card {
	return predicate.Card(sql.FieldIsNull(FieldHumanReviewedAt))
}

// HumanReviewedAtNotNil applies the NotNil predicate on the "human_reviewed_at" field.
func HumanReviewedAtNotNil() predicate.Card {
	return predicate.Card(sql.FieldNotNull(FieldHumanReviewedAt))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Card {
	return predicate.Card(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Card {
	return predicate.Card(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSquad applies the HasEdge predicate on the "squad" edge.
func HasSquad() predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SquadTable, SquadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSquadWith applies the HasEdge predicate on the "squad" edge with a given conditions (other predicates).
func HasSquadWith(preds ...predicate.Squad) predicate.Card {
	return predicate.Card(func(s *sql.Selector) {
		step := newSquadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Card) predicate.Card {
	return predicate.Card(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Card) predicate.Card {
	return predicate.Card(sql.NotPredicates(p))
}
