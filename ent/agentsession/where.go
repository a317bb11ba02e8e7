// Code generated by ent, DO NOT EDIT.

package agentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/buildsquads/squads/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldProjectID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldAgentID, v))
}

// BackendSessionID applies equality check predicate on the "backend_session_id" field. It's identical to BackendSessionIDEQ.
func BackendSessionID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldBackendSessionID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTitle, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldModel, v))
}

// TicketKey applies equality check predicate on the "ticket_key" field. It's identical to TicketKeyEQ.
func TicketKey(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTicketKey, v))
}

// WorktreePath applies equality check predicate on the "worktree_path" field. It's identical to WorktreePathEQ.
func WorktreePath(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorktreePath, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldBranch, v))
}

// BaseBranch applies equality check predicate on the "base_branch" field. It's identical to BaseBranchEQ.
func BaseBranch(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldBaseBranch, v))
}

// PendingPromptID applies equality check predicate on the "pending_prompt_id" field. It's identical to PendingPromptIDEQ.
func PendingPromptID(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldPendingPromptID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldErrorMessage, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldVersion, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldFinishedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldProjectID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldAgentID, v))
}

// BackendSessionIDEQ applies the EQ predicate on the "backend_session_id" field.
func BackendSessionIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldBackendSessionID, v))
}

// BackendSessionIDNEQ applies the NEQ predicate on the "backend_session_id" field.
func BackendSessionIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldBackendSessionID, v))
}

// BackendSessionIDIn applies the In predicate on the "backend_session_id" field.
func BackendSessionIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldBackendSessionID, vs...))
}

// BackendSessionIDNotIn applies the NotIn predicate on the "backend_session_id" field.
func BackendSessionIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldBackendSessionID, vs...))
}

// BackendSessionIDGT applies the GT predicate on the "backend_session_id" field.
func BackendSessionIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldBackendSessionID, v))
}

// BackendSessionIDGTE applies the GTE predicate on the "backend_session_id" field.
func BackendSessionIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldBackendSessionID, v))
}

// BackendSessionIDLT applies the LT predicate on the "backend_session_id" field.
func BackendSessionIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldBackendSessionID, v))
}

// BackendSessionIDLTE applies the LTE predicate on the "backend_session_id" field.
func BackendSessionIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldBackendSessionID, v))
}

// BackendSessionIDContains applies the Contains predicate on the "backend_session_id" field.
func BackendSessionIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldBackendSessionID, v))
}

// BackendSessionIDHasPrefix applies the HasPrefix predicate on the "backend_session_id" field.
func BackendSessionIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldBackendSessionID, v))
}

// BackendSessionIDHasSuffix applies the HasSuffix predicate on the "backend_session_id" field.
func BackendSessionIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldBackendSessionID, v))
}

// BackendSessionIDIsNil applies the IsNil predicate on the "backend_session_id" field.
func BackendSessionIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldBackendSessionID))
}

// BackendSessionIDNotNil applies the NotNil predicate on the "backend_session_id" field.
func BackendSessionIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldBackendSessionID))
}

// BackendSessionIDEqualFold applies the EqualFold predicate on the "backend_session_id" field.
func BackendSessionIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldBackendSessionID, v))
}

// BackendSessionIDContainsFold applies the ContainsFold predicate on the "backend_session_id" field.
func BackendSessionIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldBackendSessionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldStatus, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldTitle, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldModel, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldMode, vs...))
}

// TicketKeyEQ applies the EQ predicate on the "ticket_key" field.
func TicketKeyEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldTicketKey, v))
}

// TicketKeyNEQ applies the NEQ predicate on the "ticket_key" field.
func TicketKeyNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldTicketKey, v))
}

// TicketKeyIn applies the In predicate on the "ticket_key" field.
func TicketKeyIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldTicketKey, vs...))
}

// TicketKeyNotIn applies the NotIn predicate on the "ticket_key" field.
func TicketKeyNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldTicketKey, vs...))
}

// TicketKeyGT applies the GT predicate on the "ticket_key" field.
func TicketKeyGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldTicketKey, v))
}

// TicketKeyGTE applies the GTE predicate on the "ticket_key" field.
func TicketKeyGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldTicketKey, v))
}

// TicketKeyLT applies the LT predicate on the "ticket_key" field.
func TicketKeyLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldTicketKey, v))
}

// TicketKeyLTE applies the LTE predicate on the "ticket_key" field.
func TicketKeyLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldTicketKey, v))
}

// TicketKeyContains applies the Contains predicate on the "ticket_key" field.
func TicketKeyContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldTicketKey, v))
}

// TicketKeyHasPrefix applies the HasPrefix predicate on the "ticket_key" field.
func TicketKeyHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldTicketKey, v))
}

// TicketKeyHasSuffix applies the HasSuffix predicate on the "ticket_key" field.
func TicketKeyHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldTicketKey, v))
}

// TicketKeyIsNil applies the IsNil predicate on the "ticket_key" field.
func TicketKeyIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldTicketKey))
}

// TicketKeyNotNil applies the NotNil predicate on the "ticket_key" field.
func TicketKeyNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldTicketKey))
}

// TicketKeyEqualFold applies the EqualFold predicate on the "ticket_key" field.
func TicketKeyEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldTicketKey, v))
}

// TicketKeyContainsFold applies the ContainsFold predicate on the "ticket_key" field.
func TicketKeyContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldTicketKey, v))
}

// WorktreePathEQ applies the EQ predicate on the "worktree_path" field.
func WorktreePathEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldWorktreePath, v))
}

// WorktreePathNEQ applies the NEQ predicate on the "worktree_path" field.
func WorktreePathNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldWorktreePath, v))
}

// WorktreePathIn applies the In predicate on the "worktree_path" field.
func WorktreePathIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldWorktreePath, vs...))
}

// WorktreePathNotIn applies the NotIn predicate on the "worktree_path" field.
func WorktreePathNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldWorktreePath, vs...))
}

// WorktreePathGT applies the GT predicate on the "worktree_path" field.
func WorktreePathGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldWorktreePath, v))
}

// WorktreePathGTE applies the GTE predicate on the "worktree_path" field.
func WorktreePathGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldWorktreePath, v))
}

// WorktreePathLT applies the LT predicate on the "worktree_path" field.
func WorktreePathLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldWorktreePath, v))
}

// WorktreePathLTE applies the LTE predicate on the "worktree_path" field.
func WorktreePathLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldWorktreePath, v))
}

// WorktreePathContains applies the Contains predicate on the "worktree_path" field.
func WorktreePathContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldWorktreePath, v))
}

// WorktreePathHasPrefix applies the HasPrefix predicate on the "worktree_path" field.
func WorktreePathHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldWorktreePath, v))
}

// WorktreePathHasSuffix applies the HasSuffix predicate on the "worktree_path" field.
func WorktreePathHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldWorktreePath, v))
}

// WorktreePathIsNil applies the IsNil predicate on the "worktree_path" field.
func WorktreePathIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldWorktreePath))
}

// WorktreePathNotNil applies the NotNil predicate on the "worktree_path" field.
func WorktreePathNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldWorktreePath))
}

// WorktreePathEqualFold applies the EqualFold predicate on the "worktree_path" field.
func WorktreePathEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldWorktreePath, v))
}

// WorktreePathContainsFold applies the ContainsFold predicate on the "worktree_path" field.
func WorktreePathContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldWorktreePath, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchIsNil applies the IsNil predicate on the "branch" field.
func BranchIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldBranch))
}

// BranchNotNil applies the NotNil predicate on the "branch" field.
func BranchNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldBranch))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldBranch, v))
}

// BaseBranchEQ applies the EQ predicate on the "base_branch" field.
func BaseBranchEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldBaseBranch, v))
}

// BaseBranchNEQ applies the NEQ predicate on the "base_branch" field.
func BaseBranchNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldBaseBranch, v))
}

// BaseBranchIn applies the In predicate on the "base_branch" field.
func BaseBranchIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldBaseBranch, vs...))
}

// BaseBranchNotIn applies the NotIn predicate on the "base_branch" field.
func BaseBranchNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldBaseBranch, vs...))
}

// BaseBranchGT applies the GT predicate on the "base_branch" field.
func BaseBranchGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldBaseBranch, v))
}

// BaseBranchGTE applies the GTE predicate on the "base_branch" field.
func BaseBranchGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldBaseBranch, v))
}

// BaseBranchLT applies the LT predicate on the "base_branch" field.
func BaseBranchLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldBaseBranch, v))
}

// BaseBranchLTE applies the LTE predicate on the "base_branch" field.
func BaseBranchLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldBaseBranch, v))
}

// BaseBranchContains applies the Contains predicate on the "base_branch" field.
func BaseBranchContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldBaseBranch, v))
}

// BaseBranchHasPrefix applies the HasPrefix predicate on the "base_branch" field.
func BaseBranchHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldBaseBranch, v))
}

// BaseBranchHasSuffix applies the HasSuffix predicate on the "base_branch" field.
func BaseBranchHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldBaseBranch, v))
}

// BaseBranchIsNil applies the IsNil predicate on the "base_branch" field.
func BaseBranchIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldBaseBranch))
}

// BaseBranchNotNil applies the NotNil predicate on the "base_branch" field.
func BaseBranchNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldBaseBranch))
}

// BaseBranchEqualFold applies the EqualFold predicate on the "base_branch" field.
func BaseBranchEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldBaseBranch, v))
}

// BaseBranchContainsFold applies the ContainsFold predicate on the "base_branch" field.
func BaseBranchContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldBaseBranch, v))
}

// PendingPromptIDEQ applies the EQ predicate on the "pending_prompt_id" field.
func PendingPromptIDEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldPendingPromptID, v))
}

// PendingPromptIDNEQ applies the NEQ predicate on the "pending_prompt_id" field.
func PendingPromptIDNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldPendingPromptID, v))
}

// PendingPromptIDIn applies the In predicate on the "pending_prompt_id" field.
func PendingPromptIDIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldPendingPromptID, vs...))
}

// PendingPromptIDNotIn applies the NotIn predicate on the "pending_prompt_id" field.
func PendingPromptIDNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldPendingPromptID, vs...))
}

// PendingPromptIDGT applies the GT predicate on the "pending_prompt_id" field.
func PendingPromptIDGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldPendingPromptID, v))
}

// PendingPromptIDGTE applies the GTE predicate on the "pending_prompt_id" field.
func PendingPromptIDGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldPendingPromptID, v))
}

// PendingPromptIDLT applies the LT predicate on the "pending_prompt_id" field.
func PendingPromptIDLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldPendingPromptID, v))
}

// PendingPromptIDLTE applies the LTE predicate on the "pending_prompt_id" field.
func PendingPromptIDLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldPendingPromptID, v))
}

// PendingPromptIDContains applies the Contains predicate on the "pending_prompt_id" field.
func PendingPromptIDContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldPendingPromptID, v))
}

// PendingPromptIDHasPrefix applies the HasPrefix predicate on the "pending_prompt_id" field.
func PendingPromptIDHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldPendingPromptID, v))
}

// PendingPromptIDHasSuffix applies the HasSuffix predicate on the "pending_prompt_id" field.
func PendingPromptIDHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldPendingPromptID, v))
}

// PendingPromptIDIsNil applies the IsNil predicate on the "pending_prompt_id" field.
func PendingPromptIDIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldPendingPromptID))
}

// PendingPromptIDNotNil applies the NotNil predicate on the "pending_prompt_id" field.
func PendingPromptIDNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldPendingPromptID))
}

// PendingPromptIDEqualFold applies the EqualFold predicate on the "pending_prompt_id" field.
func PendingPromptIDEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldPendingPromptID, v))
}

// PendingPromptIDContainsFold applies the ContainsFold predicate on the "pending_prompt_id" field.
func PendingPromptIDContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldPendingPromptID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldMetadata))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldVersion, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotNull(FieldFinishedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentSession {
	return predicate.AgentSession(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTranscriptEntries applies the HasEdge predicate on the "transcript_entries" edge.
func HasTranscriptEntries() predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TranscriptEntriesTable, TranscriptEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptEntriesWith applies the HasEdge predicate on the "transcript_entries" edge with a given conditions (other predicates).
func HasTranscriptEntriesWith(preds ...predicate.TranscriptEntry) predicate.AgentSession {
	return predicate.AgentSession(func(s *sql.Selector) {
		step := newTranscriptEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentSession) predicate.AgentSession {
	return predicate.AgentSession(sql.NotPredicates(p))
}
