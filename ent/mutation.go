// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/buildsquads/squads/ent/agent"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/ent/event"
	"github.com/buildsquads/squads/ent/externalnode"
	"github.com/buildsquads/squads/ent/laneassignment"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/ent/predicate"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/squad"
	"github.com/buildsquads/squads/ent/transcriptentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent           = "Agent"
	TypeAgentSession    = "AgentSession"
	TypeCard            = "Card"
	TypeEvent           = "Event"
	TypeExternalNode    = "ExternalNode"
	TypeLaneAssignment  = "LaneAssignment"
	TypeMCPServer       = "MCPServer"
	TypeProject         = "Project"
	TypeSquad           = "Squad"
	TypeTranscriptEntry = "TranscriptEntry"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	slug               *string
	role               *string
	level              *agent.Level
	system_instruction *string
	model              *string
	status             *agent.Status
	mentor_id          *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	squad              *string
	clearedsquad       bool
	sessions           map[string]struct{}
	removedsessions    map[string]struct{}
	clearedsessions    bool
	done               bool
	oldValue           func(context.Context) (*Agent, error)
	predicates         []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSquadID sets the "squad_id" field.
func (m *AgentMutation) SetSquadID(s string) {
	m.squad = &s
}

// SquadID returns the value of the "squad_id" field in the mutation.
func (m *AgentMutation) SquadID() (r string, exists bool) {
	v := m.squad
	if v == nil {
		return
	}
	return *v, true
}

// OldSquadID returns the old "squad_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSquadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSquadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSquadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSquadID: %w", err)
	}
	return oldValue.SquadID, nil
}

// ResetSquadID resets all changes to the "squad_id" field.
func (m *AgentMutation) ResetSquadID() {
	m.squad = nil
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *AgentMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *AgentMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *AgentMutation) ResetSlug() {
	m.slug = nil
}

// SetRole sets the "role" field.
func (m *AgentMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentMutation) ResetRole() {
	m.role = nil
}

// SetLevel sets the "level" field.
func (m *AgentMutation) SetLevel(a agent.Level) {
	m.level = &a
}

// Level returns the value of the "level" field in the mutation.
func (m *AgentMutation) Level() (r agent.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLevel(ctx context.Context) (v agent.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *AgentMutation) ResetLevel() {
	m.level = nil
}

// SetSystemInstruction sets the "system_instruction" field.
func (m *AgentMutation) SetSystemInstruction(s string) {
	m.system_instruction = &s
}

// SystemInstruction returns the value of the "system_instruction" field in the mutation.
func (m *AgentMutation) SystemInstruction() (r string, exists bool) {
	v := m.system_instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemInstruction returns the old "system_instruction" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldSystemInstruction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemInstruction: %w", err)
	}
	return oldValue.SystemInstruction, nil
}

// ClearSystemInstruction clears the value of the "system_instruction" field.
func (m *AgentMutation) ClearSystemInstruction() {
	m.system_instruction = nil
	m.clearedFields[agent.FieldSystemInstruction] = struct{}{}
}

// SystemInstructionCleared returns if the "system_instruction" field was cleared in this mutation.
func (m *AgentMutation) SystemInstructionCleared() bool {
	_, ok := m.clearedFields[agent.FieldSystemInstruction]
	return ok
}

// ResetSystemInstruction resets all changes to the "system_instruction" field.
func (m *AgentMutation) ResetSystemInstruction() {
	m.system_instruction = nil
	delete(m.clearedFields, agent.FieldSystemInstruction)
}

// SetModel sets the "model" field.
func (m *AgentMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AgentMutation) ClearModel() {
	m.model = nil
	m.clearedFields[agent.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AgentMutation) ModelCleared() bool {
	_, ok := m.clearedFields[agent.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AgentMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, agent.FieldModel)
}

// SetStatus sets the "status" field.
func (m *AgentMutation) SetStatus(a agent.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentMutation) Status() (r agent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldStatus(ctx context.Context) (v agent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentMutation) ResetStatus() {
	m.status = nil
}

// SetMentorID sets the "mentor_id" field.
func (m *AgentMutation) SetMentorID(s string) {
	m.mentor_id = &s
}

// MentorID returns the value of the "mentor_id" field in the mutation.
func (m *AgentMutation) MentorID() (r string, exists bool) {
	v := m.mentor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMentorID returns the old "mentor_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMentorID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentorID: %w", err)
	}
	return oldValue.MentorID, nil
}

// ClearMentorID clears the value of the "mentor_id" field.
func (m *AgentMutation) ClearMentorID() {
	m.mentor_id = nil
	m.clearedFields[agent.FieldMentorID] = struct{}{}
}

// MentorIDCleared returns if the "mentor_id" field was cleared in this mutation.
func (m *AgentMutation) MentorIDCleared() bool {
	_, ok := m.clearedFields[agent.FieldMentorID]
	return ok
}

// ResetMentorID resets all changes to the "mentor_id" field.
func (m *AgentMutation) ResetMentorID() {
	m.mentor_id = nil
	delete(m.clearedFields, agent.FieldMentorID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSquad clears the "squad" edge to the Squad entity.
func (m *AgentMutation) ClearSquad() {
	m.clearedsquad = true
	m.clearedFields[agent.FieldSquadID] = struct{}{}
}

// SquadCleared reports if the "squad" edge to the Squad entity was cleared.
func (m *AgentMutation) SquadCleared() bool {
	return m.clearedsquad
}

// SquadIDs returns the "squad" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SquadID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) SquadIDs() (ids []string) {
	if id := m.squad; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSquad resets all changes to the "squad" edge.
func (m *AgentMutation) ResetSquad() {
	m.squad = nil
	m.clearedsquad = false
}

// AddSessionIDs adds the "sessions" edge to the AgentSession entity by ids.
func (m *AgentMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AgentSession entity.
func (m *AgentMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AgentSession entity was cleared.
func (m *AgentMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AgentSession entity by IDs.
func (m *AgentMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AgentSession entity.
func (m *AgentMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *AgentMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *AgentMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.squad != nil {
		fields = append(fields, agent.FieldSquadID)
	}
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, agent.FieldSlug)
	}
	if m.role != nil {
		fields = append(fields, agent.FieldRole)
	}
	if m.level != nil {
		fields = append(fields, agent.FieldLevel)
	}
	if m.system_instruction != nil {
		fields = append(fields, agent.FieldSystemInstruction)
	}
	if m.model != nil {
		fields = append(fields, agent.FieldModel)
	}
	if m.status != nil {
		fields = append(fields, agent.FieldStatus)
	}
	if m.mentor_id != nil {
		fields = append(fields, agent.FieldMentorID)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldSquadID:
		return m.SquadID()
	case agent.FieldName:
		return m.Name()
	case agent.FieldSlug:
		return m.Slug()
	case agent.FieldRole:
		return m.Role()
	case agent.FieldLevel:
		return m.Level()
	case agent.FieldSystemInstruction:
		return m.SystemInstruction()
	case agent.FieldModel:
		return m.Model()
	case agent.FieldStatus:
		return m.Status()
	case agent.FieldMentorID:
		return m.MentorID()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldSquadID:
		return m.OldSquadID(ctx)
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldSlug:
		return m.OldSlug(ctx)
	case agent.FieldRole:
		return m.OldRole(ctx)
	case agent.FieldLevel:
		return m.OldLevel(ctx)
	case agent.FieldSystemInstruction:
		return m.OldSystemInstruction(ctx)
	case agent.FieldModel:
		return m.OldModel(ctx)
	case agent.FieldStatus:
		return m.OldStatus(ctx)
	case agent.FieldMentorID:
		return m.OldMentorID(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldSquadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSquadID(v)
		return nil
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case agent.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agent.FieldLevel:
		v, ok := value.(agent.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case agent.FieldSystemInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemInstruction(v)
		return nil
	case agent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agent.FieldStatus:
		v, ok := value.(agent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agent.FieldMentorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentorID(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldSystemInstruction) {
		fields = append(fields, agent.FieldSystemInstruction)
	}
	if m.FieldCleared(agent.FieldModel) {
		fields = append(fields, agent.FieldModel)
	}
	if m.FieldCleared(agent.FieldMentorID) {
		fields = append(fields, agent.FieldMentorID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldSystemInstruction:
		m.ClearSystemInstruction()
		return nil
	case agent.FieldModel:
		m.ClearModel()
		return nil
	case agent.FieldMentorID:
		m.ClearMentorID()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldSquadID:
		m.ResetSquadID()
		return nil
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldSlug:
		m.ResetSlug()
		return nil
	case agent.FieldRole:
		m.ResetRole()
		return nil
	case agent.FieldLevel:
		m.ResetLevel()
		return nil
	case agent.FieldSystemInstruction:
		m.ResetSystemInstruction()
		return nil
	case agent.FieldModel:
		m.ResetModel()
		return nil
	case agent.FieldStatus:
		m.ResetStatus()
		return nil
	case agent.FieldMentorID:
		m.ResetMentorID()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.squad != nil {
		edges = append(edges, agent.EdgeSquad)
	}
	if m.sessions != nil {
		edges = append(edges, agent.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeSquad:
		if id := m.squad; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsessions != nil {
		edges = append(edges, agent.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsquad {
		edges = append(edges, agent.EdgeSquad)
	}
	if m.clearedsessions {
		edges = append(edges, agent.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeSquad:
		return m.clearedsquad
	case agent.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeSquad:
		m.ClearSquad()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeSquad:
		m.ResetSquad()
		return nil
	case agent.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentSessionMutation represents an operation that mutates the AgentSession nodes in the graph.
type AgentSessionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	backend_session_id        *string
	status                    *agentsession.Status
	title                     *string
	model                     *string
	mode                      *agentsession.Mode
	ticket_key                *string
	worktree_path             *string
	branch                    *string
	base_branch               *string
	pending_prompt_id         *string
	error_message             *string
	metadata                  *map[string]interface{}
	version                   *int
	addversion                *int
	started_at                *time.Time
	finished_at               *time.Time
	created_at                *time.Time
	clearedFields             map[string]struct{}
	project                   *string
	clearedproject            bool
	agent                     *string
	clearedagent              bool
	transcript_entries        map[string]struct{}
	removedtranscript_entries map[string]struct{}
	clearedtranscript_entries bool
	done                      bool
	oldValue                  func(context.Context) (*AgentSession, error)
	predicates                []predicate.AgentSession
}

var _ ent.Mutation = (*AgentSessionMutation)(nil)

// agentsessionOption allows management of the mutation configuration using functional options.
type agentsessionOption func(*AgentSessionMutation)

// newAgentSessionMutation creates new mutation for the AgentSession entity.
func newAgentSessionMutation(c config, op Op, opts ...agentsessionOption) *AgentSessionMutation {
	m := &AgentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentSessionID sets the ID field of the mutation.
func withAgentSessionID(id string) agentsessionOption {
	return func(m *AgentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentSession
		)
		m.oldValue = func(ctx context.Context) (*AgentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentSession sets the old AgentSession of the mutation.
func withAgentSession(node *AgentSession) agentsessionOption {
	return func(m *AgentSessionMutation) {
		m.oldValue = func(context.Context) (*AgentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentSession entities.
func (m *AgentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *AgentSessionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AgentSessionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AgentSessionMutation) ResetProjectID() {
	m.project = nil
}

// SetAgentID sets the "agent_id" field.
func (m *AgentSessionMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentSessionMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentSessionMutation) ResetAgentID() {
	m.agent = nil
}

// SetBackendSessionID sets the "backend_session_id" field.
func (m *AgentSessionMutation) SetBackendSessionID(s string) {
	m.backend_session_id = &s
}

// BackendSessionID returns the value of the "backend_session_id" field in the mutation.
func (m *AgentSessionMutation) BackendSessionID() (r string, exists bool) {
	v := m.backend_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBackendSessionID returns the old "backend_session_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldBackendSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackendSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackendSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackendSessionID: %w", err)
	}
	return oldValue.BackendSessionID, nil
}

// ClearBackendSessionID clears the value of the "backend_session_id" field.
func (m *AgentSessionMutation) ClearBackendSessionID() {
	m.backend_session_id = nil
	m.clearedFields[agentsession.FieldBackendSessionID] = struct{}{}
}

// BackendSessionIDCleared returns if the "backend_session_id" field was cleared in this mutation.
func (m *AgentSessionMutation) BackendSessionIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldBackendSessionID]
	return ok
}

// ResetBackendSessionID resets all changes to the "backend_session_id" field.
func (m *AgentSessionMutation) ResetBackendSessionID() {
	m.backend_session_id = nil
	delete(m.clearedFields, agentsession.FieldBackendSessionID)
}

// SetStatus sets the "status" field.
func (m *AgentSessionMutation) SetStatus(a agentsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentSessionMutation) Status() (r agentsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStatus(ctx context.Context) (v agentsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentSessionMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *AgentSessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *AgentSessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *AgentSessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[agentsession.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *AgentSessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *AgentSessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, agentsession.FieldTitle)
}

// SetModel sets the "model" field.
func (m *AgentSessionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentSessionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AgentSessionMutation) ClearModel() {
	m.model = nil
	m.clearedFields[agentsession.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AgentSessionMutation) ModelCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AgentSessionMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, agentsession.FieldModel)
}

// SetMode sets the "mode" field.
func (m *AgentSessionMutation) SetMode(a agentsession.Mode) {
	m.mode = &a
}

// Mode returns the value of the "mode" field in the mutation.
func (m *AgentSessionMutation) Mode() (r agentsession.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldMode(ctx context.Context) (v agentsession.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *AgentSessionMutation) ResetMode() {
	m.mode = nil
}

// SetTicketKey sets the "ticket_key" field.
func (m *AgentSessionMutation) SetTicketKey(s string) {
	m.ticket_key = &s
}

// TicketKey returns the value of the "ticket_key" field in the mutation.
func (m *AgentSessionMutation) TicketKey() (r string, exists bool) {
	v := m.ticket_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketKey returns the old "ticket_key" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldTicketKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketKey: %w", err)
	}
	return oldValue.TicketKey, nil
}

// ClearTicketKey clears the value of the "ticket_key" field.
func (m *AgentSessionMutation) ClearTicketKey() {
	m.ticket_key = nil
	m.clearedFields[agentsession.FieldTicketKey] = struct{}{}
}

// TicketKeyCleared returns if the "ticket_key" field was cleared in this mutation.
func (m *AgentSessionMutation) TicketKeyCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldTicketKey]
	return ok
}

// ResetTicketKey resets all changes to the "ticket_key" field.
func (m *AgentSessionMutation) ResetTicketKey() {
	m.ticket_key = nil
	delete(m.clearedFields, agentsession.FieldTicketKey)
}

// SetWorktreePath sets the "worktree_path" field.
func (m *AgentSessionMutation) SetWorktreePath(s string) {
	m.worktree_path = &s
}

// WorktreePath returns the value of the "worktree_path" field in the mutation.
func (m *AgentSessionMutation) WorktreePath() (r string, exists bool) {
	v := m.worktree_path
	if v == nil {
		return
	}
	return *v, true
}

// OldWorktreePath returns the old "worktree_path" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldWorktreePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorktreePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorktreePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorktreePath: %w", err)
	}
	return oldValue.WorktreePath, nil
}

// ClearWorktreePath clears the value of the "worktree_path" field.
func (m *AgentSessionMutation) ClearWorktreePath() {
	m.worktree_path = nil
	m.clearedFields[agentsession.FieldWorktreePath] = struct{}{}
}

// WorktreePathCleared returns if the "worktree_path" field was cleared in this mutation.
func (m *AgentSessionMutation) WorktreePathCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldWorktreePath]
	return ok
}

// ResetWorktreePath resets all changes to the "worktree_path" field.
func (m *AgentSessionMutation) ResetWorktreePath() {
	m.worktree_path = nil
	delete(m.clearedFields, agentsession.FieldWorktreePath)
}

// SetBranch sets the "branch" field.
func (m *AgentSessionMutation) SetBranch(s string) {
	m.branch = &s
}

// Branch returns the value of the "branch" field in the mutation.
func (m *AgentSessionMutation) Branch() (r string, exists bool) {
	v := m.branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBranch returns the old "branch" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranch: %w", err)
	}
	return oldValue.Branch, nil
}

// ClearBranch clears the value of the "branch" field.
func (m *AgentSessionMutation) ClearBranch() {
	m.branch = nil
	m.clearedFields[agentsession.FieldBranch] = struct{}{}
}

// BranchCleared returns if the "branch" field was cleared in this mutation.
func (m *AgentSessionMutation) BranchCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldBranch]
	return ok
}

// ResetBranch resets all changes to the "branch" field.
func (m *AgentSessionMutation) ResetBranch() {
	m.branch = nil
	delete(m.clearedFields, agentsession.FieldBranch)
}

// SetBaseBranch sets the "base_branch" field.
func (m *AgentSessionMutation) SetBaseBranch(s string) {
	m.base_branch = &s
}

// BaseBranch returns the value of the "base_branch" field in the mutation.
func (m *AgentSessionMutation) BaseBranch() (r string, exists bool) {
	v := m.base_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseBranch returns the old "base_branch" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldBaseBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseBranch: %w", err)
	}
	return oldValue.BaseBranch, nil
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (m *AgentSessionMutation) ClearBaseBranch() {
	m.base_branch = nil
	m.clearedFields[agentsession.FieldBaseBranch] = struct{}{}
}

// BaseBranchCleared returns if the "base_branch" field was cleared in this mutation.
func (m *AgentSessionMutation) BaseBranchCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldBaseBranch]
	return ok
}

// ResetBaseBranch resets all changes to the "base_branch" field.
func (m *AgentSessionMutation) ResetBaseBranch() {
	m.base_branch = nil
	delete(m.clearedFields, agentsession.FieldBaseBranch)
}

// SetPendingPromptID sets the "pending_prompt_id" field.
func (m *AgentSessionMutation) SetPendingPromptID(s string) {
	m.pending_prompt_id = &s
}

// PendingPromptID returns the value of the "pending_prompt_id" field in the mutation.
func (m *AgentSessionMutation) PendingPromptID() (r string, exists bool) {
	v := m.pending_prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingPromptID returns the old "pending_prompt_id" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldPendingPromptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingPromptID: %w", err)
	}
	return oldValue.PendingPromptID, nil
}

// ClearPendingPromptID clears the value of the "pending_prompt_id" field.
func (m *AgentSessionMutation) ClearPendingPromptID() {
	m.pending_prompt_id = nil
	m.clearedFields[agentsession.FieldPendingPromptID] = struct{}{}
}

// PendingPromptIDCleared returns if the "pending_prompt_id" field was cleared in this mutation.
func (m *AgentSessionMutation) PendingPromptIDCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldPendingPromptID]
	return ok
}

// ResetPendingPromptID resets all changes to the "pending_prompt_id" field.
func (m *AgentSessionMutation) ResetPendingPromptID() {
	m.pending_prompt_id = nil
	delete(m.clearedFields, agentsession.FieldPendingPromptID)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentsession.FieldErrorMessage)
}

// SetMetadata sets the "metadata" field.
func (m *AgentSessionMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AgentSessionMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AgentSessionMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[agentsession.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AgentSessionMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AgentSessionMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, agentsession.FieldMetadata)
}

// SetVersion sets the "version" field.
func (m *AgentSessionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentSessionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AgentSessionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AgentSessionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentSessionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentsession.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *AgentSessionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *AgentSessionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *AgentSessionMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[agentsession.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *AgentSessionMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[agentsession.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *AgentSessionMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, agentsession.FieldFinishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentSession entity.
// If the AgentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *AgentSessionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[agentsession.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *AgentSessionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *AgentSessionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *AgentSessionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentSessionMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agentsession.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentSessionMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentSessionMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentSessionMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// AddTranscriptEntryIDs adds the "transcript_entries" edge to the TranscriptEntry entity by ids.
func (m *AgentSessionMutation) AddTranscriptEntryIDs(ids ...string) {
	if m.transcript_entries == nil {
		m.transcript_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.transcript_entries[ids[i]] = struct{}{}
	}
}

// ClearTranscriptEntries clears the "transcript_entries" edge to the TranscriptEntry entity.
func (m *AgentSessionMutation) ClearTranscriptEntries() {
	m.clearedtranscript_entries = true
}

// TranscriptEntriesCleared reports if the "transcript_entries" edge to the TranscriptEntry entity was cleared.
func (m *AgentSessionMutation) TranscriptEntriesCleared() bool {
	return m.clearedtranscript_entries
}

// RemoveTranscriptEntryIDs removes the "transcript_entries" edge to the TranscriptEntry entity by IDs.
func (m *AgentSessionMutation) RemoveTranscriptEntryIDs(ids ...string) {
	if m.removedtranscript_entries == nil {
		m.removedtranscript_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.transcript_entries, ids[i])
		m.removedtranscript_entries[ids[i]] = struct{}{}
	}
}

// RemovedTranscriptEntries returns the removed IDs of the "transcript_entries" edge to the TranscriptEntry entity.
func (m *AgentSessionMutation) RemovedTranscriptEntriesIDs() (ids []string) {
	for id := range m.removedtranscript_entries {
		ids = append(ids, id)
	}
	return
}

// TranscriptEntriesIDs returns the "transcript_entries" edge IDs in the mutation.
func (m *AgentSessionMutation) TranscriptEntriesIDs() (ids []string) {
	for id := range m.transcript_entries {
		ids = append(ids, id)
	}
	return
}

// ResetTranscriptEntries resets all changes to the "transcript_entries" edge.
func (m *AgentSessionMutation) ResetTranscriptEntries() {
	m.transcript_entries = nil
	m.clearedtranscript_entries = false
	m.removedtranscript_entries = nil
}

// Where appends a list predicates to the AgentSessionMutation builder.
func (m *AgentSessionMutation) Where(ps ...predicate.AgentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentSession).
func (m *AgentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentSessionMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.project != nil {
		fields = append(fields, agentsession.FieldProjectID)
	}
	if m.agent != nil {
		fields = append(fields, agentsession.FieldAgentID)
	}
	if m.backend_session_id != nil {
		fields = append(fields, agentsession.FieldBackendSessionID)
	}
	if m.status != nil {
		fields = append(fields, agentsession.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, agentsession.FieldTitle)
	}
	if m.model != nil {
		fields = append(fields, agentsession.FieldModel)
	}
	if m.mode != nil {
		fields = append(fields, agentsession.FieldMode)
	}
	if m.ticket_key != nil {
		fields = append(fields, agentsession.FieldTicketKey)
	}
	if m.worktree_path != nil {
		fields = append(fields, agentsession.FieldWorktreePath)
	}
	if m.branch != nil {
		fields = append(fields, agentsession.FieldBranch)
	}
	if m.base_branch != nil {
		fields = append(fields, agentsession.FieldBaseBranch)
	}
	if m.pending_prompt_id != nil {
		fields = append(fields, agentsession.FieldPendingPromptID)
	}
	if m.error_message != nil {
		fields = append(fields, agentsession.FieldErrorMessage)
	}
	if m.metadata != nil {
		fields = append(fields, agentsession.FieldMetadata)
	}
	if m.version != nil {
		fields = append(fields, agentsession.FieldVersion)
	}
	if m.started_at != nil {
		fields = append(fields, agentsession.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, agentsession.FieldFinishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, agentsession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldProjectID:
		return m.ProjectID()
	case agentsession.FieldAgentID:
		return m.AgentID()
	case agentsession.FieldBackendSessionID:
		return m.BackendSessionID()
	case agentsession.FieldStatus:
		return m.Status()
	case agentsession.FieldTitle:
		return m.Title()
	case agentsession.FieldModel:
		return m.Model()
	case agentsession.FieldMode:
		return m.Mode()
	case agentsession.FieldTicketKey:
		return m.TicketKey()
	case agentsession.FieldWorktreePath:
		return m.WorktreePath()
	case agentsession.FieldBranch:
		return m.Branch()
	case agentsession.FieldBaseBranch:
		return m.BaseBranch()
	case agentsession.FieldPendingPromptID:
		return m.PendingPromptID()
	case agentsession.FieldErrorMessage:
		return m.ErrorMessage()
	case agentsession.FieldMetadata:
		return m.Metadata()
	case agentsession.FieldVersion:
		return m.Version()
	case agentsession.FieldStartedAt:
		return m.StartedAt()
	case agentsession.FieldFinishedAt:
		return m.FinishedAt()
	case agentsession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentsession.FieldProjectID:
		return m.OldProjectID(ctx)
	case agentsession.FieldAgentID:
		return m.OldAgentID(ctx)
	case agentsession.FieldBackendSessionID:
		return m.OldBackendSessionID(ctx)
	case agentsession.FieldStatus:
		return m.OldStatus(ctx)
	case agentsession.FieldTitle:
		return m.OldTitle(ctx)
	case agentsession.FieldModel:
		return m.OldModel(ctx)
	case agentsession.FieldMode:
		return m.OldMode(ctx)
	case agentsession.FieldTicketKey:
		return m.OldTicketKey(ctx)
	case agentsession.FieldWorktreePath:
		return m.OldWorktreePath(ctx)
	case agentsession.FieldBranch:
		return m.OldBranch(ctx)
	case agentsession.FieldBaseBranch:
		return m.OldBaseBranch(ctx)
	case agentsession.FieldPendingPromptID:
		return m.OldPendingPromptID(ctx)
	case agentsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentsession.FieldMetadata:
		return m.OldMetadata(ctx)
	case agentsession.FieldVersion:
		return m.OldVersion(ctx)
	case agentsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentsession.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case agentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case agentsession.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agentsession.FieldBackendSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackendSessionID(v)
		return nil
	case agentsession.FieldStatus:
		v, ok := value.(agentsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentsession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case agentsession.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agentsession.FieldMode:
		v, ok := value.(agentsession.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case agentsession.FieldTicketKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketKey(v)
		return nil
	case agentsession.FieldWorktreePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorktreePath(v)
		return nil
	case agentsession.FieldBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranch(v)
		return nil
	case agentsession.FieldBaseBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseBranch(v)
		return nil
	case agentsession.FieldPendingPromptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingPromptID(v)
		return nil
	case agentsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentsession.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case agentsession.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agentsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentsession.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case agentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentSessionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, agentsession.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentsession.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentsession.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown AgentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentsession.FieldBackendSessionID) {
		fields = append(fields, agentsession.FieldBackendSessionID)
	}
	if m.FieldCleared(agentsession.FieldTitle) {
		fields = append(fields, agentsession.FieldTitle)
	}
	if m.FieldCleared(agentsession.FieldModel) {
		fields = append(fields, agentsession.FieldModel)
	}
	if m.FieldCleared(agentsession.FieldTicketKey) {
		fields = append(fields, agentsession.FieldTicketKey)
	}
	if m.FieldCleared(agentsession.FieldWorktreePath) {
		fields = append(fields, agentsession.FieldWorktreePath)
	}
	if m.FieldCleared(agentsession.FieldBranch) {
		fields = append(fields, agentsession.FieldBranch)
	}
	if m.FieldCleared(agentsession.FieldBaseBranch) {
		fields = append(fields, agentsession.FieldBaseBranch)
	}
	if m.FieldCleared(agentsession.FieldPendingPromptID) {
		fields = append(fields, agentsession.FieldPendingPromptID)
	}
	if m.FieldCleared(agentsession.FieldErrorMessage) {
		fields = append(fields, agentsession.FieldErrorMessage)
	}
	if m.FieldCleared(agentsession.FieldMetadata) {
		fields = append(fields, agentsession.FieldMetadata)
	}
	if m.FieldCleared(agentsession.FieldStartedAt) {
		fields = append(fields, agentsession.FieldStartedAt)
	}
	if m.FieldCleared(agentsession.FieldFinishedAt) {
		fields = append(fields, agentsession.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentSessionMutation) ClearField(name string) error {
	switch name {
	case agentsession.FieldBackendSessionID:
		m.ClearBackendSessionID()
		return nil
	case agentsession.FieldTitle:
		m.ClearTitle()
		return nil
	case agentsession.FieldModel:
		m.ClearModel()
		return nil
	case agentsession.FieldTicketKey:
		m.ClearTicketKey()
		return nil
	case agentsession.FieldWorktreePath:
		m.ClearWorktreePath()
		return nil
	case agentsession.FieldBranch:
		m.ClearBranch()
		return nil
	case agentsession.FieldBaseBranch:
		m.ClearBaseBranch()
		return nil
	case agentsession.FieldPendingPromptID:
		m.ClearPendingPromptID()
		return nil
	case agentsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentsession.FieldMetadata:
		m.ClearMetadata()
		return nil
	case agentsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentsession.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentSessionMutation) ResetField(name string) error {
	switch name {
	case agentsession.FieldProjectID:
		m.ResetProjectID()
		return nil
	case agentsession.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agentsession.FieldBackendSessionID:
		m.ResetBackendSessionID()
		return nil
	case agentsession.FieldStatus:
		m.ResetStatus()
		return nil
	case agentsession.FieldTitle:
		m.ResetTitle()
		return nil
	case agentsession.FieldModel:
		m.ResetModel()
		return nil
	case agentsession.FieldMode:
		m.ResetMode()
		return nil
	case agentsession.FieldTicketKey:
		m.ResetTicketKey()
		return nil
	case agentsession.FieldWorktreePath:
		m.ResetWorktreePath()
		return nil
	case agentsession.FieldBranch:
		m.ResetBranch()
		return nil
	case agentsession.FieldBaseBranch:
		m.ResetBaseBranch()
		return nil
	case agentsession.FieldPendingPromptID:
		m.ResetPendingPromptID()
		return nil
	case agentsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentsession.FieldMetadata:
		m.ResetMetadata()
		return nil
	case agentsession.FieldVersion:
		m.ResetVersion()
		return nil
	case agentsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentsession.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case agentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, agentsession.EdgeProject)
	}
	if m.agent != nil {
		edges = append(edges, agentsession.EdgeAgent)
	}
	if m.transcript_entries != nil {
		edges = append(edges, agentsession.EdgeTranscriptEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case agentsession.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case agentsession.EdgeTranscriptEntries:
		ids := make([]ent.Value, 0, len(m.transcript_entries))
		for id := range m.transcript_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtranscript_entries != nil {
		edges = append(edges, agentsession.EdgeTranscriptEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentsession.EdgeTranscriptEntries:
		ids := make([]ent.Value, 0, len(m.removedtranscript_entries))
		for id := range m.removedtranscript_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, agentsession.EdgeProject)
	}
	if m.clearedagent {
		edges = append(edges, agentsession.EdgeAgent)
	}
	if m.clearedtranscript_entries {
		edges = append(edges, agentsession.EdgeTranscriptEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentsession.EdgeProject:
		return m.clearedproject
	case agentsession.EdgeAgent:
		return m.clearedagent
	case agentsession.EdgeTranscriptEntries:
		return m.clearedtranscript_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentSessionMutation) ClearEdge(name string) error {
	switch name {
	case agentsession.EdgeProject:
		m.ClearProject()
		return nil
	case agentsession.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentSessionMutation) ResetEdge(name string) error {
	switch name {
	case agentsession.EdgeProject:
		m.ResetProject()
		return nil
	case agentsession.EdgeAgent:
		m.ResetAgent()
		return nil
	case agentsession.EdgeTranscriptEntries:
		m.ResetTranscriptEntries()
		return nil
	}
	return fmt.Errorf("unknown AgentSession edge %s", name)
}

// CardMutation represents an operation that mutates the Card nodes in the graph.
type CardMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	lane                  *card.Lane
	position              *int
	addposition           *int
	title                 *string
	body                  *string
	prd_path              *string
	issue_plan            *map[string]interface{}
	issue_refs            *[]string
	appendissue_refs      []string
	pr_url                *string
	plan_agent_id         *string
	build_agent_id        *string
	review_agent_id       *string
	plan_session_id       *string
	build_session_id      *string
	review_session_id     *string
	build_worktree_name   *string
	build_worktree_path   *string
	build_branch          *string
	base_branch           *string
	ai_review             *map[string]interface{}
	ai_review_session_id  *string
	human_review_status   *card.HumanReviewStatus
	human_review_feedback *string
	human_reviewed_at     *time.Time
	version               *int
	addversion            *int
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	project               *string
	clearedproject        bool
	squad                 *string
	clearedsquad          bool
	done                  bool
	oldValue              func(context.Context) (*Card, error)
	predicates            []predicate.Card
}

var _ ent.Mutation = (*CardMutation)(nil)

// cardOption allows management of the mutation configuration using functional options.
type cardOption func(*CardMutation)

// newCardMutation creates new mutation for the Card entity.
func newCardMutation(c config, op Op, opts ...cardOption) *CardMutation {
	m := &CardMutation{
		config:        c,
		op:            op,
		typ:           TypeCard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCardID sets the ID field of the mutation.
func withCardID(id string) cardOption {
	return func(m *CardMutation) {
		var (
			err   error
			once  sync.Once
			value *Card
		)
		m.oldValue = func(ctx context.Context) (*Card, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Card.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCard sets the old Card of the mutation.
func withCard(node *Card) cardOption {
	return func(m *CardMutation) {
		m.oldValue = func(context.Context) (*Card, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Card entities.
func (m *CardMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CardMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CardMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Card.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *CardMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *CardMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *CardMutation) ResetProjectID() {
	m.project = nil
}

// SetSquadID sets the "squad_id" field.
func (m *CardMutation) SetSquadID(s string) {
	m.squad = &s
}

// SquadID returns the value of the "squad_id" field in the mutation.
func (m *CardMutation) SquadID() (r string, exists bool) {
	v := m.squad
	if v == nil {
		return
	}
	return *v, true
}

// OldSquadID returns the old "squad_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldSquadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSquadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSquadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSquadID: %w", err)
	}
	return oldValue.SquadID, nil
}

// ResetSquadID resets all changes to the "squad_id" field.
func (m *CardMutation) ResetSquadID() {
	m.squad = nil
}

// SetLane sets the "lane" field.
func (m *CardMutation) SetLane(c card.Lane) {
	m.lane = &c
}

// Lane returns the value of the "lane" field in the mutation.
func (m *CardMutation) Lane() (r card.Lane, exists bool) {
	v := m.lane
	if v == nil {
		return
	}
	return *v, true
}

// OldLane returns the old "lane" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldLane(ctx context.Context) (v card.Lane, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLane is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLane requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLane: %w", err)
	}
	return oldValue.Lane, nil
}

// ResetLane resets all changes to the "lane" field.
func (m *CardMutation) ResetLane() {
	m.lane = nil
}

// SetPosition sets the "position" field.
func (m *CardMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CardMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CardMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CardMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CardMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetTitle sets the "title" field.
func (m *CardMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CardMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *CardMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[card.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *CardMutation) TitleCleared() bool {
	_, ok := m.clearedFields[card.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *CardMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, card.FieldTitle)
}

// SetBody sets the "body" field.
func (m *CardMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *CardMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *CardMutation) ResetBody() {
	m.body = nil
}

// SetPrdPath sets the "prd_path" field.
func (m *CardMutation) SetPrdPath(s string) {
	m.prd_path = &s
}

// PrdPath returns the value of the "prd_path" field in the mutation.
func (m *CardMutation) PrdPath() (r string, exists bool) {
	v := m.prd_path
	if v == nil {
		return
	}
	return *v, true
}

// OldPrdPath returns the old "prd_path" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldPrdPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrdPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrdPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrdPath: %w", err)
	}
	return oldValue.PrdPath, nil
}

// ClearPrdPath clears the value of the "prd_path" field.
func (m *CardMutation) ClearPrdPath() {
	m.prd_path = nil
	m.clearedFields[card.FieldPrdPath] = struct{}{}
}

// PrdPathCleared returns if the "prd_path" field was cleared in this mutation.
func (m *CardMutation) PrdPathCleared() bool {
	_, ok := m.clearedFields[card.FieldPrdPath]
	return ok
}

// ResetPrdPath resets all changes to the "prd_path" field.
func (m *CardMutation) ResetPrdPath() {
	m.prd_path = nil
	delete(m.clearedFields, card.FieldPrdPath)
}

// SetIssuePlan sets the "issue_plan" field.
func (m *CardMutation) SetIssuePlan(value map[string]interface{}) {
	m.issue_plan = &value
}

// IssuePlan returns the value of the "issue_plan" field in the mutation.
func (m *CardMutation) IssuePlan() (r map[string]interface{}, exists bool) {
	v := m.issue_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuePlan returns the old "issue_plan" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldIssuePlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuePlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuePlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuePlan: %w", err)
	}
	return oldValue.IssuePlan, nil
}

// ClearIssuePlan clears the value of the "issue_plan" field.
func (m *CardMutation) ClearIssuePlan() {
	m.issue_plan = nil
	m.clearedFields[card.FieldIssuePlan] = struct{}{}
}

// IssuePlanCleared returns if the "issue_plan" field was cleared in this mutation.
func (m *CardMutation) IssuePlanCleared() bool {
	_, ok := m.clearedFields[card.FieldIssuePlan]
	return ok
}

// ResetIssuePlan resets all changes to the "issue_plan" field.
func (m *CardMutation) ResetIssuePlan() {
	m.issue_plan = nil
	delete(m.clearedFields, card.FieldIssuePlan)
}

// SetIssueRefs sets the "issue_refs" field.
func (m *CardMutation) SetIssueRefs(s []string) {
	m.issue_refs = &s
	m.appendissue_refs = nil
}

// IssueRefs returns the value of the "issue_refs" field in the mutation.
func (m *CardMutation) IssueRefs() (r []string, exists bool) {
	v := m.issue_refs
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueRefs returns the old "issue_refs" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldIssueRefs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueRefs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueRefs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueRefs: %w", err)
	}
	return oldValue.IssueRefs, nil
}

// AppendIssueRefs adds s to the "issue_refs" field.
func (m *CardMutation) AppendIssueRefs(s []string) {
	m.appendissue_refs = append(m.appendissue_refs, s...)
}

// AppendedIssueRefs returns the list of values that were appended to the "issue_refs" field in this mutation.
func (m *CardMutation) AppendedIssueRefs() ([]string, bool) {
	if len(m.appendissue_refs) == 0 {
		return nil, false
	}
	return m.appendissue_refs, true
}

// ClearIssueRefs clears the value of the "issue_refs" field.
func (m *CardMutation) ClearIssueRefs() {
	m.issue_refs = nil
	m.appendissue_refs = nil
	m.clearedFields[card.FieldIssueRefs] = struct{}{}
}

// IssueRefsCleared returns if the "issue_refs" field was cleared in this mutation.
func (m *CardMutation) IssueRefsCleared() bool {
	_, ok := m.clearedFields[card.FieldIssueRefs]
	return ok
}

// ResetIssueRefs resets all changes to the "issue_refs" field.
func (m *CardMutation) ResetIssueRefs() {
	m.issue_refs = nil
	m.appendissue_refs = nil
	delete(m.clearedFields, card.FieldIssueRefs)
}

// SetPrURL sets the "pr_url" field.
func (m *CardMutation) SetPrURL(s string) {
	m.pr_url = &s
}

// PrURL returns the value of the "pr_url" field in the mutation.
func (m *CardMutation) PrURL() (r string, exists bool) {
	v := m.pr_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPrURL returns the old "pr_url" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldPrURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrURL: %w", err)
	}
	return oldValue.PrURL, nil
}

// ClearPrURL clears the value of the "pr_url" field.
func (m *CardMutation) ClearPrURL() {
	m.pr_url = nil
	m.clearedFields[card.FieldPrURL] = struct{}{}
}

// PrURLCleared returns if the "pr_url" field was cleared in this mutation.
func (m *CardMutation) PrURLCleared() bool {
	_, ok := m.clearedFields[card.FieldPrURL]
	return ok
}

// ResetPrURL resets all changes to the "pr_url" field.
func (m *CardMutation) ResetPrURL() {
	m.pr_url = nil
	delete(m.clearedFields, card.FieldPrURL)
}

// SetPlanAgentID sets the "plan_agent_id" field.
func (m *CardMutation) SetPlanAgentID(s string) {
	m.plan_agent_id = &s
}

// PlanAgentID returns the value of the "plan_agent_id" field in the mutation.
func (m *CardMutation) PlanAgentID() (r string, exists bool) {
	v := m.plan_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanAgentID returns the old "plan_agent_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldPlanAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanAgentID: %w", err)
	}
	return oldValue.PlanAgentID, nil
}

// ClearPlanAgentID clears the value of the "plan_agent_id" field.
func (m *CardMutation) ClearPlanAgentID() {
	m.plan_agent_id = nil
	m.clearedFields[card.FieldPlanAgentID] = struct{}{}
}

// PlanAgentIDCleared returns if the "plan_agent_id" field was cleared in this mutation.
func (m *CardMutation) PlanAgentIDCleared() bool {
	_, ok := m.clearedFields[card.FieldPlanAgentID]
	return ok
}

// ResetPlanAgentID resets all changes to the "plan_agent_id" field.
func (m *CardMutation) ResetPlanAgentID() {
	m.plan_agent_id = nil
	delete(m.clearedFields, card.FieldPlanAgentID)
}

// SetBuildAgentID sets the "build_agent_id" field.
func (m *CardMutation) SetBuildAgentID(s string) {
	m.build_agent_id = &s
}

// BuildAgentID returns the value of the "build_agent_id" field in the mutation.
func (m *CardMutation) BuildAgentID() (r string, exists bool) {
	v := m.build_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildAgentID returns the old "build_agent_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldBuildAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildAgentID: %w", err)
	}
	return oldValue.BuildAgentID, nil
}

// ClearBuildAgentID clears the value of the "build_agent_id" field.
func (m *CardMutation) ClearBuildAgentID() {
	m.build_agent_id = nil
	m.clearedFields[card.FieldBuildAgentID] = struct{}{}
}

// BuildAgentIDCleared returns if the "build_agent_id" field was cleared in this mutation.
func (m *CardMutation) BuildAgentIDCleared() bool {
	_, ok := m.clearedFields[card.FieldBuildAgentID]
	return ok
}

// ResetBuildAgentID resets all changes to the "build_agent_id" field.
func (m *CardMutation) ResetBuildAgentID() {
	m.build_agent_id = nil
	delete(m.clearedFields, card.FieldBuildAgentID)
}

// SetReviewAgentID sets the "review_agent_id" field.
func (m *CardMutation) SetReviewAgentID(s string) {
	m.review_agent_id = &s
}

// ReviewAgentID returns the value of the "review_agent_id" field in the mutation.
func (m *CardMutation) ReviewAgentID() (r string, exists bool) {
	v := m.review_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewAgentID returns the old "review_agent_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldReviewAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewAgentID: %w", err)
	}
	return oldValue.ReviewAgentID, nil
}

// ClearReviewAgentID clears the value of the "review_agent_id" field.
func (m *CardMutation) ClearReviewAgentID() {
	m.review_agent_id = nil
	m.clearedFields[card.FieldReviewAgentID] = struct{}{}
}

// ReviewAgentIDCleared returns if the "review_agent_id" field was cleared in this mutation.
func (m *CardMutation) ReviewAgentIDCleared() bool {
	_, ok := m.clearedFields[card.FieldReviewAgentID]
	return ok
}

// ResetReviewAgentID resets all changes to the "review_agent_id" field.
func (m *CardMutation) ResetReviewAgentID() {
	m.review_agent_id = nil
	delete(m.clearedFields, card.FieldReviewAgentID)
}

// SetPlanSessionID sets the "plan_session_id" field.
func (m *CardMutation) SetPlanSessionID(s string) {
	m.plan_session_id = &s
}

// PlanSessionID returns the value of the "plan_session_id" field in the mutation.
func (m *CardMutation) PlanSessionID() (r string, exists bool) {
	v := m.plan_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanSessionID returns the old "plan_session_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldPlanSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanSessionID: %w", err)
	}
	return oldValue.PlanSessionID, nil
}

// ClearPlanSessionID clears the value of the "plan_session_id" field.
func (m *CardMutation) ClearPlanSessionID() {
	m.plan_session_id = nil
	m.clearedFields[card.FieldPlanSessionID] = struct{}{}
}

// PlanSessionIDCleared returns if the "plan_session_id" field was cleared in this mutation.
func (m *CardMutation) PlanSessionIDCleared() bool {
	_, ok := m.clearedFields[card.FieldPlanSessionID]
	return ok
}

// ResetPlanSessionID resets all changes to the "plan_session_id" field.
func (m *CardMutation) ResetPlanSessionID() {
	m.plan_session_id = nil
	delete(m.clearedFields, card.FieldPlanSessionID)
}

// SetBuildSessionID sets the "build_session_id" field.
func (m *CardMutation) SetBuildSessionID(s string) {
	m.build_session_id = &s
}

// BuildSessionID returns the value of the "build_session_id" field in the mutation.
func (m *CardMutation) BuildSessionID() (r string, exists bool) {
	v := m.build_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildSessionID returns the old "build_session_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldBuildSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildSessionID: %w", err)
	}
	return oldValue.BuildSessionID, nil
}

// ClearBuildSessionID clears the value of the "build_session_id" field.
func (m *CardMutation) ClearBuildSessionID() {
	m.build_session_id = nil
	m.clearedFields[card.FieldBuildSessionID] = struct{}{}
}

// BuildSessionIDCleared returns if the "build_session_id" field was cleared in this mutation.
func (m *CardMutation) BuildSessionIDCleared() bool {
	_, ok := m.clearedFields[card.FieldBuildSessionID]
	return ok
}

// ResetBuildSessionID resets all changes to the "build_session_id" field.
func (m *CardMutation) ResetBuildSessionID() {
	m.build_session_id = nil
	delete(m.clearedFields, card.FieldBuildSessionID)
}

// SetReviewSessionID sets the "review_session_id" field.
func (m *CardMutation) SetReviewSessionID(s string) {
	m.review_session_id = &s
}

// ReviewSessionID returns the value of the "review_session_id" field in the mutation.
func (m *CardMutation) ReviewSessionID() (r string, exists bool) {
	v := m.review_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewSessionID returns the old "review_session_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldReviewSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewSessionID: %w", err)
	}
	return oldValue.ReviewSessionID, nil
}

// ClearReviewSessionID clears the value of the "review_session_id" field.
func (m *CardMutation) ClearReviewSessionID() {
	m.review_session_id = nil
	m.clearedFields[card.FieldReviewSessionID] = struct{}{}
}

// ReviewSessionIDCleared returns if the "review_session_id" field was cleared in this mutation.
func (m *CardMutation) ReviewSessionIDCleared() bool {
	_, ok := m.clearedFields[card.FieldReviewSessionID]
	return ok
}

// ResetReviewSessionID resets all changes to the "review_session_id" field.
func (m *CardMutation) ResetReviewSessionID() {
	m.review_session_id = nil
	delete(m.clearedFields, card.FieldReviewSessionID)
}

// SetBuildWorktreeName sets the "build_worktree_name" field.
func (m *CardMutation) SetBuildWorktreeName(s string) {
	m.build_worktree_name = &s
}

// BuildWorktreeName returns the value of the "build_worktree_name" field in the mutation.
func (m *CardMutation) BuildWorktreeName() (r string, exists bool) {
	v := m.build_worktree_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildWorktreeName returns the old "build_worktree_name" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldBuildWorktreeName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildWorktreeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildWorktreeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildWorktreeName: %w", err)
	}
	return oldValue.BuildWorktreeName, nil
}

// ClearBuildWorktreeName clears the value of the "build_worktree_name" field.
func (m *CardMutation) ClearBuildWorktreeName() {
	m.build_worktree_name = nil
	m.clearedFields[card.FieldBuildWorktreeName] = struct{}{}
}

// BuildWorktreeNameCleared returns if the "build_worktree_name" field was cleared in this mutation.
func (m *CardMutation) BuildWorktreeNameCleared() bool {
	_, ok := m.clearedFields[card.FieldBuildWorktreeName]
	return ok
}

// ResetBuildWorktreeName resets all changes to the "build_worktree_name" field.
func (m *CardMutation) ResetBuildWorktreeName() {
	m.build_worktree_name = nil
	delete(m.clearedFields, card.FieldBuildWorktreeName)
}

// SetBuildWorktreePath sets the "build_worktree_path" field.
func (m *CardMutation) SetBuildWorktreePath(s string) {
	m.build_worktree_path = &s
}

// BuildWorktreePath returns the value of the "build_worktree_path" field in the mutation.
func (m *CardMutation) BuildWorktreePath() (r string, exists bool) {
	v := m.build_worktree_path
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildWorktreePath returns the old "build_worktree_path" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldBuildWorktreePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildWorktreePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildWorktreePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildWorktreePath: %w", err)
	}
	return oldValue.BuildWorktreePath, nil
}

// ClearBuildWorktreePath clears the value of the "build_worktree_path" field.
func (m *CardMutation) ClearBuildWorktreePath() {
	m.build_worktree_path = nil
	m.clearedFields[card.FieldBuildWorktreePath] = struct{}{}
}

// BuildWorktreePathCleared returns if the "build_worktree_path" field was cleared in this mutation.
func (m *CardMutation) BuildWorktreePathCleared() bool {
	_, ok := m.clearedFields[card.FieldBuildWorktreePath]
	return ok
}

// ResetBuildWorktreePath resets all changes to the "build_worktree_path" field.
func (m *CardMutation) ResetBuildWorktreePath() {
	m.build_worktree_path = nil
	delete(m.clearedFields, card.FieldBuildWorktreePath)
}

// SetBuildBranch sets the "build_branch" field.
func (m *CardMutation) SetBuildBranch(s string) {
	m.build_branch = &s
}

// BuildBranch returns the value of the "build_branch" field in the mutation.
func (m *CardMutation) BuildBranch() (r string, exists bool) {
	v := m.build_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildBranch returns the old "build_branch" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldBuildBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildBranch: %w", err)
	}
	return oldValue.BuildBranch, nil
}

// ClearBuildBranch clears the value of the "build_branch" field.
func (m *CardMutation) ClearBuildBranch() {
	m.build_branch = nil
	m.clearedFields[card.FieldBuildBranch] = struct{}{}
}

// BuildBranchCleared returns if the "build_branch" field was cleared in this mutation.
func (m *CardMutation) BuildBranchCleared() bool {
	_, ok := m.clearedFields[card.FieldBuildBranch]
	return ok
}

// ResetBuildBranch resets all changes to the "build_branch" field.
func (m *CardMutation) ResetBuildBranch() {
	m.build_branch = nil
	delete(m.clearedFields, card.FieldBuildBranch)
}

// SetBaseBranch sets the "base_branch" field.
func (m *CardMutation) SetBaseBranch(s string) {
	m.base_branch = &s
}

// BaseBranch returns the value of the "base_branch" field in the mutation.
func (m *CardMutation) BaseBranch() (r string, exists bool) {
	v := m.base_branch
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseBranch returns the old "base_branch" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldBaseBranch(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseBranch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseBranch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseBranch: %w", err)
	}
	return oldValue.BaseBranch, nil
}

// ClearBaseBranch clears the value of the "base_branch" field.
func (m *CardMutation) ClearBaseBranch() {
	m.base_branch = nil
	m.clearedFields[card.FieldBaseBranch] = struct{}{}
}

// BaseBranchCleared returns if the "base_branch" field was cleared in this mutation.
func (m *CardMutation) BaseBranchCleared() bool {
	_, ok := m.clearedFields[card.FieldBaseBranch]
	return ok
}

// ResetBaseBranch resets all changes to the "base_branch" field.
func (m *CardMutation) ResetBaseBranch() {
	m.base_branch = nil
	delete(m.clearedFields, card.FieldBaseBranch)
}

// SetAiReview sets the "ai_review" field.
func (m *CardMutation) SetAiReview(value map[string]interface{}) {
	m.ai_review = &value
}

// AiReview returns the value of the "ai_review" field in the mutation.
func (m *CardMutation) AiReview() (r map[string]interface{}, exists bool) {
	v := m.ai_review
	if v == nil {
		return
	}
	return *v, true
}

// OldAiReview returns the old "ai_review" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldAiReview(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiReview: %w", err)
	}
	return oldValue.AiReview, nil
}

// ClearAiReview clears the value of the "ai_review" field.
func (m *CardMutation) ClearAiReview() {
	m.ai_review = nil
	m.clearedFields[card.FieldAiReview] = struct{}{}
}

// AiReviewCleared returns if the "ai_review" field was cleared in this mutation.
func (m *CardMutation) AiReviewCleared() bool {
	_, ok := m.clearedFields[card.FieldAiReview]
	return ok
}

// ResetAiReview resets all changes to the "ai_review" field.
func (m *CardMutation) ResetAiReview() {
	m.ai_review = nil
	delete(m.clearedFields, card.FieldAiReview)
}

// SetAiReviewSessionID sets the "ai_review_session_id" field.
func (m *CardMutation) SetAiReviewSessionID(s string) {
	m.ai_review_session_id = &s
}

// AiReviewSessionID returns the value of the "ai_review_session_id" field in the mutation.
func (m *CardMutation) AiReviewSessionID() (r string, exists bool) {
	v := m.ai_review_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAiReviewSessionID returns the old "ai_review_session_id" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldAiReviewSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiReviewSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiReviewSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiReviewSessionID: %w", err)
	}
	return oldValue.AiReviewSessionID, nil
}

// ClearAiReviewSessionID clears the value of the "ai_review_session_id" field.
func (m *CardMutation) ClearAiReviewSessionID() {
	m.ai_review_session_id = nil
	m.clearedFields[card.FieldAiReviewSessionID] = struct{}{}
}

// AiReviewSessionIDCleared returns if the "ai_review_session_id" field was cleared in this mutation.
func (m *CardMutation) AiReviewSessionIDCleared() bool {
	_, ok := m.clearedFields[card.FieldAiReviewSessionID]
	return ok
}

// ResetAiReviewSessionID resets all changes to the "ai_review_session_id" field.
func (m *CardMutation) ResetAiReviewSessionID() {
	m.ai_review_session_id = nil
	delete(m.clearedFields, card.FieldAiReviewSessionID)
}

// SetHumanReviewStatus sets the "human_review_status" field.
func (m *CardMutation) SetHumanReviewStatus(crs card.HumanReviewStatus) {
	m.human_review_status = &crs
}

// HumanReviewStatus returns the value of the "human_review_status" field in the mutation.
func (m *CardMutation) HumanReviewStatus() (r card.HumanReviewStatus, exists bool) {
	v := m.human_review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanReviewStatus returns the old "human_review_status" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldHumanReviewStatus(ctx context.Context) (v *card.HumanReviewStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanReviewStatus: %w", err)
	}
	return oldValue.HumanReviewStatus, nil
}

// ClearHumanReviewStatus clears the value of the "human_review_status" field.
func (m *CardMutation) ClearHumanReviewStatus() {
	m.human_review_status = nil
	m.clearedFields[card.FieldHumanReviewStatus] = struct{}{}
}

// HumanReviewStatusCleared returns if the "human_review_status" field was cleared in this mutation.
func (m *CardMutation) HumanReviewStatusCleared() bool {
	_, ok := m.clearedFields[card.FieldHumanReviewStatus]
	return ok
}

// ResetHumanReviewStatus resets all changes to the "human_review_status" field.
func (m *CardMutation) ResetHumanReviewStatus() {
	m.human_review_status = nil
	delete(m.clearedFields, card.FieldHumanReviewStatus)
}

// SetHumanReviewFeedback sets the "human_review_feedback" field.
func (m *CardMutation) SetHumanReviewFeedback(s string) {
	m.human_review_feedback = &s
}

// HumanReviewFeedback returns the value of the "human_review_feedback" field in the mutation.
func (m *CardMutation) HumanReviewFeedback() (r string, exists bool) {
	v := m.human_review_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanReviewFeedback returns the old "human_review_feedback" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldHumanReviewFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanReviewFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanReviewFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanReviewFeedback: %w", err)
	}
	return oldValue.HumanReviewFeedback, nil
}

// ClearHumanReviewFeedback clears the value of the "human_review_feedback" field.
func (m *CardMutation) ClearHumanReviewFeedback() {
	m.human_review_feedback = nil
	m.clearedFields[card.FieldHumanReviewFeedback] = struct{}{}
}

// HumanReviewFeedbackCleared returns if the "human_review_feedback" field was cleared in this mutation.
func (m *CardMutation) HumanReviewFeedbackCleared() bool {
	_, ok := m.clearedFields[card.FieldHumanReviewFeedback]
	return ok
}

// ResetHumanReviewFeedback resets all changes to the "human_review_feedback" field.
func (m *CardMutation) ResetHumanReviewFeedback() {
	m.human_review_feedback = nil
	delete(m.clearedFields, card.FieldHumanReviewFeedback)
}

// SetHumanReviewedAt sets the "human_reviewed_at" field.
func (m *CardMutation) SetHumanReviewedAt(t time.Time) {
	m.human_reviewed_at = &t
}

// HumanReviewedAt returns the value of the "human_reviewed_at" field in the mutation.
func (m *CardMutation) HumanReviewedAt() (r time.Time, exists bool) {
	v := m.human_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanReviewedAt returns the old "human_reviewed_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldHumanReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanReviewedAt: %w", err)
	}
	return oldValue.HumanReviewedAt, nil
}

// ClearHumanReviewedAt clears the value of the "human_reviewed_at" field.
func (m *CardMutation) ClearHumanReviewedAt() {
	m.human_reviewed_at = nil
	m.clearedFields[card.FieldHumanReviewedAt] = struct{}{}
}

// HumanReviewedAtCleared returns if the "human_reviewed_at" field was cleared in this mutation.
func (m *CardMutation) HumanReviewedAtCleared() bool {
	_, ok := m.clearedFields[card.FieldHumanReviewedAt]
	return ok
}

// ResetHumanReviewedAt resets all changes to the "human_reviewed_at" field.
func (m *CardMutation) ResetHumanReviewedAt() {
	m.human_reviewed_at = nil
	delete(m.clearedFields, card.FieldHumanReviewedAt)
}

// SetVersion sets the "version" field.
func (m *CardMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *CardMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *CardMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *CardMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *CardMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CardMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CardMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CardMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CardMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CardMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Card entity.
// If the Card object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CardMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CardMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *CardMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[card.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *CardMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *CardMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *CardMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearSquad clears the "squad" edge to the Squad entity.
func (m *CardMutation) ClearSquad() {
	m.clearedsquad = true
	m.clearedFields[card.FieldSquadID] = struct{}{}
}

// SquadCleared reports if the "squad" edge to the Squad entity was cleared.
func (m *CardMutation) SquadCleared() bool {
	return m.clearedsquad
}

// SquadIDs returns the "squad" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SquadID instead. It exists only for internal usage by the builders.
func (m *CardMutation) SquadIDs() (ids []string) {
	if id := m.squad; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSquad resets all changes to the "squad" edge.
func (m *CardMutation) ResetSquad() {
	m.squad = nil
	m.clearedsquad = false
}

// Where appends a list predicates to the CardMutation builder.
func (m *CardMutation) Where(ps ...predicate.Card) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Card, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Card).
func (m *CardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CardMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.project != nil {
		fields = append(fields, card.FieldProjectID)
	}
	if m.squad != nil {
		fields = append(fields, card.FieldSquadID)
	}
	if m.lane != nil {
		fields = append(fields, card.FieldLane)
	}
	if m.position != nil {
		fields = append(fields, card.FieldPosition)
	}
	if m.title != nil {
		fields = append(fields, card.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, card.FieldBody)
	}
	if m.prd_path != nil {
		fields = append(fields, card.FieldPrdPath)
	}
	if m.issue_plan != nil {
		fields = append(fields, card.FieldIssuePlan)
	}
	if m.issue_refs != nil {
		fields = append(fields, card.FieldIssueRefs)
	}
	if m.pr_url != nil {
		fields = append(fields, card.FieldPrURL)
	}
	if m.plan_agent_id != nil {
		fields = append(fields, card.FieldPlanAgentID)
	}
	if m.build_agent_id != nil {
		fields = append(fields, card.FieldBuildAgentID)
	}
	if m.review_agent_id != nil {
		fields = append(fields, card.FieldReviewAgentID)
	}
	if m.plan_session_id != nil {
		fields = append(fields, card.FieldPlanSessionID)
	}
	if m.build_session_id != nil {
		fields = append(fields, card.FieldBuildSessionID)
	}
	if m.review_session_id != nil {
		fields = append(fields, card.FieldReviewSessionID)
	}
	if m.build_worktree_name != nil {
		fields = append(fields, card.FieldBuildWorktreeName)
	}
	if m.build_worktree_path != nil {
		fields = append(fields, card.FieldBuildWorktreePath)
	}
	if m.build_branch != nil {
		fields = append(fields, card.FieldBuildBranch)
	}
	if m.base_branch != nil {
		fields = append(fields, card.FieldBaseBranch)
	}
	if m.ai_review != nil {
		fields = append(fields, card.FieldAiReview)
	}
	if m.ai_review_session_id != nil {
		fields = append(fields, card.FieldAiReviewSessionID)
	}
	if m.human_review_status != nil {
		fields = append(fields, card.FieldHumanReviewStatus)
	}
	if m.human_review_feedback != nil {
		fields = append(fields, card.FieldHumanReviewFeedback)
	}
	if m.human_reviewed_at != nil {
		fields = append(fields, card.FieldHumanReviewedAt)
	}
	if m.version != nil {
		fields = append(fields, card.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, card.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, card.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case card.FieldProjectID:
		return m.ProjectID()
	case card.FieldSquadID:
		return m.SquadID()
	case card.FieldLane:
		return m.Lane()
	case card.FieldPosition:
		return m.Position()
	case card.FieldTitle:
		return m.Title()
	case card.FieldBody:
		return m.Body()
	case card.FieldPrdPath:
		return m.PrdPath()
	case card.FieldIssuePlan:
		return m.IssuePlan()
	case card.FieldIssueRefs:
		return m.IssueRefs()
	case card.FieldPrURL:
		return m.PrURL()
	case card.FieldPlanAgentID:
		return m.PlanAgentID()
	case card.FieldBuildAgentID:
		return m.BuildAgentID()
	case card.FieldReviewAgentID:
		return m.ReviewAgentID()
	case card.FieldPlanSessionID:
		return m.PlanSessionID()
	case card.FieldBuildSessionID:
		return m.BuildSessionID()
	case card.FieldReviewSessionID:
		return m.ReviewSessionID()
	case card.FieldBuildWorktreeName:
		return m.BuildWorktreeName()
	case card.FieldBuildWorktreePath:
		return m.BuildWorktreePath()
	case card.FieldBuildBranch:
		return m.BuildBranch()
	case card.FieldBaseBranch:
		return m.BaseBranch()
	case card.FieldAiReview:
		return m.AiReview()
	case card.FieldAiReviewSessionID:
		return m.AiReviewSessionID()
	case card.FieldHumanReviewStatus:
		return m.HumanReviewStatus()
	case card.FieldHumanReviewFeedback:
		return m.HumanReviewFeedback()
	case card.FieldHumanReviewedAt:
		return m.HumanReviewedAt()
	case card.FieldVersion:
		return m.Version()
	case card.FieldCreatedAt:
		return m.CreatedAt()
	case card.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case card.FieldProjectID:
		return m.OldProjectID(ctx)
	case card.FieldSquadID:
		return m.OldSquadID(ctx)
	case card.FieldLane:
		return m.OldLane(ctx)
	case card.FieldPosition:
		return m.OldPosition(ctx)
	case card.FieldTitle:
		return m.OldTitle(ctx)
	case card.FieldBody:
		return m.OldBody(ctx)
	case card.FieldPrdPath:
		return m.OldPrdPath(ctx)
	case card.FieldIssuePlan:
		return m.OldIssuePlan(ctx)
	case card.FieldIssueRefs:
		return m.OldIssueRefs(ctx)
	case card.FieldPrURL:
		return m.OldPrURL(ctx)
	case card.FieldPlanAgentID:
		return m.OldPlanAgentID(ctx)
	case card.FieldBuildAgentID:
		return m.OldBuildAgentID(ctx)
	case card.FieldReviewAgentID:
		return m.OldReviewAgentID(ctx)
	case card.FieldPlanSessionID:
		return m.OldPlanSessionID(ctx)
	case card.FieldBuildSessionID:
		return m.OldBuildSessionID(ctx)
	case card.FieldReviewSessionID:
		return m.OldReviewSessionID(ctx)
	case card.FieldBuildWorktreeName:
		return m.OldBuildWorktreeName(ctx)
	case card.FieldBuildWorktreePath:
		return m.OldBuildWorktreePath(ctx)
	case card.FieldBuildBranch:
		return m.OldBuildBranch(ctx)
	case card.FieldBaseBranch:
		return m.OldBaseBranch(ctx)
	case card.FieldAiReview:
		return m.OldAiReview(ctx)
	case card.FieldAiReviewSessionID:
		return m.OldAiReviewSessionID(ctx)
	case card.FieldHumanReviewStatus:
		return m.OldHumanReviewStatus(ctx)
	case card.FieldHumanReviewFeedback:
		return m.OldHumanReviewFeedback(ctx)
	case card.FieldHumanReviewedAt:
		return m.OldHumanReviewedAt(ctx)
	case card.FieldVersion:
		return m.OldVersion(ctx)
	case card.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case card.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Card field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case card.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case card.FieldSquadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSquadID(v)
		return nil
	case card.FieldLane:
		v, ok := value.(card.Lane)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLane(v)
		return nil
	case card.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case card.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case card.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case card.FieldPrdPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrdPath(v)
		return nil
	case card.FieldIssuePlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuePlan(v)
		return nil
	case card.FieldIssueRefs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueRefs(v)
		return nil
	case card.FieldPrURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrURL(v)
		return nil
	case card.FieldPlanAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanAgentID(v)
		return nil
	case card.FieldBuildAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildAgentID(v)
		return nil
	case card.FieldReviewAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewAgentID(v)
		return nil
	case card.FieldPlanSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanSessionID(v)
		return nil
	case card.FieldBuildSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildSessionID(v)
		return nil
	case card.FieldReviewSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewSessionID(v)
		return nil
	case card.FieldBuildWorktreeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildWorktreeName(v)
		return nil
	case card.FieldBuildWorktreePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildWorktreePath(v)
		return nil
	case card.FieldBuildBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildBranch(v)
		return nil
	case card.FieldBaseBranch:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseBranch(v)
		return nil
	case card.FieldAiReview:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiReview(v)
		return nil
	case card.FieldAiReviewSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiReviewSessionID(v)
		return nil
	case card.FieldHumanReviewStatus:
		v, ok := value.(card.HumanReviewStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanReviewStatus(v)
		return nil
	case card.FieldHumanReviewFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanReviewFeedback(v)
		return nil
	case card.FieldHumanReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanReviewedAt(v)
		return nil
	case card.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case card.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case card.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Card field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CardMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, card.FieldPosition)
	}
	if m.addversion != nil {
		fields = append(fields, card.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case card.FieldPosition:
		return m.AddedPosition()
	case card.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case card.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case card.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Card numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(card.FieldTitle) {
		fields = append(fields, card.FieldTitle)
	}
	if m.FieldCleared(card.FieldPrdPath) {
		fields = append(fields, card.FieldPrdPath)
	}
	if m.FieldCleared(card.FieldIssuePlan) {
		fields = append(fields, card.FieldIssuePlan)
	}
	if m.FieldCleared(card.FieldIssueRefs) {
		fields = append(fields, card.FieldIssueRefs)
	}
	if m.FieldCleared(card.FieldPrURL) {
		fields = append(fields, card.FieldPrURL)
	}
	if m.FieldCleared(card.FieldPlanAgentID) {
		fields = append(fields, card.FieldPlanAgentID)
	}
	if m.FieldCleared(card.FieldBuildAgentID) {
		fields = append(fields, card.FieldBuildAgentID)
	}
	if m.FieldCleared(card.FieldReviewAgentID) {
		fields = append(fields, card.FieldReviewAgentID)
	}
	if m.FieldCleared(card.FieldPlanSessionID) {
		fields = append(fields, card.FieldPlanSessionID)
	}
	if m.FieldCleared(card.FieldBuildSessionID) {
		fields = append(fields, card.FieldBuildSessionID)
	}
	if m.FieldCleared(card.FieldReviewSessionID) {
		fields = append(fields, card.FieldReviewSessionID)
	}
	if m.FieldCleared(card.FieldBuildWorktreeName) {
		fields = append(fields, card.FieldBuildWorktreeName)
	}
	if m.FieldCleared(card.FieldBuildWorktreePath) {
		fields = append(fields, card.FieldBuildWorktreePath)
	}
	if m.FieldCleared(card.FieldBuildBranch) {
		fields = append(fields, card.FieldBuildBranch)
	}
	if m.FieldCleared(card.FieldBaseBranch) {
		fields = append(fields, card.FieldBaseBranch)
	}
	if m.FieldCleared(card.FieldAiReview) {
		fields = append(fields, card.FieldAiReview)
	}
	if m.FieldCleared(card.FieldAiReviewSessionID) {
		fields = append(fields, card.FieldAiReviewSessionID)
	}
	if m.FieldCleared(card.FieldHumanReviewStatus) {
		fields = append(fields, card.FieldHumanReviewStatus)
	}
	if m.FieldCleared(card.FieldHumanReviewFeedback) {
		fields = append(fields, card.FieldHumanReviewFeedback)
	}
	if m.FieldCleared(card.FieldHumanReviewedAt) {
		fields = append(fields, card.FieldHumanReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CardMutation) ClearField(name string) error {
	switch name {
	case card.FieldTitle:
		m.ClearTitle()
		return nil
	case card.FieldPrdPath:
		m.ClearPrdPath()
		return nil
	case card.FieldIssuePlan:
		m.ClearIssuePlan()
		return nil
	case card.FieldIssueRefs:
		m.ClearIssueRefs()
		return nil
	case card.FieldPrURL:
		m.ClearPrURL()
		return nil
	case card.FieldPlanAgentID:
		m.ClearPlanAgentID()
		return nil
	case card.FieldBuildAgentID:
		m.ClearBuildAgentID()
		return nil
	case card.FieldReviewAgentID:
		m.ClearReviewAgentID()
		return nil
	case card.FieldPlanSessionID:
		m.ClearPlanSessionID()
		return nil
	case card.FieldBuildSessionID:
		m.ClearBuildSessionID()
		return nil
	case card.FieldReviewSessionID:
		m.ClearReviewSessionID()
		return nil
	case card.FieldBuildWorktreeName:
		m.ClearBuildWorktreeName()
		return nil
	case card.FieldBuildWorktreePath:
		m.ClearBuildWorktreePath()
		return nil
	case card.FieldBuildBranch:
		m.ClearBuildBranch()
		return nil
	case card.FieldBaseBranch:
		m.ClearBaseBranch()
		return nil
	case card.FieldAiReview:
		m.ClearAiReview()
		return nil
	case card.FieldAiReviewSessionID:
		m.ClearAiReviewSessionID()
		return nil
	case card.FieldHumanReviewStatus:
		m.ClearHumanReviewStatus()
		return nil
	case card.FieldHumanReviewFeedback:
		m.ClearHumanReviewFeedback()
		return nil
	case card.FieldHumanReviewedAt:
		m.ClearHumanReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown Card nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CardMutation) ResetField(name string) error {
	switch name {
	case card.FieldProjectID:
		m.ResetProjectID()
		return nil
	case card.FieldSquadID:
		m.ResetSquadID()
		return nil
	case card.FieldLane:
		m.ResetLane()
		return nil
	case card.FieldPosition:
		m.ResetPosition()
		return nil
	case card.FieldTitle:
		m.ResetTitle()
		return nil
	case card.FieldBody:
		m.ResetBody()
		return nil
	case card.FieldPrdPath:
		m.ResetPrdPath()
		return nil
	case card.FieldIssuePlan:
		m.ResetIssuePlan()
		return nil
	case card.FieldIssueRefs:
		m.ResetIssueRefs()
		return nil
	case card.FieldPrURL:
		m.ResetPrURL()
		return nil
	case card.FieldPlanAgentID:
		m.ResetPlanAgentID()
		return nil
	case card.FieldBuildAgentID:
		m.ResetBuildAgentID()
		return nil
	case card.FieldReviewAgentID:
		m.ResetReviewAgentID()
		return nil
	case card.FieldPlanSessionID:
		m.ResetPlanSessionID()
		return nil
	case card.FieldBuildSessionID:
		m.ResetBuildSessionID()
		return nil
	case card.FieldReviewSessionID:
		m.ResetReviewSessionID()
		return nil
	case card.FieldBuildWorktreeName:
		m.ResetBuildWorktreeName()
		return nil
	case card.FieldBuildWorktreePath:
		m.ResetBuildWorktreePath()
		return nil
	case card.FieldBuildBranch:
		m.ResetBuildBranch()
		return nil
	case card.FieldBaseBranch:
		m.ResetBaseBranch()
		return nil
	case card.FieldAiReview:
		m.ResetAiReview()
		return nil
	case card.FieldAiReviewSessionID:
		m.ResetAiReviewSessionID()
		return nil
	case card.FieldHumanReviewStatus:
		m.ResetHumanReviewStatus()
		return nil
	case card.FieldHumanReviewFeedback:
		m.ResetHumanReviewFeedback()
		return nil
	case card.FieldHumanReviewedAt:
		m.ResetHumanReviewedAt()
		return nil
	case card.FieldVersion:
		m.ResetVersion()
		return nil
	case card.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case card.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Card field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CardMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, card.EdgeProject)
	}
	if m.squad != nil {
		edges = append(edges, card.EdgeSquad)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CardMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case card.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case card.EdgeSquad:
		if id := m.squad; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, card.EdgeProject)
	}
	if m.clearedsquad {
		edges = append(edges, card.EdgeSquad)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CardMutation) EdgeCleared(name string) bool {
	switch name {
	case card.EdgeProject:
		return m.clearedproject
	case card.EdgeSquad:
		return m.clearedsquad
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CardMutation) ClearEdge(name string) error {
	switch name {
	case card.EdgeProject:
		m.ClearProject()
		return nil
	case card.EdgeSquad:
		m.ClearSquad()
		return nil
	}
	return fmt.Errorf("unknown Card unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CardMutation) ResetEdge(name string) error {
	switch name {
	case card.EdgeProject:
		m.ResetProject()
		return nil
	case card.EdgeSquad:
		m.ResetSquad()
		return nil
	}
	return fmt.Errorf("unknown Card edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	kind           *string
	channel        *string
	session_id     *string
	agent_id       *string
	payload        *map[string]interface{}
	occurred_at    *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *EventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *EventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *EventMutation) ResetKind() {
	m.kind = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetProjectID sets the "project_id" field.
func (m *EventMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *EventMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *EventMutation) ResetProjectID() {
	m.project = nil
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *EventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *EventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, event.FieldSessionID)
}

// SetAgentID sets the "agent_id" field.
func (m *EventMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *EventMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *EventMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[event.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *EventMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[event.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *EventMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, event.FieldAgentID)
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *EventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *EventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *EventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *EventMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[event.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *EventMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *EventMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *EventMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.kind != nil {
		fields = append(fields, event.FieldKind)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.project != nil {
		fields = append(fields, event.FieldProjectID)
	}
	if m.session_id != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.agent_id != nil {
		fields = append(fields, event.FieldAgentID)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.occurred_at != nil {
		fields = append(fields, event.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldKind:
		return m.Kind()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldProjectID:
		return m.ProjectID()
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldAgentID:
		return m.AgentID()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldKind:
		return m.OldKind(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldProjectID:
		return m.OldProjectID(ctx)
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldAgentID:
		return m.OldAgentID(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldSessionID) {
		fields = append(fields, event.FieldSessionID)
	}
	if m.FieldCleared(event.FieldAgentID) {
		fields = append(fields, event.FieldAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ClearSessionID()
		return nil
	case event.FieldAgentID:
		m.ClearAgentID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldKind:
		m.ResetKind()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldProjectID:
		m.ResetProjectID()
		return nil
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldAgentID:
		m.ResetAgentID()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, event.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, event.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// ExternalNodeMutation represents an operation that mutates the ExternalNode nodes in the graph.
type ExternalNodeMutation struct {
	config
	op                Op
	typ               string
	id                *string
	healthy           *bool
	version           *string
	source            *externalnode.Source
	probe_failures    *int
	addprobe_failures *int
	last_seen         *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ExternalNode, error)
	predicates        []predicate.ExternalNode
}

var _ ent.Mutation = (*ExternalNodeMutation)(nil)

// externalnodeOption allows management of the mutation configuration using functional options.
type externalnodeOption func(*ExternalNodeMutation)

// newExternalNodeMutation creates new mutation for the ExternalNode entity.
func newExternalNodeMutation(c config, op Op, opts ...externalnodeOption) *ExternalNodeMutation {
	m := &ExternalNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeExternalNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExternalNodeID sets the ID field of the mutation.
func withExternalNodeID(id string) externalnodeOption {
	return func(m *ExternalNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *ExternalNode
		)
		m.oldValue = func(ctx context.Context) (*ExternalNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExternalNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExternalNode sets the old ExternalNode of the mutation.
func withExternalNode(node *ExternalNode) externalnodeOption {
	return func(m *ExternalNodeMutation) {
		m.oldValue = func(context.Context) (*ExternalNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExternalNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExternalNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExternalNode entities.
func (m *ExternalNodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExternalNodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExternalNodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExternalNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHealthy sets the "healthy" field.
func (m *ExternalNodeMutation) SetHealthy(b bool) {
	m.healthy = &b
}

// Healthy returns the value of the "healthy" field in the mutation.
func (m *ExternalNodeMutation) Healthy() (r bool, exists bool) {
	v := m.healthy
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthy returns the old "healthy" field's value of the ExternalNode entity.
// If the ExternalNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalNodeMutation) OldHealthy(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthy: %w", err)
	}
	return oldValue.Healthy, nil
}

// ResetHealthy resets all changes to the "healthy" field.
func (m *ExternalNodeMutation) ResetHealthy() {
	m.healthy = nil
}

// SetVersion sets the "version" field.
func (m *ExternalNodeMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *ExternalNodeMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ExternalNode entity.
// If the ExternalNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalNodeMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ClearVersion clears the value of the "version" field.
func (m *ExternalNodeMutation) ClearVersion() {
	m.version = nil
	m.clearedFields[externalnode.FieldVersion] = struct{}{}
}

// VersionCleared returns if the "version" field was cleared in this mutation.
func (m *ExternalNodeMutation) VersionCleared() bool {
	_, ok := m.clearedFields[externalnode.FieldVersion]
	return ok
}

// ResetVersion resets all changes to the "version" field.
func (m *ExternalNodeMutation) ResetVersion() {
	m.version = nil
	delete(m.clearedFields, externalnode.FieldVersion)
}

// SetSource sets the "source" field.
func (m *ExternalNodeMutation) SetSource(e externalnode.Source) {
	m.source = &e
}

// Source returns the value of the "source" field in the mutation.
func (m *ExternalNodeMutation) Source() (r externalnode.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ExternalNode entity.
// If the ExternalNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalNodeMutation) OldSource(ctx context.Context) (v externalnode.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ExternalNodeMutation) ResetSource() {
	m.source = nil
}

// SetProbeFailures sets the "probe_failures" field.
func (m *ExternalNodeMutation) SetProbeFailures(i int) {
	m.probe_failures = &i
	m.addprobe_failures = nil
}

// ProbeFailures returns the value of the "probe_failures" field in the mutation.
func (m *ExternalNodeMutation) ProbeFailures() (r int, exists bool) {
	v := m.probe_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldProbeFailures returns the old "probe_failures" field's value of the ExternalNode entity.
// If the ExternalNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalNodeMutation) OldProbeFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProbeFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProbeFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProbeFailures: %w", err)
	}
	return oldValue.ProbeFailures, nil
}

// AddProbeFailures adds i to the "probe_failures" field.
func (m *ExternalNodeMutation) AddProbeFailures(i int) {
	if m.addprobe_failures != nil {
		*m.addprobe_failures += i
	} else {
		m.addprobe_failures = &i
	}
}

// AddedProbeFailures returns the value that was added to the "probe_failures" field in this mutation.
func (m *ExternalNodeMutation) AddedProbeFailures() (r int, exists bool) {
	v := m.addprobe_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetProbeFailures resets all changes to the "probe_failures" field.
func (m *ExternalNodeMutation) ResetProbeFailures() {
	m.probe_failures = nil
	m.addprobe_failures = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *ExternalNodeMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *ExternalNodeMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the ExternalNode entity.
// If the ExternalNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExternalNodeMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *ExternalNodeMutation) ResetLastSeen() {
	m.last_seen = nil
}

// Where appends a list predicates to the ExternalNodeMutation builder.
func (m *ExternalNodeMutation) Where(ps ...predicate.ExternalNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExternalNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExternalNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExternalNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExternalNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExternalNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExternalNode).
func (m *ExternalNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExternalNodeMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.healthy != nil {
		fields = append(fields, externalnode.FieldHealthy)
	}
	if m.version != nil {
		fields = append(fields, externalnode.FieldVersion)
	}
	if m.source != nil {
		fields = append(fields, externalnode.FieldSource)
	}
	if m.probe_failures != nil {
		fields = append(fields, externalnode.FieldProbeFailures)
	}
	if m.last_seen != nil {
		fields = append(fields, externalnode.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExternalNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case externalnode.FieldHealthy:
		return m.Healthy()
	case externalnode.FieldVersion:
		return m.Version()
	case externalnode.FieldSource:
		return m.Source()
	case externalnode.FieldProbeFailures:
		return m.ProbeFailures()
	case externalnode.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExternalNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case externalnode.FieldHealthy:
		return m.OldHealthy(ctx)
	case externalnode.FieldVersion:
		return m.OldVersion(ctx)
	case externalnode.FieldSource:
		return m.OldSource(ctx)
	case externalnode.FieldProbeFailures:
		return m.OldProbeFailures(ctx)
	case externalnode.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown ExternalNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExternalNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case externalnode.FieldHealthy:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthy(v)
		return nil
	case externalnode.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case externalnode.FieldSource:
		v, ok := value.(externalnode.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case externalnode.FieldProbeFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProbeFailures(v)
		return nil
	case externalnode.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown ExternalNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExternalNodeMutation) AddedFields() []string {
	var fields []string
	if m.addprobe_failures != nil {
		fields = append(fields, externalnode.FieldProbeFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExternalNodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case externalnode.FieldProbeFailures:
		return m.AddedProbeFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExternalNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case externalnode.FieldProbeFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProbeFailures(v)
		return nil
	}
	return fmt.Errorf("unknown ExternalNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExternalNodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(externalnode.FieldVersion) {
		fields = append(fields, externalnode.FieldVersion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExternalNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExternalNodeMutation) ClearField(name string) error {
	switch name {
	case externalnode.FieldVersion:
		m.ClearVersion()
		return nil
	}
	return fmt.Errorf("unknown ExternalNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExternalNodeMutation) ResetField(name string) error {
	switch name {
	case externalnode.FieldHealthy:
		m.ResetHealthy()
		return nil
	case externalnode.FieldVersion:
		m.ResetVersion()
		return nil
	case externalnode.FieldSource:
		m.ResetSource()
		return nil
	case externalnode.FieldProbeFailures:
		m.ResetProbeFailures()
		return nil
	case externalnode.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown ExternalNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExternalNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExternalNodeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExternalNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExternalNodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExternalNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExternalNodeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExternalNodeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExternalNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExternalNodeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExternalNode edge %s", name)
}

// LaneAssignmentMutation represents an operation that mutates the LaneAssignment nodes in the graph.
type LaneAssignmentMutation struct {
	config
	op             Op
	typ            string
	id             *string
	squad_id       *string
	lane           *laneassignment.Lane
	agent_id       *string
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*LaneAssignment, error)
	predicates     []predicate.LaneAssignment
}

var _ ent.Mutation = (*LaneAssignmentMutation)(nil)

// laneassignmentOption allows management of the mutation configuration using functional options.
type laneassignmentOption func(*LaneAssignmentMutation)

// newLaneAssignmentMutation creates new mutation for the LaneAssignment entity.
func newLaneAssignmentMutation(c config, op Op, opts ...laneassignmentOption) *LaneAssignmentMutation {
	m := &LaneAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeLaneAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLaneAssignmentID sets the ID field of the mutation.
func withLaneAssignmentID(id string) laneassignmentOption {
	return func(m *LaneAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *LaneAssignment
		)
		m.oldValue = func(ctx context.Context) (*LaneAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LaneAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLaneAssignment sets the old LaneAssignment of the mutation.
func withLaneAssignment(node *LaneAssignment) laneassignmentOption {
	return func(m *LaneAssignmentMutation) {
		m.oldValue = func(context.Context) (*LaneAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LaneAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LaneAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LaneAssignment entities.
func (m *LaneAssignmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LaneAssignmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LaneAssignmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LaneAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *LaneAssignmentMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *LaneAssignmentMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the LaneAssignment entity.
// If the LaneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LaneAssignmentMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *LaneAssignmentMutation) ResetProjectID() {
	m.project = nil
}

// SetSquadID sets the "squad_id" field.
func (m *LaneAssignmentMutation) SetSquadID(s string) {
	m.squad_id = &s
}

// SquadID returns the value of the "squad_id" field in the mutation.
func (m *LaneAssignmentMutation) SquadID() (r string, exists bool) {
	v := m.squad_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSquadID returns the old "squad_id" field's value of the LaneAssignment entity.
// If the LaneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LaneAssignmentMutation) OldSquadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSquadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSquadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSquadID: %w", err)
	}
	return oldValue.SquadID, nil
}

// ResetSquadID resets all changes to the "squad_id" field.
func (m *LaneAssignmentMutation) ResetSquadID() {
	m.squad_id = nil
}

// SetLane sets the "lane" field.
func (m *LaneAssignmentMutation) SetLane(l laneassignment.Lane) {
	m.lane = &l
}

// Lane returns the value of the "lane" field in the mutation.
func (m *LaneAssignmentMutation) Lane() (r laneassignment.Lane, exists bool) {
	v := m.lane
	if v == nil {
		return
	}
	return *v, true
}

// OldLane returns the old "lane" field's value of the LaneAssignment entity.
// If the LaneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LaneAssignmentMutation) OldLane(ctx context.Context) (v laneassignment.Lane, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLane is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLane requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLane: %w", err)
	}
	return oldValue.Lane, nil
}

// ResetLane resets all changes to the "lane" field.
func (m *LaneAssignmentMutation) ResetLane() {
	m.lane = nil
}

// SetAgentID sets the "agent_id" field.
func (m *LaneAssignmentMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *LaneAssignmentMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the LaneAssignment entity.
// If the LaneAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LaneAssignmentMutation) OldAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *LaneAssignmentMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[laneassignment.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *LaneAssignmentMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[laneassignment.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *LaneAssignmentMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, laneassignment.FieldAgentID)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *LaneAssignmentMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[laneassignment.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *LaneAssignmentMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *LaneAssignmentMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *LaneAssignmentMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the LaneAssignmentMutation builder.
func (m *LaneAssignmentMutation) Where(ps ...predicate.LaneAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LaneAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LaneAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LaneAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LaneAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LaneAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LaneAssignment).
func (m *LaneAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LaneAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project != nil {
		fields = append(fields, laneassignment.FieldProjectID)
	}
	if m.squad_id != nil {
		fields = append(fields, laneassignment.FieldSquadID)
	}
	if m.lane != nil {
		fields = append(fields, laneassignment.FieldLane)
	}
	if m.agent_id != nil {
		fields = append(fields, laneassignment.FieldAgentID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LaneAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case laneassignment.FieldProjectID:
		return m.ProjectID()
	case laneassignment.FieldSquadID:
		return m.SquadID()
	case laneassignment.FieldLane:
		return m.Lane()
	case laneassignment.FieldAgentID:
		return m.AgentID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LaneAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case laneassignment.FieldProjectID:
		return m.OldProjectID(ctx)
	case laneassignment.FieldSquadID:
		return m.OldSquadID(ctx)
	case laneassignment.FieldLane:
		return m.OldLane(ctx)
	case laneassignment.FieldAgentID:
		return m.OldAgentID(ctx)
	}
	return nil, fmt.Errorf("unknown LaneAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LaneAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case laneassignment.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case laneassignment.FieldSquadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSquadID(v)
		return nil
	case laneassignment.FieldLane:
		v, ok := value.(laneassignment.Lane)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLane(v)
		return nil
	case laneassignment.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	}
	return fmt.Errorf("unknown LaneAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LaneAssignmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LaneAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LaneAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LaneAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LaneAssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(laneassignment.FieldAgentID) {
		fields = append(fields, laneassignment.FieldAgentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LaneAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LaneAssignmentMutation) ClearField(name string) error {
	switch name {
	case laneassignment.FieldAgentID:
		m.ClearAgentID()
		return nil
	}
	return fmt.Errorf("unknown LaneAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LaneAssignmentMutation) ResetField(name string) error {
	switch name {
	case laneassignment.FieldProjectID:
		m.ResetProjectID()
		return nil
	case laneassignment.FieldSquadID:
		m.ResetSquadID()
		return nil
	case laneassignment.FieldLane:
		m.ResetLane()
		return nil
	case laneassignment.FieldAgentID:
		m.ResetAgentID()
		return nil
	}
	return fmt.Errorf("unknown LaneAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LaneAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, laneassignment.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LaneAssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case laneassignment.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LaneAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LaneAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LaneAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, laneassignment.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LaneAssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case laneassignment.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LaneAssignmentMutation) ClearEdge(name string) error {
	switch name {
	case laneassignment.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown LaneAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LaneAssignmentMutation) ResetEdge(name string) error {
	switch name {
	case laneassignment.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown LaneAssignment edge %s", name)
}

// MCPServerMutation represents an operation that mutates the MCPServer nodes in the graph.
type MCPServerMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	source        *mcpserver.Source
	server_type   *mcpserver.ServerType
	image         *string
	url           *string
	command       *string
	args          *[]string
	appendargs    []string
	headers       *map[string]string
	enabled       *bool
	status        *string
	last_error    *string
	catalog_meta  *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	squad         *string
	clearedsquad  bool
	done          bool
	oldValue      func(context.Context) (*MCPServer, error)
	predicates    []predicate.MCPServer
}

var _ ent.Mutation = (*MCPServerMutation)(nil)

// mcpserverOption allows management of the mutation configuration using functional options.
type mcpserverOption func(*MCPServerMutation)

// newMCPServerMutation creates new mutation for the MCPServer entity.
func newMCPServerMutation(c config, op Op, opts ...mcpserverOption) *MCPServerMutation {
	m := &MCPServerMutation{
		config:        c,
		op:            op,
		typ:           TypeMCPServer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMCPServerID sets the ID field of the mutation.
func withMCPServerID(id string) mcpserverOption {
	return func(m *MCPServerMutation) {
		var (
			err   error
			once  sync.Once
			value *MCPServer
		)
		m.oldValue = func(ctx context.Context) (*MCPServer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MCPServer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMCPServer sets the old MCPServer of the mutation.
func withMCPServer(node *MCPServer) mcpserverOption {
	return func(m *MCPServerMutation) {
		m.oldValue = func(context.Context) (*MCPServer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MCPServerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MCPServerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MCPServer entities.
func (m *MCPServerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MCPServerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MCPServerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MCPServer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSquadID sets the "squad_id" field.
func (m *MCPServerMutation) SetSquadID(s string) {
	m.squad = &s
}

// SquadID returns the value of the "squad_id" field in the mutation.
func (m *MCPServerMutation) SquadID() (r string, exists bool) {
	v := m.squad
	if v == nil {
		return
	}
	return *v, true
}

// OldSquadID returns the old "squad_id" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldSquadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSquadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSquadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSquadID: %w", err)
	}
	return oldValue.SquadID, nil
}

// ResetSquadID resets all changes to the "squad_id" field.
func (m *MCPServerMutation) ResetSquadID() {
	m.squad = nil
}

// SetName sets the "name" field.
func (m *MCPServerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MCPServerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MCPServerMutation) ResetName() {
	m.name = nil
}

// SetSource sets the "source" field.
func (m *MCPServerMutation) SetSource(value mcpserver.Source) {
	m.source = &value
}

// Source returns the value of the "source" field in the mutation.
func (m *MCPServerMutation) Source() (r mcpserver.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldSource(ctx context.Context) (v mcpserver.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *MCPServerMutation) ResetSource() {
	m.source = nil
}

// SetServerType sets the "server_type" field.
func (m *MCPServerMutation) SetServerType(mt mcpserver.ServerType) {
	m.server_type = &mt
}

// ServerType returns the value of the "server_type" field in the mutation.
func (m *MCPServerMutation) ServerType() (r mcpserver.ServerType, exists bool) {
	v := m.server_type
	if v == nil {
		return
	}
	return *v, true
}

// OldServerType returns the old "server_type" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldServerType(ctx context.Context) (v mcpserver.ServerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerType: %w", err)
	}
	return oldValue.ServerType, nil
}

// ResetServerType resets all changes to the "server_type" field.
func (m *MCPServerMutation) ResetServerType() {
	m.server_type = nil
}

// SetImage sets the "image" field.
func (m *MCPServerMutation) SetImage(s string) {
	m.image = &s
}

// Image returns the value of the "image" field in the mutation.
func (m *MCPServerMutation) Image() (r string, exists bool) {
	v := m.image
	if v == nil {
		return
	}
	return *v, true
}

// OldImage returns the old "image" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldImage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImage: %w", err)
	}
	return oldValue.Image, nil
}

// ClearImage clears the value of the "image" field.
func (m *MCPServerMutation) ClearImage() {
	m.image = nil
	m.clearedFields[mcpserver.FieldImage] = struct{}{}
}

// ImageCleared returns if the "image" field was cleared in this mutation.
func (m *MCPServerMutation) ImageCleared() bool {
	_, ok := m.clearedFields[mcpserver.FieldImage]
	return ok
}

// ResetImage resets all changes to the "image" field.
func (m *MCPServerMutation) ResetImage() {
	m.image = nil
	delete(m.clearedFields, mcpserver.FieldImage)
}

// SetURL sets the "url" field.
func (m *MCPServerMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *MCPServerMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *MCPServerMutation) ClearURL() {
	m.url = nil
	m.clearedFields[mcpserver.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *MCPServerMutation) URLCleared() bool {
	_, ok := m.clearedFields[mcpserver.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *MCPServerMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, mcpserver.FieldURL)
}

// SetCommand sets the "command" field.
func (m *MCPServerMutation) SetCommand(s string) {
	m.command = &s
}

// Command returns the value of the "command" field in the mutation.
func (m *MCPServerMutation) Command() (r string, exists bool) {
	v := m.command
	if v == nil {
		return
	}
	return *v, true
}

// OldCommand returns the old "command" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommand: %w", err)
	}
	return oldValue.Command, nil
}

// ClearCommand clears the value of the "command" field.
func (m *MCPServerMutation) ClearCommand() {
	m.command = nil
	m.clearedFields[mcpserver.FieldCommand] = struct{}{}
}

// CommandCleared returns if the "command" field was cleared in this mutation.
func (m *MCPServerMutation) CommandCleared() bool {
	_, ok := m.clearedFields[mcpserver.FieldCommand]
	return ok
}

// ResetCommand resets all changes to the "command" field.
func (m *MCPServerMutation) ResetCommand() {
	m.command = nil
	delete(m.clearedFields, mcpserver.FieldCommand)
}

// SetArgs sets the "args" field.
func (m *MCPServerMutation) SetArgs(s []string) {
	m.args = &s
	m.appendargs = nil
}

// Args returns the value of the "args" field in the mutation.
func (m *MCPServerMutation) Args() (r []string, exists bool) {
	v := m.args
	if v == nil {
		return
	}
	return *v, true
}

// OldArgs returns the old "args" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldArgs(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgs: %w", err)
	}
	return oldValue.Args, nil
}

// AppendArgs adds s to the "args" field.
func (m *MCPServerMutation) AppendArgs(s []string) {
	m.appendargs = append(m.appendargs, s...)
}

// AppendedArgs returns the list of values that were appended to the "args" field in this mutation.
func (m *MCPServerMutation) AppendedArgs() ([]string, bool) {
	if len(m.appendargs) == 0 {
		return nil, false
	}
	return m.appendargs, true
}

// ClearArgs clears the value of the "args" field.
func (m *MCPServerMutation) ClearArgs() {
	m.args = nil
	m.appendargs = nil
	m.clearedFields[mcpserver.FieldArgs] = struct{}{}
}

// ArgsCleared returns if the "args" field was cleared in this mutation.
func (m *MCPServerMutation) ArgsCleared() bool {
	_, ok := m.clearedFields[mcpserver.FieldArgs]
	return ok
}

// ResetArgs resets all changes to the "args" field.
func (m *MCPServerMutation) ResetArgs() {
	m.args = nil
	m.appendargs = nil
	delete(m.clearedFields, mcpserver.FieldArgs)
}

// SetHeaders sets the "headers" field.
func (m *MCPServerMutation) SetHeaders(value map[string]string) {
	m.headers = &value
}

// Headers returns the value of the "headers" field in the mutation.
func (m *MCPServerMutation) Headers() (r map[string]string, exists bool) {
	v := m.headers
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaders returns the old "headers" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaders: %w", err)
	}
	return oldValue.Headers, nil
}

// ClearHeaders clears the value of the "headers" field.
func (m *MCPServerMutation) ClearHeaders() {
	m.headers = nil
	m.clearedFields[mcpserver.FieldHeaders] = struct{}{}
}

// HeadersCleared returns if the "headers" field was cleared in this mutation.
func (m *MCPServerMutation) HeadersCleared() bool {
	_, ok := m.clearedFields[mcpserver.FieldHeaders]
	return ok
}

// ResetHeaders resets all changes to the "headers" field.
func (m *MCPServerMutation) ResetHeaders() {
	m.headers = nil
	delete(m.clearedFields, mcpserver.FieldHeaders)
}

// SetEnabled sets the "enabled" field.
func (m *MCPServerMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *MCPServerMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *MCPServerMutation) ResetEnabled() {
	m.enabled = nil
}

// SetStatus sets the "status" field.
func (m *MCPServerMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *MCPServerMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *MCPServerMutation) ResetStatus() {
	m.status = nil
}

// SetLastError sets the "last_error" field.
func (m *MCPServerMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *MCPServerMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *MCPServerMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[mcpserver.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *MCPServerMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[mcpserver.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *MCPServerMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, mcpserver.FieldLastError)
}

// SetCatalogMeta sets the "catalog_meta" field.
func (m *MCPServerMutation) SetCatalogMeta(value map[string]interface{}) {
	m.catalog_meta = &value
}

// CatalogMeta returns the value of the "catalog_meta" field in the mutation.
func (m *MCPServerMutation) CatalogMeta() (r map[string]interface{}, exists bool) {
	v := m.catalog_meta
	if v == nil {
		return
	}
	return *v, true
}

// OldCatalogMeta returns the old "catalog_meta" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldCatalogMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCatalogMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCatalogMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCatalogMeta: %w", err)
	}
	return oldValue.CatalogMeta, nil
}

// ClearCatalogMeta clears the value of the "catalog_meta" field.
func (m *MCPServerMutation) ClearCatalogMeta() {
	m.catalog_meta = nil
	m.clearedFields[mcpserver.FieldCatalogMeta] = struct{}{}
}

// CatalogMetaCleared returns if the "catalog_meta" field was cleared in this mutation.
func (m *MCPServerMutation) CatalogMetaCleared() bool {
	_, ok := m.clearedFields[mcpserver.FieldCatalogMeta]
	return ok
}

// ResetCatalogMeta resets all changes to the "catalog_meta" field.
func (m *MCPServerMutation) ResetCatalogMeta() {
	m.catalog_meta = nil
	delete(m.clearedFields, mcpserver.FieldCatalogMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *MCPServerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MCPServerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MCPServerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MCPServerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MCPServerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MCPServer entity.
// If the MCPServer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MCPServerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MCPServerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSquad clears the "squad" edge to the Squad entity.
func (m *MCPServerMutation) ClearSquad() {
	m.clearedsquad = true
	m.clearedFields[mcpserver.FieldSquadID] = struct{}{}
}

// SquadCleared reports if the "squad" edge to the Squad entity was cleared.
func (m *MCPServerMutation) SquadCleared() bool {
	return m.clearedsquad
}

// SquadIDs returns the "squad" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SquadID instead. It exists only for internal usage by the builders.
func (m *MCPServerMutation) SquadIDs() (ids []string) {
	if id := m.squad; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSquad resets all changes to the "squad" edge.
func (m *MCPServerMutation) ResetSquad() {
	m.squad = nil
	m.clearedsquad = false
}

// Where appends a list predicates to the MCPServerMutation builder.
func (m *MCPServerMutation) Where(ps ...predicate.MCPServer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MCPServerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MCPServerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MCPServer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MCPServerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MCPServerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MCPServer).
func (m *MCPServerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MCPServerMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.squad != nil {
		fields = append(fields, mcpserver.FieldSquadID)
	}
	if m.name != nil {
		fields = append(fields, mcpserver.FieldName)
	}
	if m.source != nil {
		fields = append(fields, mcpserver.FieldSource)
	}
	if m.server_type != nil {
		fields = append(fields, mcpserver.FieldServerType)
	}
	if m.image != nil {
		fields = append(fields, mcpserver.FieldImage)
	}
	if m.url != nil {
		fields = append(fields, mcpserver.FieldURL)
	}
	if m.command != nil {
		fields = append(fields, mcpserver.FieldCommand)
	}
	if m.args != nil {
		fields = append(fields, mcpserver.FieldArgs)
	}
	if m.headers != nil {
		fields = append(fields, mcpserver.FieldHeaders)
	}
	if m.enabled != nil {
		fields = append(fields, mcpserver.FieldEnabled)
	}
	if m.status != nil {
		fields = append(fields, mcpserver.FieldStatus)
	}
	if m.last_error != nil {
		fields = append(fields, mcpserver.FieldLastError)
	}
	if m.catalog_meta != nil {
		fields = append(fields, mcpserver.FieldCatalogMeta)
	}
	if m.created_at != nil {
		fields = append(fields, mcpserver.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mcpserver.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MCPServerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mcpserver.FieldSquadID:
		return m.SquadID()
	case mcpserver.FieldName:
		return m.Name()
	case mcpserver.FieldSource:
		return m.Source()
	case mcpserver.FieldServerType:
		return m.ServerType()
	case mcpserver.FieldImage:
		return m.Image()
	case mcpserver.FieldURL:
		return m.URL()
	case mcpserver.FieldCommand:
		return m.Command()
	case mcpserver.FieldArgs:
		return m.Args()
	case mcpserver.FieldHeaders:
		return m.Headers()
	case mcpserver.FieldEnabled:
		return m.Enabled()
	case mcpserver.FieldStatus:
		return m.Status()
	case mcpserver.FieldLastError:
		return m.LastError()
	case mcpserver.FieldCatalogMeta:
		return m.CatalogMeta()
	case mcpserver.FieldCreatedAt:
		return m.CreatedAt()
	case mcpserver.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MCPServerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mcpserver.FieldSquadID:
		return m.OldSquadID(ctx)
	case mcpserver.FieldName:
		return m.OldName(ctx)
	case mcpserver.FieldSource:
		return m.OldSource(ctx)
	case mcpserver.FieldServerType:
		return m.OldServerType(ctx)
	case mcpserver.FieldImage:
		return m.OldImage(ctx)
	case mcpserver.FieldURL:
		return m.OldURL(ctx)
	case mcpserver.FieldCommand:
		return m.OldCommand(ctx)
	case mcpserver.FieldArgs:
		return m.OldArgs(ctx)
	case mcpserver.FieldHeaders:
		return m.OldHeaders(ctx)
	case mcpserver.FieldEnabled:
		return m.OldEnabled(ctx)
	case mcpserver.FieldStatus:
		return m.OldStatus(ctx)
	case mcpserver.FieldLastError:
		return m.OldLastError(ctx)
	case mcpserver.FieldCatalogMeta:
		return m.OldCatalogMeta(ctx)
	case mcpserver.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mcpserver.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MCPServer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MCPServerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mcpserver.FieldSquadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSquadID(v)
		return nil
	case mcpserver.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case mcpserver.FieldSource:
		v, ok := value.(mcpserver.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case mcpserver.FieldServerType:
		v, ok := value.(mcpserver.ServerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerType(v)
		return nil
	case mcpserver.FieldImage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImage(v)
		return nil
	case mcpserver.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case mcpserver.FieldCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommand(v)
		return nil
	case mcpserver.FieldArgs:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgs(v)
		return nil
	case mcpserver.FieldHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaders(v)
		return nil
	case mcpserver.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case mcpserver.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case mcpserver.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case mcpserver.FieldCatalogMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCatalogMeta(v)
		return nil
	case mcpserver.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mcpserver.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MCPServer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MCPServerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MCPServerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MCPServerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MCPServer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MCPServerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mcpserver.FieldImage) {
		fields = append(fields, mcpserver.FieldImage)
	}
	if m.FieldCleared(mcpserver.FieldURL) {
		fields = append(fields, mcpserver.FieldURL)
	}
	if m.FieldCleared(mcpserver.FieldCommand) {
		fields = append(fields, mcpserver.FieldCommand)
	}
	if m.FieldCleared(mcpserver.FieldArgs) {
		fields = append(fields, mcpserver.FieldArgs)
	}
	if m.FieldCleared(mcpserver.FieldHeaders) {
		fields = append(fields, mcpserver.FieldHeaders)
	}
	if m.FieldCleared(mcpserver.FieldLastError) {
		fields = append(fields, mcpserver.FieldLastError)
	}
	if m.FieldCleared(mcpserver.FieldCatalogMeta) {
		fields = append(fields, mcpserver.FieldCatalogMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MCPServerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MCPServerMutation) ClearField(name string) error {
	switch name {
	case mcpserver.FieldImage:
		m.ClearImage()
		return nil
	case mcpserver.FieldURL:
		m.ClearURL()
		return nil
	case mcpserver.FieldCommand:
		m.ClearCommand()
		return nil
	case mcpserver.FieldArgs:
		m.ClearArgs()
		return nil
	case mcpserver.FieldHeaders:
		m.ClearHeaders()
		return nil
	case mcpserver.FieldLastError:
		m.ClearLastError()
		return nil
	case mcpserver.FieldCatalogMeta:
		m.ClearCatalogMeta()
		return nil
	}
	return fmt.Errorf("unknown MCPServer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MCPServerMutation) ResetField(name string) error {
	switch name {
	case mcpserver.FieldSquadID:
		m.ResetSquadID()
		return nil
	case mcpserver.FieldName:
		m.ResetName()
		return nil
	case mcpserver.FieldSource:
		m.ResetSource()
		return nil
	case mcpserver.FieldServerType:
		m.ResetServerType()
		return nil
	case mcpserver.FieldImage:
		m.ResetImage()
		return nil
	case mcpserver.FieldURL:
		m.ResetURL()
		return nil
	case mcpserver.FieldCommand:
		m.ResetCommand()
		return nil
	case mcpserver.FieldArgs:
		m.ResetArgs()
		return nil
	case mcpserver.FieldHeaders:
		m.ResetHeaders()
		return nil
	case mcpserver.FieldEnabled:
		m.ResetEnabled()
		return nil
	case mcpserver.FieldStatus:
		m.ResetStatus()
		return nil
	case mcpserver.FieldLastError:
		m.ResetLastError()
		return nil
	case mcpserver.FieldCatalogMeta:
		m.ResetCatalogMeta()
		return nil
	case mcpserver.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mcpserver.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MCPServer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MCPServerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.squad != nil {
		edges = append(edges, mcpserver.EdgeSquad)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MCPServerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mcpserver.EdgeSquad:
		if id := m.squad; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MCPServerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MCPServerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MCPServerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsquad {
		edges = append(edges, mcpserver.EdgeSquad)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MCPServerMutation) EdgeCleared(name string) bool {
	switch name {
	case mcpserver.EdgeSquad:
		return m.clearedsquad
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MCPServerMutation) ClearEdge(name string) error {
	switch name {
	case mcpserver.EdgeSquad:
		m.ClearSquad()
		return nil
	}
	return fmt.Errorf("unknown MCPServer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MCPServerMutation) ResetEdge(name string) error {
	switch name {
	case mcpserver.EdgeSquad:
		m.ResetSquad()
		return nil
	}
	return fmt.Errorf("unknown MCPServer edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	name                    *string
	_path                   *string
	_config                 *map[string]interface{}
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	squads                  map[string]struct{}
	removedsquads           map[string]struct{}
	clearedsquads           bool
	sessions                map[string]struct{}
	removedsessions         map[string]struct{}
	clearedsessions         bool
	cards                   map[string]struct{}
	removedcards            map[string]struct{}
	clearedcards            bool
	events                  map[int]struct{}
	removedevents           map[int]struct{}
	clearedevents           bool
	lane_assignments        map[string]struct{}
	removedlane_assignments map[string]struct{}
	clearedlane_assignments bool
	done                    bool
	oldValue                func(context.Context) (*Project, error)
	predicates              []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetPath sets the "path" field.
func (m *ProjectMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *ProjectMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ResetPath resets all changes to the "path" field.
func (m *ProjectMutation) ResetPath() {
	m._path = nil
}

// SetConfig sets the "config" field.
func (m *ProjectMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ProjectMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *ProjectMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[project.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *ProjectMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[project.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *ProjectMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, project.FieldConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSquadIDs adds the "squads" edge to the Squad entity by ids.
func (m *ProjectMutation) AddSquadIDs(ids ...string) {
	if m.squads == nil {
		m.squads = make(map[string]struct{})
	}
	for i := range ids {
		m.squads[ids[i]] = struct{}{}
	}
}

// ClearSquads clears the "squads" edge to the Squad entity.
func (m *ProjectMutation) ClearSquads() {
	m.clearedsquads = true
}

// SquadsCleared reports if the "squads" edge to the Squad entity was cleared.
func (m *ProjectMutation) SquadsCleared() bool {
	return m.clearedsquads
}

// RemoveSquadIDs removes the "squads" edge to the Squad entity by IDs.
func (m *ProjectMutation) RemoveSquadIDs(ids ...string) {
	if m.removedsquads == nil {
		m.removedsquads = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.squads, ids[i])
		m.removedsquads[ids[i]] = struct{}{}
	}
}

// RemovedSquads returns the removed IDs of the "squads" edge to the Squad entity.
func (m *ProjectMutation) RemovedSquadsIDs() (ids []string) {
	for id := range m.removedsquads {
		ids = append(ids, id)
	}
	return
}

// SquadsIDs returns the "squads" edge IDs in the mutation.
func (m *ProjectMutation) SquadsIDs() (ids []string) {
	for id := range m.squads {
		ids = append(ids, id)
	}
	return
}

// ResetSquads resets all changes to the "squads" edge.
func (m *ProjectMutation) ResetSquads() {
	m.squads = nil
	m.clearedsquads = false
	m.removedsquads = nil
}

// AddSessionIDs adds the "sessions" edge to the AgentSession entity by ids.
func (m *ProjectMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AgentSession entity.
func (m *ProjectMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AgentSession entity was cleared.
func (m *ProjectMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AgentSession entity by IDs.
func (m *ProjectMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AgentSession entity.
func (m *ProjectMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ProjectMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ProjectMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddCardIDs adds the "cards" edge to the Card entity by ids.
func (m *ProjectMutation) AddCardIDs(ids ...string) {
	if m.cards == nil {
		m.cards = make(map[string]struct{})
	}
	for i := range ids {
		m.cards[ids[i]] = struct{}{}
	}
}

// ClearCards clears the "cards" edge to the Card entity.
func (m *ProjectMutation) ClearCards() {
	m.clearedcards = true
}

// CardsCleared reports if the "cards" edge to the Card entity was cleared.
func (m *ProjectMutation) CardsCleared() bool {
	return m.clearedcards
}

// RemoveCardIDs removes the "cards" edge to the Card entity by IDs.
func (m *ProjectMutation) RemoveCardIDs(ids ...string) {
	if m.removedcards == nil {
		m.removedcards = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cards, ids[i])
		m.removedcards[ids[i]] = struct{}{}
	}
}

// RemovedCards returns the removed IDs of the "cards" edge to the Card entity.
func (m *ProjectMutation) RemovedCardsIDs() (ids []string) {
	for id := range m.removedcards {
		ids = append(ids, id)
	}
	return
}

// CardsIDs returns the "cards" edge IDs in the mutation.
func (m *ProjectMutation) CardsIDs() (ids []string) {
	for id := range m.cards {
		ids = append(ids, id)
	}
	return
}

// ResetCards resets all changes to the "cards" edge.
func (m *ProjectMutation) ResetCards() {
	m.cards = nil
	m.clearedcards = false
	m.removedcards = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *ProjectMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *ProjectMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *ProjectMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *ProjectMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *ProjectMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *ProjectMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *ProjectMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddLaneAssignmentIDs adds the "lane_assignments" edge to the LaneAssignment entity by ids.
func (m *ProjectMutation) AddLaneAssignmentIDs(ids ...string) {
	if m.lane_assignments == nil {
		m.lane_assignments = make(map[string]struct{})
	}
	for i := range ids {
		m.lane_assignments[ids[i]] = struct{}{}
	}
}

// ClearLaneAssignments clears the "lane_assignments" edge to the LaneAssignment entity.
func (m *ProjectMutation) ClearLaneAssignments() {
	m.clearedlane_assignments = true
}

// LaneAssignmentsCleared reports if the "lane_assignments" edge to the LaneAssignment entity was cleared.
func (m *ProjectMutation) LaneAssignmentsCleared() bool {
	return m.clearedlane_assignments
}

// RemoveLaneAssignmentIDs removes the "lane_assignments" edge to the LaneAssignment entity by IDs.
func (m *ProjectMutation) RemoveLaneAssignmentIDs(ids ...string) {
	if m.removedlane_assignments == nil {
		m.removedlane_assignments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.lane_assignments, ids[i])
		m.removedlane_assignments[ids[i]] = struct{}{}
	}
}

// RemovedLaneAssignments returns the removed IDs of the "lane_assignments" edge to the LaneAssignment entity.
func (m *ProjectMutation) RemovedLaneAssignmentsIDs() (ids []string) {
	for id := range m.removedlane_assignments {
		ids = append(ids, id)
	}
	return
}

// LaneAssignmentsIDs returns the "lane_assignments" edge IDs in the mutation.
func (m *ProjectMutation) LaneAssignmentsIDs() (ids []string) {
	for id := range m.lane_assignments {
		ids = append(ids, id)
	}
	return
}

// ResetLaneAssignments resets all changes to the "lane_assignments" edge.
func (m *ProjectMutation) ResetLaneAssignments() {
	m.lane_assignments = nil
	m.clearedlane_assignments = false
	m.removedlane_assignments = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m._path != nil {
		fields = append(fields, project.FieldPath)
	}
	if m._config != nil {
		fields = append(fields, project.FieldConfig)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldPath:
		return m.Path()
	case project.FieldConfig:
		return m.Config()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldPath:
		return m.OldPath(ctx)
	case project.FieldConfig:
		return m.OldConfig(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case project.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldConfig) {
		fields = append(fields, project.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldPath:
		m.ResetPath()
		return nil
	case project.FieldConfig:
		m.ResetConfig()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.squads != nil {
		edges = append(edges, project.EdgeSquads)
	}
	if m.sessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	if m.cards != nil {
		edges = append(edges, project.EdgeCards)
	}
	if m.events != nil {
		edges = append(edges, project.EdgeEvents)
	}
	if m.lane_assignments != nil {
		edges = append(edges, project.EdgeLaneAssignments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSquads:
		ids := make([]ent.Value, 0, len(m.squads))
		for id := range m.squads {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeCards:
		ids := make([]ent.Value, 0, len(m.cards))
		for id := range m.cards {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeLaneAssignments:
		ids := make([]ent.Value, 0, len(m.lane_assignments))
		for id := range m.lane_assignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedsquads != nil {
		edges = append(edges, project.EdgeSquads)
	}
	if m.removedsessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	if m.removedcards != nil {
		edges = append(edges, project.EdgeCards)
	}
	if m.removedevents != nil {
		edges = append(edges, project.EdgeEvents)
	}
	if m.removedlane_assignments != nil {
		edges = append(edges, project.EdgeLaneAssignments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeSquads:
		ids := make([]ent.Value, 0, len(m.removedsquads))
		for id := range m.removedsquads {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeCards:
		ids := make([]ent.Value, 0, len(m.removedcards))
		for id := range m.removedcards {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeLaneAssignments:
		ids := make([]ent.Value, 0, len(m.removedlane_assignments))
		for id := range m.removedlane_assignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedsquads {
		edges = append(edges, project.EdgeSquads)
	}
	if m.clearedsessions {
		edges = append(edges, project.EdgeSessions)
	}
	if m.clearedcards {
		edges = append(edges, project.EdgeCards)
	}
	if m.clearedevents {
		edges = append(edges, project.EdgeEvents)
	}
	if m.clearedlane_assignments {
		edges = append(edges, project.EdgeLaneAssignments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeSquads:
		return m.clearedsquads
	case project.EdgeSessions:
		return m.clearedsessions
	case project.EdgeCards:
		return m.clearedcards
	case project.EdgeEvents:
		return m.clearedevents
	case project.EdgeLaneAssignments:
		return m.clearedlane_assignments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeSquads:
		m.ResetSquads()
		return nil
	case project.EdgeSessions:
		m.ResetSessions()
		return nil
	case project.EdgeCards:
		m.ResetCards()
		return nil
	case project.EdgeEvents:
		m.ResetEvents()
		return nil
	case project.EdgeLaneAssignments:
		m.ResetLaneAssignments()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SquadMutation represents an operation that mutates the Squad nodes in the graph.
type SquadMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	description        *string
	opencode_status    *squad.OpencodeStatus
	opencode_url       *string
	opencode_pid       *int
	addopencode_pid    *int
	last_error         *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	project            *string
	clearedproject     bool
	agents             map[string]struct{}
	removedagents      map[string]struct{}
	clearedagents      bool
	cards              map[string]struct{}
	removedcards       map[string]struct{}
	clearedcards       bool
	mcp_servers        map[string]struct{}
	removedmcp_servers map[string]struct{}
	clearedmcp_servers bool
	done               bool
	oldValue           func(context.Context) (*Squad, error)
	predicates         []predicate.Squad
}

var _ ent.Mutation = (*SquadMutation)(nil)

// squadOption allows management of the mutation configuration using functional options.
type squadOption func(*SquadMutation)

// newSquadMutation creates new mutation for the Squad entity.
func newSquadMutation(c config, op Op, opts ...squadOption) *SquadMutation {
	m := &SquadMutation{
		config:        c,
		op:            op,
		typ:           TypeSquad,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSquadID sets the ID field of the mutation.
func withSquadID(id string) squadOption {
	return func(m *SquadMutation) {
		var (
			err   error
			once  sync.Once
			value *Squad
		)
		m.oldValue = func(ctx context.Context) (*Squad, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Squad.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSquad sets the old Squad of the mutation.
func withSquad(node *Squad) squadOption {
	return func(m *SquadMutation) {
		m.oldValue = func(context.Context) (*Squad, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SquadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SquadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Squad entities.
func (m *SquadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SquadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SquadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Squad.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SquadMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SquadMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Squad entity.
// If the Squad object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SquadMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SquadMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *SquadMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SquadMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Squad entity.
// If the Squad object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SquadMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SquadMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *SquadMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SquadMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Squad entity.
// If the Squad object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SquadMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SquadMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[squad.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SquadMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[squad.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SquadMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, squad.FieldDescription)
}

// SetOpencodeStatus sets the "opencode_status" field.
func (m *SquadMutation) SetOpencodeStatus(ss squad.OpencodeStatus) {
	m.opencode_status = &ss
}

// OpencodeStatus returns the value of the "opencode_status" field in the mutation.
func (m *SquadMutation) OpencodeStatus() (r squad.OpencodeStatus, exists bool) {
	v := m.opencode_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOpencodeStatus returns the old "opencode_status" field's value of the Squad entity.
// If the Squad object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SquadMutation) OldOpencodeStatus(ctx context.Context) (v squad.OpencodeStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpencodeStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpencodeStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpencodeStatus: %w", err)
	}
	return oldValue.OpencodeStatus, nil
}

// ResetOpencodeStatus resets all changes to the "opencode_status" field.
func (m *SquadMutation) ResetOpencodeStatus() {
	m.opencode_status = nil
}

// SetOpencodeURL sets the "opencode_url" field.
func (m *SquadMutation) SetOpencodeURL(s string) {
	m.opencode_url = &s
}

// OpencodeURL returns the value of the "opencode_url" field in the mutation.
func (m *SquadMutation) OpencodeURL() (r string, exists bool) {
	v := m.opencode_url
	if v == nil {
		return
	}
	return *v, true
}

// OldOpencodeURL returns the old "opencode_url" field's value of the Squad entity.
// If the Squad object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SquadMutation) OldOpencodeURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpencodeURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpencodeURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpencodeURL: %w", err)
	}
	return oldValue.OpencodeURL, nil
}

// ClearOpencodeURL clears the value of the "opencode_url" field.
func (m *SquadMutation) ClearOpencodeURL() {
	m.opencode_url = nil
	m.clearedFields[squad.FieldOpencodeURL] = struct{}{}
}

// OpencodeURLCleared returns if the "opencode_url" field was cleared in this mutation.
func (m *SquadMutation) OpencodeURLCleared() bool {
	_, ok := m.clearedFields[squad.FieldOpencodeURL]
	return ok
}

// ResetOpencodeURL resets all changes to the "opencode_url" field.
func (m *SquadMutation) ResetOpencodeURL() {
	m.opencode_url = nil
	delete(m.clearedFields, squad.FieldOpencodeURL)
}

// SetOpencodePid sets the "opencode_pid" field.
func (m *SquadMutation) SetOpencodePid(i int) {
	m.opencode_pid = &i
	m.addopencode_pid = nil
}

// OpencodePid returns the value of the "opencode_pid" field in the mutation.
func (m *SquadMutation) OpencodePid() (r int, exists bool) {
	v := m.opencode_pid
	if v == nil {
		return
	}
	return *v, true
}

// OldOpencodePid returns the old "opencode_pid" field's value of the Squad entity.
// If the Squad object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SquadMutation) OldOpencodePid(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpencodePid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpencodePid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpencodePid: %w", err)
	}
	return oldValue.OpencodePid, nil
}

// AddOpencodePid adds i to the "opencode_pid" field.
func (m *SquadMutation) AddOpencodePid(i int) {
	if m.addopencode_pid != nil {
		*m.addopencode_pid += i
	} else {
		m.addopencode_pid = &i
	}
}

// AddedOpencodePid returns the value that was added to the "opencode_pid" field in this mutation.
func (m *SquadMutation) AddedOpencodePid() (r int, exists bool) {
	v := m.addopencode_pid
	if v == nil {
		return
	}
	return *v, true
}

// ClearOpencodePid clears the value of the "opencode_pid" field.
func (m *SquadMutation) ClearOpencodePid() {
	m.opencode_pid = nil
	m.addopencode_pid = nil
	m.clearedFields[squad.FieldOpencodePid] = struct{}{}
}

// OpencodePidCleared returns if the "opencode_pid" field was cleared in this mutation.
func (m *SquadMutation) OpencodePidCleared() bool {
	_, ok := m.clearedFields[squad.FieldOpencodePid]
	return ok
}

// ResetOpencodePid resets all changes to the "opencode_pid" field.
func (m *SquadMutation) ResetOpencodePid() {
	m.opencode_pid = nil
	m.addopencode_pid = nil
	delete(m.clearedFields, squad.FieldOpencodePid)
}

// SetLastError sets the "last_error" field.
func (m *SquadMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *SquadMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Squad entity.
// If the Squad object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SquadMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *SquadMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[squad.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *SquadMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[squad.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *SquadMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, squad.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *SquadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SquadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Squad entity.
// If the Squad object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SquadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SquadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SquadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SquadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Squad entity.
// If the Squad object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SquadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SquadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SquadMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[squad.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SquadMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SquadMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SquadMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *SquadMutation) AddAgentIDs(ids ...string) {
	if m.agents == nil {
		m.agents = make(map[string]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *SquadMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *SquadMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *SquadMutation) RemoveAgentIDs(ids ...string) {
	if m.removedagents == nil {
		m.removedagents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *SquadMutation) RemovedAgentsIDs() (ids []string) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *SquadMutation) AgentsIDs() (ids []string) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *SquadMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddCardIDs adds the "cards" edge to the Card entity by ids.
func (m *SquadMutation) AddCardIDs(ids ...string) {
	if m.cards == nil {
		m.cards = make(map[string]struct{})
	}
	for i := range ids {
		m.cards[ids[i]] = struct{}{}
	}
}

// ClearCards clears the "cards" edge to the Card entity.
func (m *SquadMutation) ClearCards() {
	m.clearedcards = true
}

// CardsCleared reports if the "cards" edge to the Card entity was cleared.
func (m *SquadMutation) CardsCleared() bool {
	return m.clearedcards
}

// RemoveCardIDs removes the "cards" edge to the Card entity by IDs.
func (m *SquadMutation) RemoveCardIDs(ids ...string) {
	if m.removedcards == nil {
		m.removedcards = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.cards, ids[i])
		m.removedcards[ids[i]] = struct{}{}
	}
}

// RemovedCards returns the removed IDs of the "cards" edge to the Card entity.
func (m *SquadMutation) RemovedCardsIDs() (ids []string) {
	for id := range m.removedcards {
		ids = append(ids, id)
	}
	return
}

// CardsIDs returns the "cards" edge IDs in the mutation.
func (m *SquadMutation) CardsIDs() (ids []string) {
	for id := range m.cards {
		ids = append(ids, id)
	}
	return
}

// ResetCards resets all changes to the "cards" edge.
func (m *SquadMutation) ResetCards() {
	m.cards = nil
	m.clearedcards = false
	m.removedcards = nil
}

// AddMcpServerIDs adds the "mcp_servers" edge to the MCPServer entity by ids.
func (m *SquadMutation) AddMcpServerIDs(ids ...string) {
	if m.mcp_servers == nil {
		m.mcp_servers = make(map[string]struct{})
	}
	for i := range ids {
		m.mcp_servers[ids[i]] = struct{}{}
	}
}

// ClearMcpServers clears the "mcp_servers" edge to the MCPServer entity.
func (m *SquadMutation) ClearMcpServers() {
	m.clearedmcp_servers = true
}

// McpServersCleared reports if the "mcp_servers" edge to the MCPServer entity was cleared.
func (m *SquadMutation) McpServersCleared() bool {
	return m.clearedmcp_servers
}

// RemoveMcpServerIDs removes the "mcp_servers" edge to the MCPServer entity by IDs.
func (m *SquadMutation) RemoveMcpServerIDs(ids ...string) {
	if m.removedmcp_servers == nil {
		m.removedmcp_servers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.mcp_servers, ids[i])
		m.removedmcp_servers[ids[i]] = struct{}{}
	}
}

// RemovedMcpServers returns the removed IDs of the "mcp_servers" edge to the MCPServer entity.
func (m *SquadMutation) RemovedMcpServersIDs() (ids []string) {
	for id := range m.removedmcp_servers {
		ids = append(ids, id)
	}
	return
}

// McpServersIDs returns the "mcp_servers" edge IDs in the mutation.
func (m *SquadMutation) McpServersIDs() (ids []string) {
	for id := range m.mcp_servers {
		ids = append(ids, id)
	}
	return
}

// ResetMcpServers resets all changes to the "mcp_servers" edge.
func (m *SquadMutation) ResetMcpServers() {
	m.mcp_servers = nil
	m.clearedmcp_servers = false
	m.removedmcp_servers = nil
}

// Where appends a list predicates to the SquadMutation builder.
func (m *SquadMutation) Where(ps ...predicate.Squad) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SquadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SquadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Squad, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SquadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SquadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Squad).
func (m *SquadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SquadMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project != nil {
		fields = append(fields, squad.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, squad.FieldName)
	}
	if m.description != nil {
		fields = append(fields, squad.FieldDescription)
	}
	if m.opencode_status != nil {
		fields = append(fields, squad.FieldOpencodeStatus)
	}
	if m.opencode_url != nil {
		fields = append(fields, squad.FieldOpencodeURL)
	}
	if m.opencode_pid != nil {
		fields = append(fields, squad.FieldOpencodePid)
	}
	if m.last_error != nil {
		fields = append(fields, squad.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, squad.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, squad.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SquadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case squad.FieldProjectID:
		return m.ProjectID()
	case squad.FieldName:
		return m.Name()
	case squad.FieldDescription:
		return m.Description()
	case squad.FieldOpencodeStatus:
		return m.OpencodeStatus()
	case squad.FieldOpencodeURL:
		return m.OpencodeURL()
	case squad.FieldOpencodePid:
		return m.OpencodePid()
	case squad.FieldLastError:
		return m.LastError()
	case squad.FieldCreatedAt:
		return m.CreatedAt()
	case squad.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SquadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case squad.FieldProjectID:
		return m.OldProjectID(ctx)
	case squad.FieldName:
		return m.OldName(ctx)
	case squad.FieldDescription:
		return m.OldDescription(ctx)
	case squad.FieldOpencodeStatus:
		return m.OldOpencodeStatus(ctx)
	case squad.FieldOpencodeURL:
		return m.OldOpencodeURL(ctx)
	case squad.FieldOpencodePid:
		return m.OldOpencodePid(ctx)
	case squad.FieldLastError:
		return m.OldLastError(ctx)
	case squad.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case squad.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Squad field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SquadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case squad.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case squad.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case squad.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case squad.FieldOpencodeStatus:
		v, ok := value.(squad.OpencodeStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpencodeStatus(v)
		return nil
	case squad.FieldOpencodeURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpencodeURL(v)
		return nil
	case squad.FieldOpencodePid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpencodePid(v)
		return nil
	case squad.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case squad.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case squad.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Squad field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SquadMutation) AddedFields() []string {
	var fields []string
	if m.addopencode_pid != nil {
		fields = append(fields, squad.FieldOpencodePid)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SquadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case squad.FieldOpencodePid:
		return m.AddedOpencodePid()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SquadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case squad.FieldOpencodePid:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOpencodePid(v)
		return nil
	}
	return fmt.Errorf("unknown Squad numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SquadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(squad.FieldDescription) {
		fields = append(fields, squad.FieldDescription)
	}
	if m.FieldCleared(squad.FieldOpencodeURL) {
		fields = append(fields, squad.FieldOpencodeURL)
	}
	if m.FieldCleared(squad.FieldOpencodePid) {
		fields = append(fields, squad.FieldOpencodePid)
	}
	if m.FieldCleared(squad.FieldLastError) {
		fields = append(fields, squad.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SquadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SquadMutation) ClearField(name string) error {
	switch name {
	case squad.FieldDescription:
		m.ClearDescription()
		return nil
	case squad.FieldOpencodeURL:
		m.ClearOpencodeURL()
		return nil
	case squad.FieldOpencodePid:
		m.ClearOpencodePid()
		return nil
	case squad.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown Squad nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SquadMutation) ResetField(name string) error {
	switch name {
	case squad.FieldProjectID:
		m.ResetProjectID()
		return nil
	case squad.FieldName:
		m.ResetName()
		return nil
	case squad.FieldDescription:
		m.ResetDescription()
		return nil
	case squad.FieldOpencodeStatus:
		m.ResetOpencodeStatus()
		return nil
	case squad.FieldOpencodeURL:
		m.ResetOpencodeURL()
		return nil
	case squad.FieldOpencodePid:
		m.ResetOpencodePid()
		return nil
	case squad.FieldLastError:
		m.ResetLastError()
		return nil
	case squad.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case squad.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Squad field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SquadMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.project != nil {
		edges = append(edges, squad.EdgeProject)
	}
	if m.agents != nil {
		edges = append(edges, squad.EdgeAgents)
	}
	if m.cards != nil {
		edges = append(edges, squad.EdgeCards)
	}
	if m.mcp_servers != nil {
		edges = append(edges, squad.EdgeMcpServers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SquadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case squad.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case squad.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case squad.EdgeCards:
		ids := make([]ent.Value, 0, len(m.cards))
		for id := range m.cards {
			ids = append(ids, id)
		}
		return ids
	case squad.EdgeMcpServers:
		ids := make([]ent.Value, 0, len(m.mcp_servers))
		for id := range m.mcp_servers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SquadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedagents != nil {
		edges = append(edges, squad.EdgeAgents)
	}
	if m.removedcards != nil {
		edges = append(edges, squad.EdgeCards)
	}
	if m.removedmcp_servers != nil {
		edges = append(edges, squad.EdgeMcpServers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SquadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case squad.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case squad.EdgeCards:
		ids := make([]ent.Value, 0, len(m.removedcards))
		for id := range m.removedcards {
			ids = append(ids, id)
		}
		return ids
	case squad.EdgeMcpServers:
		ids := make([]ent.Value, 0, len(m.removedmcp_servers))
		for id := range m.removedmcp_servers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SquadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedproject {
		edges = append(edges, squad.EdgeProject)
	}
	if m.clearedagents {
		edges = append(edges, squad.EdgeAgents)
	}
	if m.clearedcards {
		edges = append(edges, squad.EdgeCards)
	}
	if m.clearedmcp_servers {
		edges = append(edges, squad.EdgeMcpServers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SquadMutation) EdgeCleared(name string) bool {
	switch name {
	case squad.EdgeProject:
		return m.clearedproject
	case squad.EdgeAgents:
		return m.clearedagents
	case squad.EdgeCards:
		return m.clearedcards
	case squad.EdgeMcpServers:
		return m.clearedmcp_servers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SquadMutation) ClearEdge(name string) error {
	switch name {
	case squad.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Squad unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SquadMutation) ResetEdge(name string) error {
	switch name {
	case squad.EdgeProject:
		m.ResetProject()
		return nil
	case squad.EdgeAgents:
		m.ResetAgents()
		return nil
	case squad.EdgeCards:
		m.ResetCards()
		return nil
	case squad.EdgeMcpServers:
		m.ResetMcpServers()
		return nil
	}
	return fmt.Errorf("unknown Squad edge %s", name)
}

// TranscriptEntryMutation represents an operation that mutates the TranscriptEntry nodes in the graph.
type TranscriptEntryMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	seq                *int
	addseq             *int
	role               *transcriptentry.Role
	backend_message_id *string
	payload            *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	done               bool
	oldValue           func(context.Context) (*TranscriptEntry, error)
	predicates         []predicate.TranscriptEntry
}

var _ ent.Mutation = (*TranscriptEntryMutation)(nil)

// transcriptentryOption allows management of the mutation configuration using functional options.
type transcriptentryOption func(*TranscriptEntryMutation)

// newTranscriptEntryMutation creates new mutation for the TranscriptEntry entity.
func newTranscriptEntryMutation(c config, op Op, opts ...transcriptentryOption) *TranscriptEntryMutation {
	m := &TranscriptEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscriptEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptEntryID sets the ID field of the mutation.
func withTranscriptEntryID(id string) transcriptentryOption {
	return func(m *TranscriptEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *TranscriptEntry
		)
		m.oldValue = func(ctx context.Context) (*TranscriptEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TranscriptEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscriptEntry sets the old TranscriptEntry of the mutation.
func withTranscriptEntry(node *TranscriptEntry) transcriptentryOption {
	return func(m *TranscriptEntryMutation) {
		m.oldValue = func(context.Context) (*TranscriptEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TranscriptEntry entities.
func (m *TranscriptEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TranscriptEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TranscriptEntryMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TranscriptEntryMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TranscriptEntry entity.
// If the TranscriptEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptEntryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TranscriptEntryMutation) ResetSessionID() {
	m.session = nil
}

// SetSeq sets the "seq" field.
func (m *TranscriptEntryMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *TranscriptEntryMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the TranscriptEntry entity.
// If the TranscriptEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptEntryMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *TranscriptEntryMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *TranscriptEntryMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *TranscriptEntryMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetRole sets the "role" field.
func (m *TranscriptEntryMutation) SetRole(t transcriptentry.Role) {
	m.role = &t
}

// Role returns the value of the "role" field in the mutation.
func (m *TranscriptEntryMutation) Role() (r transcriptentry.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the TranscriptEntry entity.
// If the TranscriptEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptEntryMutation) OldRole(ctx context.Context) (v transcriptentry.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *TranscriptEntryMutation) ResetRole() {
	m.role = nil
}

// SetBackendMessageID sets the "backend_message_id" field.
func (m *TranscriptEntryMutation) SetBackendMessageID(s string) {
	m.backend_message_id = &s
}

// BackendMessageID returns the value of the "backend_message_id" field in the mutation.
func (m *TranscriptEntryMutation) BackendMessageID() (r string, exists bool) {
	v := m.backend_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBackendMessageID returns the old "backend_message_id" field's value of the TranscriptEntry entity.
// If the TranscriptEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptEntryMutation) OldBackendMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackendMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackendMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackendMessageID: %w", err)
	}
	return oldValue.BackendMessageID, nil
}

// ClearBackendMessageID clears the value of the "backend_message_id" field.
func (m *TranscriptEntryMutation) ClearBackendMessageID() {
	m.backend_message_id = nil
	m.clearedFields[transcriptentry.FieldBackendMessageID] = struct{}{}
}

// BackendMessageIDCleared returns if the "backend_message_id" field was cleared in this mutation.
func (m *TranscriptEntryMutation) BackendMessageIDCleared() bool {
	_, ok := m.clearedFields[transcriptentry.FieldBackendMessageID]
	return ok
}

// ResetBackendMessageID resets all changes to the "backend_message_id" field.
func (m *TranscriptEntryMutation) ResetBackendMessageID() {
	m.backend_message_id = nil
	delete(m.clearedFields, transcriptentry.FieldBackendMessageID)
}

// SetPayload sets the "payload" field.
func (m *TranscriptEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *TranscriptEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the TranscriptEntry entity.
// If the TranscriptEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *TranscriptEntryMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TranscriptEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranscriptEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TranscriptEntry entity.
// If the TranscriptEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranscriptEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AgentSession entity.
func (m *TranscriptEntryMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[transcriptentry.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AgentSession entity was cleared.
func (m *TranscriptEntryMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *TranscriptEntryMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *TranscriptEntryMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the TranscriptEntryMutation builder.
func (m *TranscriptEntryMutation) Where(ps ...predicate.TranscriptEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TranscriptEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TranscriptEntry).
func (m *TranscriptEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session != nil {
		fields = append(fields, transcriptentry.FieldSessionID)
	}
	if m.seq != nil {
		fields = append(fields, transcriptentry.FieldSeq)
	}
	if m.role != nil {
		fields = append(fields, transcriptentry.FieldRole)
	}
	if m.backend_message_id != nil {
		fields = append(fields, transcriptentry.FieldBackendMessageID)
	}
	if m.payload != nil {
		fields = append(fields, transcriptentry.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, transcriptentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcriptentry.FieldSessionID:
		return m.SessionID()
	case transcriptentry.FieldSeq:
		return m.Seq()
	case transcriptentry.FieldRole:
		return m.Role()
	case transcriptentry.FieldBackendMessageID:
		return m.BackendMessageID()
	case transcriptentry.FieldPayload:
		return m.Payload()
	case transcriptentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcriptentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case transcriptentry.FieldSeq:
		return m.OldSeq(ctx)
	case transcriptentry.FieldRole:
		return m.OldRole(ctx)
	case transcriptentry.FieldBackendMessageID:
		return m.OldBackendMessageID(ctx)
	case transcriptentry.FieldPayload:
		return m.OldPayload(ctx)
	case transcriptentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TranscriptEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcriptentry.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case transcriptentry.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case transcriptentry.FieldRole:
		v, ok := value.(transcriptentry.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case transcriptentry.FieldBackendMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackendMessageID(v)
		return nil
	case transcriptentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case transcriptentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptEntryMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, transcriptentry.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcriptentry.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcriptentry.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcriptentry.FieldBackendMessageID) {
		fields = append(fields, transcriptentry.FieldBackendMessageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptEntryMutation) ClearField(name string) error {
	switch name {
	case transcriptentry.FieldBackendMessageID:
		m.ClearBackendMessageID()
		return nil
	}
	return fmt.Errorf("unknown TranscriptEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptEntryMutation) ResetField(name string) error {
	switch name {
	case transcriptentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case transcriptentry.FieldSeq:
		m.ResetSeq()
		return nil
	case transcriptentry.FieldRole:
		m.ResetRole()
		return nil
	case transcriptentry.FieldBackendMessageID:
		m.ResetBackendMessageID()
		return nil
	case transcriptentry.FieldPayload:
		m.ResetPayload()
		return nil
	case transcriptentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TranscriptEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, transcriptentry.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcriptentry.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, transcriptentry.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case transcriptentry.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptEntryMutation) ClearEdge(name string) error {
	switch name {
	case transcriptentry.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown TranscriptEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptEntryMutation) ResetEdge(name string) error {
	switch name {
	case transcriptentry.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown TranscriptEntry edge %s", name)
}
