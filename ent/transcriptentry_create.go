// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/transcriptentry"
)

// TranscriptEntryCreate is the builder for creating a TranscriptEntry entity.
type TranscriptEntryCreate struct {
	config
	mutation *TranscriptEntryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TranscriptEntryCreate) SetSessionID(v string) *TranscriptEntryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *TranscriptEntryCreate) SetSeq(v int) *TranscriptEntryCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *TranscriptEntryCreate) SetRole(v transcriptentry.Role) *TranscriptEntryCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetBackendMessageID sets the "backend_message_id" field.
func (_c *TranscriptEntryCreate) SetBackendMessageID(v string) *TranscriptEntryCreate {
	_c.mutation.SetBackendMessageID(v)
	return _c
}

// SetNillableBackendMessageID sets the "backend_message_id" field if the given value is not nil.
func (_c *TranscriptEntryCreate) SetNillableBackendMessageID(v *string) *TranscriptEntryCreate {
	if v != nil {
		_c.SetBackendMessageID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *TranscriptEntryCreate) SetPayload(v map[string]interface{}) *TranscriptEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptEntryCreate) SetCreatedAt(v time.Time) *TranscriptEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptEntryCreate) SetNillableCreatedAt(v *time.Time) *TranscriptEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptEntryCreate) SetID(v string) *TranscriptEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AgentSession entity.
func (_c *TranscriptEntryCreate) SetSession(v *AgentSession) *TranscriptEntryCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the TranscriptEntryMutation object of the builder.
func (_c *TranscriptEntryCreate) Mutation() *TranscriptEntryMutation {
	return _c.mutation
}

// Save creates the TranscriptEntry in the database.
func (_c *TranscriptEntryCreate) Save(ctx context.Context) (*TranscriptEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptEntryCreate) SaveX(ctx context.Context) *TranscriptEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcriptentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptEntryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TranscriptEntry.session_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "TranscriptEntry.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := transcriptentry.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "TranscriptEntry.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "TranscriptEntry.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := transcriptentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "TranscriptEntry.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "TranscriptEntry.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TranscriptEntry.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "TranscriptEntry.session"`)}
	}
	return nil
}

func (_c *TranscriptEntryCreate) sqlSave(ctx context.Context) (*TranscriptEntry, error) {
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
			return nil, fmt.Errorf("unexpected TranscriptEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TranscriptEntryCreate) createSpec() (*TranscriptEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &TranscriptEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcriptentry.Table, sqlgraph.NewFieldSpec(transcriptentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(transcriptentry.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(transcriptentry.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.BackendMessageID(); ok {
		_spec.SetField(transcriptentry.FieldBackendMessageID, field.TypeString, value)
		_node.BackendMessageID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(transcriptentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcriptentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcriptentry.SessionTable,
			Columns: []string{transcriptentry.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TranscriptEntryCreateBulk is the builder for creating many TranscriptEntry entities in bulk.
type TranscriptEntryCreateBulk struct {
	config
	err      error
	builders []*TranscriptEntryCreate
}

// Save creates the TranscriptEntry entities in the database.
func (_c *TranscriptEntryCreateBulk) Save(ctx context.Context) ([]*TranscriptEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranscriptEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptEntryMutation)
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
func (_c *TranscriptEntryCreateBulk) SaveX(ctx context.Context) []*TranscriptEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
