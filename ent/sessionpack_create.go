// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptivecat/planner/ent/session"
	"github.com/adaptivecat/planner/ent/sessionpack"
)

// SessionPackCreate is the builder for creating a SessionPack entity.
type SessionPackCreate struct {
	config
	mutation *SessionPackMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionPackCreate) SetSessionID(v string) *SessionPackCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionIds sets the "question_ids" field.
func (_c *SessionPackCreate) SetQuestionIds(v string) *SessionPackCreate {
	_c.mutation.SetQuestionIds(v)
	return _c
}

// SetTelemetry sets the "telemetry" field.
func (_c *SessionPackCreate) SetTelemetry(v string) *SessionPackCreate {
	_c.mutation.SetTelemetry(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionPackCreate) SetCreatedAt(v time.Time) *SessionPackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionPackCreate) SetNillableCreatedAt(v *time.Time) *SessionPackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionPackCreate) SetID(v string) *SessionPackCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *SessionPackCreate) SetSession(v *Session) *SessionPackCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionPackMutation object of the builder.
func (_c *SessionPackCreate) Mutation() *SessionPackMutation {
	return _c.mutation
}

// Save creates the SessionPack in the database.
func (_c *SessionPackCreate) Save(ctx context.Context) (*SessionPack, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionPackCreate) SaveX(ctx context.Context) *SessionPack {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionPackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionPackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionPackCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionpack.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionPackCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionPack.session_id"`)}
	}
	if _, ok := _c.mutation.QuestionIds(); !ok {
		return &ValidationError{Name: "question_ids", err: errors.New(`ent: missing required field "SessionPack.question_ids"`)}
	}
	if _, ok := _c.mutation.Telemetry(); !ok {
		return &ValidationError{Name: "telemetry", err: errors.New(`ent: missing required field "SessionPack.telemetry"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionPack.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionPack.session"`)}
	}
	return nil
}

func (_c *SessionPackCreate) sqlSave(ctx context.Context) (*SessionPack, error) {
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
			return nil, fmt.Errorf("unexpected SessionPack.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionPackCreate) createSpec() (*SessionPack, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionPack{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionpack.Table, sqlgraph.NewFieldSpec(sessionpack.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QuestionIds(); ok {
		_spec.SetField(sessionpack.FieldQuestionIds, field.TypeString, value)
		_node.QuestionIds = value
	}
	if value, ok := _c.mutation.Telemetry(); ok {
		_spec.SetField(sessionpack.FieldTelemetry, field.TypeString, value)
		_node.Telemetry = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionpack.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   sessionpack.SessionTable,
			Columns: []string{sessionpack.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
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

// SessionPackCreateBulk is the builder for creating many SessionPack entities in bulk.
type SessionPackCreateBulk struct {
	config
	err      error
	builders []*SessionPackCreate
}

// Save creates the SessionPack entities in the database.
func (_c *SessionPackCreateBulk) Save(ctx context.Context) ([]*SessionPack, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionPack, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionPackMutation)
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
func (_c *SessionPackCreateBulk) SaveX(ctx context.Context) []*SessionPack {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionPackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionPackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
