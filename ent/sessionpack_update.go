// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptivecat/planner/ent/predicate"
	"github.com/adaptivecat/planner/ent/session"
	"github.com/adaptivecat/planner/ent/sessionpack"
)

// SessionPackUpdate is the builder for updating SessionPack entities.
type SessionPackUpdate struct {
	config
	hooks    []Hook
	mutation *SessionPackMutation
}

// Where appends a list predicates to the SessionPackUpdate builder.
func (_u *SessionPackUpdate) Where(ps ...predicate.SessionPack) *SessionPackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionPackUpdate) SetSessionID(v string) *SessionPackUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionPackUpdate) SetNillableSessionID(v *string) *SessionPackUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *SessionPackUpdate) SetQuestionIds(v string) *SessionPackUpdate {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// SetNillableQuestionIds sets the "question_ids" field if the given value is not nil.
func (_u *SessionPackUpdate) SetNillableQuestionIds(v *string) *SessionPackUpdate {
	if v != nil {
		_u.SetQuestionIds(*v)
	}
	return _u
}

// SetTelemetry sets the "telemetry" field.
func (_u *SessionPackUpdate) SetTelemetry(v string) *SessionPackUpdate {
	_u.mutation.SetTelemetry(v)
	return _u
}

// SetNillableTelemetry sets the "telemetry" field if the given value is not nil.
func (_u *SessionPackUpdate) SetNillableTelemetry(v *string) *SessionPackUpdate {
	if v != nil {
		_u.SetTelemetry(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *SessionPackUpdate) SetSession(v *Session) *SessionPackUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SessionPackMutation object of the builder.
func (_u *SessionPackUpdate) Mutation() *SessionPackMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *SessionPackUpdate) ClearSession() *SessionPackUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionPackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionPackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionPackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionPackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionPackUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionPack.session"`)
	}
	return nil
}

func (_u *SessionPackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionpack.Table, sessionpack.Columns, sqlgraph.NewFieldSpec(sessionpack.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(sessionpack.FieldQuestionIds, field.TypeString, value)
	}
	if value, ok := _u.mutation.Telemetry(); ok {
		_spec.SetField(sessionpack.FieldTelemetry, field.TypeString, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionpack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionPackUpdateOne is the builder for updating a single SessionPack entity.
type SessionPackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionPackMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionPackUpdateOne) SetSessionID(v string) *SessionPackUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionPackUpdateOne) SetNillableSessionID(v *string) *SessionPackUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *SessionPackUpdateOne) SetQuestionIds(v string) *SessionPackUpdateOne {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// SetNillableQuestionIds sets the "question_ids" field if the given value is not nil.
func (_u *SessionPackUpdateOne) SetNillableQuestionIds(v *string) *SessionPackUpdateOne {
	if v != nil {
		_u.SetQuestionIds(*v)
	}
	return _u
}

// SetTelemetry sets the "telemetry" field.
func (_u *SessionPackUpdateOne) SetTelemetry(v string) *SessionPackUpdateOne {
	_u.mutation.SetTelemetry(v)
	return _u
}

// SetNillableTelemetry sets the "telemetry" field if the given value is not nil.
func (_u *SessionPackUpdateOne) SetNillableTelemetry(v *string) *SessionPackUpdateOne {
	if v != nil {
		_u.SetTelemetry(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the Session entity.
func (_u *SessionPackUpdateOne) SetSession(v *Session) *SessionPackUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SessionPackMutation object of the builder.
func (_u *SessionPackUpdateOne) Mutation() *SessionPackMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the Session entity.
func (_u *SessionPackUpdateOne) ClearSession() *SessionPackUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the SessionPackUpdate builder.
func (_u *SessionPackUpdateOne) Where(ps ...predicate.SessionPack) *SessionPackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionPackUpdateOne) Select(field string, fields ...string) *SessionPackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionPack entity.
func (_u *SessionPackUpdateOne) Save(ctx context.Context) (*SessionPack, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionPackUpdateOne) SaveX(ctx context.Context) *SessionPack {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionPackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionPackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionPackUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionPack.session"`)
	}
	return nil
}

func (_u *SessionPackUpdateOne) sqlSave(ctx context.Context) (_node *SessionPack, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionpack.Table, sessionpack.Columns, sqlgraph.NewFieldSpec(sessionpack.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionPack.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionpack.FieldID)
		for _, f := range fields {
			if !sessionpack.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionpack.FieldID {
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
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(sessionpack.FieldQuestionIds, field.TypeString, value)
	}
	if value, ok := _u.mutation.Telemetry(); ok {
		_spec.SetField(sessionpack.FieldTelemetry, field.TypeString, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SessionPack{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionpack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
