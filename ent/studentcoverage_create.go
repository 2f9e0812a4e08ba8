// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptivecat/planner/ent/studentcoverage"
)

// StudentCoverageCreate is the builder for creating a StudentCoverage entity.
type StudentCoverageCreate struct {
	config
	mutation *StudentCoverageMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *StudentCoverageCreate) SetStudentID(v string) *StudentCoverageCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *StudentCoverageCreate) SetSubcategory(v string) *StudentCoverageCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *StudentCoverageCreate) SetTypeOfQuestion(v string) *StudentCoverageCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetSessionsSeen sets the "sessions_seen" field.
func (_c *StudentCoverageCreate) SetSessionsSeen(v int) *StudentCoverageCreate {
	_c.mutation.SetSessionsSeen(v)
	return _c
}

// SetNillableSessionsSeen sets the "sessions_seen" field if the given value is not nil.
func (_c *StudentCoverageCreate) SetNillableSessionsSeen(v *int) *StudentCoverageCreate {
	if v != nil {
		_c.SetSessionsSeen(*v)
	}
	return _c
}

// SetFirstSeenSession sets the "first_seen_session" field.
func (_c *StudentCoverageCreate) SetFirstSeenSession(v int) *StudentCoverageCreate {
	_c.mutation.SetFirstSeenSession(v)
	return _c
}

// SetNillableFirstSeenSession sets the "first_seen_session" field if the given value is not nil.
func (_c *StudentCoverageCreate) SetNillableFirstSeenSession(v *int) *StudentCoverageCreate {
	if v != nil {
		_c.SetFirstSeenSession(*v)
	}
	return _c
}

// SetLastSeenSession sets the "last_seen_session" field.
func (_c *StudentCoverageCreate) SetLastSeenSession(v int) *StudentCoverageCreate {
	_c.mutation.SetLastSeenSession(v)
	return _c
}

// SetNillableLastSeenSession sets the "last_seen_session" field if the given value is not nil.
func (_c *StudentCoverageCreate) SetNillableLastSeenSession(v *int) *StudentCoverageCreate {
	if v != nil {
		_c.SetLastSeenSession(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudentCoverageCreate) SetID(v string) *StudentCoverageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StudentCoverageMutation object of the builder.
func (_c *StudentCoverageCreate) Mutation() *StudentCoverageMutation {
	return _c.mutation
}

// Save creates the StudentCoverage in the database.
func (_c *StudentCoverageCreate) Save(ctx context.Context) (*StudentCoverage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentCoverageCreate) SaveX(ctx context.Context) *StudentCoverage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCoverageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCoverageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentCoverageCreate) defaults() {
	if _, ok := _c.mutation.SessionsSeen(); !ok {
		v := studentcoverage.DefaultSessionsSeen
		_c.mutation.SetSessionsSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentCoverageCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "StudentCoverage.student_id"`)}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "StudentCoverage.subcategory"`)}
	}
	if _, ok := _c.mutation.TypeOfQuestion(); !ok {
		return &ValidationError{Name: "type_of_question", err: errors.New(`ent: missing required field "StudentCoverage.type_of_question"`)}
	}
	if _, ok := _c.mutation.SessionsSeen(); !ok {
		return &ValidationError{Name: "sessions_seen", err: errors.New(`ent: missing required field "StudentCoverage.sessions_seen"`)}
	}
	return nil
}

func (_c *StudentCoverageCreate) sqlSave(ctx context.Context) (*StudentCoverage, error) {
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
			return nil, fmt.Errorf("unexpected StudentCoverage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudentCoverageCreate) createSpec() (*StudentCoverage, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentCoverage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentcoverage.Table, sqlgraph.NewFieldSpec(studentcoverage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(studentcoverage.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(studentcoverage.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(studentcoverage.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.SessionsSeen(); ok {
		_spec.SetField(studentcoverage.FieldSessionsSeen, field.TypeInt, value)
		_node.SessionsSeen = value
	}
	if value, ok := _c.mutation.FirstSeenSession(); ok {
		_spec.SetField(studentcoverage.FieldFirstSeenSession, field.TypeInt, value)
		_node.FirstSeenSession = value
	}
	if value, ok := _c.mutation.LastSeenSession(); ok {
		_spec.SetField(studentcoverage.FieldLastSeenSession, field.TypeInt, value)
		_node.LastSeenSession = value
	}
	return _node, _spec
}

// StudentCoverageCreateBulk is the builder for creating many StudentCoverage entities in bulk.
type StudentCoverageCreateBulk struct {
	config
	err      error
	builders []*StudentCoverageCreate
}

// Save creates the StudentCoverage entities in the database.
func (_c *StudentCoverageCreateBulk) Save(ctx context.Context) ([]*StudentCoverage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentCoverage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentCoverageMutation)
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
func (_c *StudentCoverageCreateBulk) SaveX(ctx context.Context) []*StudentCoverage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentCoverageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentCoverageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
