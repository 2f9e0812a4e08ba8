// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptivecat/planner/ent/mastery"
)

// MasteryCreate is the builder for creating a Mastery entity.
type MasteryCreate struct {
	config
	mutation *MasteryMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *MasteryCreate) SetStudentID(v string) *MasteryCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *MasteryCreate) SetSubcategory(v string) *MasteryCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *MasteryCreate) SetTypeOfQuestion(v string) *MasteryCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableTypeOfQuestion(v *string) *MasteryCreate {
	if v != nil {
		_c.SetTypeOfQuestion(*v)
	}
	return _c
}

// SetAccuracyEasy sets the "accuracy_easy" field.
func (_c *MasteryCreate) SetAccuracyEasy(v float64) *MasteryCreate {
	_c.mutation.SetAccuracyEasy(v)
	return _c
}

// SetNillableAccuracyEasy sets the "accuracy_easy" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableAccuracyEasy(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetAccuracyEasy(*v)
	}
	return _c
}

// SetAccuracyMedium sets the "accuracy_medium" field.
func (_c *MasteryCreate) SetAccuracyMedium(v float64) *MasteryCreate {
	_c.mutation.SetAccuracyMedium(v)
	return _c
}

// SetNillableAccuracyMedium sets the "accuracy_medium" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableAccuracyMedium(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetAccuracyMedium(*v)
	}
	return _c
}

// SetAccuracyHard sets the "accuracy_hard" field.
func (_c *MasteryCreate) SetAccuracyHard(v float64) *MasteryCreate {
	_c.mutation.SetAccuracyHard(v)
	return _c
}

// SetNillableAccuracyHard sets the "accuracy_hard" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableAccuracyHard(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetAccuracyHard(*v)
	}
	return _c
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (_c *MasteryCreate) SetEfficiencyScore(v float64) *MasteryCreate {
	_c.mutation.SetEfficiencyScore(v)
	return _c
}

// SetNillableEfficiencyScore sets the "efficiency_score" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableEfficiencyScore(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetEfficiencyScore(*v)
	}
	return _c
}

// SetExposureCount sets the "exposure_count" field.
func (_c *MasteryCreate) SetExposureCount(v int) *MasteryCreate {
	_c.mutation.SetExposureCount(v)
	return _c
}

// SetNillableExposureCount sets the "exposure_count" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableExposureCount(v *int) *MasteryCreate {
	if v != nil {
		_c.SetExposureCount(*v)
	}
	return _c
}

// SetMasteryPct sets the "mastery_pct" field.
func (_c *MasteryCreate) SetMasteryPct(v float64) *MasteryCreate {
	_c.mutation.SetMasteryPct(v)
	return _c
}

// SetNillableMasteryPct sets the "mastery_pct" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableMasteryPct(v *float64) *MasteryCreate {
	if v != nil {
		_c.SetMasteryPct(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *MasteryCreate) SetLastActivityAt(v time.Time) *MasteryCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableLastActivityAt(v *time.Time) *MasteryCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MasteryCreate) SetUpdatedAt(v time.Time) *MasteryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MasteryCreate) SetNillableUpdatedAt(v *time.Time) *MasteryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MasteryCreate) SetID(v string) *MasteryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MasteryMutation object of the builder.
func (_c *MasteryCreate) Mutation() *MasteryMutation {
	return _c.mutation
}

// Save creates the Mastery in the database.
func (_c *MasteryCreate) Save(ctx context.Context) (*Mastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryCreate) SaveX(ctx context.Context) *Mastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryCreate) defaults() {
	if _, ok := _c.mutation.AccuracyEasy(); !ok {
		v := mastery.DefaultAccuracyEasy
		_c.mutation.SetAccuracyEasy(v)
	}
	if _, ok := _c.mutation.AccuracyMedium(); !ok {
		v := mastery.DefaultAccuracyMedium
		_c.mutation.SetAccuracyMedium(v)
	}
	if _, ok := _c.mutation.AccuracyHard(); !ok {
		v := mastery.DefaultAccuracyHard
		_c.mutation.SetAccuracyHard(v)
	}
	if _, ok := _c.mutation.EfficiencyScore(); !ok {
		v := mastery.DefaultEfficiencyScore
		_c.mutation.SetEfficiencyScore(v)
	}
	if _, ok := _c.mutation.ExposureCount(); !ok {
		v := mastery.DefaultExposureCount
		_c.mutation.SetExposureCount(v)
	}
	if _, ok := _c.mutation.MasteryPct(); !ok {
		v := mastery.DefaultMasteryPct
		_c.mutation.SetMasteryPct(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := mastery.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mastery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Mastery.student_id"`)}
	}
	if _, ok := _c.mutation.Subcategory(); !ok {
		return &ValidationError{Name: "subcategory", err: errors.New(`ent: missing required field "Mastery.subcategory"`)}
	}
	if _, ok := _c.mutation.AccuracyEasy(); !ok {
		return &ValidationError{Name: "accuracy_easy", err: errors.New(`ent: missing required field "Mastery.accuracy_easy"`)}
	}
	if _, ok := _c.mutation.AccuracyMedium(); !ok {
		return &ValidationError{Name: "accuracy_medium", err: errors.New(`ent: missing required field "Mastery.accuracy_medium"`)}
	}
	if _, ok := _c.mutation.AccuracyHard(); !ok {
		return &ValidationError{Name: "accuracy_hard", err: errors.New(`ent: missing required field "Mastery.accuracy_hard"`)}
	}
	if _, ok := _c.mutation.EfficiencyScore(); !ok {
		return &ValidationError{Name: "efficiency_score", err: errors.New(`ent: missing required field "Mastery.efficiency_score"`)}
	}
	if _, ok := _c.mutation.ExposureCount(); !ok {
		return &ValidationError{Name: "exposure_count", err: errors.New(`ent: missing required field "Mastery.exposure_count"`)}
	}
	if _, ok := _c.mutation.MasteryPct(); !ok {
		return &ValidationError{Name: "mastery_pct", err: errors.New(`ent: missing required field "Mastery.mastery_pct"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "Mastery.last_activity_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Mastery.updated_at"`)}
	}
	return nil
}

func (_c *MasteryCreate) sqlSave(ctx context.Context) (*Mastery, error) {
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
			return nil, fmt.Errorf("unexpected Mastery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasteryCreate) createSpec() (*Mastery, *sqlgraph.CreateSpec) {
	var (
		_node = &Mastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mastery.Table, sqlgraph.NewFieldSpec(mastery.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(mastery.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(mastery.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(mastery.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.AccuracyEasy(); ok {
		_spec.SetField(mastery.FieldAccuracyEasy, field.TypeFloat64, value)
		_node.AccuracyEasy = value
	}
	if value, ok := _c.mutation.AccuracyMedium(); ok {
		_spec.SetField(mastery.FieldAccuracyMedium, field.TypeFloat64, value)
		_node.AccuracyMedium = value
	}
	if value, ok := _c.mutation.AccuracyHard(); ok {
		_spec.SetField(mastery.FieldAccuracyHard, field.TypeFloat64, value)
		_node.AccuracyHard = value
	}
	if value, ok := _c.mutation.EfficiencyScore(); ok {
		_spec.SetField(mastery.FieldEfficiencyScore, field.TypeFloat64, value)
		_node.EfficiencyScore = value
	}
	if value, ok := _c.mutation.ExposureCount(); ok {
		_spec.SetField(mastery.FieldExposureCount, field.TypeInt, value)
		_node.ExposureCount = value
	}
	if value, ok := _c.mutation.MasteryPct(); ok {
		_spec.SetField(mastery.FieldMasteryPct, field.TypeFloat64, value)
		_node.MasteryPct = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(mastery.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mastery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MasteryCreateBulk is the builder for creating many Mastery entities in bulk.
type MasteryCreateBulk struct {
	config
	err      error
	builders []*MasteryCreate
}

// Save creates the Mastery entities in the database.
func (_c *MasteryCreateBulk) Save(ctx context.Context) ([]*Mastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryMutation)
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
func (_c *MasteryCreateBulk) SaveX(ctx context.Context) []*Mastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
