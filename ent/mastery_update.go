// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptivecat/planner/ent/mastery"
	"github.com/adaptivecat/planner/ent/predicate"
)

// MasteryUpdate is the builder for updating Mastery entities.
type MasteryUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryMutation
}

// Where appends a list predicates to the MasteryUpdate builder.
func (_u *MasteryUpdate) Where(ps ...predicate.Mastery) *MasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccuracyEasy sets the "accuracy_easy" field.
func (_u *MasteryUpdate) SetAccuracyEasy(v float64) *MasteryUpdate {
	_u.mutation.ResetAccuracyEasy()
	_u.mutation.SetAccuracyEasy(v)
	return _u
}

// SetNillableAccuracyEasy sets the "accuracy_easy" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableAccuracyEasy(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetAccuracyEasy(*v)
	}
	return _u
}

// AddAccuracyEasy adds value to the "accuracy_easy" field.
func (_u *MasteryUpdate) AddAccuracyEasy(v float64) *MasteryUpdate {
	_u.mutation.AddAccuracyEasy(v)
	return _u
}

// SetAccuracyMedium sets the "accuracy_medium" field.
func (_u *MasteryUpdate) SetAccuracyMedium(v float64) *MasteryUpdate {
	_u.mutation.ResetAccuracyMedium()
	_u.mutation.SetAccuracyMedium(v)
	return _u
}

// SetNillableAccuracyMedium sets the "accuracy_medium" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableAccuracyMedium(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetAccuracyMedium(*v)
	}
	return _u
}

// AddAccuracyMedium adds value to the "accuracy_medium" field.
func (_u *MasteryUpdate) AddAccuracyMedium(v float64) *MasteryUpdate {
	_u.mutation.AddAccuracyMedium(v)
	return _u
}

// SetAccuracyHard sets the "accuracy_hard" field.
func (_u *MasteryUpdate) SetAccuracyHard(v float64) *MasteryUpdate {
	_u.mutation.ResetAccuracyHard()
	_u.mutation.SetAccuracyHard(v)
	return _u
}

// SetNillableAccuracyHard sets the "accuracy_hard" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableAccuracyHard(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetAccuracyHard(*v)
	}
	return _u
}

// AddAccuracyHard adds value to the "accuracy_hard" field.
func (_u *MasteryUpdate) AddAccuracyHard(v float64) *MasteryUpdate {
	_u.mutation.AddAccuracyHard(v)
	return _u
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (_u *MasteryUpdate) SetEfficiencyScore(v float64) *MasteryUpdate {
	_u.mutation.ResetEfficiencyScore()
	_u.mutation.SetEfficiencyScore(v)
	return _u
}

// SetNillableEfficiencyScore sets the "efficiency_score" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableEfficiencyScore(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetEfficiencyScore(*v)
	}
	return _u
}

// AddEfficiencyScore adds value to the "efficiency_score" field.
func (_u *MasteryUpdate) AddEfficiencyScore(v float64) *MasteryUpdate {
	_u.mutation.AddEfficiencyScore(v)
	return _u
}

// SetExposureCount sets the "exposure_count" field.
func (_u *MasteryUpdate) SetExposureCount(v int) *MasteryUpdate {
	_u.mutation.ResetExposureCount()
	_u.mutation.SetExposureCount(v)
	return _u
}

// SetNillableExposureCount sets the "exposure_count" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableExposureCount(v *int) *MasteryUpdate {
	if v != nil {
		_u.SetExposureCount(*v)
	}
	return _u
}

// AddExposureCount adds value to the "exposure_count" field.
func (_u *MasteryUpdate) AddExposureCount(v int) *MasteryUpdate {
	_u.mutation.AddExposureCount(v)
	return _u
}

// SetMasteryPct sets the "mastery_pct" field.
func (_u *MasteryUpdate) SetMasteryPct(v float64) *MasteryUpdate {
	_u.mutation.ResetMasteryPct()
	_u.mutation.SetMasteryPct(v)
	return _u
}

// SetNillableMasteryPct sets the "mastery_pct" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableMasteryPct(v *float64) *MasteryUpdate {
	if v != nil {
		_u.SetMasteryPct(*v)
	}
	return _u
}

// AddMasteryPct adds value to the "mastery_pct" field.
func (_u *MasteryUpdate) AddMasteryPct(v float64) *MasteryUpdate {
	_u.mutation.AddMasteryPct(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *MasteryUpdate) SetLastActivityAt(v time.Time) *MasteryUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *MasteryUpdate) SetNillableLastActivityAt(v *time.Time) *MasteryUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryUpdate) SetUpdatedAt(v time.Time) *MasteryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryMutation object of the builder.
func (_u *MasteryUpdate) Mutation() *MasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(mastery.Table, mastery.Columns, sqlgraph.NewFieldSpec(mastery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.TypeOfQuestionCleared() {
		_spec.ClearField(mastery.FieldTypeOfQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.AccuracyEasy(); ok {
		_spec.SetField(mastery.FieldAccuracyEasy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracyEasy(); ok {
		_spec.AddField(mastery.FieldAccuracyEasy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccuracyMedium(); ok {
		_spec.SetField(mastery.FieldAccuracyMedium, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracyMedium(); ok {
		_spec.AddField(mastery.FieldAccuracyMedium, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccuracyHard(); ok {
		_spec.SetField(mastery.FieldAccuracyHard, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracyHard(); ok {
		_spec.AddField(mastery.FieldAccuracyHard, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EfficiencyScore(); ok {
		_spec.SetField(mastery.FieldEfficiencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEfficiencyScore(); ok {
		_spec.AddField(mastery.FieldEfficiencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExposureCount(); ok {
		_spec.SetField(mastery.FieldExposureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExposureCount(); ok {
		_spec.AddField(mastery.FieldExposureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryPct(); ok {
		_spec.SetField(mastery.FieldMasteryPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryPct(); ok {
		_spec.AddField(mastery.FieldMasteryPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(mastery.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mastery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryUpdateOne is the builder for updating a single Mastery entity.
type MasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryMutation
}

// SetAccuracyEasy sets the "accuracy_easy" field.
func (_u *MasteryUpdateOne) SetAccuracyEasy(v float64) *MasteryUpdateOne {
	_u.mutation.ResetAccuracyEasy()
	_u.mutation.SetAccuracyEasy(v)
	return _u
}

// SetNillableAccuracyEasy sets the "accuracy_easy" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableAccuracyEasy(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetAccuracyEasy(*v)
	}
	return _u
}

// AddAccuracyEasy adds value to the "accuracy_easy" field.
func (_u *MasteryUpdateOne) AddAccuracyEasy(v float64) *MasteryUpdateOne {
	_u.mutation.AddAccuracyEasy(v)
	return _u
}

// SetAccuracyMedium sets the "accuracy_medium" field.
func (_u *MasteryUpdateOne) SetAccuracyMedium(v float64) *MasteryUpdateOne {
	_u.mutation.ResetAccuracyMedium()
	_u.mutation.SetAccuracyMedium(v)
	return _u
}

// SetNillableAccuracyMedium sets the "accuracy_medium" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableAccuracyMedium(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetAccuracyMedium(*v)
	}
	return _u
}

// AddAccuracyMedium adds value to the "accuracy_medium" field.
func (_u *MasteryUpdateOne) AddAccuracyMedium(v float64) *MasteryUpdateOne {
	_u.mutation.AddAccuracyMedium(v)
	return _u
}

// SetAccuracyHard sets the "accuracy_hard" field.
func (_u *MasteryUpdateOne) SetAccuracyHard(v float64) *MasteryUpdateOne {
	_u.mutation.ResetAccuracyHard()
	_u.mutation.SetAccuracyHard(v)
	return _u
}

// SetNillableAccuracyHard sets the "accuracy_hard" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableAccuracyHard(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetAccuracyHard(*v)
	}
	return _u
}

// AddAccuracyHard adds value to the "accuracy_hard" field.
func (_u *MasteryUpdateOne) AddAccuracyHard(v float64) *MasteryUpdateOne {
	_u.mutation.AddAccuracyHard(v)
	return _u
}

// SetEfficiencyScore sets the "efficiency_score" field.
func (_u *MasteryUpdateOne) SetEfficiencyScore(v float64) *MasteryUpdateOne {
	_u.mutation.ResetEfficiencyScore()
	_u.mutation.SetEfficiencyScore(v)
	return _u
}

// SetNillableEfficiencyScore sets the "efficiency_score" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableEfficiencyScore(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetEfficiencyScore(*v)
	}
	return _u
}

// AddEfficiencyScore adds value to the "efficiency_score" field.
func (_u *MasteryUpdateOne) AddEfficiencyScore(v float64) *MasteryUpdateOne {
	_u.mutation.AddEfficiencyScore(v)
	return _u
}

// SetExposureCount sets the "exposure_count" field.
func (_u *MasteryUpdateOne) SetExposureCount(v int) *MasteryUpdateOne {
	_u.mutation.ResetExposureCount()
	_u.mutation.SetExposureCount(v)
	return _u
}

// SetNillableExposureCount sets the "exposure_count" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableExposureCount(v *int) *MasteryUpdateOne {
	if v != nil {
		_u.SetExposureCount(*v)
	}
	return _u
}

// AddExposureCount adds value to the "exposure_count" field.
func (_u *MasteryUpdateOne) AddExposureCount(v int) *MasteryUpdateOne {
	_u.mutation.AddExposureCount(v)
	return _u
}

// SetMasteryPct sets the "mastery_pct" field.
func (_u *MasteryUpdateOne) SetMasteryPct(v float64) *MasteryUpdateOne {
	_u.mutation.ResetMasteryPct()
	_u.mutation.SetMasteryPct(v)
	return _u
}

// SetNillableMasteryPct sets the "mastery_pct" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableMasteryPct(v *float64) *MasteryUpdateOne {
	if v != nil {
		_u.SetMasteryPct(*v)
	}
	return _u
}

// AddMasteryPct adds value to the "mastery_pct" field.
func (_u *MasteryUpdateOne) AddMasteryPct(v float64) *MasteryUpdateOne {
	_u.mutation.AddMasteryPct(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *MasteryUpdateOne) SetLastActivityAt(v time.Time) *MasteryUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *MasteryUpdateOne) SetNillableLastActivityAt(v *time.Time) *MasteryUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MasteryUpdateOne) SetUpdatedAt(v time.Time) *MasteryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MasteryMutation object of the builder.
func (_u *MasteryUpdateOne) Mutation() *MasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryUpdate builder.
func (_u *MasteryUpdateOne) Where(ps ...predicate.Mastery) *MasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryUpdateOne) Select(field string, fields ...string) *MasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mastery entity.
func (_u *MasteryUpdateOne) Save(ctx context.Context) (*Mastery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryUpdateOne) SaveX(ctx context.Context) *Mastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MasteryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *MasteryUpdateOne) sqlSave(ctx context.Context) (_node *Mastery, err error) {
	_spec := sqlgraph.NewUpdateSpec(mastery.Table, mastery.Columns, sqlgraph.NewFieldSpec(mastery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mastery.FieldID)
		for _, f := range fields {
			if !mastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mastery.FieldID {
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
	if _u.mutation.TypeOfQuestionCleared() {
		_spec.ClearField(mastery.FieldTypeOfQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.AccuracyEasy(); ok {
		_spec.SetField(mastery.FieldAccuracyEasy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracyEasy(); ok {
		_spec.AddField(mastery.FieldAccuracyEasy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccuracyMedium(); ok {
		_spec.SetField(mastery.FieldAccuracyMedium, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracyMedium(); ok {
		_spec.AddField(mastery.FieldAccuracyMedium, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AccuracyHard(); ok {
		_spec.SetField(mastery.FieldAccuracyHard, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracyHard(); ok {
		_spec.AddField(mastery.FieldAccuracyHard, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EfficiencyScore(); ok {
		_spec.SetField(mastery.FieldEfficiencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEfficiencyScore(); ok {
		_spec.AddField(mastery.FieldEfficiencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExposureCount(); ok {
		_spec.SetField(mastery.FieldExposureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExposureCount(); ok {
		_spec.AddField(mastery.FieldExposureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryPct(); ok {
		_spec.SetField(mastery.FieldMasteryPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryPct(); ok {
		_spec.AddField(mastery.FieldMasteryPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(mastery.FieldLastActivityAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mastery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Mastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
