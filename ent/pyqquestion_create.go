// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptivecat/planner/ent/pyqquestion"
)

// PYQQuestionCreate is the builder for creating a PYQQuestion entity.
type PYQQuestionCreate struct {
	config
	mutation *PYQQuestionMutation
	hooks    []Hook
}

// SetStem sets the "stem" field.
func (_c *PYQQuestionCreate) SetStem(v string) *PYQQuestionCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *PYQQuestionCreate) SetCategory(v string) *PYQQuestionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableCategory(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *PYQQuestionCreate) SetSubcategory(v string) *PYQQuestionCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableSubcategory(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetSubcategory(*v)
	}
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *PYQQuestionCreate) SetTypeOfQuestion(v string) *PYQQuestionCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableTypeOfQuestion(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetTypeOfQuestion(*v)
	}
	return _c
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_c *PYQQuestionCreate) SetDifficultyBand(v pyqquestion.DifficultyBand) *PYQQuestionCreate {
	_c.mutation.SetDifficultyBand(v)
	return _c
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableDifficultyBand(v *pyqquestion.DifficultyBand) *PYQQuestionCreate {
	if v != nil {
		_c.SetDifficultyBand(*v)
	}
	return _c
}

// SetDifficultyScore sets the "difficulty_score" field.
func (_c *PYQQuestionCreate) SetDifficultyScore(v float64) *PYQQuestionCreate {
	_c.mutation.SetDifficultyScore(v)
	return _c
}

// SetNillableDifficultyScore sets the "difficulty_score" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableDifficultyScore(v *float64) *PYQQuestionCreate {
	if v != nil {
		_c.SetDifficultyScore(*v)
	}
	return _c
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_c *PYQQuestionCreate) SetPyqFrequencyScore(v float64) *PYQQuestionCreate {
	_c.mutation.SetPyqFrequencyScore(v)
	return _c
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillablePyqFrequencyScore(v *float64) *PYQQuestionCreate {
	if v != nil {
		_c.SetPyqFrequencyScore(*v)
	}
	return _c
}

// SetCoreConcepts sets the "core_concepts" field.
func (_c *PYQQuestionCreate) SetCoreConcepts(v string) *PYQQuestionCreate {
	_c.mutation.SetCoreConcepts(v)
	return _c
}

// SetNillableCoreConcepts sets the "core_concepts" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableCoreConcepts(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetCoreConcepts(*v)
	}
	return _c
}

// SetSolutionMethod sets the "solution_method" field.
func (_c *PYQQuestionCreate) SetSolutionMethod(v string) *PYQQuestionCreate {
	_c.mutation.SetSolutionMethod(v)
	return _c
}

// SetNillableSolutionMethod sets the "solution_method" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableSolutionMethod(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetSolutionMethod(*v)
	}
	return _c
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (_c *PYQQuestionCreate) SetConceptDifficulty(v string) *PYQQuestionCreate {
	_c.mutation.SetConceptDifficulty(v)
	return _c
}

// SetNillableConceptDifficulty sets the "concept_difficulty" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableConceptDifficulty(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetConceptDifficulty(*v)
	}
	return _c
}

// SetOperationsRequired sets the "operations_required" field.
func (_c *PYQQuestionCreate) SetOperationsRequired(v string) *PYQQuestionCreate {
	_c.mutation.SetOperationsRequired(v)
	return _c
}

// SetNillableOperationsRequired sets the "operations_required" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableOperationsRequired(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetOperationsRequired(*v)
	}
	return _c
}

// SetProblemStructure sets the "problem_structure" field.
func (_c *PYQQuestionCreate) SetProblemStructure(v string) *PYQQuestionCreate {
	_c.mutation.SetProblemStructure(v)
	return _c
}

// SetNillableProblemStructure sets the "problem_structure" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableProblemStructure(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetProblemStructure(*v)
	}
	return _c
}

// SetConceptKeywords sets the "concept_keywords" field.
func (_c *PYQQuestionCreate) SetConceptKeywords(v string) *PYQQuestionCreate {
	_c.mutation.SetConceptKeywords(v)
	return _c
}

// SetNillableConceptKeywords sets the "concept_keywords" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableConceptKeywords(v *string) *PYQQuestionCreate {
	if v != nil {
		_c.SetConceptKeywords(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PYQQuestionCreate) SetIsActive(v bool) *PYQQuestionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableIsActive(v *bool) *PYQQuestionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetQualityVerified sets the "quality_verified" field.
func (_c *PYQQuestionCreate) SetQualityVerified(v bool) *PYQQuestionCreate {
	_c.mutation.SetQualityVerified(v)
	return _c
}

// SetNillableQualityVerified sets the "quality_verified" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableQualityVerified(v *bool) *PYQQuestionCreate {
	if v != nil {
		_c.SetQualityVerified(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PYQQuestionCreate) SetCreatedAt(v time.Time) *PYQQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PYQQuestionCreate) SetNillableCreatedAt(v *time.Time) *PYQQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PYQQuestionCreate) SetID(v string) *PYQQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PYQQuestionMutation object of the builder.
func (_c *PYQQuestionCreate) Mutation() *PYQQuestionMutation {
	return _c.mutation
}

// Save creates the PYQQuestion in the database.
func (_c *PYQQuestionCreate) Save(ctx context.Context) (*PYQQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PYQQuestionCreate) SaveX(ctx context.Context) *PYQQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PYQQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PYQQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PYQQuestionCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := pyqquestion.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.QualityVerified(); !ok {
		v := pyqquestion.DefaultQualityVerified
		_c.mutation.SetQualityVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pyqquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PYQQuestionCreate) check() error {
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "PYQQuestion.stem"`)}
	}
	if v, ok := _c.mutation.DifficultyBand(); ok {
		if err := pyqquestion.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "PYQQuestion.difficulty_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "PYQQuestion.is_active"`)}
	}
	if _, ok := _c.mutation.QualityVerified(); !ok {
		return &ValidationError{Name: "quality_verified", err: errors.New(`ent: missing required field "PYQQuestion.quality_verified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PYQQuestion.created_at"`)}
	}
	return nil
}

func (_c *PYQQuestionCreate) sqlSave(ctx context.Context) (*PYQQuestion, error) {
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
			return nil, fmt.Errorf("unexpected PYQQuestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PYQQuestionCreate) createSpec() (*PYQQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &PYQQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pyqquestion.Table, sqlgraph.NewFieldSpec(pyqquestion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(pyqquestion.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(pyqquestion.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(pyqquestion.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(pyqquestion.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.DifficultyBand(); ok {
		_spec.SetField(pyqquestion.FieldDifficultyBand, field.TypeEnum, value)
		_node.DifficultyBand = value
	}
	if value, ok := _c.mutation.DifficultyScore(); ok {
		_spec.SetField(pyqquestion.FieldDifficultyScore, field.TypeFloat64, value)
		_node.DifficultyScore = value
	}
	if value, ok := _c.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(pyqquestion.FieldPyqFrequencyScore, field.TypeFloat64, value)
		_node.PyqFrequencyScore = &value
	}
	if value, ok := _c.mutation.CoreConcepts(); ok {
		_spec.SetField(pyqquestion.FieldCoreConcepts, field.TypeString, value)
		_node.CoreConcepts = value
	}
	if value, ok := _c.mutation.SolutionMethod(); ok {
		_spec.SetField(pyqquestion.FieldSolutionMethod, field.TypeString, value)
		_node.SolutionMethod = value
	}
	if value, ok := _c.mutation.ConceptDifficulty(); ok {
		_spec.SetField(pyqquestion.FieldConceptDifficulty, field.TypeString, value)
		_node.ConceptDifficulty = value
	}
	if value, ok := _c.mutation.OperationsRequired(); ok {
		_spec.SetField(pyqquestion.FieldOperationsRequired, field.TypeString, value)
		_node.OperationsRequired = value
	}
	if value, ok := _c.mutation.ProblemStructure(); ok {
		_spec.SetField(pyqquestion.FieldProblemStructure, field.TypeString, value)
		_node.ProblemStructure = &value
	}
	if value, ok := _c.mutation.ConceptKeywords(); ok {
		_spec.SetField(pyqquestion.FieldConceptKeywords, field.TypeString, value)
		_node.ConceptKeywords = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(pyqquestion.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.QualityVerified(); ok {
		_spec.SetField(pyqquestion.FieldQualityVerified, field.TypeBool, value)
		_node.QualityVerified = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pyqquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PYQQuestionCreateBulk is the builder for creating many PYQQuestion entities in bulk.
type PYQQuestionCreateBulk struct {
	config
	err      error
	builders []*PYQQuestionCreate
}

// Save creates the PYQQuestion entities in the database.
func (_c *PYQQuestionCreateBulk) Save(ctx context.Context) ([]*PYQQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PYQQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PYQQuestionMutation)
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
func (_c *PYQQuestionCreateBulk) SaveX(ctx context.Context) []*PYQQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PYQQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PYQQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
