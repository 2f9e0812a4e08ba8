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
	"github.com/adaptivecat/planner/ent/pyqquestion"
)

// PYQQuestionUpdate is the builder for updating PYQQuestion entities.
type PYQQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *PYQQuestionMutation
}

// Where appends a list predicates to the PYQQuestionUpdate builder.
func (_u *PYQQuestionUpdate) Where(ps ...predicate.PYQQuestion) *PYQQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *PYQQuestionUpdate) SetCategory(v string) *PYQQuestionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableCategory(v *string) *PYQQuestionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *PYQQuestionUpdate) ClearCategory() *PYQQuestionUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *PYQQuestionUpdate) SetSubcategory(v string) *PYQQuestionUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableSubcategory(v *string) *PYQQuestionUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *PYQQuestionUpdate) ClearSubcategory() *PYQQuestionUpdate {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_u *PYQQuestionUpdate) SetTypeOfQuestion(v string) *PYQQuestionUpdate {
	_u.mutation.SetTypeOfQuestion(v)
	return _u
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableTypeOfQuestion(v *string) *PYQQuestionUpdate {
	if v != nil {
		_u.SetTypeOfQuestion(*v)
	}
	return _u
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (_u *PYQQuestionUpdate) ClearTypeOfQuestion() *PYQQuestionUpdate {
	_u.mutation.ClearTypeOfQuestion()
	return _u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_u *PYQQuestionUpdate) SetDifficultyBand(v pyqquestion.DifficultyBand) *PYQQuestionUpdate {
	_u.mutation.SetDifficultyBand(v)
	return _u
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableDifficultyBand(v *pyqquestion.DifficultyBand) *PYQQuestionUpdate {
	if v != nil {
		_u.SetDifficultyBand(*v)
	}
	return _u
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (_u *PYQQuestionUpdate) ClearDifficultyBand() *PYQQuestionUpdate {
	_u.mutation.ClearDifficultyBand()
	return _u
}

// SetDifficultyScore sets the "difficulty_score" field.
func (_u *PYQQuestionUpdate) SetDifficultyScore(v float64) *PYQQuestionUpdate {
	_u.mutation.ResetDifficultyScore()
	_u.mutation.SetDifficultyScore(v)
	return _u
}

// SetNillableDifficultyScore sets the "difficulty_score" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableDifficultyScore(v *float64) *PYQQuestionUpdate {
	if v != nil {
		_u.SetDifficultyScore(*v)
	}
	return _u
}

// AddDifficultyScore adds value to the "difficulty_score" field.
func (_u *PYQQuestionUpdate) AddDifficultyScore(v float64) *PYQQuestionUpdate {
	_u.mutation.AddDifficultyScore(v)
	return _u
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (_u *PYQQuestionUpdate) ClearDifficultyScore() *PYQQuestionUpdate {
	_u.mutation.ClearDifficultyScore()
	return _u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_u *PYQQuestionUpdate) SetPyqFrequencyScore(v float64) *PYQQuestionUpdate {
	_u.mutation.ResetPyqFrequencyScore()
	_u.mutation.SetPyqFrequencyScore(v)
	return _u
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillablePyqFrequencyScore(v *float64) *PYQQuestionUpdate {
	if v != nil {
		_u.SetPyqFrequencyScore(*v)
	}
	return _u
}

// AddPyqFrequencyScore adds value to the "pyq_frequency_score" field.
func (_u *PYQQuestionUpdate) AddPyqFrequencyScore(v float64) *PYQQuestionUpdate {
	_u.mutation.AddPyqFrequencyScore(v)
	return _u
}

// ClearPyqFrequencyScore clears the value of the "pyq_frequency_score" field.
func (_u *PYQQuestionUpdate) ClearPyqFrequencyScore() *PYQQuestionUpdate {
	_u.mutation.ClearPyqFrequencyScore()
	return _u
}

// SetCoreConcepts sets the "core_concepts" field.
func (_u *PYQQuestionUpdate) SetCoreConcepts(v string) *PYQQuestionUpdate {
	_u.mutation.SetCoreConcepts(v)
	return _u
}

// SetNillableCoreConcepts sets the "core_concepts" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableCoreConcepts(v *string) *PYQQuestionUpdate {
	if v != nil {
		_u.SetCoreConcepts(*v)
	}
	return _u
}

// ClearCoreConcepts clears the value of the "core_concepts" field.
func (_u *PYQQuestionUpdate) ClearCoreConcepts() *PYQQuestionUpdate {
	_u.mutation.ClearCoreConcepts()
	return _u
}

// SetSolutionMethod sets the "solution_method" field.
func (_u *PYQQuestionUpdate) SetSolutionMethod(v string) *PYQQuestionUpdate {
	_u.mutation.SetSolutionMethod(v)
	return _u
}

// SetNillableSolutionMethod sets the "solution_method" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableSolutionMethod(v *string) *PYQQuestionUpdate {
	if v != nil {
		_u.SetSolutionMethod(*v)
	}
	return _u
}

// ClearSolutionMethod clears the value of the "solution_method" field.
func (_u *PYQQuestionUpdate) ClearSolutionMethod() *PYQQuestionUpdate {
	_u.mutation.ClearSolutionMethod()
	return _u
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (_u *PYQQuestionUpdate) SetConceptDifficulty(v string) *PYQQuestionUpdate {
	_u.mutation.SetConceptDifficulty(v)
	return _u
}

// SetNillableConceptDifficulty sets the "concept_difficulty" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableConceptDifficulty(v *string) *PYQQuestionUpdate {
	if v != nil {
		_u.SetConceptDifficulty(*v)
	}
	return _u
}

// ClearConceptDifficulty clears the value of the "concept_difficulty" field.
func (_u *PYQQuestionUpdate) ClearConceptDifficulty() *PYQQuestionUpdate {
	_u.mutation.ClearConceptDifficulty()
	return _u
}

// SetOperationsRequired sets the "operations_required" field.
func (_u *PYQQuestionUpdate) SetOperationsRequired(v string) *PYQQuestionUpdate {
	_u.mutation.SetOperationsRequired(v)
	return _u
}

// SetNillableOperationsRequired sets the "operations_required" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableOperationsRequired(v *string) *PYQQuestionUpdate {
	if v != nil {
		_u.SetOperationsRequired(*v)
	}
	return _u
}

// ClearOperationsRequired clears the value of the "operations_required" field.
func (_u *PYQQuestionUpdate) ClearOperationsRequired() *PYQQuestionUpdate {
	_u.mutation.ClearOperationsRequired()
	return _u
}

// SetProblemStructure sets the "problem_structure" field.
func (_u *PYQQuestionUpdate) SetProblemStructure(v string) *PYQQuestionUpdate {
	_u.mutation.SetProblemStructure(v)
	return _u
}

// SetNillableProblemStructure sets the "problem_structure" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableProblemStructure(v *string) *PYQQuestionUpdate {
	if v != nil {
		_u.SetProblemStructure(*v)
	}
	return _u
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (_u *PYQQuestionUpdate) ClearProblemStructure() *PYQQuestionUpdate {
	_u.mutation.ClearProblemStructure()
	return _u
}

// SetConceptKeywords sets the "concept_keywords" field.
func (_u *PYQQuestionUpdate) SetConceptKeywords(v string) *PYQQuestionUpdate {
	_u.mutation.SetConceptKeywords(v)
	return _u
}

// SetNillableConceptKeywords sets the "concept_keywords" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableConceptKeywords(v *string) *PYQQuestionUpdate {
	if v != nil {
		_u.SetConceptKeywords(*v)
	}
	return _u
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (_u *PYQQuestionUpdate) ClearConceptKeywords() *PYQQuestionUpdate {
	_u.mutation.ClearConceptKeywords()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PYQQuestionUpdate) SetIsActive(v bool) *PYQQuestionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableIsActive(v *bool) *PYQQuestionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetQualityVerified sets the "quality_verified" field.
func (_u *PYQQuestionUpdate) SetQualityVerified(v bool) *PYQQuestionUpdate {
	_u.mutation.SetQualityVerified(v)
	return _u
}

// SetNillableQualityVerified sets the "quality_verified" field if the given value is not nil.
func (_u *PYQQuestionUpdate) SetNillableQualityVerified(v *bool) *PYQQuestionUpdate {
	if v != nil {
		_u.SetQualityVerified(*v)
	}
	return _u
}

// Mutation returns the PYQQuestionMutation object of the builder.
func (_u *PYQQuestionUpdate) Mutation() *PYQQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PYQQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PYQQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PYQQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PYQQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PYQQuestionUpdate) check() error {
	if v, ok := _u.mutation.DifficultyBand(); ok {
		if err := pyqquestion.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "PYQQuestion.difficulty_band": %w`, err)}
		}
	}
	return nil
}

func (_u *PYQQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pyqquestion.Table, pyqquestion.Columns, sqlgraph.NewFieldSpec(pyqquestion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(pyqquestion.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(pyqquestion.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(pyqquestion.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(pyqquestion.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.TypeOfQuestion(); ok {
		_spec.SetField(pyqquestion.FieldTypeOfQuestion, field.TypeString, value)
	}
	if _u.mutation.TypeOfQuestionCleared() {
		_spec.ClearField(pyqquestion.FieldTypeOfQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyBand(); ok {
		_spec.SetField(pyqquestion.FieldDifficultyBand, field.TypeEnum, value)
	}
	if _u.mutation.DifficultyBandCleared() {
		_spec.ClearField(pyqquestion.FieldDifficultyBand, field.TypeEnum)
	}
	if value, ok := _u.mutation.DifficultyScore(); ok {
		_spec.SetField(pyqquestion.FieldDifficultyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficultyScore(); ok {
		_spec.AddField(pyqquestion.FieldDifficultyScore, field.TypeFloat64, value)
	}
	if _u.mutation.DifficultyScoreCleared() {
		_spec.ClearField(pyqquestion.FieldDifficultyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(pyqquestion.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPyqFrequencyScore(); ok {
		_spec.AddField(pyqquestion.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if _u.mutation.PyqFrequencyScoreCleared() {
		_spec.ClearField(pyqquestion.FieldPyqFrequencyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CoreConcepts(); ok {
		_spec.SetField(pyqquestion.FieldCoreConcepts, field.TypeString, value)
	}
	if _u.mutation.CoreConceptsCleared() {
		_spec.ClearField(pyqquestion.FieldCoreConcepts, field.TypeString)
	}
	if value, ok := _u.mutation.SolutionMethod(); ok {
		_spec.SetField(pyqquestion.FieldSolutionMethod, field.TypeString, value)
	}
	if _u.mutation.SolutionMethodCleared() {
		_spec.ClearField(pyqquestion.FieldSolutionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ConceptDifficulty(); ok {
		_spec.SetField(pyqquestion.FieldConceptDifficulty, field.TypeString, value)
	}
	if _u.mutation.ConceptDifficultyCleared() {
		_spec.ClearField(pyqquestion.FieldConceptDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.OperationsRequired(); ok {
		_spec.SetField(pyqquestion.FieldOperationsRequired, field.TypeString, value)
	}
	if _u.mutation.OperationsRequiredCleared() {
		_spec.ClearField(pyqquestion.FieldOperationsRequired, field.TypeString)
	}
	if value, ok := _u.mutation.ProblemStructure(); ok {
		_spec.SetField(pyqquestion.FieldProblemStructure, field.TypeString, value)
	}
	if _u.mutation.ProblemStructureCleared() {
		_spec.ClearField(pyqquestion.FieldProblemStructure, field.TypeString)
	}
	if value, ok := _u.mutation.ConceptKeywords(); ok {
		_spec.SetField(pyqquestion.FieldConceptKeywords, field.TypeString, value)
	}
	if _u.mutation.ConceptKeywordsCleared() {
		_spec.ClearField(pyqquestion.FieldConceptKeywords, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(pyqquestion.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QualityVerified(); ok {
		_spec.SetField(pyqquestion.FieldQualityVerified, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pyqquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PYQQuestionUpdateOne is the builder for updating a single PYQQuestion entity.
type PYQQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PYQQuestionMutation
}

// SetCategory sets the "category" field.
func (_u *PYQQuestionUpdateOne) SetCategory(v string) *PYQQuestionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableCategory(v *string) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *PYQQuestionUpdateOne) ClearCategory() *PYQQuestionUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *PYQQuestionUpdateOne) SetSubcategory(v string) *PYQQuestionUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableSubcategory(v *string) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *PYQQuestionUpdateOne) ClearSubcategory() *PYQQuestionUpdateOne {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_u *PYQQuestionUpdateOne) SetTypeOfQuestion(v string) *PYQQuestionUpdateOne {
	_u.mutation.SetTypeOfQuestion(v)
	return _u
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableTypeOfQuestion(v *string) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetTypeOfQuestion(*v)
	}
	return _u
}

// ClearTypeOfQuestion clears the value of the "type_of_question" field.
func (_u *PYQQuestionUpdateOne) ClearTypeOfQuestion() *PYQQuestionUpdateOne {
	_u.mutation.ClearTypeOfQuestion()
	return _u
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_u *PYQQuestionUpdateOne) SetDifficultyBand(v pyqquestion.DifficultyBand) *PYQQuestionUpdateOne {
	_u.mutation.SetDifficultyBand(v)
	return _u
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableDifficultyBand(v *pyqquestion.DifficultyBand) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetDifficultyBand(*v)
	}
	return _u
}

// ClearDifficultyBand clears the value of the "difficulty_band" field.
func (_u *PYQQuestionUpdateOne) ClearDifficultyBand() *PYQQuestionUpdateOne {
	_u.mutation.ClearDifficultyBand()
	return _u
}

// SetDifficultyScore sets the "difficulty_score" field.
func (_u *PYQQuestionUpdateOne) SetDifficultyScore(v float64) *PYQQuestionUpdateOne {
	_u.mutation.ResetDifficultyScore()
	_u.mutation.SetDifficultyScore(v)
	return _u
}

// SetNillableDifficultyScore sets the "difficulty_score" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableDifficultyScore(v *float64) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetDifficultyScore(*v)
	}
	return _u
}

// AddDifficultyScore adds value to the "difficulty_score" field.
func (_u *PYQQuestionUpdateOne) AddDifficultyScore(v float64) *PYQQuestionUpdateOne {
	_u.mutation.AddDifficultyScore(v)
	return _u
}

// ClearDifficultyScore clears the value of the "difficulty_score" field.
func (_u *PYQQuestionUpdateOne) ClearDifficultyScore() *PYQQuestionUpdateOne {
	_u.mutation.ClearDifficultyScore()
	return _u
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_u *PYQQuestionUpdateOne) SetPyqFrequencyScore(v float64) *PYQQuestionUpdateOne {
	_u.mutation.ResetPyqFrequencyScore()
	_u.mutation.SetPyqFrequencyScore(v)
	return _u
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillablePyqFrequencyScore(v *float64) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetPyqFrequencyScore(*v)
	}
	return _u
}

// AddPyqFrequencyScore adds value to the "pyq_frequency_score" field.
func (_u *PYQQuestionUpdateOne) AddPyqFrequencyScore(v float64) *PYQQuestionUpdateOne {
	_u.mutation.AddPyqFrequencyScore(v)
	return _u
}

// ClearPyqFrequencyScore clears the value of the "pyq_frequency_score" field.
func (_u *PYQQuestionUpdateOne) ClearPyqFrequencyScore() *PYQQuestionUpdateOne {
	_u.mutation.ClearPyqFrequencyScore()
	return _u
}

// SetCoreConcepts sets the "core_concepts" field.
func (_u *PYQQuestionUpdateOne) SetCoreConcepts(v string) *PYQQuestionUpdateOne {
	_u.mutation.SetCoreConcepts(v)
	return _u
}

// SetNillableCoreConcepts sets the "core_concepts" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableCoreConcepts(v *string) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetCoreConcepts(*v)
	}
	return _u
}

// ClearCoreConcepts clears the value of the "core_concepts" field.
func (_u *PYQQuestionUpdateOne) ClearCoreConcepts() *PYQQuestionUpdateOne {
	_u.mutation.ClearCoreConcepts()
	return _u
}

// SetSolutionMethod sets the "solution_method" field.
func (_u *PYQQuestionUpdateOne) SetSolutionMethod(v string) *PYQQuestionUpdateOne {
	_u.mutation.SetSolutionMethod(v)
	return _u
}

// SetNillableSolutionMethod sets the "solution_method" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableSolutionMethod(v *string) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetSolutionMethod(*v)
	}
	return _u
}

// ClearSolutionMethod clears the value of the "solution_method" field.
func (_u *PYQQuestionUpdateOne) ClearSolutionMethod() *PYQQuestionUpdateOne {
	_u.mutation.ClearSolutionMethod()
	return _u
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (_u *PYQQuestionUpdateOne) SetConceptDifficulty(v string) *PYQQuestionUpdateOne {
	_u.mutation.SetConceptDifficulty(v)
	return _u
}

// SetNillableConceptDifficulty sets the "concept_difficulty" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableConceptDifficulty(v *string) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetConceptDifficulty(*v)
	}
	return _u
}

// ClearConceptDifficulty clears the value of the "concept_difficulty" field.
func (_u *PYQQuestionUpdateOne) ClearConceptDifficulty() *PYQQuestionUpdateOne {
	_u.mutation.ClearConceptDifficulty()
	return _u
}

// SetOperationsRequired sets the "operations_required" field.
func (_u *PYQQuestionUpdateOne) SetOperationsRequired(v string) *PYQQuestionUpdateOne {
	_u.mutation.SetOperationsRequired(v)
	return _u
}

// SetNillableOperationsRequired sets the "operations_required" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableOperationsRequired(v *string) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetOperationsRequired(*v)
	}
	return _u
}

// ClearOperationsRequired clears the value of the "operations_required" field.
func (_u *PYQQuestionUpdateOne) ClearOperationsRequired() *PYQQuestionUpdateOne {
	_u.mutation.ClearOperationsRequired()
	return _u
}

// SetProblemStructure sets the "problem_structure" field.
func (_u *PYQQuestionUpdateOne) SetProblemStructure(v string) *PYQQuestionUpdateOne {
	_u.mutation.SetProblemStructure(v)
	return _u
}

// SetNillableProblemStructure sets the "problem_structure" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableProblemStructure(v *string) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetProblemStructure(*v)
	}
	return _u
}

// ClearProblemStructure clears the value of the "problem_structure" field.
func (_u *PYQQuestionUpdateOne) ClearProblemStructure() *PYQQuestionUpdateOne {
	_u.mutation.ClearProblemStructure()
	return _u
}

// SetConceptKeywords sets the "concept_keywords" field.
func (_u *PYQQuestionUpdateOne) SetConceptKeywords(v string) *PYQQuestionUpdateOne {
	_u.mutation.SetConceptKeywords(v)
	return _u
}

// SetNillableConceptKeywords sets the "concept_keywords" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableConceptKeywords(v *string) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetConceptKeywords(*v)
	}
	return _u
}

// ClearConceptKeywords clears the value of the "concept_keywords" field.
func (_u *PYQQuestionUpdateOne) ClearConceptKeywords() *PYQQuestionUpdateOne {
	_u.mutation.ClearConceptKeywords()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PYQQuestionUpdateOne) SetIsActive(v bool) *PYQQuestionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableIsActive(v *bool) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetQualityVerified sets the "quality_verified" field.
func (_u *PYQQuestionUpdateOne) SetQualityVerified(v bool) *PYQQuestionUpdateOne {
	_u.mutation.SetQualityVerified(v)
	return _u
}

// SetNillableQualityVerified sets the "quality_verified" field if the given value is not nil.
func (_u *PYQQuestionUpdateOne) SetNillableQualityVerified(v *bool) *PYQQuestionUpdateOne {
	if v != nil {
		_u.SetQualityVerified(*v)
	}
	return _u
}

// Mutation returns the PYQQuestionMutation object of the builder.
func (_u *PYQQuestionUpdateOne) Mutation() *PYQQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PYQQuestionUpdate builder.
func (_u *PYQQuestionUpdateOne) Where(ps ...predicate.PYQQuestion) *PYQQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PYQQuestionUpdateOne) Select(field string, fields ...string) *PYQQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PYQQuestion entity.
func (_u *PYQQuestionUpdateOne) Save(ctx context.Context) (*PYQQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PYQQuestionUpdateOne) SaveX(ctx context.Context) *PYQQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PYQQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PYQQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PYQQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.DifficultyBand(); ok {
		if err := pyqquestion.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "PYQQuestion.difficulty_band": %w`, err)}
		}
	}
	return nil
}

func (_u *PYQQuestionUpdateOne) sqlSave(ctx context.Context) (_node *PYQQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pyqquestion.Table, pyqquestion.Columns, sqlgraph.NewFieldSpec(pyqquestion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PYQQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pyqquestion.FieldID)
		for _, f := range fields {
			if !pyqquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pyqquestion.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(pyqquestion.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(pyqquestion.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(pyqquestion.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(pyqquestion.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.TypeOfQuestion(); ok {
		_spec.SetField(pyqquestion.FieldTypeOfQuestion, field.TypeString, value)
	}
	if _u.mutation.TypeOfQuestionCleared() {
		_spec.ClearField(pyqquestion.FieldTypeOfQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyBand(); ok {
		_spec.SetField(pyqquestion.FieldDifficultyBand, field.TypeEnum, value)
	}
	if _u.mutation.DifficultyBandCleared() {
		_spec.ClearField(pyqquestion.FieldDifficultyBand, field.TypeEnum)
	}
	if value, ok := _u.mutation.DifficultyScore(); ok {
		_spec.SetField(pyqquestion.FieldDifficultyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficultyScore(); ok {
		_spec.AddField(pyqquestion.FieldDifficultyScore, field.TypeFloat64, value)
	}
	if _u.mutation.DifficultyScoreCleared() {
		_spec.ClearField(pyqquestion.FieldDifficultyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(pyqquestion.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPyqFrequencyScore(); ok {
		_spec.AddField(pyqquestion.FieldPyqFrequencyScore, field.TypeFloat64, value)
	}
	if _u.mutation.PyqFrequencyScoreCleared() {
		_spec.ClearField(pyqquestion.FieldPyqFrequencyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CoreConcepts(); ok {
		_spec.SetField(pyqquestion.FieldCoreConcepts, field.TypeString, value)
	}
	if _u.mutation.CoreConceptsCleared() {
		_spec.ClearField(pyqquestion.FieldCoreConcepts, field.TypeString)
	}
	if value, ok := _u.mutation.SolutionMethod(); ok {
		_spec.SetField(pyqquestion.FieldSolutionMethod, field.TypeString, value)
	}
	if _u.mutation.SolutionMethodCleared() {
		_spec.ClearField(pyqquestion.FieldSolutionMethod, field.TypeString)
	}
	if value, ok := _u.mutation.ConceptDifficulty(); ok {
		_spec.SetField(pyqquestion.FieldConceptDifficulty, field.TypeString, value)
	}
	if _u.mutation.ConceptDifficultyCleared() {
		_spec.ClearField(pyqquestion.FieldConceptDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.OperationsRequired(); ok {
		_spec.SetField(pyqquestion.FieldOperationsRequired, field.TypeString, value)
	}
	if _u.mutation.OperationsRequiredCleared() {
		_spec.ClearField(pyqquestion.FieldOperationsRequired, field.TypeString)
	}
	if value, ok := _u.mutation.ProblemStructure(); ok {
		_spec.SetField(pyqquestion.FieldProblemStructure, field.TypeString, value)
	}
	if _u.mutation.ProblemStructureCleared() {
		_spec.ClearField(pyqquestion.FieldProblemStructure, field.TypeString)
	}
	if value, ok := _u.mutation.ConceptKeywords(); ok {
		_spec.SetField(pyqquestion.FieldConceptKeywords, field.TypeString, value)
	}
	if _u.mutation.ConceptKeywordsCleared() {
		_spec.ClearField(pyqquestion.FieldConceptKeywords, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(pyqquestion.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QualityVerified(); ok {
		_spec.SetField(pyqquestion.FieldQualityVerified, field.TypeBool, value)
	}
	_node = &PYQQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pyqquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
