// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adaptivecat/planner/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetStem sets the "stem" field.
func (_c *QuestionCreate) SetStem(v string) *QuestionCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetAdminAnswer sets the "admin_answer" field.
func (_c *QuestionCreate) SetAdminAnswer(v string) *QuestionCreate {
	_c.mutation.SetAdminAnswer(v)
	return _c
}

// SetAdminSolution sets the "admin_solution" field.
func (_c *QuestionCreate) SetAdminSolution(v string) *QuestionCreate {
	_c.mutation.SetAdminSolution(v)
	return _c
}

// SetNillableAdminSolution sets the "admin_solution" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableAdminSolution(v *string) *QuestionCreate {
	if v != nil {
		_c.SetAdminSolution(*v)
	}
	return _c
}

// SetPrincipleToRemember sets the "principle_to_remember" field.
func (_c *QuestionCreate) SetPrincipleToRemember(v string) *QuestionCreate {
	_c.mutation.SetPrincipleToRemember(v)
	return _c
}

// SetNillablePrincipleToRemember sets the "principle_to_remember" field if the given value is not nil.
func (_c *QuestionCreate) SetNillablePrincipleToRemember(v *string) *QuestionCreate {
	if v != nil {
		_c.SetPrincipleToRemember(*v)
	}
	return _c
}

// SetImageRef sets the "image_ref" field.
func (_c *QuestionCreate) SetImageRef(v string) *QuestionCreate {
	_c.mutation.SetImageRef(v)
	return _c
}

// SetNillableImageRef sets the "image_ref" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableImageRef(v *string) *QuestionCreate {
	if v != nil {
		_c.SetImageRef(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *QuestionCreate) SetCategory(v string) *QuestionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCategory(v *string) *QuestionCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *QuestionCreate) SetSubcategory(v string) *QuestionCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSubcategory(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSubcategory(*v)
	}
	return _c
}

// SetTypeOfQuestion sets the "type_of_question" field.
func (_c *QuestionCreate) SetTypeOfQuestion(v string) *QuestionCreate {
	_c.mutation.SetTypeOfQuestion(v)
	return _c
}

// SetNillableTypeOfQuestion sets the "type_of_question" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTypeOfQuestion(v *string) *QuestionCreate {
	if v != nil {
		_c.SetTypeOfQuestion(*v)
	}
	return _c
}

// SetDifficultyBand sets the "difficulty_band" field.
func (_c *QuestionCreate) SetDifficultyBand(v question.DifficultyBand) *QuestionCreate {
	_c.mutation.SetDifficultyBand(v)
	return _c
}

// SetNillableDifficultyBand sets the "difficulty_band" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDifficultyBand(v *question.DifficultyBand) *QuestionCreate {
	if v != nil {
		_c.SetDifficultyBand(*v)
	}
	return _c
}

// SetDifficultyScore sets the "difficulty_score" field.
func (_c *QuestionCreate) SetDifficultyScore(v float64) *QuestionCreate {
	_c.mutation.SetDifficultyScore(v)
	return _c
}

// SetNillableDifficultyScore sets the "difficulty_score" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDifficultyScore(v *float64) *QuestionCreate {
	if v != nil {
		_c.SetDifficultyScore(*v)
	}
	return _c
}

// SetPyqFrequencyScore sets the "pyq_frequency_score" field.
func (_c *QuestionCreate) SetPyqFrequencyScore(v float64) *QuestionCreate {
	_c.mutation.SetPyqFrequencyScore(v)
	return _c
}

// SetNillablePyqFrequencyScore sets the "pyq_frequency_score" field if the given value is not nil.
func (_c *QuestionCreate) SetNillablePyqFrequencyScore(v *float64) *QuestionCreate {
	if v != nil {
		_c.SetPyqFrequencyScore(*v)
	}
	return _c
}

// SetRightAnswer sets the "right_answer" field.
func (_c *QuestionCreate) SetRightAnswer(v string) *QuestionCreate {
	_c.mutation.SetRightAnswer(v)
	return _c
}

// SetNillableRightAnswer sets the "right_answer" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableRightAnswer(v *string) *QuestionCreate {
	if v != nil {
		_c.SetRightAnswer(*v)
	}
	return _c
}

// SetCoreConcepts sets the "core_concepts" field.
func (_c *QuestionCreate) SetCoreConcepts(v string) *QuestionCreate {
	_c.mutation.SetCoreConcepts(v)
	return _c
}

// SetNillableCoreConcepts sets the "core_concepts" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCoreConcepts(v *string) *QuestionCreate {
	if v != nil {
		_c.SetCoreConcepts(*v)
	}
	return _c
}

// SetSolutionMethod sets the "solution_method" field.
func (_c *QuestionCreate) SetSolutionMethod(v string) *QuestionCreate {
	_c.mutation.SetSolutionMethod(v)
	return _c
}

// SetNillableSolutionMethod sets the "solution_method" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSolutionMethod(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSolutionMethod(*v)
	}
	return _c
}

// SetConceptDifficulty sets the "concept_difficulty" field.
func (_c *QuestionCreate) SetConceptDifficulty(v string) *QuestionCreate {
	_c.mutation.SetConceptDifficulty(v)
	return _c
}

// SetNillableConceptDifficulty sets the "concept_difficulty" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableConceptDifficulty(v *string) *QuestionCreate {
	if v != nil {
		_c.SetConceptDifficulty(*v)
	}
	return _c
}

// SetOperationsRequired sets the "operations_required" field.
func (_c *QuestionCreate) SetOperationsRequired(v string) *QuestionCreate {
	_c.mutation.SetOperationsRequired(v)
	return _c
}

// SetNillableOperationsRequired sets the "operations_required" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableOperationsRequired(v *string) *QuestionCreate {
	if v != nil {
		_c.SetOperationsRequired(*v)
	}
	return _c
}

// SetProblemStructure sets the "problem_structure" field.
func (_c *QuestionCreate) SetProblemStructure(v string) *QuestionCreate {
	_c.mutation.SetProblemStructure(v)
	return _c
}

// SetNillableProblemStructure sets the "problem_structure" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableProblemStructure(v *string) *QuestionCreate {
	if v != nil {
		_c.SetProblemStructure(*v)
	}
	return _c
}

// SetConceptKeywords sets the "concept_keywords" field.
func (_c *QuestionCreate) SetConceptKeywords(v string) *QuestionCreate {
	_c.mutation.SetConceptKeywords(v)
	return _c
}

// SetNillableConceptKeywords sets the "concept_keywords" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableConceptKeywords(v *string) *QuestionCreate {
	if v != nil {
		_c.SetConceptKeywords(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *QuestionCreate) SetIsActive(v bool) *QuestionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableIsActive(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetQualityVerified sets the "quality_verified" field.
func (_c *QuestionCreate) SetQualityVerified(v bool) *QuestionCreate {
	_c.mutation.SetQualityVerified(v)
	return _c
}

// SetNillableQualityVerified sets the "quality_verified" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableQualityVerified(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetQualityVerified(*v)
	}
	return _c
}

// SetConceptExtractionStatus sets the "concept_extraction_status" field.
func (_c *QuestionCreate) SetConceptExtractionStatus(v question.ConceptExtractionStatus) *QuestionCreate {
	_c.mutation.SetConceptExtractionStatus(v)
	return _c
}

// SetNillableConceptExtractionStatus sets the "concept_extraction_status" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableConceptExtractionStatus(v *question.ConceptExtractionStatus) *QuestionCreate {
	if v != nil {
		_c.SetConceptExtractionStatus(*v)
	}
	return _c
}

// SetFailingCriteria sets the "failing_criteria" field.
func (_c *QuestionCreate) SetFailingCriteria(v string) *QuestionCreate {
	_c.mutation.SetFailingCriteria(v)
	return _c
}

// SetNillableFailingCriteria sets the "failing_criteria" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableFailingCriteria(v *string) *QuestionCreate {
	if v != nil {
		_c.SetFailingCriteria(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuestionCreate) SetUpdatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableUpdatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v string) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := question.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.QualityVerified(); !ok {
		v := question.DefaultQualityVerified
		_c.mutation.SetQualityVerified(v)
	}
	if _, ok := _c.mutation.ConceptExtractionStatus(); !ok {
		v := question.DefaultConceptExtractionStatus
		_c.mutation.SetConceptExtractionStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := question.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "Question.stem"`)}
	}
	if _, ok := _c.mutation.AdminAnswer(); !ok {
		return &ValidationError{Name: "admin_answer", err: errors.New(`ent: missing required field "Question.admin_answer"`)}
	}
	if v, ok := _c.mutation.DifficultyBand(); ok {
		if err := question.DifficultyBandValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_band", err: fmt.Errorf(`ent: validator failed for field "Question.difficulty_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Question.is_active"`)}
	}
	if _, ok := _c.mutation.QualityVerified(); !ok {
		return &ValidationError{Name: "quality_verified", err: errors.New(`ent: missing required field "Question.quality_verified"`)}
	}
	if _, ok := _c.mutation.ConceptExtractionStatus(); !ok {
		return &ValidationError{Name: "concept_extraction_status", err: errors.New(`ent: missing required field "Question.concept_extraction_status"`)}
	}
	if v, ok := _c.mutation.ConceptExtractionStatus(); ok {
		if err := question.ConceptExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "concept_extraction_status", err: fmt.Errorf(`ent: validator failed for field "Question.concept_extraction_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Question.updated_at"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.AdminAnswer(); ok {
		_spec.SetField(question.FieldAdminAnswer, field.TypeString, value)
		_node.AdminAnswer = value
	}
	if value, ok := _c.mutation.AdminSolution(); ok {
		_spec.SetField(question.FieldAdminSolution, field.TypeString, value)
		_node.AdminSolution = value
	}
	if value, ok := _c.mutation.PrincipleToRemember(); ok {
		_spec.SetField(question.FieldPrincipleToRemember, field.TypeString, value)
		_node.PrincipleToRemember = value
	}
	if value, ok := _c.mutation.ImageRef(); ok {
		_spec.SetField(question.FieldImageRef, field.TypeString, value)
		_node.ImageRef = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(question.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(question.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.TypeOfQuestion(); ok {
		_spec.SetField(question.FieldTypeOfQuestion, field.TypeString, value)
		_node.TypeOfQuestion = value
	}
	if value, ok := _c.mutation.DifficultyBand(); ok {
		_spec.SetField(question.FieldDifficultyBand, field.TypeEnum, value)
		_node.DifficultyBand = value
	}
	if value, ok := _c.mutation.DifficultyScore(); ok {
		_spec.SetField(question.FieldDifficultyScore, field.TypeFloat64, value)
		_node.DifficultyScore = value
	}
	if value, ok := _c.mutation.PyqFrequencyScore(); ok {
		_spec.SetField(question.FieldPyqFrequencyScore, field.TypeFloat64, value)
		_node.PyqFrequencyScore = &value
	}
	if value, ok := _c.mutation.RightAnswer(); ok {
		_spec.SetField(question.FieldRightAnswer, field.TypeString, value)
		_node.RightAnswer = value
	}
	if value, ok := _c.mutation.CoreConcepts(); ok {
		_spec.SetField(question.FieldCoreConcepts, field.TypeString, value)
		_node.CoreConcepts = value
	}
	if value, ok := _c.mutation.SolutionMethod(); ok {
		_spec.SetField(question.FieldSolutionMethod, field.TypeString, value)
		_node.SolutionMethod = value
	}
	if value, ok := _c.mutation.ConceptDifficulty(); ok {
		_spec.SetField(question.FieldConceptDifficulty, field.TypeString, value)
		_node.ConceptDifficulty = value
	}
	if value, ok := _c.mutation.OperationsRequired(); ok {
		_spec.SetField(question.FieldOperationsRequired, field.TypeString, value)
		_node.OperationsRequired = value
	}
	if value, ok := _c.mutation.ProblemStructure(); ok {
		_spec.SetField(question.FieldProblemStructure, field.TypeString, value)
		_node.ProblemStructure = &value
	}
	if value, ok := _c.mutation.ConceptKeywords(); ok {
		_spec.SetField(question.FieldConceptKeywords, field.TypeString, value)
		_node.ConceptKeywords = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(question.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.QualityVerified(); ok {
		_spec.SetField(question.FieldQualityVerified, field.TypeBool, value)
		_node.QualityVerified = value
	}
	if value, ok := _c.mutation.ConceptExtractionStatus(); ok {
		_spec.SetField(question.FieldConceptExtractionStatus, field.TypeEnum, value)
		_node.ConceptExtractionStatus = value
	}
	if value, ok := _c.mutation.FailingCriteria(); ok {
		_spec.SetField(question.FieldFailingCriteria, field.TypeString, value)
		_node.FailingCriteria = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(question.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
