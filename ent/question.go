// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptivecat/planner/ent/question"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Stem holds the value of the "stem" field.
	Stem string `json:"stem,omitempty"`
	// AdminAnswer holds the value of the "admin_answer" field.
	AdminAnswer string `json:"admin_answer,omitempty"`
	// AdminSolution holds the value of the "admin_solution" field.
	AdminSolution string `json:"admin_solution,omitempty"`
	// PrincipleToRemember holds the value of the "principle_to_remember" field.
	PrincipleToRemember string `json:"principle_to_remember,omitempty"`
	// ImageRef holds the value of the "image_ref" field.
	ImageRef string `json:"image_ref,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// TypeOfQuestion holds the value of the "type_of_question" field.
	TypeOfQuestion string `json:"type_of_question,omitempty"`
	// DifficultyBand holds the value of the "difficulty_band" field.
	DifficultyBand question.DifficultyBand `json:"difficulty_band,omitempty"`
	// DifficultyScore holds the value of the "difficulty_score" field.
	DifficultyScore float64 `json:"difficulty_score,omitempty"`
	// PyqFrequencyScore holds the value of the "pyq_frequency_score" field.
	PyqFrequencyScore *float64 `json:"pyq_frequency_score,omitempty"`
	// RightAnswer holds the value of the "right_answer" field.
	RightAnswer string `json:"right_answer,omitempty"`
	// JSON array of concept tokens
	CoreConcepts string `json:"core_concepts,omitempty"`
	// SolutionMethod holds the value of the "solution_method" field.
	SolutionMethod string `json:"solution_method,omitempty"`
	// JSON object: prerequisites, cognitive_barriers, mastery_indicators
	ConceptDifficulty string `json:"concept_difficulty,omitempty"`
	// JSON array of operation tokens
	OperationsRequired string `json:"operations_required,omitempty"`
	// ProblemStructure holds the value of the "problem_structure" field.
	ProblemStructure *string `json:"problem_structure,omitempty"`
	// JSON array
	ConceptKeywords string `json:"concept_keywords,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// QualityVerified holds the value of the "quality_verified" field.
	QualityVerified bool `json:"quality_verified,omitempty"`
	// ConceptExtractionStatus holds the value of the "concept_extraction_status" field.
	ConceptExtractionStatus question.ConceptExtractionStatus `json:"concept_extraction_status,omitempty"`
	// JSON array of failing check names, set when the quality gate rejects
	FailingCriteria *string `json:"failing_criteria,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldIsActive, question.FieldQualityVerified:
			values[i] = new(sql.NullBool)
		case question.FieldDifficultyScore, question.FieldPyqFrequencyScore:
			values[i] = new(sql.NullFloat64)
		case question.FieldID, question.FieldStem, question.FieldAdminAnswer, question.FieldAdminSolution, question.FieldPrincipleToRemember, question.FieldImageRef, question.FieldCategory, question.FieldSubcategory, question.FieldTypeOfQuestion, question.FieldDifficultyBand, question.FieldRightAnswer, question.FieldCoreConcepts, question.FieldSolutionMethod, question.FieldConceptDifficulty, question.FieldOperationsRequired, question.FieldProblemStructure, question.FieldConceptKeywords, question.FieldConceptExtractionStatus, question.FieldFailingCriteria:
			values[i] = new(sql.NullString)
		case question.FieldCreatedAt, question.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case question.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case question.FieldAdminAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_answer", values[i])
			} else if value.Valid {
				_m.AdminAnswer = value.String
			}
		case question.FieldAdminSolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field admin_solution", values[i])
			} else if value.Valid {
				_m.AdminSolution = value.String
			}
		case question.FieldPrincipleToRemember:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field principle_to_remember", values[i])
			} else if value.Valid {
				_m.PrincipleToRemember = value.String
			}
		case question.FieldImageRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_ref", values[i])
			} else if value.Valid {
				_m.ImageRef = value.String
			}
		case question.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case question.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case question.FieldTypeOfQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_question", values[i])
			} else if value.Valid {
				_m.TypeOfQuestion = value.String
			}
		case question.FieldDifficultyBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_band", values[i])
			} else if value.Valid {
				_m.DifficultyBand = question.DifficultyBand(value.String)
			}
		case question.FieldDifficultyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_score", values[i])
			} else if value.Valid {
				_m.DifficultyScore = value.Float64
			}
		case question.FieldPyqFrequencyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pyq_frequency_score", values[i])
			} else if value.Valid {
				_m.PyqFrequencyScore = new(float64)
				*_m.PyqFrequencyScore = value.Float64
			}
		case question.FieldRightAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field right_answer", values[i])
			} else if value.Valid {
				_m.RightAnswer = value.String
			}
		case question.FieldCoreConcepts:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field core_concepts", values[i])
			} else if value.Valid {
				_m.CoreConcepts = value.String
			}
		case question.FieldSolutionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution_method", values[i])
			} else if value.Valid {
				_m.SolutionMethod = value.String
			}
		case question.FieldConceptDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_difficulty", values[i])
			} else if value.Valid {
				_m.ConceptDifficulty = value.String
			}
		case question.FieldOperationsRequired:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operations_required", values[i])
			} else if value.Valid {
				_m.OperationsRequired = value.String
			}
		case question.FieldProblemStructure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_structure", values[i])
			} else if value.Valid {
				_m.ProblemStructure = new(string)
				*_m.ProblemStructure = value.String
			}
		case question.FieldConceptKeywords:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_keywords", values[i])
			} else if value.Valid {
				_m.ConceptKeywords = value.String
			}
		case question.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case question.FieldQualityVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field quality_verified", values[i])
			} else if value.Valid {
				_m.QualityVerified = value.Bool
			}
		case question.FieldConceptExtractionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_extraction_status", values[i])
			} else if value.Valid {
				_m.ConceptExtractionStatus = question.ConceptExtractionStatus(value.String)
			}
		case question.FieldFailingCriteria:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failing_criteria", values[i])
			} else if value.Valid {
				_m.FailingCriteria = new(string)
				*_m.FailingCriteria = value.String
			}
		case question.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case question.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
	builder.WriteString(", ")
	builder.WriteString("admin_answer=")
	builder.WriteString(_m.AdminAnswer)
	builder.WriteString(", ")
	builder.WriteString("admin_solution=")
	builder.WriteString(_m.AdminSolution)
	builder.WriteString(", ")
	builder.WriteString("principle_to_remember=")
	builder.WriteString(_m.PrincipleToRemember)
	builder.WriteString(", ")
	builder.WriteString("image_ref=")
	builder.WriteString(_m.ImageRef)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("subcategory=")
	builder.WriteString(_m.Subcategory)
	builder.WriteString(", ")
	builder.WriteString("type_of_question=")
	builder.WriteString(_m.TypeOfQuestion)
	builder.WriteString(", ")
	builder.WriteString("difficulty_band=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyBand))
	builder.WriteString(", ")
	builder.WriteString("difficulty_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyScore))
	builder.WriteString(", ")
	if v := _m.PyqFrequencyScore; v != nil {
		builder.WriteString("pyq_frequency_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("right_answer=")
	builder.WriteString(_m.RightAnswer)
	builder.WriteString(", ")
	builder.WriteString("core_concepts=")
	builder.WriteString(_m.CoreConcepts)
	builder.WriteString(", ")
	builder.WriteString("solution_method=")
	builder.WriteString(_m.SolutionMethod)
	builder.WriteString(", ")
	builder.WriteString("concept_difficulty=")
	builder.WriteString(_m.ConceptDifficulty)
	builder.WriteString(", ")
	builder.WriteString("operations_required=")
	builder.WriteString(_m.OperationsRequired)
	builder.WriteString(", ")
	if v := _m.ProblemStructure; v != nil {
		builder.WriteString("problem_structure=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("concept_keywords=")
	builder.WriteString(_m.ConceptKeywords)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("quality_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityVerified))
	builder.WriteString(", ")
	builder.WriteString("concept_extraction_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptExtractionStatus))
	builder.WriteString(", ")
	if v := _m.FailingCriteria; v != nil {
		builder.WriteString("failing_criteria=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
