// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptivecat/planner/ent/pyqquestion"
)

// PYQQuestion is the model entity for the PYQQuestion schema.
type PYQQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Stem holds the value of the "stem" field.
	Stem string `json:"stem,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// TypeOfQuestion holds the value of the "type_of_question" field.
	TypeOfQuestion string `json:"type_of_question,omitempty"`
	// DifficultyBand holds the value of the "difficulty_band" field.
	DifficultyBand pyqquestion.DifficultyBand `json:"difficulty_band,omitempty"`
	// DifficultyScore holds the value of the "difficulty_score" field.
	DifficultyScore float64 `json:"difficulty_score,omitempty"`
	// PyqFrequencyScore holds the value of the "pyq_frequency_score" field.
	PyqFrequencyScore *float64 `json:"pyq_frequency_score,omitempty"`
	// CoreConcepts holds the value of the "core_concepts" field.
	CoreConcepts string `json:"core_concepts,omitempty"`
	// SolutionMethod holds the value of the "solution_method" field.
	SolutionMethod string `json:"solution_method,omitempty"`
	// ConceptDifficulty holds the value of the "concept_difficulty" field.
	ConceptDifficulty string `json:"concept_difficulty,omitempty"`
	// OperationsRequired holds the value of the "operations_required" field.
	OperationsRequired string `json:"operations_required,omitempty"`
	// ProblemStructure holds the value of the "problem_structure" field.
	ProblemStructure *string `json:"problem_structure,omitempty"`
	// ConceptKeywords holds the value of the "concept_keywords" field.
	ConceptKeywords *string `json:"concept_keywords,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// QualityVerified holds the value of the "quality_verified" field.
	QualityVerified bool `json:"quality_verified,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PYQQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pyqquestion.FieldIsActive, pyqquestion.FieldQualityVerified:
			values[i] = new(sql.NullBool)
		case pyqquestion.FieldDifficultyScore, pyqquestion.FieldPyqFrequencyScore:
			values[i] = new(sql.NullFloat64)
		case pyqquestion.FieldID, pyqquestion.FieldStem, pyqquestion.FieldCategory, pyqquestion.FieldSubcategory, pyqquestion.FieldTypeOfQuestion, pyqquestion.FieldDifficultyBand, pyqquestion.FieldCoreConcepts, pyqquestion.FieldSolutionMethod, pyqquestion.FieldConceptDifficulty, pyqquestion.FieldOperationsRequired, pyqquestion.FieldProblemStructure, pyqquestion.FieldConceptKeywords:
			values[i] = new(sql.NullString)
		case pyqquestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PYQQuestion fields.
func (_m *PYQQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pyqquestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pyqquestion.FieldStem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stem", values[i])
			} else if value.Valid {
				_m.Stem = value.String
			}
		case pyqquestion.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case pyqquestion.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case pyqquestion.FieldTypeOfQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_question", values[i])
			} else if value.Valid {
				_m.TypeOfQuestion = value.String
			}
		case pyqquestion.FieldDifficultyBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_band", values[i])
			} else if value.Valid {
				_m.DifficultyBand = pyqquestion.DifficultyBand(value.String)
			}
		case pyqquestion.FieldDifficultyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_score", values[i])
			} else if value.Valid {
				_m.DifficultyScore = value.Float64
			}
		case pyqquestion.FieldPyqFrequencyScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pyq_frequency_score", values[i])
			} else if value.Valid {
				_m.PyqFrequencyScore = new(float64)
				*_m.PyqFrequencyScore = value.Float64
			}
		case pyqquestion.FieldCoreConcepts:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field core_concepts", values[i])
			} else if value.Valid {
				_m.CoreConcepts = value.String
			}
		case pyqquestion.FieldSolutionMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution_method", values[i])
			} else if value.Valid {
				_m.SolutionMethod = value.String
			}
		case pyqquestion.FieldConceptDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_difficulty", values[i])
			} else if value.Valid {
				_m.ConceptDifficulty = value.String
			}
		case pyqquestion.FieldOperationsRequired:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operations_required", values[i])
			} else if value.Valid {
				_m.OperationsRequired = value.String
			}
		case pyqquestion.FieldProblemStructure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_structure", values[i])
			} else if value.Valid {
				_m.ProblemStructure = new(string)
				*_m.ProblemStructure = value.String
			}
		case pyqquestion.FieldConceptKeywords:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_keywords", values[i])
			} else if value.Valid {
				_m.ConceptKeywords = new(string)
				*_m.ConceptKeywords = value.String
			}
		case pyqquestion.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case pyqquestion.FieldQualityVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field quality_verified", values[i])
			} else if value.Valid {
				_m.QualityVerified = value.Bool
			}
		case pyqquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PYQQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *PYQQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PYQQuestion.
// Note that you need to call PYQQuestion.Unwrap() before calling this method if this PYQQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PYQQuestion) Update() *PYQQuestionUpdateOne {
	return NewPYQQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PYQQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PYQQuestion) Unwrap() *PYQQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PYQQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PYQQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("PYQQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("stem=")
	builder.WriteString(_m.Stem)
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
	if v := _m.ConceptKeywords; v != nil {
		builder.WriteString("concept_keywords=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("quality_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityVerified))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PYQQuestions is a parsable slice of PYQQuestion.
type PYQQuestions []*PYQQuestion
