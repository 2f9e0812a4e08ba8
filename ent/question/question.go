// Code generated by ent, DO NOT EDIT.

package question

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStem holds the string denoting the stem field in the database.
	FieldStem = "stem"
	// FieldAdminAnswer holds the string denoting the admin_answer field in the database.
	FieldAdminAnswer = "admin_answer"
	// FieldAdminSolution holds the string denoting the admin_solution field in the database.
	FieldAdminSolution = "admin_solution"
	// FieldPrincipleToRemember holds the string denoting the principle_to_remember field in the database.
	FieldPrincipleToRemember = "principle_to_remember"
	// FieldImageRef holds the string denoting the image_ref field in the database.
	FieldImageRef = "image_ref"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldTypeOfQuestion holds the string denoting the type_of_question field in the database.
	FieldTypeOfQuestion = "type_of_question"
	// FieldDifficultyBand holds the string denoting the difficulty_band field in the database.
	FieldDifficultyBand = "difficulty_band"
	// FieldDifficultyScore holds the string denoting the difficulty_score field in the database.
	FieldDifficultyScore = "difficulty_score"
	// FieldPyqFrequencyScore holds the string denoting the pyq_frequency_score field in the database.
	FieldPyqFrequencyScore = "pyq_frequency_score"
	// FieldRightAnswer holds the string denoting the right_answer field in the database.
	FieldRightAnswer = "right_answer"
	// FieldCoreConcepts holds the string denoting the core_concepts field in the database.
	FieldCoreConcepts = "core_concepts"
	// FieldSolutionMethod holds the string denoting the solution_method field in the database.
	FieldSolutionMethod = "solution_method"
	// FieldConceptDifficulty holds the string denoting the concept_difficulty field in the database.
	FieldConceptDifficulty = "concept_difficulty"
	// FieldOperationsRequired holds the string denoting the operations_required field in the database.
	FieldOperationsRequired = "operations_required"
	// FieldProblemStructure holds the string denoting the problem_structure field in the database.
	FieldProblemStructure = "problem_structure"
	// FieldConceptKeywords holds the string denoting the concept_keywords field in the database.
	FieldConceptKeywords = "concept_keywords"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldQualityVerified holds the string denoting the quality_verified field in the database.
	FieldQualityVerified = "quality_verified"
	// FieldConceptExtractionStatus holds the string denoting the concept_extraction_status field in the database.
	FieldConceptExtractionStatus = "concept_extraction_status"
	// FieldFailingCriteria holds the string denoting the failing_criteria field in the database.
	FieldFailingCriteria = "failing_criteria"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldStem,
	FieldAdminAnswer,
	FieldAdminSolution,
	FieldPrincipleToRemember,
	FieldImageRef,
	FieldCategory,
	FieldSubcategory,
	FieldTypeOfQuestion,
	FieldDifficultyBand,
	FieldDifficultyScore,
	FieldPyqFrequencyScore,
	FieldRightAnswer,
	FieldCoreConcepts,
	FieldSolutionMethod,
	FieldConceptDifficulty,
	FieldOperationsRequired,
	FieldProblemStructure,
	FieldConceptKeywords,
	FieldIsActive,
	FieldQualityVerified,
	FieldConceptExtractionStatus,
	FieldFailingCriteria,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultQualityVerified holds the default value on creation for the "quality_verified" field.
	DefaultQualityVerified bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// DifficultyBand defines the type for the "difficulty_band" enum field.
type DifficultyBand string

// DifficultyBand values.
const (
	DifficultyBandEasy   DifficultyBand = "Easy"
	DifficultyBandMedium DifficultyBand = "Medium"
	DifficultyBandHard   DifficultyBand = "Hard"
)

func (db DifficultyBand) String() string {
	return string(db)
}

// DifficultyBandValidator is a validator for the "difficulty_band" field enum values. It is called by the builders before save.
func DifficultyBandValidator(db DifficultyBand) error {
	switch db {
	case DifficultyBandEasy, DifficultyBandMedium, DifficultyBandHard:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for difficulty_band field: %q", db)
	}
}

// ConceptExtractionStatus defines the type for the "concept_extraction_status" enum field.
type ConceptExtractionStatus string

// ConceptExtractionStatusPending is the default value of the ConceptExtractionStatus enum.
const DefaultConceptExtractionStatus = ConceptExtractionStatusPending

// ConceptExtractionStatus values.
const (
	ConceptExtractionStatusPending   ConceptExtractionStatus = "pending"
	ConceptExtractionStatusCompleted ConceptExtractionStatus = "completed"
)

func (ces ConceptExtractionStatus) String() string {
	return string(ces)
}

// ConceptExtractionStatusValidator is a validator for the "concept_extraction_status" field enum values. It is called by the builders before save.
func ConceptExtractionStatusValidator(ces ConceptExtractionStatus) error {
	switch ces {
	case ConceptExtractionStatusPending, ConceptExtractionStatusCompleted:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for concept_extraction_status field: %q", ces)
	}
}

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStem orders the results by the stem field.
func ByStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStem, opts...).ToFunc()
}

// ByAdminAnswer orders the results by the admin_answer field.
func ByAdminAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminAnswer, opts...).ToFunc()
}

// ByAdminSolution orders the results by the admin_solution field.
func ByAdminSolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminSolution, opts...).ToFunc()
}

// ByPrincipleToRemember orders the results by the principle_to_remember field.
func ByPrincipleToRemember(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrincipleToRemember, opts...).ToFunc()
}

// ByImageRef orders the results by the image_ref field.
func ByImageRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageRef, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByTypeOfQuestion orders the results by the type_of_question field.
func ByTypeOfQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeOfQuestion, opts...).ToFunc()
}

// ByDifficultyBand orders the results by the difficulty_band field.
func ByDifficultyBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyBand, opts...).ToFunc()
}

// ByDifficultyScore orders the results by the difficulty_score field.
func ByDifficultyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyScore, opts...).ToFunc()
}

// ByPyqFrequencyScore orders the results by the pyq_frequency_score field.
func ByPyqFrequencyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPyqFrequencyScore, opts...).ToFunc()
}

// ByRightAnswer orders the results by the right_answer field.
func ByRightAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRightAnswer, opts...).ToFunc()
}

// ByCoreConcepts orders the results by the core_concepts field.
func ByCoreConcepts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoreConcepts, opts...).ToFunc()
}

// BySolutionMethod orders the results by the solution_method field.
func BySolutionMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionMethod, opts...).ToFunc()
}

// ByConceptDifficulty orders the results by the concept_difficulty field.
func ByConceptDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptDifficulty, opts...).ToFunc()
}

// ByOperationsRequired orders the results by the operations_required field.
func ByOperationsRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperationsRequired, opts...).ToFunc()
}

// ByProblemStructure orders the results by the problem_structure field.
func ByProblemStructure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemStructure, opts...).ToFunc()
}

// ByConceptKeywords orders the results by the concept_keywords field.
func ByConceptKeywords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptKeywords, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByQualityVerified orders the results by the quality_verified field.
func ByQualityVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityVerified, opts...).ToFunc()
}

// ByConceptExtractionStatus orders the results by the concept_extraction_status field.
func ByConceptExtractionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptExtractionStatus, opts...).ToFunc()
}

// ByFailingCriteria orders the results by the failing_criteria field.
func ByFailingCriteria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailingCriteria, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
