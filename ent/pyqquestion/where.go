// Code generated by ent, DO NOT EDIT.

package pyqquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adaptivecat/planner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldID, id))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldStem, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldCategory, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldSubcategory, v))
}

// TypeOfQuestion applies equality check predicate on the "type_of_question" field. It's identical to TypeOfQuestionEQ.
func TypeOfQuestion(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// DifficultyScore applies equality check predicate on the "difficulty_score" field. It's identical to DifficultyScoreEQ.
func DifficultyScore(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldDifficultyScore, v))
}

// PyqFrequencyScore applies equality check predicate on the "pyq_frequency_score" field. It's identical to PyqFrequencyScoreEQ.
func PyqFrequencyScore(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldPyqFrequencyScore, v))
}

// CoreConcepts applies equality check predicate on the "core_concepts" field. It's identical to CoreConceptsEQ.
func CoreConcepts(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldCoreConcepts, v))
}

// SolutionMethod applies equality check predicate on the "solution_method" field. It's identical to SolutionMethodEQ.
func SolutionMethod(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldSolutionMethod, v))
}

// ConceptDifficulty applies equality check predicate on the "concept_difficulty" field. It's identical to ConceptDifficultyEQ.
func ConceptDifficulty(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldConceptDifficulty, v))
}

// OperationsRequired applies equality check predicate on the "operations_required" field. It's identical to OperationsRequiredEQ.
func OperationsRequired(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldOperationsRequired, v))
}

// ProblemStructure applies equality check predicate on the "problem_structure" field. It's identical to ProblemStructureEQ.
func ProblemStructure(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldProblemStructure, v))
}

// ConceptKeywords applies equality check predicate on the "concept_keywords" field. It's identical to ConceptKeywordsEQ.
func ConceptKeywords(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldConceptKeywords, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldIsActive, v))
}

// QualityVerified applies equality check predicate on the "quality_verified" field. It's identical to QualityVerifiedEQ.
func QualityVerified(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldQualityVerified, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldStem, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldCategory, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryIsNil applies the IsNil predicate on the "subcategory" field.
func SubcategoryIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldSubcategory))
}

// SubcategoryNotNil applies the NotNil predicate on the "subcategory" field.
func SubcategoryNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldSubcategory))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldSubcategory, v))
}

// TypeOfQuestionEQ applies the EQ predicate on the "type_of_question" field.
func TypeOfQuestionEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionNEQ applies the NEQ predicate on the "type_of_question" field.
func TypeOfQuestionNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIn applies the In predicate on the "type_of_question" field.
func TypeOfQuestionIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionNotIn applies the NotIn predicate on the "type_of_question" field.
func TypeOfQuestionNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionGT applies the GT predicate on the "type_of_question" field.
func TypeOfQuestionGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionGTE applies the GTE predicate on the "type_of_question" field.
func TypeOfQuestionGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLT applies the LT predicate on the "type_of_question" field.
func TypeOfQuestionLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLTE applies the LTE predicate on the "type_of_question" field.
func TypeOfQuestionLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContains applies the Contains predicate on the "type_of_question" field.
func TypeOfQuestionContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasPrefix applies the HasPrefix predicate on the "type_of_question" field.
func TypeOfQuestionHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasSuffix applies the HasSuffix predicate on the "type_of_question" field.
func TypeOfQuestionHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIsNil applies the IsNil predicate on the "type_of_question" field.
func TypeOfQuestionIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldTypeOfQuestion))
}

// TypeOfQuestionNotNil applies the NotNil predicate on the "type_of_question" field.
func TypeOfQuestionNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldTypeOfQuestion))
}

// TypeOfQuestionEqualFold applies the EqualFold predicate on the "type_of_question" field.
func TypeOfQuestionEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContainsFold applies the ContainsFold predicate on the "type_of_question" field.
func TypeOfQuestionContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldTypeOfQuestion, v))
}

// DifficultyBandEQ applies the EQ predicate on the "difficulty_band" field.
func DifficultyBandEQ(v DifficultyBand) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldDifficultyBand, v))
}

// DifficultyBandNEQ applies the NEQ predicate on the "difficulty_band" field.
func DifficultyBandNEQ(v DifficultyBand) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldDifficultyBand, v))
}

// DifficultyBandIn applies the In predicate on the "difficulty_band" field.
func DifficultyBandIn(vs ...DifficultyBand) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldDifficultyBand, vs...))
}

// DifficultyBandNotIn applies the NotIn predicate on the "difficulty_band" field.
func DifficultyBandNotIn(vs ...DifficultyBand) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldDifficultyBand, vs...))
}

// DifficultyBandIsNil applies the IsNil predicate on the "difficulty_band" field.
func DifficultyBandIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldDifficultyBand))
}

// DifficultyBandNotNil applies the NotNil predicate on the "difficulty_band" field.
func DifficultyBandNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldDifficultyBand))
}

// DifficultyScoreEQ applies the EQ predicate on the "difficulty_score" field.
func DifficultyScoreEQ(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldDifficultyScore, v))
}

// DifficultyScoreNEQ applies the NEQ predicate on the "difficulty_score" field.
func DifficultyScoreNEQ(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldDifficultyScore, v))
}

// DifficultyScoreIn applies the In predicate on the "difficulty_score" field.
func DifficultyScoreIn(vs ...float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldDifficultyScore, vs...))
}

// DifficultyScoreNotIn applies the NotIn predicate on the "difficulty_score" field.
func DifficultyScoreNotIn(vs ...float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldDifficultyScore, vs...))
}

// DifficultyScoreGT applies the GT predicate on the "difficulty_score" field.
func DifficultyScoreGT(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldDifficultyScore, v))
}

// DifficultyScoreGTE applies the GTE predicate on the "difficulty_score" field.
func DifficultyScoreGTE(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldDifficultyScore, v))
}

// DifficultyScoreLT applies the LT predicate on the "difficulty_score" field.
func DifficultyScoreLT(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldDifficultyScore, v))
}

// DifficultyScoreLTE applies the LTE predicate on the "difficulty_score" field.
func DifficultyScoreLTE(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldDifficultyScore, v))
}

// DifficultyScoreIsNil applies the IsNil predicate on the "difficulty_score" field.
func DifficultyScoreIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldDifficultyScore))
}

// DifficultyScoreNotNil applies the NotNil predicate on the "difficulty_score" field.
func DifficultyScoreNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldDifficultyScore))
}

// PyqFrequencyScoreEQ applies the EQ predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreEQ(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreNEQ applies the NEQ predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNEQ(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreIn applies the In predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreIn(vs ...float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldPyqFrequencyScore, vs...))
}

// PyqFrequencyScoreNotIn applies the NotIn predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNotIn(vs ...float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldPyqFrequencyScore, vs...))
}

// PyqFrequencyScoreGT applies the GT predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreGT(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreGTE applies the GTE predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreGTE(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreLT applies the LT predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreLT(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreLTE applies the LTE predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreLTE(v float64) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreIsNil applies the IsNil predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldPyqFrequencyScore))
}

// PyqFrequencyScoreNotNil applies the NotNil predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldPyqFrequencyScore))
}

// CoreConceptsEQ applies the EQ predicate on the "core_concepts" field.
func CoreConceptsEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldCoreConcepts, v))
}

// CoreConceptsNEQ applies the NEQ predicate on the "core_concepts" field.
func CoreConceptsNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldCoreConcepts, v))
}

// CoreConceptsIn applies the In predicate on the "core_concepts" field.
func CoreConceptsIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldCoreConcepts, vs...))
}

// CoreConceptsNotIn applies the NotIn predicate on the "core_concepts" field.
func CoreConceptsNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldCoreConcepts, vs...))
}

// CoreConceptsGT applies the GT predicate on the "core_concepts" field.
func CoreConceptsGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldCoreConcepts, v))
}

// CoreConceptsGTE applies the GTE predicate on the "core_concepts" field.
func CoreConceptsGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldCoreConcepts, v))
}

// CoreConceptsLT applies the LT predicate on the "core_concepts" field.
func CoreConceptsLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldCoreConcepts, v))
}

// CoreConceptsLTE applies the LTE predicate on the "core_concepts" field.
func CoreConceptsLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldCoreConcepts, v))
}

// CoreConceptsContains applies the Contains predicate on the "core_concepts" field.
func CoreConceptsContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldCoreConcepts, v))
}

// CoreConceptsHasPrefix applies the HasPrefix predicate on the "core_concepts" field.
func CoreConceptsHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldCoreConcepts, v))
}

// CoreConceptsHasSuffix applies the HasSuffix predicate on the "core_concepts" field.
func CoreConceptsHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldCoreConcepts, v))
}

// CoreConceptsIsNil applies the IsNil predicate on the "core_concepts" field.
func CoreConceptsIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldCoreConcepts))
}

// CoreConceptsNotNil applies the NotNil predicate on the "core_concepts" field.
func CoreConceptsNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldCoreConcepts))
}

// CoreConceptsEqualFold applies the EqualFold predicate on the "core_concepts" field.
func CoreConceptsEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldCoreConcepts, v))
}

// CoreConceptsContainsFold applies the ContainsFold predicate on the "core_concepts" field.
func CoreConceptsContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldCoreConcepts, v))
}

// SolutionMethodEQ applies the EQ predicate on the "solution_method" field.
func SolutionMethodEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldSolutionMethod, v))
}

// SolutionMethodNEQ applies the NEQ predicate on the "solution_method" field.
func SolutionMethodNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldSolutionMethod, v))
}

// SolutionMethodIn applies the In predicate on the "solution_method" field.
func SolutionMethodIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldSolutionMethod, vs...))
}

// SolutionMethodNotIn applies the NotIn predicate on the "solution_method" field.
func SolutionMethodNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldSolutionMethod, vs...))
}

// SolutionMethodGT applies the GT predicate on the "solution_method" field.
func SolutionMethodGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldSolutionMethod, v))
}

// SolutionMethodGTE applies the GTE predicate on the "solution_method" field.
func SolutionMethodGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldSolutionMethod, v))
}

// SolutionMethodLT applies the LT predicate on the "solution_method" field.
func SolutionMethodLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldSolutionMethod, v))
}

// SolutionMethodLTE applies the LTE predicate on the "solution_method" field.
func SolutionMethodLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldSolutionMethod, v))
}

// SolutionMethodContains applies the Contains predicate on the "solution_method" field.
func SolutionMethodContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldSolutionMethod, v))
}

// SolutionMethodHasPrefix applies the HasPrefix predicate on the "solution_method" field.
func SolutionMethodHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldSolutionMethod, v))
}

// SolutionMethodHasSuffix applies the HasSuffix predicate on the "solution_method" field.
func SolutionMethodHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldSolutionMethod, v))
}

// SolutionMethodIsNil applies the IsNil predicate on the "solution_method" field.
func SolutionMethodIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldSolutionMethod))
}

// SolutionMethodNotNil applies the NotNil predicate on the "solution_method" field.
func SolutionMethodNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldSolutionMethod))
}

// SolutionMethodEqualFold applies the EqualFold predicate on the "solution_method" field.
func SolutionMethodEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldSolutionMethod, v))
}

// SolutionMethodContainsFold applies the ContainsFold predicate on the "solution_method" field.
func SolutionMethodContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldSolutionMethod, v))
}

// ConceptDifficultyEQ applies the EQ predicate on the "concept_difficulty" field.
func ConceptDifficultyEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldConceptDifficulty, v))
}

// ConceptDifficultyNEQ applies the NEQ predicate on the "concept_difficulty" field.
func ConceptDifficultyNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldConceptDifficulty, v))
}

// ConceptDifficultyIn applies the In predicate on the "concept_difficulty" field.
func ConceptDifficultyIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldConceptDifficulty, vs...))
}

// ConceptDifficultyNotIn applies the NotIn predicate on the "concept_difficulty" field.
func ConceptDifficultyNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldConceptDifficulty, vs...))
}

// ConceptDifficultyGT applies the GT predicate on the "concept_difficulty" field.
func ConceptDifficultyGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldConceptDifficulty, v))
}

// ConceptDifficultyGTE applies the GTE predicate on the "concept_difficulty" field.
func ConceptDifficultyGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldConceptDifficulty, v))
}

// ConceptDifficultyLT applies the LT predicate on the "concept_difficulty" field.
func ConceptDifficultyLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldConceptDifficulty, v))
}

// ConceptDifficultyLTE applies the LTE predicate on the "concept_difficulty" field.
func ConceptDifficultyLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldConceptDifficulty, v))
}

// ConceptDifficultyContains applies the Contains predicate on the "concept_difficulty" field.
func ConceptDifficultyContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldConceptDifficulty, v))
}

// ConceptDifficultyHasPrefix applies the HasPrefix predicate on the "concept_difficulty" field.
func ConceptDifficultyHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldConceptDifficulty, v))
}

// ConceptDifficultyHasSuffix applies the HasSuffix predicate on the "concept_difficulty" field.
func ConceptDifficultyHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldConceptDifficulty, v))
}

// ConceptDifficultyIsNil applies the IsNil predicate on the "concept_difficulty" field.
func ConceptDifficultyIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldConceptDifficulty))
}

// ConceptDifficultyNotNil applies the NotNil predicate on the "concept_difficulty" field.
func ConceptDifficultyNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldConceptDifficulty))
}

// ConceptDifficultyEqualFold applies the EqualFold predicate on the "concept_difficulty" field.
func ConceptDifficultyEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldConceptDifficulty, v))
}

// ConceptDifficultyContainsFold applies the ContainsFold predicate on the "concept_difficulty" field.
func ConceptDifficultyContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldConceptDifficulty, v))
}

// OperationsRequiredEQ applies the EQ predicate on the "operations_required" field.
func OperationsRequiredEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldOperationsRequired, v))
}

// OperationsRequiredNEQ applies the NEQ predicate on the "operations_required" field.
func OperationsRequiredNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldOperationsRequired, v))
}

// OperationsRequiredIn applies the In predicate on the "operations_required" field.
func OperationsRequiredIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldOperationsRequired, vs...))
}

// OperationsRequiredNotIn applies the NotIn predicate on the "operations_required" field.
func OperationsRequiredNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldOperationsRequired, vs...))
}

// OperationsRequiredGT applies the GT predicate on the "operations_required" field.
func OperationsRequiredGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldOperationsRequired, v))
}

// OperationsRequiredGTE applies the GTE predicate on the "operations_required" field.
func OperationsRequiredGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldOperationsRequired, v))
}

// OperationsRequiredLT applies the LT predicate on the "operations_required" field.
func OperationsRequiredLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldOperationsRequired, v))
}

// OperationsRequiredLTE applies the LTE predicate on the "operations_required" field.
func OperationsRequiredLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldOperationsRequired, v))
}

// OperationsRequiredContains applies the Contains predicate on the "operations_required" field.
func OperationsRequiredContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldOperationsRequired, v))
}

// OperationsRequiredHasPrefix applies the HasPrefix predicate on the "operations_required" field.
func OperationsRequiredHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldOperationsRequired, v))
}

// OperationsRequiredHasSuffix applies the HasSuffix predicate on the "operations_required" field.
func OperationsRequiredHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldOperationsRequired, v))
}

// OperationsRequiredIsNil applies the IsNil predicate on the "operations_required" field.
func OperationsRequiredIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldOperationsRequired))
}

// OperationsRequiredNotNil applies the NotNil predicate on the "operations_required" field.
func OperationsRequiredNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldOperationsRequired))
}

// OperationsRequiredEqualFold applies the EqualFold predicate on the "operations_required" field.
func OperationsRequiredEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldOperationsRequired, v))
}

// OperationsRequiredContainsFold applies the ContainsFold predicate on the "operations_required" field.
func OperationsRequiredContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldOperationsRequired, v))
}

// ProblemStructureEQ applies the EQ predicate on the "problem_structure" field.
func ProblemStructureEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldProblemStructure, v))
}

// ProblemStructureNEQ applies the NEQ predicate on the "problem_structure" field.
func ProblemStructureNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldProblemStructure, v))
}

// ProblemStructureIn applies the In predicate on the "problem_structure" field.
func ProblemStructureIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldProblemStructure, vs...))
}

// ProblemStructureNotIn applies the NotIn predicate on the "problem_structure" field.
func ProblemStructureNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldProblemStructure, vs...))
}

// ProblemStructureGT applies the GT predicate on the "problem_structure" field.
func ProblemStructureGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldProblemStructure, v))
}

// ProblemStructureGTE applies the GTE predicate on the "problem_structure" field.
func ProblemStructureGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldProblemStructure, v))
}

// ProblemStructureLT applies the LT predicate on the "problem_structure" field.
func ProblemStructureLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldProblemStructure, v))
}

// ProblemStructureLTE applies the LTE predicate on the "problem_structure" field.
func ProblemStructureLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldProblemStructure, v))
}

// ProblemStructureContains applies the Contains predicate on the "problem_structure" field.
func ProblemStructureContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldProblemStructure, v))
}

// ProblemStructureHasPrefix applies the HasPrefix predicate on the "problem_structure" field.
func ProblemStructureHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldProblemStructure, v))
}

// ProblemStructureHasSuffix applies the HasSuffix predicate on the "problem_structure" field.
func ProblemStructureHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldProblemStructure, v))
}

// ProblemStructureIsNil applies the IsNil predicate on the "problem_structure" field.
func ProblemStructureIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldProblemStructure))
}

// ProblemStructureNotNil applies the NotNil predicate on the "problem_structure" field.
func ProblemStructureNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldProblemStructure))
}

// ProblemStructureEqualFold applies the EqualFold predicate on the "problem_structure" field.
func ProblemStructureEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldProblemStructure, v))
}

// ProblemStructureContainsFold applies the ContainsFold predicate on the "problem_structure" field.
func ProblemStructureContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldProblemStructure, v))
}

// ConceptKeywordsEQ applies the EQ predicate on the "concept_keywords" field.
func ConceptKeywordsEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldConceptKeywords, v))
}

// ConceptKeywordsNEQ applies the NEQ predicate on the "concept_keywords" field.
func ConceptKeywordsNEQ(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldConceptKeywords, v))
}

// ConceptKeywordsIn applies the In predicate on the "concept_keywords" field.
func ConceptKeywordsIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldConceptKeywords, vs...))
}

// ConceptKeywordsNotIn applies the NotIn predicate on the "concept_keywords" field.
func ConceptKeywordsNotIn(vs ...string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldConceptKeywords, vs...))
}

// ConceptKeywordsGT applies the GT predicate on the "concept_keywords" field.
func ConceptKeywordsGT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldConceptKeywords, v))
}

// ConceptKeywordsGTE applies the GTE predicate on the "concept_keywords" field.
func ConceptKeywordsGTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldConceptKeywords, v))
}

// ConceptKeywordsLT applies the LT predicate on the "concept_keywords" field.
func ConceptKeywordsLT(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldConceptKeywords, v))
}

// ConceptKeywordsLTE applies the LTE predicate on the "concept_keywords" field.
func ConceptKeywordsLTE(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldConceptKeywords, v))
}

// ConceptKeywordsContains applies the Contains predicate on the "concept_keywords" field.
func ConceptKeywordsContains(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContains(FieldConceptKeywords, v))
}

// ConceptKeywordsHasPrefix applies the HasPrefix predicate on the "concept_keywords" field.
func ConceptKeywordsHasPrefix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasPrefix(FieldConceptKeywords, v))
}

// ConceptKeywordsHasSuffix applies the HasSuffix predicate on the "concept_keywords" field.
func ConceptKeywordsHasSuffix(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldHasSuffix(FieldConceptKeywords, v))
}

// ConceptKeywordsIsNil applies the IsNil predicate on the "concept_keywords" field.
func ConceptKeywordsIsNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIsNull(FieldConceptKeywords))
}

// ConceptKeywordsNotNil applies the NotNil predicate on the "concept_keywords" field.
func ConceptKeywordsNotNil() predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotNull(FieldConceptKeywords))
}

// ConceptKeywordsEqualFold applies the EqualFold predicate on the "concept_keywords" field.
func ConceptKeywordsEqualFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEqualFold(FieldConceptKeywords, v))
}

// ConceptKeywordsContainsFold applies the ContainsFold predicate on the "concept_keywords" field.
func ConceptKeywordsContainsFold(v string) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldContainsFold(FieldConceptKeywords, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldIsActive, v))
}

// QualityVerifiedEQ applies the EQ predicate on the "quality_verified" field.
func QualityVerifiedEQ(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldQualityVerified, v))
}

// QualityVerifiedNEQ applies the NEQ predicate on the "quality_verified" field.
func QualityVerifiedNEQ(v bool) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldQualityVerified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PYQQuestion) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PYQQuestion) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PYQQuestion) predicate.PYQQuestion {
	return predicate.PYQQuestion(sql.NotPredicates(p))
}
