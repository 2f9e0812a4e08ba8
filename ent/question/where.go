// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adaptivecat/planner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldID, id))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// AdminAnswer applies equality check predicate on the "admin_answer" field. It's identical to AdminAnswerEQ.
func AdminAnswer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAdminAnswer, v))
}

// AdminSolution applies equality check predicate on the "admin_solution" field. It's identical to AdminSolutionEQ.
func AdminSolution(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAdminSolution, v))
}

// PrincipleToRemember applies equality check predicate on the "principle_to_remember" field. It's identical to PrincipleToRememberEQ.
func PrincipleToRemember(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrincipleToRemember, v))
}

// ImageRef applies equality check predicate on the "image_ref" field. It's identical to ImageRefEQ.
func ImageRef(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldImageRef, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategory, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubcategory, v))
}

// TypeOfQuestion applies equality check predicate on the "type_of_question" field. It's identical to TypeOfQuestionEQ.
func TypeOfQuestion(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// DifficultyScore applies equality check predicate on the "difficulty_score" field. It's identical to DifficultyScoreEQ.
func DifficultyScore(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficultyScore, v))
}

// PyqFrequencyScore applies equality check predicate on the "pyq_frequency_score" field. It's identical to PyqFrequencyScoreEQ.
func PyqFrequencyScore(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPyqFrequencyScore, v))
}

// RightAnswer applies equality check predicate on the "right_answer" field. It's identical to RightAnswerEQ.
func RightAnswer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldRightAnswer, v))
}

// CoreConcepts applies equality check predicate on the "core_concepts" field. It's identical to CoreConceptsEQ.
func CoreConcepts(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCoreConcepts, v))
}

// SolutionMethod applies equality check predicate on the "solution_method" field. It's identical to SolutionMethodEQ.
func SolutionMethod(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSolutionMethod, v))
}

// ConceptDifficulty applies equality check predicate on the "concept_difficulty" field. It's identical to ConceptDifficultyEQ.
func ConceptDifficulty(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldConceptDifficulty, v))
}

// OperationsRequired applies equality check predicate on the "operations_required" field. It's identical to OperationsRequiredEQ.
func OperationsRequired(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOperationsRequired, v))
}

// ProblemStructure applies equality check predicate on the "problem_structure" field. It's identical to ProblemStructureEQ.
func ProblemStructure(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldProblemStructure, v))
}

// ConceptKeywords applies equality check predicate on the "concept_keywords" field. It's identical to ConceptKeywordsEQ.
func ConceptKeywords(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldConceptKeywords, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsActive, v))
}

// QualityVerified applies equality check predicate on the "quality_verified" field. It's identical to QualityVerifiedEQ.
func QualityVerified(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQualityVerified, v))
}

// FailingCriteria applies equality check predicate on the "failing_criteria" field. It's identical to FailingCriteriaEQ.
func FailingCriteria(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldFailingCriteria, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldStem, v))
}

// AdminAnswerEQ applies the EQ predicate on the "admin_answer" field.
func AdminAnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAdminAnswer, v))
}

// AdminAnswerNEQ applies the NEQ predicate on the "admin_answer" field.
func AdminAnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAdminAnswer, v))
}

// AdminAnswerIn applies the In predicate on the "admin_answer" field.
func AdminAnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAdminAnswer, vs...))
}

// AdminAnswerNotIn applies the NotIn predicate on the "admin_answer" field.
func AdminAnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAdminAnswer, vs...))
}

// AdminAnswerGT applies the GT predicate on the "admin_answer" field.
func AdminAnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAdminAnswer, v))
}

// AdminAnswerGTE applies the GTE predicate on the "admin_answer" field.
func AdminAnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAdminAnswer, v))
}

// AdminAnswerLT applies the LT predicate on the "admin_answer" field.
func AdminAnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAdminAnswer, v))
}

// AdminAnswerLTE applies the LTE predicate on the "admin_answer" field.
func AdminAnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAdminAnswer, v))
}

// AdminAnswerContains applies the Contains predicate on the "admin_answer" field.
func AdminAnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAdminAnswer, v))
}

// AdminAnswerHasPrefix applies the HasPrefix predicate on the "admin_answer" field.
func AdminAnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAdminAnswer, v))
}

// AdminAnswerHasSuffix applies the HasSuffix predicate on the "admin_answer" field.
func AdminAnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAdminAnswer, v))
}

// AdminAnswerEqualFold applies the EqualFold predicate on the "admin_answer" field.
func AdminAnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAdminAnswer, v))
}

// AdminAnswerContainsFold applies the ContainsFold predicate on the "admin_answer" field.
func AdminAnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAdminAnswer, v))
}

// AdminSolutionEQ applies the EQ predicate on the "admin_solution" field.
func AdminSolutionEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAdminSolution, v))
}

// AdminSolutionNEQ applies the NEQ predicate on the "admin_solution" field.
func AdminSolutionNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAdminSolution, v))
}

// AdminSolutionIn applies the In predicate on the "admin_solution" field.
func AdminSolutionIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAdminSolution, vs...))
}

// AdminSolutionNotIn applies the NotIn predicate on the "admin_solution" field.
func AdminSolutionNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAdminSolution, vs...))
}

// AdminSolutionGT applies the GT predicate on the "admin_solution" field.
func AdminSolutionGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAdminSolution, v))
}

// AdminSolutionGTE applies the GTE predicate on the "admin_solution" field.
func AdminSolutionGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAdminSolution, v))
}

// AdminSolutionLT applies the LT predicate on the "admin_solution" field.
func AdminSolutionLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAdminSolution, v))
}

// AdminSolutionLTE applies the LTE predicate on the "admin_solution" field.
func AdminSolutionLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAdminSolution, v))
}

// AdminSolutionContains applies the Contains predicate on the "admin_solution" field.
func AdminSolutionContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldAdminSolution, v))
}

// AdminSolutionHasPrefix applies the HasPrefix predicate on the "admin_solution" field.
func AdminSolutionHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldAdminSolution, v))
}

// AdminSolutionHasSuffix applies the HasSuffix predicate on the "admin_solution" field.
func AdminSolutionHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldAdminSolution, v))
}

// AdminSolutionIsNil applies the IsNil predicate on the "admin_solution" field.
func AdminSolutionIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldAdminSolution))
}

// AdminSolutionNotNil applies the NotNil predicate on the "admin_solution" field.
func AdminSolutionNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldAdminSolution))
}

// AdminSolutionEqualFold applies the EqualFold predicate on the "admin_solution" field.
func AdminSolutionEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldAdminSolution, v))
}

// AdminSolutionContainsFold applies the ContainsFold predicate on the "admin_solution" field.
func AdminSolutionContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldAdminSolution, v))
}

// PrincipleToRememberEQ applies the EQ predicate on the "principle_to_remember" field.
func PrincipleToRememberEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrincipleToRemember, v))
}

// PrincipleToRememberNEQ applies the NEQ predicate on the "principle_to_remember" field.
func PrincipleToRememberNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPrincipleToRemember, v))
}

// PrincipleToRememberIn applies the In predicate on the "principle_to_remember" field.
func PrincipleToRememberIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPrincipleToRemember, vs...))
}

// PrincipleToRememberNotIn applies the NotIn predicate on the "principle_to_remember" field.
func PrincipleToRememberNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPrincipleToRemember, vs...))
}

// PrincipleToRememberGT applies the GT predicate on the "principle_to_remember" field.
func PrincipleToRememberGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPrincipleToRemember, v))
}

// PrincipleToRememberGTE applies the GTE predicate on the "principle_to_remember" field.
func PrincipleToRememberGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPrincipleToRemember, v))
}

// PrincipleToRememberLT applies the LT predicate on the "principle_to_remember" field.
func PrincipleToRememberLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPrincipleToRemember, v))
}

// PrincipleToRememberLTE applies the LTE predicate on the "principle_to_remember" field.
func PrincipleToRememberLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPrincipleToRemember, v))
}

// PrincipleToRememberContains applies the Contains predicate on the "principle_to_remember" field.
func PrincipleToRememberContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPrincipleToRemember, v))
}

// PrincipleToRememberHasPrefix applies the HasPrefix predicate on the "principle_to_remember" field.
func PrincipleToRememberHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPrincipleToRemember, v))
}

// PrincipleToRememberHasSuffix applies the HasSuffix predicate on the "principle_to_remember" field.
func PrincipleToRememberHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPrincipleToRemember, v))
}

// PrincipleToRememberIsNil applies the IsNil predicate on the "principle_to_remember" field.
func PrincipleToRememberIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldPrincipleToRemember))
}

// PrincipleToRememberNotNil applies the NotNil predicate on the "principle_to_remember" field.
func PrincipleToRememberNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldPrincipleToRemember))
}

// PrincipleToRememberEqualFold applies the EqualFold predicate on the "principle_to_remember" field.
func PrincipleToRememberEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPrincipleToRemember, v))
}

// PrincipleToRememberContainsFold applies the ContainsFold predicate on the "principle_to_remember" field.
func PrincipleToRememberContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPrincipleToRemember, v))
}

// ImageRefEQ applies the EQ predicate on the "image_ref" field.
func ImageRefEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldImageRef, v))
}

// ImageRefNEQ applies the NEQ predicate on the "image_ref" field.
func ImageRefNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldImageRef, v))
}

// ImageRefIn applies the In predicate on the "image_ref" field.
func ImageRefIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldImageRef, vs...))
}

// ImageRefNotIn applies the NotIn predicate on the "image_ref" field.
func ImageRefNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldImageRef, vs...))
}

// ImageRefGT applies the GT predicate on the "image_ref" field.
func ImageRefGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldImageRef, v))
}

// ImageRefGTE applies the GTE predicate on the "image_ref" field.
func ImageRefGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldImageRef, v))
}

// ImageRefLT applies the LT predicate on the "image_ref" field.
func ImageRefLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldImageRef, v))
}

// ImageRefLTE applies the LTE predicate on the "image_ref" field.
func ImageRefLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldImageRef, v))
}

// ImageRefContains applies the Contains predicate on the "image_ref" field.
func ImageRefContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldImageRef, v))
}

// ImageRefHasPrefix applies the HasPrefix predicate on the "image_ref" field.
func ImageRefHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldImageRef, v))
}

// ImageRefHasSuffix applies the HasSuffix predicate on the "image_ref" field.
func ImageRefHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldImageRef, v))
}

// ImageRefIsNil applies the IsNil predicate on the "image_ref" field.
func ImageRefIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldImageRef))
}

// ImageRefNotNil applies the NotNil predicate on the "image_ref" field.
func ImageRefNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldImageRef))
}

// ImageRefEqualFold applies the EqualFold predicate on the "image_ref" field.
func ImageRefEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldImageRef, v))
}

// ImageRefContainsFold applies the ContainsFold predicate on the "image_ref" field.
func ImageRefContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldImageRef, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCategory, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryIsNil applies the IsNil predicate on the "subcategory" field.
func SubcategoryIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldSubcategory))
}

// SubcategoryNotNil applies the NotNil predicate on the "subcategory" field.
func SubcategoryNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldSubcategory))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubcategory, v))
}

// TypeOfQuestionEQ applies the EQ predicate on the "type_of_question" field.
func TypeOfQuestionEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionNEQ applies the NEQ predicate on the "type_of_question" field.
func TypeOfQuestionNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIn applies the In predicate on the "type_of_question" field.
func TypeOfQuestionIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionNotIn applies the NotIn predicate on the "type_of_question" field.
func TypeOfQuestionNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionGT applies the GT predicate on the "type_of_question" field.
func TypeOfQuestionGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionGTE applies the GTE predicate on the "type_of_question" field.
func TypeOfQuestionGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLT applies the LT predicate on the "type_of_question" field.
func TypeOfQuestionLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLTE applies the LTE predicate on the "type_of_question" field.
func TypeOfQuestionLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContains applies the Contains predicate on the "type_of_question" field.
func TypeOfQuestionContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasPrefix applies the HasPrefix predicate on the "type_of_question" field.
func TypeOfQuestionHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasSuffix applies the HasSuffix predicate on the "type_of_question" field.
func TypeOfQuestionHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIsNil applies the IsNil predicate on the "type_of_question" field.
func TypeOfQuestionIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldTypeOfQuestion))
}

// TypeOfQuestionNotNil applies the NotNil predicate on the "type_of_question" field.
func TypeOfQuestionNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldTypeOfQuestion))
}

// TypeOfQuestionEqualFold applies the EqualFold predicate on the "type_of_question" field.
func TypeOfQuestionEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContainsFold applies the ContainsFold predicate on the "type_of_question" field.
func TypeOfQuestionContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldTypeOfQuestion, v))
}

// DifficultyBandEQ applies the EQ predicate on the "difficulty_band" field.
func DifficultyBandEQ(v DifficultyBand) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficultyBand, v))
}

// DifficultyBandNEQ applies the NEQ predicate on the "difficulty_band" field.
func DifficultyBandNEQ(v DifficultyBand) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficultyBand, v))
}

// DifficultyBandIn applies the In predicate on the "difficulty_band" field.
func DifficultyBandIn(vs ...DifficultyBand) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficultyBand, vs...))
}

// DifficultyBandNotIn applies the NotIn predicate on the "difficulty_band" field.
func DifficultyBandNotIn(vs ...DifficultyBand) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficultyBand, vs...))
}

// DifficultyBandIsNil applies the IsNil predicate on the "difficulty_band" field.
func DifficultyBandIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldDifficultyBand))
}

// DifficultyBandNotNil applies the NotNil predicate on the "difficulty_band" field.
func DifficultyBandNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldDifficultyBand))
}

// DifficultyScoreEQ applies the EQ predicate on the "difficulty_score" field.
func DifficultyScoreEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficultyScore, v))
}

// DifficultyScoreNEQ applies the NEQ predicate on the "difficulty_score" field.
func DifficultyScoreNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficultyScore, v))
}

// DifficultyScoreIn applies the In predicate on the "difficulty_score" field.
func DifficultyScoreIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficultyScore, vs...))
}

// DifficultyScoreNotIn applies the NotIn predicate on the "difficulty_score" field.
func DifficultyScoreNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficultyScore, vs...))
}

// DifficultyScoreGT applies the GT predicate on the "difficulty_score" field.
func DifficultyScoreGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficultyScore, v))
}

// DifficultyScoreGTE applies the GTE predicate on the "difficulty_score" field.
func DifficultyScoreGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficultyScore, v))
}

// DifficultyScoreLT applies the LT predicate on the "difficulty_score" field.
func DifficultyScoreLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficultyScore, v))
}

// DifficultyScoreLTE applies the LTE predicate on the "difficulty_score" field.
func DifficultyScoreLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficultyScore, v))
}

// DifficultyScoreIsNil applies the IsNil predicate on the "difficulty_score" field.
func DifficultyScoreIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldDifficultyScore))
}

// DifficultyScoreNotNil applies the NotNil predicate on the "difficulty_score" field.
func DifficultyScoreNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldDifficultyScore))
}

// PyqFrequencyScoreEQ applies the EQ predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreNEQ applies the NEQ predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreIn applies the In predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPyqFrequencyScore, vs...))
}

// PyqFrequencyScoreNotIn applies the NotIn predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPyqFrequencyScore, vs...))
}

// PyqFrequencyScoreGT applies the GT predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreGTE applies the GTE predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreLT applies the LT predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreLTE applies the LTE predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPyqFrequencyScore, v))
}

// PyqFrequencyScoreIsNil applies the IsNil predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldPyqFrequencyScore))
}

// PyqFrequencyScoreNotNil applies the NotNil predicate on the "pyq_frequency_score" field.
func PyqFrequencyScoreNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldPyqFrequencyScore))
}

// RightAnswerEQ applies the EQ predicate on the "right_answer" field.
func RightAnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldRightAnswer, v))
}

// RightAnswerNEQ applies the NEQ predicate on the "right_answer" field.
func RightAnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldRightAnswer, v))
}

// RightAnswerIn applies the In predicate on the "right_answer" field.
func RightAnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldRightAnswer, vs...))
}

// RightAnswerNotIn applies the NotIn predicate on the "right_answer" field.
func RightAnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldRightAnswer, vs...))
}

// RightAnswerGT applies the GT predicate on the "right_answer" field.
func RightAnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldRightAnswer, v))
}

// RightAnswerGTE applies the GTE predicate on the "right_answer" field.
func RightAnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldRightAnswer, v))
}

// RightAnswerLT applies the LT predicate on the "right_answer" field.
func RightAnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldRightAnswer, v))
}

// RightAnswerLTE applies the LTE predicate on the "right_answer" field.
func RightAnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldRightAnswer, v))
}

// RightAnswerContains applies the Contains predicate on the "right_answer" field.
func RightAnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldRightAnswer, v))
}

// RightAnswerHasPrefix applies the HasPrefix predicate on the "right_answer" field.
func RightAnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldRightAnswer, v))
}

// RightAnswerHasSuffix applies the HasSuffix predicate on the "right_answer" field.
func RightAnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldRightAnswer, v))
}

// RightAnswerIsNil applies the IsNil predicate on the "right_answer" field.
func RightAnswerIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldRightAnswer))
}

// RightAnswerNotNil applies the NotNil predicate on the "right_answer" field.
func RightAnswerNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldRightAnswer))
}

// RightAnswerEqualFold applies the EqualFold predicate on the "right_answer" field.
func RightAnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldRightAnswer, v))
}

// RightAnswerContainsFold applies the ContainsFold predicate on the "right_answer" field.
func RightAnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldRightAnswer, v))
}

// CoreConceptsEQ applies the EQ predicate on the "core_concepts" field.
func CoreConceptsEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCoreConcepts, v))
}

// CoreConceptsNEQ applies the NEQ predicate on the "core_concepts" field.
func CoreConceptsNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCoreConcepts, v))
}

// CoreConceptsIn applies the In predicate on the "core_concepts" field.
func CoreConceptsIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCoreConcepts, vs...))
}

// CoreConceptsNotIn applies the NotIn predicate on the "core_concepts" field.
func CoreConceptsNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCoreConcepts, vs...))
}

// CoreConceptsGT applies the GT predicate on the "core_concepts" field.
func CoreConceptsGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCoreConcepts, v))
}

// CoreConceptsGTE applies the GTE predicate on the "core_concepts" field.
func CoreConceptsGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCoreConcepts, v))
}

// CoreConceptsLT applies the LT predicate on the "core_concepts" field.
func CoreConceptsLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCoreConcepts, v))
}

// CoreConceptsLTE applies the LTE predicate on the "core_concepts" field.
func CoreConceptsLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCoreConcepts, v))
}

// CoreConceptsContains applies the Contains predicate on the "core_concepts" field.
func CoreConceptsContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCoreConcepts, v))
}

// CoreConceptsHasPrefix applies the HasPrefix predicate on the "core_concepts" field.
func CoreConceptsHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCoreConcepts, v))
}

// CoreConceptsHasSuffix applies the HasSuffix predicate on the "core_concepts" field.
func CoreConceptsHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCoreConcepts, v))
}

// CoreConceptsIsNil applies the IsNil predicate on the "core_concepts" field.
func CoreConceptsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldCoreConcepts))
}

// CoreConceptsNotNil applies the NotNil predicate on the "core_concepts" field.
func CoreConceptsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldCoreConcepts))
}

// CoreConceptsEqualFold applies the EqualFold predicate on the "core_concepts" field.
func CoreConceptsEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCoreConcepts, v))
}

// CoreConceptsContainsFold applies the ContainsFold predicate on the "core_concepts" field.
func CoreConceptsContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCoreConcepts, v))
}

// SolutionMethodEQ applies the EQ predicate on the "solution_method" field.
func SolutionMethodEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSolutionMethod, v))
}

// SolutionMethodNEQ applies the NEQ predicate on the "solution_method" field.
func SolutionMethodNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSolutionMethod, v))
}

// SolutionMethodIn applies the In predicate on the "solution_method" field.
func SolutionMethodIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSolutionMethod, vs...))
}

// SolutionMethodNotIn applies the NotIn predicate on the "solution_method" field.
func SolutionMethodNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSolutionMethod, vs...))
}

// SolutionMethodGT applies the GT predicate on the "solution_method" field.
func SolutionMethodGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSolutionMethod, v))
}

// SolutionMethodGTE applies the GTE predicate on the "solution_method" field.
func SolutionMethodGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSolutionMethod, v))
}

// SolutionMethodLT applies the LT predicate on the "solution_method" field.
func SolutionMethodLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSolutionMethod, v))
}

// SolutionMethodLTE applies the LTE predicate on the "solution_method" field.
func SolutionMethodLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSolutionMethod, v))
}

// SolutionMethodContains applies the Contains predicate on the "solution_method" field.
func SolutionMethodContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSolutionMethod, v))
}

// SolutionMethodHasPrefix applies the HasPrefix predicate on the "solution_method" field.
func SolutionMethodHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSolutionMethod, v))
}

// SolutionMethodHasSuffix applies the HasSuffix predicate on the "solution_method" field.
func SolutionMethodHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSolutionMethod, v))
}

// SolutionMethodIsNil applies the IsNil predicate on the "solution_method" field.
func SolutionMethodIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldSolutionMethod))
}

// SolutionMethodNotNil applies the NotNil predicate on the "solution_method" field.
func SolutionMethodNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldSolutionMethod))
}

// SolutionMethodEqualFold applies the EqualFold predicate on the "solution_method" field.
func SolutionMethodEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSolutionMethod, v))
}

// SolutionMethodContainsFold applies the ContainsFold predicate on the "solution_method" field.
func SolutionMethodContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSolutionMethod, v))
}

// ConceptDifficultyEQ applies the EQ predicate on the "concept_difficulty" field.
func ConceptDifficultyEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldConceptDifficulty, v))
}

// ConceptDifficultyNEQ applies the NEQ predicate on the "concept_difficulty" field.
func ConceptDifficultyNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldConceptDifficulty, v))
}

// ConceptDifficultyIn applies the In predicate on the "concept_difficulty" field.
func ConceptDifficultyIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldConceptDifficulty, vs...))
}

// ConceptDifficultyNotIn applies the NotIn predicate on the "concept_difficulty" field.
func ConceptDifficultyNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldConceptDifficulty, vs...))
}

// ConceptDifficultyGT applies the GT predicate on the "concept_difficulty" field.
func ConceptDifficultyGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldConceptDifficulty, v))
}

// ConceptDifficultyGTE applies the GTE predicate on the "concept_difficulty" field.
func ConceptDifficultyGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldConceptDifficulty, v))
}

// ConceptDifficultyLT applies the LT predicate on the "concept_difficulty" field.
func ConceptDifficultyLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldConceptDifficulty, v))
}

// ConceptDifficultyLTE applies the LTE predicate on the "concept_difficulty" field.
func ConceptDifficultyLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldConceptDifficulty, v))
}

// ConceptDifficultyContains applies the Contains predicate on the "concept_difficulty" field.
func ConceptDifficultyContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldConceptDifficulty, v))
}

// ConceptDifficultyHasPrefix applies the HasPrefix predicate on the "concept_difficulty" field.
func ConceptDifficultyHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldConceptDifficulty, v))
}

// ConceptDifficultyHasSuffix applies the HasSuffix predicate on the "concept_difficulty" field.
func ConceptDifficultyHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldConceptDifficulty, v))
}

// ConceptDifficultyIsNil applies the IsNil predicate on the "concept_difficulty" field.
func ConceptDifficultyIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldConceptDifficulty))
}

// ConceptDifficultyNotNil applies the NotNil predicate on the "concept_difficulty" field.
func ConceptDifficultyNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldConceptDifficulty))
}

// ConceptDifficultyEqualFold applies the EqualFold predicate on the "concept_difficulty" field.
func ConceptDifficultyEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldConceptDifficulty, v))
}

// ConceptDifficultyContainsFold applies the ContainsFold predicate on the "concept_difficulty" field.
func ConceptDifficultyContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldConceptDifficulty, v))
}

// OperationsRequiredEQ applies the EQ predicate on the "operations_required" field.
func OperationsRequiredEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldOperationsRequired, v))
}

// OperationsRequiredNEQ applies the NEQ predicate on the "operations_required" field.
func OperationsRequiredNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldOperationsRequired, v))
}

// OperationsRequiredIn applies the In predicate on the "operations_required" field.
func OperationsRequiredIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldOperationsRequired, vs...))
}

// OperationsRequiredNotIn applies the NotIn predicate on the "operations_required" field.
func OperationsRequiredNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldOperationsRequired, vs...))
}

// OperationsRequiredGT applies the GT predicate on the "operations_required" field.
func OperationsRequiredGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldOperationsRequired, v))
}

// OperationsRequiredGTE applies the GTE predicate on the "operations_required" field.
func OperationsRequiredGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldOperationsRequired, v))
}

// OperationsRequiredLT applies the LT predicate on the "operations_required" field.
func OperationsRequiredLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldOperationsRequired, v))
}

// OperationsRequiredLTE applies the LTE predicate on the "operations_required" field.
func OperationsRequiredLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldOperationsRequired, v))
}

// OperationsRequiredContains applies the Contains predicate on the "operations_required" field.
func OperationsRequiredContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldOperationsRequired, v))
}

// OperationsRequiredHasPrefix applies the HasPrefix predicate on the "operations_required" field.
func OperationsRequiredHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldOperationsRequired, v))
}

// OperationsRequiredHasSuffix applies the HasSuffix predicate on the "operations_required" field.
func OperationsRequiredHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldOperationsRequired, v))
}

// OperationsRequiredIsNil applies the IsNil predicate on the "operations_required" field.
func OperationsRequiredIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOperationsRequired))
}

// OperationsRequiredNotNil applies the NotNil predicate on the "operations_required" field.
func OperationsRequiredNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOperationsRequired))
}

// OperationsRequiredEqualFold applies the EqualFold predicate on the "operations_required" field.
func OperationsRequiredEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldOperationsRequired, v))
}

// OperationsRequiredContainsFold applies the ContainsFold predicate on the "operations_required" field.
func OperationsRequiredContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldOperationsRequired, v))
}

// ProblemStructureEQ applies the EQ predicate on the "problem_structure" field.
func ProblemStructureEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldProblemStructure, v))
}

// ProblemStructureNEQ applies the NEQ predicate on the "problem_structure" field.
func ProblemStructureNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldProblemStructure, v))
}

// ProblemStructureIn applies the In predicate on the "problem_structure" field.
func ProblemStructureIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldProblemStructure, vs...))
}

// ProblemStructureNotIn applies the NotIn predicate on the "problem_structure" field.
func ProblemStructureNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldProblemStructure, vs...))
}

// ProblemStructureGT applies the GT predicate on the "problem_structure" field.
func ProblemStructureGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldProblemStructure, v))
}

// ProblemStructureGTE applies the GTE predicate on the "problem_structure" field.
func ProblemStructureGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldProblemStructure, v))
}

// ProblemStructureLT applies the LT predicate on the "problem_structure" field.
func ProblemStructureLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldProblemStructure, v))
}

// ProblemStructureLTE applies the LTE predicate on the "problem_structure" field.
func ProblemStructureLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldProblemStructure, v))
}

// ProblemStructureContains applies the Contains predicate on the "problem_structure" field.
func ProblemStructureContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldProblemStructure, v))
}

// ProblemStructureHasPrefix applies the HasPrefix predicate on the "problem_structure" field.
func ProblemStructureHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldProblemStructure, v))
}

// ProblemStructureHasSuffix applies the HasSuffix predicate on the "problem_structure" field.
func ProblemStructureHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldProblemStructure, v))
}

// ProblemStructureIsNil applies the IsNil predicate on the "problem_structure" field.
func ProblemStructureIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldProblemStructure))
}

// ProblemStructureNotNil applies the NotNil predicate on the "problem_structure" field.
func ProblemStructureNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldProblemStructure))
}

// ProblemStructureEqualFold applies the EqualFold predicate on the "problem_structure" field.
func ProblemStructureEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldProblemStructure, v))
}

// ProblemStructureContainsFold applies the ContainsFold predicate on the "problem_structure" field.
func ProblemStructureContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldProblemStructure, v))
}

// ConceptKeywordsEQ applies the EQ predicate on the "concept_keywords" field.
func ConceptKeywordsEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldConceptKeywords, v))
}

// ConceptKeywordsNEQ applies the NEQ predicate on the "concept_keywords" field.
func ConceptKeywordsNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldConceptKeywords, v))
}

// ConceptKeywordsIn applies the In predicate on the "concept_keywords" field.
func ConceptKeywordsIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldConceptKeywords, vs...))
}

// ConceptKeywordsNotIn applies the NotIn predicate on the "concept_keywords" field.
func ConceptKeywordsNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldConceptKeywords, vs...))
}

// ConceptKeywordsGT applies the GT predicate on the "concept_keywords" field.
func ConceptKeywordsGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldConceptKeywords, v))
}

// ConceptKeywordsGTE applies the GTE predicate on the "concept_keywords" field.
func ConceptKeywordsGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldConceptKeywords, v))
}

// ConceptKeywordsLT applies the LT predicate on the "concept_keywords" field.
func ConceptKeywordsLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldConceptKeywords, v))
}

// ConceptKeywordsLTE applies the LTE predicate on the "concept_keywords" field.
func ConceptKeywordsLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldConceptKeywords, v))
}

// ConceptKeywordsContains applies the Contains predicate on the "concept_keywords" field.
func ConceptKeywordsContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldConceptKeywords, v))
}

// ConceptKeywordsHasPrefix applies the HasPrefix predicate on the "concept_keywords" field.
func ConceptKeywordsHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldConceptKeywords, v))
}

// ConceptKeywordsHasSuffix applies the HasSuffix predicate on the "concept_keywords" field.
func ConceptKeywordsHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldConceptKeywords, v))
}

// ConceptKeywordsIsNil applies the IsNil predicate on the "concept_keywords" field.
func ConceptKeywordsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldConceptKeywords))
}

// ConceptKeywordsNotNil applies the NotNil predicate on the "concept_keywords" field.
func ConceptKeywordsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldConceptKeywords))
}

// ConceptKeywordsEqualFold applies the EqualFold predicate on the "concept_keywords" field.
func ConceptKeywordsEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldConceptKeywords, v))
}

// ConceptKeywordsContainsFold applies the ContainsFold predicate on the "concept_keywords" field.
func ConceptKeywordsContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldConceptKeywords, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIsActive, v))
}

// QualityVerifiedEQ applies the EQ predicate on the "quality_verified" field.
func QualityVerifiedEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQualityVerified, v))
}

// QualityVerifiedNEQ applies the NEQ predicate on the "quality_verified" field.
func QualityVerifiedNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQualityVerified, v))
}

// ConceptExtractionStatusEQ applies the EQ predicate on the "concept_extraction_status" field.
func ConceptExtractionStatusEQ(v ConceptExtractionStatus) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldConceptExtractionStatus, v))
}

// ConceptExtractionStatusNEQ applies the NEQ predicate on the "concept_extraction_status" field.
func ConceptExtractionStatusNEQ(v ConceptExtractionStatus) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldConceptExtractionStatus, v))
}

// ConceptExtractionStatusIn applies the In predicate on the "concept_extraction_status" field.
func ConceptExtractionStatusIn(vs ...ConceptExtractionStatus) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldConceptExtractionStatus, vs...))
}

// ConceptExtractionStatusNotIn applies the NotIn predicate on the "concept_extraction_status" field.
func ConceptExtractionStatusNotIn(vs ...ConceptExtractionStatus) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldConceptExtractionStatus, vs...))
}

// FailingCriteriaEQ applies the EQ predicate on the "failing_criteria" field.
func FailingCriteriaEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldFailingCriteria, v))
}

// FailingCriteriaNEQ applies the NEQ predicate on the "failing_criteria" field.
func FailingCriteriaNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldFailingCriteria, v))
}

// FailingCriteriaIn applies the In predicate on the "failing_criteria" field.
func FailingCriteriaIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldFailingCriteria, vs...))
}

// FailingCriteriaNotIn applies the NotIn predicate on the "failing_criteria" field.
func FailingCriteriaNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldFailingCriteria, vs...))
}

// FailingCriteriaGT applies the GT predicate on the "failing_criteria" field.
func FailingCriteriaGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldFailingCriteria, v))
}

// FailingCriteriaGTE applies the GTE predicate on the "failing_criteria" field.
func FailingCriteriaGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldFailingCriteria, v))
}

// FailingCriteriaLT applies the LT predicate on the "failing_criteria" field.
func FailingCriteriaLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldFailingCriteria, v))
}

// FailingCriteriaLTE applies the LTE predicate on the "failing_criteria" field.
func FailingCriteriaLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldFailingCriteria, v))
}

// FailingCriteriaContains applies the Contains predicate on the "failing_criteria" field.
func FailingCriteriaContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldFailingCriteria, v))
}

// FailingCriteriaHasPrefix applies the HasPrefix predicate on the "failing_criteria" field.
func FailingCriteriaHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldFailingCriteria, v))
}

// FailingCriteriaHasSuffix applies the HasSuffix predicate on the "failing_criteria" field.
func FailingCriteriaHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldFailingCriteria, v))
}

// FailingCriteriaIsNil applies the IsNil predicate on the "failing_criteria" field.
func FailingCriteriaIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldFailingCriteria))
}

// FailingCriteriaNotNil applies the NotNil predicate on the "failing_criteria" field.
func FailingCriteriaNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldFailingCriteria))
}

// FailingCriteriaEqualFold applies the EqualFold predicate on the "failing_criteria" field.
func FailingCriteriaEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldFailingCriteria, v))
}

// FailingCriteriaContainsFold applies the ContainsFold predicate on the "failing_criteria" field.
func FailingCriteriaContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldFailingCriteria, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
