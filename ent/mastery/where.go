// Code generated by ent, DO NOT EDIT.

package mastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adaptivecat/planner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Mastery {
	return predicate.Mastery(sql.FieldContainsFold(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldStudentID, v))
}

// Subcategory applies equality check predicate on the "subcategory" field. It's identical to SubcategoryEQ.
func Subcategory(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldSubcategory, v))
}

// TypeOfQuestion applies equality check predicate on the "type_of_question" field. It's identical to TypeOfQuestionEQ.
func TypeOfQuestion(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// AccuracyEasy applies equality check predicate on the "accuracy_easy" field. It's identical to AccuracyEasyEQ.
func AccuracyEasy(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldAccuracyEasy, v))
}

// AccuracyMedium applies equality check predicate on the "accuracy_medium" field. It's identical to AccuracyMediumEQ.
func AccuracyMedium(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldAccuracyMedium, v))
}

// AccuracyHard applies equality check predicate on the "accuracy_hard" field. It's identical to AccuracyHardEQ.
func AccuracyHard(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldAccuracyHard, v))
}

// EfficiencyScore applies equality check predicate on the "efficiency_score" field. It's identical to EfficiencyScoreEQ.
func EfficiencyScore(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldEfficiencyScore, v))
}

// ExposureCount applies equality check predicate on the "exposure_count" field. It's identical to ExposureCountEQ.
func ExposureCount(v int) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldExposureCount, v))
}

// MasteryPct applies equality check predicate on the "mastery_pct" field. It's identical to MasteryPctEQ.
func MasteryPct(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldMasteryPct, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldLastActivityAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldContainsFold(FieldStudentID, v))
}

// SubcategoryEQ applies the EQ predicate on the "subcategory" field.
func SubcategoryEQ(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldSubcategory, v))
}

// SubcategoryNEQ applies the NEQ predicate on the "subcategory" field.
func SubcategoryNEQ(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldSubcategory, v))
}

// SubcategoryIn applies the In predicate on the "subcategory" field.
func SubcategoryIn(vs ...string) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldSubcategory, vs...))
}

// SubcategoryNotIn applies the NotIn predicate on the "subcategory" field.
func SubcategoryNotIn(vs ...string) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldSubcategory, vs...))
}

// SubcategoryGT applies the GT predicate on the "subcategory" field.
func SubcategoryGT(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldSubcategory, v))
}

// SubcategoryGTE applies the GTE predicate on the "subcategory" field.
func SubcategoryGTE(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldSubcategory, v))
}

// SubcategoryLT applies the LT predicate on the "subcategory" field.
func SubcategoryLT(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldSubcategory, v))
}

// SubcategoryLTE applies the LTE predicate on the "subcategory" field.
func SubcategoryLTE(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldSubcategory, v))
}

// SubcategoryContains applies the Contains predicate on the "subcategory" field.
func SubcategoryContains(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldContains(FieldSubcategory, v))
}

// SubcategoryHasPrefix applies the HasPrefix predicate on the "subcategory" field.
func SubcategoryHasPrefix(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldHasPrefix(FieldSubcategory, v))
}

// SubcategoryHasSuffix applies the HasSuffix predicate on the "subcategory" field.
func SubcategoryHasSuffix(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldHasSuffix(FieldSubcategory, v))
}

// SubcategoryEqualFold applies the EqualFold predicate on the "subcategory" field.
func SubcategoryEqualFold(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEqualFold(FieldSubcategory, v))
}

// SubcategoryContainsFold applies the ContainsFold predicate on the "subcategory" field.
func SubcategoryContainsFold(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldContainsFold(FieldSubcategory, v))
}

// TypeOfQuestionEQ applies the EQ predicate on the "type_of_question" field.
func TypeOfQuestionEQ(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionNEQ applies the NEQ predicate on the "type_of_question" field.
func TypeOfQuestionNEQ(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIn applies the In predicate on the "type_of_question" field.
func TypeOfQuestionIn(vs ...string) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionNotIn applies the NotIn predicate on the "type_of_question" field.
func TypeOfQuestionNotIn(vs ...string) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldTypeOfQuestion, vs...))
}

// TypeOfQuestionGT applies the GT predicate on the "type_of_question" field.
func TypeOfQuestionGT(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionGTE applies the GTE predicate on the "type_of_question" field.
func TypeOfQuestionGTE(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLT applies the LT predicate on the "type_of_question" field.
func TypeOfQuestionLT(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldTypeOfQuestion, v))
}

// TypeOfQuestionLTE applies the LTE predicate on the "type_of_question" field.
func TypeOfQuestionLTE(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContains applies the Contains predicate on the "type_of_question" field.
func TypeOfQuestionContains(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldContains(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasPrefix applies the HasPrefix predicate on the "type_of_question" field.
func TypeOfQuestionHasPrefix(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldHasPrefix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionHasSuffix applies the HasSuffix predicate on the "type_of_question" field.
func TypeOfQuestionHasSuffix(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldHasSuffix(FieldTypeOfQuestion, v))
}

// TypeOfQuestionIsNil applies the IsNil predicate on the "type_of_question" field.
func TypeOfQuestionIsNil() predicate.Mastery {
	return predicate.Mastery(sql.FieldIsNull(FieldTypeOfQuestion))
}

// TypeOfQuestionNotNil applies the NotNil predicate on the "type_of_question" field.
func TypeOfQuestionNotNil() predicate.Mastery {
	return predicate.Mastery(sql.FieldNotNull(FieldTypeOfQuestion))
}

// TypeOfQuestionEqualFold applies the EqualFold predicate on the "type_of_question" field.
func TypeOfQuestionEqualFold(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldEqualFold(FieldTypeOfQuestion, v))
}

// TypeOfQuestionContainsFold applies the ContainsFold predicate on the "type_of_question" field.
func TypeOfQuestionContainsFold(v string) predicate.Mastery {
	return predicate.Mastery(sql.FieldContainsFold(FieldTypeOfQuestion, v))
}

// AccuracyEasyEQ applies the EQ predicate on the "accuracy_easy" field.
func AccuracyEasyEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldAccuracyEasy, v))
}

// AccuracyEasyNEQ applies the NEQ predicate on the "accuracy_easy" field.
func AccuracyEasyNEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldAccuracyEasy, v))
}

// AccuracyEasyIn applies the In predicate on the "accuracy_easy" field.
func AccuracyEasyIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldAccuracyEasy, vs...))
}

// AccuracyEasyNotIn applies the NotIn predicate on the "accuracy_easy" field.
func AccuracyEasyNotIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldAccuracyEasy, vs...))
}

// AccuracyEasyGT applies the GT predicate on the "accuracy_easy" field.
func AccuracyEasyGT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldAccuracyEasy, v))
}

// AccuracyEasyGTE applies the GTE predicate on the "accuracy_easy" field.
func AccuracyEasyGTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldAccuracyEasy, v))
}

// AccuracyEasyLT applies the LT predicate on the "accuracy_easy" field.
func AccuracyEasyLT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldAccuracyEasy, v))
}

// AccuracyEasyLTE applies the LTE predicate on the "accuracy_easy" field.
func AccuracyEasyLTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldAccuracyEasy, v))
}

// AccuracyMediumEQ applies the EQ predicate on the "accuracy_medium" field.
func AccuracyMediumEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldAccuracyMedium, v))
}

// AccuracyMediumNEQ applies the NEQ predicate on the "accuracy_medium" field.
func AccuracyMediumNEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldAccuracyMedium, v))
}

// AccuracyMediumIn applies the In predicate on the "accuracy_medium" field.
func AccuracyMediumIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldAccuracyMedium, vs...))
}

// AccuracyMediumNotIn applies the NotIn predicate on the "accuracy_medium" field.
func AccuracyMediumNotIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldAccuracyMedium, vs...))
}

// AccuracyMediumGT applies the GT predicate on the "accuracy_medium" field.
func AccuracyMediumGT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldAccuracyMedium, v))
}

// AccuracyMediumGTE applies the GTE predicate on the "accuracy_medium" field.
func AccuracyMediumGTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldAccuracyMedium, v))
}

// AccuracyMediumLT applies the LT predicate on the "accuracy_medium" field.
func AccuracyMediumLT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldAccuracyMedium, v))
}

// AccuracyMediumLTE applies the LTE predicate on the "accuracy_medium" field.
func AccuracyMediumLTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldAccuracyMedium, v))
}

// AccuracyHardEQ applies the EQ predicate on the "accuracy_hard" field.
func AccuracyHardEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldAccuracyHard, v))
}

// AccuracyHardNEQ applies the NEQ predicate on the "accuracy_hard" field.
func AccuracyHardNEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldAccuracyHard, v))
}

// AccuracyHardIn applies the In predicate on the "accuracy_hard" field.
func AccuracyHardIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldAccuracyHard, vs...))
}

// AccuracyHardNotIn applies the NotIn predicate on the "accuracy_hard" field.
func AccuracyHardNotIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldAccuracyHard, vs...))
}

// AccuracyHardGT applies the GT predicate on the "accuracy_hard" field.
func AccuracyHardGT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldAccuracyHard, v))
}

// AccuracyHardGTE applies the GTE predicate on the "accuracy_hard" field.
func AccuracyHardGTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldAccuracyHard, v))
}

// AccuracyHardLT applies the LT predicate on the "accuracy_hard" field.
func AccuracyHardLT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldAccuracyHard, v))
}

// AccuracyHardLTE applies the LTE predicate on the "accuracy_hard" field.
func AccuracyHardLTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldAccuracyHard, v))
}

// EfficiencyScoreEQ applies the EQ predicate on the "efficiency_score" field.
func EfficiencyScoreEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldEfficiencyScore, v))
}

// EfficiencyScoreNEQ applies the NEQ predicate on the "efficiency_score" field.
func EfficiencyScoreNEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldEfficiencyScore, v))
}

// EfficiencyScoreIn applies the In predicate on the "efficiency_score" field.
func EfficiencyScoreIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldEfficiencyScore, vs...))
}

// EfficiencyScoreNotIn applies the NotIn predicate on the "efficiency_score" field.
func EfficiencyScoreNotIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldEfficiencyScore, vs...))
}

// EfficiencyScoreGT applies the GT predicate on the "efficiency_score" field.
func EfficiencyScoreGT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldEfficiencyScore, v))
}

// EfficiencyScoreGTE applies the GTE predicate on the "efficiency_score" field.
func EfficiencyScoreGTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldEfficiencyScore, v))
}

// EfficiencyScoreLT applies the LT predicate on the "efficiency_score" field.
func EfficiencyScoreLT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldEfficiencyScore, v))
}

// EfficiencyScoreLTE applies the LTE predicate on the "efficiency_score" field.
func EfficiencyScoreLTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldEfficiencyScore, v))
}

// ExposureCountEQ applies the EQ predicate on the "exposure_count" field.
func ExposureCountEQ(v int) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldExposureCount, v))
}

// ExposureCountNEQ applies the NEQ predicate on the "exposure_count" field.
func ExposureCountNEQ(v int) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldExposureCount, v))
}

// ExposureCountIn applies the In predicate on the "exposure_count" field.
func ExposureCountIn(vs ...int) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldExposureCount, vs...))
}

// ExposureCountNotIn applies the NotIn predicate on the "exposure_count" field.
func ExposureCountNotIn(vs ...int) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldExposureCount, vs...))
}

// ExposureCountGT applies the GT predicate on the "exposure_count" field.
func ExposureCountGT(v int) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldExposureCount, v))
}

// ExposureCountGTE applies the GTE predicate on the "exposure_count" field.
func ExposureCountGTE(v int) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldExposureCount, v))
}

// ExposureCountLT applies the LT predicate on the "exposure_count" field.
func ExposureCountLT(v int) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldExposureCount, v))
}

// ExposureCountLTE applies the LTE predicate on the "exposure_count" field.
func ExposureCountLTE(v int) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldExposureCount, v))
}

// MasteryPctEQ applies the EQ predicate on the "mastery_pct" field.
func MasteryPctEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldMasteryPct, v))
}

// MasteryPctNEQ applies the NEQ predicate on the "mastery_pct" field.
func MasteryPctNEQ(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldMasteryPct, v))
}

// MasteryPctIn applies the In predicate on the "mastery_pct" field.
func MasteryPctIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldMasteryPct, vs...))
}

// MasteryPctNotIn applies the NotIn predicate on the "mastery_pct" field.
func MasteryPctNotIn(vs ...float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldMasteryPct, vs...))
}

// MasteryPctGT applies the GT predicate on the "mastery_pct" field.
func MasteryPctGT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldMasteryPct, v))
}

// MasteryPctGTE applies the GTE predicate on the "mastery_pct" field.
func MasteryPctGTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldMasteryPct, v))
}

// MasteryPctLT applies the LT predicate on the "mastery_pct" field.
func MasteryPctLT(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldMasteryPct, v))
}

// MasteryPctLTE applies the LTE predicate on the "mastery_pct" field.
func MasteryPctLTE(v float64) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldMasteryPct, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldLastActivityAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Mastery {
	return predicate.Mastery(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mastery) predicate.Mastery {
	return predicate.Mastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mastery) predicate.Mastery {
	return predicate.Mastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mastery) predicate.Mastery {
	return predicate.Mastery(sql.NotPredicates(p))
}
