// Code generated by ent, DO NOT EDIT.

package mastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mastery type in the database.
	Label = "mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldTypeOfQuestion holds the string denoting the type_of_question field in the database.
	FieldTypeOfQuestion = "type_of_question"
	// FieldAccuracyEasy holds the string denoting the accuracy_easy field in the database.
	FieldAccuracyEasy = "accuracy_easy"
	// FieldAccuracyMedium holds the string denoting the accuracy_medium field in the database.
	FieldAccuracyMedium = "accuracy_medium"
	// FieldAccuracyHard holds the string denoting the accuracy_hard field in the database.
	FieldAccuracyHard = "accuracy_hard"
	// FieldEfficiencyScore holds the string denoting the efficiency_score field in the database.
	FieldEfficiencyScore = "efficiency_score"
	// FieldExposureCount holds the string denoting the exposure_count field in the database.
	FieldExposureCount = "exposure_count"
	// FieldMasteryPct holds the string denoting the mastery_pct field in the database.
	FieldMasteryPct = "mastery_pct"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the mastery in the database.
	Table = "mastery"
)

// Columns holds all SQL columns for mastery fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldSubcategory,
	FieldTypeOfQuestion,
	FieldAccuracyEasy,
	FieldAccuracyMedium,
	FieldAccuracyHard,
	FieldEfficiencyScore,
	FieldExposureCount,
	FieldMasteryPct,
	FieldLastActivityAt,
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
	// DefaultAccuracyEasy holds the default value on creation for the "accuracy_easy" field.
	DefaultAccuracyEasy float64
	// DefaultAccuracyMedium holds the default value on creation for the "accuracy_medium" field.
	DefaultAccuracyMedium float64
	// DefaultAccuracyHard holds the default value on creation for the "accuracy_hard" field.
	DefaultAccuracyHard float64
	// DefaultEfficiencyScore holds the default value on creation for the "efficiency_score" field.
	DefaultEfficiencyScore float64
	// DefaultExposureCount holds the default value on creation for the "exposure_count" field.
	DefaultExposureCount int
	// DefaultMasteryPct holds the default value on creation for the "mastery_pct" field.
	DefaultMasteryPct float64
	// DefaultLastActivityAt holds the default value on creation for the "last_activity_at" field.
	DefaultLastActivityAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Mastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySubcategory orders the results by the subcategory field.
func BySubcategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcategory, opts...).ToFunc()
}

// ByTypeOfQuestion orders the results by the type_of_question field.
func ByTypeOfQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTypeOfQuestion, opts...).ToFunc()
}

// ByAccuracyEasy orders the results by the accuracy_easy field.
func ByAccuracyEasy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracyEasy, opts...).ToFunc()
}

// ByAccuracyMedium orders the results by the accuracy_medium field.
func ByAccuracyMedium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracyMedium, opts...).ToFunc()
}

// ByAccuracyHard orders the results by the accuracy_hard field.
func ByAccuracyHard(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracyHard, opts...).ToFunc()
}

// ByEfficiencyScore orders the results by the efficiency_score field.
func ByEfficiencyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEfficiencyScore, opts...).ToFunc()
}

// ByExposureCount orders the results by the exposure_count field.
func ByExposureCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExposureCount, opts...).ToFunc()
}

// ByMasteryPct orders the results by the mastery_pct field.
func ByMasteryPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryPct, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
