// Code generated by ent, DO NOT EDIT.

package studentcoverage

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studentcoverage type in the database.
	Label = "student_coverage"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSubcategory holds the string denoting the subcategory field in the database.
	FieldSubcategory = "subcategory"
	// FieldTypeOfQuestion holds the string denoting the type_of_question field in the database.
	FieldTypeOfQuestion = "type_of_question"
	// FieldSessionsSeen holds the string denoting the sessions_seen field in the database.
	FieldSessionsSeen = "sessions_seen"
	// FieldFirstSeenSession holds the string denoting the first_seen_session field in the database.
	FieldFirstSeenSession = "first_seen_session"
	// FieldLastSeenSession holds the string denoting the last_seen_session field in the database.
	FieldLastSeenSession = "last_seen_session"
	// Table holds the table name of the studentcoverage in the database.
	Table = "student_coverage"
)

// Columns holds all SQL columns for studentcoverage fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldSubcategory,
	FieldTypeOfQuestion,
	FieldSessionsSeen,
	FieldFirstSeenSession,
	FieldLastSeenSession,
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
	// DefaultSessionsSeen holds the default value on creation for the "sessions_seen" field.
	DefaultSessionsSeen int
)

// OrderOption defines the ordering options for the StudentCoverage queries.
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

// BySessionsSeen orders the results by the sessions_seen field.
func BySessionsSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsSeen, opts...).ToFunc()
}

// ByFirstSeenSession orders the results by the first_seen_session field.
func ByFirstSeenSession(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeenSession, opts...).ToFunc()
}

// ByLastSeenSession orders the results by the last_seen_session field.
func ByLastSeenSession(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenSession, opts...).ToFunc()
}
