// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptivecat/planner/ent/studentcoverage"
)

// StudentCoverage is the model entity for the StudentCoverage schema.
type StudentCoverage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// Subcategory holds the value of the "subcategory" field.
	Subcategory string `json:"subcategory,omitempty"`
	// TypeOfQuestion holds the value of the "type_of_question" field.
	TypeOfQuestion string `json:"type_of_question,omitempty"`
	// SessionsSeen holds the value of the "sessions_seen" field.
	SessionsSeen int `json:"sessions_seen,omitempty"`
	// FirstSeenSession holds the value of the "first_seen_session" field.
	FirstSeenSession int `json:"first_seen_session,omitempty"`
	// LastSeenSession holds the value of the "last_seen_session" field.
	LastSeenSession int `json:"last_seen_session,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentCoverage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentcoverage.FieldSessionsSeen, studentcoverage.FieldFirstSeenSession, studentcoverage.FieldLastSeenSession:
			values[i] = new(sql.NullInt64)
		case studentcoverage.FieldID, studentcoverage.FieldStudentID, studentcoverage.FieldSubcategory, studentcoverage.FieldTypeOfQuestion:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentCoverage fields.
func (_m *StudentCoverage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentcoverage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case studentcoverage.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case studentcoverage.FieldSubcategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcategory", values[i])
			} else if value.Valid {
				_m.Subcategory = value.String
			}
		case studentcoverage.FieldTypeOfQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type_of_question", values[i])
			} else if value.Valid {
				_m.TypeOfQuestion = value.String
			}
		case studentcoverage.FieldSessionsSeen:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_seen", values[i])
			} else if value.Valid {
				_m.SessionsSeen = int(value.Int64)
			}
		case studentcoverage.FieldFirstSeenSession:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen_session", values[i])
			} else if value.Valid {
				_m.FirstSeenSession = int(value.Int64)
			}
		case studentcoverage.FieldLastSeenSession:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_session", values[i])
			} else if value.Valid {
				_m.LastSeenSession = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudentCoverage.
// This includes values selected through modifiers, order, etc.
func (_m *StudentCoverage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudentCoverage.
// Note that you need to call StudentCoverage.Unwrap() before calling this method if this StudentCoverage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentCoverage) Update() *StudentCoverageUpdateOne {
	return NewStudentCoverageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentCoverage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentCoverage) Unwrap() *StudentCoverage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudentCoverage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentCoverage) String() string {
	var builder strings.Builder
	builder.WriteString("StudentCoverage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("subcategory=")
	builder.WriteString(_m.Subcategory)
	builder.WriteString(", ")
	builder.WriteString("type_of_question=")
	builder.WriteString(_m.TypeOfQuestion)
	builder.WriteString(", ")
	builder.WriteString("sessions_seen=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsSeen))
	builder.WriteString(", ")
	builder.WriteString("first_seen_session=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstSeenSession))
	builder.WriteString(", ")
	builder.WriteString("last_seen_session=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastSeenSession))
	builder.WriteByte(')')
	return builder.String()
}

// StudentCoverages is a parsable slice of StudentCoverage.
type StudentCoverages []*StudentCoverage
