// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adaptivecat/planner/ent/session"
	"github.com/adaptivecat/planner/ent/sessionpack"
)

// SessionPack is the model entity for the SessionPack schema.
type SessionPack struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// JSON array of 12 question IDs, in presentation order
	QuestionIds string `json:"question_ids,omitempty"`
	// JSON-encoded planner.Telemetry
	Telemetry string `json:"telemetry,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionPackQuery when eager-loading is set.
	Edges        SessionPackEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionPackEdges holds the relations/edges for other nodes in the graph.
type SessionPackEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionPackEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionPack) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionpack.FieldID, sessionpack.FieldSessionID, sessionpack.FieldQuestionIds, sessionpack.FieldTelemetry:
			values[i] = new(sql.NullString)
		case sessionpack.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionPack fields.
func (_m *SessionPack) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionpack.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionpack.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionpack.FieldQuestionIds:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_ids", values[i])
			} else if value.Valid {
				_m.QuestionIds = value.String
			}
		case sessionpack.FieldTelemetry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telemetry", values[i])
			} else if value.Valid {
				_m.Telemetry = value.String
			}
		case sessionpack.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SessionPack.
// This includes values selected through modifiers, order, etc.
func (_m *SessionPack) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SessionPack entity.
func (_m *SessionPack) QuerySession() *SessionQuery {
	return NewSessionPackClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this SessionPack.
// Note that you need to call SessionPack.Unwrap() before calling this method if this SessionPack
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionPack) Update() *SessionPackUpdateOne {
	return NewSessionPackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionPack entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionPack) Unwrap() *SessionPack {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionPack is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionPack) String() string {
	var builder strings.Builder
	builder.WriteString("SessionPack(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_ids=")
	builder.WriteString(_m.QuestionIds)
	builder.WriteString(", ")
	builder.WriteString("telemetry=")
	builder.WriteString(_m.Telemetry)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionPacks is a parsable slice of SessionPack.
type SessionPacks []*SessionPack
