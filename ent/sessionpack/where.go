// Code generated by ent, DO NOT EDIT.

package sessionpack

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/adaptivecat/planner/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEQ(FieldSessionID, v))
}

// QuestionIds applies equality check predicate on the "question_ids" field. It's identical to QuestionIdsEQ.
func QuestionIds(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEQ(FieldQuestionIds, v))
}

// Telemetry applies equality check predicate on the "telemetry" field. It's identical to TelemetryEQ.
func Telemetry(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEQ(FieldTelemetry, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIdsEQ applies the EQ predicate on the "question_ids" field.
func QuestionIdsEQ(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEQ(FieldQuestionIds, v))
}

// QuestionIdsNEQ applies the NEQ predicate on the "question_ids" field.
func QuestionIdsNEQ(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldNEQ(FieldQuestionIds, v))
}

// QuestionIdsIn applies the In predicate on the "question_ids" field.
func QuestionIdsIn(vs ...string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldIn(FieldQuestionIds, vs...))
}

// QuestionIdsNotIn applies the NotIn predicate on the "question_ids" field.
func QuestionIdsNotIn(vs ...string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldNotIn(FieldQuestionIds, vs...))
}

// QuestionIdsGT applies the GT predicate on the "question_ids" field.
func QuestionIdsGT(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldGT(FieldQuestionIds, v))
}

// QuestionIdsGTE applies the GTE predicate on the "question_ids" field.
func QuestionIdsGTE(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldGTE(FieldQuestionIds, v))
}

// QuestionIdsLT applies the LT predicate on the "question_ids" field.
func QuestionIdsLT(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldLT(FieldQuestionIds, v))
}

// QuestionIdsLTE applies the LTE predicate on the "question_ids" field.
func QuestionIdsLTE(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldLTE(FieldQuestionIds, v))
}

// QuestionIdsContains applies the Contains predicate on the "question_ids" field.
func QuestionIdsContains(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldContains(FieldQuestionIds, v))
}

// QuestionIdsHasPrefix applies the HasPrefix predicate on the "question_ids" field.
func QuestionIdsHasPrefix(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldHasPrefix(FieldQuestionIds, v))
}

// QuestionIdsHasSuffix applies the HasSuffix predicate on the "question_ids" field.
func QuestionIdsHasSuffix(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldHasSuffix(FieldQuestionIds, v))
}

// QuestionIdsEqualFold applies the EqualFold predicate on the "question_ids" field.
func QuestionIdsEqualFold(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEqualFold(FieldQuestionIds, v))
}

// QuestionIdsContainsFold applies the ContainsFold predicate on the "question_ids" field.
func QuestionIdsContainsFold(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldContainsFold(FieldQuestionIds, v))
}

// TelemetryEQ applies the EQ predicate on the "telemetry" field.
func TelemetryEQ(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEQ(FieldTelemetry, v))
}

// TelemetryNEQ applies the NEQ predicate on the "telemetry" field.
func TelemetryNEQ(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldNEQ(FieldTelemetry, v))
}

// TelemetryIn applies the In predicate on the "telemetry" field.
func TelemetryIn(vs ...string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldIn(FieldTelemetry, vs...))
}

// TelemetryNotIn applies the NotIn predicate on the "telemetry" field.
func TelemetryNotIn(vs ...string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldNotIn(FieldTelemetry, vs...))
}

// TelemetryGT applies the GT predicate on the "telemetry" field.
func TelemetryGT(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldGT(FieldTelemetry, v))
}

// TelemetryGTE applies the GTE predicate on the "telemetry" field.
func TelemetryGTE(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldGTE(FieldTelemetry, v))
}

// TelemetryLT applies the LT predicate on the "telemetry" field.
func TelemetryLT(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldLT(FieldTelemetry, v))
}

// TelemetryLTE applies the LTE predicate on the "telemetry" field.
func TelemetryLTE(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldLTE(FieldTelemetry, v))
}

// TelemetryContains applies the Contains predicate on the "telemetry" field.
func TelemetryContains(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldContains(FieldTelemetry, v))
}

// TelemetryHasPrefix applies the HasPrefix predicate on the "telemetry" field.
func TelemetryHasPrefix(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldHasPrefix(FieldTelemetry, v))
}

// TelemetryHasSuffix applies the HasSuffix predicate on the "telemetry" field.
func TelemetryHasSuffix(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldHasSuffix(FieldTelemetry, v))
}

// TelemetryEqualFold applies the EqualFold predicate on the "telemetry" field.
func TelemetryEqualFold(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEqualFold(FieldTelemetry, v))
}

// TelemetryContainsFold applies the ContainsFold predicate on the "telemetry" field.
func TelemetryContainsFold(v string) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldContainsFold(FieldTelemetry, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionPack {
	return predicate.SessionPack(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SessionPack {
	return predicate.SessionPack(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.SessionPack {
	return predicate.SessionPack(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionPack) predicate.SessionPack {
	return predicate.SessionPack(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionPack) predicate.SessionPack {
	return predicate.SessionPack(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionPack) predicate.SessionPack {
	return predicate.SessionPack(sql.NotPredicates(p))
}
