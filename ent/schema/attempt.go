package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt holds the schema definition for a single student response to a
// question. Append-only; feeds the mastery tracker (C6).
type Attempt struct {
	ent.Schema
}

// Fields of the Attempt.
func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.String("question_id").
			Immutable(),
		field.Bool("correct").
			Immutable(),
		field.Int("time_taken_seconds").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Attempt.
func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "created_at"),
		index.Fields("student_id", "question_id"),
	}
}

// Annotations for PostgreSQL-specific features.
func (Attempt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "attempts"},
	}
}
