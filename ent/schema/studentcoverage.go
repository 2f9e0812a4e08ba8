package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentCoverage holds the schema definition for the set of
// (subcategory, type_of_question) combinations a student has ever been
// served, used during Phase A coverage selection (C7).
type StudentCoverage struct {
	ent.Schema
}

// Fields of the StudentCoverage.
func (StudentCoverage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.String("subcategory").
			Immutable(),
		field.String("type_of_question").
			Immutable(),
		field.Int("sessions_seen").
			Default(0),
		field.Int("first_seen_session").
			Optional(),
		field.Int("last_seen_session").
			Optional(),
	}
}

// Indexes of the StudentCoverage.
func (StudentCoverage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "subcategory", "type_of_question").
			Unique(),
	}
}

// Annotations for PostgreSQL-specific features.
func (StudentCoverage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "student_coverage"},
	}
}
