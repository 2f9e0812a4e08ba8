package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PYQQuestion holds the schema definition for a historical exam question.
// Same shape as Question minus the admin-owned content fields; it is
// read-only in planning and is consulted only by the PYQ-frequency stage
// of the enrichment pipeline (C4).
type PYQQuestion struct {
	ent.Schema
}

// Fields of the PYQQuestion.
func (PYQQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Text("stem").
			Immutable(),

		field.String("category").
			Optional(),
		field.String("subcategory").
			Optional(),
		field.String("type_of_question").
			Optional(),

		field.Enum("difficulty_band").
			Values("Easy", "Medium", "Hard").
			Optional(),
		field.Float("difficulty_score").
			Optional(),
		field.Float("pyq_frequency_score").
			Optional().
			Nillable(),

		field.Text("core_concepts").
			Optional(),
		field.Text("solution_method").
			Optional(),
		field.Text("concept_difficulty").
			Optional(),
		field.Text("operations_required").
			Optional(),
		field.String("problem_structure").
			Optional().
			Nillable(),
		field.Text("concept_keywords").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(false),
		field.Bool("quality_verified").
			Default(false),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PYQQuestion.
func (PYQQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category", "subcategory"),
		index.Fields("is_active", "quality_verified"),
	}
}

// Annotations for PostgreSQL-specific features.
func (PYQQuestion) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "pyq_questions"},
	}
}
