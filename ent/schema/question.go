package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question holds the schema definition for a single bank question.
//
// Admin-owned content fields (Stem, AdminAnswer, AdminSolution,
// PrincipleToRemember, ImageRef) are written once at ingestion and never
// mutated by the enrichment pipeline (C4) or the quality verifier (C5).
// Every other field is derived and may be overwritten by re-enrichment.
type Question struct {
	ent.Schema
}

// Fields of the Question.
func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),

		// Admin-owned content — never mutated by the pipeline.
		field.Text("stem").
			Immutable(),
		field.String("admin_answer").
			Immutable(),
		field.Text("admin_solution").
			Optional().
			Immutable(),
		field.Text("principle_to_remember").
			Optional().
			Immutable(),
		field.String("image_ref").
			Optional().
			Immutable(),

		// Canonical classification (C1).
		field.String("category").
			Optional(),
		field.String("subcategory").
			Optional(),
		field.String("type_of_question").
			Optional(),

		// Difficulty (C4 stage 3).
		field.Enum("difficulty_band").
			Values("Easy", "Medium", "Hard").
			Optional(),
		field.Float("difficulty_score").
			Optional(),

		// PYQ frequency (C4 stage 4). Undefined until computed.
		field.Float("pyq_frequency_score").
			Optional().
			Nillable(),

		// Enrichment-owned derived fields, stored as structured strings
		// per spec.md §4.4 stage 2 ("serialized as structured strings").
		field.String("right_answer").
			Optional(),
		field.Text("core_concepts").
			Optional().
			Comment("JSON array of concept tokens"),
		field.Text("solution_method").
			Optional(),
		field.Text("concept_difficulty").
			Optional().
			Comment("JSON object: prerequisites, cognitive_barriers, mastery_indicators"),
		field.Text("operations_required").
			Optional().
			Comment("JSON array of operation tokens"),
		field.String("problem_structure").
			Optional().
			Nillable(),
		field.Text("concept_keywords").
			Optional().
			Comment("JSON array"),

		// Activation / gating state (C4, C5).
		field.Bool("is_active").
			Default(false),
		field.Bool("quality_verified").
			Default(false),
		field.Enum("concept_extraction_status").
			Values("pending", "completed").
			Default("pending"),
		field.Text("failing_criteria").
			Optional().
			Nillable().
			Comment("JSON array of failing check names, set when the quality gate rejects"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Question.
func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
		index.Fields("category", "subcategory"),
		index.Fields("difficulty_band"),
		index.Fields("is_active", "category", "subcategory", "difficulty_band"),
		index.Fields("pyq_frequency_score"),
	}
}

// Annotations for PostgreSQL-specific features.
func (Question) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "questions"},
	}
}
