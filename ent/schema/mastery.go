package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mastery holds the schema definition for a student's EWMA mastery state,
// keyed by (student, subcategory) or (student, subcategory, type). The
// Type field is empty for the subcategory-level row.
type Mastery struct {
	ent.Schema
}

// Fields of the Mastery.
func (Mastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.String("subcategory").
			Immutable(),
		field.String("type_of_question").
			Optional().
			Immutable().
			Comment("Empty string means this row is keyed at the subcategory level only"),

		field.Float("accuracy_easy").
			Default(0),
		field.Float("accuracy_medium").
			Default(0),
		field.Float("accuracy_hard").
			Default(0),
		field.Float("efficiency_score").
			Default(0),
		field.Int("exposure_count").
			Default(0),
		field.Float("mastery_pct").
			Default(0),

		field.Time("last_activity_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Mastery.
func (Mastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "subcategory", "type_of_question").
			Unique(),
		index.Fields("student_id"),
	}
}

// Annotations for PostgreSQL-specific features.
func (Mastery) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "mastery"},
	}
}
