package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// SessionPack holds the schema definition for the 12-question list tied
// to a Session, plus the selection telemetry emitted by the planner (C7).
type SessionPack struct {
	ent.Schema
}

// Fields of the SessionPack.
func (SessionPack) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique(),
		field.Text("question_ids").
			Comment("JSON array of 12 question IDs, in presentation order"),
		field.Text("telemetry").
			Comment("JSON-encoded planner.Telemetry"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SessionPack. The owning-session edge is bound to the
// session_id column so SetSessionID populates the relation directly.
func (SessionPack) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("pack").
			Unique().
			Required().
			Field("session_id"),
	}
}

// Annotations for PostgreSQL-specific features.
func (SessionPack) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "session_packs"},
	}
}
