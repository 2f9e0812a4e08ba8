package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for a planned/served/completed
// session (C9). sess_seq is dense per student (1, 2, 3, ...).
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.Int("sess_seq").
			Immutable(),
		field.Enum("status").
			Values("planned", "served", "completed").
			Default("planned"),
		field.String("idempotency_key").
			Optional().
			Nillable().
			Unique().
			Comment("student:last_session_id:next_session_id, per spec.md §4.9"),
		field.Text("phase_info").
			Optional().
			Comment("JSON snapshot of the phase/telemetry used to plan this session"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("pack", SessionPack.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "sess_seq").
			Unique(),
		index.Fields("student_id", "status"),
	}
}

// Annotations for PostgreSQL-specific features.
func (Session) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sessions"},
	}
}
