// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_taken_seconds", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_student_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[5]},
			},
			{
				Name:    "attempt_student_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[2]},
			},
		},
	}
	// MasteryColumns holds the columns for the "mastery" table.
	MasteryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "type_of_question", Type: field.TypeString, Nullable: true},
		{Name: "accuracy_easy", Type: field.TypeFloat64, Default: 0},
		{Name: "accuracy_medium", Type: field.TypeFloat64, Default: 0},
		{Name: "accuracy_hard", Type: field.TypeFloat64, Default: 0},
		{Name: "efficiency_score", Type: field.TypeFloat64, Default: 0},
		{Name: "exposure_count", Type: field.TypeInt, Default: 0},
		{Name: "mastery_pct", Type: field.TypeFloat64, Default: 0},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryTable holds the schema information for the "mastery" table.
	MasteryTable = &schema.Table{
		Name:       "mastery",
		Columns:    MasteryColumns,
		PrimaryKey: []*schema.Column{MasteryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mastery_student_id_subcategory_type_of_question",
				Unique:  true,
				Columns: []*schema.Column{MasteryColumns[1], MasteryColumns[2], MasteryColumns[3]},
			},
			{
				Name:    "mastery_student_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryColumns[1]},
			},
		},
	}
	// PyqQuestionsColumns holds the columns for the "pyq_questions" table.
	PyqQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "subcategory", Type: field.TypeString, Nullable: true},
		{Name: "type_of_question", Type: field.TypeString, Nullable: true},
		{Name: "difficulty_band", Type: field.TypeEnum, Nullable: true, Enums: []string{"Easy", "Medium", "Hard"}},
		{Name: "difficulty_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "pyq_frequency_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "core_concepts", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "solution_method", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "concept_difficulty", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "operations_required", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "problem_structure", Type: field.TypeString, Nullable: true},
		{Name: "concept_keywords", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "quality_verified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PyqQuestionsTable holds the schema information for the "pyq_questions" table.
	PyqQuestionsTable = &schema.Table{
		Name:       "pyq_questions",
		Columns:    PyqQuestionsColumns,
		PrimaryKey: []*schema.Column{PyqQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pyqquestion_category_subcategory",
				Unique:  false,
				Columns: []*schema.Column{PyqQuestionsColumns[2], PyqQuestionsColumns[3]},
			},
			{
				Name:    "pyqquestion_is_active_quality_verified",
				Unique:  false,
				Columns: []*schema.Column{PyqQuestionsColumns[14], PyqQuestionsColumns[15]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "admin_answer", Type: field.TypeString},
		{Name: "admin_solution", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "principle_to_remember", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "image_ref", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "subcategory", Type: field.TypeString, Nullable: true},
		{Name: "type_of_question", Type: field.TypeString, Nullable: true},
		{Name: "difficulty_band", Type: field.TypeEnum, Nullable: true, Enums: []string{"Easy", "Medium", "Hard"}},
		{Name: "difficulty_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "pyq_frequency_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "right_answer", Type: field.TypeString, Nullable: true},
		{Name: "core_concepts", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "solution_method", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "concept_difficulty", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "operations_required", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "problem_structure", Type: field.TypeString, Nullable: true},
		{Name: "concept_keywords", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "quality_verified", Type: field.TypeBool, Default: false},
		{Name: "concept_extraction_status", Type: field.TypeEnum, Enums: []string{"pending", "completed"}, Default: "pending"},
		{Name: "failing_criteria", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_is_active",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[19]},
			},
			{
				Name:    "question_category_subcategory",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[6], QuestionsColumns[7]},
			},
			{
				Name:    "question_difficulty_band",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[9]},
			},
			{
				Name:    "question_is_active_category_subcategory_difficulty_band",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[19], QuestionsColumns[6], QuestionsColumns[7], QuestionsColumns[9]},
			},
			{
				Name:    "question_pyq_frequency_score",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[11]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "sess_seq", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"planned", "served", "completed"}, Default: "planned"},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "phase_info", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_student_id_sess_seq",
				Unique:  true,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[2]},
			},
			{
				Name:    "session_student_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[3]},
			},
		},
	}
	// SessionPacksColumns holds the columns for the "session_packs" table.
	SessionPacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "question_ids", Type: field.TypeString, Size: 2147483647},
		{Name: "telemetry", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// SessionPacksTable holds the schema information for the "session_packs" table.
	SessionPacksTable = &schema.Table{
		Name:       "session_packs",
		Columns:    SessionPacksColumns,
		PrimaryKey: []*schema.Column{SessionPacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_packs_sessions_pack",
				Columns:    []*schema.Column{SessionPacksColumns[4]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// StudentCoverageColumns holds the columns for the "student_coverage" table.
	StudentCoverageColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString},
		{Name: "type_of_question", Type: field.TypeString},
		{Name: "sessions_seen", Type: field.TypeInt, Default: 0},
		{Name: "first_seen_session", Type: field.TypeInt, Nullable: true},
		{Name: "last_seen_session", Type: field.TypeInt, Nullable: true},
	}
	// StudentCoverageTable holds the schema information for the "student_coverage" table.
	StudentCoverageTable = &schema.Table{
		Name:       "student_coverage",
		Columns:    StudentCoverageColumns,
		PrimaryKey: []*schema.Column{StudentCoverageColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentcoverage_student_id_subcategory_type_of_question",
				Unique:  true,
				Columns: []*schema.Column{StudentCoverageColumns[1], StudentCoverageColumns[2], StudentCoverageColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		MasteryTable,
		PyqQuestionsTable,
		QuestionsTable,
		SessionsTable,
		SessionPacksTable,
		StudentCoverageTable,
	}
)

func init() {
	AttemptsTable.Annotation = &entsql.Annotation{
		Table: "attempts",
	}
	MasteryTable.Annotation = &entsql.Annotation{
		Table: "mastery",
	}
	PyqQuestionsTable.Annotation = &entsql.Annotation{
		Table: "pyq_questions",
	}
	QuestionsTable.Annotation = &entsql.Annotation{
		Table: "questions",
	}
	SessionsTable.Annotation = &entsql.Annotation{
		Table: "sessions",
	}
	SessionPacksTable.ForeignKeys[0].RefTable = SessionsTable
	SessionPacksTable.Annotation = &entsql.Annotation{
		Table: "session_packs",
	}
	StudentCoverageTable.Annotation = &entsql.Annotation{
		Table: "student_coverage",
	}
}
