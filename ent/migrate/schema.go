// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "paper_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
		{Name: "mistake_category", Type: field.TypeString, Default: ""},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answer_paper_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[1]},
			},
			{
				Name:    "answer_paper_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[1], AnswersColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[7]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
		},
	}
	// PapersColumns holds the columns for the "papers" table.
	PapersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "available"},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeInt, Default: 0},
		{Name: "difficulty_level", Type: field.TypeInt, Default: 3},
		{Name: "recovery_mode", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "submitted_at", Type: field.TypeTime, Nullable: true},
		{Name: "unlocked_at", Type: field.TypeTime, Nullable: true},
	}
	// PapersTable holds the schema information for the "papers" table.
	PapersTable = &schema.Table{
		Name:       "papers",
		Columns:    PapersColumns,
		PrimaryKey: []*schema.Column{PapersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paper_owner_id",
				Unique:  false,
				Columns: []*schema.Column{PapersColumns[1]},
			},
			{
				Name:    "paper_status",
				Unique:  false,
				Columns: []*schema.Column{PapersColumns[2]},
			},
			{
				Name:    "paper_created_at",
				Unique:  false,
				Columns: []*schema.Column{PapersColumns[7]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "exam_name", Type: field.TypeString},
		{Name: "target_score", Type: field.TypeInt, Default: 0},
		{Name: "streak_count", Type: field.TypeInt, Default: 0},
		{Name: "zone", Type: field.TypeString, Default: "Borderline"},
		{Name: "exam_date", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeString, Default: ""},
		{Name: "region", Type: field.TypeString, Default: ""},
		{Name: "target_level", Type: field.TypeString, Default: "National"},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "paper_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "section", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "verified_source", Type: field.TypeBool, Default: false},
		{Name: "trap_explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_paper_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_paper_id_position",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[1], QuestionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		LlmRequestEventsTable,
		PapersTable,
		ProfilesTable,
		QuestionsTable,
	}
)

func init() {
}
