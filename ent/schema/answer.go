package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer records the candidate's response to one question of one paper.
// Exactly one row exists per (paper, question) after submission.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("paper_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.String("user_answer").
			Default("").
			Comment("Chosen option text; empty when unanswered"),
		field.Bool("correct").
			Comment("Computed once at submission, never recomputed"),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Accumulated whole seconds across visits"),
		field.String("mistake_category").
			Default("").
			Comment("One of the five categories; empty for correct answers"),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("paper_id"),
		index.Fields("paper_id", "question_id").Unique(),
	}
}
