package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a generated mock-exam question. Immutable once written.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("paper_id").
			NotEmpty().
			Immutable().
			Comment("Paper this question belongs to"),
		field.Int("position").
			Immutable().
			Comment("Zero-based order within the paper"),
		field.String("section").
			NotEmpty().
			Comment("Syllabus section label"),
		field.Text("text").
			NotEmpty().
			Comment("The question prompt"),
		field.JSON("options", []string{}).
			Comment("Four or more answer options"),
		field.String("correct_answer").
			NotEmpty(),
		field.Bool("verified_source").
			Default(false).
			Comment("Whether the generator attested a verified source"),
		field.Text("trap_explanation").
			Default("").
			Comment("Why the distractors are tempting"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("paper_id"),
		index.Fields("paper_id", "position").Unique(),
	}
}
