package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Paper is one mock-exam attempt, from generation through analysis.
type Paper struct {
	ent.Schema
}

func (Paper) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("owner_id").
			NotEmpty().
			Comment("Profile that owns this paper"),
		field.String("status").
			Default("available").
			Comment("locked, available, submitted, or analyzed"),
		field.Int("score").
			Default(0).
			Comment("Count of correct answers, set at submission"),
		field.Int("accuracy").
			Default(0).
			Comment("round(100*score/questions), set at submission"),
		field.Int("difficulty_level").
			Default(3),
		field.Bool("recovery_mode").
			Default(false).
			Comment("Foundation-focus paper generated after a bad streak"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("submitted_at").
			Optional(),
		field.Time("unlocked_at").
			Optional().
			Comment("Analysis view is gated until this instant"),
	}
}

func (Paper) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
