package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile describes the candidate and the exam they are preparing for.
// Single-user app: at most one row exists.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID"),
		field.String("exam_name").
			NotEmpty().
			Comment("e.g. UPSC CSE, SSLC, CBSE Class 12"),
		field.Int("target_score").
			Default(0),
		field.Int("streak_count").
			Default(0).
			Comment("Consecutive days with a submitted paper"),
		field.String("zone").
			Default("Borderline").
			Comment("Safe, Borderline, or Danger"),
		field.Time("exam_date").
			Default(time.Now),
		field.String("group_id").
			Default("").
			Comment("Study group code; empty when solo"),
		field.String("region").
			Default(""),
		field.String("target_level").
			Default("National").
			Comment("National, State, or Board"),
	}
}
