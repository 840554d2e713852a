package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement records an unlocked badge. A user holds at most one row
// per achievement key; awarding is insert-if-absent.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("key").
			NotEmpty().
			Comment("Stable catalog key, e.g. first_topic"),
		field.String("name").NotEmpty(),
		field.String("description").NotEmpty(),
		field.String("category").
			NotEmpty().
			Comment("learning, quiz, streak, or mastery"),
		field.Int("points").
			Default(0),
		field.String("language").
			Optional().
			Comment("Set for language-specific achievements"),
		field.Time("unlocked_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "key").Unique(),
		index.Fields("category"),
	}
}
