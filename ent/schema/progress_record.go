package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord is the durable record of a user's interaction with a
// topic. One row per (user, language, topic); created on first access
// and updated in place afterwards.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{TimestampMixin{}}
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Owning user"),
		field.String("language").
			NotEmpty().
			Comment("Language the topic belongs to"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic within the language"),
		field.String("status").
			Default("in_progress").
			Comment("in_progress or completed"),
		field.Float("completion").
			Default(0).
			Comment("Completion percentage, 0-100"),
		field.Float("best_score").
			Default(0).
			Comment("Best quiz score percentage for this topic"),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Accumulated study time; never decreases"),
		field.Int("attempts").
			Default(0).
			Comment("Quiz attempts on this topic"),
		field.Bool("completed").
			Default(false),
		field.Time("last_accessed").
			Comment("Most recent interaction; only moves forward"),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "language", "topic_id").Unique(),
		index.Fields("user_id", "language"),
		index.Fields("status"),
	}
}
