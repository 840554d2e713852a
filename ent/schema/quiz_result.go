package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResult records a single graded quiz attempt. Rows are append-only;
// history is never rewritten.
type QuizResult struct {
	ent.Schema
}

func (QuizResult) Mixin() []ent.Mixin {
	return []ent.Mixin{TimestampMixin{}}
}

func (QuizResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("language").NotEmpty(),
		field.String("topic_id").NotEmpty(),
		field.Float("score").
			Comment("Points earned"),
		field.Float("max_score").
			Comment("Points available"),
		field.Float("percentage").
			Comment("score/max_score as 0-100"),
		field.Bool("passed"),
		field.Int("attempt").
			Default(1).
			Comment("1-based attempt number for this topic"),
		field.Int("duration_secs").
			Default(0),
		field.JSON("answers", map[string]string{}).
			Optional().
			Comment("Submitted answers keyed by question id"),
	}
}

func (QuizResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "language", "topic_id"),
		index.Fields("passed"),
	}
}
