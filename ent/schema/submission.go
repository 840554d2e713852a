package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Submission records one code-execution run: the code sent to the
// external runtime and what came back.
type Submission struct {
	ent.Schema
}

func (Submission) Mixin() []ent.Mixin {
	return []ent.Mixin{TimestampMixin{}}
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable().
			Comment("Stable identifier for this run"),
		field.String("user_id").NotEmpty(),
		field.String("language").NotEmpty(),
		field.String("topic_id").
			Optional().
			Comment("Topic the code was written for, if any"),
		field.Text("code").NotEmpty(),
		field.String("status").
			NotEmpty().
			Comment("ok, error, or timeout"),
		field.Text("output").
			Optional(),
		field.Text("error_output").
			Optional(),
		field.Int64("duration_ms").
			Default(0),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "language"),
		index.Fields("status"),
	}
}
