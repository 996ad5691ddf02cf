package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent records one completed assessment attempt. Guest attempts
// are recorded too; only the durable progress document skips them.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("result_id").
			NotEmpty().
			Comment("UUID of the scored result"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner id or the guest sentinel"),
		field.String("assessment_id").
			NotEmpty(),
		field.String("subject").
			NotEmpty(),
		field.Int("score").
			Default(0).
			Comment("Count of correct answers"),
		field.Float("percentage").
			Default(0),
		field.Int("pisa_projection").
			Default(0),
		field.Int("duration_minutes").
			Default(0),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("assessment_id"),
		index.Fields("subject"),
	}
}
