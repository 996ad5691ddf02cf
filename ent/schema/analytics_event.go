package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalyticsEvent is the local sink for product usage events. Fields
// beyond the name are optional; each event kind fills its own subset.
type AnalyticsEvent struct {
	ent.Schema
}

func (AnalyticsEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalyticsEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Event name, e.g. assessment_start"),
		field.String("user_id").
			Optional(),
		field.String("assessment_id").
			Optional(),
		field.String("subject").
			Optional(),
		field.Float("percentage").
			Default(0),
		field.Int("duration_minutes").
			Default(0),
		field.String("method").
			Optional().
			Comment("Auth method for login/sign_up events"),
	}
}

func (AnalyticsEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("user_id"),
	}
}
