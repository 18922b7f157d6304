package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentSession holds the schema definition for the AssessmentSession
// entity — one round's worth of testing for one user. Once completed the row
// is terminal: neither questions nor answers may be added or mutated.
type AssessmentSession struct {
	ent.Schema
}

// Fields of the AssessmentSession.
func (AssessmentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("survey_id").
			Immutable(),
		field.Int("round_index").
			Min(1).
			Immutable(),
		field.Enum("status").
			Values("in_progress", "paused", "completed").
			Default("in_progress"),
		field.Int64("time_limit_ms").
			Positive(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("Set by the first autosave, not by session open"),
		field.Time("paused_at").
			Optional().
			Nillable().
			Comment("Set iff status=paused"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AssessmentSession.
func (AssessmentSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("survey", ProfileSurvey.Type).
			Ref("sessions").
			Field("survey_id").
			Unique().
			Required().
			Immutable(),
		edge.To("questions", Question.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("attempt_answers", AttemptAnswer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("round_result", RoundResult.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AssessmentSession.
func (AssessmentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
		index.Fields("user_id", "created_at"),
		index.Fields("status", "created_at"),
	}
}
