package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptAnswer holds the schema definition for the AttemptAnswer entity.
// One row per (session, question); autosave upserts into it.
type AttemptAnswer struct {
	ent.Schema
}

// Fields of the AttemptAnswer.
func (AttemptAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("answer_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("question_id").
			Immutable(),
		field.JSON("user_answer", map[string]interface{}{}).
			Comment("Stored as JSON without interpretation"),
		field.Int64("response_time_ms").
			Min(0),
		field.Bool("is_correct").
			Optional().
			Nillable().
			Comment("Null until scored"),
		field.Float("score").
			Optional().
			Nillable().
			Min(0).
			Max(100).
			Comment("Final score after time penalty; null until scored"),
		field.Time("saved_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AttemptAnswer.
func (AttemptAnswer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AssessmentSession.Type).
			Ref("attempt_answers").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AttemptAnswer.
func (AttemptAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question_id").
			Unique(),
	}
}
