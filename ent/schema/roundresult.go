package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundResult holds the schema definition for the RoundResult entity.
// Exists iff the round has been scored; exactly one per session.
type RoundResult struct {
	ent.Schema
}

// Fields of the RoundResult.
func (RoundResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique().
			Immutable(),
		field.Int("round_index").
			Min(1).
			Immutable(),
		field.Float("score").
			Min(0).
			Max(100).
			Immutable(),
		field.Int("correct_count").
			Min(0).
			Immutable(),
		field.Int("total_count").
			Min(0).
			Immutable(),
		field.JSON("wrong_categories", map[string]int{}).
			Comment("category -> count of questions answered wrong"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RoundResult.
func (RoundResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AssessmentSession.Type).
			Ref("round_result").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RoundResult.
func (RoundResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_index"),
	}
}
