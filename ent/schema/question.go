package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/skillforge/skillforge/pkg/models"
)

// Question holds the schema definition for the Question entity.
// A question belongs to exactly one session and is never moved.
type Question struct {
	ent.Schema
}

// Fields of the Question.
func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("question_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("ordinal").
			Min(1).
			Immutable(),
		field.Enum("item_type").
			Values("multiple_choice", "true_false", "short_answer").
			Immutable(),
		field.Text("stem").
			NotEmpty().
			Immutable(),
		field.JSON("choices", []string{}).
			Optional().
			Comment("Non-empty iff item_type=multiple_choice"),
		field.JSON("answer_schema", models.AnswerSchema{}).
			Comment("Canonical {kind, payload, explanation?, source_format}"),
		field.Int("difficulty").
			Min(1).
			Max(10).
			Immutable(),
		field.String("category").
			NotEmpty().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Question.
func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", AssessmentSession.Type).
			Ref("questions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Question.
func (Question) Indexes() []ent.Index {
	return []ent.Index{
		// save_generated_question is idempotent on (session, ordinal).
		index.Fields("session_id", "ordinal").
			Unique(),
	}
}
