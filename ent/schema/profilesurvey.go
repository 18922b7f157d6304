package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProfileSurvey holds the schema definition for the ProfileSurvey entity.
// A survey is immutable once submitted; a re-take creates a new row.
type ProfileSurvey struct {
	ent.Schema
}

// Fields of the ProfileSurvey.
func (ProfileSurvey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("survey_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable().
			Comment("Opaque identity owned by the auth collaborator"),
		field.Enum("self_level").
			Values("beginner", "intermediate", "advanced").
			Immutable(),
		field.Int("years").
			Min(0).
			Immutable(),
		field.String("job_role").
			Optional().
			Immutable(),
		field.String("duty").
			Optional().
			Immutable(),
		field.JSON("interests", []string{}).
			Immutable().
			Comment("Interest tags used as the category pool"),
		field.Time("submitted_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ProfileSurvey.
func (ProfileSurvey) Edges() []ent.Edge {
	return []ent.Edge{
		// Sessions reference a survey; they are not owned by it,
		// so deleting a survey is not cascaded.
		edge.To("sessions", AssessmentSession.Type),
	}
}

// Indexes of the ProfileSurvey.
func (ProfileSurvey) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "submitted_at"),
	}
}
