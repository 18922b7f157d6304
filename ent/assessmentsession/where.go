// Code generated by ent, DO NOT EDIT.

package assessmentsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/skillforge/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldUserID, v))
}

// SurveyID applies equality check predicate on the "survey_id" field. It's identical to SurveyIDEQ.
func SurveyID(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldSurveyID, v))
}

// RoundIndex applies equality check predicate on the "round_index" field. It's identical to RoundIndexEQ.
func RoundIndex(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldRoundIndex, v))
}

// TimeLimitMs applies equality check predicate on the "time_limit_ms" field. It's identical to TimeLimitMsEQ.
func TimeLimitMs(v int64) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldTimeLimitMs, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldStartedAt, v))
}

// PausedAt applies equality check predicate on the "paused_at" field. It's identical to PausedAtEQ.
func PausedAt(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldPausedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldUserID, v))
}

// SurveyIDEQ applies the EQ predicate on the "survey_id" field.
func SurveyIDEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldSurveyID, v))
}

// SurveyIDNEQ applies the NEQ predicate on the "survey_id" field.
func SurveyIDNEQ(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldSurveyID, v))
}

// SurveyIDIn applies the In predicate on the "survey_id" field.
func SurveyIDIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldSurveyID, vs...))
}

// SurveyIDNotIn applies the NotIn predicate on the "survey_id" field.
func SurveyIDNotIn(vs ...string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldSurveyID, vs...))
}

// SurveyIDGT applies the GT predicate on the "survey_id" field.
func SurveyIDGT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldSurveyID, v))
}

// SurveyIDGTE applies the GTE predicate on the "survey_id" field.
func SurveyIDGTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldSurveyID, v))
}

// SurveyIDLT applies the LT predicate on the "survey_id" field.
func SurveyIDLT(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldSurveyID, v))
}

// SurveyIDLTE applies the LTE predicate on the "survey_id" field.
func SurveyIDLTE(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldSurveyID, v))
}

// SurveyIDContains applies the Contains predicate on the "survey_id" field.
func SurveyIDContains(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContains(FieldSurveyID, v))
}

// SurveyIDHasPrefix applies the HasPrefix predicate on the "survey_id" field.
func SurveyIDHasPrefix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasPrefix(FieldSurveyID, v))
}

// SurveyIDHasSuffix applies the HasSuffix predicate on the "survey_id" field.
func SurveyIDHasSuffix(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldHasSuffix(FieldSurveyID, v))
}

// SurveyIDEqualFold applies the EqualFold predicate on the "survey_id" field.
func SurveyIDEqualFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEqualFold(FieldSurveyID, v))
}

// SurveyIDContainsFold applies the ContainsFold predicate on the "survey_id" field.
func SurveyIDContainsFold(v string) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldContainsFold(FieldSurveyID, v))
}

// RoundIndexEQ applies the EQ predicate on the "round_index" field.
func RoundIndexEQ(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldRoundIndex, v))
}

// RoundIndexNEQ applies the NEQ predicate on the "round_index" field.
func RoundIndexNEQ(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldRoundIndex, v))
}

// RoundIndexIn applies the In predicate on the "round_index" field.
func RoundIndexIn(vs ...int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldRoundIndex, vs...))
}

// RoundIndexNotIn applies the NotIn predicate on the "round_index" field.
func RoundIndexNotIn(vs ...int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldRoundIndex, vs...))
}

// RoundIndexGT applies the GT predicate on the "round_index" field.
func RoundIndexGT(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldRoundIndex, v))
}

// RoundIndexGTE applies the GTE predicate on the "round_index" field.
func RoundIndexGTE(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldRoundIndex, v))
}

// RoundIndexLT applies the LT predicate on the "round_index" field.
func RoundIndexLT(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldRoundIndex, v))
}

// RoundIndexLTE applies the LTE predicate on the "round_index" field.
func RoundIndexLTE(v int) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldRoundIndex, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldStatus, vs...))
}

// TimeLimitMsEQ applies the EQ predicate on the "time_limit_ms" field.
func TimeLimitMsEQ(v int64) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldTimeLimitMs, v))
}

// TimeLimitMsNEQ applies the NEQ predicate on the "time_limit_ms" field.
func TimeLimitMsNEQ(v int64) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldTimeLimitMs, v))
}

// TimeLimitMsIn applies the In predicate on the "time_limit_ms" field.
func TimeLimitMsIn(vs ...int64) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldTimeLimitMs, vs...))
}

// TimeLimitMsNotIn applies the NotIn predicate on the "time_limit_ms" field.
func TimeLimitMsNotIn(vs ...int64) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldTimeLimitMs, vs...))
}

// TimeLimitMsGT applies the GT predicate on the "time_limit_ms" field.
func TimeLimitMsGT(v int64) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldTimeLimitMs, v))
}

// TimeLimitMsGTE applies the GTE predicate on the "time_limit_ms" field.
func TimeLimitMsGTE(v int64) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldTimeLimitMs, v))
}

// TimeLimitMsLT applies the LT predicate on the "time_limit_ms" field.
func TimeLimitMsLT(v int64) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldTimeLimitMs, v))
}

// TimeLimitMsLTE applies the LTE predicate on the "time_limit_ms" field.
func TimeLimitMsLTE(v int64) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldTimeLimitMs, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotNull(FieldStartedAt))
}

// PausedAtEQ applies the EQ predicate on the "paused_at" field.
func PausedAtEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldPausedAt, v))
}

// PausedAtNEQ applies the NEQ predicate on the "paused_at" field.
func PausedAtNEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldPausedAt, v))
}

// PausedAtIn applies the In predicate on the "paused_at" field.
func PausedAtIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldPausedAt, vs...))
}

// PausedAtNotIn applies the NotIn predicate on the "paused_at" field.
func PausedAtNotIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldPausedAt, vs...))
}

// PausedAtGT applies the GT predicate on the "paused_at" field.
func PausedAtGT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldPausedAt, v))
}

// PausedAtGTE applies the GTE predicate on the "paused_at" field.
func PausedAtGTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldPausedAt, v))
}

// PausedAtLT applies the LT predicate on the "paused_at" field.
func PausedAtLT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldPausedAt, v))
}

// PausedAtLTE applies the LTE predicate on the "paused_at" field.
func PausedAtLTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldPausedAt, v))
}

// PausedAtIsNil applies the IsNil predicate on the "paused_at" field.
func PausedAtIsNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIsNull(FieldPausedAt))
}

// PausedAtNotNil applies the NotNil predicate on the "paused_at" field.
func PausedAtNotNil() predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotNull(FieldPausedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSurvey applies the HasEdge predicate on the "survey" edge.
func HasSurvey() predicate.AssessmentSession {
	return predicate.AssessmentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SurveyTable, SurveyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSurveyWith applies the HasEdge predicate on the "survey" edge with a given conditions (other predicates).
func HasSurveyWith(preds ...predicate.ProfileSurvey) predicate.AssessmentSession {
	return predicate.AssessmentSession(func(s *sql.Selector) {
		step := newSurveyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.AssessmentSession {
	return predicate.AssessmentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.AssessmentSession {
	return predicate.AssessmentSession(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttemptAnswers applies the HasEdge predicate on the "attempt_answers" edge.
func HasAttemptAnswers() predicate.AssessmentSession {
	return predicate.AssessmentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptAnswersTable, AttemptAnswersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptAnswersWith applies the HasEdge predicate on the "attempt_answers" edge with a given conditions (other predicates).
func HasAttemptAnswersWith(preds ...predicate.AttemptAnswer) predicate.AssessmentSession {
	return predicate.AssessmentSession(func(s *sql.Selector) {
		step := newAttemptAnswersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRoundResult applies the HasEdge predicate on the "round_result" edge.
func HasRoundResult() predicate.AssessmentSession {
	return predicate.AssessmentSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, RoundResultTable, RoundResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoundResultWith applies the HasEdge predicate on the "round_result" edge with a given conditions (other predicates).
func HasRoundResultWith(preds ...predicate.RoundResult) predicate.AssessmentSession {
	return predicate.AssessmentSession(func(s *sql.Selector) {
		step := newRoundResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentSession) predicate.AssessmentSession {
	return predicate.AssessmentSession(sql.NotPredicates(p))
}
