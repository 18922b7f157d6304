// Code generated by ent, DO NOT EDIT.

package roundresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/skillforge/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldSessionID, v))
}

// RoundIndex applies equality check predicate on the "round_index" field. It's identical to RoundIndexEQ.
func RoundIndex(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldRoundIndex, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldScore, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldCorrectCount, v))
}

// TotalCount applies equality check predicate on the "total_count" field. It's identical to TotalCountEQ.
func TotalCount(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldTotalCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldContainsFold(FieldSessionID, v))
}

// RoundIndexEQ applies the EQ predicate on the "round_index" field.
func RoundIndexEQ(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldRoundIndex, v))
}

// RoundIndexNEQ applies the NEQ predicate on the "round_index" field.
func RoundIndexNEQ(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNEQ(FieldRoundIndex, v))
}

// RoundIndexIn applies the In predicate on the "round_index" field.
func RoundIndexIn(vs ...int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldIn(FieldRoundIndex, vs...))
}

// RoundIndexNotIn applies the NotIn predicate on the "round_index" field.
func RoundIndexNotIn(vs ...int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNotIn(FieldRoundIndex, vs...))
}

// RoundIndexGT applies the GT predicate on the "round_index" field.
func RoundIndexGT(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGT(FieldRoundIndex, v))
}

// RoundIndexGTE applies the GTE predicate on the "round_index" field.
func RoundIndexGTE(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGTE(FieldRoundIndex, v))
}

// RoundIndexLT applies the LT predicate on the "round_index" field.
func RoundIndexLT(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLT(FieldRoundIndex, v))
}

// RoundIndexLTE applies the LTE predicate on the "round_index" field.
func RoundIndexLTE(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLTE(FieldRoundIndex, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLTE(FieldScore, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLTE(FieldCorrectCount, v))
}

// TotalCountEQ applies the EQ predicate on the "total_count" field.
func TotalCountEQ(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldTotalCount, v))
}

// TotalCountNEQ applies the NEQ predicate on the "total_count" field.
func TotalCountNEQ(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNEQ(FieldTotalCount, v))
}

// TotalCountIn applies the In predicate on the "total_count" field.
func TotalCountIn(vs ...int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldIn(FieldTotalCount, vs...))
}

// TotalCountNotIn applies the NotIn predicate on the "total_count" field.
func TotalCountNotIn(vs ...int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNotIn(FieldTotalCount, vs...))
}

// TotalCountGT applies the GT predicate on the "total_count" field.
func TotalCountGT(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGT(FieldTotalCount, v))
}

// TotalCountGTE applies the GTE predicate on the "total_count" field.
func TotalCountGTE(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGTE(FieldTotalCount, v))
}

// TotalCountLT applies the LT predicate on the "total_count" field.
func TotalCountLT(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLT(FieldTotalCount, v))
}

// TotalCountLTE applies the LTE predicate on the "total_count" field.
func TotalCountLTE(v int) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLTE(FieldTotalCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoundResult {
	return predicate.RoundResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.RoundResult {
	return predicate.RoundResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.AssessmentSession) predicate.RoundResult {
	return predicate.RoundResult(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoundResult) predicate.RoundResult {
	return predicate.RoundResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoundResult) predicate.RoundResult {
	return predicate.RoundResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoundResult) predicate.RoundResult {
	return predicate.RoundResult(sql.NotPredicates(p))
}
