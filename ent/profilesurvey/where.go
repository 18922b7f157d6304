// Code generated by ent, DO NOT EDIT.

package profilesurvey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/skillforge/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldUserID, v))
}

// Years applies equality check predicate on the "years" field. It's identical to YearsEQ.
func Years(v int) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldYears, v))
}

// JobRole applies equality check predicate on the "job_role" field. It's identical to JobRoleEQ.
func JobRole(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldJobRole, v))
}

// Duty applies equality check predicate on the "duty" field. It's identical to DutyEQ.
func Duty(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldDuty, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldSubmittedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldContainsFold(FieldUserID, v))
}

// SelfLevelEQ applies the EQ predicate on the "self_level" field.
func SelfLevelEQ(v SelfLevel) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldSelfLevel, v))
}

// SelfLevelNEQ applies the NEQ predicate on the "self_level" field.
func SelfLevelNEQ(v SelfLevel) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNEQ(FieldSelfLevel, v))
}

// SelfLevelIn applies the In predicate on the "self_level" field.
func SelfLevelIn(vs ...SelfLevel) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldIn(FieldSelfLevel, vs...))
}

// SelfLevelNotIn applies the NotIn predicate on the "self_level" field.
func SelfLevelNotIn(vs ...SelfLevel) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNotIn(FieldSelfLevel, vs...))
}

// YearsEQ applies the EQ predicate on the "years" field.
func YearsEQ(v int) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldYears, v))
}

// YearsNEQ applies the NEQ predicate on the "years" field.
func YearsNEQ(v int) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNEQ(FieldYears, v))
}

// YearsIn applies the In predicate on the "years" field.
func YearsIn(vs ...int) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldIn(FieldYears, vs...))
}

// YearsNotIn applies the NotIn predicate on the "years" field.
func YearsNotIn(vs ...int) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNotIn(FieldYears, vs...))
}

// YearsGT applies the GT predicate on the "years" field.
func YearsGT(v int) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGT(FieldYears, v))
}

// YearsGTE applies the GTE predicate on the "years" field.
func YearsGTE(v int) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGTE(FieldYears, v))
}

// YearsLT applies the LT predicate on the "years" field.
func YearsLT(v int) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLT(FieldYears, v))
}

// YearsLTE applies the LTE predicate on the "years" field.
func YearsLTE(v int) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLTE(FieldYears, v))
}

// JobRoleEQ applies the EQ predicate on the "job_role" field.
func JobRoleEQ(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldJobRole, v))
}

// JobRoleNEQ applies the NEQ predicate on the "job_role" field.
func JobRoleNEQ(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNEQ(FieldJobRole, v))
}

// JobRoleIn applies the In predicate on the "job_role" field.
func JobRoleIn(vs ...string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldIn(FieldJobRole, vs...))
}

// JobRoleNotIn applies the NotIn predicate on the "job_role" field.
func JobRoleNotIn(vs ...string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNotIn(FieldJobRole, vs...))
}

// JobRoleGT applies the GT predicate on the "job_role" field.
func JobRoleGT(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGT(FieldJobRole, v))
}

// JobRoleGTE applies the GTE predicate on the "job_role" field.
func JobRoleGTE(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGTE(FieldJobRole, v))
}

// JobRoleLT applies the LT predicate on the "job_role" field.
func JobRoleLT(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLT(FieldJobRole, v))
}

// JobRoleLTE applies the LTE predicate on the "job_role" field.
func JobRoleLTE(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLTE(FieldJobRole, v))
}

// JobRoleContains applies the Contains predicate on the "job_role" field.
func JobRoleContains(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldContains(FieldJobRole, v))
}

// JobRoleHasPrefix applies the HasPrefix predicate on the "job_role" field.
func JobRoleHasPrefix(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldHasPrefix(FieldJobRole, v))
}

// JobRoleHasSuffix applies the HasSuffix predicate on the "job_role" field.
func JobRoleHasSuffix(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldHasSuffix(FieldJobRole, v))
}

// JobRoleIsNil applies the IsNil predicate on the "job_role" field.
func JobRoleIsNil() predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldIsNull(FieldJobRole))
}

// JobRoleNotNil applies the NotNil predicate on the "job_role" field.
func JobRoleNotNil() predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNotNull(FieldJobRole))
}

// JobRoleEqualFold applies the EqualFold predicate on the "job_role" field.
func JobRoleEqualFold(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEqualFold(FieldJobRole, v))
}

// JobRoleContainsFold applies the ContainsFold predicate on the "job_role" field.
func JobRoleContainsFold(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldContainsFold(FieldJobRole, v))
}

// DutyEQ applies the EQ predicate on the "duty" field.
func DutyEQ(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldDuty, v))
}

// DutyNEQ applies the NEQ predicate on the "duty" field.
func DutyNEQ(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNEQ(FieldDuty, v))
}

// DutyIn applies the In predicate on the "duty" field.
func DutyIn(vs ...string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldIn(FieldDuty, vs...))
}

// DutyNotIn applies the NotIn predicate on the "duty" field.
func DutyNotIn(vs ...string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNotIn(FieldDuty, vs...))
}

// DutyGT applies the GT predicate on the "duty" field.
func DutyGT(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGT(FieldDuty, v))
}

// DutyGTE applies the GTE predicate on the "duty" field.
func DutyGTE(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGTE(FieldDuty, v))
}

// DutyLT applies the LT predicate on the "duty" field.
func DutyLT(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLT(FieldDuty, v))
}

// DutyLTE applies the LTE predicate on the "duty" field.
func DutyLTE(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLTE(FieldDuty, v))
}

// DutyContains applies the Contains predicate on the "duty" field.
func DutyContains(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldContains(FieldDuty, v))
}

// DutyHasPrefix applies the HasPrefix predicate on the "duty" field.
func DutyHasPrefix(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldHasPrefix(FieldDuty, v))
}

// DutyHasSuffix applies the HasSuffix predicate on the "duty" field.
func DutyHasSuffix(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldHasSuffix(FieldDuty, v))
}

// DutyIsNil applies the IsNil predicate on the "duty" field.
func DutyIsNil() predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldIsNull(FieldDuty))
}

// DutyNotNil applies the NotNil predicate on the "duty" field.
func DutyNotNil() predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNotNull(FieldDuty))
}

// DutyEqualFold applies the EqualFold predicate on the "duty" field.
func DutyEqualFold(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEqualFold(FieldDuty, v))
}

// DutyContainsFold applies the ContainsFold predicate on the "duty" field.
func DutyContainsFold(v string) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldContainsFold(FieldDuty, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.FieldLTE(FieldSubmittedAt, v))
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.ProfileSurvey {
	return predicate.ProfileSurvey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.AssessmentSession) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProfileSurvey) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProfileSurvey) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProfileSurvey) predicate.ProfileSurvey {
	return predicate.ProfileSurvey(sql.NotPredicates(p))
}
