// Code generated by ent, DO NOT EDIT.

package profilesurvey

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the profilesurvey type in the database.
	Label = "profile_survey"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "survey_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSelfLevel holds the string denoting the self_level field in the database.
	FieldSelfLevel = "self_level"
	// FieldYears holds the string denoting the years field in the database.
	FieldYears = "years"
	// FieldJobRole holds the string denoting the job_role field in the database.
	FieldJobRole = "job_role"
	// FieldDuty holds the string denoting the duty field in the database.
	FieldDuty = "duty"
	// FieldInterests holds the string denoting the interests field in the database.
	FieldInterests = "interests"
	// FieldSubmittedAt holds the string denoting the submitted_at field in the database.
	FieldSubmittedAt = "submitted_at"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// AssessmentSessionFieldID holds the string denoting the ID field of the AssessmentSession.
	AssessmentSessionFieldID = "session_id"
	// Table holds the table name of the profilesurvey in the database.
	Table = "profile_surveys"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "assessment_sessions"
	// SessionsInverseTable is the table name for the AssessmentSession entity.
	// It exists in this package in order to avoid circular dependency with the "assessmentsession" package.
	SessionsInverseTable = "assessment_sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "survey_id"
)

// Columns holds all SQL columns for profilesurvey fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSelfLevel,
	FieldYears,
	FieldJobRole,
	FieldDuty,
	FieldInterests,
	FieldSubmittedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// YearsValidator is a validator for the "years" field. It is called by the builders before save.
	YearsValidator func(int) error
	// DefaultSubmittedAt holds the default value on creation for the "submitted_at" field.
	DefaultSubmittedAt func() time.Time
)

// SelfLevel defines the type for the "self_level" enum field.
type SelfLevel string

// SelfLevel values.
const (
	SelfLevelBeginner     SelfLevel = "beginner"
	SelfLevelIntermediate SelfLevel = "intermediate"
	SelfLevelAdvanced     SelfLevel = "advanced"
)

func (sl SelfLevel) String() string {
	return string(sl)
}

// SelfLevelValidator is a validator for the "self_level" field enum values. It is called by the builders before save.
func SelfLevelValidator(sl SelfLevel) error {
	switch sl {
	case SelfLevelBeginner, SelfLevelIntermediate, SelfLevelAdvanced:
		return nil
	default:
		return fmt.Errorf("profilesurvey: invalid enum value for self_level field: %q", sl)
	}
}

// OrderOption defines the ordering options for the ProfileSurvey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySelfLevel orders the results by the self_level field.
func BySelfLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelfLevel, opts...).ToFunc()
}

// ByYears orders the results by the years field.
func ByYears(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYears, opts...).ToFunc()
}

// ByJobRole orders the results by the job_role field.
func ByJobRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobRole, opts...).ToFunc()
}

// ByDuty orders the results by the duty field.
func ByDuty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuty, opts...).ToFunc()
}

// BySubmittedAt orders the results by the submitted_at field.
func BySubmittedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedAt, opts...).ToFunc()
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, AssessmentSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
