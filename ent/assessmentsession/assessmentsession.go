// Code generated by ent, DO NOT EDIT.

package assessmentsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the assessmentsession type in the database.
	Label = "assessment_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSurveyID holds the string denoting the survey_id field in the database.
	FieldSurveyID = "survey_id"
	// FieldRoundIndex holds the string denoting the round_index field in the database.
	FieldRoundIndex = "round_index"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTimeLimitMs holds the string denoting the time_limit_ms field in the database.
	FieldTimeLimitMs = "time_limit_ms"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldPausedAt holds the string denoting the paused_at field in the database.
	FieldPausedAt = "paused_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSurvey holds the string denoting the survey edge name in mutations.
	EdgeSurvey = "survey"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// EdgeAttemptAnswers holds the string denoting the attempt_answers edge name in mutations.
	EdgeAttemptAnswers = "attempt_answers"
	// EdgeRoundResult holds the string denoting the round_result edge name in mutations.
	EdgeRoundResult = "round_result"
	// ProfileSurveyFieldID holds the string denoting the ID field of the ProfileSurvey.
	ProfileSurveyFieldID = "survey_id"
	// QuestionFieldID holds the string denoting the ID field of the Question.
	QuestionFieldID = "question_id"
	// AttemptAnswerFieldID holds the string denoting the ID field of the AttemptAnswer.
	AttemptAnswerFieldID = "answer_id"
	// RoundResultFieldID holds the string denoting the ID field of the RoundResult.
	RoundResultFieldID = "result_id"
	// Table holds the table name of the assessmentsession in the database.
	Table = "assessment_sessions"
	// SurveyTable is the table that holds the survey relation/edge.
	SurveyTable = "assessment_sessions"
	// SurveyInverseTable is the table name for the ProfileSurvey entity.
	// It exists in this package in order to avoid circular dependency with the "profilesurvey" package.
	SurveyInverseTable = "profile_surveys"
	// SurveyColumn is the table column denoting the survey relation/edge.
	SurveyColumn = "survey_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "questions"
	// QuestionsInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionsInverseTable = "questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "session_id"
	// AttemptAnswersTable is the table that holds the attempt_answers relation/edge.
	AttemptAnswersTable = "attempt_answers"
	// AttemptAnswersInverseTable is the table name for the AttemptAnswer entity.
	// It exists in this package in order to avoid circular dependency with the "attemptanswer" package.
	AttemptAnswersInverseTable = "attempt_answers"
	// AttemptAnswersColumn is the table column denoting the attempt_answers relation/edge.
	AttemptAnswersColumn = "session_id"
	// RoundResultTable is the table that holds the round_result relation/edge.
	RoundResultTable = "round_results"
	// RoundResultInverseTable is the table name for the RoundResult entity.
	// It exists in this package in order to avoid circular dependency with the "roundresult" package.
	RoundResultInverseTable = "round_results"
	// RoundResultColumn is the table column denoting the round_result relation/edge.
	RoundResultColumn = "session_id"
)

// Columns holds all SQL columns for assessmentsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSurveyID,
	FieldRoundIndex,
	FieldStatus,
	FieldTimeLimitMs,
	FieldStartedAt,
	FieldPausedAt,
	FieldCreatedAt,
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
	// RoundIndexValidator is a validator for the "round_index" field. It is called by the builders before save.
	RoundIndexValidator func(int) error
	// TimeLimitMsValidator is a validator for the "time_limit_ms" field. It is called by the builders before save.
	TimeLimitMsValidator func(int64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusPaused, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("assessmentsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AssessmentSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySurveyID orders the results by the survey_id field.
func BySurveyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurveyID, opts...).ToFunc()
}

// ByRoundIndex orders the results by the round_index field.
func ByRoundIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundIndex, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTimeLimitMs orders the results by the time_limit_ms field.
func ByTimeLimitMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimitMs, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByPausedAt orders the results by the paused_at field.
func ByPausedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPausedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySurveyField orders the results by survey field.
func BySurveyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSurveyStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttemptAnswersCount orders the results by attempt_answers count.
func ByAttemptAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptAnswersStep(), opts...)
	}
}

// ByAttemptAnswers orders the results by attempt_answers terms.
func ByAttemptAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRoundResultField orders the results by round_result field.
func ByRoundResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoundResultStep(), sql.OrderByField(field, opts...))
	}
}
func newSurveyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SurveyInverseTable, ProfileSurveyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SurveyTable, SurveyColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, QuestionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
func newAttemptAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptAnswersInverseTable, AttemptAnswerFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptAnswersTable, AttemptAnswersColumn),
	)
}
func newRoundResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoundResultInverseTable, RoundResultFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, RoundResultTable, RoundResultColumn),
	)
}
