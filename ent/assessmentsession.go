// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/profilesurvey"
	"github.com/skillforge/skillforge/ent/roundresult"
)

// AssessmentSession is the model entity for the AssessmentSession schema.
type AssessmentSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SurveyID holds the value of the "survey_id" field.
	SurveyID string `json:"survey_id,omitempty"`
	// RoundIndex holds the value of the "round_index" field.
	RoundIndex int `json:"round_index,omitempty"`
	// Status holds the value of the "status" field.
	Status assessmentsession.Status `json:"status,omitempty"`
	// TimeLimitMs holds the value of the "time_limit_ms" field.
	TimeLimitMs int64 `json:"time_limit_ms,omitempty"`
	// Set by the first autosave, not by session open
	StartedAt *time.Time `json:"started_at,omitempty"`
	// Set iff status=paused
	PausedAt *time.Time `json:"paused_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssessmentSessionQuery when eager-loading is set.
	Edges        AssessmentSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssessmentSessionEdges holds the relations/edges for other nodes in the graph.
type AssessmentSessionEdges struct {
	// Survey holds the value of the survey edge.
	Survey *ProfileSurvey `json:"survey,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// AttemptAnswers holds the value of the attempt_answers edge.
	AttemptAnswers []*AttemptAnswer `json:"attempt_answers,omitempty"`
	// RoundResult holds the value of the round_result edge.
	RoundResult *RoundResult `json:"round_result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// SurveyOrErr returns the Survey value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssessmentSessionEdges) SurveyOrErr() (*ProfileSurvey, error) {
	if e.Survey != nil {
		return e.Survey, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profilesurvey.Label}
	}
	return nil, &NotLoadedError{edge: "survey"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e AssessmentSessionEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// AttemptAnswersOrErr returns the AttemptAnswers value or an error if the edge
// was not loaded in eager-loading.
func (e AssessmentSessionEdges) AttemptAnswersOrErr() ([]*AttemptAnswer, error) {
	if e.loadedTypes[2] {
		return e.AttemptAnswers, nil
	}
	return nil, &NotLoadedError{edge: "attempt_answers"}
}

// RoundResultOrErr returns the RoundResult value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssessmentSessionEdges) RoundResultOrErr() (*RoundResult, error) {
	if e.RoundResult != nil {
		return e.RoundResult, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: roundresult.Label}
	}
	return nil, &NotLoadedError{edge: "round_result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentsession.FieldRoundIndex, assessmentsession.FieldTimeLimitMs:
			values[i] = new(sql.NullInt64)
		case assessmentsession.FieldID, assessmentsession.FieldUserID, assessmentsession.FieldSurveyID, assessmentsession.FieldStatus:
			values[i] = new(sql.NullString)
		case assessmentsession.FieldStartedAt, assessmentsession.FieldPausedAt, assessmentsession.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentSession fields.
func (_m *AssessmentSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case assessmentsession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case assessmentsession.FieldSurveyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field survey_id", values[i])
			} else if value.Valid {
				_m.SurveyID = value.String
			}
		case assessmentsession.FieldRoundIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round_index", values[i])
			} else if value.Valid {
				_m.RoundIndex = int(value.Int64)
			}
		case assessmentsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = assessmentsession.Status(value.String)
			}
		case assessmentsession.FieldTimeLimitMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit_ms", values[i])
			} else if value.Valid {
				_m.TimeLimitMs = value.Int64
			}
		case assessmentsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case assessmentsession.FieldPausedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paused_at", values[i])
			} else if value.Valid {
				_m.PausedAt = new(time.Time)
				*_m.PausedAt = value.Time
			}
		case assessmentsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentSession.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySurvey queries the "survey" edge of the AssessmentSession entity.
func (_m *AssessmentSession) QuerySurvey() *ProfileSurveyQuery {
	return NewAssessmentSessionClient(_m.config).QuerySurvey(_m)
}

// QueryQuestions queries the "questions" edge of the AssessmentSession entity.
func (_m *AssessmentSession) QueryQuestions() *QuestionQuery {
	return NewAssessmentSessionClient(_m.config).QueryQuestions(_m)
}

// QueryAttemptAnswers queries the "attempt_answers" edge of the AssessmentSession entity.
func (_m *AssessmentSession) QueryAttemptAnswers() *AttemptAnswerQuery {
	return NewAssessmentSessionClient(_m.config).QueryAttemptAnswers(_m)
}

// QueryRoundResult queries the "round_result" edge of the AssessmentSession entity.
func (_m *AssessmentSession) QueryRoundResult() *RoundResultQuery {
	return NewAssessmentSessionClient(_m.config).QueryRoundResult(_m)
}

// Update returns a builder for updating this AssessmentSession.
// Note that you need to call AssessmentSession.Unwrap() before calling this method if this AssessmentSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentSession) Update() *AssessmentSessionUpdateOne {
	return NewAssessmentSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentSession) Unwrap() *AssessmentSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentSession) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("survey_id=")
	builder.WriteString(_m.SurveyID)
	builder.WriteString(", ")
	builder.WriteString("round_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundIndex))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("time_limit_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeLimitMs))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PausedAt; v != nil {
		builder.WriteString("paused_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentSessions is a parsable slice of AssessmentSession.
type AssessmentSessions []*AssessmentSession
