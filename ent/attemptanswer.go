// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/attemptanswer"
)

// AttemptAnswer is the model entity for the AttemptAnswer schema.
type AttemptAnswer struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Stored as JSON without interpretation
	UserAnswer map[string]interface{} `json:"user_answer,omitempty"`
	// ResponseTimeMs holds the value of the "response_time_ms" field.
	ResponseTimeMs int64 `json:"response_time_ms,omitempty"`
	// Null until scored
	IsCorrect *bool `json:"is_correct,omitempty"`
	// Final score after time penalty; null until scored
	Score *float64 `json:"score,omitempty"`
	// SavedAt holds the value of the "saved_at" field.
	SavedAt time.Time `json:"saved_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AttemptAnswerQuery when eager-loading is set.
	Edges        AttemptAnswerEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AttemptAnswerEdges holds the relations/edges for other nodes in the graph.
type AttemptAnswerEdges struct {
	// Session holds the value of the session edge.
	Session *AssessmentSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AttemptAnswerEdges) SessionOrErr() (*AssessmentSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: assessmentsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptAnswer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptanswer.FieldUserAnswer:
			values[i] = new([]byte)
		case attemptanswer.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case attemptanswer.FieldScore:
			values[i] = new(sql.NullFloat64)
		case attemptanswer.FieldResponseTimeMs:
			values[i] = new(sql.NullInt64)
		case attemptanswer.FieldID, attemptanswer.FieldSessionID, attemptanswer.FieldQuestionID:
			values[i] = new(sql.NullString)
		case attemptanswer.FieldSavedAt, attemptanswer.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptAnswer fields.
func (_m *AttemptAnswer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptanswer.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case attemptanswer.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case attemptanswer.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case attemptanswer.FieldUserAnswer:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UserAnswer); err != nil {
					return fmt.Errorf("unmarshal field user_answer: %w", err)
				}
			}
		case attemptanswer.FieldResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ms", values[i])
			} else if value.Valid {
				_m.ResponseTimeMs = value.Int64
			}
		case attemptanswer.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = new(bool)
				*_m.IsCorrect = value.Bool
			}
		case attemptanswer.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(float64)
				*_m.Score = value.Float64
			}
		case attemptanswer.FieldSavedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field saved_at", values[i])
			} else if value.Valid {
				_m.SavedAt = value.Time
			}
		case attemptanswer.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptAnswer.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptAnswer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the AttemptAnswer entity.
func (_m *AttemptAnswer) QuerySession() *AssessmentSessionQuery {
	return NewAttemptAnswerClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this AttemptAnswer.
// Note that you need to call AttemptAnswer.Unwrap() before calling this method if this AttemptAnswer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptAnswer) Update() *AttemptAnswerUpdateOne {
	return NewAttemptAnswerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptAnswer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptAnswer) Unwrap() *AttemptAnswer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptAnswer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptAnswer) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptAnswer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("user_answer=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserAnswer))
	builder.WriteString(", ")
	builder.WriteString("response_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTimeMs))
	builder.WriteString(", ")
	if v := _m.IsCorrect; v != nil {
		builder.WriteString("is_correct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("saved_at=")
	builder.WriteString(_m.SavedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AttemptAnswers is a parsable slice of AttemptAnswer.
type AttemptAnswers []*AttemptAnswer
