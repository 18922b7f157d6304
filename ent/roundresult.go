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
	"github.com/skillforge/skillforge/ent/roundresult"
)

// RoundResult is the model entity for the RoundResult schema.
type RoundResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// RoundIndex holds the value of the "round_index" field.
	RoundIndex int `json:"round_index,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// TotalCount holds the value of the "total_count" field.
	TotalCount int `json:"total_count,omitempty"`
	// category -> count of questions answered wrong
	WrongCategories map[string]int `json:"wrong_categories,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RoundResultQuery when eager-loading is set.
	Edges        RoundResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RoundResultEdges holds the relations/edges for other nodes in the graph.
type RoundResultEdges struct {
	// Session holds the value of the session edge.
	Session *AssessmentSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RoundResultEdges) SessionOrErr() (*AssessmentSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: assessmentsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoundResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roundresult.FieldWrongCategories:
			values[i] = new([]byte)
		case roundresult.FieldScore:
			values[i] = new(sql.NullFloat64)
		case roundresult.FieldRoundIndex, roundresult.FieldCorrectCount, roundresult.FieldTotalCount:
			values[i] = new(sql.NullInt64)
		case roundresult.FieldID, roundresult.FieldSessionID:
			values[i] = new(sql.NullString)
		case roundresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoundResult fields.
func (_m *RoundResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roundresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case roundresult.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case roundresult.FieldRoundIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round_index", values[i])
			} else if value.Valid {
				_m.RoundIndex = int(value.Int64)
			}
		case roundresult.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case roundresult.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case roundresult.FieldTotalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_count", values[i])
			} else if value.Valid {
				_m.TotalCount = int(value.Int64)
			}
		case roundresult.FieldWrongCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field wrong_categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WrongCategories); err != nil {
					return fmt.Errorf("unmarshal field wrong_categories: %w", err)
				}
			}
		case roundresult.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RoundResult.
// This includes values selected through modifiers, order, etc.
func (_m *RoundResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the RoundResult entity.
func (_m *RoundResult) QuerySession() *AssessmentSessionQuery {
	return NewRoundResultClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this RoundResult.
// Note that you need to call RoundResult.Unwrap() before calling this method if this RoundResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoundResult) Update() *RoundResultUpdateOne {
	return NewRoundResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoundResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoundResult) Unwrap() *RoundResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoundResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoundResult) String() string {
	var builder strings.Builder
	builder.WriteString("RoundResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("round_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundIndex))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("total_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCount))
	builder.WriteString(", ")
	builder.WriteString("wrong_categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.WrongCategories))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RoundResults is a parsable slice of RoundResult.
type RoundResults []*RoundResult
