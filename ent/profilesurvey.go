// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skillforge/skillforge/ent/profilesurvey"
)

// ProfileSurvey is the model entity for the ProfileSurvey schema.
type ProfileSurvey struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Opaque identity owned by the auth collaborator
	UserID string `json:"user_id,omitempty"`
	// SelfLevel holds the value of the "self_level" field.
	SelfLevel profilesurvey.SelfLevel `json:"self_level,omitempty"`
	// Years holds the value of the "years" field.
	Years int `json:"years,omitempty"`
	// JobRole holds the value of the "job_role" field.
	JobRole string `json:"job_role,omitempty"`
	// Duty holds the value of the "duty" field.
	Duty string `json:"duty,omitempty"`
	// Interest tags used as the category pool
	Interests []string `json:"interests,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt time.Time `json:"submitted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProfileSurveyQuery when eager-loading is set.
	Edges        ProfileSurveyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProfileSurveyEdges holds the relations/edges for other nodes in the graph.
type ProfileSurveyEdges struct {
	// Sessions holds the value of the sessions edge.
	Sessions []*AssessmentSession `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e ProfileSurveyEdges) SessionsOrErr() ([]*AssessmentSession, error) {
	if e.loadedTypes[0] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProfileSurvey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profilesurvey.FieldInterests:
			values[i] = new([]byte)
		case profilesurvey.FieldYears:
			values[i] = new(sql.NullInt64)
		case profilesurvey.FieldID, profilesurvey.FieldUserID, profilesurvey.FieldSelfLevel, profilesurvey.FieldJobRole, profilesurvey.FieldDuty:
			values[i] = new(sql.NullString)
		case profilesurvey.FieldSubmittedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProfileSurvey fields.
func (_m *ProfileSurvey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profilesurvey.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case profilesurvey.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case profilesurvey.FieldSelfLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field self_level", values[i])
			} else if value.Valid {
				_m.SelfLevel = profilesurvey.SelfLevel(value.String)
			}
		case profilesurvey.FieldYears:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field years", values[i])
			} else if value.Valid {
				_m.Years = int(value.Int64)
			}
		case profilesurvey.FieldJobRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_role", values[i])
			} else if value.Valid {
				_m.JobRole = value.String
			}
		case profilesurvey.FieldDuty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duty", values[i])
			} else if value.Valid {
				_m.Duty = value.String
			}
		case profilesurvey.FieldInterests:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field interests", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Interests); err != nil {
					return fmt.Errorf("unmarshal field interests: %w", err)
				}
			}
		case profilesurvey.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProfileSurvey.
// This includes values selected through modifiers, order, etc.
func (_m *ProfileSurvey) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySessions queries the "sessions" edge of the ProfileSurvey entity.
func (_m *ProfileSurvey) QuerySessions() *AssessmentSessionQuery {
	return NewProfileSurveyClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this ProfileSurvey.
// Note that you need to call ProfileSurvey.Unwrap() before calling this method if this ProfileSurvey
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProfileSurvey) Update() *ProfileSurveyUpdateOne {
	return NewProfileSurveyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProfileSurvey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProfileSurvey) Unwrap() *ProfileSurvey {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProfileSurvey is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProfileSurvey) String() string {
	var builder strings.Builder
	builder.WriteString("ProfileSurvey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("self_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelfLevel))
	builder.WriteString(", ")
	builder.WriteString("years=")
	builder.WriteString(fmt.Sprintf("%v", _m.Years))
	builder.WriteString(", ")
	builder.WriteString("job_role=")
	builder.WriteString(_m.JobRole)
	builder.WriteString(", ")
	builder.WriteString("duty=")
	builder.WriteString(_m.Duty)
	builder.WriteString(", ")
	builder.WriteString("interests=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interests))
	builder.WriteString(", ")
	builder.WriteString("submitted_at=")
	builder.WriteString(_m.SubmittedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProfileSurveys is a parsable slice of ProfileSurvey.
type ProfileSurveys []*ProfileSurvey
