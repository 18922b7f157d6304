// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillforge/skillforge/ent/attemptanswer"
	"github.com/skillforge/skillforge/ent/predicate"
)

// AttemptAnswerUpdate is the builder for updating AttemptAnswer entities.
type AttemptAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptAnswerMutation
}

// Where appends a list predicates to the AttemptAnswerUpdate builder.
func (_u *AttemptAnswerUpdate) Where(ps ...predicate.AttemptAnswer) *AttemptAnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptAnswerUpdate) SetUserAnswer(v map[string]interface{}) *AttemptAnswerUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptAnswerUpdate) SetResponseTimeMs(v int64) *AttemptAnswerUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptAnswerUpdate) SetNillableResponseTimeMs(v *int64) *AttemptAnswerUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptAnswerUpdate) AddResponseTimeMs(v int64) *AttemptAnswerUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptAnswerUpdate) SetIsCorrect(v bool) *AttemptAnswerUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptAnswerUpdate) SetNillableIsCorrect(v *bool) *AttemptAnswerUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *AttemptAnswerUpdate) ClearIsCorrect() *AttemptAnswerUpdate {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptAnswerUpdate) SetScore(v float64) *AttemptAnswerUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptAnswerUpdate) SetNillableScore(v *float64) *AttemptAnswerUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptAnswerUpdate) AddScore(v float64) *AttemptAnswerUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AttemptAnswerUpdate) ClearScore() *AttemptAnswerUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *AttemptAnswerUpdate) SetSavedAt(v time.Time) *AttemptAnswerUpdate {
	_u.mutation.SetSavedAt(v)
	return _u
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_u *AttemptAnswerUpdate) SetNillableSavedAt(v *time.Time) *AttemptAnswerUpdate {
	if v != nil {
		_u.SetSavedAt(*v)
	}
	return _u
}

// Mutation returns the AttemptAnswerMutation object of the builder.
func (_u *AttemptAnswerUpdate) Mutation() *AttemptAnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptAnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptAnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptAnswerUpdate) check() error {
	if v, ok := _u.mutation.ResponseTimeMs(); ok {
		if err := attemptanswer.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "AttemptAnswer.response_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := attemptanswer.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AttemptAnswer.score": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AttemptAnswer.session"`)
	}
	return nil
}

func (_u *AttemptAnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptanswer.Table, attemptanswer.Columns, sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attemptanswer.FieldUserAnswer, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptanswer.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attemptanswer.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptanswer.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(attemptanswer.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptanswer.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptanswer.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(attemptanswer.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(attemptanswer.FieldSavedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptAnswerUpdateOne is the builder for updating a single AttemptAnswer entity.
type AttemptAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptAnswerMutation
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptAnswerUpdateOne) SetUserAnswer(v map[string]interface{}) *AttemptAnswerUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *AttemptAnswerUpdateOne) SetResponseTimeMs(v int64) *AttemptAnswerUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *AttemptAnswerUpdateOne) SetNillableResponseTimeMs(v *int64) *AttemptAnswerUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *AttemptAnswerUpdateOne) AddResponseTimeMs(v int64) *AttemptAnswerUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AttemptAnswerUpdateOne) SetIsCorrect(v bool) *AttemptAnswerUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AttemptAnswerUpdateOne) SetNillableIsCorrect(v *bool) *AttemptAnswerUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (_u *AttemptAnswerUpdateOne) ClearIsCorrect() *AttemptAnswerUpdateOne {
	_u.mutation.ClearIsCorrect()
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptAnswerUpdateOne) SetScore(v float64) *AttemptAnswerUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptAnswerUpdateOne) SetNillableScore(v *float64) *AttemptAnswerUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptAnswerUpdateOne) AddScore(v float64) *AttemptAnswerUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AttemptAnswerUpdateOne) ClearScore() *AttemptAnswerUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *AttemptAnswerUpdateOne) SetSavedAt(v time.Time) *AttemptAnswerUpdateOne {
	_u.mutation.SetSavedAt(v)
	return _u
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_u *AttemptAnswerUpdateOne) SetNillableSavedAt(v *time.Time) *AttemptAnswerUpdateOne {
	if v != nil {
		_u.SetSavedAt(*v)
	}
	return _u
}

// Mutation returns the AttemptAnswerMutation object of the builder.
func (_u *AttemptAnswerUpdateOne) Mutation() *AttemptAnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptAnswerUpdate builder.
func (_u *AttemptAnswerUpdateOne) Where(ps ...predicate.AttemptAnswer) *AttemptAnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptAnswerUpdateOne) Select(field string, fields ...string) *AttemptAnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptAnswer entity.
func (_u *AttemptAnswerUpdateOne) Save(ctx context.Context) (*AttemptAnswer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptAnswerUpdateOne) SaveX(ctx context.Context) *AttemptAnswer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptAnswerUpdateOne) check() error {
	if v, ok := _u.mutation.ResponseTimeMs(); ok {
		if err := attemptanswer.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "AttemptAnswer.response_time_ms": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := attemptanswer.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AttemptAnswer.score": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AttemptAnswer.session"`)
	}
	return nil
}

func (_u *AttemptAnswerUpdateOne) sqlSave(ctx context.Context) (_node *AttemptAnswer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptanswer.Table, attemptanswer.Columns, sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptanswer.FieldID)
		for _, f := range fields {
			if !attemptanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptanswer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attemptanswer.FieldUserAnswer, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptanswer.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(attemptanswer.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(attemptanswer.FieldIsCorrect, field.TypeBool, value)
	}
	if _u.mutation.IsCorrectCleared() {
		_spec.ClearField(attemptanswer.FieldIsCorrect, field.TypeBool)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptanswer.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptanswer.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(attemptanswer.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(attemptanswer.FieldSavedAt, field.TypeTime, value)
	}
	_node = &AttemptAnswer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
