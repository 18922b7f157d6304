// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/attemptanswer"
)

// AttemptAnswerCreate is the builder for creating a AttemptAnswer entity.
type AttemptAnswerCreate struct {
	config
	mutation *AttemptAnswerMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptAnswerCreate) SetSessionID(v string) *AttemptAnswerCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AttemptAnswerCreate) SetQuestionID(v string) *AttemptAnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *AttemptAnswerCreate) SetUserAnswer(v map[string]interface{}) *AttemptAnswerCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *AttemptAnswerCreate) SetResponseTimeMs(v int64) *AttemptAnswerCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *AttemptAnswerCreate) SetIsCorrect(v bool) *AttemptAnswerCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *AttemptAnswerCreate) SetNillableIsCorrect(v *bool) *AttemptAnswerCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptAnswerCreate) SetScore(v float64) *AttemptAnswerCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *AttemptAnswerCreate) SetNillableScore(v *float64) *AttemptAnswerCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetSavedAt sets the "saved_at" field.
func (_c *AttemptAnswerCreate) SetSavedAt(v time.Time) *AttemptAnswerCreate {
	_c.mutation.SetSavedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptAnswerCreate) SetCreatedAt(v time.Time) *AttemptAnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptAnswerCreate) SetNillableCreatedAt(v *time.Time) *AttemptAnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttemptAnswerCreate) SetID(v string) *AttemptAnswerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AssessmentSession entity.
func (_c *AttemptAnswerCreate) SetSession(v *AssessmentSession) *AttemptAnswerCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the AttemptAnswerMutation object of the builder.
func (_c *AttemptAnswerCreate) Mutation() *AttemptAnswerMutation {
	return _c.mutation
}

// Save creates the AttemptAnswer in the database.
func (_c *AttemptAnswerCreate) Save(ctx context.Context) (*AttemptAnswer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptAnswerCreate) SaveX(ctx context.Context) *AttemptAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptAnswerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attemptanswer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptAnswerCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptAnswer.session_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AttemptAnswer.question_id"`)}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "AttemptAnswer.user_answer"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "AttemptAnswer.response_time_ms"`)}
	}
	if v, ok := _c.mutation.ResponseTimeMs(); ok {
		if err := attemptanswer.ResponseTimeMsValidator(v); err != nil {
			return &ValidationError{Name: "response_time_ms", err: fmt.Errorf(`ent: validator failed for field "AttemptAnswer.response_time_ms": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := attemptanswer.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AttemptAnswer.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SavedAt(); !ok {
		return &ValidationError{Name: "saved_at", err: errors.New(`ent: missing required field "AttemptAnswer.saved_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AttemptAnswer.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "AttemptAnswer.session"`)}
	}
	return nil
}

func (_c *AttemptAnswerCreate) sqlSave(ctx context.Context) (*AttemptAnswer, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AttemptAnswer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptAnswerCreate) createSpec() (*AttemptAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptanswer.Table, sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(attemptanswer.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(attemptanswer.FieldUserAnswer, field.TypeJSON, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(attemptanswer.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(attemptanswer.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attemptanswer.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.SavedAt(); ok {
		_spec.SetField(attemptanswer.FieldSavedAt, field.TypeTime, value)
		_node.SavedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attemptanswer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attemptanswer.SessionTable,
			Columns: []string{attemptanswer.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AttemptAnswerCreateBulk is the builder for creating many AttemptAnswer entities in bulk.
type AttemptAnswerCreateBulk struct {
	config
	err      error
	builders []*AttemptAnswerCreate
}

// Save creates the AttemptAnswer entities in the database.
func (_c *AttemptAnswerCreateBulk) Save(ctx context.Context) ([]*AttemptAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptAnswerMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptAnswerCreateBulk) SaveX(ctx context.Context) []*AttemptAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
