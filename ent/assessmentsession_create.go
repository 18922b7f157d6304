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
	"github.com/skillforge/skillforge/ent/profilesurvey"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/ent/roundresult"
)

// AssessmentSessionCreate is the builder for creating a AssessmentSession entity.
type AssessmentSessionCreate struct {
	config
	mutation *AssessmentSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AssessmentSessionCreate) SetUserID(v string) *AssessmentSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSurveyID sets the "survey_id" field.
func (_c *AssessmentSessionCreate) SetSurveyID(v string) *AssessmentSessionCreate {
	_c.mutation.SetSurveyID(v)
	return _c
}

// SetRoundIndex sets the "round_index" field.
func (_c *AssessmentSessionCreate) SetRoundIndex(v int) *AssessmentSessionCreate {
	_c.mutation.SetRoundIndex(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AssessmentSessionCreate) SetStatus(v assessmentsession.Status) *AssessmentSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableStatus(v *assessmentsession.Status) *AssessmentSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTimeLimitMs sets the "time_limit_ms" field.
func (_c *AssessmentSessionCreate) SetTimeLimitMs(v int64) *AssessmentSessionCreate {
	_c.mutation.SetTimeLimitMs(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AssessmentSessionCreate) SetStartedAt(v time.Time) *AssessmentSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableStartedAt(v *time.Time) *AssessmentSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetPausedAt sets the "paused_at" field.
func (_c *AssessmentSessionCreate) SetPausedAt(v time.Time) *AssessmentSessionCreate {
	_c.mutation.SetPausedAt(v)
	return _c
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillablePausedAt(v *time.Time) *AssessmentSessionCreate {
	if v != nil {
		_c.SetPausedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssessmentSessionCreate) SetCreatedAt(v time.Time) *AssessmentSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableCreatedAt(v *time.Time) *AssessmentSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssessmentSessionCreate) SetID(v string) *AssessmentSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSurvey sets the "survey" edge to the ProfileSurvey entity.
func (_c *AssessmentSessionCreate) SetSurvey(v *ProfileSurvey) *AssessmentSessionCreate {
	return _c.SetSurveyID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *AssessmentSessionCreate) AddQuestionIDs(ids ...string) *AssessmentSessionCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *AssessmentSessionCreate) AddQuestions(v ...*Question) *AssessmentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddAttemptAnswerIDs adds the "attempt_answers" edge to the AttemptAnswer entity by IDs.
func (_c *AssessmentSessionCreate) AddAttemptAnswerIDs(ids ...string) *AssessmentSessionCreate {
	_c.mutation.AddAttemptAnswerIDs(ids...)
	return _c
}

// AddAttemptAnswers adds the "attempt_answers" edges to the AttemptAnswer entity.
func (_c *AssessmentSessionCreate) AddAttemptAnswers(v ...*AttemptAnswer) *AssessmentSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptAnswerIDs(ids...)
}

// SetRoundResultID sets the "round_result" edge to the RoundResult entity by ID.
func (_c *AssessmentSessionCreate) SetRoundResultID(id string) *AssessmentSessionCreate {
	_c.mutation.SetRoundResultID(id)
	return _c
}

// SetNillableRoundResultID sets the "round_result" edge to the RoundResult entity by ID if the given value is not nil.
func (_c *AssessmentSessionCreate) SetNillableRoundResultID(id *string) *AssessmentSessionCreate {
	if id != nil {
		_c = _c.SetRoundResultID(*id)
	}
	return _c
}

// SetRoundResult sets the "round_result" edge to the RoundResult entity.
func (_c *AssessmentSessionCreate) SetRoundResult(v *RoundResult) *AssessmentSessionCreate {
	return _c.SetRoundResultID(v.ID)
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_c *AssessmentSessionCreate) Mutation() *AssessmentSessionMutation {
	return _c.mutation
}

// Save creates the AssessmentSession in the database.
func (_c *AssessmentSessionCreate) Save(ctx context.Context) (*AssessmentSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentSessionCreate) SaveX(ctx context.Context) *AssessmentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := assessmentsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assessmentsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AssessmentSession.user_id"`)}
	}
	if _, ok := _c.mutation.SurveyID(); !ok {
		return &ValidationError{Name: "survey_id", err: errors.New(`ent: missing required field "AssessmentSession.survey_id"`)}
	}
	if _, ok := _c.mutation.RoundIndex(); !ok {
		return &ValidationError{Name: "round_index", err: errors.New(`ent: missing required field "AssessmentSession.round_index"`)}
	}
	if v, ok := _c.mutation.RoundIndex(); ok {
		if err := assessmentsession.RoundIndexValidator(v); err != nil {
			return &ValidationError{Name: "round_index", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.round_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AssessmentSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := assessmentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeLimitMs(); !ok {
		return &ValidationError{Name: "time_limit_ms", err: errors.New(`ent: missing required field "AssessmentSession.time_limit_ms"`)}
	}
	if v, ok := _c.mutation.TimeLimitMs(); ok {
		if err := assessmentsession.TimeLimitMsValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_ms", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.time_limit_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AssessmentSession.created_at"`)}
	}
	if len(_c.mutation.SurveyIDs()) == 0 {
		return &ValidationError{Name: "survey", err: errors.New(`ent: missing required edge "AssessmentSession.survey"`)}
	}
	return nil
}

func (_c *AssessmentSessionCreate) sqlSave(ctx context.Context) (*AssessmentSession, error) {
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
			return nil, fmt.Errorf("unexpected AssessmentSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssessmentSessionCreate) createSpec() (*AssessmentSession, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentsession.Table, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(assessmentsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RoundIndex(); ok {
		_spec.SetField(assessmentsession.FieldRoundIndex, field.TypeInt, value)
		_node.RoundIndex = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TimeLimitMs(); ok {
		_spec.SetField(assessmentsession.FieldTimeLimitMs, field.TypeInt64, value)
		_node.TimeLimitMs = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(assessmentsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.PausedAt(); ok {
		_spec.SetField(assessmentsession.FieldPausedAt, field.TypeTime, value)
		_node.PausedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assessmentsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SurveyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assessmentsession.SurveyTable,
			Columns: []string{assessmentsession.SurveyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profilesurvey.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SurveyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessmentsession.QuestionsTable,
			Columns: []string{assessmentsession.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttemptAnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   assessmentsession.AttemptAnswersTable,
			Columns: []string{assessmentsession.AttemptAnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attemptanswer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RoundResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   assessmentsession.RoundResultTable,
			Columns: []string{assessmentsession.RoundResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(roundresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssessmentSessionCreateBulk is the builder for creating many AssessmentSession entities in bulk.
type AssessmentSessionCreateBulk struct {
	config
	err      error
	builders []*AssessmentSessionCreate
}

// Save creates the AssessmentSession entities in the database.
func (_c *AssessmentSessionCreateBulk) Save(ctx context.Context) ([]*AssessmentSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentSessionMutation)
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
func (_c *AssessmentSessionCreateBulk) SaveX(ctx context.Context) []*AssessmentSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
