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
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/attemptanswer"
	"github.com/skillforge/skillforge/ent/predicate"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/ent/roundresult"
)

// AssessmentSessionUpdate is the builder for updating AssessmentSession entities.
type AssessmentSessionUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// Where appends a list predicates to the AssessmentSessionUpdate builder.
func (_u *AssessmentSessionUpdate) Where(ps ...predicate.AssessmentSession) *AssessmentSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentSessionUpdate) SetStatus(v assessmentsession.Status) *AssessmentSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableStatus(v *assessmentsession.Status) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimeLimitMs sets the "time_limit_ms" field.
func (_u *AssessmentSessionUpdate) SetTimeLimitMs(v int64) *AssessmentSessionUpdate {
	_u.mutation.ResetTimeLimitMs()
	_u.mutation.SetTimeLimitMs(v)
	return _u
}

// SetNillableTimeLimitMs sets the "time_limit_ms" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableTimeLimitMs(v *int64) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetTimeLimitMs(*v)
	}
	return _u
}

// AddTimeLimitMs adds value to the "time_limit_ms" field.
func (_u *AssessmentSessionUpdate) AddTimeLimitMs(v int64) *AssessmentSessionUpdate {
	_u.mutation.AddTimeLimitMs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AssessmentSessionUpdate) SetStartedAt(v time.Time) *AssessmentSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableStartedAt(v *time.Time) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AssessmentSessionUpdate) ClearStartedAt() *AssessmentSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetPausedAt sets the "paused_at" field.
func (_u *AssessmentSessionUpdate) SetPausedAt(v time.Time) *AssessmentSessionUpdate {
	_u.mutation.SetPausedAt(v)
	return _u
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillablePausedAt(v *time.Time) *AssessmentSessionUpdate {
	if v != nil {
		_u.SetPausedAt(*v)
	}
	return _u
}

// ClearPausedAt clears the value of the "paused_at" field.
func (_u *AssessmentSessionUpdate) ClearPausedAt() *AssessmentSessionUpdate {
	_u.mutation.ClearPausedAt()
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *AssessmentSessionUpdate) AddQuestionIDs(ids ...string) *AssessmentSessionUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *AssessmentSessionUpdate) AddQuestions(v ...*Question) *AssessmentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddAttemptAnswerIDs adds the "attempt_answers" edge to the AttemptAnswer entity by IDs.
func (_u *AssessmentSessionUpdate) AddAttemptAnswerIDs(ids ...string) *AssessmentSessionUpdate {
	_u.mutation.AddAttemptAnswerIDs(ids...)
	return _u
}

// AddAttemptAnswers adds the "attempt_answers" edges to the AttemptAnswer entity.
func (_u *AssessmentSessionUpdate) AddAttemptAnswers(v ...*AttemptAnswer) *AssessmentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptAnswerIDs(ids...)
}

// SetRoundResultID sets the "round_result" edge to the RoundResult entity by ID.
func (_u *AssessmentSessionUpdate) SetRoundResultID(id string) *AssessmentSessionUpdate {
	_u.mutation.SetRoundResultID(id)
	return _u
}

// SetNillableRoundResultID sets the "round_result" edge to the RoundResult entity by ID if the given value is not nil.
func (_u *AssessmentSessionUpdate) SetNillableRoundResultID(id *string) *AssessmentSessionUpdate {
	if id != nil {
		_u = _u.SetRoundResultID(*id)
	}
	return _u
}

// SetRoundResult sets the "round_result" edge to the RoundResult entity.
func (_u *AssessmentSessionUpdate) SetRoundResult(v *RoundResult) *AssessmentSessionUpdate {
	return _u.SetRoundResultID(v.ID)
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_u *AssessmentSessionUpdate) Mutation() *AssessmentSessionMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *AssessmentSessionUpdate) ClearQuestions() *AssessmentSessionUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *AssessmentSessionUpdate) RemoveQuestionIDs(ids ...string) *AssessmentSessionUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *AssessmentSessionUpdate) RemoveQuestions(v ...*Question) *AssessmentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearAttemptAnswers clears all "attempt_answers" edges to the AttemptAnswer entity.
func (_u *AssessmentSessionUpdate) ClearAttemptAnswers() *AssessmentSessionUpdate {
	_u.mutation.ClearAttemptAnswers()
	return _u
}

// RemoveAttemptAnswerIDs removes the "attempt_answers" edge to AttemptAnswer entities by IDs.
func (_u *AssessmentSessionUpdate) RemoveAttemptAnswerIDs(ids ...string) *AssessmentSessionUpdate {
	_u.mutation.RemoveAttemptAnswerIDs(ids...)
	return _u
}

// RemoveAttemptAnswers removes "attempt_answers" edges to AttemptAnswer entities.
func (_u *AssessmentSessionUpdate) RemoveAttemptAnswers(v ...*AttemptAnswer) *AssessmentSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptAnswerIDs(ids...)
}

// ClearRoundResult clears the "round_result" edge to the RoundResult entity.
func (_u *AssessmentSessionUpdate) ClearRoundResult() *AssessmentSessionUpdate {
	_u.mutation.ClearRoundResult()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assessmentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeLimitMs(); ok {
		if err := assessmentsession.TimeLimitMsValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_ms", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.time_limit_ms": %w`, err)}
		}
	}
	if _u.mutation.SurveyCleared() && len(_u.mutation.SurveyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssessmentSession.survey"`)
	}
	return nil
}

func (_u *AssessmentSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeLimitMs(); ok {
		_spec.SetField(assessmentsession.FieldTimeLimitMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitMs(); ok {
		_spec.AddField(assessmentsession.FieldTimeLimitMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(assessmentsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(assessmentsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PausedAt(); ok {
		_spec.SetField(assessmentsession.FieldPausedAt, field.TypeTime, value)
	}
	if _u.mutation.PausedAtCleared() {
		_spec.ClearField(assessmentsession.FieldPausedAt, field.TypeTime)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptAnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptAnswersIDs(); len(nodes) > 0 && !_u.mutation.AttemptAnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptAnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoundResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoundResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentSessionUpdateOne is the builder for updating a single AssessmentSession entity.
type AssessmentSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentSessionMutation
}

// SetStatus sets the "status" field.
func (_u *AssessmentSessionUpdateOne) SetStatus(v assessmentsession.Status) *AssessmentSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableStatus(v *assessmentsession.Status) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimeLimitMs sets the "time_limit_ms" field.
func (_u *AssessmentSessionUpdateOne) SetTimeLimitMs(v int64) *AssessmentSessionUpdateOne {
	_u.mutation.ResetTimeLimitMs()
	_u.mutation.SetTimeLimitMs(v)
	return _u
}

// SetNillableTimeLimitMs sets the "time_limit_ms" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableTimeLimitMs(v *int64) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetTimeLimitMs(*v)
	}
	return _u
}

// AddTimeLimitMs adds value to the "time_limit_ms" field.
func (_u *AssessmentSessionUpdateOne) AddTimeLimitMs(v int64) *AssessmentSessionUpdateOne {
	_u.mutation.AddTimeLimitMs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AssessmentSessionUpdateOne) SetStartedAt(v time.Time) *AssessmentSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableStartedAt(v *time.Time) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AssessmentSessionUpdateOne) ClearStartedAt() *AssessmentSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetPausedAt sets the "paused_at" field.
func (_u *AssessmentSessionUpdateOne) SetPausedAt(v time.Time) *AssessmentSessionUpdateOne {
	_u.mutation.SetPausedAt(v)
	return _u
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillablePausedAt(v *time.Time) *AssessmentSessionUpdateOne {
	if v != nil {
		_u.SetPausedAt(*v)
	}
	return _u
}

// ClearPausedAt clears the value of the "paused_at" field.
func (_u *AssessmentSessionUpdateOne) ClearPausedAt() *AssessmentSessionUpdateOne {
	_u.mutation.ClearPausedAt()
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *AssessmentSessionUpdateOne) AddQuestionIDs(ids ...string) *AssessmentSessionUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *AssessmentSessionUpdateOne) AddQuestions(v ...*Question) *AssessmentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddAttemptAnswerIDs adds the "attempt_answers" edge to the AttemptAnswer entity by IDs.
func (_u *AssessmentSessionUpdateOne) AddAttemptAnswerIDs(ids ...string) *AssessmentSessionUpdateOne {
	_u.mutation.AddAttemptAnswerIDs(ids...)
	return _u
}

// AddAttemptAnswers adds the "attempt_answers" edges to the AttemptAnswer entity.
func (_u *AssessmentSessionUpdateOne) AddAttemptAnswers(v ...*AttemptAnswer) *AssessmentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptAnswerIDs(ids...)
}

// SetRoundResultID sets the "round_result" edge to the RoundResult entity by ID.
func (_u *AssessmentSessionUpdateOne) SetRoundResultID(id string) *AssessmentSessionUpdateOne {
	_u.mutation.SetRoundResultID(id)
	return _u
}

// SetNillableRoundResultID sets the "round_result" edge to the RoundResult entity by ID if the given value is not nil.
func (_u *AssessmentSessionUpdateOne) SetNillableRoundResultID(id *string) *AssessmentSessionUpdateOne {
	if id != nil {
		_u = _u.SetRoundResultID(*id)
	}
	return _u
}

// SetRoundResult sets the "round_result" edge to the RoundResult entity.
func (_u *AssessmentSessionUpdateOne) SetRoundResult(v *RoundResult) *AssessmentSessionUpdateOne {
	return _u.SetRoundResultID(v.ID)
}

// Mutation returns the AssessmentSessionMutation object of the builder.
func (_u *AssessmentSessionUpdateOne) Mutation() *AssessmentSessionMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *AssessmentSessionUpdateOne) ClearQuestions() *AssessmentSessionUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *AssessmentSessionUpdateOne) RemoveQuestionIDs(ids ...string) *AssessmentSessionUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *AssessmentSessionUpdateOne) RemoveQuestions(v ...*Question) *AssessmentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearAttemptAnswers clears all "attempt_answers" edges to the AttemptAnswer entity.
func (_u *AssessmentSessionUpdateOne) ClearAttemptAnswers() *AssessmentSessionUpdateOne {
	_u.mutation.ClearAttemptAnswers()
	return _u
}

// RemoveAttemptAnswerIDs removes the "attempt_answers" edge to AttemptAnswer entities by IDs.
func (_u *AssessmentSessionUpdateOne) RemoveAttemptAnswerIDs(ids ...string) *AssessmentSessionUpdateOne {
	_u.mutation.RemoveAttemptAnswerIDs(ids...)
	return _u
}

// RemoveAttemptAnswers removes "attempt_answers" edges to AttemptAnswer entities.
func (_u *AssessmentSessionUpdateOne) RemoveAttemptAnswers(v ...*AttemptAnswer) *AssessmentSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptAnswerIDs(ids...)
}

// ClearRoundResult clears the "round_result" edge to the RoundResult entity.
func (_u *AssessmentSessionUpdateOne) ClearRoundResult() *AssessmentSessionUpdateOne {
	_u.mutation.ClearRoundResult()
	return _u
}

// Where appends a list predicates to the AssessmentSessionUpdate builder.
func (_u *AssessmentSessionUpdateOne) Where(ps ...predicate.AssessmentSession) *AssessmentSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentSessionUpdateOne) Select(field string, fields ...string) *AssessmentSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentSession entity.
func (_u *AssessmentSessionUpdateOne) Save(ctx context.Context) (*AssessmentSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentSessionUpdateOne) SaveX(ctx context.Context) *AssessmentSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assessmentsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeLimitMs(); ok {
		if err := assessmentsession.TimeLimitMsValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_ms", err: fmt.Errorf(`ent: validator failed for field "AssessmentSession.time_limit_ms": %w`, err)}
		}
	}
	if _u.mutation.SurveyCleared() && len(_u.mutation.SurveyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AssessmentSession.survey"`)
	}
	return nil
}

func (_u *AssessmentSessionUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentsession.FieldID)
		for _, f := range fields {
			if !assessmentsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentsession.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessmentsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeLimitMs(); ok {
		_spec.SetField(assessmentsession.FieldTimeLimitMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitMs(); ok {
		_spec.AddField(assessmentsession.FieldTimeLimitMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(assessmentsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(assessmentsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PausedAt(); ok {
		_spec.SetField(assessmentsession.FieldPausedAt, field.TypeTime, value)
	}
	if _u.mutation.PausedAtCleared() {
		_spec.ClearField(assessmentsession.FieldPausedAt, field.TypeTime)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptAnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptAnswersIDs(); len(nodes) > 0 && !_u.mutation.AttemptAnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptAnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoundResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoundResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AssessmentSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
