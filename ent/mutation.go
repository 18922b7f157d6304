// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/attemptanswer"
	"github.com/skillforge/skillforge/ent/predicate"
	"github.com/skillforge/skillforge/ent/profilesurvey"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/ent/roundresult"
	"github.com/skillforge/skillforge/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentSession = "AssessmentSession"
	TypeAttemptAnswer     = "AttemptAnswer"
	TypeProfileSurvey     = "ProfileSurvey"
	TypeQuestion          = "Question"
	TypeRoundResult       = "RoundResult"
)

// AssessmentSessionMutation represents an operation that mutates the AssessmentSession nodes in the graph.
type AssessmentSessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_id                *string
	round_index            *int
	addround_index         *int
	status                 *assessmentsession.Status
	time_limit_ms          *int64
	addtime_limit_ms       *int64
	started_at             *time.Time
	paused_at              *time.Time
	created_at             *time.Time
	clearedFields          map[string]struct{}
	survey                 *string
	clearedsurvey          bool
	questions              map[string]struct{}
	removedquestions       map[string]struct{}
	clearedquestions       bool
	attempt_answers        map[string]struct{}
	removedattempt_answers map[string]struct{}
	clearedattempt_answers bool
	round_result           *string
	clearedround_result    bool
	done                   bool
	oldValue               func(context.Context) (*AssessmentSession, error)
	predicates             []predicate.AssessmentSession
}

var _ ent.Mutation = (*AssessmentSessionMutation)(nil)

// assessmentsessionOption allows management of the mutation configuration using functional options.
type assessmentsessionOption func(*AssessmentSessionMutation)

// newAssessmentSessionMutation creates new mutation for the AssessmentSession entity.
func newAssessmentSessionMutation(c config, op Op, opts ...assessmentsessionOption) *AssessmentSessionMutation {
	m := &AssessmentSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentSessionID sets the ID field of the mutation.
func withAssessmentSessionID(id string) assessmentsessionOption {
	return func(m *AssessmentSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentSession
		)
		m.oldValue = func(ctx context.Context) (*AssessmentSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentSession sets the old AssessmentSession of the mutation.
func withAssessmentSession(node *AssessmentSession) assessmentsessionOption {
	return func(m *AssessmentSessionMutation) {
		m.oldValue = func(context.Context) (*AssessmentSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AssessmentSession entities.
func (m *AssessmentSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AssessmentSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AssessmentSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AssessmentSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetSurveyID sets the "survey_id" field.
func (m *AssessmentSessionMutation) SetSurveyID(s string) {
	m.survey = &s
}

// SurveyID returns the value of the "survey_id" field in the mutation.
func (m *AssessmentSessionMutation) SurveyID() (r string, exists bool) {
	v := m.survey
	if v == nil {
		return
	}
	return *v, true
}

// OldSurveyID returns the old "survey_id" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldSurveyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurveyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurveyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurveyID: %w", err)
	}
	return oldValue.SurveyID, nil
}

// ResetSurveyID resets all changes to the "survey_id" field.
func (m *AssessmentSessionMutation) ResetSurveyID() {
	m.survey = nil
}

// SetRoundIndex sets the "round_index" field.
func (m *AssessmentSessionMutation) SetRoundIndex(i int) {
	m.round_index = &i
	m.addround_index = nil
}

// RoundIndex returns the value of the "round_index" field in the mutation.
func (m *AssessmentSessionMutation) RoundIndex() (r int, exists bool) {
	v := m.round_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundIndex returns the old "round_index" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldRoundIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundIndex: %w", err)
	}
	return oldValue.RoundIndex, nil
}

// AddRoundIndex adds i to the "round_index" field.
func (m *AssessmentSessionMutation) AddRoundIndex(i int) {
	if m.addround_index != nil {
		*m.addround_index += i
	} else {
		m.addround_index = &i
	}
}

// AddedRoundIndex returns the value that was added to the "round_index" field in this mutation.
func (m *AssessmentSessionMutation) AddedRoundIndex() (r int, exists bool) {
	v := m.addround_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoundIndex resets all changes to the "round_index" field.
func (m *AssessmentSessionMutation) ResetRoundIndex() {
	m.round_index = nil
	m.addround_index = nil
}

// SetStatus sets the "status" field.
func (m *AssessmentSessionMutation) SetStatus(a assessmentsession.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AssessmentSessionMutation) Status() (r assessmentsession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldStatus(ctx context.Context) (v assessmentsession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AssessmentSessionMutation) ResetStatus() {
	m.status = nil
}

// SetTimeLimitMs sets the "time_limit_ms" field.
func (m *AssessmentSessionMutation) SetTimeLimitMs(i int64) {
	m.time_limit_ms = &i
	m.addtime_limit_ms = nil
}

// TimeLimitMs returns the value of the "time_limit_ms" field in the mutation.
func (m *AssessmentSessionMutation) TimeLimitMs() (r int64, exists bool) {
	v := m.time_limit_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimitMs returns the old "time_limit_ms" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldTimeLimitMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimitMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimitMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimitMs: %w", err)
	}
	return oldValue.TimeLimitMs, nil
}

// AddTimeLimitMs adds i to the "time_limit_ms" field.
func (m *AssessmentSessionMutation) AddTimeLimitMs(i int64) {
	if m.addtime_limit_ms != nil {
		*m.addtime_limit_ms += i
	} else {
		m.addtime_limit_ms = &i
	}
}

// AddedTimeLimitMs returns the value that was added to the "time_limit_ms" field in this mutation.
func (m *AssessmentSessionMutation) AddedTimeLimitMs() (r int64, exists bool) {
	v := m.addtime_limit_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimitMs resets all changes to the "time_limit_ms" field.
func (m *AssessmentSessionMutation) ResetTimeLimitMs() {
	m.time_limit_ms = nil
	m.addtime_limit_ms = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AssessmentSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AssessmentSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AssessmentSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[assessmentsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AssessmentSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[assessmentsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AssessmentSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, assessmentsession.FieldStartedAt)
}

// SetPausedAt sets the "paused_at" field.
func (m *AssessmentSessionMutation) SetPausedAt(t time.Time) {
	m.paused_at = &t
}

// PausedAt returns the value of the "paused_at" field in the mutation.
func (m *AssessmentSessionMutation) PausedAt() (r time.Time, exists bool) {
	v := m.paused_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPausedAt returns the old "paused_at" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldPausedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPausedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPausedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPausedAt: %w", err)
	}
	return oldValue.PausedAt, nil
}

// ClearPausedAt clears the value of the "paused_at" field.
func (m *AssessmentSessionMutation) ClearPausedAt() {
	m.paused_at = nil
	m.clearedFields[assessmentsession.FieldPausedAt] = struct{}{}
}

// PausedAtCleared returns if the "paused_at" field was cleared in this mutation.
func (m *AssessmentSessionMutation) PausedAtCleared() bool {
	_, ok := m.clearedFields[assessmentsession.FieldPausedAt]
	return ok
}

// ResetPausedAt resets all changes to the "paused_at" field.
func (m *AssessmentSessionMutation) ResetPausedAt() {
	m.paused_at = nil
	delete(m.clearedFields, assessmentsession.FieldPausedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AssessmentSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssessmentSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AssessmentSession entity.
// If the AssessmentSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssessmentSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSurvey clears the "survey" edge to the ProfileSurvey entity.
func (m *AssessmentSessionMutation) ClearSurvey() {
	m.clearedsurvey = true
	m.clearedFields[assessmentsession.FieldSurveyID] = struct{}{}
}

// SurveyCleared reports if the "survey" edge to the ProfileSurvey entity was cleared.
func (m *AssessmentSessionMutation) SurveyCleared() bool {
	return m.clearedsurvey
}

// SurveyIDs returns the "survey" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SurveyID instead. It exists only for internal usage by the builders.
func (m *AssessmentSessionMutation) SurveyIDs() (ids []string) {
	if id := m.survey; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSurvey resets all changes to the "survey" edge.
func (m *AssessmentSessionMutation) ResetSurvey() {
	m.survey = nil
	m.clearedsurvey = false
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *AssessmentSessionMutation) AddQuestionIDs(ids ...string) {
	if m.questions == nil {
		m.questions = make(map[string]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *AssessmentSessionMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *AssessmentSessionMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *AssessmentSessionMutation) RemoveQuestionIDs(ids ...string) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *AssessmentSessionMutation) RemovedQuestionsIDs() (ids []string) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *AssessmentSessionMutation) QuestionsIDs() (ids []string) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *AssessmentSessionMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// AddAttemptAnswerIDs adds the "attempt_answers" edge to the AttemptAnswer entity by ids.
func (m *AssessmentSessionMutation) AddAttemptAnswerIDs(ids ...string) {
	if m.attempt_answers == nil {
		m.attempt_answers = make(map[string]struct{})
	}
	for i := range ids {
		m.attempt_answers[ids[i]] = struct{}{}
	}
}

// ClearAttemptAnswers clears the "attempt_answers" edge to the AttemptAnswer entity.
func (m *AssessmentSessionMutation) ClearAttemptAnswers() {
	m.clearedattempt_answers = true
}

// AttemptAnswersCleared reports if the "attempt_answers" edge to the AttemptAnswer entity was cleared.
func (m *AssessmentSessionMutation) AttemptAnswersCleared() bool {
	return m.clearedattempt_answers
}

// RemoveAttemptAnswerIDs removes the "attempt_answers" edge to the AttemptAnswer entity by IDs.
func (m *AssessmentSessionMutation) RemoveAttemptAnswerIDs(ids ...string) {
	if m.removedattempt_answers == nil {
		m.removedattempt_answers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attempt_answers, ids[i])
		m.removedattempt_answers[ids[i]] = struct{}{}
	}
}

// RemovedAttemptAnswers returns the removed IDs of the "attempt_answers" edge to the AttemptAnswer entity.
func (m *AssessmentSessionMutation) RemovedAttemptAnswersIDs() (ids []string) {
	for id := range m.removedattempt_answers {
		ids = append(ids, id)
	}
	return
}

// AttemptAnswersIDs returns the "attempt_answers" edge IDs in the mutation.
func (m *AssessmentSessionMutation) AttemptAnswersIDs() (ids []string) {
	for id := range m.attempt_answers {
		ids = append(ids, id)
	}
	return
}

// ResetAttemptAnswers resets all changes to the "attempt_answers" edge.
func (m *AssessmentSessionMutation) ResetAttemptAnswers() {
	m.attempt_answers = nil
	m.clearedattempt_answers = false
	m.removedattempt_answers = nil
}

// SetRoundResultID sets the "round_result" edge to the RoundResult entity by id.
func (m *AssessmentSessionMutation) SetRoundResultID(id string) {
	m.round_result = &id
}

// ClearRoundResult clears the "round_result" edge to the RoundResult entity.
func (m *AssessmentSessionMutation) ClearRoundResult() {
	m.clearedround_result = true
}

// RoundResultCleared reports if the "round_result" edge to the RoundResult entity was cleared.
func (m *AssessmentSessionMutation) RoundResultCleared() bool {
	return m.clearedround_result
}

// RoundResultID returns the "round_result" edge ID in the mutation.
func (m *AssessmentSessionMutation) RoundResultID() (id string, exists bool) {
	if m.round_result != nil {
		return *m.round_result, true
	}
	return
}

// RoundResultIDs returns the "round_result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RoundResultID instead. It exists only for internal usage by the builders.
func (m *AssessmentSessionMutation) RoundResultIDs() (ids []string) {
	if id := m.round_result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRoundResult resets all changes to the "round_result" edge.
func (m *AssessmentSessionMutation) ResetRoundResult() {
	m.round_result = nil
	m.clearedround_result = false
}

// Where appends a list predicates to the AssessmentSessionMutation builder.
func (m *AssessmentSessionMutation) Where(ps ...predicate.AssessmentSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentSession).
func (m *AssessmentSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentSessionMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, assessmentsession.FieldUserID)
	}
	if m.survey != nil {
		fields = append(fields, assessmentsession.FieldSurveyID)
	}
	if m.round_index != nil {
		fields = append(fields, assessmentsession.FieldRoundIndex)
	}
	if m.status != nil {
		fields = append(fields, assessmentsession.FieldStatus)
	}
	if m.time_limit_ms != nil {
		fields = append(fields, assessmentsession.FieldTimeLimitMs)
	}
	if m.started_at != nil {
		fields = append(fields, assessmentsession.FieldStartedAt)
	}
	if m.paused_at != nil {
		fields = append(fields, assessmentsession.FieldPausedAt)
	}
	if m.created_at != nil {
		fields = append(fields, assessmentsession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentsession.FieldUserID:
		return m.UserID()
	case assessmentsession.FieldSurveyID:
		return m.SurveyID()
	case assessmentsession.FieldRoundIndex:
		return m.RoundIndex()
	case assessmentsession.FieldStatus:
		return m.Status()
	case assessmentsession.FieldTimeLimitMs:
		return m.TimeLimitMs()
	case assessmentsession.FieldStartedAt:
		return m.StartedAt()
	case assessmentsession.FieldPausedAt:
		return m.PausedAt()
	case assessmentsession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentsession.FieldUserID:
		return m.OldUserID(ctx)
	case assessmentsession.FieldSurveyID:
		return m.OldSurveyID(ctx)
	case assessmentsession.FieldRoundIndex:
		return m.OldRoundIndex(ctx)
	case assessmentsession.FieldStatus:
		return m.OldStatus(ctx)
	case assessmentsession.FieldTimeLimitMs:
		return m.OldTimeLimitMs(ctx)
	case assessmentsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case assessmentsession.FieldPausedAt:
		return m.OldPausedAt(ctx)
	case assessmentsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case assessmentsession.FieldSurveyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurveyID(v)
		return nil
	case assessmentsession.FieldRoundIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundIndex(v)
		return nil
	case assessmentsession.FieldStatus:
		v, ok := value.(assessmentsession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case assessmentsession.FieldTimeLimitMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimitMs(v)
		return nil
	case assessmentsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case assessmentsession.FieldPausedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPausedAt(v)
		return nil
	case assessmentsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentSessionMutation) AddedFields() []string {
	var fields []string
	if m.addround_index != nil {
		fields = append(fields, assessmentsession.FieldRoundIndex)
	}
	if m.addtime_limit_ms != nil {
		fields = append(fields, assessmentsession.FieldTimeLimitMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentsession.FieldRoundIndex:
		return m.AddedRoundIndex()
	case assessmentsession.FieldTimeLimitMs:
		return m.AddedTimeLimitMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentsession.FieldRoundIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoundIndex(v)
		return nil
	case assessmentsession.FieldTimeLimitMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimitMs(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessmentsession.FieldStartedAt) {
		fields = append(fields, assessmentsession.FieldStartedAt)
	}
	if m.FieldCleared(assessmentsession.FieldPausedAt) {
		fields = append(fields, assessmentsession.FieldPausedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentSessionMutation) ClearField(name string) error {
	switch name {
	case assessmentsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case assessmentsession.FieldPausedAt:
		m.ClearPausedAt()
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentSessionMutation) ResetField(name string) error {
	switch name {
	case assessmentsession.FieldUserID:
		m.ResetUserID()
		return nil
	case assessmentsession.FieldSurveyID:
		m.ResetSurveyID()
		return nil
	case assessmentsession.FieldRoundIndex:
		m.ResetRoundIndex()
		return nil
	case assessmentsession.FieldStatus:
		m.ResetStatus()
		return nil
	case assessmentsession.FieldTimeLimitMs:
		m.ResetTimeLimitMs()
		return nil
	case assessmentsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case assessmentsession.FieldPausedAt:
		m.ResetPausedAt()
		return nil
	case assessmentsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.survey != nil {
		edges = append(edges, assessmentsession.EdgeSurvey)
	}
	if m.questions != nil {
		edges = append(edges, assessmentsession.EdgeQuestions)
	}
	if m.attempt_answers != nil {
		edges = append(edges, assessmentsession.EdgeAttemptAnswers)
	}
	if m.round_result != nil {
		edges = append(edges, assessmentsession.EdgeRoundResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assessmentsession.EdgeSurvey:
		if id := m.survey; id != nil {
			return []ent.Value{*id}
		}
	case assessmentsession.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	case assessmentsession.EdgeAttemptAnswers:
		ids := make([]ent.Value, 0, len(m.attempt_answers))
		for id := range m.attempt_answers {
			ids = append(ids, id)
		}
		return ids
	case assessmentsession.EdgeRoundResult:
		if id := m.round_result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedquestions != nil {
		edges = append(edges, assessmentsession.EdgeQuestions)
	}
	if m.removedattempt_answers != nil {
		edges = append(edges, assessmentsession.EdgeAttemptAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case assessmentsession.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	case assessmentsession.EdgeAttemptAnswers:
		ids := make([]ent.Value, 0, len(m.removedattempt_answers))
		for id := range m.removedattempt_answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsurvey {
		edges = append(edges, assessmentsession.EdgeSurvey)
	}
	if m.clearedquestions {
		edges = append(edges, assessmentsession.EdgeQuestions)
	}
	if m.clearedattempt_answers {
		edges = append(edges, assessmentsession.EdgeAttemptAnswers)
	}
	if m.clearedround_result {
		edges = append(edges, assessmentsession.EdgeRoundResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case assessmentsession.EdgeSurvey:
		return m.clearedsurvey
	case assessmentsession.EdgeQuestions:
		return m.clearedquestions
	case assessmentsession.EdgeAttemptAnswers:
		return m.clearedattempt_answers
	case assessmentsession.EdgeRoundResult:
		return m.clearedround_result
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentSessionMutation) ClearEdge(name string) error {
	switch name {
	case assessmentsession.EdgeSurvey:
		m.ClearSurvey()
		return nil
	case assessmentsession.EdgeRoundResult:
		m.ClearRoundResult()
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentSessionMutation) ResetEdge(name string) error {
	switch name {
	case assessmentsession.EdgeSurvey:
		m.ResetSurvey()
		return nil
	case assessmentsession.EdgeQuestions:
		m.ResetQuestions()
		return nil
	case assessmentsession.EdgeAttemptAnswers:
		m.ResetAttemptAnswers()
		return nil
	case assessmentsession.EdgeRoundResult:
		m.ResetRoundResult()
		return nil
	}
	return fmt.Errorf("unknown AssessmentSession edge %s", name)
}

// AttemptAnswerMutation represents an operation that mutates the AttemptAnswer nodes in the graph.
type AttemptAnswerMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	question_id         *string
	user_answer         *map[string]interface{}
	response_time_ms    *int64
	addresponse_time_ms *int64
	is_correct          *bool
	score               *float64
	addscore            *float64
	saved_at            *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	session             *string
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*AttemptAnswer, error)
	predicates          []predicate.AttemptAnswer
}

var _ ent.Mutation = (*AttemptAnswerMutation)(nil)

// attemptanswerOption allows management of the mutation configuration using functional options.
type attemptanswerOption func(*AttemptAnswerMutation)

// newAttemptAnswerMutation creates new mutation for the AttemptAnswer entity.
func newAttemptAnswerMutation(c config, op Op, opts ...attemptanswerOption) *AttemptAnswerMutation {
	m := &AttemptAnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptAnswerID sets the ID field of the mutation.
func withAttemptAnswerID(id string) attemptanswerOption {
	return func(m *AttemptAnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptAnswer
		)
		m.oldValue = func(ctx context.Context) (*AttemptAnswer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptAnswer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptAnswer sets the old AttemptAnswer of the mutation.
func withAttemptAnswer(node *AttemptAnswer) attemptanswerOption {
	return func(m *AttemptAnswerMutation) {
		m.oldValue = func(context.Context) (*AttemptAnswer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptAnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptAnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AttemptAnswer entities.
func (m *AttemptAnswerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptAnswerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptAnswerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptAnswer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AttemptAnswerMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AttemptAnswerMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AttemptAnswer entity.
// If the AttemptAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptAnswerMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AttemptAnswerMutation) ResetSessionID() {
	m.session = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AttemptAnswerMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AttemptAnswerMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AttemptAnswer entity.
// If the AttemptAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptAnswerMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AttemptAnswerMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetUserAnswer sets the "user_answer" field.
func (m *AttemptAnswerMutation) SetUserAnswer(value map[string]interface{}) {
	m.user_answer = &value
}

// UserAnswer returns the value of the "user_answer" field in the mutation.
func (m *AttemptAnswerMutation) UserAnswer() (r map[string]interface{}, exists bool) {
	v := m.user_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAnswer returns the old "user_answer" field's value of the AttemptAnswer entity.
// If the AttemptAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptAnswerMutation) OldUserAnswer(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAnswer: %w", err)
	}
	return oldValue.UserAnswer, nil
}

// ResetUserAnswer resets all changes to the "user_answer" field.
func (m *AttemptAnswerMutation) ResetUserAnswer() {
	m.user_answer = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *AttemptAnswerMutation) SetResponseTimeMs(i int64) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *AttemptAnswerMutation) ResponseTimeMs() (r int64, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the AttemptAnswer entity.
// If the AttemptAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptAnswerMutation) OldResponseTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *AttemptAnswerMutation) AddResponseTimeMs(i int64) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *AttemptAnswerMutation) AddedResponseTimeMs() (r int64, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *AttemptAnswerMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *AttemptAnswerMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *AttemptAnswerMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the AttemptAnswer entity.
// If the AttemptAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptAnswerMutation) OldIsCorrect(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ClearIsCorrect clears the value of the "is_correct" field.
func (m *AttemptAnswerMutation) ClearIsCorrect() {
	m.is_correct = nil
	m.clearedFields[attemptanswer.FieldIsCorrect] = struct{}{}
}

// IsCorrectCleared returns if the "is_correct" field was cleared in this mutation.
func (m *AttemptAnswerMutation) IsCorrectCleared() bool {
	_, ok := m.clearedFields[attemptanswer.FieldIsCorrect]
	return ok
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *AttemptAnswerMutation) ResetIsCorrect() {
	m.is_correct = nil
	delete(m.clearedFields, attemptanswer.FieldIsCorrect)
}

// SetScore sets the "score" field.
func (m *AttemptAnswerMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *AttemptAnswerMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the AttemptAnswer entity.
// If the AttemptAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptAnswerMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *AttemptAnswerMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *AttemptAnswerMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *AttemptAnswerMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[attemptanswer.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *AttemptAnswerMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[attemptanswer.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *AttemptAnswerMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, attemptanswer.FieldScore)
}

// SetSavedAt sets the "saved_at" field.
func (m *AttemptAnswerMutation) SetSavedAt(t time.Time) {
	m.saved_at = &t
}

// SavedAt returns the value of the "saved_at" field in the mutation.
func (m *AttemptAnswerMutation) SavedAt() (r time.Time, exists bool) {
	v := m.saved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSavedAt returns the old "saved_at" field's value of the AttemptAnswer entity.
// If the AttemptAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptAnswerMutation) OldSavedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSavedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSavedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSavedAt: %w", err)
	}
	return oldValue.SavedAt, nil
}

// ResetSavedAt resets all changes to the "saved_at" field.
func (m *AttemptAnswerMutation) ResetSavedAt() {
	m.saved_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttemptAnswerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttemptAnswerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AttemptAnswer entity.
// If the AttemptAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptAnswerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttemptAnswerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AssessmentSession entity.
func (m *AttemptAnswerMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[attemptanswer.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AssessmentSession entity was cleared.
func (m *AttemptAnswerMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *AttemptAnswerMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *AttemptAnswerMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the AttemptAnswerMutation builder.
func (m *AttemptAnswerMutation) Where(ps ...predicate.AttemptAnswer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptAnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptAnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptAnswer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptAnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptAnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptAnswer).
func (m *AttemptAnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptAnswerMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, attemptanswer.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, attemptanswer.FieldQuestionID)
	}
	if m.user_answer != nil {
		fields = append(fields, attemptanswer.FieldUserAnswer)
	}
	if m.response_time_ms != nil {
		fields = append(fields, attemptanswer.FieldResponseTimeMs)
	}
	if m.is_correct != nil {
		fields = append(fields, attemptanswer.FieldIsCorrect)
	}
	if m.score != nil {
		fields = append(fields, attemptanswer.FieldScore)
	}
	if m.saved_at != nil {
		fields = append(fields, attemptanswer.FieldSavedAt)
	}
	if m.created_at != nil {
		fields = append(fields, attemptanswer.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptAnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptanswer.FieldSessionID:
		return m.SessionID()
	case attemptanswer.FieldQuestionID:
		return m.QuestionID()
	case attemptanswer.FieldUserAnswer:
		return m.UserAnswer()
	case attemptanswer.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case attemptanswer.FieldIsCorrect:
		return m.IsCorrect()
	case attemptanswer.FieldScore:
		return m.Score()
	case attemptanswer.FieldSavedAt:
		return m.SavedAt()
	case attemptanswer.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptAnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptanswer.FieldSessionID:
		return m.OldSessionID(ctx)
	case attemptanswer.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case attemptanswer.FieldUserAnswer:
		return m.OldUserAnswer(ctx)
	case attemptanswer.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case attemptanswer.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case attemptanswer.FieldScore:
		return m.OldScore(ctx)
	case attemptanswer.FieldSavedAt:
		return m.OldSavedAt(ctx)
	case attemptanswer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptAnswer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptAnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptanswer.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case attemptanswer.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case attemptanswer.FieldUserAnswer:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAnswer(v)
		return nil
	case attemptanswer.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case attemptanswer.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case attemptanswer.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case attemptanswer.FieldSavedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSavedAt(v)
		return nil
	case attemptanswer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptAnswer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptAnswerMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_time_ms != nil {
		fields = append(fields, attemptanswer.FieldResponseTimeMs)
	}
	if m.addscore != nil {
		fields = append(fields, attemptanswer.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptAnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptanswer.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	case attemptanswer.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptAnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptanswer.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	case attemptanswer.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptAnswer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptAnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attemptanswer.FieldIsCorrect) {
		fields = append(fields, attemptanswer.FieldIsCorrect)
	}
	if m.FieldCleared(attemptanswer.FieldScore) {
		fields = append(fields, attemptanswer.FieldScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptAnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptAnswerMutation) ClearField(name string) error {
	switch name {
	case attemptanswer.FieldIsCorrect:
		m.ClearIsCorrect()
		return nil
	case attemptanswer.FieldScore:
		m.ClearScore()
		return nil
	}
	return fmt.Errorf("unknown AttemptAnswer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptAnswerMutation) ResetField(name string) error {
	switch name {
	case attemptanswer.FieldSessionID:
		m.ResetSessionID()
		return nil
	case attemptanswer.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case attemptanswer.FieldUserAnswer:
		m.ResetUserAnswer()
		return nil
	case attemptanswer.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case attemptanswer.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case attemptanswer.FieldScore:
		m.ResetScore()
		return nil
	case attemptanswer.FieldSavedAt:
		m.ResetSavedAt()
		return nil
	case attemptanswer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AttemptAnswer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptAnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, attemptanswer.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptAnswerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attemptanswer.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptAnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptAnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptAnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, attemptanswer.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptAnswerMutation) EdgeCleared(name string) bool {
	switch name {
	case attemptanswer.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptAnswerMutation) ClearEdge(name string) error {
	switch name {
	case attemptanswer.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown AttemptAnswer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptAnswerMutation) ResetEdge(name string) error {
	switch name {
	case attemptanswer.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown AttemptAnswer edge %s", name)
}

// ProfileSurveyMutation represents an operation that mutates the ProfileSurvey nodes in the graph.
type ProfileSurveyMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	self_level      *profilesurvey.SelfLevel
	years           *int
	addyears        *int
	job_role        *string
	duty            *string
	interests       *[]string
	appendinterests []string
	submitted_at    *time.Time
	clearedFields   map[string]struct{}
	sessions        map[string]struct{}
	removedsessions map[string]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*ProfileSurvey, error)
	predicates      []predicate.ProfileSurvey
}

var _ ent.Mutation = (*ProfileSurveyMutation)(nil)

// profilesurveyOption allows management of the mutation configuration using functional options.
type profilesurveyOption func(*ProfileSurveyMutation)

// newProfileSurveyMutation creates new mutation for the ProfileSurvey entity.
func newProfileSurveyMutation(c config, op Op, opts ...profilesurveyOption) *ProfileSurveyMutation {
	m := &ProfileSurveyMutation{
		config:        c,
		op:            op,
		typ:           TypeProfileSurvey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileSurveyID sets the ID field of the mutation.
func withProfileSurveyID(id string) profilesurveyOption {
	return func(m *ProfileSurveyMutation) {
		var (
			err   error
			once  sync.Once
			value *ProfileSurvey
		)
		m.oldValue = func(ctx context.Context) (*ProfileSurvey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProfileSurvey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfileSurvey sets the old ProfileSurvey of the mutation.
func withProfileSurvey(node *ProfileSurvey) profilesurveyOption {
	return func(m *ProfileSurveyMutation) {
		m.oldValue = func(context.Context) (*ProfileSurvey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileSurveyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileSurveyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProfileSurvey entities.
func (m *ProfileSurveyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileSurveyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileSurveyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProfileSurvey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ProfileSurveyMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProfileSurveyMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ProfileSurvey entity.
// If the ProfileSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSurveyMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ProfileSurveyMutation) ResetUserID() {
	m.user_id = nil
}

// SetSelfLevel sets the "self_level" field.
func (m *ProfileSurveyMutation) SetSelfLevel(pl profilesurvey.SelfLevel) {
	m.self_level = &pl
}

// SelfLevel returns the value of the "self_level" field in the mutation.
func (m *ProfileSurveyMutation) SelfLevel() (r profilesurvey.SelfLevel, exists bool) {
	v := m.self_level
	if v == nil {
		return
	}
	return *v, true
}

// OldSelfLevel returns the old "self_level" field's value of the ProfileSurvey entity.
// If the ProfileSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSurveyMutation) OldSelfLevel(ctx context.Context) (v profilesurvey.SelfLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelfLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelfLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelfLevel: %w", err)
	}
	return oldValue.SelfLevel, nil
}

// ResetSelfLevel resets all changes to the "self_level" field.
func (m *ProfileSurveyMutation) ResetSelfLevel() {
	m.self_level = nil
}

// SetYears sets the "years" field.
func (m *ProfileSurveyMutation) SetYears(i int) {
	m.years = &i
	m.addyears = nil
}

// Years returns the value of the "years" field in the mutation.
func (m *ProfileSurveyMutation) Years() (r int, exists bool) {
	v := m.years
	if v == nil {
		return
	}
	return *v, true
}

// OldYears returns the old "years" field's value of the ProfileSurvey entity.
// If the ProfileSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSurveyMutation) OldYears(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYears is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYears requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYears: %w", err)
	}
	return oldValue.Years, nil
}

// AddYears adds i to the "years" field.
func (m *ProfileSurveyMutation) AddYears(i int) {
	if m.addyears != nil {
		*m.addyears += i
	} else {
		m.addyears = &i
	}
}

// AddedYears returns the value that was added to the "years" field in this mutation.
func (m *ProfileSurveyMutation) AddedYears() (r int, exists bool) {
	v := m.addyears
	if v == nil {
		return
	}
	return *v, true
}

// ResetYears resets all changes to the "years" field.
func (m *ProfileSurveyMutation) ResetYears() {
	m.years = nil
	m.addyears = nil
}

// SetJobRole sets the "job_role" field.
func (m *ProfileSurveyMutation) SetJobRole(s string) {
	m.job_role = &s
}

// JobRole returns the value of the "job_role" field in the mutation.
func (m *ProfileSurveyMutation) JobRole() (r string, exists bool) {
	v := m.job_role
	if v == nil {
		return
	}
	return *v, true
}

// OldJobRole returns the old "job_role" field's value of the ProfileSurvey entity.
// If the ProfileSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSurveyMutation) OldJobRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobRole: %w", err)
	}
	return oldValue.JobRole, nil
}

// ClearJobRole clears the value of the "job_role" field.
func (m *ProfileSurveyMutation) ClearJobRole() {
	m.job_role = nil
	m.clearedFields[profilesurvey.FieldJobRole] = struct{}{}
}

// JobRoleCleared returns if the "job_role" field was cleared in this mutation.
func (m *ProfileSurveyMutation) JobRoleCleared() bool {
	_, ok := m.clearedFields[profilesurvey.FieldJobRole]
	return ok
}

// ResetJobRole resets all changes to the "job_role" field.
func (m *ProfileSurveyMutation) ResetJobRole() {
	m.job_role = nil
	delete(m.clearedFields, profilesurvey.FieldJobRole)
}

// SetDuty sets the "duty" field.
func (m *ProfileSurveyMutation) SetDuty(s string) {
	m.duty = &s
}

// Duty returns the value of the "duty" field in the mutation.
func (m *ProfileSurveyMutation) Duty() (r string, exists bool) {
	v := m.duty
	if v == nil {
		return
	}
	return *v, true
}

// OldDuty returns the old "duty" field's value of the ProfileSurvey entity.
// If the ProfileSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSurveyMutation) OldDuty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuty: %w", err)
	}
	return oldValue.Duty, nil
}

// ClearDuty clears the value of the "duty" field.
func (m *ProfileSurveyMutation) ClearDuty() {
	m.duty = nil
	m.clearedFields[profilesurvey.FieldDuty] = struct{}{}
}

// DutyCleared returns if the "duty" field was cleared in this mutation.
func (m *ProfileSurveyMutation) DutyCleared() bool {
	_, ok := m.clearedFields[profilesurvey.FieldDuty]
	return ok
}

// ResetDuty resets all changes to the "duty" field.
func (m *ProfileSurveyMutation) ResetDuty() {
	m.duty = nil
	delete(m.clearedFields, profilesurvey.FieldDuty)
}

// SetInterests sets the "interests" field.
func (m *ProfileSurveyMutation) SetInterests(s []string) {
	m.interests = &s
	m.appendinterests = nil
}

// Interests returns the value of the "interests" field in the mutation.
func (m *ProfileSurveyMutation) Interests() (r []string, exists bool) {
	v := m.interests
	if v == nil {
		return
	}
	return *v, true
}

// OldInterests returns the old "interests" field's value of the ProfileSurvey entity.
// If the ProfileSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSurveyMutation) OldInterests(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterests: %w", err)
	}
	return oldValue.Interests, nil
}

// AppendInterests adds s to the "interests" field.
func (m *ProfileSurveyMutation) AppendInterests(s []string) {
	m.appendinterests = append(m.appendinterests, s...)
}

// AppendedInterests returns the list of values that were appended to the "interests" field in this mutation.
func (m *ProfileSurveyMutation) AppendedInterests() ([]string, bool) {
	if len(m.appendinterests) == 0 {
		return nil, false
	}
	return m.appendinterests, true
}

// ResetInterests resets all changes to the "interests" field.
func (m *ProfileSurveyMutation) ResetInterests() {
	m.interests = nil
	m.appendinterests = nil
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *ProfileSurveyMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *ProfileSurveyMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the ProfileSurvey entity.
// If the ProfileSurvey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileSurveyMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *ProfileSurveyMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// AddSessionIDs adds the "sessions" edge to the AssessmentSession entity by ids.
func (m *ProfileSurveyMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the AssessmentSession entity.
func (m *ProfileSurveyMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the AssessmentSession entity was cleared.
func (m *ProfileSurveyMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the AssessmentSession entity by IDs.
func (m *ProfileSurveyMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the AssessmentSession entity.
func (m *ProfileSurveyMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ProfileSurveyMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ProfileSurveyMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the ProfileSurveyMutation builder.
func (m *ProfileSurveyMutation) Where(ps ...predicate.ProfileSurvey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileSurveyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileSurveyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProfileSurvey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileSurveyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileSurveyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProfileSurvey).
func (m *ProfileSurveyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileSurveyMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, profilesurvey.FieldUserID)
	}
	if m.self_level != nil {
		fields = append(fields, profilesurvey.FieldSelfLevel)
	}
	if m.years != nil {
		fields = append(fields, profilesurvey.FieldYears)
	}
	if m.job_role != nil {
		fields = append(fields, profilesurvey.FieldJobRole)
	}
	if m.duty != nil {
		fields = append(fields, profilesurvey.FieldDuty)
	}
	if m.interests != nil {
		fields = append(fields, profilesurvey.FieldInterests)
	}
	if m.submitted_at != nil {
		fields = append(fields, profilesurvey.FieldSubmittedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileSurveyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profilesurvey.FieldUserID:
		return m.UserID()
	case profilesurvey.FieldSelfLevel:
		return m.SelfLevel()
	case profilesurvey.FieldYears:
		return m.Years()
	case profilesurvey.FieldJobRole:
		return m.JobRole()
	case profilesurvey.FieldDuty:
		return m.Duty()
	case profilesurvey.FieldInterests:
		return m.Interests()
	case profilesurvey.FieldSubmittedAt:
		return m.SubmittedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileSurveyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profilesurvey.FieldUserID:
		return m.OldUserID(ctx)
	case profilesurvey.FieldSelfLevel:
		return m.OldSelfLevel(ctx)
	case profilesurvey.FieldYears:
		return m.OldYears(ctx)
	case profilesurvey.FieldJobRole:
		return m.OldJobRole(ctx)
	case profilesurvey.FieldDuty:
		return m.OldDuty(ctx)
	case profilesurvey.FieldInterests:
		return m.OldInterests(ctx)
	case profilesurvey.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProfileSurvey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileSurveyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profilesurvey.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case profilesurvey.FieldSelfLevel:
		v, ok := value.(profilesurvey.SelfLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelfLevel(v)
		return nil
	case profilesurvey.FieldYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYears(v)
		return nil
	case profilesurvey.FieldJobRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobRole(v)
		return nil
	case profilesurvey.FieldDuty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuty(v)
		return nil
	case profilesurvey.FieldInterests:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterests(v)
		return nil
	case profilesurvey.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProfileSurvey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileSurveyMutation) AddedFields() []string {
	var fields []string
	if m.addyears != nil {
		fields = append(fields, profilesurvey.FieldYears)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileSurveyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case profilesurvey.FieldYears:
		return m.AddedYears()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileSurveyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case profilesurvey.FieldYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYears(v)
		return nil
	}
	return fmt.Errorf("unknown ProfileSurvey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileSurveyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(profilesurvey.FieldJobRole) {
		fields = append(fields, profilesurvey.FieldJobRole)
	}
	if m.FieldCleared(profilesurvey.FieldDuty) {
		fields = append(fields, profilesurvey.FieldDuty)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileSurveyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileSurveyMutation) ClearField(name string) error {
	switch name {
	case profilesurvey.FieldJobRole:
		m.ClearJobRole()
		return nil
	case profilesurvey.FieldDuty:
		m.ClearDuty()
		return nil
	}
	return fmt.Errorf("unknown ProfileSurvey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileSurveyMutation) ResetField(name string) error {
	switch name {
	case profilesurvey.FieldUserID:
		m.ResetUserID()
		return nil
	case profilesurvey.FieldSelfLevel:
		m.ResetSelfLevel()
		return nil
	case profilesurvey.FieldYears:
		m.ResetYears()
		return nil
	case profilesurvey.FieldJobRole:
		m.ResetJobRole()
		return nil
	case profilesurvey.FieldDuty:
		m.ResetDuty()
		return nil
	case profilesurvey.FieldInterests:
		m.ResetInterests()
		return nil
	case profilesurvey.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown ProfileSurvey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileSurveyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sessions != nil {
		edges = append(edges, profilesurvey.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileSurveyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profilesurvey.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileSurveyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsessions != nil {
		edges = append(edges, profilesurvey.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileSurveyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profilesurvey.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileSurveyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsessions {
		edges = append(edges, profilesurvey.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileSurveyMutation) EdgeCleared(name string) bool {
	switch name {
	case profilesurvey.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileSurveyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ProfileSurvey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileSurveyMutation) ResetEdge(name string) error {
	switch name {
	case profilesurvey.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown ProfileSurvey edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	ordinal        *int
	addordinal     *int
	item_type      *question.ItemType
	stem           *string
	choices        *[]string
	appendchoices  []string
	answer_schema  *models.AnswerSchema
	difficulty     *int
	adddifficulty  *int
	category       *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Question, error)
	predicates     []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id string) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *QuestionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuestionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *QuestionMutation) ResetSessionID() {
	m.session = nil
}

// SetOrdinal sets the "ordinal" field.
func (m *QuestionMutation) SetOrdinal(i int) {
	m.ordinal = &i
	m.addordinal = nil
}

// Ordinal returns the value of the "ordinal" field in the mutation.
func (m *QuestionMutation) Ordinal() (r int, exists bool) {
	v := m.ordinal
	if v == nil {
		return
	}
	return *v, true
}

// OldOrdinal returns the old "ordinal" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOrdinal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrdinal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrdinal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrdinal: %w", err)
	}
	return oldValue.Ordinal, nil
}

// AddOrdinal adds i to the "ordinal" field.
func (m *QuestionMutation) AddOrdinal(i int) {
	if m.addordinal != nil {
		*m.addordinal += i
	} else {
		m.addordinal = &i
	}
}

// AddedOrdinal returns the value that was added to the "ordinal" field in this mutation.
func (m *QuestionMutation) AddedOrdinal() (r int, exists bool) {
	v := m.addordinal
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrdinal resets all changes to the "ordinal" field.
func (m *QuestionMutation) ResetOrdinal() {
	m.ordinal = nil
	m.addordinal = nil
}

// SetItemType sets the "item_type" field.
func (m *QuestionMutation) SetItemType(qt question.ItemType) {
	m.item_type = &qt
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *QuestionMutation) ItemType() (r question.ItemType, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldItemType(ctx context.Context) (v question.ItemType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *QuestionMutation) ResetItemType() {
	m.item_type = nil
}

// SetStem sets the "stem" field.
func (m *QuestionMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *QuestionMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *QuestionMutation) ResetStem() {
	m.stem = nil
}

// SetChoices sets the "choices" field.
func (m *QuestionMutation) SetChoices(s []string) {
	m.choices = &s
	m.appendchoices = nil
}

// Choices returns the value of the "choices" field in the mutation.
func (m *QuestionMutation) Choices() (r []string, exists bool) {
	v := m.choices
	if v == nil {
		return
	}
	return *v, true
}

// OldChoices returns the old "choices" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldChoices(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoices: %w", err)
	}
	return oldValue.Choices, nil
}

// AppendChoices adds s to the "choices" field.
func (m *QuestionMutation) AppendChoices(s []string) {
	m.appendchoices = append(m.appendchoices, s...)
}

// AppendedChoices returns the list of values that were appended to the "choices" field in this mutation.
func (m *QuestionMutation) AppendedChoices() ([]string, bool) {
	if len(m.appendchoices) == 0 {
		return nil, false
	}
	return m.appendchoices, true
}

// ClearChoices clears the value of the "choices" field.
func (m *QuestionMutation) ClearChoices() {
	m.choices = nil
	m.appendchoices = nil
	m.clearedFields[question.FieldChoices] = struct{}{}
}

// ChoicesCleared returns if the "choices" field was cleared in this mutation.
func (m *QuestionMutation) ChoicesCleared() bool {
	_, ok := m.clearedFields[question.FieldChoices]
	return ok
}

// ResetChoices resets all changes to the "choices" field.
func (m *QuestionMutation) ResetChoices() {
	m.choices = nil
	m.appendchoices = nil
	delete(m.clearedFields, question.FieldChoices)
}

// SetAnswerSchema sets the "answer_schema" field.
func (m *QuestionMutation) SetAnswerSchema(ms models.AnswerSchema) {
	m.answer_schema = &ms
}

// AnswerSchema returns the value of the "answer_schema" field in the mutation.
func (m *QuestionMutation) AnswerSchema() (r models.AnswerSchema, exists bool) {
	v := m.answer_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerSchema returns the old "answer_schema" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAnswerSchema(ctx context.Context) (v models.AnswerSchema, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerSchema: %w", err)
	}
	return oldValue.AnswerSchema, nil
}

// ResetAnswerSchema resets all changes to the "answer_schema" field.
func (m *QuestionMutation) ResetAnswerSchema() {
	m.answer_schema = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *QuestionMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *QuestionMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetCategory sets the "category" field.
func (m *QuestionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *QuestionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *QuestionMutation) ResetCategory() {
	m.category = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AssessmentSession entity.
func (m *QuestionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[question.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AssessmentSession entity was cleared.
func (m *QuestionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *QuestionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, question.FieldSessionID)
	}
	if m.ordinal != nil {
		fields = append(fields, question.FieldOrdinal)
	}
	if m.item_type != nil {
		fields = append(fields, question.FieldItemType)
	}
	if m.stem != nil {
		fields = append(fields, question.FieldStem)
	}
	if m.choices != nil {
		fields = append(fields, question.FieldChoices)
	}
	if m.answer_schema != nil {
		fields = append(fields, question.FieldAnswerSchema)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.category != nil {
		fields = append(fields, question.FieldCategory)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldSessionID:
		return m.SessionID()
	case question.FieldOrdinal:
		return m.Ordinal()
	case question.FieldItemType:
		return m.ItemType()
	case question.FieldStem:
		return m.Stem()
	case question.FieldChoices:
		return m.Choices()
	case question.FieldAnswerSchema:
		return m.AnswerSchema()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldCategory:
		return m.Category()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldSessionID:
		return m.OldSessionID(ctx)
	case question.FieldOrdinal:
		return m.OldOrdinal(ctx)
	case question.FieldItemType:
		return m.OldItemType(ctx)
	case question.FieldStem:
		return m.OldStem(ctx)
	case question.FieldChoices:
		return m.OldChoices(ctx)
	case question.FieldAnswerSchema:
		return m.OldAnswerSchema(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldCategory:
		return m.OldCategory(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case question.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrdinal(v)
		return nil
	case question.FieldItemType:
		v, ok := value.(question.ItemType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case question.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case question.FieldChoices:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoices(v)
		return nil
	case question.FieldAnswerSchema:
		v, ok := value.(models.AnswerSchema)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerSchema(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addordinal != nil {
		fields = append(fields, question.FieldOrdinal)
	}
	if m.adddifficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldOrdinal:
		return m.AddedOrdinal()
	case question.FieldDifficulty:
		return m.AddedDifficulty()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldOrdinal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrdinal(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldChoices) {
		fields = append(fields, question.FieldChoices)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldChoices:
		m.ClearChoices()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldSessionID:
		m.ResetSessionID()
		return nil
	case question.FieldOrdinal:
		m.ResetOrdinal()
		return nil
	case question.FieldItemType:
		m.ResetItemType()
		return nil
	case question.FieldStem:
		m.ResetStem()
		return nil
	case question.FieldChoices:
		m.ResetChoices()
		return nil
	case question.FieldAnswerSchema:
		m.ResetAnswerSchema()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldCategory:
		m.ResetCategory()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, question.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, question.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	case question.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// RoundResultMutation represents an operation that mutates the RoundResult nodes in the graph.
type RoundResultMutation struct {
	config
	op               Op
	typ              string
	id               *string
	round_index      *int
	addround_index   *int
	score            *float64
	addscore         *float64
	correct_count    *int
	addcorrect_count *int
	total_count      *int
	addtotal_count   *int
	wrong_categories *map[string]int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*RoundResult, error)
	predicates       []predicate.RoundResult
}

var _ ent.Mutation = (*RoundResultMutation)(nil)

// roundresultOption allows management of the mutation configuration using functional options.
type roundresultOption func(*RoundResultMutation)

// newRoundResultMutation creates new mutation for the RoundResult entity.
func newRoundResultMutation(c config, op Op, opts ...roundresultOption) *RoundResultMutation {
	m := &RoundResultMutation{
		config:        c,
		op:            op,
		typ:           TypeRoundResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoundResultID sets the ID field of the mutation.
func withRoundResultID(id string) roundresultOption {
	return func(m *RoundResultMutation) {
		var (
			err   error
			once  sync.Once
			value *RoundResult
		)
		m.oldValue = func(ctx context.Context) (*RoundResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoundResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoundResult sets the old RoundResult of the mutation.
func withRoundResult(node *RoundResult) roundresultOption {
	return func(m *RoundResultMutation) {
		m.oldValue = func(context.Context) (*RoundResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoundResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoundResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoundResult entities.
func (m *RoundResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoundResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoundResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoundResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *RoundResultMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RoundResultMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RoundResult entity.
// If the RoundResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundResultMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RoundResultMutation) ResetSessionID() {
	m.session = nil
}

// SetRoundIndex sets the "round_index" field.
func (m *RoundResultMutation) SetRoundIndex(i int) {
	m.round_index = &i
	m.addround_index = nil
}

// RoundIndex returns the value of the "round_index" field in the mutation.
func (m *RoundResultMutation) RoundIndex() (r int, exists bool) {
	v := m.round_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundIndex returns the old "round_index" field's value of the RoundResult entity.
// If the RoundResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundResultMutation) OldRoundIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundIndex: %w", err)
	}
	return oldValue.RoundIndex, nil
}

// AddRoundIndex adds i to the "round_index" field.
func (m *RoundResultMutation) AddRoundIndex(i int) {
	if m.addround_index != nil {
		*m.addround_index += i
	} else {
		m.addround_index = &i
	}
}

// AddedRoundIndex returns the value that was added to the "round_index" field in this mutation.
func (m *RoundResultMutation) AddedRoundIndex() (r int, exists bool) {
	v := m.addround_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoundIndex resets all changes to the "round_index" field.
func (m *RoundResultMutation) ResetRoundIndex() {
	m.round_index = nil
	m.addround_index = nil
}

// SetScore sets the "score" field.
func (m *RoundResultMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *RoundResultMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the RoundResult entity.
// If the RoundResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundResultMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *RoundResultMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *RoundResultMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *RoundResultMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *RoundResultMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *RoundResultMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the RoundResult entity.
// If the RoundResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundResultMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *RoundResultMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *RoundResultMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *RoundResultMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetTotalCount sets the "total_count" field.
func (m *RoundResultMutation) SetTotalCount(i int) {
	m.total_count = &i
	m.addtotal_count = nil
}

// TotalCount returns the value of the "total_count" field in the mutation.
func (m *RoundResultMutation) TotalCount() (r int, exists bool) {
	v := m.total_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCount returns the old "total_count" field's value of the RoundResult entity.
// If the RoundResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundResultMutation) OldTotalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCount: %w", err)
	}
	return oldValue.TotalCount, nil
}

// AddTotalCount adds i to the "total_count" field.
func (m *RoundResultMutation) AddTotalCount(i int) {
	if m.addtotal_count != nil {
		*m.addtotal_count += i
	} else {
		m.addtotal_count = &i
	}
}

// AddedTotalCount returns the value that was added to the "total_count" field in this mutation.
func (m *RoundResultMutation) AddedTotalCount() (r int, exists bool) {
	v := m.addtotal_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCount resets all changes to the "total_count" field.
func (m *RoundResultMutation) ResetTotalCount() {
	m.total_count = nil
	m.addtotal_count = nil
}

// SetWrongCategories sets the "wrong_categories" field.
func (m *RoundResultMutation) SetWrongCategories(value map[string]int) {
	m.wrong_categories = &value
}

// WrongCategories returns the value of the "wrong_categories" field in the mutation.
func (m *RoundResultMutation) WrongCategories() (r map[string]int, exists bool) {
	v := m.wrong_categories
	if v == nil {
		return
	}
	return *v, true
}

// OldWrongCategories returns the old "wrong_categories" field's value of the RoundResult entity.
// If the RoundResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundResultMutation) OldWrongCategories(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWrongCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWrongCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWrongCategories: %w", err)
	}
	return oldValue.WrongCategories, nil
}

// ResetWrongCategories resets all changes to the "wrong_categories" field.
func (m *RoundResultMutation) ResetWrongCategories() {
	m.wrong_categories = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoundResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoundResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoundResult entity.
// If the RoundResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoundResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoundResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the AssessmentSession entity.
func (m *RoundResultMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[roundresult.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the AssessmentSession entity was cleared.
func (m *RoundResultMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *RoundResultMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *RoundResultMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the RoundResultMutation builder.
func (m *RoundResultMutation) Where(ps ...predicate.RoundResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoundResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoundResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoundResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoundResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoundResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoundResult).
func (m *RoundResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoundResultMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, roundresult.FieldSessionID)
	}
	if m.round_index != nil {
		fields = append(fields, roundresult.FieldRoundIndex)
	}
	if m.score != nil {
		fields = append(fields, roundresult.FieldScore)
	}
	if m.correct_count != nil {
		fields = append(fields, roundresult.FieldCorrectCount)
	}
	if m.total_count != nil {
		fields = append(fields, roundresult.FieldTotalCount)
	}
	if m.wrong_categories != nil {
		fields = append(fields, roundresult.FieldWrongCategories)
	}
	if m.created_at != nil {
		fields = append(fields, roundresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoundResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case roundresult.FieldSessionID:
		return m.SessionID()
	case roundresult.FieldRoundIndex:
		return m.RoundIndex()
	case roundresult.FieldScore:
		return m.Score()
	case roundresult.FieldCorrectCount:
		return m.CorrectCount()
	case roundresult.FieldTotalCount:
		return m.TotalCount()
	case roundresult.FieldWrongCategories:
		return m.WrongCategories()
	case roundresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoundResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case roundresult.FieldSessionID:
		return m.OldSessionID(ctx)
	case roundresult.FieldRoundIndex:
		return m.OldRoundIndex(ctx)
	case roundresult.FieldScore:
		return m.OldScore(ctx)
	case roundresult.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case roundresult.FieldTotalCount:
		return m.OldTotalCount(ctx)
	case roundresult.FieldWrongCategories:
		return m.OldWrongCategories(ctx)
	case roundresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoundResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoundResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case roundresult.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case roundresult.FieldRoundIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundIndex(v)
		return nil
	case roundresult.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case roundresult.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case roundresult.FieldTotalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCount(v)
		return nil
	case roundresult.FieldWrongCategories:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWrongCategories(v)
		return nil
	case roundresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoundResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoundResultMutation) AddedFields() []string {
	var fields []string
	if m.addround_index != nil {
		fields = append(fields, roundresult.FieldRoundIndex)
	}
	if m.addscore != nil {
		fields = append(fields, roundresult.FieldScore)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, roundresult.FieldCorrectCount)
	}
	if m.addtotal_count != nil {
		fields = append(fields, roundresult.FieldTotalCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoundResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case roundresult.FieldRoundIndex:
		return m.AddedRoundIndex()
	case roundresult.FieldScore:
		return m.AddedScore()
	case roundresult.FieldCorrectCount:
		return m.AddedCorrectCount()
	case roundresult.FieldTotalCount:
		return m.AddedTotalCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoundResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case roundresult.FieldRoundIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoundIndex(v)
		return nil
	case roundresult.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case roundresult.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case roundresult.FieldTotalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCount(v)
		return nil
	}
	return fmt.Errorf("unknown RoundResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoundResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoundResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoundResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RoundResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoundResultMutation) ResetField(name string) error {
	switch name {
	case roundresult.FieldSessionID:
		m.ResetSessionID()
		return nil
	case roundresult.FieldRoundIndex:
		m.ResetRoundIndex()
		return nil
	case roundresult.FieldScore:
		m.ResetScore()
		return nil
	case roundresult.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case roundresult.FieldTotalCount:
		m.ResetTotalCount()
		return nil
	case roundresult.FieldWrongCategories:
		m.ResetWrongCategories()
		return nil
	case roundresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RoundResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoundResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, roundresult.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoundResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case roundresult.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoundResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoundResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoundResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, roundresult.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoundResultMutation) EdgeCleared(name string) bool {
	switch name {
	case roundresult.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoundResultMutation) ClearEdge(name string) error {
	switch name {
	case roundresult.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown RoundResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoundResultMutation) ResetEdge(name string) error {
	switch name {
	case roundresult.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown RoundResult edge %s", name)
}
