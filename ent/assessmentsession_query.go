// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/attemptanswer"
	"github.com/skillforge/skillforge/ent/predicate"
	"github.com/skillforge/skillforge/ent/profilesurvey"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/ent/roundresult"
)

// AssessmentSessionQuery is the builder for querying AssessmentSession entities.
type AssessmentSessionQuery struct {
	config
	ctx                *QueryContext
	order              []assessmentsession.OrderOption
	inters             []Interceptor
	predicates         []predicate.AssessmentSession
	withSurvey         *ProfileSurveyQuery
	withQuestions      *QuestionQuery
	withAttemptAnswers *AttemptAnswerQuery
	withRoundResult    *RoundResultQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AssessmentSessionQuery builder.
func (_q *AssessmentSessionQuery) Where(ps ...predicate.AssessmentSession) *AssessmentSessionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AssessmentSessionQuery) Limit(limit int) *AssessmentSessionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AssessmentSessionQuery) Offset(offset int) *AssessmentSessionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AssessmentSessionQuery) Unique(unique bool) *AssessmentSessionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AssessmentSessionQuery) Order(o ...assessmentsession.OrderOption) *AssessmentSessionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySurvey chains the current query on the "survey" edge.
func (_q *AssessmentSessionQuery) QuerySurvey() *ProfileSurveyQuery {
	query := (&ProfileSurveyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentsession.Table, assessmentsession.FieldID, selector),
			sqlgraph.To(profilesurvey.Table, profilesurvey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentsession.SurveyTable, assessmentsession.SurveyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryQuestions chains the current query on the "questions" edge.
func (_q *AssessmentSessionQuery) QueryQuestions() *QuestionQuery {
	query := (&QuestionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentsession.Table, assessmentsession.FieldID, selector),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessmentsession.QuestionsTable, assessmentsession.QuestionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAttemptAnswers chains the current query on the "attempt_answers" edge.
func (_q *AssessmentSessionQuery) QueryAttemptAnswers() *AttemptAnswerQuery {
	query := (&AttemptAnswerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentsession.Table, assessmentsession.FieldID, selector),
			sqlgraph.To(attemptanswer.Table, attemptanswer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessmentsession.AttemptAnswersTable, assessmentsession.AttemptAnswersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRoundResult chains the current query on the "round_result" edge.
func (_q *AssessmentSessionQuery) QueryRoundResult() *RoundResultQuery {
	query := (&RoundResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentsession.Table, assessmentsession.FieldID, selector),
			sqlgraph.To(roundresult.Table, roundresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, assessmentsession.RoundResultTable, assessmentsession.RoundResultColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first AssessmentSession entity from the query.
// Returns a *NotFoundError when no AssessmentSession was found.
func (_q *AssessmentSessionQuery) First(ctx context.Context) (*AssessmentSession, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{assessmentsession.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AssessmentSessionQuery) FirstX(ctx context.Context) *AssessmentSession {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AssessmentSession ID from the query.
// Returns a *NotFoundError when no AssessmentSession ID was found.
func (_q *AssessmentSessionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{assessmentsession.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AssessmentSessionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AssessmentSession entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AssessmentSession entity is found.
// Returns a *NotFoundError when no AssessmentSession entities are found.
func (_q *AssessmentSessionQuery) Only(ctx context.Context) (*AssessmentSession, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{assessmentsession.Label}
	default:
		return nil, &NotSingularError{assessmentsession.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AssessmentSessionQuery) OnlyX(ctx context.Context) *AssessmentSession {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AssessmentSession ID in the query.
// Returns a *NotSingularError when more than one AssessmentSession ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AssessmentSessionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{assessmentsession.Label}
	default:
		err = &NotSingularError{assessmentsession.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AssessmentSessionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AssessmentSessions.
func (_q *AssessmentSessionQuery) All(ctx context.Context) ([]*AssessmentSession, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AssessmentSession, *AssessmentSessionQuery]()
	return withInterceptors[[]*AssessmentSession](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AssessmentSessionQuery) AllX(ctx context.Context) []*AssessmentSession {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AssessmentSession IDs.
func (_q *AssessmentSessionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(assessmentsession.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AssessmentSessionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AssessmentSessionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AssessmentSessionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AssessmentSessionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AssessmentSessionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AssessmentSessionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AssessmentSessionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AssessmentSessionQuery) Clone() *AssessmentSessionQuery {
	if _q == nil {
		return nil
	}
	return &AssessmentSessionQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]assessmentsession.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.AssessmentSession{}, _q.predicates...),
		withSurvey:         _q.withSurvey.Clone(),
		withQuestions:      _q.withQuestions.Clone(),
		withAttemptAnswers: _q.withAttemptAnswers.Clone(),
		withRoundResult:    _q.withRoundResult.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSurvey tells the query-builder to eager-load the nodes that are connected to
// the "survey" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentSessionQuery) WithSurvey(opts ...func(*ProfileSurveyQuery)) *AssessmentSessionQuery {
	query := (&ProfileSurveyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSurvey = query
	return _q
}

// WithQuestions tells the query-builder to eager-load the nodes that are connected to
// the "questions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentSessionQuery) WithQuestions(opts ...func(*QuestionQuery)) *AssessmentSessionQuery {
	query := (&QuestionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withQuestions = query
	return _q
}

// WithAttemptAnswers tells the query-builder to eager-load the nodes that are connected to
// the "attempt_answers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentSessionQuery) WithAttemptAnswers(opts ...func(*AttemptAnswerQuery)) *AssessmentSessionQuery {
	query := (&AttemptAnswerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAttemptAnswers = query
	return _q
}

// WithRoundResult tells the query-builder to eager-load the nodes that are connected to
// the "round_result" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AssessmentSessionQuery) WithRoundResult(opts ...func(*RoundResultQuery)) *AssessmentSessionQuery {
	query := (&RoundResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRoundResult = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AssessmentSession.Query().
//		GroupBy(assessmentsession.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AssessmentSessionQuery) GroupBy(field string, fields ...string) *AssessmentSessionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AssessmentSessionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = assessmentsession.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.AssessmentSession.Query().
//		Select(assessmentsession.FieldUserID).
//		Scan(ctx, &v)
func (_q *AssessmentSessionQuery) Select(fields ...string) *AssessmentSessionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AssessmentSessionSelect{AssessmentSessionQuery: _q}
	sbuild.label = assessmentsession.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AssessmentSessionSelect configured with the given aggregations.
func (_q *AssessmentSessionQuery) Aggregate(fns ...AggregateFunc) *AssessmentSessionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AssessmentSessionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !assessmentsession.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AssessmentSessionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AssessmentSession, error) {
	var (
		nodes       = []*AssessmentSession{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withSurvey != nil,
			_q.withQuestions != nil,
			_q.withAttemptAnswers != nil,
			_q.withRoundResult != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AssessmentSession).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AssessmentSession{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSurvey; query != nil {
		if err := _q.loadSurvey(ctx, query, nodes, nil,
			func(n *AssessmentSession, e *ProfileSurvey) { n.Edges.Survey = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withQuestions; query != nil {
		if err := _q.loadQuestions(ctx, query, nodes,
			func(n *AssessmentSession) { n.Edges.Questions = []*Question{} },
			func(n *AssessmentSession, e *Question) { n.Edges.Questions = append(n.Edges.Questions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAttemptAnswers; query != nil {
		if err := _q.loadAttemptAnswers(ctx, query, nodes,
			func(n *AssessmentSession) { n.Edges.AttemptAnswers = []*AttemptAnswer{} },
			func(n *AssessmentSession, e *AttemptAnswer) {
				n.Edges.AttemptAnswers = append(n.Edges.AttemptAnswers, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withRoundResult; query != nil {
		if err := _q.loadRoundResult(ctx, query, nodes, nil,
			func(n *AssessmentSession, e *RoundResult) { n.Edges.RoundResult = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AssessmentSessionQuery) loadSurvey(ctx context.Context, query *ProfileSurveyQuery, nodes []*AssessmentSession, init func(*AssessmentSession), assign func(*AssessmentSession, *ProfileSurvey)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*AssessmentSession)
	for i := range nodes {
		fk := nodes[i].SurveyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(profilesurvey.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "survey_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *AssessmentSessionQuery) loadQuestions(ctx context.Context, query *QuestionQuery, nodes []*AssessmentSession, init func(*AssessmentSession), assign func(*AssessmentSession, *Question)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AssessmentSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(question.FieldSessionID)
	}
	query.Where(predicate.Question(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(assessmentsession.QuestionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AssessmentSessionQuery) loadAttemptAnswers(ctx context.Context, query *AttemptAnswerQuery, nodes []*AssessmentSession, init func(*AssessmentSession), assign func(*AssessmentSession, *AttemptAnswer)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AssessmentSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(attemptanswer.FieldSessionID)
	}
	query.Where(predicate.AttemptAnswer(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(assessmentsession.AttemptAnswersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AssessmentSessionQuery) loadRoundResult(ctx context.Context, query *RoundResultQuery, nodes []*AssessmentSession, init func(*AssessmentSession), assign func(*AssessmentSession, *RoundResult)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*AssessmentSession)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(roundresult.FieldSessionID)
	}
	query.Where(predicate.RoundResult(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(assessmentsession.RoundResultColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SessionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "session_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AssessmentSessionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AssessmentSessionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(assessmentsession.Table, assessmentsession.Columns, sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentsession.FieldID)
		for i := range fields {
			if fields[i] != assessmentsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSurvey != nil {
			_spec.Node.AddColumnOnce(assessmentsession.FieldSurveyID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AssessmentSessionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(assessmentsession.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = assessmentsession.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AssessmentSessionGroupBy is the group-by builder for AssessmentSession entities.
type AssessmentSessionGroupBy struct {
	selector
	build *AssessmentSessionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AssessmentSessionGroupBy) Aggregate(fns ...AggregateFunc) *AssessmentSessionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AssessmentSessionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssessmentSessionQuery, *AssessmentSessionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AssessmentSessionGroupBy) sqlScan(ctx context.Context, root *AssessmentSessionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AssessmentSessionSelect is the builder for selecting fields of AssessmentSession entities.
type AssessmentSessionSelect struct {
	*AssessmentSessionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AssessmentSessionSelect) Aggregate(fns ...AggregateFunc) *AssessmentSessionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AssessmentSessionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AssessmentSessionQuery, *AssessmentSessionSelect](ctx, _s.AssessmentSessionQuery, _s, _s.inters, v)
}

func (_s *AssessmentSessionSelect) sqlScan(ctx context.Context, root *AssessmentSessionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
