// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/skillforge/skillforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/attemptanswer"
	"github.com/skillforge/skillforge/ent/profilesurvey"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/ent/roundresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssessmentSession is the client for interacting with the AssessmentSession builders.
	AssessmentSession *AssessmentSessionClient
	// AttemptAnswer is the client for interacting with the AttemptAnswer builders.
	AttemptAnswer *AttemptAnswerClient
	// ProfileSurvey is the client for interacting with the ProfileSurvey builders.
	ProfileSurvey *ProfileSurveyClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// RoundResult is the client for interacting with the RoundResult builders.
	RoundResult *RoundResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssessmentSession = NewAssessmentSessionClient(c.config)
	c.AttemptAnswer = NewAttemptAnswerClient(c.config)
	c.ProfileSurvey = NewProfileSurveyClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.RoundResult = NewRoundResultClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AssessmentSession: NewAssessmentSessionClient(cfg),
		AttemptAnswer:     NewAttemptAnswerClient(cfg),
		ProfileSurvey:     NewProfileSurveyClient(cfg),
		Question:          NewQuestionClient(cfg),
		RoundResult:       NewRoundResultClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AssessmentSession: NewAssessmentSessionClient(cfg),
		AttemptAnswer:     NewAttemptAnswerClient(cfg),
		ProfileSurvey:     NewProfileSurveyClient(cfg),
		Question:          NewQuestionClient(cfg),
		RoundResult:       NewRoundResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssessmentSession.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AssessmentSession.Use(hooks...)
	c.AttemptAnswer.Use(hooks...)
	c.ProfileSurvey.Use(hooks...)
	c.Question.Use(hooks...)
	c.RoundResult.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AssessmentSession.Intercept(interceptors...)
	c.AttemptAnswer.Intercept(interceptors...)
	c.ProfileSurvey.Intercept(interceptors...)
	c.Question.Intercept(interceptors...)
	c.RoundResult.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssessmentSessionMutation:
		return c.AssessmentSession.mutate(ctx, m)
	case *AttemptAnswerMutation:
		return c.AttemptAnswer.mutate(ctx, m)
	case *ProfileSurveyMutation:
		return c.ProfileSurvey.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *RoundResultMutation:
		return c.RoundResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssessmentSessionClient is a client for the AssessmentSession schema.
type AssessmentSessionClient struct {
	config
}

// NewAssessmentSessionClient returns a client for the AssessmentSession from the given config.
func NewAssessmentSessionClient(c config) *AssessmentSessionClient {
	return &AssessmentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assessmentsession.Hooks(f(g(h())))`.
func (c *AssessmentSessionClient) Use(hooks ...Hook) {
	c.hooks.AssessmentSession = append(c.hooks.AssessmentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assessmentsession.Intercept(f(g(h())))`.
func (c *AssessmentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssessmentSession = append(c.inters.AssessmentSession, interceptors...)
}

// Create returns a builder for creating a AssessmentSession entity.
func (c *AssessmentSessionClient) Create() *AssessmentSessionCreate {
	mutation := newAssessmentSessionMutation(c.config, OpCreate)
	return &AssessmentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssessmentSession entities.
func (c *AssessmentSessionClient) CreateBulk(builders ...*AssessmentSessionCreate) *AssessmentSessionCreateBulk {
	return &AssessmentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssessmentSessionClient) MapCreateBulk(slice any, setFunc func(*AssessmentSessionCreate, int)) *AssessmentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssessmentSessionCreateBulk{err: fmt.Errorf("calling to AssessmentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssessmentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssessmentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssessmentSession.
func (c *AssessmentSessionClient) Update() *AssessmentSessionUpdate {
	mutation := newAssessmentSessionMutation(c.config, OpUpdate)
	return &AssessmentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssessmentSessionClient) UpdateOne(_m *AssessmentSession) *AssessmentSessionUpdateOne {
	mutation := newAssessmentSessionMutation(c.config, OpUpdateOne, withAssessmentSession(_m))
	return &AssessmentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssessmentSessionClient) UpdateOneID(id string) *AssessmentSessionUpdateOne {
	mutation := newAssessmentSessionMutation(c.config, OpUpdateOne, withAssessmentSessionID(id))
	return &AssessmentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssessmentSession.
func (c *AssessmentSessionClient) Delete() *AssessmentSessionDelete {
	mutation := newAssessmentSessionMutation(c.config, OpDelete)
	return &AssessmentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssessmentSessionClient) DeleteOne(_m *AssessmentSession) *AssessmentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssessmentSessionClient) DeleteOneID(id string) *AssessmentSessionDeleteOne {
	builder := c.Delete().Where(assessmentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssessmentSessionDeleteOne{builder}
}

// Query returns a query builder for AssessmentSession.
func (c *AssessmentSessionClient) Query() *AssessmentSessionQuery {
	return &AssessmentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssessmentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AssessmentSession entity by its id.
func (c *AssessmentSessionClient) Get(ctx context.Context, id string) (*AssessmentSession, error) {
	return c.Query().Where(assessmentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssessmentSessionClient) GetX(ctx context.Context, id string) *AssessmentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySurvey queries the survey edge of a AssessmentSession.
func (c *AssessmentSessionClient) QuerySurvey(_m *AssessmentSession) *ProfileSurveyQuery {
	query := (&ProfileSurveyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentsession.Table, assessmentsession.FieldID, id),
			sqlgraph.To(profilesurvey.Table, profilesurvey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, assessmentsession.SurveyTable, assessmentsession.SurveyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryQuestions queries the questions edge of a AssessmentSession.
func (c *AssessmentSessionClient) QueryQuestions(_m *AssessmentSession) *QuestionQuery {
	query := (&QuestionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentsession.Table, assessmentsession.FieldID, id),
			sqlgraph.To(question.Table, question.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessmentsession.QuestionsTable, assessmentsession.QuestionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttemptAnswers queries the attempt_answers edge of a AssessmentSession.
func (c *AssessmentSessionClient) QueryAttemptAnswers(_m *AssessmentSession) *AttemptAnswerQuery {
	query := (&AttemptAnswerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentsession.Table, assessmentsession.FieldID, id),
			sqlgraph.To(attemptanswer.Table, attemptanswer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, assessmentsession.AttemptAnswersTable, assessmentsession.AttemptAnswersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRoundResult queries the round_result edge of a AssessmentSession.
func (c *AssessmentSessionClient) QueryRoundResult(_m *AssessmentSession) *RoundResultQuery {
	query := (&RoundResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(assessmentsession.Table, assessmentsession.FieldID, id),
			sqlgraph.To(roundresult.Table, roundresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, assessmentsession.RoundResultTable, assessmentsession.RoundResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AssessmentSessionClient) Hooks() []Hook {
	return c.hooks.AssessmentSession
}

// Interceptors returns the client interceptors.
func (c *AssessmentSessionClient) Interceptors() []Interceptor {
	return c.inters.AssessmentSession
}

func (c *AssessmentSessionClient) mutate(ctx context.Context, m *AssessmentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssessmentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssessmentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssessmentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssessmentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssessmentSession mutation op: %q", m.Op())
	}
}

// AttemptAnswerClient is a client for the AttemptAnswer schema.
type AttemptAnswerClient struct {
	config
}

// NewAttemptAnswerClient returns a client for the AttemptAnswer from the given config.
func NewAttemptAnswerClient(c config) *AttemptAnswerClient {
	return &AttemptAnswerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptanswer.Hooks(f(g(h())))`.
func (c *AttemptAnswerClient) Use(hooks ...Hook) {
	c.hooks.AttemptAnswer = append(c.hooks.AttemptAnswer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptanswer.Intercept(f(g(h())))`.
func (c *AttemptAnswerClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptAnswer = append(c.inters.AttemptAnswer, interceptors...)
}

// Create returns a builder for creating a AttemptAnswer entity.
func (c *AttemptAnswerClient) Create() *AttemptAnswerCreate {
	mutation := newAttemptAnswerMutation(c.config, OpCreate)
	return &AttemptAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptAnswer entities.
func (c *AttemptAnswerClient) CreateBulk(builders ...*AttemptAnswerCreate) *AttemptAnswerCreateBulk {
	return &AttemptAnswerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptAnswerClient) MapCreateBulk(slice any, setFunc func(*AttemptAnswerCreate, int)) *AttemptAnswerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptAnswerCreateBulk{err: fmt.Errorf("calling to AttemptAnswerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptAnswerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptAnswerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptAnswer.
func (c *AttemptAnswerClient) Update() *AttemptAnswerUpdate {
	mutation := newAttemptAnswerMutation(c.config, OpUpdate)
	return &AttemptAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptAnswerClient) UpdateOne(_m *AttemptAnswer) *AttemptAnswerUpdateOne {
	mutation := newAttemptAnswerMutation(c.config, OpUpdateOne, withAttemptAnswer(_m))
	return &AttemptAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptAnswerClient) UpdateOneID(id string) *AttemptAnswerUpdateOne {
	mutation := newAttemptAnswerMutation(c.config, OpUpdateOne, withAttemptAnswerID(id))
	return &AttemptAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptAnswer.
func (c *AttemptAnswerClient) Delete() *AttemptAnswerDelete {
	mutation := newAttemptAnswerMutation(c.config, OpDelete)
	return &AttemptAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptAnswerClient) DeleteOne(_m *AttemptAnswer) *AttemptAnswerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptAnswerClient) DeleteOneID(id string) *AttemptAnswerDeleteOne {
	builder := c.Delete().Where(attemptanswer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptAnswerDeleteOne{builder}
}

// Query returns a query builder for AttemptAnswer.
func (c *AttemptAnswerClient) Query() *AttemptAnswerQuery {
	return &AttemptAnswerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptAnswer},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptAnswer entity by its id.
func (c *AttemptAnswerClient) Get(ctx context.Context, id string) (*AttemptAnswer, error) {
	return c.Query().Where(attemptanswer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptAnswerClient) GetX(ctx context.Context, id string) *AttemptAnswer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a AttemptAnswer.
func (c *AttemptAnswerClient) QuerySession(_m *AttemptAnswer) *AssessmentSessionQuery {
	query := (&AssessmentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attemptanswer.Table, attemptanswer.FieldID, id),
			sqlgraph.To(assessmentsession.Table, assessmentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attemptanswer.SessionTable, attemptanswer.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttemptAnswerClient) Hooks() []Hook {
	return c.hooks.AttemptAnswer
}

// Interceptors returns the client interceptors.
func (c *AttemptAnswerClient) Interceptors() []Interceptor {
	return c.inters.AttemptAnswer
}

func (c *AttemptAnswerClient) mutate(ctx context.Context, m *AttemptAnswerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptAnswerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptAnswerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptAnswerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptAnswerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptAnswer mutation op: %q", m.Op())
	}
}

// ProfileSurveyClient is a client for the ProfileSurvey schema.
type ProfileSurveyClient struct {
	config
}

// NewProfileSurveyClient returns a client for the ProfileSurvey from the given config.
func NewProfileSurveyClient(c config) *ProfileSurveyClient {
	return &ProfileSurveyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profilesurvey.Hooks(f(g(h())))`.
func (c *ProfileSurveyClient) Use(hooks ...Hook) {
	c.hooks.ProfileSurvey = append(c.hooks.ProfileSurvey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profilesurvey.Intercept(f(g(h())))`.
func (c *ProfileSurveyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProfileSurvey = append(c.inters.ProfileSurvey, interceptors...)
}

// Create returns a builder for creating a ProfileSurvey entity.
func (c *ProfileSurveyClient) Create() *ProfileSurveyCreate {
	mutation := newProfileSurveyMutation(c.config, OpCreate)
	return &ProfileSurveyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProfileSurvey entities.
func (c *ProfileSurveyClient) CreateBulk(builders ...*ProfileSurveyCreate) *ProfileSurveyCreateBulk {
	return &ProfileSurveyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileSurveyClient) MapCreateBulk(slice any, setFunc func(*ProfileSurveyCreate, int)) *ProfileSurveyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileSurveyCreateBulk{err: fmt.Errorf("calling to ProfileSurveyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileSurveyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileSurveyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProfileSurvey.
func (c *ProfileSurveyClient) Update() *ProfileSurveyUpdate {
	mutation := newProfileSurveyMutation(c.config, OpUpdate)
	return &ProfileSurveyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileSurveyClient) UpdateOne(_m *ProfileSurvey) *ProfileSurveyUpdateOne {
	mutation := newProfileSurveyMutation(c.config, OpUpdateOne, withProfileSurvey(_m))
	return &ProfileSurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileSurveyClient) UpdateOneID(id string) *ProfileSurveyUpdateOne {
	mutation := newProfileSurveyMutation(c.config, OpUpdateOne, withProfileSurveyID(id))
	return &ProfileSurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProfileSurvey.
func (c *ProfileSurveyClient) Delete() *ProfileSurveyDelete {
	mutation := newProfileSurveyMutation(c.config, OpDelete)
	return &ProfileSurveyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileSurveyClient) DeleteOne(_m *ProfileSurvey) *ProfileSurveyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileSurveyClient) DeleteOneID(id string) *ProfileSurveyDeleteOne {
	builder := c.Delete().Where(profilesurvey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileSurveyDeleteOne{builder}
}

// Query returns a query builder for ProfileSurvey.
func (c *ProfileSurveyClient) Query() *ProfileSurveyQuery {
	return &ProfileSurveyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfileSurvey},
		inters: c.Interceptors(),
	}
}

// Get returns a ProfileSurvey entity by its id.
func (c *ProfileSurveyClient) Get(ctx context.Context, id string) (*ProfileSurvey, error) {
	return c.Query().Where(profilesurvey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileSurveyClient) GetX(ctx context.Context, id string) *ProfileSurvey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessions queries the sessions edge of a ProfileSurvey.
func (c *ProfileSurveyClient) QuerySessions(_m *ProfileSurvey) *AssessmentSessionQuery {
	query := (&AssessmentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(profilesurvey.Table, profilesurvey.FieldID, id),
			sqlgraph.To(assessmentsession.Table, assessmentsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, profilesurvey.SessionsTable, profilesurvey.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProfileSurveyClient) Hooks() []Hook {
	return c.hooks.ProfileSurvey
}

// Interceptors returns the client interceptors.
func (c *ProfileSurveyClient) Interceptors() []Interceptor {
	return c.inters.ProfileSurvey
}

func (c *ProfileSurveyClient) mutate(ctx context.Context, m *ProfileSurveyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileSurveyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileSurveyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileSurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileSurveyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProfileSurvey mutation op: %q", m.Op())
	}
}

// QuestionClient is a client for the Question schema.
type QuestionClient struct {
	config
}

// NewQuestionClient returns a client for the Question from the given config.
func NewQuestionClient(c config) *QuestionClient {
	return &QuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `question.Hooks(f(g(h())))`.
func (c *QuestionClient) Use(hooks ...Hook) {
	c.hooks.Question = append(c.hooks.Question, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `question.Intercept(f(g(h())))`.
func (c *QuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Question = append(c.inters.Question, interceptors...)
}

// Create returns a builder for creating a Question entity.
func (c *QuestionClient) Create() *QuestionCreate {
	mutation := newQuestionMutation(c.config, OpCreate)
	return &QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Question entities.
func (c *QuestionClient) CreateBulk(builders ...*QuestionCreate) *QuestionCreateBulk {
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionClient) MapCreateBulk(slice any, setFunc func(*QuestionCreate, int)) *QuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionCreateBulk{err: fmt.Errorf("calling to QuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Question.
func (c *QuestionClient) Update() *QuestionUpdate {
	mutation := newQuestionMutation(c.config, OpUpdate)
	return &QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionClient) UpdateOne(_m *Question) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestion(_m))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionClient) UpdateOneID(id string) *QuestionUpdateOne {
	mutation := newQuestionMutation(c.config, OpUpdateOne, withQuestionID(id))
	return &QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Question.
func (c *QuestionClient) Delete() *QuestionDelete {
	mutation := newQuestionMutation(c.config, OpDelete)
	return &QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionClient) DeleteOne(_m *Question) *QuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionClient) DeleteOneID(id string) *QuestionDeleteOne {
	builder := c.Delete().Where(question.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionDeleteOne{builder}
}

// Query returns a query builder for Question.
func (c *QuestionClient) Query() *QuestionQuery {
	return &QuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a Question entity by its id.
func (c *QuestionClient) Get(ctx context.Context, id string) (*Question, error) {
	return c.Query().Where(question.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionClient) GetX(ctx context.Context, id string) *Question {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Question.
func (c *QuestionClient) QuerySession(_m *Question) *AssessmentSessionQuery {
	query := (&AssessmentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(question.Table, question.FieldID, id),
			sqlgraph.To(assessmentsession.Table, assessmentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, question.SessionTable, question.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *QuestionClient) Hooks() []Hook {
	return c.hooks.Question
}

// Interceptors returns the client interceptors.
func (c *QuestionClient) Interceptors() []Interceptor {
	return c.inters.Question
}

func (c *QuestionClient) mutate(ctx context.Context, m *QuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Question mutation op: %q", m.Op())
	}
}

// RoundResultClient is a client for the RoundResult schema.
type RoundResultClient struct {
	config
}

// NewRoundResultClient returns a client for the RoundResult from the given config.
func NewRoundResultClient(c config) *RoundResultClient {
	return &RoundResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `roundresult.Hooks(f(g(h())))`.
func (c *RoundResultClient) Use(hooks ...Hook) {
	c.hooks.RoundResult = append(c.hooks.RoundResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `roundresult.Intercept(f(g(h())))`.
func (c *RoundResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoundResult = append(c.inters.RoundResult, interceptors...)
}

// Create returns a builder for creating a RoundResult entity.
func (c *RoundResultClient) Create() *RoundResultCreate {
	mutation := newRoundResultMutation(c.config, OpCreate)
	return &RoundResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoundResult entities.
func (c *RoundResultClient) CreateBulk(builders ...*RoundResultCreate) *RoundResultCreateBulk {
	return &RoundResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoundResultClient) MapCreateBulk(slice any, setFunc func(*RoundResultCreate, int)) *RoundResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoundResultCreateBulk{err: fmt.Errorf("calling to RoundResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoundResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoundResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoundResult.
func (c *RoundResultClient) Update() *RoundResultUpdate {
	mutation := newRoundResultMutation(c.config, OpUpdate)
	return &RoundResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoundResultClient) UpdateOne(_m *RoundResult) *RoundResultUpdateOne {
	mutation := newRoundResultMutation(c.config, OpUpdateOne, withRoundResult(_m))
	return &RoundResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoundResultClient) UpdateOneID(id string) *RoundResultUpdateOne {
	mutation := newRoundResultMutation(c.config, OpUpdateOne, withRoundResultID(id))
	return &RoundResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoundResult.
func (c *RoundResultClient) Delete() *RoundResultDelete {
	mutation := newRoundResultMutation(c.config, OpDelete)
	return &RoundResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoundResultClient) DeleteOne(_m *RoundResult) *RoundResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoundResultClient) DeleteOneID(id string) *RoundResultDeleteOne {
	builder := c.Delete().Where(roundresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoundResultDeleteOne{builder}
}

// Query returns a query builder for RoundResult.
func (c *RoundResultClient) Query() *RoundResultQuery {
	return &RoundResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoundResult},
		inters: c.Interceptors(),
	}
}

// Get returns a RoundResult entity by its id.
func (c *RoundResultClient) Get(ctx context.Context, id string) (*RoundResult, error) {
	return c.Query().Where(roundresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoundResultClient) GetX(ctx context.Context, id string) *RoundResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a RoundResult.
func (c *RoundResultClient) QuerySession(_m *RoundResult) *AssessmentSessionQuery {
	query := (&AssessmentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(roundresult.Table, roundresult.FieldID, id),
			sqlgraph.To(assessmentsession.Table, assessmentsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, roundresult.SessionTable, roundresult.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RoundResultClient) Hooks() []Hook {
	return c.hooks.RoundResult
}

// Interceptors returns the client interceptors.
func (c *RoundResultClient) Interceptors() []Interceptor {
	return c.inters.RoundResult
}

func (c *RoundResultClient) mutate(ctx context.Context, m *RoundResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoundResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoundResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoundResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoundResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoundResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssessmentSession, AttemptAnswer, ProfileSurvey, Question,
		RoundResult []ent.Hook
	}
	inters struct {
		AssessmentSession, AttemptAnswer, ProfileSurvey, Question,
		RoundResult []ent.Interceptor
	}
)
