// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/adaptivecat/planner/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/adaptivecat/planner/ent/attempt"
	"github.com/adaptivecat/planner/ent/mastery"
	"github.com/adaptivecat/planner/ent/pyqquestion"
	"github.com/adaptivecat/planner/ent/question"
	"github.com/adaptivecat/planner/ent/session"
	"github.com/adaptivecat/planner/ent/sessionpack"
	"github.com/adaptivecat/planner/ent/studentcoverage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Attempt is the client for interacting with the Attempt builders.
	Attempt *AttemptClient
	// Mastery is the client for interacting with the Mastery builders.
	Mastery *MasteryClient
	// PYQQuestion is the client for interacting with the PYQQuestion builders.
	PYQQuestion *PYQQuestionClient
	// Question is the client for interacting with the Question builders.
	Question *QuestionClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// SessionPack is the client for interacting with the SessionPack builders.
	SessionPack *SessionPackClient
	// StudentCoverage is the client for interacting with the StudentCoverage builders.
	StudentCoverage *StudentCoverageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Attempt = NewAttemptClient(c.config)
	c.Mastery = NewMasteryClient(c.config)
	c.PYQQuestion = NewPYQQuestionClient(c.config)
	c.Question = NewQuestionClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.SessionPack = NewSessionPackClient(c.config)
	c.StudentCoverage = NewStudentCoverageClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Attempt:         NewAttemptClient(cfg),
		Mastery:         NewMasteryClient(cfg),
		PYQQuestion:     NewPYQQuestionClient(cfg),
		Question:        NewQuestionClient(cfg),
		Session:         NewSessionClient(cfg),
		SessionPack:     NewSessionPackClient(cfg),
		StudentCoverage: NewStudentCoverageClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Attempt:         NewAttemptClient(cfg),
		Mastery:         NewMasteryClient(cfg),
		PYQQuestion:     NewPYQQuestionClient(cfg),
		Question:        NewQuestionClient(cfg),
		Session:         NewSessionClient(cfg),
		SessionPack:     NewSessionPackClient(cfg),
		StudentCoverage: NewStudentCoverageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Attempt.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Attempt, c.Mastery, c.PYQQuestion, c.Question, c.Session, c.SessionPack,
		c.StudentCoverage,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Attempt, c.Mastery, c.PYQQuestion, c.Question, c.Session, c.SessionPack,
		c.StudentCoverage,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptMutation:
		return c.Attempt.mutate(ctx, m)
	case *MasteryMutation:
		return c.Mastery.mutate(ctx, m)
	case *PYQQuestionMutation:
		return c.PYQQuestion.mutate(ctx, m)
	case *QuestionMutation:
		return c.Question.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *SessionPackMutation:
		return c.SessionPack.mutate(ctx, m)
	case *StudentCoverageMutation:
		return c.StudentCoverage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptClient is a client for the Attempt schema.
type AttemptClient struct {
	config
}

// NewAttemptClient returns a client for the Attempt from the given config.
func NewAttemptClient(c config) *AttemptClient {
	return &AttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attempt.Hooks(f(g(h())))`.
func (c *AttemptClient) Use(hooks ...Hook) {
	c.hooks.Attempt = append(c.hooks.Attempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attempt.Intercept(f(g(h())))`.
func (c *AttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attempt = append(c.inters.Attempt, interceptors...)
}

// Create returns a builder for creating a Attempt entity.
func (c *AttemptClient) Create() *AttemptCreate {
	mutation := newAttemptMutation(c.config, OpCreate)
	return &AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attempt entities.
func (c *AttemptClient) CreateBulk(builders ...*AttemptCreate) *AttemptCreateBulk {
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptClient) MapCreateBulk(slice any, setFunc func(*AttemptCreate, int)) *AttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptCreateBulk{err: fmt.Errorf("calling to AttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attempt.
func (c *AttemptClient) Update() *AttemptUpdate {
	mutation := newAttemptMutation(c.config, OpUpdate)
	return &AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptClient) UpdateOne(_m *Attempt) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttempt(_m))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptClient) UpdateOneID(id string) *AttemptUpdateOne {
	mutation := newAttemptMutation(c.config, OpUpdateOne, withAttemptID(id))
	return &AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attempt.
func (c *AttemptClient) Delete() *AttemptDelete {
	mutation := newAttemptMutation(c.config, OpDelete)
	return &AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptClient) DeleteOne(_m *Attempt) *AttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptClient) DeleteOneID(id string) *AttemptDeleteOne {
	builder := c.Delete().Where(attempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptDeleteOne{builder}
}

// Query returns a query builder for Attempt.
func (c *AttemptClient) Query() *AttemptQuery {
	return &AttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a Attempt entity by its id.
func (c *AttemptClient) Get(ctx context.Context, id string) (*Attempt, error) {
	return c.Query().Where(attempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptClient) GetX(ctx context.Context, id string) *Attempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptClient) Hooks() []Hook {
	return c.hooks.Attempt
}

// Interceptors returns the client interceptors.
func (c *AttemptClient) Interceptors() []Interceptor {
	return c.inters.Attempt
}

func (c *AttemptClient) mutate(ctx context.Context, m *AttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attempt mutation op: %q", m.Op())
	}
}

// MasteryClient is a client for the Mastery schema.
type MasteryClient struct {
	config
}

// NewMasteryClient returns a client for the Mastery from the given config.
func NewMasteryClient(c config) *MasteryClient {
	return &MasteryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mastery.Hooks(f(g(h())))`.
func (c *MasteryClient) Use(hooks ...Hook) {
	c.hooks.Mastery = append(c.hooks.Mastery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mastery.Intercept(f(g(h())))`.
func (c *MasteryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Mastery = append(c.inters.Mastery, interceptors...)
}

// Create returns a builder for creating a Mastery entity.
func (c *MasteryClient) Create() *MasteryCreate {
	mutation := newMasteryMutation(c.config, OpCreate)
	return &MasteryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Mastery entities.
func (c *MasteryClient) CreateBulk(builders ...*MasteryCreate) *MasteryCreateBulk {
	return &MasteryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryClient) MapCreateBulk(slice any, setFunc func(*MasteryCreate, int)) *MasteryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryCreateBulk{err: fmt.Errorf("calling to MasteryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Mastery.
func (c *MasteryClient) Update() *MasteryUpdate {
	mutation := newMasteryMutation(c.config, OpUpdate)
	return &MasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryClient) UpdateOne(_m *Mastery) *MasteryUpdateOne {
	mutation := newMasteryMutation(c.config, OpUpdateOne, withMastery(_m))
	return &MasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryClient) UpdateOneID(id string) *MasteryUpdateOne {
	mutation := newMasteryMutation(c.config, OpUpdateOne, withMasteryID(id))
	return &MasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Mastery.
func (c *MasteryClient) Delete() *MasteryDelete {
	mutation := newMasteryMutation(c.config, OpDelete)
	return &MasteryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryClient) DeleteOne(_m *Mastery) *MasteryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryClient) DeleteOneID(id string) *MasteryDeleteOne {
	builder := c.Delete().Where(mastery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryDeleteOne{builder}
}

// Query returns a query builder for Mastery.
func (c *MasteryClient) Query() *MasteryQuery {
	return &MasteryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMastery},
		inters: c.Interceptors(),
	}
}

// Get returns a Mastery entity by its id.
func (c *MasteryClient) Get(ctx context.Context, id string) (*Mastery, error) {
	return c.Query().Where(mastery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryClient) GetX(ctx context.Context, id string) *Mastery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryClient) Hooks() []Hook {
	return c.hooks.Mastery
}

// Interceptors returns the client interceptors.
func (c *MasteryClient) Interceptors() []Interceptor {
	return c.inters.Mastery
}

func (c *MasteryClient) mutate(ctx context.Context, m *MasteryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Mastery mutation op: %q", m.Op())
	}
}

// PYQQuestionClient is a client for the PYQQuestion schema.
type PYQQuestionClient struct {
	config
}

// NewPYQQuestionClient returns a client for the PYQQuestion from the given config.
func NewPYQQuestionClient(c config) *PYQQuestionClient {
	return &PYQQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pyqquestion.Hooks(f(g(h())))`.
func (c *PYQQuestionClient) Use(hooks ...Hook) {
	c.hooks.PYQQuestion = append(c.hooks.PYQQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pyqquestion.Intercept(f(g(h())))`.
func (c *PYQQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PYQQuestion = append(c.inters.PYQQuestion, interceptors...)
}

// Create returns a builder for creating a PYQQuestion entity.
func (c *PYQQuestionClient) Create() *PYQQuestionCreate {
	mutation := newPYQQuestionMutation(c.config, OpCreate)
	return &PYQQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PYQQuestion entities.
func (c *PYQQuestionClient) CreateBulk(builders ...*PYQQuestionCreate) *PYQQuestionCreateBulk {
	return &PYQQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PYQQuestionClient) MapCreateBulk(slice any, setFunc func(*PYQQuestionCreate, int)) *PYQQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PYQQuestionCreateBulk{err: fmt.Errorf("calling to PYQQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PYQQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PYQQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PYQQuestion.
func (c *PYQQuestionClient) Update() *PYQQuestionUpdate {
	mutation := newPYQQuestionMutation(c.config, OpUpdate)
	return &PYQQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PYQQuestionClient) UpdateOne(_m *PYQQuestion) *PYQQuestionUpdateOne {
	mutation := newPYQQuestionMutation(c.config, OpUpdateOne, withPYQQuestion(_m))
	return &PYQQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PYQQuestionClient) UpdateOneID(id string) *PYQQuestionUpdateOne {
	mutation := newPYQQuestionMutation(c.config, OpUpdateOne, withPYQQuestionID(id))
	return &PYQQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PYQQuestion.
func (c *PYQQuestionClient) Delete() *PYQQuestionDelete {
	mutation := newPYQQuestionMutation(c.config, OpDelete)
	return &PYQQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PYQQuestionClient) DeleteOne(_m *PYQQuestion) *PYQQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PYQQuestionClient) DeleteOneID(id string) *PYQQuestionDeleteOne {
	builder := c.Delete().Where(pyqquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PYQQuestionDeleteOne{builder}
}

// Query returns a query builder for PYQQuestion.
func (c *PYQQuestionClient) Query() *PYQQuestionQuery {
	return &PYQQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePYQQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a PYQQuestion entity by its id.
func (c *PYQQuestionClient) Get(ctx context.Context, id string) (*PYQQuestion, error) {
	return c.Query().Where(pyqquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PYQQuestionClient) GetX(ctx context.Context, id string) *PYQQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PYQQuestionClient) Hooks() []Hook {
	return c.hooks.PYQQuestion
}

// Interceptors returns the client interceptors.
func (c *PYQQuestionClient) Interceptors() []Interceptor {
	return c.inters.PYQQuestion
}

func (c *PYQQuestionClient) mutate(ctx context.Context, m *PYQQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PYQQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PYQQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PYQQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PYQQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PYQQuestion mutation op: %q", m.Op())
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

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPack queries the pack edge of a Session.
func (c *SessionClient) QueryPack(_m *Session) *SessionPackQuery {
	query := (&SessionPackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(sessionpack.Table, sessionpack.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, session.PackTable, session.PackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// SessionPackClient is a client for the SessionPack schema.
type SessionPackClient struct {
	config
}

// NewSessionPackClient returns a client for the SessionPack from the given config.
func NewSessionPackClient(c config) *SessionPackClient {
	return &SessionPackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionpack.Hooks(f(g(h())))`.
func (c *SessionPackClient) Use(hooks ...Hook) {
	c.hooks.SessionPack = append(c.hooks.SessionPack, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionpack.Intercept(f(g(h())))`.
func (c *SessionPackClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionPack = append(c.inters.SessionPack, interceptors...)
}

// Create returns a builder for creating a SessionPack entity.
func (c *SessionPackClient) Create() *SessionPackCreate {
	mutation := newSessionPackMutation(c.config, OpCreate)
	return &SessionPackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionPack entities.
func (c *SessionPackClient) CreateBulk(builders ...*SessionPackCreate) *SessionPackCreateBulk {
	return &SessionPackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionPackClient) MapCreateBulk(slice any, setFunc func(*SessionPackCreate, int)) *SessionPackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionPackCreateBulk{err: fmt.Errorf("calling to SessionPackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionPackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionPackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionPack.
func (c *SessionPackClient) Update() *SessionPackUpdate {
	mutation := newSessionPackMutation(c.config, OpUpdate)
	return &SessionPackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionPackClient) UpdateOne(_m *SessionPack) *SessionPackUpdateOne {
	mutation := newSessionPackMutation(c.config, OpUpdateOne, withSessionPack(_m))
	return &SessionPackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionPackClient) UpdateOneID(id string) *SessionPackUpdateOne {
	mutation := newSessionPackMutation(c.config, OpUpdateOne, withSessionPackID(id))
	return &SessionPackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionPack.
func (c *SessionPackClient) Delete() *SessionPackDelete {
	mutation := newSessionPackMutation(c.config, OpDelete)
	return &SessionPackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionPackClient) DeleteOne(_m *SessionPack) *SessionPackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionPackClient) DeleteOneID(id string) *SessionPackDeleteOne {
	builder := c.Delete().Where(sessionpack.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionPackDeleteOne{builder}
}

// Query returns a query builder for SessionPack.
func (c *SessionPackClient) Query() *SessionPackQuery {
	return &SessionPackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionPack},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionPack entity by its id.
func (c *SessionPackClient) Get(ctx context.Context, id string) (*SessionPack, error) {
	return c.Query().Where(sessionpack.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionPackClient) GetX(ctx context.Context, id string) *SessionPack {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionPack.
func (c *SessionPackClient) QuerySession(_m *SessionPack) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionpack.Table, sessionpack.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, sessionpack.SessionTable, sessionpack.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionPackClient) Hooks() []Hook {
	return c.hooks.SessionPack
}

// Interceptors returns the client interceptors.
func (c *SessionPackClient) Interceptors() []Interceptor {
	return c.inters.SessionPack
}

func (c *SessionPackClient) mutate(ctx context.Context, m *SessionPackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionPackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionPackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionPackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionPackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionPack mutation op: %q", m.Op())
	}
}

// StudentCoverageClient is a client for the StudentCoverage schema.
type StudentCoverageClient struct {
	config
}

// NewStudentCoverageClient returns a client for the StudentCoverage from the given config.
func NewStudentCoverageClient(c config) *StudentCoverageClient {
	return &StudentCoverageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studentcoverage.Hooks(f(g(h())))`.
func (c *StudentCoverageClient) Use(hooks ...Hook) {
	c.hooks.StudentCoverage = append(c.hooks.StudentCoverage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studentcoverage.Intercept(f(g(h())))`.
func (c *StudentCoverageClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudentCoverage = append(c.inters.StudentCoverage, interceptors...)
}

// Create returns a builder for creating a StudentCoverage entity.
func (c *StudentCoverageClient) Create() *StudentCoverageCreate {
	mutation := newStudentCoverageMutation(c.config, OpCreate)
	return &StudentCoverageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudentCoverage entities.
func (c *StudentCoverageClient) CreateBulk(builders ...*StudentCoverageCreate) *StudentCoverageCreateBulk {
	return &StudentCoverageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudentCoverageClient) MapCreateBulk(slice any, setFunc func(*StudentCoverageCreate, int)) *StudentCoverageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudentCoverageCreateBulk{err: fmt.Errorf("calling to StudentCoverageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudentCoverageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudentCoverageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudentCoverage.
func (c *StudentCoverageClient) Update() *StudentCoverageUpdate {
	mutation := newStudentCoverageMutation(c.config, OpUpdate)
	return &StudentCoverageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudentCoverageClient) UpdateOne(_m *StudentCoverage) *StudentCoverageUpdateOne {
	mutation := newStudentCoverageMutation(c.config, OpUpdateOne, withStudentCoverage(_m))
	return &StudentCoverageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudentCoverageClient) UpdateOneID(id string) *StudentCoverageUpdateOne {
	mutation := newStudentCoverageMutation(c.config, OpUpdateOne, withStudentCoverageID(id))
	return &StudentCoverageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudentCoverage.
func (c *StudentCoverageClient) Delete() *StudentCoverageDelete {
	mutation := newStudentCoverageMutation(c.config, OpDelete)
	return &StudentCoverageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudentCoverageClient) DeleteOne(_m *StudentCoverage) *StudentCoverageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudentCoverageClient) DeleteOneID(id string) *StudentCoverageDeleteOne {
	builder := c.Delete().Where(studentcoverage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudentCoverageDeleteOne{builder}
}

// Query returns a query builder for StudentCoverage.
func (c *StudentCoverageClient) Query() *StudentCoverageQuery {
	return &StudentCoverageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudentCoverage},
		inters: c.Interceptors(),
	}
}

// Get returns a StudentCoverage entity by its id.
func (c *StudentCoverageClient) Get(ctx context.Context, id string) (*StudentCoverage, error) {
	return c.Query().Where(studentcoverage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudentCoverageClient) GetX(ctx context.Context, id string) *StudentCoverage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StudentCoverageClient) Hooks() []Hook {
	return c.hooks.StudentCoverage
}

// Interceptors returns the client interceptors.
func (c *StudentCoverageClient) Interceptors() []Interceptor {
	return c.inters.StudentCoverage
}

func (c *StudentCoverageClient) mutate(ctx context.Context, m *StudentCoverageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudentCoverageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudentCoverageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudentCoverageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudentCoverageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StudentCoverage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Attempt, Mastery, PYQQuestion, Question, Session, SessionPack,
		StudentCoverage []ent.Hook
	}
	inters struct {
		Attempt, Mastery, PYQQuestion, Question, Session, SessionPack,
		StudentCoverage []ent.Interceptor
	}
)
