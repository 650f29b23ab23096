// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/jobsarthi/notification-parser/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jobsarthi/notification-parser/gen/ent/jobpost"
	"github.com/jobsarthi/notification-parser/gen/ent/parserun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// JobPost is the client for interacting with the JobPost builders.
	JobPost *JobPostClient
	// ParseRun is the client for interacting with the ParseRun builders.
	ParseRun *ParseRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.JobPost = NewJobPostClient(c.config)
	c.ParseRun = NewParseRunClient(c.config)
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
		ctx:      ctx,
		config:   cfg,
		JobPost:  NewJobPostClient(cfg),
		ParseRun: NewParseRunClient(cfg),
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
		ctx:      ctx,
		config:   cfg,
		JobPost:  NewJobPostClient(cfg),
		ParseRun: NewParseRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		JobPost.
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
	c.JobPost.Use(hooks...)
	c.ParseRun.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.JobPost.Intercept(interceptors...)
	c.ParseRun.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *JobPostMutation:
		return c.JobPost.mutate(ctx, m)
	case *ParseRunMutation:
		return c.ParseRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// JobPostClient is a client for the JobPost schema.
type JobPostClient struct {
	config
}

// NewJobPostClient returns a client for the JobPost from the given config.
func NewJobPostClient(c config) *JobPostClient {
	return &JobPostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobpost.Hooks(f(g(h())))`.
func (c *JobPostClient) Use(hooks ...Hook) {
	c.hooks.JobPost = append(c.hooks.JobPost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobpost.Intercept(f(g(h())))`.
func (c *JobPostClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobPost = append(c.inters.JobPost, interceptors...)
}

// Create returns a builder for creating a JobPost entity.
func (c *JobPostClient) Create() *JobPostCreate {
	mutation := newJobPostMutation(c.config, OpCreate)
	return &JobPostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobPost entities.
func (c *JobPostClient) CreateBulk(builders ...*JobPostCreate) *JobPostCreateBulk {
	return &JobPostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobPostClient) MapCreateBulk(slice any, setFunc func(*JobPostCreate, int)) *JobPostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobPostCreateBulk{err: fmt.Errorf("calling to JobPostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobPostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobPostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobPost.
func (c *JobPostClient) Update() *JobPostUpdate {
	mutation := newJobPostMutation(c.config, OpUpdate)
	return &JobPostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobPostClient) UpdateOne(_m *JobPost) *JobPostUpdateOne {
	mutation := newJobPostMutation(c.config, OpUpdateOne, withJobPost(_m))
	return &JobPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobPostClient) UpdateOneID(id uuid.UUID) *JobPostUpdateOne {
	mutation := newJobPostMutation(c.config, OpUpdateOne, withJobPostID(id))
	return &JobPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobPost.
func (c *JobPostClient) Delete() *JobPostDelete {
	mutation := newJobPostMutation(c.config, OpDelete)
	return &JobPostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobPostClient) DeleteOne(_m *JobPost) *JobPostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobPostClient) DeleteOneID(id uuid.UUID) *JobPostDeleteOne {
	builder := c.Delete().Where(jobpost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobPostDeleteOne{builder}
}

// Query returns a query builder for JobPost.
func (c *JobPostClient) Query() *JobPostQuery {
	return &JobPostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobPost},
		inters: c.Interceptors(),
	}
}

// Get returns a JobPost entity by its id.
func (c *JobPostClient) Get(ctx context.Context, id uuid.UUID) (*JobPost, error) {
	return c.Query().Where(jobpost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobPostClient) GetX(ctx context.Context, id uuid.UUID) *JobPost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a JobPost.
func (c *JobPostClient) QueryRun(_m *JobPost) *ParseRunQuery {
	query := (&ParseRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobpost.Table, jobpost.FieldID, id),
			sqlgraph.To(parserun.Table, parserun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobpost.RunTable, jobpost.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobPostClient) Hooks() []Hook {
	return c.hooks.JobPost
}

// Interceptors returns the client interceptors.
func (c *JobPostClient) Interceptors() []Interceptor {
	return c.inters.JobPost
}

func (c *JobPostClient) mutate(ctx context.Context, m *JobPostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobPostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobPostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobPostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobPost mutation op: %q", m.Op())
	}
}

// ParseRunClient is a client for the ParseRun schema.
type ParseRunClient struct {
	config
}

// NewParseRunClient returns a client for the ParseRun from the given config.
func NewParseRunClient(c config) *ParseRunClient {
	return &ParseRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parserun.Hooks(f(g(h())))`.
func (c *ParseRunClient) Use(hooks ...Hook) {
	c.hooks.ParseRun = append(c.hooks.ParseRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parserun.Intercept(f(g(h())))`.
func (c *ParseRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParseRun = append(c.inters.ParseRun, interceptors...)
}

// Create returns a builder for creating a ParseRun entity.
func (c *ParseRunClient) Create() *ParseRunCreate {
	mutation := newParseRunMutation(c.config, OpCreate)
	return &ParseRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParseRun entities.
func (c *ParseRunClient) CreateBulk(builders ...*ParseRunCreate) *ParseRunCreateBulk {
	return &ParseRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParseRunClient) MapCreateBulk(slice any, setFunc func(*ParseRunCreate, int)) *ParseRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParseRunCreateBulk{err: fmt.Errorf("calling to ParseRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParseRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParseRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParseRun.
func (c *ParseRunClient) Update() *ParseRunUpdate {
	mutation := newParseRunMutation(c.config, OpUpdate)
	return &ParseRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParseRunClient) UpdateOne(_m *ParseRun) *ParseRunUpdateOne {
	mutation := newParseRunMutation(c.config, OpUpdateOne, withParseRun(_m))
	return &ParseRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParseRunClient) UpdateOneID(id uuid.UUID) *ParseRunUpdateOne {
	mutation := newParseRunMutation(c.config, OpUpdateOne, withParseRunID(id))
	return &ParseRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParseRun.
func (c *ParseRunClient) Delete() *ParseRunDelete {
	mutation := newParseRunMutation(c.config, OpDelete)
	return &ParseRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParseRunClient) DeleteOne(_m *ParseRun) *ParseRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParseRunClient) DeleteOneID(id uuid.UUID) *ParseRunDeleteOne {
	builder := c.Delete().Where(parserun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParseRunDeleteOne{builder}
}

// Query returns a query builder for ParseRun.
func (c *ParseRunClient) Query() *ParseRunQuery {
	return &ParseRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParseRun},
		inters: c.Interceptors(),
	}
}

// Get returns a ParseRun entity by its id.
func (c *ParseRunClient) Get(ctx context.Context, id uuid.UUID) (*ParseRun, error) {
	return c.Query().Where(parserun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParseRunClient) GetX(ctx context.Context, id uuid.UUID) *ParseRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPosts queries the posts edge of a ParseRun.
func (c *ParseRunClient) QueryPosts(_m *ParseRun) *JobPostQuery {
	query := (&JobPostClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parserun.Table, parserun.FieldID, id),
			sqlgraph.To(jobpost.Table, jobpost.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, parserun.PostsTable, parserun.PostsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParseRunClient) Hooks() []Hook {
	return c.hooks.ParseRun
}

// Interceptors returns the client interceptors.
func (c *ParseRunClient) Interceptors() []Interceptor {
	return c.inters.ParseRun
}

func (c *ParseRunClient) mutate(ctx context.Context, m *ParseRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParseRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParseRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParseRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParseRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParseRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		JobPost, ParseRun []ent.Hook
	}
	inters struct {
		JobPost, ParseRun []ent.Interceptor
	}
)
