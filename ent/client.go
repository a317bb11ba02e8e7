// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/buildsquads/squads/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/buildsquads/squads/ent/agent"
	"github.com/buildsquads/squads/ent/agentsession"
	"github.com/buildsquads/squads/ent/card"
	"github.com/buildsquads/squads/ent/event"
	"github.com/buildsquads/squads/ent/externalnode"
	"github.com/buildsquads/squads/ent/laneassignment"
	"github.com/buildsquads/squads/ent/mcpserver"
	"github.com/buildsquads/squads/ent/project"
	"github.com/buildsquads/squads/ent/squad"
	"github.com/buildsquads/squads/ent/transcriptentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AgentSession is the client for interacting with the AgentSession builders.
	AgentSession *AgentSessionClient
	// Card is the client for interacting with the Card builders.
	Card *CardClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// ExternalNode is the client for interacting with the ExternalNode builders.
	ExternalNode *ExternalNodeClient
	// LaneAssignment is the client for interacting with the LaneAssignment builders.
	LaneAssignment *LaneAssignmentClient
	// MCPServer is the client for interacting with the MCPServer builders.
	MCPServer *MCPServerClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// Squad is the client for interacting with the Squad builders.
	Squad *SquadClient
	// TranscriptEntry is the client for interacting with the TranscriptEntry builders.
	TranscriptEntry *TranscriptEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AgentSession = NewAgentSessionClient(c.config)
	c.Card = NewCardClient(c.config)
	c.Event = NewEventClient(c.config)
	c.ExternalNode = NewExternalNodeClient(c.config)
	c.LaneAssignment = NewLaneAssignmentClient(c.config)
	c.MCPServer = NewMCPServerClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.Squad = NewSquadClient(c.config)
	c.TranscriptEntry = NewTranscriptEntryClient(c.config)
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
		Agent:           NewAgentClient(cfg),
		AgentSession:    NewAgentSessionClient(cfg),
		Card:            NewCardClient(cfg),
		Event:           NewEventClient(cfg),
		ExternalNode:    NewExternalNodeClient(cfg),
		LaneAssignment:  NewLaneAssignmentClient(cfg),
		MCPServer:       NewMCPServerClient(cfg),
		Project:         NewProjectClient(cfg),
		Squad:           NewSquadClient(cfg),
		TranscriptEntry: NewTranscriptEntryClient(cfg),
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
		Agent:           NewAgentClient(cfg),
		AgentSession:    NewAgentSessionClient(cfg),
		Card:            NewCardClient(cfg),
		Event:           NewEventClient(cfg),
		ExternalNode:    NewExternalNodeClient(cfg),
		LaneAssignment:  NewLaneAssignmentClient(cfg),
		MCPServer:       NewMCPServerClient(cfg),
		Project:         NewProjectClient(cfg),
		Squad:           NewSquadClient(cfg),
		TranscriptEntry: NewTranscriptEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.AgentSession, c.Card, c.Event, c.ExternalNode, c.LaneAssignment,
		c.MCPServer, c.Project, c.Squad, c.TranscriptEntry,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AgentSession, c.Card, c.Event, c.ExternalNode, c.LaneAssignment,
		c.MCPServer, c.Project, c.Squad, c.TranscriptEntry,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AgentSessionMutation:
		return c.AgentSession.mutate(ctx, m)
	case *CardMutation:
		return c.Card.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *ExternalNodeMutation:
		return c.ExternalNode.mutate(ctx, m)
	case *LaneAssignmentMutation:
		return c.LaneAssignment.mutate(ctx, m)
	case *MCPServerMutation:
		return c.MCPServer.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *SquadMutation:
		return c.Squad.mutate(ctx, m)
	case *TranscriptEntryMutation:
		return c.TranscriptEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySquad queries the squad edge of a Agent.
func (c *AgentClient) QuerySquad(_m *Agent) *SquadQuery {
	query := (&SquadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(squad.Table, squad.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agent.SquadTable, agent.SquadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Agent.
func (c *AgentClient) QuerySessions(_m *Agent) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.SessionsTable, agent.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AgentSessionClient is a client for the AgentSession schema.
type AgentSessionClient struct {
	config
}

// NewAgentSessionClient returns a client for the AgentSession from the given config.
func NewAgentSessionClient(c config) *AgentSessionClient {
	return &AgentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentsession.Hooks(f(g(h())))`.
func (c *AgentSessionClient) Use(hooks ...Hook) {
	c.hooks.AgentSession = append(c.hooks.AgentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentsession.Intercept(f(g(h())))`.
func (c *AgentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSession = append(c.inters.AgentSession, interceptors...)
}

// Create returns a builder for creating a AgentSession entity.
func (c *AgentSessionClient) Create() *AgentSessionCreate {
	mutation := newAgentSessionMutation(c.config, OpCreate)
	return &AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSession entities.
func (c *AgentSessionClient) CreateBulk(builders ...*AgentSessionCreate) *AgentSessionCreateBulk {
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSessionClient) MapCreateBulk(slice any, setFunc func(*AgentSessionCreate, int)) *AgentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSessionCreateBulk{err: fmt.Errorf("calling to AgentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSession.
func (c *AgentSessionClient) Update() *AgentSessionUpdate {
	mutation := newAgentSessionMutation(c.config, OpUpdate)
	return &AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSessionClient) UpdateOne(_m *AgentSession) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSession(_m))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSessionClient) UpdateOneID(id string) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSessionID(id))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSession.
func (c *AgentSessionClient) Delete() *AgentSessionDelete {
	mutation := newAgentSessionMutation(c.config, OpDelete)
	return &AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSessionClient) DeleteOne(_m *AgentSession) *AgentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSessionClient) DeleteOneID(id string) *AgentSessionDeleteOne {
	builder := c.Delete().Where(agentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSessionDeleteOne{builder}
}

// Query returns a query builder for AgentSession.
func (c *AgentSessionClient) Query() *AgentSessionQuery {
	return &AgentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSession entity by its id.
func (c *AgentSessionClient) Get(ctx context.Context, id string) (*AgentSession, error) {
	return c.Query().Where(agentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSessionClient) GetX(ctx context.Context, id string) *AgentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a AgentSession.
func (c *AgentSessionClient) QueryProject(_m *AgentSession) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentsession.ProjectTable, agentsession.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgent queries the agent edge of a AgentSession.
func (c *AgentSessionClient) QueryAgent(_m *AgentSession) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agentsession.AgentTable, agentsession.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTranscriptEntries queries the transcript_entries edge of a AgentSession.
func (c *AgentSessionClient) QueryTranscriptEntries(_m *AgentSession) *TranscriptEntryQuery {
	query := (&TranscriptEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentsession.Table, agentsession.FieldID, id),
			sqlgraph.To(transcriptentry.Table, transcriptentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentsession.TranscriptEntriesTable, agentsession.TranscriptEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentSessionClient) Hooks() []Hook {
	return c.hooks.AgentSession
}

// Interceptors returns the client interceptors.
func (c *AgentSessionClient) Interceptors() []Interceptor {
	return c.inters.AgentSession
}

func (c *AgentSessionClient) mutate(ctx context.Context, m *AgentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSession mutation op: %q", m.Op())
	}
}

// CardClient is a client for the Card schema.
type CardClient struct {
	config
}

// NewCardClient returns a client for the Card from the given config.
func NewCardClient(c config) *CardClient {
	return &CardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `card.Hooks(f(g(h())))`.
func (c *CardClient) Use(hooks ...Hook) {
	c.hooks.Card = append(c.hooks.Card, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `card.Intercept(f(g(h())))`.
func (c *CardClient) Intercept(interceptors ...Interceptor) {
	c.inters.Card = append(c.inters.Card, interceptors...)
}

// Create returns a builder for creating a Card entity.
func (c *CardClient) Create() *CardCreate {
	mutation := newCardMutation(c.config, OpCreate)
	return &CardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Card entities.
func (c *CardClient) CreateBulk(builders ...*CardCreate) *CardCreateBulk {
	return &CardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CardClient) MapCreateBulk(slice any, setFunc func(*CardCreate, int)) *CardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CardCreateBulk{err: fmt.Errorf("calling to CardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Card.
func (c *CardClient) Update() *CardUpdate {
	mutation := newCardMutation(c.config, OpUpdate)
	return &CardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CardClient) UpdateOne(_m *Card) *CardUpdateOne {
	mutation := newCardMutation(c.config, OpUpdateOne, withCard(_m))
	return &CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CardClient) UpdateOneID(id string) *CardUpdateOne {
	mutation := newCardMutation(c.config, OpUpdateOne, withCardID(id))
	return &CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Card.
func (c *CardClient) Delete() *CardDelete {
	mutation := newCardMutation(c.config, OpDelete)
	return &CardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CardClient) DeleteOne(_m *Card) *CardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CardClient) DeleteOneID(id string) *CardDeleteOne {
	builder := c.Delete().Where(card.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CardDeleteOne{builder}
}

// Query returns a query builder for Card.
func (c *CardClient) Query() *CardQuery {
	return &CardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCard},
		inters: c.Interceptors(),
	}
}

// Get returns a Card entity by its id.
func (c *CardClient) Get(ctx context.Context, id string) (*Card, error) {
	return c.Query().Where(card.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CardClient) GetX(ctx context.Context, id string) *Card {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Card.
func (c *CardClient) QueryProject(_m *Card) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(card.Table, card.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, card.ProjectTable, card.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySquad queries the squad edge of a Card.
func (c *CardClient) QuerySquad(_m *Card) *SquadQuery {
	query := (&SquadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(card.Table, card.FieldID, id),
			sqlgraph.To(squad.Table, squad.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, card.SquadTable, card.SquadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CardClient) Hooks() []Hook {
	return c.hooks.Card
}

// Interceptors returns the client interceptors.
func (c *CardClient) Interceptors() []Interceptor {
	return c.inters.Card
}

func (c *CardClient) mutate(ctx context.Context, m *CardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Card mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Event.
func (c *EventClient) QueryProject(_m *Event) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.ProjectTable, event.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// ExternalNodeClient is a client for the ExternalNode schema.
type ExternalNodeClient struct {
	config
}

// NewExternalNodeClient returns a client for the ExternalNode from the given config.
func NewExternalNodeClient(c config) *ExternalNodeClient {
	return &ExternalNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `externalnode.Hooks(f(g(h())))`.
func (c *ExternalNodeClient) Use(hooks ...Hook) {
	c.hooks.ExternalNode = append(c.hooks.ExternalNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `externalnode.Intercept(f(g(h())))`.
func (c *ExternalNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExternalNode = append(c.inters.ExternalNode, interceptors...)
}

// Create returns a builder for creating a ExternalNode entity.
func (c *ExternalNodeClient) Create() *ExternalNodeCreate {
	mutation := newExternalNodeMutation(c.config, OpCreate)
	return &ExternalNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExternalNode entities.
func (c *ExternalNodeClient) CreateBulk(builders ...*ExternalNodeCreate) *ExternalNodeCreateBulk {
	return &ExternalNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExternalNodeClient) MapCreateBulk(slice any, setFunc func(*ExternalNodeCreate, int)) *ExternalNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExternalNodeCreateBulk{err: fmt.Errorf("calling to ExternalNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExternalNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExternalNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExternalNode.
func (c *ExternalNodeClient) Update() *ExternalNodeUpdate {
	mutation := newExternalNodeMutation(c.config, OpUpdate)
	return &ExternalNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExternalNodeClient) UpdateOne(_m *ExternalNode) *ExternalNodeUpdateOne {
	mutation := newExternalNodeMutation(c.config, OpUpdateOne, withExternalNode(_m))
	return &ExternalNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExternalNodeClient) UpdateOneID(id string) *ExternalNodeUpdateOne {
	mutation := newExternalNodeMutation(c.config, OpUpdateOne, withExternalNodeID(id))
	return &ExternalNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExternalNode.
func (c *ExternalNodeClient) Delete() *ExternalNodeDelete {
	mutation := newExternalNodeMutation(c.config, OpDelete)
	return &ExternalNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExternalNodeClient) DeleteOne(_m *ExternalNode) *ExternalNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExternalNodeClient) DeleteOneID(id string) *ExternalNodeDeleteOne {
	builder := c.Delete().Where(externalnode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExternalNodeDeleteOne{builder}
}

// Query returns a query builder for ExternalNode.
func (c *ExternalNodeClient) Query() *ExternalNodeQuery {
	return &ExternalNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExternalNode},
		inters: c.Interceptors(),
	}
}

// Get returns a ExternalNode entity by its id.
func (c *ExternalNodeClient) Get(ctx context.Context, id string) (*ExternalNode, error) {
	return c.Query().Where(externalnode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExternalNodeClient) GetX(ctx context.Context, id string) *ExternalNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExternalNodeClient) Hooks() []Hook {
	return c.hooks.ExternalNode
}

// Interceptors returns the client interceptors.
func (c *ExternalNodeClient) Interceptors() []Interceptor {
	return c.inters.ExternalNode
}

func (c *ExternalNodeClient) mutate(ctx context.Context, m *ExternalNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExternalNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExternalNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExternalNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExternalNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExternalNode mutation op: %q", m.Op())
	}
}

// LaneAssignmentClient is a client for the LaneAssignment schema.
type LaneAssignmentClient struct {
	config
}

// NewLaneAssignmentClient returns a client for the LaneAssignment from the given config.
func NewLaneAssignmentClient(c config) *LaneAssignmentClient {
	return &LaneAssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `laneassignment.Hooks(f(g(h())))`.
func (c *LaneAssignmentClient) Use(hooks ...Hook) {
	c.hooks.LaneAssignment = append(c.hooks.LaneAssignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `laneassignment.Intercept(f(g(h())))`.
func (c *LaneAssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.LaneAssignment = append(c.inters.LaneAssignment, interceptors...)
}

// Create returns a builder for creating a LaneAssignment entity.
func (c *LaneAssignmentClient) Create() *LaneAssignmentCreate {
	mutation := newLaneAssignmentMutation(c.config, OpCreate)
	return &LaneAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LaneAssignment entities.
func (c *LaneAssignmentClient) CreateBulk(builders ...*LaneAssignmentCreate) *LaneAssignmentCreateBulk {
	return &LaneAssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LaneAssignmentClient) MapCreateBulk(slice any, setFunc func(*LaneAssignmentCreate, int)) *LaneAssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LaneAssignmentCreateBulk{err: fmt.Errorf("calling to LaneAssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LaneAssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LaneAssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LaneAssignment.
func (c *LaneAssignmentClient) Update() *LaneAssignmentUpdate {
	mutation := newLaneAssignmentMutation(c.config, OpUpdate)
	return &LaneAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LaneAssignmentClient) UpdateOne(_m *LaneAssignment) *LaneAssignmentUpdateOne {
	mutation := newLaneAssignmentMutation(c.config, OpUpdateOne, withLaneAssignment(_m))
	return &LaneAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LaneAssignmentClient) UpdateOneID(id string) *LaneAssignmentUpdateOne {
	mutation := newLaneAssignmentMutation(c.config, OpUpdateOne, withLaneAssignmentID(id))
	return &LaneAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LaneAssignment.
func (c *LaneAssignmentClient) Delete() *LaneAssignmentDelete {
	mutation := newLaneAssignmentMutation(c.config, OpDelete)
	return &LaneAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LaneAssignmentClient) DeleteOne(_m *LaneAssignment) *LaneAssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LaneAssignmentClient) DeleteOneID(id string) *LaneAssignmentDeleteOne {
	builder := c.Delete().Where(laneassignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LaneAssignmentDeleteOne{builder}
}

// Query returns a query builder for LaneAssignment.
func (c *LaneAssignmentClient) Query() *LaneAssignmentQuery {
	return &LaneAssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLaneAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a LaneAssignment entity by its id.
func (c *LaneAssignmentClient) Get(ctx context.Context, id string) (*LaneAssignment, error) {
	return c.Query().Where(laneassignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LaneAssignmentClient) GetX(ctx context.Context, id string) *LaneAssignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a LaneAssignment.
func (c *LaneAssignmentClient) QueryProject(_m *LaneAssignment) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(laneassignment.Table, laneassignment.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, laneassignment.ProjectTable, laneassignment.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LaneAssignmentClient) Hooks() []Hook {
	return c.hooks.LaneAssignment
}

// Interceptors returns the client interceptors.
func (c *LaneAssignmentClient) Interceptors() []Interceptor {
	return c.inters.LaneAssignment
}

func (c *LaneAssignmentClient) mutate(ctx context.Context, m *LaneAssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LaneAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LaneAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LaneAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LaneAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LaneAssignment mutation op: %q", m.Op())
	}
}

// MCPServerClient is a client for the MCPServer schema.
type MCPServerClient struct {
	config
}

// NewMCPServerClient returns a client for the MCPServer from the given config.
func NewMCPServerClient(c config) *MCPServerClient {
	return &MCPServerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mcpserver.Hooks(f(g(h())))`.
func (c *MCPServerClient) Use(hooks ...Hook) {
	c.hooks.MCPServer = append(c.hooks.MCPServer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mcpserver.Intercept(f(g(h())))`.
func (c *MCPServerClient) Intercept(interceptors ...Interceptor) {
	c.inters.MCPServer = append(c.inters.MCPServer, interceptors...)
}

// Create returns a builder for creating a MCPServer entity.
func (c *MCPServerClient) Create() *MCPServerCreate {
	mutation := newMCPServerMutation(c.config, OpCreate)
	return &MCPServerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MCPServer entities.
func (c *MCPServerClient) CreateBulk(builders ...*MCPServerCreate) *MCPServerCreateBulk {
	return &MCPServerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MCPServerClient) MapCreateBulk(slice any, setFunc func(*MCPServerCreate, int)) *MCPServerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MCPServerCreateBulk{err: fmt.Errorf("calling to MCPServerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MCPServerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MCPServerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MCPServer.
func (c *MCPServerClient) Update() *MCPServerUpdate {
	mutation := newMCPServerMutation(c.config, OpUpdate)
	return &MCPServerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MCPServerClient) UpdateOne(_m *MCPServer) *MCPServerUpdateOne {
	mutation := newMCPServerMutation(c.config, OpUpdateOne, withMCPServer(_m))
	return &MCPServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MCPServerClient) UpdateOneID(id string) *MCPServerUpdateOne {
	mutation := newMCPServerMutation(c.config, OpUpdateOne, withMCPServerID(id))
	return &MCPServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MCPServer.
func (c *MCPServerClient) Delete() *MCPServerDelete {
	mutation := newMCPServerMutation(c.config, OpDelete)
	return &MCPServerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MCPServerClient) DeleteOne(_m *MCPServer) *MCPServerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MCPServerClient) DeleteOneID(id string) *MCPServerDeleteOne {
	builder := c.Delete().Where(mcpserver.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MCPServerDeleteOne{builder}
}

// Query returns a query builder for MCPServer.
func (c *MCPServerClient) Query() *MCPServerQuery {
	return &MCPServerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMCPServer},
		inters: c.Interceptors(),
	}
}

// Get returns a MCPServer entity by its id.
func (c *MCPServerClient) Get(ctx context.Context, id string) (*MCPServer, error) {
	return c.Query().Where(mcpserver.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MCPServerClient) GetX(ctx context.Context, id string) *MCPServer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySquad queries the squad edge of a MCPServer.
func (c *MCPServerClient) QuerySquad(_m *MCPServer) *SquadQuery {
	query := (&SquadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mcpserver.Table, mcpserver.FieldID, id),
			sqlgraph.To(squad.Table, squad.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mcpserver.SquadTable, mcpserver.SquadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MCPServerClient) Hooks() []Hook {
	return c.hooks.MCPServer
}

// Interceptors returns the client interceptors.
func (c *MCPServerClient) Interceptors() []Interceptor {
	return c.inters.MCPServer
}

func (c *MCPServerClient) mutate(ctx context.Context, m *MCPServerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MCPServerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MCPServerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MCPServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MCPServerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MCPServer mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySquads queries the squads edge of a Project.
func (c *ProjectClient) QuerySquads(_m *Project) *SquadQuery {
	query := (&SquadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(squad.Table, squad.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SquadsTable, project.SquadsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Project.
func (c *ProjectClient) QuerySessions(_m *Project) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SessionsTable, project.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCards queries the cards edge of a Project.
func (c *ProjectClient) QueryCards(_m *Project) *CardQuery {
	query := (&CardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(card.Table, card.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.CardsTable, project.CardsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Project.
func (c *ProjectClient) QueryEvents(_m *Project) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.EventsTable, project.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLaneAssignments queries the lane_assignments edge of a Project.
func (c *ProjectClient) QueryLaneAssignments(_m *Project) *LaneAssignmentQuery {
	query := (&LaneAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(laneassignment.Table, laneassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.LaneAssignmentsTable, project.LaneAssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// SquadClient is a client for the Squad schema.
type SquadClient struct {
	config
}

// NewSquadClient returns a client for the Squad from the given config.
func NewSquadClient(c config) *SquadClient {
	return &SquadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `squad.Hooks(f(g(h())))`.
func (c *SquadClient) Use(hooks ...Hook) {
	c.hooks.Squad = append(c.hooks.Squad, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `squad.Intercept(f(g(h())))`.
func (c *SquadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Squad = append(c.inters.Squad, interceptors...)
}

// Create returns a builder for creating a Squad entity.
func (c *SquadClient) Create() *SquadCreate {
	mutation := newSquadMutation(c.config, OpCreate)
	return &SquadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Squad entities.
func (c *SquadClient) CreateBulk(builders ...*SquadCreate) *SquadCreateBulk {
	return &SquadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SquadClient) MapCreateBulk(slice any, setFunc func(*SquadCreate, int)) *SquadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SquadCreateBulk{err: fmt.Errorf("calling to SquadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SquadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SquadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Squad.
func (c *SquadClient) Update() *SquadUpdate {
	mutation := newSquadMutation(c.config, OpUpdate)
	return &SquadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SquadClient) UpdateOne(_m *Squad) *SquadUpdateOne {
	mutation := newSquadMutation(c.config, OpUpdateOne, withSquad(_m))
	return &SquadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SquadClient) UpdateOneID(id string) *SquadUpdateOne {
	mutation := newSquadMutation(c.config, OpUpdateOne, withSquadID(id))
	return &SquadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Squad.
func (c *SquadClient) Delete() *SquadDelete {
	mutation := newSquadMutation(c.config, OpDelete)
	return &SquadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SquadClient) DeleteOne(_m *Squad) *SquadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SquadClient) DeleteOneID(id string) *SquadDeleteOne {
	builder := c.Delete().Where(squad.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SquadDeleteOne{builder}
}

// Query returns a query builder for Squad.
func (c *SquadClient) Query() *SquadQuery {
	return &SquadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSquad},
		inters: c.Interceptors(),
	}
}

// Get returns a Squad entity by its id.
func (c *SquadClient) Get(ctx context.Context, id string) (*Squad, error) {
	return c.Query().Where(squad.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SquadClient) GetX(ctx context.Context, id string) *Squad {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Squad.
func (c *SquadClient) QueryProject(_m *Squad) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(squad.Table, squad.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, squad.ProjectTable, squad.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgents queries the agents edge of a Squad.
func (c *SquadClient) QueryAgents(_m *Squad) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(squad.Table, squad.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, squad.AgentsTable, squad.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCards queries the cards edge of a Squad.
func (c *SquadClient) QueryCards(_m *Squad) *CardQuery {
	query := (&CardClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(squad.Table, squad.FieldID, id),
			sqlgraph.To(card.Table, card.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, squad.CardsTable, squad.CardsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMcpServers queries the mcp_servers edge of a Squad.
func (c *SquadClient) QueryMcpServers(_m *Squad) *MCPServerQuery {
	query := (&MCPServerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(squad.Table, squad.FieldID, id),
			sqlgraph.To(mcpserver.Table, mcpserver.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, squad.McpServersTable, squad.McpServersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SquadClient) Hooks() []Hook {
	return c.hooks.Squad
}

// Interceptors returns the client interceptors.
func (c *SquadClient) Interceptors() []Interceptor {
	return c.inters.Squad
}

func (c *SquadClient) mutate(ctx context.Context, m *SquadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SquadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SquadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SquadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SquadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Squad mutation op: %q", m.Op())
	}
}

// TranscriptEntryClient is a client for the TranscriptEntry schema.
type TranscriptEntryClient struct {
	config
}

// NewTranscriptEntryClient returns a client for the TranscriptEntry from the given config.
func NewTranscriptEntryClient(c config) *TranscriptEntryClient {
	return &TranscriptEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcriptentry.Hooks(f(g(h())))`.
func (c *TranscriptEntryClient) Use(hooks ...Hook) {
	c.hooks.TranscriptEntry = append(c.hooks.TranscriptEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcriptentry.Intercept(f(g(h())))`.
func (c *TranscriptEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TranscriptEntry = append(c.inters.TranscriptEntry, interceptors...)
}

// Create returns a builder for creating a TranscriptEntry entity.
func (c *TranscriptEntryClient) Create() *TranscriptEntryCreate {
	mutation := newTranscriptEntryMutation(c.config, OpCreate)
	return &TranscriptEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TranscriptEntry entities.
func (c *TranscriptEntryClient) CreateBulk(builders ...*TranscriptEntryCreate) *TranscriptEntryCreateBulk {
	return &TranscriptEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptEntryClient) MapCreateBulk(slice any, setFunc func(*TranscriptEntryCreate, int)) *TranscriptEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptEntryCreateBulk{err: fmt.Errorf("calling to TranscriptEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TranscriptEntry.
func (c *TranscriptEntryClient) Update() *TranscriptEntryUpdate {
	mutation := newTranscriptEntryMutation(c.config, OpUpdate)
	return &TranscriptEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptEntryClient) UpdateOne(_m *TranscriptEntry) *TranscriptEntryUpdateOne {
	mutation := newTranscriptEntryMutation(c.config, OpUpdateOne, withTranscriptEntry(_m))
	return &TranscriptEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptEntryClient) UpdateOneID(id string) *TranscriptEntryUpdateOne {
	mutation := newTranscriptEntryMutation(c.config, OpUpdateOne, withTranscriptEntryID(id))
	return &TranscriptEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TranscriptEntry.
func (c *TranscriptEntryClient) Delete() *TranscriptEntryDelete {
	mutation := newTranscriptEntryMutation(c.config, OpDelete)
	return &TranscriptEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptEntryClient) DeleteOne(_m *TranscriptEntry) *TranscriptEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptEntryClient) DeleteOneID(id string) *TranscriptEntryDeleteOne {
	builder := c.Delete().Where(transcriptentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptEntryDeleteOne{builder}
}

// Query returns a query builder for TranscriptEntry.
func (c *TranscriptEntryClient) Query() *TranscriptEntryQuery {
	return &TranscriptEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscriptEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a TranscriptEntry entity by its id.
func (c *TranscriptEntryClient) Get(ctx context.Context, id string) (*TranscriptEntry, error) {
	return c.Query().Where(transcriptentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptEntryClient) GetX(ctx context.Context, id string) *TranscriptEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a TranscriptEntry.
func (c *TranscriptEntryClient) QuerySession(_m *TranscriptEntry) *AgentSessionQuery {
	query := (&AgentSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcriptentry.Table, transcriptentry.FieldID, id),
			sqlgraph.To(agentsession.Table, agentsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transcriptentry.SessionTable, transcriptentry.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptEntryClient) Hooks() []Hook {
	return c.hooks.TranscriptEntry
}

// Interceptors returns the client interceptors.
func (c *TranscriptEntryClient) Interceptors() []Interceptor {
	return c.inters.TranscriptEntry
}

func (c *TranscriptEntryClient) mutate(ctx context.Context, m *TranscriptEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TranscriptEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AgentSession, Card, Event, ExternalNode, LaneAssignment, MCPServer,
		Project, Squad, TranscriptEntry []ent.Hook
	}
	inters struct {
		Agent, AgentSession, Card, Event, ExternalNode, LaneAssignment, MCPServer,
		Project, Squad, TranscriptEntry []ent.Interceptor
	}
)
