// Package mongodb provides an instrumented MongoDB connection with a circuit
// breaker, OpenTelemetry tracing, and operation metrics for the store layer.
//
// Every store operation runs through the same pipeline:
//
//	Circuit Breaker → OTEL Span → Driver call → Metrics
//
// Construction:
//
//	client, err := mongodb.Connect(ctx, &cfg.Mongo, metrics, logger)
//	defer client.Close(ctx)
//
// Executing operations:
//
//	err := client.Do(ctx, "find", func(ctx context.Context) error {
//		cur, err := client.Collection("todos").Find(ctx, filter)
//		...
//	})
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-todo-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/telemetry"
)

const (
	checkerName   = "mongodb"
	dbSystem      = "mongodb"
	tracerName    = "mongodb"
	defaultDBName = "todo_api_lab"
)

// ErrMissingURI is returned by Connect when no connection string is configured.
var ErrMissingURI = errors.New("MongoDB URI is required")

// Op is a single driver call executed by Do. It receives the span context.
type Op func(ctx context.Context) error

// Client wraps a connected *mongo.Client and the selected database. Store
// adapters issue their driver calls through Do.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
	breaker  *gobreaker.CircuitBreaker[struct{}]
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// Connect dials MongoDB, verifies the connection with a ping, and returns a
// ready Client. The database is cfg.Database when set, otherwise the one
// named in the URI path. If metrics is nil, metric recording is skipped.
func Connect(ctx context.Context, cfg *config.MongoConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Client, error) {
	if cfg.URI == "" {
		return nil, ErrMissingURI
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dbName, err := databaseName(cfg)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	mc, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := mc.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = mc.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	logger.InfoContext(ctx, "connected to mongodb", slog.String("database", dbName))

	c := newClient(&cfg.CircuitBreaker, metrics, logger)
	c.client = mc
	c.database = mc.Database(dbName)
	return c, nil
}

// newClient builds the breaker and instrumentation without a connection.
func newClient(cfg *config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        checkerName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Do executes op through the circuit breaker inside a client span and
// records duration and outcome metrics. Errors from op are returned as is;
// breaker rejections surface as gobreaker.ErrOpenState or
// gobreaker.ErrTooManyRequests.
func (c *Client) Do(ctx context.Context, operation string, op Op) error {
	start := time.Now()

	_, err := c.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := c.startSpan(ctx, operation)
		defer span.End()

		opErr := op(spanCtx)
		finishSpan(span, opErr)

		return struct{}{}, opErr
	})

	c.recordMetrics(ctx, operation, start, err)

	return err
}

// Collection returns a handle to the named collection in the selected database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

// Name identifies this dependency in readiness reports. Together with
// HealthCheck it satisfies ports.HealthChecker.
func (c *Client) Name() string {
	return checkerName
}

// HealthCheck reports an open breaker without touching the network, and
// otherwise pings the primary.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.breakerHealth(); err != nil {
		return err
	}
	if c.client == nil {
		return errors.New("mongodb: not connected")
	}
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping failed: %w", err)
	}
	return nil
}

// Close disconnects from the server. Safe to call on a Client that never
// connected.
func (c *Client) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting from mongodb: %w", err)
	}
	return nil
}

func (c *Client) breakerHealth() error {
	state := c.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", checkerName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", checkerName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", checkerName, state)
	}
}

func (c *Client) startSpan(ctx context.Context, operation string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(tracerName)

	attrs := []attribute.KeyValue{
		telemetry.AttrDBSystem.String(dbSystem),
		telemetry.AttrDBOperation.String(operation),
	}
	if c.database != nil {
		attrs = append(attrs, attribute.String("db.name", c.database.Name()))
	}

	return tracer.Start(ctx, "mongodb "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// finishSpan records the outcome on the span. Missing documents are an
// expected result, not a span error.
func finishSpan(span trace.Span, err error) {
	if err == nil || errors.Is(err, mongo.ErrNoDocuments) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics is safe to call with nil metrics. It runs outside the
// breaker so rejected calls are counted too.
func (c *Client) recordMetrics(ctx context.Context, operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(dbSystem),
		telemetry.AttrDBOperation.String(operation),
		telemetry.AttrResult.String(result(err)),
	)

	c.metrics.StoreOperationDuration.Record(ctx, duration, attrs)
	c.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

func result(err error) string {
	switch {
	case err == nil, errors.Is(err, mongo.ErrNoDocuments):
		return "success"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	default:
		return "error"
	}
}

// isSuccessful decides which op errors count against the breaker. Only
// failures that say something about the server's health trip it; a missing
// document or a rejected write does not.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	return !IsUnavailable(err)
}

// IsUnavailable reports whether err means the server could not be reached
// or did not answer in time.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var selErr topology.ServerSelectionError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return true
	case errors.Is(err, mongo.ErrClientDisconnected):
		return true
	case mongo.IsNetworkError(err), mongo.IsTimeout(err):
		return true
	case errors.As(err, &selErr):
		return true
	case errors.Is(err, context.DeadlineExceeded):
		return true
	}
	return false
}

// databaseName resolves the database from config or the URI path.
func databaseName(cfg *config.MongoConfig) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, nil
	}
	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err != nil {
		return "", fmt.Errorf("parsing mongodb uri: %w", err)
	}
	if cs.Database == "" {
		return defaultDBName, nil
	}
	return cs.Database, nil
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
