package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/metric"

	"github.com/planmate/planmate/internal/domain"
	"github.com/planmate/planmate/internal/platform/telemetry"
)

// GuardConfig holds the circuit breaker and timeout settings for the
// storage layer.
type GuardConfig struct {
	MaxFailures   int
	Timeout       time.Duration
	HalfOpenLimit int
	QueryTimeout  time.Duration
}

// Guard wraps every storage operation with a per-query timeout and a shared
// circuit breaker, and translates driver failures to domain errors. One Guard
// is shared by all repositories so the breaker sees the database as a single
// dependency.
type Guard struct {
	cb           *gobreaker.CircuitBreaker[any]
	queryTimeout time.Duration
	metrics      *telemetry.Metrics
}

// NewGuard creates a Guard. Not-found and duplicate-key results are expected
// outcomes and do not count as breaker failures. metrics may be nil.
func NewGuard(cfg GuardConfig, metrics *telemetry.Metrics) *Guard {
	settings := gobreaker.Settings{
		Name:        "mongodb",
		MaxRequests: uint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.MaxFailures)
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, mongo.ErrNoDocuments) ||
				mongo.IsDuplicateKeyError(err)
		},
	}
	return &Guard{
		cb:           gobreaker.NewCircuitBreaker[any](settings),
		queryTimeout: cfg.QueryTimeout,
		metrics:      metrics,
	}
}

// State returns the current breaker state for health reporting.
func (g *Guard) State() gobreaker.State {
	return g.cb.State()
}

// execute runs fn under the guard's breaker with a per-query timeout. The
// returned error is already translated to the domain vocabulary, except for
// mongo.ErrNoDocuments and duplicate-key errors, which pass through for the
// calling repository to map to its entity-specific error.
func execute[T any](ctx context.Context, g *Guard, collection string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	start := time.Now()

	res, err := g.cb.Execute(func() (any, error) {
		qctx, cancel := context.WithTimeout(ctx, g.queryTimeout)
		defer cancel()
		return fn(qctx)
	})
	g.recordMetrics(ctx, collection, start, err)
	if err != nil {
		return zero, translateError(err)
	}
	return res.(T), nil
}

// recordMetrics records the operation duration. Metrics are recorded outside
// the circuit breaker so that circuit-open rejections are captured. Safe to
// call with nil metrics.
func (g *Guard) recordMetrics(ctx context.Context, collection string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case err != nil && !errors.Is(err, mongo.ErrNoDocuments) && !mongo.IsDuplicateKeyError(err):
		result = "error"
	}

	g.metrics.StorageOpDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		telemetry.AttrCollection.String(collection),
		telemetry.AttrResult.String(result),
	))
}

// translateError maps driver and breaker failures to domain errors.
// mongo.ErrNoDocuments and duplicate-key errors are returned unchanged so
// repositories can map them to entity-specific errors.
func translateError(err error) error {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("circuit breaker rejected the call: %w", domain.ErrUnavailable)

	case errors.Is(err, mongo.ErrNoDocuments):
		return err

	case mongo.IsDuplicateKeyError(err):
		return err

	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return fmt.Errorf("%v: %w", err, domain.ErrUnavailable)

	default:
		return err
	}
}
