package mongo

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker/v2"

	"github.com/planmate/planmate/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*Store)(nil)

// Name returns the identifier used when the store is registered with a
// [ports.HealthRegistry].
func (s *Store) Name() string {
	return "mongodb"
}

// HealthCheck reports the database's availability based on the circuit
// breaker state. No network call is made: the breaker already observes every
// query, so its state is a live view of the connection.
//
// State mapping:
//   - closed: the database is operating normally; returns nil.
//   - half-open: the breaker is probing recovery; returns a descriptive
//     error indicating degraded state.
//   - open: the database is unavailable and queries are being rejected;
//     returns a descriptive error indicating failure.
//
// This reports storage status, not service readiness. The handlers keep
// serving requests with domain errors while the breaker is open; tying
// readiness to storage health would keep traffic away and prevent the
// breaker from ever probing recovery.
func (s *Store) HealthCheck(_ context.Context) error {
	switch state := s.guard.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("mongodb: degraded (circuit breaker half-open)")
	case gobreaker.StateOpen:
		return fmt.Errorf("mongodb: failing (circuit breaker open)")
	default:
		return fmt.Errorf("mongodb: unknown circuit breaker state %q", state)
	}
}
