package ports

import "context"

// HealthChecker is implemented by components that can report their own
// health, such as the document-store connection.
type HealthChecker interface {
	// Name identifies the component in probe output, e.g. "mongodb".
	Name() string

	// HealthCheck returns nil when healthy, or an error naming the failure.
	// Implementations honor context cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	// Register adds a checker.
	Register(checker HealthChecker)

	// CheckAll runs every check and returns the results keyed by checker
	// name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
