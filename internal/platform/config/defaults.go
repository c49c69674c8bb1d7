package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"mongo.uri":                             "mongodb://localhost:27017",
		"mongo.database":                        "planmate",
		"mongo.connect_timeout":                 "10s",
		"mongo.query_timeout":                   "5s",
		"mongo.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"mongo.circuit_breaker.timeout":         "30s",
		"mongo.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"session.ttl": "24h",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "planmate",
	}
}
