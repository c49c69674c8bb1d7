package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Mongo.validate(),
		c.Session.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (m *MongoConfig) validate() error {
	var errs []error

	if m.URI == "" {
		errs = append(errs, errors.New("mongo.uri must not be empty"))
	}
	if m.Database == "" {
		errs = append(errs, errors.New("mongo.database must not be empty"))
	}
	if m.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("mongo.connect_timeout must be positive"))
	}
	if m.QueryTimeout <= 0 {
		errs = append(errs, errors.New("mongo.query_timeout must be positive"))
	}
	if m.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("mongo.circuit_breaker.max_failures must be >= 1, got %d",
			m.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (s *SessionConfig) validate() error {
	if s.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
