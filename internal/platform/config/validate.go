package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-todo-service/internal/platform/logging"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Mongo.validate(),
		c.CORS.validate(),
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
	// The 504 envelope must go out before the connection's write deadline.
	if s.HandlerTimeout <= 0 || s.HandlerTimeout >= s.WriteTimeout {
		errs = append(errs, fmt.Errorf("server.handler_timeout must be positive and below server.write_timeout (%s), got %s",
			s.WriteTimeout, s.HandlerTimeout))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
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
	case logging.FormatJSON, logging.FormatText:
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (m *MongoConfig) validate() error {
	var errs []error

	if strings.TrimSpace(m.URI) == "" {
		errs = append(errs, errors.New("MongoDB URI is required"))
	}
	if m.Collection == "" {
		errs = append(errs, errors.New("mongo.collection must not be empty"))
	}
	if m.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("mongo.connect_timeout must be positive"))
	}
	if m.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("mongo.circuit_breaker.max_failures must be >= 1, got %d",
			m.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (c *CORSConfig) validate() error {
	if c.MaxAge < 0 {
		return fmt.Errorf("cors.max_age must not be negative, got %d", c.MaxAge)
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
