package config

const (
	defaultServerPort = 3000
	defaultMongoURI   = "mongodb://localhost:27017/todo_api_lab"

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCORSMaxAge = 300
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.handler_timeout":  "9s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"mongo.uri":                             defaultMongoURI,
		"mongo.database":                        "",
		"mongo.collection":                      "todos",
		"mongo.connect_timeout":                 "10s",
		"mongo.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"mongo.circuit_breaker.timeout":         "30s",
		"mongo.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"cors.allowed_origins": []string{"*"},
		"cors.max_age":         defaultCORSMaxAge,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",
	}
}
