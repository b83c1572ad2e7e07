package config

import "time"

const (
	envPort         = "PORT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	// Conservative outbound budget: a single invocation makes at most four
	// network calls, each capped well under a serverless execution window.
	defaultHTTPTimeout = 10 * Duration(time.Second)
)
