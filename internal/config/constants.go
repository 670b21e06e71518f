package config

import "time"

const (
	envPort          = "PORT"
	envGuessLimit    = "GUESS_LIMIT"
	envCatalogPath   = "CATALOG_PATH"
	envCatalogReload = "CATALOG_RELOAD_INTERVAL"
	envDailyTimezone = "DAILY_TIMEZONE"
	envSessionTTL    = "SESSION_TTL"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envCORSOrigin    = "CORS_ORIGIN"
	envShutdown      = "SHUTDOWN_TIMEOUT"
	envOtelInterval  = "OTEL_METRIC_EXPORT_INTERVAL"

	defaultPort = "4000"
	// Ten guesses, as the shipped game advertises.
	defaultGuessLimit     = 10
	defaultCatalogReload  = 5 * Duration(time.Minute)
	defaultDailyTimezone  = "UTC"
	defaultSessionTTL     = 24 * Duration(time.Hour)
	defaultMetricsPort    = "9090"
	defaultServiceName    = "teamdle"
	defaultShutdown       = 10 * Duration(time.Second)
	defaultExportInterval = 15 * Duration(time.Second)
)
