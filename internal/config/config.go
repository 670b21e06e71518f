package config

import (
	"time"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port                  string
	GuessLimit            int
	CatalogPath           string
	CatalogReloadInterval Duration
	DailyTimezone         string
	SessionTTL            Duration
	LogLevel              string
	LogFormat             string
	CORSOrigin            string
	ShutdownTimeout       Duration
	Metrics               MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:                  envOrDefault(envPort, defaultPort),
		GuessLimit:            intEnvOrDefault(envGuessLimit, defaultGuessLimit),
		CatalogPath:           envOrDefault(envCatalogPath, ""),
		CatalogReloadInterval: durationEnvOrDefault(envCatalogReload, defaultCatalogReload),
		DailyTimezone:         envOrDefault(envDailyTimezone, defaultDailyTimezone),
		SessionTTL:            durationEnvOrDefault(envSessionTTL, defaultSessionTTL),
		LogLevel:              envOrDefault(envLogLevel, "info"),
		LogFormat:             envOrDefault(envLogFormat, "text"),
		CORSOrigin:            envOrDefault(envCORSOrigin, ""),
		ShutdownTimeout:       durationEnvOrDefault(envShutdown, defaultShutdown),
		Metrics:               loadMetrics(),
	}
}

// Location resolves DailyTimezone, falling back to UTC when it is unknown.
func (c Config) Location() *time.Location {
	if c.DailyTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.DailyTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
