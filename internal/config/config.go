package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the server. Everything request
// scoped (mode, webhooks, team) travels in the request payload instead.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	DaySmart  DaySmartConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A local .env file is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		LogLevel:  envOrDefault(envLogLevel, ""),
		LogFormat: envOrDefault(envLogFormat, ""),
		DaySmart:  loadDaySmart(),
		Metrics:   loadMetrics(),
	}
}
