package config

const (
	envDaySmartBaseURL  = "DAYSMART_BASE_URL"
	envDaySmartTimezone = "DAYSMART_TIMEZONE"
	envHTTPTimeout      = "HTTP_TIMEOUT"

	defaultDaySmartBaseURL = "https://apps.daysmartrecreation.com/dash/jsonapi/api/v1"
	// Kraken league rinks are all Pacific; rendered game times follow suit.
	defaultDaySmartTimezone = "America/Los_Angeles"
)

// DaySmartConfig controls how we talk to the DaySmart recreation API.
type DaySmartConfig struct {
	BaseURL     string
	Timezone    string
	HTTPTimeout Duration
}

func loadDaySmart() DaySmartConfig {
	return DaySmartConfig{
		BaseURL:     envOrDefault(envDaySmartBaseURL, defaultDaySmartBaseURL),
		Timezone:    envOrDefault(envDaySmartTimezone, defaultDaySmartTimezone),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
	}
}
