package tips

import "time"

// Config holds configuration for the tip service.
type Config struct {
	// APIKey authenticates against the Gemini API. Empty disables remote
	// tips. Also read from the bare API_KEY variable.
	APIKey   string        `yaml:"api_key" envconfig:"API_KEY"`
	Model    string        `yaml:"model"`
	Endpoint string        `yaml:"endpoint"`
	Prompt   string        `yaml:"prompt"`
	Timeout  time.Duration `yaml:"timeout"`
	// RefreshCron is the cron schedule of the background refresh.
	RefreshCron string `yaml:"refresh_cron" split_words:"true"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Model:       "gemini-2.5-flash",
		Endpoint:    "https://generativelanguage.googleapis.com/v1beta",
		Prompt:      "Give me a one-sentence profound tip about technical analysis in stock trading.",
		Timeout:     10 * time.Second,
		RefreshCron: "@daily",
	}
}
