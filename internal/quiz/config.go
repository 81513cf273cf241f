package quiz

// Config holds configuration for a quiz run.
type Config struct {
	// Questions is how many distinct questions a run draws from the bank.
	Questions int `yaml:"questions"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{Questions: 10}
}
