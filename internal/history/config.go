package history

// Config holds configuration for the history store.
type Config struct {
	// Path is the SQLite database file. Empty keeps no history.
	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Path:      "klinecamp.db",
		Namespace: Namespace,
	}
}
