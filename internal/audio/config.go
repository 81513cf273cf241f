package audio

// Config holds sound settings.
type Config struct {
	Muted bool `yaml:"muted"`
}

// DefaultConfig returns a Config with sound on.
func DefaultConfig() Config {
	return Config{}
}
