package story

// Config holds the starting conditions of a career.
type Config struct {
	InitialCash float64 `yaml:"initial_cash"`
	MaxTurn     int     `yaml:"max_turn"`
}

// DefaultConfig returns a three-year career with 50k starting cash.
func DefaultConfig() Config {
	return Config{
		InitialCash: 50000,
		MaxTurn:     36,
	}
}

// InitialStats returns the stats a new career starts with.
func (c Config) InitialStats() Stats {
	return Stats{
		Cash:       c.InitialCash,
		Health:     100,
		Insight:    0,
		Reputation: 0,
		Turn:       1,
		MaxTurn:    c.MaxTurn,
	}
}

// InitialStats returns the default starting stats.
func InitialStats() Stats {
	return DefaultConfig().InitialStats()
}
