package simulation

import "time"

// Config holds configuration for a simulation session.
type Config struct {
	// Days is the length of the generated series.
	Days int `yaml:"days"`
	// PlayableDays is how many of the final bars are revealed during play;
	// earlier bars are history shown from the start.
	PlayableDays int `yaml:"playable_days"`
	// InitialCapital is the starting cash.
	InitialCapital float64 `yaml:"initial_capital"`
	// LotSize is the minimum number of shares per purchase.
	LotSize int64 `yaml:"lot_size"`
	// BuyFraction is the share of buying power spent on each buy.
	BuyFraction float64 `yaml:"buy_fraction"`
	// TickInterval and FastTickInterval are the playback speeds.
	TickInterval     time.Duration `yaml:"tick_interval"`
	FastTickInterval time.Duration `yaml:"fast_tick_interval"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Days:             90,
		PlayableDays:     30,
		InitialCapital:   100000,
		LotSize:          100,
		BuyFraction:      0.5,
		TickInterval:     500 * time.Millisecond,
		FastTickInterval: 100 * time.Millisecond,
	}
}
