package generator

// Config holds the parameters of the biased random walk.
type Config struct {
	// StartPriceMin and StartPriceSpread give the opening price range
	// [StartPriceMin, StartPriceMin+StartPriceSpread).
	StartPriceMin    float64 `yaml:"start_price_min"`
	StartPriceSpread float64 `yaml:"start_price_spread"`
	// Bias is subtracted from a uniform draw before scaling; values below 0.5
	// tilt the walk upwards.
	Bias float64 `yaml:"bias"`
	// Step scales the centred draw into a daily price change.
	Step float64 `yaml:"step"`
	// WickMax is the largest wick drawn above/below the candle body.
	WickMax float64 `yaml:"wick_max"`
	// VolumeStart is the volume the walk starts from.
	VolumeStart float64 `yaml:"volume_start"`
	// VolumeFloor is the minimum daily volume.
	VolumeFloor float64 `yaml:"volume_floor"`
	// VolumeStep is the largest absolute daily volume change.
	VolumeStep float64 `yaml:"volume_step"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		StartPriceMin:    10,
		StartPriceSpread: 5,
		Bias:             0.48,
		Step:             0.8,
		WickMax:          0.5,
		VolumeStart:      10000,
		VolumeFloor:      5000,
		VolumeStep:       1000,
	}
}
