package game

import (
	"io"
	"os"

	"github.com/zappabad/klinecamp/internal/clock"
	"github.com/zappabad/klinecamp/internal/config"
)

// Config holds configuration for the game.
type Config struct {
	config.Config

	// Clock dates generated series and history records.
	Clock clock.Clock
	// Seed seeds the shared random source. Zero seeds from the clock.
	Seed int64
	// BellOut receives the terminal bell. Nil disables sound.
	BellOut io.Writer
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Config:  config.Default(),
		Clock:   clock.System{},
		BellOut: os.Stderr,
	}
}
