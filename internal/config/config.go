package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/zappabad/klinecamp/internal/audio"
	"github.com/zappabad/klinecamp/internal/history"
	"github.com/zappabad/klinecamp/internal/logger"
	"github.com/zappabad/klinecamp/internal/market/generator"
	"github.com/zappabad/klinecamp/internal/quiz"
	"github.com/zappabad/klinecamp/internal/simulation"
	"github.com/zappabad/klinecamp/internal/story"
	"github.com/zappabad/klinecamp/internal/tips"
)

// EnvPrefix prefixes every environment override, e.g.
// KLINECAMP_SIMULATION_DAYS or KLINECAMP_LOG_LEVEL.
const EnvPrefix = "KLINECAMP"

// Config holds all application configuration.
type Config struct {
	Simulation simulation.Config `yaml:"simulation"`
	Generator  generator.Config  `yaml:"generator"`
	Story      story.Config      `yaml:"story"`
	Quiz       quiz.Config       `yaml:"quiz"`
	History    history.Config    `yaml:"history"`
	Tips       tips.Config       `yaml:"tips"`
	Log        logger.Config     `yaml:"log"`
	Sound      audio.Config      `yaml:"sound"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Simulation: simulation.DefaultConfig(),
		Generator:  generator.DefaultConfig(),
		Story:      story.DefaultConfig(),
		Quiz:       quiz.DefaultConfig(),
		History:    history.DefaultConfig(),
		Tips:       tips.DefaultConfig(),
		Log:        logger.DefaultConfig(),
		Sound:      audio.DefaultConfig(),
	}
}

// Load builds the configuration: defaults, then the YAML file at path, then
// variables from envFile, then the process environment. Missing files are
// skipped.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if envFile != "" {
		// Existing environment variables win over the file.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	s := c.Simulation
	switch {
	case s.Days <= 0:
		return fmt.Errorf("simulation.days must be positive")
	case s.PlayableDays <= 0 || s.PlayableDays > s.Days:
		return fmt.Errorf("simulation.playable_days must be in [1, days]")
	case s.InitialCapital <= 0:
		return fmt.Errorf("simulation.initial_capital must be positive")
	case s.LotSize <= 0:
		return fmt.Errorf("simulation.lot_size must be positive")
	case s.BuyFraction <= 0 || s.BuyFraction > 1:
		return fmt.Errorf("simulation.buy_fraction must be in (0, 1]")
	case s.TickInterval <= 0 || s.FastTickInterval <= 0:
		return fmt.Errorf("simulation tick intervals must be positive")
	}

	g := c.Generator
	if g.StartPriceMin <= 0 || g.Step <= 0 || g.VolumeFloor < 0 {
		return fmt.Errorf("generator: start_price_min and step must be positive, volume_floor non-negative")
	}

	if c.Story.InitialCash <= 0 {
		return fmt.Errorf("story.initial_cash must be positive")
	}
	if c.Story.MaxTurn <= 0 {
		return fmt.Errorf("story.max_turn must be positive")
	}

	if c.Quiz.Questions <= 0 || c.Quiz.Questions > len(quiz.Bank) {
		return fmt.Errorf("quiz.questions must be in [1, %d]", len(quiz.Bank))
	}

	if c.Tips.RefreshCron == "" {
		return fmt.Errorf("tips.refresh_cron is required")
	}
	if c.Tips.APIKey != "" && (c.Tips.Endpoint == "" || c.Tips.Model == "") {
		return fmt.Errorf("tips.endpoint and tips.model are required with an api key")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
