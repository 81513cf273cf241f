package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, 90, cfg.Simulation.Days)
	assert.Equal(t, 36, cfg.Story.MaxTurn)
	assert.Equal(t, "@daily", cfg.Tips.RefreshCron)
	assert.Equal(t, "kline_bootcamp_history_v1", cfg.History.Namespace)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
simulation:
  playable_days: 20
  tick_interval: 250ms
story:
  initial_cash: 80000
log:
  level: debug
sound:
  muted: true
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Simulation.PlayableDays)
	assert.Equal(t, 90, cfg.Simulation.Days)
	assert.Equal(t, 250*time.Millisecond, cfg.Simulation.TickInterval)
	assert.Equal(t, 80000.0, cfg.Story.InitialCash)
	assert.Equal(t, 36, cfg.Story.MaxTurn)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Sound.Muted)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "quiz:\n  questions: 5\n")
	t.Setenv("KLINECAMP_QUIZ_QUESTIONS", "8")
	t.Setenv("KLINECAMP_TIPS_REFRESH_CRON", "@hourly")

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Quiz.Questions)
	assert.Equal(t, "@hourly", cfg.Tips.RefreshCron)
}

func TestLoad_APIKeyAlias(t *testing.T) {
	t.Setenv("API_KEY", "bare-key")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "bare-key", cfg.Tips.APIKey)

	t.Setenv("KLINECAMP_TIPS_API_KEY", "prefixed-key")
	cfg, err = Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "prefixed-key", cfg.Tips.APIKey)
}

func TestLoad_EnvFile(t *testing.T) {
	env := writeFile(t, ".env", "KLINECAMP_STORY_MAXTURN=12\n")
	t.Cleanup(func() { os.Unsetenv("KLINECAMP_STORY_MAXTURN") })

	cfg, err := Load("", env)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Story.MaxTurn)
}

func TestLoad_MissingEnvFileIsSkipped(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "simulation: [oops")

	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"playable exceeds days", func(c *Config) { c.Simulation.PlayableDays = c.Simulation.Days + 1 }},
		{"zero capital", func(c *Config) { c.Simulation.InitialCapital = 0 }},
		{"buy fraction above one", func(c *Config) { c.Simulation.BuyFraction = 1.5 }},
		{"zero lot", func(c *Config) { c.Simulation.LotSize = 0 }},
		{"zero tick", func(c *Config) { c.Simulation.FastTickInterval = 0 }},
		{"zero step", func(c *Config) { c.Generator.Step = 0 }},
		{"zero max turn", func(c *Config) { c.Story.MaxTurn = 0 }},
		{"too many questions", func(c *Config) { c.Quiz.Questions = 21 }},
		{"empty cron", func(c *Config) { c.Tips.RefreshCron = "" }},
		{"key without endpoint", func(c *Config) { c.Tips.APIKey = "k"; c.Tips.Endpoint = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	base := Default()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
