package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/zappabad/klinecamp/internal/clock"
	"github.com/zappabad/klinecamp/internal/market"
)

// Generator produces synthetic daily OHLCV series.
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg   Config
	rng   *rand.Rand
	clock clock.Clock
}

// New creates a Generator drawing from rng and dating bars with clk.
func New(cfg Config, rng *rand.Rand, clk clock.Clock) *Generator {
	def := DefaultConfig()
	if cfg.Step <= 0 {
		cfg.Step = def.Step
	}
	if cfg.StartPriceMin <= 0 {
		cfg.StartPriceMin = def.StartPriceMin
	}
	if cfg.VolumeFloor <= 0 {
		cfg.VolumeFloor = def.VolumeFloor
	}
	if cfg.VolumeStart <= 0 {
		cfg.VolumeStart = def.VolumeStart
	}
	return &Generator{cfg: cfg, rng: rng, clock: clk}
}

// Generate returns dayCount consecutive daily bars, the last one dated today.
// A non-positive dayCount yields an empty series.
func (g *Generator) Generate(dayCount int) market.Series {
	if dayCount <= 0 {
		return market.Series{}
	}

	now := g.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	series := make(market.Series, 0, dayCount)
	price := g.cfg.StartPriceMin + g.rng.Float64()*g.cfg.StartPriceSpread
	vol := g.cfg.VolumeStart

	for i := 0; i < dayCount; i++ {
		change := (g.rng.Float64() - g.cfg.Bias) * g.cfg.Step
		open := price
		closePrice := price + change

		high := math.Max(open, closePrice) + g.rng.Float64()*g.cfg.WickMax
		low := math.Min(open, closePrice) - g.rng.Float64()*g.cfg.WickMax

		vol = math.Max(g.cfg.VolumeFloor, vol+(g.rng.Float64()-0.5)*2*g.cfg.VolumeStep)

		series = append(series, market.Bar{
			Date:   today.AddDate(0, 0, i-(dayCount-1)),
			Open:   market.Round(open, 2),
			Close:  market.Round(closePrice, 2),
			High:   market.Round(high, 2),
			Low:    market.Round(low, 2),
			Volume: int64(math.Floor(vol)),
		})

		price = closePrice
	}
	return series
}
