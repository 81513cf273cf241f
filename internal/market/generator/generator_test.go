package generator

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/klinecamp/internal/clock"
	"github.com/zappabad/klinecamp/internal/indicator"
	"github.com/zappabad/klinecamp/internal/market"
)

var today = time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	return New(DefaultConfig(), rand.New(rand.NewSource(seed)), clock.Fixed(today))
}

func TestGenerate_Length(t *testing.T) {
	g := newTestGenerator(1)
	for _, n := range []int{1, 2, 30, 90, 250} {
		assert.Len(t, g.Generate(n), n)
	}
}

func TestGenerate_ZeroDays(t *testing.T) {
	g := newTestGenerator(1)

	s := g.Generate(0)
	require.NotNil(t, s)
	assert.Empty(t, s)
	assert.Empty(t, g.Generate(-3))

	// Downstream annotation is a no-op.
	assert.Empty(t, indicator.Annotate(s))
}

func TestGenerate_HighLowInvariant(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := newTestGenerator(seed).Generate(120)
		for i, b := range s {
			if b.Low > math.Min(b.Open, b.Close) {
				t.Fatalf("seed %d bar %d: low %.2f above body %.2f/%.2f", seed, i, b.Low, b.Open, b.Close)
			}
			if b.High < math.Max(b.Open, b.Close) {
				t.Fatalf("seed %d bar %d: high %.2f below body %.2f/%.2f", seed, i, b.High, b.Open, b.Close)
			}
		}
	}
}

func TestGenerate_StartPriceRange(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		first := newTestGenerator(seed).Generate(1)[0]
		assert.GreaterOrEqual(t, first.Open, 10.0)
		assert.LessOrEqual(t, first.Open, 15.0)
	}
}

func TestGenerate_OpenFollowsPreviousClose(t *testing.T) {
	s := newTestGenerator(7).Generate(60)
	for i := 1; i < len(s); i++ {
		// Both are rounded from the same unrounded price.
		assert.InDelta(t, s[i-1].Close, s[i].Open, 0.0051, "bar %d", i)
	}
}

func TestGenerate_DailyChangeBounded(t *testing.T) {
	s := newTestGenerator(3).Generate(200)
	for i, b := range s {
		delta := b.Close - b.Open
		// (rand-0.48)*0.8 lies in [-0.384, 0.416).
		assert.GreaterOrEqual(t, delta, -0.384-0.01, "bar %d", i)
		assert.Less(t, delta, 0.416+0.01, "bar %d", i)
	}
}

func TestGenerate_TwoDecimalPrices(t *testing.T) {
	s := newTestGenerator(11).Generate(40)
	for _, b := range s {
		for _, v := range []float64{b.Open, b.High, b.Low, b.Close} {
			assert.InDelta(t, market.Round(v, 2), v, 1e-9)
		}
	}
}

func TestGenerate_VolumeFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VolumeStart = 5200
	g := New(cfg, rand.New(rand.NewSource(5)), clock.Fixed(today))
	for _, b := range g.Generate(500) {
		assert.GreaterOrEqual(t, b.Volume, int64(5000))
	}
}

func TestGenerate_DatesEndToday(t *testing.T) {
	s := newTestGenerator(2).Generate(5)

	assert.Equal(t, "2025-03-10", s[0].DateString())
	assert.Equal(t, "2025-03-14", s[4].DateString())
	for i := 1; i < len(s); i++ {
		assert.Equal(t, 24*time.Hour, s[i].Date.Sub(s[i-1].Date))
	}
}

func TestGenerate_SameSeedSameSeries(t *testing.T) {
	a := newTestGenerator(42).Generate(30)
	b := newTestGenerator(42).Generate(30)
	assert.Equal(t, a, b)
}

func TestGenerate_SingleDayAnnotates(t *testing.T) {
	s := indicator.Annotate(newTestGenerator(9).Generate(1))
	require.Len(t, s, 1)
	assert.False(t, s[0].MA5OK)
	assert.False(t, s[0].MA10OK)
	assert.False(t, s[0].MA20OK)
	assert.True(t, s[0].MACDOK)
}
