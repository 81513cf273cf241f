package simulation

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zappabad/klinecamp/internal/audio"
	"github.com/zappabad/klinecamp/internal/market"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds for one lot")
	ErrNoPosition        = errors.New("no position to sell")
	ErrFinished          = errors.New("session already finished")
	ErrEmptySeries       = errors.New("empty series")
)

var hundred = decimal.NewFromInt(100)

// Session replays a series bar by bar and keeps the player's account.
type Session struct {
	id     uuid.UUID
	cfg    Config
	stock  market.Stock
	series market.Series
	player audio.Player
	logger *zap.Logger

	cursor   int
	cash     decimal.Decimal
	holdings int64
	trades   []market.Trade
	finished bool
}

// NewSession creates a session over an annotated series.
func NewSession(cfg Config, series market.Series, stock market.Stock, player audio.Player, logger *zap.Logger) (*Session, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	def := DefaultConfig()
	if cfg.InitialCapital <= 0 {
		cfg.InitialCapital = def.InitialCapital
	}
	if cfg.LotSize <= 0 {
		cfg.LotSize = def.LotSize
	}
	if cfg.BuyFraction <= 0 || cfg.BuyFraction > 1 {
		cfg.BuyFraction = def.BuyFraction
	}
	if cfg.PlayableDays <= 0 {
		cfg.PlayableDays = def.PlayableDays
	}
	if player == nil {
		player = audio.NoopPlayer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		id:     uuid.New(),
		cfg:    cfg,
		stock:  stock,
		series: series,
		player: player,
		cash:   decimal.NewFromFloat(cfg.InitialCapital),
		cursor: max(0, len(series)-cfg.PlayableDays),
	}
	s.logger = logger.With(zap.String("session", s.id.String()), zap.String("stock", stock.Code))
	s.logger.Info("simulation started",
		zap.Int("bars", len(series)),
		zap.Int("start", s.cursor),
	)
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// Stock returns the instrument being played.
func (s *Session) Stock() market.Stock { return s.stock }

// Visible returns the bars revealed so far.
func (s *Session) Visible() market.Series {
	return s.series.Prefix(s.cursor + 1)
}

// Current returns the bar at the cursor.
func (s *Session) Current() market.Bar {
	return s.series[s.cursor]
}

// Cursor returns the index of the current bar.
func (s *Session) Cursor() int { return s.cursor }

// DaysLeft returns how many bars remain to be revealed.
func (s *Session) DaysLeft() int {
	return len(s.series) - 1 - s.cursor
}

// AtEnd reports whether the last bar is revealed.
func (s *Session) AtEnd() bool {
	return s.DaysLeft() == 0
}

// DailyChange returns the current bar's close-to-close change in percent.
func (s *Session) DailyChange() float64 {
	if s.cursor == 0 {
		return 0
	}
	prev := s.series[s.cursor-1].Close
	if prev == 0 {
		return 0
	}
	return (s.Current().Close - prev) / prev * 100
}

// Advance reveals the next bar. It returns false when no bars remain.
func (s *Session) Advance() bool {
	if s.finished || s.AtEnd() {
		return false
	}
	s.cursor++
	return true
}

// Buy spends BuyFraction of the buying power at the current close.
func (s *Session) Buy() (market.Trade, error) {
	if s.finished {
		return market.Trade{}, ErrFinished
	}
	bar := s.Current()
	price := decimal.NewFromFloat(bar.Close)
	lot := decimal.NewFromInt(s.cfg.LotSize)
	if bar.Close <= 0 || s.cash.LessThan(price.Mul(lot)) {
		return market.Trade{}, ErrInsufficientFunds
	}

	affordable := s.cash.Div(price).Floor()
	shares := affordable.Mul(decimal.NewFromFloat(s.cfg.BuyFraction)).Floor().IntPart()
	if shares == 0 {
		shares = s.cfg.LotSize
	}

	s.cash = s.cash.Sub(price.Mul(decimal.NewFromInt(shares)))
	s.holdings += shares

	t := market.Trade{Side: market.SideBuy, Price: bar.Close, Date: bar.DateString(), Amount: shares}
	s.trades = append(s.trades, t)
	s.player.Play(audio.CueBuy)
	s.logger.Debug("buy", zap.Int64("shares", shares), zap.Float64("price", bar.Close))
	return t, nil
}

// Sell closes the whole position at the current close.
func (s *Session) Sell() (market.Trade, error) {
	if s.finished {
		return market.Trade{}, ErrFinished
	}
	if s.holdings <= 0 {
		return market.Trade{}, ErrNoPosition
	}
	bar := s.Current()
	price := decimal.NewFromFloat(bar.Close)

	s.cash = s.cash.Add(price.Mul(decimal.NewFromInt(s.holdings)))
	t := market.Trade{Side: market.SideSell, Price: bar.Close, Date: bar.DateString(), Amount: s.holdings}
	s.holdings = 0

	s.trades = append(s.trades, t)
	s.player.Play(audio.CueSell)
	s.logger.Debug("sell", zap.Int64("shares", t.Amount), zap.Float64("price", bar.Close))
	return t, nil
}

// CanBuy reports whether one lot is affordable at the current close.
func (s *Session) CanBuy() bool {
	if s.finished {
		return false
	}
	price := decimal.NewFromFloat(s.Current().Close)
	return s.Current().Close > 0 && s.cash.GreaterThanOrEqual(price.Mul(decimal.NewFromInt(s.cfg.LotSize)))
}

// Cash returns the uninvested balance.
func (s *Session) Cash() float64 { return s.cash.InexactFloat64() }

// Holdings returns the number of shares held.
func (s *Session) Holdings() int64 { return s.holdings }

// Trades returns the trade log.
func (s *Session) Trades() []market.Trade {
	out := make([]market.Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

func (s *Session) totalAssets() decimal.Decimal {
	price := decimal.NewFromFloat(s.Current().Close)
	return s.cash.Add(price.Mul(decimal.NewFromInt(s.holdings)))
}

// TotalAssets returns cash plus holdings marked at the current close.
func (s *Session) TotalAssets() float64 {
	return s.totalAssets().InexactFloat64()
}

// YieldRate returns the return on initial capital, in percent.
func (s *Session) YieldRate() float64 {
	initial := decimal.NewFromFloat(s.cfg.InitialCapital)
	return s.totalAssets().Sub(initial).Div(initial).Mul(hundred).InexactFloat64()
}

// Finish ends the session, marking any position at the current close.
func (s *Session) Finish(now time.Time) Result {
	s.finished = true

	final := s.totalAssets()
	initial := decimal.NewFromFloat(s.cfg.InitialCapital)
	res := Result{
		ID:             s.id,
		FinishedAt:     now,
		InitialCapital: s.cfg.InitialCapital,
		FinalCapital:   final.InexactFloat64(),
		Profit:         final.Sub(initial).InexactFloat64(),
		YieldRate:      final.Sub(initial).Div(initial).Mul(hundred).InexactFloat64(),
		Trades:         s.Trades(),
		Stock:          s.stock,
		Series:         s.series,
	}
	s.logger.Info("simulation finished",
		zap.Float64("yield", res.YieldRate),
		zap.Float64("profit", res.Profit),
		zap.Int("trades", len(res.Trades)),
	)
	return res
}

// Finished reports whether Finish was called.
func (s *Session) Finished() bool { return s.finished }
