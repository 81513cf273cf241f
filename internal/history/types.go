package history

import (
	"context"
	"time"

	"github.com/zappabad/klinecamp/internal/simulation"
)

// Namespace keys the history log.
const Namespace = "kline_bootcamp_history_v1"

// Record summarizes one completed simulation.
type Record struct {
	ID         int64 // unix milliseconds
	Timestamp  time.Time
	YieldRate  float64
	Profit     float64
	StockName  string
	TradeCount int
}

// FromResult builds the record for a finished session.
func FromResult(res simulation.Result, now time.Time) Record {
	return Record{
		ID:         now.UnixMilli(),
		Timestamp:  now.UTC(),
		YieldRate:  res.YieldRate,
		Profit:     res.FinalCapital - res.InitialCapital,
		StockName:  res.Stock.Name,
		TradeCount: len(res.Trades),
	}
}

// Store is an append-only log of records.
type Store interface {
	Append(ctx context.Context, r Record) error
	// List returns all records, newest first.
	List(ctx context.Context) ([]Record, error)
	Clear(ctx context.Context) error
	Close() error
}
