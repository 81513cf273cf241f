package simulation

import (
	"time"

	"github.com/google/uuid"

	"github.com/zappabad/klinecamp/internal/market"
)

// Result is the outcome of a finished session.
type Result struct {
	ID             uuid.UUID
	FinishedAt     time.Time
	InitialCapital float64
	FinalCapital   float64
	Profit         float64
	YieldRate      float64 // percent
	Trades         []market.Trade
	Stock          market.Stock
	Series         market.Series
}

// Win reports whether the session made money.
func (r Result) Win() bool { return r.YieldRate > 0 }

// Rank is the title awarded for a yield.
type Rank struct {
	Title string
	Desc  string
}

// RankFor returns the title for a yield in percent.
func RankFor(yield float64) Rank {
	switch {
	case yield >= 30:
		return Rank{"Stock God", "Your instincts are chilling. Even the big players step aside."}
	case yield >= 15:
		return Rank{"Hot Money", "Precise strikes, decisive exits. The market is your ATM."}
	case yield > 0:
		return Rank{"Steady Winner", "Small wins add up. Compounding is waking up in your hands."}
	case yield == 0:
		return Rank{"Capital Keeper", "Walking away unharmed from a dangerous market is a victory."}
	case yield > -10:
		return Rank{"Fresh Chive", "The market taught you a lesson. Luckily the tuition was cheap."}
	default:
		return Rank{"Charity Gambler", "Thank you for your outstanding contribution to market liquidity."}
	}
}
