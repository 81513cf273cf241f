package indicator

import "github.com/zappabad/klinecamp/internal/market"

// MACD periods.
const (
	FastPeriod   = 12
	SlowPeriod   = 26
	SignalPeriod = 9
)

// MACD returns the DIF, DEA and histogram lines for closes.
//
// DIF = EMA12 - EMA26 and DEA = EMA9(DIF); the histogram is 2*(DIF-DEA).
// Every line is rounded to 3 decimals, and DEA is computed from the rounded
// DIF so the displayed numbers satisfy hist == round(2*(dif-dea), 3).
func MACD(closes []float64) (dif, dea, hist []float64) {
	fast := EMA(closes, FastPeriod)
	slow := EMA(closes, SlowPeriod)

	dif = make([]float64, len(closes))
	for i := range closes {
		dif[i] = market.Round(fast[i]-slow[i], 3)
	}

	signal := EMA(dif, SignalPeriod)
	dea = make([]float64, len(closes))
	hist = make([]float64, len(closes))
	for i := range closes {
		dea[i] = market.Round(signal[i], 3)
		hist[i] = market.Round((dif[i]-dea[i])*2, 3)
	}
	return dif, dea, hist
}
