package indicator

import "github.com/zappabad/klinecamp/internal/market"

// Annotate fills the moving-average and MACD fields of every bar in series
// and returns it. The bars are updated in place. Each value at index i is
// derived from the whole prefix [0..i], so the series must be complete and in
// chronological order. An empty series is returned unchanged.
func Annotate(series market.Series) market.Series {
	if len(series) == 0 {
		return series
	}

	closes := series.Closes()

	ma5, ok5 := SMA(closes, 5)
	ma10, ok10 := SMA(closes, 10)
	ma20, ok20 := SMA(closes, 20)
	dif, dea, hist := MACD(closes)

	for i := range series {
		ind := &series[i].Indicators

		ind.MA5OK, ind.MA10OK, ind.MA20OK = ok5[i], ok10[i], ok20[i]
		if ok5[i] {
			ind.MA5 = market.Round(ma5[i], 2)
		}
		if ok10[i] {
			ind.MA10 = market.Round(ma10[i], 2)
		}
		if ok20[i] {
			ind.MA20 = market.Round(ma20[i], 2)
		}

		ind.DIF = dif[i]
		ind.DEA = dea[i]
		ind.MACD = hist[i]
		ind.MACDOK = true
	}
	return series
}
