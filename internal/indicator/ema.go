package indicator

// EMA computes the exponential moving average of values.
//
// The average is seeded with the first observation (ema[0] = values[0]), not
// with an SMA of the first period values, so early outputs lean towards
// values[0].
func EMA(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	k := 2.0 / float64(period+1)
	ema := values[0]
	out[0] = ema
	for i := 1; i < len(values); i++ {
		ema = values[i]*k + ema*(1-k)
		out[i] = ema
	}
	return out
}
