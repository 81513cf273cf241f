package indicator

// SMA computes the trailing simple moving average of values over period.
// out[i] is defined (ok[i] true) only once period values are available,
// i.e. for i >= period-1.
func SMA(values []float64, period int) (out []float64, ok []bool) {
	out = make([]float64, len(values))
	ok = make([]bool, len(values))
	if period <= 0 {
		return out, ok
	}

	var sum float64
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
			ok[i] = true
		}
	}
	return out, ok
}
