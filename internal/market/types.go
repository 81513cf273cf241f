package market

import "time"

// DateLayout is the calendar-day format used for bar dates.
const DateLayout = "2006-01-02"

// Indicators holds values derived from the close prices of a series.
// A false OK flag means the value is undefined for that bar.
type Indicators struct {
	MA5    float64
	MA10   float64
	MA20   float64
	MA5OK  bool
	MA10OK bool
	MA20OK bool

	DIF    float64
	DEA    float64
	MACD   float64
	MACDOK bool
}

// Bar is one daily OHLCV summary.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64

	Indicators
}

// DateString returns the bar's calendar day.
func (b Bar) DateString() string {
	return b.Date.Format(DateLayout)
}

// Bullish reports whether the bar closed at or above its open.
func (b Bar) Bullish() bool {
	return b.Close >= b.Open
}

// Series is a chronologically ordered sequence of bars.
type Series []Bar

// Closes returns the close prices in order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, b := range s {
		closes[i] = b.Close
	}
	return closes
}

// Prefix returns the first n bars. n is clamped to [0, len(s)].
func (s Series) Prefix(n int) Series {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// Last returns the final bar, if any.
func (s Series) Last() (Bar, bool) {
	if len(s) == 0 {
		return Bar{}, false
	}
	return s[len(s)-1], true
}
