package encyclopedia

import "strings"

// Category classifies an indicator.
type Category string

const (
	CategoryTrend      Category = "Trend"
	CategoryOscillator Category = "Oscillator"
	CategoryVolume     Category = "Volume"
	CategoryOther      Category = "Other"
)

// Entry describes one technical indicator.
type Entry struct {
	ID          string
	Name        string
	FullName    string
	Category    Category
	Description string
	Formula     string
	BuySignal   string
	SellSignal  string
	Pros        string
	Cons        string
	// Difficulty runs from 1 (beginner) to 3.
	Difficulty int
}

var entries = []Entry{
	{
		ID:          "ma",
		Name:        "MA",
		FullName:    "Moving Average",
		Category:    CategoryTrend,
		Description: "The most basic trend indicator. Averaging the price over a window smooths out swings and shows the direction of the trend.",
		Formula:     "MA(N) = (P1 + P2 + ... + Pn) / N",
		BuySignal:   "Golden cross: a short average (e.g. 5-day) crosses above a long one (e.g. 20-day). Price holds above the average.",
		SellSignal:  "Death cross: the short average crosses below the long one. Price breaks below the average.",
		Pros:        "Simple and intuitive; follows trends well in one-sided markets.",
		Cons:        "Lags heavily and whipsaws in range-bound markets.",
		Difficulty:  1,
	},
	{
		ID:          "macd",
		Name:        "MACD",
		FullName:    "Moving Average Convergence Divergence",
		Category:    CategoryTrend,
		Description: "The \"king of indicators\". It tracks how a fast and a slow average converge and separate, covering both trend and momentum.",
		Formula:     "DIF = EMA(12) - EMA(26); DEA = EMA(9) of DIF; histogram = 2 * (DIF - DEA)",
		BuySignal:   "Golden cross at a low (DIF crosses above DEA); bullish divergence (price makes a new low, MACD does not).",
		SellSignal:  "Death cross at a high (DIF crosses below DEA); bearish divergence (price makes a new high, MACD does not).",
		Pros:        "Stable, filters noise well; divergences are highly informative.",
		Cons:        "Signals lag the candles and react slowly to sharp moves.",
		Difficulty:  3,
	},
	{
		ID:          "kdj",
		Name:        "KDJ",
		FullName:    "Stochastic Oscillator",
		Category:    CategoryOscillator,
		Description: "Compares the close with the high and low of a window to judge short-term overbought and oversold conditions.",
		Formula:     "K, D and J lines derived from the raw stochastic value (RSV). J is the most sensitive.",
		BuySignal:   "J below 0 (oversold); golden cross at a low.",
		SellSignal:  "J above 100 (overbought); death cross at a high.",
		Pros:        "Responsive; good for catching swings in range-bound markets.",
		Cons:        "Saturates in strong trends and signals too often.",
		Difficulty:  2,
	},
	{
		ID:          "boll",
		Name:        "BOLL",
		FullName:    "Bollinger Bands",
		Category:    CategoryTrend,
		Description: "Built on standard deviation: an upper band (resistance), a middle band (average) and a lower band (support) whose width follows volatility.",
		Formula:     "Middle = MA(20); Upper/Lower = Middle ± 2 × standard deviation",
		BuySignal:   "Price bounces off the lower band; bands widen while price rides the upper band.",
		SellSignal:  "Price turns down from the upper band; price breaks below the middle band.",
		Pros:        "Shows support and resistance clearly and tracks volatility (squeeze and expansion).",
		Cons:        "Needs other indicators to confirm a breakout.",
		Difficulty:  2,
	},
	{
		ID:          "rsi",
		Name:        "RSI",
		FullName:    "Relative Strength Index",
		Category:    CategoryOscillator,
		Description: "Compares the average gain with the average loss over a window to gauge the balance between buyers and sellers.",
		Formula:     "RSI = 100 - 100 / (1 + RS)",
		BuySignal:   "RSI below 20 (oversold); bullish divergence.",
		SellSignal:  "RSI above 80 (overbought); bearish divergence.",
		Pros:        "Reads market sentiment well; divergences are reliable.",
		Cons:        "Signals a reversal too early in strong one-sided trends.",
		Difficulty:  2,
	},
}

// All returns every entry in display order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// ByCategory returns the entries of category c in display order.
func ByCategory(c Category) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds an entry by id, case-insensitively.
func Lookup(id string) (Entry, bool) {
	for _, e := range entries {
		if strings.EqualFold(e.ID, id) {
			return e, true
		}
	}
	return Entry{}, false
}
