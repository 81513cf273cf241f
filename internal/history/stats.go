package history

import (
	"sort"
	"time"
)

// MonthLayout groups records by calendar month.
const MonthLayout = "2006-01"

// Summary aggregates a set of records.
type Summary struct {
	Games       int
	TotalProfit float64
	Wins        int
	WinRate     float64 // percent
}

// Summarize aggregates records. A game counts as a win when its yield is
// positive.
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		s.Games++
		s.TotalProfit += r.Profit
		if r.YieldRate > 0 {
			s.Wins++
		}
	}
	if s.Games > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Games) * 100
	}
	return s
}

// GroupByMonth buckets records by the month of their timestamp, keeping
// their order within each bucket.
func GroupByMonth(records []Record) map[string][]Record {
	groups := make(map[string][]Record)
	for _, r := range records {
		m := r.Timestamp.UTC().Format(MonthLayout)
		groups[m] = append(groups[m], r)
	}
	return groups
}

// Months returns the keys of groups, newest first.
func Months(groups map[string][]Record) []string {
	months := make([]string, 0, len(groups))
	for m := range groups {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// MonthlyWinRate is the win rate of the records in the month containing now.
func MonthlyWinRate(records []Record, now time.Time) float64 {
	return Summarize(GroupByMonth(records)[now.UTC().Format(MonthLayout)]).WinRate
}
