package story

import "fmt"

// Stats is the player's resource vector in story mode.
type Stats struct {
	Cash       float64 // may go negative
	Health     int     // clamped to [0, 100]
	Insight    int     // capped at 100
	Reputation int     // capped at 100
	Turn       int     // month, starting at 1
	MaxTurn    int
}

// CashMode says how a StatDelta's Cash field is applied.
type CashMode int8

const (
	// CashNone leaves cash untouched.
	CashNone CashMode = iota
	// CashAbsolute replaces cash with the delta's value.
	CashAbsolute
	// CashRelative adds the delta's value to cash.
	CashRelative
)

// StatDelta is the outcome of a choice. Health, Insight and Reputation are
// always additive; Cash is interpreted according to CashMode.
type StatDelta struct {
	CashMode   CashMode
	Cash       float64
	Health     int
	Insight    int
	Reputation int
}

// SetCash returns a delta that replaces cash with v.
func SetCash(v float64) StatDelta {
	return StatDelta{CashMode: CashAbsolute, Cash: v}
}

// AddCash returns a delta that adds v to cash.
func AddCash(v float64) StatDelta {
	return StatDelta{CashMode: CashRelative, Cash: v}
}

// With returns a copy of d with the given additive changes.
func (d StatDelta) With(health, insight, reputation int) StatDelta {
	d.Health += health
	d.Insight += insight
	d.Reputation += reputation
	return d
}

// Rand is the randomness source for effects and event draws.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Effect computes a choice's outcome from the current stats.
type Effect func(s Stats, rng Rand) StatDelta

// EventID identifies an event template.
type EventID string

// Choice is one selectable branch of an event.
type Choice struct {
	Text          string
	ReqInsight    int     // hidden when unmet
	ReqCash       float64 // locked when unmet
	ReqReputation int     // locked when unmet
	Cost          float64 // deducted before Effect runs
	Effect        Effect  // nil means no change
	LogText       string
	Next          EventID // optional fixed follow-up
}

// Event is a narrative node.
type Event struct {
	ID      EventID
	Text    string
	Choices []Choice
	Ending  bool
}

// Scene is one occurrence of an event within a session. Instance increases
// monotonically per session so repeated draws of one template stay distinct.
type Scene struct {
	Event    *Event
	Instance int
}

// Key returns a session-unique identifier for the scene.
func (s Scene) Key() string {
	if s.Event == nil {
		return fmt.Sprintf("#%d", s.Instance)
	}
	return fmt.Sprintf("%s#%d", s.Event.ID, s.Instance)
}

// Option is a choice as offered to the player.
type Option struct {
	Index      int // position in Event.Choices
	Choice     Choice
	Locked     bool
	LockReason string
}
