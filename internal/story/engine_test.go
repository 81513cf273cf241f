package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns the same draws every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.n % n }

func studyChoice(t *testing.T) Choice {
	t.Helper()
	require.NotEmpty(t, Start.Choices)
	return Start.Choices[0]
}

func TestStep_StartStudyChoice(t *testing.T) {
	e := NewEngine(fixedRand{})

	next, scene := e.Step(InitialStats(), studyChoice(t))

	assert.Equal(t, 49500.0, next.Cash)
	assert.Equal(t, 10, next.Insight)
	assert.Equal(t, 2, next.Turn)
	assert.Equal(t, 100, next.Health)
	assert.Equal(t, 0, next.Reputation)
	assert.False(t, scene.Event.Ending)
}

func TestApply_CashModes(t *testing.T) {
	base := Stats{Cash: 1000, Health: 50, Turn: 1, MaxTurn: 36}

	abs := Apply(base, Choice{Effect: func(s Stats, _ Rand) StatDelta { return SetCash(s.Cash * 1.3) }}, fixedRand{})
	assert.InDelta(t, 1300, abs.Cash, 1e-9)

	rel := Apply(base, Choice{Effect: func(Stats, Rand) StatDelta { return AddCash(-200) }}, fixedRand{})
	assert.InDelta(t, 800, rel.Cash, 1e-9)

	none := Apply(base, Choice{Effect: func(Stats, Rand) StatDelta { return StatDelta{Health: 5} }}, fixedRand{})
	assert.Equal(t, 1000.0, none.Cash)
	assert.Equal(t, 55, none.Health)
}

func TestApply_CostBeforeEffect(t *testing.T) {
	var seen Stats
	c := Choice{
		Cost: 1000,
		Effect: func(s Stats, _ Rand) StatDelta {
			seen = s
			return SetCash(s.Cash * 2)
		},
	}
	next := Apply(Stats{Cash: 5000, Health: 100, Turn: 1, MaxTurn: 36}, c, fixedRand{})

	assert.Equal(t, 4000.0, seen.Cash)
	assert.Equal(t, 8000.0, next.Cash)
}

func TestApply_Clamping(t *testing.T) {
	base := Stats{Cash: 1000, Health: 95, Insight: 98, Reputation: 99, Turn: 3, MaxTurn: 36}

	up := Apply(base, Choice{Effect: func(Stats, Rand) StatDelta {
		return StatDelta{Health: 20, Insight: 20, Reputation: 20}
	}}, fixedRand{})
	assert.Equal(t, 100, up.Health)
	assert.Equal(t, 100, up.Insight)
	assert.Equal(t, 100, up.Reputation)

	down := Apply(Stats{Cash: 1000, Health: 5, Insight: 2, Reputation: 1, Turn: 3, MaxTurn: 36},
		Choice{Effect: func(Stats, Rand) StatDelta {
			return StatDelta{Health: -20, Insight: -10, Reputation: -10}
		}}, fixedRand{})
	assert.Equal(t, 0, down.Health)
	// No lower bound for insight and reputation.
	assert.Equal(t, -8, down.Insight)
	assert.Equal(t, -9, down.Reputation)
}

func TestApply_NilEffectAdvancesTurn(t *testing.T) {
	next := Apply(InitialStats(), Choice{}, fixedRand{})
	want := InitialStats()
	want.Turn = 2
	assert.Equal(t, want, next)
}

func TestApply_DeterministicEffect(t *testing.T) {
	stats := Stats{Cash: 30000, Health: 80, Insight: 40, Reputation: 10, Turn: 5, MaxTurn: 36}
	choice := Catalog()[1].Choices[2] // buy the panic

	a := Apply(stats, choice, fixedRand{})
	b := Apply(stats, choice, fixedRand{f: 0.99})
	assert.Equal(t, a, b)
}

func TestEnding_Priority(t *testing.T) {
	ev, ok := Ending(Stats{Cash: 0, Health: 0, Turn: 40, MaxTurn: 36})
	require.True(t, ok)
	assert.Equal(t, EndingBankruptcy, ev.ID)

	ev, ok = Ending(Stats{Cash: -5, Health: 50, Turn: 2, MaxTurn: 36})
	require.True(t, ok)
	assert.Equal(t, EndingBankruptcy, ev.ID)

	ev, ok = Ending(Stats{Cash: 10, Health: 0, Turn: 40, MaxTurn: 36})
	require.True(t, ok)
	assert.Equal(t, EndingHospital, ev.ID)

	ev, ok = Ending(Stats{Cash: 1000, Health: 50, Turn: 37, MaxTurn: 36})
	require.True(t, ok)
	assert.Equal(t, EndingRetirement, ev.ID)

	_, ok = Ending(Stats{Cash: 1000, Health: 50, Turn: 36, MaxTurn: 36})
	assert.False(t, ok)
}

func TestEndings_AreSinks(t *testing.T) {
	for id, ev := range Endings {
		assert.True(t, ev.Ending, id)
		require.Len(t, ev.Choices, 1, id)
		assert.Nil(t, ev.Choices[0].Effect, id)
	}
}

func TestSelectNext_DrawsFromCatalog(t *testing.T) {
	pool := Catalog()
	for i := range pool {
		e := NewEngine(fixedRand{n: i})
		scene := e.SelectNext(InitialStats())
		assert.Equal(t, pool[i].ID, scene.Event.ID)
	}
}

func TestSelectNext_InstancesAreUnique(t *testing.T) {
	e := NewEngine(fixedRand{n: 2})
	first := e.SelectNext(InitialStats())
	second := e.SelectNext(InitialStats())

	assert.Equal(t, first.Event.ID, second.Event.ID)
	assert.NotEqual(t, first.Key(), second.Key())
	assert.Greater(t, second.Instance, first.Instance)
}

func TestStep_NextOverridesDraw(t *testing.T) {
	e := NewEngine(fixedRand{n: 0})
	c := Choice{Next: "evt_guru"}

	_, scene := e.Step(InitialStats(), c)
	assert.Equal(t, EventID("evt_guru"), scene.Event.ID)

	// Endings still take priority.
	broke := InitialStats()
	broke.Cash = 100
	_, scene = e.Step(broke, Choice{Cost: 100, Next: "evt_guru"})
	assert.Equal(t, EndingBankruptcy, scene.Event.ID)
}

func TestStep_RetiresAfterMaxTurn(t *testing.T) {
	e := NewEngine(fixedRand{})
	stats := Stats{Cash: 1000, Health: 50, Turn: 36, MaxTurn: 36}

	next, scene := e.Step(stats, Choice{})
	assert.Equal(t, 37, next.Turn)
	assert.Equal(t, EndingRetirement, scene.Event.ID)
}

func TestOptions_Gating(t *testing.T) {
	crash := Catalog()[1]

	novice := Stats{Cash: 50000, Health: 100, Insight: 0}
	opts := Options(novice, crash)
	require.Len(t, opts, 2, "insight-gated choice should be hidden")
	for _, o := range opts {
		assert.NotEqual(t, 2, o.Index)
	}

	poorExpert := Stats{Cash: 10000, Health: 100, Insight: 40}
	opts = Options(poorExpert, crash)
	require.Len(t, opts, 3)
	assert.True(t, opts[2].Locked)
	assert.Contains(t, opts[2].LockReason, "cash")

	guru := Catalog()[3]
	opts = Options(Stats{Cash: 50000, Reputation: 10}, guru)
	require.Len(t, opts, 2)
	assert.False(t, opts[0].Locked)
	assert.True(t, opts[1].Locked, "reputation gating is enforced")
	assert.Contains(t, opts[1].LockReason, "reputation")

	opts = Options(Stats{Cash: 50000, Reputation: 30}, guru)
	assert.False(t, opts[1].Locked)
}

func TestCatalog_Shape(t *testing.T) {
	pool := Catalog()
	assert.Len(t, pool, 5)
	seen := map[EventID]bool{}
	for _, ev := range pool {
		assert.False(t, seen[ev.ID], "duplicate id %s", ev.ID)
		seen[ev.ID] = true
		assert.NotEmpty(t, ev.Choices)
		assert.False(t, ev.Ending)
	}
	assert.Len(t, Start.Choices, 2)
}
