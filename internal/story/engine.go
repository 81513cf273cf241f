package story

import "fmt"

// Engine advances a career one turn at a time. It owns the event catalog and
// the instance counter of one session; it is not safe for concurrent use.
type Engine struct {
	rng      Rand
	pool     []*Event
	byID     map[EventID]*Event
	instance int
}

// NewEngine creates an Engine over the default catalog.
func NewEngine(rng Rand) *Engine {
	return NewEngineWithCatalog(rng, Catalog())
}

// NewEngineWithCatalog creates an Engine drawing random events from pool.
func NewEngineWithCatalog(rng Rand, pool []*Event) *Engine {
	e := &Engine{
		rng:  rng,
		pool: pool,
		byID: make(map[EventID]*Event, len(pool)+len(Endings)+1),
	}
	e.byID[Start.ID] = Start
	for id, ev := range Endings {
		e.byID[id] = ev
	}
	for _, ev := range pool {
		e.byID[ev.ID] = ev
	}
	return e
}

// Begin returns the opening scene.
func (e *Engine) Begin() Scene {
	return e.scene(Start)
}

// Step applies choice to stats, advances the turn and selects the next scene.
//
// Step does not check the choice's requirements; callers offer only the
// unlocked choices returned by Options.
func (e *Engine) Step(stats Stats, choice Choice) (Stats, Scene) {
	next := Apply(stats, choice, e.rng)

	if ending, ok := Ending(next); ok {
		return next, e.scene(ending)
	}
	if choice.Next != "" {
		if ev, ok := e.byID[choice.Next]; ok {
			return next, e.scene(ev)
		}
	}
	return next, e.draw()
}

// SelectNext returns the ending stats have reached, or a random event.
func (e *Engine) SelectNext(stats Stats) Scene {
	if ending, ok := Ending(stats); ok {
		return e.scene(ending)
	}
	return e.draw()
}

// Lookup returns the event with the given id.
func (e *Engine) Lookup(id EventID) (*Event, bool) {
	ev, ok := e.byID[id]
	return ev, ok
}

func (e *Engine) draw() Scene {
	if len(e.pool) == 0 {
		return e.scene(Endings[EndingRetirement])
	}
	return e.scene(e.pool[e.rng.Intn(len(e.pool))])
}

func (e *Engine) scene(ev *Event) Scene {
	e.instance++
	return Scene{Event: ev, Instance: e.instance}
}

// Apply computes the stats after taking choice, including the turn advance.
// The cost is deducted first and the effect sees the cost-adjusted stats.
func Apply(stats Stats, choice Choice, rng Rand) Stats {
	next := stats
	next.Cash -= choice.Cost

	var d StatDelta
	if choice.Effect != nil {
		d = choice.Effect(next, rng)
	}

	switch d.CashMode {
	case CashAbsolute:
		next.Cash = d.Cash
	case CashRelative:
		next.Cash += d.Cash
	}

	next.Health = min(100, max(0, next.Health+d.Health))
	// Insight and reputation have no lower bound.
	next.Insight = min(100, next.Insight+d.Insight)
	next.Reputation = min(100, next.Reputation+d.Reputation)
	next.Turn++
	return next
}

// Ending reports which terminal event stats have reached, checking
// bankruptcy, then health, then the end of the career.
func Ending(stats Stats) (*Event, bool) {
	switch {
	case stats.Cash <= 0:
		return Endings[EndingBankruptcy], true
	case stats.Health <= 0:
		return Endings[EndingHospital], true
	case stats.Turn > stats.MaxTurn:
		return Endings[EndingRetirement], true
	}
	return nil, false
}

// Options returns the choices of ev that the player may see. A choice with
// an unmet insight requirement is hidden; unmet cash or reputation
// requirements leave it visible but locked.
func Options(stats Stats, ev *Event) []Option {
	if ev == nil {
		return nil
	}
	opts := make([]Option, 0, len(ev.Choices))
	for i, c := range ev.Choices {
		if c.ReqInsight > 0 && stats.Insight < c.ReqInsight {
			continue
		}
		opt := Option{Index: i, Choice: c}
		switch {
		case c.ReqCash > 0 && stats.Cash < c.ReqCash:
			opt.Locked = true
			opt.LockReason = fmt.Sprintf("needs cash %.0f", c.ReqCash)
		case c.ReqReputation > 0 && stats.Reputation < c.ReqReputation:
			opt.Locked = true
			opt.LockReason = fmt.Sprintf("needs reputation %d", c.ReqReputation)
		}
		opts = append(opts, opt)
	}
	return opts
}
