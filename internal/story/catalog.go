package story

// Ending event ids.
const (
	EndingBankruptcy EventID = "BANKRUPTCY"
	EndingHospital   EventID = "HOSPITAL"
	EndingRetirement EventID = "RETIREMENT"
)

// StartID is the id of the opening event.
const StartID EventID = "START"

func endingEvent(id EventID, text, choice, log string) *Event {
	return &Event{
		ID:      id,
		Text:    text,
		Ending:  true,
		Choices: []Choice{{Text: choice, LogText: log}},
	}
}

// Endings are the terminal events, each a sink with a single no-op choice.
var Endings = map[EventID]*Event{
	EndingBankruptcy: endingEvent(EndingBankruptcy,
		"Your balance can no longer cover the internet bill. The broker force-liquidates your positions. You are bankrupt.",
		"Walk away", "Game over: bankrupt."),
	EndingHospital: endingEvent(EndingHospital,
		"Endless late-night reviews and constant stress finally break you. You collapse at the screen and wake up in the ICU. The doctor orders you away from the market.",
		"Health first", "Game over: health collapsed."),
	EndingRetirement: endingEvent(EndingRetirement,
		"Three years are up. You look at the number in your account and replay a career of wild swings. You survived the market.",
		"See final net worth", "Career complete."),
}

// Start is the fixed opening event.
var Start = &Event{
	ID:   StartID,
	Text: "You quit your dull job, took your savings and rented a cheap flat. The monitors flicker in front of you. Your career as a full-time trader begins. This is month 1.",
	Choices: []Choice{
		{
			Text: "Buy a few classic textbooks first",
			Cost: 500,
			Effect: func(s Stats, _ Rand) StatDelta {
				return StatDelta{Insight: 10}
			},
			LogText: "Sharpening the axe before chopping wood, you fill your head first.",
		},
		{
			Text: "Go live right away and learn under fire",
			Effect: func(s Stats, _ Rand) StatDelta {
				return SetCash(s.Cash*0.95).With(-5, 5, 0)
			},
			LogText: "The market teaches you a sharp first lesson. You pay some tuition but gain experience.",
		},
	},
}

// Catalog returns the pool of events drawn between endings.
func Catalog() []*Event {
	return []*Event{
		{
			ID:   "evt_news_leak",
			Text: "Late at night a private chat group is buzzing about a rumor on a sector leader. Unconfirmed, but told in vivid detail.",
			Choices: []Choice{
				{
					Text:    "Go all in (high risk)",
					ReqCash: 10000,
					Effect: func(s Stats, rng Rand) StatDelta {
						if rng.Float64() > 0.6 {
							return SetCash(s.Cash*1.5).With(-5, 0, 5)
						}
						return SetCash(s.Cash*0.6).With(-10, 0, 0)
					},
					LogText: "You decide to gamble on the rumor...",
				},
				{
					Text:    "Test it with a small position",
					ReqCash: 5000,
					Effect: func(s Stats, rng Rand) StatDelta {
						if rng.Float64() > 0.5 {
							return AddCash(5000).With(0, 2, 0)
						}
						return AddCash(-2000).With(0, 1, 0)
					},
					LogText: "You carefully buy a little.",
				},
				{
					Text: "Ignore the noise, study the candles",
					Effect: func(s Stats, _ Rand) StatDelta {
						return StatDelta{Insight: 3, Health: 2}
					},
					LogText: "You close the chat app and keep working on your moving-average system.",
				},
			},
		},
		{
			ID:   "evt_market_crash",
			Text: "Black Thursday: thousands of stocks hit limit-down. Panic spreads and your holdings shrink by the minute.",
			Choices: []Choice{
				{
					Text: "Cut losses, cash is king",
					Effect: func(s Stats, _ Rand) StatDelta {
						return SetCash(s.Cash*0.85).With(-5, 0, 0)
					},
					LogText: "You painfully dump your positions and keep most of your capital.",
				},
				{
					Text: "Play dead",
					Effect: func(s Stats, _ Rand) StatDelta {
						return SetCash(s.Cash*0.7).With(-2, 0, 0)
					},
					LogText: "You close the app and pray for a rebound tomorrow. It never comes.",
				},
				{
					Text:       "Buy the panic (needs high insight)",
					ReqInsight: 30,
					ReqCash:    20000,
					Effect: func(s Stats, _ Rand) StatDelta {
						return SetCash(s.Cash*1.3).With(0, 0, 10)
					},
					LogText: "Reading the sentiment cycle, you catch the capitulation and ride the limit-down to limit-up reversal.",
				},
			},
		},
		{
			ID:   "evt_study",
			Text: "The weekend arrives. Friends invite you out for drinks, but the Chan theory book you just bought is still in its wrapper.",
			Choices: []Choice{
				{
					Text: "Go out and relax",
					Cost: 1000,
					Effect: func(s Stats, _ Rand) StatDelta {
						return StatDelta{Health: 10, Reputation: 2}
					},
					LogText: "You choose company and rest. Your mood recovers.",
				},
				{
					Text: "Lock yourself in and study",
					Effect: func(s Stats, _ Rand) StatDelta {
						return StatDelta{Insight: 8, Health: -3}
					},
					LogText: "A full day of reading deepens your grasp of strokes and segments.",
				},
			},
		},
		{
			ID:   "evt_guru",
			Text: "Your trade review on the forum goes viral. A trader at a private fund messages you to talk shop.",
			Choices: []Choice{
				{
					Text: "Ask humbly for advice",
					Effect: func(s Stats, _ Rand) StatDelta {
						return StatDelta{Insight: 5, Reputation: 5}
					},
					LogText: "A few words from the expert teach you a lot.",
				},
				{
					Text:          "Pitch for capital (needs high reputation)",
					ReqReputation: 30,
					Effect: func(s Stats, _ Rand) StatDelta {
						return AddCash(100000).With(0, 0, 10)
					},
					LogText: "On the strength of your name, the expert hands you money to manage!",
				},
			},
		},
		{
			ID:   "evt_bull_market",
			Text: "A roaring bull run arrives! Even the vegetable sellers at the market are talking stocks.",
			Choices: []Choice{
				{
					Text:    "Lever up hard",
					ReqCash: 10000,
					Effect: func(s Stats, _ Rand) StatDelta {
						return SetCash(s.Cash*1.8).With(-15, 0, 0)
					},
					LogText: "Heart in your mouth, full margin pays off handsomely.",
				},
				{
					Text: "Hold steady",
					Effect: func(s Stats, _ Rand) StatDelta {
						return SetCash(s.Cash*1.2).With(2, 0, 0)
					},
					LogText: "You enjoy the steady climb of your assets.",
				},
				{
					Text: "Take profits in batches",
					Effect: func(s Stats, _ Rand) StatDelta {
						return SetCash(s.Cash*1.1).With(0, 2, 0)
					},
					LogText: "Not greedy, you bank the gains.",
				},
			},
		},
	}
}
