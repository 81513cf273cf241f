package quiz

// Bank is the full question bank.
var Bank = []Question{
	{
		ID: 1, Topic: TopicCandles,
		Prompt:      "On a candlestick chart a candle that closes above its open is usually drawn red. What is it called?",
		Options:     []string{"Bearish candle", "Bullish candle", "Doji", "Gravestone"},
		Correct:     1,
		Explanation: "A close above the open means the price rose that day: a bullish (red) candle.",
	},
	{
		ID: 2, Topic: TopicCandles,
		Prompt:      "The \"morning star\" usually appears at the end of a downtrend. What does it signal?",
		Options:     []string{"Further decline", "A bottom reversal", "Sideways consolidation", "Shrinking volume"},
		Correct:     1,
		Explanation: "The morning star is a classic bottom reversal pattern; the price is likely to turn up.",
	},
	{
		ID: 3, Topic: TopicCandles,
		Prompt:      "A tiny body with long upper and lower shadows shows bulls and bears evenly matched. What is this candle?",
		Options:     []string{"Marubozu", "Big bearish candle", "Doji", "Three white soldiers"},
		Correct:     2,
		Explanation: "In a doji the open and close are nearly equal; the balance of power often precedes a turn.",
	},
	{
		ID: 4, Topic: TopicCandles,
		Prompt:      "At a high, a candle with a long upper shadow shaped like a tombstone appears. What is it usually called?",
		Options:     []string{"Shooting star", "Hammer", "Inverted hammer", "Morning star"},
		Correct:     0,
		Explanation: "A shooting star at a high shows the bulls' push was rejected; it is a topping signal.",
	},
	{
		ID: 5, Topic: TopicCandles,
		Prompt:      "Three bullish candles in a row, each closing at a new high. What is the pattern?",
		Options:     []string{"Three black crows", "Three white soldiers", "Bullish cannon", "Rising three methods"},
		Correct:     1,
		Explanation: "Three white soldiers is a strong bullish signal of steadily building buying pressure.",
	},
	{
		ID: 6, Topic: TopicCandles,
		Prompt:      "In a downtrend a big bearish candle is followed by one that opens lower but closes past the middle of the prior body. What is it?",
		Options:     []string{"Dark cloud cover", "Piercing line", "Harami", "Tweezer bottom"},
		Correct:     1,
		Explanation: "The piercing line is a bottom reversal; the deeper it cuts into the bearish body, the stronger.",
	},
	{
		ID: 7, Topic: TopicCandles,
		Prompt:      "In an uptrend a big bullish candle is followed by a bearish one whose body covers it entirely. What is it?",
		Options:     []string{"Bearish engulfing", "Harami", "Hanging man", "Piercing pattern"},
		Correct:     0,
		Explanation: "A bearish engulfing is a strong topping signal: the sellers swallowed the buyers' gains.",
	},
	{
		ID: 8, Topic: TopicIndicators,
		Prompt:      "In MACD, the fast line (DIF) crossing above the slow line (DEA) is called?",
		Options:     []string{"Death cross", "Divergence", "Golden cross", "Consolidation"},
		Correct:     2,
		Explanation: "The fast line crossing up through the slow line is a golden cross, usually read as a buy signal.",
	},
	{
		ID: 9, Topic: TopicIndicators,
		Prompt:      "Price makes a new high while volume shrinks. This price/volume divergence usually means?",
		Options:     []string{"Plenty of upside momentum", "The trend may reverse", "Big money is accumulating", "Nothing in particular"},
		Correct:     1,
		Explanation: "A rise without volume lacks buying support; it is a common topping signal.",
	},
	{
		ID: 10, Topic: TopicIndicators,
		Prompt:      "Bollinger Bands suddenly widen sharply. This usually means?",
		Options:     []string{"The market turns range-bound", "Volatility is rising and a move is near", "Volume is drying up", "Big money is distributing"},
		Correct:     1,
		Explanation: "Widening bands show rising volatility, often at the start of a one-sided move.",
	},
	{
		ID: 11, Topic: TopicChan,
		Prompt:      "In Chan theory, what is the minimum requirement for a stroke?",
		Options:     []string{"At least 3 candles", "A top fractal, a bottom fractal and at least one independent candle between", "Rising volume", "A moving-average golden cross"},
		Correct:     1,
		Explanation: "A stroke joins a top and a bottom fractal with at least one candle between them belonging to neither.",
	},
	{
		ID: 12, Topic: TopicChan,
		Prompt:      "In Chan theory, what usually marks the end of a move?",
		Options:     []string{"A MACD death cross", "Divergence of momentum", "Breaking a moving average", "A huge bearish candle"},
		Correct:     1,
		Explanation: "Momentum divergence is the core of Chan theory; without it there is no buy or sell point.",
	},
	{
		ID: 13, Topic: TopicChan,
		Prompt:      "In Chan theory, what forms a pivot zone?",
		Options:     []string{"Three overlapping candles", "The overlap of three consecutive strokes", "Tangled moving averages", "Piled-up volume"},
		Correct:     1,
		Explanation: "A pivot is the overlapping range of three consecutive strokes and sets the level of a move.",
	},
	{
		ID: 14, Topic: TopicChan,
		Prompt:      "In Chan theory, where does the third-class buy point usually appear?",
		Options:     []string{"At a divergence below the pivot", "While oscillating inside the pivot", "On a pullback after a breakout that does not re-enter the pivot", "When breaking the pivot's low"},
		Correct:     2,
		Explanation: "After leaving the pivot, a pullback that stays outside it confirms the new trend.",
	},
	{
		ID: 15, Topic: TopicChan,
		Prompt:      "In Chan theory, why resolve candle containment?",
		Options:     []string{"To simplify candles so strokes can be drawn", "To filter noise", "To compute volume", "To find support"},
		Correct:     0,
		Explanation: "Containment handling normalizes candles so top and bottom fractals can be defined exactly.",
	},
	{
		ID: 16, Topic: TopicChan,
		Prompt:      "In Chan theory, what is the highest point of a top fractal called?",
		Options:     []string{"High", "Top", "Extreme", "Upper edge"},
		Correct:     1,
		Explanation: "The high of the middle candle is the fractal's top, an anchor for drawing strokes.",
	},
	{
		ID: 17, Topic: TopicDiscipline,
		Prompt:      "What is a stop-loss for?",
		Options:     []string{"Locking in profit", "Cutting losses to protect capital", "Predicting the market", "Trading more often"},
		Correct:     1,
		Explanation: "A stop-loss is about survival: cut your losses and let your profits run.",
	},
	{
		ID: 18, Topic: TopicDiscipline,
		Prompt:      "What does the T+1 settlement rule mean?",
		Options:     []string{"Shares bought today can be sold today", "Shares bought today can be sold from the next day", "Positions lock for one hour", "Cash settles instantly"},
		Correct:     1,
		Explanation: "Under T+1, shares bought on a trading day can only be sold on the next trading day.",
	},
	{
		ID: 19, Topic: TopicIndicators,
		Prompt:      "What are moving averages mainly used to judge?",
		Options:     []string{"Short-term swings", "The price trend", "Exact entry points", "Volume changes"},
		Correct:     1,
		Explanation: "Moving averages smooth out price noise to identify and follow the trend.",
	},
	{
		ID: 20, Topic: TopicIndicators,
		Prompt:      "When RSI rises above 80, the market is usually considered?",
		Options:     []string{"Oversold", "Overbought", "Balanced", "Sluggish"},
		Correct:     1,
		Explanation: "RSI above 80 is overbought and may pull back; below 20 is oversold and may bounce.",
	},
}
