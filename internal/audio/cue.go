package audio

// Cue identifies a sound effect.
type Cue int

const (
	CueClick Cue = iota
	CueBuy
	CueSell
	CueWin
	CueLoss
	CueCorrect
	CueWrong
)

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CueBuy:
		return "buy"
	case CueSell:
		return "sell"
	case CueWin:
		return "win"
	case CueLoss:
		return "loss"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Wave is an oscillator waveform.
type Wave string

const (
	WaveSine     Wave = "sine"
	WaveSquare   Wave = "square"
	WaveTriangle Wave = "triangle"
	WaveSawtooth Wave = "sawtooth"
)

// Tone is one oscillator note. Times are in seconds.
type Tone struct {
	Freq     float64
	EndFreq  float64 // non-zero for a slide
	Wave     Wave
	Duration float64
	Start    float64
	Volume   float64
}

var tones = map[Cue][]Tone{
	CueClick: {{Freq: 800, Wave: WaveSine, Duration: 0.05, Volume: 0.05}},
	CueBuy: {
		{Freq: 1200, Wave: WaveSine, Duration: 0.1, Volume: 0.1},
		{Freq: 2000, Wave: WaveSquare, Duration: 0.2, Start: 0.05, Volume: 0.05},
	},
	CueSell: {{Freq: 1500, EndFreq: 500, Wave: WaveSine, Duration: 0.2, Volume: 0.1}},
	CueWin: {
		{Freq: 523.25, Wave: WaveTriangle, Duration: 0.2, Volume: 0.1},
		{Freq: 659.25, Wave: WaveTriangle, Duration: 0.2, Start: 0.1, Volume: 0.1},
		{Freq: 783.99, Wave: WaveTriangle, Duration: 0.2, Start: 0.2, Volume: 0.1},
		{Freq: 1046.50, Wave: WaveSquare, Duration: 0.4, Start: 0.3, Volume: 0.1},
	},
	CueLoss: {
		{Freq: 392.00, Wave: WaveTriangle, Duration: 0.3, Volume: 0.1},
		{Freq: 369.99, Wave: WaveTriangle, Duration: 0.3, Start: 0.15, Volume: 0.1},
		{Freq: 349.23, Wave: WaveSawtooth, Duration: 0.6, Start: 0.3, Volume: 0.15},
	},
	CueCorrect: {
		{Freq: 880, Wave: WaveSine, Duration: 0.1, Volume: 0.1},
		{Freq: 1760, Wave: WaveSine, Duration: 0.3, Start: 0.05, Volume: 0.1},
	},
	CueWrong: {
		{Freq: 150, Wave: WaveSawtooth, Duration: 0.3, Volume: 0.2},
		{Freq: 100, Wave: WaveSawtooth, Duration: 0.3, Start: 0.1, Volume: 0.2},
	},
}

// Tones returns the note recipe for a cue, for players that can synthesize.
func Tones(c Cue) []Tone {
	return tones[c]
}

// Length returns how long the cue plays, in seconds.
func Length(c Cue) float64 {
	var end float64
	for _, t := range tones[c] {
		if e := t.Start + t.Duration; e > end {
			end = e
		}
	}
	return end
}
