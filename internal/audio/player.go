package audio

import (
	"io"
	"sync"
	"sync/atomic"
)

// Player plays sound cues. Implementations must not block the caller.
type Player interface {
	Play(c Cue)
}

// NoopPlayer discards every cue.
type NoopPlayer struct{}

func (NoopPlayer) Play(Cue) {}

// bell is the ASCII BEL control character.
const bell = "\a"

// BellPlayer rings the terminal bell for cues that deserve attention.
// A terminal has no oscillator, so Click and Correct stay silent.
type BellPlayer struct {
	mu    sync.Mutex
	out   io.Writer
	muted atomic.Bool
}

// NewBellPlayer creates a BellPlayer writing to out.
func NewBellPlayer(out io.Writer, muted bool) *BellPlayer {
	p := &BellPlayer{out: out}
	p.muted.Store(muted)
	return p
}

// Play rings the bell unless muted.
func (p *BellPlayer) Play(c Cue) {
	if p.muted.Load() {
		return
	}
	switch c {
	case CueBuy, CueSell, CueWin, CueLoss, CueWrong:
	default:
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.out, bell)
}

// ToggleMute flips the mute state and returns the new one.
func (p *BellPlayer) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether the player is muted.
func (p *BellPlayer) Muted() bool {
	return p.muted.Load()
}
