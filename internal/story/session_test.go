package story

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zappabad/klinecamp/internal/audio"
)

type recordingPlayer struct {
	cues []audio.Cue
}

func (p *recordingPlayer) Play(c audio.Cue) { p.cues = append(p.cues, c) }

func newTestSession(rng Rand, cfg Config) (*Session, *recordingPlayer) {
	p := &recordingPlayer{}
	return NewSession(cfg, NewEngine(rng), p, zap.NewNop()), p
}

func TestSession_StartsAtOpening(t *testing.T) {
	s, _ := newTestSession(fixedRand{}, DefaultConfig())

	assert.Equal(t, StartID, s.Scene().Event.ID)
	assert.Equal(t, InitialStats(), s.Stats())
	require.Len(t, s.Log(), 1)
	assert.Equal(t, EntryNarrative, s.Log()[0].Kind)
	assert.False(t, s.Over())
}

func TestSession_ChooseStudy(t *testing.T) {
	s, p := newTestSession(fixedRand{n: 2}, DefaultConfig())

	require.NoError(t, s.Choose(0))

	st := s.Stats()
	assert.Equal(t, 49500.0, st.Cash)
	assert.Equal(t, 10, st.Insight)
	assert.Equal(t, 2, st.Turn)
	assert.Equal(t, EventID("evt_study"), s.Scene().Event.ID)
	assert.Equal(t, []audio.Cue{audio.CueClick, audio.CueSell}, p.cues)

	log := s.Log()
	texts := make([]string, len(log))
	for i, e := range log {
		texts[i] = e.Text
	}
	assert.Contains(t, texts, "> Buy a few classic textbooks first")
	assert.Contains(t, texts, "Cash -500")
	assert.Contains(t, texts, "[Month 2]")
}

func TestSession_LockedChoiceRejected(t *testing.T) {
	s, _ := newTestSession(fixedRand{n: 3}, DefaultConfig())
	require.NoError(t, s.Choose(0)) // lands on evt_guru

	before := s.Stats()
	err := s.Choose(1)
	assert.True(t, errors.Is(err, ErrChoiceUnavailable), "got %v", err)
	assert.Equal(t, before, s.Stats())

	err = s.Choose(7)
	assert.True(t, errors.Is(err, ErrUnknownChoice), "got %v", err)
}

func TestSession_HiddenChoiceRejected(t *testing.T) {
	s, _ := newTestSession(fixedRand{n: 1}, DefaultConfig())
	require.NoError(t, s.Choose(0)) // lands on evt_market_crash

	assert.Len(t, s.Options(), 2)
	err := s.Choose(2)
	assert.True(t, errors.Is(err, ErrChoiceUnavailable), "got %v", err)
}

func TestSession_BankruptcyEndsCareer(t *testing.T) {
	cfg := Config{InitialCash: 400, MaxTurn: 36}
	s, p := newTestSession(fixedRand{}, cfg)

	// The study choice costs 500.
	require.NoError(t, s.Choose(0))

	assert.True(t, s.Over())
	assert.False(t, s.Won())
	assert.Equal(t, EndingBankruptcy, s.Scene().Event.ID)
	assert.Nil(t, s.Options())
	assert.Equal(t, audio.CueLoss, p.cues[len(p.cues)-1])

	err := s.Choose(0)
	assert.True(t, errors.Is(err, ErrGameOver), "got %v", err)
}

func TestSession_RetiresAtMaxTurn(t *testing.T) {
	cfg := Config{InitialCash: 50000, MaxTurn: 1}
	s, p := newTestSession(fixedRand{}, cfg)

	require.NoError(t, s.Choose(1)) // go live: cash * 0.95, health -5

	assert.True(t, s.Over())
	assert.Equal(t, EndingRetirement, s.Scene().Event.ID)
	assert.False(t, s.Won())
	assert.Equal(t, []audio.Cue{audio.CueClick, audio.CueSell, audio.CueWrong, audio.CueLoss}, p.cues)
}
