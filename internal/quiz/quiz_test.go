package quiz

import (
	"math/rand"
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

func TestBank_WellFormed(t *testing.T) {
	require.Len(t, Bank, 20)

	seen := make(map[int]bool)
	for _, q := range Bank {
		assert.False(t, seen[q.ID], "duplicate id %d", q.ID)
		seen[q.ID] = true
		assert.NotEmpty(t, q.Prompt)
		assert.NotEmpty(t, q.Explanation)
		assert.Len(t, q.Options, 4, "question %d", q.ID)
		assert.True(t, q.Correct >= 0 && q.Correct < len(q.Options), "question %d", q.ID)
	}
}

func TestRandom_Distinct(t *testing.T) {
	qs := Random(rand.New(rand.NewSource(3)), 10)
	require.Len(t, qs, 10)

	seen := make(map[int]bool)
	for _, q := range qs {
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestRandom_Clamps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Len(t, Random(rng, 100), len(Bank))
	assert.Empty(t, Random(rng, 0))
	assert.Empty(t, Random(rng, -2))
}

func TestSession_AnswerAndScore(t *testing.T) {
	p := &recordingPlayer{}
	qs := []Question{Bank[0], Bank[1]}
	s := NewSession(qs, p, zap.NewNop())

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 1, s.Level())

	right, err := s.Answer(q.Correct)
	require.NoError(t, err)
	assert.True(t, right)
	assert.True(t, s.Answered())

	_, err = s.Answer(q.Correct)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	require.True(t, s.Next())
	assert.False(t, s.Answered())
	assert.Equal(t, -1, s.Selected())

	q, _ = s.Current()
	right, err = s.Answer((q.Correct + 1) % len(q.Options))
	require.NoError(t, err)
	assert.False(t, right)

	assert.False(t, s.Next())
	assert.True(t, s.Finished())
	assert.Equal(t, Result{Total: 2, Correct: 1}, s.Result())
	assert.Equal(t, []audio.Cue{audio.CueCorrect, audio.CueWrong}, p.cues)

	_, err = s.Answer(0)
	assert.ErrorIs(t, err, ErrFinished)
}

func TestSession_InvalidOption(t *testing.T) {
	s := NewSession([]Question{Bank[0]}, nil, nil)

	_, err := s.Answer(4)
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.False(t, s.Answered())
}

func TestSession_Empty(t *testing.T) {
	s := NewSession(nil, nil, nil)

	assert.True(t, s.Finished())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.False(t, s.Next())
}
