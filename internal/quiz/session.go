package quiz

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/zappabad/klinecamp/internal/audio"
)

var (
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrInvalidOption   = errors.New("invalid option")
	ErrFinished        = errors.New("quiz finished")
)

// Random draws n distinct questions from the bank in random order. n is
// clamped to the bank size.
func Random(rng *rand.Rand, n int) []Question {
	if n > len(Bank) {
		n = len(Bank)
	}
	if n <= 0 {
		return nil
	}
	out := make([]Question, 0, n)
	for _, i := range rng.Perm(len(Bank))[:n] {
		out = append(out, Bank[i])
	}
	return out
}

// Session walks through a list of questions, one answer each.
type Session struct {
	questions []Question
	index     int
	answered  bool
	selected  int
	correct   int

	player audio.Player
	logger *zap.Logger
}

// NewSession creates a session over questions.
func NewSession(questions []Question, player audio.Player, logger *zap.Logger) *Session {
	if player == nil {
		player = audio.NoopPlayer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{questions: questions, player: player, logger: logger, selected: -1}
}

// Current returns the question being asked.
func (s *Session) Current() (Question, bool) {
	if s.Finished() {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Level is the 1-based position of the current question.
func (s *Session) Level() int { return s.index + 1 }

// Total is the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Answered reports whether the current question has been answered.
func (s *Session) Answered() bool { return s.answered }

// Selected is the option picked for the current question, or -1.
func (s *Session) Selected() int { return s.selected }

// Answer records the answer to the current question.
func (s *Session) Answer(option int) (bool, error) {
	q, ok := s.Current()
	if !ok {
		return false, ErrFinished
	}
	if s.answered {
		return false, ErrAlreadyAnswered
	}
	if option < 0 || option >= len(q.Options) {
		return false, ErrInvalidOption
	}

	s.answered = true
	s.selected = option

	right := q.IsCorrect(option)
	if right {
		s.correct++
		s.player.Play(audio.CueCorrect)
	} else {
		s.player.Play(audio.CueWrong)
	}
	s.logger.Debug("quiz answer", zap.Int("question", q.ID), zap.Int("option", option), zap.Bool("correct", right))
	return right, nil
}

// Next moves to the following question. It returns false once the last
// question has been passed.
func (s *Session) Next() bool {
	if s.Finished() {
		return false
	}
	s.index++
	s.answered = false
	s.selected = -1
	return !s.Finished()
}

// Finished reports whether every question has been passed.
func (s *Session) Finished() bool {
	return s.index >= len(s.questions)
}

// Result returns the score so far.
func (s *Session) Result() Result {
	return Result{Total: len(s.questions), Correct: s.correct}
}
