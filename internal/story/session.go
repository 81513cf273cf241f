package story

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zappabad/klinecamp/internal/audio"
)

var (
	ErrGameOver          = errors.New("career is over")
	ErrUnknownChoice     = errors.New("unknown choice")
	ErrChoiceUnavailable = errors.New("choice is not available")
)

// EntryKind classifies a log line.
type EntryKind int8

const (
	EntryNarrative EntryKind = iota
	EntryChoice
	EntryEffect
)

// Entry is one line of the career log.
type Entry struct {
	Kind EntryKind
	Text string
}

// Session is one career in story mode.
type Session struct {
	engine      *Engine
	player      audio.Player
	logger      *zap.Logger
	initialCash float64

	stats Stats
	scene Scene
	log   []Entry
	over  bool
}

// NewSession starts a career at cfg's initial stats with the opening event.
func NewSession(cfg Config, engine *Engine, player audio.Player, logger *zap.Logger) *Session {
	if player == nil {
		player = audio.NoopPlayer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		engine:      engine,
		player:      player,
		logger:      logger,
		initialCash: cfg.InitialCash,
		stats:       cfg.InitialStats(),
		scene:       engine.Begin(),
	}
	s.log = append(s.log, Entry{Kind: EntryNarrative, Text: s.scene.Event.Text})
	return s
}

// Choose takes the choice at index of the current event's Choices.
func (s *Session) Choose(index int) error {
	if s.over {
		return ErrGameOver
	}
	ev := s.scene.Event
	if index < 0 || index >= len(ev.Choices) {
		return fmt.Errorf("%w: %d", ErrUnknownChoice, index)
	}

	available := false
	for _, opt := range Options(s.stats, ev) {
		if opt.Index == index && !opt.Locked {
			available = true
			break
		}
	}
	if !available {
		return fmt.Errorf("%w: %q", ErrChoiceUnavailable, ev.Choices[index].Text)
	}

	s.player.Play(audio.CueClick)

	prev := s.stats
	choice := ev.Choices[index]
	next, scene := s.engine.Step(prev, choice)

	cashDelta := next.Cash - prev.Cash
	switch {
	case cashDelta > 0:
		s.player.Play(audio.CueBuy)
	case cashDelta < 0:
		s.player.Play(audio.CueSell)
	}
	if next.Health < prev.Health {
		s.player.Play(audio.CueWrong)
	}

	s.log = append(s.log,
		Entry{Kind: EntryChoice, Text: "> " + choice.Text},
		Entry{Kind: EntryEffect, Text: choice.LogText},
	)
	if cashDelta != 0 {
		s.log = append(s.log, Entry{Kind: EntryEffect, Text: fmt.Sprintf("Cash %+.0f", cashDelta)})
	}
	s.log = append(s.log,
		Entry{Kind: EntryNarrative, Text: fmt.Sprintf("[Month %d]", next.Turn)},
		Entry{Kind: EntryNarrative, Text: scene.Event.Text},
	)

	s.stats = next
	s.scene = scene

	s.logger.Debug("story turn",
		zap.String("event", string(ev.ID)),
		zap.Int("choice", index),
		zap.String("next", scene.Key()),
		zap.Float64("cash", next.Cash),
		zap.Int("health", next.Health),
		zap.Int("turn", next.Turn),
	)

	if scene.Event.Ending {
		s.over = true
		if next.Cash > s.initialCash {
			s.player.Play(audio.CueWin)
		} else {
			s.player.Play(audio.CueLoss)
		}
		s.logger.Info("story career ended",
			zap.String("ending", string(scene.Event.ID)),
			zap.Float64("cash", next.Cash),
			zap.Int("turn", next.Turn),
		)
	}
	return nil
}

// Stats returns the current stats.
func (s *Session) Stats() Stats { return s.stats }

// Scene returns the current scene.
func (s *Session) Scene() Scene { return s.scene }

// Options returns the choices offered for the current scene.
func (s *Session) Options() []Option {
	if s.over {
		return nil
	}
	return Options(s.stats, s.scene.Event)
}

// Log returns the career log so far.
func (s *Session) Log() []Entry {
	out := make([]Entry, len(s.log))
	copy(out, s.log)
	return out
}

// Over reports whether an ending has been reached.
func (s *Session) Over() bool { return s.over }

// Won reports whether the career ended richer than it started.
func (s *Session) Won() bool { return s.over && s.stats.Cash > s.initialCash }
