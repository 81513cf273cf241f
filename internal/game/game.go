package game

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zappabad/klinecamp/internal/audio"
	"github.com/zappabad/klinecamp/internal/clock"
	"github.com/zappabad/klinecamp/internal/history"
	"github.com/zappabad/klinecamp/internal/indicator"
	"github.com/zappabad/klinecamp/internal/market"
	"github.com/zappabad/klinecamp/internal/market/generator"
	"github.com/zappabad/klinecamp/internal/quiz"
	"github.com/zappabad/klinecamp/internal/simulation"
	"github.com/zappabad/klinecamp/internal/story"
	"github.com/zappabad/klinecamp/internal/tips"
)

// Game owns all the game subsystems and manages their lifecycle.
type Game struct {
	Store history.Store
	Tips  *tips.Service
	Sound *audio.BellPlayer

	cfg    Config
	clock  clock.Clock
	rng    *rand.Rand
	logger *zap.Logger
	mu     sync.Mutex
}

// NewGame creates a new Game with the given configuration.
func NewGame(cfg Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}
	if cfg.Seed == 0 {
		cfg.Seed = cfg.Clock.Now().UnixNano()
	}
	if cfg.BellOut == nil {
		cfg.BellOut = io.Discard
	}

	g := &Game{
		cfg:    cfg,
		clock:  cfg.Clock,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: logger,
	}

	// Fall back to no history if the store cannot be opened.
	g.Store = history.NewNoopStore()
	if cfg.History.Path != "" {
		store, err := history.NewSQLiteStore(cfg.History.Path, cfg.History.Namespace, logger.Named("history"))
		if err != nil {
			logger.Warn("history disabled", zap.String("path", cfg.History.Path), zap.Error(err))
		} else {
			g.Store = store
		}
	}

	// Create tip service
	provider := tips.NewGeminiProvider(cfg.Tips, nil)
	g.Tips = tips.NewService(cfg.Tips, provider, logger.Named("tips"))
	if err := g.Tips.Start(); err != nil {
		g.Store.Close()
		return nil, fmt.Errorf("start tips: %w", err)
	}

	g.Sound = audio.NewBellPlayer(cfg.BellOut, cfg.Sound.Muted)

	logger.Info("game ready", zap.Int64("seed", cfg.Seed))
	return g, nil
}

// Config returns the game's configuration.
func (g *Game) Config() Config { return g.cfg }

// Now returns the game clock's current time.
func (g *Game) Now() time.Time { return g.clock.Now() }

// NewSimulation generates a fresh annotated series for a random stock and
// opens a trading session on it.
func (g *Game) NewSimulation() (*simulation.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	series := generator.New(g.cfg.Generator, g.rng, g.clock).Generate(g.cfg.Simulation.Days)
	indicator.Annotate(series)
	stock := market.RandomStock(g.rng)

	s, err := simulation.NewSession(g.cfg.Simulation, series, stock, g.Sound, g.logger.Named("simulation"))
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	return s, nil
}

// NewStory starts a new career.
func (g *Game) NewStory() *story.Session {
	g.mu.Lock()
	defer g.mu.Unlock()

	return story.NewSession(g.cfg.Story, story.NewEngine(g.rng), g.Sound, g.logger.Named("story"))
}

// NewQuiz draws a new set of questions.
func (g *Game) NewQuiz() *quiz.Session {
	g.mu.Lock()
	defer g.mu.Unlock()

	return quiz.NewSession(quiz.Random(g.rng, g.cfg.Quiz.Questions), g.Sound, g.logger.Named("quiz"))
}

// FinishSimulation settles the session and records the result.
func (g *Game) FinishSimulation(ctx context.Context, s *simulation.Session) simulation.Result {
	res := s.Finish(g.clock.Now())
	if res.Win() {
		g.Sound.Play(audio.CueWin)
	} else {
		g.Sound.Play(audio.CueLoss)
	}
	g.SaveResult(ctx, res)
	return res
}

// SaveResult appends a history record for res. Failures are logged and
// otherwise ignored.
func (g *Game) SaveResult(ctx context.Context, res simulation.Result) {
	rec := history.FromResult(res, res.FinishedAt)
	if err := g.Store.Append(ctx, rec); err != nil {
		g.logger.Error("failed to save result", zap.String("session", res.ID.String()), zap.Error(err))
		return
	}
	g.logger.Info("result saved",
		zap.String("session", res.ID.String()),
		zap.Float64("yield", res.YieldRate),
		zap.Int("trades", rec.TradeCount),
	)
}

// History returns the saved results, newest first.
func (g *Game) History(ctx context.Context) ([]history.Record, error) {
	records, err := g.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

// ClearHistory removes every saved result.
func (g *Game) ClearHistory(ctx context.Context) error {
	if err := g.Store.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	g.logger.Info("history cleared")
	return nil
}

// Close shuts down all game subsystems.
func (g *Game) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Stop tips first
	if g.Tips != nil {
		g.Tips.Stop()
	}

	if g.Store != nil {
		if err := g.Store.Close(); err != nil {
			g.logger.Warn("closing history", zap.Error(err))
		}
	}
}
