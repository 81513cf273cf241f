package game

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/zappabad/klinecamp/internal/clock"
)

var testNow = time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T) (*Game, *bytes.Buffer) {
	t.Helper()
	bell := &bytes.Buffer{}
	cfg := DefaultConfig()
	cfg.Clock = clock.Fixed(testNow)
	cfg.Seed = 42
	cfg.BellOut = bell
	cfg.History.Path = filepath.Join(t.TempDir(), "history.db")
	cfg.Tips.APIKey = ""

	g, err := NewGame(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(g.Close)
	return g, bell
}

func TestNewSimulation(t *testing.T) {
	g, _ := newTestGame(t)

	s, err := g.NewSimulation()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	visible := s.Visible()
	if len(visible) != 61 {
		t.Errorf("expected 61 visible bars, got %d", len(visible))
	}
	if s.DaysLeft() != 29 {
		t.Errorf("expected 29 days left, got %d", s.DaysLeft())
	}
	if !s.Current().MA20OK {
		t.Error("expected the series to be annotated")
	}
	if got := s.Current().DateString(); got != "2025-02-13" {
		t.Errorf("expected current bar dated 2025-02-13, got %s", got)
	}
	if s.Stock().Name == "" {
		t.Error("expected a stock to be picked")
	}
}

func TestFinishSimulation_SavesHistory(t *testing.T) {
	g, bell := newTestGame(t)
	ctx := context.Background()

	s, err := g.NewSimulation()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := s.Buy(); err != nil {
		t.Fatalf("expected buy to succeed, got %v", err)
	}
	for s.Advance() {
	}

	res := g.FinishSimulation(ctx, s)

	records, err := g.History(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].TradeCount != 1 {
		t.Errorf("expected 1 trade, got %d", records[0].TradeCount)
	}
	if records[0].YieldRate != res.YieldRate {
		t.Errorf("expected yield %f, got %f", res.YieldRate, records[0].YieldRate)
	}
	if !records[0].Timestamp.Equal(testNow) {
		t.Errorf("expected timestamp %v, got %v", testNow, records[0].Timestamp)
	}
	if bell.Len() == 0 {
		t.Error("expected the bell to ring")
	}

	if err := g.ClearHistory(ctx); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	records, _ = g.History(ctx)
	if len(records) != 0 {
		t.Errorf("expected empty history, got %d records", len(records))
	}
}

func TestNewStory(t *testing.T) {
	g, _ := newTestGame(t)

	s := g.NewStory()
	if s.Stats().Cash != 50000 {
		t.Errorf("expected 50000 cash, got %f", s.Stats().Cash)
	}
	if err := s.Choose(0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.Stats().Turn != 2 {
		t.Errorf("expected turn 2, got %d", s.Stats().Turn)
	}
}

func TestNewQuiz(t *testing.T) {
	g, _ := newTestGame(t)

	q := g.NewQuiz()
	if q.Total() != 10 {
		t.Errorf("expected 10 questions, got %d", q.Total())
	}
}

func TestNewGame_NoHistoryPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Path = ""
	cfg.BellOut = nil
	cfg.Tips.APIKey = ""

	g, err := NewGame(cfg, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer g.Close()

	records, err := g.History(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestNewGame_BadCron(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Path = ""
	cfg.Tips.RefreshCron = "whenever"

	if _, err := NewGame(cfg, nil); err == nil {
		t.Error("expected an error for a bad refresh schedule")
	}
}
