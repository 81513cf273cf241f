package tips

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Fallback tips.
const (
	NoKeyTip = "Remember: follow the trend, cut losses first."
	EmptyTip = "Follow the trend."
	ErrorTip = "Watch more, trade less; wait for the setup."
)

// Service keeps the current daily tip and refreshes it in the background.
type Service struct {
	cfg      Config
	provider Provider
	logger   *zap.Logger

	mu      sync.RWMutex
	current string

	cron *cron.Cron
}

// NewService creates a tip service. A nil provider, or an empty API key,
// pins the tip to NoKeyTip.
func NewService(cfg Config, provider Provider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.APIKey == "" {
		provider = nil
	}
	return &Service{
		cfg:      cfg,
		provider: provider,
		logger:   logger,
		current:  NoKeyTip,
	}
}

// Current returns the latest tip without blocking on the network.
func (s *Service) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh fetches a new tip, falling back to a fixed string on failure.
func (s *Service) Refresh(ctx context.Context) string {
	tip := s.fetch(ctx)

	s.mu.Lock()
	s.current = tip
	s.mu.Unlock()
	return tip
}

func (s *Service) fetch(ctx context.Context) string {
	if s.provider == nil {
		return NoKeyTip
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	tip, err := s.provider.Tip(ctx)
	if err != nil {
		s.logger.Warn("tip refresh failed", zap.Error(err))
		return ErrorTip
	}
	if tip == "" {
		return EmptyTip
	}
	s.logger.Debug("tip refreshed", zap.String("tip", tip))
	return tip
}

// Start refreshes once in the background and schedules further refreshes.
func (s *Service) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(s.cfg.RefreshCron, func() { s.Refresh(context.Background()) }); err != nil {
		return fmt.Errorf("schedule tip refresh %q: %w", s.cfg.RefreshCron, err)
	}
	c.Start()
	s.cron = c

	go s.Refresh(context.Background())

	s.logger.Info("tip service started", zap.String("schedule", s.cfg.RefreshCron), zap.Bool("remote", s.provider != nil))
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
}
