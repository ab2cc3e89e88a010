package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/unity/internal/logging"
	"github.com/dmitrijs2005/unity/internal/server/repositories/repomanager"
	"github.com/robfig/cron/v3"
)

// AvailabilitySweeper periodically clears "available now" flags whose window
// has ended. Without it a stale flag stays set until its owner toggles it.
type AvailabilitySweeper struct {
	repos  repomanager.Repositories
	logger logging.Logger
	cron   *cron.Cron
	now    Clock

	mu      sync.Mutex
	running bool
}

// NewAvailabilitySweeper validates schedule (standard 5-field cron or a
// descriptor such as "@every 5m") and prepares the job without starting it.
func NewAvailabilitySweeper(repos repomanager.Repositories, logger logging.Logger, schedule string) (*AvailabilitySweeper, error) {
	s := &AvailabilitySweeper{
		repos:  repos,
		logger: logger,
		cron:   cron.New(),
		now:    systemClock,
	}
	if _, err := s.cron.AddFunc(schedule, func() { _, _ = s.Sweep(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}
	return s, nil
}

// Sweep runs one pass and reports how many listings were cleared. Overlapping
// passes are skipped.
func (s *AvailabilitySweeper) Sweep(ctx context.Context) (int64, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return 0, nil
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	n, err := s.repos.Listings().ExpireAvailability(ctx, s.now())
	if err != nil {
		s.logger.Error(ctx, "availability sweep failed", "error", err)
		return 0, err
	}
	if n > 0 {
		s.logger.Info(ctx, "availability sweep", "cleared", n)
	}
	return n, nil
}

func (s *AvailabilitySweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running pass to finish or ctx to end.
func (s *AvailabilitySweeper) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
