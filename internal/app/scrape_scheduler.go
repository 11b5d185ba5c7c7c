package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

// ScrapeScheduler triggers reconcile runs on a cron schedule. At most one run is active;
// a trigger that arrives while a run is in flight is skipped.
type ScrapeScheduler struct {
	cron    *cron.Cron
	pool    *ants.Pool
	run     func(ctx context.Context) error
	timeout time.Duration
	logger  *logging.Logger
	baseCtx context.Context
	cancel  context.CancelFunc
}

func NewScrapeScheduler(
	spec string,
	location *time.Location,
	timeout time.Duration,
	run func(ctx context.Context) error,
	logger *logging.Logger,
) (*ScrapeScheduler, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if location == nil {
		location = time.UTC
	}
	if run == nil {
		return nil, fmt.Errorf("scrape scheduler requires a run func")
	}

	pool, err := ants.NewPool(1, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("create run pool: %w", err)
	}

	baseCtx, cancel := context.WithCancel(context.Background())
	s := &ScrapeScheduler{
		cron:    cron.New(cron.WithLocation(location)),
		pool:    pool,
		run:     run,
		timeout: timeout,
		logger:  logger,
		baseCtx: baseCtx,
		cancel:  cancel,
	}

	if _, err := s.cron.AddFunc(spec, func() { s.Trigger() }); err != nil {
		cancel()
		pool.Release()
		return nil, fmt.Errorf("parse SCRAPE_CRON %q: %w", spec, err)
	}
	return s, nil
}

// Trigger submits one run and reports whether it was accepted.
func (s *ScrapeScheduler) Trigger() bool {
	err := s.pool.Submit(func() {
		ctx := s.baseCtx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		if err := s.run(ctx); err != nil {
			s.logger.ErrorContext(ctx, "scheduled reconcile failed", "error", err)
		}
	})
	switch {
	case errors.Is(err, ants.ErrPoolOverload):
		s.logger.Warn("reconcile still running, trigger skipped")
		return false
	case err != nil:
		s.logger.Error("submit reconcile run failed", "error", err)
		return false
	}
	return true
}

func (s *ScrapeScheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule, cancels an active run and waits for it up to the context deadline.
func (s *ScrapeScheduler) Stop(ctx context.Context) error {
	cronDone := s.cron.Stop()
	s.cancel()

	select {
	case <-cronDone.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	wait := 5 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		wait = time.Until(deadline)
	}
	if err := s.pool.ReleaseTimeout(wait); err != nil {
		return fmt.Errorf("release run pool: %w", err)
	}
	return nil
}
