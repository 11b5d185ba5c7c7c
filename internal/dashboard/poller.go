package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
)

const DefaultPollInterval = 30 * time.Second

// LivePoller re-fetches the live match on a fixed interval. Ticks do not wait for an
// earlier fetch to finish. After Stop no new fetches start and results of fetches
// still in flight are dropped.
type LivePoller struct {
	fetch    func(ctx context.Context) (*LiveMatch, error)
	interval time.Duration
	onUpdate func(*LiveMatch)
	onError  func(error)
	logger   *logging.Logger

	mu          sync.Mutex
	stopped     bool
	started     bool
	ticker      *time.Ticker
	done        chan struct{}
	failures    int
	lastSuccess time.Time
}

type PollerConfig struct {
	Interval time.Duration
	OnUpdate func(*LiveMatch)
	OnError  func(error)
	Logger   *logging.Logger
}

func NewLivePoller(fetch func(ctx context.Context) (*LiveMatch, error), cfg PollerConfig) *LivePoller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &LivePoller{
		fetch:    fetch,
		interval: cfg.Interval,
		onUpdate: cfg.OnUpdate,
		onError:  cfg.OnError,
		logger:   cfg.Logger,
		done:     make(chan struct{}),
	}
}

// Start fetches once immediately and then on every tick until Stop or ctx is done.
func (p *LivePoller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started || p.stopped {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	ticker := p.ticker
	p.mu.Unlock()

	go p.poll(ctx)
	go func() {
		for {
			select {
			case <-ctx.Done():
				p.Stop()
				return
			case <-p.done:
				return
			case <-ticker.C:
				go p.poll(ctx)
			}
		}
	}()
}

func (p *LivePoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.stopped = true
	if p.ticker != nil {
		p.ticker.Stop()
	}
	close(p.done)
}

func (p *LivePoller) Failures() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failures
}

func (p *LivePoller) LastSuccess() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSuccess
}

func (p *LivePoller) poll(ctx context.Context) {
	live, err := p.fetch(ctx)

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	if err != nil {
		p.failures++
		failures := p.failures
		p.mu.Unlock()

		p.logger.WarnContext(ctx, "live match poll failed", "error", err, "consecutive_failures", failures)
		if p.onError != nil {
			p.onError(err)
		}
		return
	}
	p.failures = 0
	p.lastSuccess = time.Now()
	p.mu.Unlock()

	if p.onUpdate != nil {
		p.onUpdate(live)
	}
}
