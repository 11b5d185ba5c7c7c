package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
)

func TestLivePoller_FetchesImmediatelyAndOnInterval(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	updates := make(chan *LiveMatch, 16)
	poller := NewLivePoller(func(context.Context) (*LiveMatch, error) {
		calls.Add(1)
		return &LiveMatch{ID: "l1", Status: StatusLive}, nil
	}, PollerConfig{
		Interval: 20 * time.Millisecond,
		OnUpdate: func(live *LiveMatch) { updates <- live },
		Logger:   logging.NewNop(),
	})

	poller.Start(context.Background())
	defer poller.Stop()

	for i := 0; i < 3; i++ {
		select {
		case live := <-updates:
			if live == nil || live.ID != "l1" {
				t.Fatalf("unexpected update: %+v", live)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for update %d", i+1)
		}
	}
	if poller.LastSuccess().IsZero() {
		t.Fatalf("expected last success to be recorded")
	}
}

func TestLivePoller_StopDropsInFlightResult(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	var delivered atomic.Bool

	poller := NewLivePoller(func(context.Context) (*LiveMatch, error) {
		close(entered)
		<-release
		return &LiveMatch{ID: "late"}, nil
	}, PollerConfig{
		Interval: time.Hour,
		OnUpdate: func(*LiveMatch) { delivered.Store(true) },
		Logger:   logging.NewNop(),
	})

	poller.Start(context.Background())
	<-entered
	poller.Stop()
	close(release)

	time.Sleep(50 * time.Millisecond)
	if delivered.Load() {
		t.Fatalf("expected result after stop to be dropped")
	}
}

func TestLivePoller_CountsConsecutiveFailures(t *testing.T) {
	t.Parallel()

	errs := make(chan error, 16)
	poller := NewLivePoller(func(context.Context) (*LiveMatch, error) {
		return nil, errors.New("connection refused")
	}, PollerConfig{
		Interval: 10 * time.Millisecond,
		OnError:  func(err error) { errs <- err },
		Logger:   logging.NewNop(),
	})

	poller.Start(context.Background())
	for i := 0; i < 2; i++ {
		select {
		case <-errs:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for error %d", i+1)
		}
	}
	poller.Stop()

	if got := poller.Failures(); got < 2 {
		t.Fatalf("unexpected failure count: got=%d want>=2", got)
	}
	if !poller.LastSuccess().IsZero() {
		t.Fatalf("expected no successful poll")
	}
}

func TestLivePoller_ContextCancelStops(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	poller := NewLivePoller(func(context.Context) (*LiveMatch, error) {
		calls.Add(1)
		return nil, nil
	}, PollerConfig{Interval: 10 * time.Millisecond, Logger: logging.NewNop()})

	poller.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)
	after := calls.Load()
	time.Sleep(50 * time.Millisecond)

	if got := calls.Load(); got != after {
		t.Fatalf("expected no fetches after cancel: before=%d after=%d", after, got)
	}
}
