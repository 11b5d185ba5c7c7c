package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_DoDeduplicatesConcurrentCalls(t *testing.T) {
	var g Group[[]byte]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			body, err, _ := g.Do("/points-table", func() ([]byte, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return []byte("<table></table>"), nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if string(body) != "<table></table>" {
				t.Errorf("unexpected shared body: %q", body)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestGroup_DoSequentialCallsRunAgain(t *testing.T) {
	var g Group[int]
	calls := 0
	fail := errors.New("boom")

	if _, err, _ := g.Do("k", func() (int, error) { calls++; return 0, fail }); !errors.Is(err, fail) {
		t.Fatalf("expected first error, got %v", err)
	}
	v, err, shared := g.Do("k", func() (int, error) { calls++; return 7, nil })
	if err != nil || v != 7 || shared {
		t.Fatalf("unexpected second result: v=%d err=%v shared=%t", v, err, shared)
	}
	if calls != 2 {
		t.Fatalf("unexpected call count: got=%d want=2", calls)
	}
}
