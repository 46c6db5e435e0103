package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchLimiterCapsConcurrency(t *testing.T) {
	l := NewFetchLimiter(2)

	var active, peak int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.Acquire(context.Background()); err != nil {
				t.Errorf("acquire failed: %v", err)
				return
			}
			defer l.Release()

			n := atomic.AddInt32(&active, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	if peak > 2 {
		t.Fatalf("concurrency cap exceeded: peak %d", peak)
	}

	acquired, _ := l.Stats()
	if acquired != 8 {
		t.Fatalf("expected 8 acquisitions, got %d", acquired)
	}
}

func TestFetchLimiterAcquireHonorsContext(t *testing.T) {
	l := NewFetchLimiter(1)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := l.Acquire(ctx); err == nil {
		t.Fatal("expected context error while waiting for a slot")
	}

	l.Release()
}
