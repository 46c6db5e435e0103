package ratelimit

import (
	"context"
	"sync"
)

// FetchLimiter caps how many upstream feed fetches run at once, so a burst
// of API requests doesn't hammer the feed hosts.
type FetchLimiter struct {
	slots chan struct{}

	mu       sync.Mutex
	acquired int64
	waited   int64
}

func NewFetchLimiter(maxConcurrent int) *FetchLimiter {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &FetchLimiter{
		slots: make(chan struct{}, maxConcurrent),
	}
}

// Acquire blocks until a fetch slot is free or ctx is done.
func (l *FetchLimiter) Acquire(ctx context.Context) error {
	select {
	case l.slots <- struct{}{}:
		l.mu.Lock()
		l.acquired++
		l.mu.Unlock()
		return nil
	default:
	}

	l.mu.Lock()
	l.waited++
	l.mu.Unlock()

	select {
	case l.slots <- struct{}{}:
		l.mu.Lock()
		l.acquired++
		l.mu.Unlock()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *FetchLimiter) Release() {
	<-l.slots
}

// Stats reports how many fetches ran and how many had to wait for a slot.
func (l *FetchLimiter) Stats() (acquired, waited int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acquired, l.waited
}
