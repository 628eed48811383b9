package ratelimit

import (
	"context"
	"sync"
	"time"
)

// SlidingWindow admits at most limit events in any trailing window.
// It is safe for concurrent use and is shared by every outbound provider call.
type SlidingWindow struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	stamps []time.Time // admission times, oldest first

	now func() time.Time
}

// NewSlidingWindow creates a window admitting limit events per window.
func NewSlidingWindow(limit int, window time.Duration) *SlidingWindow {
	if limit < 1 {
		limit = 1
	}
	return &SlidingWindow{
		limit:  limit,
		window: window,
		stamps: make([]time.Time, 0, limit),
		now:    time.Now,
	}
}

// Acquire records one event, suspending the caller until the window has room.
// It returns ctx.Err() if ctx ends while waiting.
func (w *SlidingWindow) Acquire(ctx context.Context) error {
	for {
		wait, ok := w.tryAcquire()
		if ok {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// tryAcquire admits the event if possible, otherwise returns how long until
// the oldest admission ages out.
func (w *SlidingWindow) tryAcquire() (time.Duration, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.prune(now)

	if len(w.stamps) < w.limit {
		w.stamps = append(w.stamps, now)
		return 0, true
	}

	wait := w.stamps[0].Add(w.window).Sub(now)
	if wait <= 0 {
		wait = time.Millisecond
	}
	return wait, false
}

// InFlight returns how many admissions currently count against the window.
func (w *SlidingWindow) InFlight() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.prune(w.now())
	return len(w.stamps)
}

func (w *SlidingWindow) prune(now time.Time) {
	cutoff := now.Add(-w.window)
	i := 0
	for i < len(w.stamps) && !w.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.stamps = append(w.stamps[:0], w.stamps[i:]...)
	}
}

// Limit returns the number of admissions allowed per window.
func (w *SlidingWindow) Limit() int {
	return w.limit
}
