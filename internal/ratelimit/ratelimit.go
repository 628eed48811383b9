// Package ratelimit provides admission control for inbound and outbound traffic.
//
// KeyedRateLimiter is a per-key token bucket used to protect the API from
// individual clients. SlidingWindow caps the total number of calls made to the
// content provider inside a trailing time window.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	idleTTL         = 10 * time.Minute
	cleanupInterval = time.Minute
)

type keyedEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter manages per-key rate limiting.
// Each unique key gets its own independent token bucket.
type KeyedRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyedEntry
	limit    rate.Limit
	burst    int

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a keyed rate limiter allowing rps requests per second with the given burst.
func New(rps float64, burst int) *KeyedRateLimiter {
	krl := &KeyedRateLimiter{
		limiters: make(map[string]*keyedEntry),
		limit:    rate.Limit(rps),
		burst:    burst,
		done:     make(chan struct{}),
	}

	go krl.cleanup()

	return krl
}

// NewPerInterval creates a keyed limiter from a "n per interval" budget.
func NewPerInterval(n int, interval time.Duration, burst int) *KeyedRateLimiter {
	return New(float64(n)/interval.Seconds(), burst)
}

// Allow reports whether a request for key may proceed now. It never blocks.
func (krl *KeyedRateLimiter) Allow(key string) bool {
	return krl.getLimiter(key).Allow()
}

func (krl *KeyedRateLimiter) getLimiter(key string) *rate.Limiter {
	krl.mu.Lock()
	defer krl.mu.Unlock()

	entry, ok := krl.limiters[key]
	if !ok {
		entry = &keyedEntry{limiter: rate.NewLimiter(krl.limit, krl.burst)}
		krl.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

// Len returns the number of tracked keys.
func (krl *KeyedRateLimiter) Len() int {
	krl.mu.Lock()
	defer krl.mu.Unlock()
	return len(krl.limiters)
}

// Stop shuts down the cleanup goroutine.
func (krl *KeyedRateLimiter) Stop() {
	krl.stopOnce.Do(func() {
		close(krl.done)
	})
}

// cleanup evicts keys that have been idle for longer than idleTTL.
func (krl *KeyedRateLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-krl.done:
			return
		case now := <-ticker.C:
			krl.evictIdle(now)
		}
	}
}

func (krl *KeyedRateLimiter) evictIdle(now time.Time) {
	krl.mu.Lock()
	defer krl.mu.Unlock()
	for key, entry := range krl.limiters {
		if now.Sub(entry.lastSeen) > idleTTL {
			delete(krl.limiters, key)
		}
	}
}
