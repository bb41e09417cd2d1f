// FILE: ecosnap/src/internal/server/ratelimit.go
package server

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter provides per-client rate limiting
type RateLimiter struct {
	clients         sync.Map // map[string]*clientLimiter
	requestsPerSec  float64
	burstSize       int
	cleanupInterval time.Duration
	done            chan struct{}
	stopOnce        sync.Once

	totalRejected atomic.Uint64
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// NewRateLimiter creates a limiter and starts its idle-client sweeper
func NewRateLimiter(requestsPerSec float64, burstSize int, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requestsPerSec:  requestsPerSec,
		burstSize:       burstSize,
		cleanupInterval: cleanupInterval,
		done:            make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// Allow reports whether the client may proceed now
func (rl *RateLimiter) Allow(clientIP string) bool {
	if rl.getLimiter(clientIP).Allow() {
		return true
	}
	rl.totalRejected.Add(1)
	return false
}

// getLimiter returns the rate limiter for a client
func (rl *RateLimiter) getLimiter(clientIP string) *rate.Limiter {
	now := time.Now().UnixNano()

	if val, ok := rl.clients.Load(clientIP); ok {
		client := val.(*clientLimiter)
		client.lastSeen.Store(now)
		return client.limiter
	}

	client := &clientLimiter{
		limiter: rate.NewLimiter(rate.Limit(rl.requestsPerSec), rl.burstSize),
	}
	client.lastSeen.Store(now)

	// Another request from the same client may have raced us here
	actual, _ := rl.clients.LoadOrStore(clientIP, client)
	return actual.(*clientLimiter).limiter
}

// cleanup removes old client limiters
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.removeOldClients(time.Now())
		}
	}
}

// removeOldClients removes limiters that haven't been seen for two cleanup intervals
func (rl *RateLimiter) removeOldClients(now time.Time) {
	threshold := now.Add(-rl.cleanupInterval * 2).UnixNano()

	rl.clients.Range(func(key, value any) bool {
		client := value.(*clientLimiter)
		if client.lastSeen.Load() < threshold {
			rl.clients.Delete(key)
		}
		return true
	})
}

// Stop shuts down the sweeper
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.done)
	})
}

// GetStats returns current rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]any {
	count := 0
	rl.clients.Range(func(_, _ any) bool {
		count++
		return true
	})
	return map[string]any{
		"active_clients":      count,
		"total_rejected":      rl.totalRejected.Load(),
		"requests_per_second": rl.requestsPerSec,
		"burst_size":          rl.burstSize,
	}
}
