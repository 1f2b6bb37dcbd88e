package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	loginFailureLimit  = 5
	loginFailureWindow = 15 * time.Minute
)

// attemptLimiter counts failed logins per client and email inside a sliding
// window. State is process-local and lost on restart.
type attemptLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	failures map[string][]time.Time
}

func newAttemptLimiter(limit int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		limit:    limit,
		window:   window,
		failures: make(map[string][]time.Time),
	}
}

func (limiter *attemptLimiter) blocked(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	return len(limiter.recentLocked(key, now)) >= limiter.limit
}

func (limiter *attemptLimiter) recordFailure(key string, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	limiter.failures[key] = append(limiter.recentLocked(key, now), now)
}

func (limiter *attemptLimiter) clear(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

func (limiter *attemptLimiter) recentLocked(key string, now time.Time) []time.Time {
	threshold := now.Add(-limiter.window)
	kept := limiter.failures[key][:0]
	for _, failedAt := range limiter.failures[key] {
		if failedAt.After(threshold) {
			kept = append(kept, failedAt)
		}
	}
	if len(kept) == 0 {
		delete(limiter.failures, key)
		return nil
	}
	limiter.failures[key] = kept
	return kept
}

func loginLimiterKey(c *fiber.Ctx, email string) string {
	client := strings.TrimSpace(c.IP())
	if client == "" {
		client = "unknown"
	}
	return client + "|" + strings.ToLower(strings.TrimSpace(email))
}
