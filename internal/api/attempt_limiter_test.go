package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterBlocksAfterLimitInsideWindow(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter(2, time.Hour)
	key := "10.0.0.7"
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	limiter.recordFailure(key, now.Add(-2*time.Hour))
	limiter.recordFailure(key, now.Add(-10*time.Minute))
	if limiter.blocked(key, now) {
		t.Fatal("expected the expired failure to be pruned")
	}

	limiter.recordFailure(key, now.Add(-time.Minute))
	if !limiter.blocked(key, now) {
		t.Fatal("expected two recent failures to reach the limit")
	}
	if limiter.blocked("10.0.0.8", now) {
		t.Fatal("expected other clients to be unaffected")
	}

	limiter.clear(key)
	if limiter.blocked(key, now) {
		t.Fatal("expected no failures after clear")
	}
}
