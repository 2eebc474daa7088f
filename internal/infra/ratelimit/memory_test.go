package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiterWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(MemoryLimiterConfig{Now: func() time.Time { return now }})

	for i := 0; i < 2; i++ {
		decision, err := limiter.Allow(context.Background(), "k", 2, time.Minute)
		if err != nil {
			t.Fatalf("Allow %d: %v", i, err)
		}
		if !decision.Allowed {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	decision, err := limiter.Allow(context.Background(), "k", 2, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if decision.Allowed {
		t.Fatal("third request in window should be denied")
	}
	if decision.Remaining != 0 {
		t.Fatalf("remaining = %d, want 0", decision.Remaining)
	}

	now = now.Add(2 * time.Minute)
	decision, err = limiter.Allow(context.Background(), "k", 2, time.Minute)
	if err != nil {
		t.Fatalf("Allow after window: %v", err)
	}
	if !decision.Allowed {
		t.Fatal("request in fresh window should be allowed")
	}
	if decision.Remaining != 1 {
		t.Fatalf("remaining = %d, want 1", decision.Remaining)
	}
}

func TestMemoryLimiterIsolatesKeys(t *testing.T) {
	limiter := NewMemoryLimiter(MemoryLimiterConfig{})

	if decision, _ := limiter.Allow(context.Background(), "a", 1, time.Minute); !decision.Allowed {
		t.Fatal("first request on key a should be allowed")
	}
	if decision, _ := limiter.Allow(context.Background(), "a", 1, time.Minute); decision.Allowed {
		t.Fatal("second request on key a should be denied")
	}
	if decision, _ := limiter.Allow(context.Background(), "b", 1, time.Minute); !decision.Allowed {
		t.Fatal("key b has its own window")
	}
}

func TestMemoryLimiterZeroLimit(t *testing.T) {
	limiter := NewMemoryLimiter(MemoryLimiterConfig{})

	decision, err := limiter.Allow(context.Background(), "k", 0, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if !decision.Allowed {
		t.Fatal("zero limit disables limiting")
	}
}

func TestMemoryLimiterEvictsExpiredAtCapacity(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(MemoryLimiterConfig{Now: func() time.Time { return now }, MaxKeys: 2})

	if _, err := limiter.Allow(context.Background(), "a", 1, time.Minute); err != nil {
		t.Fatalf("Allow a: %v", err)
	}
	if _, err := limiter.Allow(context.Background(), "b", 1, time.Minute); err != nil {
		t.Fatalf("Allow b: %v", err)
	}
	if _, err := limiter.Allow(context.Background(), "c", 1, time.Minute); err == nil {
		t.Fatal("expected capacity error while windows are live")
	}

	now = now.Add(2 * time.Minute)
	if _, err := limiter.Allow(context.Background(), "c", 1, time.Minute); err != nil {
		t.Fatalf("Allow c after expiry: %v", err)
	}
}
