package ratelimit

import (
	"testing"
	"time"
)

func TestLimiterAllowsUnderLimit(t *testing.T) {
	limiter := NewLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("client") {
			t.Errorf("Expected hit %d to be allowed", i+1)
		}
	}

	if limiter.Allow("client") {
		t.Error("Expected hit over the limit to be denied")
	}
}

func TestLimiterTracksKeysIndependently(t *testing.T) {
	limiter := NewLimiter(time.Minute, 1)

	if !limiter.Allow("a") {
		t.Error("Expected first hit for key a to be allowed")
	}
	if !limiter.Allow("b") {
		t.Error("Expected first hit for key b to be allowed")
	}
	if limiter.Allow("a") {
		t.Error("Expected second hit for key a to be denied")
	}
}

func TestLimiterWindowExpiry(t *testing.T) {
	limiter := NewLimiter(20*time.Millisecond, 1)

	if !limiter.Allow("client") {
		t.Error("Expected first hit to be allowed")
	}
	if limiter.Allow("client") {
		t.Error("Expected immediate second hit to be denied")
	}

	time.Sleep(30 * time.Millisecond)

	if !limiter.Allow("client") {
		t.Error("Expected hit after window expiry to be allowed")
	}
}
