package ratelimit

import (
	"testing"
	"time"
)

func TestLimiterAllowsWithinLimit(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("fourth request should be rejected")
	}
}

func TestLimiterIsolatesKeys(t *testing.T) {
	l := New(1, time.Minute)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first key should be allowed")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("second key should have its own counter")
	}
	if l.Allow("10.0.0.1") {
		t.Error("first key is over its limit")
	}
}

func TestLimiterWindowExpiry(t *testing.T) {
	l := New(1, 20*time.Millisecond)

	if !l.Allow("ip") {
		t.Fatal("first request should pass")
	}
	if l.Allow("ip") {
		t.Fatal("second request should be rejected")
	}

	time.Sleep(50 * time.Millisecond)
	if !l.Allow("ip") {
		t.Error("counter should reset after the window expires")
	}
}

func TestNilAndDisabledLimiterAlwaysAllow(t *testing.T) {
	var nilLimiter *Limiter
	if !nilLimiter.Allow("ip") {
		t.Error("nil limiter must allow everything")
	}

	disabled := New(0, time.Minute)
	for i := 0; i < 100; i++ {
		if !disabled.Allow("ip") {
			t.Fatal("limit 0 disables throttling")
		}
	}
}
