package middleware

import "testing"

func TestLoginRateLimiterAllowsFive(t *testing.T) {
	rl := NewLoginRateLimiter()

	for i := 0; i < 5; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("sixth attempt should be blocked")
	}
}

func TestLoginRateLimiterPerIP(t *testing.T) {
	rl := NewLoginRateLimiter()

	for i := 0; i < 5; i++ {
		rl.Allow("10.0.0.1")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatalf("other IP should not be affected")
	}
}

func TestLoginRateLimiterReset(t *testing.T) {
	rl := NewLoginRateLimiter()

	for i := 0; i < 5; i++ {
		rl.Allow("10.0.0.1")
	}
	rl.Reset("10.0.0.1")
	if !rl.Allow("10.0.0.1") {
		t.Fatalf("attempt after reset should be allowed")
	}
}
