package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "guardianpro")
	t.Setenv("DB_NAME", "guardianpro")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port want 8080, got %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("env want development, got %q", cfg.Env)
	}
	if cfg.Email.FromAddress != "GuardianPro Security <noreply@guardianpro.com>" {
		t.Fatalf("unexpected from address %q", cfg.Email.FromAddress)
	}
	if cfg.Email.AdminAddress != "admin@guardianpro.com" {
		t.Fatalf("unexpected admin address %q", cfg.Email.AdminAddress)
	}
	if cfg.Captcha.Enabled {
		t.Fatalf("captcha should default off")
	}
	if cfg.Worker.PaymentExpiryInterval != time.Minute {
		t.Fatalf("expiry interval want 1m, got %v", cfg.Worker.PaymentExpiryInterval)
	}
	if cfg.Worker.PaymentMaxPendingAge != 30*time.Minute {
		t.Fatalf("max pending age want 30m, got %v", cfg.Worker.PaymentMaxPendingAge)
	}
}

func TestLoadMissingDB(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")

	if _, err := Load(); err == nil {
		t.Fatalf("want error when DB_HOST missing")
	}
}

func TestLoadMissingJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("want error when JWT_SECRET missing")
	}
}

func TestLoadBadDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PAYMENT_EXPIRY_INTERVAL", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("want error on unparseable duration")
	}
}
