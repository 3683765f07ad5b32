package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://mrgcar:mrgcar@db:5432/mrgcar?sslmode=disable")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("LOGIN_RATE_LIMIT_PER_MINUTE", "7")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.1")
	t.Setenv("MAX_PHOTO_UPLOAD_BYTES", "5242880")
	t.Setenv("PHOTO_URL_EXPIRY", "30m")

	cfgPath := writeConfig(t, `
port: "8080"
logLevel: "info"
databaseURL: "postgres://localhost:5432/mrgcar"
sessionSecret: "test-secret"
redisAddr: "localhost:6379"
loginRateLimitPerMinute: 10
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DatabaseURL != "postgres://mrgcar:mrgcar@db:5432/mrgcar?sslmode=disable" {
		t.Fatalf("databaseURL not overridden: %q", cfg.DatabaseURL)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("redisAddr not overridden: %q", cfg.RedisAddr)
	}
	if cfg.LoginRateLimitPerMinute != 7 {
		t.Fatalf("loginRateLimitPerMinute = %d, want 7", cfg.LoginRateLimitPerMinute)
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[0] != "10.0.0.0/8" {
		t.Fatalf("trustedProxies = %v", cfg.TrustedProxies)
	}
	if cfg.MaxPhotoUploadBytes != 5242880 {
		t.Fatalf("maxPhotoUploadBytes = %d, want 5242880", cfg.MaxPhotoUploadBytes)
	}
	if cfg.PhotoURLExpiry != "30m" {
		t.Fatalf("photoUrlExpiry = %q, want 30m", cfg.PhotoURLExpiry)
	}
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	cfgPath := writeConfig(t, `
port: "8080"
databaseURL: "postgres://localhost:5432/mrgcar"
`)
	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected error for missing sessionSecret")
	}
}

func TestParseSessionTTL(t *testing.T) {
	dur, err := ParseSessionTTL("12h")
	if err != nil {
		t.Fatalf("parse ttl: %v", err)
	}
	if dur != 12*time.Hour {
		t.Fatalf("ttl = %v, want 12h", dur)
	}
	if _, err := ParseSessionTTL("soon"); err == nil {
		t.Fatal("expected error for invalid duration")
	}
	if dur, err := ParseSessionTTL(""); err != nil || dur != 0 {
		t.Fatalf("empty ttl should be zero, got %v %v", dur, err)
	}
}
