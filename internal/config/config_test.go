package config

import (
	"reflect"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "API_PREFIX", "DATA_DIR", "GEMINI_MODEL", "AI_MAX_TOKENS", "AUTH_REQUIRED", "OTP_MOCK", "SERVER_WRITE_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.Server.Port != "5001" || cfg.Server.APIPrefix != "/api" {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Server.WriteTimeout != 60*time.Second {
		t.Fatalf("unexpected write timeout %v", cfg.Server.WriteTimeout)
	}
	if cfg.Storage.DataDir != "./data" {
		t.Fatalf("unexpected data dir %q", cfg.Storage.DataDir)
	}
	if cfg.AI.Model != "gemini-1.5-flash" || cfg.AI.MaxTokens != 2000 || cfg.AI.PlanMaxTokens != 3000 {
		t.Fatalf("unexpected AI defaults: %+v", cfg.AI)
	}
	if cfg.Auth.Required || !cfg.Auth.OTPMock {
		t.Fatalf("unexpected auth defaults: %+v", cfg.Auth)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DATA_DIR", "/tmp/fitzen")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("JWT_ACCESS_TTL", "1h")
	t.Setenv("AI_PLAN_MAX_TOKENS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:8081, https://app.fitzen.io ,")

	cfg := FromEnv()
	if cfg.Server.Port != "9000" || cfg.Storage.DataDir != "/tmp/fitzen" {
		t.Fatalf("overrides not applied: %+v %+v", cfg.Server, cfg.Storage)
	}
	if !cfg.Auth.Required || cfg.JWT.AccessTokenTTL != time.Hour {
		t.Fatalf("unexpected auth/jwt: %+v %+v", cfg.Auth, cfg.JWT)
	}
	if cfg.AI.PlanMaxTokens != 3000 {
		t.Fatalf("invalid int should fall back to default, got %d", cfg.AI.PlanMaxTokens)
	}
	want := []string{"http://localhost:8081", "https://app.fitzen.io"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("origins: want %v, got %v", want, cfg.CORS.AllowedOrigins)
	}
}

func TestValidateRejectsBadPrefix(t *testing.T) {
	cfg := FromEnv()
	cfg.Server.APIPrefix = "api"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for prefix without slash")
	}

	cfg = FromEnv()
	cfg.Storage.DataDir = " "
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for blank data dir")
	}
}
