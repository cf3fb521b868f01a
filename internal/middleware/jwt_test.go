package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"FITZEN_BACK-END/internal/config"
	"FITZEN_BACK-END/internal/utils"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	token, err := GenerateToken("u1", "", "+15550001", cfg)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ValidateToken(token, cfg)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Phone != "+15550001" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	other := &config.JWTConfig{Secret: "other", AccessTokenTTL: time.Hour}
	if _, err := ValidateToken(token, other); err == nil {
		t.Fatalf("expected failure with wrong secret")
	}

	expired := &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute}
	old, _ := GenerateToken("u1", "", "", expired)
	if _, err := ValidateToken(old, cfg); err == nil {
		t.Fatalf("expected failure for expired token")
	}
}

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := utils.GetUserIDFromContext(r.Context())
		w.Write([]byte(id))
	})
}

func TestAuthMiddlewareOptional(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	h := AuthMiddleware(echoUser(), cfg, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/goals/u1", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "" {
		t.Fatalf("anonymous request should pass: %d %q", rec.Code, rec.Body.String())
	}

	token, _ := GenerateToken("u42", "a@b.c", "", cfg)
	req := httptest.NewRequest(http.MethodGet, "/api/goals/u1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Body.String() != "u42" {
		t.Fatalf("expected claims in context, got %q", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/goals/u1", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token should be rejected, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/goals/u1", nil)
	req.Header.Set("Authorization", "Token abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad scheme should be rejected, got %d", rec.Code)
	}
}

func TestAuthMiddlewareRequired(t *testing.T) {
	t.Parallel()

	h := AuthMiddleware(echoUser(), testJWTConfig(), true)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/goals/u1", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	t.Parallel()

	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusTeapot || rec.Body.String() != "short and stout" {
		t.Fatalf("unexpected response: %d %q", rec.Code, rec.Body.String())
	}
}
