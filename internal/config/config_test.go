package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dailydo")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected AppEnv 'development', got %s", cfg.AppEnv)
	}
	if cfg.AppPort != 8080 {
		t.Errorf("expected AppPort 8080, got %d", cfg.AppPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel 'info', got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected LogFormat 'json', got %s", cfg.LogFormat)
	}
	if cfg.SessionCookie != "dailydo_session" {
		t.Errorf("expected SessionCookie 'dailydo_session', got %s", cfg.SessionCookie)
	}
	if cfg.SessionTTL != 168*time.Hour {
		t.Errorf("expected SessionTTL 168h, got %s", cfg.SessionTTL)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected ShutdownTimeout 30s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.MaxRequestBodySize != 1048576 {
		t.Errorf("expected MaxRequestBodySize 1MB, got %d", cfg.MaxRequestBodySize)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when DATABASE_URL is missing")
	}
}

func TestLoad_MissingRedisURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/dailydo")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when REDIS_URL is missing")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SESSION_COOKIE", "sid")
	t.Setenv("SESSION_TTL", "24h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("expected IsProduction to be true")
	}
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to be false")
	}
	if cfg.AppPort != 9090 {
		t.Errorf("expected AppPort 9090, got %d", cfg.AppPort)
	}
	if cfg.SessionCookie != "sid" {
		t.Errorf("expected SessionCookie 'sid', got %s", cfg.SessionCookie)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected SessionTTL 24h, got %s", cfg.SessionTTL)
	}
}

func TestGetCORSAllowedOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "https://example.com", want: []string{"https://example.com"}},
		{
			name: "multiple with spaces",
			raw:  " https://example.com , https://app.example.com ",
			want: []string{"https://example.com", "https://app.example.com"},
		},
		{name: "trailing comma", raw: "https://example.com,", want: []string{"https://example.com"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &Config{CORSAllowedOrigins: tt.raw}
			got := cfg.GetCORSAllowedOrigins()

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d origins, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("origin %d: expected %s, got %s", i, tt.want[i], got[i])
				}
			}
		})
	}
}
