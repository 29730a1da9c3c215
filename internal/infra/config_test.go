package infra

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("PULSE_MIN_GAP_SECONDS", "")
	t.Setenv("PULSE_MAX_GAP_SECONDS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8080")
	}
	if cfg.PulseMinGapSeconds != 1 || cfg.PulseMaxGapSeconds != 60 {
		t.Fatalf("pulse gap defaults mismatch: got [%d,%d] want [1,60]", cfg.PulseMinGapSeconds, cfg.PulseMaxGapSeconds)
	}
	if cfg.FeaturedCatalogPath != "./featured.yaml" {
		t.Fatalf("FeaturedCatalogPath mismatch: got %q", cfg.FeaturedCatalogPath)
	}
	if cfg.WorkerPollInterval != 2*time.Second {
		t.Fatalf("WorkerPollInterval mismatch: got %v", cfg.WorkerPollInterval)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("CORSAllowedOrigins mismatch: %#v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("LoadConfig expected error for missing DATABASE_URL")
	}
}

func TestLoadConfigRejectsBadPulseGaps(t *testing.T) {
	tests := []struct {
		name string
		min  string
		max  string
	}{
		{name: "zero min", min: "0", max: "60"},
		{name: "negative min", min: "-3", max: "60"},
		{name: "max below min", min: "10", max: "9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("PULSE_MIN_GAP_SECONDS", tc.min)
			t.Setenv("PULSE_MAX_GAP_SECONDS", tc.max)
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("LoadConfig expected error for gaps [%s,%s]", tc.min, tc.max)
			}
		})
	}
}

func TestLoadConfigParsesOriginList(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, http://localhost:5173 ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []string{"https://app.example.com", "http://localhost:5173"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("CORSAllowedOrigins mismatch: got %#v want %#v", cfg.CORSAllowedOrigins, want)
	}
	for i, origin := range want {
		if cfg.CORSAllowedOrigins[i] != origin {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], origin)
		}
	}
}
