package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv              string
	Port                string
	DatabaseURL         string
	JWTSecret           string
	GoogleClientID      string
	GoogleIssuer        string
	GeoIPDBPath         string
	StoragePath         string
	FeaturedCatalogPath string
	CORSAllowedOrigins  []string
	PulseMinGapSeconds  int
	PulseMaxGapSeconds  int
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
	RateLimitPerMin     int
	WorkerPollInterval  time.Duration
	RollupInterval      time.Duration
	DBMaxConns          int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		GoogleClientID:      os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleIssuer:        getEnv("GOOGLE_ISSUER", "https://accounts.google.com"),
		GeoIPDBPath:         os.Getenv("GEOIP_DB_PATH"),
		StoragePath:         getEnv("STORAGE_PATH", "./storage"),
		FeaturedCatalogPath: getEnv("FEATURED_CATALOG_PATH", "./featured.yaml"),
		CORSAllowedOrigins:  splitEnvList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		PulseMinGapSeconds:  getEnvInt("PULSE_MIN_GAP_SECONDS", 1),
		PulseMaxGapSeconds:  getEnvInt("PULSE_MAX_GAP_SECONDS", 60),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:     getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		WorkerPollInterval:  time.Second * time.Duration(getEnvInt("WORKER_POLL_INTERVAL_SECONDS", 2)),
		RollupInterval:      time.Second * time.Duration(getEnvInt("ROLLUP_INTERVAL_SECONDS", 300)),
		DBMaxConns:          getEnvInt("DB_MAX_CONNS", 10),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// The gap bounds are part of the counter's deterministic contract.
	if cfg.PulseMinGapSeconds < 1 {
		return nil, fmt.Errorf("PULSE_MIN_GAP_SECONDS must be at least 1")
	}
	if cfg.PulseMaxGapSeconds < cfg.PulseMinGapSeconds {
		return nil, fmt.Errorf("PULSE_MAX_GAP_SECONDS must be >= PULSE_MIN_GAP_SECONDS")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitEnvList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
