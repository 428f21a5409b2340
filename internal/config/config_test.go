package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Env:                       "development",
		DatabaseURL:               "postgres://x",
		JWTSecret:                 "abcdefghijklmnopqrstuvwxyz123456",
		JWTTTL:                    time.Hour,
		AuthRateLimitPerMin:       30,
		APIRateLimitPerMin:        120,
		OTELExporterOTLPEndpoint:  "localhost:4317",
		OTELTraceSamplingRatio:    1.0,
		OTELMetricsExportInterval: 10 * time.Second,
		OTELLogLevel:              "info",
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsShortJWTSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = "short"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected JWT_SECRET error, got %v", err)
	}
}

func TestValidateRequiresRedisURLWhenDistributedLimiting(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimitRedis = true
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "REDIS_URL") {
		t.Fatalf("expected REDIS_URL error, got %v", err)
	}
}

func TestValidateRejectsHalfConfiguredBootstrapAdmin(t *testing.T) {
	cfg := validConfig()
	cfg.BootstrapAdminUsername = "admin"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "BOOTSTRAP_ADMIN") {
		t.Fatalf("expected bootstrap admin error, got %v", err)
	}
}
