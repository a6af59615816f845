package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"
	"gopkg.in/yaml.v3"
)

const devJWTSecret = "petadopt-dev-secret"

// Config carries the settings of the API, worker and purger processes.
// Values come from an optional YAML file (CONFIG_FILE) and are then
// overridden by environment variables.
type Config struct {
	Port                       string        `yaml:"port"`
	Environment                string        `yaml:"environment"`
	LogLevel                   string        `yaml:"log_level"`
	OTLPEndpoint               string        `yaml:"otlp_endpoint"`
	PostgresDSN                string        `yaml:"postgres_dsn"`
	JWTSecret                  string        `yaml:"jwt_secret"`
	SessionTTL                 time.Duration `yaml:"session_ttl"`
	StaffEmails                []string      `yaml:"staff_emails"`
	TemporalAddress            string        `yaml:"temporal_address"`
	TemporalNamespace          string        `yaml:"temporal_namespace"`
	TemporalDisabled           bool          `yaml:"temporal_disabled"`
	SessionPurgeIntervalMinute int           `yaml:"session_purge_interval_minutes"`
}

// LoadConfig reads the optional config file and environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{}
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	overrideString(&cfg.Port, "PORT")
	overrideString(&cfg.Environment, "ENVIRONMENT")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	overrideString(&cfg.OTLPEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
	overrideString(&cfg.PostgresDSN, "POSTGRES_DSN")
	overrideString(&cfg.JWTSecret, "JWT_SECRET")
	overrideString(&cfg.TemporalAddress, "TEMPORAL_ADDRESS")
	overrideString(&cfg.TemporalNamespace, "TEMPORAL_NAMESPACE")
	if raw := strings.TrimSpace(os.Getenv("TEMPORAL_DISABLED")); raw != "" {
		cfg.TemporalDisabled = isTruthy(raw)
	}
	if raw := strings.TrimSpace(os.Getenv("STAFF_EMAILS")); raw != "" {
		cfg.StaffEmails = splitList(raw)
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS")); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be a positive integer")
		}
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_PURGE_INTERVAL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("SESSION_PURGE_INTERVAL_MINUTES must be a positive integer")
		}
		cfg.SessionPurgeIntervalMinute = minutes
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = "local"
	}
	if cfg.TemporalAddress == "" {
		cfg.TemporalAddress = client.DefaultHostPort
	}
	if cfg.TemporalNamespace == "" {
		cfg.TemporalNamespace = client.DefaultNamespace
	}
	if cfg.SessionTTL < 0 {
		return Config{}, fmt.Errorf("session_ttl must not be negative")
	}
	if cfg.JWTSecret == "" {
		if !cfg.IsLocal() {
			return Config{}, fmt.Errorf("JWT_SECRET is required outside the local environment")
		}
		cfg.JWTSecret = devJWTSecret
	}
	return cfg, nil
}

// IsLocal reports whether the process runs on a developer machine.
func (c Config) IsLocal() bool {
	return c.Environment == "local" || c.Environment == "development"
}

func overrideString(target *string, key string) {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		*target = val
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
