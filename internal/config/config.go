package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	APIBaseURL   string
	Token        string
	Roles        []string
	HTTPTimeout  time.Duration
	LogLevel     string
	KafkaBrokers []string
	AuditTopic   string
	MetricsAddr  string

	FakeAPIAddr   string
	FakeAPISecret string
}

const (
	defaultBaseURL    = "http://localhost:8080"
	defaultTimeout    = 10 * time.Second
	defaultAuditTopic = "farmx_audit"
)

// LoadEnv reads the first .env found in the working directory or up to two
// parents, falling back to .example.env. A missing file is not an error: the
// process environment alone is a valid configuration.
func LoadEnv() string {
	wd, err := os.Getwd()
	if err != nil {
		zap.L().Warn("Error getting working directory", zap.Error(err))
		return ""
	}

	possibleDirs := []string{
		wd,
		filepath.Join(wd, ".."),
		filepath.Join(wd, "..", ".."),
	}

	for _, name := range []string{".env", ".example.env"} {
		for _, dir := range possibleDirs {
			envPath := filepath.Join(dir, name)
			if err := godotenv.Load(envPath); err == nil {
				return envPath
			}
		}
	}
	return ""
}

// FromEnv builds a Config from the process environment.
func FromEnv() *Config {
	return &Config{
		APIBaseURL:    strings.TrimRight(getEnv("FARMX_API_BASE_URL", getEnv("EXPO_PUBLIC_API_BASE_URL", defaultBaseURL)), "/"),
		Token:         getEnv("FARMX_TOKEN", ""),
		Roles:         splitList(getEnv("FARMX_ROLES", "")),
		HTTPTimeout:   getDuration("FARMX_HTTP_TIMEOUT", defaultTimeout),
		LogLevel:      getEnv("FARMX_LOG_LEVEL", "info"),
		KafkaBrokers:  splitList(getEnv("FARMX_KAFKA_BROKERS", "")),
		AuditTopic:    getEnv("FARMX_AUDIT_TOPIC", defaultAuditTopic),
		MetricsAddr:   getEnv("FARMX_METRICS_ADDR", ""),
		FakeAPIAddr:   getEnv("FAKEAPI_ADDR", ":8080"),
		FakeAPISecret: getEnv("FAKEAPI_SECRET", "farmx-dev-secret"),
	}
}

// Load combines LoadEnv and FromEnv.
func Load() *Config {
	if path := LoadEnv(); path != "" {
		zap.L().Debug("Loaded environment variables", zap.String("path", path))
	}
	return FromEnv()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		zap.L().Warn("Ignoring invalid duration", zap.String("key", key), zap.String("value", raw))
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
