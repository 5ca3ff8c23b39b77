package config

import (
	"os"
	"strconv"
	"time"
)

// ProcessorConfig holds the connection settings for the external HVSR
// processor service.
type ProcessorConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig bounds the in-memory session store. Records and
// calculations are evicted after TTL; MaxEntries caps how many of each
// may be held at once.
type SessionConfig struct {
	TTL        time.Duration
	MaxEntries int
}

// UploadConfig limits what the upload handler accepts.
type UploadConfig struct {
	MaxBytes int64
}

// DemoConfig points at the bundled demonstration record.
type DemoConfig struct {
	Dir  string
	File string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	AppHost        string
	Port           string
	LogLevel       string
	MetricsEnabled bool
	Processor      ProcessorConfig
	Session        SessionConfig
	Upload         UploadConfig
	Demo           DemoConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		Processor: ProcessorConfig{
			BaseURL: getEnv("PROCESSOR_URL", "http://localhost:5000"),
			Timeout: time.Duration(getEnvInt("PROCESSOR_TIMEOUT_SEC", 120)) * time.Second,
		},
		Session: SessionConfig{
			TTL:        time.Duration(getEnvInt("SESSION_TTL_SEC", 1800)) * time.Second,
			MaxEntries: getEnvInt("SESSION_MAX_ENTRIES", 256),
		},
		Upload: UploadConfig{
			MaxBytes: getEnvInt64("UPLOAD_MAX_BYTES", 50<<20),
		},
		Demo: DemoConfig{
			Dir:  getEnv("DEMO_DIR", "./data"),
			File: getEnv("DEMO_FILE", "UT.STN11.A2_C150.miniseed"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
