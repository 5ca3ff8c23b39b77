package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origURL := os.Getenv("PROCESSOR_URL")
	defer os.Setenv("PROCESSOR_URL", origURL)

	os.Setenv("PROCESSOR_URL", "http://hvsr-processor:5000")
	os.Setenv("PROCESSOR_TIMEOUT_SEC", "30")
	os.Setenv("SESSION_MAX_ENTRIES", "16")
	os.Setenv("UPLOAD_MAX_BYTES", "1048576")
	os.Setenv("METRICS_ENABLED", "false")
	defer func() {
		os.Unsetenv("PROCESSOR_TIMEOUT_SEC")
		os.Unsetenv("SESSION_MAX_ENTRIES")
		os.Unsetenv("UPLOAD_MAX_BYTES")
		os.Unsetenv("METRICS_ENABLED")
	}()

	cfg := Load()

	assert.Equal(t, "http://hvsr-processor:5000", cfg.Processor.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Processor.Timeout)
	assert.Equal(t, 16, cfg.Session.MaxEntries)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxBytes)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PROCESSOR_URL", "PROCESSOR_TIMEOUT_SEC", "SESSION_TTL_SEC",
		"SESSION_MAX_ENTRIES", "UPLOAD_MAX_BYTES", "DEMO_DIR", "DEMO_FILE",
	} {
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "http://localhost:5000", cfg.Processor.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Processor.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 256, cfg.Session.MaxEntries)
	assert.Equal(t, int64(50<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, "./data", cfg.Demo.Dir)
	assert.Equal(t, "UT.STN11.A2_C150.miniseed", cfg.Demo.File)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvInt64(t *testing.T) {
	key := "TEST_INT64_VAR"

	os.Setenv(key, "5368709120")
	assert.Equal(t, int64(5368709120), getEnvInt64(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, int64(7), getEnvInt64(key, 7))

	os.Unsetenv(key)
	assert.Equal(t, int64(7), getEnvInt64(key, 7))
}
