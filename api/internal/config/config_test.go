package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(FileEnv, "")
	for name := range envKeys {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "", cfg.OfficialEmail)
	assert.Equal(t, "", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10_000, cfg.MaxFibonacciTerms)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("OFFICIAL_EMAIL", " ops@example.com ")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-pro")
	t.Setenv("MAX_FIBONACCI_TERMS", "50")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "ops@example.com", cfg.OfficialEmail)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-pro", cfg.GeminiModel)
	assert.Equal(t, 50, cfg.MaxFibonacciTerms)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFileUnderEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bfhl.yaml")
	yml := "port: \"9000\"\nofficial_email: file@example.com\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	t.Setenv(FileEnv, path)
	t.Setenv("OFFICIAL_EMAIL", "env@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "env@example.com", cfg.OfficialEmail)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(FileEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty port":     func(c *Config) { c.Port = "" },
		"empty model":    func(c *Config) { c.GeminiModel = "" },
		"zero fib terms": func(c *Config) { c.MaxFibonacciTerms = 0 },
		"negative body":  func(c *Config) { c.MaxBodyBytes = -1 },
		"zero shutdown":  func(c *Config) { c.ShutdownTimeout = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := New()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
	assert.NoError(t, New().Validate())
}

func TestEmptyEnvKeepsDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_MODEL", "  ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
}
