package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileEnv names the optional YAML file layered under the environment.
const FileEnv = "BFHL_CONFIG"

type Config struct {
	Port          string `koanf:"port"`
	OfficialEmail string `koanf:"official_email"`

	GeminiAPIKey string `koanf:"gemini_api_key"`
	GeminiModel  string `koanf:"gemini_model"`

	LogLevel string `koanf:"log_level"`

	MaxFibonacciTerms int           `koanf:"max_fibonacci_terms"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

// envKeys maps accepted environment variables to config keys.
var envKeys = map[string]string{
	"PORT":                "port",
	"OFFICIAL_EMAIL":      "official_email",
	"GEMINI_API_KEY":      "gemini_api_key",
	"GEMINI_MODEL":        "gemini_model",
	"LOG_LEVEL":           "log_level",
	"MAX_FIBONACCI_TERMS": "max_fibonacci_terms",
	"MAX_BODY_BYTES":      "max_body_bytes",
	"SHUTDOWN_TIMEOUT":    "shutdown_timeout",
}

func New() *Config {
	return &Config{
		Port:              "3000",
		GeminiModel:       "gemini-2.5-flash",
		LogLevel:          "info",
		MaxFibonacciTerms: 10_000,
		MaxBodyBytes:      1 << 20,
		ShutdownTimeout:   30 * time.Second,
	}
}

// Load layers defaults, the optional YAML file from BFHL_CONFIG and the
// environment, in that order of precedence (low -> high).
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := strings.TrimSpace(os.Getenv(FileEnv)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Empty variables count as unset, like the defaults.
	envProvider := env.ProviderWithValue("", ".", func(k, v string) (string, any) {
		if strings.TrimSpace(v) == "" {
			return "", nil
		}
		return envKeys[k], v
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Port = strings.TrimSpace(c.Port)
	c.OfficialEmail = strings.TrimSpace(c.OfficialEmail)
	c.GeminiAPIKey = strings.TrimSpace(c.GeminiAPIKey)
	c.GeminiModel = strings.TrimSpace(c.GeminiModel)
}

func (c *Config) Validate() error {
	switch {
	case c.Port == "":
		return errors.New("port must not be empty")
	case c.GeminiModel == "":
		return errors.New("gemini_model must not be empty")
	case c.MaxFibonacciTerms <= 0:
		return errors.New("max_fibonacci_terms must be positive")
	case c.MaxBodyBytes <= 0:
		return errors.New("max_body_bytes must be positive")
	case c.ShutdownTimeout <= 0:
		return errors.New("shutdown_timeout must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.Port }
