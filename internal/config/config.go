package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var validEnvs = map[string]bool{
	"local": true,
	"alpha": true,
	"beta":  true,
	"prod":  true,
}

type Config struct {
	ServerPort string
	AppEnv     string
	LogLevel   string
	Backend    BackendConfig
	Session    SessionConfig
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q: %w", c.ServerPort, err)
	}
	if !validEnvs[c.AppEnv] {
		return fmt.Errorf("invalid APP_ENV %q: must be one of local, alpha, beta, prod", c.AppEnv)
	}
	if err := c.Backend.Validate(); err != nil {
		return err
	}
	if c.Session.TokenFile == "" {
		return fmt.Errorf("SESSION_TOKEN_FILE must not be empty")
	}
	return nil
}

// BackendConfig points at the external REST backend that owns all task,
// category and user data.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

func (b BackendConfig) Validate() error {
	u, err := url.Parse(b.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API_BASE_URL %q: %w", b.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API_BASE_URL %q: scheme must be http or https", b.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid API_BASE_URL %q: host is required", b.BaseURL)
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", b.Timeout)
	}
	return nil
}

type SessionConfig struct {
	// TokenFile is the single durable key: the file holding the bearer token
	// across restarts. Nothing else is persisted client-side.
	TokenFile string
}

func Load() Config {
	return Config{
		ServerPort: envOrDefault("SERVER_PORT", "3000"),
		AppEnv:     envOrDefault("APP_ENV", "local"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		Backend: BackendConfig{
			BaseURL: envOrDefault("API_BASE_URL", "http://localhost:8080"),
			Timeout: envDurationOrDefault("API_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			TokenFile: envOrDefault("SESSION_TOKEN_FILE", defaultTokenFile()),
		},
	}
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".todoapp-token"
	}
	return filepath.Join(dir, "todoapp", "token")
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
