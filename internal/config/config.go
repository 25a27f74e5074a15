// ABOUTME: Bloom configuration with storage backend selection.
// ABOUTME: JSON config at the XDG path, .env loading, environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/bloom/internal/store"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config stores bloom tool configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default) or "memory".
	// The memory backend keeps nothing across runs and exists for tests
	// and throwaway sessions.
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for the badger store. Supports ~
	// expansion. Defaults to ~/.local/share/bloom.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel sets the logrus level ("debug", "info", "warn", "error").
	LogLevel string `json:"log_level,omitempty"`

	// GeminiAPIKey authenticates against the Gemini API. Usually set via
	// the GEMINI_API_KEY environment variable rather than on disk.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	// GeminiTimeoutSeconds bounds each generator call. Defaults to 30.
	GeminiTimeoutSeconds int `json:"gemini_timeout_seconds,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetGeminiTimeout returns the per-call generator timeout.
func (c *Config) GetGeminiTimeout() time.Duration {
	if c.GeminiTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.GeminiTimeoutSeconds) * time.Second
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "bloom")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates a Store implementation based on the configured backend.
func (c *Config) OpenStore() (store.Store, error) {
	switch c.GetBackend() {
	case "badger":
		return store.OpenBadger(c.GetDataDir())
	case "memory":
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// NewLogger returns a logrus logger at the configured level.
func (c *Config) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return log
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "bloom", "config.json")
}

// Load reads config from disk, then applies .env and environment
// overrides. A missing config file or .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(GetConfigPath())
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv lets the environment override file-based settings.
func applyEnv(cfg *Config) {
	if v := os.Getenv("BLOOM_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("BLOOM_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("BLOOM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
