package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIBaseURL     = "http://localhost:8080"
	defaultWebBaseURL     = "http://localhost:3000"
	defaultTimeoutSeconds = 150
)

// Config holds everything both binaries need: where the backend lives and
// where the two session storage scopes are kept on disk.
type Config struct {
	APIBaseURL     string `yaml:"api_base_url"`
	WebBaseURL     string `yaml:"web_base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	ConfigDir            string `yaml:"-"`
	DurableSessionPath   string `yaml:"-"`
	EphemeralSessionPath string `yaml:"-"`
}

// New loads config.yaml from dir (the user config dir when dir is empty),
// then applies environment overrides. A missing file is fine; defaults apply.
func New(dir string) (Config, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "cfdash")
	}

	cfg := Config{
		APIBaseURL:     defaultAPIBaseURL,
		WebBaseURL:     defaultWebBaseURL,
		TimeoutSeconds: defaultTimeoutSeconds,
	}

	payload, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err == nil {
		if err := yaml.Unmarshal(payload, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}

	cfg.APIBaseURL = getenv("CFDASH_API_URL", cfg.APIBaseURL)
	cfg.WebBaseURL = getenv("CFDASH_WEB_URL", cfg.WebBaseURL)
	cfg.TimeoutSeconds = getenvInt("CFDASH_TIMEOUT_SECONDS", cfg.TimeoutSeconds)
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}

	cfg.ConfigDir = dir
	cfg.DurableSessionPath = filepath.Join(dir, "session.json")
	cfg.EphemeralSessionPath = filepath.Join(os.TempDir(), "cfdash", "session.json")
	return cfg, nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
