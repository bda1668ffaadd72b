package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL        = "http://127.0.0.1:8000"
	defaultTimeoutSeconds = 30

	envBaseURL = "STUDYHUB_API_URL"
	envDataDir = "STUDYHUB_DATA_DIR"
)

// Moderation selects the content classifier used before resource and
// motivation requests. Mode "keyword" is the built-in denylist; "plugin"
// delegates to the out-of-process classifier described by
// <data-dir>/plugins/moderation.json.
type Moderation struct {
	Mode string `yaml:"mode"`
}

type Config struct {
	DataDir               string     `yaml:"-"`
	APIBaseURL            string     `yaml:"api_base_url"`
	RequestTimeoutSeconds int        `yaml:"request_timeout_seconds"`
	Moderation            Moderation `yaml:"moderation"`
}

// Load resolves the data dir, applies config.yaml when present, then
// environment overrides. A missing config file is not an error.
func Load(dataDir string) (Config, error) {
	// Overrides may live in a .env next to the working directory.
	_ = godotenv.Load()

	if dataDir == "" {
		dataDir = os.Getenv(envDataDir)
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".studyhub")
	}

	cfg := Config{
		DataDir:               dataDir,
		APIBaseURL:            defaultBaseURL,
		RequestTimeoutSeconds: defaultTimeoutSeconds,
		Moderation:            Moderation{Mode: "keyword"},
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
		cfg.DataDir = dataDir
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.Moderation.Mode == "" {
		cfg.Moderation.Mode = "keyword"
	}
	return cfg, nil
}

func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c Config) CredentialsPath() string {
	return filepath.Join(c.DataDir, "credentials.json")
}

func (c Config) LedgerPath() string {
	return filepath.Join(c.DataDir, "progress.json")
}

func (c Config) HistoryDBPath() string {
	return filepath.Join(c.DataDir, "history.db")
}
