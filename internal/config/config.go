package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSourceURL is the built-in topic feed used when no URL has been
// configured or persisted yet.
const DefaultSourceURL = "https://raw.githubusercontent.com/quizterm/topics/main/topics.json"

const defaultFetchTimeout = 15 * time.Second

// Config holds quizterm's file-based configuration.
type Config struct {
	Source struct {
		URL     string `yaml:"url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"source"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{}
	cfg.Source.URL = DefaultSourceURL
	return cfg
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Source.URL == "" {
		cfg.Source.URL = DefaultSourceURL
	}
	return cfg, nil
}

// LoadOrDefault reads the config at path, falling back to the built-in
// defaults when the file does not exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	return cfg, err
}

// FetchTimeout parses the configured source timeout, or returns the
// built-in default when unset or unparsable.
func (c Config) FetchTimeout() time.Duration {
	if c.Source.Timeout == "" {
		return defaultFetchTimeout
	}
	if d, err := time.ParseDuration(c.Source.Timeout); err == nil {
		return d
	}
	return defaultFetchTimeout
}

// DefaultConfigPath resolves the config file path in priority order:
// 1. QUIZTERM_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/quizterm/config.yaml
// 3. ~/.config/quizterm/config.yaml
func DefaultConfigPath() (string, error) {
	if p := os.Getenv("QUIZTERM_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "quizterm", "config.yaml"), nil
}
