// Package config loads application settings. Sources are layered: built-in
// defaults, then the YAML config file, then settings stored in the database,
// then BIZLENS_* environment variables. Later layers win; ApplyEnv is
// idempotent so it can be re-applied after stored settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bizlens/bizlens/internal/db"
	"github.com/bizlens/bizlens/internal/llm"
)

// Config holds all application settings.
type Config struct {
	DBPath   string     `yaml:"db_path"`
	Currency string     `yaml:"currency"`
	History  int        `yaml:"history"`
	LLM      llm.Config `yaml:"llm"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DBPath:   db.DefaultPath(),
		Currency: "RM",
		History:  20,
		LLM:      llm.DefaultConfig(),
	}
}

// ResolvePath returns the config file location: $BIZLENS_CONFIG if set,
// otherwise ~/.bizlens/config.yaml.
func ResolvePath() string {
	if p := os.Getenv("BIZLENS_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".bizlens", "config.yaml")
}

// LoadFile reads the YAML file at path over the defaults. A missing file is
// not an error; a malformed one is.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Load is the common startup path: defaults, then the resolved config file,
// then environment variables.
func Load() (Config, error) {
	cfg, err := LoadFile(ResolvePath())
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides fields from BIZLENS_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("BIZLENS_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("BIZLENS_CURRENCY"); v != "" {
		c.Currency = v
	}
	if v := os.Getenv("BIZLENS_HISTORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.History = n
		}
	}
	llm.ApplyEnv(&c.LLM)
}

// Stored settings keys accepted by ApplyStored. The settings command writes
// these to the database.
const (
	KeyCurrency    = "currency"
	KeyHistory     = "history"
	KeyLLMEnabled  = "llm.enabled"
	KeyLLMProvider = "llm.provider"
	KeyLLMEndpoint = "llm.endpoint"
	KeyLLMModel    = "llm.model"
	KeyLLMAPIKey   = "llm.api_key"
)

// ApplyStored overrides fields from database-stored settings.
func (c *Config) ApplyStored(values map[string]string) {
	for key, value := range values {
		switch key {
		case KeyCurrency:
			c.Currency = value
		case KeyHistory:
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				c.History = n
			}
		case KeyLLMEnabled:
			c.LLM.Enabled = value == "1" || strings.EqualFold(value, "true")
		case KeyLLMProvider:
			c.LLM.Provider = strings.ToLower(value)
		case KeyLLMEndpoint:
			c.LLM.Endpoint = value
		case KeyLLMModel:
			c.LLM.Model = value
		case KeyLLMAPIKey:
			c.LLM.APIKey = value
		}
	}
}
