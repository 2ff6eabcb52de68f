package llm

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// TaskType identifies which assistant task a generation call serves. Each
// task carries its own sampling and timeout settings.
type TaskType string

const (
	// TaskNarration produces the conversational reply for a chat turn.
	TaskNarration TaskType = "narration"

	// TaskSummary produces the dashboard business summary.
	TaskSummary TaskType = "summary"
)

// Provider names accepted in Config.Provider.
const (
	ProviderOllama = "ollama"
	ProviderGemini = "gemini"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	TimeoutMs   int     `yaml:"timeout_ms"`
}

// Config holds LLM provider settings.
type Config struct {
	Enabled    bool   `yaml:"enabled"`
	LogCalls   bool   `yaml:"log_calls"`
	Provider   string `yaml:"provider"`
	Endpoint   string `yaml:"endpoint"`
	Model      string `yaml:"model"`
	APIKey     string `yaml:"api_key"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	MaxRetries int    `yaml:"max_retries"`

	Tasks map[TaskType]TaskConfig `yaml:"tasks"`
}

// DefaultConfig returns the default LLM configuration. Generation is
// disabled until explicitly turned on; every reply then falls back to the
// canned narrator.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Provider:   ProviderOllama,
		Endpoint:   "",
		Model:      "",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskNarration: {
				Temperature: 0.4,
				MaxTokens:   512,
				TimeoutMs:   8000,
			},
			TaskSummary: {
				Temperature: 0.3,
				MaxTokens:   768,
				TimeoutMs:   8000,
			},
		},
	}
}

// LoadConfig builds the LLM configuration from defaults and BIZLENS_LLM_*
// environment variables.
func LoadConfig() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overrides cfg fields from BIZLENS_LLM_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("BIZLENS_LLM_ENABLED"); v != "" {
		cfg.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("BIZLENS_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("BIZLENS_LLM_PROVIDER"); v != "" {
		cfg.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("BIZLENS_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("BIZLENS_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BIZLENS_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("BIZLENS_LLM_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMs = ms
		}
	}
	if v := os.Getenv("BIZLENS_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	applyTaskTimeoutEnv(cfg, TaskNarration, "BIZLENS_LLM_TIMEOUT_NARRATION")
	applyTaskTimeoutEnv(cfg, TaskSummary, "BIZLENS_LLM_TIMEOUT_SUMMARY")
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envVar string) {
	v := os.Getenv(envVar)
	if v == "" {
		return
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = ms
	cfg.Tasks[task] = tc
}

// taskConfig resolves the effective settings for a task, falling back to
// the global timeout when the task has none.
func (c Config) taskConfig(task TaskType) TaskConfig {
	tc, ok := c.Tasks[task]
	if !ok {
		tc = TaskConfig{Temperature: 0.4, MaxTokens: 512}
	}
	if tc.TimeoutMs <= 0 {
		tc.TimeoutMs = c.TimeoutMs
	}
	if tc.TimeoutMs <= 0 {
		tc.TimeoutMs = 10000
	}
	return tc
}

// TaskTimeout returns the effective timeout for a task.
func (c Config) TaskTimeout(task TaskType) time.Duration {
	return time.Duration(c.taskConfig(task).TimeoutMs) * time.Millisecond
}
