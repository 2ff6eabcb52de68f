package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)

	narration, ok := cfg.Tasks[TaskNarration]
	assert.True(t, ok)
	assert.Equal(t, 0.4, narration.Temperature)
	assert.Equal(t, 512, narration.MaxTokens)

	summary, ok := cfg.Tasks[TaskSummary]
	assert.True(t, ok)
	assert.Equal(t, 768, summary.MaxTokens)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BIZLENS_LLM_ENABLED", "true")
	t.Setenv("BIZLENS_LLM_PROVIDER", "GEMINI")
	t.Setenv("BIZLENS_LLM_ENDPOINT", "http://example.test")
	t.Setenv("BIZLENS_LLM_MODEL", "gemini-2.0-flash")
	t.Setenv("BIZLENS_LLM_API_KEY", "secret")
	t.Setenv("BIZLENS_LLM_TIMEOUT_MS", "2500")
	t.Setenv("BIZLENS_LLM_MAX_RETRIES", "3")
	t.Setenv("BIZLENS_LLM_LOG_CALLS", "1")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "http://example.test", cfg.Endpoint)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_TaskTimeoutEnv(t *testing.T) {
	t.Setenv("BIZLENS_LLM_TIMEOUT_NARRATION", "1234")

	cfg := LoadConfig()

	assert.Equal(t, 1234, cfg.Tasks[TaskNarration].TimeoutMs)
	assert.Equal(t, 8000, cfg.Tasks[TaskSummary].TimeoutMs)
}

func TestLoadConfig_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("BIZLENS_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("BIZLENS_LLM_MAX_RETRIES", "-2")

	cfg := LoadConfig()

	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestTaskTimeout_Fallbacks(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 8*time.Second, cfg.TaskTimeout(TaskNarration))

	cfg.Tasks = map[TaskType]TaskConfig{
		TaskNarration: {Temperature: 0.4, MaxTokens: 512},
	}
	assert.Equal(t, 10*time.Second, cfg.TaskTimeout(TaskNarration))

	assert.Equal(t, 10*time.Second, cfg.TaskTimeout(TaskType("unknown")))

	cfg.TimeoutMs = 0
	assert.Equal(t, 10*time.Second, cfg.TaskTimeout(TaskNarration))
}
