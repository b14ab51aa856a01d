package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, name := range []string{
		"LODESTAR_LLM_ENABLED", "LODESTAR_LLM_LOG_CALLS", "LODESTAR_LLM_ENDPOINT",
		"LODESTAR_LLM_MODEL", "LODESTAR_LLM_TIMEOUT_MS", "LODESTAR_LLM_MAX_RETRIES",
		"LODESTAR_LLM_EXPLAIN_TIMEOUT_MS",
	} {
		t.Setenv(name, "")
	}

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LODESTAR_LLM_ENABLED", "true")
	t.Setenv("LODESTAR_LLM_LOG_CALLS", "1")
	t.Setenv("LODESTAR_LLM_ENDPOINT", "http://ollama.internal:11434")
	t.Setenv("LODESTAR_LLM_MODEL", "mistral")
	t.Setenv("LODESTAR_LLM_TIMEOUT_MS", "2500")
	t.Setenv("LODESTAR_LLM_MAX_RETRIES", "3")
	t.Setenv("LODESTAR_LLM_EXPLAIN_TIMEOUT_MS", "1500")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, "http://ollama.internal:11434", cfg.Endpoint)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 1500, cfg.TaskTimeout(TaskExplain))
}

func TestLoadConfig_IgnoresBadNumbers(t *testing.T) {
	t.Setenv("LODESTAR_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("LODESTAR_LLM_MAX_RETRIES", "-2")
	t.Setenv("LODESTAR_LLM_EXPLAIN_TIMEOUT_MS", "0")

	cfg := LoadConfig()
	assert.Equal(t, 10000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, 8000, cfg.TaskTimeout(TaskExplain))
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	tc := cfg.Tasks[TaskExplain]
	tc.TimeoutMs = 0
	cfg.Tasks[TaskExplain] = tc
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskExplain))

	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskType("unknown")))
}
