package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost:50051", cfg.LLM.Addr)

	assert.Equal(t, "default", cfg.Generation.LLMModel)
	assert.Equal(t, float32(0.3), cfg.Generation.Temperature)
	assert.Equal(t, 10, cfg.Generation.MaxIterations)
	assert.Equal(t, 30*time.Second, cfg.Generation.CallTimeout)
	assert.Equal(t, 90*time.Second, cfg.Generation.RoundBudget)
	assert.Equal(t, int64(4), cfg.Generation.MaxConcurrent)
	assert.Equal(t, int64(10*60*1000), cfg.Generation.TimeLimitMS)

	assert.Equal(t, 24*time.Hour, cfg.Retention.AbandonedAfter)
	assert.Equal(t, time.Hour, cfg.Retention.CleanupInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LLM_SERVICE_ADDR", "llm.internal:50051")
	t.Setenv("LLM_MODEL", "large-v2")
	t.Setenv("LLM_TEMPERATURE", "0.7")
	t.Setenv("GEN_MAX_ITERATIONS", "6")
	t.Setenv("GEN_CALL_TIMEOUT", "10s")
	t.Setenv("GEN_ROUND_BUDGET", "2m")
	t.Setenv("GEN_MAX_CONCURRENT", "2")
	t.Setenv("SESSION_TIME_LIMIT_MS", "300000")
	t.Setenv("RETENTION_ABANDONED_AFTER", "48h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "llm.internal:50051", cfg.LLM.Addr)
	assert.Equal(t, "large-v2", cfg.Generation.LLMModel)
	assert.InDelta(t, 0.7, float64(cfg.Generation.Temperature), 0.0001)
	assert.Equal(t, 6, cfg.Generation.MaxIterations)
	assert.Equal(t, 10*time.Second, cfg.Generation.CallTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Generation.RoundBudget)
	assert.Equal(t, int64(2), cfg.Generation.MaxConcurrent)
	assert.Equal(t, int64(300000), cfg.Generation.TimeLimitMS)
	assert.Equal(t, 48*time.Hour, cfg.Retention.AbandonedAfter)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("non-numeric int", func(t *testing.T) {
		t.Setenv("GEN_MAX_ITERATIONS", "lots")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEN_MAX_ITERATIONS")
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("GEN_ROUND_BUDGET", "90 seconds")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEN_ROUND_BUDGET")
	})

	t.Run("malformed float", func(t *testing.T) {
		t.Setenv("LLM_TEMPERATURE", "warm")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LLM_TEMPERATURE")
	})
}
