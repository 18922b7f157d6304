// Package config loads the application configuration from the environment.
// Database settings live in pkg/database; everything else is here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/skillforge/skillforge/pkg/services"
)

// Config is the umbrella configuration object for the service.
type Config struct {
	Server     ServerConfig
	LLM        LLMConfig
	Generation services.GenerationConfig
	Retention  RetentionConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// LLMConfig points at the inference sidecar.
type LLMConfig struct {
	Addr string
}

// RetentionConfig controls cleanup of abandoned sessions.
type RetentionConfig struct {
	// AbandonedAfter is how long a non-completed session may sit untouched
	// before the cleanup loop deletes it.
	AbandonedAfter time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// Load reads configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	gen := services.DefaultGenerationConfig()
	gen.LLMModel = getEnvOrDefault("LLM_MODEL", "default")

	var err error
	if gen.Temperature, err = envFloat32("LLM_TEMPERATURE", gen.Temperature); err != nil {
		return nil, err
	}
	if gen.MaxTokens, err = envInt32("LLM_MAX_TOKENS", gen.MaxTokens); err != nil {
		return nil, err
	}
	if gen.MaxIterations, err = envInt("GEN_MAX_ITERATIONS", gen.MaxIterations); err != nil {
		return nil, err
	}
	if gen.CallTimeout, err = envDuration("GEN_CALL_TIMEOUT", gen.CallTimeout); err != nil {
		return nil, err
	}
	if gen.RoundBudget, err = envDuration("GEN_ROUND_BUDGET", gen.RoundBudget); err != nil {
		return nil, err
	}
	if gen.MaxConcurrent, err = envInt64("GEN_MAX_CONCURRENT", gen.MaxConcurrent); err != nil {
		return nil, err
	}
	if gen.DefaultCount, err = envInt("GEN_DEFAULT_COUNT", gen.DefaultCount); err != nil {
		return nil, err
	}
	if gen.TimeLimitMS, err = envInt64("SESSION_TIME_LIMIT_MS", gen.TimeLimitMS); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:            getEnvOrDefault("HTTP_ADDR", ":8080"),
			ShutdownTimeout: 15 * time.Second,
		},
		LLM: LLMConfig{
			Addr: getEnvOrDefault("LLM_SERVICE_ADDR", "localhost:50051"),
		},
		Generation: gen,
		Retention: RetentionConfig{
			AbandonedAfter:  24 * time.Hour,
			CleanupInterval: time.Hour,
		},
	}
	if cfg.Retention.AbandonedAfter, err = envDuration("RETENTION_ABANDONED_AFTER", cfg.Retention.AbandonedAfter); err != nil {
		return nil, err
	}
	if cfg.Retention.CleanupInterval, err = envDuration("RETENTION_CLEANUP_INTERVAL", cfg.Retention.CleanupInterval); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, def int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envInt32(key string, def int32) (int32, error) {
	n, err := envInt(key, int(def))
	return int32(n), err
}

func envInt64(key string, def int64) (int64, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat32(key string, def float32) (float32, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return float32(f), nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
