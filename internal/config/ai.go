package config

import (
	"os"
	"strconv"

	"jeopardai/internal/model"
)

// AIConfig holds the semantic evaluator configuration. The judge model is
// served through an OpenAI-compatible endpoint (OpenRouter by default), so
// model selection is purely a configuration value.
type AIConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultAIConfig returns the evaluator configuration from the environment.
func DefaultAIConfig() *AIConfig {
	timeoutMS := 10000
	if v := os.Getenv("JUDGE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeoutMS = n
		}
	}
	return &AIConfig{
		APIKey:    os.Getenv("OPENROUTER_API_KEY"),
		BaseURL:   getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		Model:     getEnvOrDefault("JUDGE_MODEL", "google/gemini-flash-1.5"),
		TimeoutMS: timeoutMS,
	}
}

// Validate fails fast on a missing credential; the process must not begin
// serving without one.
func (c *AIConfig) Validate() error {
	if c.APIKey == "" {
		return model.NewConfigError("OPENROUTER_API_KEY is not set")
	}
	if c.Model == "" {
		return model.NewConfigError("judge model is not set")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
