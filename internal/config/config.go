// Package config reads the function settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ProviderGemini  = "gemini"
	ProviderBedrock = "bedrock"
)

type Config struct {
	Provider string

	// GeminiAPIKey is optional. When both it and GeminiAPIKeyParam are empty
	// the function still starts and every model call fails.
	GeminiAPIKey      string
	GeminiAPIKeyParam string

	// Model overrides the Gemini model; empty means llm.DefaultGeminiModel.
	Model string

	BedrockModelID   string
	BedrockMaxTokens int

	Debug       bool
	ServiceName string
}

// env var bound to each setting
var envKeys = map[string]string{
	"provider":             "LLM_PROVIDER",
	"gemini_api_key":       "GOOGLE_GEN_AI_API_KEY",
	"gemini_api_key_param": "GOOGLE_GEN_AI_API_KEY_PARAM",
	"model":                "GEN_AI_MODEL",
	"bedrock_model_id":     "BEDROCK_MODEL_ID",
	"bedrock_max_tokens":   "BEDROCK_MAX_TOKENS",
	"debug":                "LOG_DEBUG",
	"service_name":         "SERVICE_NAME",
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("provider", ProviderGemini)
	v.SetDefault("bedrock_max_tokens", 64)
	v.SetDefault("debug", false)
	v.SetDefault("service_name", "date-from-text")

	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	cfg := Config{
		Provider:          strings.ToLower(strings.TrimSpace(v.GetString("provider"))),
		GeminiAPIKey:      v.GetString("gemini_api_key"),
		GeminiAPIKeyParam: strings.TrimSpace(v.GetString("gemini_api_key_param")),
		Model:             strings.TrimSpace(v.GetString("model")),
		BedrockModelID:    strings.TrimSpace(v.GetString("bedrock_model_id")),
		BedrockMaxTokens:  v.GetInt("bedrock_max_tokens"),
		Debug:             v.GetBool("debug"),
		ServiceName:       strings.TrimSpace(v.GetString("service_name")),
	}

	switch cfg.Provider {
	case ProviderGemini:
	case ProviderBedrock:
		if cfg.BedrockModelID == "" {
			return Config{}, errors.New("missing env BEDROCK_MODEL_ID")
		}
	default:
		return Config{}, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}

	if cfg.BedrockMaxTokens <= 0 {
		cfg.BedrockMaxTokens = 64
	}
	return cfg, nil
}
