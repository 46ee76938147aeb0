package llm

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"functions/internal/config"
)

// NewFactory picks the provider named by cfg. geminiAPIKey is the resolved
// credential; it is ignored for Bedrock, which signs with the execution role.
func NewFactory(cfg config.Config, awsCfg aws.Config, geminiAPIKey string) Factory {
	if cfg.Provider == config.ProviderBedrock {
		return NewBedrockFactory(awsCfg, cfg.BedrockModelID, cfg.BedrockMaxTokens)
	}
	return NewGeminiFactory(geminiAPIKey, cfg.Model)
}
