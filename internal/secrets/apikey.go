// Package secrets resolves credentials at cold start.
package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"functions/internal/config"
)

type ParameterClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// ResolveGeminiAPIKey returns the Gemini key from the environment, falling back
// to the SecureString parameter named by GOOGLE_GEN_AI_API_KEY_PARAM.
// It never fails: a missing key resolves to "" and the model call rejects it.
func ResolveGeminiAPIKey(ctx context.Context, cfg config.Config, params ParameterClient, log *zap.Logger) string {
	if cfg.GeminiAPIKey != "" {
		return cfg.GeminiAPIKey
	}
	if cfg.GeminiAPIKeyParam == "" || params == nil {
		log.Warn("gemini api key not configured, model calls will be rejected")
		return ""
	}

	key, err := LoadParameter(ctx, params, cfg.GeminiAPIKeyParam)
	if err != nil {
		log.Warn("gemini api key lookup failed, model calls will be rejected",
			zap.String("parameter", cfg.GeminiAPIKeyParam),
			zap.Error(err),
		)
		return ""
	}
	return key
}

// LoadParameter reads and decrypts one SSM parameter.
func LoadParameter(ctx context.Context, params ParameterClient, name string) (string, error) {
	out, err := params.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("ssm GetParameter %s: %w", name, err)
	}
	if out.Parameter == nil {
		return "", fmt.Errorf("ssm parameter %s has no value", name)
	}
	return aws.ToString(out.Parameter.Value), nil
}
