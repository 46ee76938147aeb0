// Package app wires configuration, credentials and handlers for a cold start.
package app

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"functions/internal/config"
	"functions/internal/handlers"
	"functions/internal/llm"
	"functions/internal/logger"
	"functions/internal/secrets"
)

type App struct {
	Config config.Config
	Log    *zap.Logger
	Date   *handlers.DateHandler
	Health *handlers.HealthHandler
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Debug); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log := logger.Named(cfg.ServiceName)

	// Uses the Lambda execution role creds automatically
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return Build(ctx, cfg, awsCfg, paramClient(cfg, awsCfg), log), nil
}

// Build assembles the handlers from already loaded dependencies.
func Build(ctx context.Context, cfg config.Config, awsCfg aws.Config, params secrets.ParameterClient, log *zap.Logger) *App {
	var apiKey string
	if cfg.Provider == config.ProviderGemini {
		apiKey = secrets.ResolveGeminiAPIKey(ctx, cfg, params, log)
	}

	log.Info("function configured",
		zap.String("provider", cfg.Provider),
		zap.String("model", modelName(cfg)),
	)

	return &App{
		Config: cfg,
		Log:    log,
		Date:   handlers.NewDateHandler(llm.NewFactory(cfg, awsCfg, apiKey), log.Named("date")),
		Health: handlers.NewHealthHandler(cfg.ServiceName),
	}
}

func paramClient(cfg config.Config, awsCfg aws.Config) secrets.ParameterClient {
	if cfg.GeminiAPIKeyParam == "" {
		return nil
	}
	return ssm.NewFromConfig(awsCfg)
}

func modelName(cfg config.Config) string {
	switch {
	case cfg.Provider == config.ProviderBedrock:
		return cfg.BedrockModelID
	case cfg.Model != "":
		return cfg.Model
	default:
		return llm.DefaultGeminiModel
	}
}
