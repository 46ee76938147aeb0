package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"functions/internal/config"
)

type countingSSM struct{ calls int }

func (c *countingSSM) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	c.calls++
	return &ssm.GetParameterOutput{}, nil
}

func TestBuild_GeminiWithoutKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	core, logs := observer.New(zapcore.InfoLevel)
	cfg := config.Config{Provider: config.ProviderGemini, ServiceName: "date-from-text"}

	a := Build(context.Background(), cfg, aws.Config{}, nil, zap.New(core))
	require.NotNil(t, a.Date)
	require.NotNil(t, a.Health)

	entries := logs.FilterMessage("function configured").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "gemini-2.5-flash-lite", entries[0].ContextMap()["model"])

	// startup succeeds; the missing key only surfaces per request
	resp, err := a.Date.Handle(context.Background(), events.APIGatewayV2HTTPRequest{
		QueryStringParameters: map[string]string{"text": "March 3rd"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Failed to process request"}`, resp.Body)
}

func TestBuild_BedrockSkipsKeyLookup(t *testing.T) {
	params := &countingSSM{}
	cfg := config.Config{
		Provider:          config.ProviderBedrock,
		BedrockModelID:    "anthropic.claude-3-haiku-20240307-v1:0",
		GeminiAPIKeyParam: "/unused",
	}

	a := Build(context.Background(), cfg, aws.Config{Region: "us-east-1"}, params, zap.NewNop())
	assert.NotNil(t, a.Date)
	assert.Zero(t, params.calls)
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash-lite", modelName(config.Config{Provider: config.ProviderGemini}))
	assert.Equal(t, "gemini-2.5-pro", modelName(config.Config{Provider: config.ProviderGemini, Model: "gemini-2.5-pro"}))
	assert.Equal(t, "m", modelName(config.Config{Provider: config.ProviderBedrock, BedrockModelID: "m"}))
}
