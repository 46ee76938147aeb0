package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	bedrockruntime "github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

type BedrockClient interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockGenerator calls an Anthropic model hosted on Bedrock.
type BedrockGenerator struct {
	client    BedrockClient
	modelID   string
	maxTokens int
}

func NewBedrockGenerator(client BedrockClient, modelID string, maxTokens int) *BedrockGenerator {
	if maxTokens <= 0 {
		maxTokens = 64
	}
	return &BedrockGenerator{client: client, modelID: modelID, maxTokens: maxTokens}
}

// GenerateText uses the Anthropic-style payload Bedrock expects for Claude models
// and returns the concatenated text blocks untouched.
func (g *BedrockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(g.modelID) == "" {
		return "", errors.New("missing bedrock model id")
	}

	payload := map[string]any{
		"anthropic_version": "bedrock-2023-05-31",
		"max_tokens":        g.maxTokens,
		"temperature":       0.0,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": prompt},
				},
			},
		},
	}

	body, _ := json.Marshal(payload)

	out, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock InvokeModel: %w", err)
	}

	// { "content":[{"type":"text","text":"..."}], ... }
	var raw struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(out.Body, &raw); err != nil {
		return "", fmt.Errorf("bedrock response unmarshal: %w", err)
	}
	if raw.Content == nil {
		return "", errors.New("bedrock response has no content")
	}

	var text string
	for _, c := range raw.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}
	return text, nil
}

// NewBedrockFactory creates a bedrockruntime client per call, the same way the
// handler would build it inline.
func NewBedrockFactory(cfg aws.Config, modelID string, maxTokens int) Factory {
	return func(ctx context.Context) (Generator, error) {
		return NewBedrockGenerator(bedrockruntime.NewFromConfig(cfg), modelID, maxTokens), nil
	}
}
