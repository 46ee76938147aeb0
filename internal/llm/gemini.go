package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the model the date extraction prompt is tuned for.
const DefaultGeminiModel = "gemini-2.5-flash-lite"

// ContentGenerator is the subset of *genai.Models used here.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator sends the prompt as the whole user content, with no system
// instruction and no history.
type GeminiGenerator struct {
	models ContentGenerator
	model  string
}

func NewGeminiGenerator(models ContentGenerator, model string) *GeminiGenerator {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiGenerator{models: models, model: model}
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini GenerateContent: %w", err)
	}
	if resp == nil {
		return "", errors.New("gemini returned no response")
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("gemini blocked prompt: %s", resp.PromptFeedback.BlockReason)
		}
		return "", errors.New("gemini returned no candidates")
	}
	return resp.Text(), nil
}

// NewGeminiFactory returns a Factory creating a new Gemini API client per call.
// An empty apiKey is passed through; the client or the service rejects it.
func NewGeminiFactory(apiKey, model string) Factory {
	return func(ctx context.Context) (Generator, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return NewGeminiGenerator(client.Models, model), nil
	}
}
