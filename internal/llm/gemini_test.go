package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error

	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotContents = contents
	f.gotConfig = config
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func TestGeminiGenerator_GenerateText(t *testing.T) {
	models := &fakeModels{resp: textResponse("0303")}
	g := NewGeminiGenerator(models, "")

	out, err := g.GenerateText(context.Background(), "the prompt")
	require.NoError(t, err)

	assert.Equal(t, "0303", out)
	assert.Equal(t, DefaultGeminiModel, models.gotModel)
	assert.Nil(t, models.gotConfig)
	require.Len(t, models.gotContents, 1)
	require.Len(t, models.gotContents[0].Parts, 1)
	assert.Equal(t, "the prompt", models.gotContents[0].Parts[0].Text)
}

func TestGeminiGenerator_EmptyReply(t *testing.T) {
	g := NewGeminiGenerator(&fakeModels{resp: textResponse("")}, "gemini-2.5-flash")

	out, err := g.GenerateText(context.Background(), "no date here")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestGeminiGenerator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		models  *fakeModels
		wantErr string
	}{
		{
			name:    "transport error",
			models:  &fakeModels{err: errors.New("quota exceeded")},
			wantErr: "gemini GenerateContent: quota exceeded",
		},
		{
			name:    "nil response",
			models:  &fakeModels{},
			wantErr: "gemini returned no response",
		},
		{
			name:    "no candidates",
			models:  &fakeModels{resp: &genai.GenerateContentResponse{}},
			wantErr: "gemini returned no candidates",
		},
		{
			name: "blocked prompt",
			models: &fakeModels{resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			}},
			wantErr: "gemini blocked prompt: SAFETY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeminiGenerator(tt.models, "")
			_, err := g.GenerateText(context.Background(), "p")
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestNewGeminiFactory(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	t.Run("with key", func(t *testing.T) {
		gen, err := NewGeminiFactory("test-key", "")(context.Background())
		require.NoError(t, err)
		assert.IsType(t, &GeminiGenerator{}, gen)
	})

	t.Run("empty key fails on construction", func(t *testing.T) {
		_, err := NewGeminiFactory("", "")(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gemini client")
	})
}
