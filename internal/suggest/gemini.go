package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.5-flash"

// Gemini implements Service using the official Google Gemini SDK.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a Gemini-backed suggestion service.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required for gemini")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	var (
		temperature     float32 = 0.7
		topP            float32 = 1
		topK            int32   = 32
		maxOutputTokens int32   = 150
	)
	model.Temperature = &temperature
	model.TopP = &topP
	model.TopK = &topK
	model.MaxOutputTokens = &maxOutputTokens

	return &Gemini{client: client, model: model}, nil
}

// Close closes the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Suggest asks the model for a short encouraging message with two or three
// summit topic suggestions tailored to the registrant.
func (g *Gemini) Suggest(ctx context.Context, profession, challenges string) (string, error) {
	prompt := fmt.Sprintf(`An attendee at DS Digital Solutions Connect has registered with the following details:
- Profession: %s
- Key Business Challenge: %q

Based on this information, generate a short, encouraging, and helpful message for them. The message should suggest 2-3 fictional, but relevant, summit topics or networking opportunities they might find valuable. Format the suggestions as a bulleted list. Keep the entire response under 100 words.`, profession, challenges)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate suggestions: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("generate suggestions: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("generate suggestions: no text in response")
	}
	return sb.String(), nil
}
