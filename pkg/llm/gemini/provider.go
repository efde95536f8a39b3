package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"telehealth-be/pkg/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider talks to the Google generative language API through the
// official SDK. The client is constructed once and passed around explicitly;
// there is no package-level singleton.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("GOOGLE_GEMINI_API_KEY is not configured")
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) == 0 {
		return "", errors.New("empty chat history")
	}

	options := llm.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	model := g.model(options)
	cs := model.StartChat()

	// All but the last turn go into the session history; the last turn is
	// the message being sent.
	for _, msg := range history[:len(history)-1] {
		cs.History = append(cs.History, &genai.Content{
			Role:  mapRole(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(history[len(history)-1].Content))
	if err != nil {
		return "", fmt.Errorf("gemini chat failed: %w", err)
	}

	return extractText(resp)
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	options := llm.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	resp, err := g.model(options).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	return extractText(resp)
}

// Close releases the underlying API client.
func (g *GeminiProvider) Close() error {
	return g.client.Close()
}

func (g *GeminiProvider) model(options *llm.Options) *genai.GenerativeModel {
	name := g.modelName
	if options.Model != "" {
		name = options.Model
	}

	model := g.client.GenerativeModel(name)
	model.SetTemperature(float32(options.Temperature))
	model.SetTopP(float32(options.TopP))
	model.SetTopK(int32(options.TopK))
	model.SetMaxOutputTokens(int32(options.MaxTokens))
	return model
}

func mapRole(role string) string {
	// Gemini only knows "user" and "model".
	switch role {
	case "assistant", "model", "system":
		if role == "system" {
			return "user"
		}
		return "model"
	default:
		return "user"
	}
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty completion from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	if sb.Len() == 0 {
		return "", errors.New("completion contained no text parts")
	}
	return sb.String(), nil
}
