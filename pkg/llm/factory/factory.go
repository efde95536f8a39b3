package factory

import (
	"context"
	"fmt"

	"telehealth-be/pkg/llm"
	"telehealth-be/pkg/llm/gemini"
	"telehealth-be/pkg/llm/ollama"
)

func NewLLMProvider(ctx context.Context, providerType, modelName, baseURL, geminiAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini", "":
		return gemini.NewGeminiProvider(ctx, geminiAPIKey, modelName)
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
