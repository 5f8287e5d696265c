package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultTimeout bounds a single completion call.
const DefaultTimeout = 60 * time.Second

// Completer is the text-completion capability the router depends on: a prompt
// goes in, plain text comes out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// New builds the completer for a provider name.
func New(ctx context.Context, provider, apiKey, model string) (Completer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm: api key for provider %q is empty", provider)
	}

	switch strings.ToLower(provider) {
	case "gemini", "":
		return NewGeminiClient(ctx, apiKey, model)
	case "openai":
		return NewOpenAIClient(apiKey), nil
	case "anthropic":
		return NewAnthropicClient(apiKey), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", provider)
	}
}

// CleanJSONResponse strips code fences and surrounding prose from a model reply
// that is expected to carry a single JSON object.
func CleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
