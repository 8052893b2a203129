// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent abstracts the external chat-completion services the consultor
// delegates to. A backend takes an ordered list of speaker-tagged messages
// and returns a single text reply; streaming delivery, tool use, and every
// other provider capability stay behind that boundary.
package agent

import (
	"context"
	"fmt"

	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// Backend is the delegate contract: ordered messages in, one text blob out.
// Each implementation wraps one hosted chat-completion provider. Tests supply
// mocks. Per Strategy pattern.
type Backend interface {
	Complete(ctx context.Context, messages []types.Message) (string, error)
}

// Options carries provider credentials and endpoints shared by all backends.
type Options struct {
	// OpenAIKey authenticates the OpenAI backend.
	OpenAIKey string

	// AnthropicKey authenticates the Anthropic backend.
	AnthropicKey string

	// OllamaHost is the base URL of a local Ollama server; empty means
	// http://localhost:11434.
	OllamaHost string
}

// New builds the backend for a model configuration.
func New(model types.ModelConfig, opts Options) (Backend, error) {
	switch model.Provider {
	case types.ProviderOpenAI:
		return NewOpenAIBackend(model, opts.OpenAIKey), nil
	case types.ProviderAnthropic:
		return NewClaudeBackend(model, opts.AnthropicKey), nil
	case types.ProviderOllama:
		return NewOllamaBackend(model, opts.OllamaHost), nil
	default:
		return nil, fmt.Errorf("unknown provider %q for model %q", model.Provider, model.Name)
	}
}
