// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// OpenAIBackend calls the OpenAI chat-completion API through the go-openai
// client.
type OpenAIBackend struct {
	Model  types.ModelConfig
	client *openai.Client
}

// NewOpenAIBackend builds an OpenAI backend for the given model configuration.
func NewOpenAIBackend(model types.ModelConfig, apiKey string) *OpenAIBackend {
	return &OpenAIBackend{
		Model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Complete sends the conversation as-is; speaker roles map one-to-one onto
// the chat-completion roles.
func (o *OpenAIBackend) Complete(ctx context.Context, messages []types.Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       o.Model.Model,
		Temperature: float32(o.Model.Temperature),
		MaxTokens:   o.Model.MaxTokens,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("calling OpenAI API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI API returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
