// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MuhammadDevX/ngen-consultor/internal/httputil"
	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// defaultOllamaHost is used when no host is configured.
const defaultOllamaHost = "http://localhost:11434"

// OllamaBackend calls a local Ollama server's chat endpoint.
type OllamaBackend struct {
	Model  types.ModelConfig
	Host   string
	Client *http.Client
}

// NewOllamaBackend builds an Ollama backend for the given model configuration.
func NewOllamaBackend(model types.ModelConfig, host string) *OllamaBackend {
	if host == "" {
		host = defaultOllamaHost
	}
	return &OllamaBackend{Model: model, Host: host}
}

// ollamaRequest is the request body for /api/chat.
type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options,omitempty"`
}

// ollamaMessage is a single chat message.
type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ollamaOptions carries sampling parameters.
type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
}

// ollamaResponse is the non-streaming response body from /api/chat.
type ollamaResponse struct {
	Message ollamaMessage `json:"message"`
}

// Complete sends the conversation to /api/chat with streaming disabled, so
// the full reply arrives in one body.
func (o *OllamaBackend) Complete(ctx context.Context, messages []types.Message) (string, error) {
	reqBody := ollamaRequest{
		Model:   o.Model.Model,
		Stream:  false,
		Options: ollamaOptions{Temperature: o.Model.Temperature},
	}
	for _, m := range messages {
		reqBody.Messages = append(reqBody.Messages, ollamaMessage{Role: m.Role, Content: m.Content})
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := strings.TrimSuffix(o.Host, "/") + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return "", fmt.Errorf("calling Ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Ollama returned %d: %s", resp.StatusCode, string(body))
	}

	var oResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&oResp); err != nil {
		return "", fmt.Errorf("decoding Ollama response: %w", err)
	}

	return oResp.Message.Content, nil
}
