// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

func claudeModel() types.ModelConfig {
	return types.ModelConfig{
		Name:        "claude",
		Provider:    types.ProviderAnthropic,
		Model:       "claude-3-sonnet",
		Temperature: 0.7,
		MaxTokens:   1000,
	}
}

func TestClaudeBackend_Complete(t *testing.T) {
	var gotReq claudeRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(claudeResponse{
			Content: []claudeContent{{Type: "text", Text: "hello from claude"}},
		})
	}))
	defer ts.Close()

	old := anthropicAPIURL
	anthropicAPIURL = ts.URL
	defer func() { anthropicAPIURL = old }()

	backend := NewClaudeBackend(claudeModel(), "test-key")
	reply, err := backend.Complete(context.Background(), []types.Message{
		{Role: "system", Content: "be an analyst"},
		{Role: "user", Content: "analyze this"},
	})
	require.NoError(t, err)

	assert.Equal(t, "hello from claude", reply)
	assert.Equal(t, "claude-3-sonnet", gotReq.Model)
	assert.Equal(t, 1000, gotReq.MaxTokens)
	// System messages fold into the dedicated field, not the message list.
	assert.Equal(t, "be an analyst", gotReq.System)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
}

func TestClaudeBackend_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	old := anthropicAPIURL
	anthropicAPIURL = ts.URL
	defer func() { anthropicAPIURL = old }()

	backend := NewClaudeBackend(claudeModel(), "wrong-key")
	_, err := backend.Complete(context.Background(), []types.Message{{Role: "user", Content: "hi"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClaudeBackend_NoTextContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(claudeResponse{})
	}))
	defer ts.Close()

	old := anthropicAPIURL
	anthropicAPIURL = ts.URL
	defer func() { anthropicAPIURL = old }()

	backend := NewClaudeBackend(claudeModel(), "test-key")
	_, err := backend.Complete(context.Background(), []types.Message{{Role: "user", Content: "hi"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestClaudeBackend_DefaultMaxTokens(t *testing.T) {
	var gotReq claudeRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(claudeResponse{
			Content: []claudeContent{{Type: "text", Text: "ok"}},
		})
	}))
	defer ts.Close()

	old := anthropicAPIURL
	anthropicAPIURL = ts.URL
	defer func() { anthropicAPIURL = old }()

	model := claudeModel()
	model.MaxTokens = 0
	backend := NewClaudeBackend(model, "test-key")

	_, err := backend.Complete(context.Background(), []types.Message{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, defaultMaxTokens, gotReq.MaxTokens)
}
