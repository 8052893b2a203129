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

func TestOllamaBackend_Complete(t *testing.T) {
	var gotReq ollamaRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(ollamaResponse{
			Message: ollamaMessage{Role: "assistant", Content: "local reply"},
		})
	}))
	defer ts.Close()

	backend := NewOllamaBackend(types.ModelConfig{
		Name:        "llama",
		Provider:    types.ProviderOllama,
		Model:       "llama3.2",
		Temperature: 0.7,
	}, ts.URL)

	reply, err := backend.Complete(context.Background(), []types.Message{
		{Role: "user", Content: "hello"},
	})
	require.NoError(t, err)

	assert.Equal(t, "local reply", reply)
	assert.Equal(t, "llama3.2", gotReq.Model)
	assert.False(t, gotReq.Stream)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "hello", gotReq.Messages[0].Content)
}

func TestOllamaBackend_DefaultHost(t *testing.T) {
	backend := NewOllamaBackend(types.ModelConfig{Model: "llama3.2"}, "")
	assert.Equal(t, defaultOllamaHost, backend.Host)
}

func TestOllamaBackend_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer ts.Close()

	backend := NewOllamaBackend(types.ModelConfig{Model: "missing"}, ts.URL)
	_, err := backend.Complete(context.Background(), []types.Message{{Role: "user", Content: "hi"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
