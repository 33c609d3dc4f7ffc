package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatbot-api/pkg/ollama"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		cfg := ollama.Config{}
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for missing API key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := ollama.Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != ollama.DefaultModel {
			t.Errorf("expected default model, got %q", cfg.Model)
		}
		if cfg.BaseURL != ollama.DefaultBaseURL {
			t.Errorf("expected default base URL, got %q", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Errorf("expected default HTTP client")
		}
	})
}

func TestChat(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req ollama.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Stream {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Mock command from the last message
		last := req.Messages[len(req.Messages)-1]
		if last.Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"model": "gpt-oss:20b-cloud",
			"created_at": "2025-01-01T00:00:00Z",
			"message": {"role": "assistant", "content": "mocked reply"},
			"done": true
		}`))
	}))
	defer ts.Close()

	client, err := ollama.New(ollama.Config{
		APIKey:  "test-api-key",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.Chat(context.Background(), []ollama.Message{
			{Role: "user", Content: "Hello"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Message.Role != "assistant" {
			t.Errorf("expected assistant role, got %q", resp.Message.Role)
		}
		if resp.Message.Content != "mocked reply" {
			t.Errorf("unexpected content: %q", resp.Message.Content)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Chat(context.Background(), []ollama.Message{
			{Role: "user", Content: "cause_500"},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Auth Error Flow", func(t *testing.T) {
		badClient, _ := ollama.New(ollama.Config{
			APIKey:  "wrong-key",
			BaseURL: ts.URL,
		})
		_, err := badClient.Chat(context.Background(), []ollama.Message{
			{Role: "user", Content: "Hello"},
		})
		if err == nil {
			t.Fatalf("expected auth error")
		}
	})

	t.Run("History Order Preserved", func(t *testing.T) {
		var got ollama.ChatRequest
		orderTS := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&got)
			w.Write([]byte(`{"message": {"role": "assistant", "content": "ok"}, "done": true}`))
		}))
		defer orderTS.Close()

		c, _ := ollama.New(ollama.Config{APIKey: "k", BaseURL: orderTS.URL})
		msgs := []ollama.Message{
			{Role: "user", Content: "first"},
			{Role: "assistant", Content: "second"},
			{Role: "user", Content: "third"},
		}
		if _, err := c.Chat(context.Background(), msgs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Messages) != 3 || got.Messages[0].Content != "first" || got.Messages[2].Content != "third" {
			t.Errorf("message order not preserved: %+v", got.Messages)
		}
	})
}
