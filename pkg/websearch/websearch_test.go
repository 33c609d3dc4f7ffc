package websearch_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"chatbot-api/pkg/websearch"
)

func TestSearch(t *testing.T) {
	var calls int64

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)

		if r.URL.Path != "/api/web_search" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-search-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req websearch.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Query == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"results": [
				{"url": "https://example.com/a", "title": "A", "content": "alpha"},
				{"url": "https://example.com/b", "title": "B", "content": "beta"}
			]
		}`))
	}))
	defer ts.Close()

	client, err := websearch.New(websearch.Config{
		APIKey:  "test-search-key",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.Search(context.Background(), "golang")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(resp.Results))
		}
		if resp.Results[0].URL != "https://example.com/a" {
			t.Errorf("unexpected first result: %+v", resp.Results[0])
		}
	})

	t.Run("Cache Hit", func(t *testing.T) {
		before := atomic.LoadInt64(&calls)
		if _, err := client.Search(context.Background(), "golang"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if atomic.LoadInt64(&calls) != before {
			t.Errorf("expected cached query to skip the remote API")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "cause_500"); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Missing API Key", func(t *testing.T) {
		if _, err := websearch.New(websearch.Config{}); err == nil {
			t.Fatalf("expected config validation error")
		}
	})
}
