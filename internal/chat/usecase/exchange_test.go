package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chatbot-api/internal/chat"
	"chatbot-api/internal/fileextract"
	"chatbot-api/internal/model"
	"chatbot-api/pkg/ollama"
	"chatbot-api/pkg/websearch"
)

func newTestUseCase(llm *mockOllama, searcher *mockSearcher) *implUseCase {
	var s websearch.ISearcher
	if searcher != nil {
		s = searcher
	}
	var o ollama.IOllama
	if llm != nil {
		o = llm
	}
	return New(&mockLogger{}, o, s, fileextract.New(1024), nil)
}

func TestExchange(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Prompt Error", func(t *testing.T) {
		uc := newTestUseCase(&mockOllama{}, nil)
		_, err := uc.Exchange(ctx, chat.ExchangeInput{Prompt: ""})
		if !errors.Is(err, chat.ErrEmptyPrompt) {
			t.Errorf("expected ErrEmptyPrompt, got %v", err)
		}
	})

	t.Run("Success Appends Two Messages", func(t *testing.T) {
		llm := &mockOllama{}
		uc := newTestUseCase(llm, nil)

		history := []model.Message{
			{Role: model.RoleUser, Content: "bonjour"},
			{Role: model.RoleAssistant, Content: "salut"},
		}
		out, err := uc.Exchange(ctx, chat.ExchangeInput{Prompt: "comment ça va ?", History: history})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.History) != len(history)+2 {
			t.Fatalf("expected history +2, got %d -> %d", len(history), len(out.History))
		}
		if out.History[2].Role != model.RoleUser || out.History[2].Content != "comment ça va ?" {
			t.Errorf("user turn not appended as-is: %+v", out.History[2])
		}
		if out.History[3].Role != model.RoleAssistant || out.History[3].Content != "mock reply" {
			t.Errorf("assistant turn wrong: %+v", out.History[3])
		}
	})

	t.Run("Model Failure Leaves History Unchanged", func(t *testing.T) {
		llm := &mockOllama{
			chatFunc: func([]ollama.Message) (*ollama.ChatResponse, error) {
				return nil, errors.New("connection refused")
			},
		}
		uc := newTestUseCase(llm, nil)

		history := []model.Message{{Role: model.RoleUser, Content: "x"}}
		out, err := uc.Exchange(ctx, chat.ExchangeInput{Prompt: "y", History: history})
		if !errors.Is(err, chat.ErrModelCall) {
			t.Errorf("expected ErrModelCall, got %v", err)
		}
		if len(out.History) != 1 {
			t.Errorf("history must be unchanged on failure, got %d messages", len(out.History))
		}
	})

	t.Run("Missing Model Client Is A Model Failure", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.Exchange(ctx, chat.ExchangeInput{Prompt: "y"})
		if !errors.Is(err, chat.ErrModelCall) {
			t.Errorf("expected ErrModelCall, got %v", err)
		}
	})

	t.Run("Stored Prompt Is Original Not Enriched", func(t *testing.T) {
		llm := &mockOllama{}
		searcher := &mockSearcher{
			searchFunc: func(string) (*websearch.SearchResponse, error) {
				return &websearch.SearchResponse{
					Results: []websearch.SearchResult{
						{URL: "https://fr.wikipedia.org", Title: "Paris", Content: "Paris est la capitale"},
					},
				}, nil
			},
		}
		uc := newTestUseCase(llm, searcher)

		prompt := "Quelle est la capitale de la France ?"
		out, err := uc.Exchange(ctx, chat.ExchangeInput{Prompt: prompt, UseWebSearch: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Outbound message carries the enriched prompt.
		sent := llm.lastReq[len(llm.lastReq)-1].Content
		if !strings.Contains(sent, "Contexte issu d'une recherche web") {
			t.Errorf("outbound prompt not enriched: %q", sent)
		}
		// Persisted transcript carries the original prompt only.
		if out.History[0].Content != prompt {
			t.Errorf("stored prompt polluted by context: %q", out.History[0].Content)
		}
	})

	t.Run("Search Failure Degrades Not Aborts", func(t *testing.T) {
		llm := &mockOllama{}
		searcher := &mockSearcher{
			searchFunc: func(string) (*websearch.SearchResponse, error) {
				return nil, errors.New("search unreachable")
			},
		}
		uc := newTestUseCase(llm, searcher)

		out, err := uc.Exchange(ctx, chat.ExchangeInput{Prompt: "q", UseWebSearch: true})
		if err != nil {
			t.Fatalf("search failure must not abort the exchange: %v", err)
		}
		if len(out.History) != 2 {
			t.Errorf("expected a completed exchange, got %d messages", len(out.History))
		}
		sent := llm.lastReq[len(llm.lastReq)-1].Content
		if !strings.Contains(sent, "a échoué") {
			t.Errorf("expected failure note in outbound prompt: %q", sent)
		}
	})

	t.Run("Missing Search Client Degrades", func(t *testing.T) {
		llm := &mockOllama{}
		uc := newTestUseCase(llm, nil)

		_, err := uc.Exchange(ctx, chat.ExchangeInput{Prompt: "q", UseWebSearch: true})
		if err != nil {
			t.Fatalf("missing searcher must degrade gracefully: %v", err)
		}
	})

	t.Run("Corrupt PDF Embedded In Outbound Prompt", func(t *testing.T) {
		llm := &mockOllama{}
		uc := newTestUseCase(llm, nil)

		out, err := uc.Exchange(ctx, chat.ExchangeInput{
			Prompt: "Que contient ce document ?",
			Files: []fileextract.FileArtifact{{
				Filename: "cassé.pdf",
				MimeType: fileextract.MediaTypePDF,
				Payload:  []byte("not a pdf at all"),
			}},
		})
		if err != nil {
			t.Fatalf("corrupt file must not abort the exchange: %v", err)
		}

		sent := llm.lastReq[len(llm.lastReq)-1].Content
		if !strings.Contains(sent, "cassé.pdf") {
			t.Errorf("outbound prompt missing filename: %q", sent)
		}
		if !strings.Contains(sent, "Erreur") {
			t.Errorf("outbound prompt missing embedded error note: %q", sent)
		}
		if len(out.History) != 2 {
			t.Errorf("expected a completed exchange, got %d messages", len(out.History))
		}
	})

	t.Run("Full History Sent To Model", func(t *testing.T) {
		llm := &mockOllama{}
		uc := newTestUseCase(llm, nil)

		history := []model.Message{
			{Role: model.RoleUser, Content: "a"},
			{Role: model.RoleAssistant, Content: "b"},
		}
		if _, err := uc.Exchange(ctx, chat.ExchangeInput{Prompt: "c", History: history}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(llm.lastReq) != 3 {
			t.Fatalf("expected history + new turn on the wire, got %d", len(llm.lastReq))
		}
		if llm.lastReq[0].Content != "a" || llm.lastReq[1].Content != "b" {
			t.Errorf("history order lost on the wire: %+v", llm.lastReq)
		}
	})
}
