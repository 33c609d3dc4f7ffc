package usecase

import (
	"context"

	"chatbot-api/pkg/ollama"
	"chatbot-api/pkg/websearch"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// Mock Ollama client for testing
type mockOllama struct {
	chatFunc func(messages []ollama.Message) (*ollama.ChatResponse, error)
	lastReq  []ollama.Message
}

func (m *mockOllama) Chat(ctx context.Context, messages []ollama.Message) (*ollama.ChatResponse, error) {
	m.lastReq = messages
	if m.chatFunc != nil {
		return m.chatFunc(messages)
	}
	return &ollama.ChatResponse{
		Message: ollama.Message{Role: "assistant", Content: "mock reply"},
		Done:    true,
	}, nil
}

func (m *mockOllama) Model() string { return "mock-model" }

// Mock search client for testing
type mockSearcher struct {
	searchFunc func(query string) (*websearch.SearchResponse, error)
}

func (m *mockSearcher) Search(ctx context.Context, query string) (*websearch.SearchResponse, error) {
	if m.searchFunc != nil {
		return m.searchFunc(query)
	}
	return &websearch.SearchResponse{}, nil
}
