package ollama

import "context"

// IOllama defines the interface for the Ollama Cloud chat API client.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Chat sends a non-streamed chat request with the full message
	// history and blocks until the complete response arrives.
	Chat(ctx context.Context, messages []Message) (*ChatResponse, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
