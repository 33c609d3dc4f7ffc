package websearch

import "context"

// ISearcher defines the interface for the web search API client.
// Implementations are safe for concurrent use.
type ISearcher interface {
	// Search performs a web search and returns the bounded result list.
	Search(ctx context.Context, query string) (*SearchResponse, error)
}

// New creates a new web search client with the given configuration
func New(cfg Config) (ISearcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSearchImpl(cfg), nil
}
