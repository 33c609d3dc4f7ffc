package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// searchImpl is the internal implementation of ISearcher
type searchImpl struct {
	apiKey     string
	baseURL    string
	maxResults int
	httpClient *http.Client
	cache      *expirable.LRU[string, *SearchResponse]
}

// newSearchImpl creates a new web search implementation
func newSearchImpl(cfg Config) *searchImpl {
	return &searchImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		maxResults: cfg.MaxResults,
		httpClient: cfg.HTTPClient,
		cache:      expirable.NewLRU[string, *SearchResponse](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

// Search performs a web search. Identical queries inside the cache TTL
// are served from memory and do not hit the remote API.
func (s *searchImpl) Search(ctx context.Context, query string) (*SearchResponse, error) {
	if cached, ok := s.cache.Get(query); ok {
		return cached, nil
	}

	req := SearchRequest{
		Query:      query,
		MaxResults: s.maxResults,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("websearch: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/api/web_search", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("websearch: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("websearch: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("websearch: API error %d: %s", resp.StatusCode, string(raw))
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("websearch: failed to decode response: %w", err)
	}

	s.cache.Add(query, &searchResp)

	return &searchResp, nil
}
