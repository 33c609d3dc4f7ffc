package websearch

import "time"

const (
	// DefaultBaseURL is the default web search API endpoint
	DefaultBaseURL = "https://ollama.com"

	// DefaultMaxResults bounds the number of results requested
	DefaultMaxResults = 3

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second

	// DefaultCacheSize is the number of cached queries
	DefaultCacheSize = 128

	// DefaultCacheTTL is how long a cached query stays valid
	DefaultCacheTTL = 60 * time.Second
)
