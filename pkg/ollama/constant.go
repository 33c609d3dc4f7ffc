package ollama

import "time"

const (
	// DefaultModel is the default Ollama Cloud model
	DefaultModel = "gpt-oss:20b-cloud"

	// DefaultBaseURL is the default Ollama Cloud endpoint
	DefaultBaseURL = "https://ollama.com"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
