package usecase

import (
	"golang.org/x/time/rate"

	"chatbot-api/internal/fileextract"
	"chatbot-api/pkg/log"
	"chatbot-api/pkg/ollama"
	"chatbot-api/pkg/websearch"
)

type implUseCase struct {
	l         log.Logger
	llm       ollama.IOllama
	searcher  websearch.ISearcher
	extractor *fileextract.Extractor
	limiter   *rate.Limiter
}

// New creates a new chat UseCase instance.
// llm and searcher may be nil when the corresponding API key is
// missing; the pipeline degrades at call time instead of refusing to
// start. limiter throttles outbound model calls and may be nil.
func New(
	l log.Logger,
	llm ollama.IOllama,
	searcher websearch.ISearcher,
	extractor *fileextract.Extractor,
	limiter *rate.Limiter,
) *implUseCase {
	return &implUseCase{
		l:         l,
		llm:       llm,
		searcher:  searcher,
		extractor: extractor,
		limiter:   limiter,
	}
}
