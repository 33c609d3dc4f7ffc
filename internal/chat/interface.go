package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Exchange runs one conversation turn: optional web search, optional
	// file extraction, prompt composition, the gateway call, and the
	// history advance. On model failure the returned history is the
	// input history, unchanged.
	Exchange(ctx context.Context, input ExchangeInput) (ExchangeOutput, error)
}
