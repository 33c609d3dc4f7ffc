package chat

import (
	"chatbot-api/internal/fileextract"
	"chatbot-api/internal/model"
)

// ExchangeInput carries one inbound conversation turn.
type ExchangeInput struct {
	Prompt       string
	History      []model.Message
	UseWebSearch bool
	Files        []fileextract.FileArtifact
}

// ExchangeOutput is the updated conversation after a turn.
// History grows by exactly two messages on success and is returned
// unchanged on model failure.
type ExchangeOutput struct {
	History []model.Message
}

// LastMessage returns the most recent message, or false when the
// history is empty.
func (o ExchangeOutput) LastMessage() (model.Message, bool) {
	if len(o.History) == 0 {
		return model.Message{}, false
	}
	return o.History[len(o.History)-1], true
}
