package chat

import "errors"

var (
	// ErrEmptyPrompt indicates the inbound prompt was empty.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrModelCall indicates the gateway call to the model failed.
	// The conversation history is returned unchanged in that case.
	ErrModelCall = errors.New("model call failed")
)
