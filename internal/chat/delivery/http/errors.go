package http

import (
	"errors"

	"chatbot-api/internal/chat"
	"chatbot-api/pkg/response"
)

// mapError translates domain errors into HTTP errors.
// Auxiliary failures (search, file decode) never reach this point;
// they degrade inside the use case.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyPrompt):
		return response.NewHTTPError(400, "prompt is required")
	case errors.Is(err, chat.ErrModelCall):
		return response.NewHTTPError(502, "model call failed")
	default:
		return err
	}
}
