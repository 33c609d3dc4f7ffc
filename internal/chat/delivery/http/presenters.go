package http

import (
	"errors"
	"fmt"

	"chatbot-api/internal/chat"
	"chatbot-api/internal/fileextract"
	"chatbot-api/internal/model"
)

// --- Request DTOs ---

type messageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (m messageDTO) toModel() model.Message {
	return model.Message{
		Role:    model.Role(m.Role),
		Content: m.Content,
	}
}

type chatReq struct {
	Prompt       string       `json:"prompt" binding:"required"`
	History      []messageDTO `json:"history"`
	UseWebSearch bool         `json:"use_web_search"`
}

func (r chatReq) validate() error {
	return validateHistory(r.History)
}

func (r chatReq) toInput() chat.ExchangeInput {
	return chat.ExchangeInput{
		Prompt:       r.Prompt,
		History:      toModelHistory(r.History),
		UseWebSearch: r.UseWebSearch,
	}
}

type chatWithFilesReq struct {
	Prompt       string
	History      []messageDTO
	UseWebSearch bool
	Files        []fileextract.FileArtifact
}

func (r chatWithFilesReq) validate() error {
	if r.Prompt == "" {
		return errors.New("prompt is required")
	}
	return validateHistory(r.History)
}

func (r chatWithFilesReq) toInput() chat.ExchangeInput {
	return chat.ExchangeInput{
		Prompt:       r.Prompt,
		History:      toModelHistory(r.History),
		UseWebSearch: r.UseWebSearch,
		Files:        r.Files,
	}
}

// validateHistory rejects malformed turns before they enter the
// pipeline.
func validateHistory(history []messageDTO) error {
	for i, m := range history {
		if err := m.toModel().Validate(); err != nil {
			return fmt.Errorf("history[%d]: %w", i, err)
		}
	}
	return nil
}

func toModelHistory(history []messageDTO) []model.Message {
	out := make([]model.Message, len(history))
	for i, m := range history {
		out[i] = m.toModel()
	}
	return out
}

// --- Response DTOs ---

// chatResp mirrors the original API: the last appended message, or an
// empty object when the history is empty.
type chatResp struct {
	Response any `json:"response"`
}

func (h *handler) newChatResp(out chat.ExchangeOutput) chatResp {
	last, ok := out.LastMessage()
	if !ok {
		return chatResp{Response: struct{}{}}
	}
	return chatResp{Response: messageDTO{
		Role:    string(last.Role),
		Content: last.Content,
	}}
}

func newHistoryResp(history []model.Message) []messageDTO {
	out := make([]messageDTO, len(history))
	for i, m := range history {
		out[i] = messageDTO{Role: string(m.Role), Content: m.Content}
	}
	return out
}
