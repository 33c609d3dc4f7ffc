package usecase

import (
	"context"
	"fmt"

	"chatbot-api/internal/chat"
	"chatbot-api/internal/fileextract"
	"chatbot-api/internal/model"
	"chatbot-api/pkg/ollama"
)

// Exchange runs one conversation turn.
func (uc *implUseCase) Exchange(ctx context.Context, input chat.ExchangeInput) (chat.ExchangeOutput, error) {
	if input.Prompt == "" {
		return chat.ExchangeOutput{History: input.History}, chat.ErrEmptyPrompt
	}

	uc.l.Infof(ctx, "Exchange: history=%d web_search=%t files=%d",
		len(input.History), input.UseWebSearch, len(input.Files))

	// Step 1: optional web search. Failures degrade to "no context".
	web := WebContext{Requested: input.UseWebSearch}
	if input.UseWebSearch {
		if uc.searcher == nil {
			uc.l.Warn(ctx, "Exchange: web search requested but no search client configured")
			web.Failed = true
		} else if resp, err := uc.searcher.Search(ctx, input.Prompt); err != nil {
			uc.l.Warnf(ctx, "Exchange: web search failed: %v", err)
			web.Failed = true
		} else {
			web.Text = formatSearchResults(resp)
			if web.Text == "" {
				uc.l.Warn(ctx, "Exchange: web search returned no usable results")
			}
		}
	}

	// Step 2: optional file extraction. Never fails; corrupt files
	// become error strings inside the context.
	var fileContexts []fileextract.FileContext
	var images []string
	for _, artifact := range input.Files {
		fc := uc.extractor.Extract(artifact)
		fileContexts = append(fileContexts, fc)
		if fc.Image != nil {
			images = append(images, fc.Image.Data)
		}
	}

	// Step 3: compose the single outbound prompt.
	finalPrompt := composePrompt(input.Prompt, web, fileContexts)

	// Step 4: gateway call with the full prior history.
	if uc.llm == nil {
		uc.l.Error(ctx, "Exchange: no model client configured")
		return chat.ExchangeOutput{History: input.History},
			fmt.Errorf("%w: no model client configured", chat.ErrModelCall)
	}

	if uc.limiter != nil {
		if err := uc.limiter.Wait(ctx); err != nil {
			return chat.ExchangeOutput{History: input.History},
				fmt.Errorf("%w: %v", chat.ErrModelCall, err)
		}
	}

	messages := toOllamaMessages(input.History)
	messages = append(messages, ollama.Message{
		Role:    string(model.RoleUser),
		Content: finalPrompt,
		Images:  images,
	})

	resp, err := uc.llm.Chat(ctx, messages)
	if err != nil {
		uc.l.Errorf(ctx, "Exchange: model call failed: %v", err)
		return chat.ExchangeOutput{History: input.History},
			fmt.Errorf("%w: %v", chat.ErrModelCall, err)
	}

	// Step 5: advance the history with the original, un-enriched
	// prompt. Injected context must not pollute the transcript.
	return chat.ExchangeOutput{
		History: advance(input.History, input.Prompt, resp.Message.Content),
	}, nil
}

// advance appends the user turn and the assistant reply as two new
// messages, leaving the input slice untouched.
func advance(history []model.Message, prompt, reply string) []model.Message {
	out := make([]model.Message, 0, len(history)+2)
	out = append(out, history...)
	out = append(out,
		model.Message{Role: model.RoleUser, Content: prompt},
		model.Message{Role: model.RoleAssistant, Content: reply},
	)
	return out
}

// toOllamaMessages converts the typed history to the wire format.
func toOllamaMessages(history []model.Message) []ollama.Message {
	messages := make([]ollama.Message, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, ollama.Message{
			Role:    string(m.Role),
			Content: m.Content,
			Images:  m.Images,
		})
	}
	return messages
}
