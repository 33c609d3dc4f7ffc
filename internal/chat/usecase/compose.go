package usecase

import (
	"fmt"
	"strings"

	"chatbot-api/internal/fileextract"
	"chatbot-api/pkg/websearch"
)

// WebContext is the optional web-search augmentation. Requested tracks
// whether the caller asked for a search at all; Failed distinguishes a
// transport failure from a search that returned nothing usable.
type WebContext struct {
	Requested bool
	Failed    bool
	Text      string
}

// formatSearchResults turns a search response into a bounded context
// block: at most the first MaxResultsInContext results, each body
// truncated to MaxCharsPerResult characters. Empty or absent input
// yields empty text, never an error.
func formatSearchResults(resp *websearch.SearchResponse) string {
	if resp == nil || len(resp.Results) == 0 {
		return ""
	}

	top := resp.Results
	if len(top) > MaxResultsInContext {
		top = top[:MaxResultsInContext]
	}

	var sb strings.Builder
	sb.WriteString(PromptWebContextHeader)
	for i, result := range top {
		sb.WriteString(fmt.Sprintf("%d. Source: %s\n", i+1, valueOr(result.URL, "N/A")))
		sb.WriteString(fmt.Sprintf("   Titre: %s\n", valueOr(result.Title, "N/A")))
		sb.WriteString(fmt.Sprintf("   Contenu: %s...\n\n", truncateText(result.Content, MaxCharsPerResult)))
	}
	return sb.String()
}

// composePrompt merges the base prompt with the optional augmentations
// into the single outbound message. Composition order: file context
// first, web context second, user question last. Each augmentation is
// plain string concatenation; they never merge semantically.
func composePrompt(prompt string, web WebContext, files []fileextract.FileContext) string {
	question := prompt
	switch {
	case web.Requested && web.Text != "":
		question = fmt.Sprintf(PromptWithWebContext, web.Text, prompt)
	case web.Requested && web.Failed:
		question = fmt.Sprintf(PromptWebSearchFailed, prompt)
	case web.Requested:
		question = fmt.Sprintf(PromptWebSearchEmpty, prompt)
	}

	if len(files) == 0 {
		return question
	}

	var sb strings.Builder
	sb.WriteString(PromptFilesHeader)
	for _, f := range files {
		sb.WriteString(fmt.Sprintf(PromptFileSection, f.Filename, f.Text))
	}
	if web.Requested {
		sb.WriteString(question)
	} else {
		sb.WriteString(fmt.Sprintf(PromptFilesInstruction, question))
	}
	return sb.String()
}

// truncateText safely truncates text to maxLen characters (not bytes).
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen])
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
