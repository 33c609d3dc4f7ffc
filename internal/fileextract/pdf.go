package fileextract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF concatenates per-page text. Extraction failure produces a
// descriptive string, never an error: a degraded context beats an
// aborted request.
func (e *Extractor) extractPDF(payload []byte) (text string) {
	// The pdf library panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("[Erreur lors de la lecture du PDF : %v]", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return fmt.Sprintf("[Erreur lors de la lecture du PDF : %v]", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			sb.WriteString(fmt.Sprintf("[Erreur à la page %d : %v]\n", i, err))
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "[Erreur lors de la lecture du PDF : aucun texte extrait]"
	}
	return out
}
