package fileextract

import (
	"fmt"
	"strings"
)

// Extractor converts uploaded files into prompt context. It never
// returns an error: every failure mode degrades to a descriptive
// string embedded in the context instead.
type Extractor struct {
	maxImageDimension int
}

// New creates an Extractor. maxImageDimension bounds the longest side
// of re-encoded images; zero or negative falls back to the default.
func New(maxImageDimension int) *Extractor {
	if maxImageDimension <= 0 {
		maxImageDimension = DefaultMaxImageDimension
	}
	return &Extractor{maxImageDimension: maxImageDimension}
}

// DefaultMaxImageDimension caps the longest image side.
const DefaultMaxImageDimension = 1024

// DetectMediaType maps a declared content type and filename to the
// supported media types. Content type wins; extension is the fallback.
func DetectMediaType(contentType, filename string) MediaType {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	switch ct {
	case "application/pdf":
		return MediaTypePDF
	case "image/png":
		return MediaTypePNG
	case "image/jpeg", "image/jpg":
		return MediaTypeJPEG
	}

	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return MediaTypePDF
	case strings.HasSuffix(name, ".png"):
		return MediaTypePNG
	case strings.HasSuffix(name, ".jpg"), strings.HasSuffix(name, ".jpeg"):
		return MediaTypeJPEG
	}
	return MediaTypeUnsupported
}

// Extract dispatches on the declared media type and produces the
// derived context for one file.
func (e *Extractor) Extract(artifact FileArtifact) FileContext {
	switch artifact.MimeType {
	case MediaTypePDF:
		return FileContext{
			Filename: artifact.Filename,
			Text:     e.extractPDF(artifact.Payload),
		}
	case MediaTypePNG, MediaTypeJPEG:
		return e.extractImage(artifact)
	default:
		return FileContext{
			Filename: artifact.Filename,
			Text:     fmt.Sprintf("[Fichier non supporté : %s]", artifact.Filename),
		}
	}
}
