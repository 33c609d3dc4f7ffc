package fileextract

// MediaType is the declared media type of an uploaded file
type MediaType string

const (
	MediaTypePDF         MediaType = "pdf"
	MediaTypePNG         MediaType = "png"
	MediaTypeJPEG        MediaType = "jpeg"
	MediaTypeUnsupported MediaType = "unsupported"
)

// FileArtifact is an uploaded file, request-scoped only.
type FileArtifact struct {
	Filename string
	MimeType MediaType
	Payload  []byte
}

// EncodedImage is a resized, re-encoded image ready for a multimodal
// message field.
type EncodedImage struct {
	Data     string // base64-encoded payload
	MimeType string // "image/png" or "image/jpeg"
}

// FileContext is the derived context for one file. Text is always set;
// Image is set only for successfully processed images.
type FileContext struct {
	Filename string
	Text     string
	Image    *EncodedImage
}
