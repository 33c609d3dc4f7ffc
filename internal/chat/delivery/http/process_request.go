package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"chatbot-api/internal/fileextract"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processChatWithFilesReq parses the multipart form: prompt, optional
// JSON-encoded history, search flag, and zero or more file parts.
func (h *handler) processChatWithFilesReq(c *gin.Context) (chatWithFilesReq, error) {
	var req chatWithFilesReq

	req.Prompt = c.PostForm("prompt")
	req.UseWebSearch = c.PostForm("use_web_search") == "true"

	if raw := c.PostForm("history"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.History); err != nil {
			return req, fmt.Errorf("invalid history JSON: %w", err)
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		return req, fmt.Errorf("invalid multipart form: %w", err)
	}

	for _, fh := range form.File["files"] {
		artifact, err := h.readFilePart(fh)
		if err != nil {
			return req, err
		}
		req.Files = append(req.Files, artifact)
	}

	return req, req.validate()
}

// readFilePart loads one uploaded file into a request-scoped artifact.
func (h *handler) readFilePart(fh *multipart.FileHeader) (fileextract.FileArtifact, error) {
	var artifact fileextract.FileArtifact

	if h.maxFileBytes > 0 && fh.Size > h.maxFileBytes {
		return artifact, fmt.Errorf("file %q exceeds the %d byte limit", fh.Filename, h.maxFileBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return artifact, fmt.Errorf("failed to open file %q: %w", fh.Filename, err)
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		return artifact, fmt.Errorf("failed to read file %q: %w", fh.Filename, err)
	}

	return fileextract.FileArtifact{
		Filename: fh.Filename,
		MimeType: fileextract.DetectMediaType(fh.Header.Get("Content-Type"), fh.Filename),
		Payload:  payload,
	}, nil
}
