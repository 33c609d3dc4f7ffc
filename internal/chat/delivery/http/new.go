package http

import (
	"github.com/gin-gonic/gin"

	"chatbot-api/internal/chat"
	"chatbot-api/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ChatWithFiles(c *gin.Context)
}

type handler struct {
	l            log.Logger
	uc           chat.UseCase
	maxFileBytes int64
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase, maxFileBytes int64) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		maxFileBytes: maxFileBytes,
	}
}
