package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat endpoints. Paths are root-level for
// compatibility with the existing frontend.
func RegisterRoutes(e *gin.Engine, h *handler) {
	e.POST("/chat", h.Chat)
	e.POST("/chat-with-files", h.ChatWithFiles)
}
