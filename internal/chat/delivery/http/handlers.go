package http

import (
	"github.com/gin-gonic/gin"

	"chatbot-api/pkg/response"
)

// Chat godoc
// @Summary     Run one conversation turn
// @Description Forwards the prompt plus history to the model, optionally augmented with web search context, and returns the updated conversation's last message.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Prompt, history and search flag"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Model call failed"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Exchange(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Exchange: %v", err)
		response.Error(c, h.mapError(err), gin.H{"history": newHistoryResp(output.History)})
		return
	}

	c.JSON(200, h.newChatResp(output))
}

// ChatWithFiles godoc
// @Summary     Run one conversation turn with uploaded files
// @Description Multipart variant of /chat: uploaded PDFs are converted to text and images are resized and attached; the derived context is injected into the outbound prompt only, never the stored history.
// @Tags        Chat
// @Accept      multipart/form-data
// @Produce     json
// @Param       prompt         formData string true  "User prompt"
// @Param       history        formData string false "JSON-encoded message array"
// @Param       use_web_search formData bool   false "Augment with web search"
// @Param       files          formData file   false "One or more files (PDF, PNG, JPEG)"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Model call failed"
// @Router      /chat-with-files [POST]
func (h *handler) ChatWithFiles(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatWithFilesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Exchange(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Exchange: %v", err)
		response.Error(c, h.mapError(err), gin.H{"history": newHistoryResp(output.History)})
		return
	}

	c.JSON(200, h.newChatResp(output))
}
