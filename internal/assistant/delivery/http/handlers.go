package http

import (
	"github.com/gin-gonic/gin"

	"hr-assistant/internal/assistant"
	"hr-assistant/pkg/response"
)

// Chat godoc
// @Summary     Chat with the HR assistant
// @Description Answers with retrieved documents, the recent conversation and optional task context.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Retrieval or model failure"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.http.Chat: %v", err)
		h.mapError(c, err)
		return
	}
	response.OK(c, newChatResp(out))
}

// History godoc
// @Summary     Conversation history
// @Tags        Assistant
// @Produce     json
// @Param       type path string true "Context type"
// @Success     200 {object} historyResp
// @Router      /api/v1/assistant/history/{type} [GET]
func (h *handler) History(c *gin.Context) {
	contextType := c.Param("type")
	turns := h.uc.History(c.Request.Context(), contextType)
	if turns == nil {
		turns = []assistant.Turn{}
	}
	response.OK(c, historyResp{ContextType: contextType, Turns: turns})
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Description Clears one context type when ?type is given, otherwise every history.
// @Tags        Assistant
// @Param       type query string false "Context type"
// @Success     200 {object} response.Resp
// @Router      /api/v1/assistant/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	h.uc.ClearHistory(c.Request.Context(), c.Query("type"))
	response.OK(c, nil)
}
