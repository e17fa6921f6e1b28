package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/assistant"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuery):
		response.Error(c, err, nil)
	case model.IsUpstream(err):
		response.Upstream(c)
	default:
		response.InternalError(c, err)
	}
}
