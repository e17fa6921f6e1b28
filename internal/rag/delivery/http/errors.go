package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
	"hr-assistant/internal/rag"
	"hr-assistant/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rag.ErrEmptyQuery),
		errors.Is(err, rag.ErrEmptyDocument),
		errors.Is(err, rag.ErrEmptySource),
		errors.Is(err, contextmgr.ErrEmptyQuery):
		response.Error(c, err, nil)
	case model.IsUpstream(err):
		response.Upstream(c)
	default:
		response.InternalError(c, err)
	}
}
