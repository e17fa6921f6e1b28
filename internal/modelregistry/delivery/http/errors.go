package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, modelregistry.ErrUnknownModel), errors.Is(err, modelregistry.ErrInvalidConfig):
		response.Error(c, err, nil)
	case model.IsUpstream(err):
		response.Upstream(c)
	default:
		response.InternalError(c, err)
	}
}
