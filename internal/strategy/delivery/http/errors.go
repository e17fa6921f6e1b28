package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/comparison"
	"hr-assistant/internal/model"
	"hr-assistant/internal/strategy"
	"hr-assistant/pkg/response"
)

func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, strategy.ErrEmptyCompany),
		errors.Is(err, strategy.ErrNoCountries),
		errors.Is(err, comparison.ErrNoCountries):
		response.Error(c, err, nil)
	case model.IsUpstream(err):
		response.Upstream(c)
	default:
		response.InternalError(c, err)
	}
}
