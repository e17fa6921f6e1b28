package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
)

func (h *handler) processUpdateConfigReq(c *gin.Context) (model.ModelID, updateConfigReq, error) {
	var req updateConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, err
	}
	req.ID = c.Param("id")
	id, err := model.ParseModelID(req.ID)
	if err != nil {
		return "", req, fmt.Errorf("%w: %s", modelregistry.ErrUnknownModel, req.ID)
	}
	return id, req, nil
}
