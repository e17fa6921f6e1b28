package http

import (
	"github.com/gin-gonic/gin"

	"hr-assistant/pkg/response"
)

// List godoc
// @Summary     List model variants
// @Description Returns each variant's configuration, initialisation state and call statistics.
// @Tags        Models
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/models [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, h.newListResp())
}

// Health godoc
// @Summary     Check model health
// @Description Sends a short prompt to every initialised variant and reports status and response time.
// @Tags        Models
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /api/v1/models/health [GET]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, newHealthResp(h.uc.CheckHealth(c.Request.Context())))
}

// UpdateConfig godoc
// @Summary     Update a model variant config
// @Description Replaces the variant's config and rebuilds its live handle if one exists.
// @Tags        Models
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Model variant"
// @Param       body body updateConfigReq true "New config"
// @Success     200 {object} modelResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Rebuild failed"
// @Router      /api/v1/models/{id}/config [PUT]
func (h *handler) UpdateConfig(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processUpdateConfigReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpdateConfig(ctx, id, req.toConfig()); err != nil {
		h.l.Errorf(ctx, "modelregistry.http.UpdateConfig: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newModelResp(id))
}
