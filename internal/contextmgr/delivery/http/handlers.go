package http

import (
	"github.com/gin-gonic/gin"

	"hr-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a context
// @Description Retrieves documents for the query and stores a trimmed two-tier context.
// @Tags        Contexts
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Query and context type"
// @Success     200 {object} contextResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Retrieval failed"
// @Router      /api/v1/contexts [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.CreateContext(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "contextmgr.http.Create: %v", err)
		h.mapError(c, err)
		return
	}
	response.OK(c, newContextResp(out.ID, out.Context))
}

// Detail godoc
// @Summary     Get a context
// @Tags        Contexts
// @Produce     json
// @Param       id path string true "Context ID"
// @Success     200 {object} contextResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/contexts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	mc, err := h.uc.GetContext(ctx, id)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newContextResp(id, mc))
}

// Summary godoc
// @Summary     Summarise a context
// @Description Per-tier source counts, source names, whitespace token count and sorted global keys.
// @Tags        Contexts
// @Produce     json
// @Param       id path string true "Context ID"
// @Success     200 {object} contextmgr.Summary
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/contexts/{id}/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.GetSummary(ctx, c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, s)
}

// Update godoc
// @Summary     Update a context
// @Description Merges global context and attaches documents as secondary windows.
// @Tags        Contexts
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Context ID"
// @Param       body body updateReq true "Global values and documents"
// @Success     200 {object} contextResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/contexts/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	mc, err := h.uc.UpdateContext(ctx, id, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newContextResp(id, mc))
}

// Clear godoc
// @Summary     Delete a context
// @Tags        Contexts
// @Param       id path string true "Context ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/contexts/{id} [DELETE]
func (h *handler) Clear(c *gin.Context) {
	h.uc.ClearContext(c.Request.Context(), c.Param("id"))
	response.OK(c, nil)
}

// ClearAll godoc
// @Summary     Delete every context
// @Tags        Contexts
// @Success     200 {object} response.Resp
// @Router      /api/v1/contexts [DELETE]
func (h *handler) ClearAll(c *gin.Context) {
	h.uc.ClearAll(c.Request.Context())
	response.OK(c, nil)
}
