package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/model"
	"hr-assistant/internal/router"
	"hr-assistant/pkg/response"
)

// Route godoc
// @Summary     Route a query
// @Description Picks a model variant for the query. Routing itself never fails.
// @Tags        Routes
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Query, task type and optional context id"
// @Success     200 {object} routeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Context not found"
// @Router      /api/v1/routes [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	input := router.RouteInput{Query: req.Query, TaskType: req.TaskType}
	if req.ContextID != "" && h.contexts != nil {
		mc, err := h.contexts.GetContext(ctx, req.ContextID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				response.NotFound(c, err)
				return
			}
			response.InternalError(c, err)
			return
		}
		input.Context = &mc
	}

	id := h.r.Route(ctx, input)
	response.OK(c, newRouteResp(id, req.Query, req.TaskType))
}

// Stats godoc
// @Summary     Routing statistics
// @Tags        Routes
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/routes/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	response.OK(c, newStatsResp(h.r.Statistics(c.Request.Context()), h.r.History()))
}

// UpdatePerformance godoc
// @Summary     Update model performance metrics
// @Description Merges metrics such as performance_score, which ranks similar recent decisions.
// @Tags        Routes
// @Accept      json
// @Produce     json
// @Param       model path string         true "Model variant"
// @Param       body  body performanceReq true "Metrics"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/routes/performance/{model} [PUT]
func (h *handler) UpdatePerformance(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := model.ParseModelID(c.Param("model"))
	if err != nil {
		response.Error(c, fmt.Errorf("invalid model: %w", err), nil)
		return
	}

	var req performanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	h.r.UpdatePerformanceMetrics(ctx, id, req.Metrics)
	response.OK(c, nil)
}
