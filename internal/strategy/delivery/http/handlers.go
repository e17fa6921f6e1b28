package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/report"
	"hr-assistant/pkg/response"
)

// Generate godoc
// @Summary     Plan an employment strategy
// @Description Compares the target countries and plans employment models, costs, risks and rollout steps. Cached for seven days.
// @Tags        Strategies
// @Accept      json
// @Produce     json,text/markdown,text/html
// @Param       body   body  generateReq true  "Company, countries and requirements"
// @Param       format query string      false "json (default), markdown or html"
// @Success     200 {object} model.EmploymentStrategy
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/strategies [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, format, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "strategy.http.Generate: %v", err)
		h.mapError(c, err)
		return
	}

	if format == report.FormatJSON {
		response.OK(c, s)
		return
	}
	doc, err := report.Render(report.StrategyMarkdown(s), format)
	if err != nil {
		h.l.Errorf(ctx, "strategy.http.Generate: render: %v", err)
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, report.ContentType(format), []byte(doc))
}

// ClearCache godoc
// @Summary     Clear the strategy cache
// @Tags        Strategies
// @Success     200 {object} response.Resp
// @Router      /api/v1/strategies/cache [DELETE]
func (h *handler) ClearCache(c *gin.Context) {
	h.uc.ClearCache(c.Request.Context())
	response.OK(c, nil)
}
