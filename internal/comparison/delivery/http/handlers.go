package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/report"
	"hr-assistant/pkg/response"
)

// Compare godoc
// @Summary     Compare countries
// @Description Compares legal, tax, insurance, cost and risk conditions. Results are cached for 24 hours.
// @Tags        Comparisons
// @Accept      json
// @Produce     json,text/markdown,text/html
// @Param       body   body  compareReq true  "Countries, domains and focus weights"
// @Param       format query string     false "json (default), markdown or html"
// @Success     200 {object} model.CountryComparison
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/comparisons [POST]
func (h *handler) Compare(c *gin.Context) {
	ctx := c.Request.Context()

	req, format, err := h.processCompareReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.Compare(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "comparison.http.Compare: %v", err)
		h.mapError(c, err)
		return
	}

	if format == report.FormatJSON {
		response.OK(c, result)
		return
	}
	doc, err := report.Render(report.ComparisonMarkdown(result), format)
	if err != nil {
		h.l.Errorf(ctx, "comparison.http.Compare: render: %v", err)
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, report.ContentType(format), []byte(doc))
}

// ClearCache godoc
// @Summary     Clear the comparison cache
// @Tags        Comparisons
// @Success     200 {object} response.Resp
// @Router      /api/v1/comparisons/cache [DELETE]
func (h *handler) ClearCache(c *gin.Context) {
	h.uc.ClearCache(c.Request.Context())
	response.OK(c, nil)
}
