package http

import (
	"github.com/gin-gonic/gin"

	"hr-assistant/internal/report"
)

func (h *handler) processCompareReq(c *gin.Context) (compareReq, report.Format, error) {
	var req compareReq
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		return req, "", err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", err
	}
	return req, format, nil
}
