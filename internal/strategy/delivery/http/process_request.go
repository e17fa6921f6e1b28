package http

import (
	"github.com/gin-gonic/gin"

	"hr-assistant/internal/report"
)

func (h *handler) processGenerateReq(c *gin.Context) (generateReq, report.Format, error) {
	var req generateReq
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		return req, "", err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", err
	}
	return req, format, nil
}
