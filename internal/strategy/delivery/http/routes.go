package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /strategies routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("", h.Generate)
	rg.DELETE("/cache", h.ClearCache)
}
