package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /comparisons routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("", h.Compare)
	rg.DELETE("/cache", h.ClearCache)
}
