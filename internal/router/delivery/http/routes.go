package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /routes routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("", h.Route)
	rg.GET("/stats", h.Stats)
	rg.PUT("/performance/:model", h.UpdatePerformance)
}
