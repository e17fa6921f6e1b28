package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /models routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.List)
	rg.GET("/health", h.Health)
	rg.PUT("/:id/config", h.UpdateConfig)
}
