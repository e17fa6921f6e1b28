package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /contexts routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("", h.Create)
	rg.DELETE("", h.ClearAll)
	rg.GET("/:id", h.Detail)
	rg.GET("/:id/summary", h.Summary)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Clear)
}
