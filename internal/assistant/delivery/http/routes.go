package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /assistant routes.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/chat", h.Chat)
	rg.GET("/history/:type", h.History)
	rg.DELETE("/history", h.ClearHistory)
}
