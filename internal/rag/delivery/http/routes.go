package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the RAG and document routes under the API group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/rag/query", h.Query)
	rg.POST("/rag/analyze", h.Analyze)
	rg.POST("/documents", h.Ingest)
}
