package http

import (
	"github.com/gin-gonic/gin"

	"hr-assistant/pkg/response"
)

// Query godoc
// @Summary     Ask a question
// @Description Retrieves HR documents, routes to a model and answers with cited sources.
// @Tags        RAG
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Question"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Retrieval or model failure"
// @Router      /api/v1/rag/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Answer(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "rag.http.Query: %v", err)
		h.mapError(c, err)
		return
	}
	response.OK(c, newQueryResp(out))
}

// Analyze godoc
// @Summary     Analyze a question
// @Description Grades complexity, names HR topics and keywords, and suggests how many chunks to retrieve.
// @Tags        RAG
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Question"
// @Success     200 {object} rag.Analysis
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/rag/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	a, err := h.uc.Analyze(ctx, req.Query)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.OK(c, newAnalysisResp(a))
}

// Ingest godoc
// @Summary     Ingest a document
// @Description Splits the text into overlapping chunks and stores them in the vector store.
// @Tags        RAG
// @Accept      json
// @Produce     json
// @Param       body body ingestReq true "Document"
// @Success     200 {object} ingestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Vector store failure"
// @Router      /api/v1/documents [POST]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Ingest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "rag.http.Ingest: %v", err)
		h.mapError(c, err)
		return
	}
	response.OK(c, ingestResp{Chunks: out.Chunks})
}
