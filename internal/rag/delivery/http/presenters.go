package http

import (
	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
	"hr-assistant/internal/rag"
)

// --- Request DTOs ---

type queryReq struct {
	Query       string `json:"query"        binding:"required"`
	ContextType string `json:"context_type"`
	TaskType    string `json:"task_type"`
}

func (r queryReq) toInput() rag.AnswerInput {
	return rag.AnswerInput{Query: r.Query, ContextType: r.ContextType, TaskType: r.TaskType}
}

type analyzeReq struct {
	Query string `json:"query" binding:"required"`
}

type ingestReq struct {
	Text    string `json:"text"     binding:"required"`
	Source  string `json:"source"   binding:"required"`
	DocType string `json:"doc_type"`
}

func (r ingestReq) toInput() rag.IngestInput {
	return rag.IngestInput{Text: r.Text, Source: r.Source, DocType: r.DocType}
}

// --- Response DTOs ---

type queryResp struct {
	Answer          string              `json:"answer"`
	Model           model.ModelID       `json:"model"`
	Sources         []rag.Source        `json:"sources"`
	ContextID       string              `json:"context_id"`
	Summary         contextmgr.Summary  `json:"context_summary"`
	Complexity      rag.QueryComplexity `json:"complexity"`
	SuggestedChunks int                 `json:"suggested_chunks"`
	Topics          []string            `json:"topics"`
}

func newQueryResp(o rag.AnswerOutput) queryResp {
	sources := o.Sources
	if sources == nil {
		sources = []rag.Source{}
	}
	topics := o.Analysis.Topics
	if topics == nil {
		topics = []string{}
	}
	return queryResp{
		Answer:          o.Answer,
		Model:           o.ModelID,
		Sources:         sources,
		ContextID:       o.ContextID,
		Summary:         o.Summary,
		Complexity:      o.Analysis.Complexity,
		SuggestedChunks: o.Analysis.SuggestedChunks,
		Topics:          topics,
	}
}

func newAnalysisResp(a rag.Analysis) rag.Analysis {
	if a.Topics == nil {
		a.Topics = []string{}
	}
	if a.Keywords == nil {
		a.Keywords = []string{}
	}
	return a
}

type ingestResp struct {
	Chunks int `json:"chunks"`
}
