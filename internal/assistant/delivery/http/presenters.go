package http

import (
	"hr-assistant/internal/assistant"
	"hr-assistant/internal/model"
	"hr-assistant/internal/rag"
)

// --- Request DTOs ---

type chatReq struct {
	Query       string         `json:"query"        binding:"required"`
	ContextType string         `json:"context_type"`
	TaskType    string         `json:"task_type"`
	TaskContext map[string]any `json:"task_context"`
}

func (r chatReq) toInput() assistant.GenerateInput {
	return assistant.GenerateInput{
		Query:       r.Query,
		ContextType: r.ContextType,
		TaskType:    r.TaskType,
		TaskContext: r.TaskContext,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response    string                `json:"response"`
	Model       model.ModelID         `json:"model"`
	ContextUsed assistant.ContextUsed `json:"context_used"`
	Sources     []rag.Source          `json:"sources"`
}

func newChatResp(o assistant.GenerateOutput) chatResp {
	sources := o.Sources
	if sources == nil {
		sources = []rag.Source{}
	}
	return chatResp{Response: o.Response, Model: o.ModelID, ContextUsed: o.ContextUsed, Sources: sources}
}

type historyResp struct {
	ContextType string           `json:"context_type"`
	Turns       []assistant.Turn `json:"turns"`
}
