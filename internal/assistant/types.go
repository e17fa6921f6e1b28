package assistant

import (
	"time"

	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
	"hr-assistant/internal/rag"
)

// --- UseCase Inputs ---

type GenerateInput struct {
	Query       string
	ContextType string
	TaskType    string
	TaskContext map[string]any
}

// --- UseCase Outputs ---

type ContextUsed struct {
	RAGSummary    contextmgr.Summary `json:"rag_context"`
	HistoryLength int                `json:"history_length"`
	TaskContext   bool               `json:"task_context"`
}

type GenerateOutput struct {
	Response    string
	ModelID     model.ModelID
	ContextUsed ContextUsed
	Sources     []rag.Source
}

// Turn is one remembered exchange.
type Turn struct {
	Query      string             `json:"query"`
	Response   string             `json:"response"`
	Timestamp  time.Time          `json:"timestamp"`
	RAGSummary contextmgr.Summary `json:"rag_summary"`
}
