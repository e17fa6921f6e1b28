package http

import (
	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Query       string         `json:"query"        binding:"required"`
	ContextType string         `json:"context_type"`
	Metadata    map[string]any `json:"metadata"`
}

func (r createReq) toInput() contextmgr.CreateInput {
	return contextmgr.CreateInput{
		Query:       r.Query,
		ContextType: r.ContextType,
		Metadata:    r.Metadata,
	}
}

type attachedDocReq struct {
	Content        string         `json:"content"         binding:"required"`
	Metadata       map[string]any `json:"metadata"`
	RelevanceScore *float64       `json:"relevance_score" binding:"omitempty,gte=0,lte=1"`
	Source         string         `json:"source"`
}

type updateReq struct {
	Global    map[string]any   `json:"global_context"`
	Documents []attachedDocReq `json:"documents" binding:"dive"`
}

func (r updateReq) toInput() contextmgr.UpdateInput {
	docs := make([]contextmgr.AttachedDocument, len(r.Documents))
	for i, d := range r.Documents {
		docs[i] = contextmgr.AttachedDocument{
			Content:        d.Content,
			Metadata:       d.Metadata,
			RelevanceScore: d.RelevanceScore,
			Source:         d.Source,
		}
	}
	return contextmgr.UpdateInput{Global: r.Global, Documents: docs}
}

// --- Response DTOs ---

type contextResp struct {
	ID      string             `json:"context_id"`
	Context model.ModelContext `json:"context"`
}

func newContextResp(id string, mc model.ModelContext) contextResp {
	return contextResp{ID: id, Context: mc}
}
