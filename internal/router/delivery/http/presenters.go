package http

import (
	"hr-assistant/internal/model"
	"hr-assistant/internal/router"
)

// --- Request DTOs ---

type routeReq struct {
	Query     string `json:"query"      binding:"required"`
	TaskType  string `json:"task_type"`
	ContextID string `json:"context_id"`
}

type performanceReq struct {
	Metrics map[string]float64 `json:"metrics" binding:"required"`
}

// --- Response DTOs ---

type routeResp struct {
	Model    model.ModelID      `json:"model"`
	Features model.TaskFeatures `json:"features"`
}

func newRouteResp(id model.ModelID, query, taskType string) routeResp {
	f, _ := router.ExtractFeatures(query, taskType)
	return routeResp{Model: id, Features: f}
}

type statsResp struct {
	router.Statistics
	Recent []model.RoutingDecision `json:"recent"`
}

// recentLimit bounds the decisions echoed by the stats endpoint.
const recentLimit = 20

func newStatsResp(s router.Statistics, history []model.RoutingDecision) statsResp {
	if len(history) > recentLimit {
		history = history[len(history)-recentLimit:]
	}
	return statsResp{Statistics: s, Recent: history}
}
