package http

import (
	"time"

	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
)

// --- Request DTOs ---

type updateConfigReq struct {
	ID          string         `json:"-"`
	Temperature float64        `json:"temperature" binding:"gte=0,lte=2"`
	MaxTokens   int            `json:"max_tokens"  binding:"required,gt=0"`
	ExtraParams map[string]any `json:"extra_params"`
}

func (r updateConfigReq) toConfig() model.ModelConfig {
	return model.ModelConfig{
		Temperature: r.Temperature,
		MaxTokens:   r.MaxTokens,
		ExtraParams: r.ExtraParams,
	}
}

// --- Response DTOs ---

type statsResp struct {
	Calls        int64      `json:"calls"`
	Errors       int64      `json:"errors"`
	AvgLatencyMS float64    `json:"avg_latency_ms"`
	LastUsed     *time.Time `json:"last_used,omitempty"`
}

type modelResp struct {
	ID          string            `json:"id"`
	Default     bool              `json:"default"`
	Initialized bool              `json:"initialized"`
	Config      model.ModelConfig `json:"config"`
	Stats       statsResp         `json:"stats"`
}

type listResp struct {
	Models []modelResp `json:"models"`
}

func (h *handler) newModelResp(id model.ModelID) modelResp {
	cfg, _ := h.uc.Config(id)
	return modelResp{
		ID:          id.String(),
		Default:     id == h.uc.DefaultModel(),
		Initialized: h.uc.Initialized(id),
		Config:      cfg,
		Stats:       newStatsResp(h.uc.Stats(id)),
	}
}

func (h *handler) newListResp() listResp {
	out := listResp{Models: make([]modelResp, 0, len(model.AllModels))}
	for _, id := range model.AllModels {
		out.Models = append(out.Models, h.newModelResp(id))
	}
	return out
}

type healthItemResp struct {
	Model          string    `json:"model"`
	Status         string    `json:"status"`
	ResponseTimeMS float64   `json:"response_time_ms"`
	LastCheck      time.Time `json:"last_check"`
	Error          string    `json:"error,omitempty"`
}

type healthResp struct {
	Healthy int              `json:"healthy"`
	Total   int              `json:"total"`
	Models  []healthItemResp `json:"models"`
}

func newHealthResp(statuses []modelregistry.HealthStatus) healthResp {
	out := healthResp{Total: len(statuses), Models: make([]healthItemResp, 0, len(statuses))}
	for _, s := range statuses {
		if s.Status == modelregistry.HealthHealthy {
			out.Healthy++
		}
		out.Models = append(out.Models, healthItemResp{
			Model:          s.Model.String(),
			Status:         s.Status,
			ResponseTimeMS: float64(s.ResponseTime) / float64(time.Millisecond),
			LastCheck:      s.LastCheck,
			Error:          s.Error,
		})
	}
	return out
}

func newStatsResp(s modelregistry.Stats) statsResp {
	out := statsResp{
		Calls:        s.Calls,
		Errors:       s.Errors,
		AvgLatencyMS: float64(s.AvgLatency) / float64(time.Millisecond),
	}
	if !s.LastUsed.IsZero() {
		t := s.LastUsed
		out.LastUsed = &t
	}
	return out
}
