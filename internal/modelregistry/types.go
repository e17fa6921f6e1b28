package modelregistry

import (
	"time"

	"hr-assistant/internal/model"
)

// ExtraParams keys understood by the provider-backed factory.
const (
	ParamProvider = "provider"
	ParamModel    = "model"
	ParamBaseURL  = "base_url"
)

// Stats are per-variant call statistics. They survive handle rebuilds.
type Stats struct {
	Calls      int64
	Errors     int64
	AvgLatency time.Duration
	LastUsed   time.Time
}

// Health states reported by CheckHealth.
const (
	HealthHealthy        = "healthy"
	HealthUnhealthy      = "unhealthy"
	HealthNotInitialized = "not_initialized"
)

const (
	HealthPrompt         = "你好，這是一個測試。請回答：OK"
	DefaultHealthTimeout = 10 * time.Second
)

// HealthStatus is the outcome of one variant's health check.
type HealthStatus struct {
	Model        model.ModelID
	Status       string
	ResponseTime time.Duration
	LastCheck    time.Time
	Error        string
}

// Options configures the registry.
type Options struct {
	Factory Factory
	// Configs override the built-in capability table per variant.
	Configs map[model.ModelID]model.ModelConfig
	// Variants lists the variants InitializeAll builds. Empty means every variant in the table.
	Variants []model.ModelID
	Default  model.ModelID
	Now      func() time.Time
	// HealthTimeout bounds each variant's health check. Zero uses DefaultHealthTimeout.
	HealthTimeout time.Duration
}
