package model

import (
	"fmt"
	"maps"
)

// ModelID identifies a backend model variant.
type ModelID string

const (
	ModelHighCapability ModelID = "high_capability"
	ModelFast           ModelID = "fast"
	ModelLongContext    ModelID = "long_context"
	ModelCustom         ModelID = "custom"
)

// AllModels lists every variant in a stable order.
var AllModels = []ModelID{ModelHighCapability, ModelFast, ModelLongContext, ModelCustom}

func (m ModelID) String() string { return string(m) }

// Valid reports whether m is one of the closed set of variants.
func (m ModelID) Valid() bool {
	switch m {
	case ModelHighCapability, ModelFast, ModelLongContext, ModelCustom:
		return true
	}
	return false
}

// ParseModelID accepts the canonical ids plus the legacy backend names.
func ParseModelID(s string) (ModelID, error) {
	switch s {
	case "high_capability", "gpt-4":
		return ModelHighCapability, nil
	case "fast", "gpt-3.5-turbo":
		return ModelFast, nil
	case "long_context", "deepseek-r1":
		return ModelLongContext, nil
	case "custom":
		return ModelCustom, nil
	}
	return "", fmt.Errorf("unknown model id %q", s)
}

// ModelConfig is the per-variant generation configuration.
type ModelConfig struct {
	Temperature float64        `json:"temperature"`
	MaxTokens   int            `json:"max_tokens"`
	ExtraParams map[string]any `json:"extra_params,omitempty"`
}

// Clone copies the config so callers cannot mutate registry state.
func (c ModelConfig) Clone() ModelConfig {
	c.ExtraParams = maps.Clone(c.ExtraParams)
	return c
}

// Capabilities is the built-in capability table, used as defaults.
func Capabilities() map[ModelID]ModelConfig {
	return map[ModelID]ModelConfig{
		ModelHighCapability: {Temperature: 0.7, MaxTokens: 2000},
		ModelFast:           {Temperature: 0.8, MaxTokens: 2000},
		ModelLongContext:    {Temperature: 0.6, MaxTokens: 4000},
		ModelCustom:         {Temperature: 0.7, MaxTokens: 2000},
	}
}
