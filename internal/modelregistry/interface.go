package modelregistry

import (
	"context"

	"hr-assistant/internal/model"
)

// Handle is a live connection to one model variant.
type Handle interface {
	ID() model.ModelID
	Predict(ctx context.Context, prompt string) (string, error)
	Generate(ctx context.Context, prompts []string) ([]string, error)
}

// Factory builds a handle for a variant from its configuration.
type Factory func(id model.ModelID, cfg model.ModelConfig) (Handle, error)

//go:generate mockery --name UseCase
type UseCase interface {
	InitializeAll(ctx context.Context) error
	// Get returns the handle for id, or for the default variant when id is empty.
	Get(ctx context.Context, id model.ModelID) (Handle, error)
	UpdateConfig(ctx context.Context, id model.ModelID, cfg model.ModelConfig) error

	Config(id model.ModelID) (model.ModelConfig, bool)
	Configs() map[model.ModelID]model.ModelConfig
	Initialized(id model.ModelID) bool
	DefaultModel() model.ModelID

	SelectBest(taskType string, contextLength int) model.ModelID
	Stats(id model.ModelID) Stats
	// CheckHealth sends a short prompt to every initialized variant concurrently.
	CheckHealth(ctx context.Context) []HealthStatus
}

// Getter is the read side consumers need to obtain a handle.
type Getter interface {
	Get(ctx context.Context, id model.ModelID) (Handle, error)
}
