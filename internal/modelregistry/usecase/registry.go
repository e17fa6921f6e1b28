package usecase

import (
	"context"
	"fmt"

	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
)

// InitializeAll builds a handle for every configured variant. The first failure aborts
// and the previously installed handles stay in place.
func (uc *implUseCase) InitializeAll(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	built := make(map[model.ModelID]modelregistry.Handle, len(uc.variants))
	for _, id := range uc.variants {
		h, err := uc.build(id, uc.configs[id])
		if err != nil {
			uc.l.Errorf(ctx, "modelregistry.InitializeAll: %s: %v", id, err)
			return model.Upstream(model.SourceLLM, fmt.Errorf("initialize %s: %w", id, err))
		}
		built[id] = h
	}

	uc.handles = built
	uc.l.Infof(ctx, "modelregistry.InitializeAll: %d model handles ready", len(built))
	return nil
}

func (uc *implUseCase) Get(ctx context.Context, id model.ModelID) (modelregistry.Handle, error) {
	if id == "" {
		id = uc.def
	}
	uc.mu.RLock()
	h, ok := uc.handles[id]
	uc.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrNotInitialized, id)
	}
	return h, nil
}

// UpdateConfig replaces the config of id and rebuilds its handle if one exists.
// On rebuild failure the old config and handle are kept.
func (uc *implUseCase) UpdateConfig(ctx context.Context, id model.ModelID, cfg model.ModelConfig) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %s", modelregistry.ErrUnknownModel, id)
	}
	if cfg.MaxTokens < 0 || cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("%w: temperature=%v max_tokens=%d", modelregistry.ErrInvalidConfig, cfg.Temperature, cfg.MaxTokens)
	}
	cfg = cfg.Clone()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.handles[id]; ok {
		h, err := uc.build(id, cfg)
		if err != nil {
			uc.l.Errorf(ctx, "modelregistry.UpdateConfig: rebuild %s: %v", id, err)
			return model.Upstream(model.SourceLLM, fmt.Errorf("rebuild %s: %w", id, err))
		}
		uc.handles[id] = h
	}
	uc.configs[id] = cfg
	uc.l.Infof(ctx, "modelregistry.UpdateConfig: %s temperature=%v max_tokens=%d", id, cfg.Temperature, cfg.MaxTokens)
	return nil
}

func (uc *implUseCase) Config(id model.ModelID) (model.ModelConfig, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	cfg, ok := uc.configs[id]
	return cfg.Clone(), ok
}

func (uc *implUseCase) Configs() map[model.ModelID]model.ModelConfig {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make(map[model.ModelID]model.ModelConfig, len(uc.configs))
	for id, cfg := range uc.configs {
		out[id] = cfg.Clone()
	}
	return out
}

func (uc *implUseCase) Initialized(id model.ModelID) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	_, ok := uc.handles[id]
	return ok
}

func (uc *implUseCase) DefaultModel() model.ModelID {
	return uc.def
}

func (uc *implUseCase) SelectBest(taskType string, contextLength int) model.ModelID {
	return modelregistry.SelectBest(taskType, contextLength)
}

func (uc *implUseCase) build(id model.ModelID, cfg model.ModelConfig) (modelregistry.Handle, error) {
	if uc.factory == nil {
		return nil, modelregistry.ErrNoVariants
	}
	h, err := uc.factory(id, cfg.Clone())
	if err != nil {
		return nil, err
	}
	return &instrumentedHandle{inner: h, record: uc.record}, nil
}
