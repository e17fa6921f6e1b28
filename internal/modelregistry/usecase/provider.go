package usecase

import (
	"context"
	"fmt"
	"sort"

	"hr-assistant/config"
	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/pkg/llmprovider"
	"hr-assistant/pkg/log"
)

// NewProviderFactory returns a Factory binding each variant to the configured LLM providers.
// The variant's "provider" param selects the primary provider; with fallback enabled the
// remaining providers follow in priority order. "model" and "base_url" override the primary.
func NewProviderFactory(cfg config.LLMConfig, l log.Logger) (modelregistry.Factory, error) {
	retryDelay, maxTotal, err := cfg.Durations()
	if err != nil {
		return nil, err
	}
	managerCfg := llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}

	return func(id model.ModelID, mc model.ModelConfig) (modelregistry.Handle, error) {
		chain, err := providerChain(cfg, mc)
		if err != nil {
			return nil, err
		}

		providers := make([]llmprovider.Provider, 0, len(chain))
		for _, pc := range chain {
			p, err := llmprovider.CreateProvider(pc)
			if err != nil {
				return nil, err
			}
			providers = append(providers, p)
		}

		mcfg := managerCfg
		return &providerHandle{
			id:       id,
			cfg:      mc,
			provider: llmprovider.NewManager(providers, &mcfg, l),
		}, nil
	}, nil
}

func providerChain(cfg config.LLMConfig, mc model.ModelConfig) ([]config.ProviderConfig, error) {
	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool { return enabled[i].Priority < enabled[j].Priority })

	if bound, _ := mc.ExtraParams[modelregistry.ParamProvider].(string); bound != "" {
		primary, ok := cfg.Provider(bound)
		if !ok || !primary.Enabled {
			return nil, fmt.Errorf("%w: %s", modelregistry.ErrProviderMissing, bound)
		}
		chain := []config.ProviderConfig{primary}
		if cfg.FallbackEnabled {
			for _, p := range enabled {
				if p.Name != bound {
					chain = append(chain, p)
				}
			}
		}
		enabled = chain
	}
	if len(enabled) == 0 {
		return nil, llmprovider.ErrNoProvidersConfigured
	}

	if m, _ := mc.ExtraParams[modelregistry.ParamModel].(string); m != "" {
		enabled[0].Model = m
	}
	if u, _ := mc.ExtraParams[modelregistry.ParamBaseURL].(string); u != "" {
		enabled[0].BaseURL = u
	}
	return enabled, nil
}

// providerHandle serves one variant through a provider chain.
type providerHandle struct {
	id       model.ModelID
	cfg      model.ModelConfig
	provider llmprovider.Provider
}

func (h *providerHandle) ID() model.ModelID { return h.id }

func (h *providerHandle) Predict(ctx context.Context, prompt string) (string, error) {
	req := llmprovider.Prompt(prompt)
	req.Temperature = h.cfg.Temperature
	req.MaxTokens = h.cfg.MaxTokens

	resp, err := h.provider.GenerateContent(ctx, req)
	if err != nil {
		return "", model.Upstream(model.SourceLLM, err)
	}
	return resp.Text, nil
}

// Generate runs the prompts one after another and stops at the first failure.
func (h *providerHandle) Generate(ctx context.Context, prompts []string) ([]string, error) {
	out := make([]string, 0, len(prompts))
	for _, p := range prompts {
		text, err := h.Predict(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, nil
}
