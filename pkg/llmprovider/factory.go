package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"hr-assistant/config"
	"hr-assistant/pkg/deepseek"
	"hr-assistant/pkg/gemini"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/openai"
	"hr-assistant/pkg/qwen"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped with a warning.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var (
		providers  []Provider
		initErrors []string
	)
	for _, p := range enabled {
		provider, err := CreateProvider(p)
		if err != nil {
			initErrors = append(initErrors, err.Error())
			logger.Warnf(ctx, "llmprovider.InitializeProviders: skipping provider %s (priority %d): %v", p.Name, p.Priority, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	return providers, nil
}

// CreateProvider builds one provider, honouring its timeout.
func CreateProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		timeout = d
	}

	var (
		p   Provider
		err error
	)
	switch cfg.Name {
	case "openai", "custom", "azure":
		var client openai.IOpenAI
		client, err = openai.New(openai.Config{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL, Model: cfg.Model})
		if err == nil {
			p = NewOpenAIAdapter(cfg.Name, client)
		}
	case "deepseek":
		var client *deepseek.Client
		client, err = deepseek.New(deepseek.Config{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL})
		if err == nil {
			p = NewDeepSeekAdapter(client)
		}
	case "qwen", "alibaba":
		var client qwen.IQwen
		client, err = qwen.New(qwen.Config{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL})
		if err == nil {
			p = NewQwenAdapter(client)
		}
	case "gemini":
		var client gemini.IGemini
		client, err = gemini.New(gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model, APIURL: cfg.BaseURL})
		if err == nil {
			p = NewGeminiAdapter(client)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
	}
	return WithTimeout(p, timeout), nil
}
