// Package app wires the domain use cases from configuration. Both the API
// server and hrctl build on it.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"hr-assistant/config"
	"hr-assistant/internal/assistant"
	assistantUC "hr-assistant/internal/assistant/usecase"
	"hr-assistant/internal/comparison"
	comparisonUC "hr-assistant/internal/comparison/usecase"
	"hr-assistant/internal/contextmgr"
	contextUC "hr-assistant/internal/contextmgr/usecase"
	knowledgeRepo "hr-assistant/internal/knowledge/repository"
	knowledgeSQLite "hr-assistant/internal/knowledge/repository/sqlite"
	"hr-assistant/internal/modelregistry"
	registryUC "hr-assistant/internal/modelregistry/usecase"
	"hr-assistant/internal/rag"
	ragUC "hr-assistant/internal/rag/usecase"
	retrievalRepo "hr-assistant/internal/retrieval/repository"
	retrievalQdrant "hr-assistant/internal/retrieval/repository/qdrant"
	"hr-assistant/internal/router"
	"hr-assistant/internal/strategy"
	strategyUC "hr-assistant/internal/strategy/usecase"
	"hr-assistant/pkg/llmprovider"
	"hr-assistant/pkg/log"
	pkgOpenAI "hr-assistant/pkg/openai"
	pkgQdrant "hr-assistant/pkg/qdrant"
	"hr-assistant/pkg/voyage"
)

// Embedding providers accepted in embedding.provider.
const (
	EmbeddingVoyage = "voyage"
	EmbeddingOpenAI = "openai"
)

// App holds every wired component.
type App struct {
	DB        *sql.DB
	Knowledge knowledgeRepo.Repository
	Retrieval retrievalRepo.Repository

	Models      modelregistry.UseCase
	Router      *router.ModelRouter
	Contexts    contextmgr.UseCase
	RAG         rag.UseCase
	Assistant   assistant.UseCase
	Comparisons comparison.UseCase
	Strategies  strategy.UseCase
}

// OpenKnowledge opens the knowledge graph database on its own, for commands
// that need nothing else.
func OpenKnowledge(cfg *config.Config, l log.Logger) (*sql.DB, knowledgeRepo.Repository, error) {
	db, err := knowledgeSQLite.Open(cfg.Knowledge.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("knowledge: %w", err)
	}
	return db, knowledgeSQLite.New(db, l), nil
}

// NewEmbedder picks the embedding client named by cfg.Provider.
func NewEmbedder(cfg config.EmbeddingConfig) (retrievalRepo.Embedder, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", EmbeddingVoyage:
		return voyage.New(voyage.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	case EmbeddingOpenAI:
		return pkgOpenAI.New(pkgOpenAI.Config{
			APIKey:              cfg.APIKey,
			BaseURL:             cfg.BaseURL,
			EmbeddingModel:      cfg.Model,
			EmbeddingDimensions: cfg.Dimensions,
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}

// New builds the whole graph. Model handles and the vector collection are
// initialised eagerly; failures there are logged and surface later as
// upstream errors rather than aborting startup.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	db, knowledge, err := OpenKnowledge(cfg, l)
	if err != nil {
		return nil, err
	}

	embedder, err := NewEmbedder(cfg.Embedding)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("embedding: %w", err)
	}
	qdrantOpts := []pkgQdrant.Option{pkgQdrant.WithHTTPClient(&http.Client{Timeout: cfg.Qdrant.Timeout})}
	if cfg.Qdrant.APIKey != "" {
		qdrantOpts = append(qdrantOpts, pkgQdrant.WithAPIKey(cfg.Qdrant.APIKey))
	}
	qdrantRepo := retrievalQdrant.New(pkgQdrant.NewClient(cfg.Qdrant.URL, qdrantOpts...), embedder, retrievalQdrant.Options{
		Collection: cfg.Qdrant.CollectionName,
		VectorSize: cfg.Qdrant.VectorSize,
	}, l)
	if err := qdrantRepo.EnsureCollection(ctx); err != nil {
		l.Warnf(ctx, "app.New: vector collection not ready: %v", err)
	}

	// Probe the provider list once so misconfigured keys show up at startup.
	if providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l); err != nil {
		l.Warnf(ctx, "app.New: no usable LLM provider: %v", err)
	} else {
		l.Infof(ctx, "app.New: %d LLM providers available", len(providers))
	}

	factory, err := registryUC.NewProviderFactory(cfg.LLM, l)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	configs, variants, def, err := modelregistry.ConfigsFromConfig(cfg.Models)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("models: %w", err)
	}
	registry := registryUC.New(modelregistry.Options{
		Factory:  factory,
		Configs:  configs,
		Variants: variants,
		Default:  def,
	}, l)
	if err := registry.InitializeAll(ctx); err != nil {
		l.Warnf(ctx, "app.New: model registry not initialised: %v", err)
	}

	modelRouter := router.New(registry, router.Options{HistoryCap: cfg.History.RouteCap}, l)
	contexts := contextUC.New(qdrantRepo, contextUC.Options{
		TopK:             cfg.Context.TopK,
		MaxContextLength: cfg.Context.MaxContextLength,
		CacheCapacity:    cfg.Context.CacheCapacity,
	}, l)
	ragPipeline := ragUC.New(contexts, modelRouter, registry, qdrantRepo, nil, l)
	comparisons := comparisonUC.New(knowledge, registry, comparisonUC.Options{
		CacheCapacity: cfg.Cache.ComparisonCapacity,
		CacheTTL:      cfg.Cache.ComparisonTTL,
	}, l)

	return &App{
		DB:          db,
		Knowledge:   knowledge,
		Retrieval:   qdrantRepo,
		Models:      registry,
		Router:      modelRouter,
		Contexts:    contexts,
		RAG:         ragPipeline,
		Assistant:   assistantUC.New(ragPipeline, registry, assistantUC.Options{HistoryCap: cfg.History.ConversationCap}, l),
		Comparisons: comparisons,
		Strategies: strategyUC.New(comparisons, knowledge, registry, strategyUC.Options{
			CacheCapacity: cfg.Cache.StrategyCapacity,
			CacheTTL:      cfg.Cache.StrategyTTL,
		}, l),
	}, nil
}

// Close releases the knowledge graph database.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
