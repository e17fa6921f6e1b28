package router

import (
	"context"

	"hr-assistant/internal/model"
)

// Router picks a model variant per query. Route never fails.
type Router interface {
	Route(ctx context.Context, input RouteInput) model.ModelID
	UpdatePerformanceMetrics(ctx context.Context, id model.ModelID, metrics map[string]float64)
	Statistics(ctx context.Context) Statistics
	History() []model.RoutingDecision
}

// Selector is the capability-based fallback used when no recent decision is similar.
// modelregistry.UseCase satisfies it.
type Selector interface {
	SelectBest(taskType string, contextLength int) model.ModelID
}
