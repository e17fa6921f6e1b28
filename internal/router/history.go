package router

import (
	"context"
	"maps"

	"hr-assistant/internal/model"
)

func (r *ModelRouter) record(d model.RoutingDecision) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, d)
	if over := len(r.history) - r.cap; over > 0 {
		r.history = append(r.history[:0:0], r.history[over:]...)
	}
}

// UpdatePerformanceMetrics merges metrics for a model and stamps last_updated (unix seconds).
func (r *ModelRouter) UpdatePerformanceMetrics(ctx context.Context, id model.ModelID, metrics map[string]float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.performance[id]
	if !ok {
		m = make(map[string]float64, len(metrics)+1)
		r.performance[id] = m
	}
	maps.Copy(m, metrics)
	m[MetricLastUpdated] = float64(r.now().Unix())
	r.l.Infof(ctx, "internal.router.UpdatePerformanceMetrics: %s %v", id, metrics)
}

// PerformanceMetrics returns a copy of the metrics recorded for id.
func (r *ModelRouter) PerformanceMetrics(id model.ModelID) map[string]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.performance[id])
}

func (r *ModelRouter) Statistics(_ context.Context) Statistics {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := Statistics{
		TotalRoutes:          len(r.history),
		ModelDistribution:    make(map[model.ModelID]int),
		TaskTypeDistribution: make(map[string]int),
	}
	for _, d := range r.history {
		s.ModelDistribution[d.SelectedModel]++
		s.TaskTypeDistribution[d.TaskType]++
	}
	return s
}

// History returns a copy of the decision history, oldest first.
func (r *ModelRouter) History() []model.RoutingDecision {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.RoutingDecision, len(r.history))
	copy(out, r.history)
	return out
}
