package router

import (
	"context"
	"fmt"
	"math"

	"hr-assistant/internal/model"
)

// Route selects a model for the query. Any internal failure, including a panic,
// is logged and yields the fast model.
func (r *ModelRouter) Route(ctx context.Context, input RouteInput) (selected model.ModelID) {
	defer func() {
		if rec := recover(); rec != nil {
			r.l.Errorf(ctx, "%s: recovered panic: %v", LogPrefixRoute, rec)
			selected = model.ModelFast
		}
	}()

	id, err := r.route(ctx, input)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v, falling back to %s", LogPrefixRoute, err, FallbackModel)
		return model.ModelFast
	}
	return id
}

func (r *ModelRouter) route(ctx context.Context, input RouteInput) (model.ModelID, error) {
	contextLength := 0
	if input.Context != nil {
		contextLength = input.Context.SerializedLength()
	}

	features, err := r.features(input.Query, input.TaskType)
	if err != nil {
		return "", fmt.Errorf("extract features: %w", err)
	}

	if id, ok := r.similarDecision(features); ok {
		r.l.Debugf(ctx, "%s: reused recent decision %s (task=%s complexity=%s)", LogPrefixRoute, id, features.TaskType, features.Complexity)
		return id, nil
	}

	if r.selector == nil {
		return "", fmt.Errorf("no selector configured")
	}
	id := r.selector.SelectBest(input.TaskType, contextLength)
	if !id.Valid() {
		return "", fmt.Errorf("selector returned unknown model %q", id)
	}

	r.record(model.RoutingDecision{
		Timestamp:     r.now(),
		Query:         input.Query,
		TaskType:      input.TaskType,
		SelectedModel: id,
		Features:      features,
	})
	r.l.Infof(ctx, "%s: task=%s complexity=%s context_length=%d -> %s", LogPrefixRoute, input.TaskType, features.Complexity, contextLength, id)
	return id, nil
}

// similarDecision scans the lookback window for entries with the same task type and a close
// complexity, returning the one whose model has the best performance score. The earliest wins ties.
func (r *ModelRouter) similarDecision(f model.TaskFeatures) (model.ModelID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := max(0, len(r.history)-r.lookback)
	var (
		best      model.ModelID
		bestScore float64
		found     bool
	)
	for _, d := range r.history[start:] {
		if d.Features.TaskType != f.TaskType {
			continue
		}
		if math.Abs(d.Features.Complexity.Ordinal()-f.Complexity.Ordinal()) >= SimilarityThreshold {
			continue
		}
		score := r.performance[d.SelectedModel][MetricPerformanceScore]
		if !found || score > bestScore {
			best, bestScore, found = d.SelectedModel, score, true
		}
	}
	return best, found
}
