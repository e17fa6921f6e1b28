package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hr-assistant/internal/comparison"
	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
)

// recommend asks the model for a hiring recommendation and falls back to a static notice.
func (uc *implUseCase) recommend(ctx context.Context, handle modelregistry.Handle, result *model.CountryComparison, focus map[string]float64) string {
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		uc.l.Warnf(ctx, "comparison.recommend: marshal comparison: %v", err)
		return comparison.RecommendationFallback
	}
	weights, err := json.MarshalIndent(focus, "", "  ")
	if err != nil {
		uc.l.Warnf(ctx, "comparison.recommend: marshal focus: %v", err)
		return comparison.RecommendationFallback
	}

	prompt := fmt.Sprintf(recommendationPrompt, strings.Join(result.Countries, ", "), payload, weights)
	reply, err := handle.Predict(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "comparison.recommend: predict: %v", err)
		return comparison.RecommendationFallback
	}
	return strings.TrimSpace(reply)
}
