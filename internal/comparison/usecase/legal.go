package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"hr-assistant/internal/comparison"
	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/pkg/llmjson"
)

func (uc *implUseCase) compareLegal(ctx context.Context, handle modelregistry.Handle, countries []string) *model.LegalComparison {
	byCountry, err := uc.entitiesByCountry(ctx, model.EntityLaw, countries)
	if err != nil {
		uc.l.Errorf(ctx, "comparison.compareLegal: %v", err)
		return nil
	}

	laws := make(map[string][]model.Law, len(countries))
	categories := map[string]struct{}{}
	for _, c := range countries {
		for _, e := range byCountry[c] {
			var law model.Law
			if err := e.Decode(&law); err != nil {
				uc.l.Warnf(ctx, "comparison.compareLegal: %v", err)
				continue
			}
			if law.Title == "" {
				law.Title = e.Name
			}
			laws[c] = append(laws[c], law)
			for _, cat := range law.Categories {
				categories[cat] = struct{}{}
			}
		}
	}

	out := &model.LegalComparison{
		CategoryComparisons: make(map[string]model.CategoryComparison, len(categories)),
		ComplianceScores:    make(map[string]float64, len(countries)),
		Timestamp:           uc.now(),
	}
	for _, cat := range slices.Sorted(maps.Keys(categories)) {
		out.CategoryComparisons[cat] = uc.compareCategory(ctx, handle, cat, countries, laws)
	}

	for _, c := range countries {
		var sum float64
		var n int
		for _, cc := range out.CategoryComparisons {
			if s, ok := cc.Scores[c]; ok {
				sum += s
				n++
			}
		}
		if n > 0 {
			out.ComplianceScores[c] = sum / float64(n)
		} else {
			out.ComplianceScores[c] = 0
		}
	}
	return out
}

// compareCategory asks the model to compare one law category and degrades to neutral scores.
func (uc *implUseCase) compareCategory(ctx context.Context, handle modelregistry.Handle, category string, countries []string, laws map[string][]model.Law) model.CategoryComparison {
	inCategory := make(map[string][]model.Law, len(countries))
	for _, c := range countries {
		inCategory[c] = []model.Law{}
		for _, law := range laws[c] {
			if slices.Contains(law.Categories, category) {
				inCategory[c] = append(inCategory[c], law)
			}
		}
	}

	payload, err := json.MarshalIndent(inCategory, "", "  ")
	if err != nil {
		uc.l.Warnf(ctx, "comparison.compareCategory: marshal %s: %v", category, err)
		return legalFallback(countries)
	}

	reply, err := handle.Predict(ctx, fmt.Sprintf(legalPrompt, category, payload))
	if err != nil {
		uc.l.Warnf(ctx, "comparison.compareCategory: predict %s: %v", category, err)
		return legalFallback(countries)
	}

	parsed, err := llmjson.DecodeWithSchema[legalReply](reply, legalReplySchema)
	if err != nil {
		uc.l.Warnf(ctx, "comparison.compareCategory: decode %s: %v", category, err)
		return legalFallback(countries)
	}
	if parsed.KeyDifferences == nil {
		parsed.KeyDifferences = []model.KeyDifference{}
	}
	if parsed.Scores == nil {
		parsed.Scores = map[string]float64{}
	}
	return model.CategoryComparison{
		Summary:        parsed.Summary,
		KeyDifferences: parsed.KeyDifferences,
		Scores:         parsed.Scores,
	}
}

func legalFallback(countries []string) model.CategoryComparison {
	scores := make(map[string]float64, len(countries))
	for _, c := range countries {
		scores[c] = comparison.LegalFallbackScore
	}
	return model.CategoryComparison{
		Summary:        "",
		KeyDifferences: []model.KeyDifference{},
		Scores:         scores,
	}
}
