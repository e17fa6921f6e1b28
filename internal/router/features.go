package router

import (
	"strings"
	"unicode/utf8"

	"hr-assistant/internal/model"
)

// ExtractFeatures is the default keyword and length based feature extractor. It never fails.
func ExtractFeatures(query, taskType string) (model.TaskFeatures, error) {
	return model.TaskFeatures{
		QueryLength: utf8.RuneCountInString(query),
		Complexity:  ClassifyComplexity(query),
		TaskType:    taskType,
	}, nil
}

// ClassifyComplexity matches keyword sets first and falls back to query length.
func ClassifyComplexity(query string) model.Complexity {
	lower := strings.ToLower(query)
	switch {
	case containsAny(lower, HighComplexityKeywords):
		return model.ComplexityHigh
	case containsAny(lower, MediumComplexityKeywords):
		return model.ComplexityMedium
	case containsAny(lower, LowComplexityKeywords):
		return model.ComplexityLow
	}

	n := utf8.RuneCountInString(query)
	switch {
	case n > HighComplexityLength:
		return model.ComplexityHigh
	case n > MediumComplexityLength:
		return model.ComplexityMedium
	default:
		return model.ComplexityLow
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
