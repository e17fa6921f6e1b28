package usecase

import "hr-assistant/internal/model"

// modelChoice is one country's entry in the model selection reply.
type modelChoice struct {
	Model  string `json:"model"`
	Reason string `json:"reason"`
}

// employmentOption is what the model sees of an employment_model entity.
type employmentOption struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// cacheKey is fingerprinted into the strategy cache key.
type cacheKey struct {
	Company      string         `json:"company"`
	Countries    []string       `json:"countries"`
	Requirements map[string]any `json:"requirements"`
}

// comparisonView is the subset of a comparison quoted in prompts.
type comparisonView struct {
	Legal     *model.LegalComparison     `json:"legal_comparison,omitempty"`
	Tax       *model.TaxComparison       `json:"tax_comparison,omitempty"`
	Insurance *model.InsuranceComparison `json:"insurance_comparison,omitempty"`
	Cost      *model.CostComparison      `json:"cost_comparison,omitempty"`
	Risk      *model.RiskComparison      `json:"risk_comparison,omitempty"`
}
