package comparison

import "hr-assistant/internal/model"

// --- UseCase Inputs ---

// CompareInput selects countries and domains. Nil Domains means every domain and
// nil FocusAreas weighs every domain 1.0.
type CompareInput struct {
	CountryIDs []string
	Domains    []model.Domain
	FocusAreas map[string]float64
}
