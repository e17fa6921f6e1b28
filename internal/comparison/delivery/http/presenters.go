package http

import (
	"hr-assistant/internal/comparison"
	"hr-assistant/internal/model"
)

// --- Request DTOs ---

type compareReq struct {
	CountryIDs []string           `json:"country_ids" binding:"required,min=1,dive,required"`
	Domains    []string           `json:"domains"     binding:"omitempty,dive,oneof=legal tax insurance cost risk"`
	FocusAreas map[string]float64 `json:"focus_areas"`
}

func (r compareReq) toInput() comparison.CompareInput {
	in := comparison.CompareInput{CountryIDs: r.CountryIDs, FocusAreas: r.FocusAreas}
	for _, d := range r.Domains {
		in.Domains = append(in.Domains, model.Domain(d))
	}
	return in
}
