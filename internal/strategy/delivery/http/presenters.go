package http

import "hr-assistant/internal/strategy"

// --- Request DTOs ---

type generateReq struct {
	CompanyName     string             `json:"company_name"     binding:"required"`
	TargetCountries []string           `json:"target_countries" binding:"required,min=1,dive,required"`
	Requirements    map[string]any     `json:"requirements"`
	FocusAreas      map[string]float64 `json:"focus_areas"`
}

func (r generateReq) toInput() strategy.GenerateInput {
	return strategy.GenerateInput{
		CompanyName:     r.CompanyName,
		TargetCountries: r.TargetCountries,
		Requirements:    r.Requirements,
		FocusAreas:      r.FocusAreas,
	}
}
