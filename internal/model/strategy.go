package model

import "time"

// EmploymentStrategy is a generated cross-country employment plan.
type EmploymentStrategy struct {
	ID                  string               `json:"strategy_id"`
	CompanyName         string               `json:"company_name"`
	TargetCountries     []string             `json:"target_countries"`
	Requirements        map[string]any       `json:"requirements"`
	RecommendedModels   map[string]string    `json:"recommended_models"`
	CostEstimates       map[string]float64   `json:"cost_estimates"`
	RiskAssessments     map[string][]Risk    `json:"risk_assessments"`
	ImplementationSteps []ImplementationStep `json:"implementation_steps"`
	Comparison          *CountryComparison   `json:"comparison,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
}

// Risk is an assessed risk for one country.
type Risk struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Severity    float64 `json:"severity"`
	Likelihood  float64 `json:"likelihood"`
	Mitigation  string  `json:"mitigation"`
}

// ImplementationStep is one phase item of a strategy rollout.
type ImplementationStep struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Phase          string   `json:"phase"`
	Timeline       string   `json:"timeline"`
	Resources      []string `json:"resources"`
	Considerations []string `json:"considerations"`
}
