package model

import "time"

// Domain is a comparison domain.
type Domain string

const (
	DomainLegal     Domain = "legal"
	DomainTax       Domain = "tax"
	DomainInsurance Domain = "insurance"
	DomainCost      Domain = "cost"
	DomainRisk      Domain = "risk"
)

// AllDomains lists every comparison domain in canonical order.
var AllDomains = []Domain{DomainLegal, DomainTax, DomainInsurance, DomainCost, DomainRisk}

// Valid reports whether d is a known domain.
func (d Domain) Valid() bool {
	switch d {
	case DomainLegal, DomainTax, DomainInsurance, DomainCost, DomainRisk:
		return true
	}
	return false
}

// CountryComparison is the joined result of every requested domain.
// A nil domain pointer means the domain was not requested or degraded.
type CountryComparison struct {
	Countries      []string             `json:"countries"`
	Legal          *LegalComparison     `json:"legal_comparison,omitempty"`
	Tax            *TaxComparison       `json:"tax_comparison,omitempty"`
	Insurance      *InsuranceComparison `json:"insurance_comparison,omitempty"`
	Cost           *CostComparison      `json:"cost_comparison,omitempty"`
	Risk           *RiskComparison      `json:"risk_comparison,omitempty"`
	Recommendation string               `json:"recommendation"`
}

type KeyDifference struct {
	Aspect      string            `json:"aspect"`
	Differences map[string]string `json:"differences"`
}

type CategoryComparison struct {
	Summary        string             `json:"summary"`
	KeyDifferences []KeyDifference    `json:"key_differences"`
	Scores         map[string]float64 `json:"scores"`
}

type LegalComparison struct {
	CategoryComparisons map[string]CategoryComparison `json:"category_comparisons"`
	ComplianceScores    map[string]float64            `json:"compliance_scores"`
	Timestamp           time.Time                     `json:"timestamp"`
}

type TaxComparison struct {
	IncomeTax      map[string]map[string]float64 `json:"income_tax"`
	SocialSecurity map[string]map[string]float64 `json:"social_security"`
	Treaties       map[string][]string           `json:"tax_treaties"`
	TaxBurden      map[string]float64            `json:"tax_burden"`
	Timestamp      time.Time                     `json:"timestamp"`
}

type InsuranceComparison struct {
	Mandatory    map[string][]string           `json:"mandatory_insurances"`
	Employer     map[string]map[string]float64 `json:"employer_contributions"`
	Employee     map[string]map[string]float64 `json:"employee_contributions"`
	EmployerCost map[string]float64            `json:"total_employer_cost"`
	Timestamp    time.Time                     `json:"timestamp"`
}

type CostItem struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Frequency string  `json:"frequency"`
}

type CostComparison struct {
	CostTypes  map[string]map[string]CostItem `json:"cost_types"`
	TotalCosts map[string]float64             `json:"total_costs"`
	Timestamp  time.Time                      `json:"timestamp"`
}

type RiskItem struct {
	Severity             float64  `json:"severity"`
	Likelihood           float64  `json:"likelihood"`
	MitigationStrategies []string `json:"mitigation_strategies"`
	RiskScore            float64  `json:"risk_score"`
}

type RiskComparison struct {
	RiskTypes  map[string]map[string]RiskItem `json:"risk_types"`
	RiskScores map[string]float64             `json:"risk_scores"`
	Timestamp  time.Time                      `json:"timestamp"`
}
