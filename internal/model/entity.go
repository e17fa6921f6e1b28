package model

import (
	"encoding/json"
	"fmt"
)

// EntityType is the knowledge graph entity kind.
type EntityType string

const (
	EntityLaw             EntityType = "law"
	EntityTax             EntityType = "tax"
	EntityInsurance       EntityType = "insurance"
	EntityCost            EntityType = "cost"
	EntityRisk            EntityType = "risk"
	EntityEmploymentModel EntityType = "employment_model"
)

// Valid reports whether t is a known entity type.
func (t EntityType) Valid() bool {
	switch t {
	case EntityLaw, EntityTax, EntityInsurance, EntityCost, EntityRisk, EntityEmploymentModel:
		return true
	}
	return false
}

// Entity is a knowledge graph record. Properties hold the type-specific view.
type Entity struct {
	ID         string          `json:"id"`
	Type       EntityType      `json:"type"`
	CountryID  string          `json:"country_id"`
	Name       string          `json:"name"`
	Properties json.RawMessage `json:"properties,omitempty"`
}

// Decode unmarshals Properties into v. Empty properties leave v untouched.
func (e Entity) Decode(v any) error {
	if len(e.Properties) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Properties, v); err != nil {
		return fmt.Errorf("decode %s entity %s: %w", e.Type, e.ID, err)
	}
	return nil
}

// Law is the properties view of a law entity.
type Law struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Summary    string   `json:"summary"`
}

// TaxSystem is the properties view of a tax entity.
type TaxSystem struct {
	IncomeTaxRates      map[string]float64 `json:"income_tax_rates"`
	SocialSecurityRates map[string]float64 `json:"social_security_rates"`
	TaxTreaties         []string           `json:"tax_treaties"`
}

// InsuranceSystem is the properties view of an insurance entity.
type InsuranceSystem struct {
	MandatoryInsurances   []string           `json:"mandatory_insurances"`
	EmployerContributions map[string]float64 `json:"employer_contributions"`
	EmployeeContributions map[string]float64 `json:"employee_contributions"`
}

// Cost is the properties view of a cost entity.
type Cost struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Frequency string  `json:"frequency"`
}

// RiskFactor is the properties view of a risk entity.
type RiskFactor struct {
	Severity             float64  `json:"severity"`
	Likelihood           float64  `json:"likelihood"`
	MitigationStrategies []string `json:"mitigation_strategies"`
}

// EmploymentModel is the properties view of an employment_model entity.
type EmploymentModel struct {
	Description         string   `json:"description"`
	ApplicableCountries []string `json:"applicable_countries"`
	Requirements        []string `json:"requirements"`
}
