package usecase

import (
	"context"

	"hr-assistant/internal/knowledge/repository"
	"hr-assistant/internal/model"
)

// entitiesByCountry queries one entity type per country, preserving the input order.
func (uc *implUseCase) entitiesByCountry(ctx context.Context, t model.EntityType, countries []string) (map[string][]model.Entity, error) {
	out := make(map[string][]model.Entity, len(countries))
	for _, c := range countries {
		entities, err := uc.repo.QueryEntities(ctx, t, map[string]any{repository.FilterCountry: c})
		if err != nil {
			return nil, err
		}
		out[c] = entities
	}
	return out, nil
}

func (uc *implUseCase) compareTax(ctx context.Context, countries []string) *model.TaxComparison {
	byCountry, err := uc.entitiesByCountry(ctx, model.EntityTax, countries)
	if err != nil {
		uc.l.Errorf(ctx, "comparison.compareTax: %v", err)
		return nil
	}

	out := &model.TaxComparison{
		IncomeTax:      map[string]map[string]float64{},
		SocialSecurity: map[string]map[string]float64{},
		Treaties:       map[string][]string{},
		TaxBurden:      map[string]float64{},
		Timestamp:      uc.now(),
	}
	for _, c := range countries {
		entities := byCountry[c]
		if len(entities) == 0 {
			continue
		}
		var sys model.TaxSystem
		if err := entities[0].Decode(&sys); err != nil {
			uc.l.Warnf(ctx, "comparison.compareTax: %v", err)
			continue
		}
		out.IncomeTax[c] = sys.IncomeTaxRates
		out.SocialSecurity[c] = sys.SocialSecurityRates
		out.Treaties[c] = sys.TaxTreaties
		out.TaxBurden[c] = mean(sys.IncomeTaxRates) + mean(sys.SocialSecurityRates)
	}
	return out
}

func (uc *implUseCase) compareInsurance(ctx context.Context, countries []string) *model.InsuranceComparison {
	byCountry, err := uc.entitiesByCountry(ctx, model.EntityInsurance, countries)
	if err != nil {
		uc.l.Errorf(ctx, "comparison.compareInsurance: %v", err)
		return nil
	}

	out := &model.InsuranceComparison{
		Mandatory:    map[string][]string{},
		Employer:     map[string]map[string]float64{},
		Employee:     map[string]map[string]float64{},
		EmployerCost: map[string]float64{},
		Timestamp:    uc.now(),
	}
	for _, c := range countries {
		entities := byCountry[c]
		if len(entities) == 0 {
			continue
		}
		var sys model.InsuranceSystem
		if err := entities[0].Decode(&sys); err != nil {
			uc.l.Warnf(ctx, "comparison.compareInsurance: %v", err)
			continue
		}
		out.Mandatory[c] = sys.MandatoryInsurances
		out.Employer[c] = sys.EmployerContributions
		out.Employee[c] = sys.EmployeeContributions
		out.EmployerCost[c] = sum(sys.EmployerContributions)
	}
	return out
}

func (uc *implUseCase) compareCost(ctx context.Context, countries []string) *model.CostComparison {
	byCountry, err := uc.entitiesByCountry(ctx, model.EntityCost, countries)
	if err != nil {
		uc.l.Errorf(ctx, "comparison.compareCost: %v", err)
		return nil
	}

	out := &model.CostComparison{
		CostTypes:  map[string]map[string]model.CostItem{},
		TotalCosts: make(map[string]float64, len(countries)),
		Timestamp:  uc.now(),
	}
	for _, c := range countries {
		var total float64
		for _, e := range byCountry[c] {
			var cost model.Cost
			if err := e.Decode(&cost); err != nil {
				uc.l.Warnf(ctx, "comparison.compareCost: %v", err)
				continue
			}
			if out.CostTypes[e.Name] == nil {
				out.CostTypes[e.Name] = map[string]model.CostItem{}
			}
			out.CostTypes[e.Name][c] = model.CostItem{Amount: cost.Amount, Currency: cost.Currency, Frequency: cost.Frequency}
			total += cost.Amount
		}
		out.TotalCosts[c] = total
	}
	return out
}

func (uc *implUseCase) compareRisk(ctx context.Context, countries []string) *model.RiskComparison {
	byCountry, err := uc.entitiesByCountry(ctx, model.EntityRisk, countries)
	if err != nil {
		uc.l.Errorf(ctx, "comparison.compareRisk: %v", err)
		return nil
	}

	out := &model.RiskComparison{
		RiskTypes:  map[string]map[string]model.RiskItem{},
		RiskScores: make(map[string]float64, len(countries)),
		Timestamp:  uc.now(),
	}
	for _, c := range countries {
		var total float64
		var n int
		for _, e := range byCountry[c] {
			var risk model.RiskFactor
			if err := e.Decode(&risk); err != nil {
				uc.l.Warnf(ctx, "comparison.compareRisk: %v", err)
				continue
			}
			score := risk.Severity * risk.Likelihood
			if out.RiskTypes[e.Name] == nil {
				out.RiskTypes[e.Name] = map[string]model.RiskItem{}
			}
			out.RiskTypes[e.Name][c] = model.RiskItem{
				Severity:             risk.Severity,
				Likelihood:           risk.Likelihood,
				MitigationStrategies: risk.MitigationStrategies,
				RiskScore:            score,
			}
			total += score
			n++
		}
		if n > 0 {
			out.RiskScores[c] = total / float64(n)
		} else {
			out.RiskScores[c] = 0
		}
	}
	return out
}

func sum(m map[string]float64) float64 {
	var s float64
	for _, v := range m {
		s += v
	}
	return s
}

// mean is 0 for an empty map.
func mean(m map[string]float64) float64 {
	if len(m) == 0 {
		return 0
	}
	return sum(m) / float64(len(m))
}
