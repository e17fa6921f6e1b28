package usecase

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"

	"hr-assistant/internal/comparison"
	"hr-assistant/internal/model"
	"hr-assistant/internal/strategy"
	"hr-assistant/pkg/fingerprint"
)

// CacheKey fingerprints company, sorted countries and requirements.
func CacheKey(input strategy.GenerateInput) (string, error) {
	key := cacheKey{
		Company:      input.CompanyName,
		Countries:    slices.Sorted(slices.Values(input.TargetCountries)),
		Requirements: input.Requirements,
	}
	if key.Countries == nil {
		key.Countries = []string{}
	}
	if key.Requirements == nil {
		key.Requirements = map[string]any{}
	}
	return fingerprint.Digest(key)
}

// Generate compares the target countries and asks the model for each planning step.
// Each step degrades to its deterministic fallback on its own.
func (uc *implUseCase) Generate(ctx context.Context, input strategy.GenerateInput) (*model.EmploymentStrategy, error) {
	if strings.TrimSpace(input.CompanyName) == "" {
		uc.l.Errorf(ctx, "strategy.Generate: %v", strategy.ErrEmptyCompany)
		return nil, strategy.ErrEmptyCompany
	}
	if len(input.TargetCountries) == 0 {
		uc.l.Errorf(ctx, "strategy.Generate: %v", strategy.ErrNoCountries)
		return nil, strategy.ErrNoCountries
	}

	key, err := CacheKey(input)
	if err != nil {
		uc.l.Errorf(ctx, "strategy.Generate: cache key: %v", err)
		return nil, err
	}
	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "strategy.Generate: cache hit %s", key)
		return cached, nil
	}

	focus := input.FocusAreas
	if len(focus) == 0 {
		focus = make(map[string]float64, len(model.AllDomains))
		for _, d := range model.AllDomains {
			focus[string(d)] = comparison.DefaultFocusWeight
		}
	}
	countries := slices.Clone(input.TargetCountries)
	requirements := maps.Clone(input.Requirements)
	if requirements == nil {
		requirements = map[string]any{}
	}

	cmp, err := uc.comparisons.Compare(ctx, comparison.CompareInput{CountryIDs: countries, FocusAreas: focus})
	if err != nil {
		uc.l.Errorf(ctx, "strategy.Generate: compare: %v", err)
		return nil, err
	}

	handle, err := uc.models.Get(ctx, model.ModelHighCapability)
	if err != nil {
		uc.l.Errorf(ctx, "strategy.Generate: get model: %v", err)
		return nil, err
	}
	p := planner{uc: uc, handle: handle, countries: countries, requirements: requirements}

	options := uc.employmentOptions(ctx, countries)
	recommended := p.selectModels(ctx, options, cmp)

	s := &model.EmploymentStrategy{
		ID:                  uuid.NewSHA1(strategyNamespace, []byte(key)).String(),
		CompanyName:         input.CompanyName,
		TargetCountries:     countries,
		Requirements:        requirements,
		RecommendedModels:   recommended,
		CostEstimates:       p.estimateCosts(ctx, recommended),
		RiskAssessments:     p.assessRisks(ctx, recommended, cmp),
		ImplementationSteps: p.implementationSteps(ctx, recommended),
		Comparison:          cmp,
		CreatedAt:           uc.now(),
	}

	uc.cache.Put(key, s)
	uc.l.Infof(ctx, "strategy.Generate: %s for %s in %v", s.ID, s.CompanyName, countries)
	return s, nil
}

func (uc *implUseCase) ClearCache(ctx context.Context) {
	uc.cache.Purge()
	uc.l.Infof(ctx, "strategy.ClearCache: cache cleared")
}

// employmentOptions groups every employment model by the countries it applies to.
// A query failure leaves every country with no options.
func (uc *implUseCase) employmentOptions(ctx context.Context, countries []string) map[string][]employmentOption {
	out := make(map[string][]employmentOption, len(countries))
	for _, c := range countries {
		out[c] = []employmentOption{}
	}

	entities, err := uc.repo.QueryEntities(ctx, model.EntityEmploymentModel, nil)
	if err != nil {
		uc.l.Warnf(ctx, "strategy.employmentOptions: %v", err)
		return out
	}
	for _, e := range entities {
		var em model.EmploymentModel
		if err := e.Decode(&em); err != nil {
			uc.l.Warnf(ctx, "strategy.employmentOptions: %v", err)
			continue
		}
		opt := employmentOption{Name: e.Name, Description: em.Description, Requirements: em.Requirements}
		for _, c := range countries {
			if slices.Contains(em.ApplicableCountries, c) {
				out[c] = append(out[c], opt)
			}
		}
	}
	return out
}
