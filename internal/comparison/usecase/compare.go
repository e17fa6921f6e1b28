package usecase

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"hr-assistant/internal/comparison"
	"hr-assistant/internal/model"
)

// Compare runs every requested domain comparator concurrently and caches the joined result.
func (uc *implUseCase) Compare(ctx context.Context, input comparison.CompareInput) (*model.CountryComparison, error) {
	if len(input.CountryIDs) == 0 {
		uc.l.Errorf(ctx, "comparison.Compare: %v", comparison.ErrNoCountries)
		return nil, comparison.ErrNoCountries
	}
	for _, d := range input.Domains {
		if !d.Valid() {
			err := fmt.Errorf("%w: %q", comparison.ErrInvalidDomain, d)
			uc.l.Errorf(ctx, "comparison.Compare: %v", err)
			return nil, err
		}
	}

	key, err := CacheKey(input)
	if err != nil {
		uc.l.Errorf(ctx, "comparison.Compare: cache key: %v", err)
		return nil, err
	}
	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "comparison.Compare: cache hit %s", key)
		return cached, nil
	}

	domains := input.Domains
	if len(domains) == 0 {
		domains = model.AllDomains
	}
	focus := input.FocusAreas
	if len(focus) == 0 {
		focus = make(map[string]float64, len(model.AllDomains))
		for _, d := range model.AllDomains {
			focus[string(d)] = comparison.DefaultFocusWeight
		}
	}

	handle, err := uc.models.Get(ctx, model.ModelHighCapability)
	if err != nil {
		uc.l.Errorf(ctx, "comparison.Compare: get model: %v", err)
		return nil, err
	}

	countries := slices.Clone(input.CountryIDs)
	result := &model.CountryComparison{Countries: countries}

	// Each comparator writes only its own field and never returns an error.
	g, gctx := errgroup.WithContext(ctx)
	if slices.Contains(domains, model.DomainLegal) {
		g.Go(func() error {
			result.Legal = uc.compareLegal(gctx, handle, countries)
			return nil
		})
	}
	if slices.Contains(domains, model.DomainTax) {
		g.Go(func() error {
			result.Tax = uc.compareTax(gctx, countries)
			return nil
		})
	}
	if slices.Contains(domains, model.DomainInsurance) {
		g.Go(func() error {
			result.Insurance = uc.compareInsurance(gctx, countries)
			return nil
		})
	}
	if slices.Contains(domains, model.DomainCost) {
		g.Go(func() error {
			result.Cost = uc.compareCost(gctx, countries)
			return nil
		})
	}
	if slices.Contains(domains, model.DomainRisk) {
		g.Go(func() error {
			result.Risk = uc.compareRisk(gctx, countries)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "comparison.Compare: %v", err)
		return nil, err
	}

	result.Recommendation = uc.recommend(ctx, handle, result, focus)

	uc.cache.Put(key, result)
	uc.l.Infof(ctx, "comparison.Compare: countries=%v domains=%v", countries, domains)
	return result, nil
}
