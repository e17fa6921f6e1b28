package usecase

import (
	"context"
	"maps"
	"slices"

	"hr-assistant/internal/comparison"
	"hr-assistant/pkg/fingerprint"
)

// CacheKey fingerprints the request as given, before defaults are applied.
// Country order does not matter; every focus weight does.
func CacheKey(input comparison.CompareInput) (string, error) {
	key := cacheKey{
		Countries: slices.Sorted(slices.Values(input.CountryIDs)),
		Domains:   []string{keyAllDomains},
		Focus:     keyDefaultFocus,
	}
	if key.Countries == nil {
		key.Countries = []string{}
	}
	if len(input.Domains) > 0 {
		key.Domains = make([]string, len(input.Domains))
		for i, d := range input.Domains {
			key.Domains[i] = string(d)
		}
		slices.Sort(key.Domains)
	}
	if len(input.FocusAreas) > 0 {
		key.Focus = maps.Clone(input.FocusAreas)
	}
	return fingerprint.Digest(key)
}

func (uc *implUseCase) ClearCache(ctx context.Context) {
	uc.cache.Purge()
	uc.l.Infof(ctx, "comparison.ClearCache: cache cleared")
}
