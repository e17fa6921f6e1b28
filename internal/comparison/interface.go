package comparison

import (
	"context"

	"hr-assistant/internal/model"
)

// UseCase compares employment conditions across countries.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Compare returns a cached comparison when one is fresh. A cache hit returns the same pointer.
	Compare(ctx context.Context, input CompareInput) (*model.CountryComparison, error)
	ClearCache(ctx context.Context)
}
