package strategy

import (
	"context"

	"hr-assistant/internal/model"
)

// UseCase plans cross-country employment strategies.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, input GenerateInput) (*model.EmploymentStrategy, error)
	ClearCache(ctx context.Context)
}
