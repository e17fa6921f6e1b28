package contextmgr

import (
	"context"

	"hr-assistant/internal/model"
)

// UseCase builds, caches and trims model contexts. It only ever hands out copies.
//
//go:generate mockery --name UseCase
type UseCase interface {
	CreateContext(ctx context.Context, input CreateInput) (CreateOutput, error)
	UpdateContext(ctx context.Context, id string, input UpdateInput) (model.ModelContext, error)
	GetContext(ctx context.Context, id string) (model.ModelContext, error)
	GetSummary(ctx context.Context, id string) (Summary, error)
	ClearContext(ctx context.Context, id string)
	ClearAll(ctx context.Context)
}
