package assistant

import "context"

// UseCase answers with retrieved context plus the recent conversation of the same context type.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	// History returns a copy of the conversation for contextType, oldest first.
	History(ctx context.Context, contextType string) []Turn
	// ClearHistory drops one context type, or everything when contextType is empty.
	ClearHistory(ctx context.Context, contextType string)
}
