package usecase

import (
	"context"
	"slices"

	"hr-assistant/internal/assistant"
)

func (uc *implUseCase) remember(contextType string, t assistant.Turn) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	turns := append(uc.history[contextType], t)
	if len(turns) > uc.historyCap {
		turns = slices.Clone(turns[len(turns)-uc.historyCap:])
	}
	uc.history[contextType] = turns
}

func (uc *implUseCase) History(_ context.Context, contextType string) []assistant.Turn {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return slices.Clone(uc.history[contextType])
}

func (uc *implUseCase) ClearHistory(ctx context.Context, contextType string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if contextType == "" {
		clear(uc.history)
		uc.l.Infof(ctx, "assistant.ClearHistory: all")
		return
	}
	delete(uc.history, contextType)
	uc.l.Infof(ctx, "assistant.ClearHistory: %s", contextType)
}
