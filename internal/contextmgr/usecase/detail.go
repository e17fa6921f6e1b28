package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
)

func (uc *implUseCase) GetContext(_ context.Context, id string) (model.ModelContext, error) {
	mc, ok := uc.store.Get(id)
	if !ok {
		return model.ModelContext{}, fmt.Errorf("context %s: %w", id, model.ErrNotFound)
	}
	return mc.Clone(), nil
}

// GetSummary counts whitespace-separated tokens over all window content.
func (uc *implUseCase) GetSummary(ctx context.Context, id string) (contextmgr.Summary, error) {
	mc, err := uc.GetContext(ctx, id)
	if err != nil {
		return contextmgr.Summary{}, err
	}

	s := contextmgr.Summary{
		PrimarySources:    len(mc.Primary),
		SecondarySources:  len(mc.Secondary),
		GlobalContextKeys: make([]string, 0, len(mc.Global)),
		SourceNames:       make([]string, 0, len(mc.Primary)+len(mc.Secondary)),
	}
	for _, w := range append(mc.Primary, mc.Secondary...) {
		s.SourceNames = append(s.SourceNames, w.Source)
		s.TotalTokens += len(strings.Fields(w.Content))
	}
	for k := range mc.Global {
		s.GlobalContextKeys = append(s.GlobalContextKeys, k)
	}
	sort.Strings(s.GlobalContextKeys)
	return s, nil
}

func (uc *implUseCase) ClearContext(ctx context.Context, id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.store.Invalidate(id)
	uc.l.Debugf(ctx, "contextmgr.ClearContext: %s", id)
}

func (uc *implUseCase) ClearAll(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.store.Purge()
	uc.l.Infof(ctx, "contextmgr.ClearAll: cleared")
}
