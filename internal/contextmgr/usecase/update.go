package usecase

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"time"

	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
)

// UpdateContext merges global values and appends attached documents as secondary windows, then re-trims.
func (uc *implUseCase) UpdateContext(ctx context.Context, id string, input contextmgr.UpdateInput) (model.ModelContext, error) {
	for _, d := range input.Documents {
		if strings.TrimSpace(d.Content) == "" {
			return model.ModelContext{}, contextmgr.ErrEmptyContent
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	stored, ok := uc.store.Get(id)
	if !ok {
		return model.ModelContext{}, fmt.Errorf("context %s: %w", id, model.ErrNotFound)
	}
	mc := stored.Clone()

	maps.Copy(mc.Global, input.Global)

	now := uc.now().Format(time.RFC3339)
	for _, d := range input.Documents {
		relevance := contextmgr.DefaultAttachedRelevance
		if d.RelevanceScore != nil {
			relevance = *d.RelevanceScore
		}
		source := d.Source
		if source == "" {
			source = contextmgr.DefaultSource
		}
		meta := maps.Clone(d.Metadata)
		if meta == nil {
			meta = map[string]any{}
		}
		mc.Secondary = append(mc.Secondary, model.ContextWindow{
			Content:        d.Content,
			Metadata:       meta,
			RelevanceScore: relevance,
			Source:         source,
			Timestamp:      now,
		})
	}
	trim(&mc)

	uc.store.Put(id, mc)
	uc.l.Debugf(ctx, "contextmgr.UpdateContext: %s global=%d attached=%d length=%d", id, len(input.Global), len(input.Documents), mc.ContentLength())
	return mc.Clone(), nil
}
