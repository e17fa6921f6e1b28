package usecase

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"time"

	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/fingerprint"
)

// ContextID is "{context_type}_{hash(query)}".
func ContextID(contextType, query string) string {
	return contextType + "_" + fingerprint.Text(query)
}

// CreateContext retrieves the top-k documents for the query, partitions them into tiers and stores the trimmed result.
func (uc *implUseCase) CreateContext(ctx context.Context, input contextmgr.CreateInput) (contextmgr.CreateOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return contextmgr.CreateOutput{}, contextmgr.ErrEmptyQuery
	}
	contextType := input.ContextType
	if contextType == "" {
		contextType = contextmgr.DefaultContextType
	}

	k := uc.topK
	if input.TopK > 0 {
		k = input.TopK
	}
	docs, err := uc.repo.SimilaritySearch(ctx, input.Query, k)
	if err != nil {
		uc.l.Errorf(ctx, "contextmgr.CreateContext: similarity search: %v", err)
		return contextmgr.CreateOutput{}, model.Upstream(model.SourceRetrieval, fmt.Errorf("similarity search: %w", err))
	}

	mc := model.NewModelContext(uc.maxLen)
	maps.Copy(mc.Global, input.Metadata)
	for _, d := range docs {
		switch {
		case d.Score > contextmgr.PrimaryThreshold:
			mc.Primary = append(mc.Primary, uc.window(d.Document, d.Score))
		case d.Score >= contextmgr.SecondaryThreshold:
			mc.Secondary = append(mc.Secondary, uc.window(d.Document, d.Score))
		}
	}
	trim(&mc)

	id := ContextID(contextType, input.Query)
	uc.mu.Lock()
	uc.store.Put(id, mc)
	uc.mu.Unlock()

	uc.l.Infof(ctx, "contextmgr.CreateContext: %s primary=%d secondary=%d length=%d", id, len(mc.Primary), len(mc.Secondary), mc.ContentLength())
	return contextmgr.CreateOutput{ID: id, Context: mc.Clone()}, nil
}

func (uc *implUseCase) window(doc model.Document, score float64) model.ContextWindow {
	meta := maps.Clone(doc.Metadata)
	if meta == nil {
		meta = map[string]any{}
	}

	source, _ := doc.Metadata[contextmgr.MetadataSource].(string)
	if source == "" {
		source = contextmgr.DefaultSource
	}
	ts, _ := doc.Metadata[contextmgr.MetadataTimestamp].(string)
	if ts == "" {
		ts = uc.now().Format(time.RFC3339)
	}
	return model.ContextWindow{
		Content:        doc.Content,
		Metadata:       meta,
		RelevanceScore: score,
		Source:         source,
		Timestamp:      ts,
	}
}
