package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-assistant/internal/model"
	"hr-assistant/internal/rag"
)

// Ingest chunks the text and stores every chunk with its provenance.
func (uc *implUseCase) Ingest(ctx context.Context, input rag.IngestInput) (rag.IngestOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return rag.IngestOutput{}, rag.ErrEmptyDocument
	}
	if strings.TrimSpace(input.Source) == "" {
		return rag.IngestOutput{}, rag.ErrEmptySource
	}
	docType := input.DocType
	if docType == "" {
		docType = rag.DefaultDocType
	}

	chunks := uc.splitter.Split(input.Text)
	ts := uc.now().Format(time.RFC3339)
	docs := make([]model.Document, len(chunks))
	for i, c := range chunks {
		docs[i] = model.Document{
			Content: c,
			Metadata: map[string]any{
				rag.MetaSource:      input.Source,
				rag.MetaTimestamp:   ts,
				rag.MetaDocType:     docType,
				rag.MetaChunkID:     i,
				rag.MetaTotalChunks: len(chunks),
			},
		}
	}

	if err := uc.repo.AddDocuments(ctx, docs); err != nil {
		uc.l.Errorf(ctx, "rag.Ingest: add %d chunks from %s: %v", len(docs), input.Source, err)
		return rag.IngestOutput{}, model.Upstream(model.SourceRetrieval, fmt.Errorf("add documents: %w", err))
	}

	uc.l.Infof(ctx, "rag.Ingest: stored %d chunks from %s", len(docs), input.Source)
	return rag.IngestOutput{Chunks: len(docs)}, nil
}
