package repository

import (
	"context"

	"hr-assistant/internal/model"
)

// Repository is the retrieval backend used by the context manager and document ingestion.
type Repository interface {
	// SimilaritySearch returns at most k documents, best match first, with scores in [0,1].
	SimilaritySearch(ctx context.Context, query string, k int) ([]model.ScoredDocument, error)
	AddDocuments(ctx context.Context, docs []model.Document) error
}

// Embedder turns texts into vectors, one per input, in input order.
// Both pkg/voyage and pkg/openai clients satisfy it.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
