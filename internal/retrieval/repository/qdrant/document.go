package qdrant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hr-assistant/internal/model"
	"hr-assistant/internal/retrieval/repository"
	"hr-assistant/pkg/fingerprint"
	pkgQdrant "hr-assistant/pkg/qdrant"
)

const (
	payloadContent  = "content"
	payloadMetadata = "metadata"
)

var pointNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("hr-assistant/documents"))

// SimilaritySearch embeds the query and returns the k nearest documents.
func (r *implRepository) SimilaritySearch(ctx context.Context, query string, k int) ([]model.ScoredDocument, error) {
	if strings.TrimSpace(query) == "" {
		return nil, repository.ErrEmptyQuery
	}
	if k <= 0 {
		return nil, nil
	}

	vectors, err := r.embed(ctx, []string{query})
	if err != nil {
		r.l.Errorf(ctx, "retrieval.qdrant.SimilaritySearch: embed: %v", err)
		return nil, model.Upstream(model.SourceRetrieval, err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collection, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       k,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "retrieval.qdrant.SimilaritySearch: search: %v", err)
		return nil, model.Upstream(model.SourceRetrieval, fmt.Errorf("search: %w", err))
	}

	docs := make([]model.ScoredDocument, 0, len(resp.Result))
	for _, p := range resp.Result {
		content, ok := p.Payload[payloadContent].(string)
		if !ok {
			r.l.Warnf(ctx, "retrieval.qdrant.SimilaritySearch: point %v has no content, skipped", p.ID)
			continue
		}
		meta, _ := p.Payload[payloadMetadata].(map[string]any)
		if meta == nil {
			meta = map[string]any{}
		}
		docs = append(docs, model.ScoredDocument{
			Document: model.Document{Content: content, Metadata: meta},
			Score:    clamp(p.Score),
		})
	}

	r.l.Debugf(ctx, "retrieval.qdrant.SimilaritySearch: %d results (k=%d)", len(docs), k)
	return docs, nil
}

// AddDocuments embeds docs in batches and upserts them. Re-adding a document with the same
// source and chunk_id (or the same content) overwrites the previous point.
func (r *implRepository) AddDocuments(ctx context.Context, docs []model.Document) error {
	for start := 0; start < len(docs); start += r.batchSize {
		end := min(start+r.batchSize, len(docs))
		batch := docs[start:end]

		texts := make([]string, len(batch))
		for i, d := range batch {
			texts[i] = d.Content
		}
		vectors, err := r.embed(ctx, texts)
		if err != nil {
			r.l.Errorf(ctx, "retrieval.qdrant.AddDocuments: embed batch %d-%d: %v", start, end, err)
			return model.Upstream(model.SourceRetrieval, err)
		}

		points := make([]pkgQdrant.Point, len(batch))
		for i, d := range batch {
			meta := d.Metadata
			if meta == nil {
				meta = map[string]any{}
			}
			points[i] = pkgQdrant.Point{
				ID:     pointID(d),
				Vector: vectors[i],
				Payload: map[string]any{
					payloadContent:  d.Content,
					payloadMetadata: meta,
				},
			}
		}

		if err := r.client.UpsertPoints(ctx, r.collection, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
			r.l.Errorf(ctx, "retrieval.qdrant.AddDocuments: upsert: %v", err)
			return model.Upstream(model.SourceRetrieval, fmt.Errorf("upsert: %w", err))
		}
	}

	r.l.Infof(ctx, "retrieval.qdrant.AddDocuments: stored %d documents in %s", len(docs), r.collection)
	return nil
}

func (r *implRepository) embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: %d texts, %d vectors", repository.ErrEmbeddingMismatch, len(texts), len(vectors))
	}
	return vectors, nil
}

// pointID derives a stable UUIDv5 so that re-ingesting a chunk replaces it.
func pointID(d model.Document) string {
	source, _ := d.Metadata["source"].(string)
	chunk, hasChunk := d.Metadata["chunk_id"]
	name := ""
	if source != "" && hasChunk {
		name = fmt.Sprintf("%s#%v", source, chunk)
	} else {
		name = fingerprint.Text(d.Content)
	}
	return uuid.NewSHA1(pointNamespace, []byte(name)).String()
}

func clamp(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	}
	return score
}
