package qdrant

import (
	"context"
	"fmt"

	"hr-assistant/internal/retrieval/repository"
	"hr-assistant/pkg/log"
	pkgQdrant "hr-assistant/pkg/qdrant"
)

// DefaultBatchSize bounds the number of texts sent per embedding call.
const DefaultBatchSize = 64

// Options configures the qdrant-backed repository.
type Options struct {
	Collection string
	VectorSize int
	BatchSize  int
}

type implRepository struct {
	client     *pkgQdrant.Client
	embedder   repository.Embedder
	collection string
	vectorSize int
	batchSize  int
	l          log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a retrieval repository that embeds with embedder and stores points in Qdrant.
func New(client *pkgQdrant.Client, embedder repository.Embedder, opts Options, l log.Logger) *implRepository {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	return &implRepository{
		client:     client,
		embedder:   embedder,
		collection: opts.Collection,
		vectorSize: opts.VectorSize,
		batchSize:  opts.BatchSize,
		l:          l,
	}
}

// EnsureCollection creates the collection with cosine distance if it does not exist.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	exists, err := r.client.CollectionExists(ctx, r.collection)
	if err != nil {
		return fmt.Errorf("check collection %s: %w", r.collection, err)
	}
	if exists {
		return nil
	}

	err = r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: r.collection,
		Vectors: pkgQdrant.VectorConfig{
			Size:     r.vectorSize,
			Distance: pkgQdrant.DistanceCosine,
		},
	})
	if err != nil {
		return fmt.Errorf("create collection %s: %w", r.collection, err)
	}
	r.l.Infof(ctx, "retrieval.qdrant: created collection %s (size=%d)", r.collection, r.vectorSize)
	return nil
}
