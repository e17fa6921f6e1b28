package qdrant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"hr-assistant/internal/model"
	"hr-assistant/internal/retrieval/repository/qdrant"
	"hr-assistant/pkg/log"
	pkgQdrant "hr-assistant/pkg/qdrant"
)

type fakeEmbedder struct {
	err   error
	calls [][]string
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.calls = append(f.calls, texts)
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2, 0.3}
	}
	return out, nil
}

type fakeQdrant struct {
	mu       sync.Mutex
	created  bool
	exists   bool
	upserted []pkgQdrant.Point
	results  []pkgQdrant.ScoredPoint
	fail     bool
}

func (f *fakeQdrant) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/collections/hr_documents", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			if !f.exists {
				w.WriteHeader(http.StatusNotFound)
				return
			}
		case http.MethodPut:
			f.created = true
		}
		w.Write([]byte(`{"result":true,"status":"ok"}`))
	})
	mux.HandleFunc("/collections/hr_documents/points", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var req pkgQdrant.UpsertPointsRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.upserted = append(f.upserted, req.Points...)
		w.Write([]byte(`{"result":{},"status":"ok"}`))
	})
	mux.HandleFunc("/collections/hr_documents/points/search", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(pkgQdrant.SearchResponse{Result: f.results, Status: "ok"})
	})
	return mux
}

func setup(t *testing.T, fq *fakeQdrant, emb *fakeEmbedder, batch int) interface {
	EnsureCollection(ctx context.Context) error
	SimilaritySearch(ctx context.Context, query string, k int) ([]model.ScoredDocument, error)
	AddDocuments(ctx context.Context, docs []model.Document) error
} {
	t.Helper()
	ts := httptest.NewServer(fq.handler())
	t.Cleanup(ts.Close)
	client := pkgQdrant.NewClient(ts.URL)
	return qdrant.New(client, emb, qdrant.Options{Collection: "hr_documents", VectorSize: 3, BatchSize: batch}, log.NewNop())
}

func TestEnsureCollection(t *testing.T) {
	t.Run("creates when missing", func(t *testing.T) {
		fq := &fakeQdrant{}
		repo := setup(t, fq, &fakeEmbedder{}, 0)
		if err := repo.EnsureCollection(context.Background()); err != nil {
			t.Fatalf("EnsureCollection: %v", err)
		}
		if !fq.created {
			t.Error("expected collection to be created")
		}
	})

	t.Run("existing collection untouched", func(t *testing.T) {
		fq := &fakeQdrant{exists: true}
		repo := setup(t, fq, &fakeEmbedder{}, 0)
		if err := repo.EnsureCollection(context.Background()); err != nil {
			t.Fatalf("EnsureCollection: %v", err)
		}
		if fq.created {
			t.Error("collection should not be recreated")
		}
	})
}

func TestSimilaritySearch(t *testing.T) {
	ctx := context.Background()
	fq := &fakeQdrant{results: []pkgQdrant.ScoredPoint{
		{ID: "a", Score: 1.0000002, Payload: map[string]any{"content": "勞基法第30條", "metadata": map[string]any{"source": "tw-law"}}},
		{ID: "b", Score: 0.45, Payload: map[string]any{"content": "加班費規定"}},
		{ID: "c", Score: -0.1, Payload: map[string]any{"content": "unrelated"}},
		{ID: "d", Score: 0.9, Payload: map[string]any{"title": "no content"}},
	}}
	repo := setup(t, fq, &fakeEmbedder{}, 0)

	docs, err := repo.SimilaritySearch(ctx, "工時規定", 5)
	if err != nil {
		t.Fatalf("SimilaritySearch: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if docs[0].Score != 1 || docs[2].Score != 0 {
		t.Errorf("scores not clamped: %v, %v", docs[0].Score, docs[2].Score)
	}
	if docs[0].Metadata["source"] != "tw-law" {
		t.Errorf("metadata lost: %v", docs[0].Metadata)
	}
	if docs[1].Metadata == nil {
		t.Error("missing metadata should be an empty map")
	}

	t.Run("upstream failure", func(t *testing.T) {
		fq.fail = true
		defer func() { fq.fail = false }()
		_, err := repo.SimilaritySearch(ctx, "工時規定", 5)
		if !model.IsUpstream(err) {
			t.Errorf("expected upstream error, got %v", err)
		}
	})

	t.Run("embedder failure", func(t *testing.T) {
		repo := setup(t, &fakeQdrant{}, &fakeEmbedder{err: errors.New("quota")}, 0)
		_, err := repo.SimilaritySearch(ctx, "工時規定", 5)
		var ue *model.UpstreamError
		if !errors.As(err, &ue) || ue.Source != model.SourceRetrieval {
			t.Errorf("expected retrieval upstream error, got %v", err)
		}
	})
}

func TestAddDocuments(t *testing.T) {
	ctx := context.Background()
	fq := &fakeQdrant{}
	emb := &fakeEmbedder{}
	repo := setup(t, fq, emb, 2)

	docs := []model.Document{
		{Content: "one", Metadata: map[string]any{"source": "handbook", "chunk_id": 0}},
		{Content: "two", Metadata: map[string]any{"source": "handbook", "chunk_id": 1}},
		{Content: "three"},
	}
	if err := repo.AddDocuments(ctx, docs); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}
	if len(emb.calls) != 2 {
		t.Errorf("expected 2 embedding batches, got %d", len(emb.calls))
	}
	if len(fq.upserted) != 3 {
		t.Fatalf("expected 3 points, got %d", len(fq.upserted))
	}

	ids := map[string]bool{}
	for _, p := range fq.upserted {
		ids[p.ID] = true
	}
	if len(ids) != 3 {
		t.Errorf("expected distinct point ids, got %v", ids)
	}

	// Same source and chunk id yields the same point.
	if err := repo.AddDocuments(ctx, docs[:1]); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}
	if fq.upserted[3].ID != fq.upserted[0].ID {
		t.Errorf("expected deterministic id, got %s and %s", fq.upserted[0].ID, fq.upserted[3].ID)
	}
}
