package usecase

import (
	"sync"
	"time"

	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
	"hr-assistant/internal/retrieval/repository"
	"hr-assistant/pkg/cache"
	"hr-assistant/pkg/log"
)

// Options configures the context manager.
type Options struct {
	TopK             int
	MaxContextLength int
	CacheCapacity    int
	Now              func() time.Time
}

// implUseCase is the private implementation of contextmgr.UseCase.
type implUseCase struct {
	repo   repository.Repository
	topK   int
	maxLen int
	now    func() time.Time
	l      log.Logger

	// mu serialises read-modify-write cycles on the store.
	mu    sync.Mutex
	store cache.Cache[string, model.ModelContext]
}

var _ contextmgr.UseCase = (*implUseCase)(nil)

// New creates a context manager backed by repo.
func New(repo repository.Repository, opts Options, l log.Logger) *implUseCase {
	if opts.TopK <= 0 {
		opts.TopK = contextmgr.DefaultTopK
	}
	if opts.MaxContextLength <= 0 {
		opts.MaxContextLength = model.DefaultMaxContextLength
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implUseCase{
		repo:   repo,
		topK:   opts.TopK,
		maxLen: opts.MaxContextLength,
		now:    opts.Now,
		l:      l,
		store:  cache.New[string, model.ModelContext](cache.Options{Capacity: opts.CacheCapacity}),
	}
}
