package usecase

import (
	"time"

	"hr-assistant/internal/comparison"
	"hr-assistant/internal/knowledge/repository"
	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/pkg/cache"
	"hr-assistant/pkg/llmjson"
	"hr-assistant/pkg/log"
)

var legalReplySchema = llmjson.MustCompile(legalSchema)

// Options configures the comparison cache. Zero values take the defaults.
type Options struct {
	CacheCapacity int
	CacheTTL      time.Duration
	Now           func() time.Time
}

type implUseCase struct {
	repo   repository.Repository
	models modelregistry.Getter
	now    func() time.Time
	l      log.Logger
	cache  cache.Cache[string, *model.CountryComparison]
}

var _ comparison.UseCase = (*implUseCase)(nil)

// New creates the comparison engine over the knowledge graph.
func New(repo repository.Repository, models modelregistry.Getter, opts Options, l log.Logger) *implUseCase {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = comparison.DefaultCacheTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implUseCase{
		repo:   repo,
		models: models,
		now:    opts.Now,
		l:      l,
		cache: cache.New[string, *model.CountryComparison](cache.Options{
			Capacity: opts.CacheCapacity,
			TTL:      opts.CacheTTL,
			Now:      opts.Now,
		}),
	}
}
