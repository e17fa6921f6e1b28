package usecase

import (
	"time"

	"github.com/google/uuid"

	"hr-assistant/internal/comparison"
	"hr-assistant/internal/knowledge/repository"
	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/internal/strategy"
	"hr-assistant/pkg/cache"
	"hr-assistant/pkg/log"
)

// strategyNamespace scopes strategy IDs derived from cache keys.
var strategyNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("hr-assistant/strategies"))

// Options configures the strategy cache. Zero values take the defaults.
type Options struct {
	CacheCapacity int
	CacheTTL      time.Duration
	Now           func() time.Time
}

type implUseCase struct {
	comparisons comparison.UseCase
	repo        repository.Repository
	models      modelregistry.Getter
	now         func() time.Time
	l           log.Logger
	cache       cache.Cache[string, *model.EmploymentStrategy]
}

var _ strategy.UseCase = (*implUseCase)(nil)

// New creates the strategy planner.
func New(
	comparisons comparison.UseCase,
	repo repository.Repository,
	models modelregistry.Getter,
	opts Options,
	l log.Logger,
) *implUseCase {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = strategy.DefaultCacheTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implUseCase{
		comparisons: comparisons,
		repo:        repo,
		models:      models,
		now:         opts.Now,
		l:           l,
		cache: cache.New[string, *model.EmploymentStrategy](cache.Options{
			Capacity: opts.CacheCapacity,
			TTL:      opts.CacheTTL,
			Now:      opts.Now,
		}),
	}
}
