package usecase

import (
	"sync"
	"time"

	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/pkg/log"
)

type statsEntry struct {
	calls    int64
	errors   int64
	total    time.Duration
	lastUsed time.Time
}

// implUseCase is the private implementation of modelregistry.UseCase.
type implUseCase struct {
	factory  modelregistry.Factory
	variants []model.ModelID
	def      model.ModelID
	now      func() time.Time
	timeout  time.Duration
	l        log.Logger

	mu      sync.RWMutex
	configs map[model.ModelID]model.ModelConfig
	handles map[model.ModelID]modelregistry.Handle

	statsMu sync.Mutex
	stats   map[model.ModelID]*statsEntry
}

var _ modelregistry.UseCase = (*implUseCase)(nil)

// New creates a registry seeded from the capability table and opts.Configs.
func New(opts modelregistry.Options, l log.Logger) *implUseCase {
	configs := model.Capabilities()
	for id, cfg := range opts.Configs {
		configs[id] = cfg.Clone()
	}

	variants := opts.Variants
	if len(variants) == 0 {
		variants = model.AllModels
	}
	def := opts.Default
	if def == "" {
		def = model.ModelFast
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	timeout := opts.HealthTimeout
	if timeout <= 0 {
		timeout = modelregistry.DefaultHealthTimeout
	}

	return &implUseCase{
		factory:  opts.Factory,
		variants: variants,
		def:      def,
		now:      now,
		timeout:  timeout,
		l:        l,
		configs:  configs,
		handles:  make(map[model.ModelID]modelregistry.Handle),
		stats:    make(map[model.ModelID]*statsEntry),
	}
}
