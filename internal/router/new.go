package router

import (
	"sync"
	"time"

	"hr-assistant/internal/model"
	"hr-assistant/pkg/log"
)

// ModelRouter routes queries with a short-horizon decision cache over its history.
type ModelRouter struct {
	selector Selector
	features FeatureExtractor
	cap      int
	lookback int
	now      func() time.Time
	l        log.Logger

	mu          sync.Mutex
	history     []model.RoutingDecision
	performance map[model.ModelID]map[string]float64
}

// Ensure ModelRouter implements Router interface
var _ Router = (*ModelRouter)(nil)

// New creates a new ModelRouter
func New(selector Selector, opts Options, l log.Logger) *ModelRouter {
	if opts.HistoryCap <= 0 {
		opts.HistoryCap = DefaultHistoryCap
	}
	if opts.LookbackWindow <= 0 {
		opts.LookbackWindow = DefaultLookbackWindow
	}
	if opts.Features == nil {
		opts.Features = ExtractFeatures
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &ModelRouter{
		selector:    selector,
		features:    opts.Features,
		cap:         opts.HistoryCap,
		lookback:    opts.LookbackWindow,
		now:         opts.Now,
		l:           l,
		performance: make(map[model.ModelID]map[string]float64),
	}
}
