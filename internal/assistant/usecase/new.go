package usecase

import (
	"sync"
	"time"

	"hr-assistant/internal/assistant"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/internal/rag"
	"hr-assistant/pkg/log"
)

// Options configures the generator. Zero values take the defaults.
type Options struct {
	HistoryCap int
	Now        func() time.Time
}

type implUseCase struct {
	rag        rag.UseCase
	models     modelregistry.Getter
	historyCap int
	now        func() time.Time
	l          log.Logger

	mu      sync.Mutex
	history map[string][]assistant.Turn
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the context-aware generator.
func New(r rag.UseCase, models modelregistry.Getter, opts Options, l log.Logger) *implUseCase {
	if opts.HistoryCap <= 0 {
		opts.HistoryCap = assistant.HistoryCap
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implUseCase{
		rag:        r,
		models:     models,
		historyCap: opts.HistoryCap,
		now:        opts.Now,
		l:          l,
		history:    make(map[string][]assistant.Turn),
	}
}
