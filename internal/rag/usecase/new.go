package usecase

import (
	"time"

	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/internal/rag"
	"hr-assistant/internal/retrieval/repository"
	"hr-assistant/internal/router"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/textsplit"
)

type implUseCase struct {
	contexts contextmgr.UseCase
	router   router.Router
	models   modelregistry.Getter
	repo     repository.Repository
	splitter *textsplit.Splitter
	now      func() time.Time
	l        log.Logger
}

var _ rag.UseCase = (*implUseCase)(nil)

// New wires the RAG pipeline. A nil splitter uses the default chunk size.
func New(
	contexts contextmgr.UseCase,
	r router.Router,
	models modelregistry.Getter,
	repo repository.Repository,
	splitter *textsplit.Splitter,
	l log.Logger,
) *implUseCase {
	if splitter == nil {
		splitter = textsplit.New(textsplit.DefaultChunkSize, textsplit.DefaultOverlap)
	}
	return &implUseCase{
		contexts: contexts,
		router:   r,
		models:   models,
		repo:     repo,
		splitter: splitter,
		now:      time.Now,
		l:        l,
	}
}

// SetClock overrides the timestamp source used by Ingest.
func (uc *implUseCase) SetClock(now func() time.Time) {
	uc.now = now
}
