package http

import (
	"context"

	"hr-assistant/internal/model"
	"hr-assistant/internal/router"
	"hr-assistant/pkg/log"
)

// ContextGetter resolves a stored context by id. contextmgr.UseCase satisfies it.
type ContextGetter interface {
	GetContext(ctx context.Context, id string) (model.ModelContext, error)
}

type handler struct {
	l        log.Logger
	r        router.Router
	contexts ContextGetter
}

// New creates a new HTTP handler for the model router. contexts may be nil.
func New(l log.Logger, r router.Router, contexts ContextGetter) *handler {
	return &handler{l: l, r: r, contexts: contexts}
}
