package http

import (
	"hr-assistant/internal/modelregistry"
	"hr-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc modelregistry.UseCase
}

// New creates a new HTTP handler for the model registry.
func New(l log.Logger, uc modelregistry.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
