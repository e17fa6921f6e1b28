package http

import (
	"hr-assistant/internal/contextmgr"
	"hr-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc contextmgr.UseCase
}

// New creates a new HTTP handler for the context manager.
func New(l log.Logger, uc contextmgr.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
