package http

import (
	"hr-assistant/internal/strategy"
	"hr-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc strategy.UseCase
}

// New creates a new HTTP handler for employment strategies.
func New(l log.Logger, uc strategy.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
